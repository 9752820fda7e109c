package middleware

import "net/http"

// MaxBodySize limits request bodies to maxBytes. Requests that declare a
// larger Content-Length are rejected immediately with 413; for the rest the
// body is wrapped with http.MaxBytesReader so chunked uploads that exceed
// the limit fail mid-read.
func MaxBodySize(maxBytes int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.ContentLength > maxBytes {
				http.Error(w, http.StatusText(http.StatusRequestEntityTooLarge), http.StatusRequestEntityTooLarge)
				return
			}
			r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
			next.ServeHTTP(w, r)
		})
	}
}
