package middleware

import (
	"net/http"

	"github.com/rs/cors"
)

// NewCORS returns a CORS middleware that allows the given origins. An empty
// slice allows no cross-origin callers, which is the safe default for a
// backend that is only talked to by its own frontend.
func NewCORS(allowedOrigins []string) func(http.Handler) http.Handler {
	c := cors.New(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	})
	return c.Handler
}
