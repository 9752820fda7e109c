package handler

import (
	"errors"
	"net/http"

	"github.com/MrAssie/reisdagboek/internal/places"
)

// handleSearchPlaces handles GET /places/search.
// Query parameters: query (required), type, lat, lng (optional bias).
// Answers 503 when no Places API key is configured and 502 when the upstream
// API rejects the request.
func (s *Server) handleSearchPlaces(w http.ResponseWriter, r *http.Request) {
	if s.places == nil {
		writeJSON(w, http.StatusServiceUnavailable, ErrorResponse{
			Error: ErrorDetail{Code: "places_unconfigured", Message: "places search is not configured"},
		})
		return
	}

	q := r.URL.Query()
	if q.Get("query") == "" {
		writeJSON(w, http.StatusUnprocessableEntity, requestBody("query is required"))
		return
	}

	results, err := s.places.Search(r.Context(), places.Query{
		Text: q.Get("query"),
		Type: q.Get("type"),
		Lat:  q.Get("lat"),
		Lng:  q.Get("lng"),
	})
	if err != nil {
		if errors.Is(err, places.ErrUpstream) {
			writeJSON(w, http.StatusBadGateway, ErrorResponse{
				Error: ErrorDetail{Code: "places_upstream_error", Message: "places search failed upstream"},
			})
			return
		}
		writeError(w, err, "")
		return
	}

	writeJSON(w, http.StatusOK, results)
}
