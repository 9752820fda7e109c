package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrAssie/reisdagboek/internal/domain"
	"github.com/MrAssie/reisdagboek/internal/itinerary"
)

// ActivityRequest is the body of the activity create and update endpoints.
// Unknown categories fall back to sightseeing; an empty currency defaults to
// EUR. Activities are created at the end of their day's sequence — position
// is changed through the move endpoint, not through updates.
type ActivityRequest struct {
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Location    string          `json:"location,omitempty"`
	Address     string          `json:"address,omitempty"`
	Latitude    *float64        `json:"latitude,omitempty"`
	Longitude   *float64        `json:"longitude,omitempty"`
	PlaceID     string          `json:"place_id,omitempty"`
	StartTime   string          `json:"start_time,omitempty"`
	EndTime     string          `json:"end_time,omitempty"`
	Category    string          `json:"category,omitempty"`
	Cost        decimal.Decimal `json:"cost"`
	Currency    string          `json:"currency,omitempty"`
	PhotoURL    string          `json:"photo_url,omitempty"`
	Rating      *float64        `json:"rating,omitempty"`
}

// MoveRequest is the body of POST /trips/{tripID}/itinerary/move: one drag
// event, as reported by the drag-and-drop layer.
type MoveRequest struct {
	SourceDayID uuid.UUID `json:"source_day_id"`
	SourceIndex int       `json:"source_index"`
	DestDayID   uuid.UUID `json:"dest_day_id"`
	DestIndex   int       `json:"dest_index"`
}

// handleCreateActivity handles POST /trips/{tripID}/days/{dayID}/activities.
func (s *Server) handleCreateActivity(w http.ResponseWriter, r *http.Request) {
	tripID, dayID, ok := dayParams(w, r)
	if !ok {
		return
	}

	var req ActivityRequest
	if err := decodeJSON(r, &req); err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, requestBody("invalid request body: "+err.Error()))
		return
	}

	created, err := s.activities.Create(r.Context(), tripID, requestToActivity(dayID, uuid.Nil, req))
	if err != nil {
		writeError(w, err, "day not found")
		return
	}

	writeJSON(w, http.StatusCreated, created)
}

// handleUpdateActivity handles PUT /trips/{tripID}/days/{dayID}/activities/{activityID}.
func (s *Server) handleUpdateActivity(w http.ResponseWriter, r *http.Request) {
	tripID, dayID, activityID, ok := activityParams(w, r)
	if !ok {
		return
	}

	var req ActivityRequest
	if err := decodeJSON(r, &req); err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, requestBody("invalid request body: "+err.Error()))
		return
	}

	updated, err := s.activities.Update(r.Context(), tripID, requestToActivity(dayID, activityID, req))
	if err != nil {
		writeError(w, err, "activity not found")
		return
	}

	writeJSON(w, http.StatusOK, updated)
}

// handleDeleteActivity handles DELETE /trips/{tripID}/days/{dayID}/activities/{activityID}.
func (s *Server) handleDeleteActivity(w http.ResponseWriter, r *http.Request) {
	tripID, dayID, activityID, ok := activityParams(w, r)
	if !ok {
		return
	}

	if err := s.activities.Delete(r.Context(), tripID, dayID, activityID); err != nil {
		writeError(w, err, "activity not found")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// handleMoveActivity handles POST /trips/{tripID}/itinerary/move.
// The response is the full post-move itinerary, ready to swap into the view
// wholesale. An invalid position answers 422; the client should then discard
// its view and re-fetch the trip.
func (s *Server) handleMoveActivity(w http.ResponseWriter, r *http.Request) {
	tripID, err := uuidParam(r, "tripID")
	if err != nil {
		writeJSON(w, http.StatusNotFound, notFoundBody("trip not found"))
		return
	}

	var req MoveRequest
	if err := decodeJSON(r, &req); err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, requestBody("invalid request body: "+err.Error()))
		return
	}

	it, err := s.activities.Move(r.Context(), tripID, itinerary.Move{
		SourceDayID: req.SourceDayID,
		SourceIndex: req.SourceIndex,
		DestDayID:   req.DestDayID,
		DestIndex:   req.DestIndex,
	})
	if err != nil {
		writeError(w, err, "trip not found")
		return
	}

	writeJSON(w, http.StatusOK, itineraryToResponse(it))
}

// handleGetMarkers handles GET /trips/{tripID}/markers.
// Returns one marker per activity with coordinates, in itinerary order.
func (s *Server) handleGetMarkers(w http.ResponseWriter, r *http.Request) {
	tripID, err := uuidParam(r, "tripID")
	if err != nil {
		writeJSON(w, http.StatusNotFound, notFoundBody("trip not found"))
		return
	}

	it, err := s.trips.GetItinerary(r.Context(), tripID)
	if err != nil {
		writeError(w, err, "trip not found")
		return
	}

	writeJSON(w, http.StatusOK, domain.MarkersFromDays(it.Days))
}

// activityParams parses the tripID, dayID, and activityID URL parameters,
// answering 404 itself when any is malformed.
func activityParams(w http.ResponseWriter, r *http.Request) (tripID, dayID, activityID uuid.UUID, ok bool) {
	tripID, dayID, ok = dayParams(w, r)
	if !ok {
		return uuid.Nil, uuid.Nil, uuid.Nil, false
	}
	activityID, err := uuidParam(r, "activityID")
	if err != nil {
		writeJSON(w, http.StatusNotFound, notFoundBody("activity not found"))
		return uuid.Nil, uuid.Nil, uuid.Nil, false
	}
	return tripID, dayID, activityID, true
}

// requestToActivity converts an ActivityRequest into a domain.Activity with
// the given IDs (uuid.Nil activity ID for creates).
func requestToActivity(dayID, activityID uuid.UUID, req ActivityRequest) domain.Activity {
	currency := req.Currency
	if currency == "" {
		currency = "EUR"
	}
	return domain.Activity{
		ID:          activityID,
		DayID:       dayID,
		Name:        req.Name,
		Description: req.Description,
		Location:    req.Location,
		Address:     req.Address,
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
		PlaceID:     req.PlaceID,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		Category:    domain.ParseCategory(req.Category),
		Cost:        req.Cost,
		Currency:    currency,
		PhotoURL:    req.PhotoURL,
		Rating:      req.Rating,
	}
}
