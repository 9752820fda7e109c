package handler

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/MrAssie/reisdagboek/internal/domain"
)

// DayRequest is the body of POST /trips/{tripID}/days and
// PUT /trips/{tripID}/days/{dayID}.
type DayRequest struct {
	Date  openapi_types.Date `json:"date"`
	Title string             `json:"title"`
	Notes string             `json:"notes,omitempty"`
}

// DayResponse is the day representation returned by every day endpoint.
type DayResponse struct {
	ID        uuid.UUID          `json:"id"`
	TripID    uuid.UUID          `json:"trip_id"`
	Date      openapi_types.Date `json:"date"`
	Title     string             `json:"title"`
	Notes     string             `json:"notes,omitempty"`
	CreatedAt time.Time          `json:"created_at"`
	UpdatedAt time.Time          `json:"updated_at"`
}

// DayPlanResponse is a day with its activities in itinerary order.
type DayPlanResponse struct {
	Day        DayResponse       `json:"day"`
	Activities []domain.Activity `json:"activities"`
}

// handleCreateDay handles POST /trips/{tripID}/days.
func (s *Server) handleCreateDay(w http.ResponseWriter, r *http.Request) {
	tripID, err := uuidParam(r, "tripID")
	if err != nil {
		writeJSON(w, http.StatusNotFound, notFoundBody("trip not found"))
		return
	}

	var req DayRequest
	if err := decodeJSON(r, &req); err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, requestBody("invalid request body: "+err.Error()))
		return
	}

	created, err := s.days.Create(r.Context(), requestToDay(tripID, uuid.Nil, req))
	if err != nil {
		writeError(w, err, "trip not found")
		return
	}

	writeJSON(w, http.StatusCreated, dayToResponse(created))
}

// handleUpdateDay handles PUT /trips/{tripID}/days/{dayID}.
func (s *Server) handleUpdateDay(w http.ResponseWriter, r *http.Request) {
	tripID, dayID, ok := dayParams(w, r)
	if !ok {
		return
	}

	var req DayRequest
	if err := decodeJSON(r, &req); err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, requestBody("invalid request body: "+err.Error()))
		return
	}

	updated, err := s.days.Update(r.Context(), requestToDay(tripID, dayID, req))
	if err != nil {
		writeError(w, err, "day not found")
		return
	}

	writeJSON(w, http.StatusOK, dayToResponse(updated))
}

// handleDeleteDay handles DELETE /trips/{tripID}/days/{dayID}.
func (s *Server) handleDeleteDay(w http.ResponseWriter, r *http.Request) {
	tripID, dayID, ok := dayParams(w, r)
	if !ok {
		return
	}

	if err := s.days.Delete(r.Context(), tripID, dayID); err != nil {
		writeError(w, err, "day not found")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// dayParams parses the tripID and dayID URL parameters, answering 404 itself
// when either is malformed.
func dayParams(w http.ResponseWriter, r *http.Request) (tripID, dayID uuid.UUID, ok bool) {
	tripID, err := uuidParam(r, "tripID")
	if err != nil {
		writeJSON(w, http.StatusNotFound, notFoundBody("trip not found"))
		return uuid.Nil, uuid.Nil, false
	}
	dayID, err = uuidParam(r, "dayID")
	if err != nil {
		writeJSON(w, http.StatusNotFound, notFoundBody("day not found"))
		return uuid.Nil, uuid.Nil, false
	}
	return tripID, dayID, true
}

// ---- mapping helpers -------------------------------------------------------

// requestToDay converts a DayRequest into a domain.Day with the given IDs
// (uuid.Nil day ID for creates).
func requestToDay(tripID, dayID uuid.UUID, req DayRequest) domain.Day {
	return domain.Day{
		ID:     dayID,
		TripID: tripID,
		Date:   req.Date.Time,
		Title:  req.Title,
		Notes:  req.Notes,
	}
}

// dayToResponse converts a domain.Day into its API representation.
func dayToResponse(d domain.Day) DayResponse {
	return DayResponse{
		ID:        d.ID,
		TripID:    d.TripID,
		Date:      openapi_types.Date{Time: d.Date},
		Title:     d.Title,
		Notes:     d.Notes,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}

// dayPlanToResponse converts a domain.DayPlan into its API representation.
func dayPlanToResponse(plan domain.DayPlan) DayPlanResponse {
	return DayPlanResponse{Day: dayToResponse(plan.Day), Activities: plan.Activities}
}
