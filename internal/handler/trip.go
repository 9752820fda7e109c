package handler

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	openapi_types "github.com/oapi-codegen/runtime/types"
	"github.com/shopspring/decimal"

	"github.com/MrAssie/reisdagboek/internal/domain"
)

// TripRequest is the body of POST /trips and PUT /trips/{tripID}.
// Dates are date-only ("2006-01-02").
type TripRequest struct {
	Name        string             `json:"name"`
	Description string             `json:"description,omitempty"`
	StartDate   openapi_types.Date `json:"start_date"`
	EndDate     openapi_types.Date `json:"end_date"`
	TotalBudget decimal.Decimal    `json:"total_budget"`
	CoverImage  string             `json:"cover_image,omitempty"`
}

// TripResponse is the trip representation returned by every trip endpoint.
type TripResponse struct {
	ID          uuid.UUID          `json:"id"`
	Name        string             `json:"name"`
	Description string             `json:"description,omitempty"`
	StartDate   openapi_types.Date `json:"start_date"`
	EndDate     openapi_types.Date `json:"end_date"`
	TotalBudget decimal.Decimal    `json:"total_budget"`
	CoverImage  string             `json:"cover_image,omitempty"`
	CreatedAt   time.Time          `json:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at"`
}

// TripListItemResponse adds the owned-entity counts to a trip in the list view.
type TripListItemResponse struct {
	TripResponse
	DayCount        int `json:"day_count"`
	BudgetItemCount int `json:"budget_item_count"`
}

// Pagination echoes the applied page parameters plus the unpaged total.
type Pagination struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
}

// TripListResponse is the body of GET /trips.
type TripListResponse struct {
	Data       []TripListItemResponse `json:"data"`
	Pagination Pagination             `json:"pagination"`
}

// ItineraryResponse is the fully-loaded trip returned by GET /trips/{tripID}
// and POST /trips/{tripID}/itinerary/move.
type ItineraryResponse struct {
	Trip TripResponse      `json:"trip"`
	Days []DayPlanResponse `json:"days"`
}

// handleCreateTrip handles POST /trips.
func (s *Server) handleCreateTrip(w http.ResponseWriter, r *http.Request) {
	var req TripRequest
	if err := decodeJSON(r, &req); err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, requestBody("invalid request body: "+err.Error()))
		return
	}

	created, err := s.trips.Create(r.Context(), requestToTrip(uuid.Nil, req))
	if err != nil {
		writeError(w, err, "trip not found")
		return
	}

	writeJSON(w, http.StatusCreated, tripToResponse(created))
}

// handleListTrips handles GET /trips.
// Supports ?page= and ?limit= query parameters (defaults: page=1, limit=20, max=100).
func (s *Server) handleListTrips(w http.ResponseWriter, r *http.Request) {
	params := domain.NewPaginationParams(queryInt(r, "page"), queryInt(r, "limit"))

	trips, total, err := s.trips.List(r.Context(), params)
	if err != nil {
		writeError(w, err, "")
		return
	}

	data := make([]TripListItemResponse, len(trips))
	for i, t := range trips {
		data[i] = TripListItemResponse{
			TripResponse:    tripToResponse(t.Trip),
			DayCount:        t.DayCount,
			BudgetItemCount: t.BudgetItemCount,
		}
	}
	writeJSON(w, http.StatusOK, TripListResponse{
		Data:       data,
		Pagination: Pagination{Page: params.Page, Limit: params.Limit, Total: total},
	})
}

// handleGetTrip handles GET /trips/{tripID}.
// The response is the full itinerary: every day with its activities, days
// ordered by date ascending, activities by order ascending.
func (s *Server) handleGetTrip(w http.ResponseWriter, r *http.Request) {
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

	writeJSON(w, http.StatusOK, itineraryToResponse(it))
}

// handleUpdateTrip handles PUT /trips/{tripID}.
func (s *Server) handleUpdateTrip(w http.ResponseWriter, r *http.Request) {
	tripID, err := uuidParam(r, "tripID")
	if err != nil {
		writeJSON(w, http.StatusNotFound, notFoundBody("trip not found"))
		return
	}

	var req TripRequest
	if err := decodeJSON(r, &req); err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, requestBody("invalid request body: "+err.Error()))
		return
	}

	updated, err := s.trips.Update(r.Context(), requestToTrip(tripID, req))
	if err != nil {
		writeError(w, err, "trip not found")
		return
	}

	writeJSON(w, http.StatusOK, tripToResponse(updated))
}

// handleDeleteTrip handles DELETE /trips/{tripID}.
func (s *Server) handleDeleteTrip(w http.ResponseWriter, r *http.Request) {
	tripID, err := uuidParam(r, "tripID")
	if err != nil {
		writeJSON(w, http.StatusNotFound, notFoundBody("trip not found"))
		return
	}

	if err := s.trips.Delete(r.Context(), tripID); err != nil {
		writeError(w, err, "trip not found")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ---- mapping helpers -------------------------------------------------------

// requestToTrip converts a TripRequest into a domain.Trip with the given ID
// (uuid.Nil for creates).
func requestToTrip(id uuid.UUID, req TripRequest) domain.Trip {
	return domain.Trip{
		ID:          id,
		Name:        req.Name,
		Description: req.Description,
		StartDate:   req.StartDate.Time,
		EndDate:     req.EndDate.Time,
		TotalBudget: req.TotalBudget,
		CoverImage:  req.CoverImage,
	}
}

// tripToResponse converts a domain.Trip into its API representation.
func tripToResponse(t domain.Trip) TripResponse {
	return TripResponse{
		ID:          t.ID,
		Name:        t.Name,
		Description: t.Description,
		StartDate:   openapi_types.Date{Time: t.StartDate},
		EndDate:     openapi_types.Date{Time: t.EndDate},
		TotalBudget: t.TotalBudget,
		CoverImage:  t.CoverImage,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

// itineraryToResponse converts a domain.TripItinerary into its API representation.
func itineraryToResponse(it domain.TripItinerary) ItineraryResponse {
	days := make([]DayPlanResponse, len(it.Days))
	for i, plan := range it.Days {
		days[i] = dayPlanToResponse(plan)
	}
	return ItineraryResponse{Trip: tripToResponse(it.Trip), Days: days}
}
