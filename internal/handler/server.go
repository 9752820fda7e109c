// Package handler implements the HTTP handlers for the Reisdagboek API.
// All handlers are methods on Server. Methods are split into domain-specific
// files (trip.go, day.go, activity.go, budget.go, places.go, export.go) but
// all share the same Server struct so they can access its dependencies.
package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/MrAssie/reisdagboek/internal/domain"
	"github.com/MrAssie/reisdagboek/internal/itinerary"
	"github.com/MrAssie/reisdagboek/internal/places"
	"github.com/MrAssie/reisdagboek/internal/service"
)

// TripServicer defines the business operations the trip handlers depend on.
// Defining the interface here (in the consumer package) follows the Go
// convention: "accept interfaces, return concrete types". It lets handler
// tests inject a mock without touching the database or service layer.
type TripServicer interface {
	Create(ctx context.Context, trip domain.Trip) (domain.Trip, error)
	GetItinerary(ctx context.Context, tripID uuid.UUID) (domain.TripItinerary, error)
	List(ctx context.Context, params domain.PaginationParams) ([]domain.TripListItem, int64, error)
	Update(ctx context.Context, trip domain.Trip) (domain.Trip, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// DayServicer defines the business operations the day handlers depend on.
type DayServicer interface {
	Create(ctx context.Context, day domain.Day) (domain.Day, error)
	Update(ctx context.Context, day domain.Day) (domain.Day, error)
	Delete(ctx context.Context, tripID, dayID uuid.UUID) error
}

// ActivityServicer defines the business operations the activity handlers
// depend on, including the drag-and-drop move.
type ActivityServicer interface {
	Create(ctx context.Context, tripID uuid.UUID, activity domain.Activity) (domain.Activity, error)
	Update(ctx context.Context, tripID uuid.UUID, activity domain.Activity) (domain.Activity, error)
	Delete(ctx context.Context, tripID, dayID, activityID uuid.UUID) error
	Move(ctx context.Context, tripID uuid.UUID, mv itinerary.Move) (domain.TripItinerary, error)
}

// BudgetServicer defines the business operations the budget handlers depend on.
type BudgetServicer interface {
	Overview(ctx context.Context, tripID uuid.UUID) (service.BudgetOverview, error)
	CreateItem(ctx context.Context, item domain.BudgetItem) (domain.BudgetItem, error)
	UpdateItem(ctx context.Context, item domain.BudgetItem) (domain.BudgetItem, error)
	TogglePaid(ctx context.Context, tripID, itemID uuid.UUID) (domain.BudgetItem, error)
	DeleteItem(ctx context.Context, tripID, itemID uuid.UUID) error
}

// ExportServicer defines the export operation the export handler depends on.
type ExportServicer interface {
	Export(ctx context.Context, tripID uuid.UUID) ([]domain.ExportRow, error)
}

// PlacesSearcher defines the places search the places handler depends on.
// It is nil when no API key is configured; the handler then answers 503.
type PlacesSearcher interface {
	Search(ctx context.Context, q places.Query) ([]places.Place, error)
}

// Server holds the dependencies of every HTTP handler.
type Server struct {
	trips      TripServicer
	days       DayServicer
	activities ActivityServicer
	budget     BudgetServicer
	export     ExportServicer
	places     PlacesSearcher
	openapi    []byte
}

// NewServer constructs the Server with all its dependencies.
// placesClient may be nil when no Places API key is configured.
func NewServer(trips TripServicer, days DayServicer, activities ActivityServicer,
	budget BudgetServicer, export ExportServicer, placesClient PlacesSearcher, openapi []byte) *Server {
	return &Server{
		trips:      trips,
		days:       days,
		activities: activities,
		budget:     budget,
		export:     export,
		places:     placesClient,
		openapi:    openapi,
	}
}

// Routes returns the chi router with every API route registered.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/healthz", s.handleGetHealth)
	r.Get("/openapi.yaml", s.handleGetOpenAPI)

	r.Route("/trips", func(r chi.Router) {
		r.Get("/", s.handleListTrips)
		r.Post("/", s.handleCreateTrip)

		r.Route("/{tripID}", func(r chi.Router) {
			r.Get("/", s.handleGetTrip)
			r.Put("/", s.handleUpdateTrip)
			r.Delete("/", s.handleDeleteTrip)

			r.Get("/markers", s.handleGetMarkers)
			r.Get("/export", s.handleExportTrip)
			r.Post("/itinerary/move", s.handleMoveActivity)

			r.Route("/days", func(r chi.Router) {
				r.Post("/", s.handleCreateDay)
				r.Put("/{dayID}", s.handleUpdateDay)
				r.Delete("/{dayID}", s.handleDeleteDay)

				r.Route("/{dayID}/activities", func(r chi.Router) {
					r.Post("/", s.handleCreateActivity)
					r.Put("/{activityID}", s.handleUpdateActivity)
					r.Delete("/{activityID}", s.handleDeleteActivity)
				})
			})

			r.Route("/budget", func(r chi.Router) {
				r.Get("/", s.handleGetBudget)
				r.Post("/", s.handleCreateBudgetItem)
				r.Put("/{itemID}", s.handleUpdateBudgetItem)
				r.Delete("/{itemID}", s.handleDeleteBudgetItem)
				r.Post("/{itemID}/toggle-paid", s.handleToggleBudgetItemPaid)
			})
		})
	})

	r.Get("/places/search", s.handleSearchPlaces)

	return r
}

// handleGetHealth handles GET /healthz.
// It returns HTTP 200 with {"status":"ok"} when the server is running.
func (s *Server) handleGetHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleGetOpenAPI serves the embedded OpenAPI document.
func (s *Server) handleGetOpenAPI(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/yaml")
	_, _ = w.Write(s.openapi)
}

// ---- shared plumbing -------------------------------------------------------

// writeJSON encodes v as the response body with the given status code.
// Encoding failures after the header is written can only be logged.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("encode response", "error", err)
	}
}

// decodeJSON strictly decodes the request body into v.
// Unknown fields are rejected so client typos surface as 422s instead of
// silently dropped data.
func decodeJSON(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}

// uuidParam parses the named chi URL parameter as a UUID.
func uuidParam(r *http.Request, name string) (uuid.UUID, error) {
	return uuid.Parse(chi.URLParam(r, name))
}

// queryInt returns the named query parameter as *int, or nil when absent or
// not a number. Pagination treats nil as "use the default".
func queryInt(r *http.Request, name string) *int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return nil
	}
	return &n
}
