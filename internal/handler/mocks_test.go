package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/MrAssie/reisdagboek/internal/domain"
	"github.com/MrAssie/reisdagboek/internal/handler"
	"github.com/MrAssie/reisdagboek/internal/itinerary"
	"github.com/MrAssie/reisdagboek/internal/places"
	"github.com/MrAssie/reisdagboek/internal/service"
)

// Test doubles for the handler-side servicer interfaces.
// Set only the method fields your test needs.

type mockTripServicer struct {
	create       func(ctx context.Context, trip domain.Trip) (domain.Trip, error)
	getItinerary func(ctx context.Context, tripID uuid.UUID) (domain.TripItinerary, error)
	list         func(ctx context.Context, params domain.PaginationParams) ([]domain.TripListItem, int64, error)
	update       func(ctx context.Context, trip domain.Trip) (domain.Trip, error)
	delete       func(ctx context.Context, id uuid.UUID) error
}

func (m *mockTripServicer) Create(ctx context.Context, t domain.Trip) (domain.Trip, error) {
	return m.create(ctx, t)
}
func (m *mockTripServicer) GetItinerary(ctx context.Context, tripID uuid.UUID) (domain.TripItinerary, error) {
	return m.getItinerary(ctx, tripID)
}
func (m *mockTripServicer) List(ctx context.Context, params domain.PaginationParams) ([]domain.TripListItem, int64, error) {
	return m.list(ctx, params)
}
func (m *mockTripServicer) Update(ctx context.Context, t domain.Trip) (domain.Trip, error) {
	return m.update(ctx, t)
}
func (m *mockTripServicer) Delete(ctx context.Context, id uuid.UUID) error {
	return m.delete(ctx, id)
}

var _ handler.TripServicer = (*mockTripServicer)(nil)

type mockDayServicer struct {
	create func(ctx context.Context, day domain.Day) (domain.Day, error)
	update func(ctx context.Context, day domain.Day) (domain.Day, error)
	delete func(ctx context.Context, tripID, dayID uuid.UUID) error
}

func (m *mockDayServicer) Create(ctx context.Context, d domain.Day) (domain.Day, error) {
	return m.create(ctx, d)
}
func (m *mockDayServicer) Update(ctx context.Context, d domain.Day) (domain.Day, error) {
	return m.update(ctx, d)
}
func (m *mockDayServicer) Delete(ctx context.Context, tripID, dayID uuid.UUID) error {
	return m.delete(ctx, tripID, dayID)
}

var _ handler.DayServicer = (*mockDayServicer)(nil)

type mockActivityServicer struct {
	create func(ctx context.Context, tripID uuid.UUID, activity domain.Activity) (domain.Activity, error)
	update func(ctx context.Context, tripID uuid.UUID, activity domain.Activity) (domain.Activity, error)
	delete func(ctx context.Context, tripID, dayID, activityID uuid.UUID) error
	move   func(ctx context.Context, tripID uuid.UUID, mv itinerary.Move) (domain.TripItinerary, error)
}

func (m *mockActivityServicer) Create(ctx context.Context, tripID uuid.UUID, a domain.Activity) (domain.Activity, error) {
	return m.create(ctx, tripID, a)
}
func (m *mockActivityServicer) Update(ctx context.Context, tripID uuid.UUID, a domain.Activity) (domain.Activity, error) {
	return m.update(ctx, tripID, a)
}
func (m *mockActivityServicer) Delete(ctx context.Context, tripID, dayID, activityID uuid.UUID) error {
	return m.delete(ctx, tripID, dayID, activityID)
}
func (m *mockActivityServicer) Move(ctx context.Context, tripID uuid.UUID, mv itinerary.Move) (domain.TripItinerary, error) {
	return m.move(ctx, tripID, mv)
}

var _ handler.ActivityServicer = (*mockActivityServicer)(nil)

type mockBudgetServicer struct {
	overview   func(ctx context.Context, tripID uuid.UUID) (service.BudgetOverview, error)
	createItem func(ctx context.Context, item domain.BudgetItem) (domain.BudgetItem, error)
	updateItem func(ctx context.Context, item domain.BudgetItem) (domain.BudgetItem, error)
	togglePaid func(ctx context.Context, tripID, itemID uuid.UUID) (domain.BudgetItem, error)
	deleteItem func(ctx context.Context, tripID, itemID uuid.UUID) error
}

func (m *mockBudgetServicer) Overview(ctx context.Context, tripID uuid.UUID) (service.BudgetOverview, error) {
	return m.overview(ctx, tripID)
}
func (m *mockBudgetServicer) CreateItem(ctx context.Context, i domain.BudgetItem) (domain.BudgetItem, error) {
	return m.createItem(ctx, i)
}
func (m *mockBudgetServicer) UpdateItem(ctx context.Context, i domain.BudgetItem) (domain.BudgetItem, error) {
	return m.updateItem(ctx, i)
}
func (m *mockBudgetServicer) TogglePaid(ctx context.Context, tripID, itemID uuid.UUID) (domain.BudgetItem, error) {
	return m.togglePaid(ctx, tripID, itemID)
}
func (m *mockBudgetServicer) DeleteItem(ctx context.Context, tripID, itemID uuid.UUID) error {
	return m.deleteItem(ctx, tripID, itemID)
}

var _ handler.BudgetServicer = (*mockBudgetServicer)(nil)

type mockExportServicer struct {
	export func(ctx context.Context, tripID uuid.UUID) ([]domain.ExportRow, error)
}

func (m *mockExportServicer) Export(ctx context.Context, tripID uuid.UUID) ([]domain.ExportRow, error) {
	return m.export(ctx, tripID)
}

var _ handler.ExportServicer = (*mockExportServicer)(nil)

type mockPlacesSearcher struct {
	search func(ctx context.Context, q places.Query) ([]places.Place, error)
}

func (m *mockPlacesSearcher) Search(ctx context.Context, q places.Query) ([]places.Place, error) {
	return m.search(ctx, q)
}

var _ handler.PlacesSearcher = (*mockPlacesSearcher)(nil)

// ---- helpers ---------------------------------------------------------------

// servicers bundles the optional dependencies of a test router. Leave the
// ones your test does not touch nil.
type servicers struct {
	trips      handler.TripServicer
	days       handler.DayServicer
	activities handler.ActivityServicer
	budget     handler.BudgetServicer
	export     handler.ExportServicer
	places     handler.PlacesSearcher
}

// newTestRouter wires a Server the same way main.go does and returns its router.
func newTestRouter(s servicers) http.Handler {
	return handler.NewServer(s.trips, s.days, s.activities, s.budget, s.export, s.places, []byte("openapi: 3.0.3\n")).Routes()
}

// do runs one request through the router and returns the recorder.
func do(t *testing.T, h http.Handler, method, target string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, target, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

// decodeBody unmarshals the recorded JSON response into v.
func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, v any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), v))
}

func tripFixture() domain.Trip {
	return domain.Trip{
		ID:        uuid.New(),
		Name:      "Japan 2026",
		StartDate: time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2026, 4, 14, 0, 0, 0, 0, time.UTC),
		CreatedAt: time.Now().UTC(),
		UpdatedAt: time.Now().UTC(),
	}
}
