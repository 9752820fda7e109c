package service_test

import (
	"context"

	"github.com/google/uuid"

	"github.com/MrAssie/reisdagboek/internal/domain"
	"github.com/MrAssie/reisdagboek/internal/itinerary"
	"github.com/MrAssie/reisdagboek/internal/repo"
)

// Hand-written test doubles for the repo interfaces. Each method is a
// function field — set only the ones your test needs.

type mockTripRepo struct {
	create  func(ctx context.Context, trip domain.Trip) (domain.Trip, error)
	getByID func(ctx context.Context, id uuid.UUID) (domain.Trip, error)
	list    func(ctx context.Context, params domain.PaginationParams) ([]domain.TripListItem, int64, error)
	update  func(ctx context.Context, trip domain.Trip) (domain.Trip, error)
	delete  func(ctx context.Context, id uuid.UUID) error
}

func (m *mockTripRepo) Create(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	return m.create(ctx, trip)
}
func (m *mockTripRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.Trip, error) {
	return m.getByID(ctx, id)
}
func (m *mockTripRepo) List(ctx context.Context, params domain.PaginationParams) ([]domain.TripListItem, int64, error) {
	return m.list(ctx, params)
}
func (m *mockTripRepo) Update(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	return m.update(ctx, trip)
}
func (m *mockTripRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return m.delete(ctx, id)
}

var _ repo.TripRepo = (*mockTripRepo)(nil)

type mockDayRepo struct {
	create       func(ctx context.Context, day domain.Day) (domain.Day, error)
	getByID      func(ctx context.Context, tripID, dayID uuid.UUID) (domain.Day, error)
	listByTripID func(ctx context.Context, tripID uuid.UUID) ([]domain.Day, error)
	update       func(ctx context.Context, day domain.Day) (domain.Day, error)
	delete       func(ctx context.Context, tripID, dayID uuid.UUID) error
}

func (m *mockDayRepo) Create(ctx context.Context, day domain.Day) (domain.Day, error) {
	return m.create(ctx, day)
}
func (m *mockDayRepo) GetByID(ctx context.Context, tripID, dayID uuid.UUID) (domain.Day, error) {
	return m.getByID(ctx, tripID, dayID)
}
func (m *mockDayRepo) ListByTripID(ctx context.Context, tripID uuid.UUID) ([]domain.Day, error) {
	return m.listByTripID(ctx, tripID)
}
func (m *mockDayRepo) Update(ctx context.Context, day domain.Day) (domain.Day, error) {
	return m.update(ctx, day)
}
func (m *mockDayRepo) Delete(ctx context.Context, tripID, dayID uuid.UUID) error {
	return m.delete(ctx, tripID, dayID)
}

var _ repo.DayRepo = (*mockDayRepo)(nil)

type mockActivityRepo struct {
	create       func(ctx context.Context, activity domain.Activity) (domain.Activity, error)
	getByID      func(ctx context.Context, dayID, activityID uuid.UUID) (domain.Activity, error)
	listByDayID  func(ctx context.Context, dayID uuid.UUID) ([]domain.Activity, error)
	listByTripID func(ctx context.Context, tripID uuid.UUID) ([]domain.Activity, error)
	countByDayID func(ctx context.Context, dayID uuid.UUID) (int, error)
	update       func(ctx context.Context, activity domain.Activity) (domain.Activity, error)
	delete       func(ctx context.Context, dayID, activityID uuid.UUID) error
	reorder      func(ctx context.Context, changes []itinerary.Change) error
}

func (m *mockActivityRepo) Create(ctx context.Context, activity domain.Activity) (domain.Activity, error) {
	return m.create(ctx, activity)
}
func (m *mockActivityRepo) GetByID(ctx context.Context, dayID, activityID uuid.UUID) (domain.Activity, error) {
	return m.getByID(ctx, dayID, activityID)
}
func (m *mockActivityRepo) ListByDayID(ctx context.Context, dayID uuid.UUID) ([]domain.Activity, error) {
	return m.listByDayID(ctx, dayID)
}
func (m *mockActivityRepo) ListByTripID(ctx context.Context, tripID uuid.UUID) ([]domain.Activity, error) {
	return m.listByTripID(ctx, tripID)
}
func (m *mockActivityRepo) CountByDayID(ctx context.Context, dayID uuid.UUID) (int, error) {
	return m.countByDayID(ctx, dayID)
}
func (m *mockActivityRepo) Update(ctx context.Context, activity domain.Activity) (domain.Activity, error) {
	return m.update(ctx, activity)
}
func (m *mockActivityRepo) Delete(ctx context.Context, dayID, activityID uuid.UUID) error {
	return m.delete(ctx, dayID, activityID)
}
func (m *mockActivityRepo) Reorder(ctx context.Context, changes []itinerary.Change) error {
	return m.reorder(ctx, changes)
}

var _ repo.ActivityRepo = (*mockActivityRepo)(nil)

type mockBudgetItemRepo struct {
	create       func(ctx context.Context, item domain.BudgetItem) (domain.BudgetItem, error)
	getByID      func(ctx context.Context, tripID, itemID uuid.UUID) (domain.BudgetItem, error)
	listByTripID func(ctx context.Context, tripID uuid.UUID) ([]domain.BudgetItem, error)
	update       func(ctx context.Context, item domain.BudgetItem) (domain.BudgetItem, error)
	setPaid      func(ctx context.Context, tripID, itemID uuid.UUID, paid bool) (domain.BudgetItem, error)
	delete       func(ctx context.Context, tripID, itemID uuid.UUID) error
}

func (m *mockBudgetItemRepo) Create(ctx context.Context, item domain.BudgetItem) (domain.BudgetItem, error) {
	return m.create(ctx, item)
}
func (m *mockBudgetItemRepo) GetByID(ctx context.Context, tripID, itemID uuid.UUID) (domain.BudgetItem, error) {
	return m.getByID(ctx, tripID, itemID)
}
func (m *mockBudgetItemRepo) ListByTripID(ctx context.Context, tripID uuid.UUID) ([]domain.BudgetItem, error) {
	return m.listByTripID(ctx, tripID)
}
func (m *mockBudgetItemRepo) Update(ctx context.Context, item domain.BudgetItem) (domain.BudgetItem, error) {
	return m.update(ctx, item)
}
func (m *mockBudgetItemRepo) SetPaid(ctx context.Context, tripID, itemID uuid.UUID, paid bool) (domain.BudgetItem, error) {
	return m.setPaid(ctx, tripID, itemID, paid)
}
func (m *mockBudgetItemRepo) Delete(ctx context.Context, tripID, itemID uuid.UUID) error {
	return m.delete(ctx, tripID, itemID)
}

var _ repo.BudgetItemRepo = (*mockBudgetItemRepo)(nil)
