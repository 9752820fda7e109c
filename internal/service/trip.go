// Package service contains the business logic for the Reisdagboek API.
// Services validate inputs, enforce business rules, and orchestrate repo calls.
// No SQL lives here — services depend on repo interfaces, not implementations.
package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/MrAssie/reisdagboek/internal/domain"
	"github.com/MrAssie/reisdagboek/internal/repo"
)

// TripService implements business logic for Trip operations.
// It holds the days and activities repos as well because the itinerary view
// is assembled from all three resources.
type TripService struct {
	trips      repo.TripRepo
	days       repo.DayRepo
	activities repo.ActivityRepo
}

// NewTripService constructs a TripService backed by the provided repos.
func NewTripService(trips repo.TripRepo, days repo.DayRepo, activities repo.ActivityRepo) *TripService {
	return &TripService{trips: trips, days: days, activities: activities}
}

// Create validates and persists a new trip.
// Returns domain.ErrValidation if input violates business rules.
func (s *TripService) Create(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	if err := validateTrip(trip); err != nil {
		return domain.Trip{}, err
	}
	result, err := s.trips.Create(ctx, trip)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.Create: %w", err)
	}
	return result, nil
}

// GetByID returns a single trip by ID.
func (s *TripService) GetByID(ctx context.Context, id uuid.UUID) (domain.Trip, error) {
	result, err := s.trips.GetByID(ctx, id)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.GetByID: %w", err)
	}
	return result, nil
}

// GetItinerary returns the fully-loaded trip: all days with their activities,
// days ordered by date ascending, activities by their order field.
// This is the authoritative snapshot the ordering engine and the itinerary
// screen work from.
func (s *TripService) GetItinerary(ctx context.Context, tripID uuid.UUID) (domain.TripItinerary, error) {
	trip, err := s.trips.GetByID(ctx, tripID)
	if err != nil {
		return domain.TripItinerary{}, fmt.Errorf("service.TripService.GetItinerary: %w", err)
	}

	days, err := s.days.ListByTripID(ctx, tripID)
	if err != nil {
		return domain.TripItinerary{}, fmt.Errorf("service.TripService.GetItinerary: %w", err)
	}

	activities, err := s.activities.ListByTripID(ctx, tripID)
	if err != nil {
		return domain.TripItinerary{}, fmt.Errorf("service.TripService.GetItinerary: %w", err)
	}

	return domain.TripItinerary{Trip: trip, Days: assembleDayPlans(days, activities)}, nil
}

// List returns one page of trips with their day and budget item counts.
// Always returns a non-nil slice so callers can safely range over it.
func (s *TripService) List(ctx context.Context, params domain.PaginationParams) ([]domain.TripListItem, int64, error) {
	trips, total, err := s.trips.List(ctx, params)
	if err != nil {
		return nil, 0, fmt.Errorf("service.TripService.List: %w", err)
	}
	if trips == nil {
		trips = []domain.TripListItem{}
	}
	return trips, total, nil
}

// Update validates and updates an existing trip.
// Returns domain.ErrValidation for invalid input, domain.ErrNotFound if the
// trip does not exist.
func (s *TripService) Update(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	if err := validateTrip(trip); err != nil {
		return domain.Trip{}, err
	}
	result, err := s.trips.Update(ctx, trip)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.Update: %w", err)
	}
	return result, nil
}

// Delete removes a trip by ID. Days, activities, and budget items owned by
// the trip are removed with it (database cascade).
func (s *TripService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.trips.Delete(ctx, id); err != nil {
		return fmt.Errorf("service.TripService.Delete: %w", err)
	}
	return nil
}

// validateTrip enforces business rules common to both Create and Update.
//   - Name must be non-empty (whitespace-only names are rejected).
//   - EndDate must not be before StartDate.
//   - TotalBudget must not be negative.
func validateTrip(trip domain.Trip) error {
	if strings.TrimSpace(trip.Name) == "" {
		return fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	if trip.EndDate.Before(trip.StartDate) {
		return fmt.Errorf("%w: end_date must not be before start_date", domain.ErrValidation)
	}
	if trip.TotalBudget.IsNegative() {
		return fmt.Errorf("%w: total_budget must not be negative", domain.ErrValidation)
	}
	return nil
}

// assembleDayPlans groups a trip's activities under their days, preserving
// the repo ordering (days by date, activities by order). Every day appears
// even when it has no activities.
func assembleDayPlans(days []domain.Day, activities []domain.Activity) []domain.DayPlan {
	byDay := make(map[uuid.UUID][]domain.Activity, len(days))
	for _, a := range activities {
		byDay[a.DayID] = append(byDay[a.DayID], a)
	}

	plans := make([]domain.DayPlan, len(days))
	for i, d := range days {
		acts := byDay[d.ID]
		if acts == nil {
			acts = []domain.Activity{}
		}
		plans[i] = domain.DayPlan{Day: d, Activities: acts}
	}
	return plans
}
