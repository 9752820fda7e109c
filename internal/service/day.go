package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/MrAssie/reisdagboek/internal/domain"
	"github.com/MrAssie/reisdagboek/internal/repo"
)

// DayService implements business logic for Day operations.
// It holds the trips repo because creating a day requires verifying the
// parent trip exists.
type DayService struct {
	trips repo.TripRepo
	days  repo.DayRepo
}

// NewDayService constructs a DayService backed by the provided repos.
func NewDayService(trips repo.TripRepo, days repo.DayRepo) *DayService {
	return &DayService{trips: trips, days: days}
}

// Create validates the day, verifies the parent trip exists, then persists.
// Returns domain.ErrValidation if input violates business rules.
// Returns domain.ErrNotFound if the parent trip does not exist.
func (s *DayService) Create(ctx context.Context, day domain.Day) (domain.Day, error) {
	if _, err := s.trips.GetByID(ctx, day.TripID); err != nil {
		return domain.Day{}, fmt.Errorf("service.DayService.Create: %w", err)
	}
	if err := validateDay(day); err != nil {
		return domain.Day{}, err
	}
	result, err := s.days.Create(ctx, day)
	if err != nil {
		return domain.Day{}, fmt.Errorf("service.DayService.Create: %w", err)
	}
	return result, nil
}

// GetByID returns a single day by ID, scoped to the given tripID.
func (s *DayService) GetByID(ctx context.Context, tripID, dayID uuid.UUID) (domain.Day, error) {
	result, err := s.days.GetByID(ctx, tripID, dayID)
	if err != nil {
		return domain.Day{}, fmt.Errorf("service.DayService.GetByID: %w", err)
	}
	return result, nil
}

// Update validates and persists changes to an existing day.
// Returns domain.ErrValidation for invalid input, domain.ErrNotFound if the
// day does not exist under the given trip.
func (s *DayService) Update(ctx context.Context, day domain.Day) (domain.Day, error) {
	if err := validateDay(day); err != nil {
		return domain.Day{}, err
	}
	result, err := s.days.Update(ctx, day)
	if err != nil {
		return domain.Day{}, fmt.Errorf("service.DayService.Update: %w", err)
	}
	return result, nil
}

// Delete removes a day by ID, scoped to the given tripID. The day's
// activities are removed with it (database cascade).
func (s *DayService) Delete(ctx context.Context, tripID, dayID uuid.UUID) error {
	if err := s.days.Delete(ctx, tripID, dayID); err != nil {
		return fmt.Errorf("service.DayService.Delete: %w", err)
	}
	return nil
}

// validateDay enforces business rules common to both Create and Update.
//   - Title must be non-empty (whitespace-only titles are rejected).
//   - Date must be set.
func validateDay(day domain.Day) error {
	if strings.TrimSpace(day.Title) == "" {
		return fmt.Errorf("%w: title is required", domain.ErrValidation)
	}
	if day.Date.IsZero() {
		return fmt.Errorf("%w: date is required", domain.ErrValidation)
	}
	return nil
}
