package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/MrAssie/reisdagboek/internal/domain"
	"github.com/MrAssie/reisdagboek/internal/itinerary"
	"github.com/MrAssie/reisdagboek/internal/repo"
)

// ActivityService implements business logic for Activity operations,
// including the drag-and-drop move flow backed by the ordering engine.
type ActivityService struct {
	trips      repo.TripRepo
	days       repo.DayRepo
	activities repo.ActivityRepo
}

// NewActivityService constructs an ActivityService backed by the provided repos.
func NewActivityService(trips repo.TripRepo, days repo.DayRepo, activities repo.ActivityRepo) *ActivityService {
	return &ActivityService{trips: trips, days: days, activities: activities}
}

// Create validates the activity, verifies the parent day belongs to the given
// trip, then persists it at the end of the day's sequence. New activities
// always append; reordering is a separate Move operation.
// Returns domain.ErrValidation for invalid input, domain.ErrNotFound if the
// day does not exist under the given trip.
func (s *ActivityService) Create(ctx context.Context, tripID uuid.UUID, activity domain.Activity) (domain.Activity, error) {
	if _, err := s.days.GetByID(ctx, tripID, activity.DayID); err != nil {
		return domain.Activity{}, fmt.Errorf("service.ActivityService.Create: %w", err)
	}
	if err := validateActivity(activity); err != nil {
		return domain.Activity{}, err
	}

	count, err := s.activities.CountByDayID(ctx, activity.DayID)
	if err != nil {
		return domain.Activity{}, fmt.Errorf("service.ActivityService.Create: %w", err)
	}
	activity.Order = count

	result, err := s.activities.Create(ctx, activity)
	if err != nil {
		return domain.Activity{}, fmt.Errorf("service.ActivityService.Create: %w", err)
	}
	return result, nil
}

// GetByID returns a single activity, scoped to the given trip and day.
func (s *ActivityService) GetByID(ctx context.Context, tripID, dayID, activityID uuid.UUID) (domain.Activity, error) {
	if _, err := s.days.GetByID(ctx, tripID, dayID); err != nil {
		return domain.Activity{}, fmt.Errorf("service.ActivityService.GetByID: %w", err)
	}
	result, err := s.activities.GetByID(ctx, dayID, activityID)
	if err != nil {
		return domain.Activity{}, fmt.Errorf("service.ActivityService.GetByID: %w", err)
	}
	return result, nil
}

// Update validates and persists changes to an activity's descriptive fields.
// Day membership and order are untouched — moving is Move's job.
// Returns domain.ErrValidation for invalid input, domain.ErrNotFound if the
// day or activity does not exist under the given trip.
func (s *ActivityService) Update(ctx context.Context, tripID uuid.UUID, activity domain.Activity) (domain.Activity, error) {
	if _, err := s.days.GetByID(ctx, tripID, activity.DayID); err != nil {
		return domain.Activity{}, fmt.Errorf("service.ActivityService.Update: %w", err)
	}
	if err := validateActivity(activity); err != nil {
		return domain.Activity{}, err
	}
	result, err := s.activities.Update(ctx, activity)
	if err != nil {
		return domain.Activity{}, fmt.Errorf("service.ActivityService.Update: %w", err)
	}
	return result, nil
}

// Delete removes an activity and re-densifies the remaining order values of
// its day, so the 0..n-1 invariant survives deletions from the middle of the
// sequence.
// Returns domain.ErrNotFound if the day or activity does not exist under the
// given trip.
func (s *ActivityService) Delete(ctx context.Context, tripID, dayID, activityID uuid.UUID) error {
	day, err := s.days.GetByID(ctx, tripID, dayID)
	if err != nil {
		return fmt.Errorf("service.ActivityService.Delete: %w", err)
	}

	if err := s.activities.Delete(ctx, dayID, activityID); err != nil {
		return fmt.Errorf("service.ActivityService.Delete: %w", err)
	}

	remaining, err := s.activities.ListByDayID(ctx, dayID)
	if err != nil {
		return fmt.Errorf("service.ActivityService.Delete: %w", err)
	}

	changes := itinerary.Densify(domain.DayPlan{Day: day, Activities: remaining})
	if err := s.activities.Reorder(ctx, changes); err != nil {
		return fmt.Errorf("service.ActivityService.Delete: %w", err)
	}
	return nil
}

// Move applies a drag-and-drop move to the trip's itinerary and commits the
// resulting change list as one batch write.
//
// The returned itinerary is the engine's computed state, not a re-fetch: the
// batch either fully succeeded (so the computed state is authoritative) or
// fully failed (in which case an error is returned and the caller should
// discard its view and re-fetch).
//
// Returns itinerary.ErrInvalidPosition if the move references an unknown day
// or an out-of-range index, domain.ErrNotFound if the trip does not exist or
// an activity in the change list was concurrently deleted.
func (s *ActivityService) Move(ctx context.Context, tripID uuid.UUID, mv itinerary.Move) (domain.TripItinerary, error) {
	trip, err := s.trips.GetByID(ctx, tripID)
	if err != nil {
		return domain.TripItinerary{}, fmt.Errorf("service.ActivityService.Move: %w", err)
	}

	days, err := s.days.ListByTripID(ctx, tripID)
	if err != nil {
		return domain.TripItinerary{}, fmt.Errorf("service.ActivityService.Move: %w", err)
	}
	activities, err := s.activities.ListByTripID(ctx, tripID)
	if err != nil {
		return domain.TripItinerary{}, fmt.Errorf("service.ActivityService.Move: %w", err)
	}

	plans, changes, err := itinerary.ApplyMove(assembleDayPlans(days, activities), mv)
	if err != nil {
		return domain.TripItinerary{}, fmt.Errorf("service.ActivityService.Move: %w", err)
	}

	if err := s.activities.Reorder(ctx, changes); err != nil {
		return domain.TripItinerary{}, fmt.Errorf("service.ActivityService.Move: %w", err)
	}

	return domain.TripItinerary{Trip: trip, Days: plans}, nil
}

// validateActivity enforces business rules common to both Create and Update.
//   - Name must be non-empty (whitespace-only names are rejected).
//   - Cost must not be negative.
//   - Coordinates must come in pairs.
func validateActivity(activity domain.Activity) error {
	if strings.TrimSpace(activity.Name) == "" {
		return fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	if activity.Cost.IsNegative() {
		return fmt.Errorf("%w: cost must not be negative", domain.ErrValidation)
	}
	if (activity.Latitude == nil) != (activity.Longitude == nil) {
		return fmt.Errorf("%w: latitude and longitude must be set together", domain.ErrValidation)
	}
	return nil
}
