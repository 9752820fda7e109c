package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/MrAssie/reisdagboek/internal/domain"
	"github.com/MrAssie/reisdagboek/internal/repo"
)

// dateFormat is the date-only layout used in export rows.
const dateFormat = "2006-01-02"

// ExportService assembles a flat export of one trip's days and activities.
type ExportService struct {
	trips      repo.TripRepo
	days       repo.DayRepo
	activities repo.ActivityRepo
}

// NewExportService constructs an ExportService backed by the provided repos.
func NewExportService(trips repo.TripRepo, days repo.DayRepo, activities repo.ActivityRepo) *ExportService {
	return &ExportService{trips: trips, days: days, activities: activities}
}

// Export returns one ExportRow per activity of the trip, in itinerary order.
// Days with no activities contribute one row with empty activity fields; a
// trip with no days contributes one row with only the trip fields set.
// Returns domain.ErrNotFound if the trip does not exist.
func (s *ExportService) Export(ctx context.Context, tripID uuid.UUID) ([]domain.ExportRow, error) {
	trip, err := s.trips.GetByID(ctx, tripID)
	if err != nil {
		return nil, fmt.Errorf("service.ExportService.Export: %w", err)
	}

	days, err := s.days.ListByTripID(ctx, tripID)
	if err != nil {
		return nil, fmt.Errorf("service.ExportService.Export: %w", err)
	}
	activities, err := s.activities.ListByTripID(ctx, tripID)
	if err != nil {
		return nil, fmt.Errorf("service.ExportService.Export: %w", err)
	}

	base := domain.ExportRow{
		TripID:        trip.ID.String(),
		TripName:      trip.Name,
		TripStartDate: trip.StartDate.Format(dateFormat),
		TripEndDate:   trip.EndDate.Format(dateFormat),
	}

	rows := []domain.ExportRow{}
	for _, plan := range assembleDayPlans(days, activities) {
		dayRow := base
		dayRow.DayDate = plan.Day.Date.Format(dateFormat)
		dayRow.DayTitle = plan.Day.Title

		if len(plan.Activities) == 0 {
			rows = append(rows, dayRow)
			continue
		}
		for _, a := range plan.Activities {
			row := dayRow
			row.ActivityName = a.Name
			row.ActivityCategory = string(a.Category)
			row.ActivityLocation = a.Location
			row.StartTime = a.StartTime
			row.EndTime = a.EndTime
			row.Cost = a.Cost.String()
			row.Currency = a.Currency
			row.Order = a.Order
			rows = append(rows, row)
		}
	}

	if len(rows) == 0 {
		rows = append(rows, base)
	}

	return rows, nil
}
