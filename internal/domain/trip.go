// Package domain contains the core data types for the Reisdagboek application.
// This package has no HTTP or database dependencies and is imported by every
// other internal package (itinerary, budget, repo, service, handler).
package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Trip represents a single planned journey.
// A trip is the top-level aggregate; days and budget items belong to a trip
// and are deleted with it.
type Trip struct {
	ID          uuid.UUID       `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	StartDate   time.Time       `json:"start_date"`
	EndDate     time.Time       `json:"end_date"`
	TotalBudget decimal.Decimal `json:"total_budget"`
	CoverImage  string          `json:"cover_image,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// TripListItem is a Trip plus the owned-entity counts shown on the trip
// overview screen. Counts are computed by the repo in the list query.
type TripListItem struct {
	Trip
	DayCount        int `json:"day_count"`
	BudgetItemCount int `json:"budget_item_count"`
}

// TripItinerary is the fully-loaded view of a trip: every day with its
// activities, days ordered by date ascending, activities by their order field.
// This is the snapshot the ordering engine operates on and the view the
// itinerary screen renders wholesale after every mutation.
type TripItinerary struct {
	Trip Trip      `json:"trip"`
	Days []DayPlan `json:"days"`
}
