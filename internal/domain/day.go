package domain

import (
	"time"

	"github.com/google/uuid"
)

// Day represents a single calendar date within a trip.
// Days carry no explicit position — they are ordered by Date ascending.
type Day struct {
	ID        uuid.UUID `json:"id"`
	TripID    uuid.UUID `json:"trip_id"`
	Date      time.Time `json:"date"`
	Title     string    `json:"title"`
	Notes     string    `json:"notes,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// DayPlan is a day together with its activities in itinerary order.
// The Activities slice is always sorted by Activity.Order ascending.
type DayPlan struct {
	Day        Day        `json:"day"`
	Activities []Activity `json:"activities"`
}
