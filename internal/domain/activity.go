package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Category classifies an activity. The set is closed; unknown values fall
// back to CategorySightseeing (see ParseCategory).
type Category string

const (
	CategorySightseeing   Category = "sightseeing"
	CategoryFood          Category = "food"
	CategoryTransport     Category = "transport"
	CategoryShopping      Category = "shopping"
	CategoryAccommodation Category = "accommodation"
	CategoryCulture       Category = "culture"
	CategoryNature        Category = "nature"
)

// categories is the set of valid Category values.
var categories = map[Category]bool{
	CategorySightseeing:   true,
	CategoryFood:          true,
	CategoryTransport:     true,
	CategoryShopping:      true,
	CategoryAccommodation: true,
	CategoryCulture:       true,
	CategoryNature:        true,
}

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	return categories[c]
}

// ParseCategory maps a raw string to a Category.
// Unknown or empty values fall back to CategorySightseeing rather than
// erroring, so imported or hand-edited data never blocks a screen.
func ParseCategory(s string) Category {
	c := Category(s)
	if c.Valid() {
		return c
	}
	return CategorySightseeing
}

// Activity is a single planned item (sight, meal, transit leg, ...) within a
// day. Order is its zero-based position among the day's activities; the
// ordering engine keeps the set of Order values for a day dense (0..n-1).
//
// All location fields are optional enrichment from the places search — the
// rest of the system never depends on them being present.
type Activity struct {
	ID          uuid.UUID       `json:"id"`
	DayID       uuid.UUID       `json:"day_id"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Location    string          `json:"location,omitempty"`
	Address     string          `json:"address,omitempty"`
	Latitude    *float64        `json:"latitude,omitempty"`
	Longitude   *float64        `json:"longitude,omitempty"`
	PlaceID     string          `json:"place_id,omitempty"`
	StartTime   string          `json:"start_time,omitempty"` // "HH:MM" time-of-day, free-form
	EndTime     string          `json:"end_time,omitempty"`
	Category    Category        `json:"category"`
	Cost        decimal.Decimal `json:"cost"`
	Currency    string          `json:"currency"`
	PhotoURL    string          `json:"photo_url,omitempty"`
	Rating      *float64        `json:"rating,omitempty"`
	Order       int             `json:"order"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// HasCoordinates reports whether the activity can be placed on a map.
func (a Activity) HasCoordinates() bool {
	return a.Latitude != nil && a.Longitude != nil
}
