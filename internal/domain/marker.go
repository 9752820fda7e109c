package domain

import "github.com/google/uuid"

// Marker is the map representation of an activity with known coordinates.
// It is purely presentational — the only data flowing back from the map is
// a marker-click carrying the ID.
type Marker struct {
	ID        uuid.UUID `json:"id"`
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	Title     string    `json:"title"`
	Category  Category  `json:"category"`
}

// MarkersFromDays collects one marker per activity that has coordinates,
// in itinerary order. Activities without coordinates are skipped.
func MarkersFromDays(days []DayPlan) []Marker {
	markers := []Marker{}
	for _, d := range days {
		for _, a := range d.Activities {
			if !a.HasCoordinates() {
				continue
			}
			markers = append(markers, Marker{
				ID:        a.ID,
				Latitude:  *a.Latitude,
				Longitude: *a.Longitude,
				Title:     a.Name,
				Category:  a.Category,
			})
		}
	}
	return markers
}
