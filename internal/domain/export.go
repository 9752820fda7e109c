package domain

// ExportRow is a single row in the flat trip export.
// It is a denormalized view: one row per activity, with trip and day fields
// repeated for every activity on that day. Days with no activities yield one
// row with zero values for all activity fields; trips with no days yield one
// row with only the trip fields set.
type ExportRow struct {
	// Trip fields — repeated for every row of the trip.
	TripID        string
	TripName      string
	TripStartDate string // "2006-01-02" formatted date
	TripEndDate   string

	// Day fields — zero values when the trip has no days.
	DayDate  string // "2006-01-02" formatted date
	DayTitle string

	// Activity fields — zero values when the day has no activities.
	ActivityName     string
	ActivityCategory string
	ActivityLocation string
	StartTime        string
	EndTime          string
	Cost             string // decimal string, empty when no activity
	Currency         string
	Order            int
}
