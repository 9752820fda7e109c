package handler

import (
	"bytes"
	"encoding/csv"
	"net/http"
	"strconv"

	"github.com/MrAssie/reisdagboek/internal/domain"
)

// csvHeaders defines the column names written as the first row of any CSV export.
var csvHeaders = []string{
	"trip_id", "trip_name", "trip_start_date", "trip_end_date",
	"day_date", "day_title",
	"activity_name", "activity_category", "activity_location",
	"start_time", "end_time", "cost", "currency", "order",
}

// handleExportTrip handles GET /trips/{tripID}/export.
// It returns one flat row per activity (days with no activities contribute a
// row of their own). Use ?format=csv to receive CSV; default is JSON.
func (s *Server) handleExportTrip(w http.ResponseWriter, r *http.Request) {
	tripID, err := uuidParam(r, "tripID")
	if err != nil {
		writeJSON(w, http.StatusNotFound, notFoundBody("trip not found"))
		return
	}

	rows, err := s.export.Export(r.Context(), tripID)
	if err != nil {
		writeError(w, err, "trip not found")
		return
	}

	if r.URL.Query().Get("format") == "csv" {
		writeCSV(w, rows)
		return
	}
	writeJSON(w, http.StatusOK, exportRowsToResponse(rows))
}

// writeCSV encodes export rows as CSV with a header row.
func writeCSV(w http.ResponseWriter, rows []domain.ExportRow) {
	var buf bytes.Buffer
	cw := csv.NewWriter(&buf)

	// Writes into a bytes.Buffer never fail; errors are checked at Flush.
	_ = cw.Write(csvHeaders)
	for _, row := range rows {
		_ = cw.Write([]string{
			row.TripID, row.TripName, row.TripStartDate, row.TripEndDate,
			row.DayDate, row.DayTitle,
			row.ActivityName, row.ActivityCategory, row.ActivityLocation,
			row.StartTime, row.EndTime, row.Cost, row.Currency, strconv.Itoa(row.Order),
		})
	}
	cw.Flush()

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="trip-export.csv"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}

// ExportRowResponse is the JSON representation of one export row.
// Empty optional fields are omitted.
type ExportRowResponse struct {
	TripID           string `json:"trip_id"`
	TripName         string `json:"trip_name"`
	TripStartDate    string `json:"trip_start_date"`
	TripEndDate      string `json:"trip_end_date"`
	DayDate          string `json:"day_date,omitempty"`
	DayTitle         string `json:"day_title,omitempty"`
	ActivityName     string `json:"activity_name,omitempty"`
	ActivityCategory string `json:"activity_category,omitempty"`
	ActivityLocation string `json:"activity_location,omitempty"`
	StartTime        string `json:"start_time,omitempty"`
	EndTime          string `json:"end_time,omitempty"`
	Cost             string `json:"cost,omitempty"`
	Currency         string `json:"currency,omitempty"`
	Order            int    `json:"order"`
}

// exportRowsToResponse maps domain rows to their JSON representation.
func exportRowsToResponse(rows []domain.ExportRow) []ExportRowResponse {
	out := make([]ExportRowResponse, len(rows))
	for i, row := range rows {
		out[i] = ExportRowResponse(row)
	}
	return out
}
