package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BudgetItem is a planned or incurred cost entry scoped to a trip.
// It is independent of the day/activity hierarchy — a budget item never
// references a specific activity.
//
// Category is an open string. The UI suggests transport, accommodation,
// food, activities, shopping, and other, but any label is accepted.
type BudgetItem struct {
	ID        uuid.UUID       `json:"id"`
	TripID    uuid.UUID       `json:"trip_id"`
	Name      string          `json:"name"`
	Category  string          `json:"category"`
	Amount    decimal.Decimal `json:"amount"`
	Currency  string          `json:"currency"`
	Paid      bool            `json:"paid"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}
