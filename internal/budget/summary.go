// Package budget implements the budget aggregation core: pure derivations of
// trip-level spending summaries from a flat budget item collection.
//
// Summaries are recomputed from the full item collection on every read;
// there is no incrementally-maintained running total that could drift from
// the source data.
package budget

import (
	"github.com/shopspring/decimal"

	"github.com/MrAssie/reisdagboek/internal/domain"
)

// Summary is the derived, read-only budget view for one trip.
//
// CategoryTotals is sparse: only categories with at least one item appear.
// It includes unpaid items, so the breakdown reflects planned allocation
// while TotalSpent counts paid items only.
type Summary struct {
	TotalBudget    decimal.Decimal            `json:"total_budget"`
	TotalSpent     decimal.Decimal            `json:"total_spent"`
	Remaining      decimal.Decimal            `json:"remaining"`
	PercentSpent   float64                    `json:"percent_spent"`
	IsOverBudget   bool                       `json:"is_over_budget"`
	CategoryTotals map[string]decimal.Decimal `json:"category_totals"`
}

// Summarize derives a Summary from a trip's target budget and its items.
//
// Amounts are summed as raw decimals with no currency conversion; mixing
// currencies within one trip produces a nonsensical total. This mirrors the
// single-currency-per-trip assumption of the rest of the application.
//
// PercentSpent is capped at 100 for display; Remaining (which may go
// negative) and IsOverBudget carry the uncapped over-budget signal.
func Summarize(totalBudget decimal.Decimal, items []domain.BudgetItem) Summary {
	s := Summary{
		TotalBudget:    totalBudget,
		TotalSpent:     decimal.Zero,
		CategoryTotals: make(map[string]decimal.Decimal),
	}

	for _, item := range items {
		s.CategoryTotals[item.Category] = s.CategoryTotals[item.Category].Add(item.Amount)
		if item.Paid {
			s.TotalSpent = s.TotalSpent.Add(item.Amount)
		}
	}

	s.Remaining = totalBudget.Sub(s.TotalSpent)
	s.IsOverBudget = s.TotalSpent.GreaterThan(totalBudget)

	if totalBudget.IsPositive() {
		pct, _ := s.TotalSpent.Div(totalBudget).Mul(decimal.NewFromInt(100)).Float64()
		s.PercentSpent = min(100, pct)
	}

	return s
}
