package budget_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrAssie/reisdagboek/internal/budget"
	"github.com/MrAssie/reisdagboek/internal/domain"
)

func item(category string, amount int64, paid bool) domain.BudgetItem {
	return domain.BudgetItem{
		Name:     category + " item",
		Category: category,
		Amount:   decimal.NewFromInt(amount),
		Currency: "EUR",
		Paid:     paid,
	}
}

func dec(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

func TestSummarize_PaidItemsOnlyCountTowardSpent(t *testing.T) {
	items := []domain.BudgetItem{
		item("transport", 200, true),
		item("food", 300, false),
		item("accommodation", 100, true),
	}

	s := budget.Summarize(dec(1000), items)

	assert.True(t, s.TotalSpent.Equal(dec(300)), "TotalSpent = %s", s.TotalSpent)
	assert.True(t, s.Remaining.Equal(dec(700)), "Remaining = %s", s.Remaining)
	assert.False(t, s.IsOverBudget)
	assert.InDelta(t, 30, s.PercentSpent, 1e-9)
}

func TestSummarize_OverBudget(t *testing.T) {
	s := budget.Summarize(dec(100), []domain.BudgetItem{item("food", 150, true)})

	assert.True(t, s.TotalSpent.Equal(dec(150)))
	assert.True(t, s.Remaining.Equal(dec(-50)), "Remaining may go negative, got %s", s.Remaining)
	assert.True(t, s.IsOverBudget)
	assert.Equal(t, float64(100), s.PercentSpent, "percent is capped at 100 for display")
}

func TestSummarize_CategoryTotalsIncludeUnpaid(t *testing.T) {
	s := budget.Summarize(dec(500), []domain.BudgetItem{item("food", 50, false)})

	require.Contains(t, s.CategoryTotals, "food")
	assert.True(t, s.CategoryTotals["food"].Equal(dec(50)))
	assert.True(t, s.TotalSpent.IsZero(), "unpaid item must not count as spent")
}

func TestSummarize_CategoryTotalsAreSparse(t *testing.T) {
	s := budget.Summarize(dec(500), []domain.BudgetItem{
		item("food", 20, true),
		item("food", 30, false),
		item("shopping", 10, true),
	})

	require.Len(t, s.CategoryTotals, 2, "categories with no items must be absent")
	assert.True(t, s.CategoryTotals["food"].Equal(dec(50)))
	assert.True(t, s.CategoryTotals["shopping"].Equal(dec(10)))
}

func TestSummarize_ZeroTarget(t *testing.T) {
	s := budget.Summarize(decimal.Zero, []domain.BudgetItem{item("other", 10, true)})

	assert.Equal(t, float64(0), s.PercentSpent, "percent is 0 when there is no target")
	assert.True(t, s.IsOverBudget)
	assert.True(t, s.Remaining.Equal(dec(-10)))
}

func TestSummarize_NoItems(t *testing.T) {
	s := budget.Summarize(dec(250), nil)

	assert.True(t, s.TotalSpent.IsZero())
	assert.True(t, s.Remaining.Equal(dec(250)))
	assert.Empty(t, s.CategoryTotals)
	assert.Equal(t, float64(0), s.PercentSpent)
	assert.False(t, s.IsOverBudget)
}

func TestSummarize_FractionalAmountsAreExact(t *testing.T) {
	a, _ := decimal.NewFromString("0.10")
	b, _ := decimal.NewFromString("0.20")
	items := []domain.BudgetItem{
		{Category: "food", Amount: a, Paid: true},
		{Category: "food", Amount: b, Paid: true},
	}

	s := budget.Summarize(dec(1), items)

	want, _ := decimal.NewFromString("0.30")
	assert.True(t, s.TotalSpent.Equal(want), "decimal addition must be exact, got %s", s.TotalSpent)
	assert.InDelta(t, 30, s.PercentSpent, 1e-9)
}

func TestSummarize_Idempotent(t *testing.T) {
	items := []domain.BudgetItem{
		item("transport", 75, true),
		item("food", 25, false),
	}

	first := budget.Summarize(dec(200), items)
	second := budget.Summarize(dec(200), items)

	assert.Equal(t, first, second, "pure function: identical inputs, identical output")
}
