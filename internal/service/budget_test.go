package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrAssie/reisdagboek/internal/domain"
	"github.com/MrAssie/reisdagboek/internal/service"
)

func validBudgetItem(tripID uuid.UUID) domain.BudgetItem {
	return domain.BudgetItem{
		TripID:   tripID,
		Name:     "Hostel Tokyo",
		Category: "accommodation",
		Amount:   decimal.NewFromInt(200),
		Currency: "EUR",
		Paid:     true,
	}
}

func budgetTripRepo(totalBudget decimal.Decimal) *mockTripRepo {
	return &mockTripRepo{
		getByID: func(_ context.Context, id uuid.UUID) (domain.Trip, error) {
			return domain.Trip{ID: id, TotalBudget: totalBudget}, nil
		},
	}
}

// ---- Overview tests --------------------------------------------------------

func TestBudgetService_Overview_SummarizesItems(t *testing.T) {
	tripID := uuid.New()
	items := &mockBudgetItemRepo{
		listByTripID: func(_ context.Context, _ uuid.UUID) ([]domain.BudgetItem, error) {
			return []domain.BudgetItem{
				{Name: "Hostel", Category: "accommodation", Amount: decimal.NewFromInt(200), Paid: true},
				{Name: "Flight", Category: "transport", Amount: decimal.NewFromInt(300), Paid: false},
			}, nil
		},
	}
	svc := service.NewBudgetService(budgetTripRepo(decimal.NewFromInt(1000)), items)

	got, err := svc.Overview(context.Background(), tripID)

	require.NoError(t, err)
	// Only the paid hostel counts as spent; the unpaid flight still shows up
	// in its category total.
	assert.True(t, got.Summary.TotalSpent.Equal(decimal.NewFromInt(200)))
	assert.True(t, got.Summary.Remaining.Equal(decimal.NewFromInt(800)))
	assert.True(t, got.Summary.CategoryTotals["transport"].Equal(decimal.NewFromInt(300)))
	assert.Len(t, got.Items, 2)
}

func TestBudgetService_Overview_NoItems(t *testing.T) {
	items := &mockBudgetItemRepo{
		listByTripID: func(_ context.Context, _ uuid.UUID) ([]domain.BudgetItem, error) {
			return nil, nil
		},
	}
	svc := service.NewBudgetService(budgetTripRepo(decimal.NewFromInt(500)), items)

	got, err := svc.Overview(context.Background(), uuid.New())

	require.NoError(t, err)
	require.NotNil(t, got.Items)
	assert.Empty(t, got.Items)
	assert.True(t, got.Summary.Remaining.Equal(decimal.NewFromInt(500)))
	assert.False(t, got.Summary.IsOverBudget)
}

func TestBudgetService_Overview_TripNotFound(t *testing.T) {
	trips := &mockTripRepo{
		getByID: func(_ context.Context, _ uuid.UUID) (domain.Trip, error) {
			return domain.Trip{}, domain.ErrNotFound
		},
	}
	svc := service.NewBudgetService(trips, nil)

	_, err := svc.Overview(context.Background(), uuid.New())

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ---- CreateItem / UpdateItem tests -----------------------------------------

func TestBudgetService_CreateItem_Valid(t *testing.T) {
	items := &mockBudgetItemRepo{
		create: func(_ context.Context, i domain.BudgetItem) (domain.BudgetItem, error) { return i, nil },
	}
	svc := service.NewBudgetService(budgetTripRepo(decimal.Zero), items)

	got, err := svc.CreateItem(context.Background(), validBudgetItem(uuid.New()))

	require.NoError(t, err)
	assert.Equal(t, "Hostel Tokyo", got.Name)
}

func TestBudgetService_CreateItem_TripNotFound(t *testing.T) {
	trips := &mockTripRepo{
		getByID: func(_ context.Context, _ uuid.UUID) (domain.Trip, error) {
			return domain.Trip{}, domain.ErrNotFound
		},
	}
	svc := service.NewBudgetService(trips, nil)

	_, err := svc.CreateItem(context.Background(), validBudgetItem(uuid.New()))

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestBudgetService_CreateItem_Invalid(t *testing.T) {
	svc := service.NewBudgetService(budgetTripRepo(decimal.Zero), nil)

	for name, mutate := range map[string]func(*domain.BudgetItem){
		"missing name":     func(i *domain.BudgetItem) { i.Name = " " },
		"missing category": func(i *domain.BudgetItem) { i.Category = "" },
		"negative amount":  func(i *domain.BudgetItem) { i.Amount = decimal.NewFromInt(-10) },
	} {
		t.Run(name, func(t *testing.T) {
			item := validBudgetItem(uuid.New())
			mutate(&item)

			_, err := svc.CreateItem(context.Background(), item)

			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}

// ---- TogglePaid tests ------------------------------------------------------

func TestBudgetService_TogglePaid_Flips(t *testing.T) {
	var setTo *bool
	items := &mockBudgetItemRepo{
		getByID: func(_ context.Context, tripID, itemID uuid.UUID) (domain.BudgetItem, error) {
			return domain.BudgetItem{ID: itemID, TripID: tripID, Paid: true}, nil
		},
		setPaid: func(_ context.Context, tripID, itemID uuid.UUID, paid bool) (domain.BudgetItem, error) {
			setTo = &paid
			return domain.BudgetItem{ID: itemID, TripID: tripID, Paid: paid}, nil
		},
	}
	svc := service.NewBudgetService(nil, items)

	got, err := svc.TogglePaid(context.Background(), uuid.New(), uuid.New())

	require.NoError(t, err)
	require.NotNil(t, setTo)
	assert.False(t, *setTo, "a paid item should be set to unpaid")
	assert.False(t, got.Paid)
}

func TestBudgetService_TogglePaid_NotFound(t *testing.T) {
	items := &mockBudgetItemRepo{
		getByID: func(_ context.Context, _, _ uuid.UUID) (domain.BudgetItem, error) {
			return domain.BudgetItem{}, domain.ErrNotFound
		},
	}
	svc := service.NewBudgetService(nil, items)

	_, err := svc.TogglePaid(context.Background(), uuid.New(), uuid.New())

	assert.ErrorIs(t, err, domain.ErrNotFound)
}
