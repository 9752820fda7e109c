package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/MrAssie/reisdagboek/internal/budget"
	"github.com/MrAssie/reisdagboek/internal/domain"
	"github.com/MrAssie/reisdagboek/internal/repo"
)

// BudgetOverview is what the budget screen renders: the derived summary plus
// the raw items it was derived from, newest first.
type BudgetOverview struct {
	Summary budget.Summary      `json:"summary"`
	Items   []domain.BudgetItem `json:"items"`
}

// BudgetService implements business logic for BudgetItem operations and the
// trip budget summary. Every summary is re-derived from the full current item
// collection — there is no cached running total.
type BudgetService struct {
	trips repo.TripRepo
	items repo.BudgetItemRepo
}

// NewBudgetService constructs a BudgetService backed by the provided repos.
func NewBudgetService(trips repo.TripRepo, items repo.BudgetItemRepo) *BudgetService {
	return &BudgetService{trips: trips, items: items}
}

// Overview returns the budget summary and items for a trip.
// Returns domain.ErrNotFound if the trip does not exist.
func (s *BudgetService) Overview(ctx context.Context, tripID uuid.UUID) (BudgetOverview, error) {
	trip, err := s.trips.GetByID(ctx, tripID)
	if err != nil {
		return BudgetOverview{}, fmt.Errorf("service.BudgetService.Overview: %w", err)
	}

	items, err := s.items.ListByTripID(ctx, tripID)
	if err != nil {
		return BudgetOverview{}, fmt.Errorf("service.BudgetService.Overview: %w", err)
	}
	if items == nil {
		items = []domain.BudgetItem{}
	}

	return BudgetOverview{
		Summary: budget.Summarize(trip.TotalBudget, items),
		Items:   items,
	}, nil
}

// CreateItem validates the item, verifies the parent trip exists, then persists.
// Returns domain.ErrValidation if input violates business rules.
// Returns domain.ErrNotFound if the parent trip does not exist.
func (s *BudgetService) CreateItem(ctx context.Context, item domain.BudgetItem) (domain.BudgetItem, error) {
	if _, err := s.trips.GetByID(ctx, item.TripID); err != nil {
		return domain.BudgetItem{}, fmt.Errorf("service.BudgetService.CreateItem: %w", err)
	}
	if err := validateBudgetItem(item); err != nil {
		return domain.BudgetItem{}, err
	}
	result, err := s.items.Create(ctx, item)
	if err != nil {
		return domain.BudgetItem{}, fmt.Errorf("service.BudgetService.CreateItem: %w", err)
	}
	return result, nil
}

// UpdateItem validates and persists changes to an existing budget item.
// Returns domain.ErrValidation for invalid input, domain.ErrNotFound if the
// item does not exist under the given trip.
func (s *BudgetService) UpdateItem(ctx context.Context, item domain.BudgetItem) (domain.BudgetItem, error) {
	if err := validateBudgetItem(item); err != nil {
		return domain.BudgetItem{}, err
	}
	result, err := s.items.Update(ctx, item)
	if err != nil {
		return domain.BudgetItem{}, fmt.Errorf("service.BudgetService.UpdateItem: %w", err)
	}
	return result, nil
}

// TogglePaid flips the paid flag of a budget item and returns the updated record.
// Returns domain.ErrNotFound if the item does not exist under the given trip.
func (s *BudgetService) TogglePaid(ctx context.Context, tripID, itemID uuid.UUID) (domain.BudgetItem, error) {
	item, err := s.items.GetByID(ctx, tripID, itemID)
	if err != nil {
		return domain.BudgetItem{}, fmt.Errorf("service.BudgetService.TogglePaid: %w", err)
	}
	result, err := s.items.SetPaid(ctx, tripID, itemID, !item.Paid)
	if err != nil {
		return domain.BudgetItem{}, fmt.Errorf("service.BudgetService.TogglePaid: %w", err)
	}
	return result, nil
}

// DeleteItem removes a budget item by ID, scoped to the given tripID.
// Returns domain.ErrNotFound if it does not exist under that trip.
func (s *BudgetService) DeleteItem(ctx context.Context, tripID, itemID uuid.UUID) error {
	if err := s.items.Delete(ctx, tripID, itemID); err != nil {
		return fmt.Errorf("service.BudgetService.DeleteItem: %w", err)
	}
	return nil
}

// validateBudgetItem enforces business rules common to both Create and Update.
//   - Name and category must be non-empty.
//   - Amount must not be negative.
func validateBudgetItem(item domain.BudgetItem) error {
	if strings.TrimSpace(item.Name) == "" {
		return fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	if strings.TrimSpace(item.Category) == "" {
		return fmt.Errorf("%w: category is required", domain.ErrValidation)
	}
	if item.Amount.IsNegative() {
		return fmt.Errorf("%w: amount must not be negative", domain.ErrValidation)
	}
	return nil
}
