package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/MrAssie/reisdagboek/internal/domain"
)

// BudgetItemRepo defines the persistence operations for BudgetItems.
// All operations are scoped by tripID to enforce ownership.
type BudgetItemRepo interface {
	// Create inserts a new budget item and returns the persisted record.
	Create(ctx context.Context, item domain.BudgetItem) (domain.BudgetItem, error)

	// GetByID retrieves a single budget item, scoped to the given tripID.
	// Returns domain.ErrNotFound if no item with that ID exists under that trip.
	GetByID(ctx context.Context, tripID, itemID uuid.UUID) (domain.BudgetItem, error)

	// ListByTripID returns all budget items for a trip, newest first.
	ListByTripID(ctx context.Context, tripID uuid.UUID) ([]domain.BudgetItem, error)

	// Update overwrites the mutable fields of a budget item, scoped to the
	// given tripID. Returns domain.ErrNotFound if it does not exist.
	Update(ctx context.Context, item domain.BudgetItem) (domain.BudgetItem, error)

	// SetPaid updates only the paid flag, scoped to the given tripID, and
	// returns the updated record. Returns domain.ErrNotFound if it does not exist.
	SetPaid(ctx context.Context, tripID, itemID uuid.UUID, paid bool) (domain.BudgetItem, error)

	// Delete removes a budget item by ID, scoped to the given tripID.
	// Returns domain.ErrNotFound if it does not exist under that trip.
	Delete(ctx context.Context, tripID, itemID uuid.UUID) error
}

// pgBudgetItemRepo is the Postgres implementation of BudgetItemRepo.
type pgBudgetItemRepo struct {
	db db
}

// NewBudgetItemRepo constructs a BudgetItemRepo backed by the provided db connection.
// In production pass *pgxpool.Pool; in tests pass a pgx.Tx for rollback isolation.
func NewBudgetItemRepo(db db) BudgetItemRepo {
	return &pgBudgetItemRepo{db: db}
}

const budgetItemColumns = `id, trip_id, name, category, amount, currency, paid, created_at, updated_at`

func (r *pgBudgetItemRepo) Create(ctx context.Context, item domain.BudgetItem) (domain.BudgetItem, error) {
	const q = `
		INSERT INTO budget_items (trip_id, name, category, amount, currency, paid)
		VALUES (@trip_id, @name, @category, @amount, @currency, @paid)
		RETURNING ` + budgetItemColumns

	args := pgx.NamedArgs{
		"trip_id":  item.TripID,
		"name":     item.Name,
		"category": item.Category,
		"amount":   item.Amount.String(),
		"currency": item.Currency,
		"paid":     item.Paid,
	}

	result, err := scanBudgetItem(r.db.QueryRow(ctx, q, args))
	if err != nil {
		return domain.BudgetItem{}, fmt.Errorf("repo.BudgetItemRepo.Create: %w", err)
	}
	return result, nil
}

func (r *pgBudgetItemRepo) GetByID(ctx context.Context, tripID, itemID uuid.UUID) (domain.BudgetItem, error) {
	const q = `SELECT ` + budgetItemColumns + ` FROM budget_items WHERE id = @id AND trip_id = @trip_id`

	result, err := scanBudgetItem(r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": itemID, "trip_id": tripID}))
	if err != nil {
		return domain.BudgetItem{}, fmt.Errorf("repo.BudgetItemRepo.GetByID: %w", err)
	}
	return result, nil
}

func (r *pgBudgetItemRepo) ListByTripID(ctx context.Context, tripID uuid.UUID) ([]domain.BudgetItem, error) {
	const q = `
		SELECT ` + budgetItemColumns + `
		FROM budget_items
		WHERE trip_id = @trip_id
		ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"trip_id": tripID})
	if err != nil {
		return nil, fmt.Errorf("repo.BudgetItemRepo.ListByTripID: %w", err)
	}
	defer rows.Close()

	var items []domain.BudgetItem
	for rows.Next() {
		item, err := scanBudgetItem(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.BudgetItemRepo.ListByTripID: scan: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.BudgetItemRepo.ListByTripID: rows: %w", err)
	}

	return items, nil
}

func (r *pgBudgetItemRepo) Update(ctx context.Context, item domain.BudgetItem) (domain.BudgetItem, error) {
	const q = `
		UPDATE budget_items
		SET name       = @name,
		    category   = @category,
		    amount     = @amount,
		    currency   = @currency,
		    paid       = @paid,
		    updated_at = now()
		WHERE id = @id AND trip_id = @trip_id
		RETURNING ` + budgetItemColumns

	args := pgx.NamedArgs{
		"id":       item.ID,
		"trip_id":  item.TripID,
		"name":     item.Name,
		"category": item.Category,
		"amount":   item.Amount.String(),
		"currency": item.Currency,
		"paid":     item.Paid,
	}

	result, err := scanBudgetItem(r.db.QueryRow(ctx, q, args))
	if err != nil {
		return domain.BudgetItem{}, fmt.Errorf("repo.BudgetItemRepo.Update: %w", err)
	}
	return result, nil
}

func (r *pgBudgetItemRepo) SetPaid(ctx context.Context, tripID, itemID uuid.UUID, paid bool) (domain.BudgetItem, error) {
	const q = `
		UPDATE budget_items
		SET paid = @paid, updated_at = now()
		WHERE id = @id AND trip_id = @trip_id
		RETURNING ` + budgetItemColumns

	args := pgx.NamedArgs{"id": itemID, "trip_id": tripID, "paid": paid}

	result, err := scanBudgetItem(r.db.QueryRow(ctx, q, args))
	if err != nil {
		return domain.BudgetItem{}, fmt.Errorf("repo.BudgetItemRepo.SetPaid: %w", err)
	}
	return result, nil
}

func (r *pgBudgetItemRepo) Delete(ctx context.Context, tripID, itemID uuid.UUID) error {
	const q = `DELETE FROM budget_items WHERE id = @id AND trip_id = @trip_id`

	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"id": itemID, "trip_id": tripID})
	if err != nil {
		return fmt.Errorf("repo.BudgetItemRepo.Delete: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.BudgetItemRepo.Delete: %w", domain.ErrNotFound)
	}
	return nil
}

// scanBudgetItem maps a single database row into a domain.BudgetItem.
func scanBudgetItem(s scanner) (domain.BudgetItem, error) {
	var (
		item      domain.BudgetItem
		id        pgtype.UUID
		tripID    pgtype.UUID
		amountRaw pgtype.Numeric
	)

	err := s.Scan(&id, &tripID, &item.Name, &item.Category, &amountRaw,
		&item.Currency, &item.Paid, &item.CreatedAt, &item.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.BudgetItem{}, domain.ErrNotFound
		}
		return domain.BudgetItem{}, err
	}

	item.ID = uuid.UUID(id.Bytes)
	item.TripID = uuid.UUID(tripID.Bytes)
	item.Amount = numericToDecimal(amountRaw)

	return item, nil
}
