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

// TripRepo defines the persistence operations for Trips.
// The service layer depends on this interface, not the concrete Postgres
// implementation, which allows the service to be unit-tested with a mock.
type TripRepo interface {
	// Create inserts a new trip and returns the persisted record (with
	// DB-generated id, created_at, and updated_at populated).
	Create(ctx context.Context, trip domain.Trip) (domain.Trip, error)

	// GetByID retrieves a single trip by its UUID primary key.
	// Returns domain.ErrNotFound if no trip with that ID exists.
	GetByID(ctx context.Context, id uuid.UUID) (domain.Trip, error)

	// List returns one page of trips ordered by start_date descending, each
	// with its day and budget item counts, plus the total trip count.
	List(ctx context.Context, params domain.PaginationParams) ([]domain.TripListItem, int64, error)

	// Update overwrites the mutable fields of an existing trip and returns
	// the updated record. Returns domain.ErrNotFound if it does not exist.
	Update(ctx context.Context, trip domain.Trip) (domain.Trip, error)

	// Delete removes a trip by ID. The database cascades the delete to the
	// trip's days, activities, and budget items.
	// Returns domain.ErrNotFound if it does not exist.
	Delete(ctx context.Context, id uuid.UUID) error
}

// pgTripRepo is the Postgres implementation of TripRepo.
type pgTripRepo struct {
	db db
}

// NewTripRepo constructs a TripRepo backed by the provided db connection.
// In production pass *pgxpool.Pool; in tests pass a pgx.Tx for rollback isolation.
func NewTripRepo(db db) TripRepo {
	return &pgTripRepo{db: db}
}

const tripColumns = `id, name, description, start_date, end_date, total_budget, cover_image, created_at, updated_at`

func (r *pgTripRepo) Create(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	const q = `
		INSERT INTO trips (name, description, start_date, end_date, total_budget, cover_image)
		VALUES (@name, @description, @start_date, @end_date, @total_budget, @cover_image)
		RETURNING ` + tripColumns

	args := pgx.NamedArgs{
		"name":         trip.Name,
		"description":  trip.Description,
		"start_date":   trip.StartDate,
		"end_date":     trip.EndDate,
		"total_budget": trip.TotalBudget.String(),
		"cover_image":  trip.CoverImage,
	}

	result, err := scanTrip(r.db.QueryRow(ctx, q, args))
	if err != nil {
		return domain.Trip{}, fmt.Errorf("repo.TripRepo.Create: %w", err)
	}
	return result, nil
}

func (r *pgTripRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.Trip, error) {
	const q = `SELECT ` + tripColumns + ` FROM trips WHERE id = @id`

	result, err := scanTrip(r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id}))
	if err != nil {
		return domain.Trip{}, fmt.Errorf("repo.TripRepo.GetByID: %w", err)
	}
	return result, nil
}

func (r *pgTripRepo) List(ctx context.Context, params domain.PaginationParams) ([]domain.TripListItem, int64, error) {
	// count(*) OVER () repeats the unpaged total on every row, avoiding a
	// second round trip for the pagination header.
	const q = `
		SELECT ` + tripColumns + `,
		       (SELECT count(*) FROM days d WHERE d.trip_id = trips.id) AS day_count,
		       (SELECT count(*) FROM budget_items b WHERE b.trip_id = trips.id) AS budget_item_count,
		       count(*) OVER () AS total
		FROM trips
		ORDER BY start_date DESC, created_at DESC
		LIMIT @limit OFFSET @offset`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"limit": params.Limit, "offset": params.Offset()})
	if err != nil {
		return nil, 0, fmt.Errorf("repo.TripRepo.List: %w", err)
	}
	defer rows.Close()

	trips := []domain.TripListItem{}
	var total int64
	for rows.Next() {
		var (
			item      domain.TripListItem
			id        pgtype.UUID
			startDate pgtype.Date
			endDate   pgtype.Date
			budgetRaw pgtype.Numeric
		)
		err := rows.Scan(&id, &item.Name, &item.Description, &startDate, &endDate,
			&budgetRaw, &item.CoverImage, &item.CreatedAt, &item.UpdatedAt,
			&item.DayCount, &item.BudgetItemCount, &total)
		if err != nil {
			return nil, 0, fmt.Errorf("repo.TripRepo.List: scan: %w", err)
		}
		item.ID = uuid.UUID(id.Bytes)
		item.StartDate = startDate.Time
		item.EndDate = endDate.Time
		item.TotalBudget = numericToDecimal(budgetRaw)
		trips = append(trips, item)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("repo.TripRepo.List: rows: %w", err)
	}

	return trips, total, nil
}

func (r *pgTripRepo) Update(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	const q = `
		UPDATE trips
		SET name         = @name,
		    description  = @description,
		    start_date   = @start_date,
		    end_date     = @end_date,
		    total_budget = @total_budget,
		    cover_image  = @cover_image,
		    updated_at   = now()
		WHERE id = @id
		RETURNING ` + tripColumns

	args := pgx.NamedArgs{
		"id":           trip.ID,
		"name":         trip.Name,
		"description":  trip.Description,
		"start_date":   trip.StartDate,
		"end_date":     trip.EndDate,
		"total_budget": trip.TotalBudget.String(),
		"cover_image":  trip.CoverImage,
	}

	result, err := scanTrip(r.db.QueryRow(ctx, q, args))
	if err != nil {
		return domain.Trip{}, fmt.Errorf("repo.TripRepo.Update: %w", err)
	}
	return result, nil
}

func (r *pgTripRepo) Delete(ctx context.Context, id uuid.UUID) error {
	const q = `DELETE FROM trips WHERE id = @id`

	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"id": id})
	if err != nil {
		return fmt.Errorf("repo.TripRepo.Delete: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.TripRepo.Delete: %w", domain.ErrNotFound)
	}
	return nil
}

// scanTrip maps a single database row into a domain.Trip.
// It handles the UUID, date, and numeric conversions.
func scanTrip(s scanner) (domain.Trip, error) {
	var (
		t         domain.Trip
		id        pgtype.UUID
		startDate pgtype.Date
		endDate   pgtype.Date
		budgetRaw pgtype.Numeric
	)

	err := s.Scan(&id, &t.Name, &t.Description, &startDate, &endDate,
		&budgetRaw, &t.CoverImage, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Trip{}, domain.ErrNotFound
		}
		return domain.Trip{}, err
	}

	t.ID = uuid.UUID(id.Bytes)
	t.StartDate = startDate.Time
	t.EndDate = endDate.Time
	t.TotalBudget = numericToDecimal(budgetRaw)

	return t, nil
}
