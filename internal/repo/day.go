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

// DayRepo defines the persistence operations for Days.
// All write and single-read operations are scoped by tripID to enforce ownership.
type DayRepo interface {
	// Create inserts a new day and returns the persisted record.
	Create(ctx context.Context, day domain.Day) (domain.Day, error)

	// GetByID retrieves a single day by its UUID, scoped to the given tripID.
	// Returns domain.ErrNotFound if no day with that ID exists under that trip.
	GetByID(ctx context.Context, tripID, dayID uuid.UUID) (domain.Day, error)

	// ListByTripID returns all days for a trip ordered by date ascending.
	ListByTripID(ctx context.Context, tripID uuid.UUID) ([]domain.Day, error)

	// Update overwrites the mutable fields of a day, scoped to the given tripID.
	// Returns domain.ErrNotFound if no day with that ID exists under that trip.
	Update(ctx context.Context, day domain.Day) (domain.Day, error)

	// Delete removes a day by ID, scoped to the given tripID. The database
	// cascades the delete to the day's activities.
	// Returns domain.ErrNotFound if no day with that ID exists under that trip.
	Delete(ctx context.Context, tripID, dayID uuid.UUID) error
}

// pgDayRepo is the Postgres implementation of DayRepo.
type pgDayRepo struct {
	db db
}

// NewDayRepo constructs a DayRepo backed by the provided db connection.
// In production pass *pgxpool.Pool; in tests pass a pgx.Tx for rollback isolation.
func NewDayRepo(db db) DayRepo {
	return &pgDayRepo{db: db}
}

const dayColumns = `id, trip_id, date, title, notes, created_at, updated_at`

func (r *pgDayRepo) Create(ctx context.Context, day domain.Day) (domain.Day, error) {
	const q = `
		INSERT INTO days (trip_id, date, title, notes)
		VALUES (@trip_id, @date, @title, @notes)
		RETURNING ` + dayColumns

	args := pgx.NamedArgs{
		"trip_id": day.TripID,
		"date":    day.Date,
		"title":   day.Title,
		"notes":   day.Notes,
	}

	result, err := scanDay(r.db.QueryRow(ctx, q, args))
	if err != nil {
		return domain.Day{}, fmt.Errorf("repo.DayRepo.Create: %w", err)
	}
	return result, nil
}

func (r *pgDayRepo) GetByID(ctx context.Context, tripID, dayID uuid.UUID) (domain.Day, error) {
	const q = `SELECT ` + dayColumns + ` FROM days WHERE id = @id AND trip_id = @trip_id`

	result, err := scanDay(r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": dayID, "trip_id": tripID}))
	if err != nil {
		return domain.Day{}, fmt.Errorf("repo.DayRepo.GetByID: %w", err)
	}
	return result, nil
}

func (r *pgDayRepo) ListByTripID(ctx context.Context, tripID uuid.UUID) ([]domain.Day, error) {
	const q = `
		SELECT ` + dayColumns + `
		FROM days
		WHERE trip_id = @trip_id
		ORDER BY date ASC, created_at ASC`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"trip_id": tripID})
	if err != nil {
		return nil, fmt.Errorf("repo.DayRepo.ListByTripID: %w", err)
	}
	defer rows.Close()

	var days []domain.Day
	for rows.Next() {
		d, err := scanDay(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.DayRepo.ListByTripID: scan: %w", err)
		}
		days = append(days, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.DayRepo.ListByTripID: rows: %w", err)
	}

	return days, nil
}

func (r *pgDayRepo) Update(ctx context.Context, day domain.Day) (domain.Day, error) {
	const q = `
		UPDATE days
		SET date       = @date,
		    title      = @title,
		    notes      = @notes,
		    updated_at = now()
		WHERE id = @id AND trip_id = @trip_id
		RETURNING ` + dayColumns

	args := pgx.NamedArgs{
		"id":      day.ID,
		"trip_id": day.TripID,
		"date":    day.Date,
		"title":   day.Title,
		"notes":   day.Notes,
	}

	result, err := scanDay(r.db.QueryRow(ctx, q, args))
	if err != nil {
		return domain.Day{}, fmt.Errorf("repo.DayRepo.Update: %w", err)
	}
	return result, nil
}

func (r *pgDayRepo) Delete(ctx context.Context, tripID, dayID uuid.UUID) error {
	const q = `DELETE FROM days WHERE id = @id AND trip_id = @trip_id`

	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"id": dayID, "trip_id": tripID})
	if err != nil {
		return fmt.Errorf("repo.DayRepo.Delete: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.DayRepo.Delete: %w", domain.ErrNotFound)
	}
	return nil
}

// scanDay maps a single database row into a domain.Day.
func scanDay(s scanner) (domain.Day, error) {
	var (
		d      domain.Day
		id     pgtype.UUID
		tripID pgtype.UUID
		date   pgtype.Date
	)

	err := s.Scan(&id, &tripID, &date, &d.Title, &d.Notes, &d.CreatedAt, &d.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Day{}, domain.ErrNotFound
		}
		return domain.Day{}, err
	}

	d.ID = uuid.UUID(id.Bytes)
	d.TripID = uuid.UUID(tripID.Bytes)
	d.Date = date.Time

	return d, nil
}
