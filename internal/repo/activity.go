package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/MrAssie/reisdagboek/internal/domain"
	"github.com/MrAssie/reisdagboek/internal/itinerary"
)

// ActivityRepo defines the persistence operations for Activities.
// Single-record operations are scoped by dayID to enforce ownership; the
// service layer verifies the day belongs to the right trip first.
type ActivityRepo interface {
	// Create inserts a new activity and returns the persisted record.
	// The caller supplies the order value (the service appends at the end of
	// the day by default).
	Create(ctx context.Context, activity domain.Activity) (domain.Activity, error)

	// GetByID retrieves a single activity by its UUID, scoped to the given dayID.
	// Returns domain.ErrNotFound if no activity with that ID exists under that day.
	GetByID(ctx context.Context, dayID, activityID uuid.UUID) (domain.Activity, error)

	// ListByDayID returns all activities for a day ordered by "order" ascending.
	ListByDayID(ctx context.Context, dayID uuid.UUID) ([]domain.Activity, error)

	// ListByTripID returns all activities across a trip's days, ordered by
	// day date ascending then "order" ascending. Used to assemble the full
	// itinerary in one query instead of one query per day.
	ListByTripID(ctx context.Context, tripID uuid.UUID) ([]domain.Activity, error)

	// CountByDayID returns the number of activities currently on a day.
	CountByDayID(ctx context.Context, dayID uuid.UUID) (int, error)

	// Update overwrites the mutable fields of an activity, scoped to the
	// given dayID. Day membership and order are not changed here — that is
	// Reorder's job. Returns domain.ErrNotFound if the activity does not
	// exist under that day.
	Update(ctx context.Context, activity domain.Activity) (domain.Activity, error)

	// Delete removes an activity by ID, scoped to the given dayID.
	// Returns domain.ErrNotFound if it does not exist under that day.
	Delete(ctx context.Context, dayID, activityID uuid.UUID) error

	// Reorder commits an ordering-engine change list: for every change it
	// sets (day_id, "order") on the named activity. All updates go in a
	// single batch round trip; pgx runs the batch in an implicit transaction,
	// so a failure leaves the stored ordering untouched (all-or-nothing).
	// Returns domain.ErrNotFound if any referenced activity no longer exists.
	Reorder(ctx context.Context, changes []itinerary.Change) error
}

// pgActivityRepo is the Postgres implementation of ActivityRepo.
type pgActivityRepo struct {
	db db
}

// NewActivityRepo constructs an ActivityRepo backed by the provided db connection.
// In production pass *pgxpool.Pool; in tests pass a pgx.Tx for rollback isolation.
func NewActivityRepo(db db) ActivityRepo {
	return &pgActivityRepo{db: db}
}

const activityColumns = `id, day_id, name, description, location, address, latitude, longitude,
	place_id, start_time, end_time, category, cost, currency, photo_url, rating, "order",
	created_at, updated_at`

func (r *pgActivityRepo) Create(ctx context.Context, activity domain.Activity) (domain.Activity, error) {
	const q = `
		INSERT INTO activities (day_id, name, description, location, address, latitude, longitude,
			place_id, start_time, end_time, category, cost, currency, photo_url, rating, "order")
		VALUES (@day_id, @name, @description, @location, @address, @latitude, @longitude,
			@place_id, @start_time, @end_time, @category, @cost, @currency, @photo_url, @rating, @order)
		RETURNING ` + activityColumns

	result, err := scanActivity(r.db.QueryRow(ctx, q, activityArgs(activity)))
	if err != nil {
		return domain.Activity{}, fmt.Errorf("repo.ActivityRepo.Create: %w", err)
	}
	return result, nil
}

func (r *pgActivityRepo) GetByID(ctx context.Context, dayID, activityID uuid.UUID) (domain.Activity, error) {
	const q = `SELECT ` + activityColumns + ` FROM activities WHERE id = @id AND day_id = @day_id`

	result, err := scanActivity(r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": activityID, "day_id": dayID}))
	if err != nil {
		return domain.Activity{}, fmt.Errorf("repo.ActivityRepo.GetByID: %w", err)
	}
	return result, nil
}

func (r *pgActivityRepo) ListByDayID(ctx context.Context, dayID uuid.UUID) ([]domain.Activity, error) {
	const q = `
		SELECT ` + activityColumns + `
		FROM activities
		WHERE day_id = @day_id
		ORDER BY "order" ASC`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"day_id": dayID})
	if err != nil {
		return nil, fmt.Errorf("repo.ActivityRepo.ListByDayID: %w", err)
	}
	defer rows.Close()

	activities, err := collectActivities(rows)
	if err != nil {
		return nil, fmt.Errorf("repo.ActivityRepo.ListByDayID: %w", err)
	}
	return activities, nil
}

func (r *pgActivityRepo) ListByTripID(ctx context.Context, tripID uuid.UUID) ([]domain.Activity, error) {
	const q = `
		SELECT a.id, a.day_id, a.name, a.description, a.location, a.address, a.latitude, a.longitude,
		       a.place_id, a.start_time, a.end_time, a.category, a.cost, a.currency, a.photo_url,
		       a.rating, a."order", a.created_at, a.updated_at
		FROM activities a
		JOIN days d ON d.id = a.day_id
		WHERE d.trip_id = @trip_id
		ORDER BY d.date ASC, a."order" ASC`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"trip_id": tripID})
	if err != nil {
		return nil, fmt.Errorf("repo.ActivityRepo.ListByTripID: %w", err)
	}
	defer rows.Close()

	activities, err := collectActivities(rows)
	if err != nil {
		return nil, fmt.Errorf("repo.ActivityRepo.ListByTripID: %w", err)
	}
	return activities, nil
}

func (r *pgActivityRepo) CountByDayID(ctx context.Context, dayID uuid.UUID) (int, error) {
	const q = `SELECT count(*) FROM activities WHERE day_id = @day_id`

	var count int
	if err := r.db.QueryRow(ctx, q, pgx.NamedArgs{"day_id": dayID}).Scan(&count); err != nil {
		return 0, fmt.Errorf("repo.ActivityRepo.CountByDayID: %w", err)
	}
	return count, nil
}

func (r *pgActivityRepo) Update(ctx context.Context, activity domain.Activity) (domain.Activity, error) {
	const q = `
		UPDATE activities
		SET name        = @name,
		    description = @description,
		    location    = @location,
		    address     = @address,
		    latitude    = @latitude,
		    longitude   = @longitude,
		    place_id    = @place_id,
		    start_time  = @start_time,
		    end_time    = @end_time,
		    category    = @category,
		    cost        = @cost,
		    currency    = @currency,
		    photo_url   = @photo_url,
		    rating      = @rating,
		    updated_at  = now()
		WHERE id = @id AND day_id = @day_id
		RETURNING ` + activityColumns

	args := activityArgs(activity)
	args["id"] = activity.ID
	delete(args, "order")

	result, err := scanActivity(r.db.QueryRow(ctx, q, args))
	if err != nil {
		return domain.Activity{}, fmt.Errorf("repo.ActivityRepo.Update: %w", err)
	}
	return result, nil
}

func (r *pgActivityRepo) Delete(ctx context.Context, dayID, activityID uuid.UUID) error {
	const q = `DELETE FROM activities WHERE id = @id AND day_id = @day_id`

	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"id": activityID, "day_id": dayID})
	if err != nil {
		return fmt.Errorf("repo.ActivityRepo.Delete: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.ActivityRepo.Delete: %w", domain.ErrNotFound)
	}
	return nil
}

func (r *pgActivityRepo) Reorder(ctx context.Context, changes []itinerary.Change) error {
	if len(changes) == 0 {
		return nil
	}

	const q = `
		UPDATE activities
		SET day_id = @day_id, "order" = @order, updated_at = now()
		WHERE id = @id`

	batch := &pgx.Batch{}
	for _, c := range changes {
		batch.Queue(q, pgx.NamedArgs{"id": c.ActivityID, "day_id": c.DayID, "order": c.Order})
	}

	results := r.db.SendBatch(ctx, batch)
	defer results.Close()

	for i := range changes {
		tag, err := results.Exec()
		if err != nil {
			return fmt.Errorf("repo.ActivityRepo.Reorder: change %d: %w", i, err)
		}
		if tag.RowsAffected() == 0 {
			return fmt.Errorf("repo.ActivityRepo.Reorder: change %d: %w", i, domain.ErrNotFound)
		}
	}
	return nil
}

// activityArgs builds the named argument map shared by Create and Update.
func activityArgs(a domain.Activity) pgx.NamedArgs {
	return pgx.NamedArgs{
		"day_id":      a.DayID,
		"name":        a.Name,
		"description": a.Description,
		"location":    a.Location,
		"address":     a.Address,
		"latitude":    a.Latitude, // nil becomes NULL
		"longitude":   a.Longitude,
		"place_id":    a.PlaceID,
		"start_time":  a.StartTime,
		"end_time":    a.EndTime,
		"category":    string(a.Category),
		"cost":        a.Cost.String(),
		"currency":    a.Currency,
		"photo_url":   a.PhotoURL,
		"rating":      a.Rating,
		"order":       a.Order,
	}
}

// collectActivities drains rows into a slice using scanActivity.
func collectActivities(rows pgx.Rows) ([]domain.Activity, error) {
	var activities []domain.Activity
	for rows.Next() {
		a, err := scanActivity(rows)
		if err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		activities = append(activities, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}
	return activities, nil
}

// scanActivity maps a single database row into a domain.Activity.
// Unknown category strings fall back to sightseeing via domain.ParseCategory.
func scanActivity(s scanner) (domain.Activity, error) {
	var (
		a        domain.Activity
		id       pgtype.UUID
		dayID    pgtype.UUID
		category string
		costRaw  pgtype.Numeric
	)

	err := s.Scan(&id, &dayID, &a.Name, &a.Description, &a.Location, &a.Address,
		&a.Latitude, &a.Longitude, &a.PlaceID, &a.StartTime, &a.EndTime, &category,
		&costRaw, &a.Currency, &a.PhotoURL, &a.Rating, &a.Order, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Activity{}, domain.ErrNotFound
		}
		return domain.Activity{}, err
	}

	a.ID = uuid.UUID(id.Bytes)
	a.DayID = uuid.UUID(dayID.Bytes)
	a.Category = domain.ParseCategory(category)
	a.Cost = numericToDecimal(costRaw)

	return a, nil
}
