package repo_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrAssie/reisdagboek/internal/domain"
	"github.com/MrAssie/reisdagboek/internal/repo"
)

func TestDayRepo_CreateAndGet(t *testing.T) {
	tx := beginTx(t)
	trips := repo.NewTripRepo(tx)
	days := repo.NewDayRepo(tx)
	ctx := context.Background()

	trip, err := trips.Create(ctx, tripFixture())
	require.NoError(t, err)

	created, err := days.Create(ctx, dayFixture(trip))
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, created.ID)
	assert.Equal(t, trip.ID, created.TripID)

	got, err := days.GetByID(ctx, trip.ID, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Arrival in Tokyo", got.Title)
	assert.True(t, got.Date.Equal(trip.StartDate))
}

func TestDayRepo_GetByID_WrongTrip(t *testing.T) {
	tx := beginTx(t)
	trips := repo.NewTripRepo(tx)
	days := repo.NewDayRepo(tx)
	ctx := context.Background()

	trip, err := trips.Create(ctx, tripFixture())
	require.NoError(t, err)
	day, err := days.Create(ctx, dayFixture(trip))
	require.NoError(t, err)

	// Scoping: the day exists but not under this trip ID.
	_, err = days.GetByID(ctx, uuid.New(), day.ID)

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDayRepo_ListByTripID_OrderedByDate(t *testing.T) {
	tx := beginTx(t)
	trips := repo.NewTripRepo(tx)
	days := repo.NewDayRepo(tx)
	ctx := context.Background()

	trip, err := trips.Create(ctx, tripFixture())
	require.NoError(t, err)

	// Insert out of chronological order.
	later := dayFixture(trip)
	later.Date = trip.StartDate.AddDate(0, 0, 2)
	later.Title = "Day three"
	_, err = days.Create(ctx, later)
	require.NoError(t, err)

	earlier := dayFixture(trip)
	earlier.Title = "Day one"
	_, err = days.Create(ctx, earlier)
	require.NoError(t, err)

	got, err := days.ListByTripID(ctx, trip.ID)

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Day one", got[0].Title)
	assert.Equal(t, "Day three", got[1].Title)
}

func TestDayRepo_Update(t *testing.T) {
	tx := beginTx(t)
	trips := repo.NewTripRepo(tx)
	days := repo.NewDayRepo(tx)
	ctx := context.Background()

	trip, err := trips.Create(ctx, tripFixture())
	require.NoError(t, err)
	day, err := days.Create(ctx, dayFixture(trip))
	require.NoError(t, err)

	day.Title = "Arrival, revised"
	day.Notes = ""

	got, err := days.Update(ctx, day)

	require.NoError(t, err)
	assert.Equal(t, "Arrival, revised", got.Title)
	assert.Empty(t, got.Notes)
}

func TestDayRepo_Delete_CascadesToActivities(t *testing.T) {
	tx := beginTx(t)
	trips := repo.NewTripRepo(tx)
	days := repo.NewDayRepo(tx)
	activities := repo.NewActivityRepo(tx)
	ctx := context.Background()

	trip, err := trips.Create(ctx, tripFixture())
	require.NoError(t, err)
	day, err := days.Create(ctx, dayFixture(trip))
	require.NoError(t, err)
	act, err := activities.Create(ctx, activityFixture(day, 0))
	require.NoError(t, err)

	require.NoError(t, days.Delete(ctx, trip.ID, day.ID))

	_, err = activities.GetByID(ctx, day.ID, act.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDayRepo_Delete_NotFound(t *testing.T) {
	tx := beginTx(t)
	days := repo.NewDayRepo(tx)

	err := days.Delete(context.Background(), uuid.New(), uuid.New())

	assert.ErrorIs(t, err, domain.ErrNotFound)
}
