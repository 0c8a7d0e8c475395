package repo_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/eld-planner/backend/internal/domain"
	"github.com/pkordes/eld-planner/backend/internal/hos"
	"github.com/pkordes/eld-planner/backend/internal/repo"
	"github.com/pkordes/eld-planner/backend/testutil"
)

// newTestRepo returns a TripRepo bound to a transaction that is rolled back
// when the test finishes, giving free per-test isolation.
//
// Requires TEST_DATABASE_URL to be set; TestMain applies the migrations.
func newTestRepo(t *testing.T) repo.TripRepo {
	t.Helper()
	return repo.NewTripRepo(testutil.NewTx(t))
}

// tripFixture plans a real multi-day trip so every child table gets rows.
func tripFixture(t *testing.T) domain.Trip {
	t.Helper()
	engine, err := hos.NewEngine(hos.DefaultRules())
	require.NoError(t, err)

	req := domain.TripRequest{
		CurrentLocation:  "Chicago, IL",
		PickupLocation:   "Dallas, TX",
		DropoffLocation:  "Atlanta, GA",
		CurrentCycleUsed: 12.5,
		Driver:           domain.DriverInfo{DriverName: "Pat Doe", CarrierName: "Acme Freight", VehicleNumber: "T-100"},
		DepartAt:         time.Date(2025, 6, 2, 6, 0, 0, 0, time.UTC),
	}
	plan, err := engine.Plan(req,
		domain.Place{Name: "Chicago, IL", Coordinates: domain.Coordinates{Lat: 41.8781, Lon: -87.6298}},
		domain.Place{Name: "Dallas, TX", Coordinates: domain.Coordinates{Lat: 32.7767, Lon: -96.7970}},
		domain.Place{Name: "Atlanta, GA", Coordinates: domain.Coordinates{Lat: 33.7490, Lon: -84.3880}},
	)
	require.NoError(t, err)

	return domain.Trip{Request: req, Plan: plan, Status: domain.TripStatusCalculated}
}

func TestTripRepo_Create(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	input := tripFixture(t)
	got, err := r.Create(ctx, input)

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, got.ID, "ID should be DB-generated UUID")
	assert.Equal(t, input.Request, got.Request)
	assert.Equal(t, domain.TripStatusCalculated, got.Status)
	assert.Equal(t, input.Plan.Metrics, got.Plan.Metrics)
	assert.Equal(t, input.Plan.TotalTripTime, got.Plan.TotalTripTime)
	assert.False(t, got.CreatedAt.IsZero(), "CreatedAt should be set by DB")
	assert.False(t, got.UpdatedAt.IsZero(), "UpdatedAt should be set by DB")
}

func TestTripRepo_GetByID_roundTripsChildren(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	input := tripFixture(t)
	created, err := r.Create(ctx, input)
	require.NoError(t, err)

	got, err := r.GetByID(ctx, created.ID)

	require.NoError(t, err)
	assert.Equal(t, input.Request, got.Request)
	assert.Equal(t, input.Plan.DepartAt, got.Plan.DepartAt)
	assert.Equal(t, input.Plan.ArriveAt, got.Plan.ArriveAt)
	assert.Equal(t, input.Plan.FuelStops, got.Plan.FuelStops)
	assert.Equal(t, input.Plan.RestStops, got.Plan.RestStops)
	assert.Equal(t, input.Plan.Compliance, got.Plan.Compliance)
	assert.Equal(t, input.Plan.RoutePoints, got.Plan.RoutePoints)
	assert.Equal(t, input.Plan.Logs, got.Plan.Logs)
	assert.Equal(t, input.Plan.Segments, got.Plan.Segments, "timeline must be rebuilt from the logs")
}

func TestTripRepo_GetByID_NotFound(t *testing.T) {
	r := newTestRepo(t)

	_, err := r.GetByID(context.Background(), uuid.New())

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestTripRepo_ListPaged(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	var ids []uuid.UUID
	for range 3 {
		created, err := r.Create(ctx, tripFixture(t))
		require.NoError(t, err)
		ids = append(ids, created.ID)
	}

	page, total, err := r.ListPaged(ctx, domain.PaginationParams{Page: 1, Limit: 2})

	require.NoError(t, err)
	assert.GreaterOrEqual(t, total, int64(3))
	require.Len(t, page, 2)
	for _, trip := range page {
		assert.Empty(t, trip.Plan.RoutePoints, "summaries carry no children")
		assert.Empty(t, trip.Plan.Logs)
	}
	assert.False(t, page[0].CreatedAt.Before(page[1].CreatedAt), "newest first")
}

func TestTripRepo_Delete(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	created, err := r.Create(ctx, tripFixture(t))
	require.NoError(t, err)

	require.NoError(t, r.Delete(ctx, created.ID))

	_, err = r.GetByID(ctx, created.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestTripRepo_Delete_NotFound(t *testing.T) {
	r := newTestRepo(t)

	err := r.Delete(context.Background(), uuid.New())

	assert.ErrorIs(t, err, domain.ErrNotFound)
}
