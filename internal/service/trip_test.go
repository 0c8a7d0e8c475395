package service_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/eld-planner/backend/internal/domain"
	"github.com/pkordes/eld-planner/backend/internal/geocode"
	"github.com/pkordes/eld-planner/backend/internal/hos"
	"github.com/pkordes/eld-planner/backend/internal/repo"
	"github.com/pkordes/eld-planner/backend/internal/service"
)

// mockTripRepo is a hand-written test double for repo.TripRepo.
// Each method is a function field; set only the ones your test needs.
type mockTripRepo struct {
	create    func(ctx context.Context, trip domain.Trip) (domain.Trip, error)
	getByID   func(ctx context.Context, id uuid.UUID) (domain.Trip, error)
	listPaged func(ctx context.Context, p domain.PaginationParams) ([]domain.Trip, int64, error)
	delete    func(ctx context.Context, id uuid.UUID) error
}

func (m *mockTripRepo) Create(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	return m.create(ctx, trip)
}
func (m *mockTripRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.Trip, error) {
	return m.getByID(ctx, id)
}
func (m *mockTripRepo) ListPaged(ctx context.Context, p domain.PaginationParams) ([]domain.Trip, int64, error) {
	return m.listPaged(ctx, p)
}
func (m *mockTripRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return m.delete(ctx, id)
}

// compile-time check: mockTripRepo must satisfy repo.TripRepo.
var _ repo.TripRepo = (*mockTripRepo)(nil)

// planFunc adapts a function to service.Planner.
type planFunc func(req domain.TripRequest, current, pickup, dropoff domain.Place) (domain.TripPlan, error)

func (f planFunc) Plan(req domain.TripRequest, current, pickup, dropoff domain.Place) (domain.TripPlan, error) {
	return f(req, current, pickup, dropoff)
}

// resolverFunc adapts a function to geocode.Resolver.
type resolverFunc func(ctx context.Context, query string) (domain.Place, error)

func (f resolverFunc) Resolve(ctx context.Context, query string) (domain.Place, error) {
	return f(ctx, query)
}

// ---- helpers ---------------------------------------------------------------

var fixedNow = time.Date(2025, 6, 2, 6, 0, 42, 0, time.UTC)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newEngine(t *testing.T) *hos.Engine {
	t.Helper()
	e, err := hos.NewEngine(hos.DefaultRules())
	require.NoError(t, err)
	return e
}

func newService(t *testing.T, r repo.TripRepo, p service.Planner) *service.TripService {
	t.Helper()
	if p == nil {
		p = newEngine(t)
	}
	return service.NewTripService(r, geocode.NewStatic(), p, discardLogger()).
		WithClock(func() time.Time { return fixedNow }).
		WithDriverDefaults(domain.DriverInfo{CarrierName: "Default Carrier", VehicleNumber: "V-1"})
}

func validRequest() domain.TripRequest {
	return domain.TripRequest{
		CurrentLocation:  "Chicago, IL",
		PickupLocation:   "Dallas, TX",
		DropoffLocation:  "Atlanta, GA",
		CurrentCycleUsed: 10,
		Driver:           domain.DriverInfo{DriverName: "Pat Doe"},
	}
}

func echoRepo() *mockTripRepo {
	// A repo that echoes whatever it receives back with an ID, useful for
	// Create tests that only care about planning, not what the DB returns.
	return &mockTripRepo{
		create: func(_ context.Context, t domain.Trip) (domain.Trip, error) {
			t.ID = uuid.New()
			return t, nil
		},
	}
}

// ---- Plan tests ------------------------------------------------------------

func TestTripService_Plan_Valid(t *testing.T) {
	svc := newService(t, &mockTripRepo{}, nil)

	plan, err := svc.Plan(context.Background(), validRequest())

	require.NoError(t, err)
	assert.True(t, plan.Compliance.Compliant)
	assert.Equal(t, fixedNow.Truncate(time.Minute), plan.DepartAt, "DepartAt defaults to now, to the minute")
	require.NotEmpty(t, plan.Logs)
	assert.Equal(t, "Default Carrier", plan.Logs[0].Driver.CarrierName)
	assert.Equal(t, "V-1", plan.Logs[0].Driver.VehicleNumber)
	assert.Equal(t, "Pat Doe", plan.Logs[0].Driver.DriverName)
}

func TestTripService_Plan_KeepsExplicitValues(t *testing.T) {
	var seen domain.TripRequest
	p := planFunc(func(req domain.TripRequest, _, _, _ domain.Place) (domain.TripPlan, error) {
		seen = req
		return domain.TripPlan{}, nil
	})
	svc := newService(t, &mockTripRepo{}, p)

	req := validRequest()
	req.CurrentLocation = "  Chicago, IL  "
	req.DepartAt = time.Date(2025, 7, 1, 12, 0, 0, 0, time.UTC)
	req.Driver.CarrierName = "Own Carrier"

	_, err := svc.Plan(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, "Chicago, IL", seen.CurrentLocation)
	assert.Equal(t, req.DepartAt, seen.DepartAt)
	assert.Equal(t, "Own Carrier", seen.Driver.CarrierName)
	assert.Equal(t, "V-1", seen.Driver.VehicleNumber)
}

func TestTripService_Plan_ValidationErrors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(r *domain.TripRequest)
		field  string
	}{
		{"missing current location", func(r *domain.TripRequest) { r.CurrentLocation = "   " }, "current_location"},
		{"missing dropoff", func(r *domain.TripRequest) { r.DropoffLocation = "" }, "dropoff_location"},
		{"negative cycle", func(r *domain.TripRequest) { r.CurrentCycleUsed = -0.5 }, "current_cycle_used"},
		{"cycle above 70", func(r *domain.TripRequest) { r.CurrentCycleUsed = 70.25 }, "current_cycle_used"},
		{"long driver name", func(r *domain.TripRequest) {
			r.Driver.DriverName = string(make([]byte, 101))
		}, "driver_name"},
		{"unknown place", func(r *domain.TripRequest) { r.PickupLocation = "Atlantis" }, "pickup_location"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			svc := newService(t, &mockTripRepo{}, nil)
			req := validRequest()
			tc.mutate(&req)

			_, err := svc.Plan(context.Background(), req)

			require.ErrorIs(t, err, domain.ErrValidation)
			var ie *domain.InputError
			require.ErrorAs(t, err, &ie)
			assert.Equal(t, tc.field, ie.Field)
		})
	}
}

func TestTripService_Plan_Unplannable(t *testing.T) {
	svc := newService(t, &mockTripRepo{}, nil)
	req := validRequest()
	req.CurrentCycleUsed = 70

	_, err := svc.Plan(context.Background(), req)

	assert.ErrorIs(t, err, domain.ErrUnplannable)
}

func TestTripService_Plan_GeocoderFailure(t *testing.T) {
	boom := errors.New("geocoder down")
	svc := service.NewTripService(&mockTripRepo{},
		resolverFunc(func(context.Context, string) (domain.Place, error) { return domain.Place{}, boom }),
		newEngine(t), discardLogger())

	_, err := svc.Plan(context.Background(), validRequest())

	assert.ErrorIs(t, err, boom)
	assert.NotErrorIs(t, err, domain.ErrValidation)
}

// ---- Create tests ----------------------------------------------------------

func TestTripService_Create_Valid(t *testing.T) {
	var stored domain.Trip
	r := echoRepo()
	echo := r.create
	r.create = func(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
		stored = trip
		return echo(ctx, trip)
	}
	svc := newService(t, r, nil)

	got, err := svc.Create(context.Background(), validRequest())

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, got.ID)
	assert.Equal(t, domain.TripStatusSaved, stored.Status)
	assert.Equal(t, "Chicago, IL", stored.Request.CurrentLocation)
	assert.NotEmpty(t, stored.Plan.RoutePoints)
	assert.NotEmpty(t, stored.Plan.Logs)
}

func TestTripService_Create_InvalidNeverReachesRepo(t *testing.T) {
	r := &mockTripRepo{
		create: func(context.Context, domain.Trip) (domain.Trip, error) {
			t.Fatal("repo must not be called for invalid input")
			return domain.Trip{}, nil
		},
	}
	svc := newService(t, r, nil)
	req := validRequest()
	req.PickupLocation = ""

	_, err := svc.Create(context.Background(), req)

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestTripService_Create_RepoError(t *testing.T) {
	repoErr := errors.New("db exploded")
	r := &mockTripRepo{
		create: func(_ context.Context, _ domain.Trip) (domain.Trip, error) {
			return domain.Trip{}, repoErr
		},
	}
	svc := newService(t, r, nil)

	_, err := svc.Create(context.Background(), validRequest())

	// The service should propagate repo errors unchanged.
	assert.ErrorIs(t, err, repoErr)
}

// ---- Read / delete tests ---------------------------------------------------

func TestTripService_GetByID_NotFound(t *testing.T) {
	r := &mockTripRepo{
		getByID: func(_ context.Context, _ uuid.UUID) (domain.Trip, error) {
			return domain.Trip{}, domain.ErrNotFound
		},
	}
	svc := newService(t, r, nil)

	_, err := svc.GetByID(context.Background(), uuid.New())

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestTripService_ListPaged(t *testing.T) {
	want := []domain.Trip{{ID: uuid.New()}, {ID: uuid.New()}}
	var gotParams domain.PaginationParams
	r := &mockTripRepo{
		listPaged: func(_ context.Context, p domain.PaginationParams) ([]domain.Trip, int64, error) {
			gotParams = p
			return want, 7, nil
		},
	}
	svc := newService(t, r, nil)

	trips, total, err := svc.ListPaged(context.Background(), domain.PaginationParams{Page: 2, Limit: 2})

	require.NoError(t, err)
	assert.Equal(t, want, trips)
	assert.Equal(t, int64(7), total)
	assert.Equal(t, domain.PaginationParams{Page: 2, Limit: 2}, gotParams)
}

func TestTripService_Delete(t *testing.T) {
	id := uuid.New()
	var deleted uuid.UUID
	r := &mockTripRepo{
		delete: func(_ context.Context, got uuid.UUID) error {
			deleted = got
			return nil
		},
	}
	svc := newService(t, r, nil)

	require.NoError(t, svc.Delete(context.Background(), id))
	assert.Equal(t, id, deleted)
}

func TestTripService_Delete_NotFound(t *testing.T) {
	r := &mockTripRepo{
		delete: func(context.Context, uuid.UUID) error { return domain.ErrNotFound },
	}
	svc := newService(t, r, nil)

	err := svc.Delete(context.Background(), uuid.New())

	assert.ErrorIs(t, err, domain.ErrNotFound)
}
