package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/eld-planner/backend/internal/domain"
	"github.com/pkordes/eld-planner/backend/internal/handler"
	"github.com/pkordes/eld-planner/backend/internal/handler/gen"
	"github.com/pkordes/eld-planner/backend/internal/hos"
)

// mockTripServicer is a test double for handler.TripServicer.
// Set only the method fields your test needs.
type mockTripServicer struct {
	plan      func(ctx context.Context, req domain.TripRequest) (domain.TripPlan, error)
	create    func(ctx context.Context, req domain.TripRequest) (domain.Trip, error)
	getByID   func(ctx context.Context, id uuid.UUID) (domain.Trip, error)
	listPaged func(ctx context.Context, p domain.PaginationParams) ([]domain.Trip, int64, error)
	delete    func(ctx context.Context, id uuid.UUID) error
}

func (m *mockTripServicer) Plan(ctx context.Context, req domain.TripRequest) (domain.TripPlan, error) {
	return m.plan(ctx, req)
}
func (m *mockTripServicer) Create(ctx context.Context, req domain.TripRequest) (domain.Trip, error) {
	return m.create(ctx, req)
}
func (m *mockTripServicer) GetByID(ctx context.Context, id uuid.UUID) (domain.Trip, error) {
	return m.getByID(ctx, id)
}
func (m *mockTripServicer) ListPaged(ctx context.Context, p domain.PaginationParams) ([]domain.Trip, int64, error) {
	return m.listPaged(ctx, p)
}
func (m *mockTripServicer) Delete(ctx context.Context, id uuid.UUID) error {
	return m.delete(ctx, id)
}

// compile-time check: mockTripServicer must satisfy handler.TripServicer.
var _ handler.TripServicer = (*mockTripServicer)(nil)

// newHTTPHandler wires a Server with the given mock into the generated chi
// router with the same error handlers main.go installs.
func newHTTPHandler(svc handler.TripServicer) http.Handler {
	srv := handler.NewServer(svc)
	strict := gen.NewStrictHandlerWithOptions(srv, nil, gen.StrictHTTPServerOptions{
		RequestErrorHandlerFunc:  handler.RequestErrorHandler,
		ResponseErrorHandlerFunc: handler.ResponseErrorHandler(slog.New(slog.NewTextHandler(io.Discard, nil))),
	})
	return gen.HandlerWithOptions(strict, gen.ChiServerOptions{
		ErrorHandlerFunc: handler.RequestErrorHandler,
	})
}

var (
	chicago = domain.Place{Name: "Chicago, IL", Coordinates: domain.Coordinates{Lat: 41.8781, Lon: -87.6298}}
	dallas  = domain.Place{Name: "Dallas, TX", Coordinates: domain.Coordinates{Lat: 32.7767, Lon: -96.7970}}
	atlanta = domain.Place{Name: "Atlanta, GA", Coordinates: domain.Coordinates{Lat: 33.7490, Lon: -84.3880}}
)

func requestFixture() domain.TripRequest {
	return domain.TripRequest{
		CurrentLocation:  "Chicago, IL",
		PickupLocation:   "Dallas, TX",
		DropoffLocation:  "Atlanta, GA",
		CurrentCycleUsed: 20,
		Driver: domain.DriverInfo{
			DriverName:    "Jane Doe",
			CarrierName:   "Acme Freight",
			VehicleNumber: "T-42",
		},
		DepartAt: time.Date(2025, 6, 2, 6, 0, 0, 0, time.UTC),
	}
}

// planFixture runs the real engine so responses carry a realistic multi-day plan.
func planFixture(t *testing.T) domain.TripPlan {
	t.Helper()
	engine, err := hos.NewEngine(hos.DefaultRules())
	require.NoError(t, err)
	plan, err := engine.Plan(requestFixture(), chicago, dallas, atlanta)
	require.NoError(t, err)
	return plan
}

func tripFixture(t *testing.T) domain.Trip {
	t.Helper()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	return domain.Trip{
		ID:        uuid.New(),
		Request:   requestFixture(),
		Plan:      planFixture(t),
		Status:    domain.TripStatusSaved,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func jsonBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewBuffer(b)
}

func validBody() map[string]any {
	return map[string]any{
		"current_location":   "Chicago, IL",
		"pickup_location":    "Dallas, TX",
		"dropoff_location":   "Atlanta, GA",
		"current_cycle_used": 20,
	}
}

func serve(h http.Handler, method, target string, body io.Reader) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) gen.ErrorDetail {
	t.Helper()
	var resp gen.ErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	return resp.Error
}
