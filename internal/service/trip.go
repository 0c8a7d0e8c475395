// Package service contains the business logic for the ELD trip planner.
// Services validate inputs, resolve locations, run the planning engine and
// orchestrate repo calls. No SQL lives here; services depend on repo
// interfaces, not implementations.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/pkordes/eld-planner/backend/internal/domain"
	"github.com/pkordes/eld-planner/backend/internal/geocode"
	"github.com/pkordes/eld-planner/backend/internal/repo"
)

// Planner is the planning engine as the service sees it. *hos.Engine
// satisfies it.
type Planner interface {
	Plan(req domain.TripRequest, current, pickup, dropoff domain.Place) (domain.TripPlan, error)
}

// TripService implements business logic for trip planning.
type TripService struct {
	repo     repo.TripRepo
	geocoder geocode.Resolver
	planner  Planner
	validate *validator.Validate
	logger   *slog.Logger

	defaults domain.DriverInfo
	now      func() time.Time
}

// NewTripService constructs a TripService. A nil logger falls back to slog.Default.
func NewTripService(r repo.TripRepo, geocoder geocode.Resolver, planner Planner, logger *slog.Logger) *TripService {
	if logger == nil {
		logger = slog.Default()
	}
	return &TripService{
		repo:     r,
		geocoder: geocoder,
		planner:  planner,
		validate: validator.New(validator.WithRequiredStructEnabled()),
		logger:   logger,
		now:      time.Now,
	}
}

// WithDriverDefaults sets the carrier and vehicle used when a request leaves
// them blank.
func (s *TripService) WithDriverDefaults(d domain.DriverInfo) *TripService {
	s.defaults = d
	return s
}

// WithClock replaces the clock used to default DepartAt.
func (s *TripService) WithClock(now func() time.Time) *TripService {
	s.now = now
	return s
}

// Plan validates req, resolves its locations and returns the plan without
// persisting anything.
func (s *TripService) Plan(ctx context.Context, req domain.TripRequest) (domain.TripPlan, error) {
	_, plan, err := s.plan(ctx, req)
	if err != nil {
		return domain.TripPlan{}, fmt.Errorf("service.TripService.Plan: %w", err)
	}
	return plan, nil
}

// Create plans req and persists the trip with its route and logs.
func (s *TripService) Create(ctx context.Context, req domain.TripRequest) (domain.Trip, error) {
	req, plan, err := s.plan(ctx, req)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.Create: %w", err)
	}

	trip, err := s.repo.Create(ctx, domain.Trip{
		Request: req,
		Plan:    plan,
		Status:  domain.TripStatusSaved,
	})
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.Create: %w", err)
	}

	s.logger.InfoContext(ctx, "trip created",
		"trip_id", trip.ID,
		"miles", plan.Metrics.TotalDistance,
		"logs", len(plan.Logs),
		"compliant", plan.Compliance.Compliant,
	)
	return trip, nil
}

// GetByID returns a single trip by ID.
func (s *TripService) GetByID(ctx context.Context, id uuid.UUID) (domain.Trip, error) {
	trip, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.GetByID: %w", err)
	}
	return trip, nil
}

// ListPaged returns one page of trips, newest first, and the total count.
func (s *TripService) ListPaged(ctx context.Context, p domain.PaginationParams) ([]domain.Trip, int64, error) {
	trips, total, err := s.repo.ListPaged(ctx, p)
	if err != nil {
		return nil, 0, fmt.Errorf("service.TripService.ListPaged: %w", err)
	}
	return trips, total, nil
}

// Delete removes a trip by ID.
func (s *TripService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("service.TripService.Delete: %w", err)
	}
	return nil
}

func (s *TripService) plan(ctx context.Context, req domain.TripRequest) (domain.TripRequest, domain.TripPlan, error) {
	req = s.normalize(req)
	if err := s.validate.Struct(req); err != nil {
		return req, domain.TripPlan{}, inputError(err)
	}

	current, err := s.resolve(ctx, "current_location", req.CurrentLocation)
	if err != nil {
		return req, domain.TripPlan{}, err
	}
	pickup, err := s.resolve(ctx, "pickup_location", req.PickupLocation)
	if err != nil {
		return req, domain.TripPlan{}, err
	}
	dropoff, err := s.resolve(ctx, "dropoff_location", req.DropoffLocation)
	if err != nil {
		return req, domain.TripPlan{}, err
	}

	plan, err := s.planner.Plan(req, current, pickup, dropoff)
	if err != nil {
		if errors.Is(err, domain.ErrInvariant) {
			s.logger.ErrorContext(ctx, "planner produced an invalid plan", "error", err)
		}
		return req, domain.TripPlan{}, err
	}
	return req, plan, nil
}

func (s *TripService) normalize(req domain.TripRequest) domain.TripRequest {
	req.CurrentLocation = strings.TrimSpace(req.CurrentLocation)
	req.PickupLocation = strings.TrimSpace(req.PickupLocation)
	req.DropoffLocation = strings.TrimSpace(req.DropoffLocation)
	req.Driver.DriverName = strings.TrimSpace(req.Driver.DriverName)
	req.Driver.CarrierName = strings.TrimSpace(req.Driver.CarrierName)
	req.Driver.VehicleNumber = strings.TrimSpace(req.Driver.VehicleNumber)
	if req.Driver.CarrierName == "" {
		req.Driver.CarrierName = s.defaults.CarrierName
	}
	if req.Driver.VehicleNumber == "" {
		req.Driver.VehicleNumber = s.defaults.VehicleNumber
	}
	if req.DepartAt.IsZero() {
		req.DepartAt = s.now().UTC().Truncate(time.Minute)
	}
	return req
}

// resolve geocodes one location. A miss is the caller's mistake and becomes
// an input error on field; anything else is an upstream failure.
func (s *TripService) resolve(ctx context.Context, field, query string) (domain.Place, error) {
	p, err := s.geocoder.Resolve(ctx, query)
	if errors.Is(err, geocode.ErrNotFound) {
		return domain.Place{}, &domain.InputError{Field: field, Value: query, Reason: "location could not be found"}
	}
	if err != nil {
		return domain.Place{}, fmt.Errorf("resolve %s: %w", field, err)
	}
	return p, nil
}
