// Package repo contains all database access logic for the ELD trip planner.
// Each resource has its own file with an interface and a Postgres implementation.
// No business logic lives here, only SQL and type mapping.
package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/pkordes/eld-planner/backend/internal/domain"
	"github.com/pkordes/eld-planner/backend/internal/hos"
)

// db is the minimal interface satisfied by *pgxpool.Pool, pgx.Conn, and pgx.Tx.
// Accepting this interface instead of *pgxpool.Pool directly allows integration
// tests to pass a transaction that is rolled back after each test, giving free
// per-test isolation without any manual cleanup. Begin on a pgx.Tx opens a
// savepoint, so Create stays atomic in both cases.
type db interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Begin(ctx context.Context) (pgx.Tx, error)
}

// TripRepo defines the persistence operations for planned trips.
// The service layer depends on this interface, not the concrete Postgres implementation,
// which allows the service to be unit-tested with a mock.
type TripRepo interface {
	// Create inserts a trip with its route points and daily logs in one
	// transaction and returns the persisted record (with DB-generated id,
	// created_at, and updated_at populated).
	Create(ctx context.Context, trip domain.Trip) (domain.Trip, error)

	// GetByID retrieves a trip with its route points and logs. The duty
	// timeline is rebuilt from the logs. Returns domain.ErrNotFound if no trip with that ID exists.
	GetByID(ctx context.Context, id uuid.UUID) (domain.Trip, error)

	// ListPaged returns one page of trip summaries, newest first, and the
	// total number of trips. Summaries carry no route points, segments or logs.
	ListPaged(ctx context.Context, p domain.PaginationParams) ([]domain.Trip, int64, error)

	// Delete removes a trip and everything that belongs to it.
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

const tripColumns = `
	id, current_location, pickup_location, dropoff_location, current_cycle_used,
	driver_name, carrier_name, vehicle_number, depart_at, arrive_at,
	total_distance_miles, drive_seconds, total_trip_seconds, fuel_stops, rest_stops,
	legs, compliant, violations, status, created_at, updated_at`

// Create inserts the trip row, then its children in a single batch.
func (r *pgTripRepo) Create(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("repo.TripRepo.Create: begin: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	q := `
		INSERT INTO trips (
			current_location, pickup_location, dropoff_location, current_cycle_used,
			driver_name, carrier_name, vehicle_number, depart_at, arrive_at,
			total_distance_miles, drive_seconds, total_trip_seconds, fuel_stops, rest_stops,
			legs, compliant, violations, status)
		VALUES (
			@current_location, @pickup_location, @dropoff_location, @current_cycle_used,
			@driver_name, @carrier_name, @vehicle_number, @depart_at, @arrive_at,
			@total_distance_miles, @drive_seconds, @total_trip_seconds, @fuel_stops, @rest_stops,
			@legs, @compliant, @violations, @status)
		RETURNING` + tripColumns

	req, plan := trip.Request, trip.Plan
	status := trip.Status
	if status == "" {
		status = domain.TripStatusCalculated
	}
	args := pgx.NamedArgs{
		"current_location":     req.CurrentLocation,
		"pickup_location":      req.PickupLocation,
		"dropoff_location":     req.DropoffLocation,
		"current_cycle_used":   req.CurrentCycleUsed,
		"driver_name":          req.Driver.DriverName,
		"carrier_name":         req.Driver.CarrierName,
		"vehicle_number":       req.Driver.VehicleNumber,
		"depart_at":            plan.DepartAt,
		"arrive_at":            plan.ArriveAt,
		"total_distance_miles": plan.Metrics.TotalDistance,
		"drive_seconds":        seconds(plan.Metrics.RawDriveTime),
		"total_trip_seconds":   seconds(plan.TotalTripTime),
		"fuel_stops":           plan.FuelStops,
		"rest_stops":           plan.RestStops,
		"legs":                 toLegRows(plan.Metrics.Legs),
		"compliant":            plan.Compliance.Compliant,
		"violations":           toViolationRows(plan.Compliance.Violations),
		"status":               status,
	}

	saved, err := scanTrip(tx.QueryRow(ctx, q, args))
	if err != nil {
		return domain.Trip{}, fmt.Errorf("repo.TripRepo.Create: %w", err)
	}

	batch := &pgx.Batch{}
	queuePoints(batch, saved.ID, plan.RoutePoints)
	if err := queueLogs(batch, saved.ID, plan.Logs); err != nil {
		return domain.Trip{}, fmt.Errorf("repo.TripRepo.Create: %w", err)
	}
	if batch.Len() > 0 {
		if err := tx.SendBatch(ctx, batch).Close(); err != nil {
			return domain.Trip{}, fmt.Errorf("repo.TripRepo.Create: children: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return domain.Trip{}, fmt.Errorf("repo.TripRepo.Create: commit: %w", err)
	}

	saved.Plan.RoutePoints = plan.RoutePoints
	saved.Plan.Logs = plan.Logs
	saved.Plan.Segments = plan.Segments
	return saved, nil
}

// GetByID retrieves a trip by primary key together with its children.
func (r *pgTripRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.Trip, error) {
	q := `SELECT` + tripColumns + `
		FROM trips
		WHERE id = @id`

	t, err := scanTrip(r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id}))
	if err != nil {
		return domain.Trip{}, fmt.Errorf("repo.TripRepo.GetByID: %w", err)
	}

	if t.Plan.RoutePoints, err = r.listPoints(ctx, id); err != nil {
		return domain.Trip{}, fmt.Errorf("repo.TripRepo.GetByID: %w", err)
	}
	if t.Plan.Logs, err = r.listLogs(ctx, id, t.Request.Driver); err != nil {
		return domain.Trip{}, fmt.Errorf("repo.TripRepo.GetByID: %w", err)
	}
	t.Plan.Segments = hos.Flatten(t.Plan.Logs)
	return t, nil
}

// ListPaged returns one page of trips ordered by created_at descending
// (most recent first) and the total row count.
func (r *pgTripRepo) ListPaged(ctx context.Context, p domain.PaginationParams) ([]domain.Trip, int64, error) {
	var total int64
	if err := r.db.QueryRow(ctx, `SELECT count(*) FROM trips`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("repo.TripRepo.ListPaged: count: %w", err)
	}

	q := `SELECT` + tripColumns + `
		FROM trips
		ORDER BY created_at DESC, id
		LIMIT @limit OFFSET @offset`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"limit": p.Limit, "offset": p.Offset()})
	if err != nil {
		return nil, 0, fmt.Errorf("repo.TripRepo.ListPaged: %w", err)
	}
	defer rows.Close()

	trips := []domain.Trip{}
	for rows.Next() {
		t, err := scanTrip(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("repo.TripRepo.ListPaged: scan: %w", err)
		}
		trips = append(trips, t)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("repo.TripRepo.ListPaged: rows: %w", err)
	}

	return trips, total, nil
}

// Delete removes a trip by primary key. Children go with it via ON DELETE CASCADE.
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

// scanner is satisfied by both pgx.Row and pgx.Rows, allowing scanTrip to be
// reused for both QueryRow and Query calls.
type scanner interface {
	Scan(dest ...any) error
}

// scanTrip maps a trips row (tripColumns) into a domain.Trip without children.
func scanTrip(s scanner) (domain.Trip, error) {
	var (
		t                   domain.Trip
		id                  pgtype.UUID
		driveSec, totalSec  int64
		legs                []legRow
		violations          []violationRow
		departAt, arriveAt  time.Time
		createdAt, updateAt time.Time
	)
	req := &t.Request
	plan := &t.Plan

	err := s.Scan(
		&id, &req.CurrentLocation, &req.PickupLocation, &req.DropoffLocation, &req.CurrentCycleUsed,
		&req.Driver.DriverName, &req.Driver.CarrierName, &req.Driver.VehicleNumber, &departAt, &arriveAt,
		&plan.Metrics.TotalDistance, &driveSec, &totalSec, &plan.FuelStops, &plan.RestStops,
		&legs, &plan.Compliance.Compliant, &violations, &t.Status, &createdAt, &updateAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Trip{}, domain.ErrNotFound
		}
		return domain.Trip{}, err
	}

	t.ID = uuid.UUID(id.Bytes)
	req.DepartAt = departAt.UTC()
	plan.DepartAt = departAt.UTC()
	plan.ArriveAt = arriveAt.UTC()
	plan.Metrics.RawDriveTime = time.Duration(driveSec) * time.Second
	plan.TotalTripTime = time.Duration(totalSec) * time.Second
	plan.Metrics.Legs = fromLegRows(legs)
	plan.Compliance.Violations = fromViolationRows(violations)
	t.CreatedAt = createdAt.UTC()
	t.UpdatedAt = updateAt.UTC()
	return t, nil
}

func seconds(d time.Duration) int64 {
	return int64(d / time.Second)
}
