// Package domain contains the core data types for the ELD trip planner.
// This package depends only on the standard library and google/uuid and is
// imported by every other internal package (hos, geocode, repo, service, handler).
package domain

import (
	"time"

	"github.com/google/uuid"
)

// Trip statuses. A trip stored by the repo without an explicit status is
// "calculated"; trips the driver saves through the API are "saved".
const (
	TripStatusCalculated = "calculated"
	TripStatusSaved      = "saved"
)

// TripRequest is the input to trip planning.
// Locations are free-form strings resolved by the geocoding layer before the
// planning engine sees them.
type TripRequest struct {
	CurrentLocation string `validate:"required,max=200"`
	PickupLocation  string `validate:"required,max=200"`
	DropoffLocation string `validate:"required,max=200"`
	// CurrentCycleUsed is the on-duty hours already consumed in the rolling
	// 8-day window.
	CurrentCycleUsed float64 `validate:"gte=0,lte=70"`
	Driver           DriverInfo
	// DepartAt is when the driver leaves the current location. The service
	// fills it with the current time when the caller leaves it zero.
	DepartAt time.Time
}

// TripPlan is the fully materialized result of planning one trip.
type TripPlan struct {
	Metrics       RouteMetrics
	DepartAt      time.Time
	ArriveAt      time.Time
	TotalTripTime time.Duration
	FuelStops     int
	RestStops     int
	RoutePoints   []RoutePoint
	Segments      []DutySegment
	Logs          []ELDLog
	Compliance    ComplianceResult
}

// Trip is a planned trip as stored by the persistence layer.
// A trip is the top-level aggregate; route points and logs belong to it.
type Trip struct {
	ID        uuid.UUID
	Request   TripRequest
	Plan      TripPlan
	Status    string
	CreatedAt time.Time
	UpdatedAt time.Time
}
