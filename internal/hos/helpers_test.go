package hos_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/pkordes/eld-planner/backend/internal/domain"
	"github.com/pkordes/eld-planner/backend/internal/hos"
)

// ---- fixtures --------------------------------------------------------------

var (
	chicago = domain.Place{Name: "Chicago, IL", Coordinates: domain.Coordinates{Lat: 41.8781, Lon: -87.6298}}
	dallas  = domain.Place{Name: "Dallas, TX", Coordinates: domain.Coordinates{Lat: 32.7767, Lon: -96.7970}}
	atlanta = domain.Place{Name: "Atlanta, GA", Coordinates: domain.Coordinates{Lat: 33.7490, Lon: -84.3880}}
	denver  = domain.Place{Name: "Denver, CO", Coordinates: domain.Coordinates{Lat: 39.7392, Lon: -104.9903}}
	seattle = domain.Place{Name: "Seattle, WA", Coordinates: domain.Coordinates{Lat: 47.6062, Lon: -122.3321}}
	miami   = domain.Place{Name: "Miami, FL", Coordinates: domain.Coordinates{Lat: 25.7617, Lon: -80.1918}}
)

// departAt is a fixed Monday 06:00 UTC so every run sees the same day boundaries.
var departAt = time.Date(2025, 6, 2, 6, 0, 0, 0, time.UTC)

// leg builds a leg whose miles match its drive time at 50 mph.
func leg(from, to domain.Place, drive time.Duration) domain.Leg {
	return domain.Leg{From: from, To: to, Miles: drive.Hours() * 50, DriveTime: drive}
}

// metrics builds RouteMetrics for a current → pickup → dropoff trip.
func metrics(toPickup, toDropoff time.Duration) domain.RouteMetrics {
	legs := []domain.Leg{leg(chicago, dallas, toPickup), leg(dallas, atlanta, toDropoff)}
	return domain.RouteMetrics{
		TotalDistance: legs[0].Miles + legs[1].Miles,
		RawDriveTime:  toPickup + toDropoff,
		Legs:          legs,
	}
}

func plan(t *testing.T, rules hos.Rules, m domain.RouteMetrics, cycle hos.CycleState) ([]domain.RoutePoint, []domain.DutySegment) {
	t.Helper()
	points, segments, err := hos.NewPlanner(rules).Plan(m, cycle, departAt)
	require.NoError(t, err)
	return points, segments
}

func pointTypes(points []domain.RoutePoint) []domain.PointType {
	out := make([]domain.PointType, len(points))
	for i, p := range points {
		out[i] = p.Type
	}
	return out
}

func statuses(segments []domain.DutySegment) []domain.DutyStatus {
	out := make([]domain.DutyStatus, len(segments))
	for i, s := range segments {
		out[i] = s.Status
	}
	return out
}

func durations(segments []domain.DutySegment) []time.Duration {
	out := make([]time.Duration, len(segments))
	for i, s := range segments {
		out[i] = s.Duration()
	}
	return out
}

func h(hours float64) time.Duration {
	return time.Duration(hours * float64(time.Hour))
}

// requireContiguous fails unless segments run back to back from start.
func requireContiguous(t *testing.T, start time.Time, segments []domain.DutySegment) {
	t.Helper()
	cursor := start
	for i, s := range segments {
		require.True(t, s.Start.Equal(cursor), "segment %d starts at %s, want %s", i, s.Start, cursor)
		require.True(t, s.End.After(s.Start), "segment %d is empty", i)
		cursor = s.End
	}
}
