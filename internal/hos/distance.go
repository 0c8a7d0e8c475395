package hos

import (
	"math"
	"time"

	"github.com/shopspring/decimal"

	"github.com/pkordes/eld-planner/backend/internal/domain"
	"github.com/pkordes/eld-planner/backend/internal/geo"
)

// DistanceFunc returns the distance in miles between two points. It must be
// symmetric and return 0 for identical points.
type DistanceFunc func(a, b domain.Coordinates) float64

// Estimator turns the three trip locations into RouteMetrics.
type Estimator struct {
	rules    Rules
	distance DistanceFunc
}

// NewEstimator returns an Estimator that uses great-circle distance scaled by
// the rules' circuity factor.
func NewEstimator(rules Rules) *Estimator {
	circuity := rules.CircuityFactor
	return &Estimator{
		rules: rules,
		distance: func(a, b domain.Coordinates) float64 {
			return geo.HaversineMiles(a, b) * circuity
		},
	}
}

// WithDistanceFunc returns a copy of e that measures legs with f.
func (e *Estimator) WithDistanceFunc(f DistanceFunc) *Estimator {
	cp := *e
	cp.distance = f
	return &cp
}

// Estimate measures the current → pickup and pickup → dropoff legs.
// Leg miles are rounded to a tenth of a mile and leg drive times to the
// minute; RawDriveTime is the sum of the rounded leg times.
func (e *Estimator) Estimate(current, pickup, dropoff domain.Place) (domain.RouteMetrics, error) {
	for _, p := range []struct {
		field string
		place domain.Place
	}{
		{"current_location", current},
		{"pickup_location", pickup},
		{"dropoff_location", dropoff},
	} {
		if err := checkPlace(p.field, p.place); err != nil {
			return domain.RouteMetrics{}, err
		}
	}

	first, err := e.leg("pickup_location", current, pickup)
	if err != nil {
		return domain.RouteMetrics{}, err
	}
	second, err := e.leg("dropoff_location", pickup, dropoff)
	if err != nil {
		return domain.RouteMetrics{}, err
	}

	total := decimal.NewFromFloat(first.Miles).Add(decimal.NewFromFloat(second.Miles))
	return domain.RouteMetrics{
		TotalDistance: total.Round(1).InexactFloat64(),
		RawDriveTime:  first.DriveTime + second.DriveTime,
		Legs:          []domain.Leg{first, second},
	}, nil
}

func (e *Estimator) leg(field string, from, to domain.Place) (domain.Leg, error) {
	raw := e.distance(from.Coordinates, to.Coordinates)
	if math.IsNaN(raw) || math.IsInf(raw, 0) || raw < 0 {
		return domain.Leg{}, &domain.InputError{Field: field, Value: to.Name, Reason: "location is unreachable"}
	}

	miles := RoundMiles(raw)
	drive := hoursToDuration(miles / e.rules.AverageSpeedMPH)
	if miles > 0 && drive < time.Minute {
		// Every driven mile must belong to a driving segment.
		drive = time.Minute
	}
	return domain.Leg{From: from, To: to, Miles: miles, DriveTime: drive}, nil
}

func checkPlace(field string, p domain.Place) error {
	if p.Name == "" {
		return &domain.InputError{Field: field, Reason: "location is required"}
	}
	if !p.Coordinates.Valid() {
		return &domain.InputError{Field: field, Value: p.Name, Reason: "location has invalid coordinates"}
	}
	return nil
}

// RoundMiles rounds a distance to a tenth of a mile.
func RoundMiles(m float64) float64 {
	return decimal.NewFromFloat(m).Round(1).InexactFloat64()
}

// RoundHours converts d to hours rounded to two decimals.
func RoundHours(d time.Duration) float64 {
	return decimal.NewFromFloat(d.Hours()).Round(2).InexactFloat64()
}
