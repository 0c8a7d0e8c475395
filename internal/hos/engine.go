package hos

import (
	"fmt"
	"math"

	"github.com/pkordes/eld-planner/backend/internal/domain"
)

// Engine runs the full planning pipeline. It holds only immutable rules and
// may be shared across goroutines.
type Engine struct {
	rules     Rules
	estimator *Estimator
	planner   *Planner
	generator *Generator
	validator *Validator
}

// NewEngine validates rules and builds an Engine from them.
func NewEngine(rules Rules) (*Engine, error) {
	if err := rules.Validate(); err != nil {
		return nil, err
	}
	return &Engine{
		rules:     rules,
		estimator: NewEstimator(rules),
		planner:   NewPlanner(rules),
		generator: NewGenerator(rules),
		validator: NewValidator(rules),
	}, nil
}

// WithDistanceFunc returns a copy of e whose estimator measures legs with f.
func (e *Engine) WithDistanceFunc(f DistanceFunc) *Engine {
	cp := *e
	cp.estimator = e.estimator.WithDistanceFunc(f)
	return &cp
}

// Rules returns the rule set the engine plans with.
func (e *Engine) Rules() Rules {
	return e.rules
}

// Plan produces the route, duty timeline, daily logs and compliance verdict
// for req. The three places are req's locations, already resolved.
//
// Plan is deterministic: identical arguments give identical results.
func (e *Engine) Plan(req domain.TripRequest, current, pickup, dropoff domain.Place) (domain.TripPlan, error) {
	if err := e.checkRequest(req); err != nil {
		return domain.TripPlan{}, err
	}

	metrics, err := e.estimator.Estimate(current, pickup, dropoff)
	if err != nil {
		return domain.TripPlan{}, err
	}

	cycle := NewCycleState(req.CurrentCycleUsed)
	points, segments, err := e.planner.Plan(metrics, cycle, req.DepartAt)
	if err != nil {
		return domain.TripPlan{}, err
	}
	if err := checkTimeline(req.DepartAt, points, segments); err != nil {
		return domain.TripPlan{}, err
	}

	logs, err := e.generator.Generate(req.Driver, segments)
	if err != nil {
		return domain.TripPlan{}, err
	}
	if err := checkLogs(e.generator.loc, logs, segments); err != nil {
		return domain.TripPlan{}, err
	}

	plan := domain.TripPlan{
		Metrics:     metrics,
		DepartAt:    req.DepartAt,
		ArriveAt:    points[len(points)-1].EstimatedArrival,
		RoutePoints: points,
		Segments:    segments,
		Logs:        logs,
		Compliance:  e.validator.Validate(metrics, cycle, segments),
	}
	for _, seg := range segments {
		plan.TotalTripTime += seg.Duration()
	}
	for _, p := range points {
		switch p.Type {
		case domain.PointFuel:
			plan.FuelStops++
		case domain.PointRest:
			plan.RestStops++
		}
	}
	return plan, nil
}

func (e *Engine) checkRequest(req domain.TripRequest) error {
	used, limit := req.CurrentCycleUsed, e.rules.CycleLimit.Hours()
	if math.IsNaN(used) || used < 0 || used > limit {
		return &domain.InputError{
			Field:  "current_cycle_used",
			Value:  used,
			Reason: fmt.Sprintf("must be between 0 and %g hours, got %v", limit, used),
		}
	}
	if req.DepartAt.IsZero() {
		return &domain.InputError{Field: "depart_at", Reason: "departure time is required"}
	}
	return nil
}
