package domain

import "time"

// PointType classifies a RoutePoint.
type PointType string

const (
	PointStart   PointType = "start"
	PointPickup  PointType = "pickup"
	PointDropoff PointType = "dropoff"
	PointRest    PointType = "rest"
	PointFuel    PointType = "fuel"
	PointEnd     PointType = "end"
)

// RestReason says which rule a rest point satisfies. Empty for non-rest points.
type RestReason string

const (
	ReasonBreak   RestReason = "break"   // 30-minute break after 8 hours of driving
	ReasonRest    RestReason = "rest"    // 10 consecutive hours off duty
	ReasonRestart RestReason = "restart" // 34-hour cycle restart
)

// Leg is one driven leg of the trip (current → pickup, pickup → dropoff).
type Leg struct {
	From      Place
	To        Place
	Miles     float64
	DriveTime time.Duration
}

// RouteMetrics is the distance model's output for one trip.
// RawDriveTime is always the sum of the legs' drive times.
type RouteMetrics struct {
	TotalDistance float64
	RawDriveTime  time.Duration
	Legs          []Leg
}

// RoutePoint is a planned stop along the route.
// Sequence is 1-based and strictly increasing within a plan.
type RoutePoint struct {
	Sequence         int
	Type             PointType
	Reason           RestReason
	Place            Place
	Duration         time.Duration
	EstimatedArrival time.Time
	Odometer         float64
}
