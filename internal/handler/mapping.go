package handler

import (
	"time"

	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/pkordes/eld-planner/backend/internal/domain"
	"github.com/pkordes/eld-planner/backend/internal/handler/gen"
	"github.com/pkordes/eld-planner/backend/internal/hos"
)

// requestToDomain converts the request body into a domain.TripRequest.
// Optional fields left out of the body stay zero; the service fills defaults.
func requestToDomain(body gen.TripRequest) domain.TripRequest {
	req := domain.TripRequest{
		CurrentLocation:  body.CurrentLocation,
		PickupLocation:   body.PickupLocation,
		DropoffLocation:  body.DropoffLocation,
		CurrentCycleUsed: body.CurrentCycleUsed,
		Driver: domain.DriverInfo{
			DriverName:    deref(body.DriverName),
			CarrierName:   deref(body.CarrierName),
			VehicleNumber: deref(body.VehicleNumber),
		},
	}
	if body.DepartAt != nil {
		req.DepartAt = *body.DepartAt
	}
	return req
}

func requestToResponse(r domain.TripRequest) gen.TripRequest {
	departAt := r.DepartAt
	return gen.TripRequest{
		CurrentLocation:  r.CurrentLocation,
		PickupLocation:   r.PickupLocation,
		DropoffLocation:  r.DropoffLocation,
		CurrentCycleUsed: r.CurrentCycleUsed,
		DepartAt:         &departAt,
		DriverName:       optional(r.Driver.DriverName),
		CarrierName:      optional(r.Driver.CarrierName),
		VehicleNumber:    optional(r.Driver.VehicleNumber),
	}
}

// tripToResponse converts a domain.Trip into the generated gen.Trip type.
func tripToResponse(t domain.Trip) gen.Trip {
	return gen.Trip{
		Id:        t.ID,
		Status:    t.Status,
		Request:   requestToResponse(t.Request),
		Plan:      planToResponse(t.Plan),
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
}

func tripToSummary(t domain.Trip) gen.TripSummary {
	return gen.TripSummary{
		Id:               t.ID,
		Status:           t.Status,
		CurrentLocation:  t.Request.CurrentLocation,
		PickupLocation:   t.Request.PickupLocation,
		DropoffLocation:  t.Request.DropoffLocation,
		CurrentCycleUsed: t.Request.CurrentCycleUsed,
		TotalDistance:    hos.RoundMiles(t.Plan.Metrics.TotalDistance),
		TotalTripTime:    hos.RoundHours(t.Plan.TotalTripTime),
		DepartAt:         t.Plan.DepartAt,
		ArriveAt:         t.Plan.ArriveAt,
		Compliant:        t.Plan.Compliance.Compliant,
		CreatedAt:        t.CreatedAt,
	}
}

// planToResponse flattens the plan and its compliance result into the API
// shape. Distances are rounded to a tenth of a mile and durations to
// hundredths of an hour.
func planToResponse(p domain.TripPlan) gen.TripPlan {
	violations := make([]gen.Violation, len(p.Compliance.Violations))
	for i, v := range p.Compliance.Violations {
		violations[i] = gen.Violation{
			Rule:         string(v.Rule),
			SegmentIndex: v.SegmentIndex,
			Message:      v.Message,
		}
	}
	return gen.TripPlan{
		TotalDistance:      hos.RoundMiles(p.Metrics.TotalDistance),
		EstimatedDriveTime: hos.RoundHours(p.Metrics.RawDriveTime),
		TotalTripTime:      hos.RoundHours(p.TotalTripTime),
		DepartAt:           p.DepartAt,
		ArriveAt:           p.ArriveAt,
		FuelStops:          p.FuelStops,
		RestStops:          p.RestStops,
		Legs:               legsToResponse(p.Metrics.Legs),
		RoutePoints:        pointsToResponse(p.RoutePoints),
		EldLogs:            logsToResponse(p.Logs),
		Compliant:          p.Compliance.Compliant,
		Violations:         violations,
	}
}

func placeToResponse(p domain.Place) gen.Place {
	return gen.Place{Name: p.Name, Lat: p.Lat, Lon: p.Lon}
}

func legsToResponse(legs []domain.Leg) []gen.Leg {
	out := make([]gen.Leg, len(legs))
	for i, l := range legs {
		out[i] = gen.Leg{
			From:       placeToResponse(l.From),
			To:         placeToResponse(l.To),
			Miles:      hos.RoundMiles(l.Miles),
			DriveHours: hos.RoundHours(l.DriveTime),
		}
	}
	return out
}

func pointsToResponse(points []domain.RoutePoint) []gen.RoutePoint {
	out := make([]gen.RoutePoint, len(points))
	for i, p := range points {
		out[i] = gen.RoutePoint{
			Sequence:         p.Sequence,
			PointType:        gen.RoutePointType(p.Type),
			Location:         placeToResponse(p.Place),
			DurationMinutes:  int(p.Duration.Round(time.Minute) / time.Minute),
			DurationHours:    hos.RoundHours(p.Duration),
			EstimatedArrival: p.EstimatedArrival,
			OdometerMiles:    hos.RoundMiles(p.Odometer),
		}
		if p.Reason != "" {
			reason := gen.RestReason(p.Reason)
			out[i].Reason = &reason
		}
	}
	return out
}

func logsToResponse(logs []domain.ELDLog) []gen.DailyLog {
	out := make([]gen.DailyLog, len(logs))
	for i, l := range logs {
		segments := make([]gen.DutySegment, len(l.Segments))
		for j, s := range l.Segments {
			segments[j] = segmentToResponse(s)
		}
		out[i] = gen.DailyLog{
			Date:          mustParseDate(l.Date),
			DriverName:    l.Driver.DriverName,
			CarrierName:   l.Driver.CarrierName,
			VehicleNumber: l.Driver.VehicleNumber,
			TotalMiles:    hos.RoundMiles(l.TotalMiles),
			Totals: gen.StatusTotals{
				OffDuty:          hos.RoundHours(l.Totals.OffDuty),
				SleeperBerth:     hos.RoundHours(l.Totals.SleeperBerth),
				Driving:          hos.RoundHours(l.Totals.Driving),
				OnDutyNotDriving: hos.RoundHours(l.Totals.OnDuty),
			},
			Segments: segments,
		}
	}
	return out
}

func segmentToResponse(s domain.DutySegment) gen.DutySegment {
	return gen.DutySegment{
		Status:        gen.DutyStatus(s.Status),
		StartTime:     s.Start,
		EndTime:       s.End,
		DurationHours: hos.RoundHours(s.Duration()),
		Location:      placeToResponse(s.Location),
		EndLocation:   placeToResponse(s.EndLocation),
		StartOdometer: hos.RoundMiles(s.StartOdometer),
		EndOdometer:   hos.RoundMiles(s.EndOdometer),
		Note:          optional(s.Note),
	}
}

// mustParseDate parses a log date into an openapi_types.Date.
// Panics on malformed input; callers pass dates produced by the engine.
func mustParseDate(s string) openapi_types.Date {
	t, err := time.Parse(hos.LogDateLayout, s)
	if err != nil {
		panic("handler: malformed log date: " + s)
	}
	return openapi_types.Date{Time: t}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// optional returns nil for "" so the field is omitted from JSON.
func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
