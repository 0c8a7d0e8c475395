package hos

import (
	"fmt"
	"time"

	"github.com/pkordes/eld-planner/backend/internal/domain"
)

// checkTimeline verifies the planner's output: points numbered 1..n from start
// to end, segments contiguous from departAt to the arrival at the end point,
// and odometer readings that never decrease.
func checkTimeline(departAt time.Time, points []domain.RoutePoint, segments []domain.DutySegment) error {
	if len(points) < 2 {
		return &domain.InvariantError{Check: "route points", Detail: fmt.Sprintf("only %d points", len(points))}
	}
	if points[0].Type != domain.PointStart || points[len(points)-1].Type != domain.PointEnd {
		return &domain.InvariantError{Check: "route points", Detail: "route must begin with start and finish with end"}
	}
	for i, p := range points {
		if p.Sequence != i+1 {
			return &domain.InvariantError{
				Check:  "route points",
				Detail: fmt.Sprintf("point %d has sequence %d", i, p.Sequence),
			}
		}
		if i > 0 && (p.EstimatedArrival.Before(points[i-1].EstimatedArrival) || p.Odometer < points[i-1].Odometer) {
			return &domain.InvariantError{
				Check:  "route points",
				Detail: fmt.Sprintf("point %d goes back in time or distance", p.Sequence),
			}
		}
	}

	cursor := departAt
	odometer := 0.0
	for i, seg := range segments {
		if !seg.Status.Valid() {
			return &domain.InvariantError{Check: "timeline", Detail: fmt.Sprintf("segment %d has status %q", i, seg.Status)}
		}
		if !seg.Start.Equal(cursor) {
			return &domain.InvariantError{
				Check:  "timeline",
				Detail: fmt.Sprintf("segment %d starts at %s, expected %s", i, seg.Start, cursor),
			}
		}
		if !seg.End.After(seg.Start) {
			return &domain.InvariantError{Check: "timeline", Detail: fmt.Sprintf("segment %d is empty", i)}
		}
		if seg.StartOdometer < odometer || seg.EndOdometer < seg.StartOdometer {
			return &domain.InvariantError{Check: "timeline", Detail: fmt.Sprintf("segment %d odometer decreases", i)}
		}
		cursor = seg.End
		odometer = seg.EndOdometer
	}

	if end := points[len(points)-1].EstimatedArrival; !cursor.Equal(end) {
		return &domain.InvariantError{
			Check:  "timeline",
			Detail: fmt.Sprintf("segments end at %s but the trip ends at %s", cursor, end),
		}
	}
	return nil
}

// checkLogs verifies that every log is contiguous and stays inside its day,
// and that Flatten gives back exactly the segments the logs were built from.
func checkLogs(loc *time.Location, logs []domain.ELDLog, segments []domain.DutySegment) error {
	prevDate := ""
	for _, log := range logs {
		day, err := time.ParseInLocation(LogDateLayout, log.Date, loc)
		if err != nil {
			return &domain.InvariantError{Check: "daily logs", Detail: err.Error()}
		}
		if log.Date <= prevDate {
			return &domain.InvariantError{Check: "daily logs", Detail: fmt.Sprintf("log %s out of order", log.Date)}
		}
		prevDate = log.Date

		next := day.AddDate(0, 0, 1)
		for j, seg := range log.Segments {
			if seg.Start.Before(day) || seg.End.After(next) {
				return &domain.InvariantError{
					Check:  "daily logs",
					Detail: fmt.Sprintf("log %s segment %d falls outside the day", log.Date, j),
				}
			}
			if j > 0 && !seg.Start.Equal(log.Segments[j-1].End) {
				return &domain.InvariantError{
					Check:  "daily logs",
					Detail: fmt.Sprintf("log %s segments %d and %d overlap or leave a gap", log.Date, j-1, j),
				}
			}
		}
	}

	flat := Flatten(logs)
	if len(flat) != len(segments) {
		return &domain.InvariantError{
			Check:  "daily logs",
			Detail: fmt.Sprintf("logs rejoin into %d segments, planned %d", len(flat), len(segments)),
		}
	}
	for i := range flat {
		if !sameSegment(flat[i], segments[i]) {
			return &domain.InvariantError{
				Check:  "daily logs",
				Detail: fmt.Sprintf("segment %d changed while splitting into days", i),
			}
		}
	}
	return nil
}

func sameSegment(a, b domain.DutySegment) bool {
	return a.Status == b.Status &&
		a.Start.Equal(b.Start) &&
		a.End.Equal(b.End) &&
		a.Location == b.Location &&
		a.EndLocation == b.EndLocation &&
		a.StartOdometer == b.StartOdometer &&
		a.EndOdometer == b.EndOdometer &&
		a.Note == b.Note
}
