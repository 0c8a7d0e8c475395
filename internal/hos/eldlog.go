package hos

import (
	"fmt"
	"time"

	"github.com/pkordes/eld-planner/backend/internal/domain"
)

// LogDateLayout is the format of ELDLog.Date.
const LogDateLayout = "2006-01-02"

// Generator turns a duty timeline into daily logs.
type Generator struct {
	loc *time.Location
}

// NewGenerator returns a Generator that draws day boundaries in the rules'
// home-terminal time zone.
func NewGenerator(rules Rules) *Generator {
	loc := rules.Location
	if loc == nil {
		loc = time.UTC
	}
	return &Generator{loc: loc}
}

// Generate returns one log per calendar day touched by segments, in
// chronological order. Segments must run back to back. A segment that crosses
// midnight is split at midnight; both halves keep the status and note, and the
// split point's coordinates and odometer are interpolated. The split point is
// named after where the truck is at midnight.
func (g *Generator) Generate(driver domain.DriverInfo, segments []domain.DutySegment) ([]domain.ELDLog, error) {
	logs := []domain.ELDLog{}
	var prevEnd time.Time
	for i, seg := range segments {
		if !seg.End.After(seg.Start) {
			return nil, &domain.InvariantError{
				Check:  "segment duration",
				Detail: fmt.Sprintf("segment %d (%s) ends at or before its start", i, seg.Status),
			}
		}
		if i > 0 && seg.Start.Before(prevEnd) {
			return nil, &domain.InvariantError{
				Check:  "segment order",
				Detail: fmt.Sprintf("segment %d starts before segment %d ends", i, i-1),
			}
		}
		if i > 0 && seg.Start.After(prevEnd) {
			return nil, &domain.InvariantError{
				Check:  "segment order",
				Detail: fmt.Sprintf("gap of %s between segments %d and %d", seg.Start.Sub(prevEnd), i-1, i),
			}
		}
		prevEnd = seg.End

		rest := seg
		for {
			midnight := g.dayStart(rest.Start).AddDate(0, 0, 1)
			if !rest.End.After(midnight) {
				logs = g.appendTo(logs, driver, rest)
				break
			}
			head, tail := splitAt(rest, midnight)
			logs = g.appendTo(logs, driver, head)
			rest = tail
		}
	}

	for i := range logs {
		var miles float64
		for _, seg := range logs[i].Segments {
			logs[i].Totals.Add(seg.Status, seg.Duration())
			if seg.Status == domain.StatusDriving {
				miles += seg.Miles()
			}
		}
		logs[i].TotalMiles = RoundMiles(miles)
	}
	return logs, nil
}

func (g *Generator) dayStart(t time.Time) time.Time {
	t = t.In(g.loc)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, g.loc)
}

func (g *Generator) appendTo(logs []domain.ELDLog, driver domain.DriverInfo, seg domain.DutySegment) []domain.ELDLog {
	date := g.dayStart(seg.Start).Format(LogDateLayout)
	if n := len(logs); n > 0 && logs[n-1].Date == date {
		logs[n-1].Segments = append(logs[n-1].Segments, seg)
		return logs
	}
	return append(logs, domain.ELDLog{
		Date:     date,
		Driver:   driver,
		Segments: []domain.DutySegment{seg},
	})
}

// splitAt cuts seg at t, which must lie strictly inside it.
func splitAt(seg domain.DutySegment, t time.Time) (domain.DutySegment, domain.DutySegment) {
	fraction := float64(t.Sub(seg.Start)) / float64(seg.Duration())
	at := placeBetween(seg.Location, seg.EndLocation, fraction)
	odometer := seg.StartOdometer + (seg.EndOdometer-seg.StartOdometer)*fraction

	head, tail := seg, seg
	head.End = t
	head.EndLocation = at
	head.EndOdometer = odometer
	tail.Start = t
	tail.Location = at
	tail.StartOdometer = odometer
	return head, tail
}

// Flatten concatenates the logs' segments and rejoins the halves of segments
// that Generate split at midnight, reproducing the original timeline.
//
// Two pieces are rejoined when they sit on either side of a log boundary,
// touch in time and space, and share status and note. The planner never emits
// two adjacent segments that match in all of those.
func Flatten(logs []domain.ELDLog) []domain.DutySegment {
	var out []domain.DutySegment
	for i, log := range logs {
		for j, seg := range log.Segments {
			if i > 0 && j == 0 && len(out) > 0 {
				last := &out[len(out)-1]
				if continues(*last, seg) {
					last.End = seg.End
					last.EndLocation = seg.EndLocation
					last.EndOdometer = seg.EndOdometer
					continue
				}
			}
			out = append(out, seg)
		}
	}
	return out
}

func continues(prev, next domain.DutySegment) bool {
	return prev.End.Equal(next.Start) &&
		prev.Status == next.Status &&
		prev.Note == next.Note &&
		prev.EndLocation.Coordinates == next.Location.Coordinates &&
		prev.EndOdometer == next.StartOdometer
}
