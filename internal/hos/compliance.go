package hos

import (
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/pkordes/eld-planner/backend/internal/domain"
)

// Validator re-checks a duty timeline against the Hours-of-Service limits.
// It derives every counter from the segments alone, so it can judge a plan
// produced by any planner.
type Validator struct {
	rules Rules
}

// NewValidator returns a Validator bound to rules.
func NewValidator(rules Rules) *Validator {
	return &Validator{rules: rules}
}

// Validate reports every segment that breaks a limit.
//
//   - A qualifying rest is a run of consecutive off_duty/sleeper_berth time of
//     at least RestDuration; it resets the 11-hour and 14-hour counters.
//   - A restart is such a run of at least RestartDuration; it also resets the
//     cycle, including the hours in prior.
//   - A break is any run of consecutive non-driving time of at least
//     BreakDuration; it resets the 8-hour driving counter.
//
// The cycle total at the end of each on-duty segment is prior.Used (until the
// first restart) plus all on-duty time since the last restart that falls in
// the trailing CycleDays.
//
// Finally the driving segments are compared with metrics: their total time
// must equal RawDriveTime and their miles TotalDistance.
func (v *Validator) Validate(metrics domain.RouteMetrics, prior CycleState, segments []domain.DutySegment) domain.ComplianceResult {
	r := v.rules
	violations := []domain.Violation{}
	flag := func(rule domain.RuleID, idx int, format string, args ...any) {
		violations = append(violations, domain.Violation{
			Rule:         rule,
			SegmentIndex: idx,
			Message:      fmt.Sprintf(format, args...),
		})
	}

	var (
		offRun        time.Duration
		nonDrivingRun time.Duration
		shiftDriving  time.Duration
		breakDriving  time.Duration
		windowStart   time.Time
		windowOpen    bool
		cycleFrom     int
		priorCounts   = true
		totalDriving  time.Duration
		totalMiles    float64
	)

	for i, seg := range segments {
		d := seg.Duration()

		if !seg.Status.OnDuty() {
			offRun += d
			nonDrivingRun += d
			if offRun >= r.RestartDuration {
				priorCounts = false
				cycleFrom = i + 1
			}
			if offRun >= r.RestDuration {
				shiftDriving = 0
				windowOpen = false
			}
			if nonDrivingRun >= r.BreakDuration {
				breakDriving = 0
			}
			continue
		}
		offRun = 0

		if seg.Status == domain.StatusDriving {
			nonDrivingRun = 0
		} else {
			nonDrivingRun += d
			if nonDrivingRun >= r.BreakDuration {
				breakDriving = 0
			}
		}

		if !windowOpen {
			windowStart = seg.Start
			windowOpen = true
		}
		if elapsed := seg.End.Sub(windowStart); elapsed > r.MaxWindow {
			flag(domain.RuleWindow14, i, "on duty until %s after coming on duty (limit %s)",
				hours(elapsed), hours(r.MaxWindow))
		}

		if seg.Status == domain.StatusDriving {
			shiftDriving += d
			breakDriving += d
			totalDriving += d
			totalMiles += seg.Miles()
			if shiftDriving > r.MaxDriving {
				flag(domain.RuleDriving11, i, "%s driving since the last %s rest (limit %s)",
					hours(shiftDriving), hours(r.RestDuration), hours(r.MaxDriving))
			}
			if breakDriving > r.BreakAfterDriving {
				flag(domain.RuleBreak30, i, "%s driving without a %s break (limit %s)",
					hours(breakDriving), hours(r.BreakDuration), hours(r.BreakAfterDriving))
			}
		}

		used := v.rollingOnDuty(segments[cycleFrom:i+1], seg.End)
		if priorCounts {
			used += prior.Used
		}
		if used > r.CycleLimit {
			flag(domain.RuleCycle70, i, "%s on duty in the last %d days (limit %s)",
				hours(used), r.CycleDays, hours(r.CycleLimit))
		}
	}

	if totalDriving != metrics.RawDriveTime {
		flag(domain.RuleDriveTime, -1, "planned driving %s does not match route drive time %s",
			hours(totalDriving), hours(metrics.RawDriveTime))
	}
	if math.Abs(totalMiles-metrics.TotalDistance) > 0.05 {
		flag(domain.RuleDistance, -1, "planned driving covers %.1f mi but the route is %.1f mi",
			totalMiles, metrics.TotalDistance)
	}

	return domain.ComplianceResult{
		Compliant:  len(violations) == 0,
		Violations: violations,
	}
}

// rollingOnDuty sums on-duty time in segs that overlaps the CycleDays ending at end.
func (v *Validator) rollingOnDuty(segs []domain.DutySegment, end time.Time) time.Duration {
	from := end.Add(-time.Duration(v.rules.CycleDays) * 24 * time.Hour)
	var total time.Duration
	for _, s := range segs {
		if !s.Status.OnDuty() {
			continue
		}
		start, stop := s.Start, s.End
		if start.Before(from) {
			start = from
		}
		if stop.After(end) {
			stop = end
		}
		if stop.After(start) {
			total += stop.Sub(start)
		}
	}
	return total
}

func hours(d time.Duration) string {
	return strconv.FormatFloat(math.Round(d.Hours()*100)/100, 'f', -1, 64) + "h"
}
