package hos

import (
	"fmt"
	"math"
	"regexp"
	"time"

	"github.com/pkordes/eld-planner/backend/internal/domain"
	"github.com/pkordes/eld-planner/backend/internal/geo"
)

// Planner schedules driving, dwells and mandatory stops for one trip.
type Planner struct {
	rules Rules
}

// NewPlanner returns a Planner bound to rules.
func NewPlanner(rules Rules) *Planner {
	return &Planner{rules: rules}
}

// Plan lays out the trip described by metrics starting at departAt.
//
// The timeline is: start, drive to pickup, pickup, drive to dropoff, dropoff,
// end. While driving, the planner stops for a 34-hour restart when the cycle
// runs out, a 10-hour rest when the 11-hour driving or 14-hour window limit is
// reached, a 30-minute break after 8 hours of driving, and fuel every
// FuelIntervalMiles, checked in that order. Every point with a non-zero dwell
// produces one duty segment; driving between points produces driving segments.
func (p *Planner) Plan(metrics domain.RouteMetrics, cycle CycleState, departAt time.Time) ([]domain.RoutePoint, []domain.DutySegment, error) {
	if metrics.RawDriveTime < 0 {
		return nil, nil, &domain.UnplannableError{
			Reason:    fmt.Sprintf("negative drive time %s", metrics.RawDriveTime),
			CycleUsed: cycle.Hours(),
		}
	}
	if len(metrics.Legs) != 2 {
		return nil, nil, &domain.InvariantError{
			Check:  "route legs",
			Detail: fmt.Sprintf("expected 2 legs (to pickup, to dropoff), got %d", len(metrics.Legs)),
		}
	}
	for _, leg := range metrics.Legs {
		if leg.DriveTime < 0 || leg.Miles < 0 {
			return nil, nil, &domain.UnplannableError{
				Reason:    fmt.Sprintf("leg to %q has negative drive time or distance", leg.To.Name),
				CycleUsed: cycle.Hours(),
			}
		}
	}
	if err := cycle.checkPlannable(p.rules.CycleLimit); err != nil {
		return nil, nil, err
	}

	toPickup, toDropoff := metrics.Legs[0], metrics.Legs[1]
	s := &planState{
		rules:     p.rules,
		now:       departAt,
		place:     toPickup.From,
		cycle:     cycle,
		untilFuel: p.rules.fuelInterval(),
	}

	s.stop(domain.PointStart, "", 0, "", "")
	s.drive(toPickup)
	s.dwell(domain.PointPickup, p.rules.PickupDuration, "Pickup")
	s.drive(toDropoff)
	s.dwell(domain.PointDropoff, p.rules.DropoffDuration, "Dropoff")
	s.stop(domain.PointEnd, "", 0, "", "")

	return s.points, s.segments, nil
}

// planState is the running bookkeeping for a single Plan call.
type planState struct {
	rules Rules

	now      time.Time
	place    domain.Place
	odometer float64
	cycle    CycleState

	driving    time.Duration // driving since the last qualifying rest
	window     time.Duration // on-duty time since the last qualifying rest
	sinceBreak time.Duration // driving since the last 30-minute interruption
	untilFuel  time.Duration // driving left before the next fuel stop

	points   []domain.RoutePoint
	segments []domain.DutySegment
}

// drive covers leg, stopping whenever a limit or the fuel interval is reached.
func (s *planState) drive(leg domain.Leg) {
	startOdometer := s.odometer
	var done time.Duration
	for done < leg.DriveTime {
		s.clearToDrive()

		step := min(leg.DriveTime-done, s.drivable())
		done += step

		fraction := float64(done) / float64(leg.DriveTime)
		end := leg.To
		endOdometer := startOdometer + leg.Miles
		if done < leg.DriveTime {
			end = enRoute(leg, fraction)
			endOdometer = startOdometer + leg.Miles*fraction
		}

		s.segments = append(s.segments, domain.DutySegment{
			Status:        domain.StatusDriving,
			Start:         s.now,
			End:           s.now.Add(step),
			Location:      s.place,
			EndLocation:   end,
			StartOdometer: s.odometer,
			EndOdometer:   endOdometer,
			Note:          "Driving to " + leg.To.Name,
		})

		s.now = s.now.Add(step)
		s.place = end
		s.odometer = endOdometer
		s.driving += step
		s.window += step
		s.sinceBreak += step
		s.untilFuel -= step
		s.cycle = s.cycle.Add(step)
	}
	s.place = leg.To
	s.odometer = startOdometer + leg.Miles
}

// drivable is how long the driver may keep driving before some stop is due.
func (s *planState) drivable() time.Duration {
	return min(
		s.rules.MaxDriving-s.driving,
		s.rules.MaxWindow-s.window,
		s.rules.BreakAfterDriving-s.sinceBreak,
		s.cycle.Remaining(s.rules.CycleLimit),
		s.untilFuel,
	)
}

// clearToDrive inserts stops until driving may resume. Regulatory stops come
// before a fuel stop that is due at the same moment.
func (s *planState) clearToDrive() {
	for s.drivable() <= 0 {
		switch {
		case s.cycle.Exhausted(s.rules.CycleLimit):
			s.restart()
		case s.driving >= s.rules.MaxDriving || s.window >= s.rules.MaxWindow:
			s.rest()
		case s.sinceBreak >= s.rules.BreakAfterDriving:
			s.takeBreak()
		default:
			s.fuel()
		}
	}
}

// makeRoom guarantees that d of on-duty time fits in both the cycle and the
// current window.
func (s *planState) makeRoom(d time.Duration) {
	if s.cycle.Remaining(s.rules.CycleLimit) < d {
		s.restart()
		return
	}
	if s.window+d > s.rules.MaxWindow {
		s.rest()
	}
}

func (s *planState) dwell(kind domain.PointType, d time.Duration, note string) {
	s.makeRoom(d)
	s.stop(kind, "", d, domain.StatusOnDuty, note)
}

func (s *planState) takeBreak() {
	s.makeRoom(s.rules.BreakDuration)
	if s.sinceBreak == 0 {
		// makeRoom already took a rest.
		return
	}
	s.stop(domain.PointRest, domain.ReasonBreak, s.rules.BreakDuration, domain.StatusOnDuty,
		fmt.Sprintf("%s break", minutesLabel(s.rules.BreakDuration)))
}

func (s *planState) fuel() {
	s.makeRoom(s.rules.FuelDuration)
	s.stop(domain.PointFuel, "", s.rules.FuelDuration, domain.StatusOnDuty, "Fuel stop")
	s.untilFuel = s.rules.fuelInterval()
}

func (s *planState) rest() {
	s.stop(domain.PointRest, domain.ReasonRest, s.rules.RestDuration, s.rules.RestStatus,
		fmt.Sprintf("%s rest", hoursLabel(s.rules.RestDuration)))
	s.resetShift()
}

func (s *planState) restart() {
	s.stop(domain.PointRest, domain.ReasonRestart, s.rules.RestartDuration, domain.StatusOffDuty,
		fmt.Sprintf("%s restart", hoursLabel(s.rules.RestartDuration)))
	s.cycle = s.cycle.Restart()
	s.resetShift()
}

func (s *planState) resetShift() {
	s.driving = 0
	s.window = 0
	s.sinceBreak = 0
}

// stop emits a route point at the current place and, when d > 0, the duty
// segment spent there.
func (s *planState) stop(kind domain.PointType, reason domain.RestReason, d time.Duration, status domain.DutyStatus, note string) {
	s.points = append(s.points, domain.RoutePoint{
		Sequence:         len(s.points) + 1,
		Type:             kind,
		Reason:           reason,
		Place:            s.place,
		Duration:         d,
		EstimatedArrival: s.now,
		Odometer:         s.odometer,
	})
	if d <= 0 {
		return
	}

	s.segments = append(s.segments, domain.DutySegment{
		Status:        status,
		Start:         s.now,
		End:           s.now.Add(d),
		Location:      s.place,
		EndLocation:   s.place,
		StartOdometer: s.odometer,
		EndOdometer:   s.odometer,
		Note:          note,
	})
	s.now = s.now.Add(d)

	if status.OnDuty() {
		s.window += d
		s.cycle = s.cycle.Add(d)
	}
	if d >= s.rules.BreakDuration {
		s.sinceBreak = 0
	}
}

// enRoute names a point part-way along leg relative to the nearer endpoint,
// e.g. "42 mi SW of Chicago, IL".
func enRoute(leg domain.Leg, fraction float64) domain.Place {
	return placeBetween(leg.From, leg.To, fraction)
}

var relativeName = regexp.MustCompile(`^\d+ mi [NSEW]{1,2} of `)

// placeBetween interpolates fraction of the way from a to b and names the
// result relative to the nearer of the two. An endpoint already named
// relative to somewhere else is only used when the other one is as well.
func placeBetween(a, b domain.Place, fraction float64) domain.Place {
	at := geo.Interpolate(a.Coordinates, b.Coordinates, fraction)

	ref, other := a, b
	if fraction > 0.5 {
		ref, other = b, a
	}
	if relativeName.MatchString(ref.Name) && !relativeName.MatchString(other.Name) {
		ref = other
	}

	miles := geo.HaversineMiles(ref.Coordinates, at)
	if miles < 1 {
		return domain.Place{Name: ref.Name, Coordinates: at}
	}
	dir := geo.CompassPoint(geo.Bearing(ref.Coordinates, at))
	return domain.Place{
		Name:        fmt.Sprintf("%d mi %s of %s", int(math.Round(miles)), dir, ref.Name),
		Coordinates: at,
	}
}

func hoursLabel(d time.Duration) string {
	return fmt.Sprintf("%g-hour", d.Hours())
}

func minutesLabel(d time.Duration) string {
	return fmt.Sprintf("%g-minute", d.Minutes())
}
