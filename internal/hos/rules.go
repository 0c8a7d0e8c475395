// Package hos is the trip planning engine: distance estimation, stop planning
// under the property-carrying Hours-of-Service rules, daily ELD log generation
// and an independent compliance check.
//
// Everything in this package is a pure function of its inputs. It performs no
// I/O, holds no mutable shared state, and is safe for concurrent use.
package hos

import (
	"fmt"
	"time"

	"github.com/pkordes/eld-planner/backend/internal/domain"
)

// Rules holds the regulatory limits and the operational assumptions the
// planner works with. Regulatory values default to the FMCSA property-carrying
// rules; operational values are configuration.
type Rules struct {
	// Regulatory limits.
	MaxDriving        time.Duration // driving allowed after a qualifying rest (11h)
	MaxWindow         time.Duration // on-duty window after a qualifying rest (14h)
	BreakAfterDriving time.Duration // cumulative driving that requires a break (8h)
	BreakDuration     time.Duration // minimum break length (30m)
	RestDuration      time.Duration // qualifying rest length (10h)
	CycleLimit        time.Duration // on-duty hours in the rolling window (70h)
	CycleDays         int           // length of the rolling window in days (8)
	RestartDuration   time.Duration // off-duty period that resets the cycle (34h)

	// Operational assumptions.
	AverageSpeedMPH   float64
	CircuityFactor    float64 // road miles per great-circle mile
	FuelIntervalMiles float64
	FuelDuration      time.Duration
	PickupDuration    time.Duration
	DropoffDuration   time.Duration
	RestStatus        domain.DutyStatus // status logged for 10-hour rests
	Location          *time.Location    // home-terminal time zone for daily logs
}

// DefaultRules returns the 70-hour/8-day property-carrying rule set with a
// 50 mph average speed, a fuel stop every 1,000 miles and one hour each for
// pickup and dropoff.
func DefaultRules() Rules {
	return Rules{
		MaxDriving:        11 * time.Hour,
		MaxWindow:         14 * time.Hour,
		BreakAfterDriving: 8 * time.Hour,
		BreakDuration:     30 * time.Minute,
		RestDuration:      10 * time.Hour,
		CycleLimit:        70 * time.Hour,
		CycleDays:         8,
		RestartDuration:   34 * time.Hour,

		AverageSpeedMPH:   50,
		CircuityFactor:    1.0,
		FuelIntervalMiles: 1000,
		FuelDuration:      30 * time.Minute,
		PickupDuration:    time.Hour,
		DropoffDuration:   time.Hour,
		RestStatus:        domain.StatusSleeperBerth,
		Location:          time.UTC,
	}
}

// Validate checks that the rule set is internally consistent. Fixed dwells
// must fit inside an empty on-duty window, otherwise no plan could ever be
// produced for them.
func (r Rules) Validate() error {
	positive := []struct {
		name string
		d    time.Duration
	}{
		{"max driving", r.MaxDriving},
		{"max window", r.MaxWindow},
		{"break after driving", r.BreakAfterDriving},
		{"break duration", r.BreakDuration},
		{"rest duration", r.RestDuration},
		{"cycle limit", r.CycleLimit},
		{"restart duration", r.RestartDuration},
	}
	for _, p := range positive {
		if p.d <= 0 {
			return fmt.Errorf("hos: %s must be positive, got %s", p.name, p.d)
		}
	}
	if r.CycleDays <= 0 {
		return fmt.Errorf("hos: cycle days must be positive, got %d", r.CycleDays)
	}
	if r.AverageSpeedMPH <= 0 {
		return fmt.Errorf("hos: average speed must be positive, got %v", r.AverageSpeedMPH)
	}
	if r.CircuityFactor < 1 {
		return fmt.Errorf("hos: circuity factor must be at least 1, got %v", r.CircuityFactor)
	}
	if r.FuelIntervalMiles <= 0 {
		return fmt.Errorf("hos: fuel interval must be positive, got %v", r.FuelIntervalMiles)
	}
	if r.fuelInterval() < time.Minute {
		return fmt.Errorf("hos: fuel interval of %v miles is under a minute of driving", r.FuelIntervalMiles)
	}
	if r.MaxDriving > r.MaxWindow {
		return fmt.Errorf("hos: max driving %s exceeds max window %s", r.MaxDriving, r.MaxWindow)
	}
	if r.RestartDuration < r.RestDuration {
		return fmt.Errorf("hos: restart %s shorter than rest %s", r.RestartDuration, r.RestDuration)
	}
	for _, dwell := range []time.Duration{r.FuelDuration, r.PickupDuration, r.DropoffDuration} {
		if dwell < 0 || dwell > r.MaxWindow || dwell > r.CycleLimit {
			return fmt.Errorf("hos: dwell %s does not fit an empty on-duty window", dwell)
		}
	}
	if r.RestStatus != domain.StatusOffDuty && r.RestStatus != domain.StatusSleeperBerth {
		return fmt.Errorf("hos: rest status must be off_duty or sleeper_berth, got %q", r.RestStatus)
	}
	if r.Location == nil {
		return fmt.Errorf("hos: time zone is required")
	}
	return nil
}

// fuelInterval is the driving time that covers FuelIntervalMiles at the
// average speed. Fuel stops are scheduled on driving time so they fall on
// whole minutes.
func (r Rules) fuelInterval() time.Duration {
	return hoursToDuration(r.FuelIntervalMiles / r.AverageSpeedMPH)
}

// hoursToDuration converts fractional hours to a Duration rounded to the minute.
func hoursToDuration(h float64) time.Duration {
	return time.Duration(h * float64(time.Hour)).Round(time.Minute)
}
