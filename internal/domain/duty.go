package domain

import "time"

// DutyStatus is one of the four ELD duty statuses.
type DutyStatus string

const (
	StatusOffDuty      DutyStatus = "off_duty"
	StatusSleeperBerth DutyStatus = "sleeper_berth"
	StatusDriving      DutyStatus = "driving"
	StatusOnDuty       DutyStatus = "on_duty_not_driving"
)

// Valid reports whether s is a known duty status.
func (s DutyStatus) Valid() bool {
	switch s {
	case StatusOffDuty, StatusSleeperBerth, StatusDriving, StatusOnDuty:
		return true
	}
	return false
}

// OnDuty reports whether time in this status counts against the 14-hour
// window and the 70-hour cycle.
func (s DutyStatus) OnDuty() bool {
	return s == StatusDriving || s == StatusOnDuty
}

// DutySegment is a contiguous interval in a single duty status.
// Location is where the segment starts and EndLocation where it ends; they are
// equal for stationary statuses. Odometer readings are cumulative trip miles.
type DutySegment struct {
	Status        DutyStatus
	Start         time.Time
	End           time.Time
	Location      Place
	EndLocation   Place
	StartOdometer float64
	EndOdometer   float64
	Note          string
}

// Duration returns End - Start.
func (s DutySegment) Duration() time.Duration {
	return s.End.Sub(s.Start)
}

// Miles returns the distance covered during the segment.
func (s DutySegment) Miles() float64 {
	return s.EndOdometer - s.StartOdometer
}
