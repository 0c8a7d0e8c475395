package domain

import "time"

// DriverInfo carries the identity fields printed on every daily log.
type DriverInfo struct {
	DriverName    string `validate:"max=100"`
	CarrierName   string `validate:"max=100"`
	VehicleNumber string `validate:"max=50"`
}

// StatusTotals is the time spent in each duty status on one log, the figures
// a driver writes in the right-hand column of a paper log.
type StatusTotals struct {
	OffDuty      time.Duration
	SleeperBerth time.Duration
	Driving      time.Duration
	OnDuty       time.Duration
}

// Add accumulates d into the bucket for status.
func (t *StatusTotals) Add(status DutyStatus, d time.Duration) {
	switch status {
	case StatusOffDuty:
		t.OffDuty += d
	case StatusSleeperBerth:
		t.SleeperBerth += d
	case StatusDriving:
		t.Driving += d
	case StatusOnDuty:
		t.OnDuty += d
	}
}

// ELDLog is the record for one calendar day of a trip.
// Date is formatted "2006-01-02" in the home-terminal time zone.
type ELDLog struct {
	Date       string
	Driver     DriverInfo
	TotalMiles float64
	Totals     StatusTotals
	Segments   []DutySegment
}
