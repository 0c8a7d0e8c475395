package hos

import (
	"time"

	"github.com/pkordes/eld-planner/backend/internal/domain"
)

// CycleState tracks on-duty time consumed in the rolling cycle. It is a value:
// every method returns a new state and planning threads it through explicitly.
//
// The hours a driver reports up front are treated as falling inside the
// rolling window for the whole trip. That never undercounts, so a plan that
// respects CycleState also respects the true rolling total.
type CycleState struct {
	Used     time.Duration
	Restarts int
}

// NewCycleState starts a cycle from the on-duty hours already used.
func NewCycleState(usedHours float64) CycleState {
	return CycleState{Used: hoursToDuration(usedHours)}
}

// Add records d of on-duty time.
func (c CycleState) Add(d time.Duration) CycleState {
	c.Used += d
	return c
}

// Restart zeroes the cycle after a qualifying off-duty period.
func (c CycleState) Restart() CycleState {
	return CycleState{Used: 0, Restarts: c.Restarts + 1}
}

// Remaining returns the on-duty time left before limit is reached.
func (c CycleState) Remaining(limit time.Duration) time.Duration {
	if c.Used >= limit {
		return 0
	}
	return limit - c.Used
}

// Exhausted reports whether no on-duty time remains under limit.
func (c CycleState) Exhausted(limit time.Duration) bool {
	return c.Used >= limit
}

// Hours returns Used in fractional hours.
func (c CycleState) Hours() float64 {
	return c.Used.Hours()
}

// checkPlannable rejects a cycle that is already exhausted before any
// restart has been taken.
func (c CycleState) checkPlannable(limit time.Duration) error {
	if c.Restarts == 0 && c.Exhausted(limit) {
		return &domain.UnplannableError{
			Reason:    "cycle hours already exhausted; a 34-hour restart is required before driving",
			CycleUsed: c.Hours(),
		}
	}
	return nil
}
