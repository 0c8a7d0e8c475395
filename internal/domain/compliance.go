package domain

// RuleID names an Hours-of-Service rule checked by the compliance validator.
type RuleID string

const (
	RuleDriving11 RuleID = "driving-11" // 11 hours driving after 10 consecutive hours off
	RuleWindow14  RuleID = "window-14"  // no on-duty time past the 14th hour after coming on duty
	RuleBreak30   RuleID = "break-30"   // 30-minute interruption after 8 cumulative hours driving
	RuleCycle70   RuleID = "cycle-70"   // 70 on-duty hours in any 8 consecutive days
	RuleDriveTime RuleID = "drive-time" // planned driving must match the route's drive time
	RuleDistance  RuleID = "distance"   // planned miles must match the route's distance
)

// Violation describes a single broken rule.
// SegmentIndex points into the duty segment list the validator was given.
type Violation struct {
	Rule         RuleID
	SegmentIndex int
	Message      string
}

// ComplianceResult is the validator's verdict on a plan.
type ComplianceResult struct {
	Compliant  bool
	Violations []Violation
}
