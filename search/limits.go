package search

import "time"

// Limits bounds a search's work. Each dimension is unbounded unless its
// Has* flag is set, so an explicit zero (e.g. StepLimit: 0 with
// HasStepLimit: true) is distinguishable from "no limit configured" — the
// spec's boundary table requires both to be expressible.
type Limits struct {
	StepLimit     int
	HasStepLimit  bool
	VisitLimit    int
	HasVisitLimit bool
	TimeLimit     time.Duration
	HasTimeLimit  bool
}

// Unbounded is the zero-value Limits: every dimension unconstrained.
var Unbounded = Limits{}

// WithStepLimit returns a copy of l bounding the number of moves explored
// from the origin.
func (l Limits) WithStepLimit(n int) Limits {
	l.StepLimit = n
	l.HasStepLimit = true
	return l
}

// WithVisitLimit returns a copy of l capping the number of distinct states
// examined.
func (l Limits) WithVisitLimit(n int) Limits {
	l.VisitLimit = n
	l.HasVisitLimit = true
	return l
}

// WithTimeLimit returns a copy of l bounding wall-clock duration.
func (l Limits) WithTimeLimit(d time.Duration) Limits {
	l.TimeLimit = d
	l.HasTimeLimit = true
	return l
}
