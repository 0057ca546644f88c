package search

import (
	"math/big"
	"time"

	"github.com/coffee-fueled-dev/statespace/transition"
)

// ReachResult is the outcome of a Reachability search: every state index
// reached from the origin within the supplied limits.
type ReachResult struct {
	RunID           string
	Visited         VisitedSet
	VisitedCount    int
	Elapsed         time.Duration
	BudgetExhausted bool
}

// PathResult is the outcome of a PathSearch: the shortest (in steps found
// by breadth-first order) move sequence from origin to target, if any.
type PathResult struct {
	RunID           string
	Found           bool
	Path            []transition.Move
	Steps           int
	VisitedCount    int
	Elapsed         time.Duration
	BudgetExhausted bool
}

// CycleResult is the outcome of a DetectCycles search: every back-edge
// found, expressed as the move sequence from the cycle's earliest repeated
// state back to itself.
type CycleResult struct {
	RunID           string
	Cycles          [][]transition.Move
	VisitedCount    int
	Elapsed         time.Duration
	BudgetExhausted bool
}

// Discovery is one state first reached during a recursive expansion.
type Discovery struct {
	Index       *big.Int
	Level       int
	Predecessor *big.Int // nil for level-0 origins
	Order       int
}

// LevelEvent batches one or more Discoveries, in discovery order, emitted
// by Expand.
type LevelEvent struct {
	Discoveries []Discovery
}

// ExpandOptions configures a recursive expansion.
type ExpandOptions struct {
	Limits Limits
	// EmitFrequency batches this many discoveries per LevelEvent without
	// reordering them. Values below 1 are treated as 1 (emit individually).
	EmitFrequency int
	// Visited overrides the automatically selected VisitedSet backend.
	Visited VisitedSet
}
