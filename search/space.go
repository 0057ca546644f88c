// Package search implements the bounded exploration algorithms over a
// configuration's state space: breadth-limited reachability, bounded path
// search, depth-first cycle detection, and lazy recursive expansion. Every
// algorithm drives the transition package's successor generators from a
// single control flow — the core is single-threaded cooperative, as
// spec'd — and checks its Limits at each frontier dequeue or recursion
// entry so a caller's context cancellation or wall-clock budget is honored
// at a safe point.
package search

import (
	"math/big"

	"github.com/coffee-fueled-dev/statespace/codec"
	"github.com/coffee-fueled-dev/statespace/config"
	"github.com/coffee-fueled-dev/statespace/state"
)

// Space binds an immutable configuration to its ranking codec and exposes
// every bounded search as a method, so callers build one Space per
// configuration instead of threading cfg/coder through every call.
type Space struct {
	cfg   *config.Config
	coder *codec.Coder
}

// NewSpace builds the ranking codec for cfg and returns a ready Space.
func NewSpace(cfg *config.Config) (*Space, error) {
	coder, err := cfg.NewCoder()
	if err != nil {
		return nil, err
	}
	return &Space{cfg: cfg, coder: coder}, nil
}

// Coder returns the Space's ranking codec, for callers that need to
// encode/decode states outside a search (e.g. to build an origin index).
func (sp *Space) Coder() *codec.Coder { return sp.coder }

// defaultVisited picks an in-memory or disk-backed VisitedSet by the same
// estimated-size threshold rule the teacher's dedupe backend selection
// uses, keyed on the configuration's total state count rather than an
// estimated byte length.
func (sp *Space) defaultVisited() (VisitedSet, error) {
	if sp.coder.Cardinality().Cmp(big.NewInt(int64(MaxInMemoryVisitedSize))) > 0 {
		return NewHybridVisited()
	}
	return NewMapVisited(), nil
}

func (sp *Space) stateAt(index *big.Int) (state.Internal, error) {
	perm, err := sp.coder.Decode(index)
	if err != nil {
		return nil, err
	}
	return state.ToInternal(sp.cfg.Capacities(), perm), nil
}
