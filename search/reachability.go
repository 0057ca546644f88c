package search

import (
	"context"
	"math/big"
	"time"

	"github.com/google/uuid"

	"github.com/coffee-fueled-dev/statespace/transition"
)

type reachEntry struct {
	index *big.Int
	depth int
}

// Reachability enumerates every state reachable from origin within limits,
// breadth-first. A nil visited set is replaced with the Space's default
// backend selection.
func (sp *Space) Reachability(ctx context.Context, origin *big.Int, limits Limits, visited VisitedSet) (ReachResult, error) {
	start := time.Now()
	if visited == nil {
		v, err := sp.defaultVisited()
		if err != nil {
			return ReachResult{}, err
		}
		visited = v
	}

	budgetExhausted := false
	visited.Add(origin.String())
	queue := []reachEntry{{origin, 0}}

search:
	for len(queue) > 0 {
		select {
		case <-ctx.Done():
			budgetExhausted = true
			break search
		default:
		}
		if limits.HasTimeLimit && time.Since(start) > limits.TimeLimit {
			budgetExhausted = true
			break search
		}
		if limits.HasVisitLimit && visited.Len() >= limits.VisitLimit {
			budgetExhausted = true
			break search
		}

		cur := queue[0]
		queue = queue[1:]

		if limits.HasStepLimit && cur.depth >= limits.StepLimit {
			continue
		}

		st, err := sp.stateAt(cur.index)
		if err != nil {
			return ReachResult{}, err
		}
		for _, mv := range transition.BF(sp.cfg, sp.coder, st) {
			if !visited.Add(mv.SuccessorIndex.String()) {
				continue
			}
			queue = append(queue, reachEntry{mv.SuccessorIndex, cur.depth + 1})
			if limits.HasVisitLimit && visited.Len() >= limits.VisitLimit {
				break
			}
		}
	}

	return ReachResult{
		RunID:           uuid.NewString(),
		Visited:         visited,
		VisitedCount:    visited.Len(),
		Elapsed:         time.Since(start),
		BudgetExhausted: budgetExhausted,
	}, nil
}
