package search

import (
	"context"
	"math/big"
	"time"

	"github.com/google/uuid"

	"github.com/coffee-fueled-dev/statespace/transition"
)

// DetectCycles walks depth-first from origin via the pull-based transition
// generator, reporting every back-edge to a state already on the current
// path as a cycle: the move sequence from that state's first occurrence
// back to it. Search continues past the first cycle found, up to limits.
func (sp *Space) DetectCycles(ctx context.Context, origin *big.Int, limits Limits) (CycleResult, error) {
	start := time.Now()

	visited := map[string]struct{}{}
	onStack := map[string]int{}
	var path []transition.Move
	var cycles [][]transition.Move
	budgetExhausted := false

	var dfs func(cur *big.Int, depth int) bool
	dfs = func(cur *big.Int, depth int) bool {
		select {
		case <-ctx.Done():
			budgetExhausted = true
			return true
		default:
		}
		if limits.HasTimeLimit && time.Since(start) > limits.TimeLimit {
			budgetExhausted = true
			return true
		}

		key := cur.String()
		if _, seen := visited[key]; !seen {
			visited[key] = struct{}{}
			if limits.HasVisitLimit && len(visited) > limits.VisitLimit {
				budgetExhausted = true
				return true
			}
		}
		onStack[key] = len(path)
		defer delete(onStack, key)

		if limits.HasStepLimit && depth >= limits.StepLimit {
			return false
		}

		st, err := sp.stateAt(cur)
		if err != nil {
			return false
		}
		it := transition.DF(sp.cfg, sp.coder, st)
		for {
			mv, ok := it.Next()
			if !ok {
				break
			}
			nextKey := mv.SuccessorIndex.String()
			if startPos, onPath := onStack[nextKey]; onPath {
				cycle := make([]transition.Move, len(path[startPos:])+1)
				copy(cycle, path[startPos:])
				cycle[len(cycle)-1] = mv
				cycles = append(cycles, cycle)
				continue
			}
			if _, alreadyExplored := visited[nextKey]; alreadyExplored {
				// Already fully explored off-stack: re-descending would
				// rediscover the same cycles without bounding work by
				// the visited set, as on a dense graph with shared
				// successors.
				continue
			}

			path = append(path, mv)
			stop := dfs(mv.SuccessorIndex, depth+1)
			path = path[:len(path)-1]
			if stop {
				return true
			}
		}
		return false
	}

	dfs(origin, 0)

	return CycleResult{
		RunID:           uuid.NewString(),
		Cycles:          cycles,
		VisitedCount:    len(visited),
		Elapsed:         time.Since(start),
		BudgetExhausted: budgetExhausted,
	}, nil
}
