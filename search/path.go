package search

import (
	"context"
	"math/big"
	"time"

	"github.com/google/uuid"

	"github.com/coffee-fueled-dev/statespace/transition"
)

type pathEntry struct {
	index *big.Int
	depth int
	path  []transition.Move
}

// PathSearch finds a move sequence from origin to target within limits,
// breadth-first, so the first path found uses the fewest steps. O == T
// returns an empty path in zero steps without touching the limits.
func (sp *Space) PathSearch(ctx context.Context, origin, target *big.Int, limits Limits) (PathResult, error) {
	start := time.Now()
	if origin.Cmp(target) == 0 {
		return PathResult{RunID: uuid.NewString(), Found: true, Steps: 0, Elapsed: time.Since(start)}, nil
	}

	visited := map[string]struct{}{origin.String(): {}}
	queue := []pathEntry{{origin, 0, nil}}
	budgetExhausted := false

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
		if limits.HasVisitLimit && len(visited) >= limits.VisitLimit {
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
			return PathResult{}, err
		}
		for _, mv := range transition.BF(sp.cfg, sp.coder, st) {
			extended := make([]transition.Move, len(cur.path)+1)
			copy(extended, cur.path)
			extended[len(cur.path)] = mv

			if mv.SuccessorIndex.Cmp(target) == 0 {
				return PathResult{
					RunID:        uuid.NewString(),
					Found:        true,
					Path:         extended,
					Steps:        cur.depth + 1,
					VisitedCount: len(visited),
					Elapsed:      time.Since(start),
				}, nil
			}

			key := mv.SuccessorIndex.String()
			if _, seen := visited[key]; seen {
				continue
			}
			visited[key] = struct{}{}
			queue = append(queue, pathEntry{mv.SuccessorIndex, cur.depth + 1, extended})
		}
	}

	return PathResult{
		RunID:           uuid.NewString(),
		Found:           false,
		VisitedCount:    len(visited),
		Elapsed:         time.Since(start),
		BudgetExhausted: budgetExhausted,
	}, nil
}
