package search

import (
	"context"
	"math/big"
	"time"

	"github.com/coffee-fueled-dev/statespace/transition"
)

// Expand enumerates levels 0..levels of a recursive breadth-first
// expansion from multiple origins, emitting each first-reached state as a
// Discovery on the returned channel. Level 0 holds the origins; level k+1
// holds states first reached at depth k+1. Discoveries within one level
// are emitted in the BF generator's declared order. The channel is closed
// once expansion completes, the context is cancelled, or limits exhaust —
// mirroring the teacher's Execute(ctx) <-chan string streaming shape.
func (sp *Space) Expand(ctx context.Context, origins []*big.Int, levels int, opts ExpandOptions) <-chan LevelEvent {
	out := make(chan LevelEvent, 16)

	go func() {
		defer close(out)

		start := time.Now()
		visited := opts.Visited
		if visited == nil {
			v, err := sp.defaultVisited()
			if err != nil {
				return
			}
			visited = v
		}

		batchSize := opts.EmitFrequency
		if batchSize < 1 {
			batchSize = 1
		}

		var pending []Discovery
		flush := func() {
			if len(pending) == 0 {
				return
			}
			select {
			case out <- LevelEvent{Discoveries: pending}:
			case <-ctx.Done():
			}
			pending = nil
		}
		emit := func(d Discovery) {
			pending = append(pending, d)
			if len(pending) >= batchSize {
				flush()
			}
		}

		order := 0
		frontier := make([]*big.Int, 0, len(origins))
		for _, o := range origins {
			if !visited.Add(o.String()) {
				continue
			}
			frontier = append(frontier, o)
			emit(Discovery{Index: o, Level: 0, Order: order})
			order++
		}
		flush()

		for level := 0; level < levels; level++ {
			select {
			case <-ctx.Done():
				return
			default:
			}
			if opts.Limits.HasTimeLimit && time.Since(start) > opts.Limits.TimeLimit {
				flush()
				return
			}

			var next []*big.Int
			for _, idx := range frontier {
				st, err := sp.stateAt(idx)
				if err != nil {
					continue
				}
				for _, mv := range transition.BF(sp.cfg, sp.coder, st) {
					if !visited.Add(mv.SuccessorIndex.String()) {
						continue
					}
					if opts.Limits.HasVisitLimit && visited.Len() > opts.Limits.VisitLimit {
						flush()
						return
					}
					next = append(next, mv.SuccessorIndex)
					pred := idx
					emit(Discovery{Index: mv.SuccessorIndex, Level: level + 1, Predecessor: pred, Order: order})
					order++
				}
			}
			flush()
			if len(next) == 0 {
				break
			}
			frontier = next
		}
	}()

	return out
}
