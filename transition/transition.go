// Package transition implements the engine that enumerates legal successor
// states from one internal state: for each source container and each
// allowed transition it declares, extract candidates from the source via
// that transition's from-position handler, then insert candidates into the
// target via its to-position handler, assembling one successor state per
// extract/insert pair. Traversal order is fully determined by container,
// transition, and handler declaration order, so both the eager and
// pull-based variants emit the same sequence for the same input.
package transition

import (
	"math/big"

	"github.com/coffee-fueled-dev/statespace/codec"
	"github.com/coffee-fueled-dev/statespace/config"
	"github.com/coffee-fueled-dev/statespace/handler"
	"github.com/coffee-fueled-dev/statespace/state"
)

// Move is an immutable record of one legal state transition. It owns its
// own copy of metadata; no back-pointer to the state it was produced from.
type Move struct {
	Element        codec.Symbol
	FromID         string
	ToID           string
	MoveType       string
	Cost           *float64
	Metadata       map[string]any
	SuccessorIndex *big.Int
}

func cloneMetadata(src map[string]any) map[string]any {
	if src == nil {
		return nil
	}
	out := make(map[string]any, len(src))
	for k, v := range src {
		out[k] = v
	}
	return out
}

// cursor holds the nested-loop position of an in-progress enumeration:
// which source container, which of its transitions, which extract
// candidate, which insert candidate.
type cursor struct {
	containerIdx int
	transIdx     int
	takes        []handler.Take
	takeIdx      int
	places       []handler.Place
	placeIdx     int
	moveType     string
}

// Iterator is the depth-first, pull-based successor generator: one Move
// per Next() call, suspended between calls by holding cursor state rather
// than by a goroutine.
type Iterator struct {
	cfg   *config.Config
	coder *codec.Coder
	st    state.Internal
	c     cursor
}

// NewIterator starts a fresh enumeration over st. The configuration and
// coder are shared by reference and never mutated.
func NewIterator(cfg *config.Config, coder *codec.Coder, st state.Internal) *Iterator {
	return &Iterator{cfg: cfg, coder: coder, st: st}
}

// Next returns the next successor Move in declared order, or ok=false once
// every container, transition, extract candidate, and insert candidate has
// been exhausted.
func (it *Iterator) Next() (Move, bool) {
	for {
		if it.c.containerIdx >= len(it.cfg.Containers) {
			return Move{}, false
		}
		ct := it.cfg.Containers[it.c.containerIdx]

		if it.c.transIdx >= len(ct.Transitions) {
			it.c.containerIdx++
			it.c.transIdx = 0
			it.c.takes = nil
			it.c.takeIdx = 0
			it.c.places = nil
			it.c.placeIdx = 0
			continue
		}
		tr := ct.Transitions[it.c.transIdx]

		if it.c.takes == nil {
			fromHandler, _ := handler.Get(ct.EffectiveFrom(tr))
			it.c.takes = fromHandler.Extract(it.st[it.c.containerIdx])
			it.c.takeIdx = 0
			it.c.places = nil
			it.c.placeIdx = 0
			if len(it.c.takes) == 0 {
				it.c.transIdx++
				it.c.takes = nil
				continue
			}
		}

		if it.c.takeIdx >= len(it.c.takes) {
			it.c.transIdx++
			it.c.takes = nil
			it.c.takeIdx = 0
			continue
		}
		take := it.c.takes[it.c.takeIdx]
		targetIdx := it.cfg.ContainerIndex(tr.Target)

		if it.c.places == nil {
			toHandler, _ := handler.Get(it.cfg.EffectiveTo(tr))
			baseSlots := it.st[targetIdx]
			if targetIdx == it.c.containerIdx {
				baseSlots = take.After
			}
			it.c.moveType = it.cfg.ResolveMoveType(ct.ID, tr.Target, tr.MoveType)
			ctx := handler.MoveContext{MoveType: it.c.moveType, Cost: tr.Cost, Metadata: ct.Metadata}
			it.c.places = toHandler.Insert(baseSlots, take.Elem, ctx)
			it.c.placeIdx = 0
			if len(it.c.places) == 0 {
				it.c.takeIdx++
				it.c.places = nil
				continue
			}
		}

		if it.c.placeIdx >= len(it.c.places) {
			it.c.takeIdx++
			it.c.places = nil
			it.c.placeIdx = 0
			continue
		}
		place := it.c.places[it.c.placeIdx]
		it.c.placeIdx++

		next := it.st.Clone()
		next[it.c.containerIdx] = take.After
		next[targetIdx] = place.After
		idx, err := it.coder.Encode(state.ToPermutation(next))
		if err != nil {
			// A handler produced a slot vector outside the bank's multiset.
			// This cannot happen for built-in handlers; skip rather than
			// panic so a misbehaving custom handler degrades gracefully.
			continue
		}

		return Move{
			Element:        take.Elem,
			FromID:         ct.ID,
			ToID:           tr.Target,
			MoveType:       it.c.moveType,
			Cost:           tr.Cost,
			Metadata:       cloneMetadata(ct.Metadata),
			SuccessorIndex: idx,
		}, true
	}
}

// DF returns a pull-based iterator over st's successors: one Move per
// Next() call, suspending between calls by holding cursor state.
func DF(cfg *config.Config, coder *codec.Coder, st state.Internal) *Iterator {
	return NewIterator(cfg, coder, st)
}

// BF eagerly materialises every successor of st, in the same declared
// order the DF iterator would yield them.
func BF(cfg *config.Config, coder *codec.Coder, st state.Internal) []Move {
	it := NewIterator(cfg, coder, st)
	var moves []Move
	for {
		mv, ok := it.Next()
		if !ok {
			break
		}
		moves = append(moves, mv)
	}
	return moves
}
