package runner

import (
	"github.com/coffee-fueled-dev/statespace/codec"
	"github.com/coffee-fueled-dev/statespace/config"
	"github.com/coffee-fueled-dev/statespace/handler"
	"github.com/coffee-fueled-dev/statespace/state"
)

// pegHandler is the Tower of Hanoi sample's custom position policy: a peg
// fills bottom-up (lowest free slot first) and only ever exposes its
// highest occupied slot for removal. Insert rejects a disk larger than the
// one directly below the target slot by comparing symbols, since the bank's
// declared order (smallest disk first) makes a disk's symbol its size rank.
type pegHandler struct{}

func withReplaced(slots []codec.Symbol, i int, v codec.Symbol) []codec.Symbol {
	out := make([]codec.Symbol, len(slots))
	copy(out, slots)
	out[i] = v
	return out
}

func (pegHandler) Extract(slots []codec.Symbol) []handler.Take {
	for i := len(slots) - 1; i >= 0; i-- {
		if slots[i] != codec.Empty {
			return []handler.Take{{Elem: slots[i], After: withReplaced(slots, i, codec.Empty)}}
		}
	}
	return nil
}

func (pegHandler) Insert(slots []codec.Symbol, elem codec.Symbol, _ handler.MoveContext) []handler.Place {
	for i := 0; i < len(slots); i++ {
		if slots[i] != codec.Empty {
			continue
		}
		if i > 0 && slots[i-1] != codec.Empty && elem > slots[i-1] {
			// A larger disk (higher bank rank) may never rest above a
			// smaller one; this is the only slot a push could target, so
			// the whole move is illegal.
			return nil
		}
		return []handler.Place{{After: withReplaced(slots, i, elem)}}
	}
	return nil
}

func init() {
	handler.Register("peg", pegHandler{})
}

// HanoiSample builds the 3-peg Tower of Hanoi configuration for the given
// number of disks, bank-ordered smallest to largest, all stacked on peg A.
func HanoiSample(disks int) (*config.Config, state.Permutation, error) {
	bank := make([]string, disks)
	for i := range bank {
		bank[i] = string(rune('1' + i))
	}

	pegs := []string{"A", "B", "C"}
	b := config.NewBuilder().Bank(bank...)
	for _, id := range pegs {
		var trs []config.Transition
		for _, target := range pegs {
			if target == id {
				continue
			}
			trs = append(trs, config.Transition{Target: target})
		}
		b.Container(config.Container{ID: id, Capacity: disks, Handler: "peg", Transitions: trs})
	}
	cfg, err := b.Build()
	if err != nil {
		return nil, nil, err
	}

	// Largest disk at slot 0 (bottom), smallest at slot disks-1 (top), so
	// the origin is itself a canonical decreasing stack rather than a
	// transient arrangement pegHandler.Insert could never rebuild.
	perm := make(state.Permutation, cfg.N())
	for i := range perm {
		perm[i] = codec.Empty
	}
	for i := 0; i < disks; i++ {
		perm[i] = codec.Symbol(disks - 1 - i)
	}
	return cfg, perm, nil
}

// CardGameSample builds the deck/hand/discard configuration from a
// 5-card deck fully dealt into the deck container.
func CardGameSample() (*config.Config, state.Permutation, error) {
	cfg, err := config.NewBuilder().
		Bank("ace", "king", "queen", "jack", "ten").
		Container(config.Container{
			ID: "deck", Capacity: 5, Handler: "top",
			Transitions: []config.Transition{{Target: "hand", From: "top", To: "middle", MoveType: "DRAW"}},
		}).
		Container(config.Container{ID: "hand", Capacity: 3, Handler: "middle"}).
		Container(config.Container{ID: "discard", Capacity: 5, Handler: "stack"}).
		Build()
	if err != nil {
		return nil, nil, err
	}

	perm := make(state.Permutation, cfg.N())
	for i := 0; i < 5; i++ {
		perm[i] = codec.Symbol(i)
	}
	for i := 5; i < cfg.N(); i++ {
		perm[i] = codec.Empty
	}
	return cfg, perm, nil
}
