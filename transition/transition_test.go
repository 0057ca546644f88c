package transition_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/coffee-fueled-dev/statespace/codec"
	"github.com/coffee-fueled-dev/statespace/config"
	"github.com/coffee-fueled-dev/statespace/state"
	"github.com/coffee-fueled-dev/statespace/transition"
)

func hanoiOneDisk(t *testing.T) (*config.Config, *codec.Coder) {
	t.Helper()
	pegs := []string{"A", "B", "C"}
	b := config.NewBuilder().Bank("1")
	for _, id := range pegs {
		var trs []config.Transition
		for _, target := range pegs {
			if target == id {
				continue
			}
			trs = append(trs, config.Transition{Target: target, From: "top", To: "top"})
		}
		b.Container(config.Container{ID: id, Capacity: 3, Handler: "top", Transitions: trs})
	}
	cfg, err := b.Build()
	require.NoError(t, err)
	coder, err := cfg.NewCoder()
	require.NoError(t, err)
	return cfg, coder
}

// diskOnA places the single disk at the head of peg A with both other pegs
// empty: the origin state of the Hanoi-1-disk scenario.
func diskOnA(cfg *config.Config) state.Internal {
	perm := make(state.Permutation, cfg.N())
	for i := range perm {
		perm[i] = codec.Empty
	}
	perm[0] = 0 // disk "1" is symbol 0, slot 0 of peg A
	return state.ToInternal(cfg.Capacities(), perm)
}

func TestHanoiOneDiskOptimalPath(t *testing.T) {
	cfg, coder := hanoiOneDisk(t)
	origin := diskOnA(cfg)

	moves := transition.BF(cfg, coder, origin)
	require.Len(t, moves, 2, "one disk on A can move to B or to C")

	var toC *transition.Move
	for i := range moves {
		if moves[i].ToID == "C" {
			toC = &moves[i]
		}
	}
	require.NotNil(t, toC, "A->C must be among the successors")
	require.Equal(t, "A", toC.FromID)
	require.Equal(t, codec.Symbol(0), toC.Element)
}

func TestHanoiOneDiskDFMatchesBFOrder(t *testing.T) {
	cfg, coder := hanoiOneDisk(t)
	origin := diskOnA(cfg)

	bf := transition.BF(cfg, coder, origin)

	it := transition.DF(cfg, coder, origin)
	var df []transition.Move
	for {
		mv, ok := it.Next()
		if !ok {
			break
		}
		df = append(df, mv)
	}

	require.Equal(t, len(bf), len(df))
	for i := range bf {
		require.Equal(t, bf[i].FromID, df[i].FromID)
		require.Equal(t, bf[i].ToID, df[i].ToID)
		require.Equal(t, 0, bf[i].SuccessorIndex.Cmp(df[i].SuccessorIndex))
	}
}

func cardGame(t *testing.T) (*config.Config, *codec.Coder) {
	t.Helper()
	cfg, err := config.NewBuilder().
		Bank("ace", "king", "queen", "jack", "ten").
		Container(config.Container{
			ID: "deck", Capacity: 5, Handler: "top",
			Transitions: []config.Transition{
				{Target: "hand", From: "top", To: "middle", MoveType: "DRAW"},
			},
		}).
		Container(config.Container{ID: "hand", Capacity: 3, Handler: "middle"}).
		Container(config.Container{ID: "discard", Capacity: 5, Handler: "stack"}).
		Build()
	require.NoError(t, err)
	coder, err := cfg.NewCoder()
	require.NoError(t, err)
	return cfg, coder
}

func TestCardGameDrawYieldsOneMovePerEmptyHandSlot(t *testing.T) {
	cfg, coder := cardGame(t)

	perm := make(state.Permutation, cfg.N())
	for i := 0; i < 5; i++ {
		perm[i] = codec.Symbol(i) // deck full: ace,king,queen,jack,ten
	}
	for i := 5; i < cfg.N(); i++ {
		perm[i] = codec.Empty // hand and discard empty
	}
	origin := state.ToInternal(cfg.Capacities(), perm)

	moves := transition.BF(cfg, coder, origin)
	require.Len(t, moves, 3, "one draw per empty hand slot")

	seen := map[string]struct{}{}
	for _, mv := range moves {
		require.Equal(t, "deck", mv.FromID)
		require.Equal(t, "hand", mv.ToID)
		require.Equal(t, "DRAW", mv.MoveType)
		require.Equal(t, codec.Symbol(0), mv.Element, "top of deck is always ace")
		seen[mv.SuccessorIndex.String()] = struct{}{}
	}
	require.Len(t, seen, 3, "all three successor indices are distinct")
}

func TestSameContainerTransitionChainsExtractThenInsert(t *testing.T) {
	cfg, err := config.NewBuilder().
		Bank("x").
		Container(config.Container{
			ID: "A", Capacity: 2, Handler: "top",
			Transitions: []config.Transition{{Target: "A", From: "top", To: "bottom"}},
		}).
		Build()
	require.NoError(t, err)
	coder, err := cfg.NewCoder()
	require.NoError(t, err)

	perm := state.Permutation{0, codec.Empty}
	origin := state.ToInternal(cfg.Capacities(), perm)

	moves := transition.BF(cfg, coder, origin)
	require.Len(t, moves, 1)
	require.Equal(t, "A", moves[0].FromID)
	require.Equal(t, "A", moves[0].ToID)

	decoded, err := coder.Decode(moves[0].SuccessorIndex)
	require.NoError(t, err)
	require.Equal(t, []codec.Symbol{codec.Empty, 0}, decoded)
}
