package config_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/coffee-fueled-dev/statespace/config"
)

func threePegHanoi(bank []string) *config.Config {
	pegs := []string{"A", "B", "C"}
	cfg := config.NewBuilder().Bank(bank...)
	for _, id := range pegs {
		var transitions []config.Transition
		for _, target := range pegs {
			if target == id {
				continue
			}
			transitions = append(transitions, config.Transition{Target: target, From: "top", To: "top"})
		}
		cfg.Container(config.Container{ID: id, Capacity: len(bank), Handler: "top", Transitions: transitions})
	}
	built, err := cfg.Build()
	if err != nil {
		panic(err)
	}
	return built
}

func TestBuilderValidConfig(t *testing.T) {
	cfg := threePegHanoi([]string{"1"})
	require.Equal(t, 3, cfg.N())
	require.Equal(t, 0, cfg.ContainerIndex("A"))
	require.Equal(t, -1, cfg.ContainerIndex("Z"))
}

func TestValidateRejectsUnknownHandler(t *testing.T) {
	_, err := config.NewBuilder().
		Bank("1").
		Container(config.Container{ID: "A", Capacity: 1, Handler: "nonexistent"}).
		Build()
	require.Error(t, err)
}

func TestValidateRejectsBankLargerThanCapacity(t *testing.T) {
	_, err := config.NewBuilder().
		Bank("1", "2").
		Container(config.Container{ID: "A", Capacity: 1, Handler: "top"}).
		Build()
	require.Error(t, err)
}

func TestValidateRejectsUnknownTransitionTarget(t *testing.T) {
	_, err := config.NewBuilder().
		Bank("1").
		Container(config.Container{
			ID: "A", Capacity: 1, Handler: "top",
			Transitions: []config.Transition{{Target: "missing", From: "top", To: "top"}},
		}).
		Build()
	require.Error(t, err)
}

func TestValidateRejectsDuplicateContainerID(t *testing.T) {
	_, err := config.NewBuilder().
		Bank("1").
		Container(config.Container{ID: "A", Capacity: 1, Handler: "top"}).
		Container(config.Container{ID: "A", Capacity: 1, Handler: "top"}).
		Build()
	require.Error(t, err)
}

func TestValidateRejectsInitialFillNotInBank(t *testing.T) {
	_, err := config.NewBuilder().
		Bank("1").
		Container(config.Container{ID: "A", Capacity: 1, Handler: "top", InitialFill: []string{"ghost"}}).
		Build()
	require.Error(t, err)
}

func TestResolveMoveTypeTotalContract(t *testing.T) {
	cfg := &config.Config{Engine: config.TransitionEngineOptions{DefaultMoveType: "MOVE"}}
	require.Equal(t, "MOVE", cfg.ResolveMoveType("a", "b", ""))
	require.Equal(t, "CUSTOM", cfg.ResolveMoveType("a", "b", "CUSTOM"))

	cfg.Engine.MoveTypeResolver = func(from, to, supplied string) string { return from + "->" + to }
	require.Equal(t, "a->b", cfg.ResolveMoveType("a", "b", "CUSTOM"))
}

func TestNewCoderUsesBankDeclaredOrder(t *testing.T) {
	cfg := threePegHanoi([]string{"1", "2", "3"})
	coder, err := cfg.NewCoder()
	require.NoError(t, err)
	require.Equal(t, []string{"1", "2", "3"}, coder.Tags())
	require.Equal(t, 9, coder.Len())
}

func TestEffectiveFromUsesTransitionTagWhenSet(t *testing.T) {
	ct := config.Container{ID: "A", Handler: "bottom"}
	tr := config.Transition{Target: "B", From: "top"}
	require.Equal(t, "top", ct.EffectiveFrom(tr))
}

func TestEffectiveFromFallsBackToContainerHandler(t *testing.T) {
	ct := config.Container{ID: "A", Handler: "bottom"}
	tr := config.Transition{Target: "B"}
	require.Equal(t, "bottom", ct.EffectiveFrom(tr))
}

func TestEffectiveToFallsBackToTargetContainerHandler(t *testing.T) {
	cfg, err := config.NewBuilder().
		Bank("1").
		Container(config.Container{ID: "A", Capacity: 1, Handler: "top", Transitions: []config.Transition{{Target: "B"}}}).
		Container(config.Container{ID: "B", Capacity: 1, Handler: "bottom"}).
		Build()
	require.NoError(t, err)

	tr := cfg.Containers[0].Transitions[0]
	require.Equal(t, "bottom", cfg.EffectiveTo(tr))
}

func TestInitialPermutationSeatsFillBottomUpPerContainer(t *testing.T) {
	cfg, err := config.NewBuilder().
		Bank("ace", "king", "queen").
		Container(config.Container{ID: "deck", Capacity: 2, Handler: "top", InitialFill: []string{"ace", "king"}}).
		Container(config.Container{ID: "discard", Capacity: 2, Handler: "stack", InitialFill: []string{"queen"}}).
		Build()
	require.NoError(t, err)

	perm, err := cfg.InitialPermutation()
	require.NoError(t, err)

	require.Equal(t, 4, len(perm))
	require.Equal(t, "ace", cfg.Bank[perm[0]])
	require.Equal(t, "king", cfg.Bank[perm[1]])
	require.Equal(t, "queen", cfg.Bank[perm[2]])
	require.Equal(t, -1, int(perm[3]))
}

func TestInitialPermutationDefaultsToAllEmpty(t *testing.T) {
	cfg := threePegHanoi([]string{"1"})
	perm, err := cfg.InitialPermutation()
	require.NoError(t, err)
	for _, s := range perm {
		require.Equal(t, -1, int(s))
	}
}

func TestEffectiveToPrefersExplicitTag(t *testing.T) {
	cfg, err := config.NewBuilder().
		Bank("1").
		Container(config.Container{ID: "A", Capacity: 1, Handler: "top", Transitions: []config.Transition{{Target: "B", To: "top"}}}).
		Container(config.Container{ID: "B", Capacity: 1, Handler: "bottom"}).
		Build()
	require.NoError(t, err)

	tr := cfg.Containers[0].Transitions[0]
	require.Equal(t, "top", cfg.EffectiveTo(tr))
}
