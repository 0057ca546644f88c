package handler_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/coffee-fueled-dev/statespace/codec"
	"github.com/coffee-fueled-dev/statespace/handler"
)

func TestStartHandler(t *testing.T) {
	h, ok := handler.Get("start")
	require.True(t, ok)

	slots := []codec.Symbol{0, 1, codec.Empty}
	takes := h.Extract(slots)
	require.Len(t, takes, 1)
	require.Equal(t, codec.Symbol(0), takes[0].Elem)
	require.Equal(t, []codec.Symbol{codec.Empty, 1, codec.Empty}, takes[0].After)

	full := []codec.Symbol{1, codec.Empty, codec.Empty}
	require.Empty(t, h.Insert(full, 5, handler.MoveContext{}))

	empty := []codec.Symbol{codec.Empty, 1, codec.Empty}
	places := h.Insert(empty, 5, handler.MoveContext{})
	require.Len(t, places, 1)
	require.Equal(t, []codec.Symbol{5, 1, codec.Empty}, places[0].After)
}

func TestEndHandler(t *testing.T) {
	h, ok := handler.Get("bottom")
	require.True(t, ok)

	slots := []codec.Symbol{0, codec.Empty, 2}
	takes := h.Extract(slots)
	require.Len(t, takes, 1)
	require.Equal(t, codec.Symbol(2), takes[0].Elem)

	places := h.Insert([]codec.Symbol{0, 1, codec.Empty}, 9, handler.MoveContext{})
	require.Len(t, places, 1)
	require.Equal(t, []codec.Symbol{0, 1, 9}, places[0].After)
}

func TestAnyHandlerEnumeratesAll(t *testing.T) {
	h, ok := handler.Get("middle")
	require.True(t, ok)

	slots := []codec.Symbol{0, codec.Empty, 2, codec.Empty}
	takes := h.Extract(slots)
	require.Len(t, takes, 2)

	places := h.Insert(slots, 9, handler.MoveContext{})
	require.Len(t, places, 2)
}

func TestStackHandlerScansOppositeEnds(t *testing.T) {
	h, ok := handler.Get("stack")
	require.True(t, ok)

	slots := []codec.Symbol{codec.Empty, 1, 2}
	takes := h.Extract(slots)
	require.Len(t, takes, 1)
	require.Equal(t, codec.Symbol(1), takes[0].Elem)

	empty := []codec.Symbol{codec.Empty, codec.Empty, codec.Empty}
	places := h.Insert(empty, 9, handler.MoveContext{})
	require.Len(t, places, 1)
	require.Equal(t, []codec.Symbol{codec.Empty, codec.Empty, 9}, places[0].After)
}

func TestCustomHandlerRegistration(t *testing.T) {
	handler.Register("no-op-test", noopHandler{})
	h, ok := handler.Get("no-op-test")
	require.True(t, ok)
	require.Empty(t, h.Extract([]codec.Symbol{0}))
	require.Empty(t, h.Insert([]codec.Symbol{codec.Empty}, 0, handler.MoveContext{}))
}

type noopHandler struct{}

func (noopHandler) Extract([]codec.Symbol) []handler.Take { return nil }
func (noopHandler) Insert([]codec.Symbol, codec.Symbol, handler.MoveContext) []handler.Place {
	return nil
}
