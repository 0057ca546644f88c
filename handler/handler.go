// Package handler implements position handlers: per-container policies that
// enumerate legal ways to take an element out of a container's slots, or
// place one in. Handlers are pure functions of their inputs and retain no
// state between calls.
package handler

import "github.com/coffee-fueled-dev/statespace/codec"

// Take describes one legal way to remove an element from a container.
type Take struct {
	Elem  codec.Symbol
	After []codec.Symbol
}

// Place describes one legal way to insert an element into a container.
type Place struct {
	After []codec.Symbol
}

// MoveContext carries the data the transition engine knows about an
// in-flight move, so an Insert policy may gate on it (e.g. reject a
// placement whose cost exceeds a threshold). A handler may ignore any
// field it doesn't need.
type MoveContext struct {
	MoveType string
	Cost     *float64
	Metadata map[string]any
}

// Handler is a named policy over a single container's slots.
type Handler interface {
	// Extract enumerates every legal way to take one element out of slots.
	Extract(slots []codec.Symbol) []Take
	// Insert enumerates every legal way to place elem into slots.
	Insert(slots []codec.Symbol, elem codec.Symbol, ctx MoveContext) []Place
}
