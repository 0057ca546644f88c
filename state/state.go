// Package state holds the two views of one configuration's state: the
// canonical flat permutation (the codec's on-wire representation) and the
// per-container internal view the transition engine operates on. Conversion
// between them is a pure reshape; neither view aliases into configuration
// memory.
package state

import "github.com/coffee-fueled-dev/statespace/codec"

// Permutation is the canonical length-N on-wire representation of a state.
type Permutation []codec.Symbol

// Internal is the same data re-sliced per container: Internal[i] holds the
// slots belonging to the i-th container in declaration order.
type Internal [][]codec.Symbol

// ToInternal reshapes a permutation into per-container slot views, given
// each container's capacity in declaration order. It copies slot data, so
// mutating the result never aliases perm.
func ToInternal(capacities []int, perm Permutation) Internal {
	out := make(Internal, len(capacities))
	offset := 0
	for i, capacity := range capacities {
		slots := make([]codec.Symbol, capacity)
		copy(slots, perm[offset:offset+capacity])
		out[i] = slots
		offset += capacity
	}
	return out
}

// ToPermutation concatenates a per-container internal view back into one
// flat permutation, in container declaration order.
func ToPermutation(st Internal) Permutation {
	n := 0
	for _, slots := range st {
		n += len(slots)
	}
	out := make(Permutation, 0, n)
	for _, slots := range st {
		out = append(out, slots...)
	}
	return out
}

// Clone returns a deep copy of an internal state, so callers may mutate one
// container's slots without affecting the original.
func (s Internal) Clone() Internal {
	out := make(Internal, len(s))
	for i, slots := range s {
		cp := make([]codec.Symbol, len(slots))
		copy(cp, slots)
		out[i] = cp
	}
	return out
}

// Offsets returns the starting permutation offset of each container, given
// their capacities in declaration order.
func Offsets(capacities []int) []int {
	offs := make([]int, len(capacities))
	acc := 0
	for i, capacity := range capacities {
		offs[i] = acc
		acc += capacity
	}
	return offs
}
