package config

import (
	"github.com/coffee-fueled-dev/statespace/codec"
	"github.com/coffee-fueled-dev/statespace/state"
	errorutil "github.com/projectdiscovery/utils/errors"
)

// InitialPermutation seats each container's declared InitialFill into its
// own slots, bottom-up in the fill's declared order, leaving every other
// slot empty. Validate already guarantees every fill tag is in the bank and
// that no container's fill exceeds its capacity, so this never fails for a
// Config that has passed Validate — the error return only guards a Config
// assembled without going through Validate first (e.g. a hand-built zero
// value).
func (c *Config) InitialPermutation() (state.Permutation, error) {
	perm := make(state.Permutation, c.N())
	for i := range perm {
		perm[i] = codec.Empty
	}

	offset := 0
	for _, ct := range c.Containers {
		for i, tag := range ct.InitialFill {
			if i >= ct.Capacity {
				return nil, errorutil.NewWithTag("config-invalid", "container %q initialFill exceeds its capacity", ct.ID)
			}
			sym, ok := c.symbolOf(tag)
			if !ok {
				return nil, errorutil.NewWithTag("config-invalid", "container %q initialFill references tag %q not present in the element bank", ct.ID, tag)
			}
			perm[offset+i] = sym
		}
		offset += ct.Capacity
	}
	return perm, nil
}

// symbolOf returns the codec.Symbol for a bank tag, by its declared bank
// position — the same order NewCoder canonicalises tags into.
func (c *Config) symbolOf(tag string) (codec.Symbol, bool) {
	for i, t := range c.Bank {
		if t == tag {
			return codec.Symbol(i), true
		}
	}
	return codec.Empty, false
}
