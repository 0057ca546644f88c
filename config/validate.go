package config

import (
	errorutil "github.com/projectdiscovery/utils/errors"
	sliceutil "github.com/projectdiscovery/utils/slice"

	"github.com/coffee-fueled-dev/statespace/handler"
)

// Validate performs every load-time check spec.md requires: duplicate
// container ids, capacity/bank mismatch, unknown handler tags, unresolved
// transition targets, and initial-fill multiset containment. Malformed
// configuration is rejected here so that runtime transition enumeration is
// total and never fails.
func (c *Config) Validate() error {
	if deduped := sliceutil.Dedupe(c.Bank); len(deduped) != len(c.Bank) {
		return errorutil.NewWithTag("config-invalid", "element bank contains duplicate tags")
	}

	seenIDs := map[string]struct{}{}
	for _, ct := range c.Containers {
		if ct.ID == "" {
			return errorutil.NewWithTag("config-invalid", "container with empty id")
		}
		if _, dup := seenIDs[ct.ID]; dup {
			return errorutil.NewWithTag("config-invalid", "duplicate container id %q", ct.ID)
		}
		seenIDs[ct.ID] = struct{}{}

		if ct.Capacity < 1 {
			return errorutil.NewWithTag("config-invalid", "container %q has capacity %d, must be >= 1", ct.ID, ct.Capacity)
		}
		if _, ok := handler.Get(ct.Handler); !ok {
			return errorutil.NewWithTag("config-invalid", "container %q references unregistered handler %q", ct.ID, ct.Handler)
		}
		if len(ct.InitialFill) > ct.Capacity {
			return errorutil.NewWithTag("config-invalid", "container %q initialFill exceeds its capacity", ct.ID)
		}
	}

	if c.N() < len(c.Bank) {
		return errorutil.NewWithTag("config-invalid", "permutation length %d is smaller than bank size %d", c.N(), len(c.Bank))
	}

	bankSet := map[string]struct{}{}
	for _, tag := range c.Bank {
		bankSet[tag] = struct{}{}
	}

	fillCounts := map[string]int{}
	bankCounts := map[string]int{}
	for _, tag := range c.Bank {
		bankCounts[tag]++
	}

	for _, ct := range c.Containers {
		for _, tag := range ct.InitialFill {
			if _, ok := bankSet[tag]; !ok {
				return errorutil.NewWithTag("config-invalid", "container %q initialFill references tag %q not present in the element bank", ct.ID, tag)
			}
			fillCounts[tag]++
		}

		for _, tr := range ct.Transitions {
			if c.ContainerIndex(tr.Target) == -1 {
				return errorutil.NewWithTag("config-invalid", "container %q declares a transition to unknown target %q", ct.ID, tr.Target)
			}
			effFrom := ct.EffectiveFrom(tr)
			if _, ok := handler.Get(effFrom); !ok {
				return errorutil.NewWithTag("config-invalid", "container %q transition references unregistered from-position %q", ct.ID, effFrom)
			}
			effTo := c.EffectiveTo(tr)
			if _, ok := handler.Get(effTo); !ok {
				return errorutil.NewWithTag("config-invalid", "container %q transition references unregistered to-position %q", ct.ID, effTo)
			}
		}
	}

	for tag, n := range fillCounts {
		if n > bankCounts[tag] {
			return errorutil.NewWithTag("config-invalid", "initialFill uses %d of tag %q but the bank only declares %d", n, tag, bankCounts[tag])
		}
	}

	return nil
}
