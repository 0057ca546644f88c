package config

import "github.com/coffee-fueled-dev/statespace/codec"

// NewCoder builds the ranking codec for this configuration's bank and
// permutation length. The bank's declared order is the codec's canonical
// tag order (the spec's resolution of whether codec order could diverge
// from declaration order: it never does).
func (c *Config) NewCoder() (*codec.Coder, error) {
	rank := codec.EmptySmallest
	if c.RankOfEmpty == EmptyLargest {
		rank = codec.EmptyLargest
	}
	return codec.NewCoder(c.Bank, c.N()-len(c.Bank), rank)
}
