// Package codec implements the ranking codec: a bijection between the set
// of length-N sequences over a fixed bank multiset and the integers [0, M),
// where M is the multinomial coefficient of that multiset.
package codec

import (
	"math/big"
	"strconv"
	"strings"

	errorutil "github.com/projectdiscovery/utils/errors"
)

// Symbol identifies one distinct value a slot can hold: either an index into
// the bank's declared tag order, or Empty.
type Symbol int

// Empty is the distinguished marker for an unfilled slot.
const Empty Symbol = -1

// EmptyRank controls where the empty marker sits in the codec's total order
// on symbols, relative to the bank's declared tag order.
type EmptyRank int

const (
	// EmptySmallest treats the empty marker as ranking below every tag.
	EmptySmallest EmptyRank = iota
	// EmptyLargest treats the empty marker as ranking above every tag.
	EmptyLargest
)

// Coder is a ranking codec for one fixed bank multiset. It is safe for
// concurrent use: Encode/Decode allocate their own per-call multinomial
// cache and never mutate the Coder itself.
type Coder struct {
	order     []Symbol       // total order, smallest to largest
	bank      []int          // bank[i] = count of tags[i] declared in the bank (always 1, distinct tags)
	tags      []string       // bank's declared tag order; tags[i] is the string for Symbol(i)
	emptyN    int            // number of empty slots in the bank multiset (N - len(tags))
	n         int            // permutation length N
	factorial []*big.Int     // factorial[k] = k!, precomputed up to n
}

// NewCoder builds a codec for a bank of distinct tags (in their declared
// canonical order) plus emptySlots empty markers, for a total permutation
// length of len(tags)+emptySlots.
func NewCoder(tags []string, emptySlots int, rank EmptyRank) (*Coder, error) {
	if emptySlots < 0 {
		return nil, errorutil.NewWithTag("codec", "emptySlots must be >= 0, got %d", emptySlots)
	}
	seen := make(map[string]struct{}, len(tags))
	for _, t := range tags {
		if _, ok := seen[t]; ok {
			return nil, errorutil.NewWithTag("codec", "duplicate bank tag %q", t)
		}
		seen[t] = struct{}{}
	}

	c := &Coder{
		tags:   append([]string(nil), tags...),
		emptyN: emptySlots,
		n:      len(tags) + emptySlots,
		bank:   make([]int, len(tags)),
	}
	for i := range c.bank {
		c.bank[i] = 1
	}

	c.order = make([]Symbol, 0, len(tags)+1)
	switch rank {
	case EmptySmallest:
		c.order = append(c.order, Empty)
		for i := range tags {
			c.order = append(c.order, Symbol(i))
		}
	default: // EmptyLargest
		for i := range tags {
			c.order = append(c.order, Symbol(i))
		}
		c.order = append(c.order, Empty)
	}

	c.factorial = make([]*big.Int, c.n+1)
	c.factorial[0] = big.NewInt(1)
	for k := 1; k <= c.n; k++ {
		c.factorial[k] = new(big.Int).Mul(c.factorial[k-1], big.NewInt(int64(k)))
	}
	return c, nil
}

// Len returns the permutation length N.
func (c *Coder) Len() int { return c.n }

// Tags returns the bank's declared tag order. The returned slice must not be
// mutated by callers.
func (c *Coder) Tags() []string { return c.tags }

// TagOf returns the string tag for a non-empty symbol, or "" for Empty.
func (c *Coder) TagOf(s Symbol) string {
	if s == Empty || int(s) < 0 || int(s) >= len(c.tags) {
		return ""
	}
	return c.tags[s]
}

// SymbolOf returns the symbol for a tag string, or (Empty, false) if unknown.
func (c *Coder) SymbolOf(tag string) (Symbol, bool) {
	for i, t := range c.tags {
		if t == tag {
			return Symbol(i), true
		}
	}
	return Empty, false
}

// Cardinality returns M, the number of distinct permutations of the full
// bank multiset: N! / (Π count(tag)!).
func (c *Coder) Cardinality() *big.Int {
	counts := c.bankCounts()
	cache := make(map[string]*big.Int)
	return c.multinomial(counts, cache)
}

// bankCounts returns the bank multiset counts, including the empty marker.
func (c *Coder) bankCounts() map[Symbol]int {
	counts := make(map[Symbol]int, len(c.tags)+1)
	for i := range c.tags {
		counts[Symbol(i)] = 1
	}
	if c.emptyN > 0 {
		counts[Empty] = c.emptyN
	}
	return counts
}

// key builds a canonical cache key for a remaining-multiset snapshot,
// ordered by the codec's total order so equal multisets always hash equal.
func (c *Coder) key(counts map[Symbol]int) string {
	var b strings.Builder
	for _, sym := range c.order {
		if n := counts[sym]; n != 0 {
			b.WriteString(strconv.Itoa(int(sym)))
			b.WriteByte(':')
			b.WriteString(strconv.Itoa(n))
			b.WriteByte(',')
		}
	}
	return b.String()
}

// multinomial computes C(R) = total! / Π(count!) for a remaining multiset R,
// caching by canonical key within one encode/decode call.
func (c *Coder) multinomial(counts map[Symbol]int, cache map[string]*big.Int) *big.Int {
	k := c.key(counts)
	if v, ok := cache[k]; ok {
		return v
	}
	total := 0
	for _, n := range counts {
		total += n
	}
	numerator := c.factorial[total]
	denom := big.NewInt(1)
	for _, n := range counts {
		if n > 1 {
			denom.Mul(denom, c.factorial[n])
		}
	}
	result := new(big.Int).Div(numerator, denom)
	cache[k] = result
	return result
}

// Encode maps a length-N permutation with the bank's multiset to its lexical
// index in [0, M).
func (c *Coder) Encode(perm []Symbol) (*big.Int, error) {
	if len(perm) != c.n {
		return nil, errorutil.NewWithTag("invalid-permutation", "expected length %d, got %d", c.n, len(perm))
	}
	if err := c.checkMultiset(perm, c.bankCounts()); err != nil {
		return nil, err
	}
	remaining := c.bankCounts()
	cache := make(map[string]*big.Int)

	index := new(big.Int)
	for _, s := range perm {
		for _, t := range c.order {
			if t == s {
				break
			}
			if remaining[t] == 0 {
				continue
			}
			remaining[t]--
			index.Add(index, c.multinomial(remaining, cache))
			remaining[t]++
		}
		remaining[s]--
	}
	return index, nil
}

// checkMultiset verifies perm's multiset matches the bank's multiset.
func (c *Coder) checkMultiset(perm []Symbol, bank map[Symbol]int) error {
	remaining := make(map[Symbol]int, len(bank))
	for k, v := range bank {
		remaining[k] = v
	}
	for _, s := range perm {
		if remaining[s] <= 0 {
			return errorutil.NewWithTag("invalid-permutation", "symbol %v occurs more often than the bank multiset allows", s)
		}
		remaining[s]--
	}
	for _, v := range remaining {
		if v != 0 {
			return errorutil.NewWithTag("invalid-permutation", "permutation multiset does not match bank multiset")
		}
	}
	return nil
}

// Decode maps a lexical index in [0, M) back to its permutation.
func (c *Coder) Decode(index *big.Int) ([]Symbol, error) {
	if index.Sign() < 0 {
		return nil, errorutil.NewWithTag("index-out-of-range", "index %v is negative", index)
	}
	m := c.Cardinality()
	if index.Cmp(m) >= 0 {
		return nil, errorutil.NewWithTag("index-out-of-range", "index %v >= M (%v)", index, m)
	}

	remaining := c.bankCounts()
	cache := make(map[string]*big.Int)
	i := new(big.Int).Set(index)
	perm := make([]Symbol, 0, c.n)

	for k := 0; k < c.n; k++ {
		placed := false
		for _, t := range c.order {
			if remaining[t] == 0 {
				continue
			}
			remaining[t]--
			w := c.multinomial(remaining, cache)
			if i.Cmp(w) < 0 {
				perm = append(perm, t)
				placed = true
				break
			}
			i.Sub(i, w)
			remaining[t]++
		}
		if !placed {
			return nil, errorutil.NewWithTag("index-out-of-range", "decode failed to place a symbol at position %d", k)
		}
	}
	return perm, nil
}
