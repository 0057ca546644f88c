package search

import (
	"runtime/debug"

	"github.com/projectdiscovery/hmap/store/hybrid"
)

// MaxInMemoryVisitedSize bounds the estimated number of distinct states a
// Space will track with an in-memory map before switching to the
// disk-backed backend, the same role the teacher's MaxInMemoryDedupeSize
// plays for subdomain dedupe.
var MaxInMemoryVisitedSize = 2_000_000

// VisitedSet tracks the distinct state indices a search has examined.
// Implementations need not be safe for concurrent use: the core search
// algorithms are single-threaded.
type VisitedSet interface {
	// Add records key as visited and reports whether it was newly added.
	Add(key string) bool
	// Has reports whether key has already been visited.
	Has(key string) bool
	// Len reports the number of distinct keys visited.
	Len() int
	// Close releases any resources the backend holds.
	Close() error
}

// MapVisited is an in-memory VisitedSet backed by a Go map.
type MapVisited struct {
	seen map[string]struct{}
}

// NewMapVisited returns an empty in-memory VisitedSet.
func NewMapVisited() *MapVisited {
	return &MapVisited{seen: map[string]struct{}{}}
}

func (m *MapVisited) Add(key string) bool {
	if _, ok := m.seen[key]; ok {
		return false
	}
	m.seen[key] = struct{}{}
	return true
}

func (m *MapVisited) Has(key string) bool {
	_, ok := m.seen[key]
	return ok
}

func (m *MapVisited) Len() int { return len(m.seen) }

func (m *MapVisited) Close() error {
	m.seen = nil
	debug.FreeOSMemory()
	return nil
}

// HybridVisited is a disk-backed VisitedSet for state spaces too large to
// track in memory, backed by hmap's hybrid map exactly as the teacher's
// LevelDBBackend uses it for subdomain dedupe.
type HybridVisited struct {
	storage *hybrid.HybridMap
	count   int
}

// NewHybridVisited opens a disk-backed VisitedSet in a temporary directory
// managed by hmap.
func NewHybridVisited() (*HybridVisited, error) {
	db, err := hybrid.New(hybrid.DefaultDiskOptions)
	if err != nil {
		return nil, err
	}
	return &HybridVisited{storage: db}, nil
}

func (h *HybridVisited) Add(key string) bool {
	if h.Has(key) {
		return false
	}
	if err := h.storage.Set(key, nil); err != nil {
		return false
	}
	h.count++
	return true
}

func (h *HybridVisited) Has(key string) bool {
	_, ok := h.storage.Get(key)
	return ok
}

func (h *HybridVisited) Len() int { return h.count }

func (h *HybridVisited) Close() error {
	return h.storage.Close()
}
