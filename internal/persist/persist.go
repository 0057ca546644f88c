// Package persist is the optional external graph store collaborator: a
// thin wrapper over akrylysov/pogreb in which a host can store discovered
// (index, predecessor, level) records so they survive a process restart.
// No search function takes a Store; the host writes records itself. Never
// imported by codec, transition, or search — a Space works identically
// with or without one.
package persist

import (
	"encoding/json"
	"math/big"

	"github.com/akrylysov/pogreb"
)

// Record is one discovered state, keyed by its lexical index.
type Record struct {
	Index       string `json:"index"`
	Predecessor string `json:"predecessor,omitempty"`
	Level       int    `json:"level"`
	Order       int    `json:"order"`
}

// Store is an embedded key-value graph store opened at a directory path.
type Store struct {
	db *pogreb.DB
}

// Open creates or reopens a Store at dir.
func Open(dir string) (*Store, error) {
	db, err := pogreb.Open(dir, nil)
	if err != nil {
		return nil, err
	}
	return &Store{db: db}, nil
}

// Put records one discovered state.
func (s *Store) Put(rec Record) error {
	bin, err := json.Marshal(rec)
	if err != nil {
		return err
	}
	return s.db.Put([]byte(rec.Index), bin)
}

// Get looks up a previously recorded state by its lexical index.
func (s *Store) Get(index *big.Int) (Record, bool, error) {
	bin, err := s.db.Get([]byte(index.String()))
	if err != nil {
		return Record{}, false, err
	}
	if bin == nil {
		return Record{}, false, nil
	}
	var rec Record
	if err := json.Unmarshal(bin, &rec); err != nil {
		return Record{}, false, err
	}
	return rec, true, nil
}

// Has reports whether index has already been recorded, without decoding
// the stored value — the fast path a VisitedSet backend needs.
func (s *Store) Has(index *big.Int) (bool, error) {
	return s.db.Has([]byte(index.String()))
}

// Count returns the number of records currently stored.
func (s *Store) Count() uint32 {
	return s.db.Count()
}

// Close releases the store's file handles.
func (s *Store) Close() error {
	return s.db.Close()
}
