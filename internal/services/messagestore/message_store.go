package messagestore

import (
	"sync"
	"time"
)

// Kind tags a stored record as plain text or persisted media.
type Kind string

const (
	KindText  Kind = "text"
	KindImage Kind = "image"
)

// Record is one normalized inbound message. Records are immutable once
// appended; repeated provider deliveries produce repeated records.
type Record struct {
	From      string    `json:"from"`
	Kind      Kind      `json:"kind"`
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
	MediaID   string    `json:"media_id,omitempty"`
	StorageID string    `json:"storage_id,omitempty"`
}

// Store is an append-only, process-lifetime sequence of records.
// Order equals arrival order.
type Store struct {
	mu      sync.RWMutex
	records []Record
}

func New() *Store {
	return &Store{}
}

// Append adds a record to the end of the sequence.
func (s *Store) Append(r Record) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = append(s.records, r)
}

// Snapshot returns a copy of the full sequence as of the call. Safe to
// call concurrently with appends.
func (s *Store) Snapshot() []Record {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Record, len(s.records))
	copy(out, s.records)
	return out
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}
