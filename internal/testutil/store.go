// Package testutil provides test doubles shared across packages: an
// in-memory implementation of the engine's store contract and helpers for
// building deterministic instants.
package testutil

import (
	"context"
	"sync"

	"github.com/roach88/kindling/internal/routine"
)

// MemoryStore is an in-memory engine.Store. It keeps per-key values and an
// append-only event journal, and can be told to fail to exercise the
// engine's storage-failure path.
//
// Thread-safety: all methods are safe for concurrent use via internal mutex,
// matching the contract of the SQLite store it stands in for.
type MemoryStore struct {
	mu     sync.Mutex
	kv     map[string][]byte
	events []routine.Event

	// failErr, when non-nil, is returned by every subsequent store call.
	failErr error
}

// NewMemoryStore creates an empty store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{kv: make(map[string][]byte)}
}

// FailWith makes every subsequent call return err. Pass nil to heal.
func (s *MemoryStore) FailWith(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failErr = err
}

// Get returns the value for key.
func (s *MemoryStore) Get(_ context.Context, key string) ([]byte, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failErr != nil {
		return nil, false, s.failErr
	}
	v, ok := s.kv[key]
	if !ok {
		return nil, false, nil
	}
	out := make([]byte, len(v))
	copy(out, v)
	return out, true, nil
}

// Set writes the value for key.
func (s *MemoryStore) Set(_ context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failErr != nil {
		return s.failErr
	}
	v := make([]byte, len(value))
	copy(v, value)
	s.kv[key] = v
	return nil
}

// Delete removes the key.
func (s *MemoryStore) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failErr != nil {
		return s.failErr
	}
	delete(s.kv, key)
	return nil
}

// AppendEvent appends to the journal, ignoring duplicate IDs.
func (s *MemoryStore) AppendEvent(_ context.Context, ev routine.Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failErr != nil {
		return s.failErr
	}
	for _, existing := range s.events {
		if existing.ID == ev.ID {
			return nil
		}
	}
	s.events = append(s.events, ev)
	return nil
}

// ListEvents returns journal events in seq order.
func (s *MemoryStore) ListEvents(_ context.Context, limit int) ([]routine.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failErr != nil {
		return nil, s.failErr
	}
	out := make([]routine.Event, len(s.events))
	copy(out, s.events)
	if limit > 0 && len(out) > limit {
		out = out[len(out)-limit:]
	}
	return out, nil
}

// LastSeq returns the highest journal seq, or 0 when empty.
func (s *MemoryStore) LastSeq(_ context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failErr != nil {
		return 0, s.failErr
	}
	var last int64
	for _, ev := range s.events {
		if ev.Seq > last {
			last = ev.Seq
		}
	}
	return last, nil
}

// Keys returns the stored keys, for assertions on what was flushed.
func (s *MemoryStore) Keys() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	keys := make([]string, 0, len(s.kv))
	for k := range s.kv {
		keys = append(keys, k)
	}
	return keys
}

// EventCount returns the number of journaled events.
func (s *MemoryStore) EventCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.events)
}
