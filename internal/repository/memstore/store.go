// Package memstore provides the ordered, mutex-guarded in-memory collection
// used by every resource repository.
package memstore

import (
	"slices"
	"sync"
	"time"
)

// Store keeps records keyed by id and remembers insertion order in a
// separate id list. T should be a plain value type: records are copied in and
// out, so callers never hold a reference into the collection.
type Store[T any] struct {
	mu    sync.RWMutex
	ids   []string
	items map[string]T
	idOf  func(T) string
}

// New creates an empty store. idOf extracts the immutable identifier of a record.
func New[T any](idOf func(T) string) *Store[T] {
	return &Store[T]{
		items: make(map[string]T),
		idOf:  idOf,
	}
}

// Insert appends the record at the end of the collection.
func (s *Store[T]) Insert(item T) T {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.idOf(item)
	if _, exists := s.items[id]; !exists {
		s.ids = append(s.ids, id)
	}
	s.items[id] = item
	return item
}

// Get returns the record with the given id.
func (s *Store[T]) Get(id string) (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	item, ok := s.items[id]
	return item, ok
}

// Find returns the first record, in insertion order, that satisfies match.
func (s *Store[T]) Find(match func(T) bool) (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, id := range s.ids {
		if item := s.items[id]; match(item) {
			return item, true
		}
	}
	var zero T
	return zero, false
}

// List returns at most limit records starting at offset skip of the records
// accepted by match (nil accepts everything). A negative or out-of-range skip
// or a non-positive limit yields an empty, non-nil slice.
func (s *Store[T]) List(skip, limit int, match func(T) bool) []T {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []T{}
	if skip < 0 || limit <= 0 {
		return out
	}
	seen := 0
	for _, id := range s.ids {
		item := s.items[id]
		if match != nil && !match(item) {
			continue
		}
		if seen >= skip {
			out = append(out, item)
			if len(out) == limit {
				break
			}
		}
		seen++
	}
	return out
}

// All returns every record accepted by match, in insertion order.
func (s *Store[T]) All(match func(T) bool) []T {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []T{}
	for _, id := range s.ids {
		if item := s.items[id]; match == nil || match(item) {
			out = append(out, item)
		}
	}
	return out
}

// Count returns how many records match (nil counts everything).
func (s *Store[T]) Count(match func(T) bool) int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if match == nil {
		return len(s.ids)
	}
	n := 0
	for _, id := range s.ids {
		if match(s.items[id]) {
			n++
		}
	}
	return n
}

// Update applies mutate to a copy of the record under the write lock and
// stores the result. The record keeps its id and position whatever mutate does.
func (s *Store[T]) Update(id string, mutate func(*T)) (T, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	item, ok := s.items[id]
	if !ok {
		var zero T
		return zero, false
	}
	mutate(&item)
	s.items[id] = item
	return item, true
}

// Delete removes the record and reports whether it existed.
func (s *Store[T]) Delete(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.items[id]; !ok {
		return false
	}
	delete(s.items, id)
	if i := slices.Index(s.ids, id); i >= 0 {
		s.ids = slices.Delete(s.ids, i, i+1)
	}
	return true
}

// NextTimestamp returns now, or previous plus one nanosecond when the clock
// has not advanced, so successive updates are strictly ordered.
func NextTimestamp(now, previous time.Time) time.Time {
	if !now.After(previous) {
		return previous.Add(time.Nanosecond)
	}
	return now
}
