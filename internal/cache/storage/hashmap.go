package storage

import "fmt"

// HashMap is a Storage backed by a Go map.
type HashMap[K comparable, V any] struct {
	capacity int
	items    map[K]V
}

var _ Storage[string, int] = (*HashMap[string, int])(nil)

// NewHashMap returns an empty HashMap holding at most capacity entries.
func NewHashMap[K comparable, V any](capacity int) *HashMap[K, V] {
	return &HashMap[K, V]{
		capacity: capacity,
		items:    make(map[K]V, capacity),
	}
}

// IsFull reports whether the map holds capacity entries.
func (s *HashMap[K, V]) IsFull() bool { return len(s.items) >= s.capacity }

// Add inserts or updates key. At capacity only new keys are rejected.
func (s *HashMap[K, V]) Add(key K, value V) error {
	// Updating an existing key does not change occupancy.
	if _, ok := s.items[key]; !ok && s.IsFull() {
		return fmt.Errorf("add %v: %w", key, ErrStorageFull)
	}
	s.items[key] = value
	return nil
}

// Remove deletes key or returns ErrNotFound.
func (s *HashMap[K, V]) Remove(key K) error {
	if _, ok := s.items[key]; !ok {
		return fmt.Errorf("remove %v: %w", key, ErrNotFound)
	}
	delete(s.items, key)
	return nil
}

// Get returns the value stored for key or ErrNotFound.
func (s *HashMap[K, V]) Get(key K) (V, error) {
	v, ok := s.items[key]
	if !ok {
		return v, fmt.Errorf("get %v: %w", key, ErrNotFound)
	}
	return v, nil
}

// Len returns the number of stored entries.
func (s *HashMap[K, V]) Len() int { return len(s.items) }

// Capacity returns the maximum number of entries.
func (s *HashMap[K, V]) Capacity() int { return s.capacity }
