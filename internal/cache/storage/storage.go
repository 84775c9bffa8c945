// Package storage holds fixed-capacity key-value containers used by the
// cache.
package storage

import "errors"

var (
	// ErrNotFound means the key is absent.
	ErrNotFound = errors.New("storage: key not found")
	// ErrStorageFull means a new key cannot be added at capacity.
	ErrStorageFull = errors.New("storage: capacity full")
)

// Storage is a capacity-bounded key-value container.
//
// Implementations are not safe for concurrent use.
type Storage[K comparable, V any] interface {
	// Add inserts or updates key. It returns ErrStorageFull only when the
	// container is at capacity and key is new; updates always succeed.
	Add(key K, value V) error
	// Remove deletes key or returns ErrNotFound.
	Remove(key K) error
	// Get returns the value for key or ErrNotFound.
	Get(key K) (V, error)
	Len() int
	Capacity() int
}
