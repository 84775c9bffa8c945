// Package policy defines how a cache chooses which key to give up when its
// storage is full.
package policy

// EvictionPolicy tracks keys and picks victims. It never touches storage;
// the cache keeps the two in sync.
//
// Implementations are not safe for concurrent use.
type EvictionPolicy[K comparable] interface {
	// RecordUse notes that key was just written or read.
	RecordUse(key K)
	// EvictOne removes and returns the next victim. ok is false when
	// nothing is tracked.
	EvictOne() (key K, ok bool)
	// Forget stops tracking key without treating it as an eviction.
	Forget(key K)
	// Len returns the number of tracked keys.
	Len() int
	// Keys returns tracked keys in eviction order, next victim first.
	Keys() []K
}
