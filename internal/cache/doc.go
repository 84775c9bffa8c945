// Package cache implements a single-process, capacity-bounded key-value cache.
//
// Goals for this package:
//   - Keep storage and eviction policy separate (storage.Storage, policy.EvictionPolicy)
//   - Make the LRU bookkeeping explicit (arena-backed recency list + key lookup)
//   - O(1) Put/Get/Delete, with Put evicting at most one entry
//   - One mutex around the storage/policy pair so their key sets never diverge
package cache
