package policy

import (
	"fmt"

	"gocache/internal/recency"
)

// LRU evicts the least recently used key.
//
// Front of the recency list = LRU, back = MRU. nodes maps each tracked key
// to its handle; the list owns the node itself.
type LRU[K comparable] struct {
	list  *recency.List[K]
	nodes map[K]recency.Handle
}

var _ EvictionPolicy[string] = (*LRU[string])(nil)

// NewLRU returns an empty LRU policy.
func NewLRU[K comparable]() *LRU[K] {
	return &LRU[K]{
		list:  recency.New[K](),
		nodes: make(map[K]recency.Handle),
	}
}

// RecordUse moves key to the MRU end, tracking it first if needed.
//
// It panics if key is a nil interface value.
func (p *LRU[K]) RecordUse(key K) {
	if h, ok := p.nodes[key]; ok {
		p.list.Detach(h)
		p.list.Append(h)
		return
	}

	h, err := p.list.AppendElement(key)
	if err != nil {
		panic(fmt.Sprintf("lru: record use: %v", err))
	}
	p.nodes[key] = h
}

// EvictOne removes the LRU key.
func (p *LRU[K]) EvictOne() (K, bool) {
	h, ok := p.list.Front()
	if !ok {
		var zero K
		return zero, false
	}
	key, _ := p.list.Remove(h)
	delete(p.nodes, key)
	return key, true
}

// Forget drops key if tracked.
func (p *LRU[K]) Forget(key K) {
	h, ok := p.nodes[key]
	if !ok {
		return
	}
	p.list.Remove(h)
	delete(p.nodes, key)
}

// Len returns the number of tracked keys.
func (p *LRU[K]) Len() int { return len(p.nodes) }

// Keys returns keys from least to most recently used.
func (p *LRU[K]) Keys() []K { return p.list.Elements() }
