// Package recency implements a doubly linked recency list stored in an
// index-addressed arena.
//
// Nodes live in a slice owned by the List and refer to each other by index,
// so callers hold a Handle rather than a pointer. Slots 0 and 1 are the head
// and tail sentinels; they never carry data and are never removed.
package recency

import (
	"errors"
	"fmt"
)

// ErrInvalidElement is returned when an element is structurally absent
// (a nil interface value). Zero values such as "" or 0 are valid elements.
var ErrInvalidElement = errors.New("recency: invalid element")

// Handle addresses a node inside a List. It stays valid until the node is
// removed with Remove.
type Handle int32

const (
	head Handle = 0
	tail Handle = 1

	// None is the handle returned when there is no node.
	None Handle = -1
)

type node[T any] struct {
	value  T
	prev   Handle
	next   Handle
	inUse  bool // slot is allocated
	linked bool // slot is between the sentinels
}

// List orders elements from least (front) to most (back) recently used.
//
// The zero List is not usable; call New.
type List[T any] struct {
	nodes  []node[T]
	free   []Handle
	linked int
}

// New returns an empty list.
func New[T any]() *List[T] {
	l := &List[T]{nodes: make([]node[T], 2)}
	l.nodes[head] = node[T]{prev: None, next: tail, inUse: true}
	l.nodes[tail] = node[T]{prev: head, next: None, inUse: true}
	return l
}

// Len returns the number of linked nodes.
func (l *List[T]) Len() int { return l.linked }

// IsEmpty reports whether no node sits between the sentinels.
func (l *List[T]) IsEmpty() bool { return l.nodes[head].next == tail }

// Front returns the least recently used node.
func (l *List[T]) Front() (Handle, bool) {
	if l.IsEmpty() {
		return None, false
	}
	return l.nodes[head].next, true
}

// Back returns the most recently used node.
func (l *List[T]) Back() (Handle, bool) {
	if l.IsEmpty() {
		return None, false
	}
	return l.nodes[tail].prev, true
}

// Value returns the element stored at h. It panics if h is not an
// allocated data node.
func (l *List[T]) Value(h Handle) T {
	if !l.isData(h) {
		panic(fmt.Sprintf("recency: value of invalid handle %d", h))
	}
	return l.nodes[h].value
}

// Detach unlinks h from its neighbours. The slot stays allocated so the
// node can be appended again. Detaching an unknown, sentinel or already
// detached handle is a no-op.
func (l *List[T]) Detach(h Handle) {
	if !l.isData(h) || !l.nodes[h].linked {
		return
	}
	n := &l.nodes[h]
	l.nodes[n.prev].next = n.next
	l.nodes[n.next].prev = n.prev
	n.prev, n.next = None, None
	n.linked = false
	l.linked--
}

// Append links h immediately before the tail sentinel. A node that is
// still linked is detached first so it never appears twice.
func (l *List[T]) Append(h Handle) {
	if !l.isData(h) {
		panic(fmt.Sprintf("recency: append of invalid handle %d", h))
	}
	l.Detach(h)

	last := l.nodes[tail].prev
	n := &l.nodes[h]
	n.prev, n.next = last, tail
	n.linked = true
	l.nodes[last].next = h
	l.nodes[tail].prev = h
	l.linked++
}

// AppendElement allocates a node for element and appends it.
func (l *List[T]) AppendElement(element T) (Handle, error) {
	// Only a nil interface counts as "no element"; "" and 0 are legitimate.
	if any(element) == nil {
		return None, fmt.Errorf("append %T: %w", element, ErrInvalidElement)
	}

	var h Handle
	if n := len(l.free); n > 0 {
		h = l.free[n-1]
		l.free = l.free[:n-1]
	} else {
		h = Handle(len(l.nodes))
		l.nodes = append(l.nodes, node[T]{})
	}
	l.nodes[h] = node[T]{value: element, prev: None, next: None, inUse: true}
	l.Append(h)
	return h, nil
}

// Remove detaches h and releases its slot, returning the element it held.
// After Remove the handle must not be used again.
func (l *List[T]) Remove(h Handle) (T, bool) {
	var zero T
	if !l.isData(h) {
		return zero, false
	}
	l.Detach(h)
	v := l.nodes[h].value
	l.nodes[h] = node[T]{prev: None, next: None}
	l.free = append(l.free, h)
	return v, true
}

// Elements returns the linked elements from front to back.
func (l *List[T]) Elements() []T {
	out := make([]T, 0, l.linked)
	for h := l.nodes[head].next; h != tail; h = l.nodes[h].next {
		out = append(out, l.nodes[h].value)
	}
	return out
}

func (l *List[T]) isData(h Handle) bool {
	return h > tail && int(h) < len(l.nodes) && l.nodes[h].inUse
}
