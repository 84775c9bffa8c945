package policy

import (
	"reflect"
	"testing"
)

func TestLRUEvictsInInsertionOrder(t *testing.T) {
	p := NewLRU[string]()
	p.RecordUse("a")
	p.RecordUse("b")
	p.RecordUse("c")

	for _, want := range []string{"a", "b", "c"} {
		got, ok := p.EvictOne()
		if !ok || got != want {
			t.Fatalf("evict = %q, %v; want %q, true", got, ok, want)
		}
	}
	if _, ok := p.EvictOne(); ok {
		t.Fatalf("expected nothing left to evict")
	}
}

func TestLRURecordUseRefreshesKey(t *testing.T) {
	p := NewLRU[string]()
	p.RecordUse("a")
	p.RecordUse("b")
	p.RecordUse("c")

	// Touch a so b becomes LRU.
	p.RecordUse("a")

	if got, want := p.Keys(), []string{"b", "c", "a"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("keys = %v, want %v", got, want)
	}
	if p.Len() != 3 {
		t.Fatalf("expected 3 tracked keys, got %d", p.Len())
	}
	if got, _ := p.EvictOne(); got != "b" {
		t.Fatalf("expected b to be evicted, got %q", got)
	}
}

func TestLRURecordUseReusesNode(t *testing.T) {
	p := NewLRU[int]()
	p.RecordUse(1)
	h := p.nodes[1]

	p.RecordUse(2)
	p.RecordUse(1)

	if p.nodes[1] != h {
		t.Fatalf("expected handle %d to be kept, got %d", h, p.nodes[1])
	}
	if p.list.Len() != 2 {
		t.Fatalf("expected 2 linked nodes, got %d", p.list.Len())
	}
}

func TestLRUForget(t *testing.T) {
	p := NewLRU[string]()
	p.RecordUse("a")
	p.RecordUse("b")

	p.Forget("a")
	p.Forget("missing")

	if got, want := p.Keys(), []string{"b"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("keys = %v, want %v", got, want)
	}
	if _, ok := p.nodes["a"]; ok {
		t.Fatalf("expected a to be dropped from lookup table")
	}
}

func TestLRUAcceptsZeroValueKeys(t *testing.T) {
	p := NewLRU[string]()
	p.RecordUse("")
	p.RecordUse("x")

	if got, ok := p.EvictOne(); !ok || got != "" {
		t.Fatalf("evict = %q, %v; want empty key, true", got, ok)
	}
}

func TestLRURecordUseNilKeyPanics(t *testing.T) {
	p := NewLRU[any]()
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic for nil key")
		}
	}()
	p.RecordUse(nil)
}
