package recency

import (
	"errors"
	"reflect"
	"testing"
)

func TestNewListIsEmpty(t *testing.T) {
	l := New[string]()

	if !l.IsEmpty() {
		t.Fatalf("expected new list to be empty")
	}
	if _, ok := l.Front(); ok {
		t.Fatalf("expected no front node")
	}
	if _, ok := l.Back(); ok {
		t.Fatalf("expected no back node")
	}
	if l.Len() != 0 {
		t.Fatalf("expected len 0, got %d", l.Len())
	}
}

func TestAppendElementOrdersFrontToBack(t *testing.T) {
	l := New[string]()
	for _, k := range []string{"a", "b", "c"} {
		if _, err := l.AppendElement(k); err != nil {
			t.Fatalf("append %q: %v", k, err)
		}
	}

	if got, want := l.Elements(), []string{"a", "b", "c"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("elements = %v, want %v", got, want)
	}
	front, _ := l.Front()
	back, _ := l.Back()
	if l.Value(front) != "a" || l.Value(back) != "c" {
		t.Fatalf("front/back = %q/%q, want a/c", l.Value(front), l.Value(back))
	}
}

func TestDetachAndAppendMovesToBack(t *testing.T) {
	l := New[int]()
	ha, _ := l.AppendElement(1)
	l.AppendElement(2)
	l.AppendElement(3)

	l.Detach(ha)
	if got, want := l.Elements(), []int{2, 3}; !reflect.DeepEqual(got, want) {
		t.Fatalf("after detach = %v, want %v", got, want)
	}
	if l.Len() != 2 {
		t.Fatalf("expected len 2, got %d", l.Len())
	}

	l.Append(ha)
	if got, want := l.Elements(), []int{2, 3, 1}; !reflect.DeepEqual(got, want) {
		t.Fatalf("after append = %v, want %v", got, want)
	}
}

func TestAppendLinkedNodeDoesNotDuplicate(t *testing.T) {
	l := New[string]()
	ha, _ := l.AppendElement("a")
	l.AppendElement("b")

	l.Append(ha)
	if got, want := l.Elements(), []string{"b", "a"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("elements = %v, want %v", got, want)
	}
	if l.Len() != 2 {
		t.Fatalf("expected len 2, got %d", l.Len())
	}
}

func TestDetachIsNoOpForAbsentHandles(t *testing.T) {
	l := New[string]()
	h, _ := l.AppendElement("a")

	l.Detach(None)
	l.Detach(head)
	l.Detach(tail)
	l.Detach(Handle(42))
	l.Detach(h)
	l.Detach(h) // already detached

	if !l.IsEmpty() {
		t.Fatalf("expected empty list after detaching only node")
	}
	if l.Len() != 0 {
		t.Fatalf("expected len 0, got %d", l.Len())
	}
}

func TestAppendElementAcceptsZeroValues(t *testing.T) {
	l := New[any]()

	for _, v := range []any{"", 0, false} {
		if _, err := l.AppendElement(v); err != nil {
			t.Fatalf("append %#v: %v", v, err)
		}
	}
	if _, err := l.AppendElement(nil); !errors.Is(err, ErrInvalidElement) {
		t.Fatalf("expected ErrInvalidElement for nil, got %v", err)
	}
	if l.Len() != 3 {
		t.Fatalf("expected len 3, got %d", l.Len())
	}
}

func TestRemoveReusesSlot(t *testing.T) {
	l := New[string]()
	ha, _ := l.AppendElement("a")
	l.AppendElement("b")

	v, ok := l.Remove(ha)
	if !ok || v != "a" {
		t.Fatalf("remove = %q, %v; want a, true", v, ok)
	}
	if _, ok := l.Remove(ha); ok {
		t.Fatalf("expected second remove to fail")
	}

	hc, _ := l.AppendElement("c")
	if hc != ha {
		t.Fatalf("expected freed slot %d to be reused, got %d", ha, hc)
	}
	if got, want := l.Elements(), []string{"b", "c"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("elements = %v, want %v", got, want)
	}
}
