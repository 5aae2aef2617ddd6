package pending

import (
	"testing"

	"github.com/google/uuid"
)

func TestPutGetRemove(t *testing.T) {
	idx := NewIndex()
	todoID := uuid.New()

	if _, ok := idx.Get(1, 100); ok {
		t.Fatal("empty index should not return an entry")
	}

	idx.Put(1, 100, todoID)
	got, ok := idx.Get(1, 100)
	if !ok || got != todoID {
		t.Fatalf("Get = (%v, %v), want (%v, true)", got, ok, todoID)
	}

	// Another user's messages are scoped separately.
	if _, ok := idx.Get(2, 100); ok {
		t.Error("entry leaked across users")
	}

	idx.Remove(1, 100)
	if _, ok := idx.Get(1, 100); ok {
		t.Error("entry still present after Remove")
	}
}

func TestRemoveTodoDropsAllReferences(t *testing.T) {
	idx := NewIndex()
	target := uuid.New()
	other := uuid.New()

	idx.Put(1, 100, target)
	idx.Put(1, 101, target)
	idx.Put(1, 102, other)

	if n := idx.RemoveTodo(1, target); n != 2 {
		t.Fatalf("RemoveTodo = %d, want 2", n)
	}
	if _, ok := idx.Get(1, 100); ok {
		t.Error("entry 100 survived RemoveTodo")
	}
	if _, ok := idx.Get(1, 102); !ok {
		t.Error("unrelated entry was removed")
	}

	if n := idx.RemoveTodo(1, target); n != 0 {
		t.Errorf("second RemoveTodo = %d, want 0", n)
	}
	if n := idx.RemoveTodo(99, other); n != 0 {
		t.Errorf("RemoveTodo for unknown user = %d, want 0", n)
	}
}
