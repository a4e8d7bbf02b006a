package hal

import (
	"errors"
	"testing"
)

func TestHandlesLifecycle(t *testing.T) {
	var h Handles[string]

	a := h.Add("a")
	b := h.Add("b")
	if a == 0 || b == 0 || a == b {
		t.Fatalf("Add() ids = %d, %d, want distinct non-zero", a, b)
	}
	if got, ok := h.Get(b); !ok || got != "b" {
		t.Fatalf("Get(%d) = %q, %v, want %q, true", b, got, ok, "b")
	}

	if _, err := h.Remove(a); err != nil {
		t.Fatalf("Remove(%d): %v", a, err)
	}
	if _, err := h.Remove(a); !errors.Is(err, ErrUnknownHandle) {
		t.Fatalf("second Remove(%d) err = %v, want ErrUnknownHandle", a, err)
	}
	if got := h.Len(); got != 1 {
		t.Fatalf("Len() = %d, want 1", got)
	}

	c := h.Add("c")
	if c == a {
		t.Fatalf("Add() reused released id %d", a)
	}
}

func TestHandlesZeroIsNeverLive(t *testing.T) {
	var h Handles[int]
	h.Add(1)
	if _, ok := h.Get(0); ok {
		t.Fatal("Get(0) ok = true, want false")
	}
}
