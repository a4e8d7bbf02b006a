package hal

import "fmt"

// Handles is a registry of live device resources keyed by ID.
//
// IDs are never reused within one registry, so a stale handle cannot alias
// a newer resource.
type Handles[T any] struct {
	next  ID
	items map[ID]T
}

// Add stores v and returns its new ID.
func (h *Handles[T]) Add(v T) ID {
	if h.items == nil {
		h.items = make(map[ID]T)
	}
	h.next++
	h.items[h.next] = v
	return h.next
}

// Get returns the resource for id.
func (h *Handles[T]) Get(id ID) (T, bool) {
	v, ok := h.items[id]
	return v, ok
}

// Remove deletes id and returns the stored resource.
func (h *Handles[T]) Remove(id ID) (T, error) {
	v, ok := h.items[id]
	if !ok {
		var zero T
		return zero, fmt.Errorf("%w: %d", ErrUnknownHandle, id)
	}
	delete(h.items, id)
	return v, nil
}

// Len returns the number of live resources.
func (h *Handles[T]) Len() int { return len(h.items) }
