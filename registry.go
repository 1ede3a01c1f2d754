package glass

import (
	"fmt"
	"sync"
)

// Handle identifies a value stored in a Registry.
//
// A handle is only valid for the lifetime of the value it was issued for.
// Once that value is released the slot's generation advances, so the
// handle stops resolving even after the slot is reused.
type Handle struct {
	index      uint32
	generation uint32
}

// String returns a debug representation of the handle.
func (h Handle) String() string {
	return fmt.Sprintf("Handle(%d#%d)", h.index, h.generation)
}

type registrySlot[T any] struct {
	value      *T
	generation uint32
}

// Registry owns values and hands out generation-checked handles to them.
// It is the owner side of Weak references: a value lives until it is
// released from its registry, regardless of how many Weak references
// still point at it.
//
// Registry is safe for concurrent use.
type Registry[T any] struct {
	mu    sync.RWMutex
	slots []registrySlot[T]
	free  []uint32
	live  int
}

// NewRegistry creates an empty registry.
func NewRegistry[T any]() *Registry[T] {
	return &Registry[T]{}
}

// Insert stores v and returns its handle. A nil v gets a handle that
// never resolves and is not counted by Len.
func (r *Registry[T]) Insert(v *T) Handle {
	r.mu.Lock()
	defer r.mu.Unlock()

	if v != nil {
		r.live++
	}
	if n := len(r.free); n > 0 {
		idx := r.free[n-1]
		r.free = r.free[:n-1]
		r.slots[idx].value = v
		return Handle{index: idx, generation: r.slots[idx].generation}
	}

	idx := uint32(len(r.slots))
	r.slots = append(r.slots, registrySlot[T]{value: v})
	return Handle{index: idx}
}

// Resolve returns the value for h, or false if it has been released.
func (r *Registry[T]) Resolve(h Handle) (*T, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if int(h.index) >= len(r.slots) {
		return nil, false
	}
	s := r.slots[h.index]
	if s.generation != h.generation || s.value == nil {
		return nil, false
	}
	return s.value, true
}

// Release drops the registry's value for h. It reports whether h was
// live. Releasing a stale handle is a no-op.
func (r *Registry[T]) Release(h Handle) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if int(h.index) >= len(r.slots) {
		return false
	}
	s := &r.slots[h.index]
	if s.generation != h.generation {
		return false
	}
	if s.value != nil {
		r.live--
	}
	s.value = nil
	s.generation++
	r.free = append(r.free, h.index)

	Logger().Debug("glass: registry slot released", "handle", h.String())
	return true
}

// Len returns the number of live values.
func (r *Registry[T]) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.live
}

// Weak returns a non-owning reference to the value behind h.
func (r *Registry[T]) Weak(h Handle) Weak[T] {
	return Weak[T]{registry: r, handle: h}
}

// Weak is a non-owning reference to a value held by a Registry.
// It does not keep the value alive; Get must be called every time the
// value is needed and fails once the owner has released it.
//
// The zero Weak never resolves.
type Weak[T any] struct {
	registry *Registry[T]
	handle   Handle
}

// Get resolves the reference.
func (w Weak[T]) Get() (*T, bool) {
	if w.registry == nil {
		return nil, false
	}
	return w.registry.Resolve(w.handle)
}

// Alive reports whether the referenced value still exists.
func (w Weak[T]) Alive() bool {
	_, ok := w.Get()
	return ok
}

// Handle returns the handle the reference resolves through.
func (w Weak[T]) Handle() Handle {
	return w.handle
}
