// Package notify provides the change-notification registry the store
// backends share. Callbacks run synchronously after a mutation is applied
// and persisted, so observers such as the exporter can invalidate derived
// state.
package notify

import "sync"

// Hub is a small registry of change callbacks.
type Hub struct {
	mu   sync.Mutex
	next int
	fns  map[int]func()
}

// NewHub creates an empty registry.
func NewHub() *Hub {
	return &Hub{fns: make(map[int]func())}
}

// Add registers fn and returns a cancel function.
func (h *Hub) Add(fn func()) func() {
	h.mu.Lock()
	id := h.next
	h.next++
	h.fns[id] = fn
	h.mu.Unlock()

	return func() {
		h.mu.Lock()
		delete(h.fns, id)
		h.mu.Unlock()
	}
}

// Notify runs every registered callback.
func (h *Hub) Notify() {
	h.mu.Lock()
	fns := make([]func(), 0, len(h.fns))
	for _, fn := range h.fns {
		fns = append(fns, fn)
	}
	h.mu.Unlock()

	for _, fn := range fns {
		fn()
	}
}
