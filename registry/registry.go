// Package registry provides an observable key/value store with synchronous
// read-after-write consistency. A menu uses it to know which items own a
// panel: presence of an id means the item has content.
package registry

import "sync"

// Registry maps item ids to content and notifies subscribers on every change.
type Registry[T any] struct {
	mu        sync.RWMutex
	contents  map[string]T
	listeners map[uint64]func()
	nextID    uint64
}

// New creates an empty registry.
func New[T any]() *Registry[T] {
	return &Registry[T]{
		contents:  make(map[string]T),
		listeners: make(map[uint64]func()),
	}
}

// Register inserts or overwrites the entry for id and notifies subscribers.
// Repeated registrations of the same id each notify; the last write wins.
func (r *Registry[T]) Register(id string, content T) {
	r.mu.Lock()
	r.contents[id] = content
	r.mu.Unlock()
	r.emit()
}

// Unregister removes the entry for id and notifies subscribers.
func (r *Registry[T]) Unregister(id string) {
	r.mu.Lock()
	delete(r.contents, id)
	r.mu.Unlock()
	r.emit()
}

// Has reports whether id has registered content.
func (r *Registry[T]) Has(id string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.contents[id]
	return ok
}

// Get returns the content registered for id.
func (r *Registry[T]) Get(id string) (T, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.contents[id]
	return c, ok
}

// Len returns the number of registered entries.
func (r *Registry[T]) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.contents)
}

// Subscribe adds a listener invoked after every change. The returned func
// removes it; calling it more than once is harmless.
func (r *Registry[T]) Subscribe(listener func()) (unsubscribe func()) {
	r.mu.Lock()
	id := r.nextID
	r.nextID++
	r.listeners[id] = listener
	r.mu.Unlock()

	return func() {
		r.mu.Lock()
		delete(r.listeners, id)
		r.mu.Unlock()
	}
}

// emit calls listeners outside the lock so they may read or mutate the registry.
func (r *Registry[T]) emit() {
	r.mu.RLock()
	listeners := make([]func(), 0, len(r.listeners))
	for _, l := range r.listeners {
		listeners = append(listeners, l)
	}
	r.mu.RUnlock()

	for _, l := range listeners {
		l()
	}
}
