// Package keys holds the point list key map and the registry of global key
// listeners that see every key press before it reaches a focused component.
package keys

import (
	"slices"

	tea "charm.land/bubbletea/v2"
)

// Listener receives a key press and reports whether it consumed it.
type Listener func(msg tea.KeyPressMsg) bool

// Handle identifies a registered listener. The zero Handle is never issued.
type Handle uint64

type entry struct {
	handle Handle
	fn     Listener
}

// Registry is an ordered set of global key listeners. It is used from the
// Bubble Tea update loop only and is not safe for concurrent use.
type Registry struct {
	next      Handle
	listeners []entry
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Add registers fn and returns the handle needed to remove it.
func (r *Registry) Add(fn Listener) Handle {
	r.next++
	r.listeners = append(r.listeners, entry{handle: r.next, fn: fn})
	return r.next
}

// Remove unregisters the listener behind h. It returns false if h is unknown
// or was already removed.
func (r *Registry) Remove(h Handle) bool {
	i := slices.IndexFunc(r.listeners, func(e entry) bool { return e.handle == h })
	if i < 0 {
		return false
	}
	r.listeners = slices.Delete(r.listeners, i, i+1)
	return true
}

// Dispatch offers msg to every listener in registration order and reports
// whether any of them consumed it. Listeners may add or remove listeners
// while being dispatched; changes apply to the next key press.
func (r *Registry) Dispatch(msg tea.KeyPressMsg) bool {
	consumed := false
	for _, e := range slices.Clone(r.listeners) {
		if e.fn(msg) {
			consumed = true
		}
	}
	return consumed
}

// Len returns the number of registered listeners.
func (r *Registry) Len() int {
	return len(r.listeners)
}
