package input

import (
	"errors"
	"fmt"

	"cpboy/hal"
)

var (
	ErrRegistryFull = errors.New("input: registry full")
	ErrNilCallback  = errors.New("input: nil callback")
	ErrUnknownKey   = errors.New("input: unknown key")
)

// Listener binds a callback to a key. Hold listeners fire on every cycle the
// key stays down; others fire only on the press edge.
type Listener struct {
	Key      hal.KeyCode
	Callback func()
	Hold     bool
}

// Registry is an ordered, bounded list of listeners. Earlier entries win.
type Registry struct {
	capacity  int
	listeners []Listener
}

func NewRegistry(capacity int) *Registry {
	if capacity < 0 {
		capacity = 0
	}
	return &Registry{capacity: capacity, listeners: make([]Listener, 0, capacity)}
}

func (r *Registry) Len() int { return len(r.listeners) }
func (r *Registry) Cap() int { return r.capacity }

// Add appends l. A full registry is left untouched.
func (r *Registry) Add(l Listener) error {
	if l.Callback == nil {
		return ErrNilCallback
	}
	if int(l.Key) <= int(hal.KeyUnknown) || int(l.Key) >= hal.NumKeyCodes {
		return fmt.Errorf("%w: %d", ErrUnknownKey, l.Key)
	}
	if len(r.listeners) >= r.capacity {
		return fmt.Errorf("%w (%d listeners)", ErrRegistryFull, r.capacity)
	}
	r.listeners = append(r.listeners, l)
	return nil
}

// Remove drops every listener bound to key, keeping the others in order,
// and returns how many were removed.
func (r *Registry) Remove(key hal.KeyCode) int {
	kept := r.listeners[:0]
	for _, l := range r.listeners {
		if l.Key != key {
			kept = append(kept, l)
		}
	}
	n := len(r.listeners) - len(kept)
	for i := len(kept); i < len(r.listeners); i++ {
		r.listeners[i] = Listener{}
	}
	r.listeners = kept
	return n
}

func (r *Registry) Clear() {
	for i := range r.listeners {
		r.listeners[i] = Listener{}
	}
	r.listeners = r.listeners[:0]
}

// Listeners returns a copy of the registered listeners in priority order.
func (r *Registry) Listeners() []Listener {
	out := make([]Listener, len(r.listeners))
	copy(out, r.listeners)
	return out
}

// match returns the first listener whose key is down and that is either on
// its press edge or holdable.
func (r *Registry) match(cur, prev *keyState) (Listener, bool) {
	for _, l := range r.listeners {
		if !cur.down(l.Key) {
			continue
		}
		if !prev.down(l.Key) || l.Hold {
			return l, true
		}
	}
	return Listener{}, false
}
