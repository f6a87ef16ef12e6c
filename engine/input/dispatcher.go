// Package input turns device key events into listener callbacks.
//
// A Dispatcher owns two prioritized listener registries and a per-key
// pressed table. Once per game loop iteration CheckEvents drains the
// event source, then fires at most one callback.
package input

import (
	"errors"

	"cpboy/hal"
)

type keyState [hal.NumKeyCodes]bool

func (s *keyState) down(k hal.KeyCode) bool {
	if int(k) >= len(s) {
		return false
	}
	return s[k]
}

// Dispatcher is not safe for concurrent use. Callbacks run on the goroutine
// that calls CheckEvents and may add or remove listeners.
type Dispatcher struct {
	src  Source
	log  hal.Logger
	reg1 *Registry
	reg2 *Registry

	cur  keyState
	prev keyState
}

// New returns a dispatcher reading src. A nil src never reports events.
func New(src Source) *Dispatcher {
	return &Dispatcher{
		src:  src,
		reg1: NewRegistry(Capacity1),
		reg2: NewRegistry(Capacity2),
	}
}

// SetLogger enables registration failure logging.
func (d *Dispatcher) SetLogger(l hal.Logger) { d.log = l }

// AddListener registers in the first, higher priority registry.
func (d *Dispatcher) AddListener(key hal.KeyCode, fn func(), hold bool) error {
	return d.add(d.reg1, "1", key, fn, hold)
}

// AddListener2 registers in the second registry, consulted only when no
// first-registry listener fired.
func (d *Dispatcher) AddListener2(key hal.KeyCode, fn func(), hold bool) error {
	return d.add(d.reg2, "2", key, fn, hold)
}

func (d *Dispatcher) add(r *Registry, name string, key hal.KeyCode, fn func(), hold bool) error {
	err := r.Add(Listener{Key: key, Callback: fn, Hold: hold})
	if err != nil && d.log != nil {
		if errors.Is(err, ErrRegistryFull) {
			d.log.WriteLineString("input: registry " + name + " full, dropped " + key.String())
		} else {
			d.log.WriteLineString("input: registry " + name + ": " + err.Error())
		}
	}
	return err
}

// RemoveListener drops every first-registry listener bound to key.
func (d *Dispatcher) RemoveListener(key hal.KeyCode) int { return d.reg1.Remove(key) }

// RemoveListener2 drops every second-registry listener bound to key.
func (d *Dispatcher) RemoveListener2(key hal.KeyCode) int { return d.reg2.Remove(key) }

// RemoveAllListeners empties both registries. Key state is kept.
func (d *Dispatcher) RemoveAllListeners() {
	d.reg1.Clear()
	d.reg2.Clear()
}

func (d *Dispatcher) Registry1() *Registry { return d.reg1 }
func (d *Dispatcher) Registry2() *Registry { return d.reg2 }

// Pressed reports whether key was down after the last CheckEvents.
func (d *Dispatcher) Pressed(key hal.KeyCode) bool { return d.cur.down(key) }

// JustPressed reports whether key went down during the last CheckEvents.
func (d *Dispatcher) JustPressed(key hal.KeyCode) bool {
	return d.cur.down(key) && !d.prev.down(key)
}

// CheckEvents runs one dispatch cycle: it snapshots the key table, drains
// every pending event, and fires the first satisfied listener of registry
// 1, or failing that of registry 2. It returns the key whose listener fired.
func (d *Dispatcher) CheckEvents() (hal.KeyCode, bool) {
	d.prev = d.cur
	d.drain()

	l, ok := d.reg1.match(&d.cur, &d.prev)
	if !ok {
		l, ok = d.reg2.match(&d.cur, &d.prev)
	}
	if !ok {
		return hal.KeyUnknown, false
	}
	l.Callback()
	return l.Key, true
}

func (d *Dispatcher) drain() {
	if d.src == nil {
		return
	}
	for {
		ev, ok := d.src.Poll()
		if !ok {
			return
		}
		if int(ev.Code) < len(d.cur) {
			d.cur[ev.Code] = ev.Press
		}
	}
}
