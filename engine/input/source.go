package input

import "cpboy/hal"

// Source yields pending key events without blocking. ok is false once the
// queue is empty for this cycle.
type Source interface {
	Poll() (ev hal.KeyEvent, ok bool)
}

// KeyboardSource drains a hal.Keyboard channel.
type KeyboardSource struct {
	kbd hal.Keyboard
}

func NewKeyboardSource(kbd hal.Keyboard) *KeyboardSource {
	return &KeyboardSource{kbd: kbd}
}

func (s *KeyboardSource) Poll() (hal.KeyEvent, bool) {
	if s == nil || s.kbd == nil {
		return hal.KeyEvent{}, false
	}
	ch := s.kbd.Events()
	if ch == nil {
		return hal.KeyEvent{}, false
	}
	select {
	case ev, ok := <-ch:
		return ev, ok
	default:
		return hal.KeyEvent{}, false
	}
}

const queueSlots = 64

// Queue is a fixed ring of pending events. Pushing onto a full queue drops
// the event.
type Queue struct {
	head  uint8
	tail  uint8
	slots [queueSlots]hal.KeyEvent
}

func (q *Queue) Push(ev hal.KeyEvent) bool {
	if q.head-q.tail >= queueSlots {
		return false
	}
	q.slots[q.head%queueSlots] = ev
	q.head++
	return true
}

func (q *Queue) Poll() (hal.KeyEvent, bool) {
	if q.tail == q.head {
		return hal.KeyEvent{}, false
	}
	ev := q.slots[q.tail%queueSlots]
	q.tail++
	return ev, true
}

func (q *Queue) Len() int { return int(q.head - q.tail) }

// LegacySource adapts hardware that reports the keyboard as two bitmask
// words (see Keys1 and Keys2). Each cycle it samples the words once and
// reports the bits that changed as press and release events.
type LegacySource struct {
	read    func() (key1, key2 uint32)
	old1    uint32
	old2    uint32
	sampled bool
	q       Queue
}

func NewLegacySource(read func() (key1, key2 uint32)) *LegacySource {
	return &LegacySource{read: read}
}

func (s *LegacySource) Poll() (hal.KeyEvent, bool) {
	if !s.sampled {
		s.sampled = true
		s.sample()
	}
	ev, ok := s.q.Poll()
	if !ok {
		s.sampled = false
	}
	return ev, ok
}

func (s *LegacySource) sample() {
	if s.read == nil {
		return
	}
	k1, k2 := s.read()
	diff(&s.q, Keys1[:], s.old1, k1)
	diff(&s.q, Keys2[:], s.old2, k2)
	s.old1, s.old2 = k1, k2
}

func diff(q *Queue, keys []LegacyKey, old, cur uint32) {
	changed := old ^ cur
	if changed == 0 {
		return
	}
	for _, k := range keys {
		if changed&k.Mask != 0 {
			q.Push(hal.KeyEvent{Code: k.Code, Press: cur&k.Mask != 0})
		}
	}
}
