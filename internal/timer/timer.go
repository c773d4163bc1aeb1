// Package timer provides the cancellable timers used by typeahead expiry and
// auto-dismissing overlays. A timer never runs code on its own goroutine:
// firing produces an Expired value that the owner feeds back through its
// normal event handling, so expiry is just another synchronous event.
package timer

import (
	"sort"
	"time"
)

// ID identifies a scheduled timer. The zero ID is never issued.
type ID uint64

// Expired reports that the timer with the given id elapsed.
type Expired struct {
	ID ID
	At time.Time
}

// Scheduler schedules and cancels timers.
type Scheduler interface {
	Schedule(d time.Duration) ID
	Cancel(id ID)
	// Live reports whether id is scheduled and not cancelled. Owners check
	// it before acting on an Expired value, then Cancel it.
	Live(id ID) bool
}

// Manual is a Scheduler driven explicitly by Advance. Tests use it to make
// expiry deterministic.
type Manual struct {
	now     time.Time
	next    ID
	pending map[ID]time.Time
}

// NewManual returns a Manual scheduler whose clock starts at start.
func NewManual(start time.Time) *Manual {
	return &Manual{now: start, pending: make(map[ID]time.Time)}
}

// Now returns the scheduler clock.
func (m *Manual) Now() time.Time { return m.now }

func (m *Manual) Schedule(d time.Duration) ID {
	m.next++
	m.pending[m.next] = m.now.Add(d)
	return m.next
}

func (m *Manual) Cancel(id ID) {
	delete(m.pending, id)
}

func (m *Manual) Live(id ID) bool {
	_, ok := m.pending[id]
	return ok
}

// Pending returns the number of outstanding timers.
func (m *Manual) Pending() int { return len(m.pending) }

// Advance moves the clock forward by d and returns the timers that elapsed,
// in deadline order. Elapsed timers stay live until the owner cancels them,
// mirroring a message sitting in the event queue.
func (m *Manual) Advance(d time.Duration) []Expired {
	m.now = m.now.Add(d)
	var fired []Expired
	for id, deadline := range m.pending {
		if !deadline.After(m.now) {
			fired = append(fired, Expired{ID: id, At: deadline})
		}
	}
	sort.Slice(fired, func(i, j int) bool {
		if fired[i].At.Equal(fired[j].At) {
			return fired[i].ID < fired[j].ID
		}
		return fired[i].At.Before(fired[j].At)
	})
	return fired
}
