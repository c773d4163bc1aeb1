// Package typeahead resolves buffered character input to a matching item.
package typeahead

import (
	"strings"
	"time"
	"unicode"

	"github.com/atomicstack/composite-widgets/internal/collection"
	"github.com/atomicstack/composite-widgets/internal/logging/events"
	"github.com/atomicstack/composite-widgets/internal/nav"
	"github.com/atomicstack/composite-widgets/internal/timer"
)

// DefaultResetWindow is the typing pause after which the buffer starts over.
const DefaultResetWindow = 500 * time.Millisecond

// Matcher buffers printable input and activates the first available item
// whose text starts with the buffer.
type Matcher struct {
	window time.Duration
	sched  timer.Scheduler

	buffer string
	last   time.Time
	expiry timer.ID
}

// New returns a matcher. A nil scheduler relies on timestamps alone.
func New(window time.Duration, sched timer.Scheduler) *Matcher {
	if window <= 0 {
		window = DefaultResetWindow
	}
	return &Matcher{window: window, sched: sched}
}

// Buffer returns the current query.
func (m *Matcher) Buffer() string { return m.buffer }

// Printable reports whether r is accepted as typeahead input.
func Printable(r rune) bool {
	return unicode.IsPrint(r) && !unicode.IsSpace(r)
}

// Input appends r to the buffer and moves ctl to the match. With a single
// character the scan starts after the active item; with a longer buffer the
// active item itself is tried first so that typing more of its text keeps
// it. When the extended buffer matches nothing, the buffer restarts at r and
// the scan starts after the active item, which cycles through items sharing
// a prefix. A miss leaves ctl unchanged.
func (m *Matcher) Input(ctl *nav.Controller, r rune, at time.Time) (collection.Item, bool) {
	if ctl == nil || !Printable(r) {
		return collection.Item{}, false
	}
	if !m.last.IsZero() && at.Sub(m.last) > m.window {
		m.buffer = ""
		events.Typeahead.Reset("window")
	}
	m.last = at
	char := strings.ToLower(string(r))
	m.buffer += char
	m.arm()

	items := ctl.Items()
	cur := ctl.Index()
	if idx := match(items, cur, m.buffer, len([]rune(m.buffer)) > 1); idx >= 0 {
		return m.hit(ctl, items, idx)
	}
	// A miss on the whole buffer retries with the last character alone, so
	// repeating one letter cycles through items that start with it.
	if m.buffer != char {
		if idx := match(items, cur, char, false); idx >= 0 {
			m.buffer = char
			return m.hit(ctl, items, idx)
		}
	}
	events.Typeahead.Miss(m.buffer)
	return collection.Item{}, false
}

// Expire handles a fired timer. Unknown or cancelled ids are ignored.
func (m *Matcher) Expire(id timer.ID) bool {
	if id == 0 || id != m.expiry {
		return false
	}
	if m.sched != nil {
		if !m.sched.Live(id) {
			return false
		}
		m.sched.Cancel(id)
	}
	m.expiry = 0
	m.buffer = ""
	events.Typeahead.Reset("timer")
	return true
}

// Reset clears the buffer and cancels the pending expiry.
func (m *Matcher) Reset() {
	m.cancel()
	m.buffer = ""
	m.last = time.Time{}
}

func (m *Matcher) arm() {
	if m.sched == nil {
		return
	}
	m.cancel()
	m.expiry = m.sched.Schedule(m.window)
}

func (m *Matcher) cancel() {
	if m.sched != nil && m.expiry != 0 {
		m.sched.Cancel(m.expiry)
	}
	m.expiry = 0
}

func (m *Matcher) hit(ctl *nav.Controller, items []collection.Item, idx int) (collection.Item, bool) {
	ctl.SetActiveIndex(idx)
	events.Typeahead.Match(m.buffer, items[idx].ID)
	return items[idx], true
}

func match(items []collection.Item, cur int, query string, inclusive bool) int {
	start := 0
	if cur >= 0 {
		start = cur + 1
		if inclusive {
			start = cur
		}
	}
	return nav.FindAvailable(items, start, nav.Forward, func(item collection.Item) bool {
		return item.Available() && strings.HasPrefix(strings.ToLower(item.Text), query)
	})
}
