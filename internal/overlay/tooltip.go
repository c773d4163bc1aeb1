package overlay

import (
	"time"

	"github.com/atomicstack/composite-widgets/internal/logging/events"
	"github.com/atomicstack/composite-widgets/internal/timer"
)

// Default tooltip delays.
const (
	DefaultOpenDelay  = 600 * time.Millisecond
	DefaultCloseDelay = 0
)

// Tooltip opens after the pointer rests on an anchor and closes after it
// leaves. Each transition cancels the opposite pending one.
type Tooltip struct {
	sched      timer.Scheduler
	openDelay  time.Duration
	closeDelay time.Duration

	open    bool
	anchor  string
	pending timer.ID
	opening bool
	target  string
}

// NewTooltip returns a closed tooltip. A negative delay selects the
// default.
func NewTooltip(sched timer.Scheduler, openDelay, closeDelay time.Duration) *Tooltip {
	if openDelay < 0 {
		openDelay = DefaultOpenDelay
	}
	if closeDelay < 0 {
		closeDelay = DefaultCloseDelay
	}
	return &Tooltip{sched: sched, openDelay: openDelay, closeDelay: closeDelay}
}

// Open reports whether the tooltip is shown.
func (t *Tooltip) Open() bool { return t.open }

// Anchor returns the anchor the tooltip is shown for.
func (t *Tooltip) Anchor() string { return t.anchor }

// Enter notes the pointer entering anchor. While another anchor's tooltip
// is showing, the tooltip moves without waiting.
func (t *Tooltip) Enter(anchor string) {
	t.cancel()
	if t.open {
		if t.anchor != anchor {
			t.show(anchor)
		}
		return
	}
	t.schedule(true, anchor, t.openDelay)
}

// Leave notes the pointer leaving the anchor.
func (t *Tooltip) Leave() {
	t.cancel()
	if t.open {
		t.schedule(false, t.anchor, t.closeDelay)
	}
}

// Focus shows the tooltip for anchor immediately, as keyboard focus does.
func (t *Tooltip) Focus(anchor string) {
	t.cancel()
	t.show(anchor)
}

// Expire handles a fired timer.
func (t *Tooltip) Expire(id timer.ID) bool {
	if id == 0 || id != t.pending || t.sched == nil || !t.sched.Live(id) {
		return false
	}
	t.cancel()
	if t.opening {
		t.show(t.target)
	} else {
		t.hide("timeout")
	}
	return true
}

// Close hides the tooltip and cancels pending transitions.
func (t *Tooltip) Close() {
	t.cancel()
	if t.open {
		t.hide("closed")
	}
}

func (t *Tooltip) schedule(opening bool, anchor string, d time.Duration) {
	if t.sched == nil || d <= 0 {
		if opening {
			t.show(anchor)
		} else {
			t.hide("leave")
		}
		return
	}
	t.opening = opening
	t.target = anchor
	t.pending = t.sched.Schedule(d)
}

func (t *Tooltip) show(anchor string) {
	t.open = true
	t.anchor = anchor
	events.Overlay.Show("tooltip", anchor)
}

func (t *Tooltip) hide(reason string) {
	events.Overlay.Dismiss("tooltip", t.anchor, reason)
	t.open = false
	t.anchor = ""
}

func (t *Tooltip) cancel() {
	if t.sched != nil && t.pending != 0 {
		t.sched.Cancel(t.pending)
	}
	t.pending = 0
}
