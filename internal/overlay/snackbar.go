// Package overlay implements the timed overlays: an auto-dismissing
// snackbar and a delayed tooltip. Both own their timers and cancel them on
// every superseding change and on Close.
package overlay

import (
	"time"

	"github.com/atomicstack/composite-widgets/internal/ids"
	"github.com/atomicstack/composite-widgets/internal/logging/events"
	"github.com/atomicstack/composite-widgets/internal/timer"
)

// DefaultSnackbarDuration is used when no duration is configured.
const DefaultSnackbarDuration = 4 * time.Second

// Message is one snackbar notification.
type Message struct {
	ID   string
	Text string
}

// Snackbar shows one message at a time and dismisses it after a duration.
// Hovering pauses the countdown; leaving restarts it in full.
type Snackbar struct {
	sched    timer.Scheduler
	ids      *ids.Allocator
	duration time.Duration

	current *Message
	timer   timer.ID
	hovered bool
}

// NewSnackbar returns an empty snackbar.
func NewSnackbar(sched timer.Scheduler, alloc *ids.Allocator, duration time.Duration) *Snackbar {
	if duration <= 0 {
		duration = DefaultSnackbarDuration
	}
	if alloc == nil {
		alloc = ids.New("")
	}
	return &Snackbar{sched: sched, ids: alloc, duration: duration}
}

// Current returns the visible message.
func (s *Snackbar) Current() (Message, bool) {
	if s.current == nil {
		return Message{}, false
	}
	return *s.current, true
}

// Show replaces any visible message with text.
func (s *Snackbar) Show(text string) Message {
	if s.current != nil {
		s.dismiss("superseded")
	}
	msg := Message{ID: s.ids.Next("snackbar"), Text: text}
	s.current = &msg
	events.Overlay.Show("snackbar", msg.ID)
	if !s.hovered {
		s.arm()
	}
	return msg
}

// Hover pauses the countdown while the pointer is over the snackbar.
func (s *Snackbar) Hover(over bool) {
	if over == s.hovered {
		return
	}
	s.hovered = over
	if s.current == nil {
		return
	}
	if over {
		s.cancel()
		return
	}
	s.arm()
}

// Dismiss hides the visible message.
func (s *Snackbar) Dismiss() bool {
	if s.current == nil {
		return false
	}
	s.dismiss("dismissed")
	return true
}

// Expire handles a fired timer and reports whether it was this snackbar's.
func (s *Snackbar) Expire(id timer.ID) bool {
	if id == 0 || id != s.timer || s.sched == nil || !s.sched.Live(id) {
		return false
	}
	s.dismiss("timeout")
	return true
}

// Close cancels the pending timer and drops the message.
func (s *Snackbar) Close() {
	if s.current != nil {
		s.dismiss("closed")
	}
	s.cancel()
}

func (s *Snackbar) dismiss(reason string) {
	s.cancel()
	events.Overlay.Dismiss("snackbar", s.current.ID, reason)
	s.current = nil
}

func (s *Snackbar) arm() {
	if s.sched == nil {
		return
	}
	s.cancel()
	s.timer = s.sched.Schedule(s.duration)
}

func (s *Snackbar) cancel() {
	if s.sched != nil && s.timer != 0 {
		s.sched.Cancel(s.timer)
	}
	s.timer = 0
}
