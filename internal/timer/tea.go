package timer

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// Tea is a Scheduler backed by tea.Tick. Scheduling queues a command that
// the host model collects with Cmd; when the tick fires, the Expired message
// arrives through Update like any other input.
type Tea struct {
	next   ID
	live   map[ID]struct{}
	queued []tea.Cmd
}

// NewTea returns an empty tea-backed scheduler.
func NewTea() *Tea {
	return &Tea{live: make(map[ID]struct{})}
}

func (t *Tea) Schedule(d time.Duration) ID {
	t.next++
	id := t.next
	t.live[id] = struct{}{}
	t.queued = append(t.queued, tea.Tick(d, func(at time.Time) tea.Msg {
		return Expired{ID: id, At: at}
	}))
	return id
}

// Cancel forgets id. The tick still fires but is discarded by Live.
func (t *Tea) Cancel(id ID) {
	delete(t.live, id)
}

func (t *Tea) Live(id ID) bool {
	_, ok := t.live[id]
	return ok
}

// Cmd drains the commands queued since the last call.
func (t *Tea) Cmd() tea.Cmd {
	if len(t.queued) == 0 {
		return nil
	}
	cmds := t.queued
	t.queued = nil
	return tea.Batch(cmds...)
}
