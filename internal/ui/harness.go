package ui

import (
	"time"

	"github.com/atomicstack/composite-widgets/internal/timer"
	tea "github.com/charmbracelet/bubbletea"
)

// Harness drives the UI model programmatically for integration tests. It
// owns a manual scheduler: timers fire only when Advance is called.
type Harness struct {
	model *Model
	sched *timer.Manual
	quit  bool
}

// NewHarness builds a model on a manual scheduler starting at start.
func NewHarness(opts Options, start time.Time) (*Harness, error) {
	sched := timer.NewManual(start)
	opts.Scheduler = sched
	opts.Clock = sched.Now
	model, err := NewModel(opts)
	if err != nil {
		return nil, err
	}
	return &Harness{model: model, sched: sched}, nil
}

// Send routes a message through the model and executes any returned commands.
func (h *Harness) Send(msg tea.Msg) {
	if h.model == nil {
		return
	}
	mdl, cmd := h.model.Update(msg)
	if updated, ok := mdl.(*Model); ok {
		h.model = updated
	}
	h.processCmd(cmd)
}

// Key sends a key press described the way bubbletea prints it, for
// example "down", "enter" or a single rune.
func (h *Harness) Key(name string) {
	h.Send(keyMsg(name))
}

// Type sends each rune of text as its own key press.
func (h *Harness) Type(text string) {
	for _, r := range text {
		h.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

// Advance moves the manual clock forward and delivers the timers that fired.
func (h *Harness) Advance(d time.Duration) {
	for _, expired := range h.sched.Advance(d) {
		h.Send(expired)
	}
}

func (h *Harness) processCmd(cmd tea.Cmd) {
	if cmd == nil {
		return
	}
	msg := cmd()
	switch msg := msg.(type) {
	case nil:
		return
	case tea.BatchMsg:
		for _, c := range msg {
			h.processCmd(c)
		}
		return
	case tea.QuitMsg:
		h.quit = true
		return
	}
	mdl, next := h.model.Update(msg)
	if updated, ok := mdl.(*Model); ok {
		h.model = updated
	}
	h.processCmd(next)
}

// View returns the current view string.
func (h *Harness) View() string {
	if h.model == nil {
		return ""
	}
	return h.model.View()
}

// Model exposes the underlying model.
func (h *Harness) Model() *Model {
	return h.model
}

// Quitting reports whether the model asked the program to exit.
func (h *Harness) Quitting() bool {
	return h.quit
}

// Scheduler exposes the manual scheduler.
func (h *Harness) Scheduler() *timer.Manual {
	return h.sched
}

func keyMsg(name string) tea.KeyMsg {
	named := map[string]tea.KeyType{
		"up":        tea.KeyUp,
		"down":      tea.KeyDown,
		"left":      tea.KeyLeft,
		"right":     tea.KeyRight,
		"home":      tea.KeyHome,
		"end":       tea.KeyEnd,
		"enter":     tea.KeyEnter,
		"esc":       tea.KeyEsc,
		"tab":       tea.KeyTab,
		"shift+tab": tea.KeyShiftTab,
		"backspace": tea.KeyBackspace,
		"ctrl+c":    tea.KeyCtrlC,
		"ctrl+w":    tea.KeyCtrlW,
		"ctrl+u":    tea.KeyCtrlU,
		" ":         tea.KeySpace,
	}
	if t, ok := named[name]; ok {
		return tea.KeyMsg{Type: t}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(name)}
}
