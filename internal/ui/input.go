package ui

import (
	"github.com/atomicstack/composite-widgets/internal/input"
	"github.com/atomicstack/composite-widgets/internal/logging/events"
	"github.com/atomicstack/composite-widgets/internal/widget"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func (m *Model) updateFilterCursorModel(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	m.filterCursor, cmd = m.filterCursor.Update(msg)
	return cmd
}

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	m.modality.NoteKey(false)
	if key.Matches(keyMsg, m.keys.Quit) {
		return tea.Quit
	}
	ev, ok := m.keys.Translate(keyMsg, m.clock())
	if !ok {
		return nil
	}
	w := m.Current()
	before := w.View().Caret
	out := w.HandleKey(ev)
	events.UI.Key(w.ID(), ev.Key.String(), out.Handled)
	if w.View().Caret != before {
		m.filterCursorDirty = true
	}
	if out.Handled {
		return m.applyOutcome(w, out)
	}
	switch ev.Key {
	case input.KeyTab:
		m.cycleWidget(1)
	case input.KeyBackTab:
		m.cycleWidget(-1)
	case input.KeyEscape:
		m.snackbar.Dismiss()
		m.errMsg = ""
	}
	return nil
}

func (m *Model) handleMouseMsg(msg tea.Msg) tea.Cmd {
	ev, ok := msg.(tea.MouseMsg)
	if !ok {
		return nil
	}
	h, found := m.hitAt(ev.X, ev.Y)
	switch {
	case ev.Action == tea.MouseActionMotion:
		m.modality.NotePointer()
		m.snackbar.Hover(found && h.kind == hitSnackbar)
		if !found || h.kind != hitRow {
			m.hoverAnchor("")
			return nil
		}
		m.hoverAnchor(h.anchor)
		w := m.Current()
		w.HandlePointer(h.pointer)
		events.UI.Pointer(w.ID(), h.pointer.Level, h.pointer.Item, false)
		return nil
	case ev.Action == tea.MouseActionPress && ev.Button == tea.MouseButtonLeft:
		m.modality.NotePointer()
		if !found {
			m.Current().Blur()
			return nil
		}
		switch h.kind {
		case hitWidget:
			m.selectWidget(h.widget)
			return nil
		case hitSnackbar:
			m.snackbar.Dismiss()
			return nil
		}
		w := m.Current()
		p := h.pointer
		p.Press = true
		out := w.HandlePointer(p)
		events.UI.Pointer(w.ID(), p.Level, p.Item, true)
		if out.Handled {
			return m.applyOutcome(w, out)
		}
	}
	return nil
}

func (m *Model) hoverAnchor(anchor string) {
	if anchor == m.hover {
		return
	}
	m.hover = anchor
	if anchor == "" {
		m.tooltip.Leave()
		return
	}
	m.tooltip.Enter(anchor)
}

// applyOutcome reacts to a handled event: menu commits run their action,
// committed selections are announced.
func (m *Model) applyOutcome(w widget.Widget, out widget.Outcome) tea.Cmd {
	if out.Commit != nil {
		events.UI.Commit(w.ID(), out.Level, out.Commit.ID)
		return m.runCommit(out.Level, *out.Commit)
	}
	if out.Changed {
		m.snackbar.Show(w.Title() + ": " + w.View().Summary)
	}
	return nil
}
