// Package keys maps terminal key messages onto engine input events.
package keys

import (
	"time"

	"github.com/atomicstack/composite-widgets/internal/input"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Map holds the bindings the host understands. Arrow bindings are
// physical; input.Direction decides which of them means forward.
type Map struct {
	Up        key.Binding
	Down      key.Binding
	Left      key.Binding
	Right     key.Binding
	Home      key.Binding
	End       key.Binding
	Select    key.Binding
	Toggle    key.Binding
	Escape    key.Binding
	NextTab   key.Binding
	PrevTab   key.Binding
	Backspace key.Binding
	Quit      key.Binding

	DeleteWord   key.Binding
	ClearLine    key.Binding
	LineStart    key.Binding
	LineEnd      key.Binding
	WordBackward key.Binding
	WordForward  key.Binding
}

// Default returns the stock key map.
func Default() Map {
	return Map{
		Up:        key.NewBinding(key.WithKeys("up", "ctrl+p"), key.WithHelp("↑", "prev")),
		Down:      key.NewBinding(key.WithKeys("down", "ctrl+n"), key.WithHelp("↓", "next")),
		Left:      key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "left")),
		Right:     key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "right")),
		Home:      key.NewBinding(key.WithKeys("home", "pgup"), key.WithHelp("home", "first")),
		End:       key.NewBinding(key.WithKeys("end", "pgdown"), key.WithHelp("end", "last")),
		Select:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select")),
		Toggle:    key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "toggle")),
		Escape:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close")),
		NextTab:   key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next widget")),
		PrevTab:   key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev widget")),
		Backspace: key.NewBinding(key.WithKeys("backspace", "ctrl+h"), key.WithHelp("⌫", "delete")),
		Quit:      key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),

		DeleteWord:   key.NewBinding(key.WithKeys("ctrl+w"), key.WithHelp("ctrl+w", "delete word")),
		ClearLine:    key.NewBinding(key.WithKeys("ctrl+u"), key.WithHelp("ctrl+u", "clear")),
		LineStart:    key.NewBinding(key.WithKeys("ctrl+a"), key.WithHelp("ctrl+a", "line start")),
		LineEnd:      key.NewBinding(key.WithKeys("ctrl+e"), key.WithHelp("ctrl+e", "line end")),
		WordBackward: key.NewBinding(key.WithKeys("alt+b"), key.WithHelp("alt+b", "word back")),
		WordForward:  key.NewBinding(key.WithKeys("alt+f"), key.WithHelp("alt+f", "word forward")),
	}
}

// Translate converts msg into an input event stamped with at. Keys with no
// engine meaning report false.
func (m Map) Translate(msg tea.KeyMsg, at time.Time) (input.Event, bool) {
	pairs := []struct {
		binding key.Binding
		key     input.Key
	}{
		{m.Up, input.KeyUp},
		{m.Down, input.KeyDown},
		{m.Left, input.KeyLeft},
		{m.Right, input.KeyRight},
		{m.Home, input.KeyHome},
		{m.End, input.KeyEnd},
		{m.Select, input.KeyEnter},
		{m.Toggle, input.KeySpace},
		{m.Escape, input.KeyEscape},
		{m.NextTab, input.KeyTab},
		{m.PrevTab, input.KeyBackTab},
		{m.Backspace, input.KeyBackspace},
		{m.DeleteWord, input.KeyDeleteWord},
		{m.ClearLine, input.KeyClearLine},
		{m.LineStart, input.KeyLineStart},
		{m.LineEnd, input.KeyLineEnd},
		{m.WordBackward, input.KeyWordBackward},
		{m.WordForward, input.KeyWordForward},
	}
	for _, p := range pairs {
		if key.Matches(msg, p.binding) {
			ev := input.Press(p.key)
			ev.At = at
			return ev, true
		}
	}
	if msg.Type == tea.KeyRunes && !msg.Alt && len(msg.Runes) == 1 {
		return input.Rune(msg.Runes[0], at), true
	}
	return input.Event{}, false
}

// Help returns the bindings shown in the footer, forward arrow first.
func (m Map) Help(dir input.Direction) []key.Binding {
	forward, backward := m.Right, m.Left
	if dir == input.RTL {
		forward, backward = m.Left, m.Right
	}
	forward.SetHelp(forward.Help().Key, "open")
	backward.SetHelp(backward.Help().Key, "back")
	return []key.Binding{m.Down, m.Up, forward, backward, m.Select, m.Toggle, m.Escape, m.NextTab, m.Quit}
}
