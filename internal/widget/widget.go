// Package widget assembles the interaction engine into composite widgets:
// menus, selects, comboboxes, tabs and checkbox/radio groups. Widgets draw
// nothing themselves; View describes the declarative state a renderer
// projects onto the screen.
package widget

import (
	"time"

	"github.com/atomicstack/composite-widgets/internal/a11y"
	"github.com/atomicstack/composite-widgets/internal/collection"
	"github.com/atomicstack/composite-widgets/internal/focus"
	"github.com/atomicstack/composite-widgets/internal/ids"
	"github.com/atomicstack/composite-widgets/internal/input"
	"github.com/atomicstack/composite-widgets/internal/submenu"
	"github.com/atomicstack/composite-widgets/internal/timer"
)

// Env carries the collaborators a widget instance is built with.
type Env struct {
	IDs             *ids.Allocator
	Scheduler       timer.Scheduler
	Focus           *focus.Detector
	Direction       input.Direction
	TypeaheadWindow time.Duration
	Advisor         a11y.Advisor
	Positioner      submenu.Positioner
}

func (e Env) withDefaults() Env {
	if e.IDs == nil {
		e.IDs = ids.New("")
	}
	if e.Focus == nil {
		e.Focus = focus.NewDetector(nil)
	}
	return e
}

// Outcome reports what a key or pointer event did.
type Outcome struct {
	Handled bool
	// Changed is set when a selection value was committed.
	Changed bool
	// Closed is set when the widget dismissed its popup.
	Closed bool
	// Commit is the menu item chosen, if any, and Level the collection it
	// was chosen from.
	Commit *collection.Item
	Level  string
}

// Row is one rendered item.
type Row struct {
	Item  collection.Item
	State collection.State
}

// Level is one rendered collection. Receiving marks the collection that
// takes keyboard input.
type Level struct {
	ID        string
	Rows      []Row
	Receiving bool
}

// View is the declarative render state of a widget.
type View struct {
	// Header is the trigger label or the text of an input line.
	Header string
	// Caret is the rune offset of the text caret in Header, or -1.
	Caret      int
	Expanded   bool
	Horizontal bool
	Levels     []Level
	Panel      string
	Summary    string
}

// Pointer is a pointer event over item Item of collection Level. Press
// distinguishes a click from plain movement.
type Pointer struct {
	Level string
	Item  string
	Press bool
}

// Widget is the surface the host drives.
type Widget interface {
	ID() string
	Title() string
	Focus()
	Blur()
	HandleKey(ev input.Event) Outcome
	HandlePointer(p Pointer) Outcome
	Expire(id timer.ID) bool
	View() View
}

// focusTracker moves focus-visible state along with the active item.
type focusTracker struct {
	det     *focus.Detector
	owner   string
	current string
}

func (f *focusTracker) follow(level, itemID string) {
	key := ""
	if itemID != "" {
		key = f.owner + "/" + level + "/" + itemID
	}
	if key == f.current {
		return
	}
	if f.current != "" {
		f.det.Blur(f.current)
	}
	f.current = key
	if key != "" {
		f.det.Focus(key)
	}
}

func (f *focusTracker) release() { f.follow("", "") }

func (f *focusTracker) visible(level, itemID string) bool {
	key := f.owner + "/" + level + "/" + itemID
	return key == f.current && f.det.Visible(key)
}

// rows builds render rows for the visible items of a collection.
func rows(items []collection.Item, state func(collection.Item) collection.State) []Row {
	out := make([]Row, 0, len(items))
	for _, item := range items {
		if item.Hidden {
			continue
		}
		out = append(out, Row{Item: item, State: state(item)})
	}
	return out
}

func handled(changed bool) Outcome {
	return Outcome{Handled: true, Changed: changed}
}
