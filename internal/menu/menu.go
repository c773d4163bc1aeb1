// Package menu defines the demo menu catalogue: a tree of nodes keyed
// "parent:child", the loaders that list each submenu and the actions run
// when a leaf is committed.
package menu

import (
	"strings"
	"unicode"

	tea "github.com/charmbracelet/bubbletea"
)

// Item represents a selectable menu entry.
type Item struct {
	ID       string
	Label    string
	Disabled bool
	Hidden   bool
}

// Context carries runtime data needed by loader and action functions.
type Context struct {
	Document  string
	Modified  bool
	Recent    []string
	Zoom      int
	Wrap      bool
	Clipboard string
}

// Loader populates submenu entries on demand.
type Loader func(Context) ([]Item, error)

// Action runs a committed menu item.
type Action func(Context, Item) tea.Cmd

// ActionResult communicates the outcome of executing a menu action. Apply,
// when set, is run by the host against its own Context so actions never
// mutate shared state off the update loop.
type ActionResult struct {
	Info  string
	Err   error
	Apply func(*Context)
}

// DefaultContext returns the context the demo starts with.
func DefaultContext() Context {
	return Context{
		Document: "untitled.txt",
		Recent:   []string{"notes.txt", "todo.md", "report.pdf"},
		Zoom:     100,
	}
}

// RootItems returns the top-level menu entries.
func RootItems() []Item {
	return menuItemsFromIDs([]string{"file", "edit", "view", "about"})
}

// CategoryLoaders lists submenu loaders keyed by node ID.
func CategoryLoaders() map[string]Loader {
	return map[string]Loader{
		"file":      loadFileMenu,
		"file:open": loadRecentMenu,
		"edit":      loadEditMenu,
		"view":      loadViewMenu,
		"view:zoom": loadZoomMenu,
	}
}

// ActionHandlers maps node identifiers to their execution logic. A handler
// registered on a submenu runs for the entries its loader produced.
func ActionHandlers() map[string]Action {
	return map[string]Action{
		"file:new":   NewDocumentAction,
		"file:open":  OpenRecentAction,
		"file:save":  SaveAction,
		"file:quit":  QuitAction,
		"edit:undo":  UndoAction,
		"edit:cut":   CutAction,
		"edit:copy":  CopyAction,
		"edit:paste": PasteAction,
		"view:zoom":  ZoomAction,
		"view:wrap":  WrapAction,
		"about":      AboutAction,
	}
}

func loadFileMenu(ctx Context) ([]Item, error) {
	items := menuItemsFromIDs([]string{"file:new", "file:open", "file:save", "file:quit"})
	// nothing to open without a history
	items[1].Disabled = len(ctx.Recent) == 0
	items[2].Disabled = !ctx.Modified
	return items, nil
}

func loadRecentMenu(ctx Context) ([]Item, error) {
	items := make([]Item, 0, len(ctx.Recent))
	for _, name := range ctx.Recent {
		items = append(items, Item{ID: name, Label: name, Disabled: name == ctx.Document})
	}
	return items, nil
}

func loadEditMenu(ctx Context) ([]Item, error) {
	items := menuItemsFromIDs([]string{"edit:undo", "edit:redo", "edit:cut", "edit:copy", "edit:paste"})
	items[0].Disabled = !ctx.Modified
	// redo history is not tracked
	items[1].Hidden = true
	items[4].Disabled = ctx.Clipboard == ""
	return items, nil
}

func loadViewMenu(Context) ([]Item, error) {
	return menuItemsFromIDs([]string{"view:zoom", "view:wrap"}), nil
}

func loadZoomMenu(ctx Context) ([]Item, error) {
	items := menuItemsFromIDs([]string{"in", "out", "reset"})
	items[0].Disabled = ctx.Zoom >= maxZoom
	items[1].Disabled = ctx.Zoom <= minZoom
	items[2].Disabled = ctx.Zoom == 100
	return items, nil
}

func menuItemsFromIDs(ids []string) []Item {
	items := make([]Item, 0, len(ids))
	for _, id := range ids {
		_, key := parentKey(id)
		items = append(items, Item{ID: id, Label: prettyLabel(key)})
	}
	return items
}

func prettyLabel(id string) string {
	if id == "" {
		return id
	}
	parts := strings.FieldsFunc(id, func(r rune) bool {
		return r == '-' || r == '_' || r == ' '
	})
	for i, part := range parts {
		if part == "" {
			continue
		}
		runes := []rune(part)
		runes[0] = unicode.ToUpper(runes[0])
		for j := 1; j < len(runes); j++ {
			runes[j] = unicode.ToLower(runes[j])
		}
		parts[i] = string(runes)
	}
	return strings.Join(parts, " ")
}
