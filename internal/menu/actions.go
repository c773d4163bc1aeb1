package menu

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

const (
	minZoom  = 50
	maxZoom  = 200
	zoomStep = 10
)

func result(info string, apply func(*Context)) tea.Cmd {
	return func() tea.Msg { return ActionResult{Info: info, Apply: apply} }
}

func failure(err error) tea.Cmd {
	return func() tea.Msg { return ActionResult{Err: err} }
}

// NewDocumentAction replaces the document with an empty one.
func NewDocumentAction(ctx Context, _ Item) tea.Cmd {
	return result("Created untitled.txt", func(c *Context) {
		c.Document = "untitled.txt"
		c.Modified = false
	})
}

// OpenRecentAction opens an entry from the recent list.
func OpenRecentAction(ctx Context, item Item) tea.Cmd {
	name := strings.TrimSpace(item.ID)
	if name == "" {
		return failure(fmt.Errorf("invalid recent file selection"))
	}
	if name == ctx.Document {
		return nil
	}
	return result(fmt.Sprintf("Opened %s", name), func(c *Context) {
		c.Document = name
		c.Modified = false
	})
}

// SaveAction clears the modified flag.
func SaveAction(ctx Context, _ Item) tea.Cmd {
	if !ctx.Modified {
		return nil
	}
	doc := ctx.Document
	return result(fmt.Sprintf("Saved %s", doc), func(c *Context) {
		c.Modified = false
		c.Recent = remember(c.Recent, doc)
	})
}

// QuitAction ends the program.
func QuitAction(Context, Item) tea.Cmd {
	return tea.Quit
}

// UndoAction reverts the last edit.
func UndoAction(ctx Context, _ Item) tea.Cmd {
	if !ctx.Modified {
		return failure(fmt.Errorf("nothing to undo"))
	}
	return result("Undone", func(c *Context) { c.Modified = false })
}

// CutAction moves the document name into the clipboard.
func CutAction(ctx Context, _ Item) tea.Cmd {
	doc := ctx.Document
	return result("Cut selection", func(c *Context) {
		c.Clipboard = doc
		c.Modified = true
	})
}

// CopyAction copies the document name into the clipboard.
func CopyAction(ctx Context, _ Item) tea.Cmd {
	doc := ctx.Document
	return result("Copied selection", func(c *Context) { c.Clipboard = doc })
}

// PasteAction inserts the clipboard.
func PasteAction(ctx Context, _ Item) tea.Cmd {
	if ctx.Clipboard == "" {
		return failure(fmt.Errorf("clipboard is empty"))
	}
	return result(fmt.Sprintf("Pasted %q", ctx.Clipboard), func(c *Context) { c.Modified = true })
}

// ZoomAction applies one of the zoom submenu entries.
func ZoomAction(ctx Context, item Item) tea.Cmd {
	zoom := ctx.Zoom
	switch item.ID {
	case "in":
		zoom = min(zoom+zoomStep, maxZoom)
	case "out":
		zoom = max(zoom-zoomStep, minZoom)
	case "reset":
		zoom = 100
	default:
		return failure(fmt.Errorf("unknown zoom option %q", item.ID))
	}
	return result(fmt.Sprintf("Zoom %d%%", zoom), func(c *Context) { c.Zoom = zoom })
}

// WrapAction toggles soft wrapping.
func WrapAction(ctx Context, _ Item) tea.Cmd {
	wrap := !ctx.Wrap
	info := "Wrap off"
	if wrap {
		info = "Wrap on"
	}
	return result(info, func(c *Context) { c.Wrap = wrap })
}

// AboutAction reports the program name.
func AboutAction(Context, Item) tea.Cmd {
	return result("composite-widgets demo", nil)
}

func remember(recent []string, name string) []string {
	out := []string{name}
	for _, entry := range recent {
		if entry != name {
			out = append(out, entry)
		}
	}
	return out
}
