package ui

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/atomicstack/composite-widgets/internal/menu"
	"github.com/atomicstack/composite-widgets/internal/overlay"
	"github.com/atomicstack/composite-widgets/internal/widget"
	tea "github.com/charmbracelet/bubbletea"
)

var epoch = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

func newHarness(t *testing.T) *Harness {
	t.Helper()
	h, err := NewHarness(Options{Width: 120, Height: 40}, epoch)
	if err != nil {
		t.Fatalf("NewHarness: %v", err)
	}
	return h
}

func activeRows(w widget.Widget) []string {
	var out []string
	for _, level := range w.View().Levels {
		for _, row := range level.Rows {
			if row.State.Active {
				out = append(out, level.ID+"/"+row.Item.ID)
			}
		}
	}
	return out
}

func snackbarText(h *Harness) string {
	msg, ok := h.Model().Snackbar().Current()
	if !ok {
		return ""
	}
	return msg.Text
}

func TestModelStartsOnMenu(t *testing.T) {
	h := newHarness(t)
	m := h.Model()
	if got := m.Current().Title(); got != "Menu" {
		t.Fatalf("expected menu first, got %q", got)
	}
	if got := activeRows(m.Current()); len(got) != 1 || got[0] != "root/file" {
		t.Fatalf("unexpected active rows %v", got)
	}
	if len(m.Widgets()) != 6 {
		t.Fatalf("expected 6 widgets, got %d", len(m.Widgets()))
	}
}

func TestRootLeafActionShowsSnackbar(t *testing.T) {
	h := newHarness(t)
	h.Key("end")
	h.Key("enter")
	if got := snackbarText(h); got != "composite-widgets demo" {
		t.Fatalf("unexpected snackbar %q", got)
	}
	h.Advance(overlay.DefaultSnackbarDuration - time.Millisecond)
	if snackbarText(h) == "" {
		t.Fatalf("snackbar dismissed early")
	}
	h.Advance(time.Millisecond)
	if got := snackbarText(h); got != "" {
		t.Fatalf("snackbar should have timed out, got %q", got)
	}
}

func TestNestedSubmenuActionUpdatesContext(t *testing.T) {
	h := newHarness(t)
	h.Key("right")
	if got := activeRows(h.Model().Current()); len(got) != 2 || got[1] != "file/file:new" {
		t.Fatalf("unexpected rows after opening file: %v", got)
	}
	h.Key("down")
	h.Key("right")
	h.Key("down")
	h.Key("enter")

	if got := h.Model().MenuContext().Document; got != "todo.md" {
		t.Fatalf("expected todo.md to be open, got %q", got)
	}
	if got := snackbarText(h); got != "Opened todo.md" {
		t.Fatalf("unexpected snackbar %q", got)
	}
	if levels := h.Model().Current().View().Levels; len(levels) != 1 {
		t.Fatalf("commit should close submenus, got %d levels", len(levels))
	}
}

func TestEditActionsFollowContext(t *testing.T) {
	h := newHarness(t)
	// Edit > Undo is disabled while unmodified; Cut marks the document
	// modified, after which Undo succeeds.
	h.Key("down")
	h.Key("right")
	if got := activeRows(h.Model().Current()); got[len(got)-1] != "edit/edit:cut" {
		t.Fatalf("undo should be skipped, got %v", got)
	}
	h.Key("enter")
	if !h.Model().MenuContext().Modified {
		t.Fatalf("cut should mark the document modified")
	}
	h.Key("right")
	if got := activeRows(h.Model().Current()); got[len(got)-1] != "edit/edit:undo" {
		t.Fatalf("undo should now be available, got %v", got)
	}
	h.Key("end")
	h.Key("enter")
	if h.Model().errMsg != "" {
		t.Fatalf("paste after cut should succeed, got %q", h.Model().errMsg)
	}
	if !strings.Contains(snackbarText(h), "Pasted") {
		t.Fatalf("unexpected snackbar %q", snackbarText(h))
	}
}

func TestActionErrorIsReported(t *testing.T) {
	h := newHarness(t)
	h.Send(menu.ActionResult{Err: errors.New("boom")})
	if h.Model().errMsg != "boom" {
		t.Fatalf("unexpected error message %q", h.Model().errMsg)
	}
	if !strings.Contains(h.View(), "Error: boom") {
		t.Fatalf("view should show the error")
	}
	h.Key("end")
	h.Key("enter")
	if h.Model().errMsg != "" {
		t.Fatalf("running another action should clear the error")
	}
}

func TestTabCyclesWidgets(t *testing.T) {
	h := newHarness(t)
	first := h.Model().Current()
	h.Key("tab")
	if got := h.Model().Current().Title(); got != "Toppings" {
		t.Fatalf("expected Toppings, got %q", got)
	}
	if len(activeRows(first)) != 0 {
		t.Fatalf("menu should drop its active item on blur")
	}
	h.Key("shift+tab")
	h.Key("shift+tab")
	if got := h.Model().Current().Title(); got != "Tabs" {
		t.Fatalf("shift+tab should wrap to the last widget, got %q", got)
	}
}

func TestCheckGroupParentSelectsAll(t *testing.T) {
	h := newHarness(t)
	h.Key("tab")
	h.Key(" ")
	if got := snackbarText(h); got != "Toppings: value: [cheese olives peppers]" {
		t.Fatalf("unexpected snackbar %q", got)
	}
	h.Key(" ")
	if got := snackbarText(h); got != "Toppings: value: []" {
		t.Fatalf("unexpected snackbar %q", got)
	}
}

func TestComboboxFiltersAndCommits(t *testing.T) {
	h := newHarness(t)
	for i := 0; i < 4; i++ {
		h.Key("tab")
	}
	if got := h.Model().Current().Title(); got != "Country" {
		t.Fatalf("expected Country, got %q", got)
	}
	h.Type("ja")
	combo := h.Model().Current().(*widget.Combobox)
	if combo.Active() != "japan" {
		t.Fatalf("expected japan active, got %q", combo.Active())
	}
	h.Key("enter")
	if combo.Query() != "Japan" || combo.Expanded() {
		t.Fatalf("unexpected combobox state %q expanded=%v", combo.Query(), combo.Expanded())
	}
	if got := snackbarText(h); got != "Country: value: japan" {
		t.Fatalf("unexpected snackbar %q", got)
	}
}

func TestEscapeDismissesSnackbar(t *testing.T) {
	h := newHarness(t)
	h.Key("end")
	h.Key("enter")
	h.Key("esc")
	// the menu closes first
	if snackbarText(h) == "" {
		t.Fatalf("first escape belongs to the menu")
	}
	h.Key("esc")
	if got := snackbarText(h); got != "" {
		t.Fatalf("second escape should dismiss the snackbar, got %q", got)
	}
}

func TestQuitKey(t *testing.T) {
	h := newHarness(t)
	h.Key("ctrl+c")
	if !h.Quitting() {
		t.Fatalf("ctrl+c should quit")
	}
}

func TestWindowSizeRespectsFixedDimensions(t *testing.T) {
	h := newHarness(t)
	h.Send(tea.WindowSizeMsg{Width: 10, Height: 5})
	if h.Model().width != 120 || h.Model().height != 40 {
		t.Fatalf("fixed size should win, got %dx%d", h.Model().width, h.Model().height)
	}

	free, err := NewHarness(Options{}, epoch)
	if err != nil {
		t.Fatalf("NewHarness: %v", err)
	}
	free.Send(tea.WindowSizeMsg{Width: 80, Height: 24})
	if free.Model().width != 80 || free.Model().height != 24 {
		t.Fatalf("unexpected size %dx%d", free.Model().width, free.Model().height)
	}
}
