package state

import "testing"

func TestEnsureVisibleScrollsDown(t *testing.T) {
	var v Viewport
	v.EnsureVisible(4, 5, 2)
	if v.Offset != 3 {
		t.Fatalf("expected offset 3, got %d", v.Offset)
	}
	start, end := v.Window(5, 2)
	if start != 3 || end != 5 {
		t.Fatalf("expected window [3,5), got [%d,%d)", start, end)
	}
}

func TestEnsureVisibleScrollsUp(t *testing.T) {
	v := Viewport{Offset: 3}
	v.EnsureVisible(1, 5, 2)
	if v.Offset != 1 {
		t.Fatalf("expected offset 1, got %d", v.Offset)
	}
}

func TestEnsureVisibleClampsOffset(t *testing.T) {
	v := Viewport{Offset: 10}
	v.EnsureVisible(-1, 5, 2)
	if v.Offset != 3 {
		t.Fatalf("expected offset clamped to 3, got %d", v.Offset)
	}
	v.EnsureVisible(0, 0, 2)
	if v.Offset != 0 {
		t.Fatalf("expected offset reset for empty list, got %d", v.Offset)
	}
}

func TestWindowWithoutLimit(t *testing.T) {
	v := Viewport{Offset: 2}
	start, end := v.Window(4, 0)
	if start != 0 || end != 4 {
		t.Fatalf("expected full window, got [%d,%d)", start, end)
	}
}
