package keys

import (
	"testing"
	"time"

	"github.com/atomicstack/composite-widgets/internal/input"
	tea "github.com/charmbracelet/bubbletea"
)

func TestTranslateNamedKeys(t *testing.T) {
	km := Default()
	at := time.Unix(10, 0)
	cases := []struct {
		msg  tea.KeyMsg
		want input.Key
	}{
		{tea.KeyMsg{Type: tea.KeyUp}, input.KeyUp},
		{tea.KeyMsg{Type: tea.KeyDown}, input.KeyDown},
		{tea.KeyMsg{Type: tea.KeyCtrlN}, input.KeyDown},
		{tea.KeyMsg{Type: tea.KeyLeft}, input.KeyLeft},
		{tea.KeyMsg{Type: tea.KeyRight}, input.KeyRight},
		{tea.KeyMsg{Type: tea.KeyHome}, input.KeyHome},
		{tea.KeyMsg{Type: tea.KeyEnd}, input.KeyEnd},
		{tea.KeyMsg{Type: tea.KeyEnter}, input.KeyEnter},
		{tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, input.KeySpace},
		{tea.KeyMsg{Type: tea.KeyEsc}, input.KeyEscape},
		{tea.KeyMsg{Type: tea.KeyTab}, input.KeyTab},
		{tea.KeyMsg{Type: tea.KeyShiftTab}, input.KeyBackTab},
		{tea.KeyMsg{Type: tea.KeyBackspace}, input.KeyBackspace},
		{tea.KeyMsg{Type: tea.KeyCtrlW}, input.KeyDeleteWord},
		{tea.KeyMsg{Type: tea.KeyCtrlU}, input.KeyClearLine},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'b'}, Alt: true}, input.KeyWordBackward},
	}
	for _, tc := range cases {
		ev, ok := km.Translate(tc.msg, at)
		if !ok {
			t.Fatalf("expected %q to translate", tc.msg.String())
		}
		if ev.Key != tc.want {
			t.Fatalf("expected %q to map to %s, got %s", tc.msg.String(), tc.want, ev.Key)
		}
		if !ev.At.Equal(at) {
			t.Fatalf("expected timestamp carried for %q", tc.msg.String())
		}
	}
}

func TestTranslateRunes(t *testing.T) {
	km := Default()
	ev, ok := km.Translate(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'B'}}, time.Unix(1, 0))
	if !ok || ev.Key != input.KeyRune || ev.Rune != 'B' {
		t.Fatalf("expected rune event, got %+v", ev)
	}
	if _, ok := km.Translate(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}, Alt: true}, time.Time{}); ok {
		t.Fatal("expected alt+rune to be ignored")
	}
	if _, ok := km.Translate(tea.KeyMsg{Type: tea.KeyCtrlC}, time.Time{}); ok {
		t.Fatal("expected quit to be left to the host")
	}
}

func TestHelpFollowsDirection(t *testing.T) {
	km := Default()
	ltr := km.Help(input.LTR)
	if ltr[2].Help().Key != "→" || ltr[2].Help().Desc != "open" {
		t.Fatalf("expected right arrow to open in LTR, got %+v", ltr[2].Help())
	}
	rtl := km.Help(input.RTL)
	if rtl[2].Help().Key != "←" || rtl[3].Help().Key != "→" {
		t.Fatalf("expected arrows swapped in RTL, got %+v / %+v", rtl[2].Help(), rtl[3].Help())
	}
	if km.Right.Help().Desc != "right" {
		t.Fatal("expected Help to leave the map untouched")
	}
}
