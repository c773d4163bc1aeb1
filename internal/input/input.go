// Package input defines the key vocabulary the engine reacts to,
// independent of any terminal library.
package input

import "time"

// Key is a logical key.
type Key int

const (
	KeyNone Key = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyHome
	KeyEnd
	KeyEnter
	KeySpace
	KeyEscape
	KeyTab
	KeyBackTab
	KeyBackspace
	KeyRune
	// Line editing keys used by text inputs.
	KeyDeleteWord
	KeyClearLine
	KeyLineStart
	KeyLineEnd
	KeyWordBackward
	KeyWordForward
)

var keyNames = map[Key]string{
	KeyNone:      "none",
	KeyUp:        "up",
	KeyDown:      "down",
	KeyLeft:      "left",
	KeyRight:     "right",
	KeyHome:      "home",
	KeyEnd:       "end",
	KeyEnter:     "enter",
	KeySpace:     "space",
	KeyEscape:    "esc",
	KeyTab:       "tab",
	KeyBackTab:   "shift+tab",
	KeyBackspace: "backspace",
	KeyRune:      "rune",

	KeyDeleteWord:   "delete-word",
	KeyClearLine:    "clear-line",
	KeyLineStart:    "line-start",
	KeyLineEnd:      "line-end",
	KeyWordBackward: "word-backward",
	KeyWordForward:  "word-forward",
}

func (k Key) String() string {
	if name, ok := keyNames[k]; ok {
		return name
	}
	return "unknown"
}

// Event is one key press.
type Event struct {
	Key  Key
	Rune rune
	At   time.Time
}

// Rune builds a printable-character event.
func Rune(r rune, at time.Time) Event {
	return Event{Key: KeyRune, Rune: r, At: at}
}

// Press builds a named-key event.
func Press(k Key) Event {
	return Event{Key: k}
}

// Direction is the writing direction used to interpret horizontal arrows.
type Direction int

const (
	LTR Direction = iota
	RTL
)

// Forward returns the horizontal arrow that moves "into" content.
func (d Direction) Forward() Key {
	if d == RTL {
		return KeyLeft
	}
	return KeyRight
}

// Backward returns the horizontal arrow that moves "out of" content.
func (d Direction) Backward() Key {
	if d == RTL {
		return KeyRight
	}
	return KeyLeft
}

func (d Direction) String() string {
	if d == RTL {
		return "rtl"
	}
	return "ltr"
}
