// Package focus classifies focus events as keyboard or pointer originated.
package focus

import "github.com/atomicstack/composite-widgets/internal/logging/events"

// Heuristic reports whether the most recent interaction came from the
// keyboard. It is supplied by the platform layer.
type Heuristic interface {
	KeyboardModality() bool
}

// Modality tracks the last input modality from raw key and pointer events.
// It is the default Heuristic.
type Modality struct {
	keyboard bool
}

// NewModality starts in keyboard modality, matching a freshly opened
// terminal where nothing has been clicked yet.
func NewModality() *Modality {
	return &Modality{keyboard: true}
}

// NoteKey records a key press. Modifier-only presses do not count.
func (m *Modality) NoteKey(modifierOnly bool) {
	if !modifierOnly {
		m.keyboard = true
	}
}

// NotePointer records a pointer press.
func (m *Modality) NotePointer() {
	m.keyboard = false
}

func (m *Modality) KeyboardModality() bool { return m.keyboard }

type entry struct {
	focused bool
	visible bool
	initial bool
}

// Detector holds the focus-visible flag of each item. The flag is decided
// once when the item gains focus and holds until it blurs.
type Detector struct {
	heuristic Heuristic
	items     map[string]*entry
}

// NewDetector returns a detector using h.
func NewDetector(h Heuristic) *Detector {
	if h == nil {
		h = NewModality()
	}
	return &Detector{heuristic: h, items: make(map[string]*entry)}
}

// Focus classifies the focus of id. A repeated Focus without an intervening
// Blur keeps the original classification.
func (d *Detector) Focus(id string) bool {
	e := d.entry(id)
	if e.focused {
		return e.visible
	}
	e.initial = e.visible
	e.focused = true
	e.visible = d.heuristic.KeyboardModality()
	events.Focus.Classify(id, e.visible)
	return e.visible
}

// Blur restores the value id had before it was focused.
func (d *Detector) Blur(id string) {
	e, ok := d.items[id]
	if !ok || !e.focused {
		return
	}
	e.focused = false
	e.visible = e.initial
	events.Focus.Blur(id)
}

// Visible reports whether id currently shows a focus indicator.
func (d *Detector) Visible(id string) bool {
	e, ok := d.items[id]
	return ok && e.visible
}

// Focused reports whether id holds focus.
func (d *Detector) Focused(id string) bool {
	e, ok := d.items[id]
	return ok && e.focused
}

// Forget drops the state of id, for items that were unmounted.
func (d *Detector) Forget(id string) {
	delete(d.items, id)
}

func (d *Detector) entry(id string) *entry {
	e, ok := d.items[id]
	if !ok {
		e = &entry{}
		d.items[id] = e
	}
	return e
}
