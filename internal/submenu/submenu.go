// Package submenu coordinates keyboard authority between a menu and its
// nested submenus. Each collection gets its own Machine; machines for child
// collections are created on first use and kept in an arena keyed by the
// child collection id. The parent and child are tied together only by a
// collection.Link value.
package submenu

import (
	"fmt"
	"time"

	"github.com/atomicstack/composite-widgets/internal/collection"
	"github.com/atomicstack/composite-widgets/internal/input"
	"github.com/atomicstack/composite-widgets/internal/logging/events"
	"github.com/atomicstack/composite-widgets/internal/nav"
	"github.com/atomicstack/composite-widgets/internal/timer"
	"github.com/atomicstack/composite-widgets/internal/typeahead"
)

// State is the activation state of a machine with respect to its child.
type State int

const (
	// Closed: no child is open; this collection receives input.
	Closed State = iota
	// OpenParentActive: a child is open but this collection receives input.
	OpenParentActive
	// OpenChildActive: the open child receives input.
	OpenChildActive
)

func (s State) String() string {
	switch s {
	case OpenParentActive:
		return "open-parent-active"
	case OpenChildActive:
		return "open-child-active"
	default:
		return "closed"
	}
}

// Positioner places a floating collection near its anchor item. Only the
// request is made here; placement is the positioner's business.
type Positioner interface {
	OpenNear(anchorItem, floating string)
}

type noopPositioner struct{}

func (noopPositioner) OpenNear(string, string) {}

// Options are shared by every machine in one menu tree.
type Options struct {
	Direction       input.Direction
	Positioner      Positioner
	Scheduler       timer.Scheduler
	TypeaheadWindow time.Duration
}

// Result describes how a key press was handled.
type Result struct {
	Handled bool
	// Commit is set when Enter or Space chose an item that opens nothing.
	Commit *collection.Item
	// Level is the collection that produced Commit.
	Level string
}

// Machine is the state machine for one collection in a menu tree.
type Machine struct {
	id       string
	registry *collection.Registry
	snapshot *collection.Snapshot
	opts     Options

	ctl      *nav.Controller
	matcher  *typeahead.Matcher
	children map[string]*Machine

	state State
	link  collection.Link
}

// New builds the machine for the collection registered under id.
func New(id string, registry *collection.Registry, opts Options) (*Machine, error) {
	if registry == nil {
		return nil, fmt.Errorf("submenu %s: nil registry", id)
	}
	snap, ok := registry.Find(id)
	if !ok {
		return nil, fmt.Errorf("submenu %s: collection not registered", id)
	}
	if opts.Positioner == nil {
		opts.Positioner = noopPositioner{}
	}
	return &Machine{
		id:       id,
		registry: registry,
		snapshot: snap,
		opts:     opts,
		ctl:      nav.NewController(id, snap),
		matcher:  typeahead.New(opts.TypeaheadWindow, opts.Scheduler),
		children: make(map[string]*Machine),
	}, nil
}

// ID returns the collection id.
func (m *Machine) ID() string { return m.id }

// State returns the current state.
func (m *Machine) State() State { return m.state }

// Controller exposes the active-descendant controller of this collection.
func (m *Machine) Controller() *nav.Controller { return m.ctl }

// Link returns the association with the open child, if any.
func (m *Machine) Link() (collection.Link, bool) {
	if m.state == Closed {
		return collection.Link{}, false
	}
	return m.link, true
}

// Child returns the machine of the open child, or nil.
func (m *Machine) Child() *Machine {
	if m.state == Closed {
		return nil
	}
	return m.children[m.link.Child]
}

// Receiver returns the machine currently receiving keyboard input.
func (m *Machine) Receiver() *Machine {
	cur := m
	for cur.state == OpenChildActive {
		child := cur.Child()
		if child == nil {
			break
		}
		cur = child
	}
	return cur
}

// Path returns the open chain from m down to the deepest open child.
func (m *Machine) Path() []*Machine {
	path := []*Machine{m}
	for cur := m; cur.Child() != nil; cur = cur.Child() {
		path = append(path, cur.Child())
	}
	return path
}

// Open activates the collection: the Snapshot is refreshed first, then the
// initial item is chosen.
func (m *Machine) Open() {
	m.snapshot.Invalidate()
	m.ctl.MoveInitial(nav.Forward)
}

// HandleKey routes ev to the collection that receives input. Keys the
// open child does not handle bubble back to this machine.
func (m *Machine) HandleKey(ev input.Event) Result {
	if m.state == OpenChildActive {
		if child := m.Child(); child != nil {
			if res := child.HandleKey(ev); res.Handled {
				return res
			}
			switch ev.Key {
			case m.opts.Direction.Backward():
				m.returnToParent("backward")
				return Result{Handled: true}
			case input.KeyEscape:
				m.closeChild("escape")
				return Result{Handled: true}
			}
			return Result{}
		}
		m.setState(Closed, "missing-child")
	}
	return m.handleOwn(ev)
}

func (m *Machine) handleOwn(ev input.Event) Result {
	switch ev.Key {
	case input.KeyDown:
		m.ctl.MoveNext()
	case input.KeyUp:
		m.ctl.MovePrev()
	case input.KeyHome:
		m.ctl.MoveFirst()
	case input.KeyEnd:
		m.ctl.MoveLast()
	case input.KeyEnter, input.KeySpace:
		item, ok := m.ctl.Active()
		if !ok {
			return Result{Handled: true}
		}
		if item.IsSubmenuTrigger() {
			return Result{Handled: m.openChild(item, true, ev.Key.String())}
		}
		return Result{Handled: true, Commit: &item, Level: m.id}
	case m.opts.Direction.Forward():
		item, ok := m.ctl.Active()
		if !ok || !item.IsSubmenuTrigger() {
			return Result{}
		}
		return Result{Handled: m.openChild(item, true, ev.Key.String())}
	case input.KeyEscape:
		if m.state == OpenParentActive {
			m.closeChild("escape")
			return Result{Handled: true}
		}
		return Result{}
	case input.KeyRune:
		if !typeahead.Printable(ev.Rune) {
			return Result{}
		}
		m.matcher.Input(m.ctl, ev.Rune, ev.At)
	default:
		return Result{}
	}
	m.closeIfMovedOff()
	return Result{Handled: true}
}

// Hover applies pointer movement onto item itemID of collection level. All
// ancestors of level hand input down to it; the hovered item becomes
// active, and hovering a trigger opens its child without moving input.
func (m *Machine) Hover(level, itemID string) bool {
	path := m.Path()
	target := -1
	for i, machine := range path {
		if machine.id == level {
			target = i
			break
		}
	}
	if target < 0 {
		return false
	}
	for _, ancestor := range path[:target] {
		ancestor.ctl.SetActive(ancestor.link.ParentItem)
		ancestor.setState(OpenChildActive, "hover")
	}
	return path[target].hoverOwn(itemID)
}

func (m *Machine) hoverOwn(itemID string) bool {
	items := m.ctl.Items()
	idx := collection.IndexOf(items, itemID)
	if idx < 0 || !items[idx].Available() {
		return false
	}
	item := items[idx]
	if m.state != Closed {
		if m.link.ParentItem == item.ID {
			if m.state == OpenChildActive {
				m.returnToParent("hover")
			}
			m.ctl.SetActiveIndex(idx)
			return true
		}
		m.closeChild("hover")
	}
	m.ctl.SetActiveIndex(idx)
	if item.IsSubmenuTrigger() {
		m.openChild(item, false, "hover")
	}
	return true
}

// Outside closes every open child after pointer or focus left the tree.
func (m *Machine) Outside() {
	if m.state != Closed {
		m.closeChild("outside")
	}
	m.matcher.Reset()
}

// Expire routes a fired typeahead timer to whichever level owns it.
func (m *Machine) Expire(id timer.ID) bool {
	if m.matcher.Expire(id) {
		return true
	}
	for _, child := range m.children {
		if child.Expire(id) {
			return true
		}
	}
	return false
}

// OpenChild opens the child of the trigger itemID. With activate the child
// receives input and its initial item becomes active.
func (m *Machine) OpenChild(itemID string, activate bool) bool {
	items := m.ctl.Items()
	idx := collection.IndexOf(items, itemID)
	if idx < 0 || !items[idx].Available() || !items[idx].IsSubmenuTrigger() {
		return false
	}
	m.ctl.SetActiveIndex(idx)
	return m.openChild(items[idx], activate, "api")
}

func (m *Machine) openChild(trigger collection.Item, activate bool, reason string) bool {
	if m.state != Closed && m.link.ParentItem != trigger.ID {
		m.closeChild("superseded")
	}
	child, ok := m.child(trigger.Child)
	if !ok {
		return false
	}
	m.link = collection.Link{ParentItem: trigger.ID, Child: trigger.Child, Open: true}
	m.registry.SetLink(m.link)
	m.opts.Positioner.OpenNear(trigger.ID, trigger.Child)
	if !activate {
		child.deactivate()
		m.setState(OpenParentActive, reason)
		return true
	}
	// Apply the open state first, then let the child query its items.
	m.setState(OpenChildActive, reason)
	child.Open()
	return true
}

func (m *Machine) returnToParent(reason string) {
	if child := m.Child(); child != nil {
		child.deactivate()
	}
	m.setState(OpenParentActive, reason)
	m.ctl.SetActive(m.link.ParentItem)
}

func (m *Machine) closeChild(reason string) {
	if child := m.Child(); child != nil {
		child.deactivate()
	}
	m.dropChild()
	trigger := m.link.ParentItem
	m.link.Open = false
	m.registry.SetLink(m.link)
	m.setState(Closed, reason)
	if trigger != "" {
		m.ctl.SetActive(trigger)
	}
}

// deactivate stops the machine from taking input: its own children close,
// its active item is dropped and pending typeahead is cancelled.
func (m *Machine) deactivate() {
	if m.state != Closed {
		if child := m.Child(); child != nil {
			child.deactivate()
		}
		m.dropChild()
		m.link.Open = false
		m.registry.SetLink(m.link)
		m.setState(Closed, "parent")
	}
	m.ctl.Clear()
	m.matcher.Reset()
}

func (m *Machine) closeIfMovedOff() {
	if m.state == Closed {
		return
	}
	if m.ctl.ActiveID() != m.link.ParentItem {
		if child := m.Child(); child != nil {
			child.deactivate()
		}
		m.dropChild()
		m.link.Open = false
		m.registry.SetLink(m.link)
		m.setState(Closed, "moved")
	}
}

// dropChild forgets the machine of the linked child collection and empties
// the cached items of its snapshot. Reopening builds a fresh machine.
func (m *Machine) dropChild() {
	child, ok := m.children[m.link.Child]
	if !ok {
		return
	}
	child.snapshot.Invalidate()
	delete(m.children, m.link.Child)
}

func (m *Machine) child(id string) (*Machine, bool) {
	if child, ok := m.children[id]; ok {
		return child, true
	}
	child, err := New(id, m.registry, m.opts)
	if err != nil {
		return nil, false
	}
	m.children[id] = child
	return child, true
}

func (m *Machine) setState(next State, reason string) {
	if m.state == next {
		return
	}
	events.Submenu.Transition(m.id, m.state.String(), next.String(), reason)
	m.state = next
}
