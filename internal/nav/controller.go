package nav

import (
	"github.com/atomicstack/composite-widgets/internal/collection"
	"github.com/atomicstack/composite-widgets/internal/logging/events"
)

// ScrollFunc is invoked with the item that became active so the rendering
// layer can bring it into view.
type ScrollFunc func(item collection.Item, index int)

// Active is a weak reference to the active item: its position and identity
// at the time it was set. It is re-validated before use.
type Active struct {
	Index int
	ID    string
}

// Controller owns the active descendant of one collection.
type Controller struct {
	id     string
	source collection.Accessor
	filter Filter
	scroll ScrollFunc

	active *Active
}

// Option configures a Controller.
type Option func(*Controller)

// WithFilter overrides the availability filter.
func WithFilter(filter Filter) Option {
	return func(c *Controller) { c.filter = filter }
}

// WithScroll registers the scroll-into-view collaborator.
func WithScroll(fn ScrollFunc) Option {
	return func(c *Controller) { c.scroll = fn }
}

// NewController constructs a controller over source.
func NewController(id string, source collection.Accessor, opts ...Option) *Controller {
	c := &Controller{id: id, source: source, filter: Available}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ID returns the collection id the controller navigates.
func (c *Controller) ID() string { return c.id }

// Items returns the current collection snapshot.
func (c *Controller) Items() []collection.Item {
	if c.source == nil {
		return nil
	}
	return c.source.Items()
}

// Source exposes the accessor backing the controller.
func (c *Controller) Source() collection.Accessor { return c.source }

// Index returns the index of the active item, or -1. A reference whose slot
// no longer holds the same available item is dropped.
func (c *Controller) Index() int {
	if c.active == nil {
		return -1
	}
	items := c.Items()
	idx := c.active.Index
	if idx >= 0 && idx < len(items) && items[idx].ID == c.active.ID && c.filter(items[idx]) {
		return idx
	}
	// Stale after a mutation: treated as none, never dereferenced.
	events.Nav.Stale(c.id, c.active.ID)
	c.active = nil
	return -1
}

// Active returns the active item.
func (c *Controller) Active() (collection.Item, bool) {
	idx := c.Index()
	if idx < 0 {
		return collection.Item{}, false
	}
	return c.Items()[idx], true
}

// ActiveID returns the id of the active item or "".
func (c *Controller) ActiveID() string {
	if item, ok := c.Active(); ok {
		return item.ID
	}
	return ""
}

// MoveNext activates the next available item, wrapping. With no active item
// it starts from the initial item instead.
func (c *Controller) MoveNext() (collection.Item, bool) {
	cur := c.Index()
	if cur < 0 {
		return c.apply("initial", cur, FindInitial(c.Items(), Forward, c.filter))
	}
	return c.apply("next", cur, FindAvailable(c.Items(), cur+1, Forward, c.filter))
}

// MovePrev activates the previous available item, wrapping.
func (c *Controller) MovePrev() (collection.Item, bool) {
	cur := c.Index()
	if cur < 0 {
		return c.apply("initial", cur, FindInitial(c.Items(), Backward, c.filter))
	}
	return c.apply("prev", cur, FindAvailable(c.Items(), cur-1, Backward, c.filter))
}

// MoveFirst activates the first available item.
func (c *Controller) MoveFirst() (collection.Item, bool) {
	return c.apply("first", c.Index(), FindAvailable(c.Items(), 0, Forward, c.filter))
}

// MoveLast activates the last available item.
func (c *Controller) MoveLast() (collection.Item, bool) {
	items := c.Items()
	return c.apply("last", c.Index(), FindAvailable(items, len(items)-1, Backward, c.filter))
}

// MoveInitial activates the initial item for direction dir, ignoring the
// current active item.
func (c *Controller) MoveInitial(dir Direction) (collection.Item, bool) {
	return c.apply("initial", c.Index(), FindInitial(c.Items(), dir, c.filter))
}

// SetActive assigns the active item by id. An empty id, or one that is not
// present and available, clears it.
func (c *Controller) SetActive(id string) bool {
	items := c.Items()
	idx := collection.IndexOf(items, id)
	if idx < 0 || !c.filter(items[idx]) {
		c.Clear()
		return false
	}
	events.Nav.Set(c.id, id)
	c.activate(items, idx)
	return true
}

// SetActiveIndex assigns the active item by position.
func (c *Controller) SetActiveIndex(idx int) bool {
	items := c.Items()
	if idx < 0 || idx >= len(items) || !c.filter(items[idx]) {
		c.Clear()
		return false
	}
	events.Nav.Set(c.id, items[idx].ID)
	c.activate(items, idx)
	return true
}

// Clear drops the active item.
func (c *Controller) Clear() {
	c.active = nil
}

func (c *Controller) apply(op string, from, to int) (collection.Item, bool) {
	events.Nav.Move(c.id, op, from, to)
	if to < 0 {
		c.active = nil
		return collection.Item{}, false
	}
	items := c.Items()
	c.activate(items, to)
	return items[to], true
}

func (c *Controller) activate(items []collection.Item, idx int) {
	c.active = &Active{Index: idx, ID: items[idx].ID}
	if c.scroll != nil {
		c.scroll(items[idx], idx)
	}
}
