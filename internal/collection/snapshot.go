package collection

// Accessor returns an ordered snapshot of the items in a collection.
// Order is visual order.
type Accessor interface {
	Items() []Item
}

// Static is an Accessor over a fixed slice.
type Static []Item

func (s Static) Items() []Item { return s }

// Func adapts a function to the Accessor interface.
type Func func() []Item

func (f Func) Items() []Item {
	if f == nil {
		return nil
	}
	return f()
}

// Snapshot caches the result of an Accessor until invalidated. Widgets
// invalidate on open/close and on filter changes, then query again.
type Snapshot struct {
	source  Accessor
	items   []Item
	valid   bool
	version uint64
}

// NewSnapshot wraps source with a lazily populated cache.
func NewSnapshot(source Accessor) *Snapshot {
	return &Snapshot{source: source}
}

// Items returns the cached items, querying the source when needed.
func (s *Snapshot) Items() []Item {
	if s == nil || s.source == nil {
		return nil
	}
	if !s.valid {
		s.items = Clone(s.source.Items())
		s.valid = true
	}
	return s.items
}

// Invalidate drops the cache so the next Items call re-queries the source.
func (s *Snapshot) Invalidate() {
	if s == nil {
		return
	}
	s.items = nil
	s.valid = false
	s.version++
}

// Version increments on every invalidation.
func (s *Snapshot) Version() uint64 {
	if s == nil {
		return 0
	}
	return s.version
}

// SetSource swaps the underlying accessor and invalidates the cache.
func (s *Snapshot) SetSource(source Accessor) {
	s.source = source
	s.Invalidate()
}
