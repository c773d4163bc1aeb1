package collection

import "sort"

// Link associates a parent item with the child collection it opens. It is a
// plain value; neither side owns the other.
type Link struct {
	ParentItem string
	Child      string
	Open       bool
}

// Registry stores collections keyed by stable id.
type Registry struct {
	collections map[string]*Snapshot
	links       map[string]Link
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		collections: make(map[string]*Snapshot),
		links:       make(map[string]Link),
	}
}

// Register adds or replaces the collection stored under id.
func (r *Registry) Register(id string, source Accessor) *Snapshot {
	snap := NewSnapshot(source)
	r.collections[id] = snap
	return snap
}

// Find locates a collection by id.
func (r *Registry) Find(id string) (*Snapshot, bool) {
	snap, ok := r.collections[id]
	return snap, ok
}

// Remove drops a collection and any links that reference it.
func (r *Registry) Remove(id string) {
	delete(r.collections, id)
	for key, link := range r.links {
		if link.Child == id {
			delete(r.links, key)
		}
	}
}

// SetLink records the association for a parent item, keyed by child id.
func (r *Registry) SetLink(link Link) {
	r.links[link.Child] = link
}

// LinkFor returns the link whose child collection is child.
func (r *Registry) LinkFor(child string) (Link, bool) {
	link, ok := r.links[child]
	return link, ok
}

// OpenLinks returns currently open links ordered by child id.
func (r *Registry) OpenLinks() []Link {
	open := make([]Link, 0, len(r.links))
	for _, link := range r.links {
		if link.Open {
			open = append(open, link)
		}
	}
	sort.Slice(open, func(i, j int) bool { return open[i].Child < open[j].Child })
	return open
}

// IDs returns the registered collection ids in sorted order.
func (r *Registry) IDs() []string {
	ids := make([]string, 0, len(r.collections))
	for id := range r.collections {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
