package menu

import (
	"fmt"
	"strings"

	"github.com/atomicstack/composite-widgets/internal/collection"
	"github.com/atomicstack/composite-widgets/internal/logging"
)

// Node represents a menu entry definition within the registry tree.
type Node struct {
	ID       string
	Loader   Loader
	Action   Action
	Children map[string]*Node
}

// Submenu reports whether the node lists entries of its own.
func (n *Node) Submenu() bool {
	return n != nil && n.Loader != nil
}

// Registry exposes lookup utilities for menu definitions.
type Registry struct {
	root  *Node
	nodes map[string]*Node
}

// BuildRegistry constructs the registry from the loader/handler maps.
func BuildRegistry() *Registry {
	nodes := make(map[string]*Node)

	ensure := func(id string) *Node {
		if node, ok := nodes[id]; ok {
			return node
		}
		node := &Node{ID: id, Children: make(map[string]*Node)}
		nodes[id] = node
		return node
	}

	root := ensure("root")
	root.Loader = func(Context) ([]Item, error) { return RootItems(), nil }

	for id, loader := range CategoryLoaders() {
		node := ensure(id)
		node.Loader = loader
	}

	for id, action := range ActionHandlers() {
		node := ensure(id)
		node.Action = action
	}

	for id, node := range nodes {
		if id == "root" {
			continue
		}
		parentID, key := parentKey(id)
		parent := ensure(parentID)
		parent.Children[key] = node
	}

	return &Registry{root: root, nodes: nodes}
}

// Root returns the registry root node.
func (r *Registry) Root() *Node {
	return r.root
}

// Find locates a node by ID.
func (r *Registry) Find(id string) (*Node, bool) {
	node, ok := r.nodes[id]
	return node, ok
}

// Child resolves a child node under the given parent for the provided key.
func (r *Registry) Child(parentID, key string) (*Node, bool) {
	parent, ok := r.nodes[parentID]
	if !ok {
		return nil, false
	}
	node, ok := parent.Children[key]
	return node, ok
}

// Collections registers one collection per submenu node. Items are loaded
// lazily from the current context each time a snapshot is invalidated.
func (r *Registry) Collections(current func() Context) *collection.Registry {
	reg := collection.NewRegistry()
	for id, node := range r.nodes {
		if !node.Submenu() {
			continue
		}
		node := node
		reg.Register(id, collection.Func(func() []collection.Item {
			items, err := node.Loader(current())
			if err != nil {
				logging.Error(fmt.Errorf("menu %s: %w", node.ID, err))
				return nil
			}
			return r.toCollection(items)
		}))
	}
	return reg
}

func (r *Registry) toCollection(items []Item) []collection.Item {
	out := make([]collection.Item, 0, len(items))
	for _, item := range items {
		entry := collection.Item{
			ID:       item.ID,
			Kind:     collection.KindMenu,
			Text:     item.Label,
			Disabled: item.Disabled,
			Hidden:   item.Hidden,
		}
		if node, ok := r.nodes[item.ID]; ok && node.Submenu() {
			entry.Kind = collection.KindSubmenu
			entry.Child = node.ID
		}
		out = append(out, entry)
	}
	return out
}

// Resolve finds the action for an item committed from collection level.
// The item's own node wins; otherwise the handler of the level runs with
// the item as its argument.
func (r *Registry) Resolve(level string, item collection.Item) (*Node, Item, bool) {
	arg := Item{ID: item.ID, Label: item.Text, Disabled: item.Disabled, Hidden: item.Hidden}
	if node, ok := r.nodes[item.ID]; ok && node.Action != nil {
		return node, arg, true
	}
	if node, ok := r.nodes[level]; ok && node.Action != nil {
		return node, arg, true
	}
	return nil, arg, false
}

func parentKey(id string) (string, string) {
	if id == "" {
		return "root", ""
	}
	if !strings.Contains(id, ":") {
		return "root", id
	}
	idx := strings.LastIndex(id, ":")
	return id[:idx], id[idx+1:]
}
