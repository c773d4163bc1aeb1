package collection

// Kind tags the role an item plays inside a composite widget.
type Kind int

const (
	KindMenu Kind = iota
	KindSubmenu
	KindCheckGroupMember
	KindRadioGroupMember
	KindTabGroupMember
	KindOption
)

func (k Kind) String() string {
	switch k {
	case KindMenu:
		return "menu"
	case KindSubmenu:
		return "submenu"
	case KindCheckGroupMember:
		return "check"
	case KindRadioGroupMember:
		return "radio"
	case KindTabGroupMember:
		return "tab"
	case KindOption:
		return "option"
	default:
		return "unknown"
	}
}

// Item is a non-owning view of a rendered node. The rendering layer owns the
// node; an Item is only valid for the interaction cycle that produced it.
type Item struct {
	ID       string
	Kind     Kind
	Text     string
	Disabled bool
	Hidden   bool
	Selected bool
	// Child names the collection a KindSubmenu item opens.
	Child string
}

// Available reports whether the item may become active or selected.
// Hidden and disabled each exclude an item on their own.
func (i Item) Available() bool {
	return !i.Disabled && !i.Hidden
}

// IsSubmenuTrigger reports whether activating the item opens a child collection.
func (i Item) IsSubmenuTrigger() bool {
	return i.Kind == KindSubmenu && i.Child != ""
}

// State is the declarative per-item output handed to the rendering layer.
type State struct {
	Active         bool
	Selected       bool
	Indeterminate  bool
	Disabled       bool
	FocusedVisible bool
	TabStop        bool
}

// Clone produces a shallow copy of the provided items.
func Clone(items []Item) []Item {
	dup := make([]Item, len(items))
	copy(dup, items)
	return dup
}

// IndexOf returns the index for a given item identifier, or -1.
func IndexOf(items []Item, id string) int {
	if id == "" {
		return -1
	}
	for i, item := range items {
		if item.ID == id {
			return i
		}
	}
	return -1
}
