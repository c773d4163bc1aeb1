package menu

import (
	"testing"

	"github.com/atomicstack/composite-widgets/internal/collection"
)

func TestParentKey(t *testing.T) {
	cases := []struct {
		id, parent, key string
	}{
		{"", "root", ""},
		{"file", "root", "file"},
		{"file:open", "file", "open"},
		{"view:zoom:in", "view:zoom", "in"},
	}
	for _, tc := range cases {
		parent, key := parentKey(tc.id)
		if parent != tc.parent || key != tc.key {
			t.Fatalf("parentKey(%q) = %q, %q; want %q, %q", tc.id, parent, key, tc.parent, tc.key)
		}
	}
}

func TestBuildRegistryLinksChildren(t *testing.T) {
	reg := BuildRegistry()
	if reg.Root() == nil || !reg.Root().Submenu() {
		t.Fatalf("expected root submenu node")
	}
	node, ok := reg.Child("file", "open")
	if !ok {
		t.Fatalf("expected file:open under file")
	}
	if node.Loader == nil || node.Action == nil {
		t.Fatalf("file:open should both list and act, got %+v", node)
	}
	if _, ok := reg.Child("root", "about"); !ok {
		t.Fatalf("expected about under root")
	}
	if _, ok := reg.Find("missing"); ok {
		t.Fatalf("unexpected node for missing id")
	}
}

func TestCollectionsMarkTriggers(t *testing.T) {
	ctx := DefaultContext()
	reg := BuildRegistry()
	cols := reg.Collections(func() Context { return ctx })

	root, ok := cols.Find("root")
	if !ok {
		t.Fatalf("root collection not registered")
	}
	items := root.Items()
	if len(items) != 4 {
		t.Fatalf("expected 4 root items, got %d", len(items))
	}
	if !items[0].IsSubmenuTrigger() || items[0].Child != "file" {
		t.Fatalf("file should open its submenu, got %+v", items[0])
	}
	if items[3].IsSubmenuTrigger() {
		t.Fatalf("about should be a leaf, got %+v", items[3])
	}
	if _, ok := cols.Find("file:save"); ok {
		t.Fatalf("leaf nodes must not register collections")
	}
}

func TestCollectionsReloadFromContext(t *testing.T) {
	ctx := DefaultContext()
	reg := BuildRegistry()
	cols := reg.Collections(func() Context { return ctx })

	file, _ := cols.Find("file")
	save := file.Items()[2]
	if save.ID != "file:save" || !save.Disabled {
		t.Fatalf("save should start disabled, got %+v", save)
	}

	ctx.Modified = true
	if file.Items()[2].Disabled != true {
		t.Fatalf("snapshot should hold until invalidated")
	}
	file.Invalidate()
	if file.Items()[2].Disabled {
		t.Fatalf("save should be enabled after reload")
	}
}

func TestResolvePrefersItemNode(t *testing.T) {
	reg := BuildRegistry()

	node, arg, ok := reg.Resolve("file", collection.Item{ID: "file:new", Text: "New"})
	if !ok || node.ID != "file:new" || arg.Label != "New" {
		t.Fatalf("unexpected resolution %v %+v %v", node, arg, ok)
	}

	node, arg, ok = reg.Resolve("view:zoom", collection.Item{ID: "in", Text: "In"})
	if !ok || node.ID != "view:zoom" || arg.ID != "in" {
		t.Fatalf("zoom entries should resolve to the submenu handler, got %v %+v", node, arg)
	}

	if _, _, ok := reg.Resolve("edit", collection.Item{ID: "edit:redo"}); ok {
		t.Fatalf("redo has no handler")
	}
}

func TestPrettyLabel(t *testing.T) {
	if got := prettyLabel("save-as"); got != "Save As" {
		t.Fatalf("unexpected label %q", got)
	}
	if got := prettyLabel(""); got != "" {
		t.Fatalf("unexpected label %q", got)
	}
}
