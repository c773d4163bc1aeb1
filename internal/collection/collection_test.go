package collection

import "testing"

func TestSnapshotCachesUntilInvalidated(t *testing.T) {
	calls := 0
	items := []Item{{ID: "a", Text: "A"}}
	snap := NewSnapshot(Func(func() []Item {
		calls++
		return items
	}))

	snap.Items()
	snap.Items()
	if calls != 1 {
		t.Fatalf("expected one query, got %d", calls)
	}

	items = append(items, Item{ID: "b", Text: "B"})
	if got := len(snap.Items()); got != 1 {
		t.Fatalf("cached snapshot should still hold 1 item, got %d", got)
	}
	snap.Invalidate()
	if got := len(snap.Items()); got != 2 {
		t.Fatalf("expected 2 items after invalidate, got %d", got)
	}
	if calls != 2 || snap.Version() != 1 {
		t.Fatalf("unexpected calls=%d version=%d", calls, snap.Version())
	}
}

func TestSnapshotCopiesSourceItems(t *testing.T) {
	source := Static{{ID: "a", Text: "A"}}
	snap := NewSnapshot(source)
	snap.Items()[0].Text = "changed"
	if source[0].Text != "A" {
		t.Fatalf("snapshot must not alias the source slice")
	}
}

func TestNilSnapshotIsEmpty(t *testing.T) {
	var snap *Snapshot
	if snap.Items() != nil || snap.Version() != 0 {
		t.Fatalf("nil snapshot should be empty")
	}
	snap.Invalidate()
}

func TestRegistryLinks(t *testing.T) {
	reg := NewRegistry()
	reg.Register("root", Static{{ID: "file", Kind: KindSubmenu, Child: "file"}})
	reg.Register("file", Static{{ID: "new"}})

	if ids := reg.IDs(); len(ids) != 2 || ids[0] != "file" || ids[1] != "root" {
		t.Fatalf("unexpected ids %v", ids)
	}

	reg.SetLink(Link{ParentItem: "file", Child: "file", Open: true})
	open := reg.OpenLinks()
	if len(open) != 1 || open[0].ParentItem != "file" {
		t.Fatalf("expected one open link, got %v", open)
	}

	reg.SetLink(Link{ParentItem: "file", Child: "file"})
	if len(reg.OpenLinks()) != 0 {
		t.Fatalf("closed link should not be listed as open")
	}
	if _, ok := reg.LinkFor("file"); !ok {
		t.Fatalf("closed link should still be recorded")
	}

	reg.Remove("file")
	if _, ok := reg.Find("file"); ok {
		t.Fatalf("removed collection still registered")
	}
	if _, ok := reg.LinkFor("file"); ok {
		t.Fatalf("links to a removed collection should be dropped")
	}
}

func TestIndexOf(t *testing.T) {
	items := []Item{{ID: "a"}, {ID: "b"}}
	if IndexOf(items, "b") != 1 || IndexOf(items, "z") != -1 {
		t.Fatalf("unexpected IndexOf results")
	}
}
