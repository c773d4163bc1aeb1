package widget

import (
	"testing"

	"github.com/atomicstack/composite-widgets/internal/collection"
	"github.com/atomicstack/composite-widgets/internal/input"
	"github.com/stretchr/testify/require"
)

func newCombobox(t *testing.T, te *testEnv) *Combobox {
	t.Helper()
	c, err := NewCombobox(ComboboxConfig{
		Options: options(collection.KindOption, "Apple", "Apricot", "Banana", "Blueberry", "Cherry"),
	}, te.Env)
	require.NoError(t, err)
	return c
}

func itemIDs(items []collection.Item) []string {
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = item.ID
	}
	return out
}

func TestComboboxFiltersAndTracksBestMatch(t *testing.T) {
	te := newTestEnv(t)
	c := newCombobox(t, te)

	typeRune(c, 'b', te.sched.Now())
	require.True(t, c.Expanded())
	require.Equal(t, []string{"banana", "blueberry"}, itemIDs(c.Options()))
	require.Equal(t, "banana", c.Active())

	typeRune(c, 'l', te.sched.Now())
	require.Equal(t, []string{"blueberry"}, itemIDs(c.Options()))
	require.Equal(t, "blueberry", c.Active())

	press(c, input.KeyBackspace)
	require.Equal(t, "b", c.Query())
	require.Equal(t, "banana", c.Active())

	out := press(c, input.KeyEnter)
	require.True(t, out.Changed)
	require.True(t, out.Closed)
	require.Equal(t, "Banana", c.Query())
	require.Equal(t, "banana", c.Group().Value().String())
	require.Equal(t, len("Banana"), c.View().Caret)
}

func TestComboboxDropsStaleActiveOption(t *testing.T) {
	te := newTestEnv(t)
	c := newCombobox(t, te)

	typeRune(c, 'c', te.sched.Now())
	require.Equal(t, []string{"apricot", "cherry"}, itemIDs(c.Options()))
	require.Equal(t, "cherry", c.Active())

	press(c, input.KeyBackspace)
	require.Len(t, c.Options(), 5)
	require.Empty(t, c.Active(), "the old slot now holds a different option")

	press(c, input.KeyDown)
	require.Equal(t, "apple", c.Active())
}

func TestComboboxNoMatch(t *testing.T) {
	te := newTestEnv(t)
	c := newCombobox(t, te)
	for _, r := range "zzz" {
		typeRune(c, r, te.sched.Now())
	}
	require.Empty(t, c.Options())
	require.Empty(t, c.Active())
	_, ok := c.Suggestion()
	require.False(t, ok)

	out := press(c, input.KeyEnter)
	require.True(t, out.Closed)
	require.False(t, out.Changed)
}

func TestComboboxEscapeCollapsesThenClears(t *testing.T) {
	te := newTestEnv(t)
	c := newCombobox(t, te)
	typeRune(c, 'a', te.sched.Now())

	out := press(c, input.KeyEscape)
	require.True(t, out.Closed)
	require.False(t, c.Expanded())
	require.Equal(t, "a", c.Query())

	out = press(c, input.KeyEscape)
	require.True(t, out.Handled)
	require.Empty(t, c.Query())

	out = press(c, input.KeyEscape)
	require.False(t, out.Handled)
}

func TestComboboxLineEditing(t *testing.T) {
	te := newTestEnv(t)
	c := newCombobox(t, te)
	for _, r := range "blue" {
		typeRune(c, r, te.sched.Now())
	}
	press(c, input.KeySpace)
	for _, r := range "berry" {
		typeRune(c, r, te.sched.Now())
	}
	require.Equal(t, "blue berry", c.Query())

	press(c, input.KeyDeleteWord)
	require.Equal(t, "blue ", c.Query())

	press(c, input.KeyLineStart)
	require.Equal(t, 0, c.View().Caret)
	require.False(t, press(c, input.KeyLeft).Handled)
	press(c, input.KeyWordForward)
	require.Equal(t, 5, c.View().Caret)

	press(c, input.KeyClearLine)
	require.Empty(t, c.Query())
	require.Len(t, c.Options(), 5)
}

func TestComboboxPointerCommit(t *testing.T) {
	te := newTestEnv(t)
	c := newCombobox(t, te)
	require.False(t, c.HandlePointer(Pointer{Level: c.ID(), Item: "apple", Press: true}).Handled)

	press(c, input.KeyDown)
	out := c.HandlePointer(Pointer{Level: c.ID(), Item: "cherry", Press: true})
	require.True(t, out.Changed)
	require.Equal(t, "Cherry", c.Query())
}

func TestComboboxSuggestsCloseOption(t *testing.T) {
	te := newTestEnv(t)
	c := newCombobox(t, te)
	_, ok := c.Suggestion()
	require.False(t, ok)
	for _, r := range "bananx" {
		typeRune(c, r, te.sched.Now())
	}
	require.Empty(t, c.Options())
	got, ok := c.Suggestion()
	require.True(t, ok)
	require.Equal(t, "banana", got.ID)
}
