package widget

import (
	"testing"

	"github.com/atomicstack/composite-widgets/internal/a11y"
	"github.com/atomicstack/composite-widgets/internal/collection"
	"github.com/atomicstack/composite-widgets/internal/input"
	"github.com/atomicstack/composite-widgets/internal/submenu"
	"github.com/atomicstack/composite-widgets/internal/typeahead"
	"github.com/stretchr/testify/require"
)

func menuRegistry() *collection.Registry {
	reg := collection.NewRegistry()
	reg.Register("root", collection.Static{
		{ID: "new", Kind: collection.KindMenu, Text: "New"},
		{ID: "open", Kind: collection.KindSubmenu, Text: "Open recent", Child: "recent"},
		{ID: "print", Kind: collection.KindMenu, Text: "Print", Disabled: true},
		{ID: "quit", Kind: collection.KindMenu, Text: "Quit"},
	})
	reg.Register("recent", collection.Static{
		{ID: "a", Kind: collection.KindMenu, Text: "a.txt"},
		{ID: "b", Kind: collection.KindMenu, Text: "b.txt"},
	})
	return reg
}

func newMenu(t *testing.T, te *testEnv) *Menu {
	t.Helper()
	m, err := NewMenu(MenuConfig{Title: "File", Root: "root", Registry: menuRegistry()}, te.Env)
	require.NoError(t, err)
	return m
}

func TestMenuKeyboardCommitClosesLevels(t *testing.T) {
	te := newTestEnv(t)
	m := newMenu(t, te)
	m.Focus()
	require.Equal(t, []string{"root/new"}, activeRows(m.View()))

	press(m, input.KeyDown)
	press(m, input.KeyRight)
	v := m.View()
	require.Len(t, v.Levels, 2)
	require.False(t, v.Levels[0].Receiving)
	require.True(t, v.Levels[1].Receiving)
	require.Equal(t, []string{"root/open", "recent/a"}, activeRows(v))

	out := press(m, input.KeyEnter)
	require.True(t, out.Handled)
	require.NotNil(t, out.Commit)
	require.Equal(t, "a", out.Commit.ID)
	require.Equal(t, "recent", out.Level)
	require.Equal(t, submenu.Closed, m.Root().State())
	require.Equal(t, "open", m.Root().Controller().ActiveID())
}

func TestMenuEscapeAtRootCloses(t *testing.T) {
	te := newTestEnv(t)
	m := newMenu(t, te)
	m.Focus()
	press(m, input.KeyDown)
	press(m, input.KeyRight)

	out := press(m, input.KeyEscape)
	require.True(t, out.Handled)
	require.False(t, out.Closed, "first escape only closes the submenu")
	require.Equal(t, submenu.Closed, m.Root().State())

	out = press(m, input.KeyEscape)
	require.True(t, out.Closed)
	require.Empty(t, activeRows(m.View()))

	out = press(m, input.KeyEscape)
	require.False(t, out.Handled, "a closed menu leaves escape to the host")
}

func TestMenuPointerHoverAndPress(t *testing.T) {
	te := newTestEnv(t)
	m := newMenu(t, te)
	m.Focus()

	out := m.HandlePointer(Pointer{Level: "root", Item: "open"})
	require.True(t, out.Handled)
	require.Equal(t, submenu.OpenParentActive, m.Root().State())
	v := m.View()
	require.True(t, v.Levels[0].Receiving)
	require.Equal(t, []string{"root/open"}, activeRows(v))

	out = m.HandlePointer(Pointer{Level: "recent", Item: "b", Press: true})
	require.NotNil(t, out.Commit)
	require.Equal(t, "b", out.Commit.ID)
	require.Equal(t, "recent", out.Level)

	out = m.HandlePointer(Pointer{Level: "root", Item: "print", Press: true})
	require.False(t, out.Handled, "disabled items ignore the pointer")
}

func TestMenuPressOnTriggerHandsInputToChild(t *testing.T) {
	te := newTestEnv(t)
	m := newMenu(t, te)
	m.Focus()

	m.HandlePointer(Pointer{Level: "root", Item: "open", Press: true})
	require.Equal(t, submenu.OpenChildActive, m.Root().State())
	require.Equal(t, "recent", m.Root().Receiver().ID())
}

func TestMenuFocusVisibleFollowsModality(t *testing.T) {
	te := newTestEnv(t)
	m := newMenu(t, te)
	m.Focus()
	require.True(t, m.View().Levels[0].Rows[0].State.FocusedVisible)

	m.Blur()
	te.modality.NotePointer()
	m.Focus()
	require.False(t, m.View().Levels[0].Rows[0].State.FocusedVisible)

	// Classification holds until the next focus change.
	te.modality.NoteKey(false)
	require.False(t, m.View().Levels[0].Rows[0].State.FocusedVisible)
	press(m, input.KeyDown)
	require.True(t, m.View().Levels[0].Rows[1].State.FocusedVisible)
}

func TestMenuValidation(t *testing.T) {
	te := newTestEnv(t)
	reg := collection.NewRegistry()
	reg.Register("root", collection.Static{{Kind: collection.KindMenu, Text: "nameless"}})
	_, err := NewMenu(MenuConfig{Root: "root", Registry: reg}, te.Env)
	require.ErrorIs(t, err, a11y.ErrConfiguration)

	reg = collection.NewRegistry()
	reg.Register("root", collection.Static{{ID: "x", Kind: collection.KindSubmenu, Text: "More", Child: "missing"}})
	_, err = NewMenu(MenuConfig{Root: "root", Registry: reg}, te.Env)
	require.NoError(t, err)
	require.Equal(t, []string{a11y.CodeMissingControls}, te.codes())

	_, err = NewMenu(MenuConfig{Root: "absent", Registry: reg}, te.Env)
	require.ErrorIs(t, err, a11y.ErrConfiguration)

	_, err = NewMenu(MenuConfig{Root: "root", Registry: reg, LabelledBy: "  "}, te.Env)
	require.ErrorIs(t, err, a11y.ErrConfiguration)
}

func TestMenuTypeaheadExpiresThroughWidget(t *testing.T) {
	te := newTestEnv(t)
	m := newMenu(t, te)
	m.Focus()

	typeRune(m, 'q', te.sched.Now())
	require.Equal(t, "quit", m.Root().Controller().ActiveID())
	fired := te.sched.Advance(typeahead.DefaultResetWindow)
	require.Len(t, fired, 1)
	require.True(t, m.Expire(fired[0].ID))
}
