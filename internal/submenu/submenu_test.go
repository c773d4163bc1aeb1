package submenu

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/atomicstack/composite-widgets/internal/collection"
	"github.com/atomicstack/composite-widgets/internal/input"
	"github.com/atomicstack/composite-widgets/internal/timer"
)

type recordingPositioner struct {
	calls [][2]string
}

func (p *recordingPositioner) OpenNear(anchor, floating string) {
	p.calls = append(p.calls, [2]string{anchor, floating})
}

func newRegistry() *collection.Registry {
	reg := collection.NewRegistry()
	reg.Register("root", collection.Static{
		{ID: "new", Text: "New", Kind: collection.KindMenu},
		{ID: "open", Text: "Open", Kind: collection.KindSubmenu, Child: "open-menu"},
		{ID: "save", Text: "Save", Kind: collection.KindMenu},
	})
	reg.Register("open-menu", collection.Static{
		{ID: "recent", Text: "Recent", Kind: collection.KindSubmenu, Child: "recent-menu"},
		{ID: "file", Text: "File", Kind: collection.KindMenu},
		{ID: "url", Text: "URL", Kind: collection.KindMenu, Disabled: true},
	})
	reg.Register("recent-menu", collection.Static{
		{ID: "a.txt", Text: "a.txt", Kind: collection.KindMenu},
		{ID: "b.txt", Text: "b.txt", Kind: collection.KindMenu},
	})
	return reg
}

func newMachine(t *testing.T, opts Options) *Machine {
	t.Helper()
	m, err := New("root", newRegistry(), opts)
	require.NoError(t, err)
	m.Open()
	return m
}

func press(m *Machine, k input.Key) Result {
	return m.HandleKey(input.Press(k))
}

// exactlyOneReceiver asserts that a single collection in the open chain
// takes keyboard input: one whose parent handed input down and which did
// not hand it further.
func exactlyOneReceiver(t *testing.T, root *Machine) {
	t.Helper()
	path := root.Path()
	receivers := 0
	for i, m := range path {
		handedDown := i == 0 || path[i-1].State() == OpenChildActive
		if handedDown && m.State() != OpenChildActive {
			receivers++
			require.Same(t, m, root.Receiver())
		}
	}
	require.Equal(t, 1, receivers, "exactly one collection must receive input")
}

func TestOpenChildWithForwardArrowAndReturn(t *testing.T) {
	m := newMachine(t, Options{})
	require.Equal(t, "new", m.Controller().ActiveID())

	press(m, input.KeyDown)
	require.Equal(t, "open", m.Controller().ActiveID())

	require.True(t, press(m, input.KeyRight).Handled)
	require.Equal(t, OpenChildActive, m.State())
	child := m.Child()
	require.NotNil(t, child)
	require.Equal(t, "recent", child.Controller().ActiveID())
	require.Same(t, child, m.Receiver())
	exactlyOneReceiver(t, m)

	link, ok := m.Link()
	require.True(t, ok)
	require.Equal(t, collection.Link{ParentItem: "open", Child: "open-menu", Open: true}, link)

	require.True(t, press(m, input.KeyLeft).Handled)
	require.Equal(t, OpenParentActive, m.State())
	require.Equal(t, "open", m.Controller().ActiveID())
	require.Equal(t, "", child.Controller().ActiveID())
	require.Same(t, m, m.Receiver())
	exactlyOneReceiver(t, m)
}

func TestEnterAndSpaceOpenChild(t *testing.T) {
	for _, k := range []input.Key{input.KeyEnter, input.KeySpace} {
		m := newMachine(t, Options{})
		m.Controller().SetActive("open")
		require.True(t, press(m, k).Handled)
		require.Equal(t, OpenChildActive, m.State(), "key %s", k)
		require.Equal(t, "recent", m.Child().Controller().ActiveID())
	}
}

func TestRTLSwapsArrows(t *testing.T) {
	m := newMachine(t, Options{Direction: input.RTL})
	m.Controller().SetActive("open")
	require.False(t, press(m, input.KeyRight).Handled)
	require.Equal(t, Closed, m.State())

	require.True(t, press(m, input.KeyLeft).Handled)
	require.Equal(t, OpenChildActive, m.State())

	require.True(t, press(m, input.KeyRight).Handled)
	require.Equal(t, OpenParentActive, m.State())
	require.Equal(t, "open", m.Controller().ActiveID())
}

func TestChildNavigationSkipsDisabled(t *testing.T) {
	m := newMachine(t, Options{})
	m.OpenChild("open", true)
	press(m, input.KeyDown)
	press(m, input.KeyDown)
	require.Equal(t, "recent", m.Child().Controller().ActiveID(), "url is disabled so navigation wraps")
	require.Equal(t, "open", m.Controller().ActiveID(), "parent keeps the trigger active")
}

func TestEnterOnLeafCommits(t *testing.T) {
	m := newMachine(t, Options{})
	m.OpenChild("open", true)
	press(m, input.KeyDown)
	res := press(m, input.KeyEnter)
	require.True(t, res.Handled)
	require.NotNil(t, res.Commit)
	require.Equal(t, "file", res.Commit.ID)
	require.Equal(t, "open-menu", res.Level)
}

func TestEscapeBubblesFromChildToParent(t *testing.T) {
	m := newMachine(t, Options{})
	m.OpenChild("open", true)
	m.Child().OpenChild("recent", true)
	require.Equal(t, "a.txt", m.Receiver().Controller().ActiveID())
	require.Len(t, m.Path(), 3)

	require.True(t, press(m, input.KeyEscape).Handled)
	require.Len(t, m.Path(), 2)
	require.Equal(t, "recent", m.Child().Controller().ActiveID())

	require.True(t, press(m, input.KeyEscape).Handled)
	require.Equal(t, Closed, m.State())
	require.Equal(t, "open", m.Controller().ActiveID())

	require.False(t, press(m, input.KeyEscape).Handled, "escape at the root is left to the caller")
}

func TestOutsideClosesEverything(t *testing.T) {
	reg := newRegistry()
	m, err := New("root", reg, Options{})
	require.NoError(t, err)
	m.Open()
	m.OpenChild("open", true)
	m.Child().OpenChild("recent", true)

	m.Outside()
	require.Equal(t, Closed, m.State())
	require.Len(t, m.Path(), 1)
	require.Empty(t, reg.OpenLinks())
}

func TestClosingDropsChildMachines(t *testing.T) {
	m := newMachine(t, Options{})
	m.OpenChild("open", true)
	first := m.Child()
	first.OpenChild("recent", true)
	require.Len(t, first.children, 1)

	require.True(t, press(m, input.KeyEscape).Handled)
	require.Empty(t, first.children, "closing recent-menu drops its machine")
	require.True(t, press(m, input.KeyEscape).Handled)
	require.Empty(t, m.children)

	m.OpenChild("open", true)
	require.NotSame(t, first, m.Child())
	require.Equal(t, "recent", m.Child().Controller().ActiveID())

	m.Outside()
	require.Empty(t, m.children)
}

func TestMovingOffTriggerClosesParentActiveChild(t *testing.T) {
	m := newMachine(t, Options{})
	m.OpenChild("open", true)
	press(m, input.KeyLeft)
	require.Equal(t, OpenParentActive, m.State())

	press(m, input.KeyDown)
	require.Equal(t, Closed, m.State())
	require.Equal(t, "save", m.Controller().ActiveID())
}

func TestHoverOpensWithoutMovingInput(t *testing.T) {
	pos := &recordingPositioner{}
	m := newMachine(t, Options{Positioner: pos})
	require.True(t, m.Hover("root", "open"))
	require.Equal(t, OpenParentActive, m.State())
	require.Equal(t, "", m.Child().Controller().ActiveID())
	require.Equal(t, [][2]string{{"open", "open-menu"}}, pos.calls)

	require.True(t, m.Hover("open-menu", "file"))
	require.Equal(t, OpenChildActive, m.State())
	require.Equal(t, "file", m.Receiver().Controller().ActiveID())
	exactlyOneReceiver(t, m)

	require.True(t, m.Hover("root", "open"))
	require.Equal(t, OpenParentActive, m.State())
	require.Equal(t, "", m.Child().Controller().ActiveID())

	require.True(t, m.Hover("root", "save"))
	require.Equal(t, Closed, m.State())
	require.Equal(t, "save", m.Controller().ActiveID())

	require.False(t, m.Hover("recent-menu", "a.txt"), "closed collections cannot be hovered")
}

func TestTypeaheadInsideChildAndExpiry(t *testing.T) {
	sched := timer.NewManual(time.Unix(0, 0))
	m := newMachine(t, Options{Scheduler: sched})
	m.OpenChild("open", true)
	res := m.HandleKey(input.Rune('f', sched.Now()))
	require.True(t, res.Handled)
	require.Equal(t, "file", m.Child().Controller().ActiveID())
	require.Equal(t, "open", m.Controller().ActiveID())

	fired := sched.Advance(time.Second)
	require.Len(t, fired, 1)
	require.True(t, m.Expire(fired[0].ID))
	require.False(t, m.Expire(fired[0].ID))
}

func TestReturningToParentCancelsChildTimers(t *testing.T) {
	sched := timer.NewManual(time.Unix(0, 0))
	m := newMachine(t, Options{Scheduler: sched})
	m.OpenChild("open", true)
	m.HandleKey(input.Rune('f', sched.Now()))
	require.Equal(t, 1, sched.Pending())

	press(m, input.KeyLeft)
	require.Equal(t, 0, sched.Pending())
}

func TestUnknownCollection(t *testing.T) {
	_, err := New("missing", newRegistry(), Options{})
	require.Error(t, err)

	reg := collection.NewRegistry()
	reg.Register("root", collection.Static{{ID: "dangling", Text: "Dangling", Kind: collection.KindSubmenu, Child: "nowhere"}})
	m, err := New("root", reg, Options{})
	require.NoError(t, err)
	m.Open()
	require.False(t, press(m, input.KeyRight).Handled, "a trigger without a registered child opens nothing")
	require.Equal(t, Closed, m.State())
}
