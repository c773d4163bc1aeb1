package widget

import (
	"github.com/atomicstack/composite-widgets/internal/a11y"
	"github.com/atomicstack/composite-widgets/internal/collection"
	"github.com/atomicstack/composite-widgets/internal/group"
	"github.com/atomicstack/composite-widgets/internal/input"
	"github.com/atomicstack/composite-widgets/internal/nav"
	"github.com/atomicstack/composite-widgets/internal/timer"
)

// CheckGroup is a multiple-choice group, optionally headed by a parent
// checkbox that selects or clears every available member.
type CheckGroup struct {
	id      string
	title   string
	coord   *group.Coordinator
	parent  *collection.Item
	ctl     *nav.Controller
	tracker focusTracker
}

// NewCheckGroup builds a checkbox group.
func NewCheckGroup(cfg GroupConfig, env Env) (*CheckGroup, error) {
	env = env.withDefaults()
	id := env.IDs.Named("checkgroup", cfg.Title)
	gcfg := cfg.Group
	gcfg.Mode = group.ModeMultiple
	if gcfg.ID == "" {
		gcfg.ID = id
	}
	if gcfg.Advisor == nil {
		gcfg.Advisor = env.Advisor
	}
	coord, err := group.New(gcfg, cfg.Members)
	if err != nil {
		return nil, err
	}
	if cfg.Parent != nil {
		if cfg.Parent.ID == "" {
			return nil, &a11y.ConfigError{Widget: gcfg.ID, Field: "parent id", Reason: "parent checkbox has no id"}
		}
		if collection.IndexOf(cfg.Members.Items(), cfg.Parent.ID) >= 0 {
			return nil, &a11y.ConfigError{Widget: gcfg.ID, Field: "parent id", Reason: "parent id " + cfg.Parent.ID + " is also a member"}
		}
	}
	if cfg.Title == "" {
		cfg.Title = "Checkboxes"
	}
	g := &CheckGroup{
		id:      id,
		title:   cfg.Title,
		coord:   coord,
		parent:  cfg.Parent,
		tracker: focusTracker{det: env.Focus, owner: id},
	}
	g.ctl = nav.NewController(id, collection.Func(g.items))
	return g, nil
}

func (g *CheckGroup) items() []collection.Item {
	members := g.coord.Items()
	if g.parent == nil {
		return members
	}
	parent := *g.parent
	parent.Kind = collection.KindCheckGroupMember
	parent.Disabled = parent.Disabled || g.coord.Context().Disabled
	return append([]collection.Item{parent}, members...)
}

func (g *CheckGroup) ID() string    { return g.id }
func (g *CheckGroup) Title() string { return g.title }

// Group exposes the selection coordinator.
func (g *CheckGroup) Group() *group.Coordinator { return g.coord }

// Active returns the id of the active checkbox.
func (g *CheckGroup) Active() string { return g.ctl.ActiveID() }

func (g *CheckGroup) Focus() {
	if g.ctl.Index() < 0 {
		g.ctl.MoveFirst()
	}
	g.tracker.follow(g.id, g.ctl.ActiveID())
}

func (g *CheckGroup) Blur() {
	g.ctl.Clear()
	g.tracker.release()
}

func (g *CheckGroup) HandleKey(ev input.Event) Outcome {
	switch ev.Key {
	case input.KeyDown:
		g.ctl.MoveNext()
	case input.KeyUp:
		g.ctl.MovePrev()
	case input.KeyHome:
		g.ctl.MoveFirst()
	case input.KeyEnd:
		g.ctl.MoveLast()
	case input.KeySpace:
		return handled(g.toggle(g.ctl.ActiveID()))
	default:
		return Outcome{}
	}
	g.tracker.follow(g.id, g.ctl.ActiveID())
	return handled(false)
}

func (g *CheckGroup) toggle(id string) bool {
	if id == "" {
		return false
	}
	if g.parent == nil || id != g.parent.ID {
		return g.coord.Activate(id)
	}
	all, _ := g.parentState()
	ids := g.coord.Value().IDs()
	for _, item := range g.coord.Items() {
		if !item.Available() {
			continue
		}
		if all {
			ids = remove(ids, item.ID)
		} else {
			ids = append(ids, item.ID)
		}
	}
	changed, _ := g.coord.Set(group.Multiple(ids...))
	return changed
}

func remove(ids []string, id string) []string {
	out := ids[:0]
	for _, existing := range ids {
		if existing != id {
			out = append(out, existing)
		}
	}
	return out
}

// parentState reports whether every available member is selected and
// whether some but not all are.
func (g *CheckGroup) parentState() (all, mixed bool) {
	value := g.coord.Value()
	total, selected := 0, 0
	for _, item := range g.coord.Items() {
		if !item.Available() {
			continue
		}
		total++
		if value.Has(item.ID) {
			selected++
		}
	}
	all = total > 0 && selected == total
	return all, selected > 0 && !all
}

func (g *CheckGroup) HandlePointer(p Pointer) Outcome {
	if p.Level != g.id || !p.Press {
		return Outcome{}
	}
	if !g.ctl.SetActive(p.Item) {
		return Outcome{}
	}
	g.tracker.follow(g.id, p.Item)
	return handled(g.toggle(p.Item))
}

func (g *CheckGroup) Expire(timer.ID) bool { return false }

// State returns the declarative state of item id, the parent included.
func (g *CheckGroup) State(id string) collection.State {
	var st collection.State
	if g.parent != nil && id == g.parent.ID {
		all, mixed := g.parentState()
		st = collection.State{Selected: all, Indeterminate: mixed, Disabled: g.parent.Disabled || g.coord.Context().Disabled}
	} else {
		st = g.coord.State(id)
	}
	st.Active = id != "" && id == g.ctl.ActiveID()
	st.FocusedVisible = st.Active && g.tracker.visible(g.id, id)
	return st
}

func (g *CheckGroup) View() View {
	return View{
		Caret: -1,
		Levels: []Level{{
			ID:        g.id,
			Receiving: true,
			Rows:      rows(g.items(), func(item collection.Item) collection.State { return g.State(item.ID) }),
		}},
		Summary: "value: " + g.coord.Value().String(),
	}
}
