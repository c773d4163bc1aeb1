package widget

import (
	"github.com/atomicstack/composite-widgets/internal/collection"
	"github.com/atomicstack/composite-widgets/internal/group"
	"github.com/atomicstack/composite-widgets/internal/input"
	"github.com/atomicstack/composite-widgets/internal/nav"
	"github.com/atomicstack/composite-widgets/internal/timer"
)

// TabsConfig describes a tab list. With Automatic, moving the active tab
// also selects it; otherwise Enter or Space selects.
type TabsConfig struct {
	Title     string
	Tabs      collection.Accessor
	Panels    map[string]string
	Automatic bool
	Group     group.Config
}

// Tabs is a horizontal tab list with a roving tab stop.
type Tabs struct {
	id        string
	title     string
	dir       input.Direction
	automatic bool
	panels    map[string]string
	coord     *group.Coordinator
	ctl       *nav.Controller
	tracker   focusTracker
}

// NewTabs builds a tab list. Without a value or default the first
// available tab starts selected.
func NewTabs(cfg TabsConfig, env Env) (*Tabs, error) {
	env = env.withDefaults()
	id := env.IDs.Named("tabs", cfg.Title)
	gcfg := cfg.Group
	gcfg.Mode = group.ModeSingle
	if gcfg.ID == "" {
		gcfg.ID = id
	}
	if gcfg.Advisor == nil {
		gcfg.Advisor = env.Advisor
	}
	if gcfg.Value == nil && gcfg.DefaultValue == nil && cfg.Tabs != nil {
		items := cfg.Tabs.Items()
		if idx := nav.FindAvailable(items, 0, nav.Forward, nil); idx >= 0 {
			def := group.Single(items[idx].ID)
			gcfg.DefaultValue = &def
		}
	}
	coord, err := group.New(gcfg, cfg.Tabs)
	if err != nil {
		return nil, err
	}
	if cfg.Title == "" {
		cfg.Title = "Tabs"
	}
	return &Tabs{
		id:        id,
		title:     cfg.Title,
		dir:       env.Direction,
		automatic: cfg.Automatic,
		panels:    cfg.Panels,
		coord:     coord,
		ctl:       nav.NewController(id, collection.Func(coord.Items)),
		tracker:   focusTracker{det: env.Focus, owner: id},
	}, nil
}

func (t *Tabs) ID() string    { return t.id }
func (t *Tabs) Title() string { return t.title }

// Group exposes the selection coordinator.
func (t *Tabs) Group() *group.Coordinator { return t.coord }

// Active returns the id of the active tab.
func (t *Tabs) Active() string { return t.ctl.ActiveID() }

// Focus lands on the tab stop.
func (t *Tabs) Focus() {
	t.ctl.SetActive(t.coord.TabStop())
	t.tracker.follow(t.id, t.ctl.ActiveID())
}

func (t *Tabs) Blur() {
	t.ctl.Clear()
	t.tracker.release()
}

func (t *Tabs) HandleKey(ev input.Event) Outcome {
	var moved bool
	switch ev.Key {
	case t.dir.Forward():
		_, moved = t.ctl.MoveNext()
	case t.dir.Backward():
		_, moved = t.ctl.MovePrev()
	case input.KeyHome:
		_, moved = t.ctl.MoveFirst()
	case input.KeyEnd:
		_, moved = t.ctl.MoveLast()
	case input.KeyEnter, input.KeySpace:
		return handled(t.coord.Activate(t.ctl.ActiveID()))
	default:
		return Outcome{}
	}
	t.tracker.follow(t.id, t.ctl.ActiveID())
	if moved && t.automatic {
		return handled(t.coord.Activate(t.ctl.ActiveID()))
	}
	return handled(false)
}

// HandlePointer selects a pressed tab.
func (t *Tabs) HandlePointer(p Pointer) Outcome {
	if p.Level != t.id || !p.Press {
		return Outcome{}
	}
	if !t.ctl.SetActive(p.Item) {
		return Outcome{}
	}
	t.tracker.follow(t.id, p.Item)
	return handled(t.coord.Activate(p.Item))
}

func (t *Tabs) Expire(timer.ID) bool { return false }

func (t *Tabs) View() View {
	active := t.ctl.ActiveID()
	selected, _ := t.coord.Value().Selected()
	return View{
		Caret:      -1,
		Horizontal: true,
		Levels: []Level{{
			ID:        t.id,
			Receiving: true,
			Rows: rows(t.coord.Items(), func(item collection.Item) collection.State {
				st := t.coord.State(item.ID)
				st.Active = item.ID == active
				st.FocusedVisible = st.Active && t.tracker.visible(t.id, item.ID)
				return st
			}),
		}},
		Panel:   t.panels[selected],
		Summary: "selected: " + selected,
	}
}
