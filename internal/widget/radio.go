package widget

import (
	"github.com/atomicstack/composite-widgets/internal/collection"
	"github.com/atomicstack/composite-widgets/internal/group"
	"github.com/atomicstack/composite-widgets/internal/input"
	"github.com/atomicstack/composite-widgets/internal/nav"
	"github.com/atomicstack/composite-widgets/internal/timer"
)

// GroupConfig describes a checkbox or radio group.
type GroupConfig struct {
	Title   string
	Members collection.Accessor
	Group   group.Config
	// Parent adds a select-all member above a checkbox group. Its state is
	// derived from the members and is never stored in the value.
	Parent *collection.Item
}

// RadioGroup is a single-choice group. Arrow keys move and select together.
type RadioGroup struct {
	id      string
	title   string
	dir     input.Direction
	coord   *group.Coordinator
	ctl     *nav.Controller
	tracker focusTracker
}

// NewRadioGroup builds a radio group.
func NewRadioGroup(cfg GroupConfig, env Env) (*RadioGroup, error) {
	env = env.withDefaults()
	id := env.IDs.Named("radiogroup", cfg.Title)
	gcfg := cfg.Group
	gcfg.Mode = group.ModeSingle
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
	if cfg.Title == "" {
		cfg.Title = "Radio"
	}
	return &RadioGroup{
		id:      id,
		title:   cfg.Title,
		dir:     env.Direction,
		coord:   coord,
		ctl:     nav.NewController(id, collection.Func(coord.Items)),
		tracker: focusTracker{det: env.Focus, owner: id},
	}, nil
}

func (r *RadioGroup) ID() string    { return r.id }
func (r *RadioGroup) Title() string { return r.title }

// Group exposes the selection coordinator.
func (r *RadioGroup) Group() *group.Coordinator { return r.coord }

// Active returns the id of the active member.
func (r *RadioGroup) Active() string { return r.ctl.ActiveID() }

// Focus lands on the group's single tab stop.
func (r *RadioGroup) Focus() {
	r.ctl.SetActive(r.coord.TabStop())
	r.tracker.follow(r.id, r.ctl.ActiveID())
}

func (r *RadioGroup) Blur() {
	r.ctl.Clear()
	r.tracker.release()
}

func (r *RadioGroup) HandleKey(ev input.Event) Outcome {
	var item collection.Item
	var ok bool
	switch ev.Key {
	case input.KeyDown, r.dir.Forward():
		item, ok = r.ctl.MoveNext()
	case input.KeyUp, r.dir.Backward():
		item, ok = r.ctl.MovePrev()
	case input.KeySpace:
		item, ok = r.ctl.Active()
	default:
		return Outcome{}
	}
	r.tracker.follow(r.id, r.ctl.ActiveID())
	if !ok {
		return handled(false)
	}
	return handled(r.coord.Activate(item.ID))
}

func (r *RadioGroup) HandlePointer(p Pointer) Outcome {
	if p.Level != r.id || !p.Press {
		return Outcome{}
	}
	if !r.ctl.SetActive(p.Item) {
		return Outcome{}
	}
	r.tracker.follow(r.id, p.Item)
	return handled(r.coord.Activate(p.Item))
}

func (r *RadioGroup) Expire(timer.ID) bool { return false }

func (r *RadioGroup) View() View {
	active := r.ctl.ActiveID()
	return View{
		Caret: -1,
		Levels: []Level{{
			ID:        r.id,
			Receiving: true,
			Rows: rows(r.coord.Items(), func(item collection.Item) collection.State {
				st := r.coord.State(item.ID)
				st.Active = item.ID == active
				st.FocusedVisible = st.Active && r.tracker.visible(r.id, item.ID)
				return st
			}),
		}},
		Summary: "value: " + r.coord.Value().String(),
	}
}
