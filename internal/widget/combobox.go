package widget

import (
	"strings"

	"github.com/atomicstack/composite-widgets/internal/collection"
	"github.com/atomicstack/composite-widgets/internal/group"
	"github.com/atomicstack/composite-widgets/internal/input"
	"github.com/atomicstack/composite-widgets/internal/logging/events"
	"github.com/atomicstack/composite-widgets/internal/nav"
	"github.com/atomicstack/composite-widgets/internal/timer"
	"github.com/atomicstack/composite-widgets/internal/ui/state"
)

// ComboboxConfig describes a text input filtering a listbox of options.
type ComboboxConfig struct {
	Title   string
	Options collection.Accessor
	Group   group.Config
}

// Combobox filters its options by the typed query. Every query change
// invalidates the option snapshot; the active option is then re-derived
// from the best match, or dropped when it no longer passes the filter.
type Combobox struct {
	id       string
	title    string
	coord    *group.Coordinator
	query    state.Query
	snap     *collection.Snapshot
	ctl      *nav.Controller
	expanded bool
	tracker  focusTracker
}

// NewCombobox builds a combobox over cfg.Options.
func NewCombobox(cfg ComboboxConfig, env Env) (*Combobox, error) {
	env = env.withDefaults()
	id := env.IDs.Named("combobox", cfg.Title)
	gcfg := cfg.Group
	gcfg.Mode = group.ModeSingle
	if gcfg.ID == "" {
		gcfg.ID = id
	}
	if gcfg.Advisor == nil {
		gcfg.Advisor = env.Advisor
	}
	coord, err := group.New(gcfg, cfg.Options)
	if err != nil {
		return nil, err
	}
	if cfg.Title == "" {
		cfg.Title = "Combobox"
	}
	c := &Combobox{
		id:      id,
		title:   cfg.Title,
		coord:   coord,
		tracker: focusTracker{det: env.Focus, owner: id},
	}
	c.snap = collection.NewSnapshot(collection.Func(c.filtered))
	c.ctl = nav.NewController(id, c.snap)
	return c, nil
}

func (c *Combobox) filtered() []collection.Item {
	return state.FilterItems(c.coord.Items(), c.query.Text)
}

func (c *Combobox) ID() string    { return c.id }
func (c *Combobox) Title() string { return c.title }

// Group exposes the selection coordinator.
func (c *Combobox) Group() *group.Coordinator { return c.coord }

// Query returns the typed text.
func (c *Combobox) Query() string { return c.query.Text }

// Options returns the options passing the current query.
func (c *Combobox) Options() []collection.Item { return c.snap.Items() }

// Suggestion returns the option closest to a query that matched nothing.
func (c *Combobox) Suggestion() (collection.Item, bool) {
	if len(c.snap.Items()) > 0 {
		return collection.Item{}, false
	}
	return state.Suggest(c.coord.Items(), c.query.Text)
}

// Active returns the highlighted option id.
func (c *Combobox) Active() string { return c.ctl.ActiveID() }

// Expanded reports whether the option list is shown.
func (c *Combobox) Expanded() bool { return c.expanded }

func (c *Combobox) Focus() {}

func (c *Combobox) Blur() { c.collapse() }

func (c *Combobox) expand() {
	if c.expanded {
		return
	}
	c.expanded = true
	c.snap.Invalidate()
	c.ctl.MoveInitial(nav.Forward)
}

func (c *Combobox) collapse() {
	c.expanded = false
	c.ctl.Clear()
	c.tracker.release()
}

// refilter runs after every query edit.
func (c *Combobox) refilter() {
	c.snap.Invalidate()
	c.expanded = true
	items := c.snap.Items()
	events.Nav.Filter(c.id, c.query.Text, len(items))
	if strings.TrimSpace(c.query.Text) == "" {
		// Index re-derives a stale reference as none.
		c.ctl.Index()
		return
	}
	if idx := state.BestMatchIndex(items, c.query.Text); idx >= 0 {
		c.ctl.SetActiveIndex(idx)
		return
	}
	c.ctl.Clear()
}

func (c *Combobox) HandleKey(ev input.Event) Outcome {
	defer func() {
		if c.expanded {
			c.tracker.follow(c.id, c.ctl.ActiveID())
		}
	}()
	switch ev.Key {
	case input.KeyDown:
		if !c.expanded {
			c.expand()
		} else {
			c.ctl.MoveNext()
		}
	case input.KeyUp:
		if !c.expanded {
			c.expand()
		} else {
			c.ctl.MovePrev()
		}
	case input.KeyEnter:
		if !c.expanded {
			c.expand()
			return handled(false)
		}
		return c.commit()
	case input.KeyEscape:
		if c.expanded {
			c.collapse()
			return Outcome{Handled: true, Closed: true}
		}
		if !c.query.Clear() {
			return Outcome{}
		}
		c.snap.Invalidate()
	case input.KeyRune:
		return c.edit(c.query.Insert(string(ev.Rune)))
	case input.KeySpace:
		return c.edit(c.query.Insert(" "))
	case input.KeyBackspace:
		return c.edit(c.query.DeleteRuneBackward())
	case input.KeyDeleteWord:
		return c.edit(c.query.DeleteWordBackward())
	case input.KeyClearLine:
		return c.edit(c.query.Clear())
	case input.KeyLeft:
		return caret(c.query.MoveRuneBackward())
	case input.KeyRight:
		return caret(c.query.MoveRuneForward())
	case input.KeyHome, input.KeyLineStart:
		return caret(c.query.MoveStart())
	case input.KeyEnd, input.KeyLineEnd:
		return caret(c.query.MoveEnd())
	case input.KeyWordBackward:
		return caret(c.query.MoveWordBackward())
	case input.KeyWordForward:
		return caret(c.query.MoveWordForward())
	default:
		return Outcome{}
	}
	return handled(false)
}

func (c *Combobox) edit(changed bool) Outcome {
	if !changed {
		return Outcome{}
	}
	c.refilter()
	return handled(false)
}

func caret(moved bool) Outcome {
	return Outcome{Handled: moved}
}

// commit selects the active option and copies its text into the input.
func (c *Combobox) commit() Outcome {
	item, ok := c.ctl.Active()
	if !ok {
		c.collapse()
		return Outcome{Handled: true, Closed: true}
	}
	changed := c.coord.Activate(item.ID)
	c.query.Set(item.Text, len([]rune(item.Text)))
	c.snap.Invalidate()
	c.collapse()
	return Outcome{Handled: true, Changed: changed, Closed: true}
}

// HandlePointer highlights hovered options and commits pressed ones.
func (c *Combobox) HandlePointer(p Pointer) Outcome {
	if p.Level != c.id || !c.expanded {
		return Outcome{}
	}
	if !c.ctl.SetActive(p.Item) {
		return Outcome{}
	}
	c.tracker.follow(c.id, p.Item)
	if !p.Press {
		return handled(false)
	}
	return c.commit()
}

func (c *Combobox) Expire(timer.ID) bool { return false }

func (c *Combobox) View() View {
	v := View{
		Header:   c.query.Text,
		Caret:    c.query.Pos(),
		Expanded: c.expanded,
		Summary:  "value: " + c.coord.Value().String(),
	}
	if !c.expanded {
		return v
	}
	active := c.ctl.ActiveID()
	v.Levels = []Level{{
		ID:        c.id,
		Receiving: true,
		Rows: rows(c.snap.Items(), func(item collection.Item) collection.State {
			st := c.coord.State(item.ID)
			st.Active = item.ID == active
			st.FocusedVisible = st.Active && c.tracker.visible(c.id, item.ID)
			return st
		}),
	}}
	return v
}
