package widget

import (
	"github.com/atomicstack/composite-widgets/internal/collection"
	"github.com/atomicstack/composite-widgets/internal/group"
	"github.com/atomicstack/composite-widgets/internal/input"
	"github.com/atomicstack/composite-widgets/internal/nav"
	"github.com/atomicstack/composite-widgets/internal/timer"
	"github.com/atomicstack/composite-widgets/internal/typeahead"
)

// SelectConfig describes a select: a trigger showing the chosen option and
// a listbox popup.
type SelectConfig struct {
	Title       string
	Placeholder string
	Options     collection.Accessor
	Group       group.Config
}

// Select is a single-choice listbox behind a trigger.
type Select struct {
	id          string
	title       string
	placeholder string
	coord       *group.Coordinator
	snap        *collection.Snapshot
	ctl         *nav.Controller
	matcher     *typeahead.Matcher
	expanded    bool
	tracker     focusTracker
}

// NewSelect builds a select over cfg.Options.
func NewSelect(cfg SelectConfig, env Env) (*Select, error) {
	env = env.withDefaults()
	id := env.IDs.Named("select", cfg.Title)
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
		cfg.Title = "Select"
	}
	if cfg.Placeholder == "" {
		cfg.Placeholder = "(choose)"
	}
	snap := collection.NewSnapshot(collection.Func(coord.Items))
	return &Select{
		id:          id,
		title:       cfg.Title,
		placeholder: cfg.Placeholder,
		coord:       coord,
		snap:        snap,
		ctl:         nav.NewController(id, snap),
		matcher:     typeahead.New(env.TypeaheadWindow, env.Scheduler),
		tracker:     focusTracker{det: env.Focus, owner: id},
	}, nil
}

func (s *Select) ID() string    { return s.id }
func (s *Select) Title() string { return s.title }

// Group exposes the selection coordinator.
func (s *Select) Group() *group.Coordinator { return s.coord }

// Expanded reports whether the listbox is open.
func (s *Select) Expanded() bool { return s.expanded }

// Active returns the id of the highlighted option while open.
func (s *Select) Active() string { return s.ctl.ActiveID() }

func (s *Select) Focus() {}

func (s *Select) Blur() {
	s.close()
	s.matcher.Reset()
}

// Open expands the listbox. The open state is applied and the options
// re-queried before the initial option is chosen, so the previous
// selection is found again.
func (s *Select) Open(dir nav.Direction) {
	s.expanded = true
	s.snap.Invalidate()
	s.ctl.MoveInitial(dir)
	s.tracker.follow(s.id, s.ctl.ActiveID())
}

func (s *Select) close() {
	s.expanded = false
	s.ctl.Clear()
	s.snap.Invalidate()
	s.tracker.release()
}

func (s *Select) HandleKey(ev input.Event) Outcome {
	if !s.expanded {
		return s.handleClosed(ev)
	}
	defer func() {
		if s.expanded {
			s.tracker.follow(s.id, s.ctl.ActiveID())
		}
	}()
	switch ev.Key {
	case input.KeyDown:
		s.ctl.MoveNext()
	case input.KeyUp:
		s.ctl.MovePrev()
	case input.KeyHome:
		s.ctl.MoveFirst()
	case input.KeyEnd:
		s.ctl.MoveLast()
	case input.KeyEnter, input.KeySpace:
		item, ok := s.ctl.Active()
		changed := ok && s.coord.Activate(item.ID)
		s.close()
		return Outcome{Handled: true, Changed: changed, Closed: true}
	case input.KeyEscape:
		s.close()
		return Outcome{Handled: true, Closed: true}
	case input.KeyRune:
		if _, ok := s.matcher.Input(s.ctl, ev.Rune, ev.At); !ok && !typeahead.Printable(ev.Rune) {
			return Outcome{}
		}
	default:
		return Outcome{}
	}
	return handled(false)
}

// handleClosed opens on arrows and Enter/Space; typing selects the matching
// option directly.
func (s *Select) handleClosed(ev input.Event) Outcome {
	switch ev.Key {
	case input.KeyDown, input.KeyEnter, input.KeySpace:
		s.Open(nav.Forward)
		return handled(false)
	case input.KeyUp:
		s.Open(nav.Backward)
		return handled(false)
	case input.KeyRune:
		if !typeahead.Printable(ev.Rune) {
			return Outcome{}
		}
		if id, ok := s.coord.Value().Selected(); ok {
			s.ctl.SetActive(id)
		}
		item, ok := s.matcher.Input(s.ctl, ev.Rune, ev.At)
		s.ctl.Clear()
		if !ok {
			return handled(false)
		}
		return handled(s.coord.Activate(item.ID))
	}
	return Outcome{}
}

// HandlePointer toggles the popup when the trigger is pressed, highlights
// hovered options and commits pressed ones.
func (s *Select) HandlePointer(p Pointer) Outcome {
	if p.Level == s.TriggerLevel() {
		if !p.Press {
			return Outcome{}
		}
		if s.expanded {
			s.close()
			return Outcome{Handled: true, Closed: true}
		}
		s.Open(nav.Forward)
		return handled(false)
	}
	if !s.expanded || p.Level != s.id {
		return Outcome{}
	}
	if !s.ctl.SetActive(p.Item) {
		return Outcome{}
	}
	s.tracker.follow(s.id, p.Item)
	if !p.Press {
		return handled(false)
	}
	changed := s.coord.Activate(p.Item)
	s.close()
	return Outcome{Handled: true, Changed: changed, Closed: true}
}

// TriggerLevel is the pointer level of the trigger.
func (s *Select) TriggerLevel() string { return s.id + "-trigger" }

func (s *Select) Expire(id timer.ID) bool { return s.matcher.Expire(id) }

func (s *Select) View() View {
	header := s.placeholder
	selected := s.coord.SelectedItems()
	if len(selected) > 0 {
		header = selected[0].Text
	}
	v := View{Header: header, Caret: -1, Expanded: s.expanded, Summary: "value: " + s.coord.Value().String()}
	if !s.expanded {
		return v
	}
	active := s.ctl.ActiveID()
	v.Levels = []Level{{
		ID:        s.id,
		Receiving: true,
		Rows: rows(s.snap.Items(), func(item collection.Item) collection.State {
			st := s.coord.State(item.ID)
			st.Active = item.ID == active
			st.FocusedVisible = st.Active && s.tracker.visible(s.id, item.ID)
			return st
		}),
	}}
	return v
}
