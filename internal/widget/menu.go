package widget

import (
	"fmt"

	"github.com/atomicstack/composite-widgets/internal/a11y"
	"github.com/atomicstack/composite-widgets/internal/collection"
	"github.com/atomicstack/composite-widgets/internal/input"
	"github.com/atomicstack/composite-widgets/internal/submenu"
	"github.com/atomicstack/composite-widgets/internal/timer"
)

// MenuConfig describes a menu tree whose collections are registered in
// Registry; Root names the top-level collection.
type MenuConfig struct {
	Title      string
	Root       string
	Registry   *collection.Registry
	LabelledBy string
}

// Menu is a vertical menu with nested submenus.
type Menu struct {
	id       string
	title    string
	env      Env
	registry *collection.Registry
	root     *submenu.Machine
	tracker  focusTracker
}

// NewMenu validates every registered collection and builds the root
// machine.
func NewMenu(cfg MenuConfig, env Env) (*Menu, error) {
	env = env.withDefaults()
	id := env.IDs.Named("menu", cfg.Title)
	if err := a11y.ValidateLabel(id, cfg.LabelledBy); err != nil {
		return nil, err
	}
	if cfg.Registry == nil {
		return nil, &a11y.ConfigError{Widget: id, Field: "registry", Reason: "no collections registered"}
	}
	if err := validateMenuTree(id, cfg.Registry, env.Advisor); err != nil {
		return nil, err
	}
	root, err := submenu.New(cfg.Root, cfg.Registry, submenu.Options{
		Direction:       env.Direction,
		Positioner:      env.Positioner,
		Scheduler:       env.Scheduler,
		TypeaheadWindow: env.TypeaheadWindow,
	})
	if err != nil {
		return nil, &a11y.ConfigError{Widget: id, Field: "root", Reason: err.Error()}
	}
	if cfg.Title == "" {
		cfg.Title = "Menu"
	}
	return &Menu{
		id:       id,
		title:    cfg.Title,
		env:      env,
		registry: cfg.Registry,
		root:     root,
		tracker:  focusTracker{det: env.Focus, owner: id},
	}, nil
}

func validateMenuTree(widget string, registry *collection.Registry, advisor a11y.Advisor) error {
	for _, cid := range registry.IDs() {
		snap, _ := registry.Find(cid)
		seen := make(map[string]struct{})
		for i, item := range snap.Items() {
			if item.ID == "" {
				return &a11y.ConfigError{Widget: widget, Field: "item id", Reason: fmt.Sprintf("%s item %d (%q) has no id", cid, i, item.Text)}
			}
			if _, dup := seen[item.ID]; dup {
				return &a11y.ConfigError{Widget: widget, Field: "item id", Reason: fmt.Sprintf("%s has duplicate id %q", cid, item.ID)}
			}
			seen[item.ID] = struct{}{}
			if item.Text == "" {
				a11y.Report(advisor, a11y.Advisory{Widget: widget, Code: a11y.CodeMissingName, Detail: fmt.Sprintf("%s item %q has no text", cid, item.ID)})
			}
			if item.Kind == collection.KindSubmenu {
				if _, ok := registry.Find(item.Child); !ok {
					a11y.Report(advisor, a11y.Advisory{Widget: widget, Code: a11y.CodeMissingControls, Detail: fmt.Sprintf("%s trigger %q opens unknown collection %q", cid, item.ID, item.Child)})
				}
			}
		}
	}
	return nil
}

func (m *Menu) ID() string    { return m.id }
func (m *Menu) Title() string { return m.title }

// Root exposes the root state machine.
func (m *Menu) Root() *submenu.Machine { return m.root }

// Focus activates the root collection at its initial item.
func (m *Menu) Focus() {
	m.root.Open()
	m.syncFocus()
}

// Blur closes every level.
func (m *Menu) Blur() {
	m.root.Outside()
	m.root.Controller().Clear()
	m.tracker.release()
}

func (m *Menu) HandleKey(ev input.Event) Outcome {
	defer m.syncFocus()
	res := m.root.HandleKey(ev)
	if res.Commit != nil {
		m.root.Outside()
		return Outcome{Handled: true, Commit: res.Commit, Level: res.Level}
	}
	if !res.Handled && ev.Key == input.KeyEscape && m.root.Controller().ActiveID() != "" {
		m.root.Outside()
		m.root.Controller().Clear()
		return Outcome{Handled: true, Closed: true}
	}
	return Outcome{Handled: res.Handled}
}

// HandlePointer hovers or presses an item. Pressing a trigger hands input
// to its child; pressing a leaf commits it.
func (m *Menu) HandlePointer(p Pointer) Outcome {
	defer m.syncFocus()
	if !m.root.Hover(p.Level, p.Item) {
		return Outcome{}
	}
	if !p.Press {
		return Outcome{Handled: true}
	}
	for _, machine := range m.root.Path() {
		if machine.ID() != p.Level {
			continue
		}
		item, ok := machine.Controller().Active()
		if !ok {
			return Outcome{Handled: true}
		}
		if item.IsSubmenuTrigger() {
			machine.OpenChild(item.ID, true)
			return Outcome{Handled: true}
		}
		m.root.Outside()
		return Outcome{Handled: true, Commit: &item, Level: p.Level}
	}
	return Outcome{Handled: true}
}

func (m *Menu) Expire(id timer.ID) bool { return m.root.Expire(id) }

func (m *Menu) View() View {
	receiver := m.root.Receiver()
	var levels []Level
	for _, machine := range m.root.Path() {
		ctl := machine.Controller()
		level := machine.ID()
		active := ctl.ActiveID()
		levels = append(levels, Level{
			ID:        level,
			Receiving: machine == receiver,
			Rows: rows(ctl.Items(), func(item collection.Item) collection.State {
				return collection.State{
					Active:         item.ID == active,
					Disabled:       item.Disabled,
					FocusedVisible: item.ID == active && m.tracker.visible(level, item.ID),
				}
			}),
		})
	}
	summary := "closed"
	if link, ok := m.root.Link(); ok {
		summary = fmt.Sprintf("%s: %s", m.root.State(), link.Child)
	}
	return View{Caret: -1, Levels: levels, Summary: summary}
}

func (m *Menu) syncFocus() {
	receiver := m.root.Receiver()
	m.tracker.follow(receiver.ID(), receiver.Controller().ActiveID())
}
