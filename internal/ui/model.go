package ui

import (
	"reflect"
	"time"

	"github.com/atomicstack/composite-widgets/internal/a11y"
	"github.com/atomicstack/composite-widgets/internal/focus"
	"github.com/atomicstack/composite-widgets/internal/ids"
	"github.com/atomicstack/composite-widgets/internal/input"
	"github.com/atomicstack/composite-widgets/internal/keys"
	"github.com/atomicstack/composite-widgets/internal/logging/events"
	"github.com/atomicstack/composite-widgets/internal/menu"
	"github.com/atomicstack/composite-widgets/internal/overlay"
	"github.com/atomicstack/composite-widgets/internal/theme"
	"github.com/atomicstack/composite-widgets/internal/timer"
	"github.com/atomicstack/composite-widgets/internal/ui/command"
	uistate "github.com/atomicstack/composite-widgets/internal/ui/state"
	"github.com/atomicstack/composite-widgets/internal/widget"
	"github.com/charmbracelet/bubbles/cursor"
	tea "github.com/charmbracelet/bubbletea"
)

var styles = theme.Default()

type msgHandler func(tea.Msg) tea.Cmd

// Options configures a Model.
type Options struct {
	Width            int
	Height           int
	ShowFooter       bool
	Direction        input.Direction
	TypeaheadWindow  time.Duration
	SnackbarDuration time.Duration
	TooltipDelay     time.Duration
	// Scheduler defaults to a tea.Tick backed scheduler.
	Scheduler timer.Scheduler
	// Clock stamps key events; defaults to time.Now.
	Clock func() time.Time
	// Advisor receives configuration advisories; defaults to the log.
	Advisor a11y.Advisor
}

// cmdSource is implemented by schedulers that hand their timers to the
// program as commands.
type cmdSource interface {
	Cmd() tea.Cmd
}

// Model implements the Bubble Tea model hosting the demo widgets.
type Model struct {
	widgets []widget.Widget
	current int

	keys     keys.Map
	dir      input.Direction
	modality *focus.Modality
	sched    timer.Scheduler
	clock    func() time.Time
	ids      *ids.Allocator

	snackbar *overlay.Snackbar
	tooltip  *overlay.Tooltip

	registry *menu.Registry
	menuCtx  menu.Context
	bus      *command.Bus

	errMsg      string
	width       int
	height      int
	fixedWidth  bool
	fixedHeight bool
	showFooter  bool

	filterCursor      cursor.Model
	filterCursorDirty bool
	cursorFocused     bool

	viewports map[string]*uistate.Viewport
	hits      []hit
	hints     map[string]string
	hover     string

	handlers map[reflect.Type]msgHandler
}

// NewModel builds the host model and every demo widget.
func NewModel(opts Options) (*Model, error) {
	if opts.Scheduler == nil {
		opts.Scheduler = timer.NewTea()
	}
	if opts.Clock == nil {
		opts.Clock = time.Now
	}
	if opts.TooltipDelay <= 0 {
		opts.TooltipDelay = -1
	}
	modality := focus.NewModality()
	alloc := ids.New("cw")
	m := &Model{
		keys:       keys.Default(),
		dir:        opts.Direction,
		modality:   modality,
		sched:      opts.Scheduler,
		clock:      opts.Clock,
		ids:        alloc,
		snackbar:   overlay.NewSnackbar(opts.Scheduler, alloc, opts.SnackbarDuration),
		tooltip:    overlay.NewTooltip(opts.Scheduler, opts.TooltipDelay, -1),
		registry:   menu.BuildRegistry(),
		menuCtx:    menu.DefaultContext(),
		bus:        command.New(),
		showFooter: opts.ShowFooter,
		viewports:  make(map[string]*uistate.Viewport),
		hints:      make(map[string]string),
	}
	env := widget.Env{
		IDs:             alloc,
		Scheduler:       opts.Scheduler,
		Focus:           focus.NewDetector(modality),
		Direction:       opts.Direction,
		TypeaheadWindow: opts.TypeaheadWindow,
		Advisor:         opts.Advisor,
	}
	widgets, err := m.buildWidgets(env)
	if err != nil {
		return nil, err
	}
	m.widgets = widgets
	if opts.Width > 0 {
		m.width = opts.Width
		m.fixedWidth = true
	}
	if opts.Height > 0 {
		m.height = opts.Height
		m.fixedHeight = true
	}
	c := cursor.New()
	if styles.Cursor != nil {
		c.Style = styles.Cursor.Copy()
	}
	if styles.Filter != nil {
		c.TextStyle = styles.Filter.Copy()
	}
	c.SetChar(" ")
	m.filterCursor = c
	m.registerHandlers()
	m.widgets[m.current].Focus()
	return m, nil
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{}
	m.cursorFocused = true
	if cmd := m.filterCursor.Focus(); cmd != nil {
		cmds = append(cmds, cmd)
	}
	return m.finishUpdate(cmds)
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmds := make([]tea.Cmd, 0, 4)
	if cmd := m.updateFilterCursorModel(msg); cmd != nil {
		cmds = append(cmds, cmd)
	}
	if handler := m.handlerFor(msg); handler != nil {
		if cmd := handler(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return m, m.finishUpdate(cmds)
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):        m.handleKeyMsg,
		reflect.TypeOf(tea.MouseMsg{}):      m.handleMouseMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
		reflect.TypeOf(timer.Expired{}):     m.handleExpiredMsg,
		reflect.TypeOf(menu.ActionResult{}): m.handleActionResultMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

func (m *Model) finishUpdate(cmds []tea.Cmd) tea.Cmd {
	if m.filterCursorDirty && m.cursorFocused {
		m.filterCursorDirty = false
		m.filterCursor.Blink = false
		if cmd := m.filterCursor.BlinkCmd(); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	if src, ok := m.sched.(cmdSource); ok {
		if cmd := src.Cmd(); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

// Current returns the widget receiving keyboard input.
func (m *Model) Current() widget.Widget {
	return m.widgets[m.current]
}

// Widgets lists the hosted widgets in display order.
func (m *Model) Widgets() []widget.Widget {
	return m.widgets
}

// MenuContext returns the document state the menu actions operate on.
func (m *Model) MenuContext() menu.Context {
	return m.menuCtx
}

func (m *Model) menuContext() menu.Context {
	return m.menuCtx
}

// Snackbar exposes the transient message overlay.
func (m *Model) Snackbar() *overlay.Snackbar {
	return m.snackbar
}

// Tooltip exposes the hover tooltip overlay.
func (m *Model) Tooltip() *overlay.Tooltip {
	return m.tooltip
}

func (m *Model) selectWidget(idx int) {
	if idx < 0 || idx >= len(m.widgets) || idx == m.current {
		return
	}
	prev := m.widgets[m.current]
	prev.Blur()
	m.tooltip.Close()
	m.current = idx
	next := m.widgets[idx]
	next.Focus()
	m.filterCursorDirty = true
	events.UI.Switch(prev.ID(), next.ID())
}

func (m *Model) cycleWidget(step int) {
	n := len(m.widgets)
	m.selectWidget(((m.current+step)%n + n) % n)
}
