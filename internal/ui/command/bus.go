package command

import (
	"fmt"

	"github.com/atomicstack/composite-widgets/internal/logging/events"
	"github.com/atomicstack/composite-widgets/internal/menu"
	tea "github.com/charmbracelet/bubbletea"
)

// Request is one committed menu item on its way to an action.
type Request struct {
	// Level is the collection the item was committed from.
	Level   string
	ID      string
	Label   string
	Handler menu.Action
	Item    menu.Item
}

func (r Request) key() string {
	if r.Level == "" || r.Level == r.ID {
		return r.ID
	}
	return r.Level + "/" + r.ID
}

// Bus turns committed menu items into Bubble Tea commands.
type Bus struct{}

// New returns a bus.
func New() *Bus {
	return &Bus{}
}

// Execute wraps the request's action into a command. The document context
// is captured by value when Execute is called, so the action sees the state
// the user committed against. Items that became unavailable are refused and
// a panicking action is reported as an ActionResult error.
func (b *Bus) Execute(ctx menu.Context, req Request) tea.Cmd {
	key := req.key()
	if req.Item.Disabled || req.Item.Hidden {
		events.Command.Skip(key, req.Label)
		err := fmt.Errorf("%s is unavailable", req.Label)
		return func() tea.Msg { return menu.ActionResult{Err: err} }
	}
	events.Command.Queue(key, req.Label)
	return func() (msg tea.Msg) {
		if req.Handler == nil {
			events.Command.Skip(key, req.Label)
			return nil
		}
		defer func() {
			if r := recover(); r != nil {
				msg = menu.ActionResult{Err: fmt.Errorf("%s failed: %v", req.Label, r)}
				events.Command.Result(key, req.Label, "panic")
			}
		}()
		cmd := req.Handler(ctx, req.Item)
		if cmd == nil {
			events.Command.NoOp(key, req.Label)
			return nil
		}
		msg = cmd()
		events.Command.Result(key, req.Label, fmt.Sprintf("%T", msg))
		return msg
	}
}
