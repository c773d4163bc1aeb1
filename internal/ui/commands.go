package ui

import (
	"fmt"

	"github.com/atomicstack/composite-widgets/internal/collection"
	"github.com/atomicstack/composite-widgets/internal/logging/events"
	"github.com/atomicstack/composite-widgets/internal/menu"
	"github.com/atomicstack/composite-widgets/internal/timer"
	"github.com/atomicstack/composite-widgets/internal/ui/command"
	tea "github.com/charmbracelet/bubbletea"
)

func (m *Model) runCommit(level string, item collection.Item) tea.Cmd {
	node, arg, ok := m.registry.Resolve(level, item)
	if !ok {
		m.snackbar.Show(fmt.Sprintf("%s has no action", item.Text))
		return nil
	}
	m.errMsg = ""
	return m.bus.Execute(m.menuCtx, command.Request{
		Level:   level,
		ID:      node.ID,
		Label:   arg.Label,
		Handler: node.Action,
		Item:    arg,
	})
}

func (m *Model) handleActionResultMsg(msg tea.Msg) tea.Cmd {
	result, ok := msg.(menu.ActionResult)
	if !ok {
		return nil
	}
	if result.Err != nil {
		m.errMsg = result.Err.Error()
		events.Action.Error(result.Err)
		return nil
	}
	if result.Apply != nil {
		result.Apply(&m.menuCtx)
	}
	if result.Info != "" {
		m.snackbar.Show(result.Info)
	}
	events.Action.Success(result.Info)
	return nil
}

// handleExpiredMsg routes a fired timer to whichever owner still holds it.
func (m *Model) handleExpiredMsg(msg tea.Msg) tea.Cmd {
	expired, ok := msg.(timer.Expired)
	if !ok {
		return nil
	}
	if m.snackbar.Expire(expired.ID) || m.tooltip.Expire(expired.ID) {
		return nil
	}
	for _, w := range m.widgets {
		if w.Expire(expired.ID) {
			return nil
		}
	}
	return nil
}
