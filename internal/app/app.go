package app

import (
	"errors"
	"fmt"
	"time"

	"github.com/atomicstack/composite-widgets/internal/input"
	"github.com/atomicstack/composite-widgets/internal/ui"
	tea "github.com/charmbracelet/bubbletea"
)

// Config describes user-provided application options.
type Config struct {
	Width            int
	Height           int
	ShowFooter       bool
	RTL              bool
	TypeaheadWindow  time.Duration
	SnackbarDuration time.Duration
	TooltipDelay     time.Duration
}

// Options converts the config into host model options.
func (c Config) Options() ui.Options {
	dir := input.LTR
	if c.RTL {
		dir = input.RTL
	}
	return ui.Options{
		Width:            c.Width,
		Height:           c.Height,
		ShowFooter:       c.ShowFooter,
		Direction:        dir,
		TypeaheadWindow:  c.TypeaheadWindow,
		SnackbarDuration: c.SnackbarDuration,
		TooltipDelay:     c.TooltipDelay,
	}
}

// Run bootstraps and executes the Bubble Tea program.
func Run(cfg Config) error {
	model, err := ui.NewModel(cfg.Options())
	if err != nil {
		return fmt.Errorf("build model: %w", err)
	}
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseAllMotion())
	_, err = program.Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	return err
}
