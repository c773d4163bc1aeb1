package theme

import "github.com/charmbracelet/lipgloss"

// Styles describes reusable Lip Gloss styles shared across the UI.
type Styles struct {
	Item                *lipgloss.Style
	ItemIndicator       *lipgloss.Style
	ActiveItemIndicator *lipgloss.Style
	ActiveItem          *lipgloss.Style
	FocusRing           *lipgloss.Style
	DisabledItem        *lipgloss.Style
	Mark                *lipgloss.Style
	Level               *lipgloss.Style
	ReceivingLevel      *lipgloss.Style
	Tab                 *lipgloss.Style
	ActiveTab           *lipgloss.Style
	TabStop             *lipgloss.Style
	Panel               *lipgloss.Style
	Error               *lipgloss.Style
	Info                *lipgloss.Style
	Header              *lipgloss.Style
	Footer              *lipgloss.Style
	Filter              *lipgloss.Style
	FilterPrompt        *lipgloss.Style
	FilterPlaceholder   *lipgloss.Style
	Cursor              *lipgloss.Style
	Snackbar            *lipgloss.Style
	Tooltip             *lipgloss.Style
}

var defaultStyles = Styles{
	Item: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	ItemIndicator: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
	),
	ActiveItemIndicator: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("33")).Background(lipgloss.Color("238")),
	),
	ActiveItem: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("238")).Bold(true),
	),
	FocusRing: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("238")).Bold(true).Underline(true),
	),
	DisabledItem: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Faint(true),
	),
	Mark: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("34")).Bold(true),
	),
	Level: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	),
	ReceivingLevel: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("33")).Bold(true),
	),
	Tab: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Padding(0, 1),
	),
	ActiveTab: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("238")).Padding(0, 1),
	),
	TabStop: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("33")).Bold(true).Padding(0, 1),
	),
	Panel: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("250")).PaddingLeft(2),
	),
	Error: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
	),
	Info: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	Header: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Bold(true),
	),
	Footer: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	Filter: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	FilterPrompt: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("34")).Bold(true),
	),
	FilterPlaceholder: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	),
	Cursor: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("33")).Blink(true),
	),
	Snackbar: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("34")).Padding(0, 1),
	),
	Tooltip: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("250")).Background(lipgloss.Color("236")).Padding(0, 1),
	),
}

// Default exposes the standard style set used across the application.
func Default() *Styles {
	return &defaultStyles
}

func ptr(style lipgloss.Style) *lipgloss.Style {
	return &style
}
