package ui

import (
	"fmt"
	"strings"

	"github.com/atomicstack/composite-widgets/internal/collection"
	"github.com/atomicstack/composite-widgets/internal/input"
	uistate "github.com/atomicstack/composite-widgets/internal/ui/state"
	"github.com/atomicstack/composite-widgets/internal/widget"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
)

const (
	switcherSeparator = "│"
	columnGap         = 2
	minVisibleRows    = 3
	// rows used by everything but the item columns
	reservedRows = 12
)

type hitKind int

const (
	hitRow hitKind = iota
	hitTrigger
	hitWidget
	hitSnackbar
)

// hit is a screen region recorded while rendering. x1 < 0 spans the rest of
// the line.
type hit struct {
	kind    hitKind
	y       int
	x0, x1  int
	widget  int
	pointer widget.Pointer
	anchor  string
}

func (h hit) contains(x, y int) bool {
	if y != h.y || x < h.x0 {
		return false
	}
	return h.x1 < 0 || x < h.x1
}

type frame struct {
	lines []string
	hits  []hit
}

func (f *frame) add(line string) int {
	f.lines = append(f.lines, line)
	return len(f.lines) - 1
}

func (f *frame) block(text string) {
	for _, line := range strings.Split(text, "\n") {
		f.add(line)
	}
}

func render(style *lipgloss.Style, text string) string {
	if style == nil || text == "" {
		return text
	}
	return style.Render(text)
}

// View implements tea.Model.
func (m *Model) View() string {
	f := &frame{}
	m.hints = make(map[string]string)
	m.renderSwitcher(f)
	f.add("")

	w := m.Current()
	v := w.View()
	f.add(render(styles.Header, w.Title()))
	switch typed := w.(type) {
	case *widget.Select:
		arrow := "▾"
		if v.Expanded {
			arrow = "▴"
		}
		y := f.add(fmt.Sprintf("[ %s %s ]", v.Header, arrow))
		f.hits = append(f.hits, hit{kind: hitTrigger, y: y, x1: -1, pointer: widget.Pointer{Level: typed.TriggerLevel()}})
	case *widget.Combobox:
		f.add(m.filterPrompt(v.Header, v.Caret))
	}

	if v.Horizontal {
		m.renderTabs(f, w, v)
	} else {
		m.renderLevels(f, w, v)
	}
	if v.Panel != "" {
		f.add("")
		f.block(render(styles.Panel, v.Panel))
	}
	if v.Summary != "" {
		f.add(render(styles.Info, v.Summary))
	}
	if m.tooltip.Open() {
		if hint, ok := m.hints[m.tooltip.Anchor()]; ok {
			f.add(render(styles.Tooltip, hint))
		}
	}
	if msg, ok := m.snackbar.Current(); ok {
		f.add("")
		y := f.add(render(styles.Snackbar, msg.Text))
		f.hits = append(f.hits, hit{kind: hitSnackbar, y: y, x1: -1})
	}
	if m.errMsg != "" {
		f.add(render(styles.Error, "Error: "+m.errMsg))
	}
	if m.showFooter {
		f.add("")
		f.add(render(styles.Footer, m.footerText()))
	}

	m.hits = f.hits
	lines := f.lines
	if m.height > 0 && len(lines) > m.height {
		lines = lines[:m.height]
	}
	return strings.Join(applyWidth(lines, m.width), "\n")
}

func (m *Model) renderSwitcher(f *frame) {
	y := len(f.lines)
	var b strings.Builder
	x := 0
	for i, w := range m.widgets {
		if i > 0 {
			b.WriteString(switcherSeparator)
			x += lipgloss.Width(switcherSeparator)
		}
		style := styles.Tab
		if i == m.current {
			style = styles.ActiveTab
		}
		seg := render(style, w.Title())
		width := lipgloss.Width(seg)
		f.hits = append(f.hits, hit{kind: hitWidget, y: y, x0: x, x1: x + width, widget: i})
		b.WriteString(seg)
		x += width
	}
	f.add(b.String())
}

func (m *Model) renderTabs(f *frame, w widget.Widget, v widget.View) {
	for _, level := range v.Levels {
		y := len(f.lines)
		var b strings.Builder
		x := 0
		for _, row := range level.Rows {
			style := styles.Tab
			switch {
			case row.Item.Disabled:
				style = styles.DisabledItem
			case row.State.Active && row.State.FocusedVisible:
				style = styles.FocusRing
			case row.State.Selected:
				style = styles.ActiveTab
			case row.State.TabStop:
				style = styles.TabStop
			}
			seg := render(style, " "+row.Item.Text+" ")
			width := lipgloss.Width(seg)
			anchor := m.anchor(w, level.ID, row.Item)
			f.hits = append(f.hits, hit{
				kind:    hitRow,
				y:       y,
				x0:      x,
				x1:      x + width,
				pointer: widget.Pointer{Level: level.ID, Item: row.Item.ID},
				anchor:  anchor,
			})
			m.hints[anchor] = describe(row)
			b.WriteString(seg)
			x += width
		}
		f.add(b.String())
	}
}

type column struct {
	lines []string
	width int
	rows  map[int]hit
}

func (m *Model) renderLevels(f *frame, w widget.Widget, v widget.View) {
	if len(v.Levels) == 0 {
		return
	}
	maxRows := m.maxVisibleRows()
	columns := make([]column, 0, len(v.Levels))
	for _, level := range v.Levels {
		columns = append(columns, m.renderLevel(w, level, maxRows, len(v.Levels) > 1))
	}
	height := 0
	for _, col := range columns {
		height = max(height, len(col.lines))
	}
	top := len(f.lines)
	for r := 0; r < height; r++ {
		var b strings.Builder
		x := 0
		for i, col := range columns {
			cell := ""
			if r < len(col.lines) {
				cell = col.lines[r]
			}
			if h, ok := col.rows[r]; ok {
				h.y = top + r
				h.x0 = x
				h.x1 = x + col.width
				if i == len(columns)-1 {
					h.x1 = -1
				}
				f.hits = append(f.hits, h)
			}
			b.WriteString(cell)
			if i < len(columns)-1 {
				if pad := col.width - lipgloss.Width(cell); pad > 0 {
					b.WriteString(strings.Repeat(" ", pad))
				}
			}
			x += col.width
		}
		f.add(strings.TrimRight(b.String(), " "))
	}
}

func (m *Model) renderLevel(w widget.Widget, level widget.Level, maxRows int, titled bool) column {
	col := column{rows: make(map[int]hit)}
	if titled {
		title := level.ID
		style := styles.Level
		if level.Receiving {
			title = "● " + title
			style = styles.ReceivingLevel
		}
		col.lines = append(col.lines, render(style, title))
	}
	if len(level.Rows) == 0 {
		msg := "(no entries)"
		if c, ok := w.(*widget.Combobox); ok && c.Query() != "" {
			msg = fmt.Sprintf("No matches for %q", c.Query())
			if near, ok := c.Suggestion(); ok {
				msg += fmt.Sprintf(" (did you mean %s?)", near.Text)
			}
		}
		col.lines = append(col.lines, render(styles.Info, msg))
	}
	active := -1
	for i, row := range level.Rows {
		if row.State.Active {
			active = i
		}
	}
	vp := m.viewport(w.ID() + "/" + level.ID)
	vp.EnsureVisible(active, len(level.Rows), maxRows)
	start, end := vp.Window(len(level.Rows), maxRows)
	for _, row := range level.Rows[start:end] {
		anchor := m.anchor(w, level.ID, row.Item)
		m.hints[anchor] = describe(row)
		col.rows[len(col.lines)] = hit{
			kind:    hitRow,
			pointer: widget.Pointer{Level: level.ID, Item: row.Item.ID},
			anchor:  anchor,
		}
		col.lines = append(col.lines, m.renderRow(row))
	}
	for _, line := range col.lines {
		col.width = max(col.width, lipgloss.Width(line))
	}
	col.width += columnGap
	return col
}

func (m *Model) renderRow(row widget.Row) string {
	item, st := row.Item, row.State
	mark := ""
	switch item.Kind {
	case collection.KindCheckGroupMember:
		switch {
		case st.Indeterminate:
			mark = "[-] "
		case st.Selected:
			mark = "[x] "
		default:
			mark = "[ ] "
		}
	case collection.KindRadioGroupMember:
		mark = "( ) "
		if st.Selected {
			mark = "(•) "
		}
	case collection.KindOption:
		mark = "  "
		if st.Selected {
			mark = "✓ "
		}
	}
	text := item.Text
	if item.IsSubmenuTrigger() {
		arrow := "›"
		if m.dir == input.RTL {
			arrow = "‹"
		}
		text += " " + arrow
	}

	indicatorStyle := styles.ItemIndicator
	bodyStyle := styles.Item
	switch {
	case item.Disabled:
		bodyStyle = styles.DisabledItem
	case st.Active && st.FocusedVisible:
		indicatorStyle = styles.ActiveItemIndicator
		bodyStyle = styles.FocusRing
	case st.Active:
		indicatorStyle = styles.ActiveItemIndicator
		bodyStyle = styles.ActiveItem
	}
	if mark != "" && st.Selected && !item.Disabled && !st.Active {
		mark = render(styles.Mark, mark)
	}
	return render(indicatorStyle, "▌") + " " + mark + render(bodyStyle, text)
}

func describe(row widget.Row) string {
	parts := []string{row.Item.Kind.String()}
	if row.State.Selected {
		parts = append(parts, "selected")
	}
	if row.State.Indeterminate {
		parts = append(parts, "mixed")
	}
	if row.Item.Disabled {
		parts = append(parts, "disabled")
	}
	if row.Item.IsSubmenuTrigger() {
		parts = append(parts, "opens "+row.Item.Child)
	}
	return fmt.Sprintf("%s · %s", row.Item.Text, strings.Join(parts, ", "))
}

func (m *Model) anchor(w widget.Widget, level string, item collection.Item) string {
	return w.ID() + "/" + level + "/" + item.ID
}

func (m *Model) viewport(id string) *uistate.Viewport {
	vp, ok := m.viewports[id]
	if !ok {
		vp = &uistate.Viewport{}
		m.viewports[id] = vp
	}
	return vp
}

func (m *Model) hitAt(x, y int) (hit, bool) {
	for _, h := range m.hits {
		if h.contains(x, y) {
			return h, true
		}
	}
	return hit{}, false
}

func (m *Model) maxVisibleRows() int {
	if m.height <= 0 {
		return -1
	}
	remain := m.height - reservedRows
	if remain < minVisibleRows {
		return minVisibleRows
	}
	return remain
}

func (m *Model) footerText() string {
	bindings := m.keys.Help(m.dir)
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		help := b.Help()
		parts = append(parts, help.Key+" "+help.Desc)
	}
	return strings.Join(parts, "  ")
}

// filterPrompt renders the combobox query with the caret at pos.
func (m *Model) filterPrompt(text string, pos int) string {
	if styles.Cursor != nil {
		m.filterCursor.Style = styles.Cursor.Copy()
	}
	if styles.Filter != nil {
		m.filterCursor.TextStyle = styles.Filter.Copy()
	} else {
		m.filterCursor.TextStyle = lipgloss.Style{}
	}
	prompt := render(styles.FilterPrompt, "» ")
	if text == "" {
		placeholder := []rune("(type to filter)")
		if styles.FilterPlaceholder != nil {
			m.filterCursor.TextStyle = styles.FilterPlaceholder.Copy()
		}
		caret := m.renderFilterCursor(string(placeholder[0]))
		return prompt + caret + render(styles.FilterPlaceholder, string(placeholder[1:]))
	}
	runes := []rune(text)
	pos = max(0, min(pos, len(runes)))
	before := render(styles.Filter, string(runes[:pos]))
	caretRune := " "
	after := ""
	if pos < len(runes) {
		caretRune = string(runes[pos])
		after = render(styles.Filter, string(runes[pos+1:]))
	}
	return prompt + before + m.renderFilterCursor(caretRune) + after
}

func (m *Model) renderFilterCursor(char string) string {
	if char == "" {
		char = " "
	}
	m.filterCursor.SetChar(char)

	base := m.filterCursor.TextStyle.Copy()
	base = base.Inline(true)

	if m.filterCursor.Blink {
		return base.Render(char)
	}

	if styles.Cursor != nil {
		cursorStyle := styles.Cursor.Copy().Inline(true)
		base = base.Inherit(cursorStyle).Blink(false)
		return base.Render(char)
	}

	return base.Reverse(true).Render(char)
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	resize, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	if !m.fixedWidth {
		m.width = resize.Width
	}
	if !m.fixedHeight {
		m.height = resize.Height
	}
	return nil
}

func applyWidth(lines []string, width int) []string {
	if width <= 0 {
		return lines
	}
	out := make([]string, len(lines))
	for i, line := range lines {
		if lipgloss.Width(line) > width {
			line = truncate.StringWithTail(line, uint(width), "…")
		}
		out[i] = line
	}
	return out
}
