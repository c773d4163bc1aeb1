// Package group coordinates the selection value of radio and checkbox
// groups. The coordinator is the only writer of a group's Context; members
// read it after the event that changed it has been handled.
package group

import (
	"fmt"

	"github.com/atomicstack/composite-widgets/internal/a11y"
	"github.com/atomicstack/composite-widgets/internal/collection"
	"github.com/atomicstack/composite-widgets/internal/logging/events"
	"github.com/atomicstack/composite-widgets/internal/nav"
)

// Config describes a group. A non-nil Value makes the group controlled.
type Config struct {
	ID           string
	Mode         Mode
	Disabled     bool
	ReadOnly     bool
	Value        *Value
	DefaultValue *Value
	OnChange     func(Value)
	// Indeterminate marks members displayed as mixed. Display only.
	Indeterminate map[string]bool
	// Controls lists, per member, the ids whose state it summarises.
	Controls   map[string][]string
	LabelledBy string
	Advisor    a11y.Advisor
}

// Context is the state shared by every member of one group.
type Context struct {
	Disabled      bool
	ReadOnly      bool
	ForcedTabStop string
	Value         Value
}

// Coordinator owns the selection of one group.
type Coordinator struct {
	cfg      Config
	members  collection.Accessor
	internal Value
}

// New validates the group and its members. Every member needs a unique,
// non-empty id.
func New(cfg Config, members collection.Accessor) (*Coordinator, error) {
	if cfg.ID == "" {
		cfg.ID = "group"
	}
	if err := a11y.ValidateLabel(cfg.ID, cfg.LabelledBy); err != nil {
		return nil, err
	}
	c := &Coordinator{cfg: cfg, members: members, internal: Empty(cfg.Mode)}
	if cfg.Value != nil && cfg.Value.Mode() != cfg.Mode {
		return nil, &a11y.ConfigError{Widget: cfg.ID, Field: "value", Reason: fmt.Sprintf("%s value for %s group", cfg.Value.Mode(), cfg.Mode)}
	}
	if cfg.DefaultValue != nil {
		if cfg.DefaultValue.Mode() != cfg.Mode {
			return nil, &a11y.ConfigError{Widget: cfg.ID, Field: "defaultValue", Reason: fmt.Sprintf("%s value for %s group", cfg.DefaultValue.Mode(), cfg.Mode)}
		}
		c.internal = *cfg.DefaultValue
		if cfg.Value != nil {
			c.advise(a11y.CodeControlledAndDefault, "defaultValue is ignored while value is supplied")
		}
	}
	if cfg.Value != nil {
		c.internal = *cfg.Value
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Validate re-checks the members, for use after the collection changes.
func (c *Coordinator) Validate() error {
	items := c.rawItems()
	seen := make(map[string]struct{}, len(items))
	value := c.Value()
	for i, item := range items {
		if item.ID == "" {
			return &a11y.ConfigError{Widget: c.cfg.ID, Field: "member id", Reason: fmt.Sprintf("member %d (%q) has no id", i, item.Text)}
		}
		if _, dup := seen[item.ID]; dup {
			return &a11y.ConfigError{Widget: c.cfg.ID, Field: "member id", Reason: fmt.Sprintf("duplicate id %q", item.ID)}
		}
		seen[item.ID] = struct{}{}
		if item.Text == "" {
			c.advise(a11y.CodeMissingName, fmt.Sprintf("member %q has no text", item.ID))
		}
		if item.Disabled && c.cfg.Disabled {
			c.advise(a11y.CodeRedundantProp, fmt.Sprintf("member %q is disabled inside a disabled group", item.ID))
		}
		if item.Selected && !value.Has(item.ID) {
			c.advise(a11y.CodeConflictingProp, fmt.Sprintf("member %q is marked selected but the group value is %s", item.ID, value))
		}
	}
	for id, mixed := range c.cfg.Indeterminate {
		if mixed && len(c.cfg.Controls[id]) == 0 {
			c.advise(a11y.CodeMissingControls, fmt.Sprintf("member %q is indeterminate without controlled targets", id))
		}
	}
	return nil
}

// ID returns the group id.
func (c *Coordinator) ID() string { return c.cfg.ID }

// Mode returns the selection mode.
func (c *Coordinator) Mode() Mode { return c.cfg.Mode }

// Controlled reports whether the value is supplied externally.
func (c *Coordinator) Controlled() bool { return c.cfg.Value != nil }

// Value returns the authoritative selection.
func (c *Coordinator) Value() Value {
	if c.cfg.Value != nil {
		return *c.cfg.Value
	}
	return c.internal
}

// SetControlled supplies the external value for the next render. Passing nil
// hands ownership back to the coordinator, which keeps the last mirrored value.
func (c *Coordinator) SetControlled(v *Value) error {
	if v != nil && v.Mode() != c.cfg.Mode {
		return &a11y.ConfigError{Widget: c.cfg.ID, Field: "value", Reason: fmt.Sprintf("%s value for %s group", v.Mode(), c.cfg.Mode)}
	}
	if v == nil {
		c.cfg.Value = nil
		return nil
	}
	mirrored := *v
	c.cfg.Value = &mirrored
	c.internal = mirrored
	return nil
}

// SetIndeterminate replaces the display-only mixed states.
func (c *Coordinator) SetIndeterminate(mixed map[string]bool) {
	c.cfg.Indeterminate = mixed
}

func (c *Coordinator) clearIndeterminate(id string) {
	mixed := make(map[string]bool, len(c.cfg.Indeterminate))
	for k, v := range c.cfg.Indeterminate {
		if k != id {
			mixed[k] = v
		}
	}
	c.cfg.Indeterminate = mixed
}

// SetDisabled toggles the group-level disabled flag.
func (c *Coordinator) SetDisabled(disabled bool) { c.cfg.Disabled = disabled }

// SetReadOnly toggles the group-level read-only flag.
func (c *Coordinator) SetReadOnly(readOnly bool) { c.cfg.ReadOnly = readOnly }

// Activate applies the activation of member id and reports whether a change
// was committed. Single mode ignores the already selected member; multiple
// mode toggles, except that an indeterminate member always becomes checked.
func (c *Coordinator) Activate(id string) bool {
	if c.cfg.Disabled || c.cfg.ReadOnly {
		events.Group.Ignored(c.cfg.ID, id, "group-inert")
		return false
	}
	items := c.rawItems()
	idx := collection.IndexOf(items, id)
	if idx < 0 || !items[idx].Available() {
		events.Group.Ignored(c.cfg.ID, id, "unavailable")
		return false
	}
	current := c.Value()
	var next Value
	switch c.cfg.Mode {
	case ModeMultiple:
		if c.cfg.Indeterminate[id] {
			// The mixed state is resolved by this click even when id is
			// already in the set, so the caller is always notified.
			c.clearIndeterminate(id)
			c.commit(current.with(id))
			return true
		}
		switch {
		case current.Has(id):
			next = current.without(id)
		default:
			next = current.with(id)
		}
	default:
		next = Single(id)
	}
	if next.Equal(current) {
		events.Group.Ignored(c.cfg.ID, id, "unchanged")
		return false
	}
	c.commit(next)
	return true
}

// Clear deselects everything.
func (c *Coordinator) Clear() bool {
	if c.cfg.Disabled || c.cfg.ReadOnly {
		return false
	}
	next := Empty(c.cfg.Mode)
	if next.Equal(c.Value()) {
		return false
	}
	c.commit(next)
	return true
}

// Set commits v as the whole new value, for controls that act on several
// members at once such as a select-all checkbox.
func (c *Coordinator) Set(v Value) (bool, error) {
	if v.Mode() != c.cfg.Mode {
		return false, &a11y.ConfigError{Widget: c.cfg.ID, Field: "value", Reason: fmt.Sprintf("%s value for %s group", v.Mode(), c.cfg.Mode)}
	}
	if c.cfg.Disabled || c.cfg.ReadOnly {
		events.Group.Ignored(c.cfg.ID, v.String(), "group-inert")
		return false, nil
	}
	if v.Equal(c.Value()) {
		return false, nil
	}
	c.commit(v)
	return true, nil
}

// commit computes, notifies, then stores. A controlled group does not store:
// the caller accepts the change by supplying the new value.
func (c *Coordinator) commit(next Value) {
	if c.cfg.OnChange != nil {
		c.cfg.OnChange(next)
	}
	events.Group.Commit(c.cfg.ID, next.IDs(), c.Controlled())
	if c.cfg.Value == nil {
		c.internal = next
	}
}

// TabStop returns the one member reachable by sequential tab navigation: the
// selected member when it is available, otherwise the first available one.
// Multiple-mode groups and disabled groups have no forced tab stop.
func (c *Coordinator) TabStop() string {
	if c.cfg.Mode != ModeSingle || c.cfg.Disabled {
		return ""
	}
	items := c.rawItems()
	if id, ok := c.Value().Selected(); ok {
		if idx := collection.IndexOf(items, id); idx >= 0 && items[idx].Available() {
			return id
		}
	}
	if idx := nav.FindAvailable(items, 0, nav.Forward, nil); idx >= 0 {
		return items[idx].ID
	}
	return ""
}

// Context returns the shared group state.
func (c *Coordinator) Context() Context {
	return Context{
		Disabled:      c.cfg.Disabled,
		ReadOnly:      c.cfg.ReadOnly,
		ForcedTabStop: c.TabStop(),
		Value:         c.Value(),
	}
}

// State returns the declarative state of member id.
func (c *Coordinator) State(id string) collection.State {
	items := c.rawItems()
	idx := collection.IndexOf(items, id)
	mixed := c.cfg.Indeterminate[id]
	st := collection.State{
		Selected:      !mixed && c.Value().Has(id),
		Indeterminate: mixed,
		Disabled:      c.cfg.Disabled,
	}
	if idx >= 0 {
		st.Disabled = st.Disabled || items[idx].Disabled
	}
	st.TabStop = id != "" && id == c.TabStop()
	return st
}

// Items returns the members with Selected reflecting the group value, so that
// navigation resumes at the selection.
func (c *Coordinator) Items() []collection.Item {
	items := collection.Clone(c.rawItems())
	value := c.Value()
	for i := range items {
		items[i].Selected = value.Has(items[i].ID)
		if c.cfg.Disabled {
			items[i].Disabled = true
		}
	}
	return items
}

// SelectedItems returns the selected members in display order.
func (c *Coordinator) SelectedItems() []collection.Item {
	value := c.Value()
	var selected []collection.Item
	for _, item := range c.rawItems() {
		if value.Has(item.ID) {
			selected = append(selected, item)
		}
	}
	return selected
}

func (c *Coordinator) rawItems() []collection.Item {
	if c.members == nil {
		return nil
	}
	return c.members.Items()
}

func (c *Coordinator) advise(code, detail string) {
	a11y.Report(c.cfg.Advisor, a11y.Advisory{Widget: c.cfg.ID, Code: code, Detail: detail})
}
