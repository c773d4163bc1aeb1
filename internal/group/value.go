package group

import (
	"encoding/json"
	"fmt"
	"sort"
)

// Mode selects the selection semantics of a group.
type Mode int

const (
	// ModeSingle is a radio group: one id at most, activation never clears.
	ModeSingle Mode = iota
	// ModeMultiple is a checkbox group: activation toggles membership.
	ModeMultiple
)

func (m Mode) String() string {
	if m == ModeMultiple {
		return "multiple"
	}
	return "single"
}

// Value is the selection of a group: an optional id in single mode, a set of
// ids in multiple mode. Indeterminate display state is never part of it.
type Value struct {
	mode Mode
	ids  []string
}

// Single returns a single-mode value; an empty id means nothing selected.
func Single(id string) Value {
	if id == "" {
		return Value{mode: ModeSingle}
	}
	return Value{mode: ModeSingle, ids: []string{id}}
}

// Multiple returns a multiple-mode value holding the given ids.
func Multiple(ids ...string) Value {
	v := Value{mode: ModeMultiple}
	for _, id := range ids {
		v = v.with(id)
	}
	return v
}

// Empty returns the empty value for mode.
func Empty(mode Mode) Value {
	return Value{mode: mode}
}

func (v Value) Mode() Mode { return v.mode }

// IDs returns the selected ids in sorted order.
func (v Value) IDs() []string {
	return append([]string(nil), v.ids...)
}

// Selected returns the selected id of a single-mode value.
func (v Value) Selected() (string, bool) {
	if len(v.ids) == 0 {
		return "", false
	}
	return v.ids[0], true
}

func (v Value) Has(id string) bool {
	i := sort.SearchStrings(v.ids, id)
	return i < len(v.ids) && v.ids[i] == id
}

func (v Value) Len() int { return len(v.ids) }

func (v Value) Equal(other Value) bool {
	if v.mode != other.mode || len(v.ids) != len(other.ids) {
		return false
	}
	for i := range v.ids {
		if v.ids[i] != other.ids[i] {
			return false
		}
	}
	return true
}

func (v Value) String() string {
	if v.mode == ModeSingle {
		id, _ := v.Selected()
		return id
	}
	return fmt.Sprint(v.ids)
}

func (v Value) with(id string) Value {
	if id == "" || v.Has(id) {
		return v
	}
	ids := append(append([]string(nil), v.ids...), id)
	sort.Strings(ids)
	return Value{mode: v.mode, ids: ids}
}

func (v Value) without(id string) Value {
	if !v.Has(id) {
		return v
	}
	ids := make([]string, 0, len(v.ids)-1)
	for _, existing := range v.ids {
		if existing != id {
			ids = append(ids, existing)
		}
	}
	return Value{mode: v.mode, ids: ids}
}

// MarshalJSON encodes a single value as a string or null and a multiple value
// as an array.
func (v Value) MarshalJSON() ([]byte, error) {
	if v.mode == ModeSingle {
		if id, ok := v.Selected(); ok {
			return json.Marshal(id)
		}
		return []byte("null"), nil
	}
	ids := v.ids
	if ids == nil {
		ids = []string{}
	}
	return json.Marshal(ids)
}

// ParseValue decodes data produced by MarshalJSON for the given mode.
func ParseValue(mode Mode, data []byte) (Value, error) {
	if mode == ModeSingle {
		var id *string
		if err := json.Unmarshal(data, &id); err != nil {
			return Value{}, fmt.Errorf("decode single value: %w", err)
		}
		if id == nil {
			return Empty(ModeSingle), nil
		}
		return Single(*id), nil
	}
	var ids []string
	if err := json.Unmarshal(data, &ids); err != nil {
		return Value{}, fmt.Errorf("decode multiple value: %w", err)
	}
	return Multiple(ids...), nil
}
