package ui

import (
	"strings"

	"github.com/atomicstack/composite-widgets/internal/collection"
	"github.com/atomicstack/composite-widgets/internal/group"
	"github.com/atomicstack/composite-widgets/internal/widget"
)

func entries(kind collection.Kind, texts ...string) []collection.Item {
	items := make([]collection.Item, 0, len(texts))
	for _, text := range texts {
		items = append(items, collection.Item{
			ID:   strings.ToLower(strings.ReplaceAll(text, " ", "-")),
			Kind: kind,
			Text: text,
		})
	}
	return items
}

func disable(items []collection.Item, id string) []collection.Item {
	for i := range items {
		if items[i].ID == id {
			items[i].Disabled = true
		}
	}
	return items
}

// buildWidgets assembles the demo pages in display order.
func (m *Model) buildWidgets(env widget.Env) ([]widget.Widget, error) {
	mnu, err := widget.NewMenu(widget.MenuConfig{
		Title:    "Menu",
		Root:     "root",
		Registry: m.registry.Collections(m.menuContext),
	}, env)
	if err != nil {
		return nil, err
	}

	toppings, err := widget.NewCheckGroup(widget.GroupConfig{
		Title:   "Toppings",
		Members: collection.Static(disable(entries(collection.KindCheckGroupMember, "Cheese", "Olives", "Peppers", "Anchovies"), "anchovies")),
		Parent:  &collection.Item{ID: "all-toppings", Kind: collection.KindCheckGroupMember, Text: "All toppings"},
		Group:   group.Config{DefaultValue: ptr(group.Multiple("cheese"))},
	}, env)
	if err != nil {
		return nil, err
	}

	size, err := widget.NewRadioGroup(widget.GroupConfig{
		Title:   "Size",
		Members: collection.Static(disable(entries(collection.KindRadioGroupMember, "Small", "Medium", "Large", "Family"), "family")),
		Group:   group.Config{DefaultValue: ptr(group.Single("medium"))},
	}, env)
	if err != nil {
		return nil, err
	}

	fruit, err := widget.NewSelect(widget.SelectConfig{
		Title:       "Fruit",
		Placeholder: "(choose a fruit)",
		Options:     collection.Static(disable(entries(collection.KindOption, "Apple", "Apricot", "Banana", "Blueberry", "Cherry", "Grape", "Mango", "Peach"), "cherry")),
	}, env)
	if err != nil {
		return nil, err
	}

	country, err := widget.NewCombobox(widget.ComboboxConfig{
		Title: "Country",
		Options: collection.Static(entries(collection.KindOption,
			"Argentina", "Australia", "Austria", "Belgium", "Brazil", "Canada", "Denmark",
			"Finland", "France", "Germany", "Iceland", "Ireland", "Italy", "Japan",
			"Netherlands", "New Zealand", "Norway", "Portugal", "Spain", "Sweden")),
	}, env)
	if err != nil {
		return nil, err
	}

	tabs, err := widget.NewTabs(widget.TabsConfig{
		Title: "Tabs",
		Tabs:  collection.Static(disable(entries(collection.KindTabGroupMember, "General", "Network", "Storage", "Advanced"), "advanced")),
		Panels: map[string]string{
			"general": "Name, language and startup options.",
			"network": "Proxy and connection settings.",
			"storage": "Cache location and size limits.",
		},
	}, env)
	if err != nil {
		return nil, err
	}

	return []widget.Widget{mnu, toppings, size, fruit, country, tabs}, nil
}

func ptr[T any](v T) *T { return &v }
