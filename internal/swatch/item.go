// Package swatch provides the quick-pick colors offered next to a color field:
// a fixed preset palette plus the custom colors a user picked earlier.
package swatch

import "github.com/alexisbeaulieu97/colorfield/internal/domain/color"

// ItemKind distinguishes palette entries from menu actions.
type ItemKind int

const (
	// ItemPreset is a color from the configured palette.
	ItemPreset ItemKind = iota
	// ItemCustomColor is a previously picked custom color.
	ItemCustomColor
	// ItemCustom opens the interactive picker.
	ItemCustom
	// ItemRemove clears the color.
	ItemRemove
)

// Action values carried by the non-color menu entries.
const (
	ActionCustom = "custom"
	ActionRemove = "remove"
)

// Item is one entry of the swatch menu.
type Item struct {
	Kind  ItemKind
	Label string
	Value string
}

// Color returns the color carried by a palette entry.
func (i Item) Color() (color.Value, bool) {
	switch i.Kind {
	case ItemPreset, ItemCustomColor:
		return color.Value(i.Value), true
	default:
		return color.None, false
	}
}

// Preset is a named palette color.
type Preset struct {
	Name  string
	Value color.Value
}

// FetchFunc delivers the menu items to callback.
type FetchFunc func(callback func([]Item))
