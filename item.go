// SPDX-License-Identifier: Unlicense OR MIT

package toolbar

import (
	"gioui.org/layout"
	"gioui.org/widget"
)

// Kind discriminates the capability of an Item.
type Kind uint8

const (
	// KindClickable items invoke an action when clicked.
	KindClickable Kind = iota
	// KindToggleable items carry a boolean value flipped on click.
	KindToggleable
	// KindCustom items supply their own inline and menu forms.
	KindCustom
)

// MenuWidget lays out the overflow menu form of a custom item. Calling
// dismiss closes the menu.
type MenuWidget func(gtx layout.Context, dismiss func()) layout.Dimensions

// Item is a single toolbar entry. An Item carries interaction state
// only; drawing its inline and menu forms is left to style packages
// such as toolbar/material.
type Item struct {
	Kind Kind

	// Click is the click state of a KindClickable item.
	Click *widget.Clickable
	// Toggle is the value of a KindToggleable item.
	Toggle *widget.Bool
	// Icon and Label describe clickable and toggleable items.
	Icon  *widget.Icon
	Label string
	// Disabled blocks input to the item.
	Disabled bool

	// Inline and Menu are the two forms of a KindCustom item.
	Inline layout.Widget
	Menu   MenuWidget
}

// ClickableItem returns an item that reports clicks through click.
func ClickableItem(click *widget.Clickable, icon *widget.Icon, label string) Item {
	return Item{Kind: KindClickable, Click: click, Icon: icon, Label: label}
}

// ToggleableItem returns an item that flips toggle when clicked.
func ToggleableItem(toggle *widget.Bool, icon *widget.Icon, label string) Item {
	return Item{Kind: KindToggleable, Toggle: toggle, Icon: icon, Label: label}
}

// CustomItem returns an item rendered by inline in the bar and by menu
// in the overflow menu.
func CustomItem(inline layout.Widget, menu MenuWidget) Item {
	return Item{Kind: KindCustom, Inline: inline, Menu: menu}
}

// Sequence is an ordered collection of items. Order is significant: it
// is both the inline layout order and the overflow menu order. A
// sequence is declared as a whole whenever its content changes and is
// read-only during a layout pass.
type Sequence struct {
	items []Item

	key   any
	valid bool
}

// Rebuild re-declares the sequence through declare when key differs
// from the key of the previous call. key must be comparable. Calling
// Rebuild with an unchanged key leaves the sequence as it is, so it is
// cheap to call once per frame.
func (s *Sequence) Rebuild(key any, declare func(*Sequence)) {
	if s.valid && s.key == key {
		return
	}
	s.items = s.items[:0]
	s.key = key
	s.valid = true
	declare(s)
}

// Add appends items to the sequence.
func (s *Sequence) Add(items ...Item) {
	s.items = append(s.items, items...)
}

// Len returns the number of declared items.
func (s *Sequence) Len() int {
	return len(s.items)
}

// At returns the item at index i.
func (s *Sequence) At(i int) *Item {
	return &s.items[i]
}

// Overflowed returns the overflow suffix according to state, the items
// from state.VisibleItems to the end. The start is clamped to the
// sequence length, so a state restored from an earlier run with more
// items never slices out of bounds.
func (s *Sequence) Overflowed(state *State) []Item {
	start := state.VisibleItems()
	if start > len(s.items) {
		start = len(s.items)
	}
	return s.items[start:]
}
