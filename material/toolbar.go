// SPDX-License-Identifier: Unlicense OR MIT

package material

import (
	"gioui.org/layout"
	"gioui.org/widget/material"

	"gioui.org/x/toolbar"
)

// ToolbarStyle draws a toolbar: the inline forms of its items packed
// along the axis, with an overflow indicator when not everything fits.
type ToolbarStyle struct {
	// Toolbar is the container to draw.
	Toolbar *toolbar.Toolbar

	theme *material.Theme
}

// Toolbar constructs a ToolbarStyle from the theme palette.
func Toolbar(th *material.Theme, tb *toolbar.Toolbar) ToolbarStyle {
	return ToolbarStyle{
		Toolbar: tb,
		theme:   th,
	}
}

// Layout measures and places the bar, recording the split between
// inline items and the overflow suffix in the toolbar State.
func (s ToolbarStyle) Layout(gtx layout.Context) layout.Dimensions {
	tb := s.Toolbar
	children := make([]toolbar.OverflowChild, 0, tb.Items.Len()+1)
	for i := 0; i < tb.Items.Len(); i++ {
		it := tb.Items.At(i)
		children = append(children, toolbar.Inline(Item(s.theme, it).Layout))
	}
	children = append(children, toolbar.Indicator(Indicator(s.theme, &tb.Menu).Layout))
	dims := toolbar.Overflow{
		Axis:     tb.Axis,
		MaxItems: tb.MaxItems,
	}.Layout(gtx, &tb.State, children...)
	if !tb.State.Overflowing() {
		tb.Menu.Dismiss()
	}
	return dims
}
