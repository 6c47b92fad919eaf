// SPDX-License-Identifier: Unlicense OR MIT

package material

import (
	"image"
	"image/color"

	"gioui.org/io/semantic"
	"gioui.org/layout"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/unit"
	"gioui.org/widget/material"

	"gioui.org/x/toolbar"
)

// MenuItemStyle draws the overflow menu form of a toolbar item: an
// icon and label row. Clicks are left for the host to consume, so an
// action observed through the item's click state is not swallowed by
// the style.
type MenuItemStyle struct {
	// Item is the state to draw.
	Item *toolbar.Item
	// Dismiss closes the menu. It is passed to custom items.
	Dismiss func()

	// Color is the icon and label color.
	Color color.NRGBA
	// ActiveColor is the icon color of a toggled item.
	ActiveColor color.NRGBA
	// IconSize is the icon size.
	IconSize unit.Dp
	TextSize unit.Sp
	Inset    layout.Inset

	theme *material.Theme
}

// MenuItem constructs a MenuItemStyle from the theme palette.
func MenuItem(th *material.Theme, item *toolbar.Item, dismiss func()) MenuItemStyle {
	return MenuItemStyle{
		Item:        item,
		Dismiss:     dismiss,
		Color:       th.Palette.Fg,
		ActiveColor: th.Palette.ContrastBg,
		IconSize:    unit.Dp(20),
		TextSize:    th.TextSize,
		Inset: layout.Inset{
			Top: unit.Dp(8), Bottom: unit.Dp(8),
			Left: unit.Dp(12), Right: unit.Dp(16),
		},
		theme: th,
	}
}

// Layout draws the row and updates the item state.
func (s MenuItemStyle) Layout(gtx layout.Context) layout.Dimensions {
	it := s.Item
	if it.Kind == toolbar.KindCustom {
		return it.Menu(gtx, s.Dismiss)
	}
	if it.Disabled {
		gtx = gtx.Disabled()
	}
	switch it.Kind {
	case toolbar.KindClickable:
		return it.Click.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
			semantic.Button.Add(gtx.Ops)
			return s.row(gtx, it.Click.Hovered() || it.Click.Focused(), s.Color)
		})
	case toolbar.KindToggleable:
		col := s.Color
		if it.Toggle.Value {
			col = s.ActiveColor
		}
		return it.Toggle.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
			semantic.Switch.Add(gtx.Ops)
			return s.row(gtx, it.Toggle.Hovered(), col)
		})
	default:
		panic("unreachable")
	}
}

func (s MenuItemStyle) row(gtx layout.Context, hovered bool, iconCol color.NRGBA) layout.Dimensions {
	textCol := s.Color
	if gtx.Queue == nil {
		iconCol = mulAlpha(iconCol, 0x61)
		textCol = mulAlpha(textCol, 0x61)
	}
	return layout.Stack{}.Layout(gtx,
		layout.Expanded(func(gtx layout.Context) layout.Dimensions {
			if hovered {
				defer clip.Rect(image.Rectangle{Max: gtx.Constraints.Min}).Push(gtx.Ops).Pop()
				paint.Fill(gtx.Ops, mulAlpha(s.Color, 0x1f))
			}
			return layout.Dimensions{Size: gtx.Constraints.Min}
		}),
		layout.Stacked(func(gtx layout.Context) layout.Dimensions {
			return s.Inset.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
				return layout.Flex{Alignment: layout.Middle}.Layout(gtx,
					layout.Rigid(func(gtx layout.Context) layout.Dimensions {
						size := gtx.Dp(s.IconSize)
						if s.Item.Icon != nil {
							cgtx := gtx
							cgtx.Constraints.Min = image.Point{X: size}
							s.Item.Icon.Layout(cgtx, iconCol)
						}
						return layout.Dimensions{
							Size: image.Point{X: size, Y: size},
						}
					}),
					layout.Rigid(layout.Spacer{Width: unit.Dp(12)}.Layout),
					layout.Rigid(func(gtx layout.Context) layout.Dimensions {
						lbl := material.Label(s.theme, s.TextSize, s.Item.Label)
						lbl.Color = textCol
						return lbl.Layout(gtx)
					}),
				)
			})
		}),
	)
}

// MenuStyle draws the overflow menu of a toolbar: the overflow suffix
// of its items, stacked vertically. The host lays it out where the
// menu should be anchored; nothing is drawn while the menu is closed
// or no item overflows.
type MenuStyle struct {
	// Toolbar is the container whose suffix is shown.
	Toolbar *toolbar.Toolbar

	// Background fills the menu surface.
	Background color.NRGBA
	Inset      layout.Inset

	theme *material.Theme
}

// Menu constructs a MenuStyle from the theme palette.
func Menu(th *material.Theme, tb *toolbar.Toolbar) MenuStyle {
	return MenuStyle{
		Toolbar:    tb,
		Background: th.Palette.Bg,
		Inset: layout.Inset{
			Top: unit.Dp(4), Bottom: unit.Dp(4),
		},
		theme: th,
	}
}

// Layout draws the menu.
func (s MenuStyle) Layout(gtx layout.Context) layout.Dimensions {
	tb := s.Toolbar
	if !tb.Menu.Open() || !tb.State.Overflowing() {
		return layout.Dimensions{}
	}
	items := tb.Overflowed()
	children := make([]layout.FlexChild, 0, len(items))
	for i := range items {
		it := &items[i]
		children = append(children, layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			return MenuItem(s.theme, it, tb.Menu.Dismiss).Layout(gtx)
		}))
	}
	return layout.Stack{}.Layout(gtx,
		layout.Expanded(func(gtx layout.Context) layout.Dimensions {
			defer clip.Rect(image.Rectangle{Max: gtx.Constraints.Min}).Push(gtx.Ops).Pop()
			paint.Fill(gtx.Ops, s.Background)
			return layout.Dimensions{Size: gtx.Constraints.Min}
		}),
		layout.Stacked(func(gtx layout.Context) layout.Dimensions {
			return s.Inset.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
				return layout.Flex{Axis: layout.Vertical}.Layout(gtx, children...)
			})
		}),
	)
}
