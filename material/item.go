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

// ItemStyle draws the inline form of a toolbar item.
type ItemStyle struct {
	// Item is the state to draw.
	Item *toolbar.Item

	// Color is the icon color.
	Color color.NRGBA
	// ActiveColor is the icon color of a toggled item.
	ActiveColor color.NRGBA
	// Size is the icon size.
	Size  unit.Dp
	Inset layout.Inset
}

// Item constructs an ItemStyle from the theme palette.
func Item(th *material.Theme, item *toolbar.Item) ItemStyle {
	return ItemStyle{
		Item:        item,
		Color:       th.Palette.Fg,
		ActiveColor: th.Palette.ContrastBg,
		Size:        unit.Dp(24),
		Inset:       layout.UniformInset(unit.Dp(8)),
	}
}

// Layout draws the item and updates its state.
func (s ItemStyle) Layout(gtx layout.Context) layout.Dimensions {
	it := s.Item
	if it.Disabled {
		gtx = gtx.Disabled()
	}
	switch it.Kind {
	case toolbar.KindClickable:
		return it.Click.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
			semantic.Button.Add(gtx.Ops)
			return s.icon(gtx, it.Click.Hovered() || it.Click.Focused(), s.Color)
		})
	case toolbar.KindToggleable:
		col := s.Color
		if it.Toggle.Value {
			col = s.ActiveColor
		}
		return it.Toggle.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
			semantic.Switch.Add(gtx.Ops)
			return s.icon(gtx, it.Toggle.Hovered(), col)
		})
	case toolbar.KindCustom:
		return it.Inline(gtx)
	default:
		panic("unreachable")
	}
}

// icon draws the item icon over a hover underlay.
func (s ItemStyle) icon(gtx layout.Context, hovered bool, col color.NRGBA) layout.Dimensions {
	if gtx.Queue == nil {
		col = mulAlpha(col, 0x61)
	}
	return layout.Stack{Alignment: layout.Center}.Layout(gtx,
		layout.Expanded(func(gtx layout.Context) layout.Dimensions {
			if hovered {
				defer clip.Ellipse(image.Rectangle{Max: gtx.Constraints.Min}).Push(gtx.Ops).Pop()
				paint.Fill(gtx.Ops, mulAlpha(col, 0x1f))
			}
			return layout.Dimensions{Size: gtx.Constraints.Min}
		}),
		layout.Stacked(func(gtx layout.Context) layout.Dimensions {
			return s.Inset.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
				size := gtx.Dp(s.Size)
				if s.Item.Icon != nil {
					cgtx := gtx
					cgtx.Constraints.Min = image.Point{X: size}
					s.Item.Icon.Layout(cgtx, col)
				}
				return layout.Dimensions{
					Size: image.Point{X: size, Y: size},
				}
			})
		}),
	)
}

// mulAlpha scales the alpha channel of c by alpha/255.
func mulAlpha(c color.NRGBA, alpha uint8) color.NRGBA {
	c.A = uint8(uint32(c.A) * uint32(alpha) / 0xff)
	return c
}
