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
	"gioui.org/widget"
	"gioui.org/widget/material"

	"golang.org/x/exp/shiny/materialdesign/icons"

	"gioui.org/x/toolbar"
)

// IndicatorStyle draws the overflow indicator, an icon button that
// opens and closes the overflow menu.
type IndicatorStyle struct {
	// Menu is the menu state toggled by the indicator.
	Menu *toolbar.Menu

	// Color is the icon color.
	Color color.NRGBA
	// Icon is the indicator glyph.
	Icon *widget.Icon
	// Size is the icon size.
	Size  unit.Dp
	Inset layout.Inset
	// Description is the accessibility label.
	Description string
}

// Indicator constructs an IndicatorStyle from the theme palette.
func Indicator(th *material.Theme, menu *toolbar.Menu) IndicatorStyle {
	return IndicatorStyle{
		Menu:        menu,
		Color:       th.Palette.Fg,
		Icon:        moreIcon,
		Size:        unit.Dp(24),
		Inset:       layout.UniformInset(unit.Dp(8)),
		Description: "More",
	}
}

// Layout draws the indicator and updates the menu open state from its
// clicks.
func (s IndicatorStyle) Layout(gtx layout.Context) layout.Dimensions {
	s.Menu.Update()
	return s.Menu.Click.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		semantic.Button.Add(gtx.Ops)
		if d := s.Description; d != "" {
			semantic.DescriptionOp(d).Add(gtx.Ops)
		}
		col := s.Color
		if gtx.Queue == nil {
			col = mulAlpha(col, 0x61)
		}
		return layout.Stack{Alignment: layout.Center}.Layout(gtx,
			layout.Expanded(func(gtx layout.Context) layout.Dimensions {
				if s.Menu.Open() || s.Menu.Click.Hovered() {
					defer clip.Ellipse(image.Rectangle{Max: gtx.Constraints.Min}).Push(gtx.Ops).Pop()
					paint.Fill(gtx.Ops, mulAlpha(col, 0x1f))
				}
				return layout.Dimensions{Size: gtx.Constraints.Min}
			}),
			layout.Stacked(func(gtx layout.Context) layout.Dimensions {
				return s.Inset.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
					size := gtx.Dp(s.Size)
					if s.Icon != nil {
						cgtx := gtx
						cgtx.Constraints.Min = image.Point{X: size}
						s.Icon.Layout(cgtx, col)
					}
					return layout.Dimensions{
						Size: image.Point{X: size, Y: size},
					}
				})
			}),
		)
	})
}

var moreIcon = mustIcon(widget.NewIcon(icons.NavigationMoreVert))

func mustIcon(ic *widget.Icon, err error) *widget.Icon {
	if err != nil {
		panic(err)
	}
	return ic
}
