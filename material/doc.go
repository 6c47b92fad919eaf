// SPDX-License-Identifier: Unlicense OR MIT

// Package material renders toolbars with the Material Design look of
// gioui.org/widget/material. Styles are transient values constructed
// from a theme and the toolbar state they draw:
//
//	th := material.NewTheme(gofont.Collection())
//	var bar toolbar.Toolbar
//	...
//	toolbarmaterial.Toolbar(th, &bar).Layout(gtx)
//
// The overflow menu is a separate style, laid out by the host wherever
// it wants the menu anchored:
//
//	if bar.Menu.Open() && bar.State.Overflowing() {
//		toolbarmaterial.Menu(th, &bar).Layout(gtx)
//	}
package material
