// SPDX-License-Identifier: Unlicense OR MIT

/*
Package toolbar implements linear toolbar containers that adapt their
content to the space they are given.

A toolbar lays out its items along one axis, in declared order. Items
that do not fit are moved to an overflow menu, summarized inline by an
overflow indicator. The split between inline items and the overflow
suffix is recomputed on every layout and recorded in a State, which a
host can persist between runs.

The measuring and packing is done by Overflow, a layout in the mold of
layout.Flex:

	var state toolbar.State
	toolbar.Overflow{Axis: layout.Horizontal}.Layout(gtx, &state,
		toolbar.Inline(item1),
		toolbar.Inline(item2),
		toolbar.Indicator(more),
	)

This package carries interaction state only. Rendering items with a
theme is left to the toolbar/material package, following the split
between gioui.org/widget and gioui.org/widget/material.
*/
package toolbar
