// SPDX-License-Identifier: Unlicense OR MIT

package toolbar

import (
	"image"

	"gioui.org/layout"
	"gioui.org/op"
)

// Overflow lays out child elements along an axis, moving the trailing
// children that do not fit into an overflow suffix. The suffix is
// summarized by an indicator child, whose main axis extent is reserved
// before any inline child is placed.
type Overflow struct {
	// Axis is the main axis, either Horizontal or Vertical.
	Axis layout.Axis
	// MaxItems caps the number of inline children. When more children
	// are declared than the cap allows, the child at index MaxItems-1
	// and all children after it overflow regardless of available
	// space. Zero or negative means no cap.
	MaxItems int
}

// OverflowChild is the descriptor for an Overflow child.
type OverflowChild struct {
	indicator bool

	widget layout.Widget

	// Scratch space.
	call op.CallOp
	dims layout.Dimensions
}

// Inline returns an Overflow child laid out in declared order for as
// long as it fits the main axis.
func Inline(widget layout.Widget) OverflowChild {
	return OverflowChild{widget: widget}
}

// Indicator returns an Overflow child that summarizes the overflow
// suffix. It is placed after the last inline child only when at least
// one inline child does not fit. Several indicator children reserve
// the maximum of their extents and are placed at the same offset.
func Indicator(widget layout.Widget) OverflowChild {
	return OverflowChild{indicator: true, widget: widget}
}

// Layout a list of children. Inline children are accepted in declared
// order until one exceeds the space left after the indicator
// reservation. The last inline child may also consume the reserved
// space, so an indicator is never shown for a lone trailing child.
// The outcome is recorded in state; state may be nil.
func (o Overflow) Layout(gtx layout.Context, state *State, children ...OverflowChild) layout.Dimensions {
	if state == nil {
		state = new(State)
	}
	cs := gtx.Constraints
	_, mainMax := axisMainConstraint(o.Axis, cs)
	_, crossMax := axisCrossConstraint(o.Axis, cs)
	loose := axisConstraints(o.Axis, 0, mainMax, 0, crossMax)
	cgtx := gtx
	// Probe the indicator children for the extent to reserve. The
	// recorded ops are discarded; indicators are measured again if
	// anything overflows.
	reserved := 0
	total := 0
	for _, child := range children {
		if !child.indicator {
			total++
			continue
		}
		macro := op.Record(gtx.Ops)
		cgtx.Constraints = loose
		dims := child.widget(cgtx)
		macro.Stop()
		if sz := axisMain(o.Axis, dims.Size); sz > reserved {
			reserved = sz
		}
	}
	remaining := mainMax - reserved
	if remaining < 0 {
		remaining = 0
	}
	state.total = total
	state.visible = 0
	visible := 0
	for i := range children {
		child := &children[i]
		if child.indicator {
			continue
		}
		last := visible == total-1
		if !last && visible == o.MaxItems-1 {
			break
		}
		macro := op.Record(gtx.Ops)
		cgtx.Constraints = loose
		dims := child.widget(cgtx)
		call := macro.Stop()
		sz := axisMain(o.Axis, dims.Size)
		// The last child may take the reserved space instead of the
		// indicator.
		hasRoom := sz <= remaining || (last && sz <= remaining+reserved)
		if !hasRoom {
			break
		}
		remaining -= sz
		if remaining < 0 {
			remaining = 0
		}
		child.call = call
		child.dims = dims
		visible++
	}
	state.visible = visible
	indicatorSize := 0
	if visible < total {
		for i := range children {
			child := &children[i]
			if !child.indicator {
				continue
			}
			macro := op.Record(gtx.Ops)
			cgtx.Constraints = axisConstraints(o.Axis, 0, remaining+reserved, 0, crossMax)
			dims := child.widget(cgtx)
			child.call = macro.Stop()
			child.dims = dims
			if sz := axisMain(o.Axis, dims.Size); sz > indicatorSize {
				indicatorSize = sz
			}
		}
	}
	// Place the accepted children consecutively from the main axis
	// origin, then the indicator.
	var maxCross int
	mainSize := 0
	placed := 0
	for i := range children {
		child := &children[i]
		if child.indicator {
			continue
		}
		if placed == visible {
			break
		}
		if c := axisCross(o.Axis, child.dims.Size); c > maxCross {
			maxCross = c
		}
		pt := axisPoint(o.Axis, mainSize, 0)
		trans := op.Offset(pt).Push(gtx.Ops)
		child.call.Add(gtx.Ops)
		trans.Pop()
		mainSize += axisMain(o.Axis, child.dims.Size)
		placed++
	}
	if visible < total {
		for i := range children {
			child := &children[i]
			if !child.indicator {
				continue
			}
			if c := axisCross(o.Axis, child.dims.Size); c > maxCross {
				maxCross = c
			}
			pt := axisPoint(o.Axis, mainSize, 0)
			trans := op.Offset(pt).Push(gtx.Ops)
			child.call.Add(gtx.Ops)
			trans.Pop()
		}
		mainSize += indicatorSize
	}
	sz := cs.Constrain(axisPoint(o.Axis, mainSize, maxCross))
	return layout.Dimensions{Size: sz}
}

func axisPoint(a layout.Axis, main, cross int) image.Point {
	if a == layout.Horizontal {
		return image.Point{X: main, Y: cross}
	}
	return image.Point{X: cross, Y: main}
}

func axisMain(a layout.Axis, sz image.Point) int {
	if a == layout.Horizontal {
		return sz.X
	}
	return sz.Y
}

func axisCross(a layout.Axis, sz image.Point) int {
	if a == layout.Horizontal {
		return sz.Y
	}
	return sz.X
}

func axisMainConstraint(a layout.Axis, cs layout.Constraints) (int, int) {
	if a == layout.Horizontal {
		return cs.Min.X, cs.Max.X
	}
	return cs.Min.Y, cs.Max.Y
}

func axisCrossConstraint(a layout.Axis, cs layout.Constraints) (int, int) {
	if a == layout.Horizontal {
		return cs.Min.Y, cs.Max.Y
	}
	return cs.Min.X, cs.Max.X
}

func axisConstraints(a layout.Axis, mainMin, mainMax, crossMin, crossMax int) layout.Constraints {
	if a == layout.Horizontal {
		return layout.Constraints{Min: image.Pt(mainMin, crossMin), Max: image.Pt(mainMax, crossMax)}
	}
	return layout.Constraints{Min: image.Pt(crossMin, mainMin), Max: image.Pt(crossMax, mainMax)}
}
