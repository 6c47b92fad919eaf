// SPDX-License-Identifier: Unlicense OR MIT

package toolbar

import (
	"image"
	"testing"

	"gioui.org/layout"
	"gioui.org/op"
)

func sized(w, h int) layout.Widget {
	return func(gtx layout.Context) layout.Dimensions {
		return layout.Dimensions{Size: image.Pt(w, h)}
	}
}

func testCtx(w, h int) layout.Context {
	return layout.Context{
		Ops:         new(op.Ops),
		Constraints: layout.Constraints{Max: image.Pt(w, h)},
	}
}

func TestOverflowPacking(t *testing.T) {
	var st State
	dims := Overflow{}.Layout(testCtx(100, 40), &st,
		Inline(sized(30, 20)),
		Inline(sized(30, 20)),
		Inline(sized(30, 20)),
		Inline(sized(30, 20)),
		Indicator(sized(10, 20)),
	)
	if got, want := st.VisibleItems(), 3; got != want {
		t.Errorf("got %d visible items, want %d", got, want)
	}
	if got, want := st.TotalItems(), 4; got != want {
		t.Errorf("got %d total items, want %d", got, want)
	}
	if got, want := dims.Size, image.Pt(100, 20); got != want {
		t.Errorf("got size %v, want %v", got, want)
	}
}

func TestOverflowLastItemTieBreak(t *testing.T) {
	// After the first item 5 units remain, less than the second
	// item's 10. The second item is last and fits the remaining
	// space plus the 10 units reserved for the indicator, so it is
	// placed and no indicator is shown.
	var st State
	indicatorCalls := 0
	dims := Overflow{}.Layout(testCtx(100, 40), &st,
		Inline(sized(85, 20)),
		Inline(sized(10, 20)),
		Indicator(func(gtx layout.Context) layout.Dimensions {
			indicatorCalls++
			return layout.Dimensions{Size: image.Pt(10, 20)}
		}),
	)
	if got, want := st.VisibleItems(), 2; got != want {
		t.Errorf("got %d visible items, want %d", got, want)
	}
	if st.Overflowing() {
		t.Error("overflowing after tie-break")
	}
	if got, want := dims.Size, image.Pt(95, 20); got != want {
		t.Errorf("got size %v, want %v", got, want)
	}
	// The indicator is probed for its reservation but never laid
	// out.
	if got, want := indicatorCalls, 1; got != want {
		t.Errorf("indicator measured %d times, want %d", got, want)
	}
}

func TestOverflowInteriorItemNoTieBreak(t *testing.T) {
	// Same sizes as the tie-break case with one more trailing item.
	// The second item would fit the remaining space plus the
	// reservation, but it is not last, so it overflows along with
	// everything after it. Taking the reserved space mid-sequence
	// would leave nowhere to place the indicator.
	var st State
	Overflow{}.Layout(testCtx(100, 40), &st,
		Inline(sized(85, 20)),
		Inline(sized(10, 20)),
		Inline(sized(10, 20)),
		Indicator(sized(10, 20)),
	)
	if got, want := st.VisibleItems(), 1; got != want {
		t.Errorf("got %d visible items, want %d", got, want)
	}
	if !st.Overflowing() {
		t.Error("not overflowing")
	}
}

func TestOverflowMaxItems(t *testing.T) {
	// The cap is reached at the second item, before space runs out.
	var st State
	o := Overflow{MaxItems: 2}
	o.Layout(testCtx(100, 40), &st,
		Inline(sized(20, 20)),
		Inline(sized(20, 20)),
		Inline(sized(20, 20)),
		Indicator(sized(10, 20)),
	)
	if got, want := st.VisibleItems(), 1; got != want {
		t.Errorf("got %d visible items, want %d", got, want)
	}
	if got, want := st.TotalItems(), 3; got != want {
		t.Errorf("got %d total items, want %d", got, want)
	}
}

func TestOverflowMaxItemsNotReached(t *testing.T) {
	// A cap equal to the item count never triggers, the last item
	// clause fits both items normally.
	var st State
	o := Overflow{MaxItems: 2}
	o.Layout(testCtx(100, 40), &st,
		Inline(sized(20, 20)),
		Inline(sized(20, 20)),
		Indicator(sized(10, 20)),
	)
	if got, want := st.VisibleItems(), 2; got != want {
		t.Errorf("got %d visible items, want %d", got, want)
	}
}

func TestOverflowDegenerateCap(t *testing.T) {
	var st State
	o := Overflow{MaxItems: 1}
	o.Layout(testCtx(100, 40), &st,
		Inline(sized(10, 10)),
		Inline(sized(10, 10)),
		Inline(sized(10, 10)),
		Indicator(sized(10, 10)),
	)
	if got, want := st.VisibleItems(), 0; got != want {
		t.Errorf("got %d visible items, want %d", got, want)
	}
}

func TestOverflowEmpty(t *testing.T) {
	var st State
	indicatorCalls := 0
	dims := Overflow{}.Layout(testCtx(100, 40), &st,
		Indicator(func(gtx layout.Context) layout.Dimensions {
			indicatorCalls++
			return layout.Dimensions{Size: image.Pt(10, 20)}
		}),
	)
	if st.TotalItems() != 0 || st.VisibleItems() != 0 {
		t.Errorf("got %d/%d items, want 0/0", st.VisibleItems(), st.TotalItems())
	}
	if got, want := dims.Size, image.Pt(0, 0); got != want {
		t.Errorf("got size %v, want %v", got, want)
	}
	if got, want := indicatorCalls, 1; got != want {
		t.Errorf("indicator measured %d times, want %d", got, want)
	}
}

func TestOverflowNoIndicator(t *testing.T) {
	// Without indicator children nothing is reserved.
	var st State
	dims := Overflow{}.Layout(testCtx(100, 40), &st,
		Inline(sized(50, 20)),
		Inline(sized(50, 20)),
	)
	if got, want := st.VisibleItems(), 2; got != want {
		t.Errorf("got %d visible items, want %d", got, want)
	}
	if got, want := dims.Size, image.Pt(100, 20); got != want {
		t.Errorf("got size %v, want %v", got, want)
	}
}

func TestOverflowIndicatorConstraints(t *testing.T) {
	// The indicator probe sees the loosened incoming constraints;
	// the final measurement is bounded by the leftover space plus
	// the reservation.
	var seen []layout.Constraints
	indicator := func(gtx layout.Context) layout.Dimensions {
		seen = append(seen, gtx.Constraints)
		return layout.Dimensions{Size: image.Pt(10, 20)}
	}
	var st State
	Overflow{}.Layout(testCtx(100, 40), &st,
		Inline(sized(40, 20)),
		Inline(sized(40, 20)),
		Inline(sized(40, 20)),
		Indicator(indicator),
	)
	if got, want := st.VisibleItems(), 2; got != want {
		t.Errorf("got %d visible items, want %d", got, want)
	}
	if got, want := len(seen), 2; got != want {
		t.Fatalf("indicator measured %d times, want %d", got, want)
	}
	probe := layout.Constraints{Max: image.Pt(100, 40)}
	if seen[0] != probe {
		t.Errorf("probe constraints %v, want %v", seen[0], probe)
	}
	// 10 units were left after two accepted items, plus the 10
	// reserved.
	final := layout.Constraints{Max: image.Pt(20, 40)}
	if seen[1] != final {
		t.Errorf("final constraints %v, want %v", seen[1], final)
	}
}

func TestOverflowStopsMeasuring(t *testing.T) {
	// Children after the first rejected one are never measured.
	calls := 0
	counted := func(gtx layout.Context) layout.Dimensions {
		calls++
		return layout.Dimensions{Size: image.Pt(30, 20)}
	}
	var st State
	Overflow{}.Layout(testCtx(100, 40), &st,
		Inline(sized(60, 20)),
		Inline(sized(60, 20)),
		Inline(counted),
		Indicator(sized(10, 20)),
	)
	if got, want := st.VisibleItems(), 1; got != want {
		t.Errorf("got %d visible items, want %d", got, want)
	}
	if calls != 0 {
		t.Errorf("child after the rejected one measured %d times", calls)
	}
}

func TestOverflowVertical(t *testing.T) {
	var st State
	dims := Overflow{Axis: layout.Vertical}.Layout(testCtx(40, 100), &st,
		Inline(sized(20, 30)),
		Inline(sized(20, 30)),
		Inline(sized(20, 30)),
		Inline(sized(20, 30)),
		Indicator(sized(20, 10)),
	)
	if got, want := st.VisibleItems(), 3; got != want {
		t.Errorf("got %d visible items, want %d", got, want)
	}
	if got, want := dims.Size, image.Pt(20, 100); got != want {
		t.Errorf("got size %v, want %v", got, want)
	}
}

func TestOverflowIdempotent(t *testing.T) {
	children := func() []OverflowChild {
		return []OverflowChild{
			Inline(sized(30, 20)),
			Inline(sized(45, 25)),
			Inline(sized(30, 20)),
			Indicator(sized(10, 20)),
		}
	}
	var st1, st2 State
	dims1 := Overflow{}.Layout(testCtx(100, 40), &st1, children()...)
	dims2 := Overflow{}.Layout(testCtx(100, 40), &st2, children()...)
	if st1 != st2 {
		t.Errorf("states differ: %+v vs %+v", st1, st2)
	}
	if dims1 != dims2 {
		t.Errorf("dimensions differ: %v vs %v", dims1, dims2)
	}
}

func TestOverflowReservationExceedsSpace(t *testing.T) {
	// A reservation larger than the whole axis consumes all of it
	// without going negative.
	var st State
	dims := Overflow{}.Layout(testCtx(30, 40), &st,
		Inline(sized(20, 20)),
		Inline(sized(20, 20)),
		Indicator(sized(50, 20)),
	)
	if got, want := st.VisibleItems(), 0; got != want {
		t.Errorf("got %d visible items, want %d", got, want)
	}
	// The indicator itself is clamped by the incoming constraints.
	if got, want := dims.Size, image.Pt(30, 20); got != want {
		t.Errorf("got size %v, want %v", got, want)
	}
}

func TestOverflowNilState(t *testing.T) {
	dims := Overflow{}.Layout(testCtx(100, 40), nil,
		Inline(sized(30, 20)),
	)
	if got, want := dims.Size, image.Pt(30, 20); got != want {
		t.Errorf("got size %v, want %v", got, want)
	}
}
