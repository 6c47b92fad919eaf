// SPDX-License-Identifier: Unlicense OR MIT

package toolbar

// State holds the outcome of the most recent overflow layout: how many
// children were declared and how many of them fit inline. The
// remainder, [VisibleItems, TotalItems), is the overflow suffix.
//
// A State has a single writer, Overflow.Layout, which overwrites both
// counters on every call. Hosts read it to decide whether an overflow
// menu is needed and to slice the suffix, and may persist it between
// runs with Store and Restore.
type State struct {
	total   int
	visible int
}

// TotalItems returns the number of inline children declared at the
// last layout.
func (s *State) TotalItems() int {
	return s.total
}

// VisibleItems returns the number of children placed inline at the
// last layout.
func (s *State) VisibleItems() int {
	return s.visible
}

// Overflowing reports whether at least one child did not fit inline.
func (s *State) Overflowing() bool {
	return s.visible < s.total
}

// Store returns the two counters for persisting.
func (s *State) Store() (total, visible int) {
	return s.total, s.visible
}

// Restore sets the counters from persisted values. Negative values are
// clamped to zero and visible is clamped to total, so Restore never
// produces a state violating 0 <= visible <= total.
func (s *State) Restore(total, visible int) {
	if total < 0 {
		total = 0
	}
	if visible < 0 {
		visible = 0
	}
	if visible > total {
		visible = total
	}
	s.total = total
	s.visible = visible
}
