// SPDX-License-Identifier: Unlicense OR MIT

package toolbar

import (
	"gioui.org/layout"
)

// Toolbar is a linear container of items with adaptive overflow. The
// zero value is an empty horizontal toolbar with no item cap.
//
// Axis and MaxItems are fixed at construction; a host that changes
// them should use a fresh Toolbar. Each Toolbar owns exactly one
// State, restored from persisted storage before the first layout when
// the host keeps it.
type Toolbar struct {
	// Axis is the packing axis of the bar.
	Axis layout.Axis
	// MaxItems caps the number of inline items. Zero or negative
	// means no cap.
	MaxItems int

	// Items is the declared content, in inline and menu order.
	Items Sequence
	// State is the outcome of the most recent layout.
	State State
	// Menu is the open state of the overflow menu.
	Menu Menu
}

// Overflowed returns the items of the overflow suffix.
func (t *Toolbar) Overflowed() []Item {
	return t.Items.Overflowed(&t.State)
}
