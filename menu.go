// SPDX-License-Identifier: Unlicense OR MIT

package toolbar

import (
	"gioui.org/widget"
)

// Menu tracks whether the overflow menu is open, together with the
// click state of the indicator that opens it.
type Menu struct {
	// Click is the click state of the overflow indicator.
	Click widget.Clickable

	open bool
}

// Update flips the open state once for every pending indicator click.
func (m *Menu) Update() {
	for m.Click.Clicked() {
		m.open = !m.open
	}
}

// Open reports whether the menu is open.
func (m *Menu) Open() bool {
	return m.open
}

// Toggle flips the menu between open and closed.
func (m *Menu) Toggle() {
	m.open = !m.open
}

// Dismiss closes the menu.
func (m *Menu) Dismiss() {
	m.open = false
}
