// SPDX-License-Identifier: Unlicense OR MIT

// Command toolbardemo shows an adaptive toolbar in a window. Resize
// the window to watch items move in and out of the overflow menu; the
// resulting layout state is saved on exit and restored on the next
// run.
package main

import (
	"flag"
	"os"

	"gioui.org/app"
	"gioui.org/font/gofont"
	"gioui.org/io/key"
	"gioui.org/io/system"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/paint"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"

	"github.com/charmbracelet/log"
	"golang.org/x/exp/shiny/materialdesign/icons"

	"gioui.org/x/toolbar"
	tbmaterial "gioui.org/x/toolbar/material"
	"gioui.org/x/toolbar/statefile"
)

var (
	// Flags.
	vertical  = flag.Bool("vertical", false, "lay out the toolbar vertically")
	maxItems  = flag.Int("max", 0, "maximum number of inline items, 0 for no cap")
	statePath = flag.String("state", "", "layout state file, defaults to the user config dir")
)

type demo struct {
	logger *log.Logger
	store  *statefile.File
	th     *material.Theme
	ops    *op.Ops

	bar toolbar.Toolbar

	cut     widget.Clickable
	copy    widget.Clickable
	paste   widget.Clickable
	del     widget.Clickable
	search  widget.Clickable
	replace widget.Clickable
	bold    widget.Bool
	extras  widget.Bool
}

var (
	cutIcon     = mustIcon(widget.NewIcon(icons.ContentContentCut))
	copyIcon    = mustIcon(widget.NewIcon(icons.ContentContentCopy))
	pasteIcon   = mustIcon(widget.NewIcon(icons.ContentContentPaste))
	deleteIcon  = mustIcon(widget.NewIcon(icons.ActionDelete))
	boldIcon    = mustIcon(widget.NewIcon(icons.EditorFormatBold))
	extrasIcon  = mustIcon(widget.NewIcon(icons.ActionBuild))
	searchIcon  = mustIcon(widget.NewIcon(icons.ActionSearch))
	replaceIcon = mustIcon(widget.NewIcon(icons.ActionFindReplace))
)

func main() {
	flag.Parse()
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
	})

	var store *statefile.File
	if *statePath != "" {
		store = statefile.New(*statePath)
	} else {
		var err error
		store, err = statefile.Default("toolbardemo")
		if err != nil {
			logger.Fatal("resolve state path", "err", err)
		}
	}

	d := &demo{
		logger: logger,
		store:  store,
		th:     material.NewTheme(gofont.Collection()),
		ops:    new(op.Ops),
	}
	d.bar.MaxItems = *maxItems
	if *vertical {
		d.bar.Axis = layout.Vertical
	}
	if err := store.Load(&d.bar.State); err != nil {
		logger.Warn("restore layout state", "err", err)
	} else if d.bar.State.TotalItems() > 0 {
		logger.Info("restored layout state",
			"total", d.bar.State.TotalItems(),
			"visible", d.bar.State.VisibleItems())
	}

	go func() {
		w := app.NewWindow(
			app.Title("Toolbar demo"),
			app.Size(unit.Dp(420), unit.Dp(260)),
		)
		if err := d.run(w); err != nil {
			logger.Fatal("window", "err", err)
		}
		os.Exit(0)
	}()
	app.Main()
}

func (d *demo) run(w *app.Window) error {
	for e := range w.Events() {
		switch e := e.(type) {
		case system.FrameEvent:
			d.frame(e)
		case key.Event:
			if e.Name == key.NameEscape {
				w.Perform(system.ActionClose)
			}
		case system.DestroyEvent:
			if err := d.store.Save(&d.bar.State); err != nil {
				d.logger.Error("save layout state", "err", err)
			} else {
				d.logger.Info("saved layout state",
					"path", d.store.Path(),
					"total", d.bar.State.TotalItems(),
					"visible", d.bar.State.VisibleItems())
			}
			return e.Err
		}
	}
	return nil
}

func (d *demo) frame(e system.FrameEvent) {
	gtx := layout.NewContext(d.ops, e)
	paint.Fill(gtx.Ops, d.th.Palette.Bg)
	d.declare()
	d.update()
	// The menu opens on the cross axis side of the bar.
	axis := layout.Vertical
	if d.bar.Axis == layout.Vertical {
		axis = layout.Horizontal
	}
	layout.Flex{Axis: axis}.Layout(gtx,
		layout.Rigid(tbmaterial.Toolbar(d.th, &d.bar).Layout),
		layout.Rigid(tbmaterial.Menu(d.th, &d.bar).Layout),
	)
	e.Frame(gtx.Ops)
}

// declare rebuilds the item sequence. The extras toggle gates two
// additional items, so its value is the rebuild key.
func (d *demo) declare() {
	d.bar.Items.Rebuild(d.extras.Value, func(s *toolbar.Sequence) {
		s.Add(
			toolbar.ClickableItem(&d.cut, cutIcon, "Cut"),
			toolbar.ClickableItem(&d.copy, copyIcon, "Copy"),
			toolbar.ClickableItem(&d.paste, pasteIcon, "Paste"),
			toolbar.ClickableItem(&d.del, deleteIcon, "Delete"),
			toolbar.ToggleableItem(&d.bold, boldIcon, "Bold"),
			toolbar.ToggleableItem(&d.extras, extrasIcon, "Extra tools"),
		)
		if d.extras.Value {
			s.Add(
				toolbar.ClickableItem(&d.search, searchIcon, "Search"),
				toolbar.ClickableItem(&d.replace, replaceIcon, "Replace"),
			)
		}
		s.Add(toolbar.CustomItem(d.version, d.versionMenu))
	})
}

// update consumes pending item events.
func (d *demo) update() {
	for d.cut.Clicked() {
		d.act("cut")
	}
	for d.copy.Clicked() {
		d.act("copy")
	}
	for d.paste.Clicked() {
		d.act("paste")
	}
	for d.del.Clicked() {
		d.act("delete")
	}
	for d.search.Clicked() {
		d.act("search")
	}
	for d.replace.Clicked() {
		d.act("replace")
	}
	if d.bold.Changed() {
		d.logger.Info("toggle", "item", "bold", "value", d.bold.Value)
	}
	if d.extras.Changed() {
		d.logger.Info("toggle", "item", "extras", "value", d.extras.Value)
	}
}

func (d *demo) act(name string) {
	d.logger.Info("click", "item", name)
	d.bar.Menu.Dismiss()
}

func (d *demo) version(gtx layout.Context) layout.Dimensions {
	return layout.UniformInset(unit.Dp(10)).Layout(gtx,
		material.Caption(d.th, "v0.1").Layout)
}

func (d *demo) versionMenu(gtx layout.Context, dismiss func()) layout.Dimensions {
	return layout.Inset{
		Top: unit.Dp(8), Bottom: unit.Dp(8),
		Left: unit.Dp(12), Right: unit.Dp(16),
	}.Layout(gtx, material.Caption(d.th, "toolbardemo v0.1").Layout)
}

func mustIcon(ic *widget.Icon, err error) *widget.Icon {
	if err != nil {
		panic(err)
	}
	return ic
}
