package ui

import (
	"fyne.io/fyne/v2"
	fyneapp "fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"airtimegraph/internal/graph"
)

// Run builds the main window and blocks until it closes. The chart redraws
// only when the engine publishes a snapshot with a new revision.
func Run(dep Dependencies) error {
	fyApp := fyneapp.NewWithID("airtimegraph")
	window := fyApp.NewWindow("LoRa airtime graph")
	window.Resize(fyne.NewSize(dep.Config.UI.Window.Width, dep.Config.UI.Window.Height))

	engine := dep.Engine
	surface := newChartSurface(engine.SetViewportWidth)
	legend := newLegendPanel(engine.SetSeriesVisibility)
	controls := newControlsBar(engine)
	idleHint := widget.NewLabel("Select a region and coding rate to plot airtime curves.")

	var lastRendered uint64
	render := func(snap graph.Snapshot) {
		if snap.Revision == lastRendered {
			return
		}
		lastRendered = snap.Revision

		size := surface.Size()
		png, err := renderSnapshot(snap, int(size.Width), int(size.Height))
		if err != nil {
			dep.Logger.Warn("render snapshot", "revision", snap.Revision, "error", err)

			return
		}
		if png == nil {
			idleHint.Show()
		} else {
			idleHint.Hide()
		}
		surface.SetPNG(png)
		legend.Update(snap.Series)
		controls.Update(snap)
	}

	stopListener := startSnapshotListener(dep.Bus, dep.Logger, func(snap graph.Snapshot) {
		fyne.Do(func() {
			render(snap)
		})
	})

	content := container.NewBorder(
		controls.Container(),
		nil,
		nil,
		legend.Container(),
		container.NewStack(surface, container.NewCenter(idleHint)),
	)
	window.SetContent(content)

	window.SetCloseIntercept(func() {
		if dep.OnSaveConfig != nil {
			cfg := dep.Config
			size := window.Canvas().Size()
			cfg.UI.Window.Width = size.Width
			cfg.UI.Window.Height = size.Height
			if err := dep.OnSaveConfig(cfg); err != nil {
				dep.Logger.Warn("save config on close", "error", err)
			}
		}
		window.Close()
	})

	window.ShowAndRun()

	stopListener()
	if dep.OnQuit != nil {
		dep.OnQuit()
	}

	return nil
}
