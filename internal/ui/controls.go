package ui

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"airtimegraph/internal/airtime"
	"airtimegraph/internal/band"
	"airtimegraph/internal/graph"
)

const (
	verticalActionLog    = "Log scale"
	verticalActionLinear = "Linear scale"
	horizontalActionFix  = "Fixed scale"
	horizontalActionFit  = "Fit to data"
)

// controlsBar holds the parameter inputs and the two axis toggle actions.
type controlsBar struct {
	engine *graph.Engine

	regionSelect  *widget.Select
	rateSelect    *widget.Select
	sizeSlider    *widget.Slider
	sizeLabel     *widget.Label
	verticalBtn   *widget.Button
	horizontalBtn *widget.Button

	container fyne.CanvasObject
}

func newControlsBar(engine *graph.Engine) *controlsBar {
	c := &controlsBar{engine: engine}

	regionOptions := make([]string, 0, len(band.Regions()))
	for _, region := range band.Regions() {
		regionOptions = append(regionOptions, string(region))
	}
	c.regionSelect = widget.NewSelect(regionOptions, func(selected string) {
		region := band.Region(selected)
		if cfg, ok := band.Config(region); ok {
			c.sizeSlider.Max = float64(cfg.MaxMACPayloadSize)
			if c.sizeSlider.Value > c.sizeSlider.Max {
				c.sizeSlider.SetValue(c.sizeSlider.Max)
			}
			c.sizeSlider.Refresh()
		}
		engine.SetRegion(region)
	})
	c.regionSelect.PlaceHolder = "Select region"

	rateOptions := make([]string, 0, len(airtime.CodingRates()))
	for _, cr := range airtime.CodingRates() {
		rateOptions = append(rateOptions, cr.String())
	}
	c.rateSelect = widget.NewSelect(rateOptions, func(selected string) {
		for _, cr := range airtime.CodingRates() {
			if cr.String() == selected {
				engine.SetCodingRate(cr)

				return
			}
		}
		engine.SetCodingRate(airtime.CodingRateUnset)
	})
	c.rateSelect.PlaceHolder = "Select coding rate"

	c.sizeLabel = widget.NewLabel("Packet size: 0 B")
	c.sizeSlider = widget.NewSlider(0, 250)
	c.sizeSlider.Step = 1
	c.sizeSlider.OnChanged = func(value float64) {
		size := int(value)
		c.sizeLabel.SetText(fmt.Sprintf("Packet size: %d B", size))
		engine.SetPacketSize(size)
	}

	c.verticalBtn = widget.NewButton(verticalActionLog, engine.ToggleVerticalScale)
	c.horizontalBtn = widget.NewButton(horizontalActionFix, engine.ToggleHorizontalMode)

	slider := container.NewGridWithColumns(2, c.sizeLabel, c.sizeSlider)
	c.container = container.NewVBox(
		container.NewHBox(c.regionSelect, c.rateSelect, c.verticalBtn, c.horizontalBtn),
		slider,
	)

	return c
}

func (c *controlsBar) Container() fyne.CanvasObject {
	return c.container
}

// Update relabels the toggle buttons so each names the mode a click switches
// to, per the snapshot's current axis state.
func (c *controlsBar) Update(snap graph.Snapshot) {
	c.verticalBtn.SetText(verticalToggleCaption(snap.Axis.VerticalMode))
	c.horizontalBtn.SetText(horizontalToggleCaption(snap.Axis.HorizontalMode))
}

func verticalToggleCaption(mode graph.VerticalMode) string {
	if mode == graph.VerticalLogarithmic {
		return verticalActionLinear
	}

	return verticalActionLog
}

func horizontalToggleCaption(mode graph.HorizontalMode) string {
	if mode == graph.HorizontalFixedScale {
		return horizontalActionFit
	}

	return horizontalActionFix
}
