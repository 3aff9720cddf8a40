package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"
)

// chartSurface hosts the rendered chart PNG and reports its width to the
// engine as the viewport width signal, on mount and on every resize.
type chartSurface struct {
	widget.BaseWidget
	image    *canvas.Image
	onResize func(width float64)
}

func newChartSurface(onResize func(width float64)) *chartSurface {
	s := &chartSurface{
		image:    &canvas.Image{FillMode: canvas.ImageFillContain},
		onResize: onResize,
	}
	s.image.SetMinSize(fyne.NewSize(minChartWidth, minChartHeight))
	s.ExtendBaseWidget(s)

	return s
}

func (s *chartSurface) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(s.image)
}

func (s *chartSurface) Resize(size fyne.Size) {
	s.BaseWidget.Resize(size)
	if s.onResize != nil {
		s.onResize(float64(size.Width))
	}
}

// SetPNG swaps the displayed chart image; nil data clears the surface.
func (s *chartSurface) SetPNG(data []byte) {
	if data == nil {
		s.image.Resource = nil
		s.image.Refresh()

		return
	}
	s.image.Resource = fyne.NewStaticResource("airtime-chart.png", data)
	s.image.Refresh()
}
