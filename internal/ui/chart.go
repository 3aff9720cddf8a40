package ui

import (
	"bytes"
	"fmt"
	"math"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"airtimegraph/internal/graph"
)

const (
	minChartWidth  = 420
	minChartHeight = 280
)

var dwellLineColor = drawing.Color{R: 0xe5, G: 0x39, B: 0x35, A: 0xff}

// verticalAxisTitle names the airtime axis for the active scale.
func verticalAxisTitle(mode graph.VerticalMode) string {
	if mode == graph.VerticalLogarithmic {
		return "log10(airtime, ms)"
	}

	return "airtime, ms"
}

// displayValue maps a raw airtime value to its rendered coordinate under the
// active scale, mirroring the engine's overlay transform.
func displayValue(ms float64, mode graph.VerticalMode) float64 {
	if mode == graph.VerticalLogarithmic {
		return math.Log10(ms)
	}

	return ms
}

// plotDomainMax returns the largest payload size over the plotted series.
func plotDomainMax(snap graph.Snapshot) float64 {
	max := 0
	for _, s := range snap.Series {
		if len(s.Points) == 0 {
			continue
		}
		if last := s.Points[len(s.Points)-1].PayloadSize; last > max {
			max = last
		}
	}

	return float64(max)
}

// renderSnapshot draws the snapshot into a PNG of the given size. Returns
// nil bytes when there is nothing to plot (idle state or every series
// toggled out of the plot).
func renderSnapshot(snap graph.Snapshot, width, height int) ([]byte, error) {
	if width < minChartWidth {
		width = minChartWidth
	}
	if height < minChartHeight {
		height = minChartHeight
	}

	series := make([]chart.Series, 0, len(snap.Series)+2)
	for _, s := range snap.Series {
		if s.Visibility != graph.VisibilityVisible || len(s.Points) < 2 {
			continue
		}
		xs := make([]float64, 0, len(s.Points))
		ys := make([]float64, 0, len(s.Points))
		for _, p := range s.Points {
			xs = append(xs, float64(p.PayloadSize))
			ys = append(ys, displayValue(p.AirtimeMs, snap.Axis.VerticalMode))
		}
		series = append(series, chart.ContinuousSeries{
			Name:    s.Label,
			XValues: xs,
			YValues: ys,
			Style: chart.Style{
				StrokeWidth: s.StrokeWeight,
				StrokeColor: drawing.Color{R: s.Color.R, G: s.Color.G, B: s.Color.B, A: s.Color.A},
			},
		})
	}
	if len(series) == 0 {
		return nil, nil
	}

	domainMax := plotDomainMax(snap)
	if overlay := snap.Axis.DwellOverlay; overlay != nil {
		lineStyle := chart.Style{
			StrokeWidth:     1.5,
			StrokeColor:     dwellLineColor,
			StrokeDashArray: []float64{6, 4},
		}
		series = append(series, chart.ContinuousSeries{
			Name:    "max dwell time",
			XValues: []float64{0, domainMax},
			YValues: []float64{overlay.DisplayY, overlay.DisplayY},
			Style:   lineStyle,
		})
		series = append(series, chart.AnnotationSeries{
			Annotations: []chart.Value2{
				{XValue: domainMax, YValue: overlay.DisplayY, Label: "max dwell time"},
			},
			Style: chart.Style{
				StrokeColor: dwellLineColor,
				FontColor:   dwellLineColor,
			},
		})
	}

	xAxis := chart.XAxis{Name: "payload size, bytes"}
	if r := snap.Axis.HorizontalRange; r != nil {
		xAxis.Range = &chart.ContinuousRange{Min: r.Min, Max: r.Max}
	}
	if snap.PacketSize > 0 {
		xAxis.GridLines = []chart.GridLine{{
			Value: float64(snap.PacketSize),
			Style: chart.Style{StrokeWidth: 1, StrokeColor: chart.ColorAlternateGray},
		}}
	}

	ch := chart.Chart{
		Width:      width,
		Height:     height,
		Background: chart.Style{Padding: chart.Box{Top: 16, Left: 12, Right: 12, Bottom: 12}},
		XAxis:      xAxis,
		YAxis:      chart.YAxis{Name: verticalAxisTitle(snap.Axis.VerticalMode)},
		Series:     series,
	}

	var buf bytes.Buffer
	if err := ch.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("render chart: %w", err)
	}

	return buf.Bytes(), nil
}
