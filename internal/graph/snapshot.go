// Package graph holds the stateful curve and axis engine behind the airtime
// chart: it recomputes the per-data-rate series when radio parameters change,
// carries user visibility choices across recomputations, and keeps the two
// axis modes and the dwell-time overlay consistent in a single immutable
// snapshot per change.
package graph

import "image/color"

// TopicSnapshot is the bus topic carrying each newly published Snapshot.
const TopicSnapshot = "graph.snapshot"

// Visibility is the render state of one series.
type Visibility int

const (
	// VisibilityVisible draws the series in the plot and the legend.
	VisibilityVisible Visibility = iota
	// VisibilityLegendOnly keeps the series selectable in the legend but
	// out of the plot.
	VisibilityLegendOnly
)

// SeriesPoint is one sample of an airtime curve.
type SeriesPoint struct {
	PayloadSize int     // bytes
	AirtimeMs   float64 // milliseconds, non-negative
}

// Series is one data rate's airtime curve with its display attributes.
type Series struct {
	Label        string
	Points       []SeriesPoint // x ascending
	Color        color.RGBA
	StrokeWeight float64
	Visibility   Visibility
}

// HorizontalMode selects how the payload axis range is derived.
type HorizontalMode int

const (
	// HorizontalFitAll lets the renderer fit the range to the data domain.
	HorizontalFitAll HorizontalMode = iota
	// HorizontalFixedScale pins the range to a fixed bytes-per-pixel scale
	// derived from the viewport width.
	HorizontalFixedScale
)

// VerticalMode selects the airtime axis scale.
type VerticalMode int

const (
	VerticalLinear VerticalMode = iota
	VerticalLogarithmic
)

// Range is a closed numeric axis interval.
type Range struct {
	Min float64
	Max float64
}

// DwellOverlay is the regulatory dwell-time reference line. ThresholdMs is
// the semantic limit and never changes with the axis scale; DisplayY is the
// coordinate the renderer anchors the line and label at, log-transformed
// when the vertical axis is logarithmic.
type DwellOverlay struct {
	ThresholdMs float64
	DisplayY    float64
}

// AxisState is the render-ready axis configuration.
type AxisState struct {
	HorizontalMode  HorizontalMode
	VerticalMode    VerticalMode
	HorizontalRange *Range // nil means fit to data
	DwellOverlay    *DwellOverlay
}

// Snapshot is one complete render state. Snapshots are immutable once
// published; every engine mutation replaces the current snapshot wholesale
// and increments Revision, and a renderer redraws only on a revision change.
type Snapshot struct {
	Series     []Series
	Axis       AxisState
	PacketSize int // user-chosen payload size, consumed only by UI markers
	Revision   uint64
}
