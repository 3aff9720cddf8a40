package graph

import (
	"math"
	"time"
)

const (
	// chromeWidth is the fixed width in pixels taken by margins and the
	// legend; the remaining viewport maps to the payload axis.
	chromeWidth = 312
	// pixelsPerByte is the fixed-scale resolution of the payload axis.
	pixelsPerByte = 6
)

// AxisLayoutManager owns the two independent axis toggles and the derived
// dwell-time overlay. Each axis is a two-state machine; flipping one never
// touches the other, but flipping the vertical scale re-derives the overlay
// display coordinate under the new scale.
type AxisLayoutManager struct {
	horizontal    HorizontalMode
	vertical      VerticalMode
	viewportWidth float64
	fixedRange    *Range
	overlay       *DwellOverlay
}

func NewAxisLayoutManager() *AxisLayoutManager {
	return &AxisLayoutManager{horizontal: HorizontalFitAll, vertical: VerticalLinear}
}

func (m *AxisLayoutManager) HorizontalMode() HorizontalMode { return m.horizontal }
func (m *AxisLayoutManager) VerticalMode() VerticalMode     { return m.vertical }

// fixedScaleRange maps the viewport width to the pinned payload range.
func fixedScaleRange(viewportWidth float64) Range {
	return Range{Min: 0, Max: (viewportWidth - chromeWidth) / pixelsPerByte}
}

// displayThreshold converts the semantic dwell threshold to its rendered
// coordinate under the given scale. The raw value is kept untouched, so
// toggling back to linear recovers it exactly.
func displayThreshold(thresholdMs float64, mode VerticalMode) float64 {
	if mode == VerticalLogarithmic {
		return math.Log10(thresholdMs)
	}

	return thresholdMs
}

// ToggleHorizontal flips between fitting the range to the data and the fixed
// bytes-per-pixel scale. The last fixed range is retained while fitting so a
// later flip back does not jump before the next resize.
func (m *AxisLayoutManager) ToggleHorizontal() {
	if m.horizontal == HorizontalFitAll {
		m.horizontal = HorizontalFixedScale
		r := fixedScaleRange(m.viewportWidth)
		m.fixedRange = &r

		return
	}
	m.horizontal = HorizontalFitAll
}

// ToggleVertical flips the airtime axis between linear and logarithmic and
// re-derives the overlay display coordinate immediately.
func (m *AxisLayoutManager) ToggleVertical() {
	if m.vertical == VerticalLinear {
		m.vertical = VerticalLogarithmic
	} else {
		m.vertical = VerticalLinear
	}
	if m.overlay != nil {
		m.overlay.DisplayY = displayThreshold(m.overlay.ThresholdMs, m.vertical)
	}
}

// SetViewportWidth records the viewport width and reports whether the
// rendered output changed (only while the fixed scale is active).
func (m *AxisLayoutManager) SetViewportWidth(width float64) bool {
	if width == m.viewportWidth {
		return false
	}
	m.viewportWidth = width
	if m.horizontal != HorizontalFixedScale {
		return false
	}
	r := fixedScaleRange(width)
	m.fixedRange = &r

	return true
}

// SyncOverlay derives the overlay from the current region's dwell limit:
// created when a limit is present, destroyed when absent. Called from the
// same mutation that recomputes the series so both land in one snapshot.
func (m *AxisLayoutManager) SyncOverlay(maxDwellTime time.Duration) {
	if maxDwellTime <= 0 {
		m.overlay = nil

		return
	}
	thresholdMs := float64(maxDwellTime) / float64(time.Millisecond)
	m.overlay = &DwellOverlay{
		ThresholdMs: thresholdMs,
		DisplayY:    displayThreshold(thresholdMs, m.vertical),
	}
}

// State returns the render-ready axis configuration. Pointer fields are
// copied so published snapshots never alias the manager's mutable state.
func (m *AxisLayoutManager) State() AxisState {
	state := AxisState{HorizontalMode: m.horizontal, VerticalMode: m.vertical}
	if m.horizontal == HorizontalFixedScale && m.fixedRange != nil {
		r := *m.fixedRange
		state.HorizontalRange = &r
	}
	if m.overlay != nil {
		o := *m.overlay
		state.DwellOverlay = &o
	}

	return state
}
