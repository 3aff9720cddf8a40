package graph

import (
	"log/slog"
	"sync"

	"airtimegraph/internal/airtime"
	"airtimegraph/internal/band"
	"airtimegraph/internal/bus"
)

// appliedConfig is the last configuration the curves were computed for.
// Compared by value against the incoming one to tell a structural reset
// (discard user visibility choices) from an incremental update.
type appliedConfig struct {
	region     band.Region
	codingRate airtime.CodingRate
}

// Engine aggregates the curve computer, the visibility merge and the axis
// manager into one current Snapshot. Mutators are synchronous and run to
// completion; each accepted mutation replaces the snapshot wholesale,
// increments the revision exactly once and publishes the result on the bus.
// The mutex only guards the snapshot handoff between the UI goroutine and
// bus readers; mutations themselves are never re-entered.
type Engine struct {
	mu     sync.Mutex
	logger *slog.Logger
	bus    bus.MessageBus

	region      band.Region
	codingRate  airtime.CodingRate
	packetSize  int
	axes        *AxisLayoutManager
	lastApplied *appliedConfig

	snapshot Snapshot
}

func NewEngine(logger *slog.Logger, messageBus bus.MessageBus) *Engine {
	if logger == nil {
		logger = slog.Default()
	}

	return &Engine{
		logger: logger,
		bus:    messageBus,
		axes:   NewAxisLayoutManager(),
	}
}

// Snapshot returns the current render state.
func (e *Engine) Snapshot() Snapshot {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.snapshot
}

// SetRegion selects the regional band plan and recomputes curves and the
// dwell overlay together.
func (e *Engine) SetRegion(region band.Region) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if region == e.region {
		return
	}
	e.region = region
	e.logger.Debug("region selected", "region", region)
	if e.recompute() {
		e.publish()
	}
}

// SetCodingRate selects the coding rate. The unset value switches the engine
// back to the idle "not configured" state.
func (e *Engine) SetCodingRate(cr airtime.CodingRate) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if cr == e.codingRate {
		return
	}
	e.codingRate = cr
	e.logger.Debug("coding rate selected", "coding_rate", cr.String())
	if e.recompute() {
		e.publish()
	}
}

// SetPacketSize records the user-chosen payload size. It re-runs the curve
// rule (the size shares the rule's trigger set) but by construction the
// curves come out identical and prior visibility is preserved; only the UI
// packet marker moves.
func (e *Engine) SetPacketSize(size int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if size == e.packetSize {
		return
	}
	e.packetSize = size
	e.recompute()
	e.publish()
}

// ToggleVerticalScale flips the airtime axis between linear and logarithmic.
func (e *Engine) ToggleVerticalScale() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.axes.ToggleVertical()
	e.publish()
}

// ToggleHorizontalMode flips the payload axis between fit-to-data and the
// fixed bytes-per-pixel scale.
func (e *Engine) ToggleHorizontalMode() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.axes.ToggleHorizontal()
	e.publish()
}

// SetViewportWidth feeds the host viewport width in, read on mount and on
// resize. Publishes only while the fixed scale is active, since the fit-all
// range does not depend on it.
func (e *Engine) SetViewportWidth(width float64) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.axes.SetViewportWidth(width) {
		e.publish()
	}
}

// SetSeriesVisibility applies a user legend toggle. Out-of-range indexes are
// ignored.
func (e *Engine) SetSeriesVisibility(index int, v Visibility) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if index < 0 || index >= len(e.snapshot.Series) {
		return
	}
	if e.snapshot.Series[index].Visibility == v {
		return
	}
	series := make([]Series, len(e.snapshot.Series))
	copy(series, e.snapshot.Series)
	series[index].Visibility = v
	e.snapshot.Series = series
	e.publish()
}

// recompute runs the curve and overlay rules atomically against the current
// inputs. Returns false when nothing changed and no snapshot should be
// published: a repeated idle state, an unknown region, or a non-positive
// payload domain (caller misconfiguration, prior snapshot stays up).
func (e *Engine) recompute() bool {
	if e.region == "" || e.codingRate == airtime.CodingRateUnset {
		if e.lastApplied == nil && e.snapshot.Series == nil {
			return false
		}
		e.lastApplied = nil
		e.snapshot.Series = nil
		e.axes.SyncOverlay(0)

		return true
	}

	cfg, ok := band.Config(e.region)
	if !ok {
		e.logger.Warn("unknown region, keeping previous curves", "region", e.region)

		return false
	}
	rates := band.DataRates(e.region)
	maxPayloadSize := cfg.MaxMACPayloadSize + OverheadBytes

	curves := ComputeCurves(cfg, rates, e.codingRate, maxPayloadSize)
	if curves == nil {
		e.logger.Warn("non-positive payload domain, keeping previous curves", "region", e.region, "max_payload_size", maxPayloadSize)

		return false
	}

	reset := e.lastApplied == nil ||
		e.lastApplied.region != e.region ||
		e.lastApplied.codingRate != e.codingRate
	prev := e.snapshot.Series
	for i := range curves {
		var prevSeries *Series
		if i < len(prev) {
			prevSeries = &prev[i]
		}
		curves[i].Visibility = ResolveVisibility(rates[i], prevSeries, reset)
	}

	e.axes.SyncOverlay(cfg.MaxDwellTime)
	e.lastApplied = &appliedConfig{region: e.region, codingRate: e.codingRate}
	e.snapshot.Series = curves

	return true
}

// publish seals the pending state into a new immutable snapshot with the
// next revision and hands it to bus subscribers.
func (e *Engine) publish() {
	e.snapshot = Snapshot{
		Series:     e.snapshot.Series,
		Axis:       e.axes.State(),
		PacketSize: e.packetSize,
		Revision:   e.snapshot.Revision + 1,
	}
	if e.bus != nil {
		e.bus.Publish(TopicSnapshot, e.snapshot)
	}
}
