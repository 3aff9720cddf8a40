package graph

import (
	"airtimegraph/internal/airtime"
	"airtimegraph/internal/band"
)

const (
	// OverheadBytes is the fixed MAC framing added atop the user payload.
	// The curve domain must be computed with the same constant: callers
	// pass maxPayloadSize = region max MAC payload + OverheadBytes.
	OverheadBytes = 5

	// sampleStride is the payload-size step between curve samples; the
	// rendered curve interpolates linearly between them.
	sampleStride = 10

	preambleLength = 8
)

// strokeWeightFor maps the catalog highlight class to a stroke weight.
func strokeWeightFor(h band.Highlight) float64 {
	switch h {
	case band.HighlightHigh:
		return 3
	case band.HighlightLow:
		return 1
	default:
		return 2
	}
}

// ComputeCurves produces one airtime curve per catalog data rate, in catalog
// order, with Visibility left at its zero value for the caller to merge.
// Sample x values run from 0 to maxPayloadSize in sampleStride steps; when
// maxPayloadSize is not a stride multiple the last sample is clipped to
// exactly maxPayloadSize so the data domain ends at the declared maximum.
// Returns nil when maxPayloadSize is not positive.
func ComputeCurves(region band.RegionConfig, rates []band.DataRateDescriptor, cr airtime.CodingRate, maxPayloadSize int) []Series {
	if maxPayloadSize <= 0 {
		return nil
	}

	sizes := airtime.Sequence(0, maxPayloadSize+1, sampleStride)
	if len(sizes) == 0 || sizes[len(sizes)-1] != maxPayloadSize {
		sizes = append(sizes, maxPayloadSize)
	}

	out := make([]Series, 0, len(rates))
	for _, dr := range rates {
		params := airtime.Params{
			SpreadFactor:        dr.SpreadFactor,
			Bandwidth:           dr.Bandwidth,
			CodingRate:          cr,
			Modulation:          region.Modulation,
			PreambleLength:      preambleLength,
			ExplicitHeader:      true,
			LowDataRateOptimize: false,
			CRC:                 true,
		}
		points := make([]SeriesPoint, 0, len(sizes))
		for _, size := range sizes {
			points = append(points, SeriesPoint{
				PayloadSize: size,
				AirtimeMs:   airtime.Duration(size+OverheadBytes, params),
			})
		}
		out = append(out, Series{
			Label:        dr.Label,
			Points:       points,
			Color:        dr.Color,
			StrokeWeight: strokeWeightFor(dr.Highlight),
		})
	}

	return out
}
