package graph

import (
	"testing"

	"airtimegraph/internal/airtime"
	"airtimegraph/internal/band"
)

func eu868Inputs(t *testing.T) (band.RegionConfig, []band.DataRateDescriptor) {
	t.Helper()
	cfg, ok := band.Config(band.RegionEU868)
	if !ok {
		t.Fatal("expected EU868 config")
	}

	return cfg, band.DataRates(band.RegionEU868)
}

func TestComputeCurvesOneSeriesPerCatalogEntry(t *testing.T) {
	cfg, rates := eu868Inputs(t)
	curves := ComputeCurves(cfg, rates, airtime.CodingRate4_5, cfg.MaxMACPayloadSize+OverheadBytes)
	if len(curves) != len(rates) {
		t.Fatalf("expected %d series, got %d", len(rates), len(curves))
	}
	for i, s := range curves {
		if s.Label != rates[i].Label {
			t.Fatalf("series %d: expected label %s, got %s", i, rates[i].Label, s.Label)
		}
		if s.Color != rates[i].Color {
			t.Fatalf("series %d: color does not match catalog", i)
		}
	}
}

func TestComputeCurvesDeterministic(t *testing.T) {
	cfg, rates := eu868Inputs(t)
	first := ComputeCurves(cfg, rates, airtime.CodingRate4_6, 247)
	second := ComputeCurves(cfg, rates, airtime.CodingRate4_6, 247)
	for i := range first {
		if len(first[i].Points) != len(second[i].Points) {
			t.Fatalf("series %d: point counts differ", i)
		}
		for j := range first[i].Points {
			if first[i].Points[j] != second[i].Points[j] {
				t.Fatalf("series %d point %d differs: %+v vs %+v", i, j, first[i].Points[j], second[i].Points[j])
			}
		}
	}
}

func TestComputeCurvesDomainClipsToExactMax(t *testing.T) {
	// 242 byte MAC payload + 5 overhead bytes: samples run 0,10,...,240
	// with a final clipped point at exactly 247.
	cfg, rates := eu868Inputs(t)
	curves := ComputeCurves(cfg, rates, airtime.CodingRate4_5, 247)
	points := curves[0].Points
	if len(points) != 26 {
		t.Fatalf("expected 26 samples, got %d", len(points))
	}
	if points[0].PayloadSize != 0 {
		t.Fatalf("expected domain start 0, got %d", points[0].PayloadSize)
	}
	if points[24].PayloadSize != 240 {
		t.Fatalf("expected second-to-last sample 240, got %d", points[24].PayloadSize)
	}
	if points[25].PayloadSize != 247 {
		t.Fatalf("expected clipped last sample 247, got %d", points[25].PayloadSize)
	}
}

func TestComputeCurvesStrideMultipleMaxNotDuplicated(t *testing.T) {
	cfg, rates := eu868Inputs(t)
	curves := ComputeCurves(cfg, rates, airtime.CodingRate4_5, 240)
	points := curves[0].Points
	if len(points) != 25 {
		t.Fatalf("expected 25 samples, got %d", len(points))
	}
	if points[len(points)-1].PayloadSize != 240 {
		t.Fatalf("expected last sample 240, got %d", points[len(points)-1].PayloadSize)
	}
}

func TestComputeCurvesPointsAscendingNonNegative(t *testing.T) {
	cfg, rates := eu868Inputs(t)
	for _, s := range ComputeCurves(cfg, rates, airtime.CodingRate4_8, 227) {
		for j, p := range s.Points {
			if p.AirtimeMs < 0 {
				t.Fatalf("%s: negative airtime at %d bytes", s.Label, p.PayloadSize)
			}
			if j > 0 && p.PayloadSize <= s.Points[j-1].PayloadSize {
				t.Fatalf("%s: x values not ascending at index %d", s.Label, j)
			}
		}
	}
}

func TestComputeCurvesNonPositiveMaxIsNoOp(t *testing.T) {
	cfg, rates := eu868Inputs(t)
	if curves := ComputeCurves(cfg, rates, airtime.CodingRate4_5, 0); curves != nil {
		t.Fatalf("expected nil for zero max payload, got %d series", len(curves))
	}
	if curves := ComputeCurves(cfg, rates, airtime.CodingRate4_5, -5); curves != nil {
		t.Fatalf("expected nil for negative max payload, got %d series", len(curves))
	}
}

func TestStrokeWeightFollowsHighlight(t *testing.T) {
	tests := []struct {
		highlight band.Highlight
		want      float64
	}{
		{band.HighlightHigh, 3},
		{band.HighlightNone, 2},
		{band.HighlightLow, 1},
	}
	for _, tt := range tests {
		if got := strokeWeightFor(tt.highlight); got != tt.want {
			t.Fatalf("highlight %v: expected weight %v, got %v", tt.highlight, tt.want, got)
		}
	}
}
