package graph

import (
	"testing"

	"airtimegraph/internal/band"
)

func TestResolveVisibility(t *testing.T) {
	lowRate := band.DataRateDescriptor{Label: "SF7BW250", Highlight: band.HighlightLow}
	plainRate := band.DataRateDescriptor{Label: "SF9BW125", Highlight: band.HighlightNone}
	hidden := &Series{Visibility: VisibilityLegendOnly}
	shown := &Series{Visibility: VisibilityVisible}

	tests := []struct {
		name  string
		desc  band.DataRateDescriptor
		prev  *Series
		reset bool
		want  Visibility
	}{
		{name: "default for low highlight", desc: lowRate, prev: nil, reset: false, want: VisibilityLegendOnly},
		{name: "default for plain rate", desc: plainRate, prev: nil, reset: false, want: VisibilityVisible},
		{name: "previous choice preserved", desc: plainRate, prev: hidden, reset: false, want: VisibilityLegendOnly},
		{name: "reset discards previous choice", desc: lowRate, prev: shown, reset: true, want: VisibilityLegendOnly},
		{name: "catalog growth falls back to default", desc: plainRate, prev: nil, reset: false, want: VisibilityVisible},
	}
	for _, tt := range tests {
		if got := ResolveVisibility(tt.desc, tt.prev, tt.reset); got != tt.want {
			t.Fatalf("%s: expected %v, got %v", tt.name, tt.want, got)
		}
	}
}
