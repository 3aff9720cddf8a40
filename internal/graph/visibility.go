package graph

import "airtimegraph/internal/band"

// defaultVisibility is the configured visibility for a data rate before any
// user toggle: de-emphasized rates start out of the plot.
func defaultVisibility(desc band.DataRateDescriptor) Visibility {
	if desc.Highlight == band.HighlightLow {
		return VisibilityLegendOnly
	}

	return VisibilityVisible
}

// ResolveVisibility merges the visibility for a freshly computed series.
// reset is true when the region or coding rate changed, invalidating prior
// user choices. prev is the series at the same catalog index in the previous
// snapshot, nil when the catalog grew past it. Pure merge: never triggers
// recomputation.
func ResolveVisibility(desc band.DataRateDescriptor, prev *Series, reset bool) Visibility {
	if reset || prev == nil {
		return defaultVisibility(desc)
	}

	return prev.Visibility
}
