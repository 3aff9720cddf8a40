package band

import (
	"fmt"
	"image/color"
)

// Highlight classifies a data rate for default emphasis: the slowest rate of
// a band carries the worst-case airtime and is drawn bold, the fastest is
// de-emphasized (hidden from the plot until the user opts in).
type Highlight int

const (
	HighlightNone Highlight = iota
	HighlightLow
	HighlightHigh
)

// DataRateDescriptor is one selectable airtime curve: a named (spreading
// factor, bandwidth) combination with its display attributes.
type DataRateDescriptor struct {
	Label        string
	SpreadFactor int
	Bandwidth    int // kHz
	Color        color.RGBA
	Highlight    Highlight
}

// seriesPalette matches the order of a band's data rate table; wraps around
// for bands with more rates than colors.
var seriesPalette = []color.RGBA{
	{R: 0x2b, G: 0x7f, B: 0xa8, A: 0xff},
	{R: 0xa4, G: 0x63, B: 0x3a, A: 0xff},
	{R: 0x51, G: 0x85, B: 0x4d, A: 0xff},
	{R: 0x85, G: 0x76, B: 0x25, A: 0xff},
	{R: 0x72, G: 0x6c, B: 0xae, A: 0xff},
	{R: 0x97, G: 0x5f, B: 0x91, A: 0xff},
	{R: 0x2e, G: 0xcc, B: 0x71, A: 0xff},
	{R: 0xe5, G: 0x39, B: 0x35, A: 0xff},
}

// DataRates returns the ordered catalog of data rates for a region, slowest
// first. Pure function of region identity: repeated calls return equal
// catalogs in the same order.
func DataRates(region Region) []DataRateDescriptor {
	cfg, ok := Config(region)
	if !ok {
		return nil
	}

	out := make([]DataRateDescriptor, 0, len(cfg.dataRates))
	for i, dr := range cfg.dataRates {
		out = append(out, DataRateDescriptor{
			Label:        fmt.Sprintf("SF%dBW%d", dr.SpreadFactor, dr.Bandwidth),
			SpreadFactor: dr.SpreadFactor,
			Bandwidth:    dr.Bandwidth,
			Color:        seriesPalette[i%len(seriesPalette)],
			Highlight:    highlightForIndex(i, len(cfg.dataRates)),
		})
	}

	return out
}

func highlightForIndex(index, total int) Highlight {
	switch {
	case index == 0:
		return HighlightHigh
	case index == total-1:
		return HighlightLow
	default:
		return HighlightNone
	}
}
