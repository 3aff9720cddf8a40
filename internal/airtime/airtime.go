// Package airtime computes LoRa frame on-air durations using the SX127x
// closed-form symbol-time equation. All functions are pure and total for
// physically valid modem settings.
package airtime

import (
	"fmt"
	"math"

	"airtimegraph/internal/band"
)

// CodingRate is the forward error correction scheme, coded as the number of
// parity bits added per 4 data bits. The zero value means "not configured".
type CodingRate int

const (
	CodingRateUnset CodingRate = 0
	CodingRate4_5   CodingRate = 1
	CodingRate4_6   CodingRate = 2
	CodingRate4_7   CodingRate = 3
	CodingRate4_8   CodingRate = 4
)

func (cr CodingRate) String() string {
	if cr < CodingRate4_5 || cr > CodingRate4_8 {
		return "unset"
	}

	return fmt.Sprintf("4/%d", int(cr)+4)
}

// CodingRates returns the configurable coding rates in order.
func CodingRates() []CodingRate {
	return []CodingRate{CodingRate4_5, CodingRate4_6, CodingRate4_7, CodingRate4_8}
}

// Params carries the modem settings the airtime equation depends on.
type Params struct {
	SpreadFactor        int
	Bandwidth           int // kHz
	CodingRate          CodingRate
	Modulation          band.Modulation
	PreambleLength      int
	ExplicitHeader      bool
	LowDataRateOptimize bool
	CRC                 bool
}

// fskBitrate is the fixed FSK data rate (bits/s) used by LoRaWAN FSK channels.
const fskBitrate = 50000

// Duration returns the on-air time in milliseconds for a frame carrying
// payloadBytes of physical payload.
func Duration(payloadBytes int, p Params) float64 {
	if p.Modulation == band.FSKModulation {
		// Preamble (5), sync word (3), length (1) and CRC (2) around the payload.
		return float64((payloadBytes+11)*8) / fskBitrate * 1000
	}

	symbolTime := math.Pow(2, float64(p.SpreadFactor)) / float64(p.Bandwidth)
	preambleTime := (float64(p.PreambleLength) + 4.25) * symbolTime

	crc := 0
	if p.CRC {
		crc = 1
	}
	implicitHeader := 1
	if p.ExplicitHeader {
		implicitHeader = 0
	}
	deOptimize := 0
	if p.LowDataRateOptimize {
		deOptimize = 1
	}

	numerator := float64(8*payloadBytes - 4*p.SpreadFactor + 28 + 16*crc - 20*implicitHeader)
	denominator := float64(4 * (p.SpreadFactor - 2*deOptimize))
	payloadSymbols := math.Max(math.Ceil(numerator/denominator)*float64(int(p.CodingRate)+4), 0)
	payloadTime := (8 + payloadSymbols) * symbolTime

	return preambleTime + payloadTime
}
