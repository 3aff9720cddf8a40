package band

import "time"

// Region identifies a LoRaWAN regional band plan.
type Region string

const (
	RegionEU868 Region = "EU868"
	RegionUS915 Region = "US915"
	RegionAU915 Region = "AU915"
	RegionCN470 Region = "CN470"
	RegionAS923 Region = "AS923"
	RegionKR920 Region = "KR920"
	RegionIN865 Region = "IN865"
	RegionRU864 Region = "RU864"
)

// Modulation identifies the radio modulation mode of a band.
type Modulation string

const (
	LoRaModulation Modulation = "LORA"
	FSKModulation  Modulation = "FSK"
)

// dataRate is one (spreading factor, bandwidth) combination offered by a band.
type dataRate struct {
	SpreadFactor int
	Bandwidth    int // kHz
}

// RegionConfig describes the radio parameters of one regional band plan.
// Value type: configs are compared by value when deciding whether a region
// change invalidates derived state.
type RegionConfig struct {
	Region            Region
	Name              string
	Modulation        Modulation
	SpreadFactors     []int // ordered, slowest first
	Bandwidths        []int // ordered, kHz
	MaxMACPayloadSize int   // bytes, largest N over the band's data rates
	MaxDwellTime      time.Duration // zero means no dwell limit

	dataRates []dataRate
}

// regionConfigs lists the supported band plans. Data rate tables follow the
// LoRaWAN regional parameters; dwell limits apply to US915/AU915/AS923.
var regionConfigs = []RegionConfig{
	{
		Region: RegionEU868, Name: "EU 863-870", Modulation: LoRaModulation,
		MaxMACPayloadSize: 222,
		dataRates: []dataRate{
			{12, 125}, {11, 125}, {10, 125}, {9, 125}, {8, 125}, {7, 125}, {7, 250},
		},
	},
	{
		Region: RegionUS915, Name: "US 902-928", Modulation: LoRaModulation,
		MaxMACPayloadSize: 242, MaxDwellTime: 400 * time.Millisecond,
		dataRates: []dataRate{
			{10, 125}, {9, 125}, {8, 125}, {7, 125}, {8, 500},
		},
	},
	{
		Region: RegionAU915, Name: "AU 915-928", Modulation: LoRaModulation,
		MaxMACPayloadSize: 250, MaxDwellTime: 400 * time.Millisecond,
		dataRates: []dataRate{
			{12, 125}, {11, 125}, {10, 125}, {9, 125}, {8, 125}, {7, 125}, {8, 500},
		},
	},
	{
		Region: RegionCN470, Name: "CN 470-510", Modulation: LoRaModulation,
		MaxMACPayloadSize: 222,
		dataRates: []dataRate{
			{12, 125}, {11, 125}, {10, 125}, {9, 125}, {8, 125}, {7, 125},
		},
	},
	{
		Region: RegionAS923, Name: "AS 923", Modulation: LoRaModulation,
		MaxMACPayloadSize: 250, MaxDwellTime: 400 * time.Millisecond,
		dataRates: []dataRate{
			{12, 125}, {11, 125}, {10, 125}, {9, 125}, {8, 125}, {7, 125}, {7, 250},
		},
	},
	{
		Region: RegionKR920, Name: "KR 920-923", Modulation: LoRaModulation,
		MaxMACPayloadSize: 222,
		dataRates: []dataRate{
			{12, 125}, {11, 125}, {10, 125}, {9, 125}, {8, 125}, {7, 125},
		},
	},
	{
		Region: RegionIN865, Name: "IN 865-867", Modulation: LoRaModulation,
		MaxMACPayloadSize: 250,
		dataRates: []dataRate{
			{12, 125}, {11, 125}, {10, 125}, {9, 125}, {8, 125}, {7, 125},
		},
	},
	{
		Region: RegionRU864, Name: "RU 864-870", Modulation: LoRaModulation,
		MaxMACPayloadSize: 222,
		dataRates: []dataRate{
			{12, 125}, {11, 125}, {10, 125}, {9, 125}, {8, 125}, {7, 125},
		},
	},
}

// Regions returns the supported regions in display order.
func Regions() []Region {
	out := make([]Region, 0, len(regionConfigs))
	for _, cfg := range regionConfigs {
		out = append(out, cfg.Region)
	}

	return out
}

// Config resolves the band plan for a region.
func Config(region Region) (RegionConfig, bool) {
	for _, cfg := range regionConfigs {
		if cfg.Region == region {
			out := cfg
			out.SpreadFactors = spreadFactorSet(cfg.dataRates)
			out.Bandwidths = bandwidthSet(cfg.dataRates)

			return out, true
		}
	}

	return RegionConfig{}, false
}

func spreadFactorSet(rates []dataRate) []int {
	var out []int
	for _, dr := range rates {
		if !containsInt(out, dr.SpreadFactor) {
			out = append(out, dr.SpreadFactor)
		}
	}

	return out
}

func bandwidthSet(rates []dataRate) []int {
	var out []int
	for _, dr := range rates {
		if !containsInt(out, dr.Bandwidth) {
			out = append(out, dr.Bandwidth)
		}
	}

	return out
}

func containsInt(values []int, v int) bool {
	for _, existing := range values {
		if existing == v {
			return true
		}
	}

	return false
}
