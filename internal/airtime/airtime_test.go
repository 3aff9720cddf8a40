package airtime

import (
	"math"
	"testing"

	"airtimegraph/internal/band"
)

func referenceParams() Params {
	return Params{
		SpreadFactor:   7,
		Bandwidth:      125,
		CodingRate:     CodingRate4_5,
		Modulation:     band.LoRaModulation,
		PreambleLength: 8,
		ExplicitHeader: true,
		CRC:            true,
	}
}

func TestDurationReferenceFrame(t *testing.T) {
	// SF7/BW125/CR4/5, 13 byte payload, 8 symbol preamble, explicit header,
	// CRC on: 12.544ms preamble + 33 payload symbols * 1.024ms = 46.336ms.
	got := Duration(13, referenceParams())
	if math.Abs(got-46.336) > 1e-9 {
		t.Fatalf("expected 46.336ms, got %v", got)
	}
}

func TestDurationDeterministic(t *testing.T) {
	p := referenceParams()
	first := Duration(51, p)
	for i := 0; i < 10; i++ {
		if got := Duration(51, p); got != first {
			t.Fatalf("expected stable result %v, got %v", first, got)
		}
	}
}

func TestDurationMonotoneInPayload(t *testing.T) {
	p := referenceParams()
	prev := Duration(0, p)
	for size := 10; size <= 250; size += 10 {
		cur := Duration(size, p)
		if cur < prev {
			t.Fatalf("airtime decreased from %v to %v at payload %d", prev, cur, size)
		}
		prev = cur
	}
}

func TestDurationSlowerForHigherSpreadFactor(t *testing.T) {
	fast := referenceParams()
	slow := fast
	slow.SpreadFactor = 12
	if Duration(20, slow) <= Duration(20, fast) {
		t.Fatal("expected SF12 to be slower than SF7")
	}
}

func TestDurationFSK(t *testing.T) {
	p := Params{Modulation: band.FSKModulation}
	// (13+11) bytes * 8 bits / 50kbps = 3.84ms.
	got := Duration(13, p)
	if math.Abs(got-3.84) > 1e-9 {
		t.Fatalf("expected 3.84ms, got %v", got)
	}
}

func TestCodingRateString(t *testing.T) {
	tests := []struct {
		cr   CodingRate
		want string
	}{
		{CodingRate4_5, "4/5"},
		{CodingRate4_6, "4/6"},
		{CodingRate4_7, "4/7"},
		{CodingRate4_8, "4/8"},
		{CodingRateUnset, "unset"},
	}
	for _, tt := range tests {
		if got := tt.cr.String(); got != tt.want {
			t.Fatalf("expected %q, got %q", tt.want, got)
		}
	}
}

func TestSequence(t *testing.T) {
	tests := []struct {
		name             string
		start, end, step int
		want             []int
	}{
		{name: "stride ten", start: 0, end: 31, step: 10, want: []int{0, 10, 20, 30}},
		{name: "end exclusive", start: 0, end: 30, step: 10, want: []int{0, 10, 20}},
		{name: "empty range", start: 5, end: 5, step: 10, want: nil},
		{name: "bad step", start: 0, end: 10, step: 0, want: nil},
	}
	for _, tt := range tests {
		got := Sequence(tt.start, tt.end, tt.step)
		if len(got) != len(tt.want) {
			t.Fatalf("%s: expected %v, got %v", tt.name, tt.want, got)
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Fatalf("%s: expected %v, got %v", tt.name, tt.want, got)
			}
		}
	}
}
