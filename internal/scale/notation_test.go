package scale

import (
	"math"
	"testing"
)

func TestParseNotation(t *testing.T) {
	tests := []struct {
		name string
		text string
		want float64 // feet per point
		ok   bool
	}{
		{"quarter inch", `1/4" = 1'-0"`, 4.0 / 72, true},
		{"quarter inch no dash", `SCALE: 1/4" = 1'`, 4.0 / 72, true},
		{"eighth inch", `1/8" = 1'-0"`, 8.0 / 72, true},
		{"three sixteenths", `3/16" = 1'-0"`, (16.0 / 3) / 72, true},
		{"half inch", `1/2" = 1'-0"`, 2.0 / 72, true},
		{"spelled out", `1/4 in = 1 ft`, 4.0 / 72, true},
		{"metric fifty", `SCALE 1:50`, 50.0 / 864, true},
		{"metric hundred", `1 : 100`, 100.0 / 864, true},
		{"room label", "LIVING ROOM", 0, false},
		{"dimension string", `12'-6" x 14'-0"`, 0, false},
		{"empty", "", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseNotation(tt.text)
			if ok != tt.ok {
				t.Fatalf("ok = %v, want %v", ok, tt.ok)
			}
			if ok && math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("feet per point = %v, want %v", got, tt.want)
			}
		})
	}
}

// Scale round-trip: converting feet to page points at a given ratio and back
// recovers the original value within floating-point tolerance.
func TestScaleRoundTrip(t *testing.T) {
	for _, fpp := range StandardScales() {
		for _, feet := range []float64{1, 12.5, 30, 148.75} {
			points := feet / fpp
			back := points * fpp
			if math.Abs(back-feet) > 1e-9 {
				t.Errorf("round trip at %v: %v -> %v -> %v", fpp, feet, points, back)
			}
		}
	}
}

func TestStandardScales(t *testing.T) {
	got := StandardScales()
	if len(got) != 4 {
		t.Fatalf("got %d standard scales, want 4", len(got))
	}
	// 1/4" = 1' means one point of paper is 4/72 feet
	if math.Abs(got[2]-4.0/72) > 1e-9 {
		t.Errorf("quarter-inch scale = %v, want %v", got[2], 4.0/72)
	}
}
