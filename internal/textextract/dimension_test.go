package textextract

import (
	"math"
	"testing"
)

func TestParseLength(t *testing.T) {
	tests := []struct {
		text string
		want float64
		ok   bool
	}{
		{`12'-6"`, 12.5, true},
		{`14'-0"`, 14, true},
		{`9'`, 9, true},
		{`12' - 6"`, 12.5, true},
		{`10'-7 1/2"`, 10.625, true},
		{`12'-14"`, 0, false}, // inches overflow
		{"BEDROOM", 0, false},
		{"1:50", 0, false},
		{"", 0, false},
	}
	for _, tt := range tests {
		got, ok := ParseLength(tt.text)
		if ok != tt.ok {
			t.Errorf("ParseLength(%q) ok = %v, want %v", tt.text, ok, tt.ok)
			continue
		}
		if ok && math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("ParseLength(%q) = %v, want %v", tt.text, got, tt.want)
		}
	}
}

func TestParseDimensionPair(t *testing.T) {
	tests := []struct {
		text string
		want float64
		ok   bool
	}{
		{`12'-6" x 14'-0"`, 175, true},
		{`10' X 10'`, 100, true},
		{`12'-6" × 14'-0"`, 175, true},
		{`12'-6"`, 0, false},
		{"LIVING x ROOM", 0, false},
	}
	for _, tt := range tests {
		got, ok := ParseDimensionPair(tt.text)
		if ok != tt.ok {
			t.Errorf("ParseDimensionPair(%q) ok = %v, want %v", tt.text, ok, tt.ok)
			continue
		}
		if ok && math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("ParseDimensionPair(%q) = %v, want %v", tt.text, got, tt.want)
		}
	}
}

func TestLooksLikeRoomLabel(t *testing.T) {
	yes := []string{"LIVING ROOM", "BEDROOM 2", "Kitchen", "MASTER BATH"}
	no := []string{`12'-6"`, "", "A1", "SEE DETAIL 7/A-301 FOR TYPICAL WALL ASSEMBLY AND NOTES"}
	for _, s := range yes {
		if !LooksLikeRoomLabel(s) {
			t.Errorf("LooksLikeRoomLabel(%q) = false, want true", s)
		}
	}
	for _, s := range no {
		if LooksLikeRoomLabel(s) {
			t.Errorf("LooksLikeRoomLabel(%q) = true, want false", s)
		}
	}
}
