package match

import (
	"strings"
	"testing"

	"github.com/hvacdesign/planload/constants"
	"github.com/hvacdesign/planload/internal/extract"
	"github.com/hvacdesign/planload/internal/geometry"
)

func rect(x, y, w, h float64, exterior int) geometry.RoomPolygon {
	return geometry.RoomPolygon{
		Boundary: []geometry.Point{
			{X: x, Y: y}, {X: x + w, Y: y}, {X: x + w, Y: y + h}, {X: x, Y: y + h},
		},
		ExteriorWallCount: exterior,
	}
}

// tokenAt places a token whose box centroid lands at the given feet
// coordinates (matcher tests use feetPerPoint = 1).
func tokenAt(text string, x, y float64, src constants.TokenSource, ocrConf float64) extract.TextToken {
	return extract.TextToken{
		Text:          text,
		Box:           geometry.Rect{MinX: x - 1, MinY: y - 1, MaxX: x + 1, MaxY: y + 1},
		Source:        src,
		OCRConfidence: ocrConf,
	}
}

func TestMatchNamesAndCrossChecks(t *testing.T) {
	rooms := []geometry.RoomPolygon{
		rect(0, 0, 10, 12, 2),  // 120 sq ft
		rect(20, 0, 14, 15, 2), // 210 sq ft
	}
	tokens := []extract.TextToken{
		tokenAt("BEDROOM 2", 5, 6, constants.TokenSourceNative, 0),
		tokenAt("LIVING ROOM", 27, 7, constants.TokenSourceNative, 0),
		{Text: `10' x 12'`, Box: geometry.Rect{MinX: 4, MinY: 2, MaxX: 6, MaxY: 4}, Source: constants.TokenSourceNative, IsArea: true, AreaSqFt: 120},
	}

	got := New(Config{}).Match(rooms, tokens, 1)
	if len(got.Rooms) != 2 {
		t.Fatalf("got %d rooms, want 2", len(got.Rooms))
	}
	if got.Rooms[0].Name != "BEDROOM 2" {
		t.Errorf("room 0 name = %q, want BEDROOM 2", got.Rooms[0].Name)
	}
	if got.Rooms[1].Name != "LIVING ROOM" {
		t.Errorf("room 1 name = %q, want LIVING ROOM", got.Rooms[1].Name)
	}
	if got.Rooms[0].LowConfidence {
		t.Error("agreeing annotation should not flag low confidence")
	}
	if got.Rooms[0].Confidence <= got.Rooms[1].Confidence {
		t.Errorf("cross-checked room confidence %v should exceed unchecked %v",
			got.Rooms[0].Confidence, got.Rooms[1].Confidence)
	}
	if got.Rooms[0].ExteriorWalls != 2 {
		t.Errorf("exterior walls = %d, want 2", got.Rooms[0].ExteriorWalls)
	}
}

// The area cross-check flags a room iff the disagreement exceeds 20%.
func TestMatchAreaToleranceBoundary(t *testing.T) {
	tests := []struct {
		name     string
		declared float64
		wantFlag bool
	}{
		{"exact", 120, false},
		{"at tolerance", 100, false},   // |120-100|/100 = 0.20, not over
		{"over tolerance", 99, true},   // 0.212
		{"way over", 200, true},        // 0.40
		{"slightly under", 110, false}, // 0.09
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rooms := []geometry.RoomPolygon{rect(0, 0, 10, 12, 2)}
			tokens := []extract.TextToken{
				tokenAt("DEN", 5, 6, constants.TokenSourceNative, 0),
				{Text: "dims", Box: geometry.Rect{MinX: 4, MinY: 2, MaxX: 6, MaxY: 4}, IsArea: true, AreaSqFt: tt.declared},
			}
			got := New(Config{}).Match(rooms, tokens, 1)
			if got.Rooms[0].LowConfidence != tt.wantFlag {
				t.Errorf("declared %v: LowConfidence = %v, want %v",
					tt.declared, got.Rooms[0].LowConfidence, tt.wantFlag)
			}
			hasWarning := false
			for _, w := range got.Warnings {
				if strings.Contains(w, "disagrees") {
					hasWarning = true
				}
			}
			if hasWarning != tt.wantFlag {
				t.Errorf("declared %v: warning present = %v, want %v", tt.declared, hasWarning, tt.wantFlag)
			}
		})
	}
}

// Label candidates tied on distance prefer native text over OCR, then higher
// OCR confidence.
func TestMatchTieBreak(t *testing.T) {
	rooms := []geometry.RoomPolygon{rect(0, 0, 10, 10, 2)}
	tokens := []extract.TextToken{
		tokenAt("OFFICE", 4.5, 5, constants.TokenSourceOCR, 0.9),
		tokenAt("STUDY", 5.5, 5, constants.TokenSourceNative, 0),
	}
	got := New(Config{}).Match(rooms, tokens, 1)
	if got.Rooms[0].Name != "STUDY" {
		t.Errorf("name = %q, want native-source STUDY", got.Rooms[0].Name)
	}

	tokens = []extract.TextToken{
		tokenAt("OFFICE", 4.5, 5, constants.TokenSourceOCR, 0.6),
		tokenAt("STUDY", 5.5, 5, constants.TokenSourceOCR, 0.9),
	}
	got = New(Config{}).Match(rooms, tokens, 1)
	if got.Rooms[0].Name != "STUDY" {
		t.Errorf("name = %q, want higher-confidence STUDY", got.Rooms[0].Name)
	}
}

func TestMatchSynthesizesNameWhenUnlabeled(t *testing.T) {
	rooms := []geometry.RoomPolygon{rect(0, 0, 10, 10, 2)}
	got := New(Config{}).Match(rooms, nil, 1)
	if got.Rooms[0].Name != "ROOM 1" {
		t.Errorf("name = %q, want ROOM 1", got.Rooms[0].Name)
	}
	if len(got.Warnings) == 0 {
		t.Error("expected a warning for the synthesized name")
	}
}

// A label belongs to one room; the nearest polygon claims it.
func TestMatchLabelNotReused(t *testing.T) {
	rooms := []geometry.RoomPolygon{
		rect(0, 0, 10, 10, 2),
		rect(10, 0, 10, 10, 2),
	}
	tokens := []extract.TextToken{
		tokenAt("PANTRY", 5, 5, constants.TokenSourceNative, 0),
	}
	got := New(Config{}).Match(rooms, tokens, 1)
	if got.Rooms[0].Name != "PANTRY" {
		t.Errorf("room 0 name = %q, want PANTRY", got.Rooms[0].Name)
	}
	if got.Rooms[1].Name == "PANTRY" {
		t.Error("label reused for second room")
	}
}

func TestMatchScalesTokenBoxes(t *testing.T) {
	fpp := 4.0 / 72 // quarter-inch scale
	rooms := []geometry.RoomPolygon{rect(0, 0, 10, 12, 2)}
	// centroid (5,6) ft sits at page point (90,108)
	tokens := []extract.TextToken{
		tokenAt("NURSERY", 5/fpp, 6/fpp, constants.TokenSourceNative, 0),
	}
	got := New(Config{}).Match(rooms, tokens, fpp)
	if got.Rooms[0].Name != "NURSERY" {
		t.Errorf("name = %q, want NURSERY", got.Rooms[0].Name)
	}
}
