package scale

import (
	"errors"
	"math"
	"testing"

	"github.com/hvacdesign/planload/constants"
	"github.com/hvacdesign/planload/internal/common"
	"github.com/hvacdesign/planload/internal/extract"
	"github.com/hvacdesign/planload/internal/geometry"
)

func nativeToken(text string, y float64) extract.TextToken {
	return extract.TextToken{
		Text:   text,
		Box:    geometry.Rect{MinX: 40, MinY: y, MaxX: 160, MaxY: y + 12},
		Source: constants.TokenSourceNative,
	}
}

// rawRoomWalls returns the walls of a rectangle in raw page points.
func rawRoomWalls(x0, y0, w, h float64) []geometry.WallSegment {
	return []geometry.WallSegment{
		{Start: geometry.Point{X: x0, Y: y0}, End: geometry.Point{X: x0 + w, Y: y0}},
		{Start: geometry.Point{X: x0 + w, Y: y0}, End: geometry.Point{X: x0 + w, Y: y0 + h}},
		{Start: geometry.Point{X: x0 + w, Y: y0 + h}, End: geometry.Point{X: x0, Y: y0 + h}},
		{Start: geometry.Point{X: x0, Y: y0 + h}, End: geometry.Point{X: x0, Y: y0}},
	}
}

func TestDetectFromNotation(t *testing.T) {
	d := New(Config{})
	tokens := []extract.TextToken{
		nativeToken("FIRST FLOOR PLAN", 700),
		nativeToken(`SCALE: 1/4" = 1'-0"`, 60),
	}
	h, err := d.Detect(0, 792, tokens, nil)
	if err != nil {
		t.Fatalf("Detect: %v", err)
	}
	if h.Source != constants.ScaleSourceNotation {
		t.Errorf("source = %s, want ocr_notation", h.Source)
	}
	if math.Abs(h.UnitsPerPixel-4.0/72) > 1e-9 {
		t.Errorf("feet per point = %v, want %v", h.UnitsPerPixel, 4.0/72)
	}
	if h.Confidence < 0.6 {
		t.Errorf("confidence = %v, want >= 0.6", h.Confidence)
	}
}

func TestDetectLowConfidenceOCRNotationRejected(t *testing.T) {
	d := New(Config{})
	tokens := []extract.TextToken{{
		Text:          `SCALE 1:50`,
		Source:        constants.TokenSourceOCR,
		OCRConfidence: 0.1, // 0.5 + 0.4*0.1 = 0.54 < 0.6
	}}
	_, err := d.Detect(0, 792, tokens, nil)
	var scaleErr *common.ScaleDetectionError
	if !errors.As(err, &scaleErr) {
		t.Fatalf("err = %v, want ScaleDetectionError", err)
	}
	if scaleErr.BestConfidence <= 0 {
		t.Errorf("best confidence should carry the rejected hypothesis, got %v", scaleErr.BestConfidence)
	}
}

func TestDetectFromDimensionCrossCheck(t *testing.T) {
	// Two rooms drawn at 1/4" = 1': 10x10 ft and 20x15 ft.
	fpp := 4.0 / 72
	var walls []geometry.WallSegment
	walls = append(walls, rawRoomWalls(0, 0, 10/fpp, 10/fpp)...)
	walls = append(walls, rawRoomWalls(1000, 0, 20/fpp, 15/fpp)...)

	d := New(Config{})
	h, err := d.Detect(0, 792, nil, walls)
	if err != nil {
		t.Fatalf("Detect: %v", err)
	}
	if h.Source != constants.ScaleSourceCrossCheck {
		t.Errorf("source = %s, want dimension_cross_check", h.Source)
	}
	if math.Abs(h.UnitsPerPixel-fpp) > 1e-9 {
		t.Errorf("feet per point = %v, want %v", h.UnitsPerPixel, fpp)
	}
}

func TestDetectOverrideWins(t *testing.T) {
	d := New(Config{Override: map[int]float64{2: 0.05}})
	tokens := []extract.TextToken{nativeToken(`SCALE: 1/4" = 1'-0"`, 60)}
	h, err := d.Detect(2, 792, tokens, nil)
	if err != nil {
		t.Fatalf("Detect: %v", err)
	}
	if h.Source != constants.ScaleSourceOverride {
		t.Errorf("source = %s, want override", h.Source)
	}
	if h.UnitsPerPixel != 0.05 {
		t.Errorf("feet per point = %v, want 0.05", h.UnitsPerPixel)
	}
	if h.Confidence != 1.0 {
		t.Errorf("override confidence = %v, want 1.0", h.Confidence)
	}
}

// No notation anywhere and no plausible cross-check candidate: the detector
// halts the run, it never falls back to a default scale.
func TestDetectNothingFound(t *testing.T) {
	d := New(Config{})
	// walls form a room so absurdly small that no standard scale lands its
	// area in the plausible band
	walls := rawRoomWalls(0, 0, 4, 4)
	_, err := d.Detect(0, 792, []extract.TextToken{nativeToken("LIVING ROOM", 400)}, walls)
	var scaleErr *common.ScaleDetectionError
	if !errors.As(err, &scaleErr) {
		t.Fatalf("err = %v, want ScaleDetectionError", err)
	}
}
