package validate

import (
	"errors"
	"math"
	"testing"

	"github.com/hvacdesign/planload/constants"
	"github.com/hvacdesign/planload/internal/common"
	"github.com/hvacdesign/planload/internal/extract"
	"github.com/hvacdesign/planload/internal/vision"
)

func room(name string, area, conf float64) extract.RoomRecord {
	return extract.RoomRecord{
		Name:          name,
		AreaSqFt:      area,
		ExteriorWalls: 2,
		Orientation:   "S",
		CeilingHeight: 8,
		Confidence:    conf,
		Source:        constants.SourceTraditional,
	}
}

func envelope(conf float64) extract.BuildingEnvelope {
	return extract.BuildingEnvelope{
		WallInsulationR:   13,
		CeilingR:          38,
		WindowUValue:      0.30,
		WindowSHGC:        0.25,
		AirTightnessACH50: 5,
		FoundationType:    "slab",
		Confidence:        conf,
		Source:            constants.SourceTraditional,
	}
}

// A 1480 sq ft plan whose rooms sum within tolerance of the declared total
// validates cleanly.
func TestValidateAccepts(t *testing.T) {
	in := Input{
		BlueprintID: "bp-1",
		Rooms: []extract.RoomRecord{
			room("LIVING ROOM", 320, 0.85),
			room("KITCHEN", 200, 0.80),
			room("BEDROOM 1", 210, 0.85),
			room("BEDROOM 2", 180, 0.75),
			room("BEDROOM 3", 170, 0.80),
			room("BATH", 90, 0.70),
			room("HALL", 240, 0.80),
		},
		Envelope:          envelope(0.8),
		DeclaredTotalSqFt: 1480,
		ScaleConfidence:   0.9,
	}
	got, err := New(Config{}).Validate(in)
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if got.TotalRoomArea() != 1410 {
		t.Errorf("total room area = %v, want 1410", got.TotalRoomArea())
	}
	if got.OverallConfidence != 0.70 {
		t.Errorf("overall = %v, want minimum field confidence 0.70", got.OverallConfidence)
	}
	if got.DeclaredTotalSqFt != 1480 {
		t.Errorf("declared total = %v, want 1480", got.DeclaredTotalSqFt)
	}
}

// Overall confidence is the minimum of every contributing confidence,
// whichever artifact carries it.
func TestOverallConfidenceIsMinimum(t *testing.T) {
	vectors := [][]float64{
		{0.9, 0.8, 0.7},
		{0.61, 0.99, 0.85, 0.72},
		{0.95},
		{0.7, 0.7, 0.7},
	}
	for _, confs := range vectors {
		rooms := make([]extract.RoomRecord, len(confs))
		want := 1.0
		for i, c := range confs {
			rooms[i] = room("R", 100, c)
			want = math.Min(want, c)
		}
		v := New(Config{MinOverallConfidence: 0.1})
		got, err := v.Validate(Input{Rooms: rooms, Envelope: envelope(0.99), ScaleConfidence: 0.98})
		if err != nil {
			t.Fatalf("Validate(%v): %v", confs, err)
		}
		if math.Abs(got.OverallConfidence-math.Min(want, 0.98)) > 1e-12 {
			t.Errorf("confs %v: overall = %v, want %v", confs, got.OverallConfidence, want)
		}
	}

	// a weak envelope drags the run down just like a weak room
	v := New(Config{MinOverallConfidence: 0.1})
	got, err := v.Validate(Input{Rooms: []extract.RoomRecord{room("R", 100, 0.9)}, Envelope: envelope(0.35)})
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if got.OverallConfidence != 0.35 {
		t.Errorf("overall = %v, want envelope confidence 0.35", got.OverallConfidence)
	}
}

// The area cross-check fails iff the discrepancy exceeds 20%.
func TestValidateAreaSumTolerance(t *testing.T) {
	tests := []struct {
		name     string
		declared float64
		sum      float64
		wantErr  bool
	}{
		{"exact", 1000, 1000, false},
		{"at boundary", 1000, 1200, false}, // 20% exactly, not over
		{"just over", 1000, 1201, true},
		{"under declared", 1200, 900, true}, // 25%
		{"within", 1480, 1410, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := Input{
				Rooms: []extract.RoomRecord{
					room("A", tt.sum/2, 0.9),
					room("B", tt.sum/2, 0.9),
				},
				Envelope:          envelope(0.9),
				DeclaredTotalSqFt: tt.declared,
			}
			_, err := New(Config{}).Validate(in)
			var dqErr *common.DataQualityError
			if tt.wantErr {
				if !errors.As(err, &dqErr) {
					t.Fatalf("err = %v, want DataQualityError", err)
				}
				if dqErr.Check != "area_sum" {
					t.Errorf("check = %q, want area_sum", dqErr.Check)
				}
				if dqErr.Expected != tt.declared || dqErr.Actual != tt.sum {
					t.Errorf("carried %v/%v, want declared %v and sum %v",
						dqErr.Expected, dqErr.Actual, tt.declared, tt.sum)
				}
			} else if err != nil {
				t.Fatalf("Validate: %v", err)
			}
		})
	}
}

// Declared 900 sq ft with rooms summing to 1200 is the canonical area
// mismatch: the error names both values.
func TestValidateDeclared900Sum1200(t *testing.T) {
	in := Input{
		Rooms: []extract.RoomRecord{
			room("LIVING ROOM", 500, 0.9),
			room("BEDROOM", 400, 0.9),
			room("KITCHEN", 300, 0.9),
		},
		Envelope:          envelope(0.9),
		DeclaredTotalSqFt: 900,
	}
	_, err := New(Config{}).Validate(in)
	var dqErr *common.DataQualityError
	if !errors.As(err, &dqErr) {
		t.Fatalf("err = %v, want DataQualityError", err)
	}
	if dqErr.Expected != 900 || dqErr.Actual != 1200 {
		t.Errorf("carried expected=%v actual=%v, want 900 and 1200", dqErr.Expected, dqErr.Actual)
	}
}

func TestValidateRejectsNonPositiveArea(t *testing.T) {
	in := Input{
		Rooms:    []extract.RoomRecord{room("BAD", 0, 0.9)},
		Envelope: envelope(0.9),
	}
	_, err := New(Config{}).Validate(in)
	var dqErr *common.DataQualityError
	if !errors.As(err, &dqErr) {
		t.Fatalf("err = %v, want DataQualityError", err)
	}
}

func TestValidateEscalationGate(t *testing.T) {
	weak := Input{
		Rooms:    []extract.RoomRecord{room("ROOM 1", 150, 0.4)},
		Envelope: envelope(0.9),
	}
	_, err := New(Config{}).Validate(weak)
	if !errors.Is(err, ErrBelowGate) {
		t.Fatalf("err = %v, want ErrBelowGate before escalation", err)
	}

	weak.VisionAttempted = true
	_, err = New(Config{}).Validate(weak)
	var lowErr *common.LowConfidenceError
	if !errors.As(err, &lowErr) {
		t.Fatalf("err = %v, want LowConfidenceError after escalation", err)
	}
	if lowErr.Overall != 0.4 || lowErr.Threshold != 0.55 {
		t.Errorf("carried %v/%v, want 0.4 and 0.55", lowErr.Overall, lowErr.Threshold)
	}
}

func TestMergePrefersHigherConfidence(t *testing.T) {
	vis := &vision.ExtractionFields{
		Rooms: []vision.RoomFields{
			{Name: "LIVING ROOM", AreaSqFt: 250, WindowAreaSqFt: 40, ExteriorWalls: 3, Orientation: "W"},
		},
		ModelConfidence: 0.9,
	}
	in := Input{
		Rooms:           []extract.RoomRecord{room("LIVING ROOM", 230, 0.5)},
		Envelope:        envelope(0.9),
		Vision:          vis,
		VisionAttempted: true,
	}
	got, err := New(Config{}).Validate(in)
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}
	r := got.Rooms[0]
	if r.Source != constants.SourceVision {
		t.Fatalf("source = %s, want vision (0.9 beats 0.5 by more than the margin)", r.Source)
	}
	if r.AreaSqFt != 250 || r.WindowAreaSqFt != 40 {
		t.Errorf("vision fields not adopted: %+v", r)
	}
}

// Confidences within the tie margin keep the traditional record.
func TestMergeTiePrefersTraditional(t *testing.T) {
	vis := &vision.ExtractionFields{
		Rooms:           []vision.RoomFields{{Name: "LIVING ROOM", AreaSqFt: 250, WindowAreaSqFt: 40}},
		ModelConfidence: 0.74,
	}
	in := Input{
		Rooms:           []extract.RoomRecord{room("LIVING ROOM", 230, 0.7)},
		Envelope:        envelope(0.9),
		Vision:          vis,
		VisionAttempted: true,
	}
	got, err := New(Config{}).Validate(in)
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}
	r := got.Rooms[0]
	if r.Source != constants.SourceTraditional {
		t.Fatalf("source = %s, want traditional on a tie", r.Source)
	}
	if r.AreaSqFt != 230 {
		t.Errorf("area = %v, want traditional 230", r.AreaSqFt)
	}
	if r.WindowAreaSqFt != 40 {
		t.Errorf("window area %v not backfilled from vision", r.WindowAreaSqFt)
	}
}

func TestMergeAppendsVisionOnlyRooms(t *testing.T) {
	vis := &vision.ExtractionFields{
		Rooms: []vision.RoomFields{
			{Name: "LIVING ROOM", AreaSqFt: 230},
			{Name: "PANTRY", AreaSqFt: 30},
		},
		ModelConfidence: 0.8,
	}
	in := Input{
		Rooms:           []extract.RoomRecord{room("LIVING ROOM", 230, 0.9)},
		Envelope:        envelope(0.9),
		Vision:          vis,
		VisionAttempted: true,
	}
	got, err := New(Config{}).Validate(in)
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if len(got.Rooms) != 2 {
		t.Fatalf("got %d rooms, want 2", len(got.Rooms))
	}
	if got.Rooms[1].Name != "PANTRY" || got.Rooms[1].Source != constants.SourceVision {
		t.Errorf("vision-only room not appended: %+v", got.Rooms[1])
	}
	found := false
	for _, w := range got.Warnings {
		if w == "PANTRY: room seen only by vision, not by geometry" {
			found = true
		}
	}
	if !found {
		t.Errorf("missing vision-only warning, got %v", got.Warnings)
	}
}

// The configured area tolerance governs pairing of differently-named rooms,
// not a fixed 20%.
func TestMergeAreaPairingHonorsConfiguredTolerance(t *testing.T) {
	vis := &vision.ExtractionFields{
		// 25% away from the traditional room's area
		Rooms:           []vision.RoomFields{{Name: "GREAT ROOM", AreaSqFt: 400}},
		ModelConfidence: 0.9,
	}
	in := Input{
		Rooms:           []extract.RoomRecord{room("ROOM 1", 300, 0.7)},
		Envelope:        envelope(0.9),
		Vision:          vis,
		VisionAttempted: true,
	}

	// default tolerance (0.20): no pairing, the vision room is appended
	got, err := New(Config{}).Validate(in)
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if len(got.Rooms) != 2 {
		t.Fatalf("got %d rooms, want 2 under the default tolerance", len(got.Rooms))
	}

	// widened tolerance: the rooms pair and the stronger hypothesis wins
	got, err = New(Config{AreaTolerance: 0.30}).Validate(in)
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if len(got.Rooms) != 1 {
		t.Fatalf("got %d rooms, want 1 when pairing succeeds", len(got.Rooms))
	}
	if got.Rooms[0].Name != "GREAT ROOM" || got.Rooms[0].Source != constants.SourceVision {
		t.Errorf("paired room = %+v, want the adopted vision record", got.Rooms[0])
	}
}

func TestMergeEnvelopeBySource(t *testing.T) {
	trad := envelope(0.5)
	vis := &vision.ExtractionFields{
		Rooms:           []vision.RoomFields{{Name: "R", AreaSqFt: 100}},
		Envelope:        &vision.EnvelopeFields{WallInsulationR: 21, CeilingR: 49, WindowUValue: 0.28, FoundationType: "basement"},
		ModelConfidence: 0.85,
	}
	in := Input{
		Rooms:           []extract.RoomRecord{room("R", 100, 0.9)},
		Envelope:        trad,
		Vision:          vis,
		VisionAttempted: true,
	}
	got, err := New(Config{}).Validate(in)
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if got.Envelope.WallInsulationR != 21 || got.Envelope.FoundationType != "basement" {
		t.Errorf("vision envelope should win at 0.85 vs 0.5: %+v", got.Envelope)
	}
	if got.Envelope.Source != constants.SourceVision {
		t.Errorf("source = %s, want vision", got.Envelope.Source)
	}
	// vision never stated SHGC; the traditional value survives
	if got.Envelope.WindowSHGC != 0.25 {
		t.Errorf("SHGC = %v, want traditional 0.25", got.Envelope.WindowSHGC)
	}
}
