package pipeline

import (
	"context"
	"errors"
	"testing"

	"github.com/hvacdesign/planload/constants"
	"github.com/hvacdesign/planload/internal/audit"
	"github.com/hvacdesign/planload/internal/classify"
	"github.com/hvacdesign/planload/internal/common"
	"github.com/hvacdesign/planload/internal/extract"
	"github.com/hvacdesign/planload/internal/geometry"
	"github.com/hvacdesign/planload/internal/ingest"
	"github.com/hvacdesign/planload/internal/loadcalc"
	"github.com/hvacdesign/planload/internal/match"
	"github.com/hvacdesign/planload/internal/scale"
	"github.com/hvacdesign/planload/internal/textextract"
	"github.com/hvacdesign/planload/internal/validate"
	"github.com/hvacdesign/planload/internal/vision"
)

// quarter-inch scale: one page point is 4/72 feet
const testFPP = 4.0 / 72

type fakeIngestor struct {
	pages []ingest.PageContent
}

func (f *fakeIngestor) Ingest(_ context.Context, _ string) (*extract.Blueprint, []ingest.PageContent, error) {
	bp := &extract.Blueprint{ID: "bp-test", Filename: "plan.pdf", PageCount: len(f.pages)}
	return bp, f.pages, nil
}

type nopRunner struct{}

func (nopRunner) Run(context.Context, string, ...string) ([]byte, []byte, error) {
	return nil, nil, nil
}

type fakeVision struct {
	fields vision.ExtractionFields
	err    error
	calls  int
}

func (f *fakeVision) RequestStructuredExtraction(context.Context, vision.ExtractRequest) (vision.ExtractResponse, []byte, error) {
	f.calls++
	if f.err != nil {
		return vision.ExtractResponse{}, nil, f.err
	}
	return vision.ExtractResponse{Fields: f.fields, TokenCost: 100}, nil, nil
}

type recordingSink struct {
	stages []string
}

func (r *recordingSink) Emit(_ context.Context, rec audit.Record) {
	r.stages = append(r.stages, rec.Stage)
}

func line(x1, y1, x2, y2 float64) ingest.LinePrimitive {
	return ingest.LinePrimitive{
		From: geometry.Point{X: x1, Y: y1},
		To:   geometry.Point{X: x2, Y: y2},
	}
}

// addText positions a token so its box centroid lands at (cx, cy) page
// points, matching the extractor's glyph-box approximation at font size 12.
func addText(pg *ingest.PageContent, text string, cx, cy float64) {
	pg.Texts = append(pg.Texts, ingest.PositionedText{
		Text:     text,
		At:       geometry.Point{X: cx - 3*float64(len(text)), Y: cy - 6},
		FontSize: 12,
	})
}

// floorPlanPage draws two rooms at quarter-inch scale: a 16x20 ft living
// room and an adjacent 10x20 ft kitchen sharing one wall, 520 sq ft total.
func floorPlanPage(labeled bool) ingest.PageContent {
	pg := ingest.PageContent{Index: 0, WidthPt: 612, HeightPt: 792}

	pg.Lines = append(pg.Lines,
		line(0, 0, 288, 0),
		line(288, 0, 468, 0),
		line(468, 0, 468, 360),
		line(468, 360, 288, 360),
		line(288, 360, 0, 360),
		line(0, 360, 0, 0),
		line(288, 0, 288, 360), // shared wall
	)

	addText(&pg, "FIRST FLOOR PLAN", 120, 700)
	addText(&pg, `SCALE: 1/4" = 1'-0"`, 120, 60)
	addText(&pg, "TOTAL HEATED AREA: 520 SQ. FT.", 300, 700)
	addText(&pg, "R-13 BATT INSULATION @ EXT WALLS", 300, 660)
	addText(&pg, "R-38 BLOWN INSULATION @ CLG", 300, 640)
	addText(&pg, "U-0.30 WINDOWS, SHGC 0.25", 300, 620)
	addText(&pg, "5 ACH50 TARGET", 300, 600)
	addText(&pg, "4 IN SLAB ON GRADE", 300, 580)
	if labeled {
		addText(&pg, "LIVING ROOM", 144, 180) // centroid of the 16x20 room
		addText(&pg, "KITCHEN", 378, 180)     // centroid of the 10x20 room
	}
	return pg
}

func newProcessor(pages []ingest.PageContent, vis vision.Extractor, sink audit.Sink) *Processor {
	if sink == nil {
		sink = audit.NopSink{}
	}
	climate := &loadcalc.StaticClimateProvider{
		ByZIP: map[string]loadcalc.ClimateData{
			"30301": {
				Zone:                 "4A",
				WinterDesignTempF:    20,
				SummerDesignTempF:    92,
				SummerHumidityGrains: 35,
			},
		},
	}
	return New(
		Config{Audit: sink},
		Deps{
			Ingestor:   &fakeIngestor{pages: pages},
			Classifier: classify.New(classify.Config{}),
			Detector:   scale.New(scale.Config{}),
			Texts:      textextract.NewWithRunner(textextract.Config{}, nopRunner{}),
			Matcher:    match.New(match.Config{}),
			Validator:  validate.New(validate.Config{}),
			Vision:     vis,
			Climate:    climate,
		},
	)
}

func TestProcessEndToEnd(t *testing.T) {
	sink := &recordingSink{}
	p := newProcessor([]ingest.PageContent{floorPlanPage(true)}, nil, sink)

	out, err := p.Process(context.Background(), "job-1", "plan.pdf", "30301")
	if err != nil {
		t.Fatalf("Process: %v", err)
	}

	if out.Extraction.BlueprintID != "bp-test" {
		t.Errorf("blueprint id = %q", out.Extraction.BlueprintID)
	}
	if len(out.Extraction.Rooms) != 2 {
		t.Fatalf("got %d rooms, want 2", len(out.Extraction.Rooms))
	}
	living := out.Extraction.Rooms[0] // rooms come largest first
	if living.Name != "LIVING ROOM" {
		t.Errorf("room 0 = %q, want LIVING ROOM", living.Name)
	}
	if living.AreaSqFt < 315 || living.AreaSqFt > 325 {
		t.Errorf("living room area = %v, want about 320", living.AreaSqFt)
	}
	if out.Extraction.Rooms[1].Name != "KITCHEN" {
		t.Errorf("room 1 = %q, want KITCHEN", out.Extraction.Rooms[1].Name)
	}
	if out.Extraction.DeclaredTotalSqFt != 520 {
		t.Errorf("declared total = %v, want 520", out.Extraction.DeclaredTotalSqFt)
	}
	if out.Extraction.Envelope.WallInsulationR != 13 || out.Extraction.Envelope.FoundationType != "slab" {
		t.Errorf("envelope not read from notes: %+v", out.Extraction.Envelope)
	}
	if out.Extraction.OverallConfidence < 0.55 {
		t.Errorf("overall = %v, expected above the gate", out.Extraction.OverallConfidence)
	}
	if out.Loads.TotalHeatingBTUH <= 0 || out.Loads.CoolingTons <= 0 {
		t.Errorf("loads not computed: %+v", out.Loads)
	}

	wantStages := []string{"ingest", "classify", "text_extract", "scale", "geometry", "match", "validate", "loadcalc"}
	if len(sink.stages) != len(wantStages) {
		t.Fatalf("audit stages = %v, want %v", sink.stages, wantStages)
	}
	for i := range wantStages {
		if sink.stages[i] != wantStages[i] {
			t.Fatalf("audit stages = %v, want %v (faithful, in order)", sink.stages, wantStages)
		}
	}
}

// Unlabeled rooms leave the traditional confidence below the gate; the run
// escalates to vision exactly once and adopts its higher-confidence rooms.
func TestProcessEscalatesToVision(t *testing.T) {
	vis := &fakeVision{fields: vision.ExtractionFields{
		Rooms: []vision.RoomFields{
			{Name: "LIVING ROOM", AreaSqFt: 320, WindowAreaSqFt: 40, ExteriorWalls: 3, Orientation: "S"},
			{Name: "KITCHEN", AreaSqFt: 200, WindowAreaSqFt: 20, ExteriorWalls: 3, Orientation: "W"},
		},
		ModelConfidence: 0.8,
	}}
	sink := &recordingSink{}
	p := newProcessor([]ingest.PageContent{floorPlanPage(false)}, vis, sink)

	out, err := p.Process(context.Background(), "job-2", "plan.pdf", "30301")
	if err != nil {
		t.Fatalf("Process: %v", err)
	}
	if vis.calls != 1 {
		t.Errorf("vision calls = %d, want 1", vis.calls)
	}
	if len(out.Extraction.Rooms) != 2 {
		t.Fatalf("got %d rooms, want 2", len(out.Extraction.Rooms))
	}
	for _, r := range out.Extraction.Rooms {
		if r.Source != constants.SourceVision {
			t.Errorf("room %s source = %s, want vision", r.Name, r.Source)
		}
	}
	found := false
	for _, s := range sink.stages {
		if s == "vision" {
			found = true
		}
	}
	if !found {
		t.Errorf("vision stage missing from audit trail: %v", sink.stages)
	}
}

// When escalation itself fails the run fails loud; the below-gate
// traditional result is never returned as good enough.
func TestProcessVisionFailureFailsRun(t *testing.T) {
	vis := &fakeVision{err: &common.AIVisionError{Op: "chat completion", Cause: errors.New("timeout")}}
	p := newProcessor([]ingest.PageContent{floorPlanPage(false)}, vis, nil)

	_, err := p.Process(context.Background(), "job-3", "plan.pdf", "30301")
	var visionErr *common.AIVisionError
	if !errors.As(err, &visionErr) {
		t.Fatalf("err = %v, want AIVisionError", err)
	}
}

func TestProcessCooperativeCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	p := newProcessor([]ingest.PageContent{floorPlanPage(true)}, nil, nil)

	_, err := p.Process(ctx, "job-4", "plan.pdf", "30301")
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
}

// A page whose scale cannot be established halts the run with the typed
// error, never a silent default scale.
func TestProcessScaleFailureHalts(t *testing.T) {
	pg := ingest.PageContent{Index: 0, WidthPt: 612, HeightPt: 792}
	// enough structure to classify, nothing to establish scale
	pg.Lines = append(pg.Lines,
		line(0, 0, 4, 0), line(4, 0, 4, 4), line(4, 4, 0, 4), line(0, 4, 0, 0),
	)
	addText(&pg, "FIRST FLOOR PLAN", 120, 700)
	addText(&pg, "ROOM", 2, 2)
	addText(&pg, "NOTES", 300, 700)
	addText(&pg, "MORE NOTES", 300, 680)
	addText(&pg, "EVEN MORE", 300, 660)

	p := newProcessor([]ingest.PageContent{pg}, nil, nil)
	_, err := p.Process(context.Background(), "job-5", "plan.pdf", "30301")
	var scaleErr *common.ScaleDetectionError
	if !errors.As(err, &scaleErr) {
		t.Fatalf("err = %v, want ScaleDetectionError", err)
	}
}
