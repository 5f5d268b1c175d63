package classify

import (
	"testing"

	"github.com/hvacdesign/planload/constants"
	"github.com/hvacdesign/planload/internal/extract"
	"github.com/hvacdesign/planload/internal/geometry"
	"github.com/hvacdesign/planload/internal/ingest"
)

func pageWithText(index int, texts ...string) ingest.PageContent {
	pg := ingest.PageContent{Index: index}
	for _, t := range texts {
		pg.Texts = append(pg.Texts, ingest.PositionedText{Text: t})
	}
	return pg
}

func pageWithLines(index, n int) ingest.PageContent {
	pg := ingest.PageContent{Index: index}
	for i := 0; i < n; i++ {
		pg.Lines = append(pg.Lines, ingest.LinePrimitive{
			From: geometry.Point{X: float64(i), Y: 0},
			To:   geometry.Point{X: float64(i), Y: 10},
		})
	}
	return pg
}

func TestClassifyKeywords(t *testing.T) {
	tests := []struct {
		name     string
		page     ingest.PageContent
		wantType constants.PageType
		minConf  float64
	}{
		{"floor plan keyword", pageWithText(0, "FIRST FLOOR PLAN"), constants.PageFloorPlan, 0.9},
		{"floor plan with scale", pageWithText(0, "Floor Plan", `Scale: 1/4" = 1'-0"`), constants.PageFloorPlan, 0.95},
		{"elevation", pageWithText(1, "NORTH ELEVATION"), constants.PageElevation, 0.85},
		{"detail", pageWithText(2, "WALL SECTION DETAIL"), constants.PageDetail, 0.8},
		{"title sheet", pageWithText(3, "SHEET INDEX"), constants.PageTitleIndex, 0.8},
	}
	c := New(Config{})
	bp := &extract.Blueprint{ID: "test"}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := c.Classify(bp, []ingest.PageContent{tt.page})
			if len(got) != 1 {
				t.Fatalf("got %d classifications", len(got))
			}
			if got[0].PageType != tt.wantType {
				t.Errorf("type = %s, want %s", got[0].PageType, tt.wantType)
			}
			if got[0].Confidence < tt.minConf {
				t.Errorf("confidence = %v, want >= %v", got[0].Confidence, tt.minConf)
			}
		})
	}
}

func TestClassifyDensityFallback(t *testing.T) {
	c := New(Config{MinPlanPrimitives: 100})
	bp := &extract.Blueprint{ID: "test"}

	dense := pageWithLines(0, 200)
	for i := 0; i < 8; i++ {
		dense.Texts = append(dense.Texts, ingest.PositionedText{Text: "BEDROOM"})
	}
	got := c.Classify(bp, []ingest.PageContent{dense})
	if got[0].PageType != constants.PageFloorPlan {
		t.Errorf("dense page type = %s, want floor_plan", got[0].PageType)
	}
	if got[0].Confidence >= 0.9 {
		t.Errorf("density fallback confidence %v should stay below keyword confidence", got[0].Confidence)
	}
}

// Classification never raises: a page with no signal yields title/index at
// confidence zero.
func TestClassifyNoSignal(t *testing.T) {
	c := New(Config{})
	bp := &extract.Blueprint{ID: "test"}
	got := c.Classify(bp, []ingest.PageContent{{Index: 0}})
	if got[0].PageType != constants.PageTitleIndex {
		t.Errorf("type = %s, want title_index", got[0].PageType)
	}
	if got[0].Confidence != 0 {
		t.Errorf("confidence = %v, want 0", got[0].Confidence)
	}
}

func TestRankFloorPlans(t *testing.T) {
	cls := []extract.PageClassification{
		{PageIndex: 0, PageType: constants.PageTitleIndex, Confidence: 0.8},
		{PageIndex: 1, PageType: constants.PageFloorPlan, Confidence: 0.5},
		{PageIndex: 2, PageType: constants.PageFloorPlan, Confidence: 0.95},
		{PageIndex: 3, PageType: constants.PageFloorPlan, Confidence: 0.95},
		{PageIndex: 4, PageType: constants.PageElevation, Confidence: 0.85},
	}
	got := RankFloorPlans(cls)
	want := []int{2, 3, 1}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v (ties break toward lower page index)", got, want)
		}
	}
}
