package textextract

import (
	"context"
	"math"
	"strings"
	"testing"

	"github.com/hvacdesign/planload/constants"
	"github.com/hvacdesign/planload/internal/geometry"
	"github.com/hvacdesign/planload/internal/ingest"
)

type fakeRunner struct {
	stdout string
	calls  int
}

func (f *fakeRunner) Run(_ context.Context, _ string, _ ...string) ([]byte, []byte, error) {
	f.calls++
	return []byte(f.stdout), nil, nil
}

func nativePage(texts ...string) ingest.PageContent {
	pg := ingest.PageContent{Index: 0, WidthPt: 612, HeightPt: 792}
	for i, t := range texts {
		pg.Texts = append(pg.Texts, ingest.PositionedText{
			Text:     t,
			At:       geometry.Point{X: 100, Y: float64(700 - 20*i)},
			FontSize: 12,
		})
	}
	return pg
}

func TestExtractNativeOnly(t *testing.T) {
	fr := &fakeRunner{}
	e := NewWithRunner(Config{}, fr)
	page := nativePage("LIVING ROOM", `12'-6" x 14'-0"`, "KITCHEN", `SCALE: 1/4" = 1'-0"`, "BEDROOM 2")

	tokens, err := e.Extract(context.Background(), page, "/tmp/page.png")
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if fr.calls != 0 {
		t.Errorf("OCR ran despite %d native tokens", len(tokens))
	}
	if len(tokens) != 5 {
		t.Fatalf("got %d tokens, want 5", len(tokens))
	}
	for _, tok := range tokens {
		if tok.Source != constants.TokenSourceNative {
			t.Errorf("token %q source = %s, want native", tok.Text, tok.Source)
		}
	}
}

func TestExtractAnnotatesDimensions(t *testing.T) {
	e := NewWithRunner(Config{}, &fakeRunner{})
	page := nativePage("LIVING ROOM", `12'-6" x 14'-0"`, `9'-0"`, "KITCHEN", "HALL")

	tokens, err := e.Extract(context.Background(), page, "")
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	pair := tokens[1]
	if !pair.IsArea || math.Abs(pair.AreaSqFt-175) > 1e-9 {
		t.Errorf("dimension pair: IsArea=%v area=%v, want 175", pair.IsArea, pair.AreaSqFt)
	}
	if pair.IsLength {
		t.Error("dimension pair should not also be a plain length")
	}
	length := tokens[2]
	if !length.IsLength || math.Abs(length.LengthFeet-9) > 1e-9 {
		t.Errorf("length token: IsLength=%v feet=%v, want 9", length.IsLength, length.LengthFeet)
	}
	if tokens[0].IsLength || tokens[0].IsArea {
		t.Error("room label wrongly annotated as dimension")
	}
}

func TestExtractOCRFallback(t *testing.T) {
	tsv := strings.Join([]string{
		"level\tpage_num\tblock_num\tpar_num\tline_num\tword_num\tleft\ttop\twidth\theight\tconf\ttext",
		"5\t1\t1\t1\t1\t1\t100\t100\t200\t50\t90\tKITCHEN",
		"5\t1\t1\t1\t1\t2\t400\t100\t100\t50\t-1\t", // layout row, skipped
		"5\t1\t1\t1\t2\t1\t100\t200\t150\t50\t60\t12'",
	}, "\n")
	fr := &fakeRunner{stdout: tsv}
	e := NewWithRunner(Config{DPI: 300}, fr)

	page := ingest.PageContent{Index: 0, WidthPt: 612, HeightPt: 792} // no native text
	tokens, err := e.Extract(context.Background(), page, "/tmp/page.png")
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if fr.calls != 1 {
		t.Fatalf("runner calls = %d, want 1", fr.calls)
	}
	if len(tokens) != 2 {
		t.Fatalf("got %d tokens, want 2", len(tokens))
	}

	kitchen := tokens[0]
	if kitchen.Source != constants.TokenSourceOCR {
		t.Errorf("source = %s, want ocr", kitchen.Source)
	}
	if math.Abs(kitchen.OCRConfidence-0.9) > 1e-9 {
		t.Errorf("confidence = %v, want 0.9", kitchen.OCRConfidence)
	}
	// 300 DPI: one pixel is 0.24pt; image top-left maps to page bottom-left
	if math.Abs(kitchen.Box.MinX-24) > 1e-9 {
		t.Errorf("MinX = %v, want 24", kitchen.Box.MinX)
	}
	wantMinY := 792 - (100.0+50.0)*0.24
	if math.Abs(kitchen.Box.MinY-wantMinY) > 1e-9 {
		t.Errorf("MinY = %v, want %v", kitchen.Box.MinY, wantMinY)
	}

	if !tokens[1].IsLength || tokens[1].LengthFeet != 12 {
		t.Errorf("OCR dimension token not annotated: %+v", tokens[1])
	}
}

// When the rendered page was resized after rasterization the configured DPI
// no longer describes the image; the TSV page row does, and word boxes must
// be mapped through it.
func TestExtractOCRBoxesOnResizedImage(t *testing.T) {
	// a 612x792pt page rendered and resized to 1530x1980px: 0.4pt per pixel
	tsv := strings.Join([]string{
		"level\tpage_num\tblock_num\tpar_num\tline_num\tword_num\tleft\ttop\twidth\theight\tconf\ttext",
		"1\t1\t0\t0\t0\t0\t0\t0\t1530\t1980\t-1\t",
		"5\t1\t1\t1\t1\t1\t100\t200\t50\t25\t90\tKITCHEN",
	}, "\n")
	fr := &fakeRunner{stdout: tsv}
	e := NewWithRunner(Config{DPI: 300}, fr) // 72/300 would give 0.24, not 0.4

	page := ingest.PageContent{Index: 0, WidthPt: 612, HeightPt: 792}
	tokens, err := e.Extract(context.Background(), page, "/tmp/page.png")
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if len(tokens) != 1 {
		t.Fatalf("got %d tokens, want 1", len(tokens))
	}

	box := tokens[0].Box
	if math.Abs(box.MinX-40) > 1e-9 || math.Abs(box.MaxX-60) > 1e-9 {
		t.Errorf("X span = [%v, %v], want [40, 60]", box.MinX, box.MaxX)
	}
	wantMinY := 792 - (200.0+25.0)*0.4
	if math.Abs(box.MinY-wantMinY) > 1e-9 || math.Abs(box.MaxY-(wantMinY+25*0.4)) > 1e-9 {
		t.Errorf("Y span = [%v, %v], want [%v, %v]", box.MinY, box.MaxY, wantMinY, wantMinY+10)
	}
}
