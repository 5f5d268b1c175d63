package ingest

import (
	"math"
	"strconv"
	"testing"
)

func TestParseContentStreamLines(t *testing.T) {
	stream := []byte(`
2 w
10 10 m
110 10 l
110 90 l
S
0 0 m 5 5 l f
`)
	lines, rects, texts := parseContentStream(stream)
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2 (filled path must be dropped)", len(lines))
	}
	if len(rects) != 0 || len(texts) != 0 {
		t.Fatalf("unexpected rects=%d texts=%d", len(rects), len(texts))
	}
	l0 := lines[0]
	if l0.From.X != 10 || l0.From.Y != 10 || l0.To.X != 110 || l0.To.Y != 10 {
		t.Errorf("line 0 = %+v", l0)
	}
	if l0.Width != 2 {
		t.Errorf("line width = %v, want 2", l0.Width)
	}
}

func TestParseContentStreamClosePath(t *testing.T) {
	stream := []byte("0 0 m 10 0 l 10 10 l 0 10 l h S")
	lines, _, _ := parseContentStream(stream)
	if len(lines) != 4 {
		t.Fatalf("got %d lines, want 4 (h closes the path)", len(lines))
	}
	last := lines[3]
	if last.To.X != 0 || last.To.Y != 0 {
		t.Errorf("closing segment endpoint = %+v, want origin", last.To)
	}
}

func TestParseContentStreamRect(t *testing.T) {
	stream := []byte("36 36 540 720 re S")
	_, rects, _ := parseContentStream(stream)
	if len(rects) != 1 {
		t.Fatalf("got %d rects, want 1", len(rects))
	}
	r := rects[0]
	if r.X != 36 || r.Y != 36 || r.W != 540 || r.H != 720 {
		t.Errorf("rect = %+v", r)
	}
}

func TestParseContentStreamText(t *testing.T) {
	stream := []byte(`
BT
/F1 12 Tf
1 0 0 1 200 500 Tm
(LIVING ROOM) Tj
0 -20 Td
(12'-6" x 14'-0") Tj
ET
BT
1 0 0 1 50 40 Tm
[(SCALE: 1/4) 2 (" = 1'-0")] TJ
ET
`)
	_, _, texts := parseContentStream(stream)
	if len(texts) != 3 {
		t.Fatalf("got %d texts, want 3", len(texts))
	}
	if texts[0].Text != "LIVING ROOM" {
		t.Errorf("text 0 = %q", texts[0].Text)
	}
	if texts[0].At.X != 200 || texts[0].At.Y != 500 {
		t.Errorf("text 0 at %+v", texts[0].At)
	}
	if texts[0].FontSize != 12 {
		t.Errorf("font size = %v, want 12", texts[0].FontSize)
	}
	if texts[1].At.Y != 480 {
		t.Errorf("text 1 y = %v, want 480 (Td displacement)", texts[1].At.Y)
	}
	if texts[2].Text != `SCALE: 1/4" = 1'-0"` {
		t.Errorf("TJ text = %q", texts[2].Text)
	}
}

func TestParseContentStreamEscapes(t *testing.T) {
	stream := []byte(`BT (a\(b\)c \134 d) Tj ET`)
	_, _, texts := parseContentStream(stream)
	if len(texts) != 1 {
		t.Fatalf("got %d texts, want 1", len(texts))
	}
	if texts[0].Text != `a(b)c \ d` {
		t.Errorf("decoded = %q", texts[0].Text)
	}
}

func TestParseContentStreamEmpty(t *testing.T) {
	lines, rects, texts := parseContentStream(nil)
	if len(lines)+len(rects)+len(texts) != 0 {
		t.Fatal("expected no primitives from empty stream")
	}
}

func TestTokenizeNumbers(t *testing.T) {
	toks := tokenize([]byte("-1.5 .25 300 m"))
	want := []string{"-1.5", ".25", "300", "m"}
	if len(toks) != len(want) {
		t.Fatalf("got %d tokens, want %d", len(toks), len(want))
	}
	for i, w := range want {
		if toks[i].val != w {
			t.Errorf("token %d = %q, want %q", i, toks[i].val, w)
		}
	}
	if toks[3].kind != tokOperator {
		t.Errorf("token 3 kind = %v, want operator", toks[3].kind)
	}
	if v, err := strconv.ParseFloat(toks[0].val, 64); err != nil || math.Abs(v+1.5) > 1e-9 {
		t.Errorf("number parse failed: %v %v", v, err)
	}
}
