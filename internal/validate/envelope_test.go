package validate

import (
	"testing"

	"github.com/hvacdesign/planload/internal/extract"
)

func toks(texts ...string) []extract.TextToken {
	out := make([]extract.TextToken, len(texts))
	for i, t := range texts {
		out[i] = extract.TextToken{Text: t}
	}
	return out
}

func TestParseEnvelopeFromNotes(t *testing.T) {
	tokens := toks(
		"R-13 BATT INSULATION @ EXT WALLS",
		"R-38 BLOWN INSULATION @ CLG",
		"U-0.30 LOW-E VINYL WINDOWS, SHGC 0.25",
		"3 ACH50 BLOWER DOOR TARGET",
		"4\" CONC SLAB ON GRADE",
	)
	env, warnings := ParseEnvelope(tokens)
	if env.WallInsulationR != 13 {
		t.Errorf("wall R = %v, want 13", env.WallInsulationR)
	}
	if env.CeilingR != 38 {
		t.Errorf("ceiling R = %v, want 38", env.CeilingR)
	}
	if env.WindowUValue != 0.30 {
		t.Errorf("window U = %v, want 0.30", env.WindowUValue)
	}
	if env.WindowSHGC != 0.25 {
		t.Errorf("SHGC = %v, want 0.25", env.WindowSHGC)
	}
	if env.AirTightnessACH50 != 3 {
		t.Errorf("ACH50 = %v, want 3", env.AirTightnessACH50)
	}
	if env.FoundationType != "slab" {
		t.Errorf("foundation = %q, want slab", env.FoundationType)
	}
	if len(warnings) != 0 {
		t.Errorf("fully annotated notes produced warnings: %v", warnings)
	}
	if env.Confidence < 0.85 {
		t.Errorf("confidence = %v, want >= 0.85 when every field was found", env.Confidence)
	}
}

func TestParseEnvelopeAssumesDefaults(t *testing.T) {
	env, warnings := ParseEnvelope(toks("FLOOR PLAN", "LIVING ROOM"))
	if env.WallInsulationR != 13 || env.CeilingR != 30 || env.AirTightnessACH50 != 7 {
		t.Errorf("defaults not applied: %+v", env)
	}
	if len(warnings) == 0 {
		t.Error("assumed fields must surface as warnings")
	}
	if env.Confidence >= 0.5 {
		t.Errorf("confidence = %v, want low when everything was assumed", env.Confidence)
	}
}

// A stray "U" inside another unit must never be read as a window U-value.
func TestParseEnvelopeWindowUAnchored(t *testing.T) {
	env, _ := ParseEnvelope(toks("HEAT LOSS 12,000 BTU 0.5 TON UNIT"))
	if env.WindowUValue != defaultWindowU {
		t.Errorf("window U = %v from BTU text, want default %v", env.WindowUValue, defaultWindowU)
	}

	for _, note := range []string{
		"U-0.32 WINDOWS",
		"U-VALUE: 0.32",
		"U-FACTOR 0.32",
		"WINDOW U = 0.32",
	} {
		env, _ := ParseEnvelope(toks(note))
		if env.WindowUValue != 0.32 {
			t.Errorf("ParseEnvelope(%q) window U = %v, want 0.32", note, env.WindowUValue)
		}
	}
}

func TestParseDeclaredTotal(t *testing.T) {
	tests := []struct {
		text string
		want float64
	}{
		{"TOTAL HEATED AREA: 1,480 SQ. FT.", 1480},
		{"1480 SF", 1480},
		{"2350 SQFT LIVING", 2350},
		{"LIVING ROOM", 0},
		{"45 SF CLOSET", 0}, // below plausible house size
	}
	for _, tt := range tests {
		got := ParseDeclaredTotal(toks(tt.text))
		if got != tt.want {
			t.Errorf("ParseDeclaredTotal(%q) = %v, want %v", tt.text, got, tt.want)
		}
	}
}
