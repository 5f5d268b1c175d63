package validate

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/hvacdesign/planload/constants"
	"github.com/hvacdesign/planload/internal/extract"
)

// Construction-note patterns for envelope properties as written on plans:
// "R-13 BATT INSULATION @ EXT WALLS", "R-38 CLG", "U-0.30 VINYL WINDOWS",
// "SHGC 0.25", "3 ACH50".
var (
	reWallR   = regexp.MustCompile(`(?i)R[-\s]?(\d{1,2}(?:\.\d)?)\s*(?:BATT\s+)?(?:INSUL\w*\s+)?(?:@\s*)?(?:EXT(?:ERIOR)?\.?\s*)?WALL`)
	reCeilR   = regexp.MustCompile(`(?i)R[-\s]?(\d{1,2}(?:\.\d)?)\s*(?:BATT\s+)?(?:BLOWN\s+)?(?:INSUL\w*\s+)?(?:@\s*)?(?:CLG|CEILING|ATTIC|ROOF)`)
	reWindowU = regexp.MustCompile(`(?i)\bU(?:[-\s]?(?:VALUE|FACTOR))?[-\s:=]+(0?\.\d{1,3})`)
	reSHGC    = regexp.MustCompile(`(?i)SHGC\s*[:=]?\s*(0?\.\d{1,3})`)
	reACH     = regexp.MustCompile(`(?i)(\d{1,2}(?:\.\d)?)\s*ACH\s*50|ACH50\s*[:=]?\s*(\d{1,2}(?:\.\d)?)`)
)

// Code-minimum assumptions used when the notes are silent. Assumed fields
// drag the envelope confidence down instead of being hidden.
const (
	defaultWallR   = 13
	defaultCeilR   = 30
	defaultWindowU = 0.35
	defaultSHGC    = 0.30
	defaultACH50   = 7
)

// ParseEnvelope scans page tokens for construction notes and builds the
// traditional envelope hypothesis. Each field found in the notes raises the
// hypothesis confidence; missing fields fall back to code-minimum values and
// are reported as warnings.
func ParseEnvelope(tokens []extract.TextToken) (extract.BuildingEnvelope, []string) {
	joined := make([]string, 0, len(tokens))
	for _, t := range tokens {
		joined = append(joined, t.Text)
	}
	text := strings.ToUpper(strings.Join(joined, "\n"))

	env := extract.BuildingEnvelope{Source: constants.SourceTraditional}
	var warnings []string
	found := 0

	if v, ok := firstNumber(reWallR, text); ok {
		env.WallInsulationR = v
		found++
	} else {
		env.WallInsulationR = defaultWallR
		warnings = append(warnings, "wall insulation R-value assumed (R-13), not found in notes")
	}
	if v, ok := firstNumber(reCeilR, text); ok {
		env.CeilingR = v
		found++
	} else {
		env.CeilingR = defaultCeilR
		warnings = append(warnings, "ceiling insulation R-value assumed (R-30), not found in notes")
	}
	if v, ok := firstNumber(reWindowU, text); ok {
		env.WindowUValue = v
		found++
	} else {
		env.WindowUValue = defaultWindowU
		warnings = append(warnings, "window U-value assumed (0.35), not found in notes")
	}
	if v, ok := firstNumber(reSHGC, text); ok {
		env.WindowSHGC = v
		found++
	} else {
		env.WindowSHGC = defaultSHGC
	}
	if v, ok := firstNumber(reACH, text); ok {
		env.AirTightnessACH50 = v
		found++
	} else {
		env.AirTightnessACH50 = defaultACH50
		warnings = append(warnings, "air tightness assumed (7 ACH50), not found in notes")
	}
	env.FoundationType = foundationType(text)
	if env.FoundationType != "" {
		found++
	} else {
		env.FoundationType = "slab"
		warnings = append(warnings, "foundation type assumed (slab), not found in notes")
	}

	// six detectable fields; fully annotated plans score 0.9
	env.Confidence = 0.3 + 0.1*float64(found)
	return env, warnings
}

func firstNumber(re *regexp.Regexp, text string) (float64, bool) {
	m := re.FindStringSubmatch(text)
	if m == nil {
		return 0, false
	}
	for _, g := range m[1:] {
		if g == "" {
			continue
		}
		if v, err := strconv.ParseFloat(g, 64); err == nil && v > 0 {
			return v, true
		}
	}
	return 0, false
}

func foundationType(text string) string {
	switch {
	case strings.Contains(text, "BASEMENT"):
		return "basement"
	case strings.Contains(text, "CRAWL"):
		return "crawlspace"
	case strings.Contains(text, "SLAB"):
		return "slab"
	}
	return ""
}
