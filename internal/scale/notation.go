// Package scale determines the real-world-feet-per-point ratio for a
// floor-plan page from explicit notation, dimension cross-checks, or an
// operator override.
package scale

import (
	"regexp"
	"strconv"
	"strings"
)

// A PDF point is 1/72 inch of paper.
const pointsPerInch = 72.0

// Architectural notation library. Ordered: imperial fraction notations are
// tried before metric ratios.
var (
	// `1/4" = 1'-0"`, `3/16"=1'`, `1/2 in = 1 ft`
	reImperial = regexp.MustCompile(`(?i)(\d+(?:/\d+)?)\s*(?:"|in\.?|inch(?:es)?)\s*=\s*(\d+)\s*(?:'|ft\.?|foot|feet)(?:\s*-?\s*(\d+)\s*")?`)
	// `SCALE 1:50`, `1 : 100`
	reRatio = regexp.MustCompile(`(?i)\b1\s*:\s*(\d{1,4})\b`)
)

// ParseNotation parses an architectural scale notation and returns the
// feet-per-point ratio. Returns ok=false for text that is not a recognizable
// notation.
func ParseNotation(text string) (feetPerPoint float64, ok bool) {
	if m := reImperial.FindStringSubmatch(text); m != nil {
		paperInches := parseFraction(m[1])
		feet, _ := strconv.ParseFloat(m[2], 64)
		if m[3] != "" {
			inches, _ := strconv.ParseFloat(m[3], 64)
			feet += inches / 12
		}
		if paperInches > 0 && feet > 0 {
			// paperInches of paper represent feet of building
			return feet / paperInches / pointsPerInch, true
		}
		return 0, false
	}
	if m := reRatio.FindStringSubmatch(text); m != nil {
		n, _ := strconv.ParseFloat(m[1], 64)
		if n > 0 {
			// one point of paper is n points of building
			return n / pointsPerInch / 12, true
		}
	}
	return 0, false
}

func parseFraction(s string) float64 {
	if num, den, found := strings.Cut(s, "/"); found {
		n, err1 := strconv.ParseFloat(num, 64)
		d, err2 := strconv.ParseFloat(den, 64)
		if err1 != nil || err2 != nil || d == 0 {
			return 0
		}
		return n / d
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}

// StandardScales returns the feet-per-point ratios of the common residential
// drawing scales: 1/8", 3/16", 1/4" and 1/2" to the foot.
func StandardScales() []float64 {
	fractions := []float64{1.0 / 8, 3.0 / 16, 1.0 / 4, 1.0 / 2}
	out := make([]float64, 0, len(fractions))
	for _, f := range fractions {
		out = append(out, 1/f/pointsPerInch)
	}
	return out
}
