package validate

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/hvacdesign/planload/internal/extract"
)

// "TOTAL: 1,480 SQ. FT.", "1480 SF HEATED", "LIVING AREA 1480 SQFT"
var reTotalArea = regexp.MustCompile(`(?i)(\d{1,2},?\d{3})\s*(?:SQ\.?\s*FT\.?|SQFT|SF)`)

// ParseDeclaredTotal finds an independently declared total floor area in the
// page tokens. Returns 0 when no declaration exists; the area cross-check is
// skipped in that case rather than invented.
func ParseDeclaredTotal(tokens []extract.TextToken) float64 {
	for _, t := range tokens {
		m := reTotalArea.FindStringSubmatch(t.Text)
		if m == nil {
			continue
		}
		v, err := strconv.ParseFloat(strings.ReplaceAll(m[1], ",", ""), 64)
		if err != nil || v < 300 || v > 20000 {
			continue
		}
		return v
	}
	return 0
}
