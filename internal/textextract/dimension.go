package textextract

import (
	"regexp"
	"strconv"
	"strings"
)

// Architectural dimension strings as they appear on residential plans:
// `12'-6"`, `14'`, `9'-0"`, and dimension pairs like `12'-6" x 14'-0"`.
var (
	reLength = regexp.MustCompile(`^\s*(\d{1,3})\s*'(?:\s*-?\s*(\d{1,2})(?:\s*(\d)/(\d))?\s*")?\s*$`)
	rePair   = regexp.MustCompile(`(?i)^\s*(.+?)\s*[x×]\s*(.+?)\s*$`)
)

// ParseLength parses a single architectural length string into decimal feet.
func ParseLength(text string) (feet float64, ok bool) {
	m := reLength.FindStringSubmatch(text)
	if m == nil {
		return 0, false
	}
	ft, _ := strconv.ParseFloat(m[1], 64)
	if m[2] != "" {
		inches, _ := strconv.ParseFloat(m[2], 64)
		if m[3] != "" && m[4] != "" {
			num, _ := strconv.ParseFloat(m[3], 64)
			den, _ := strconv.ParseFloat(m[4], 64)
			if den > 0 {
				inches += num / den
			}
		}
		if inches >= 12 {
			return 0, false
		}
		ft += inches / 12
	}
	return ft, true
}

// ParseDimensionPair parses `W x H` dimension annotations and returns the
// implied area in square feet.
func ParseDimensionPair(text string) (areaSqFt float64, ok bool) {
	m := rePair.FindStringSubmatch(text)
	if m == nil {
		return 0, false
	}
	w, ok1 := ParseLength(m[1])
	h, ok2 := ParseLength(m[2])
	if !ok1 || !ok2 || w <= 0 || h <= 0 {
		return 0, false
	}
	return w * h, true
}

// LooksLikeRoomLabel reports whether a token is plausibly a room name rather
// than a dimension, a note, or title-block text. Room labels are short,
// mostly alphabetic, and carry no digits beyond an optional trailing number
// ("BEDROOM 2").
func LooksLikeRoomLabel(text string) bool {
	s := strings.TrimSpace(text)
	if s == "" || len(s) > 40 {
		return false
	}
	if _, ok := ParseLength(s); ok {
		return false
	}
	letters, digits := 0, 0
	for _, r := range s {
		switch {
		case r >= 'A' && r <= 'Z', r >= 'a' && r <= 'z':
			letters++
		case r >= '0' && r <= '9':
			digits++
		}
	}
	return letters >= 3 && digits <= 2 && letters > digits
}
