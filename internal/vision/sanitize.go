package vision

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

var knownRoomKeys = map[string]bool{
	"name": true, "area_sqft": true, "window_area_sqft": true,
	"exterior_walls": true, "orientation": true, "ceiling_height": true,
	"over_unconditioned": true,
}

var knownEnvelopeKeys = map[string]bool{
	"wall_insulation_r": true, "ceiling_r": true, "window_u_value": true,
	"window_shgc": true, "air_tightness_ach50": true, "foundation_type": true,
}

// SanitizeFields repairs common model mistakes before re-validating:
// numeric fields delivered as strings ("175" or "175 sq ft"), null or empty
// optionals, and unknown keys (schema has additionalProperties false).
// Returns the cleaned JSON and the list of repairs for logging.
func SanitizeFields(raw []byte) ([]byte, []string, error) {
	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, nil, fmt.Errorf("sanitize: decode: %w", err)
	}

	var repaired []string
	topKeys := map[string]bool{"rooms": true, "envelope": true, "total_sqft": true, "confidence": true}
	dropUnknown(m, topKeys, "", &repaired)
	coerceNumber(m, "total_sqft", &repaired)
	coerceNumber(m, "confidence", &repaired)

	if rooms, ok := m["rooms"].([]any); ok {
		for i, r := range rooms {
			room, ok := r.(map[string]any)
			if !ok {
				continue
			}
			prefix := fmt.Sprintf("rooms[%d].", i)
			dropUnknown(room, knownRoomKeys, prefix, &repaired)
			for _, k := range []string{"area_sqft", "window_area_sqft", "ceiling_height"} {
				coerceNumber(room, k, &repaired)
			}
			coerceInt(room, "exterior_walls", &repaired)
		}
	}
	if env, ok := m["envelope"].(map[string]any); ok {
		dropUnknown(env, knownEnvelopeKeys, "envelope.", &repaired)
		for k := range knownEnvelopeKeys {
			if k != "foundation_type" {
				coerceNumber(env, k, &repaired)
			}
		}
	} else if _, present := m["envelope"]; present {
		delete(m, "envelope")
		repaired = append(repaired, "envelope(not an object)")
	}

	out, err := json.Marshal(m)
	if err != nil {
		return nil, repaired, fmt.Errorf("sanitize: encode: %w", err)
	}
	return out, repaired, nil
}

func dropUnknown(m map[string]any, known map[string]bool, prefix string, repaired *[]string) {
	for k, v := range m {
		if !known[k] {
			delete(m, k)
			*repaired = append(*repaired, prefix+k+"(unknown)")
			continue
		}
		if v == nil {
			delete(m, k)
			*repaired = append(*repaired, prefix+k+"(null)")
		}
	}
}

func coerceNumber(m map[string]any, k string, repaired *[]string) {
	s, ok := m[k].(string)
	if !ok {
		return
	}
	trimmed := strings.TrimSpace(s)
	// strip trailing unit text such as "sq ft" or "ft"
	if i := strings.IndexFunc(trimmed, func(r rune) bool {
		return (r < '0' || r > '9') && r != '.' && r != '-'
	}); i > 0 {
		trimmed = strings.TrimSpace(trimmed[:i])
	}
	if v, err := strconv.ParseFloat(trimmed, 64); err == nil {
		m[k] = v
		*repaired = append(*repaired, k+"(string->number)")
	} else {
		delete(m, k)
		*repaired = append(*repaired, k+"(unparseable)")
	}
}

func coerceInt(m map[string]any, k string, repaired *[]string) {
	coerceNumber(m, k, repaired)
	if v, ok := m[k].(float64); ok && v != float64(int(v)) {
		m[k] = float64(int(v))
		*repaired = append(*repaired, k+"(truncated)")
	}
}
