package vision

// BuildExtractionJSONSchema returns a JSON-Schema (draft 2020-12 subset) as a
// generic map. We pass this to the provider as a structured output constraint
// and also use it locally to validate the response.
func BuildExtractionJSONSchema() map[string]any {
	roomProps := map[string]any{
		"name":               map[string]any{"type": "string", "minLength": 1},
		"area_sqft":          map[string]any{"type": "number", "exclusiveMinimum": 0.0},
		"window_area_sqft":   map[string]any{"type": "number", "minimum": 0.0},
		"exterior_walls":     map[string]any{"type": "integer", "minimum": 0.0},
		"orientation":        map[string]any{"type": "string", "enum": []string{"N", "S", "E", "W"}},
		"ceiling_height":     map[string]any{"type": "number", "exclusiveMinimum": 0.0},
		"over_unconditioned": map[string]any{"type": "boolean"},
	}
	envelopeProps := map[string]any{
		"wall_insulation_r":   map[string]any{"type": "number", "minimum": 0.0},
		"ceiling_r":           map[string]any{"type": "number", "minimum": 0.0},
		"window_u_value":      map[string]any{"type": "number", "exclusiveMinimum": 0.0},
		"window_shgc":         map[string]any{"type": "number", "minimum": 0.0, "maximum": 1.0},
		"air_tightness_ach50": map[string]any{"type": "number", "minimum": 0.0},
		"foundation_type":     map[string]any{"type": "string", "enum": []string{"slab", "crawlspace", "basement"}},
	}

	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"rooms": map[string]any{
				"type":     "array",
				"minItems": 1,
				"items": map[string]any{
					"type":                 "object",
					"additionalProperties": false,
					"properties":           roomProps,
					"required":             []string{"name", "area_sqft"},
				},
			},
			"envelope": map[string]any{
				"type":                 "object",
				"additionalProperties": false,
				"properties":           envelopeProps,
			},
			"total_sqft": map[string]any{"type": "number", "exclusiveMinimum": 0.0},
			"confidence": map[string]any{"type": "number", "minimum": 0.0, "maximum": 1.0},
		},
		"required": []string{"rooms", "confidence"},
	}
}
