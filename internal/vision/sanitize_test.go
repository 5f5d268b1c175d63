package vision

import (
	"encoding/json"
	"testing"
)

func TestSanitizeFields(t *testing.T) {
	raw := []byte(`{
		"rooms": [
			{"name": "LIVING ROOM", "area_sqft": "245 sq ft", "exterior_walls": 2, "notes": "large"},
			{"name": "KITCHEN", "area_sqft": 140, "window_area_sqft": null}
		],
		"envelope": {"wall_insulation_r": "13", "foundation_type": "slab"},
		"confidence": "0.8",
		"reasoning": "looked at the plan"
	}`)

	cleaned, repaired, err := SanitizeFields(raw)
	if err != nil {
		t.Fatalf("SanitizeFields: %v", err)
	}
	if len(repaired) == 0 {
		t.Fatal("expected repairs to be reported")
	}
	if err := ValidateJSONAgainstSchema(BuildExtractionJSONSchema(), cleaned); err != nil {
		t.Fatalf("sanitized output still fails schema: %v", err)
	}

	var fields ExtractionFields
	if err := json.Unmarshal(cleaned, &fields); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if fields.Rooms[0].AreaSqFt != 245 {
		t.Errorf("area = %v, want 245", fields.Rooms[0].AreaSqFt)
	}
	if fields.Envelope == nil || fields.Envelope.WallInsulationR != 13 {
		t.Errorf("envelope R = %+v, want 13", fields.Envelope)
	}
	if fields.ModelConfidence != 0.8 {
		t.Errorf("confidence = %v, want 0.8", fields.ModelConfidence)
	}
}

func TestSanitizeFieldsRejectsGarbage(t *testing.T) {
	if _, _, err := SanitizeFields([]byte("not json")); err == nil {
		t.Fatal("expected decode error")
	}
}

func TestValidateSchemaRejectsMissingRooms(t *testing.T) {
	err := ValidateJSONAgainstSchema(BuildExtractionJSONSchema(), []byte(`{"confidence": 0.9}`))
	if err == nil {
		t.Fatal("schema accepted a response without rooms")
	}
}
