// Package vision is the external-collaborator boundary for structured
// blueprint extraction by a vision model. The pipeline invokes it only when
// the traditional stages cannot reach the confidence gate, with a bounded
// timeout, and its output is validated like any other hypothesis.
package vision

import "context"

// RoomFields is the normalized per-room shape we want from the model.
type RoomFields struct {
	Name              string  `json:"name"`
	AreaSqFt          float64 `json:"area_sqft"`
	WindowAreaSqFt    float64 `json:"window_area_sqft,omitempty"`
	ExteriorWalls     int     `json:"exterior_walls,omitempty"`
	Orientation       string  `json:"orientation,omitempty"`
	CeilingHeight     float64 `json:"ceiling_height,omitempty"`
	OverUnconditioned bool    `json:"over_unconditioned,omitempty"`
}

// EnvelopeFields is the whole-building thermal hypothesis.
type EnvelopeFields struct {
	WallInsulationR   float64 `json:"wall_insulation_r,omitempty"`
	CeilingR          float64 `json:"ceiling_r,omitempty"`
	WindowUValue      float64 `json:"window_u_value,omitempty"`
	WindowSHGC        float64 `json:"window_shgc,omitempty"`
	AirTightnessACH50 float64 `json:"air_tightness_ach50,omitempty"`
	FoundationType    string  `json:"foundation_type,omitempty"`
}

// ExtractionFields is the full structured response.
type ExtractionFields struct {
	Rooms           []RoomFields    `json:"rooms"`
	Envelope        *EnvelopeFields `json:"envelope,omitempty"`
	TotalSqFt       float64         `json:"total_sqft,omitempty"`
	ModelConfidence float64         `json:"confidence"`
}

type ExtractRequest struct {
	PageImagePath string
	// ExpectedRoomCount hints the model from the traditional pipeline's
	// provisional geometry; zero means no hint.
	ExpectedRoomCount int
	// FloorContext carries prior-floor or document context, free-form.
	FloorContext string
}

type ExtractResponse struct {
	Fields ExtractionFields
	// TokenCost is the provider-reported usage for cost accounting.
	TokenCost int
}

// Extractor is the interface the pipeline depends on.
type Extractor interface {
	RequestStructuredExtraction(ctx context.Context, req ExtractRequest) (ExtractResponse, []byte /*rawJSON*/, error)
}
