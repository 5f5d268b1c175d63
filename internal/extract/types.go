package extract

import (
	"time"

	"github.com/hvacdesign/planload/constants"
	"github.com/hvacdesign/planload/internal/geometry"
)

// Blueprint is the immutable record produced by ingestion. Later stages hold
// read-only references; nothing mutates it after PdfIngestor completes.
type Blueprint struct {
	ID        string
	Filename  string
	PageCount int
	Pages     []PageInfo
}

// PageInfo carries per-page metadata captured at ingestion.
type PageInfo struct {
	Index          int     // zero-based
	WidthPt        float64 // MediaBox width in PDF points
	HeightPt       float64
	PrimitiveCount int // vector path primitives found in the content stream
	TextOpCount    int // text-showing operators found in the content stream
	HasImageXObj   bool
}

// PageClassification scores one page. Produced once by PageClassifier,
// read-only afterward.
type PageClassification struct {
	PageIndex  int
	PageType   constants.PageType
	Confidence float64 // [0,1]
}

// ScaleHypothesis is one candidate units-per-pixel ratio for a page. Several
// may coexist while the detector runs; exactly one is selected before
// geometry extraction proceeds.
type ScaleHypothesis struct {
	PageIndex     int
	UnitsPerPixel float64 // feet per PDF point
	Source        constants.ScaleSource
	Notation      string // raw matched notation, if any
	Confidence    float64
}

// TextToken is a positioned piece of page text, native or OCR.
type TextToken struct {
	Text          string
	Box           geometry.Rect // page space
	Source        constants.TokenSource
	OCRConfidence float64 // [0,1]; zero for native tokens
	// LengthFeet is set when the token parses as a dimension string
	// (e.g. `12'-6"`). Downstream stages never re-parse raw text.
	LengthFeet float64
	IsLength   bool
	// AreaSqFt is set when the token parses as a dimension pair
	// (e.g. `12'-6" x 14'-0"`).
	AreaSqFt float64
	IsArea   bool
}

// RoomRecord is the merged per-room entity fused from a RoomPolygon, nearby
// TextTokens, and an optional vision hypothesis.
type RoomRecord struct {
	Name              string
	AreaSqFt          float64
	WindowAreaSqFt    float64
	ExteriorWalls     int
	Orientation       string // compass direction of dominant exterior exposure
	CeilingHeight     float64
	OverUnconditioned bool // bonus room over garage, etc.
	Confidence        float64
	LowConfidence     bool
	Source            constants.HypothesisSource
}

// BuildingEnvelope holds whole-building thermal properties. Exactly one
// instance per blueprint; conflicting sources are resolved by confidence
// comparison, never averaged.
type BuildingEnvelope struct {
	WallInsulationR   float64 // effective R-value
	CeilingR          float64
	WindowUValue      float64
	WindowSHGC        float64
	AirTightnessACH50 float64
	FoundationType    string
	Confidence        float64
	Source            constants.HypothesisSource
}

// ExtractionResult is the finalized validated aggregate consumed by the load
// calculator and audit storage. Immutable once the validator returns it.
type ExtractionResult struct {
	BlueprintID       string
	Envelope          BuildingEnvelope
	Rooms             []RoomRecord
	DeclaredTotalSqFt float64 // independently declared floor area, if found
	OverallConfidence float64
	Warnings          []string
	ExtractedAt       time.Time
}

// TotalRoomArea sums the room areas of the result.
func (r *ExtractionResult) TotalRoomArea() float64 {
	var sum float64
	for _, room := range r.Rooms {
		sum += room.AreaSqFt
	}
	return sum
}

// PageGeometry is the geometry set owned by one page: wall segments and the
// closed room polygons assembled from them, in real-world feet.
type PageGeometry struct {
	PageIndex int
	Walls     []geometry.WallSegment
	Rooms     []geometry.RoomPolygon
	Sampled   bool // true when the complex tier sampled a primitive subset
}
