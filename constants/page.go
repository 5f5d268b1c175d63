package constants

// PageType classifies a blueprint page by its likely content.
type PageType string

const (
	PageFloorPlan  PageType = "floor_plan"
	PageElevation  PageType = "elevation"
	PageDetail     PageType = "detail"
	PageTitleIndex PageType = "title_index"
)

// ScaleSource identifies how a scale hypothesis was produced.
type ScaleSource string

const (
	ScaleSourceNotation   ScaleSource = "ocr_notation"
	ScaleSourceCrossCheck ScaleSource = "dimension_cross_check"
	ScaleSourceOverride   ScaleSource = "override"
)

// TokenSource identifies where a text token came from.
type TokenSource string

const (
	TokenSourceNative TokenSource = "native"
	TokenSourceOCR    TokenSource = "ocr"
)

// HypothesisSource identifies which extraction path produced a field value.
type HypothesisSource string

const (
	SourceTraditional HypothesisSource = "traditional"
	SourceVision      HypothesisSource = "vision"
)
