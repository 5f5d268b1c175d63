package common

import (
	"errors"
	"fmt"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// AppError represents application-specific errors
type AppError struct {
	Code    string
	Message string
	Cause   error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

func NewAppError(code, message string, cause error) *AppError {
	return &AppError{Code: code, Message: message, Cause: cause}
}

// Common application errors
var (
	ErrNotFound     = errors.New("resource not found")
	ErrInvalidInput = errors.New("invalid input")
	ErrInternal     = errors.New("internal error")
)

// PdfValidationError means the uploaded document is not a structurally valid
// PDF. Fatal before any later stage runs.
type PdfValidationError struct {
	Filename string
	Cause    error
}

func (e *PdfValidationError) Error() string {
	return fmt.Sprintf("pdf validation failed for %q: %v", e.Filename, e.Cause)
}

func (e *PdfValidationError) Unwrap() error { return e.Cause }

// ScaleDetectionError means no scale hypothesis reached the acceptance
// confidence. Carries the best rejected confidence for diagnostics.
type ScaleDetectionError struct {
	PageIndex      int
	BestConfidence float64
	MinConfidence  float64
}

func (e *ScaleDetectionError) Error() string {
	return fmt.Sprintf("no scale hypothesis accepted for page %d: best confidence %.2f below %.2f",
		e.PageIndex, e.BestConfidence, e.MinConfidence)
}

// GeometryExtractionError means zero valid rooms were extracted from a page
// whose complexity is within the simple tier.
type GeometryExtractionError struct {
	PageIndex      int
	PrimitiveCount int
}

func (e *GeometryExtractionError) Error() string {
	return fmt.Sprintf("no valid room polygons extracted from page %d (%d primitives, simple tier)",
		e.PageIndex, e.PrimitiveCount)
}

// AIVisionError means the vision-adapter call failed, timed out, or returned
// a malformed response. Traditional output is never substituted in its place.
type AIVisionError struct {
	Op    string // "request" | "timeout" | "decode" | "schema"
	Cause error
}

func (e *AIVisionError) Error() string {
	return fmt.Sprintf("ai vision %s failed: %v", e.Op, e.Cause)
}

func (e *AIVisionError) Unwrap() error { return e.Cause }

// DataQualityError means the merged extraction failed a cross-check. It carries
// the detected and expected values for diagnostics.
type DataQualityError struct {
	Check    string // "area_sum" | "room_count"
	Expected float64
	Actual   float64
}

func (e *DataQualityError) Error() string {
	return fmt.Sprintf("data quality check %q failed: expected %.1f, got %.1f",
		e.Check, e.Expected, e.Actual)
}

// LowConfidenceError means overall confidence stayed below threshold even
// after vision escalation was attempted.
type LowConfidenceError struct {
	Overall   float64
	Threshold float64
}

func (e *LowConfidenceError) Error() string {
	return fmt.Sprintf("overall confidence %.2f below minimum %.2f after escalation",
		e.Overall, e.Threshold)
}

// SuggestedAction maps a pipeline failure to a corrective action surfaced to
// the consumer alongside the typed reason.
func SuggestedAction(err error) string {
	var (
		pdfErr   *PdfValidationError
		scaleErr *ScaleDetectionError
		geomErr  *GeometryExtractionError
		visErr   *AIVisionError
		dqErr    *DataQualityError
		lowErr   *LowConfidenceError
	)
	switch {
	case errors.As(err, &pdfErr):
		return "re-export the blueprint as a standard PDF and upload again"
	case errors.As(err, &scaleErr):
		return "verify the blueprint carries a legible scale notation, or configure a scale override"
	case errors.As(err, &geomErr):
		return "confirm the selected page is a vector floor plan, not a scanned raster"
	case errors.As(err, &visErr):
		return "retry the job; if the vision service keeps failing, check its credentials and quota"
	case errors.As(err, &dqErr):
		return "check the declared total floor area against the room labels on the plan"
	case errors.As(err, &lowErr):
		return "upload a higher-quality blueprint or supply room data manually"
	default:
		return ""
	}
}

// gRPC error helpers
func InvalidArgumentError(message string) error {
	return status.Error(codes.InvalidArgument, message)
}

func NotFoundError(message string) error {
	return status.Error(codes.NotFound, message)
}

func InternalError(message string) error {
	return status.Error(codes.Internal, message)
}

func InvalidArgumentErrorf(format string, args ...interface{}) error {
	return InvalidArgumentError(fmt.Sprintf(format, args...))
}
