// Package textextract produces positioned text tokens for a page, preferring
// the native PDF text layer and falling back to word-level OCR when the page
// carries too little native text to label rooms.
package textextract

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/hvacdesign/planload/constants"
	"github.com/hvacdesign/planload/internal/extract"
	"github.com/hvacdesign/planload/internal/geometry"
	"github.com/hvacdesign/planload/internal/ingest"
)

type Config struct {
	Tesseract     string // binary name or absolute path; if empty -> "tesseract"
	TesseractLang string // default "eng"
	TessdataDir   string
	PSM           int // e.g., 11 for sparse text on drawings

	// DPI the page image was rendered at. Only a fallback for mapping OCR
	// pixel boxes to page points; the TSV page row is authoritative since
	// the rendered image may have been resized afterwards.
	DPI int

	// MinNativeTokens is the native-text threshold below which OCR runs.
	MinNativeTokens int

	Logger *slog.Logger
}

func (c *Config) defaults() {
	if c.Tesseract == "" {
		c.Tesseract = "tesseract"
	}
	if c.TesseractLang == "" {
		c.TesseractLang = "eng"
	}
	if c.PSM <= 0 {
		c.PSM = 11
	}
	if c.DPI <= 0 {
		c.DPI = 300
	}
	if c.MinNativeTokens <= 0 {
		c.MinNativeTokens = 5
	}
	if c.Logger == nil {
		c.Logger = slog.Default()
	}
}

type Extractor struct {
	cfg    Config
	runner ingest.Runner
}

func New(cfg Config) *Extractor {
	cfg.defaults()
	return &Extractor{cfg: cfg, runner: ingest.ExecRunner{}}
}

// NewWithRunner is for tests.
func NewWithRunner(cfg Config, r ingest.Runner) *Extractor {
	cfg.defaults()
	return &Extractor{cfg: cfg, runner: r}
}

// Extract returns the page's text tokens. Native text-layer tokens are always
// collected; when the page has fewer native tokens than the threshold and a
// rendered page image is available, tesseract supplies OCR tokens with
// per-word confidence. Every token is annotated with parsed dimension
// semantics so downstream stages never re-parse raw text.
func (e *Extractor) Extract(ctx context.Context, page ingest.PageContent, imagePath string) ([]extract.TextToken, error) {
	tokens := e.nativeTokens(page)
	if len(tokens) < e.cfg.MinNativeTokens && imagePath != "" {
		ocrTokens, err := e.ocrTokens(ctx, page, imagePath)
		if err != nil {
			return nil, err
		}
		e.cfg.Logger.Info("ocr fallback used",
			"page", page.Index,
			"native_tokens", len(tokens),
			"ocr_tokens", len(ocrTokens),
		)
		tokens = append(tokens, ocrTokens...)
	}
	for i := range tokens {
		annotate(&tokens[i])
	}
	return tokens, nil
}

func (e *Extractor) nativeTokens(page ingest.PageContent) []extract.TextToken {
	tokens := make([]extract.TextToken, 0, len(page.Texts))
	for _, t := range page.Texts {
		text := strings.TrimSpace(t.Text)
		if text == "" {
			continue
		}
		fs := t.FontSize
		if fs <= 0 {
			fs = 10
		}
		// approximate glyph box; average glyph advance ~0.5em
		w := 0.5 * fs * float64(len(text))
		tokens = append(tokens, extract.TextToken{
			Text: text,
			Box: geometry.Rect{
				MinX: t.At.X,
				MinY: t.At.Y,
				MaxX: t.At.X + w,
				MaxY: t.At.Y + fs,
			},
			Source: constants.TokenSourceNative,
		})
	}
	return tokens
}

// ocrTokens runs tesseract in TSV mode against the rendered page image and
// maps each word box from image pixels back into page points. TSV rows:
// level page block par line word left top width height conf text.
func (e *Extractor) ocrTokens(ctx context.Context, page ingest.PageContent, imagePath string) ([]extract.TextToken, error) {
	args := []string{imagePath, "stdout", "-l", e.cfg.TesseractLang}
	if e.cfg.PSM > 0 {
		args = append(args, "--psm", strconv.Itoa(e.cfg.PSM))
	}
	if e.cfg.TessdataDir != "" {
		args = append(args, "--tessdata-dir", e.cfg.TessdataDir)
	}
	args = append(args, "tsv")

	out, errb, err := e.runner.Run(ctx, e.cfg.Tesseract, args...)
	if err != nil {
		return nil, fmt.Errorf("tesseract TSV: %w: %s", err, strings.TrimSpace(string(errb)))
	}

	lines := strings.Split(string(out), "\n")

	// The level-1 page row reports the image dimensions tesseract actually
	// saw, so mapping from them stays correct after any post-render resize.
	// 72/DPI is only the fallback when the row is missing.
	ptPerPxX := 72.0 / float64(e.cfg.DPI)
	ptPerPxY := ptPerPxX
	for i, ln := range lines {
		if i == 0 {
			continue
		}
		cols := strings.Split(ln, "\t")
		if len(cols) < 10 || cols[0] != "1" {
			continue
		}
		imgW, _ := strconv.ParseFloat(cols[8], 64)
		imgH, _ := strconv.ParseFloat(cols[9], 64)
		if imgW > 0 && imgH > 0 {
			ptPerPxX = page.WidthPt / imgW
			ptPerPxY = page.HeightPt / imgH
		}
		break
	}

	var tokens []extract.TextToken
	for i, ln := range lines {
		if i == 0 || len(ln) == 0 {
			continue // header
		}
		cols := strings.Split(ln, "\t")
		if len(cols) < 12 {
			continue
		}
		text := strings.TrimSpace(cols[11])
		conf, errc := strconv.ParseFloat(cols[10], 64)
		if text == "" || errc != nil || conf < 0 {
			continue
		}
		left, _ := strconv.ParseFloat(cols[6], 64)
		top, _ := strconv.ParseFloat(cols[7], 64)
		width, _ := strconv.ParseFloat(cols[8], 64)
		height, _ := strconv.ParseFloat(cols[9], 64)
		if width <= 0 || height <= 0 {
			continue
		}
		// image origin is top-left, page origin is bottom-left
		minY := page.HeightPt - (top+height)*ptPerPxY
		tokens = append(tokens, extract.TextToken{
			Text: text,
			Box: geometry.Rect{
				MinX: left * ptPerPxX,
				MinY: minY,
				MaxX: (left + width) * ptPerPxX,
				MaxY: minY + height*ptPerPxY,
			},
			Source:        constants.TokenSourceOCR,
			OCRConfidence: conf / 100.0,
		})
	}
	return tokens, nil
}

func annotate(tok *extract.TextToken) {
	if area, ok := ParseDimensionPair(tok.Text); ok {
		tok.IsArea = true
		tok.AreaSqFt = area
		return
	}
	if feet, ok := ParseLength(tok.Text); ok {
		tok.IsLength = true
		tok.LengthFeet = feet
	}
}
