// Package ingest validates blueprint PDFs and extracts per-page structure:
// raster dimensions, vector primitives, and positioned native text.
package ingest

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/google/uuid"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"

	"github.com/hvacdesign/planload/internal/common"
	"github.com/hvacdesign/planload/internal/extract"
)

// Config configures the blueprint ingestor.
type Config struct {
	MaxFileSize int64 // default 200 MB
	Logger      *slog.Logger
}

func (c *Config) defaults() {
	if c.MaxFileSize <= 0 {
		c.MaxFileSize = 200 * 1024 * 1024
	}
	if c.Logger == nil {
		c.Logger = slog.Default()
	}
}

// PageContent is the raw extracted content of one page, in PDF points.
type PageContent struct {
	Index    int // zero-based
	WidthPt  float64
	HeightPt float64
	Lines    []LinePrimitive
	Rects    []RectPrimitive
	Texts    []PositionedText
	HasImage bool
}

// Ingestor is stage 1: PDF file → Blueprint + per-page content.
type Ingestor struct {
	cfg Config
}

func NewIngestor(cfg Config) *Ingestor {
	cfg.defaults()
	return &Ingestor{cfg: cfg}
}

// Ingest validates the PDF and extracts page metadata and content streams.
// A structurally broken document returns *common.PdfValidationError before
// any later stage runs.
func (g *Ingestor) Ingest(ctx context.Context, path string) (*extract.Blueprint, []PageContent, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, nil, &common.PdfValidationError{Filename: path, Cause: err}
	}
	if info.Size() > g.cfg.MaxFileSize {
		return nil, nil, &common.PdfValidationError{
			Filename: path,
			Cause:    io.ErrShortBuffer,
		}
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, nil, &common.PdfValidationError{Filename: path, Cause: err}
	}
	defer f.Close()

	conf := model.NewDefaultConfiguration()
	pctx, err := api.ReadValidateAndOptimize(f, conf)
	if err != nil {
		g.cfg.Logger.Error("pdf validation failed", "path", path, "error", err)
		return nil, nil, &common.PdfValidationError{Filename: path, Cause: err}
	}

	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}

	dims, err := pctx.PageDims()
	if err != nil {
		return nil, nil, &common.PdfValidationError{Filename: path, Cause: err}
	}

	bp := &extract.Blueprint{
		ID:        uuid.New().String(),
		Filename:  path,
		PageCount: pctx.PageCount,
	}

	contents := make([]PageContent, 0, pctx.PageCount)
	for pageNr := 1; pageNr <= pctx.PageCount; pageNr++ {
		pc := PageContent{Index: pageNr - 1}
		if pageNr-1 < len(dims) {
			pc.WidthPt = dims[pageNr-1].Width
			pc.HeightPt = dims[pageNr-1].Height
		}
		if data := pageContentBytes(pctx, pageNr); len(data) > 0 {
			pc.Lines, pc.Rects, pc.Texts = parseContentStream(data)
		}
		pc.HasImage = pageHasImage(pctx, pageNr)

		bp.Pages = append(bp.Pages, extract.PageInfo{
			Index:          pc.Index,
			WidthPt:        pc.WidthPt,
			HeightPt:       pc.HeightPt,
			PrimitiveCount: len(pc.Lines) + len(pc.Rects),
			TextOpCount:    len(pc.Texts),
			HasImageXObj:   pc.HasImage,
		})
		contents = append(contents, pc)
	}

	g.cfg.Logger.Info("blueprint ingested",
		"blueprint_id", bp.ID,
		"path", path,
		"pages", bp.PageCount,
	)
	return bp, contents, nil
}

func pageContentBytes(pctx *model.Context, pageNr int) []byte {
	r, err := pdfcpu.ExtractPageContent(pctx, pageNr)
	if err != nil || r == nil {
		return nil
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil
	}
	return data
}

// pageHasImage checks whether the page references image XObjects.
func pageHasImage(pctx *model.Context, pageNr int) bool {
	if pctx.Optimize != nil {
		if len(pdfcpu.ImageObjNrs(pctx, pageNr)) > 0 {
			return true
		}
	}
	// Fallback: scan the xref table for image subtype stream objects.
	for _, entry := range pctx.Table {
		if entry == nil || entry.Free || entry.Compressed {
			continue
		}
		sd, ok := entry.Object.(types.StreamDict)
		if !ok {
			continue
		}
		if subtype, found := sd.Find("Subtype"); found {
			if name, isName := subtype.(types.Name); isName && name == "Image" {
				return true
			}
		}
	}
	return false
}
