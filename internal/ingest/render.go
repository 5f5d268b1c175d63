package ingest

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/disintegration/imaging"
)

// RenderConfig configures page rasterization for OCR and vision input.
type RenderConfig struct {
	Pdftoppm string // binary name or absolute path; if empty -> "pdftoppm"
	DPI      int    // default 300
	MaxEdge  int    // longest image edge after resize; default 2048
}

func (c *RenderConfig) defaults() {
	if c.Pdftoppm == "" {
		c.Pdftoppm = "pdftoppm"
	}
	if c.DPI <= 0 {
		c.DPI = 300
	}
	if c.MaxEdge <= 0 {
		c.MaxEdge = 2048
	}
}

// RenderPage rasterizes a single PDF page to a grayscale PNG, resized so the
// longest edge stays within MaxEdge. Returns the PNG path and a cleanup
// function removing the temp directory.
func RenderPage(ctx context.Context, r Runner, cfg RenderConfig, pdfPath string, pageIndex int) (string, func(), error) {
	cfg.defaults()

	tmpDir, err := os.MkdirTemp("", "pl-render-*")
	if err != nil {
		return "", nil, err
	}
	cleanup := func() { _ = os.RemoveAll(tmpDir) }

	prefix := filepath.Join(tmpDir, "page")
	page := fmt.Sprintf("%d", pageIndex+1)
	// pdftoppm -r <dpi> -f <p> -l <p> -png <in.pdf> <tmp/page>
	if _, errb, err := r.Run(ctx, cfg.Pdftoppm,
		"-r", fmt.Sprintf("%d", cfg.DPI), "-f", page, "-l", page, "-png", pdfPath, prefix); err != nil {
		cleanup()
		return "", nil, fmt.Errorf("pdftoppm: %w (%s)", err, truncate(string(errb), 512))
	}

	matches, _ := filepath.Glob(prefix + "-*.png")
	sort.Strings(matches)
	if len(matches) == 0 {
		cleanup()
		return "", nil, fmt.Errorf("pdftoppm produced no image for page %d", pageIndex+1)
	}
	raw := matches[0]

	img, err := imaging.Open(raw)
	if err != nil {
		cleanup()
		return "", nil, fmt.Errorf("open rendered page: %w", err)
	}
	gray := imaging.Grayscale(img)
	b := gray.Bounds()
	if b.Dx() > cfg.MaxEdge || b.Dy() > cfg.MaxEdge {
		if b.Dx() >= b.Dy() {
			gray = imaging.Resize(gray, cfg.MaxEdge, 0, imaging.Lanczos)
		} else {
			gray = imaging.Resize(gray, 0, cfg.MaxEdge, imaging.Lanczos)
		}
	}

	out := filepath.Join(tmpDir, "page.png")
	if err := imaging.Save(gray, out); err != nil {
		cleanup()
		return "", nil, fmt.Errorf("save preprocessed page: %w", err)
	}
	return out, cleanup, nil
}
