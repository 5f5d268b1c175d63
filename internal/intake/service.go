// Package intake turns a dropped or submitted PDF into a queued extraction
// job. It validates the document up front so structurally broken uploads
// fail before a worker is spent on them.
package intake

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pdfcpu/pdfcpu/pkg/api"

	"github.com/hvacdesign/planload/internal/async"
	"github.com/hvacdesign/planload/internal/common"
	"github.com/hvacdesign/planload/internal/repository"
)

type Service struct {
	blueprints repository.BlueprintRepository
	jobs       repository.ExtractionJobRepository
	queue      async.Queue
	logger     *slog.Logger
}

func NewService(b repository.BlueprintRepository, j repository.ExtractionJobRepository, q async.Queue, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{blueprints: b, jobs: j, queue: q, logger: logger}
}

// SubmitResult reports what intake did with one document.
type SubmitResult struct {
	BlueprintID  uuid.UUID
	JobID        uuid.UUID
	PageCount    int
	Deduplicated bool // the blueprint row already existed
}

// Submit validates the PDF, registers the blueprint, and queues one
// extraction job for it. Duplicate files map onto the existing blueprint row
// but still get a fresh job.
func (s *Service) Submit(ctx context.Context, path, zipCode string) (SubmitResult, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return SubmitResult{}, fmt.Errorf("path is required: %w", common.ErrInvalidInput)
	}
	if zipCode = strings.TrimSpace(zipCode); zipCode == "" {
		return SubmitResult{}, fmt.Errorf("zip code is required: %w", common.ErrInvalidInput)
	}

	pageCount, err := api.PageCountFile(path)
	if err != nil {
		return SubmitResult{}, &common.PdfValidationError{Filename: filepath.Base(path), Cause: err}
	}

	hash, size, err := hashFile(path)
	if err != nil {
		return SubmitResult{}, err
	}

	bp, created, err := s.blueprints.GetOrCreate(ctx, filepath.Base(path), path, hash, pageCount, size)
	if err != nil {
		return SubmitResult{}, err
	}

	job, err := s.jobs.Enqueue(ctx, bp.ID, zipCode)
	if err != nil {
		return SubmitResult{}, err
	}

	if err := s.queue.Enqueue(ctx, async.Job{
		JobID:       job.ID,
		PdfPath:     path,
		ZipCode:     zipCode,
		SubmittedAt: time.Now(),
		TraceID:     uuid.NewString(),
	}); err != nil {
		return SubmitResult{}, err
	}

	s.logger.Info("blueprint submitted",
		"blueprint_id", bp.ID, "job_id", job.ID, "pages", pageCount, "deduplicated", !created)
	return SubmitResult{
		BlueprintID:  bp.ID,
		JobID:        job.ID,
		PageCount:    pageCount,
		Deduplicated: !created,
	}, nil
}

func hashFile(path string) (string, int64, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", 0, err
	}
	defer f.Close()

	h := sha256.New()
	n, err := io.Copy(h, f)
	if err != nil {
		return "", 0, err
	}
	return hex.EncodeToString(h.Sum(nil)), n, nil
}
