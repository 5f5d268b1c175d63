// Package jobrunner executes queued extraction jobs and records their
// lifecycle transitions. It is the only writer of job status after intake.
package jobrunner

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/hvacdesign/planload/internal/async"
	"github.com/hvacdesign/planload/internal/common"
	"github.com/hvacdesign/planload/internal/extract"
	"github.com/hvacdesign/planload/internal/loadcalc"
	"github.com/hvacdesign/planload/internal/pipeline"
)

// persistTimeout bounds the failure write when the job context is already
// dead; the terminal status must land even then.
const persistTimeout = 10 * time.Second

// JobStore is the slice of the job repository the runner needs.
type JobStore interface {
	Start(ctx context.Context, jobID uuid.UUID) error
	FinishExtracted(ctx context.Context, jobID uuid.UUID, res *extract.ExtractionResult) error
	FinishCalculated(ctx context.Context, jobID uuid.UUID, loads loadcalc.LoadCalculationResult) error
	FinishFailure(ctx context.Context, jobID uuid.UUID, cause error) error
}

// Processor runs the extraction pipeline for one document.
type Processor interface {
	Process(ctx context.Context, jobID, pdfPath, zip string) (*pipeline.Output, error)
}

type Runner struct {
	processor Processor
	jobs      JobStore
	logger    *slog.Logger
}

func New(p Processor, jobs JobStore, logger *slog.Logger) *Runner {
	if logger == nil {
		logger = slog.Default()
	}
	return &Runner{processor: p, jobs: jobs, logger: logger}
}

// Run takes one queued job through the pipeline. The validated extraction is
// persisted before the load results so a late failure never loses it.
func (r *Runner) Run(ctx context.Context, job async.Job) error {
	ctx = common.WithJobID(ctx, job.JobID.String())
	if job.TraceID != "" {
		ctx = common.WithTraceID(ctx, job.TraceID)
	}

	if err := r.jobs.Start(ctx, job.JobID); err != nil {
		return err
	}

	out, err := r.processor.Process(ctx, job.JobID.String(), job.PdfPath, job.ZipCode)
	if err != nil {
		r.persistFailure(job, err)
		return err
	}

	if err := r.jobs.FinishExtracted(ctx, job.JobID, out.Extraction); err != nil {
		return err
	}
	if err := r.jobs.FinishCalculated(ctx, job.JobID, out.Loads); err != nil {
		return err
	}

	r.logger.Info("job complete",
		"job_id", job.JobID,
		"rooms", len(out.Extraction.Rooms),
		"cooling_tons", out.Loads.CoolingTons)
	return nil
}

func (r *Runner) persistFailure(job async.Job, cause error) {
	ctx, cancel := context.WithTimeout(context.Background(), persistTimeout)
	defer cancel()
	if err := r.jobs.FinishFailure(ctx, job.JobID, cause); err != nil {
		r.logger.Error("could not persist job failure", "job_id", job.JobID, "error", err)
	}
}
