package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/hvacdesign/planload/constants"
	"github.com/hvacdesign/planload/gen/ent"
	"github.com/hvacdesign/planload/internal/common"
	"github.com/hvacdesign/planload/internal/extract"
	"github.com/hvacdesign/planload/internal/loadcalc"
)

type ExtractionJobRepository interface {
	Enqueue(ctx context.Context, blueprintID uuid.UUID, zipCode string) (*ent.ExtractionJob, error)
	Start(ctx context.Context, jobID uuid.UUID) error
	// FinishExtracted persists the validated extraction before the load
	// calculation runs, so a calculator failure never loses it.
	FinishExtracted(ctx context.Context, jobID uuid.UUID, res *extract.ExtractionResult) error
	FinishCalculated(ctx context.Context, jobID uuid.UUID, loads loadcalc.LoadCalculationResult) error
	FinishFailure(ctx context.Context, jobID uuid.UUID, cause error) error
	GetByID(ctx context.Context, jobID uuid.UUID) (*ent.ExtractionJob, error)
}

type extractionJobRepo struct {
	ent *ent.Client
	log *slog.Logger
}

func NewExtractionJobRepository(entc *ent.Client, log *slog.Logger) ExtractionJobRepository {
	return &extractionJobRepo{ent: entc, log: log}
}

func (r *extractionJobRepo) Enqueue(ctx context.Context, blueprintID uuid.UUID, zipCode string) (*ent.ExtractionJob, error) {
	job, err := r.ent.ExtractionJob.
		Create().
		SetBlueprintID(blueprintID).
		SetZipCode(zipCode).
		SetStatus(string(constants.JobStatusQueued)).
		Save(ctx)
	if err != nil {
		r.log.Error("extraction_job enqueue failed", "blueprint_id", blueprintID, "err", err)
		return nil, err
	}
	r.log.Info("extraction_job queued", "job_id", job.ID, "blueprint_id", blueprintID, "zip", zipCode)
	return job, nil
}

func (r *extractionJobRepo) Start(ctx context.Context, jobID uuid.UUID) error {
	_, err := r.ent.ExtractionJob.
		UpdateOneID(jobID).
		SetStatus(string(constants.JobStatusRunning)).
		SetStartedAt(time.Now()).
		Save(ctx)
	if err != nil {
		r.log.Error("extraction_job start failed", "job_id", jobID, "err", err)
		return err
	}
	r.log.Info("extraction_job started", "job_id", jobID)
	return nil
}

func (r *extractionJobRepo) FinishExtracted(ctx context.Context, jobID uuid.UUID, res *extract.ExtractionResult) error {
	raw, err := json.Marshal(res)
	if err != nil {
		return err
	}
	_, err = r.ent.ExtractionJob.
		UpdateOneID(jobID).
		SetStatus(string(constants.JobStatusExtracted)).
		SetOverallConfidence(float32(res.OverallConfidence)).
		SetDeclaredTotalSqft(res.DeclaredTotalSqFt).
		SetExtractedTotalSqft(res.TotalRoomArea()).
		SetExtractionJSON(raw).
		Save(ctx)
	if err != nil {
		r.log.Error("extraction_job finish(EXTRACTED) failed", "job_id", jobID, "err", err)
		return err
	}
	r.log.Info("extraction_job extracted", "job_id", jobID,
		"rooms", len(res.Rooms), "confidence", res.OverallConfidence)
	return nil
}

func (r *extractionJobRepo) FinishCalculated(ctx context.Context, jobID uuid.UUID, loads loadcalc.LoadCalculationResult) error {
	raw, err := json.Marshal(loads)
	if err != nil {
		return err
	}
	_, err = r.ent.ExtractionJob.
		UpdateOneID(jobID).
		SetStatus(string(constants.JobStatusCalculated)).
		SetFinishedAt(time.Now()).
		SetTotalHeatingBtuh(loads.TotalHeatingBTUH).
		SetTotalCoolingBtuh(loads.TotalCoolingBTUH).
		SetCoolingTons(loads.CoolingTons).
		SetLoadsJSON(raw).
		Save(ctx)
	if err != nil {
		r.log.Error("extraction_job finish(CALCULATED) failed", "job_id", jobID, "err", err)
		return err
	}
	r.log.Info("extraction_job calculated", "job_id", jobID,
		"heating_btuh", loads.TotalHeatingBTUH, "cooling_tons", loads.CoolingTons)
	return nil
}

func (r *extractionJobRepo) FinishFailure(ctx context.Context, jobID uuid.UUID, cause error) error {
	upd := r.ent.ExtractionJob.
		UpdateOneID(jobID).
		SetStatus(string(constants.JobStatusFailed)).
		SetFinishedAt(time.Now()).
		SetErrorKind(errorKind(cause)).
		SetErrorMessage(cause.Error())
	if action := common.SuggestedAction(cause); action != "" {
		upd.SetSuggestedAction(action)
	}
	if _, err := upd.Save(ctx); err != nil {
		r.log.Error("extraction_job finish(FAILED) failed", "job_id", jobID, "err", err)
		return err
	}
	r.log.Warn("extraction_job failed", "job_id", jobID, "kind", errorKind(cause), "error", cause)
	return nil
}

func (r *extractionJobRepo) GetByID(ctx context.Context, jobID uuid.UUID) (*ent.ExtractionJob, error) {
	job, err := r.ent.ExtractionJob.Get(ctx, jobID)
	if ent.IsNotFound(err) {
		return nil, fmt.Errorf("extraction job %s: %w", jobID, common.ErrNotFound)
	}
	return job, err
}

// errorKind maps a pipeline failure to its stable machine-readable name.
func errorKind(err error) string {
	var (
		pdfErr   *common.PdfValidationError
		scaleErr *common.ScaleDetectionError
		geomErr  *common.GeometryExtractionError
		visErr   *common.AIVisionError
		dqErr    *common.DataQualityError
		lowErr   *common.LowConfidenceError
	)
	switch {
	case errors.As(err, &pdfErr):
		return "pdf_validation"
	case errors.As(err, &scaleErr):
		return "scale_detection"
	case errors.As(err, &geomErr):
		return "geometry_extraction"
	case errors.As(err, &visErr):
		return "ai_vision"
	case errors.As(err, &dqErr):
		return "data_quality"
	case errors.As(err, &lowErr):
		return "low_confidence"
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return "cancelled"
	default:
		return "internal"
	}
}
