package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/hvacdesign/planload/constants"
	v1 "github.com/hvacdesign/planload/gen/planload/v1"
	"github.com/hvacdesign/planload/internal/common"
	"github.com/hvacdesign/planload/internal/export"
	"github.com/hvacdesign/planload/internal/extract"
	"github.com/hvacdesign/planload/internal/intake"
	"github.com/hvacdesign/planload/internal/loadcalc"
	"github.com/hvacdesign/planload/internal/repository"

	"github.com/hvacdesign/planload/gen/ent"
)

type PlanLoadServer struct {
	v1.UnimplementedPlanLoadServiceServer
	intake *intake.Service
	jobs   repository.ExtractionJobRepository
	export *export.Service
	logger *slog.Logger
}

func NewPlanLoadServer(in *intake.Service, jobs repository.ExtractionJobRepository, exp *export.Service, logger *slog.Logger) *PlanLoadServer {
	if logger == nil {
		logger = slog.Default()
	}
	return &PlanLoadServer{intake: in, jobs: jobs, export: exp, logger: logger}
}

func (s *PlanLoadServer) SubmitBlueprint(ctx context.Context, req *v1.SubmitBlueprintRequest) (*v1.SubmitBlueprintResponse, error) {
	if strings.TrimSpace(req.GetZipCode()) == "" {
		return nil, common.InvalidArgumentError("zip_code is required")
	}

	path := strings.TrimSpace(req.GetPdfPath())
	switch {
	case path != "" && len(req.GetPdfData()) > 0:
		return nil, common.InvalidArgumentError("set either pdf_path or pdf_data, not both")
	case path == "" && len(req.GetPdfData()) == 0:
		return nil, common.InvalidArgumentError("pdf_path or pdf_data is required")
	case len(req.GetPdfData()) > 0:
		spooled, err := s.spool(req.GetFilename(), req.GetPdfData())
		if err != nil {
			s.logger.Error("spooling upload failed", "error", err)
			return nil, common.InternalError("could not store upload")
		}
		path = spooled
	}

	res, err := s.intake.Submit(ctx, path, req.GetZipCode())
	if err != nil {
		var pdfErr *common.PdfValidationError
		if errors.As(err, &pdfErr) {
			return nil, common.InvalidArgumentErrorf("not a valid PDF: %v", pdfErr.Cause)
		}
		if errors.Is(err, common.ErrInvalidInput) {
			return nil, common.InvalidArgumentError(err.Error())
		}
		s.logger.Error("submit failed", "path", path, "error", err)
		return nil, common.InternalError("submit failed")
	}

	return &v1.SubmitBlueprintResponse{
		JobId:        res.JobID.String(),
		BlueprintId:  res.BlueprintID.String(),
		PageCount:    int32(res.PageCount),
		Deduplicated: res.Deduplicated,
	}, nil
}

// spool writes uploaded PDF bytes to the spool directory so the pipeline can
// treat uploads and drop-directory files alike.
func (s *PlanLoadServer) spool(filename string, data []byte) (string, error) {
	dir := os.Getenv("UPLOAD_SPOOL_DIR")
	if dir == "" {
		dir = filepath.Join(os.TempDir(), "planload-uploads")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	base := filepath.Base(strings.TrimSpace(filename))
	if base == "" || base == "." || base == "/" {
		base = "upload.pdf"
	}
	path := filepath.Join(dir, uuid.NewString()+"-"+base)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", err
	}
	return path, nil
}

func (s *PlanLoadServer) GetJob(ctx context.Context, req *v1.GetJobRequest) (*v1.GetJobResponse, error) {
	jobID, err := uuid.Parse(strings.TrimSpace(req.GetJobId()))
	if err != nil {
		return nil, common.InvalidArgumentError("job_id must be a UUID")
	}

	job, err := s.jobs.GetByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.NotFoundError(fmt.Sprintf("job %s not found", jobID))
		}
		s.logger.Error("get job failed", "job_id", jobID, "error", err)
		return nil, common.InternalError("get job failed")
	}

	return &v1.GetJobResponse{Job: toProtoJob(job)}, nil
}

func (s *PlanLoadServer) GetLoadSheet(ctx context.Context, req *v1.GetLoadSheetRequest) (*v1.GetLoadSheetResponse, error) {
	jobID, err := uuid.Parse(strings.TrimSpace(req.GetJobId()))
	if err != nil {
		return nil, common.InvalidArgumentError("job_id must be a UUID")
	}

	job, err := s.jobs.GetByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.NotFoundError(fmt.Sprintf("job %s not found", jobID))
		}
		s.logger.Error("get job failed", "job_id", jobID, "error", err)
		return nil, common.InternalError("get job failed")
	}
	if job.Status != string(constants.JobStatusCalculated) {
		return nil, status.Errorf(codes.FailedPrecondition,
			"job %s is %s; a load sheet needs status %s", jobID, job.Status, constants.JobStatusCalculated)
	}

	var res extract.ExtractionResult
	if err := json.Unmarshal(job.ExtractionJSON, &res); err != nil {
		s.logger.Error("stored extraction unreadable", "job_id", jobID, "error", err)
		return nil, common.InternalError("stored extraction unreadable")
	}
	var loads loadcalc.LoadCalculationResult
	if err := json.Unmarshal(job.LoadsJSON, &loads); err != nil {
		s.logger.Error("stored loads unreadable", "job_id", jobID, "error", err)
		return nil, common.InternalError("stored loads unreadable")
	}

	xlsx, err := s.export.LoadSheetXLSX(ctx, &res, loads)
	if err != nil {
		s.logger.Error("export failed", "job_id", jobID, "error", err)
		return nil, common.InternalError("export failed")
	}

	return &v1.GetLoadSheetResponse{
		Xlsx:     xlsx,
		Filename: fmt.Sprintf("loadsheet-%s.xlsx", jobID),
	}, nil
}

func toProtoJob(job *ent.ExtractionJob) *v1.Job {
	out := &v1.Job{
		Id:          job.ID.String(),
		BlueprintId: job.BlueprintID.String(),
		Status:      job.Status,
		ZipCode:     job.ZipCode,
		QueuedAt:    job.QueuedAt.Format(time.RFC3339Nano),
	}
	if job.OverallConfidence != nil {
		out.OverallConfidence = *job.OverallConfidence
	}
	if job.DeclaredTotalSqft != nil {
		out.DeclaredTotalSqft = *job.DeclaredTotalSqft
	}
	if job.ExtractedTotalSqft != nil {
		out.ExtractedTotalSqft = *job.ExtractedTotalSqft
	}
	if job.TotalHeatingBtuh != nil {
		out.TotalHeatingBtuh = *job.TotalHeatingBtuh
	}
	if job.TotalCoolingBtuh != nil {
		out.TotalCoolingBtuh = *job.TotalCoolingBtuh
	}
	if job.CoolingTons != nil {
		out.CoolingTons = *job.CoolingTons
	}
	if job.ErrorKind != nil {
		out.ErrorKind = *job.ErrorKind
	}
	if job.ErrorMessage != nil {
		out.ErrorMessage = *job.ErrorMessage
	}
	if job.SuggestedAction != nil {
		out.SuggestedAction = *job.SuggestedAction
	}
	if job.StartedAt != nil {
		out.StartedAt = job.StartedAt.Format(time.RFC3339Nano)
	}
	if job.FinishedAt != nil {
		out.FinishedAt = job.FinishedAt.Format(time.RFC3339Nano)
	}
	return out
}
