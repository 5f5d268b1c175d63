// Package audit emits per-stage trail records. The pipeline's only obligation
// is to produce the records faithfully and in order; sinks decide storage.
package audit

import (
	"context"
	"log/slog"
	"time"

	"github.com/hvacdesign/planload/internal/common"
)

// Record describes one pipeline stage execution for a job.
type Record struct {
	JobID          string
	Stage          string
	InputsSummary  string
	OutputsSummary string
	Confidence     float64
	Duration       time.Duration
	Timestamp      time.Time
}

// Sink receives stage records. Emit must not block the pipeline.
type Sink interface {
	Emit(ctx context.Context, rec Record)
}

// SlogSink writes records to the structured log.
type SlogSink struct {
	Logger *slog.Logger
}

func (s SlogSink) Emit(ctx context.Context, rec Record) {
	logger := s.Logger
	if logger == nil {
		logger = slog.Default()
	}
	if tid := common.TraceIDFromContext(ctx); tid != "" {
		logger = logger.With("trace_id", tid)
	}
	logger.Info("audit.stage",
		"job_id", rec.JobID,
		"stage", rec.Stage,
		"inputs", rec.InputsSummary,
		"outputs", rec.OutputsSummary,
		"confidence", rec.Confidence,
		"duration_ms", rec.Duration.Milliseconds(),
	)
}

// MultiSink fans a record out to several sinks.
type MultiSink []Sink

func (m MultiSink) Emit(ctx context.Context, rec Record) {
	for _, s := range m {
		s.Emit(ctx, rec)
	}
}

// NopSink discards records.
type NopSink struct{}

func (NopSink) Emit(context.Context, Record) {}
