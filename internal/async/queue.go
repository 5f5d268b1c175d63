// Package async dispatches blueprint jobs to a bounded worker pool.
// Independent jobs run concurrently and share no mutable state.
package async

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Job identifies one blueprint-processing run.
type Job struct {
	JobID       uuid.UUID
	PdfPath     string
	ZipCode     string
	SubmittedAt time.Time
	TraceID     string
}

// Runner executes one job end to end, including persistence of its outcome.
type Runner interface {
	Run(ctx context.Context, job Job) error
}

type Queue interface {
	Enqueue(ctx context.Context, job Job) error
	Shutdown(ctx context.Context)
}
