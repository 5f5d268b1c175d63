package async

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
)

type countingRunner struct {
	mu   sync.Mutex
	seen []uuid.UUID
	done chan struct{}
	want int
}

func (r *countingRunner) Run(_ context.Context, job Job) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seen = append(r.seen, job.JobID)
	if len(r.seen) == r.want {
		close(r.done)
	}
	return nil
}

func TestProcessorQueueRunsAllJobs(t *testing.T) {
	runner := &countingRunner{done: make(chan struct{}), want: 8}
	q := NewProcessorQueue(runner, nil, WithWorkers(2), WithQueueSize(16))

	ids := make(map[uuid.UUID]bool)
	for i := 0; i < 8; i++ {
		id := uuid.New()
		ids[id] = true
		if err := q.Enqueue(context.Background(), Job{JobID: id, SubmittedAt: time.Now()}); err != nil {
			t.Fatalf("Enqueue: %v", err)
		}
	}

	select {
	case <-runner.done:
	case <-time.After(5 * time.Second):
		t.Fatal("jobs did not finish")
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	q.Shutdown(ctx)

	runner.mu.Lock()
	defer runner.mu.Unlock()
	if len(runner.seen) != 8 {
		t.Fatalf("ran %d jobs, want 8", len(runner.seen))
	}
	for _, id := range runner.seen {
		if !ids[id] {
			t.Errorf("unknown job id %s", id)
		}
	}
}

func TestProcessorQueueEnqueueAfterShutdown(t *testing.T) {
	runner := &countingRunner{done: make(chan struct{}), want: 1}
	q := NewProcessorQueue(runner, nil, WithWorkers(1))

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	q.Shutdown(ctx)

	// must not panic on a closed channel
	if err := q.Enqueue(context.Background(), Job{JobID: uuid.New()}); err != nil {
		t.Fatalf("Enqueue after shutdown: %v", err)
	}
	runner.mu.Lock()
	defer runner.mu.Unlock()
	if len(runner.seen) != 0 {
		t.Errorf("job ran after shutdown")
	}
}
