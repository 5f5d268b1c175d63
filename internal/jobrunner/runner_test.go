package jobrunner

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/hvacdesign/planload/internal/async"
	"github.com/hvacdesign/planload/internal/common"
	"github.com/hvacdesign/planload/internal/extract"
	"github.com/hvacdesign/planload/internal/loadcalc"
	"github.com/hvacdesign/planload/internal/pipeline"
)

type fakeStore struct {
	transitions []string
	failure     error
}

func (s *fakeStore) Start(_ context.Context, _ uuid.UUID) error {
	s.transitions = append(s.transitions, "RUNNING")
	return nil
}

func (s *fakeStore) FinishExtracted(_ context.Context, _ uuid.UUID, _ *extract.ExtractionResult) error {
	s.transitions = append(s.transitions, "EXTRACTED")
	return nil
}

func (s *fakeStore) FinishCalculated(_ context.Context, _ uuid.UUID, _ loadcalc.LoadCalculationResult) error {
	s.transitions = append(s.transitions, "CALCULATED")
	return nil
}

func (s *fakeStore) FinishFailure(_ context.Context, _ uuid.UUID, cause error) error {
	s.transitions = append(s.transitions, "FAILED")
	s.failure = cause
	return nil
}

type fakeProcessor struct {
	out *pipeline.Output
	err error
}

func (p *fakeProcessor) Process(_ context.Context, _, _, _ string) (*pipeline.Output, error) {
	if p.err != nil {
		return nil, p.err
	}
	return p.out, nil
}

func TestRunHappyPath(t *testing.T) {
	store := &fakeStore{}
	proc := &fakeProcessor{out: &pipeline.Output{
		Extraction: &extract.ExtractionResult{BlueprintID: "bp-1"},
		Loads:      loadcalc.LoadCalculationResult{CoolingTons: 2},
	}}
	r := New(proc, store, nil)

	if err := r.Run(context.Background(), async.Job{JobID: uuid.New(), PdfPath: "plan.pdf", ZipCode: "30301"}); err != nil {
		t.Fatalf("Run: %v", err)
	}

	want := []string{"RUNNING", "EXTRACTED", "CALCULATED"}
	if len(store.transitions) != len(want) {
		t.Fatalf("transitions = %v, want %v", store.transitions, want)
	}
	for i := range want {
		if store.transitions[i] != want[i] {
			t.Fatalf("transitions = %v, want %v", store.transitions, want)
		}
	}
}

// The pipeline error must both reach the store as the terminal status and
// propagate to the queue.
func TestRunFailurePersistsAndPropagates(t *testing.T) {
	store := &fakeStore{}
	cause := &common.ScaleDetectionError{PageIndex: 0, BestConfidence: 0.4, MinConfidence: 0.6}
	r := New(&fakeProcessor{err: cause}, store, nil)

	err := r.Run(context.Background(), async.Job{JobID: uuid.New(), PdfPath: "plan.pdf", ZipCode: "30301"})
	var scaleErr *common.ScaleDetectionError
	if !errors.As(err, &scaleErr) {
		t.Fatalf("err = %v, want ScaleDetectionError", err)
	}

	want := []string{"RUNNING", "FAILED"}
	if len(store.transitions) != 2 || store.transitions[0] != want[0] || store.transitions[1] != want[1] {
		t.Fatalf("transitions = %v, want %v", store.transitions, want)
	}
	if !errors.As(store.failure, &scaleErr) {
		t.Errorf("persisted failure = %v, want the pipeline error", store.failure)
	}
}
