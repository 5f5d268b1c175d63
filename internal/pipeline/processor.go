// Package pipeline orchestrates the nine extraction stages for one blueprint
// job. Stages run sequentially, each producing an immutable artifact; the
// run halts on the first typed error and checks for cancellation between
// stages, never mid-stage.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/hvacdesign/planload/internal/audit"
	"github.com/hvacdesign/planload/internal/classify"
	"github.com/hvacdesign/planload/internal/extract"
	"github.com/hvacdesign/planload/internal/ingest"
	"github.com/hvacdesign/planload/internal/loadcalc"
	"github.com/hvacdesign/planload/internal/match"
	"github.com/hvacdesign/planload/internal/scale"
	"github.com/hvacdesign/planload/internal/validate"
	"github.com/hvacdesign/planload/internal/vision"
)

// Ingestor opens and validates a blueprint PDF.
type Ingestor interface {
	Ingest(ctx context.Context, path string) (*extract.Blueprint, []ingest.PageContent, error)
}

// TextExtractor produces page text tokens, running OCR when needed.
type TextExtractor interface {
	Extract(ctx context.Context, page ingest.PageContent, imagePath string) ([]extract.TextToken, error)
}

// Renderer rasterizes one PDF page for OCR and vision input.
type Renderer func(ctx context.Context, pdfPath string, pageIndex int) (pngPath string, cleanup func(), err error)

type Config struct {
	Geometry GeometryConfig
	// VisionTimeout bounds the escalation call; the pipeline never blocks
	// indefinitely on the external collaborator.
	VisionTimeout time.Duration
	Audit         audit.Sink
	Logger        *slog.Logger
}

func (c *Config) defaults() {
	if c.VisionTimeout <= 0 {
		c.VisionTimeout = 90 * time.Second
	}
	if c.Audit == nil {
		c.Audit = audit.NopSink{}
	}
	if c.Logger == nil {
		c.Logger = slog.Default()
	}
}

// Processor wires the stages together. Independent jobs may share one
// Processor; per-run state lives entirely in the run's artifacts.
type Processor struct {
	cfg        Config
	ingestor   Ingestor
	classifier *classify.Classifier
	detector   *scale.Detector
	texts      TextExtractor
	matcher    *match.Matcher
	validator  *validate.Validator
	vision     vision.Extractor
	climate    loadcalc.ClimateProvider
	render     Renderer
}

type Deps struct {
	Ingestor   Ingestor
	Classifier *classify.Classifier
	Detector   *scale.Detector
	Texts      TextExtractor
	Matcher    *match.Matcher
	Validator  *validate.Validator
	Vision     vision.Extractor
	Climate    loadcalc.ClimateProvider
	Render     Renderer
}

func New(cfg Config, deps Deps) *Processor {
	cfg.defaults()
	return &Processor{
		cfg:        cfg,
		ingestor:   deps.Ingestor,
		classifier: deps.Classifier,
		detector:   deps.Detector,
		texts:      deps.Texts,
		matcher:    deps.Matcher,
		validator:  deps.Validator,
		vision:     deps.Vision,
		climate:    deps.Climate,
		render:     deps.Render,
	}
}

// Output is the finalized pair of artifacts for a successful run.
type Output struct {
	Blueprint  *extract.Blueprint
	Extraction *extract.ExtractionResult
	Loads      loadcalc.LoadCalculationResult
}

// Process runs all stages for one job. zip selects the climate design
// conditions for the load calculation.
func (p *Processor) Process(ctx context.Context, jobID, pdfPath, zip string) (*Output, error) {
	log := p.cfg.Logger.With("job_id", jobID)

	// stage 1: ingestion
	start := time.Now()
	bp, pages, err := p.ingestor.Ingest(ctx, pdfPath)
	if err != nil {
		return nil, err
	}
	if len(pages) == 0 {
		return nil, fmt.Errorf("blueprint %s has no pages", bp.ID)
	}
	p.emit(ctx, jobID, "ingest", pdfPath,
		fmt.Sprintf("pages=%d", bp.PageCount), 1.0, start)
	if err := cancelled(ctx); err != nil {
		return nil, err
	}

	// stage 2: page classification
	start = time.Now()
	classifications := p.classifier.Classify(bp, pages)
	pageIdx, pageConf := p.pickFloorPlan(classifications, pages)
	page := pages[pageIdx]
	p.emit(ctx, jobID, "classify",
		fmt.Sprintf("pages=%d", len(pages)),
		fmt.Sprintf("floor_plan_page=%d", pageIdx), pageConf, start)
	if err := cancelled(ctx); err != nil {
		return nil, err
	}

	// render once; OCR and vision both consume the same preprocessed image
	imagePath, cleanup := p.renderPage(ctx, log, pdfPath, pageIdx)
	if cleanup != nil {
		defer cleanup()
	}

	// stage 4 runs before 3: scale notation lives in the text layer
	start = time.Now()
	tokens, err := p.texts.Extract(ctx, page, imagePath)
	if err != nil {
		return nil, err
	}
	p.emit(ctx, jobID, "text_extract",
		fmt.Sprintf("page=%d", pageIdx),
		fmt.Sprintf("tokens=%d", len(tokens)), 1.0, start)
	if err := cancelled(ctx); err != nil {
		return nil, err
	}

	// stage 3: scale detection
	start = time.Now()
	hypothesis, err := p.detector.Detect(pageIdx, page.HeightPt, tokens, rawWalls(page))
	if err != nil {
		return nil, err
	}
	p.emit(ctx, jobID, "scale",
		fmt.Sprintf("page=%d", pageIdx),
		fmt.Sprintf("feet_per_point=%.5f source=%s", hypothesis.UnitsPerPixel, hypothesis.Source),
		hypothesis.Confidence, start)
	if err := cancelled(ctx); err != nil {
		return nil, err
	}

	// stage 5: geometry extraction
	start = time.Now()
	geom, err := extractGeometry(p.cfg.Geometry, page, hypothesis.UnitsPerPixel)
	if err != nil {
		return nil, err
	}
	geomConf := 0.9
	if geom.Sampled {
		geomConf = 0.7
	}
	p.emit(ctx, jobID, "geometry",
		fmt.Sprintf("walls=%d", len(geom.Walls)),
		fmt.Sprintf("rooms=%d sampled=%t", len(geom.Rooms), geom.Sampled), geomConf, start)
	if err := cancelled(ctx); err != nil {
		return nil, err
	}

	// stage 6: spatial matching
	start = time.Now()
	matched := p.matcher.Match(geom.Rooms, tokens, hypothesis.UnitsPerPixel)
	p.emit(ctx, jobID, "match",
		fmt.Sprintf("rooms=%d tokens=%d", len(geom.Rooms), len(tokens)),
		fmt.Sprintf("records=%d warnings=%d", len(matched.Rooms), len(matched.Warnings)),
		minRoomConfidence(matched.Rooms), start)
	if err := cancelled(ctx); err != nil {
		return nil, err
	}

	envelope, envWarnings := validate.ParseEnvelope(tokens)
	declaredTotal := validate.ParseDeclaredTotal(tokens)

	in := validate.Input{
		BlueprintID:       bp.ID,
		Rooms:             matched.Rooms,
		Envelope:          envelope,
		DeclaredTotalSqFt: declaredTotal,
		Warnings:          append(matched.Warnings, envWarnings...),
		ScaleConfidence:   hypothesis.Confidence,
	}

	// stages 7+8: confidence gate, optional vision escalation, validation
	start = time.Now()
	result, err := p.validator.Validate(in)
	if errors.Is(err, validate.ErrBelowGate) {
		visionFields, visionErr := p.escalate(ctx, jobID, imagePath, len(geom.Rooms))
		if visionErr != nil {
			return nil, visionErr
		}
		in.Vision = visionFields
		in.VisionAttempted = true
		result, err = p.validator.Validate(in)
	}
	if err != nil {
		return nil, err
	}
	p.emit(ctx, jobID, "validate",
		fmt.Sprintf("rooms=%d declared_total=%.0f", len(in.Rooms), declaredTotal),
		fmt.Sprintf("rooms=%d warnings=%d", len(result.Rooms), len(result.Warnings)),
		result.OverallConfidence, start)
	if err := cancelled(ctx); err != nil {
		return nil, err
	}

	// stage 9: load calculation
	start = time.Now()
	climate, err := p.climate.DesignConditions(ctx, zip)
	if err != nil {
		return nil, err
	}
	loads := loadcalc.Calculate(result, climate)
	p.emit(ctx, jobID, "loadcalc",
		fmt.Sprintf("rooms=%d zone=%s", len(result.Rooms), climate.Zone),
		fmt.Sprintf("heating=%.0f cooling=%.0f tons=%.1f",
			loads.TotalHeatingBTUH, loads.TotalCoolingBTUH, loads.CoolingTons),
		result.OverallConfidence, start)

	log.Info("pipeline complete",
		"blueprint_id", bp.ID,
		"rooms", len(result.Rooms),
		"overall_confidence", result.OverallConfidence,
		"cooling_tons", loads.CoolingTons,
	)
	return &Output{Blueprint: bp, Extraction: result, Loads: loads}, nil
}

// escalate invokes the vision collaborator under its own timeout. A failure
// here fails the run; the below-gate traditional result is never substituted.
func (p *Processor) escalate(ctx context.Context, jobID, imagePath string, roomHint int) (*vision.ExtractionFields, error) {
	if p.vision == nil {
		return nil, fmt.Errorf("confidence gate unmet and no vision extractor configured")
	}
	start := time.Now()
	vctx, cancel := context.WithTimeout(ctx, p.cfg.VisionTimeout)
	defer cancel()

	resp, _, err := p.vision.RequestStructuredExtraction(vctx, vision.ExtractRequest{
		PageImagePath:     imagePath,
		ExpectedRoomCount: roomHint,
	})
	if err != nil {
		return nil, err
	}
	p.emit(ctx, jobID, "vision",
		fmt.Sprintf("image=%s room_hint=%d", imagePath, roomHint),
		fmt.Sprintf("rooms=%d tokens=%d", len(resp.Fields.Rooms), resp.TokenCost),
		resp.Fields.ModelConfidence, start)
	return &resp.Fields, nil
}

// pickFloorPlan returns the top-ranked floor-plan page, falling back to the
// densest page when classification found no floor plan at all.
func (p *Processor) pickFloorPlan(cls []extract.PageClassification, pages []ingest.PageContent) (int, float64) {
	ranked := classify.RankFloorPlans(cls)
	if len(ranked) > 0 {
		idx := ranked[0]
		for _, c := range cls {
			if c.PageIndex == idx {
				return idx, c.Confidence
			}
		}
		return idx, 0
	}
	best, bestCount := 0, -1
	for i, pg := range pages {
		if n := len(pg.Lines) + len(pg.Rects); n > bestCount {
			best, bestCount = i, n
		}
	}
	return best, 0
}

func (p *Processor) renderPage(ctx context.Context, log *slog.Logger, pdfPath string, pageIdx int) (string, func()) {
	if p.render == nil {
		return "", nil
	}
	imagePath, cleanup, err := p.render(ctx, pdfPath, pageIdx)
	if err != nil {
		// OCR and vision degrade to unavailable; native text still works
		log.Warn("page render failed, continuing without raster", "page", pageIdx, "error", err)
		return "", nil
	}
	return imagePath, cleanup
}

func (p *Processor) emit(ctx context.Context, jobID, stage, in, out string, conf float64, start time.Time) {
	p.cfg.Audit.Emit(ctx, audit.Record{
		JobID:          jobID,
		Stage:          stage,
		InputsSummary:  in,
		OutputsSummary: out,
		Confidence:     conf,
		Duration:       time.Since(start),
		Timestamp:      time.Now().UTC(),
	})
}

func cancelled(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
		return nil
	}
}

func minRoomConfidence(rooms []extract.RoomRecord) float64 {
	minConf := 1.0
	for _, r := range rooms {
		if r.Confidence < minConf {
			minConf = r.Confidence
		}
	}
	return minConf
}
