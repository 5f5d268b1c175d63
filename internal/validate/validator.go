// Package validate merges traditional and vision extraction hypotheses,
// cross-validates the result, and computes the run's overall confidence.
package validate

import (
	"errors"
	"log/slog"
	"math"
	"strings"
	"time"

	"github.com/hvacdesign/planload/constants"
	"github.com/hvacdesign/planload/internal/common"
	"github.com/hvacdesign/planload/internal/extract"
	"github.com/hvacdesign/planload/internal/vision"
)

// ErrBelowGate signals that the traditional pipeline alone did not reach the
// confidence gate and vision escalation should be attempted. It is a control
// signal for the orchestrator, not a terminal failure.
var ErrBelowGate = errors.New("overall confidence below gate, vision escalation required")

type Config struct {
	// AreaTolerance is the relative disagreement between summed room areas
	// and a declared total above which the run fails. Default 0.20.
	AreaTolerance float64
	// MinOverallConfidence is the acceptance gate. Default 0.55.
	MinOverallConfidence float64
	// MergeTieMargin is the confidence band inside which the traditional
	// source beats the vision source. Default 0.05.
	MergeTieMargin float64
	// Plausible average room sizes for the room-count check, sq ft.
	MinAvgRoomArea float64
	MaxAvgRoomArea float64
	Logger         *slog.Logger
}

func (c *Config) defaults() {
	if c.AreaTolerance <= 0 {
		c.AreaTolerance = 0.20
	}
	if c.MinOverallConfidence <= 0 {
		c.MinOverallConfidence = 0.55
	}
	if c.MergeTieMargin <= 0 {
		c.MergeTieMargin = 0.05
	}
	if c.MinAvgRoomArea <= 0 {
		c.MinAvgRoomArea = 60
	}
	if c.MaxAvgRoomArea <= 0 {
		c.MaxAvgRoomArea = 700
	}
	if c.Logger == nil {
		c.Logger = slog.Default()
	}
}

// Input carries everything the validator merges. Vision is nil until the
// orchestrator escalates.
type Input struct {
	BlueprintID       string
	Rooms             []extract.RoomRecord
	Envelope          extract.BuildingEnvelope
	DeclaredTotalSqFt float64
	Warnings          []string
	// ScaleConfidence participates in the overall minimum; the model is
	// only as trustworthy as the scale it was measured at.
	ScaleConfidence float64
	Vision          *vision.ExtractionFields
	// VisionAttempted distinguishes "not yet escalated" from "escalated
	// and still weak".
	VisionAttempted bool
}

type Validator struct {
	cfg Config
}

func New(cfg Config) *Validator {
	cfg.defaults()
	return &Validator{cfg: cfg}
}

// Validate merges, cross-checks, and finalizes the extraction. It returns
// ErrBelowGate when escalation should be attempted, a typed fatal error when
// a cross-check fails, and an immutable ExtractionResult otherwise.
func (v *Validator) Validate(in Input) (*extract.ExtractionResult, error) {
	rooms := append([]extract.RoomRecord(nil), in.Rooms...)
	envelope := in.Envelope
	warnings := append([]string(nil), in.Warnings...)

	if in.Vision != nil {
		var mergeWarnings []string
		rooms, mergeWarnings = v.mergeRooms(rooms, in.Vision)
		warnings = append(warnings, mergeWarnings...)
		envelope = v.mergeEnvelope(envelope, in.Vision)
	}

	if err := v.crossCheck(rooms, in.DeclaredTotalSqFt); err != nil {
		return nil, err
	}

	overall := v.overallConfidence(rooms, envelope, in.ScaleConfidence)
	if overall < v.cfg.MinOverallConfidence {
		if !in.VisionAttempted {
			v.cfg.Logger.Info("confidence gate unmet, escalating",
				"blueprint_id", in.BlueprintID,
				"overall", overall,
				"gate", v.cfg.MinOverallConfidence,
			)
			return nil, ErrBelowGate
		}
		return nil, &common.LowConfidenceError{Overall: overall, Threshold: v.cfg.MinOverallConfidence}
	}

	res := &extract.ExtractionResult{
		BlueprintID:       in.BlueprintID,
		Envelope:          envelope,
		Rooms:             rooms,
		DeclaredTotalSqFt: in.DeclaredTotalSqFt,
		OverallConfidence: overall,
		Warnings:          warnings,
		ExtractedAt:       time.Now().UTC(),
	}
	v.cfg.Logger.Info("extraction validated",
		"blueprint_id", in.BlueprintID,
		"rooms", len(res.Rooms),
		"total_room_area", res.TotalRoomArea(),
		"overall_confidence", overall,
	)
	return res, nil
}

// mergeRooms resolves each room field-set by confidence. A vision hypothesis
// replaces a traditional room only when its stated confidence beats the
// room's by more than the tie margin; ties keep the traditional record
// because it is cheaper, deterministic, and auditable. Vision rooms with no
// traditional counterpart are appended, covering rooms geometry missed.
func (v *Validator) mergeRooms(traditional []extract.RoomRecord, vis *vision.ExtractionFields) ([]extract.RoomRecord, []string) {
	var warnings []string
	visByName := make(map[string]vision.RoomFields, len(vis.Rooms))
	for _, r := range vis.Rooms {
		visByName[normalizeName(r.Name)] = r
	}

	claimed := make(map[string]bool)
	out := make([]extract.RoomRecord, 0, len(traditional))
	for _, rec := range traditional {
		key := normalizeName(rec.Name)
		hyp, ok := visByName[key]
		if !ok {
			hyp, key, ok = matchByArea(rec, vis.Rooms, claimed, v.cfg.AreaTolerance)
		}
		if ok && !claimed[key] {
			claimed[key] = true
			if vis.ModelConfidence > rec.Confidence+v.cfg.MergeTieMargin {
				out = append(out, fromVision(hyp, vis.ModelConfidence))
				continue
			}
			// traditional record stands; backfill fields it never had
			if rec.WindowAreaSqFt == 0 {
				rec.WindowAreaSqFt = hyp.WindowAreaSqFt
			}
			if hyp.OverUnconditioned {
				rec.OverUnconditioned = true
			}
		}
		out = append(out, rec)
	}

	for _, r := range vis.Rooms {
		if !claimed[normalizeName(r.Name)] {
			out = append(out, fromVision(r, vis.ModelConfidence))
			warnings = append(warnings, r.Name+": room seen only by vision, not by geometry")
		}
	}
	return out, warnings
}

// matchByArea pairs an unnamed or differently-labeled traditional room with
// the closest-area unclaimed vision room within the area tolerance.
func matchByArea(rec extract.RoomRecord, hyps []vision.RoomFields, claimed map[string]bool, tolerance float64) (vision.RoomFields, string, bool) {
	bestDiff := math.Inf(1)
	var best vision.RoomFields
	bestKey := ""
	for _, h := range hyps {
		key := normalizeName(h.Name)
		if claimed[key] || h.AreaSqFt <= 0 {
			continue
		}
		diff := math.Abs(rec.AreaSqFt-h.AreaSqFt) / h.AreaSqFt
		if diff < tolerance && diff < bestDiff {
			best, bestKey, bestDiff = h, key, diff
		}
	}
	return best, bestKey, bestKey != ""
}

func fromVision(h vision.RoomFields, conf float64) extract.RoomRecord {
	rec := extract.RoomRecord{
		Name:              h.Name,
		AreaSqFt:          h.AreaSqFt,
		WindowAreaSqFt:    h.WindowAreaSqFt,
		ExteriorWalls:     h.ExteriorWalls,
		Orientation:       h.Orientation,
		CeilingHeight:     h.CeilingHeight,
		OverUnconditioned: h.OverUnconditioned,
		Confidence:        conf,
		Source:            constants.SourceVision,
	}
	if rec.CeilingHeight <= 0 {
		rec.CeilingHeight = 8
	}
	if rec.Orientation == "" {
		rec.Orientation = "N"
	}
	return rec
}

// mergeEnvelope resolves each envelope field independently: higher stated
// confidence wins, ties inside the margin prefer the traditional source.
// Sources are never averaged.
func (v *Validator) mergeEnvelope(trad extract.BuildingEnvelope, vis *vision.ExtractionFields) extract.BuildingEnvelope {
	if vis.Envelope == nil {
		return trad
	}
	visionWins := vis.ModelConfidence > trad.Confidence+v.cfg.MergeTieMargin
	ve := vis.Envelope
	out := trad
	pick := func(tradVal, visVal float64) float64 {
		if visVal > 0 && (visionWins || tradVal <= 0) {
			return visVal
		}
		return tradVal
	}
	out.WallInsulationR = pick(trad.WallInsulationR, ve.WallInsulationR)
	out.CeilingR = pick(trad.CeilingR, ve.CeilingR)
	out.WindowUValue = pick(trad.WindowUValue, ve.WindowUValue)
	out.WindowSHGC = pick(trad.WindowSHGC, ve.WindowSHGC)
	out.AirTightnessACH50 = pick(trad.AirTightnessACH50, ve.AirTightnessACH50)
	if ve.FoundationType != "" && visionWins {
		out.FoundationType = ve.FoundationType
	}
	if visionWins {
		out.Confidence = vis.ModelConfidence
		out.Source = constants.SourceVision
	}
	return out
}

func (v *Validator) crossCheck(rooms []extract.RoomRecord, declaredTotal float64) error {
	if len(rooms) == 0 {
		return &common.DataQualityError{Check: "room_count", Expected: 1, Actual: 0}
	}
	var sum float64
	for _, r := range rooms {
		if r.AreaSqFt <= 0 {
			return &common.DataQualityError{Check: "room_area", Expected: 1, Actual: r.AreaSqFt}
		}
		if r.ExteriorWalls < 0 {
			return &common.DataQualityError{Check: "exterior_walls", Expected: 0, Actual: float64(r.ExteriorWalls)}
		}
		sum += r.AreaSqFt
	}

	if declaredTotal > 0 {
		if diff := math.Abs(sum-declaredTotal) / declaredTotal; diff > v.cfg.AreaTolerance {
			return &common.DataQualityError{Check: "area_sum", Expected: declaredTotal, Actual: sum}
		}
		avg := declaredTotal / float64(len(rooms))
		if avg < v.cfg.MinAvgRoomArea {
			return &common.DataQualityError{Check: "room_count", Expected: v.cfg.MinAvgRoomArea, Actual: avg}
		}
		if avg > v.cfg.MaxAvgRoomArea {
			return &common.DataQualityError{Check: "room_count", Expected: v.cfg.MaxAvgRoomArea, Actual: avg}
		}
	}
	return nil
}

// overallConfidence is the minimum of every per-field confidence contributing
// to the result. The pipeline is only as confident as its weakest fact.
func (v *Validator) overallConfidence(rooms []extract.RoomRecord, envelope extract.BuildingEnvelope, scaleConf float64) float64 {
	overall := 1.0
	for _, r := range rooms {
		overall = math.Min(overall, r.Confidence)
	}
	overall = math.Min(overall, envelope.Confidence)
	if scaleConf > 0 {
		overall = math.Min(overall, scaleConf)
	}
	return overall
}

func normalizeName(s string) string {
	return strings.ToUpper(strings.Join(strings.Fields(s), " "))
}
