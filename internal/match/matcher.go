// Package match associates text tokens with room polygons to produce named,
// cross-checked room records.
package match

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/hvacdesign/planload/constants"
	"github.com/hvacdesign/planload/internal/extract"
	"github.com/hvacdesign/planload/internal/geometry"
	"github.com/hvacdesign/planload/internal/textextract"
)

type Config struct {
	// MarginFeet extends each polygon's catchment so labels drawn just
	// outside a small room still associate with it.
	MarginFeet float64
	// TieFeet is the centroid-distance band inside which two label
	// candidates count as tied.
	TieFeet float64
	// AreaTolerance is the relative disagreement between a polygon's
	// derived area and a nearby dimension annotation above which the room
	// is flagged low confidence. Default 0.20.
	AreaTolerance float64
	CeilingHeight float64 // assumed when no annotation says otherwise
	Logger        *slog.Logger
}

func (c *Config) defaults() {
	if c.MarginFeet <= 0 {
		c.MarginFeet = 2
	}
	if c.TieFeet <= 0 {
		c.TieFeet = 1.5
	}
	if c.AreaTolerance <= 0 {
		c.AreaTolerance = 0.20
	}
	if c.CeilingHeight <= 0 {
		c.CeilingHeight = 8
	}
	if c.Logger == nil {
		c.Logger = slog.Default()
	}
}

type Matcher struct {
	cfg Config
}

func New(cfg Config) *Matcher {
	cfg.defaults()
	return &Matcher{cfg: cfg}
}

type Result struct {
	Rooms    []extract.RoomRecord
	Warnings []string
}

// Match fuses room polygons (real-world feet) with page-space text tokens.
// feetPerPoint converts token boxes into the polygons' coordinate space.
// The closest room-label-shaped token inside or near each polygon names it;
// the closest dimension-pair token cross-checks its derived area. A room
// whose derived area disagrees with its annotation beyond the tolerance is
// flagged low confidence, never silently corrected.
func (m *Matcher) Match(rooms []geometry.RoomPolygon, tokens []extract.TextToken, feetPerPoint float64) Result {
	var res Result
	floorCentroid := overallCentroid(rooms)

	used := make(map[int]bool) // token index -> already assigned as a name
	for i, room := range rooms {
		centroid := room.Centroid()
		area := room.Area()

		rec := extract.RoomRecord{
			AreaSqFt:      area,
			ExteriorWalls: room.ExteriorWallCount,
			Orientation:   orientation(centroid, floorCentroid),
			CeilingHeight: m.cfg.CeilingHeight,
			Source:        constants.SourceTraditional,
			Confidence:    0.5,
		}

		if idx, ok := m.closestLabel(room, centroid, tokens, used, feetPerPoint); ok {
			used[idx] = true
			rec.Name = tokens[idx].Text
			rec.Confidence = 0.7
			if tokens[idx].Source == constants.TokenSourceOCR {
				rec.Confidence = 0.5 + 0.2*tokens[idx].OCRConfidence
			}
		} else {
			rec.Name = fmt.Sprintf("ROOM %d", i+1)
			res.Warnings = append(res.Warnings, fmt.Sprintf("%s: no label found, name synthesized", rec.Name))
		}

		if declared, ok := m.closestAnnotatedArea(room, centroid, tokens, feetPerPoint); ok {
			diff := math.Abs(area-declared) / declared
			if diff > m.cfg.AreaTolerance {
				rec.LowConfidence = true
				rec.Confidence = math.Min(rec.Confidence, 0.4)
				res.Warnings = append(res.Warnings, fmt.Sprintf(
					"%s: derived area %.0f sq ft disagrees with annotation %.0f sq ft by %.0f%%",
					rec.Name, area, declared, diff*100))
				m.cfg.Logger.Warn("room area cross-check failed",
					"room", rec.Name, "derived", area, "declared", declared)
			} else {
				rec.Confidence = math.Min(rec.Confidence+0.15, 0.95)
			}
		}

		res.Rooms = append(res.Rooms, rec)
	}
	return res
}

// closestLabel picks the nearest room-label-shaped token whose centroid lies
// inside the polygon or within the margin. Candidates tied on distance prefer
// native tokens over OCR, then higher OCR confidence.
func (m *Matcher) closestLabel(room geometry.RoomPolygon, centroid geometry.Point, tokens []extract.TextToken, used map[int]bool, fpp float64) (int, bool) {
	bestIdx := -1
	bestDist := math.Inf(1)
	catchment := room.BoundingBox().Expanded(m.cfg.MarginFeet)

	for i, tok := range tokens {
		if used[i] || !textextract.LooksLikeRoomLabel(tok.Text) {
			continue
		}
		p := scalePoint(tok.Box.Center(), fpp)
		if !room.ContainsPoint(p) && !catchment.Contains(p) {
			continue
		}
		d := geometry.Dist(p, centroid)
		switch {
		case d < bestDist-m.cfg.TieFeet:
			bestIdx, bestDist = i, d
		case math.Abs(d-bestDist) <= m.cfg.TieFeet && bestIdx >= 0:
			if preferToken(tok, tokens[bestIdx]) {
				bestIdx, bestDist = i, d
			}
		}
	}
	return bestIdx, bestIdx >= 0
}

func (m *Matcher) closestAnnotatedArea(room geometry.RoomPolygon, centroid geometry.Point, tokens []extract.TextToken, fpp float64) (float64, bool) {
	best := 0.0
	bestDist := math.Inf(1)
	catchment := room.BoundingBox().Expanded(m.cfg.MarginFeet)
	for _, tok := range tokens {
		if !tok.IsArea {
			continue
		}
		p := scalePoint(tok.Box.Center(), fpp)
		if !room.ContainsPoint(p) && !catchment.Contains(p) {
			continue
		}
		if d := geometry.Dist(p, centroid); d < bestDist {
			best, bestDist = tok.AreaSqFt, d
		}
	}
	return best, bestDist < math.Inf(1)
}

// preferToken reports whether a beats b when the two are tied on distance.
func preferToken(a, b extract.TextToken) bool {
	if a.Source != b.Source {
		return a.Source == constants.TokenSourceNative
	}
	return a.OCRConfidence > b.OCRConfidence
}

func scalePoint(p geometry.Point, fpp float64) geometry.Point {
	return geometry.Point{X: p.X * fpp, Y: p.Y * fpp}
}

// orientation maps a room's offset from the floor centroid to the compass
// direction of its dominant exposure, with plan north up the page.
func orientation(room, floor geometry.Point) string {
	dx, dy := room.X-floor.X, room.Y-floor.Y
	if dx == 0 && dy == 0 {
		return "N"
	}
	if math.Abs(dx) > math.Abs(dy) {
		if dx > 0 {
			return "E"
		}
		return "W"
	}
	if dy > 0 {
		return "N"
	}
	return "S"
}

func overallCentroid(rooms []geometry.RoomPolygon) geometry.Point {
	if len(rooms) == 0 {
		return geometry.Point{}
	}
	var sum geometry.Point
	for _, r := range rooms {
		c := r.Centroid()
		sum.X += c.X
		sum.Y += c.Y
	}
	return geometry.Point{X: sum.X / float64(len(rooms)), Y: sum.Y / float64(len(rooms))}
}
