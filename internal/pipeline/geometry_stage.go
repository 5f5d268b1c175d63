package pipeline

import (
	"log/slog"
	"sort"

	"github.com/hvacdesign/planload/internal/common"
	"github.com/hvacdesign/planload/internal/extract"
	"github.com/hvacdesign/planload/internal/geometry"
	"github.com/hvacdesign/planload/internal/ingest"
)

// GeometryConfig bounds the geometry extraction stage.
type GeometryConfig struct {
	// ComplexityThreshold is the primitive count above which the stage
	// samples instead of processing exhaustively. Default 4000.
	ComplexityThreshold int
	// SampleSize is the number of longest walls kept in the sampled tier.
	SampleSize int
	Logger     *slog.Logger
}

func (c *GeometryConfig) defaults() {
	if c.ComplexityThreshold <= 0 {
		c.ComplexityThreshold = 4000
	}
	if c.SampleSize <= 0 {
		c.SampleSize = 2000
	}
	if c.Logger == nil {
		c.Logger = slog.Default()
	}
}

// rawWalls lifts the page's line primitives into wall segments in raw page
// points. Rectangles contribute their four edges; some CAD exports draw
// walls as thin stroked rects.
func rawWalls(pg ingest.PageContent) []geometry.WallSegment {
	walls := make([]geometry.WallSegment, 0, len(pg.Lines)+4*len(pg.Rects))
	for _, ln := range pg.Lines {
		walls = append(walls, geometry.WallSegment{
			Start:     ln.From,
			End:       ln.To,
			Thickness: ln.Width,
		})
	}
	for _, r := range pg.Rects {
		corners := [4]geometry.Point{
			{X: r.X, Y: r.Y},
			{X: r.X + r.W, Y: r.Y},
			{X: r.X + r.W, Y: r.Y + r.H},
			{X: r.X, Y: r.Y + r.H},
		}
		for i := 0; i < 4; i++ {
			walls = append(walls, geometry.WallSegment{
				Start: corners[i],
				End:   corners[(i+1)%4],
			})
		}
	}
	return walls
}

// extractGeometry converts page primitives to real-world feet at the accepted
// scale and assembles closed rooms. Above the complexity threshold only the
// longest walls are kept; within the simple tier, zero rooms is a hard
// failure, not a low-confidence signal.
func extractGeometry(cfg GeometryConfig, pg ingest.PageContent, feetPerPoint float64) (extract.PageGeometry, error) {
	cfg.defaults()

	raw := rawWalls(pg)
	primitiveCount := len(pg.Lines) + len(pg.Rects)
	sampled := false
	if primitiveCount > cfg.ComplexityThreshold {
		sampled = true
		sort.Slice(raw, func(i, j int) bool { return raw[i].Length() > raw[j].Length() })
		if len(raw) > cfg.SampleSize {
			raw = raw[:cfg.SampleSize]
		}
		cfg.Logger.Info("geometry sampling engaged",
			"page", pg.Index,
			"primitives", primitiveCount,
			"kept_walls", len(raw),
		)
	}

	walls := make([]geometry.WallSegment, len(raw))
	for i, w := range raw {
		walls[i] = geometry.WallSegment{
			Start:     geometry.Point{X: w.Start.X * feetPerPoint, Y: w.Start.Y * feetPerPoint},
			End:       geometry.Point{X: w.End.X * feetPerPoint, Y: w.End.Y * feetPerPoint},
			Thickness: w.Thickness * feetPerPoint,
		}
	}

	rooms := geometry.AssembleRooms(walls, geometry.AssembleConfig{})
	if len(rooms) == 0 && !sampled {
		return extract.PageGeometry{}, &common.GeometryExtractionError{
			PageIndex:      pg.Index,
			PrimitiveCount: primitiveCount,
		}
	}

	cfg.Logger.Info("geometry extracted",
		"page", pg.Index,
		"walls", len(walls),
		"rooms", len(rooms),
		"sampled", sampled,
	)
	return extract.PageGeometry{
		PageIndex: pg.Index,
		Walls:     walls,
		Rooms:     rooms,
		Sampled:   sampled,
	}, nil
}
