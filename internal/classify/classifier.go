// Package classify scores blueprint pages by their likelihood of being a
// floor-plan page, using cheap structural features only. Classification never
// fails: absence of signal yields a title/index page at confidence zero,
// which downstream stages treat as "skip".
package classify

import (
	"log/slog"
	"sort"
	"strings"

	"github.com/hvacdesign/planload/constants"
	"github.com/hvacdesign/planload/internal/extract"
	"github.com/hvacdesign/planload/internal/ingest"
)

// Config tunes the drawing-density fallback.
type Config struct {
	// MinPlanPrimitives is the primitive count above which a keyword-less
	// page can still score as a floor plan.
	MinPlanPrimitives int
	Logger            *slog.Logger
}

func (c *Config) defaults() {
	if c.MinPlanPrimitives <= 0 {
		c.MinPlanPrimitives = 150
	}
	if c.Logger == nil {
		c.Logger = slog.Default()
	}
}

type Classifier struct {
	cfg Config
}

func New(cfg Config) *Classifier {
	cfg.defaults()
	return &Classifier{cfg: cfg}
}

// Classify produces one PageClassification per page. Keyword matches dominate;
// drawing-density heuristics apply only when no keyword is found.
func (c *Classifier) Classify(bp *extract.Blueprint, pages []ingest.PageContent) []extract.PageClassification {
	out := make([]extract.PageClassification, 0, len(pages))
	for _, pg := range pages {
		cls := c.classifyPage(pg)
		c.cfg.Logger.Debug("page classified",
			"blueprint_id", bp.ID,
			"page", pg.Index,
			"type", cls.PageType,
			"confidence", cls.Confidence,
		)
		out = append(out, cls)
	}
	return out
}

func (c *Classifier) classifyPage(pg ingest.PageContent) extract.PageClassification {
	var sb strings.Builder
	for _, t := range pg.Texts {
		sb.WriteString(t.Text)
		sb.WriteByte('\n')
	}
	text := strings.ToUpper(sb.String())

	cls := extract.PageClassification{PageIndex: pg.Index}

	switch {
	case strings.Contains(text, "FLOOR PLAN"):
		cls.PageType = constants.PageFloorPlan
		cls.Confidence = 0.9
		if strings.Contains(text, "SCALE") {
			cls.Confidence = 0.95
		}
	case strings.Contains(text, "ELEVATION"):
		cls.PageType = constants.PageElevation
		cls.Confidence = 0.85
	case strings.Contains(text, "DETAIL") || strings.Contains(text, "SECTION"):
		cls.PageType = constants.PageDetail
		cls.Confidence = 0.8
	case strings.Contains(text, "SHEET INDEX") || strings.Contains(text, "INDEX OF DRAWINGS") ||
		strings.Contains(text, "COVER SHEET") || strings.Contains(text, "TITLE SHEET"):
		cls.PageType = constants.PageTitleIndex
		cls.Confidence = 0.8
	default:
		// no keyword: fall back to drawing density
		prims := len(pg.Lines) + len(pg.Rects)
		switch {
		case prims >= c.cfg.MinPlanPrimitives && len(pg.Texts) >= 5:
			cls.PageType = constants.PageFloorPlan
			cls.Confidence = 0.5
		case prims >= c.cfg.MinPlanPrimitives:
			cls.PageType = constants.PageDetail
			cls.Confidence = 0.4
		default:
			cls.PageType = constants.PageTitleIndex
			cls.Confidence = 0
		}
	}
	return cls
}

// RankFloorPlans returns page indices ordered by descending floor-plan
// likelihood times confidence; ties break toward the lower page index.
// Non-floor-plan pages are excluded.
func RankFloorPlans(classifications []extract.PageClassification) []int {
	type scored struct {
		index int
		score float64
	}
	var candidates []scored
	for _, cls := range classifications {
		if cls.PageType != constants.PageFloorPlan {
			continue
		}
		candidates = append(candidates, scored{index: cls.PageIndex, score: cls.Confidence})
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].score != candidates[j].score {
			return candidates[i].score > candidates[j].score
		}
		return candidates[i].index < candidates[j].index
	})
	out := make([]int, 0, len(candidates))
	for _, c := range candidates {
		out = append(out, c.index)
	}
	return out
}
