package scale

import (
	"log/slog"
	"sort"
	"strings"

	"github.com/hvacdesign/planload/constants"
	"github.com/hvacdesign/planload/internal/common"
	"github.com/hvacdesign/planload/internal/extract"
	"github.com/hvacdesign/planload/internal/geometry"
)

// Config bounds scale detection.
type Config struct {
	MinConfidence float64 // acceptance gate, default 0.6
	// Candidates are feet-per-point ratios tried by the dimension
	// cross-check; defaults to StandardScales().
	Candidates []float64
	// Plausible residential room-area band for the cross-check, sq ft.
	PlausibleMinArea float64
	PlausibleMaxArea float64
	SampleLimit      int // max provisional rooms sampled
	// Override maps page index to a known feet-per-point ratio; it takes
	// precedence over both detection strategies (known document families).
	Override map[int]float64
	Logger   *slog.Logger
}

func (c *Config) defaults() {
	if c.MinConfidence <= 0 {
		c.MinConfidence = 0.6
	}
	if len(c.Candidates) == 0 {
		c.Candidates = StandardScales()
	}
	if c.PlausibleMinArea <= 0 {
		c.PlausibleMinArea = 20
	}
	if c.PlausibleMaxArea <= 0 {
		c.PlausibleMaxArea = 500
	}
	if c.SampleLimit <= 0 {
		c.SampleLimit = 12
	}
	if c.Logger == nil {
		c.Logger = slog.Default()
	}
}

type Detector struct {
	cfg Config
}

func New(cfg Config) *Detector {
	cfg.defaults()
	return &Detector{cfg: cfg}
}

// Detect selects the authoritative scale for a page. Strategy order: operator
// override, explicit notation, dimension cross-check. A hypothesis below the
// acceptance confidence is never returned silently; the run halts with
// *common.ScaleDetectionError instead.
func (d *Detector) Detect(pageIndex int, pageHeightPt float64, tokens []extract.TextToken, walls []geometry.WallSegment) (extract.ScaleHypothesis, error) {
	if fpp, ok := d.cfg.Override[pageIndex]; ok && fpp > 0 {
		h := extract.ScaleHypothesis{
			PageIndex:     pageIndex,
			UnitsPerPixel: fpp,
			Source:        constants.ScaleSourceOverride,
			Confidence:    1.0,
		}
		d.cfg.Logger.Info("scale override applied", "page", pageIndex, "feet_per_point", fpp)
		return h, nil
	}

	best := extract.ScaleHypothesis{PageIndex: pageIndex}

	if h, ok := d.fromNotation(pageIndex, pageHeightPt, tokens); ok {
		if h.Confidence >= d.cfg.MinConfidence {
			d.cfg.Logger.Info("scale detected from notation",
				"page", pageIndex,
				"notation", h.Notation,
				"feet_per_point", h.UnitsPerPixel,
				"confidence", h.Confidence,
			)
			return h, nil
		}
		best = h
	}

	if h, ok := d.fromCrossCheck(pageIndex, walls); ok {
		if h.Confidence >= d.cfg.MinConfidence {
			d.cfg.Logger.Info("scale detected from dimension cross-check",
				"page", pageIndex,
				"feet_per_point", h.UnitsPerPixel,
				"confidence", h.Confidence,
			)
			return h, nil
		}
		if h.Confidence > best.Confidence {
			best = h
		}
	}

	d.cfg.Logger.Error("scale detection failed",
		"page", pageIndex,
		"best_confidence", best.Confidence,
		"min_confidence", d.cfg.MinConfidence,
	)
	return extract.ScaleHypothesis{}, &common.ScaleDetectionError{
		PageIndex:      pageIndex,
		BestConfidence: best.Confidence,
		MinConfidence:  d.cfg.MinConfidence,
	}
}

// fromNotation searches tokens for an explicit scale notation. Tokens inside
// the usual notation regions (title block at the page bottom, or any token
// mentioning SCALE) are preferred over stray matches.
func (d *Detector) fromNotation(pageIndex int, pageHeightPt float64, tokens []extract.TextToken) (extract.ScaleHypothesis, bool) {
	type cand struct {
		h        extract.ScaleHypothesis
		inRegion bool
	}
	var cands []cand
	for _, tok := range tokens {
		fpp, ok := ParseNotation(tok.Text)
		if !ok {
			continue
		}
		conf := 0.9
		if tok.Source == constants.TokenSourceOCR {
			conf = 0.5 + 0.4*tok.OCRConfidence
		}
		inRegion := containsScaleWord(tok.Text)
		if pageHeightPt > 0 && tok.Box.Center().Y < 0.2*pageHeightPt {
			inRegion = true // title block region
		}
		cands = append(cands, cand{
			h: extract.ScaleHypothesis{
				PageIndex:     pageIndex,
				UnitsPerPixel: fpp,
				Source:        constants.ScaleSourceNotation,
				Notation:      tok.Text,
				Confidence:    conf,
			},
			inRegion: inRegion,
		})
	}
	if len(cands) == 0 {
		return extract.ScaleHypothesis{}, false
	}
	sort.SliceStable(cands, func(i, j int) bool {
		if cands[i].inRegion != cands[j].inRegion {
			return cands[i].inRegion
		}
		return cands[i].h.Confidence > cands[j].h.Confidence
	})
	return cands[0].h, true
}

// fromCrossCheck assembles provisional rooms at raw page coordinates and
// tests each candidate scale, selecting the one whose median room area lands
// in the plausible residential band for the largest fraction of samples.
func (d *Detector) fromCrossCheck(pageIndex int, walls []geometry.WallSegment) (extract.ScaleHypothesis, bool) {
	rooms := geometry.AssembleRooms(walls, geometry.AssembleConfig{
		SnapTolerance: 2, // raw points, not feet
		MinRoomArea:   1,
	})
	if len(rooms) == 0 {
		return extract.ScaleHypothesis{}, false
	}
	if len(rooms) > d.cfg.SampleLimit {
		rooms = rooms[:d.cfg.SampleLimit]
	}

	rawAreas := make([]float64, 0, len(rooms))
	for _, r := range rooms {
		rawAreas = append(rawAreas, r.Area())
	}

	bestFraction := 0.0
	bestScale := 0.0
	for _, fpp := range d.cfg.Candidates {
		inBand := 0
		areas := make([]float64, len(rawAreas))
		for i, a := range rawAreas {
			areas[i] = a * fpp * fpp
			if areas[i] >= d.cfg.PlausibleMinArea && areas[i] <= d.cfg.PlausibleMaxArea {
				inBand++
			}
		}
		med := median(areas)
		if med < d.cfg.PlausibleMinArea || med > d.cfg.PlausibleMaxArea {
			continue
		}
		fraction := float64(inBand) / float64(len(areas))
		if fraction > bestFraction {
			bestFraction = fraction
			bestScale = fpp
		}
	}
	if bestScale == 0 {
		return extract.ScaleHypothesis{}, false
	}
	return extract.ScaleHypothesis{
		PageIndex:     pageIndex,
		UnitsPerPixel: bestScale,
		Source:        constants.ScaleSourceCrossCheck,
		Confidence:    0.85 * bestFraction,
	}, true
}

func containsScaleWord(s string) bool {
	return strings.Contains(strings.ToUpper(s), "SCALE")
}

func median(vals []float64) float64 {
	if len(vals) == 0 {
		return 0
	}
	s := append([]float64(nil), vals...)
	sort.Float64s(s)
	mid := len(s) / 2
	if len(s)%2 == 1 {
		return s[mid]
	}
	return (s[mid-1] + s[mid]) / 2
}
