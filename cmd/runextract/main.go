// runextract runs the extraction pipeline against one local PDF and prints
// the validated result and computed loads as JSON. No database required; the
// climate lookup falls back to a built-in default when CLIMATE_API_URL is
// unset.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/hvacdesign/planload/internal/audit"
	"github.com/hvacdesign/planload/internal/classify"
	"github.com/hvacdesign/planload/internal/common"
	"github.com/hvacdesign/planload/internal/ingest"
	"github.com/hvacdesign/planload/internal/loadcalc"
	"github.com/hvacdesign/planload/internal/match"
	"github.com/hvacdesign/planload/internal/pipeline"
	"github.com/hvacdesign/planload/internal/scale"
	"github.com/hvacdesign/planload/internal/textextract"
	"github.com/hvacdesign/planload/internal/validate"
	"github.com/hvacdesign/planload/internal/vision/openai"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	var (
		pdfPath = flag.String("pdf", "", "path to the blueprint PDF")
		zip     = flag.String("zip", "", "site ZIP code for design conditions")
		timeout = flag.Duration("timeout", 5*time.Minute, "overall run timeout")
	)
	flag.Parse()
	if *pdfPath == "" || *zip == "" {
		logger.Error("usage", "cmd", "runextract -pdf plan.pdf -zip 30301")
		os.Exit(2)
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	cfg := common.LoadConfig()

	var climate loadcalc.ClimateProvider
	if cfg.Climate.BaseURL != "" {
		climate = loadcalc.NewHTTPClimateProvider(cfg.Climate.BaseURL, cfg.Climate.Timeout, logger)
	} else {
		// mid-latitude default so the tool works offline
		climate = &loadcalc.StaticClimateProvider{
			Default: &loadcalc.ClimateData{
				Zone:                 "4A",
				WinterDesignTempF:    20,
				SummerDesignTempF:    92,
				SummerHumidityGrains: 35,
			},
		}
	}

	p := pipeline.New(
		pipeline.Config{
			VisionTimeout: cfg.Vision.Timeout,
			Audit:         audit.SlogSink{Logger: logger},
			Logger:        logger,
		},
		pipeline.Deps{
			Ingestor:   ingest.NewIngestor(ingest.Config{Logger: logger}),
			Classifier: classify.New(classify.Config{Logger: logger}),
			Detector:   scale.New(scale.Config{Logger: logger}),
			Texts: textextract.New(textextract.Config{
				Tesseract:   cfg.OCR.Tesseract,
				TessdataDir: cfg.OCR.TessdataDir,
				DPI:         cfg.OCR.DPI,
				Logger:      logger,
			}),
			Matcher:   match.New(match.Config{Logger: logger}),
			Validator: validate.New(validate.Config{Logger: logger}),
			Vision: openai.NewClient(openai.Config{
				APIKey:      cfg.Vision.APIKey,
				BaseURL:     cfg.Vision.BaseURL,
				Model:       cfg.Vision.Model,
				Temperature: cfg.Vision.Temperature,
				Timeout:     cfg.Vision.Timeout,
				LenientJSON: true,
			}, logger),
			Climate: climate,
			Render: func(ctx context.Context, pdfPath string, pageIndex int) (string, func(), error) {
				return ingest.RenderPage(ctx, ingest.ExecRunner{}, ingest.RenderConfig{
					Pdftoppm: cfg.OCR.Pdftoppm,
					DPI:      cfg.OCR.DPI,
				}, pdfPath, pageIndex)
			},
		},
	)

	start := time.Now()
	out, err := p.Process(ctx, uuid.NewString(), *pdfPath, *zip)
	if err != nil {
		logger.Error("extraction failed",
			"error", err,
			"suggested_action", common.SuggestedAction(err),
			"elapsed", time.Since(start))
		os.Exit(1)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(map[string]any{
		"extraction": out.Extraction,
		"loads":      out.Loads,
	})
	logger.Info("done", "elapsed", time.Since(start))
}
