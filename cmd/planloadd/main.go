package main

import (
	"context"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	v1 "github.com/hvacdesign/planload/gen/planload/v1"
	"github.com/hvacdesign/planload/internal/async"
	"github.com/hvacdesign/planload/internal/audit"
	"github.com/hvacdesign/planload/internal/classify"
	"github.com/hvacdesign/planload/internal/common"
	"github.com/hvacdesign/planload/internal/export"
	"github.com/hvacdesign/planload/internal/ingest"
	"github.com/hvacdesign/planload/internal/intake"
	"github.com/hvacdesign/planload/internal/jobrunner"
	"github.com/hvacdesign/planload/internal/loadcalc"
	"github.com/hvacdesign/planload/internal/match"
	"github.com/hvacdesign/planload/internal/pipeline"
	"github.com/hvacdesign/planload/internal/repository"
	"github.com/hvacdesign/planload/internal/scale"
	"github.com/hvacdesign/planload/internal/server"
	"github.com/hvacdesign/planload/internal/textextract"
	"github.com/hvacdesign/planload/internal/validate"
	"github.com/hvacdesign/planload/internal/vision/openai"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	entc, pool, err := repository.Open(ctx, repository.Config{
		DSN:             cfg.Database.DSN,
		MaxConns:        cfg.Database.MaxConns,
		MinConns:        cfg.Database.MinConns,
		MaxConnLifetime: cfg.Database.MaxConnLifetime,
		MaxConnIdleTime: cfg.Database.MaxConnIdleTime,
		DialTimeout:     cfg.Database.DialTimeout,
	}, logger)
	if err != nil {
		logger.Error("opening database", "error", err)
		os.Exit(1)
	}
	defer repository.Close(entc, pool, logger)

	if err := repository.HealthCheck(ctx, pool, cfg.Database.DialTimeout, logger); err != nil {
		logger.Error("database health check failed", "error", err)
		os.Exit(1)
	}

	// audit trail: always to the log, optionally also to SQLite
	var sink audit.Sink = audit.SlogSink{Logger: logger}
	if cfg.Audit.SQLitePath != "" {
		store, err := audit.OpenSQLiteStore(cfg.Audit.SQLitePath)
		if err != nil {
			logger.Error("opening audit store", "path", cfg.Audit.SQLitePath, "error", err)
			os.Exit(1)
		}
		defer store.Close()
		sink = audit.MultiSink{audit.SlogSink{Logger: logger}, store}
	}

	processor := pipeline.New(
		pipeline.Config{
			VisionTimeout: cfg.Vision.Timeout,
			Audit:         sink,
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
			Climate: loadcalc.NewHTTPClimateProvider(cfg.Climate.BaseURL, cfg.Climate.Timeout, logger),
			Render: func(ctx context.Context, pdfPath string, pageIndex int) (string, func(), error) {
				return ingest.RenderPage(ctx, ingest.ExecRunner{}, ingest.RenderConfig{
					Pdftoppm: cfg.OCR.Pdftoppm,
					DPI:      cfg.OCR.DPI,
				}, pdfPath, pageIndex)
			},
		},
	)

	jobs := repository.NewExtractionJobRepository(entc, logger)
	blueprints := repository.NewBlueprintRepository(entc, logger)

	runner := jobrunner.New(processor, jobs, logger)
	queue := async.NewProcessorQueue(runner, logger, async.WithWorkers(cfg.Server.Workers))
	defer queue.Shutdown(context.Background())

	intakeSvc := intake.NewService(blueprints, jobs, queue, logger)

	// drop-directory intake, when configured
	if len(cfg.Intake.Roots) > 0 {
		paths, watchErrs, err := ingest.StartWatcher(ctx, ingest.WatchConfig{
			Roots:       cfg.Intake.Roots,
			InitialScan: cfg.Intake.InitialScan,
			Debounce:    cfg.Intake.Debounce,
		})
		if err != nil {
			logger.Error("starting intake watcher", "error", err)
			os.Exit(1)
		}
		zip := os.Getenv("INTAKE_DEFAULT_ZIP")
		go func() {
			for path := range paths {
				if _, err := intakeSvc.Submit(ctx, path, zip); err != nil {
					logger.Warn("drop intake rejected", "path", path, "error", err)
				}
			}
		}()
		go func() {
			for err := range watchErrs {
				logger.Warn("intake watcher error", "error", err)
			}
		}()
	}

	grpcServer := grpc.NewServer()
	hs := health.NewServer()
	healthpb.RegisterHealthServer(grpcServer, hs)
	hs.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	reflection.Register(grpcServer)

	svc := server.NewPlanLoadServer(intakeSvc, jobs, export.NewService(logger), logger)
	v1.RegisterPlanLoadServiceServer(grpcServer, svc)

	lis, err := net.Listen("tcp", cfg.Server.GRPCAddr)
	if err != nil {
		logger.Error("listen failed", "addr", cfg.Server.GRPCAddr, "error", err)
		os.Exit(1)
	}
	logger.Info("gRPC serving", "addr", cfg.Server.GRPCAddr)

	go func() {
		if err := grpcServer.Serve(lis); err != nil {
			logger.Error("grpc serve failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")
	grpcServer.GracefulStop()
	logger.Info("stopped")
}
