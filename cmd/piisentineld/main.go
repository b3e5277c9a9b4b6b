package main

import (
	"context"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	"github.com/affu-79/PII-SENTINEL-BACKEND-sub002/constants"
	v1 "github.com/affu-79/PII-SENTINEL-BACKEND-sub002/gen/proto/pii/v1"
	"github.com/affu-79/PII-SENTINEL-BACKEND-sub002/internal/common"
	"github.com/affu-79/PII-SENTINEL-BACKEND-sub002/internal/detect"
	"github.com/affu-79/PII-SENTINEL-BACKEND-sub002/internal/export"
	"github.com/affu-79/PII-SENTINEL-BACKEND-sub002/internal/extract"
	"github.com/affu-79/PII-SENTINEL-BACKEND-sub002/internal/mask"
	"github.com/affu-79/PII-SENTINEL-BACKEND-sub002/internal/ocr"
	"github.com/affu-79/PII-SENTINEL-BACKEND-sub002/internal/pipeline"
	repo "github.com/affu-79/PII-SENTINEL-BACKEND-sub002/internal/repository"
	"github.com/affu-79/PII-SENTINEL-BACKEND-sub002/internal/scheduler"
	svc "github.com/affu-79/PII-SENTINEL-BACKEND-sub002/internal/server"
	"github.com/affu-79/PII-SENTINEL-BACKEND-sub002/internal/storage"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}
	if cfg.Database.DSN == "" {
		logger.Error("missing DB_URL environment variable")
		os.Exit(1)
	}
	addr := cfg.Server.GRPCAddr
	if !strings.HasPrefix(addr, ":") && !strings.Contains(addr, ":") {
		addr = ":" + addr
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	entc, pool, err := repo.Open(ctx, cfg.Database, logger)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer repo.Close(entc, pool, logger)

	if err := repo.HealthCheck(ctx, pool, 5*time.Second, logger); err != nil {
		logger.Error("failed to ping database", "error", err)
		os.Exit(1)
	}

	batchRepo := repo.NewBatchRepository(entc, logger)
	docsRepo := repo.NewDocumentRepository(entc, logger)
	jobsRepo := repo.NewProcessJobRepository(entc, logger)
	maskRepo := repo.NewMaskRecordRepository(entc, logger)

	store, err := openStore(ctx, cfg.Storage, logger)
	if err != nil {
		logger.Error("failed to open object store", "backend", cfg.Storage.Backend, "error", err)
		os.Exit(1)
	}

	engine := buildEngine(cfg.OCR, logger)

	extractor := extract.NewExtractor(extract.Config{
		Pdftotext: cfg.OCR.Pdftotext,
		Pdftoppm:  cfg.OCR.Pdftoppm,
		DPI:       cfg.OCR.DPI,
		MaxPages:  cfg.OCR.MaxPages,
	}, engine, logger)

	scanOpts := []detect.ScannerOption{}
	if cfg.Detect.NERBaseURL != "" {
		scanOpts = append(scanOpts, detect.WithRecognizer(
			detect.NewHTTPRecognizer(cfg.Detect.NERBaseURL, cfg.Detect.NERTimeout, logger)))
	}
	if path := os.Getenv("CUSTOM_CATEGORIES_FILE"); path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			logger.Error("failed to read custom categories file", "path", path, "error", err)
			os.Exit(1)
		}
		custom, err := detect.ParseCustomCategories(raw)
		if err != nil {
			logger.Error("invalid custom categories file", "path", path, "error", err)
			os.Exit(1)
		}
		logger.Info("custom categories loaded", "path", path, "count", len(custom))
		scanOpts = append(scanOpts, detect.WithDetectors(custom...))
	}
	scanner := detect.NewScanner(logger, scanOpts...)

	masker := mask.NewMasker(logger)
	processor := pipeline.NewProcessor(extractor, scanner, masker, logger)

	sched := scheduler.NewScheduler(processor, logger,
		scheduler.WithWorkers(cfg.Pipeline.Workers),
		scheduler.WithQueueDepth(cfg.Pipeline.QueueDepth),
		scheduler.WithDocTimeout(cfg.Pipeline.DocTimeout),
		scheduler.WithMaxRetries(cfg.Pipeline.MaxRetries),
		scheduler.WithCompletionHook(persistResults(jobsRepo, docsRepo, maskRepo, batchRepo, logger)),
	)

	lis, err := net.Listen("tcp", addr)
	if err != nil {
		logger.Error("failed to listen on address", "addr", addr, "error", err)
		os.Exit(1)
	}
	grpcServer := grpc.NewServer(
		grpc.UnaryInterceptor(svc.APIKeyUnaryInterceptor(cfg.Server.APIKey, logger)),
	)

	exporter := export.NewService(docsRepo, logger)
	v1.RegisterBatchServiceServer(grpcServer, svc.NewBatchService(batchRepo, sched, exporter, logger))
	v1.RegisterJobsServiceServer(grpcServer, svc.NewJobsService(sched, batchRepo, docsRepo, jobsRepo, store, logger))
	v1.RegisterMaskServiceServer(grpcServer, svc.NewMaskService(maskRepo, masker, logger))

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	reflection.Register(grpcServer)

	logger.Info("piisentineld listening", "addr", addr, "workers", cfg.Pipeline.Workers)
	go func() {
		if err := grpcServer.Serve(lis); err != nil {
			slog.Error("gRPC serve error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	sched.Shutdown(shutdownCtx)
	grpcServer.GracefulStop()
}

func openStore(ctx context.Context, cfg common.StorageConfig, logger *slog.Logger) (storage.ObjectStore, error) {
	if cfg.Backend == "s3" {
		return storage.NewS3Store(ctx, cfg, logger)
	}
	return storage.NewFSStore(cfg.Dir, logger)
}

// buildEngine assembles the OCR stack: a gosseract primary behind a
// concurrency gate, with an optional CLI secondary for failover.
func buildEngine(cfg common.OCRConfig, logger *slog.Logger) ocr.Engine {
	primary := ocr.NewTesseractEngine(
		ocr.WithLanguages(cfg.Languages...),
		ocr.WithDPI(cfg.DPI),
		ocr.WithTessdataDir(cfg.TessdataDir),
	)
	var engine ocr.Engine = primary
	if cfg.FallbackCmd != "" {
		lang := "eng"
		if len(cfg.Languages) > 0 {
			lang = cfg.Languages[0]
		}
		secondary := ocr.NewCommandEngine(cfg.FallbackCmd, lang, cfg.TessdataDir, ocr.ExecRunner{Logger: logger})
		engine = ocr.NewFailoverEngine(primary, secondary, logger)
	}
	return ocr.NewGate(engine, cfg.Slots)
}

// persistResults mirrors the in-memory job outcome into the database once a
// job reaches a terminal state.
func persistResults(jobsRepo repo.ProcessJobRepository, docsRepo repo.DocumentRepository,
	maskRepo repo.MaskRecordRepository, batchRepo repo.BatchRepository, logger *slog.Logger) func(scheduler.JobResult) {
	return func(res scheduler.JobResult) {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		succeeded, failed := 0, 0
		for _, d := range res.Documents {
			switch d.Status {
			case constants.DocDone:
				succeeded++
				if err := docsRepo.FinishSuccess(ctx, d.DocumentID, d.Retries); err != nil {
					logger.Error("document finish persist failed, mask record skipped",
						"doc_id", d.DocumentID, "error", err)
					continue
				}
				if d.MaskRecord != nil {
					if _, err := maskRepo.Save(ctx, d.DocumentID, d.MaskRecord); err != nil {
						logger.Error("mask record persist failed", "doc_id", d.DocumentID, "error", err)
					}
				}
			case constants.DocFailed:
				failed++
				code, msg := "", ""
				if d.Failure != nil {
					code, msg = d.Failure.Code, d.Failure.Message
				}
				if err := docsRepo.FinishFailure(ctx, d.DocumentID, d.Retries, code, msg); err != nil {
					logger.Error("document failure persist failed", "doc_id", d.DocumentID, "error", err)
				}
			case constants.DocCancelled:
				if err := docsRepo.SetStatus(ctx, d.DocumentID, constants.DocCancelled); err != nil {
					logger.Error("document cancel persist failed", "doc_id", d.DocumentID, "error", err)
				}
			}
		}

		if err := jobsRepo.Finish(ctx, res.JobID, res.Status, res); err != nil {
			logger.Error("process_job finish failed", "job_id", res.JobID, "error", err)
		}
		if err := batchRepo.RefreshCounters(ctx, res.BatchID, len(res.Documents), succeeded, failed, 0); err != nil {
			logger.Error("batch counter refresh failed", "batch_id", res.BatchID, "error", err)
		}
		logger.Info("job persisted", "job_id", res.JobID, "status", res.Status, "succeeded", succeeded, "failed", failed)
	}
}
