package main

import (
	"context"
	"crypto/sha256"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/affu-79/PII-SENTINEL-BACKEND-sub002/constants"
	"github.com/affu-79/PII-SENTINEL-BACKEND-sub002/internal/common"
	"github.com/affu-79/PII-SENTINEL-BACKEND-sub002/internal/detect"
	"github.com/affu-79/PII-SENTINEL-BACKEND-sub002/internal/export"
	"github.com/affu-79/PII-SENTINEL-BACKEND-sub002/internal/extract"
	"github.com/affu-79/PII-SENTINEL-BACKEND-sub002/internal/mask"
	"github.com/affu-79/PII-SENTINEL-BACKEND-sub002/internal/ocr"
	"github.com/affu-79/PII-SENTINEL-BACKEND-sub002/internal/pipeline"
	repo "github.com/affu-79/PII-SENTINEL-BACKEND-sub002/internal/repository"
	"github.com/affu-79/PII-SENTINEL-BACKEND-sub002/internal/scheduler"
)

// printError prints an error message to stderr, falling back to stdout if stderr fails
func printError(format string, args ...interface{}) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		fmt.Printf(format, args...)
	}
}

func main() {
	var (
		dir      = flag.String("dir", "", "directory to scan for documents (required)")
		out      = flag.String("out", "", "output XLSX report path (optional, defaults to parent directory)")
		maskedTo = flag.String("masked-dir", "", "directory to write masked text into (optional)")
		mode     = flag.String("mode", "", "mask mode: IRREVERSIBLE_BLUR or REVERSIBLE_TOKEN (optional, report-only when empty)")
		password = flag.String("password", "", "password for REVERSIBLE_TOKEN masking")
		workers  = flag.Int("workers", 8, "concurrent pipeline workers")
	)
	flag.Parse()

	if *dir == "" {
		printError("Error: --dir is required\n")
		os.Exit(1)
	}
	if *out == "" {
		*out = filepath.Join(filepath.Dir(*dir), "pii-report.xlsx")
	}

	var maskReq *pipeline.MaskRequest
	switch *mode {
	case "":
	case string(mask.ModeIrreversibleBlur):
		maskReq = &pipeline.MaskRequest{Mode: mask.ModeIrreversibleBlur}
	case string(mask.ModeReversibleToken):
		if *password == "" {
			printError("Error: --password is required for REVERSIBLE_TOKEN\n")
			os.Exit(1)
		}
		maskReq = &pipeline.MaskRequest{Mode: mask.ModeReversibleToken, Password: *password}
	default:
		printError("Error: unknown --mode %q\n", *mode)
		os.Exit(1)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	ctx := context.Background()
	cfg := common.LoadConfig()

	entc, err := repo.OpenMemory(ctx, logger)
	if err != nil {
		logger.Error("failed to open in-memory database", "error", err)
		os.Exit(1)
	}
	defer func() { _ = entc.Close() }()

	batchRepo := repo.NewBatchRepository(entc, logger)
	docsRepo := repo.NewDocumentRepository(entc, logger)
	jobsRepo := repo.NewProcessJobRepository(entc, logger)
	maskRepo := repo.NewMaskRecordRepository(entc, logger)

	batch, err := batchRepo.Create(ctx, "Local Batch", "pii-batch")
	if err != nil {
		logger.Error("failed to create batch", "error", err)
		os.Exit(1)
	}
	logger.Info("using batch", "id", batch.ID, "name", batch.Name)

	engine := ocr.NewGate(ocr.NewTesseractEngine(
		ocr.WithLanguages(cfg.OCR.Languages...),
		ocr.WithDPI(cfg.OCR.DPI),
		ocr.WithTessdataDir(cfg.OCR.TessdataDir),
	), cfg.OCR.Slots)
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
	scanner := detect.NewScanner(logger, scanOpts...)
	processor := pipeline.NewProcessor(extractor, scanner, mask.NewMasker(logger), logger)

	done := make(chan scheduler.JobResult, 1)
	sched := scheduler.NewScheduler(processor, logger,
		scheduler.WithWorkers(*workers),
		scheduler.WithDocTimeout(cfg.Pipeline.DocTimeout),
		scheduler.WithCompletionHook(func(res scheduler.JobResult) { done <- res }),
	)

	// Walk the directory and persist one document row per file.
	var subs []scheduler.SubmitDoc
	names := map[uuid.UUID]string{}
	err = filepath.WalkDir(*dir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if strings.HasPrefix(d.Name(), ".") && path != *dir {
				return filepath.SkipDir
			}
			return nil
		}
		ext := constants.NormalizeExt(filepath.Ext(path))
		if _, ok := constants.AllowedExtensions[ext]; !ok {
			return nil
		}
		content, err := os.ReadFile(path)
		if err != nil {
			logger.Error("failed to read file", "path", path, "error", err)
			return nil
		}
		hash := sha256.Sum256(content)
		if existing, err := docsRepo.FindByHash(ctx, batch.ID, hash[:]); err == nil && existing != nil {
			logger.Info("skipping duplicate content", "path", path, "doc_id", existing.ID)
			return nil
		}
		kind := constants.MapExtToKind(filepath.Ext(path))
		row, err := docsRepo.Create(ctx, batch.ID, d.Name(), kind, len(content), hash[:], "file://"+path)
		if err != nil {
			return err
		}
		subs = append(subs, scheduler.SubmitDoc{ID: row.ID, Filename: d.Name(), Kind: kind, Content: content})
		names[row.ID] = d.Name()
		return nil
	})
	if err != nil {
		logger.Error("failed to walk directory", "dir", *dir, "error", err)
		os.Exit(1)
	}
	if len(subs) == 0 {
		printError("Error: no processable files under %s\n", *dir)
		os.Exit(1)
	}

	jobID, err := sched.Submit(batch.ID, subs, maskReq)
	if err != nil {
		logger.Error("failed to submit job", "error", err)
		os.Exit(1)
	}
	if _, err := jobsRepo.Start(ctx, jobID, batch.ID); err != nil {
		logger.Error("failed to record job", "job_id", jobID, "error", err)
	}
	logger.Info("job submitted", "job_id", jobID, "documents", len(subs))

	res := <-done

	succeeded, failed := 0, 0
	for _, doc := range res.Documents {
		switch doc.Status {
		case constants.DocDone:
			succeeded++
			if err := docsRepo.FinishSuccess(ctx, doc.DocumentID, doc.Retries); err != nil {
				logger.Error("document finish persist failed, mask record skipped",
					"doc_id", doc.DocumentID, "error", err)
				continue
			}
			if doc.MaskRecord != nil {
				if _, err := maskRepo.Save(ctx, doc.DocumentID, doc.MaskRecord); err != nil {
					logger.Error("failed to save mask record", "doc_id", doc.DocumentID, "error", err)
				}
			}
			if *maskedTo != "" && doc.MaskedText != "" {
				if err := writeMasked(*maskedTo, names[doc.DocumentID], doc.MaskedText); err != nil {
					logger.Error("failed to write masked output", "doc_id", doc.DocumentID, "error", err)
				}
			}
		case constants.DocFailed:
			failed++
			code, msg := "", ""
			if doc.Failure != nil {
				code, msg = doc.Failure.Code, doc.Failure.Message
			}
			if err := docsRepo.FinishFailure(ctx, doc.DocumentID, doc.Retries, code, msg); err != nil {
				logger.Error("document failure persist failed", "doc_id", doc.DocumentID, "error", err)
			}
		}
	}
	if err := jobsRepo.Finish(ctx, res.JobID, res.Status, res); err != nil {
		logger.Error("failed to finish job row", "job_id", res.JobID, "error", err)
	}

	analysis, err := sched.GetBatchAnalysis(batch.ID)
	if err != nil {
		analysis = scheduler.BatchAnalysis{BatchID: batch.ID}
	}

	logger.Info("exporting report", "output", *out)
	exportService := export.NewService(docsRepo, logger)
	xlsxBytes, err := exportService.ExportBatchXLSX(ctx, batch.ID, analysis)
	if err != nil {
		logger.Error("failed to export report", "error", err)
		os.Exit(1)
	}
	if err := os.WriteFile(*out, xlsxBytes, 0644); err != nil {
		logger.Error("failed to write output file", "error", err)
		os.Exit(1)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	sched.Shutdown(shutdownCtx)

	fmt.Printf("Batch processing complete!\n")
	fmt.Printf("- Documents processed: %d\n", len(res.Documents))
	fmt.Printf("- Succeeded: %d\n", succeeded)
	fmt.Printf("- Failed: %d\n", failed)
	fmt.Printf("- Report: %s\n", *out)
}

func writeMasked(dir, filename, text string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	base := strings.TrimSuffix(filename, filepath.Ext(filename))
	return os.WriteFile(filepath.Join(dir, base+".masked.txt"), []byte(text), 0644)
}
