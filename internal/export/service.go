package export

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/affu-79/PII-SENTINEL-BACKEND-sub002/constants"
	"github.com/affu-79/PII-SENTINEL-BACKEND-sub002/internal/repository"
	"github.com/affu-79/PII-SENTINEL-BACKEND-sub002/internal/scheduler"
)

// Service is a tiny façade over repositories that produces XLSX bytes for
// batch reports.
type Service struct {
	docsRepo repository.DocumentRepository
	logger   *slog.Logger
}

func NewService(docsRepo repository.DocumentRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{docsRepo: docsRepo, logger: logger}
}

// ExportBatchXLSX returns an XLSX workbook (as bytes) with one row per
// document in the batch, plus a summary sheet built from the batch analysis.
func (s *Service) ExportBatchXLSX(ctx context.Context, batchID uuid.UUID, analysis scheduler.BatchAnalysis) ([]byte, error) {
	start := time.Now()

	docs, err := s.docsRepo.ListByBatch(ctx, batchID)
	if err != nil {
		return nil, fmt.Errorf("query documents: %w", err)
	}

	f := excelize.NewFile()
	const sheet = "Documents"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		if _, err := f.NewSheet(sheet); err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)

	headers := []string{
		"Document ID",
		"Filename",
		"Kind",
		"Status",
		"Failure Code",
		"Failure Message",
		"Retries",
		"Storage Location",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	row := 2
	for _, d := range docs {
		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(sheet, cell, v)
		}
		failureCode, failureMsg := "", ""
		if d.FailureCode != nil {
			failureCode = *d.FailureCode
		}
		if d.FailureMessage != nil {
			failureMsg = *d.FailureMessage
		}
		write(1, d.ID.String())
		write(2, d.Filename)
		write(3, d.Kind)
		write(4, d.Status)
		write(5, failureCode)
		write(6, truncate(failureMsg, 140))
		write(7, d.RetryCount)
		write(8, d.StorageLocation)
		row++
	}

	_ = f.SetColWidth(sheet, "A", "A", 38) // uuid
	_ = f.SetColWidth(sheet, "B", "B", 36) // filename
	_ = f.SetColWidth(sheet, "C", "D", 14)
	_ = f.SetColWidth(sheet, "E", "E", 24)
	_ = f.SetColWidth(sheet, "F", "F", 48)
	_ = f.SetColWidth(sheet, "H", "H", 60)

	if err := s.writeSummary(f, analysis); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}

	s.logger.Info("export.xlsx.ok",
		"batch_id", batchID.String(),
		"rows", len(docs),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}

func (s *Service) writeSummary(f *excelize.File, a scheduler.BatchAnalysis) error {
	const sheet = "Summary"
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}

	write := func(row int, label string, v any) {
		cellA, _ := excelize.CoordinatesToCellName(1, row)
		cellB, _ := excelize.CoordinatesToCellName(2, row)
		_ = f.SetCellValue(sheet, cellA, label)
		_ = f.SetCellValue(sheet, cellB, v)
	}

	write(1, "Total", a.Total)
	write(2, "Succeeded", a.Succeeded)
	write(3, "Failed", a.Failed)
	write(4, "Cancelled", a.Cancelled)
	write(5, "In Flight", a.InFlight)

	cats := make([]string, 0, len(a.ByCategory))
	for c := range a.ByCategory {
		cats = append(cats, string(c))
	}
	sort.Strings(cats)

	row := 7
	headerCell, _ := excelize.CoordinatesToCellName(1, row)
	_ = f.SetCellValue(sheet, headerCell, "Matches by Category")
	row++
	for _, c := range cats {
		write(row, c, a.ByCategory[constants.PIICategory(c)])
		row++
	}

	_ = f.SetColWidth(sheet, "A", "A", 26)
	return nil
}

func truncate(s string, n int) string {
	if n <= 0 || len(s) <= n {
		return s
	}
	if n <= 1 {
		return s[:n]
	}
	return s[:n-1] + "…"
}
