package extract

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"

	"github.com/affu-79/PII-SENTINEL-BACKEND-sub002/internal/common"
)

// extractPDF extracts embedded text when the PDF has a text layer and falls
// back to rasterize-and-OCR for scanned documents.
func (e *Extractor) extractPDF(ctx context.Context, content []byte, start time.Time) ([]Page, error) {
	conf := model.NewDefaultConfiguration()
	if err := api.Validate(bytes.NewReader(content), conf); err != nil {
		return nil, fmt.Errorf("%w: invalid pdf: %w", common.ErrExtractionFailure, err)
	}
	pageCount, err := api.PageCount(bytes.NewReader(content), conf)
	if err != nil {
		return nil, fmt.Errorf("%w: page count: %w", common.ErrExtractionFailure, err)
	}
	if e.cfg.MaxPages > 0 && pageCount > e.cfg.MaxPages {
		pageCount = e.cfg.MaxPages
	}

	tmp, err := os.CreateTemp("", "ps-pdf-*.pdf")
	if err != nil {
		return nil, fmt.Errorf("%w: %w", common.ErrExtractionFailure, err)
	}
	defer func() { _ = os.Remove(tmp.Name()) }()
	if _, err := tmp.Write(content); err != nil {
		_ = tmp.Close()
		return nil, fmt.Errorf("%w: %w", common.ErrExtractionFailure, err)
	}
	if err := tmp.Close(); err != nil {
		return nil, fmt.Errorf("%w: %w", common.ErrExtractionFailure, err)
	}

	text, err := e.pdfToText(ctx, tmp.Name())
	if err == nil && strings.TrimSpace(text) != "" {
		parts := strings.Split(Normalize(text), "\f")
		if e.cfg.MaxPages > 0 && len(parts) > e.cfg.MaxPages {
			parts = parts[:e.cfg.MaxPages]
		}
		pages := make([]Page, 0, len(parts))
		for i, p := range parts {
			pages = append(pages, Page{Index: i, Text: p, Method: "pdf-text", Duration: time.Since(start)})
		}
		return pages, nil
	}
	if err != nil {
		e.logger.Warn("pdftotext failed, falling back to ocr", "error", err)
	} else {
		e.logger.Debug("pdf has no text layer, rasterizing", "pages", pageCount)
	}
	return e.pdfToOCR(ctx, tmp.Name(), start)
}

func (e *Extractor) pdfToText(ctx context.Context, path string) (string, error) {
	// pdftotext -layout -enc UTF-8 -eol unix <path> -
	out, errb, err := e.runner.Run(ctx, e.cfg.Pdftotext, "-layout", "-enc", "UTF-8", "-eol", "unix", path, "-")
	if err != nil {
		return "", fmt.Errorf("pdftotext: %s: %w", strings.TrimSpace(string(errb)), err)
	}
	return string(out), nil
}

func (e *Extractor) pdfToOCR(ctx context.Context, path string, start time.Time) ([]Page, error) {
	tmpDir, err := os.MkdirTemp("", "ps-pp-*")
	if err != nil {
		return nil, fmt.Errorf("%w: %w", common.ErrExtractionFailure, err)
	}
	defer func() {
		if err := os.RemoveAll(tmpDir); err != nil {
			e.logger.Warn("failed to remove temp dir", "dir", tmpDir, "error", err)
		}
	}()

	prefix := filepath.Join(tmpDir, "page")
	// pdftoppm -r <dpi> -png <in.pdf> <tmp/page>
	_, errb, err := e.runner.Run(ctx, e.cfg.Pdftoppm, "-r", fmt.Sprintf("%d", e.cfg.DPI), "-png", path, prefix)
	if err != nil {
		return nil, fmt.Errorf("%w: pdftoppm: %s: %w", common.ErrExtractionFailure, strings.TrimSpace(string(errb)), err)
	}

	// collect generated pngs (prefix-1.png, prefix-2.png, ...)
	matches, _ := filepath.Glob(prefix + "-*.png")
	sort.Strings(matches)
	if e.cfg.MaxPages > 0 && len(matches) > e.cfg.MaxPages {
		matches = matches[:e.cfg.MaxPages]
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("%w: pdftoppm produced no images", common.ErrExtractionFailure)
	}

	pages := make([]Page, 0, len(matches))
	for i, img := range matches {
		raster, err := os.ReadFile(img)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", common.ErrExtractionFailure, err)
		}
		res, err := e.engine.Recognize(ctx, raster)
		if err != nil {
			return nil, fmt.Errorf("%w: page %d ocr: %w", common.ErrExtractionFailure, i, err)
		}
		pages = append(pages, Page{
			Index:    i,
			Text:     Normalize(res.Text),
			Tokens:   res.Tokens,
			Raster:   raster,
			Method:   "pdf-ocr",
			Duration: time.Since(start),
		})
	}
	return pages, nil
}
