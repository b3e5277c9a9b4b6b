package extract

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/affu-79/PII-SENTINEL-BACKEND-sub002/constants"
	"github.com/affu-79/PII-SENTINEL-BACKEND-sub002/internal/common"
	"github.com/affu-79/PII-SENTINEL-BACKEND-sub002/internal/ocr"
)

// Page is one page of extracted text. Image-derived pages carry the source
// raster and per-token bounding boxes so the masking engine can blur spans
// visually; text-derived pages carry text only.
type Page struct {
	Index    int
	Text     string
	Tokens   []ocr.Token
	Raster   []byte // encoded PNG for image-derived pages, nil otherwise
	Method   string // "pdf-text" | "pdf-ocr" | "image-ocr" | "plain"
	Duration time.Duration
}

// ImageDerived reports whether the page came from pixels rather than
// embedded text.
func (p Page) ImageDerived() bool { return len(p.Raster) > 0 }

type Config struct {
	Pdftotext string // binary name or absolute path; if empty -> "pdftotext"
	Pdftoppm  string // binary name or absolute path; if empty -> "pdftoppm"
	DPI       int    // rasterization DPI for scanned PDFs, default 300
	MaxPages  int    // 0 = no limit
}

// Extractor normalizes arbitrary input bytes into pages, delegating
// pixel-to-text recognition to the configured OCR engine.
type Extractor struct {
	cfg    Config
	engine ocr.Engine
	runner ocr.Runner
	logger *slog.Logger
}

func NewExtractor(cfg Config, engine ocr.Engine, logger *slog.Logger) *Extractor {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.Pdftotext == "" {
		cfg.Pdftotext = "pdftotext"
	}
	if cfg.Pdftoppm == "" {
		cfg.Pdftoppm = "pdftoppm"
	}
	if cfg.DPI <= 0 {
		cfg.DPI = 300
	}
	return &Extractor{cfg: cfg, engine: engine, runner: ocr.ExecRunner{Logger: logger}, logger: logger}
}

// WithRunner substitutes the external-command runner. Used by tests.
func (e *Extractor) WithRunner(r ocr.Runner) *Extractor {
	e.runner = r
	return e
}

// Extract picks a strategy based on the declared kind. Unsupported kinds
// fail fast; an OCR result with zero tokens is "no text found", not an error.
func (e *Extractor) Extract(ctx context.Context, content []byte, kind constants.FileKind) ([]Page, error) {
	start := time.Now()
	e.logger.Debug("starting extraction", "kind", kind, "bytes", len(content))
	switch kind {
	case constants.KindText, constants.KindCSV:
		return e.extractText(content, start), nil
	case constants.KindPDF:
		return e.extractPDF(ctx, content, start)
	case constants.KindImage:
		return e.extractImage(ctx, content, start)
	default:
		e.logger.Error("unsupported input kind", "kind", kind)
		return nil, fmt.Errorf("%w: %q", common.ErrUnsupportedFormat, kind)
	}
}

// extractText splits plain or delimited text into pages on form feeds.
func (e *Extractor) extractText(content []byte, start time.Time) []Page {
	parts := strings.Split(Normalize(string(content)), "\f")
	pages := make([]Page, 0, len(parts))
	for i, p := range parts {
		pages = append(pages, Page{
			Index:    i,
			Text:     p,
			Method:   "plain",
			Duration: time.Since(start),
		})
	}
	return pages
}

func (e *Extractor) extractImage(ctx context.Context, content []byte, start time.Time) ([]Page, error) {
	res, err := e.engine.Recognize(ctx, content)
	if err != nil {
		return nil, fmt.Errorf("%w: image ocr: %w", common.ErrExtractionFailure, err)
	}
	return []Page{{
		Index:    0,
		Text:     Normalize(res.Text),
		Tokens:   res.Tokens,
		Raster:   content,
		Method:   "image-ocr",
		Duration: time.Since(start),
	}}, nil
}
