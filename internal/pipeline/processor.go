package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/affu-79/PII-SENTINEL-BACKEND-sub002/constants"
	"github.com/affu-79/PII-SENTINEL-BACKEND-sub002/internal/common"
	"github.com/affu-79/PII-SENTINEL-BACKEND-sub002/internal/detect"
	"github.com/affu-79/PII-SENTINEL-BACKEND-sub002/internal/extract"
	"github.com/affu-79/PII-SENTINEL-BACKEND-sub002/internal/mask"
)

// MaskRequest asks for exactly one masking mode. Nil on Input means
// report-only: detect and return matches without producing an artifact.
type MaskRequest struct {
	Mode     mask.Mode
	Password string // required for ModeReversibleToken, rejected otherwise
}

// Input is one document handed to a worker.
type Input struct {
	DocumentID uuid.UUID
	Filename   string
	Kind       constants.FileKind
	Content    []byte
	Mask       *MaskRequest
}

// Failure is the typed-error variant of a document outcome.
type Failure struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// PageArtifact carries a masked page raster (image-derived pages only).
type PageArtifact struct {
	Index  int    `json:"index"`
	Raster []byte `json:"raster,omitempty"`
}

// Result is the explicit success-or-failure outcome of one document run.
// Matches are sorted by ascending start offset in the document text.
type Result struct {
	DocumentID uuid.UUID
	Status     constants.DocumentStatus
	Text       string // normalized extracted text, page breaks as \f
	Matches    []detect.Match
	MaskedText string
	MaskRecord *mask.Record
	Artifacts  []PageArtifact
	Failure    *Failure
}

// Runner is the unit the scheduler dispatches. progress receives every
// status transition so callers can expose per-document progress.
type Runner interface {
	Process(ctx context.Context, in Input, progress func(constants.DocumentStatus)) Result
}

// Processor runs extract -> detect -> mask for one document end-to-end.
type Processor struct {
	extractor *extract.Extractor
	scanner   *detect.Scanner
	masker    *mask.Masker
	logger    *slog.Logger
}

func NewProcessor(extractor *extract.Extractor, scanner *detect.Scanner, masker *mask.Masker, logger *slog.Logger) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Processor{extractor: extractor, scanner: scanner, masker: masker, logger: logger}
}

func (p *Processor) Process(ctx context.Context, in Input, progress func(constants.DocumentStatus)) Result {
	if progress == nil {
		progress = func(constants.DocumentStatus) {}
	}

	progress(constants.DocExtracting)
	pages, err := p.extractor.Extract(ctx, in.Content, in.Kind)
	if err != nil {
		return p.fail(in, err)
	}
	if err := ctx.Err(); err != nil {
		return p.fail(in, err)
	}

	texts := make([]string, len(pages))
	for i, pg := range pages {
		texts[i] = pg.Text
	}
	docText := strings.Join(texts, "\f")

	progress(constants.DocDetecting)
	matches := p.scanner.Scan(ctx, docText)
	if err := ctx.Err(); err != nil {
		return p.fail(in, err)
	}

	res := Result{
		DocumentID: in.DocumentID,
		Status:     constants.DocDone,
		Text:       docText,
		Matches:    matches,
	}
	if in.Mask == nil {
		p.logger.Info("document processed", "doc_id", in.DocumentID, "matches", len(matches))
		return res
	}

	progress(constants.DocMasking)
	switch in.Mask.Mode {
	case mask.ModeReversibleToken:
		maskedText, rec, err := p.masker.Reversible(docText, matches, in.Mask.Password)
		if err != nil {
			return p.fail(in, err)
		}
		res.MaskedText = maskedText
		res.MaskRecord = rec
	case mask.ModeIrreversibleBlur:
		maskedText, err := p.masker.IrreversibleText(docText, matches)
		if err != nil {
			return p.fail(in, err)
		}
		res.MaskedText = maskedText
		res.MaskRecord = &mask.Record{Mode: mask.ModeIrreversibleBlur}
		for _, pg := range pages {
			if !pg.ImageDerived() {
				continue
			}
			blurred, err := p.masker.IrreversibleImage(pg.Raster, pg.Tokens, matches)
			if err != nil {
				return p.fail(in, err)
			}
			res.Artifacts = append(res.Artifacts, PageArtifact{Index: pg.Index, Raster: blurred})
		}
	default:
		return p.fail(in, fmt.Errorf("%w: unknown mode %q", common.ErrMaskingFailure, in.Mask.Mode))
	}

	p.logger.Info("document processed", "doc_id", in.DocumentID,
		"matches", len(matches), "mode", in.Mask.Mode)
	return res
}

func (p *Processor) fail(in Input, err error) Result {
	status := constants.DocFailed
	code := common.FailureCode(err)
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		code = common.FailureCode(common.ErrTimeout)
	case errors.Is(err, context.Canceled):
		status = constants.DocCancelled
		code = "CANCELLED"
	}
	p.logger.Warn("document failed", "doc_id", in.DocumentID, "code", code, "error", err)
	return Result{
		DocumentID: in.DocumentID,
		Status:     status,
		Failure:    &Failure{Code: code, Message: err.Error()},
	}
}
