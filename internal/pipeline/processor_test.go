package pipeline

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/affu-79/PII-SENTINEL-BACKEND-sub002/constants"
	"github.com/affu-79/PII-SENTINEL-BACKEND-sub002/internal/detect"
	"github.com/affu-79/PII-SENTINEL-BACKEND-sub002/internal/extract"
	"github.com/affu-79/PII-SENTINEL-BACKEND-sub002/internal/mask"
	"github.com/affu-79/PII-SENTINEL-BACKEND-sub002/internal/ocr"
)

type noopEngine struct{}

func (noopEngine) Name() string { return "noop" }
func (noopEngine) Recognize(ctx context.Context, image []byte) (ocr.Result, error) {
	return ocr.Result{}, nil
}

// ctxErrEngine surfaces the context state the way a gated real backend does.
type ctxErrEngine struct{}

func (ctxErrEngine) Name() string { return "ctxerr" }
func (ctxErrEngine) Recognize(ctx context.Context, image []byte) (ocr.Result, error) {
	return ocr.Result{}, ctx.Err()
}

func newTestProcessor() *Processor {
	extractor := extract.NewExtractor(extract.Config{}, noopEngine{}, nil)
	return NewProcessor(extractor, detect.NewScanner(nil), mask.NewMasker(nil), nil)
}

func textInput(content string, maskReq *MaskRequest) Input {
	return Input{
		DocumentID: uuid.New(),
		Filename:   "doc.txt",
		Kind:       constants.KindText,
		Content:    []byte(content),
		Mask:       maskReq,
	}
}

func TestProcessReportOnly(t *testing.T) {
	p := newTestProcessor()

	var seen []constants.DocumentStatus
	res := p.Process(context.Background(),
		textInput("aadhaar 234567890124 mail a@b.example", nil),
		func(st constants.DocumentStatus) { seen = append(seen, st) })

	if res.Status != constants.DocDone {
		t.Fatalf("Status = %s, want DONE: %+v", res.Status, res.Failure)
	}
	if len(res.Matches) != 2 {
		t.Fatalf("got %d matches, want 2: %+v", len(res.Matches), res.Matches)
	}
	if res.MaskedText != "" || res.MaskRecord != nil {
		t.Fatalf("report-only run must not mask: %+v", res)
	}
	want := []constants.DocumentStatus{constants.DocExtracting, constants.DocDetecting}
	if len(seen) != len(want) || seen[0] != want[0] || seen[1] != want[1] {
		t.Fatalf("progress = %v, want %v", seen, want)
	}
}

func TestProcessReversibleMask(t *testing.T) {
	p := newTestProcessor()
	text := "aadhaar 234567890124 end"

	res := p.Process(context.Background(),
		textInput(text, &MaskRequest{Mode: mask.ModeReversibleToken, Password: "pw"}), nil)

	if res.Status != constants.DocDone {
		t.Fatalf("Status = %s, want DONE: %+v", res.Status, res.Failure)
	}
	if strings.Contains(res.MaskedText, "234567890124") {
		t.Fatalf("masked text leaks original: %q", res.MaskedText)
	}
	if res.MaskRecord == nil || res.MaskRecord.Mode != mask.ModeReversibleToken {
		t.Fatalf("missing reversible record: %+v", res.MaskRecord)
	}

	got, err := mask.NewMasker(nil).Unmask(res.MaskedText, res.MaskRecord, "pw")
	if err != nil {
		t.Fatalf("Unmask() error = %v", err)
	}
	if got != res.Text {
		t.Fatalf("round trip mismatch:\n got  %q\n want %q", got, res.Text)
	}
}

func TestProcessIrreversibleMask(t *testing.T) {
	p := newTestProcessor()

	res := p.Process(context.Background(),
		textInput("mail a@b.example here", &MaskRequest{Mode: mask.ModeIrreversibleBlur}), nil)

	if res.Status != constants.DocDone {
		t.Fatalf("Status = %s, want DONE: %+v", res.Status, res.Failure)
	}
	if !strings.Contains(res.MaskedText, "[EMAIL]") {
		t.Fatalf("placeholder missing: %q", res.MaskedText)
	}
	if res.MaskRecord == nil || len(res.MaskRecord.Spans) != 0 || len(res.MaskRecord.Salt) != 0 {
		t.Fatalf("irreversible record must carry no reconstruction data: %+v", res.MaskRecord)
	}
}

func TestProcessUnsupportedKind(t *testing.T) {
	p := newTestProcessor()

	in := textInput("x", nil)
	in.Kind = constants.KindUnknown
	res := p.Process(context.Background(), in, nil)

	if res.Status != constants.DocFailed {
		t.Fatalf("Status = %s, want FAILED", res.Status)
	}
	if res.Failure == nil || res.Failure.Code != "UNSUPPORTED_FORMAT" {
		t.Fatalf("Failure = %+v, want UNSUPPORTED_FORMAT", res.Failure)
	}
}

func TestProcessCancelledContext(t *testing.T) {
	p := newTestProcessor()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	res := p.Process(ctx, textInput("mail a@b.example", nil), nil)

	if res.Status != constants.DocCancelled {
		t.Fatalf("Status = %s, want CANCELLED", res.Status)
	}
	if res.Failure == nil || res.Failure.Code != "CANCELLED" {
		t.Fatalf("Failure = %+v, want CANCELLED code", res.Failure)
	}
}

func TestProcessCancelledDuringRecognition(t *testing.T) {
	extractor := extract.NewExtractor(extract.Config{}, ctxErrEngine{}, nil)
	p := NewProcessor(extractor, detect.NewScanner(nil), mask.NewMasker(nil), nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	res := p.Process(ctx, Input{
		DocumentID: uuid.New(),
		Filename:   "scan.png",
		Kind:       constants.KindImage,
		Content:    []byte("png bytes"),
	}, nil)

	if res.Status != constants.DocCancelled {
		t.Fatalf("Status = %s, want CANCELLED: %+v", res.Status, res.Failure)
	}
	if res.Failure == nil || res.Failure.Code != "CANCELLED" {
		t.Fatalf("Failure = %+v, want CANCELLED code", res.Failure)
	}
}

func TestProcessDeadlineDuringRecognition(t *testing.T) {
	extractor := extract.NewExtractor(extract.Config{}, ctxErrEngine{}, nil)
	p := NewProcessor(extractor, detect.NewScanner(nil), mask.NewMasker(nil), nil)

	ctx, cancel := context.WithDeadline(context.Background(), time.Now().Add(-time.Second))
	defer cancel()
	res := p.Process(ctx, Input{
		DocumentID: uuid.New(),
		Filename:   "scan.png",
		Kind:       constants.KindImage,
		Content:    []byte("png bytes"),
	}, nil)

	if res.Status != constants.DocFailed {
		t.Fatalf("Status = %s, want FAILED: %+v", res.Status, res.Failure)
	}
	if res.Failure == nil || res.Failure.Code != "TIMEOUT" {
		t.Fatalf("Failure = %+v, want TIMEOUT code", res.Failure)
	}
}

func TestProcessEmptyPasswordFailsMasking(t *testing.T) {
	p := newTestProcessor()

	res := p.Process(context.Background(),
		textInput("mail a@b.example", &MaskRequest{Mode: mask.ModeReversibleToken}), nil)

	if res.Status != constants.DocFailed {
		t.Fatalf("Status = %s, want FAILED", res.Status)
	}
	if res.Failure == nil || res.Failure.Code != "MASKING_FAILURE" {
		t.Fatalf("Failure = %+v, want MASKING_FAILURE", res.Failure)
	}
}
