package extract

import (
	"context"
	"errors"
	"testing"

	"github.com/affu-79/PII-SENTINEL-BACKEND-sub002/constants"
	"github.com/affu-79/PII-SENTINEL-BACKEND-sub002/internal/common"
	"github.com/affu-79/PII-SENTINEL-BACKEND-sub002/internal/ocr"
)

type stubEngine struct {
	result ocr.Result
	err    error
}

func (s *stubEngine) Name() string { return "stub" }
func (s *stubEngine) Recognize(ctx context.Context, image []byte) (ocr.Result, error) {
	return s.result, s.err
}

func TestExtractUnsupportedKind(t *testing.T) {
	e := NewExtractor(Config{}, &stubEngine{}, nil)

	_, err := e.Extract(context.Background(), []byte("x"), constants.KindUnknown)
	if !errors.Is(err, common.ErrUnsupportedFormat) {
		t.Fatalf("Extract() error = %v, want ErrUnsupportedFormat", err)
	}
}

func TestExtractPlainTextSplitsOnFormFeed(t *testing.T) {
	e := NewExtractor(Config{}, &stubEngine{}, nil)

	pages, err := e.Extract(context.Background(), []byte("page one\fpage two\fpage three"), constants.KindText)
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}
	if len(pages) != 3 {
		t.Fatalf("got %d pages, want 3", len(pages))
	}
	if pages[0].Text != "page one" || pages[2].Text != "page three" {
		t.Fatalf("unexpected page content: %+v", pages)
	}
	for i, p := range pages {
		if p.Index != i || p.Method != "plain" || p.ImageDerived() {
			t.Fatalf("page %d metadata wrong: %+v", i, p)
		}
	}
}

func TestExtractImageCarriesRasterAndTokens(t *testing.T) {
	engine := &stubEngine{result: ocr.Result{
		Text: "hello 9876543210",
		Tokens: []ocr.Token{
			{Text: "hello", Bounds: ocr.Box{X: 0, Y: 0, Width: 40, Height: 12}, Confidence: 0.98},
			{Text: "9876543210", Bounds: ocr.Box{X: 44, Y: 0, Width: 90, Height: 12}, Confidence: 0.91},
		},
		Confidence: 0.94,
	}}
	e := NewExtractor(Config{}, engine, nil)

	raster := []byte("png-bytes")
	pages, err := e.Extract(context.Background(), raster, constants.KindImage)
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}
	if len(pages) != 1 {
		t.Fatalf("got %d pages, want 1", len(pages))
	}
	p := pages[0]
	if !p.ImageDerived() || string(p.Raster) != "png-bytes" {
		t.Fatalf("image page must carry the source raster: %+v", p)
	}
	if len(p.Tokens) != 2 || p.Method != "image-ocr" {
		t.Fatalf("unexpected page: %+v", p)
	}
}

func TestExtractImageZeroTokensIsNotAnError(t *testing.T) {
	e := NewExtractor(Config{}, &stubEngine{result: ocr.Result{}}, nil)

	pages, err := e.Extract(context.Background(), []byte("blank"), constants.KindImage)
	if err != nil {
		t.Fatalf("blank page should extract cleanly, got %v", err)
	}
	if len(pages) != 1 || pages[0].Text != "" || len(pages[0].Tokens) != 0 {
		t.Fatalf("unexpected pages: %+v", pages)
	}
}

func TestExtractImageEngineFailure(t *testing.T) {
	e := NewExtractor(Config{}, &stubEngine{err: errors.New("backend down")}, nil)

	_, err := e.Extract(context.Background(), []byte("img"), constants.KindImage)
	if !errors.Is(err, common.ErrExtractionFailure) {
		t.Fatalf("Extract() error = %v, want ErrExtractionFailure", err)
	}
}

func TestExtractImageKeepsEngineCause(t *testing.T) {
	e := NewExtractor(Config{}, &stubEngine{err: context.Canceled}, nil)

	_, err := e.Extract(context.Background(), []byte("img"), constants.KindImage)
	if !errors.Is(err, common.ErrExtractionFailure) {
		t.Fatalf("Extract() error = %v, want ErrExtractionFailure", err)
	}
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("Extract() error = %v, cause context.Canceled lost", err)
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"crlf", "a\r\nb", "a\nb"},
		{"bare cr", "a\rb", "a\nb"},
		{"nul and control noise", "a\x00b\x01c", "abc"},
		{"keeps tabs and form feeds", "a\tb\fc", "a\tb\fc"},
		{"trailing whitespace", "line one   \nline two\t", "line one\nline two"},
	}
	for _, tt := range tests {
		if got := Normalize(tt.in); got != tt.want {
			t.Errorf("%s: Normalize(%q) = %q, want %q", tt.name, tt.in, got, tt.want)
		}
	}
}
