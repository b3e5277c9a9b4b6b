package ocr

import (
	"context"
	"fmt"
	"strconv"

	"github.com/otiai10/gosseract/v2"
)

// TesseractEngine is the primary OCR backend, driven through the gosseract
// bindings. A fresh client per call keeps recognition state isolated; the
// Gate bounds how many run at once.
type TesseractEngine struct {
	languages     []string
	dpi           int
	tessdataDir   string
	clientFactory func() *gosseract.Client
}

type TesseractOption func(*TesseractEngine)

func WithLanguages(langs ...string) TesseractOption {
	return func(e *TesseractEngine) {
		if len(langs) > 0 {
			e.languages = append([]string(nil), langs...)
		}
	}
}

func WithDPI(dpi int) TesseractOption {
	return func(e *TesseractEngine) {
		if dpi > 0 {
			e.dpi = dpi
		}
	}
}

func WithTessdataDir(dir string) TesseractOption {
	return func(e *TesseractEngine) { e.tessdataDir = dir }
}

func NewTesseractEngine(opts ...TesseractOption) *TesseractEngine {
	e := &TesseractEngine{
		languages:     []string{"eng"},
		clientFactory: gosseract.NewClient,
	}
	for _, o := range opts {
		o(e)
	}
	return e
}

func (e *TesseractEngine) Name() string { return "tesseract" }

func (e *TesseractEngine) Recognize(ctx context.Context, image []byte) (Result, error) {
	select {
	case <-ctx.Done():
		return Result{}, ctx.Err()
	default:
	}

	c := e.clientFactory()
	defer func() { _ = c.Close() }()

	if err := c.SetImageFromBytes(image); err != nil {
		return Result{}, fmt.Errorf("set image: %w", err)
	}
	if len(e.languages) > 0 {
		if err := c.SetLanguage(e.languages...); err != nil {
			return Result{}, fmt.Errorf("set languages: %w", err)
		}
	}
	if e.dpi > 0 {
		if err := c.SetVariable(gosseract.SettableVariable("user_defined_dpi"), strconv.Itoa(e.dpi)); err != nil {
			return Result{}, fmt.Errorf("set dpi: %w", err)
		}
	}
	if e.tessdataDir != "" {
		if err := c.SetTessdataPrefix(e.tessdataDir); err != nil {
			return Result{}, fmt.Errorf("set tessdata prefix: %w", err)
		}
	}

	boxes, err := c.GetBoundingBoxes(gosseract.RIL_WORD)
	if err != nil {
		return Result{}, fmt.Errorf("bounding boxes: %w", err)
	}
	text, err := c.Text()
	if err != nil {
		return Result{}, fmt.Errorf("text: %w", err)
	}

	res := Result{Text: text, Tokens: make([]Token, 0, len(boxes))}
	var sum float64
	for _, b := range boxes {
		r := b.Box
		res.Tokens = append(res.Tokens, Token{
			Text: b.Word,
			Bounds: Box{
				X:      r.Min.X,
				Y:      r.Min.Y,
				Width:  r.Dx(),
				Height: r.Dy(),
			},
			Confidence: b.Confidence / 100.0,
		})
		sum += b.Confidence / 100.0
	}
	if len(res.Tokens) > 0 {
		res.Confidence = sum / float64(len(res.Tokens))
	}
	return res, nil
}
