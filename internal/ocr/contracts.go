package ocr

import "context"

// Box is a token bounding box in pixel coordinates, origin upper-left.
type Box struct {
	X      int
	Y      int
	Width  int
	Height int
}

// IsEmpty reports whether the box has non-positive dimensions.
func (b Box) IsEmpty() bool { return b.Width <= 0 || b.Height <= 0 }

// Token is one recognized word with its position and per-token confidence
// in [0,1].
type Token struct {
	Text       string
	Bounds     Box
	Confidence float64
}

// Result captures recognition output for a single image. Zero tokens means
// "no text found", not an error.
type Result struct {
	Text       string
	Tokens     []Token
	Confidence float64 // mean word confidence in [0,1]
}

// Engine is the OCR provider contract: one encoded image in, one result out.
// Implementations must honor ctx cancellation; the pipeline time-bounds every
// call with the per-document budget.
type Engine interface {
	Name() string
	Recognize(ctx context.Context, image []byte) (Result, error)
}
