package mask

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"strings"

	xdraw "golang.org/x/image/draw"

	"github.com/affu-79/PII-SENTINEL-BACKEND-sub002/internal/common"
	"github.com/affu-79/PII-SENTINEL-BACKEND-sub002/internal/detect"
	"github.com/affu-79/PII-SENTINEL-BACKEND-sub002/internal/ocr"
)

// mosaicFactor controls how much each blurred region is collapsed before
// re-expansion. Higher destroys more detail.
const mosaicFactor = 24

// IrreversibleText replaces each matched span with its fixed category
// placeholder. Matches must be sorted ascending and non-overlapping.
func (mk *Masker) IrreversibleText(text string, matches []detect.Match) (string, error) {
	var b strings.Builder
	prev := 0
	for _, m := range matches {
		if m.Start < prev || m.End > len(text) {
			return "", fmt.Errorf("%w: span out of range", common.ErrMaskingFailure)
		}
		b.WriteString(text[prev:m.Start])
		b.WriteString(m.Category.Placeholder())
		prev = m.End
	}
	b.WriteString(text[prev:])
	return b.String(), nil
}

// IrreversibleImage blurs every region of the page raster covered by a
// matched span and returns the re-encoded PNG. Token geometry comes from
// the extractor; a token participates when its recognized text occurs
// inside a matched value.
func (mk *Masker) IrreversibleImage(raster []byte, tokens []ocr.Token, matches []detect.Match) ([]byte, error) {
	src, _, err := image.Decode(bytes.NewReader(raster))
	if err != nil {
		return nil, fmt.Errorf("%w: decode raster: %v", common.ErrMaskingFailure, err)
	}

	boxes := BoxesForMatches(tokens, matches)
	if len(boxes) == 0 {
		return raster, nil
	}

	dst := image.NewRGBA(src.Bounds())
	xdraw.Copy(dst, src.Bounds().Min, src, src.Bounds(), xdraw.Src, nil)
	for _, box := range boxes {
		mosaic(dst, box)
	}

	var out bytes.Buffer
	if err := png.Encode(&out, dst); err != nil {
		return nil, fmt.Errorf("%w: encode raster: %v", common.ErrMaskingFailure, err)
	}
	mk.logger.Debug("image blur applied", "regions", len(boxes))
	return out.Bytes(), nil
}

// BoxesForMatches selects the token boxes that cover matched values.
func BoxesForMatches(tokens []ocr.Token, matches []detect.Match) []ocr.Box {
	var boxes []ocr.Box
	for _, t := range tokens {
		if t.Text == "" || t.Bounds.IsEmpty() {
			continue
		}
		for _, m := range matches {
			if tokenInValue(t.Text, m.Value) {
				boxes = append(boxes, t.Bounds)
				break
			}
		}
	}
	return boxes
}

// tokenInValue reports whether a recognized token is part of a matched
// value, comparing with separators stripped so "1234 5678 9012" still maps
// to its three word boxes.
func tokenInValue(token, value string) bool {
	strip := func(s string) string {
		return strings.Map(func(r rune) rune {
			if r == ' ' || r == '-' || r == '\t' {
				return -1
			}
			return r
		}, s)
	}
	ts, vs := strip(token), strip(value)
	if ts == "" || vs == "" {
		return false
	}
	return strings.Contains(vs, ts) || strings.Contains(ts, vs)
}

// mosaic destructively pixelates one region in place: collapse the region
// by mosaicFactor with a box filter, then re-expand with nearest neighbor.
// Pixel averaging is not invertible; the original detail is gone.
func mosaic(dst *image.RGBA, box ocr.Box) {
	r := image.Rect(box.X, box.Y, box.X+box.Width, box.Y+box.Height).Intersect(dst.Bounds())
	if r.Empty() {
		return
	}
	smallW := r.Dx() / mosaicFactor
	smallH := r.Dy() / mosaicFactor
	if smallW < 1 {
		smallW = 1
	}
	if smallH < 1 {
		smallH = 1
	}
	small := image.NewRGBA(image.Rect(0, 0, smallW, smallH))
	xdraw.CatmullRom.Scale(small, small.Bounds(), dst, r, xdraw.Src, nil)
	xdraw.NearestNeighbor.Scale(dst, r, small, small.Bounds(), xdraw.Src, nil)
}
