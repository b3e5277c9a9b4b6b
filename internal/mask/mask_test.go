package mask

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"

	"github.com/affu-79/PII-SENTINEL-BACKEND-sub002/constants"
	"github.com/affu-79/PII-SENTINEL-BACKEND-sub002/internal/common"
	"github.com/affu-79/PII-SENTINEL-BACKEND-sub002/internal/detect"
	"github.com/affu-79/PII-SENTINEL-BACKEND-sub002/internal/ocr"
)

func matchesFor(text string, values map[string]constants.PIICategory) []detect.Match {
	var out []detect.Match
	for v, cat := range values {
		start := strings.Index(text, v)
		if start < 0 {
			panic("value not in text: " + v)
		}
		out = append(out, detect.Match{
			Category: cat, Start: start, End: start + len(v), Value: v, Confidence: 0.9,
		})
	}
	return detect.Resolve(out)
}

func TestReversibleRoundTrip(t *testing.T) {
	mk := NewMasker(nil)
	text := "aadhaar 234567890124, mail a@b.example, done"
	matches := matchesFor(text, map[string]constants.PIICategory{
		"234567890124": constants.CategoryAadhaar,
		"a@b.example":  constants.CategoryEmail,
	})

	masked, rec, err := mk.Reversible(text, matches, "hunter2")
	if err != nil {
		t.Fatalf("Reversible() error = %v", err)
	}
	if strings.Contains(masked, "234567890124") || strings.Contains(masked, "a@b.example") {
		t.Fatalf("masked text still contains originals: %q", masked)
	}
	if len(rec.Spans) != 2 || len(rec.Salt) == 0 {
		t.Fatalf("unexpected record: %+v", rec)
	}

	got, err := mk.Unmask(masked, rec, "hunter2")
	if err != nil {
		t.Fatalf("Unmask() error = %v", err)
	}
	if got != text {
		t.Fatalf("round trip mismatch:\n got  %q\n want %q", got, text)
	}
}

func TestUnmaskWrongPasswordFailsClosed(t *testing.T) {
	mk := NewMasker(nil)
	text := "card 4111111111111111 and mail a@b.example"
	matches := matchesFor(text, map[string]constants.PIICategory{
		"4111111111111111": constants.CategoryCreditCard,
		"a@b.example":      constants.CategoryEmail,
	})

	masked, rec, err := mk.Reversible(text, matches, "correct")
	if err != nil {
		t.Fatalf("Reversible() error = %v", err)
	}

	got, err := mk.Unmask(masked, rec, "wrong")
	if !errors.Is(err, common.ErrAuthenticationFailure) {
		t.Fatalf("Unmask() error = %v, want ErrAuthenticationFailure", err)
	}
	if got != "" {
		t.Fatalf("wrong password must not return partial output, got %q", got)
	}
}

func TestReversibleRejectsEmptyPassword(t *testing.T) {
	mk := NewMasker(nil)
	_, _, err := mk.Reversible("text", nil, "")
	if !errors.Is(err, common.ErrMaskingFailure) {
		t.Fatalf("Reversible() error = %v, want ErrMaskingFailure", err)
	}
}

func TestReversibleRejectsOverlappingSpans(t *testing.T) {
	mk := NewMasker(nil)
	matches := []detect.Match{
		{Category: constants.CategoryEmail, Start: 0, End: 10, Value: "0123456789"},
		{Category: constants.CategoryPhone, Start: 5, End: 15, Value: "5678901234"},
	}
	_, _, err := mk.Reversible("0123456789012345", matches, "pw")
	if !errors.Is(err, common.ErrMaskingFailure) {
		t.Fatalf("Reversible() error = %v, want ErrMaskingFailure", err)
	}
}

func TestUnmaskTamperedTokenFails(t *testing.T) {
	mk := NewMasker(nil)
	text := "mail a@b.example here"
	matches := matchesFor(text, map[string]constants.PIICategory{
		"a@b.example": constants.CategoryEmail,
	})
	masked, rec, err := mk.Reversible(text, matches, "pw")
	if err != nil {
		t.Fatalf("Reversible() error = %v", err)
	}

	// swap the associated data so the AEAD tag no longer matches
	rec.Spans[0].Token = "⟦EMAIL:9⟧"
	if _, err := mk.Unmask(masked, rec, "pw"); !errors.Is(err, common.ErrAuthenticationFailure) {
		t.Fatalf("Unmask() error = %v, want ErrAuthenticationFailure", err)
	}
}

func TestIrreversibleTextSubstitutesPlaceholders(t *testing.T) {
	mk := NewMasker(nil)
	text := "aadhaar 234567890124 phone 9876543210 end"
	matches := matchesFor(text, map[string]constants.PIICategory{
		"234567890124": constants.CategoryAadhaar,
		"9876543210":   constants.CategoryPhone,
	})

	got, err := mk.IrreversibleText(text, matches)
	if err != nil {
		t.Fatalf("IrreversibleText() error = %v", err)
	}
	if !strings.Contains(got, "[AADHAAR]") || !strings.Contains(got, "[PHONE]") {
		t.Fatalf("placeholders missing: %q", got)
	}
	if strings.Contains(got, "234567890124") || strings.Contains(got, "9876543210") {
		t.Fatalf("original values survived masking: %q", got)
	}

	// the cleaned text must scan clean
	rescanned := detect.NewScanner(nil).Scan(context.Background(), got)
	if len(rescanned) != 0 {
		t.Fatalf("masked text still detects PII: %+v", rescanned)
	}
}

func TestIrreversibleImageChangesMatchedRegion(t *testing.T) {
	mk := NewMasker(nil)

	// gradient so pixelation visibly averages neighbors
	src := image.NewRGBA(image.Rect(0, 0, 120, 60))
	for y := 0; y < 60; y++ {
		for x := 0; x < 120; x++ {
			src.Set(x, y, color.RGBA{R: uint8(x * 2), G: uint8(y * 4), B: 40, A: 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, src); err != nil {
		t.Fatalf("encode fixture: %v", err)
	}

	tokens := []ocr.Token{
		{Text: "234567890124", Bounds: ocr.Box{X: 10, Y: 10, Width: 80, Height: 20}},
		{Text: "harmless", Bounds: ocr.Box{X: 10, Y: 40, Width: 40, Height: 10}},
	}
	matches := []detect.Match{
		{Category: constants.CategoryAadhaar, Start: 0, End: 12, Value: "2345 6789 0124"},
	}

	out, err := mk.IrreversibleImage(buf.Bytes(), tokens, matches)
	if err != nil {
		t.Fatalf("IrreversibleImage() error = %v", err)
	}
	if bytes.Equal(out, buf.Bytes()) {
		t.Fatalf("masked raster is identical to input")
	}

	decoded, err := png.Decode(bytes.NewReader(out))
	if err != nil {
		t.Fatalf("decode masked raster: %v", err)
	}
	changed := false
	for y := 10; y < 30 && !changed; y++ {
		for x := 10; x < 90; x++ {
			if !sameColor(decoded.At(x, y), src.At(x, y)) {
				changed = true
				break
			}
		}
	}
	if !changed {
		t.Fatalf("matched region pixels unchanged")
	}

	// region outside any box stays untouched
	if !sameColor(decoded.At(110, 5), src.At(110, 5)) {
		t.Fatalf("pixels outside matched regions were modified")
	}
}

func sameColor(a, b color.Color) bool {
	ar, ag, ab, aa := a.RGBA()
	br, bg, bb, ba := b.RGBA()
	return ar == br && ag == bg && ab == bb && aa == ba
}

func TestIrreversibleImageNoMatchesReturnsOriginal(t *testing.T) {
	mk := NewMasker(nil)
	img := image.NewRGBA(image.Rect(0, 0, 8, 8))
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode fixture: %v", err)
	}

	out, err := mk.IrreversibleImage(buf.Bytes(), nil, nil)
	if err != nil {
		t.Fatalf("IrreversibleImage() error = %v", err)
	}
	if !bytes.Equal(out, buf.Bytes()) {
		t.Fatalf("raster changed with no matches")
	}
}

func TestBoxesForMatchesStripsSeparators(t *testing.T) {
	tokens := []ocr.Token{
		{Text: "2345", Bounds: ocr.Box{X: 0, Y: 0, Width: 10, Height: 10}},
		{Text: "6789", Bounds: ocr.Box{X: 12, Y: 0, Width: 10, Height: 10}},
		{Text: "text", Bounds: ocr.Box{X: 24, Y: 0, Width: 10, Height: 10}},
	}
	matches := []detect.Match{
		{Category: constants.CategoryAadhaar, Value: "2345 6789 0124"},
	}
	boxes := BoxesForMatches(tokens, matches)
	if len(boxes) != 2 {
		t.Fatalf("got %d boxes, want 2: %+v", len(boxes), boxes)
	}
}
