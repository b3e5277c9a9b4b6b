package detect

import (
	"context"
	"errors"
	"testing"

	"github.com/affu-79/PII-SENTINEL-BACKEND-sub002/constants"
)

type fakeRecognizer struct {
	matches []Match
	err     error
	called  bool
}

func (f *fakeRecognizer) RecognizeEntities(ctx context.Context, text string) ([]Match, error) {
	f.called = true
	return f.matches, f.err
}

func TestResolveLongerSpanWins(t *testing.T) {
	a := Match{Category: constants.CategoryPhone, Start: 0, End: 10, Confidence: 0.6}
	b := Match{Category: constants.CategoryBankAccount, Start: 0, End: 15, Confidence: 0.5}

	got := Resolve([]Match{a, b})
	if len(got) != 1 {
		t.Fatalf("Resolve() kept %d matches, want 1", len(got))
	}
	if got[0].Category != constants.CategoryBankAccount || got[0].End != 15 {
		t.Fatalf("Resolve() kept %+v, want the longer span", got[0])
	}
}

func TestResolveEqualLengthHigherConfidenceWins(t *testing.T) {
	a := Match{Category: constants.CategoryBankAccount, Start: 0, End: 12, Confidence: 0.55}
	b := Match{Category: constants.CategoryAadhaar, Start: 0, End: 12, Confidence: 0.95}

	got := Resolve([]Match{a, b})
	if len(got) != 1 || got[0].Category != constants.CategoryAadhaar {
		t.Fatalf("Resolve() = %+v, want single AADHAAR match", got)
	}
}

func TestResolveEqualConfidenceCategoryPriorityWins(t *testing.T) {
	a := Match{Category: constants.CategoryName, Start: 5, End: 15, Confidence: 0.8}
	b := Match{Category: constants.CategoryPAN, Start: 5, End: 15, Confidence: 0.8}

	got := Resolve([]Match{a, b})
	if len(got) != 1 || got[0].Category != constants.CategoryPAN {
		t.Fatalf("Resolve() = %+v, want single PAN match", got)
	}
}

func TestResolveCollapsesDuplicates(t *testing.T) {
	m := Match{Category: constants.CategoryEmail, Start: 3, End: 20, Confidence: 0.95}

	got := Resolve([]Match{m, m, m})
	if len(got) != 1 {
		t.Fatalf("Resolve() kept %d matches, want 1", len(got))
	}
}

func TestResolveKeepsDisjointSpansSorted(t *testing.T) {
	a := Match{Category: constants.CategoryEmail, Start: 30, End: 45, Confidence: 0.95}
	b := Match{Category: constants.CategoryPhone, Start: 0, End: 10, Confidence: 0.75}

	got := Resolve([]Match{a, b})
	if len(got) != 2 {
		t.Fatalf("Resolve() kept %d matches, want 2", len(got))
	}
	if got[0].Start != 0 || got[1].Start != 30 {
		t.Fatalf("Resolve() not sorted by start: %+v", got)
	}
}

func TestPatternDetectorValidatesChecksum(t *testing.T) {
	d := &PatternDetector{
		category:   constants.CategoryAadhaar,
		re:         reAadhaar,
		confidence: 0.95,
		validate:   ValidAadhaar,
	}

	got := d.Detect("id 2345 6789 0124 on file")
	if len(got) != 1 {
		t.Fatalf("Detect() found %d matches, want 1", len(got))
	}
	if !got[0].Validated || got[0].Confidence != 0.95 {
		t.Fatalf("valid checksum should keep full confidence: %+v", got[0])
	}
}

func TestPatternDetectorDowngradesFailedChecksum(t *testing.T) {
	d := &PatternDetector{
		category:   constants.CategoryAadhaar,
		re:         reAadhaar,
		confidence: 0.95,
		validate:   ValidAadhaar,
	}

	got := d.Detect("id 3345 6789 0124 on file")
	if len(got) != 1 {
		t.Fatalf("Detect() found %d matches, want 1 downgraded match", len(got))
	}
	if got[0].Validated {
		t.Fatalf("failed checksum must not be marked validated")
	}
	want := 0.95 * downgradeFactor
	if got[0].Confidence != want {
		t.Fatalf("Confidence = %v, want %v", got[0].Confidence, want)
	}
}

func TestScannerScanResolvesAcrossDetectors(t *testing.T) {
	s := NewScanner(nil)
	text := "aadhaar 234567890124 card 4111111111111111 mail a@b.example"

	got := s.Scan(context.Background(), text)
	byCat := map[constants.PIICategory]int{}
	for _, m := range got {
		byCat[m.Category]++
	}
	if byCat[constants.CategoryAadhaar] != 1 {
		t.Fatalf("want one AADHAAR match, got %+v", got)
	}
	if byCat[constants.CategoryCreditCard] != 1 {
		t.Fatalf("want one CREDIT_CARD match, got %+v", got)
	}
	if byCat[constants.CategoryEmail] != 1 {
		t.Fatalf("want one EMAIL match, got %+v", got)
	}
	// the broad account-number pattern overlaps both numbers and must lose
	if byCat[constants.CategoryBankAccount] != 0 {
		t.Fatalf("BANK_ACCOUNT should lose overlap resolution, got %+v", got)
	}
}

func TestScannerMergesRecognizerEntities(t *testing.T) {
	text := "Anita Desai paid via a@b.example"
	rec := &fakeRecognizer{matches: []Match{
		{Category: constants.CategoryName, Start: 0, End: 11, Value: "Anita Desai", Confidence: 0.85},
	}}
	s := NewScanner(nil, WithRecognizer(rec))

	got := s.Scan(context.Background(), text)
	if !rec.called {
		t.Fatalf("recognizer was not consulted")
	}
	var haveName bool
	for _, m := range got {
		if m.Category == constants.CategoryName {
			haveName = true
		}
	}
	if !haveName {
		t.Fatalf("recognizer entity missing from results: %+v", got)
	}
}

func TestScannerIgnoresRecognizerStructuredClaims(t *testing.T) {
	text := "ref code 1234 5678 9999"
	rec := &fakeRecognizer{matches: []Match{
		{Category: constants.CategoryAadhaar, Start: 9, End: 23, Value: "1234 5678 9999", Confidence: 0.99},
		{Category: constants.CategoryName, Start: 0, End: 3, Value: "ref", Confidence: 0.8},
	}}
	s := NewScanner(nil, WithRecognizer(rec))

	got := s.Scan(context.Background(), text)
	for _, m := range got {
		if m.Category == constants.CategoryAadhaar && m.Start == 9 && m.End == 23 && m.Confidence == 0.99 {
			t.Fatalf("unvalidated recognizer aadhaar claim kept: %+v", got)
		}
	}
}

func TestScannerDegradesWhenRecognizerFails(t *testing.T) {
	rec := &fakeRecognizer{err: errors.New("connection refused")}
	s := NewScanner(nil, WithRecognizer(rec))

	got := s.Scan(context.Background(), "reach me at a@b.example")
	if len(got) != 1 || got[0].Category != constants.CategoryEmail {
		t.Fatalf("pattern results should survive recognizer failure: %+v", got)
	}
}

func TestParseCustomCategories(t *testing.T) {
	raw := []byte(`[{"name": "EMPLOYEE_ID", "pattern": "EMP-\\d{6}", "confidence": 0.8}]`)

	ds, err := ParseCustomCategories(raw)
	if err != nil {
		t.Fatalf("ParseCustomCategories() error = %v", err)
	}
	if len(ds) != 1 {
		t.Fatalf("got %d detectors, want 1", len(ds))
	}
	if ds[0].Category() != "CUSTOM_EMPLOYEE_ID" {
		t.Fatalf("Category() = %s, want CUSTOM_EMPLOYEE_ID", ds[0].Category())
	}

	got := ds[0].Detect("badge EMP-123456 issued")
	if len(got) != 1 || got[0].Value != "EMP-123456" {
		t.Fatalf("custom detector result: %+v", got)
	}
	if got[0].Confidence != 0.8 {
		t.Fatalf("Confidence = %v, want 0.8", got[0].Confidence)
	}
}

func TestParseCustomCategoriesRejectsBadInput(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"lowercase name", `[{"name": "employee_id", "pattern": "x"}]`},
		{"missing pattern", `[{"name": "EMPLOYEE_ID"}]`},
		{"extra property", `[{"name": "EMPLOYEE_ID", "pattern": "x", "mode": "fast"}]`},
		{"bad regex", `[{"name": "EMPLOYEE_ID", "pattern": "(["}]`},
		{"not an array", `{"name": "EMPLOYEE_ID", "pattern": "x"}`},
	}
	for _, tt := range tests {
		if _, err := ParseCustomCategories([]byte(tt.raw)); err == nil {
			t.Errorf("%s: expected error, got nil", tt.name)
		}
	}
}
