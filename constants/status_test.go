package constants

import "testing"

func TestCanTransition(t *testing.T) {
	tests := []struct {
		name string
		from DocumentStatus
		to   DocumentStatus
		want bool
	}{
		{"queued to extracting", DocQueued, DocExtracting, true},
		{"extracting to detecting", DocExtracting, DocDetecting, true},
		{"detecting to done skips masking", DocDetecting, DocDone, true},
		{"masking to done", DocMasking, DocDone, true},
		{"any to failed", DocExtracting, DocFailed, true},
		{"failed requeue via retry", DocFailed, DocQueued, true},
		{"no backward extracting", DocDetecting, DocExtracting, false},
		{"done is terminal", DocDone, DocQueued, false},
		{"cancelled is terminal", DocCancelled, DocQueued, false},
		{"no skip to masking", DocQueued, DocMasking, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CanTransition(tt.from, tt.to); got != tt.want {
				t.Errorf("CanTransition(%s, %s) = %v, want %v", tt.from, tt.to, got, tt.want)
			}
		})
	}
}

func TestIsTerminal(t *testing.T) {
	for _, s := range []DocumentStatus{DocDone, DocFailed, DocCancelled} {
		if !s.IsTerminal() {
			t.Errorf("%s should be terminal", s)
		}
	}
	for _, s := range []DocumentStatus{DocQueued, DocExtracting, DocDetecting, DocMasking} {
		if s.IsTerminal() {
			t.Errorf("%s should not be terminal", s)
		}
	}
}

func TestCategoryPriority(t *testing.T) {
	if CategoryPriority(CategoryAadhaar) <= CategoryPriority(CategoryName) {
		t.Error("structured PII must outrank heuristic PII")
	}
	if !IsCustomCategory(PIICategory("CUSTOM_EMPLOYEE_ID")) {
		t.Error("CUSTOM_ prefix should mark custom categories")
	}
	if p := CategoryPriority(PIICategory("CUSTOM_EMPLOYEE_ID")); p <= CategoryPriority(CategoryName) {
		t.Errorf("custom categories should outrank free-text ones, got %d", p)
	}
}
