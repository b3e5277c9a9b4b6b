package detect

import (
	"context"
	"log/slog"
	"sort"

	"github.com/affu-79/PII-SENTINEL-BACKEND-sub002/constants"
)

// Match is one detected PII span. Offsets index into the document's
// normalized extracted text. Immutable once produced.
type Match struct {
	Category   constants.PIICategory
	Start      int
	End        int
	Value      string
	Confidence float64
	// Validated is true when an independent checksum/format pass confirmed
	// the span; heuristic-only matches leave it false.
	Validated bool
}

// Detector is one per-category scanner: pure text in, matches out.
type Detector interface {
	Category() constants.PIICategory
	Detect(text string) []Match
}

// Scanner runs a fixed ordered list of detectors plus an optional
// entity-recognition backend and resolves the combined match set.
type Scanner struct {
	detectors  []Detector
	recognizer EntityRecognizer // nil disables free-text name/address detection
	logger     *slog.Logger
}

type ScannerOption func(*Scanner)

// WithRecognizer attaches the model backend for free-text categories.
func WithRecognizer(r EntityRecognizer) ScannerOption {
	return func(s *Scanner) { s.recognizer = r }
}

// WithDetectors appends extra detectors (e.g. compiled custom categories)
// after the built-in ordered list.
func WithDetectors(ds ...Detector) ScannerOption {
	return func(s *Scanner) { s.detectors = append(s.detectors, ds...) }
}

func NewScanner(logger *slog.Logger, opts ...ScannerOption) *Scanner {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Scanner{detectors: builtinDetectors(), logger: logger}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Scan returns the resolved, deduplicated match set for text, sorted by
// ascending start offset. A recognizer transport error degrades to
// pattern-only results rather than failing the document.
func (s *Scanner) Scan(ctx context.Context, text string) []Match {
	var all []Match
	for _, d := range s.detectors {
		all = append(all, d.Detect(text)...)
	}
	if s.recognizer != nil {
		ents, err := s.recognizer.RecognizeEntities(ctx, text)
		if err != nil {
			s.logger.Warn("entity recognizer unavailable, pattern results only", "error", err)
		}
		for _, e := range ents {
			// structured categories come only from the checksum detectors;
			// a model claiming one cannot bypass validation
			if constants.IsStructured(e.Category) {
				continue
			}
			all = append(all, e)
		}
	}
	return Resolve(all)
}

// Resolve applies overlap resolution and deduplication: the longer span
// wins; ties break on higher confidence, then on category priority
// (structured PII outranks heuristic PII). Exact duplicates collapse to one.
func Resolve(matches []Match) []Match {
	if len(matches) == 0 {
		return nil
	}
	// strongest first, so one left-to-right sweep keeps winners
	ranked := make([]Match, len(matches))
	copy(ranked, matches)
	sort.SliceStable(ranked, func(i, j int) bool {
		a, b := ranked[i], ranked[j]
		if la, lb := a.End-a.Start, b.End-b.Start; la != lb {
			return la > lb
		}
		if a.Confidence != b.Confidence {
			return a.Confidence > b.Confidence
		}
		return constants.CategoryPriority(a.Category) > constants.CategoryPriority(b.Category)
	})

	var kept []Match
	for _, m := range ranked {
		conflict := false
		for _, k := range kept {
			if m.Start < k.End && k.Start < m.End {
				conflict = true
				break
			}
		}
		if !conflict {
			kept = append(kept, m)
		}
	}

	sort.Slice(kept, func(i, j int) bool { return kept[i].Start < kept[j].Start })
	return kept
}
