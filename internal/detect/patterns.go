package detect

import (
	"regexp"

	"github.com/affu-79/PII-SENTINEL-BACKEND-sub002/constants"
)

// PatternDetector matches one category by regex, optionally followed by an
// independent validation pass. Matches failing validation are downgraded in
// confidence rather than discarded, so consumers choose their own
// precision/recall trade-off.
type PatternDetector struct {
	category   constants.PIICategory
	re         *regexp.Regexp
	confidence float64
	// validate confirms checksum/format; nil means pattern-only category.
	validate func(string) bool
}

// downgradeFactor scales confidence for spans that look right but fail
// their checksum.
const downgradeFactor = 0.4

func (d *PatternDetector) Category() constants.PIICategory { return d.category }

func (d *PatternDetector) Detect(text string) []Match {
	idxs := d.re.FindAllStringIndex(text, -1)
	if len(idxs) == 0 {
		return nil
	}
	out := make([]Match, 0, len(idxs))
	for _, ix := range idxs {
		value := text[ix[0]:ix[1]]
		m := Match{
			Category:   d.category,
			Start:      ix[0],
			End:        ix[1],
			Value:      value,
			Confidence: d.confidence,
		}
		if d.validate != nil {
			if d.validate(value) {
				m.Validated = true
			} else {
				m.Confidence = d.confidence * downgradeFactor
			}
		}
		out = append(out, m)
	}
	return out
}

// Confidence scores follow the usual regex-specificity convention:
// 0.90+ highly specific format, 0.70-0.89 moderately specific, below 0.70
// broad with real false-positive risk.
var (
	reAadhaar    = regexp.MustCompile(`\b\d{4}[ -]?\d{4}[ -]?\d{4}\b`)
	rePAN        = regexp.MustCompile(`\b[A-Z]{5}\d{4}[A-Z]\b`)
	reCreditCard = regexp.MustCompile(`\b(?:\d[ -]?){12,18}\d\b`)
	reIFSC       = regexp.MustCompile(`\b[A-Z]{4}0[A-Z0-9]{6}\b`)
	reBankAcct   = regexp.MustCompile(`\b\d{9,18}\b`)
	rePhone      = regexp.MustCompile(`(?:\+91[ -]?)?\b[6-9]\d{4}[ -]?\d{5}\b`)
	reEmail      = regexp.MustCompile(`\b[A-Za-z0-9._%+\-]+@[A-Za-z0-9.\-]+\.[A-Za-z]{2,}\b`)
)

// builtinDetectors is the fixed ordered list. Structured,
// checksum-verifiable categories run first.
func builtinDetectors() []Detector {
	return []Detector{
		&PatternDetector{category: constants.CategoryAadhaar, re: reAadhaar, confidence: 0.95, validate: ValidAadhaar},
		&PatternDetector{category: constants.CategoryPAN, re: rePAN, confidence: 0.92, validate: ValidPAN},
		&PatternDetector{category: constants.CategoryCreditCard, re: reCreditCard, confidence: 0.90, validate: ValidLuhn},
		&PatternDetector{category: constants.CategoryIFSC, re: reIFSC, confidence: 0.90, validate: ValidIFSC},
		&PatternDetector{category: constants.CategoryEmail, re: reEmail, confidence: 0.95},
		&PatternDetector{category: constants.CategoryPhone, re: rePhone, confidence: 0.75},
		&PatternDetector{category: constants.CategoryBankAccount, re: reBankAcct, confidence: 0.55},
	}
}
