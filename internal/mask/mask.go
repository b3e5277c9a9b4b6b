package mask

import (
	"log/slog"

	"github.com/affu-79/PII-SENTINEL-BACKEND-sub002/constants"
)

// Mode selects exactly one masking behavior per operation.
type Mode string

const (
	// ModeIrreversibleBlur destroys span content: pixel blur on image pages,
	// fixed category placeholders on text pages. Nothing persisted permits
	// reconstruction.
	ModeIrreversibleBlur Mode = "IRREVERSIBLE_BLUR"
	// ModeReversibleToken substitutes opaque tokens and keeps an encrypted
	// side channel keyed by a caller-supplied password.
	ModeReversibleToken Mode = "REVERSIBLE_TOKEN"
)

// SpanRecord is the side-channel entry for one reversibly masked span. The
// ciphertext carries the AEAD tag; each span decrypts independently.
type SpanRecord struct {
	Category   constants.PIICategory `json:"category"`
	Token      string                `json:"token"`
	Nonce      []byte                `json:"nonce"`
	Ciphertext []byte                `json:"ciphertext"`
}

// Record is one masking operation's outcome for a document. Irreversible
// records never carry salt or spans.
type Record struct {
	Mode  Mode         `json:"mode"`
	Salt  []byte       `json:"salt,omitempty"`
	Spans []SpanRecord `json:"spans,omitempty"`
}

// Masker owns both masking modes.
type Masker struct {
	logger *slog.Logger
}

func NewMasker(logger *slog.Logger) *Masker {
	if logger == nil {
		logger = slog.Default()
	}
	return &Masker{logger: logger}
}
