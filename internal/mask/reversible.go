package mask

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"

	"github.com/affu-79/PII-SENTINEL-BACKEND-sub002/internal/common"
	"github.com/affu-79/PII-SENTINEL-BACKEND-sub002/internal/detect"
)

// KDF and AEAD parameters. Argon2id is deliberately memory-hard; key
// derivation never runs on a latency-sensitive path.
const (
	saltLen      = 16
	keyLen       = 32
	nonceLen     = 12
	argonTime    = 1
	argonMemory  = 64 * 1024 // KiB
	argonThreads = 4
)

func deriveKey(password string, salt []byte) []byte {
	return argon2.IDKey([]byte(password), salt, argonTime, argonMemory, argonThreads, keyLen)
}

func newAEAD(key []byte) (cipher.AEAD, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	return cipher.NewGCM(block)
}

// spanToken builds the opaque deterministic replacement for span i. The
// index follows offset order, so tokens are stable for a given match set.
func spanToken(m detect.Match, i int) string {
	return fmt.Sprintf("⟦%s:%d⟧", m.Category, i)
}

// Reversible replaces each matched span with a deterministic token and
// returns the side-channel record that allows exact reconstruction. The
// password itself is never stored; only the random salt survives. Matches
// must be non-overlapping and sorted by ascending start offset (the
// detector guarantees both).
func (mk *Masker) Reversible(text string, matches []detect.Match, password string) (string, *Record, error) {
	if password == "" {
		return "", nil, fmt.Errorf("%w: empty password", common.ErrMaskingFailure)
	}
	for i := 1; i < len(matches); i++ {
		if matches[i].Start < matches[i-1].End {
			return "", nil, fmt.Errorf("%w: overlapping spans", common.ErrMaskingFailure)
		}
	}

	salt := make([]byte, saltLen)
	if _, err := rand.Read(salt); err != nil {
		return "", nil, fmt.Errorf("%w: %v", common.ErrMaskingFailure, err)
	}
	aead, err := newAEAD(deriveKey(password, salt))
	if err != nil {
		return "", nil, fmt.Errorf("%w: %v", common.ErrMaskingFailure, err)
	}

	rec := &Record{Mode: ModeReversibleToken, Salt: salt, Spans: make([]SpanRecord, 0, len(matches))}
	var b strings.Builder
	prev := 0
	for i, m := range matches {
		if m.Start < prev || m.End > len(text) {
			return "", nil, fmt.Errorf("%w: span out of range", common.ErrMaskingFailure)
		}
		token := spanToken(m, i)
		nonce := make([]byte, nonceLen)
		if _, err := rand.Read(nonce); err != nil {
			return "", nil, fmt.Errorf("%w: %v", common.ErrMaskingFailure, err)
		}
		// the token doubles as associated data, binding each ciphertext to
		// its position in the masked document
		ct := aead.Seal(nil, nonce, []byte(text[m.Start:m.End]), []byte(token))

		b.WriteString(text[prev:m.Start])
		b.WriteString(token)
		prev = m.End

		rec.Spans = append(rec.Spans, SpanRecord{
			Category:   m.Category,
			Token:      token,
			Nonce:      nonce,
			Ciphertext: ct,
		})
	}
	b.WriteString(text[prev:])

	mk.logger.Debug("reversible mask applied", "spans", len(rec.Spans))
	return b.String(), rec, nil
}

// Unmask re-derives the key from the supplied password and record salt and
// reconstructs the original text. All spans decrypt before any substitution
// happens: a single failed authentication tag fails the whole document, so a
// wrong password can never leak a partial reconstruction.
func (mk *Masker) Unmask(maskedText string, rec *Record, password string) (string, error) {
	if rec == nil || rec.Mode != ModeReversibleToken {
		return "", fmt.Errorf("%w: record is not reversible", common.ErrMaskingFailure)
	}
	if password == "" {
		return "", fmt.Errorf("%w: empty password", common.ErrMaskingFailure)
	}
	aead, err := newAEAD(deriveKey(password, rec.Salt))
	if err != nil {
		return "", fmt.Errorf("%w: %v", common.ErrMaskingFailure, err)
	}

	originals := make([]string, len(rec.Spans))
	for i, sp := range rec.Spans {
		pt, err := aead.Open(nil, sp.Nonce, sp.Ciphertext, []byte(sp.Token))
		if err != nil {
			return "", common.ErrAuthenticationFailure
		}
		originals[i] = string(pt)
	}

	out := maskedText
	for i, sp := range rec.Spans {
		if !strings.Contains(out, sp.Token) {
			return "", fmt.Errorf("%w: token %q missing from document", common.ErrMaskingFailure, sp.Token)
		}
		out = strings.Replace(out, sp.Token, originals[i], 1)
	}
	return out, nil
}
