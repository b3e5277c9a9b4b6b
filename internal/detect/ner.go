package detect

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/affu-79/PII-SENTINEL-BACKEND-sub002/constants"
)

// EntityRecognizer is the capability contract for model-backed free-text
// categories (names, addresses). The scanner is agnostic to which model
// serves it.
type EntityRecognizer interface {
	RecognizeEntities(ctx context.Context, text string) ([]Match, error)
}

// HTTPRecognizer talks to an external entity-recognition service over a
// small JSON contract. Any model server exposing this shape can back it.
type HTTPRecognizer struct {
	url    string
	client *http.Client
	logger *slog.Logger
}

func NewHTTPRecognizer(url string, timeout time.Duration, logger *slog.Logger) *HTTPRecognizer {
	if logger == nil {
		logger = slog.Default()
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &HTTPRecognizer{
		url:    url,
		client: &http.Client{Timeout: timeout},
		logger: logger,
	}
}

type nerRequest struct {
	Text string `json:"text"`
}

type nerEntity struct {
	Start int     `json:"start"`
	End   int     `json:"end"`
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

func (r *HTTPRecognizer) RecognizeEntities(ctx context.Context, text string) ([]Match, error) {
	reqID := uuid.New().String()
	start := time.Now()

	bs, err := json.Marshal(nerRequest{Text: text})
	if err != nil {
		return nil, fmt.Errorf("encode json: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.url, bytes.NewReader(bs))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		r.logger.Error("ner.http.send_error", "req_id", reqID, "error", err,
			"elapsed_ms", time.Since(start).Milliseconds())
		return nil, err
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			r.logger.Warn("ner.http.response_body_close_error", "req_id", reqID, "error", err)
		}
	}()

	raw, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("ner backend status %d", resp.StatusCode)
	}

	var ents []nerEntity
	if err := json.Unmarshal(raw, &ents); err != nil {
		return nil, fmt.Errorf("decode entities: %w", err)
	}

	r.logger.Debug("ner.http.response", "req_id", reqID, "entities", len(ents),
		"elapsed_ms", time.Since(start).Milliseconds())

	out := make([]Match, 0, len(ents))
	for _, e := range ents {
		cat, ok := mapEntityLabel(e.Label)
		if !ok || e.Start < 0 || e.End > len(text) || e.Start >= e.End {
			continue
		}
		out = append(out, Match{
			Category:   cat,
			Start:      e.Start,
			End:        e.End,
			Value:      text[e.Start:e.End],
			Confidence: e.Score,
		})
	}
	return out, nil
}

func mapEntityLabel(label string) (constants.PIICategory, bool) {
	switch label {
	case "PERSON", "PER", "NAME":
		return constants.CategoryName, true
	case "LOC", "GPE", "ADDRESS", "LOCATION":
		return constants.CategoryAddress, true
	default:
		return "", false
	}
}
