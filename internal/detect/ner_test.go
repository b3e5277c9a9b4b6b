package detect

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/affu-79/PII-SENTINEL-BACKEND-sub002/constants"
)

func TestHTTPRecognizerParsesEntities(t *testing.T) {
	text := "Anita Desai lives in Pune"
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req nerRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Text != text {
			t.Errorf("unexpected request body: %+v err=%v", req, err)
		}
		_ = json.NewEncoder(w).Encode([]nerEntity{
			{Start: 0, End: 11, Label: "PERSON", Score: 0.93},
			{Start: 21, End: 25, Label: "GPE", Score: 0.88},
			{Start: 12, End: 17, Label: "VERB", Score: 0.99},  // unmapped label, dropped
			{Start: 90, End: 95, Label: "PERSON", Score: 0.9}, // out of range, dropped
		})
	}))
	defer srv.Close()

	rec := NewHTTPRecognizer(srv.URL, time.Second, nil)
	got, err := rec.RecognizeEntities(context.Background(), text)
	if err != nil {
		t.Fatalf("RecognizeEntities() error = %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d matches, want 2: %+v", len(got), got)
	}
	if got[0].Category != constants.CategoryName || got[0].Value != "Anita Desai" {
		t.Fatalf("first match = %+v", got[0])
	}
	if got[1].Category != constants.CategoryAddress || got[1].Value != "Pune" {
		t.Fatalf("second match = %+v", got[1])
	}
}

func TestHTTPRecognizerNonOKStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "model loading", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	rec := NewHTTPRecognizer(srv.URL, time.Second, nil)
	if _, err := rec.RecognizeEntities(context.Background(), "text"); err == nil {
		t.Fatalf("expected error on non-200 response")
	}
}

func TestHTTPRecognizerUnreachable(t *testing.T) {
	rec := NewHTTPRecognizer("http://127.0.0.1:1", 200*time.Millisecond, nil)
	if _, err := rec.RecognizeEntities(context.Background(), "text"); err == nil {
		t.Fatalf("expected transport error")
	}
}
