package scheduler

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/affu-79/PII-SENTINEL-BACKEND-sub002/constants"
	"github.com/affu-79/PII-SENTINEL-BACKEND-sub002/internal/common"
	"github.com/affu-79/PII-SENTINEL-BACKEND-sub002/internal/detect"
	"github.com/affu-79/PII-SENTINEL-BACKEND-sub002/internal/pipeline"
)

// stubRunner drives documents through the normal status transitions and
// delegates the outcome to fn.
type stubRunner struct {
	fn func(ctx context.Context, in pipeline.Input) pipeline.Result
}

func (r *stubRunner) Process(ctx context.Context, in pipeline.Input, progress func(constants.DocumentStatus)) pipeline.Result {
	progress(constants.DocExtracting)
	progress(constants.DocDetecting)
	return r.fn(ctx, in)
}

func succeed(in pipeline.Input, matches ...detect.Match) pipeline.Result {
	return pipeline.Result{DocumentID: in.DocumentID, Status: constants.DocDone, Matches: matches}
}

func fail(in pipeline.Input, code string) pipeline.Result {
	return pipeline.Result{
		DocumentID: in.DocumentID,
		Status:     constants.DocFailed,
		Failure:    &pipeline.Failure{Code: code, Message: code},
	}
}

func docs(n int) []SubmitDoc {
	out := make([]SubmitDoc, n)
	for i := range out {
		out[i] = SubmitDoc{
			ID:       uuid.New(),
			Filename: fmt.Sprintf("doc-%03d.txt", i),
			Kind:     constants.KindText,
			Content:  []byte("content"),
		}
	}
	return out
}

func waitForJob(t *testing.T, done <-chan JobResult) JobResult {
	t.Helper()
	select {
	case res := <-done:
		return res
	case <-time.After(10 * time.Second):
		t.Fatalf("job did not complete in time")
		return JobResult{}
	}
}

func TestSchedulerProcessesAllDocumentsBounded(t *testing.T) {
	const workers = 16

	var inFlight, peak atomic.Int64
	runner := &stubRunner{fn: func(ctx context.Context, in pipeline.Input) pipeline.Result {
		cur := inFlight.Add(1)
		for {
			p := peak.Load()
			if cur <= p || peak.CompareAndSwap(p, cur) {
				break
			}
		}
		time.Sleep(time.Millisecond)
		inFlight.Add(-1)
		return succeed(in)
	}}

	done := make(chan JobResult, 1)
	s := NewScheduler(runner, nil,
		WithWorkers(workers),
		WithQueueDepth(256),
		WithCompletionHook(func(r JobResult) { done <- r }),
	)
	defer s.Shutdown(context.Background())

	batchID := uuid.New()
	if _, err := s.Submit(batchID, docs(200), nil); err != nil {
		t.Fatalf("Submit() error = %v", err)
	}

	res := waitForJob(t, done)
	if res.Status != constants.JobDone {
		t.Fatalf("job status = %s, want DONE", res.Status)
	}
	if len(res.Documents) != 200 {
		t.Fatalf("got %d document outcomes, want 200", len(res.Documents))
	}
	for _, d := range res.Documents {
		if d.Status != constants.DocDone {
			t.Fatalf("document %s finished %s, want DONE", d.DocumentID, d.Status)
		}
	}
	if p := peak.Load(); p > workers {
		t.Fatalf("observed %d concurrent documents, pool bound is %d", p, workers)
	}
}

func TestSubmitRejectsWhenQueueCannotAbsorb(t *testing.T) {
	block := make(chan struct{})
	runner := &stubRunner{fn: func(ctx context.Context, in pipeline.Input) pipeline.Result {
		<-block
		return succeed(in)
	}}
	s := NewScheduler(runner, nil, WithWorkers(1), WithQueueDepth(4))
	defer func() {
		close(block)
		s.Shutdown(context.Background())
	}()

	_, err := s.Submit(uuid.New(), docs(5), nil)
	if !errors.Is(err, common.ErrCapacityExceeded) {
		t.Fatalf("Submit() error = %v, want ErrCapacityExceeded", err)
	}
}

func TestSubmitRejectionAcceptsNothing(t *testing.T) {
	runner := &stubRunner{fn: func(ctx context.Context, in pipeline.Input) pipeline.Result {
		return succeed(in)
	}}
	s := NewScheduler(runner, nil, WithWorkers(1), WithQueueDepth(2))
	defer s.Shutdown(context.Background())

	batchID := uuid.New()
	if _, err := s.Submit(batchID, docs(10), nil); !errors.Is(err, common.ErrCapacityExceeded) {
		t.Fatalf("Submit() error = %v, want ErrCapacityExceeded", err)
	}
	if _, err := s.GetBatchAnalysis(batchID); !errors.Is(err, common.ErrNotFound) {
		t.Fatalf("rejected submission must leave no batch state, got err = %v", err)
	}
}

func TestBatchAnalysisAggregates(t *testing.T) {
	runner := &stubRunner{fn: func(ctx context.Context, in pipeline.Input) pipeline.Result {
		switch {
		case strings.HasPrefix(in.Filename, "doc-000"):
			return succeed(in,
				detect.Match{Category: constants.CategoryPhone, Start: 0, End: 10},
				detect.Match{Category: constants.CategoryPhone, Start: 20, End: 30},
			)
		case strings.HasPrefix(in.Filename, "doc-001"):
			return succeed(in)
		default:
			return fail(in, "EXTRACTION_FAILURE")
		}
	}}

	done := make(chan JobResult, 1)
	s := NewScheduler(runner, nil,
		WithWorkers(4),
		WithCompletionHook(func(r JobResult) { done <- r }),
	)
	defer s.Shutdown(context.Background())

	batchID := uuid.New()
	if _, err := s.Submit(batchID, docs(3), nil); err != nil {
		t.Fatalf("Submit() error = %v", err)
	}
	waitForJob(t, done)

	a, err := s.GetBatchAnalysis(batchID)
	if err != nil {
		t.Fatalf("GetBatchAnalysis() error = %v", err)
	}
	if a.Total != 3 || a.Succeeded != 2 || a.Failed != 1 || a.InFlight != 0 {
		t.Fatalf("analysis = %+v, want total 3 / succeeded 2 / failed 1", a)
	}
	if a.ByCategory[constants.CategoryPhone] != 2 {
		t.Fatalf("ByCategory[PHONE] = %d, want 2", a.ByCategory[constants.CategoryPhone])
	}
}

func TestCancelStopsQueuedDocumentsKeepsFinished(t *testing.T) {
	started := make(chan struct{}, 1)
	release := make(chan struct{})
	var once sync.Once
	runner := &stubRunner{fn: func(ctx context.Context, in pipeline.Input) pipeline.Result {
		once.Do(func() { started <- struct{}{} })
		<-release
		return succeed(in)
	}}

	done := make(chan JobResult, 1)
	s := NewScheduler(runner, nil,
		WithWorkers(1),
		WithCompletionHook(func(r JobResult) { done <- r }),
	)
	defer s.Shutdown(context.Background())

	jobID, err := s.Submit(uuid.New(), docs(5), nil)
	if err != nil {
		t.Fatalf("Submit() error = %v", err)
	}
	<-started

	if err := s.Cancel(jobID); err != nil {
		t.Fatalf("Cancel() error = %v", err)
	}
	// idempotent
	if err := s.Cancel(jobID); err != nil {
		t.Fatalf("second Cancel() error = %v", err)
	}
	close(release)

	res := waitForJob(t, done)
	if res.Status != constants.JobCancelled {
		t.Fatalf("job status = %s, want CANCELLED", res.Status)
	}
	finished, cancelled := 0, 0
	for _, d := range res.Documents {
		switch d.Status {
		case constants.DocDone:
			finished++
		case constants.DocCancelled:
			cancelled++
		default:
			t.Fatalf("unexpected document status %s", d.Status)
		}
	}
	if finished != 1 || cancelled != 4 {
		t.Fatalf("finished %d / cancelled %d, want 1 / 4", finished, cancelled)
	}
}

func TestRetryReplaysFailedDocumentOnce(t *testing.T) {
	var attempts atomic.Int64
	runner := &stubRunner{fn: func(ctx context.Context, in pipeline.Input) pipeline.Result {
		if attempts.Add(1) == 1 {
			return fail(in, "EXTRACTION_FAILURE")
		}
		return succeed(in)
	}}

	done := make(chan JobResult, 2)
	s := NewScheduler(runner, nil,
		WithWorkers(1),
		WithMaxRetries(1),
		WithCompletionHook(func(r JobResult) { done <- r }),
	)
	defer s.Shutdown(context.Background())

	d := docs(1)
	jobID, err := s.Submit(uuid.New(), d, nil)
	if err != nil {
		t.Fatalf("Submit() error = %v", err)
	}
	first := waitForJob(t, done)
	if first.Documents[0].Status != constants.DocFailed {
		t.Fatalf("first run status = %s, want FAILED", first.Documents[0].Status)
	}

	if err := s.Retry(jobID, d[0].ID); err != nil {
		t.Fatalf("Retry() error = %v", err)
	}
	second := waitForJob(t, done)
	if second.Documents[0].Status != constants.DocDone {
		t.Fatalf("retried status = %s, want DONE", second.Documents[0].Status)
	}
	if second.Documents[0].Retries != 1 {
		t.Fatalf("Retries = %d, want 1", second.Documents[0].Retries)
	}

	// a DONE document never retries
	if err := s.Retry(jobID, d[0].ID); !errors.Is(err, common.ErrInvalidInput) {
		t.Fatalf("Retry() on DONE document error = %v, want ErrInvalidInput", err)
	}
}

func TestRetryBudgetExhausts(t *testing.T) {
	runner := &stubRunner{fn: func(ctx context.Context, in pipeline.Input) pipeline.Result {
		return fail(in, "EXTRACTION_FAILURE")
	}}

	done := make(chan JobResult, 3)
	s := NewScheduler(runner, nil,
		WithWorkers(1),
		WithMaxRetries(1),
		WithCompletionHook(func(r JobResult) { done <- r }),
	)
	defer s.Shutdown(context.Background())

	d := docs(1)
	jobID, err := s.Submit(uuid.New(), d, nil)
	if err != nil {
		t.Fatalf("Submit() error = %v", err)
	}
	waitForJob(t, done)

	if err := s.Retry(jobID, d[0].ID); err != nil {
		t.Fatalf("first Retry() error = %v", err)
	}
	waitForJob(t, done)

	if err := s.Retry(jobID, d[0].ID); !errors.Is(err, common.ErrInvalidInput) {
		t.Fatalf("exhausted Retry() error = %v, want ErrInvalidInput", err)
	}
}

func TestRetryUnknownDocument(t *testing.T) {
	runner := &stubRunner{fn: func(ctx context.Context, in pipeline.Input) pipeline.Result {
		return succeed(in)
	}}
	done := make(chan JobResult, 1)
	s := NewScheduler(runner, nil, WithWorkers(1), WithCompletionHook(func(r JobResult) { done <- r }))
	defer s.Shutdown(context.Background())

	jobID, err := s.Submit(uuid.New(), docs(1), nil)
	if err != nil {
		t.Fatalf("Submit() error = %v", err)
	}
	waitForJob(t, done)

	if err := s.Retry(jobID, uuid.New()); !errors.Is(err, common.ErrNotFound) {
		t.Fatalf("Retry() error = %v, want ErrNotFound", err)
	}
	if err := s.Retry(uuid.New(), uuid.New()); !errors.Is(err, common.ErrNotFound) {
		t.Fatalf("Retry() unknown job error = %v, want ErrNotFound", err)
	}
}

func TestWorkerPanicBecomesDocumentFailure(t *testing.T) {
	runner := &stubRunner{fn: func(ctx context.Context, in pipeline.Input) pipeline.Result {
		panic("boom")
	}}
	done := make(chan JobResult, 1)
	s := NewScheduler(runner, nil, WithWorkers(2), WithCompletionHook(func(r JobResult) { done <- r }))
	defer s.Shutdown(context.Background())

	if _, err := s.Submit(uuid.New(), docs(2), nil); err != nil {
		t.Fatalf("Submit() error = %v", err)
	}

	res := waitForJob(t, done)
	if res.Status != constants.JobDone {
		t.Fatalf("job status = %s, want DONE despite panics", res.Status)
	}
	for _, d := range res.Documents {
		if d.Status != constants.DocFailed || d.Failure == nil {
			t.Fatalf("panicked document outcome = %+v, want recorded failure", d)
		}
	}
}

func TestGetResultAndProgressUnknownJob(t *testing.T) {
	runner := &stubRunner{fn: func(ctx context.Context, in pipeline.Input) pipeline.Result {
		return succeed(in)
	}}
	s := NewScheduler(runner, nil, WithWorkers(1))
	defer s.Shutdown(context.Background())

	if _, err := s.GetResult(uuid.New()); !errors.Is(err, common.ErrNotFound) {
		t.Fatalf("GetResult() error = %v, want ErrNotFound", err)
	}
	if _, err := s.Progress(uuid.New()); !errors.Is(err, common.ErrNotFound) {
		t.Fatalf("Progress() error = %v, want ErrNotFound", err)
	}
}

func TestSubmitAfterShutdownRejected(t *testing.T) {
	runner := &stubRunner{fn: func(ctx context.Context, in pipeline.Input) pipeline.Result {
		return succeed(in)
	}}
	s := NewScheduler(runner, nil, WithWorkers(1))
	s.Shutdown(context.Background())

	if _, err := s.Submit(uuid.New(), docs(1), nil); !errors.Is(err, common.ErrCapacityExceeded) {
		t.Fatalf("Submit() after shutdown error = %v, want ErrCapacityExceeded", err)
	}
}
