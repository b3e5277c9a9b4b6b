package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/affu-79/PII-SENTINEL-BACKEND-sub002/constants"
	"github.com/affu-79/PII-SENTINEL-BACKEND-sub002/internal/common"
	"github.com/affu-79/PII-SENTINEL-BACKEND-sub002/internal/pipeline"
)

// SubmitDoc is one document handed to Submit. A zero ID gets assigned.
type SubmitDoc struct {
	ID       uuid.UUID
	Filename string
	Kind     constants.FileKind
	Content  []byte
}

type task struct {
	jobID uuid.UUID
	docID uuid.UUID
	in    pipeline.Input
	ctx   context.Context // job-scoped; cancelled by Cancel
}

// Scheduler fans document work out across a fixed-size worker pool. Submit
// returns immediately; completion is observed via GetResult polling. A task
// failure is caught at the task boundary and recorded as that document's
// terminal status, never aborting siblings.
type Scheduler struct {
	proc       pipeline.Runner
	logger     *slog.Logger
	workers    int
	docTimeout time.Duration
	maxRetries int
	onComplete func(JobResult)

	ch   chan task
	wg   sync.WaitGroup
	once sync.Once

	mu      sync.RWMutex
	jobs    map[uuid.UUID]*job
	batches map[uuid.UUID]*batch
	closed  bool
}

type Option func(*Scheduler)

func WithWorkers(n int) Option {
	return func(s *Scheduler) {
		if n > 0 {
			s.workers = n
		}
	}
}

func WithQueueDepth(n int) Option {
	return func(s *Scheduler) {
		if n > 0 {
			s.ch = make(chan task, n)
		}
	}
}

func WithDocTimeout(d time.Duration) Option {
	return func(s *Scheduler) {
		if d > 0 {
			s.docTimeout = d
		}
	}
}

func WithMaxRetries(n int) Option {
	return func(s *Scheduler) {
		if n >= 0 {
			s.maxRetries = n
		}
	}
}

// WithCompletionHook registers a callback invoked once per job, after every
// constituent document reached a terminal status.
func WithCompletionHook(fn func(JobResult)) Option {
	return func(s *Scheduler) { s.onComplete = fn }
}

func NewScheduler(proc pipeline.Runner, logger *slog.Logger, opts ...Option) *Scheduler {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Scheduler{
		proc:       proc,
		logger:     logger,
		workers:    16,
		docTimeout: 3 * time.Minute,
		maxRetries: 2,
		ch:         make(chan task, 512),
		jobs:       make(map[uuid.UUID]*job),
		batches:    make(map[uuid.UUID]*batch),
	}
	for _, o := range opts {
		o(s)
	}
	s.start()
	return s
}

func (s *Scheduler) start() {
	s.once.Do(func() {
		for i := 0; i < s.workers; i++ {
			s.wg.Add(1)
			go func(workerID int) {
				defer s.wg.Done()
				s.logger.Info("worker started", "worker_id", workerID)
				for t := range s.ch {
					s.runTask(workerID, t)
				}
				s.logger.Info("worker stopped", "worker_id", workerID)
			}(i + 1)
		}
	})
}

// Submit enqueues one job over the given documents and returns its ID
// immediately. When the queue cannot absorb all documents the whole
// submission is rejected with CapacityExceeded; nothing is accepted and
// later dropped.
func (s *Scheduler) Submit(batchID uuid.UUID, docs []SubmitDoc, maskReq *pipeline.MaskRequest) (uuid.UUID, error) {
	if len(docs) == 0 {
		return uuid.Nil, fmt.Errorf("%w: empty document set", common.ErrInvalidInput)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return uuid.Nil, fmt.Errorf("%w: scheduler shut down", common.ErrCapacityExceeded)
	}
	if len(s.ch)+len(docs) > cap(s.ch) {
		s.logger.Warn("queue saturated, rejecting submission",
			"queued", len(s.ch), "capacity", cap(s.ch), "requested", len(docs))
		return uuid.Nil, fmt.Errorf("%w: queue depth %d cannot take %d documents",
			common.ErrCapacityExceeded, cap(s.ch), len(docs))
	}

	jobCtx, cancel := context.WithCancel(context.Background())
	j := &job{
		id:        uuid.New(),
		batchID:   batchID,
		docs:      make(map[uuid.UUID]*docState, len(docs)),
		order:     make([]uuid.UUID, 0, len(docs)),
		inputs:    make(map[uuid.UUID]pipeline.Input, len(docs)),
		remaining: len(docs),
		status:    constants.JobRunning,
		cancel:    cancel,
		createdAt: time.Now(),
	}

	b, ok := s.batches[batchID]
	if !ok {
		b = newBatch(batchID)
		s.batches[batchID] = b
	}

	tasks := make([]task, 0, len(docs))
	for _, d := range docs {
		if d.ID == uuid.Nil {
			d.ID = uuid.New()
		}
		j.docs[d.ID] = &docState{status: constants.DocQueued}
		j.order = append(j.order, d.ID)
		in := pipeline.Input{
			DocumentID: d.ID,
			Filename:   d.Filename,
			Kind:       d.Kind,
			Content:    d.Content,
			Mask:       maskReq,
		}
		j.inputs[d.ID] = in
		tasks = append(tasks, task{jobID: j.id, docID: d.ID, ctx: jobCtx, in: in})
	}
	s.jobs[j.id] = j
	b.total.Add(int64(len(docs)))
	b.inFlight.Add(int64(len(docs)))

	// capacity was reserved above under the lock; these sends cannot block
	for _, t := range tasks {
		s.ch <- t
	}

	s.logger.Info("job submitted", "job_id", j.id, "batch_id", batchID, "documents", len(docs))
	return j.id, nil
}

// runTask executes one document. Worker crashes (panics) are converted into
// a recorded per-document failure so no document is ever silently dropped.
func (s *Scheduler) runTask(workerID int, t task) {
	j := s.job(t.jobID)
	if j == nil {
		return
	}

	j.mu.Lock()
	ds, ok := j.docs[t.docID]
	if !ok || ds.status != constants.DocQueued {
		// at-most-once: a task only runs from QUEUED
		j.mu.Unlock()
		return
	}
	if j.cancelled {
		ds.status = constants.DocCancelled
		j.mu.Unlock()
		s.finishDoc(j, t.docID, nil)
		return
	}
	j.mu.Unlock()

	ctx, cancel := context.WithTimeout(t.ctx, s.docTimeout)
	defer cancel()

	var res pipeline.Result
	func() {
		defer func() {
			if r := recover(); r != nil {
				s.logger.Error("worker panic recovered", "worker_id", workerID,
					"doc_id", t.docID, "panic", r)
				res = pipeline.Result{
					DocumentID: t.docID,
					Status:     constants.DocFailed,
					Failure: &pipeline.Failure{
						Code:    "DETECTION_FAILURE",
						Message: fmt.Sprintf("worker panic: %v", r),
					},
				}
			}
		}()
		res = s.proc.Process(ctx, t.in, func(st constants.DocumentStatus) {
			j.setDocStatus(t.docID, st)
		})
	}()

	j.mu.Lock()
	ds.result = &res
	if constants.CanTransition(ds.status, res.Status) || ds.status == res.Status {
		ds.status = res.Status
	} else {
		ds.status = constants.DocFailed
	}
	j.mu.Unlock()

	s.finishDoc(j, t.docID, &res)
}

// finishDoc updates batch counters and completes the job when the last
// document lands.
func (s *Scheduler) finishDoc(j *job, docID uuid.UUID, res *pipeline.Result) {
	b := s.batchFor(j.batchID)

	j.mu.Lock()
	ds := j.docs[docID]
	status := ds.status
	j.remaining--
	done := j.remaining == 0
	if done {
		j.completedAt = time.Now()
		if j.cancelled {
			j.status = constants.JobCancelled
		} else {
			j.status = constants.JobDone
		}
	}
	j.mu.Unlock()

	if b != nil {
		b.inFlight.Add(-1)
		switch status {
		case constants.DocDone:
			b.succeeded.Add(1)
			if res != nil {
				for _, m := range res.Matches {
					b.addCategory(m.Category, 1)
				}
			}
		case constants.DocCancelled:
			b.cancelled.Add(1)
		default:
			b.failed.Add(1)
		}
	}

	if done {
		s.logger.Info("job complete", "job_id", j.id, "status", j.status)
		if s.onComplete != nil {
			s.onComplete(j.snapshot())
		}
	}
}

// GetResult is a non-blocking poll. It returns NotFound for unknown jobs;
// an in-progress job is reported with RUNNING status and the current
// per-document states.
func (s *Scheduler) GetResult(jobID uuid.UUID) (JobResult, error) {
	j := s.job(jobID)
	if j == nil {
		return JobResult{}, fmt.Errorf("%w: job %s", common.ErrNotFound, jobID)
	}
	return j.snapshot(), nil
}

// Progress reports every document's current status. Poll hook for the API
// layer.
func (s *Scheduler) Progress(jobID uuid.UUID) (map[uuid.UUID]constants.DocumentStatus, error) {
	j := s.job(jobID)
	if j == nil {
		return nil, fmt.Errorf("%w: job %s", common.ErrNotFound, jobID)
	}
	j.mu.RLock()
	defer j.mu.RUnlock()
	out := make(map[uuid.UUID]constants.DocumentStatus, len(j.docs))
	for id, ds := range j.docs {
		out[id] = ds.status
	}
	return out, nil
}

// GetBatchAnalysis aggregates counts by PII category across all completed
// documents of the batch.
func (s *Scheduler) GetBatchAnalysis(batchID uuid.UUID) (BatchAnalysis, error) {
	b := s.batchFor(batchID)
	if b == nil {
		return BatchAnalysis{}, fmt.Errorf("%w: batch %s", common.ErrNotFound, batchID)
	}
	return b.analysis(), nil
}

// Cancel stops a job. Finished documents keep their results; in-flight
// tasks stop at their next checkpoint; queued documents are marked
// cancelled when drained. Terminal per-document outcomes are never altered.
func (s *Scheduler) Cancel(jobID uuid.UUID) error {
	j := s.job(jobID)
	if j == nil {
		return fmt.Errorf("%w: job %s", common.ErrNotFound, jobID)
	}
	j.mu.Lock()
	already := j.cancelled || j.status != constants.JobRunning
	if !already {
		j.cancelled = true
	}
	j.mu.Unlock()
	if already {
		return nil
	}
	j.cancel()
	s.logger.Info("job cancelled", "job_id", jobID)
	return nil
}

// Retry re-queues one failed document, bounded by the configured retry
// budget so permanently malformed input cannot loop forever.
func (s *Scheduler) Retry(jobID, docID uuid.UUID) error {
	j := s.job(jobID)
	if j == nil {
		return fmt.Errorf("%w: job %s", common.ErrNotFound, jobID)
	}

	// reserve queue capacity first so a rejected retry leaves no state behind
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed || len(s.ch) >= cap(s.ch) {
		return common.ErrCapacityExceeded
	}

	j.mu.Lock()
	ds, ok := j.docs[docID]
	if !ok {
		j.mu.Unlock()
		return fmt.Errorf("%w: document %s", common.ErrNotFound, docID)
	}
	if ds.status != constants.DocFailed {
		j.mu.Unlock()
		return fmt.Errorf("%w: document %s is %s, only FAILED documents retry",
			common.ErrInvalidInput, docID, ds.status)
	}
	if ds.retries >= s.maxRetries {
		j.mu.Unlock()
		return fmt.Errorf("%w: document %s exhausted %d retries",
			common.ErrInvalidInput, docID, s.maxRetries)
	}
	retryIn, hasIn := j.inputs[docID]
	if !hasIn {
		j.mu.Unlock()
		return fmt.Errorf("%w: document %s has no stored input", common.ErrNotFound, docID)
	}
	ds.retries++
	ds.status = constants.DocQueued
	ds.result = nil
	j.remaining++
	j.status = constants.JobRunning
	j.completedAt = time.Time{}
	j.mu.Unlock()

	if b := s.batches[j.batchID]; b != nil {
		b.failed.Add(-1)
		b.inFlight.Add(1)
	}

	// capacity was reserved above; this send cannot block
	s.ch <- task{jobID: jobID, docID: docID, in: retryIn, ctx: context.Background()}

	s.logger.Info("document requeued", "job_id", jobID, "doc_id", docID)
	return nil
}

// Shutdown drains the pool. Queued tasks still run; ctx bounds the wait.
func (s *Scheduler) Shutdown(ctx context.Context) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	close(s.ch)
	s.mu.Unlock()

	done := make(chan struct{})
	go func() { defer close(done); s.wg.Wait() }()
	select {
	case <-done:
		s.logger.Info("scheduler stopped")
	case <-ctx.Done():
		s.logger.Warn("scheduler shutdown timed out", "error", ctx.Err())
	}
}

func (s *Scheduler) job(id uuid.UUID) *job {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.jobs[id]
}

func (s *Scheduler) batchFor(id uuid.UUID) *batch {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.batches[id]
}
