package scheduler

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/affu-79/PII-SENTINEL-BACKEND-sub002/constants"
	"github.com/affu-79/PII-SENTINEL-BACKEND-sub002/internal/detect"
	"github.com/affu-79/PII-SENTINEL-BACKEND-sub002/internal/mask"
	"github.com/affu-79/PII-SENTINEL-BACKEND-sub002/internal/pipeline"
)

// docState tracks one document inside a job. Only the worker executing the
// document writes it; readers take the job lock for snapshots.
type docState struct {
	status  constants.DocumentStatus
	result  *pipeline.Result
	retries int
}

// job is the unit a caller polls for completion.
type job struct {
	id      uuid.UUID
	batchID uuid.UUID

	mu     sync.RWMutex
	docs   map[uuid.UUID]*docState
	order  []uuid.UUID
	inputs map[uuid.UUID]pipeline.Input // retained for explicit retries

	// remaining counts documents not yet terminal; the job completes when
	// it reaches zero, regardless of completion order.
	remaining   int
	status      constants.JobStatus
	cancelled   bool
	cancel      func() // cancels the job-scoped context
	createdAt   time.Time
	completedAt time.Time
}

// setDocStatus applies a transition if the state machine allows it.
// Illegal transitions (e.g. progress callbacks racing a cancellation) are
// dropped rather than corrupting a terminal state.
func (j *job) setDocStatus(docID uuid.UUID, to constants.DocumentStatus) {
	j.mu.Lock()
	defer j.mu.Unlock()
	ds, ok := j.docs[docID]
	if !ok {
		return
	}
	if constants.CanTransition(ds.status, to) {
		ds.status = to
	}
}

// DocumentOutcome is one document's entry in a JobResult: success with
// matches and optional mask record, or failure with its error category.
type DocumentOutcome struct {
	DocumentID uuid.UUID                `json:"document_id"`
	Status     constants.DocumentStatus `json:"status"`
	Matches    []detect.Match           `json:"matches,omitempty"`
	MaskedText string                   `json:"masked_text,omitempty"`
	MaskRecord *mask.Record             `json:"mask_record,omitempty"`
	Failure    *pipeline.Failure        `json:"failure,omitempty"`
	Retries    int                      `json:"retries"`
}

// JobResult is the aggregate outcome of one job. It never omits a document:
// every submitted document appears with a terminal or in-flight status.
type JobResult struct {
	JobID       uuid.UUID           `json:"job_id"`
	BatchID     uuid.UUID           `json:"batch_id"`
	Status      constants.JobStatus `json:"status"`
	CreatedAt   time.Time           `json:"created_at"`
	CompletedAt time.Time           `json:"completed_at,omitempty"`
	Documents   []DocumentOutcome   `json:"documents"`
}

// snapshot builds a JobResult under the job lock, in submission order.
func (j *job) snapshot() JobResult {
	j.mu.RLock()
	defer j.mu.RUnlock()
	res := JobResult{
		JobID:       j.id,
		BatchID:     j.batchID,
		Status:      j.status,
		CreatedAt:   j.createdAt,
		CompletedAt: j.completedAt,
		Documents:   make([]DocumentOutcome, 0, len(j.order)),
	}
	for _, docID := range j.order {
		ds := j.docs[docID]
		out := DocumentOutcome{DocumentID: docID, Status: ds.status, Retries: ds.retries}
		if r := ds.result; r != nil {
			out.Matches = r.Matches
			out.MaskedText = r.MaskedText
			out.MaskRecord = r.MaskRecord
			out.Failure = r.Failure
		}
		res.Documents = append(res.Documents, out)
	}
	return res
}
