package constants

// DocumentStatus is the canonical status for rows in documents.
// Stable values (store these exact strings in DB).
type DocumentStatus string

const (
	DocQueued     DocumentStatus = "QUEUED"     // accepted, waiting for a worker
	DocExtracting DocumentStatus = "EXTRACTING" // text extraction / OCR in progress
	DocDetecting  DocumentStatus = "DETECTING"  // PII scan in progress
	DocMasking    DocumentStatus = "MASKING"    // masking engine in progress
	DocDone       DocumentStatus = "DONE"       // terminal success
	DocFailed     DocumentStatus = "FAILED"     // terminal failure (retryable on request)
	DocCancelled  DocumentStatus = "CANCELLED"  // terminal, job was cancelled
)

// docTransitions encodes the forward-only state machine. The single backward
// edge is FAILED -> QUEUED via an explicit retry.
var docTransitions = map[DocumentStatus][]DocumentStatus{
	DocQueued:     {DocExtracting, DocFailed, DocCancelled},
	DocExtracting: {DocDetecting, DocFailed, DocCancelled},
	DocDetecting:  {DocMasking, DocDone, DocFailed, DocCancelled},
	DocMasking:    {DocDone, DocFailed, DocCancelled},
	DocFailed:     {DocQueued},
}

// CanTransition reports whether from -> to is a legal document transition.
func CanTransition(from, to DocumentStatus) bool {
	for _, s := range docTransitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// IsTerminal reports whether a document status admits no further progress
// (retry excepted).
func (s DocumentStatus) IsTerminal() bool {
	return s == DocDone || s == DocFailed || s == DocCancelled
}

// JobStatus is the canonical status for rows in process_jobs.
type JobStatus string

const (
	JobRunning   JobStatus = "RUNNING"   // at least one document not terminal
	JobDone      JobStatus = "DONE"      // every document reached a terminal status
	JobCancelled JobStatus = "CANCELLED" // cancelled; remaining documents marked CANCELLED
)

// DocumentStatuses holds the allowed document status values for schema validation.
var DocumentStatuses = []string{
	string(DocQueued), string(DocExtracting), string(DocDetecting),
	string(DocMasking), string(DocDone), string(DocFailed), string(DocCancelled),
}

// JobStatuses holds the allowed job status values for schema validation.
var JobStatuses = []string{string(JobRunning), string(JobDone), string(JobCancelled)}
