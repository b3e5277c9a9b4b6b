package server

import (
	"context"
	"crypto/sha256"
	"errors"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/affu-79/PII-SENTINEL-BACKEND-sub002/constants"
	v1 "github.com/affu-79/PII-SENTINEL-BACKEND-sub002/gen/proto/pii/v1"
	"github.com/affu-79/PII-SENTINEL-BACKEND-sub002/internal/common"
	"github.com/affu-79/PII-SENTINEL-BACKEND-sub002/internal/mask"
	"github.com/affu-79/PII-SENTINEL-BACKEND-sub002/internal/pipeline"
	"github.com/affu-79/PII-SENTINEL-BACKEND-sub002/internal/repository"
	"github.com/affu-79/PII-SENTINEL-BACKEND-sub002/internal/scheduler"
	"github.com/affu-79/PII-SENTINEL-BACKEND-sub002/internal/storage"
)

type JobsService struct {
	v1.UnimplementedJobsServiceServer
	sched     *scheduler.Scheduler
	batchRepo repository.BatchRepository
	docsRepo  repository.DocumentRepository
	jobsRepo  repository.ProcessJobRepository
	store     storage.ObjectStore
	logger    *slog.Logger
}

func NewJobsService(sched *scheduler.Scheduler, batchRepo repository.BatchRepository,
	docsRepo repository.DocumentRepository, jobsRepo repository.ProcessJobRepository,
	store storage.ObjectStore, logger *slog.Logger) *JobsService {
	return &JobsService{
		sched:     sched,
		batchRepo: batchRepo,
		docsRepo:  docsRepo,
		jobsRepo:  jobsRepo,
		store:     store,
		logger:    logger,
	}
}

// SubmitDocuments implements v1.JobsServiceServer. Documents are persisted
// and enqueued as one job; content already seen in the batch (same hash) is
// reported as deduplicated and not processed again.
func (s *JobsService) SubmitDocuments(ctx context.Context, req *v1.SubmitDocumentsRequest) (*v1.SubmitDocumentsResponse, error) {
	batchID, err := parseID(req.GetBatchId(), "batch_id")
	if err != nil {
		return nil, err
	}
	if len(req.GetDocuments()) == 0 {
		return nil, status.Error(codes.InvalidArgument, "at least one document is required")
	}
	ctx = common.WithBatchID(ctx, batchID.String())
	if exists, _ := s.batchRepo.Exists(ctx, batchID); !exists {
		s.logger.Error("batch not found for submit", "batch_id", batchID,
			"req_id", common.RequestIDFromContext(ctx))
		return nil, status.Error(codes.NotFound, "batch not found")
	}

	maskReq, err := parseMaskRequest(req.GetMaskMode(), req.GetPassword())
	if err != nil {
		return nil, err
	}

	resp := &v1.SubmitDocumentsResponse{
		Results: make([]*v1.SubmitResult, 0, len(req.GetDocuments())),
	}
	subs := make([]scheduler.SubmitDoc, 0, len(req.GetDocuments()))
	for _, up := range req.GetDocuments() {
		name := strings.TrimSpace(up.GetFilename())
		if name == "" || len(up.GetContent()) == 0 {
			return nil, status.Error(codes.InvalidArgument, "every document needs a filename and content")
		}
		kind := constants.KindUnknown
		if ct := strings.TrimSpace(up.GetContentType()); ct != "" {
			kind = constants.MapMIMEToKind(ct)
		}
		if kind == constants.KindUnknown {
			kind = constants.MapExtToKind(filepath.Ext(name))
		}
		if kind == constants.KindUnknown {
			return nil, status.Errorf(codes.InvalidArgument, "unsupported file type: %s", name)
		}

		hash := sha256.Sum256(up.GetContent())
		if existing, err := s.docsRepo.FindByHash(ctx, batchID, hash[:]); err == nil && existing != nil {
			s.logger.Info("document deduplicated", "batch_id", batchID, "filename", name, "doc_id", existing.ID)
			resp.Results = append(resp.Results, &v1.SubmitResult{
				DocumentId:   existing.ID.String(),
				Filename:     name,
				Deduplicated: true,
			})
			continue
		}

		location, err := s.store.Store(ctx, up.GetContent())
		if err != nil {
			s.logger.Error("document store failed", "batch_id", batchID, "filename", name, "error", err)
			return nil, common.InternalErrorf("store document: %v", err)
		}
		d, err := s.docsRepo.Create(ctx, batchID, name, kind, len(up.GetContent()), hash[:], location)
		if err != nil {
			return nil, common.InternalErrorf("persist document: %v", err)
		}

		subs = append(subs, scheduler.SubmitDoc{
			ID:       d.ID,
			Filename: name,
			Kind:     kind,
			Content:  up.GetContent(),
		})
		resp.Results = append(resp.Results, &v1.SubmitResult{
			DocumentId: d.ID.String(),
			Filename:   name,
		})
	}

	if len(subs) == 0 {
		// every upload deduplicated: nothing to run
		return resp, nil
	}

	jobID, err := s.sched.Submit(batchID, subs, maskReq)
	if err != nil {
		if errors.Is(err, common.ErrCapacityExceeded) {
			s.logger.Warn("submit rejected, queue full", "batch_id", batchID, "docs", len(subs))
			return nil, status.Error(codes.ResourceExhausted, "pipeline queue is full, retry later")
		}
		return nil, common.InternalErrorf("submit: %v", err)
	}
	if _, err := s.jobsRepo.Start(ctx, jobID, batchID); err != nil {
		s.logger.Error("process_job row create failed", "job_id", jobID, "error", err)
	}

	s.logger.Info("job submitted", "job_id", jobID, "batch_id", batchID, "docs", len(subs))
	resp.JobId = jobID.String()
	return resp, nil
}

// GetJobResult implements v1.JobsServiceServer. Match values are never put
// on the wire, only categories and offsets.
func (s *JobsService) GetJobResult(ctx context.Context, req *v1.GetJobResultRequest) (*v1.JobResultResponse, error) {
	jobID, err := parseID(req.GetJobId(), "job_id")
	if err != nil {
		return nil, err
	}
	res, err := s.sched.GetResult(jobID)
	if err != nil {
		return nil, status.Error(codes.NotFound, "job not found")
	}
	return toJobResultResponse(res), nil
}

func (s *JobsService) GetJobProgress(ctx context.Context, req *v1.GetJobProgressRequest) (*v1.JobProgressResponse, error) {
	jobID, err := parseID(req.GetJobId(), "job_id")
	if err != nil {
		return nil, err
	}
	statuses, err := s.sched.Progress(jobID)
	if err != nil {
		return nil, status.Error(codes.NotFound, "job not found")
	}
	out := &v1.JobProgressResponse{
		JobId:     jobID.String(),
		Documents: make([]*v1.DocumentProgress, 0, len(statuses)),
	}
	for docID, st := range statuses {
		out.Documents = append(out.Documents, &v1.DocumentProgress{
			DocumentId: docID.String(),
			Status:     string(st),
		})
	}
	return out, nil
}

func (s *JobsService) CancelJob(ctx context.Context, req *v1.CancelJobRequest) (*v1.CancelJobResponse, error) {
	jobID, err := parseID(req.GetJobId(), "job_id")
	if err != nil {
		return nil, err
	}
	if err := s.sched.Cancel(jobID); err != nil {
		return nil, status.Error(codes.NotFound, "job not found")
	}
	s.logger.Info("job cancel requested", "job_id", jobID)
	return &v1.CancelJobResponse{}, nil
}

func (s *JobsService) RetryDocument(ctx context.Context, req *v1.RetryDocumentRequest) (*v1.RetryDocumentResponse, error) {
	jobID, err := parseID(req.GetJobId(), "job_id")
	if err != nil {
		return nil, err
	}
	docID, err := parseID(req.GetDocumentId(), "document_id")
	if err != nil {
		return nil, err
	}
	if err := s.sched.Retry(jobID, docID); err != nil {
		switch {
		case errors.Is(err, common.ErrNotFound):
			return nil, status.Error(codes.NotFound, "job or document not found")
		case errors.Is(err, common.ErrCapacityExceeded):
			return nil, status.Error(codes.ResourceExhausted, "pipeline queue is full, retry later")
		default:
			return nil, status.Errorf(codes.FailedPrecondition, "retry: %v", err)
		}
	}
	s.logger.Info("document retry requeued", "job_id", jobID, "doc_id", docID)
	return &v1.RetryDocumentResponse{}, nil
}

func parseMaskRequest(mode, password string) (*pipeline.MaskRequest, error) {
	switch strings.TrimSpace(mode) {
	case "":
		if password != "" {
			return nil, status.Error(codes.InvalidArgument, "password requires a mask_mode")
		}
		return nil, nil
	case string(mask.ModeIrreversibleBlur):
		if password != "" {
			return nil, status.Error(codes.InvalidArgument, "irreversible masking does not take a password")
		}
		return &pipeline.MaskRequest{Mode: mask.ModeIrreversibleBlur}, nil
	case string(mask.ModeReversibleToken):
		if password == "" {
			return nil, status.Error(codes.InvalidArgument, "reversible masking requires a password")
		}
		return &pipeline.MaskRequest{Mode: mask.ModeReversibleToken, Password: password}, nil
	default:
		return nil, status.Errorf(codes.InvalidArgument, "unknown mask_mode: %s", mode)
	}
}

func toJobResultResponse(res scheduler.JobResult) *v1.JobResultResponse {
	out := &v1.JobResultResponse{
		JobId:     res.JobID.String(),
		BatchId:   res.BatchID.String(),
		Status:    string(res.Status),
		CreatedAt: res.CreatedAt.UTC().Format(time.RFC3339),
		Documents: make([]*v1.DocumentOutcome, 0, len(res.Documents)),
	}
	if !res.CompletedAt.IsZero() {
		out.CompletedAt = res.CompletedAt.UTC().Format(time.RFC3339)
	}
	for _, d := range res.Documents {
		doc := &v1.DocumentOutcome{
			DocumentId: d.DocumentID.String(),
			Status:     string(d.Status),
			MaskedText: d.MaskedText,
			Retries:    int32(d.Retries),
			Matches:    make([]*v1.PiiMatch, 0, len(d.Matches)),
		}
		if d.Failure != nil {
			doc.FailureCode = d.Failure.Code
			doc.FailureMessage = d.Failure.Message
		}
		for _, m := range d.Matches {
			doc.Matches = append(doc.Matches, &v1.PiiMatch{
				Category:   string(m.Category),
				Start:      int32(m.Start),
				End:        int32(m.End),
				Confidence: m.Confidence,
				Validated:  m.Validated,
			})
		}
		out.Documents = append(out.Documents, doc)
	}
	return out
}
