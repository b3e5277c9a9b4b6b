package server

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	v1 "github.com/affu-79/PII-SENTINEL-BACKEND-sub002/gen/proto/pii/v1"
	"github.com/affu-79/PII-SENTINEL-BACKEND-sub002/internal/common"
	"github.com/affu-79/PII-SENTINEL-BACKEND-sub002/internal/export"
	"github.com/affu-79/PII-SENTINEL-BACKEND-sub002/internal/repository"
	"github.com/affu-79/PII-SENTINEL-BACKEND-sub002/internal/scheduler"
)

type BatchService struct {
	v1.UnimplementedBatchServiceServer
	batchRepo repository.BatchRepository
	sched     *scheduler.Scheduler
	exporter  *export.Service
	logger    *slog.Logger
}

func NewBatchService(batchRepo repository.BatchRepository, sched *scheduler.Scheduler, exporter *export.Service, logger *slog.Logger) *BatchService {
	return &BatchService{
		batchRepo: batchRepo,
		sched:     sched,
		exporter:  exporter,
		logger:    logger,
	}
}

// CreateBatch implements v1.BatchServiceServer
func (s *BatchService) CreateBatch(ctx context.Context, req *v1.CreateBatchRequest) (*v1.CreateBatchResponse, error) {
	name := strings.TrimSpace(req.GetName())
	if err := common.NewValidator().
		Field("name", name, common.Required, common.MinLength(2)).
		Error(); err != nil {
		s.logger.Error("create batch request rejected", "error", err)
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	b, err := s.batchRepo.Create(ctx, name, strings.TrimSpace(req.GetOwnerRef()))
	if err != nil {
		return nil, common.InternalErrorf("create batch: %v", err)
	}
	s.logger.Info("batch created", "batch_id", b.ID, "name", name)

	return &v1.CreateBatchResponse{
		BatchId:   b.ID.String(),
		CreatedAt: b.CreatedAt.UTC().Format("2006-01-02T15:04:05Z07:00"),
	}, nil
}

// GetBatchAnalysis reports the live aggregate for one batch: document
// counters plus match counts per category.
func (s *BatchService) GetBatchAnalysis(ctx context.Context, req *v1.GetBatchAnalysisRequest) (*v1.BatchAnalysisResponse, error) {
	batchID, err := parseID(req.GetBatchId(), "batch_id")
	if err != nil {
		return nil, err
	}
	if exists, _ := s.batchRepo.Exists(ctx, batchID); !exists {
		return nil, status.Error(codes.NotFound, "batch not found")
	}

	a, err := s.sched.GetBatchAnalysis(batchID)
	if err != nil {
		return nil, status.Error(codes.NotFound, "no analysis for batch")
	}

	byCategory := make(map[string]int64, len(a.ByCategory))
	for c, n := range a.ByCategory {
		byCategory[string(c)] = int64(n)
	}
	return &v1.BatchAnalysisResponse{
		BatchId:    a.BatchID.String(),
		Total:      int64(a.Total),
		Succeeded:  int64(a.Succeeded),
		Failed:     int64(a.Failed),
		Cancelled:  int64(a.Cancelled),
		InFlight:   int64(a.InFlight),
		ByCategory: byCategory,
	}, nil
}

// ExportBatch returns an XLSX report for the batch.
func (s *BatchService) ExportBatch(ctx context.Context, req *v1.ExportBatchRequest) (*v1.ExportBatchResponse, error) {
	batchID, err := parseID(req.GetBatchId(), "batch_id")
	if err != nil {
		return nil, err
	}
	if exists, _ := s.batchRepo.Exists(ctx, batchID); !exists {
		return nil, status.Error(codes.NotFound, "batch not found")
	}

	analysis, err := s.sched.GetBatchAnalysis(batchID)
	if err != nil {
		// batch exists but never ran in this process: export rows only
		analysis = scheduler.BatchAnalysis{BatchID: batchID}
	}

	xlsx, err := s.exporter.ExportBatchXLSX(ctx, batchID, analysis)
	if err != nil {
		s.logger.Error("batch export failed", "batch_id", batchID, "error", err)
		return nil, common.InternalErrorf("export: %v", err)
	}
	return &v1.ExportBatchResponse{
		Filename: "batch-" + batchID.String() + ".xlsx",
		Xlsx:     xlsx,
	}, nil
}

func parseID(raw, field string) (uuid.UUID, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return uuid.Nil, status.Errorf(codes.InvalidArgument, "%s is required", field)
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, status.Errorf(codes.InvalidArgument, "%s must be a UUID", field)
	}
	return id, nil
}
