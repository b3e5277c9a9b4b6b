package repository

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/affu-79/PII-SENTINEL-BACKEND-sub002/constants"
	"github.com/affu-79/PII-SENTINEL-BACKEND-sub002/gen/ent"
)

type ProcessJobRepository interface {
	Start(ctx context.Context, id, batchID uuid.UUID) (*ent.ProcessJob, error)
	Finish(ctx context.Context, id uuid.UUID, status constants.JobStatus, results any) error
	Get(ctx context.Context, id uuid.UUID) (*ent.ProcessJob, error)
}

type processJobRepo struct {
	ent *ent.Client
	log *slog.Logger
}

func NewProcessJobRepository(entc *ent.Client, log *slog.Logger) ProcessJobRepository {
	return &processJobRepo{ent: entc, log: log}
}

func (r *processJobRepo) Start(ctx context.Context, id, batchID uuid.UUID) (*ent.ProcessJob, error) {
	j, err := r.ent.ProcessJob.
		Create().
		SetID(id).
		SetBatchID(batchID).
		SetStatus(string(constants.JobRunning)).
		Save(ctx)
	if err != nil {
		r.log.Error("process_job start failed", "batch_id", batchID, "err", err)
		return nil, err
	}
	r.log.Info("process_job started", "job_id", j.ID, "batch_id", batchID)
	return j, nil
}

func (r *processJobRepo) Finish(ctx context.Context, id uuid.UUID, status constants.JobStatus, results any) error {
	var raw []byte
	if results != nil {
		if b, err := json.Marshal(results); err == nil {
			raw = b
		}
	}
	_, err := r.ent.ProcessJob.
		UpdateOneID(id).
		SetStatus(string(status)).
		SetResults(raw).
		SetCompletedAt(time.Now()).
		Save(ctx)
	if err != nil {
		r.log.Error("process_job finish failed", "job_id", id, "err", err)
		return err
	}
	r.log.Info("process_job finished", "job_id", id, "status", status)
	return nil
}

func (r *processJobRepo) Get(ctx context.Context, id uuid.UUID) (*ent.ProcessJob, error) {
	return r.ent.ProcessJob.Get(ctx, id)
}
