package repository

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/affu-79/PII-SENTINEL-BACKEND-sub002/gen/ent"
	entbatch "github.com/affu-79/PII-SENTINEL-BACKEND-sub002/gen/ent/batch"
)

type BatchRepository interface {
	Create(ctx context.Context, name, ownerRef string) (*ent.Batch, error)
	Get(ctx context.Context, id uuid.UUID) (*ent.Batch, error)
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
	RefreshCounters(ctx context.Context, id uuid.UUID, total, succeeded, failed, inFlight int) error
}

type batchRepo struct {
	ent *ent.Client
	log *slog.Logger
}

func NewBatchRepository(entc *ent.Client, log *slog.Logger) BatchRepository {
	return &batchRepo{ent: entc, log: log}
}

func (r *batchRepo) Create(ctx context.Context, name, ownerRef string) (*ent.Batch, error) {
	b, err := r.ent.Batch.
		Create().
		SetName(name).
		SetOwnerRef(ownerRef).
		Save(ctx)
	if err != nil {
		r.log.Error("batch create failed", "name", name, "err", err)
		return nil, err
	}
	r.log.Info("batch created", "batch_id", b.ID, "name", name)
	return b, nil
}

func (r *batchRepo) Get(ctx context.Context, id uuid.UUID) (*ent.Batch, error) {
	return r.ent.Batch.Get(ctx, id)
}

func (r *batchRepo) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	return r.ent.Batch.Query().Where(entbatch.ID(id)).Exist(ctx)
}

func (r *batchRepo) RefreshCounters(ctx context.Context, id uuid.UUID, total, succeeded, failed, inFlight int) error {
	_, err := r.ent.Batch.
		UpdateOneID(id).
		SetTotalDocuments(total).
		SetSucceeded(succeeded).
		SetFailed(failed).
		SetInFlight(inFlight).
		Save(ctx)
	if err != nil {
		r.log.Error("batch counter refresh failed", "batch_id", id, "err", err)
	}
	return err
}
