package repository

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/affu-79/PII-SENTINEL-BACKEND-sub002/constants"
	"github.com/affu-79/PII-SENTINEL-BACKEND-sub002/gen/ent"
	entdoc "github.com/affu-79/PII-SENTINEL-BACKEND-sub002/gen/ent/document"
)

type DocumentRepository interface {
	Create(ctx context.Context, batchID uuid.UUID, filename string, kind constants.FileKind,
		size int, contentHash []byte, location string) (*ent.Document, error)
	FindByHash(ctx context.Context, batchID uuid.UUID, contentHash []byte) (*ent.Document, error)
	SetStatus(ctx context.Context, id uuid.UUID, status constants.DocumentStatus) error
	FinishFailure(ctx context.Context, id uuid.UUID, retries int, code, message string) error
	FinishSuccess(ctx context.Context, id uuid.UUID, retries int) error
	ListByBatch(ctx context.Context, batchID uuid.UUID) ([]*ent.Document, error)
}

type documentRepo struct {
	ent *ent.Client
	log *slog.Logger
}

func NewDocumentRepository(entc *ent.Client, log *slog.Logger) DocumentRepository {
	return &documentRepo{ent: entc, log: log}
}

func (r *documentRepo) Create(ctx context.Context, batchID uuid.UUID, filename string,
	kind constants.FileKind, size int, contentHash []byte, location string) (*ent.Document, error) {
	d, err := r.ent.Document.
		Create().
		SetBatchID(batchID).
		SetFilename(filename).
		SetKind(string(kind)).
		SetByteSize(size).
		SetContentHash(contentHash).
		SetStorageLocation(location).
		Save(ctx)
	if err != nil {
		r.log.Error("document create failed", "batch_id", batchID, "filename", filename, "err", err)
		return nil, err
	}
	r.log.Info("document created", "doc_id", d.ID, "batch_id", batchID, "kind", kind)
	return d, nil
}

func (r *documentRepo) FindByHash(ctx context.Context, batchID uuid.UUID, contentHash []byte) (*ent.Document, error) {
	return r.ent.Document.Query().
		Where(entdoc.BatchID(batchID), entdoc.ContentHash(contentHash)).
		Only(ctx)
}

func (r *documentRepo) SetStatus(ctx context.Context, id uuid.UUID, status constants.DocumentStatus) error {
	_, err := r.ent.Document.
		UpdateOneID(id).
		SetStatus(string(status)).
		Save(ctx)
	if err != nil {
		r.log.Error("document status update failed", "doc_id", id, "status", status, "err", err)
	}
	return err
}

func (r *documentRepo) FinishFailure(ctx context.Context, id uuid.UUID, retries int, code, message string) error {
	_, err := r.ent.Document.
		UpdateOneID(id).
		SetStatus(string(constants.DocFailed)).
		SetRetryCount(retries).
		SetFailureCode(code).
		SetFailureMessage(message).
		SetCompletedAt(time.Now()).
		Save(ctx)
	if err != nil {
		r.log.Error("document finish(FAILED) failed", "doc_id", id, "err", err)
		return err
	}
	r.log.Warn("document finished (FAILED)", "doc_id", id, "code", code)
	return nil
}

func (r *documentRepo) FinishSuccess(ctx context.Context, id uuid.UUID, retries int) error {
	_, err := r.ent.Document.
		UpdateOneID(id).
		SetStatus(string(constants.DocDone)).
		SetRetryCount(retries).
		SetCompletedAt(time.Now()).
		Save(ctx)
	if err != nil {
		r.log.Error("document finish(DONE) failed", "doc_id", id, "err", err)
		return err
	}
	return nil
}

func (r *documentRepo) ListByBatch(ctx context.Context, batchID uuid.UUID) ([]*ent.Document, error) {
	return r.ent.Document.Query().
		Where(entdoc.BatchID(batchID)).
		Order(ent.Asc(entdoc.FieldUploadedAt)).
		All(ctx)
}
