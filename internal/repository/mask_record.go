package repository

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/google/uuid"

	"github.com/affu-79/PII-SENTINEL-BACKEND-sub002/gen/ent"
	entrec "github.com/affu-79/PII-SENTINEL-BACKEND-sub002/gen/ent/maskrecord"
	"github.com/affu-79/PII-SENTINEL-BACKEND-sub002/internal/mask"
)

type MaskRecordRepository interface {
	Save(ctx context.Context, documentID uuid.UUID, rec *mask.Record) (*ent.MaskRecord, error)
	Latest(ctx context.Context, documentID uuid.UUID) (*mask.Record, error)
}

type maskRecordRepo struct {
	ent *ent.Client
	log *slog.Logger
}

func NewMaskRecordRepository(entc *ent.Client, log *slog.Logger) MaskRecordRepository {
	return &maskRecordRepo{ent: entc, log: log}
}

// Save persists the side channel. The irreversible mode stores mode only;
// spans and salt stay empty so nothing can reconstruct the original.
func (r *maskRecordRepo) Save(ctx context.Context, documentID uuid.UUID, rec *mask.Record) (*ent.MaskRecord, error) {
	create := r.ent.MaskRecord.
		Create().
		SetDocumentID(documentID).
		SetMode(string(rec.Mode))
	if rec.Mode == mask.ModeReversibleToken {
		spans, err := json.Marshal(rec.Spans)
		if err != nil {
			return nil, err
		}
		create = create.SetSalt(rec.Salt).SetSpans(json.RawMessage(spans))
	}
	row, err := create.Save(ctx)
	if err != nil {
		r.log.Error("mask_record save failed", "doc_id", documentID, "err", err)
		return nil, err
	}
	r.log.Info("mask_record saved", "doc_id", documentID, "mode", rec.Mode)
	return row, nil
}

func (r *maskRecordRepo) Latest(ctx context.Context, documentID uuid.UUID) (*mask.Record, error) {
	row, err := r.ent.MaskRecord.Query().
		Where(entrec.DocumentID(documentID)).
		Order(ent.Desc(entrec.FieldCreatedAt)).
		First(ctx)
	if err != nil {
		return nil, err
	}
	rec := &mask.Record{Mode: mask.Mode(row.Mode), Salt: row.Salt}
	if len(row.Spans) > 0 {
		if err := json.Unmarshal(row.Spans, &rec.Spans); err != nil {
			return nil, err
		}
	}
	return rec, nil
}
