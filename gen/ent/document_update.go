// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/affu-79/PII-SENTINEL-BACKEND-sub002/gen/ent/batch"
	"github.com/affu-79/PII-SENTINEL-BACKEND-sub002/gen/ent/document"
	"github.com/affu-79/PII-SENTINEL-BACKEND-sub002/gen/ent/maskrecord"
	"github.com/affu-79/PII-SENTINEL-BACKEND-sub002/gen/ent/predicate"
	"github.com/google/uuid"
)

// DocumentUpdate is the builder for updating Document entities.
type DocumentUpdate struct {
	config
	hooks    []Hook
	mutation *DocumentMutation
}

// Where appends a list predicates to the DocumentUpdate builder.
func (_u *DocumentUpdate) Where(ps ...predicate.Document) *DocumentUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetBatchID sets the "batch_id" field.
func (_u *DocumentUpdate) SetBatchID(v uuid.UUID) *DocumentUpdate {
	_u.mutation.SetBatchID(v)
	return _u
}

// SetNillableBatchID sets the "batch_id" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableBatchID(v *uuid.UUID) *DocumentUpdate {
	if v != nil {
		_u.SetBatchID(*v)
	}
	return _u
}

// SetFilename sets the "filename" field.
func (_u *DocumentUpdate) SetFilename(v string) *DocumentUpdate {
	_u.mutation.SetFilename(v)
	return _u
}

// SetNillableFilename sets the "filename" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableFilename(v *string) *DocumentUpdate {
	if v != nil {
		_u.SetFilename(*v)
	}
	return _u
}

// SetKind sets the "kind" field.
func (_u *DocumentUpdate) SetKind(v string) *DocumentUpdate {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableKind(v *string) *DocumentUpdate {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetByteSize sets the "byte_size" field.
func (_u *DocumentUpdate) SetByteSize(v int) *DocumentUpdate {
	_u.mutation.ResetByteSize()
	_u.mutation.SetByteSize(v)
	return _u
}

// SetNillableByteSize sets the "byte_size" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableByteSize(v *int) *DocumentUpdate {
	if v != nil {
		_u.SetByteSize(*v)
	}
	return _u
}

// AddByteSize adds value to the "byte_size" field.
func (_u *DocumentUpdate) AddByteSize(v int) *DocumentUpdate {
	_u.mutation.AddByteSize(v)
	return _u
}

// SetContentHash sets the "content_hash" field.
func (_u *DocumentUpdate) SetContentHash(v []byte) *DocumentUpdate {
	_u.mutation.SetContentHash(v)
	return _u
}

// SetStorageLocation sets the "storage_location" field.
func (_u *DocumentUpdate) SetStorageLocation(v string) *DocumentUpdate {
	_u.mutation.SetStorageLocation(v)
	return _u
}

// SetNillableStorageLocation sets the "storage_location" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableStorageLocation(v *string) *DocumentUpdate {
	if v != nil {
		_u.SetStorageLocation(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *DocumentUpdate) SetStatus(v string) *DocumentUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableStatus(v *string) *DocumentUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetRetryCount sets the "retry_count" field.
func (_u *DocumentUpdate) SetRetryCount(v int) *DocumentUpdate {
	_u.mutation.ResetRetryCount()
	_u.mutation.SetRetryCount(v)
	return _u
}

// SetNillableRetryCount sets the "retry_count" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableRetryCount(v *int) *DocumentUpdate {
	if v != nil {
		_u.SetRetryCount(*v)
	}
	return _u
}

// AddRetryCount adds value to the "retry_count" field.
func (_u *DocumentUpdate) AddRetryCount(v int) *DocumentUpdate {
	_u.mutation.AddRetryCount(v)
	return _u
}

// SetFailureCode sets the "failure_code" field.
func (_u *DocumentUpdate) SetFailureCode(v string) *DocumentUpdate {
	_u.mutation.SetFailureCode(v)
	return _u
}

// SetNillableFailureCode sets the "failure_code" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableFailureCode(v *string) *DocumentUpdate {
	if v != nil {
		_u.SetFailureCode(*v)
	}
	return _u
}

// ClearFailureCode clears the value of the "failure_code" field.
func (_u *DocumentUpdate) ClearFailureCode() *DocumentUpdate {
	_u.mutation.ClearFailureCode()
	return _u
}

// SetFailureMessage sets the "failure_message" field.
func (_u *DocumentUpdate) SetFailureMessage(v string) *DocumentUpdate {
	_u.mutation.SetFailureMessage(v)
	return _u
}

// SetNillableFailureMessage sets the "failure_message" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableFailureMessage(v *string) *DocumentUpdate {
	if v != nil {
		_u.SetFailureMessage(*v)
	}
	return _u
}

// ClearFailureMessage clears the value of the "failure_message" field.
func (_u *DocumentUpdate) ClearFailureMessage() *DocumentUpdate {
	_u.mutation.ClearFailureMessage()
	return _u
}

// SetUploadedAt sets the "uploaded_at" field.
func (_u *DocumentUpdate) SetUploadedAt(v time.Time) *DocumentUpdate {
	_u.mutation.SetUploadedAt(v)
	return _u
}

// SetNillableUploadedAt sets the "uploaded_at" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableUploadedAt(v *time.Time) *DocumentUpdate {
	if v != nil {
		_u.SetUploadedAt(*v)
	}
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *DocumentUpdate) SetCompletedAt(v time.Time) *DocumentUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableCompletedAt(v *time.Time) *DocumentUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *DocumentUpdate) ClearCompletedAt() *DocumentUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetBatch sets the "batch" edge to the Batch entity.
func (_u *DocumentUpdate) SetBatch(v *Batch) *DocumentUpdate {
	return _u.SetBatchID(v.ID)
}

// AddMaskRecordIDs adds the "mask_records" edge to the MaskRecord entity by IDs.
func (_u *DocumentUpdate) AddMaskRecordIDs(ids ...uuid.UUID) *DocumentUpdate {
	_u.mutation.AddMaskRecordIDs(ids...)
	return _u
}

// AddMaskRecords adds the "mask_records" edges to the MaskRecord entity.
func (_u *DocumentUpdate) AddMaskRecords(v ...*MaskRecord) *DocumentUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddMaskRecordIDs(ids...)
}

// Mutation returns the DocumentMutation object of the builder.
func (_u *DocumentUpdate) Mutation() *DocumentMutation {
	return _u.mutation
}

// ClearBatch clears the "batch" edge to the Batch entity.
func (_u *DocumentUpdate) ClearBatch() *DocumentUpdate {
	_u.mutation.ClearBatch()
	return _u
}

// ClearMaskRecords clears all "mask_records" edges to the MaskRecord entity.
func (_u *DocumentUpdate) ClearMaskRecords() *DocumentUpdate {
	_u.mutation.ClearMaskRecords()
	return _u
}

// RemoveMaskRecordIDs removes the "mask_records" edge to MaskRecord entities by IDs.
func (_u *DocumentUpdate) RemoveMaskRecordIDs(ids ...uuid.UUID) *DocumentUpdate {
	_u.mutation.RemoveMaskRecordIDs(ids...)
	return _u
}

// RemoveMaskRecords removes "mask_records" edges to MaskRecord entities.
func (_u *DocumentUpdate) RemoveMaskRecords(v ...*MaskRecord) *DocumentUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveMaskRecordIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *DocumentUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DocumentUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *DocumentUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DocumentUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DocumentUpdate) check() error {
	if v, ok := _u.mutation.Filename(); ok {
		if err := document.FilenameValidator(v); err != nil {
			return &ValidationError{Name: "filename", err: fmt.Errorf(`ent: validator failed for field "Document.filename": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Kind(); ok {
		if err := document.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "Document.kind": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ByteSize(); ok {
		if err := document.ByteSizeValidator(v); err != nil {
			return &ValidationError{Name: "byte_size", err: fmt.Errorf(`ent: validator failed for field "Document.byte_size": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ContentHash(); ok {
		if err := document.ContentHashValidator(v); err != nil {
			return &ValidationError{Name: "content_hash", err: fmt.Errorf(`ent: validator failed for field "Document.content_hash": %w`, err)}
		}
	}
	if v, ok := _u.mutation.StorageLocation(); ok {
		if err := document.StorageLocationValidator(v); err != nil {
			return &ValidationError{Name: "storage_location", err: fmt.Errorf(`ent: validator failed for field "Document.storage_location": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := document.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Document.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.RetryCount(); ok {
		if err := document.RetryCountValidator(v); err != nil {
			return &ValidationError{Name: "retry_count", err: fmt.Errorf(`ent: validator failed for field "Document.retry_count": %w`, err)}
		}
	}
	if _u.mutation.BatchCleared() && len(_u.mutation.BatchIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Document.batch"`)
	}
	return nil
}

func (_u *DocumentUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(document.Table, document.Columns, sqlgraph.NewFieldSpec(document.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Filename(); ok {
		_spec.SetField(document.FieldFilename, field.TypeString, value)
	}
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(document.FieldKind, field.TypeString, value)
	}
	if value, ok := _u.mutation.ByteSize(); ok {
		_spec.SetField(document.FieldByteSize, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedByteSize(); ok {
		_spec.AddField(document.FieldByteSize, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ContentHash(); ok {
		_spec.SetField(document.FieldContentHash, field.TypeBytes, value)
	}
	if value, ok := _u.mutation.StorageLocation(); ok {
		_spec.SetField(document.FieldStorageLocation, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(document.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.RetryCount(); ok {
		_spec.SetField(document.FieldRetryCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRetryCount(); ok {
		_spec.AddField(document.FieldRetryCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.FailureCode(); ok {
		_spec.SetField(document.FieldFailureCode, field.TypeString, value)
	}
	if _u.mutation.FailureCodeCleared() {
		_spec.ClearField(document.FieldFailureCode, field.TypeString)
	}
	if value, ok := _u.mutation.FailureMessage(); ok {
		_spec.SetField(document.FieldFailureMessage, field.TypeString, value)
	}
	if _u.mutation.FailureMessageCleared() {
		_spec.ClearField(document.FieldFailureMessage, field.TypeString)
	}
	if value, ok := _u.mutation.UploadedAt(); ok {
		_spec.SetField(document.FieldUploadedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(document.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(document.FieldCompletedAt, field.TypeTime)
	}
	if _u.mutation.BatchCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   document.BatchTable,
			Columns: []string{document.BatchColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(batch.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.BatchIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   document.BatchTable,
			Columns: []string{document.BatchColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(batch.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.MaskRecordsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   document.MaskRecordsTable,
			Columns: []string{document.MaskRecordsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(maskrecord.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedMaskRecordsIDs(); len(nodes) > 0 && !_u.mutation.MaskRecordsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   document.MaskRecordsTable,
			Columns: []string{document.MaskRecordsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(maskrecord.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.MaskRecordsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   document.MaskRecordsTable,
			Columns: []string{document.MaskRecordsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(maskrecord.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{document.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// DocumentUpdateOne is the builder for updating a single Document entity.
type DocumentUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *DocumentMutation
}

// SetBatchID sets the "batch_id" field.
func (_u *DocumentUpdateOne) SetBatchID(v uuid.UUID) *DocumentUpdateOne {
	_u.mutation.SetBatchID(v)
	return _u
}

// SetNillableBatchID sets the "batch_id" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableBatchID(v *uuid.UUID) *DocumentUpdateOne {
	if v != nil {
		_u.SetBatchID(*v)
	}
	return _u
}

// SetFilename sets the "filename" field.
func (_u *DocumentUpdateOne) SetFilename(v string) *DocumentUpdateOne {
	_u.mutation.SetFilename(v)
	return _u
}

// SetNillableFilename sets the "filename" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableFilename(v *string) *DocumentUpdateOne {
	if v != nil {
		_u.SetFilename(*v)
	}
	return _u
}

// SetKind sets the "kind" field.
func (_u *DocumentUpdateOne) SetKind(v string) *DocumentUpdateOne {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableKind(v *string) *DocumentUpdateOne {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetByteSize sets the "byte_size" field.
func (_u *DocumentUpdateOne) SetByteSize(v int) *DocumentUpdateOne {
	_u.mutation.ResetByteSize()
	_u.mutation.SetByteSize(v)
	return _u
}

// SetNillableByteSize sets the "byte_size" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableByteSize(v *int) *DocumentUpdateOne {
	if v != nil {
		_u.SetByteSize(*v)
	}
	return _u
}

// AddByteSize adds value to the "byte_size" field.
func (_u *DocumentUpdateOne) AddByteSize(v int) *DocumentUpdateOne {
	_u.mutation.AddByteSize(v)
	return _u
}

// SetContentHash sets the "content_hash" field.
func (_u *DocumentUpdateOne) SetContentHash(v []byte) *DocumentUpdateOne {
	_u.mutation.SetContentHash(v)
	return _u
}

// SetStorageLocation sets the "storage_location" field.
func (_u *DocumentUpdateOne) SetStorageLocation(v string) *DocumentUpdateOne {
	_u.mutation.SetStorageLocation(v)
	return _u
}

// SetNillableStorageLocation sets the "storage_location" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableStorageLocation(v *string) *DocumentUpdateOne {
	if v != nil {
		_u.SetStorageLocation(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *DocumentUpdateOne) SetStatus(v string) *DocumentUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableStatus(v *string) *DocumentUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetRetryCount sets the "retry_count" field.
func (_u *DocumentUpdateOne) SetRetryCount(v int) *DocumentUpdateOne {
	_u.mutation.ResetRetryCount()
	_u.mutation.SetRetryCount(v)
	return _u
}

// SetNillableRetryCount sets the "retry_count" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableRetryCount(v *int) *DocumentUpdateOne {
	if v != nil {
		_u.SetRetryCount(*v)
	}
	return _u
}

// AddRetryCount adds value to the "retry_count" field.
func (_u *DocumentUpdateOne) AddRetryCount(v int) *DocumentUpdateOne {
	_u.mutation.AddRetryCount(v)
	return _u
}

// SetFailureCode sets the "failure_code" field.
func (_u *DocumentUpdateOne) SetFailureCode(v string) *DocumentUpdateOne {
	_u.mutation.SetFailureCode(v)
	return _u
}

// SetNillableFailureCode sets the "failure_code" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableFailureCode(v *string) *DocumentUpdateOne {
	if v != nil {
		_u.SetFailureCode(*v)
	}
	return _u
}

// ClearFailureCode clears the value of the "failure_code" field.
func (_u *DocumentUpdateOne) ClearFailureCode() *DocumentUpdateOne {
	_u.mutation.ClearFailureCode()
	return _u
}

// SetFailureMessage sets the "failure_message" field.
func (_u *DocumentUpdateOne) SetFailureMessage(v string) *DocumentUpdateOne {
	_u.mutation.SetFailureMessage(v)
	return _u
}

// SetNillableFailureMessage sets the "failure_message" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableFailureMessage(v *string) *DocumentUpdateOne {
	if v != nil {
		_u.SetFailureMessage(*v)
	}
	return _u
}

// ClearFailureMessage clears the value of the "failure_message" field.
func (_u *DocumentUpdateOne) ClearFailureMessage() *DocumentUpdateOne {
	_u.mutation.ClearFailureMessage()
	return _u
}

// SetUploadedAt sets the "uploaded_at" field.
func (_u *DocumentUpdateOne) SetUploadedAt(v time.Time) *DocumentUpdateOne {
	_u.mutation.SetUploadedAt(v)
	return _u
}

// SetNillableUploadedAt sets the "uploaded_at" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableUploadedAt(v *time.Time) *DocumentUpdateOne {
	if v != nil {
		_u.SetUploadedAt(*v)
	}
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *DocumentUpdateOne) SetCompletedAt(v time.Time) *DocumentUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableCompletedAt(v *time.Time) *DocumentUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *DocumentUpdateOne) ClearCompletedAt() *DocumentUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetBatch sets the "batch" edge to the Batch entity.
func (_u *DocumentUpdateOne) SetBatch(v *Batch) *DocumentUpdateOne {
	return _u.SetBatchID(v.ID)
}

// AddMaskRecordIDs adds the "mask_records" edge to the MaskRecord entity by IDs.
func (_u *DocumentUpdateOne) AddMaskRecordIDs(ids ...uuid.UUID) *DocumentUpdateOne {
	_u.mutation.AddMaskRecordIDs(ids...)
	return _u
}

// AddMaskRecords adds the "mask_records" edges to the MaskRecord entity.
func (_u *DocumentUpdateOne) AddMaskRecords(v ...*MaskRecord) *DocumentUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddMaskRecordIDs(ids...)
}

// Mutation returns the DocumentMutation object of the builder.
func (_u *DocumentUpdateOne) Mutation() *DocumentMutation {
	return _u.mutation
}

// ClearBatch clears the "batch" edge to the Batch entity.
func (_u *DocumentUpdateOne) ClearBatch() *DocumentUpdateOne {
	_u.mutation.ClearBatch()
	return _u
}

// ClearMaskRecords clears all "mask_records" edges to the MaskRecord entity.
func (_u *DocumentUpdateOne) ClearMaskRecords() *DocumentUpdateOne {
	_u.mutation.ClearMaskRecords()
	return _u
}

// RemoveMaskRecordIDs removes the "mask_records" edge to MaskRecord entities by IDs.
func (_u *DocumentUpdateOne) RemoveMaskRecordIDs(ids ...uuid.UUID) *DocumentUpdateOne {
	_u.mutation.RemoveMaskRecordIDs(ids...)
	return _u
}

// RemoveMaskRecords removes "mask_records" edges to MaskRecord entities.
func (_u *DocumentUpdateOne) RemoveMaskRecords(v ...*MaskRecord) *DocumentUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveMaskRecordIDs(ids...)
}

// Where appends a list predicates to the DocumentUpdate builder.
func (_u *DocumentUpdateOne) Where(ps ...predicate.Document) *DocumentUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *DocumentUpdateOne) Select(field string, fields ...string) *DocumentUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Document entity.
func (_u *DocumentUpdateOne) Save(ctx context.Context) (*Document, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DocumentUpdateOne) SaveX(ctx context.Context) *Document {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *DocumentUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DocumentUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DocumentUpdateOne) check() error {
	if v, ok := _u.mutation.Filename(); ok {
		if err := document.FilenameValidator(v); err != nil {
			return &ValidationError{Name: "filename", err: fmt.Errorf(`ent: validator failed for field "Document.filename": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Kind(); ok {
		if err := document.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "Document.kind": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ByteSize(); ok {
		if err := document.ByteSizeValidator(v); err != nil {
			return &ValidationError{Name: "byte_size", err: fmt.Errorf(`ent: validator failed for field "Document.byte_size": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ContentHash(); ok {
		if err := document.ContentHashValidator(v); err != nil {
			return &ValidationError{Name: "content_hash", err: fmt.Errorf(`ent: validator failed for field "Document.content_hash": %w`, err)}
		}
	}
	if v, ok := _u.mutation.StorageLocation(); ok {
		if err := document.StorageLocationValidator(v); err != nil {
			return &ValidationError{Name: "storage_location", err: fmt.Errorf(`ent: validator failed for field "Document.storage_location": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := document.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Document.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.RetryCount(); ok {
		if err := document.RetryCountValidator(v); err != nil {
			return &ValidationError{Name: "retry_count", err: fmt.Errorf(`ent: validator failed for field "Document.retry_count": %w`, err)}
		}
	}
	if _u.mutation.BatchCleared() && len(_u.mutation.BatchIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Document.batch"`)
	}
	return nil
}

func (_u *DocumentUpdateOne) sqlSave(ctx context.Context) (_node *Document, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(document.Table, document.Columns, sqlgraph.NewFieldSpec(document.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Document.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, document.FieldID)
		for _, f := range fields {
			if !document.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != document.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Filename(); ok {
		_spec.SetField(document.FieldFilename, field.TypeString, value)
	}
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(document.FieldKind, field.TypeString, value)
	}
	if value, ok := _u.mutation.ByteSize(); ok {
		_spec.SetField(document.FieldByteSize, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedByteSize(); ok {
		_spec.AddField(document.FieldByteSize, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ContentHash(); ok {
		_spec.SetField(document.FieldContentHash, field.TypeBytes, value)
	}
	if value, ok := _u.mutation.StorageLocation(); ok {
		_spec.SetField(document.FieldStorageLocation, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(document.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.RetryCount(); ok {
		_spec.SetField(document.FieldRetryCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRetryCount(); ok {
		_spec.AddField(document.FieldRetryCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.FailureCode(); ok {
		_spec.SetField(document.FieldFailureCode, field.TypeString, value)
	}
	if _u.mutation.FailureCodeCleared() {
		_spec.ClearField(document.FieldFailureCode, field.TypeString)
	}
	if value, ok := _u.mutation.FailureMessage(); ok {
		_spec.SetField(document.FieldFailureMessage, field.TypeString, value)
	}
	if _u.mutation.FailureMessageCleared() {
		_spec.ClearField(document.FieldFailureMessage, field.TypeString)
	}
	if value, ok := _u.mutation.UploadedAt(); ok {
		_spec.SetField(document.FieldUploadedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(document.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(document.FieldCompletedAt, field.TypeTime)
	}
	if _u.mutation.BatchCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   document.BatchTable,
			Columns: []string{document.BatchColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(batch.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.BatchIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   document.BatchTable,
			Columns: []string{document.BatchColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(batch.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.MaskRecordsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   document.MaskRecordsTable,
			Columns: []string{document.MaskRecordsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(maskrecord.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedMaskRecordsIDs(); len(nodes) > 0 && !_u.mutation.MaskRecordsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   document.MaskRecordsTable,
			Columns: []string{document.MaskRecordsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(maskrecord.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.MaskRecordsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   document.MaskRecordsTable,
			Columns: []string{document.MaskRecordsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(maskrecord.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Document{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{document.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
