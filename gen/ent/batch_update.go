// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/affu-79/PII-SENTINEL-BACKEND-sub002/gen/ent/batch"
	"github.com/affu-79/PII-SENTINEL-BACKEND-sub002/gen/ent/document"
	"github.com/affu-79/PII-SENTINEL-BACKEND-sub002/gen/ent/predicate"
	"github.com/affu-79/PII-SENTINEL-BACKEND-sub002/gen/ent/processjob"
	"github.com/google/uuid"
)

// BatchUpdate is the builder for updating Batch entities.
type BatchUpdate struct {
	config
	hooks    []Hook
	mutation *BatchMutation
}

// Where appends a list predicates to the BatchUpdate builder.
func (_u *BatchUpdate) Where(ps ...predicate.Batch) *BatchUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *BatchUpdate) SetName(v string) *BatchUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *BatchUpdate) SetNillableName(v *string) *BatchUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetOwnerRef sets the "owner_ref" field.
func (_u *BatchUpdate) SetOwnerRef(v string) *BatchUpdate {
	_u.mutation.SetOwnerRef(v)
	return _u
}

// SetNillableOwnerRef sets the "owner_ref" field if the given value is not nil.
func (_u *BatchUpdate) SetNillableOwnerRef(v *string) *BatchUpdate {
	if v != nil {
		_u.SetOwnerRef(*v)
	}
	return _u
}

// SetTotalDocuments sets the "total_documents" field.
func (_u *BatchUpdate) SetTotalDocuments(v int) *BatchUpdate {
	_u.mutation.ResetTotalDocuments()
	_u.mutation.SetTotalDocuments(v)
	return _u
}

// SetNillableTotalDocuments sets the "total_documents" field if the given value is not nil.
func (_u *BatchUpdate) SetNillableTotalDocuments(v *int) *BatchUpdate {
	if v != nil {
		_u.SetTotalDocuments(*v)
	}
	return _u
}

// AddTotalDocuments adds value to the "total_documents" field.
func (_u *BatchUpdate) AddTotalDocuments(v int) *BatchUpdate {
	_u.mutation.AddTotalDocuments(v)
	return _u
}

// SetSucceeded sets the "succeeded" field.
func (_u *BatchUpdate) SetSucceeded(v int) *BatchUpdate {
	_u.mutation.ResetSucceeded()
	_u.mutation.SetSucceeded(v)
	return _u
}

// SetNillableSucceeded sets the "succeeded" field if the given value is not nil.
func (_u *BatchUpdate) SetNillableSucceeded(v *int) *BatchUpdate {
	if v != nil {
		_u.SetSucceeded(*v)
	}
	return _u
}

// AddSucceeded adds value to the "succeeded" field.
func (_u *BatchUpdate) AddSucceeded(v int) *BatchUpdate {
	_u.mutation.AddSucceeded(v)
	return _u
}

// SetFailed sets the "failed" field.
func (_u *BatchUpdate) SetFailed(v int) *BatchUpdate {
	_u.mutation.ResetFailed()
	_u.mutation.SetFailed(v)
	return _u
}

// SetNillableFailed sets the "failed" field if the given value is not nil.
func (_u *BatchUpdate) SetNillableFailed(v *int) *BatchUpdate {
	if v != nil {
		_u.SetFailed(*v)
	}
	return _u
}

// AddFailed adds value to the "failed" field.
func (_u *BatchUpdate) AddFailed(v int) *BatchUpdate {
	_u.mutation.AddFailed(v)
	return _u
}

// SetInFlight sets the "in_flight" field.
func (_u *BatchUpdate) SetInFlight(v int) *BatchUpdate {
	_u.mutation.ResetInFlight()
	_u.mutation.SetInFlight(v)
	return _u
}

// SetNillableInFlight sets the "in_flight" field if the given value is not nil.
func (_u *BatchUpdate) SetNillableInFlight(v *int) *BatchUpdate {
	if v != nil {
		_u.SetInFlight(*v)
	}
	return _u
}

// AddInFlight adds value to the "in_flight" field.
func (_u *BatchUpdate) AddInFlight(v int) *BatchUpdate {
	_u.mutation.AddInFlight(v)
	return _u
}

// AddDocumentIDs adds the "documents" edge to the Document entity by IDs.
func (_u *BatchUpdate) AddDocumentIDs(ids ...uuid.UUID) *BatchUpdate {
	_u.mutation.AddDocumentIDs(ids...)
	return _u
}

// AddDocuments adds the "documents" edges to the Document entity.
func (_u *BatchUpdate) AddDocuments(v ...*Document) *BatchUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddDocumentIDs(ids...)
}

// AddJobIDs adds the "jobs" edge to the ProcessJob entity by IDs.
func (_u *BatchUpdate) AddJobIDs(ids ...uuid.UUID) *BatchUpdate {
	_u.mutation.AddJobIDs(ids...)
	return _u
}

// AddJobs adds the "jobs" edges to the ProcessJob entity.
func (_u *BatchUpdate) AddJobs(v ...*ProcessJob) *BatchUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddJobIDs(ids...)
}

// Mutation returns the BatchMutation object of the builder.
func (_u *BatchUpdate) Mutation() *BatchMutation {
	return _u.mutation
}

// ClearDocuments clears all "documents" edges to the Document entity.
func (_u *BatchUpdate) ClearDocuments() *BatchUpdate {
	_u.mutation.ClearDocuments()
	return _u
}

// RemoveDocumentIDs removes the "documents" edge to Document entities by IDs.
func (_u *BatchUpdate) RemoveDocumentIDs(ids ...uuid.UUID) *BatchUpdate {
	_u.mutation.RemoveDocumentIDs(ids...)
	return _u
}

// RemoveDocuments removes "documents" edges to Document entities.
func (_u *BatchUpdate) RemoveDocuments(v ...*Document) *BatchUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveDocumentIDs(ids...)
}

// ClearJobs clears all "jobs" edges to the ProcessJob entity.
func (_u *BatchUpdate) ClearJobs() *BatchUpdate {
	_u.mutation.ClearJobs()
	return _u
}

// RemoveJobIDs removes the "jobs" edge to ProcessJob entities by IDs.
func (_u *BatchUpdate) RemoveJobIDs(ids ...uuid.UUID) *BatchUpdate {
	_u.mutation.RemoveJobIDs(ids...)
	return _u
}

// RemoveJobs removes "jobs" edges to ProcessJob entities.
func (_u *BatchUpdate) RemoveJobs(v ...*ProcessJob) *BatchUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveJobIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *BatchUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BatchUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *BatchUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BatchUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *BatchUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := batch.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Batch.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.OwnerRef(); ok {
		if err := batch.OwnerRefValidator(v); err != nil {
			return &ValidationError{Name: "owner_ref", err: fmt.Errorf(`ent: validator failed for field "Batch.owner_ref": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TotalDocuments(); ok {
		if err := batch.TotalDocumentsValidator(v); err != nil {
			return &ValidationError{Name: "total_documents", err: fmt.Errorf(`ent: validator failed for field "Batch.total_documents": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Succeeded(); ok {
		if err := batch.SucceededValidator(v); err != nil {
			return &ValidationError{Name: "succeeded", err: fmt.Errorf(`ent: validator failed for field "Batch.succeeded": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Failed(); ok {
		if err := batch.FailedValidator(v); err != nil {
			return &ValidationError{Name: "failed", err: fmt.Errorf(`ent: validator failed for field "Batch.failed": %w`, err)}
		}
	}
	if v, ok := _u.mutation.InFlight(); ok {
		if err := batch.InFlightValidator(v); err != nil {
			return &ValidationError{Name: "in_flight", err: fmt.Errorf(`ent: validator failed for field "Batch.in_flight": %w`, err)}
		}
	}
	return nil
}

func (_u *BatchUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(batch.Table, batch.Columns, sqlgraph.NewFieldSpec(batch.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(batch.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.OwnerRef(); ok {
		_spec.SetField(batch.FieldOwnerRef, field.TypeString, value)
	}
	if value, ok := _u.mutation.TotalDocuments(); ok {
		_spec.SetField(batch.FieldTotalDocuments, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalDocuments(); ok {
		_spec.AddField(batch.FieldTotalDocuments, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Succeeded(); ok {
		_spec.SetField(batch.FieldSucceeded, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSucceeded(); ok {
		_spec.AddField(batch.FieldSucceeded, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Failed(); ok {
		_spec.SetField(batch.FieldFailed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFailed(); ok {
		_spec.AddField(batch.FieldFailed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.InFlight(); ok {
		_spec.SetField(batch.FieldInFlight, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedInFlight(); ok {
		_spec.AddField(batch.FieldInFlight, field.TypeInt, value)
	}
	if _u.mutation.DocumentsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   batch.DocumentsTable,
			Columns: []string{batch.DocumentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(document.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedDocumentsIDs(); len(nodes) > 0 && !_u.mutation.DocumentsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   batch.DocumentsTable,
			Columns: []string{batch.DocumentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(document.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DocumentsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   batch.DocumentsTable,
			Columns: []string{batch.DocumentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(document.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.JobsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   batch.JobsTable,
			Columns: []string{batch.JobsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(processjob.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedJobsIDs(); len(nodes) > 0 && !_u.mutation.JobsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   batch.JobsTable,
			Columns: []string{batch.JobsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(processjob.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.JobsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   batch.JobsTable,
			Columns: []string{batch.JobsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(processjob.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{batch.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// BatchUpdateOne is the builder for updating a single Batch entity.
type BatchUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *BatchMutation
}

// SetName sets the "name" field.
func (_u *BatchUpdateOne) SetName(v string) *BatchUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *BatchUpdateOne) SetNillableName(v *string) *BatchUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetOwnerRef sets the "owner_ref" field.
func (_u *BatchUpdateOne) SetOwnerRef(v string) *BatchUpdateOne {
	_u.mutation.SetOwnerRef(v)
	return _u
}

// SetNillableOwnerRef sets the "owner_ref" field if the given value is not nil.
func (_u *BatchUpdateOne) SetNillableOwnerRef(v *string) *BatchUpdateOne {
	if v != nil {
		_u.SetOwnerRef(*v)
	}
	return _u
}

// SetTotalDocuments sets the "total_documents" field.
func (_u *BatchUpdateOne) SetTotalDocuments(v int) *BatchUpdateOne {
	_u.mutation.ResetTotalDocuments()
	_u.mutation.SetTotalDocuments(v)
	return _u
}

// SetNillableTotalDocuments sets the "total_documents" field if the given value is not nil.
func (_u *BatchUpdateOne) SetNillableTotalDocuments(v *int) *BatchUpdateOne {
	if v != nil {
		_u.SetTotalDocuments(*v)
	}
	return _u
}

// AddTotalDocuments adds value to the "total_documents" field.
func (_u *BatchUpdateOne) AddTotalDocuments(v int) *BatchUpdateOne {
	_u.mutation.AddTotalDocuments(v)
	return _u
}

// SetSucceeded sets the "succeeded" field.
func (_u *BatchUpdateOne) SetSucceeded(v int) *BatchUpdateOne {
	_u.mutation.ResetSucceeded()
	_u.mutation.SetSucceeded(v)
	return _u
}

// SetNillableSucceeded sets the "succeeded" field if the given value is not nil.
func (_u *BatchUpdateOne) SetNillableSucceeded(v *int) *BatchUpdateOne {
	if v != nil {
		_u.SetSucceeded(*v)
	}
	return _u
}

// AddSucceeded adds value to the "succeeded" field.
func (_u *BatchUpdateOne) AddSucceeded(v int) *BatchUpdateOne {
	_u.mutation.AddSucceeded(v)
	return _u
}

// SetFailed sets the "failed" field.
func (_u *BatchUpdateOne) SetFailed(v int) *BatchUpdateOne {
	_u.mutation.ResetFailed()
	_u.mutation.SetFailed(v)
	return _u
}

// SetNillableFailed sets the "failed" field if the given value is not nil.
func (_u *BatchUpdateOne) SetNillableFailed(v *int) *BatchUpdateOne {
	if v != nil {
		_u.SetFailed(*v)
	}
	return _u
}

// AddFailed adds value to the "failed" field.
func (_u *BatchUpdateOne) AddFailed(v int) *BatchUpdateOne {
	_u.mutation.AddFailed(v)
	return _u
}

// SetInFlight sets the "in_flight" field.
func (_u *BatchUpdateOne) SetInFlight(v int) *BatchUpdateOne {
	_u.mutation.ResetInFlight()
	_u.mutation.SetInFlight(v)
	return _u
}

// SetNillableInFlight sets the "in_flight" field if the given value is not nil.
func (_u *BatchUpdateOne) SetNillableInFlight(v *int) *BatchUpdateOne {
	if v != nil {
		_u.SetInFlight(*v)
	}
	return _u
}

// AddInFlight adds value to the "in_flight" field.
func (_u *BatchUpdateOne) AddInFlight(v int) *BatchUpdateOne {
	_u.mutation.AddInFlight(v)
	return _u
}

// AddDocumentIDs adds the "documents" edge to the Document entity by IDs.
func (_u *BatchUpdateOne) AddDocumentIDs(ids ...uuid.UUID) *BatchUpdateOne {
	_u.mutation.AddDocumentIDs(ids...)
	return _u
}

// AddDocuments adds the "documents" edges to the Document entity.
func (_u *BatchUpdateOne) AddDocuments(v ...*Document) *BatchUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddDocumentIDs(ids...)
}

// AddJobIDs adds the "jobs" edge to the ProcessJob entity by IDs.
func (_u *BatchUpdateOne) AddJobIDs(ids ...uuid.UUID) *BatchUpdateOne {
	_u.mutation.AddJobIDs(ids...)
	return _u
}

// AddJobs adds the "jobs" edges to the ProcessJob entity.
func (_u *BatchUpdateOne) AddJobs(v ...*ProcessJob) *BatchUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddJobIDs(ids...)
}

// Mutation returns the BatchMutation object of the builder.
func (_u *BatchUpdateOne) Mutation() *BatchMutation {
	return _u.mutation
}

// ClearDocuments clears all "documents" edges to the Document entity.
func (_u *BatchUpdateOne) ClearDocuments() *BatchUpdateOne {
	_u.mutation.ClearDocuments()
	return _u
}

// RemoveDocumentIDs removes the "documents" edge to Document entities by IDs.
func (_u *BatchUpdateOne) RemoveDocumentIDs(ids ...uuid.UUID) *BatchUpdateOne {
	_u.mutation.RemoveDocumentIDs(ids...)
	return _u
}

// RemoveDocuments removes "documents" edges to Document entities.
func (_u *BatchUpdateOne) RemoveDocuments(v ...*Document) *BatchUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveDocumentIDs(ids...)
}

// ClearJobs clears all "jobs" edges to the ProcessJob entity.
func (_u *BatchUpdateOne) ClearJobs() *BatchUpdateOne {
	_u.mutation.ClearJobs()
	return _u
}

// RemoveJobIDs removes the "jobs" edge to ProcessJob entities by IDs.
func (_u *BatchUpdateOne) RemoveJobIDs(ids ...uuid.UUID) *BatchUpdateOne {
	_u.mutation.RemoveJobIDs(ids...)
	return _u
}

// RemoveJobs removes "jobs" edges to ProcessJob entities.
func (_u *BatchUpdateOne) RemoveJobs(v ...*ProcessJob) *BatchUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveJobIDs(ids...)
}

// Where appends a list predicates to the BatchUpdate builder.
func (_u *BatchUpdateOne) Where(ps ...predicate.Batch) *BatchUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *BatchUpdateOne) Select(field string, fields ...string) *BatchUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Batch entity.
func (_u *BatchUpdateOne) Save(ctx context.Context) (*Batch, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BatchUpdateOne) SaveX(ctx context.Context) *Batch {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *BatchUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BatchUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *BatchUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := batch.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Batch.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.OwnerRef(); ok {
		if err := batch.OwnerRefValidator(v); err != nil {
			return &ValidationError{Name: "owner_ref", err: fmt.Errorf(`ent: validator failed for field "Batch.owner_ref": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TotalDocuments(); ok {
		if err := batch.TotalDocumentsValidator(v); err != nil {
			return &ValidationError{Name: "total_documents", err: fmt.Errorf(`ent: validator failed for field "Batch.total_documents": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Succeeded(); ok {
		if err := batch.SucceededValidator(v); err != nil {
			return &ValidationError{Name: "succeeded", err: fmt.Errorf(`ent: validator failed for field "Batch.succeeded": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Failed(); ok {
		if err := batch.FailedValidator(v); err != nil {
			return &ValidationError{Name: "failed", err: fmt.Errorf(`ent: validator failed for field "Batch.failed": %w`, err)}
		}
	}
	if v, ok := _u.mutation.InFlight(); ok {
		if err := batch.InFlightValidator(v); err != nil {
			return &ValidationError{Name: "in_flight", err: fmt.Errorf(`ent: validator failed for field "Batch.in_flight": %w`, err)}
		}
	}
	return nil
}

func (_u *BatchUpdateOne) sqlSave(ctx context.Context) (_node *Batch, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(batch.Table, batch.Columns, sqlgraph.NewFieldSpec(batch.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Batch.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, batch.FieldID)
		for _, f := range fields {
			if !batch.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != batch.FieldID {
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
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(batch.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.OwnerRef(); ok {
		_spec.SetField(batch.FieldOwnerRef, field.TypeString, value)
	}
	if value, ok := _u.mutation.TotalDocuments(); ok {
		_spec.SetField(batch.FieldTotalDocuments, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalDocuments(); ok {
		_spec.AddField(batch.FieldTotalDocuments, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Succeeded(); ok {
		_spec.SetField(batch.FieldSucceeded, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSucceeded(); ok {
		_spec.AddField(batch.FieldSucceeded, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Failed(); ok {
		_spec.SetField(batch.FieldFailed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFailed(); ok {
		_spec.AddField(batch.FieldFailed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.InFlight(); ok {
		_spec.SetField(batch.FieldInFlight, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedInFlight(); ok {
		_spec.AddField(batch.FieldInFlight, field.TypeInt, value)
	}
	if _u.mutation.DocumentsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   batch.DocumentsTable,
			Columns: []string{batch.DocumentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(document.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedDocumentsIDs(); len(nodes) > 0 && !_u.mutation.DocumentsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   batch.DocumentsTable,
			Columns: []string{batch.DocumentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(document.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DocumentsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   batch.DocumentsTable,
			Columns: []string{batch.DocumentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(document.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.JobsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   batch.JobsTable,
			Columns: []string{batch.JobsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(processjob.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedJobsIDs(); len(nodes) > 0 && !_u.mutation.JobsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   batch.JobsTable,
			Columns: []string{batch.JobsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(processjob.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.JobsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   batch.JobsTable,
			Columns: []string{batch.JobsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(processjob.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Batch{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{batch.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
