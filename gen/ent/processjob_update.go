// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/affu-79/PII-SENTINEL-BACKEND-sub002/gen/ent/batch"
	"github.com/affu-79/PII-SENTINEL-BACKEND-sub002/gen/ent/predicate"
	"github.com/affu-79/PII-SENTINEL-BACKEND-sub002/gen/ent/processjob"
	"github.com/google/uuid"
)

// ProcessJobUpdate is the builder for updating ProcessJob entities.
type ProcessJobUpdate struct {
	config
	hooks    []Hook
	mutation *ProcessJobMutation
}

// Where appends a list predicates to the ProcessJobUpdate builder.
func (_u *ProcessJobUpdate) Where(ps ...predicate.ProcessJob) *ProcessJobUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetBatchID sets the "batch_id" field.
func (_u *ProcessJobUpdate) SetBatchID(v uuid.UUID) *ProcessJobUpdate {
	_u.mutation.SetBatchID(v)
	return _u
}

// SetNillableBatchID sets the "batch_id" field if the given value is not nil.
func (_u *ProcessJobUpdate) SetNillableBatchID(v *uuid.UUID) *ProcessJobUpdate {
	if v != nil {
		_u.SetBatchID(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *ProcessJobUpdate) SetStatus(v string) *ProcessJobUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ProcessJobUpdate) SetNillableStatus(v *string) *ProcessJobUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *ProcessJobUpdate) SetCompletedAt(v time.Time) *ProcessJobUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *ProcessJobUpdate) SetNillableCompletedAt(v *time.Time) *ProcessJobUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *ProcessJobUpdate) ClearCompletedAt() *ProcessJobUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetResults sets the "results" field.
func (_u *ProcessJobUpdate) SetResults(v json.RawMessage) *ProcessJobUpdate {
	_u.mutation.SetResults(v)
	return _u
}

// AppendResults appends value to the "results" field.
func (_u *ProcessJobUpdate) AppendResults(v json.RawMessage) *ProcessJobUpdate {
	_u.mutation.AppendResults(v)
	return _u
}

// ClearResults clears the value of the "results" field.
func (_u *ProcessJobUpdate) ClearResults() *ProcessJobUpdate {
	_u.mutation.ClearResults()
	return _u
}

// SetBatch sets the "batch" edge to the Batch entity.
func (_u *ProcessJobUpdate) SetBatch(v *Batch) *ProcessJobUpdate {
	return _u.SetBatchID(v.ID)
}

// Mutation returns the ProcessJobMutation object of the builder.
func (_u *ProcessJobUpdate) Mutation() *ProcessJobMutation {
	return _u.mutation
}

// ClearBatch clears the "batch" edge to the Batch entity.
func (_u *ProcessJobUpdate) ClearBatch() *ProcessJobUpdate {
	_u.mutation.ClearBatch()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ProcessJobUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProcessJobUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ProcessJobUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProcessJobUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ProcessJobUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := processjob.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ProcessJob.status": %w`, err)}
		}
	}
	if _u.mutation.BatchCleared() && len(_u.mutation.BatchIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ProcessJob.batch"`)
	}
	return nil
}

func (_u *ProcessJobUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(processjob.Table, processjob.Columns, sqlgraph.NewFieldSpec(processjob.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(processjob.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(processjob.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(processjob.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Results(); ok {
		_spec.SetField(processjob.FieldResults, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedResults(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, processjob.FieldResults, value)
		})
	}
	if _u.mutation.ResultsCleared() {
		_spec.ClearField(processjob.FieldResults, field.TypeJSON)
	}
	if _u.mutation.BatchCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   processjob.BatchTable,
			Columns: []string{processjob.BatchColumn},
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
			Table:   processjob.BatchTable,
			Columns: []string{processjob.BatchColumn},
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
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{processjob.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ProcessJobUpdateOne is the builder for updating a single ProcessJob entity.
type ProcessJobUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ProcessJobMutation
}

// SetBatchID sets the "batch_id" field.
func (_u *ProcessJobUpdateOne) SetBatchID(v uuid.UUID) *ProcessJobUpdateOne {
	_u.mutation.SetBatchID(v)
	return _u
}

// SetNillableBatchID sets the "batch_id" field if the given value is not nil.
func (_u *ProcessJobUpdateOne) SetNillableBatchID(v *uuid.UUID) *ProcessJobUpdateOne {
	if v != nil {
		_u.SetBatchID(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *ProcessJobUpdateOne) SetStatus(v string) *ProcessJobUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ProcessJobUpdateOne) SetNillableStatus(v *string) *ProcessJobUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *ProcessJobUpdateOne) SetCompletedAt(v time.Time) *ProcessJobUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *ProcessJobUpdateOne) SetNillableCompletedAt(v *time.Time) *ProcessJobUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *ProcessJobUpdateOne) ClearCompletedAt() *ProcessJobUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetResults sets the "results" field.
func (_u *ProcessJobUpdateOne) SetResults(v json.RawMessage) *ProcessJobUpdateOne {
	_u.mutation.SetResults(v)
	return _u
}

// AppendResults appends value to the "results" field.
func (_u *ProcessJobUpdateOne) AppendResults(v json.RawMessage) *ProcessJobUpdateOne {
	_u.mutation.AppendResults(v)
	return _u
}

// ClearResults clears the value of the "results" field.
func (_u *ProcessJobUpdateOne) ClearResults() *ProcessJobUpdateOne {
	_u.mutation.ClearResults()
	return _u
}

// SetBatch sets the "batch" edge to the Batch entity.
func (_u *ProcessJobUpdateOne) SetBatch(v *Batch) *ProcessJobUpdateOne {
	return _u.SetBatchID(v.ID)
}

// Mutation returns the ProcessJobMutation object of the builder.
func (_u *ProcessJobUpdateOne) Mutation() *ProcessJobMutation {
	return _u.mutation
}

// ClearBatch clears the "batch" edge to the Batch entity.
func (_u *ProcessJobUpdateOne) ClearBatch() *ProcessJobUpdateOne {
	_u.mutation.ClearBatch()
	return _u
}

// Where appends a list predicates to the ProcessJobUpdate builder.
func (_u *ProcessJobUpdateOne) Where(ps ...predicate.ProcessJob) *ProcessJobUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ProcessJobUpdateOne) Select(field string, fields ...string) *ProcessJobUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ProcessJob entity.
func (_u *ProcessJobUpdateOne) Save(ctx context.Context) (*ProcessJob, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProcessJobUpdateOne) SaveX(ctx context.Context) *ProcessJob {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ProcessJobUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProcessJobUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ProcessJobUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := processjob.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ProcessJob.status": %w`, err)}
		}
	}
	if _u.mutation.BatchCleared() && len(_u.mutation.BatchIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ProcessJob.batch"`)
	}
	return nil
}

func (_u *ProcessJobUpdateOne) sqlSave(ctx context.Context) (_node *ProcessJob, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(processjob.Table, processjob.Columns, sqlgraph.NewFieldSpec(processjob.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ProcessJob.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, processjob.FieldID)
		for _, f := range fields {
			if !processjob.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != processjob.FieldID {
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
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(processjob.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(processjob.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(processjob.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Results(); ok {
		_spec.SetField(processjob.FieldResults, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedResults(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, processjob.FieldResults, value)
		})
	}
	if _u.mutation.ResultsCleared() {
		_spec.ClearField(processjob.FieldResults, field.TypeJSON)
	}
	if _u.mutation.BatchCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   processjob.BatchTable,
			Columns: []string{processjob.BatchColumn},
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
			Table:   processjob.BatchTable,
			Columns: []string{processjob.BatchColumn},
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
	_node = &ProcessJob{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{processjob.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
