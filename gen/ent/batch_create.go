// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/affu-79/PII-SENTINEL-BACKEND-sub002/gen/ent/batch"
	"github.com/affu-79/PII-SENTINEL-BACKEND-sub002/gen/ent/document"
	"github.com/affu-79/PII-SENTINEL-BACKEND-sub002/gen/ent/processjob"
	"github.com/google/uuid"
)

// BatchCreate is the builder for creating a Batch entity.
type BatchCreate struct {
	config
	mutation *BatchMutation
	hooks    []Hook
}

// SetName sets the "name" field.
func (_c *BatchCreate) SetName(v string) *BatchCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetOwnerRef sets the "owner_ref" field.
func (_c *BatchCreate) SetOwnerRef(v string) *BatchCreate {
	_c.mutation.SetOwnerRef(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *BatchCreate) SetCreatedAt(v time.Time) *BatchCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *BatchCreate) SetNillableCreatedAt(v *time.Time) *BatchCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetTotalDocuments sets the "total_documents" field.
func (_c *BatchCreate) SetTotalDocuments(v int) *BatchCreate {
	_c.mutation.SetTotalDocuments(v)
	return _c
}

// SetNillableTotalDocuments sets the "total_documents" field if the given value is not nil.
func (_c *BatchCreate) SetNillableTotalDocuments(v *int) *BatchCreate {
	if v != nil {
		_c.SetTotalDocuments(*v)
	}
	return _c
}

// SetSucceeded sets the "succeeded" field.
func (_c *BatchCreate) SetSucceeded(v int) *BatchCreate {
	_c.mutation.SetSucceeded(v)
	return _c
}

// SetNillableSucceeded sets the "succeeded" field if the given value is not nil.
func (_c *BatchCreate) SetNillableSucceeded(v *int) *BatchCreate {
	if v != nil {
		_c.SetSucceeded(*v)
	}
	return _c
}

// SetFailed sets the "failed" field.
func (_c *BatchCreate) SetFailed(v int) *BatchCreate {
	_c.mutation.SetFailed(v)
	return _c
}

// SetNillableFailed sets the "failed" field if the given value is not nil.
func (_c *BatchCreate) SetNillableFailed(v *int) *BatchCreate {
	if v != nil {
		_c.SetFailed(*v)
	}
	return _c
}

// SetInFlight sets the "in_flight" field.
func (_c *BatchCreate) SetInFlight(v int) *BatchCreate {
	_c.mutation.SetInFlight(v)
	return _c
}

// SetNillableInFlight sets the "in_flight" field if the given value is not nil.
func (_c *BatchCreate) SetNillableInFlight(v *int) *BatchCreate {
	if v != nil {
		_c.SetInFlight(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *BatchCreate) SetID(v uuid.UUID) *BatchCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *BatchCreate) SetNillableID(v *uuid.UUID) *BatchCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// AddDocumentIDs adds the "documents" edge to the Document entity by IDs.
func (_c *BatchCreate) AddDocumentIDs(ids ...uuid.UUID) *BatchCreate {
	_c.mutation.AddDocumentIDs(ids...)
	return _c
}

// AddDocuments adds the "documents" edges to the Document entity.
func (_c *BatchCreate) AddDocuments(v ...*Document) *BatchCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddDocumentIDs(ids...)
}

// AddJobIDs adds the "jobs" edge to the ProcessJob entity by IDs.
func (_c *BatchCreate) AddJobIDs(ids ...uuid.UUID) *BatchCreate {
	_c.mutation.AddJobIDs(ids...)
	return _c
}

// AddJobs adds the "jobs" edges to the ProcessJob entity.
func (_c *BatchCreate) AddJobs(v ...*ProcessJob) *BatchCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddJobIDs(ids...)
}

// Mutation returns the BatchMutation object of the builder.
func (_c *BatchCreate) Mutation() *BatchMutation {
	return _c.mutation
}

// Save creates the Batch in the database.
func (_c *BatchCreate) Save(ctx context.Context) (*Batch, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *BatchCreate) SaveX(ctx context.Context) *Batch {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BatchCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BatchCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *BatchCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := batch.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.TotalDocuments(); !ok {
		v := batch.DefaultTotalDocuments
		_c.mutation.SetTotalDocuments(v)
	}
	if _, ok := _c.mutation.Succeeded(); !ok {
		v := batch.DefaultSucceeded
		_c.mutation.SetSucceeded(v)
	}
	if _, ok := _c.mutation.Failed(); !ok {
		v := batch.DefaultFailed
		_c.mutation.SetFailed(v)
	}
	if _, ok := _c.mutation.InFlight(); !ok {
		v := batch.DefaultInFlight
		_c.mutation.SetInFlight(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := batch.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *BatchCreate) check() error {
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "Batch.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := batch.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Batch.name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.OwnerRef(); !ok {
		return &ValidationError{Name: "owner_ref", err: errors.New(`ent: missing required field "Batch.owner_ref"`)}
	}
	if v, ok := _c.mutation.OwnerRef(); ok {
		if err := batch.OwnerRefValidator(v); err != nil {
			return &ValidationError{Name: "owner_ref", err: fmt.Errorf(`ent: validator failed for field "Batch.owner_ref": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Batch.created_at"`)}
	}
	if _, ok := _c.mutation.TotalDocuments(); !ok {
		return &ValidationError{Name: "total_documents", err: errors.New(`ent: missing required field "Batch.total_documents"`)}
	}
	if v, ok := _c.mutation.TotalDocuments(); ok {
		if err := batch.TotalDocumentsValidator(v); err != nil {
			return &ValidationError{Name: "total_documents", err: fmt.Errorf(`ent: validator failed for field "Batch.total_documents": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Succeeded(); !ok {
		return &ValidationError{Name: "succeeded", err: errors.New(`ent: missing required field "Batch.succeeded"`)}
	}
	if v, ok := _c.mutation.Succeeded(); ok {
		if err := batch.SucceededValidator(v); err != nil {
			return &ValidationError{Name: "succeeded", err: fmt.Errorf(`ent: validator failed for field "Batch.succeeded": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Failed(); !ok {
		return &ValidationError{Name: "failed", err: errors.New(`ent: missing required field "Batch.failed"`)}
	}
	if v, ok := _c.mutation.Failed(); ok {
		if err := batch.FailedValidator(v); err != nil {
			return &ValidationError{Name: "failed", err: fmt.Errorf(`ent: validator failed for field "Batch.failed": %w`, err)}
		}
	}
	if _, ok := _c.mutation.InFlight(); !ok {
		return &ValidationError{Name: "in_flight", err: errors.New(`ent: missing required field "Batch.in_flight"`)}
	}
	if v, ok := _c.mutation.InFlight(); ok {
		if err := batch.InFlightValidator(v); err != nil {
			return &ValidationError{Name: "in_flight", err: fmt.Errorf(`ent: validator failed for field "Batch.in_flight": %w`, err)}
		}
	}
	return nil
}

func (_c *BatchCreate) sqlSave(ctx context.Context) (*Batch, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *BatchCreate) createSpec() (*Batch, *sqlgraph.CreateSpec) {
	var (
		_node = &Batch{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(batch.Table, sqlgraph.NewFieldSpec(batch.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(batch.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.OwnerRef(); ok {
		_spec.SetField(batch.FieldOwnerRef, field.TypeString, value)
		_node.OwnerRef = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(batch.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.TotalDocuments(); ok {
		_spec.SetField(batch.FieldTotalDocuments, field.TypeInt, value)
		_node.TotalDocuments = value
	}
	if value, ok := _c.mutation.Succeeded(); ok {
		_spec.SetField(batch.FieldSucceeded, field.TypeInt, value)
		_node.Succeeded = value
	}
	if value, ok := _c.mutation.Failed(); ok {
		_spec.SetField(batch.FieldFailed, field.TypeInt, value)
		_node.Failed = value
	}
	if value, ok := _c.mutation.InFlight(); ok {
		_spec.SetField(batch.FieldInFlight, field.TypeInt, value)
		_node.InFlight = value
	}
	if nodes := _c.mutation.DocumentsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.JobsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// BatchCreateBulk is the builder for creating many Batch entities in bulk.
type BatchCreateBulk struct {
	config
	err      error
	builders []*BatchCreate
}

// Save creates the Batch entities in the database.
func (_c *BatchCreateBulk) Save(ctx context.Context) ([]*Batch, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Batch, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*BatchMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *BatchCreateBulk) SaveX(ctx context.Context) []*Batch {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BatchCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BatchCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
