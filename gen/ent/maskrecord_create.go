// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/affu-79/PII-SENTINEL-BACKEND-sub002/gen/ent/document"
	"github.com/affu-79/PII-SENTINEL-BACKEND-sub002/gen/ent/maskrecord"
	"github.com/google/uuid"
)

// MaskRecordCreate is the builder for creating a MaskRecord entity.
type MaskRecordCreate struct {
	config
	mutation *MaskRecordMutation
	hooks    []Hook
}

// SetDocumentID sets the "document_id" field.
func (_c *MaskRecordCreate) SetDocumentID(v uuid.UUID) *MaskRecordCreate {
	_c.mutation.SetDocumentID(v)
	return _c
}

// SetMode sets the "mode" field.
func (_c *MaskRecordCreate) SetMode(v string) *MaskRecordCreate {
	_c.mutation.SetMode(v)
	return _c
}

// SetSalt sets the "salt" field.
func (_c *MaskRecordCreate) SetSalt(v []byte) *MaskRecordCreate {
	_c.mutation.SetSalt(v)
	return _c
}

// SetSpans sets the "spans" field.
func (_c *MaskRecordCreate) SetSpans(v json.RawMessage) *MaskRecordCreate {
	_c.mutation.SetSpans(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *MaskRecordCreate) SetCreatedAt(v time.Time) *MaskRecordCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *MaskRecordCreate) SetNillableCreatedAt(v *time.Time) *MaskRecordCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *MaskRecordCreate) SetID(v uuid.UUID) *MaskRecordCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *MaskRecordCreate) SetNillableID(v *uuid.UUID) *MaskRecordCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetDocument sets the "document" edge to the Document entity.
func (_c *MaskRecordCreate) SetDocument(v *Document) *MaskRecordCreate {
	return _c.SetDocumentID(v.ID)
}

// Mutation returns the MaskRecordMutation object of the builder.
func (_c *MaskRecordCreate) Mutation() *MaskRecordMutation {
	return _c.mutation
}

// Save creates the MaskRecord in the database.
func (_c *MaskRecordCreate) Save(ctx context.Context) (*MaskRecord, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *MaskRecordCreate) SaveX(ctx context.Context) *MaskRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MaskRecordCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MaskRecordCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *MaskRecordCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := maskrecord.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := maskrecord.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *MaskRecordCreate) check() error {
	if _, ok := _c.mutation.DocumentID(); !ok {
		return &ValidationError{Name: "document_id", err: errors.New(`ent: missing required field "MaskRecord.document_id"`)}
	}
	if _, ok := _c.mutation.Mode(); !ok {
		return &ValidationError{Name: "mode", err: errors.New(`ent: missing required field "MaskRecord.mode"`)}
	}
	if v, ok := _c.mutation.Mode(); ok {
		if err := maskrecord.ModeValidator(v); err != nil {
			return &ValidationError{Name: "mode", err: fmt.Errorf(`ent: validator failed for field "MaskRecord.mode": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "MaskRecord.created_at"`)}
	}
	if len(_c.mutation.DocumentIDs()) == 0 {
		return &ValidationError{Name: "document", err: errors.New(`ent: missing required edge "MaskRecord.document"`)}
	}
	return nil
}

func (_c *MaskRecordCreate) sqlSave(ctx context.Context) (*MaskRecord, error) {
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

func (_c *MaskRecordCreate) createSpec() (*MaskRecord, *sqlgraph.CreateSpec) {
	var (
		_node = &MaskRecord{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(maskrecord.Table, sqlgraph.NewFieldSpec(maskrecord.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Mode(); ok {
		_spec.SetField(maskrecord.FieldMode, field.TypeString, value)
		_node.Mode = value
	}
	if value, ok := _c.mutation.Salt(); ok {
		_spec.SetField(maskrecord.FieldSalt, field.TypeBytes, value)
		_node.Salt = value
	}
	if value, ok := _c.mutation.Spans(); ok {
		_spec.SetField(maskrecord.FieldSpans, field.TypeJSON, value)
		_node.Spans = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(maskrecord.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.DocumentIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   maskrecord.DocumentTable,
			Columns: []string{maskrecord.DocumentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(document.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.DocumentID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// MaskRecordCreateBulk is the builder for creating many MaskRecord entities in bulk.
type MaskRecordCreateBulk struct {
	config
	err      error
	builders []*MaskRecordCreate
}

// Save creates the MaskRecord entities in the database.
func (_c *MaskRecordCreateBulk) Save(ctx context.Context) ([]*MaskRecord, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*MaskRecord, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*MaskRecordMutation)
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
func (_c *MaskRecordCreateBulk) SaveX(ctx context.Context) []*MaskRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MaskRecordCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MaskRecordCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
