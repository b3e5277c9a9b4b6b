// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/affu-79/PII-SENTINEL-BACKEND-sub002/gen/ent/document"
	"github.com/affu-79/PII-SENTINEL-BACKEND-sub002/gen/ent/maskrecord"
	"github.com/affu-79/PII-SENTINEL-BACKEND-sub002/gen/ent/predicate"
	"github.com/google/uuid"
)

// MaskRecordUpdate is the builder for updating MaskRecord entities.
type MaskRecordUpdate struct {
	config
	hooks    []Hook
	mutation *MaskRecordMutation
}

// Where appends a list predicates to the MaskRecordUpdate builder.
func (_u *MaskRecordUpdate) Where(ps ...predicate.MaskRecord) *MaskRecordUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetDocumentID sets the "document_id" field.
func (_u *MaskRecordUpdate) SetDocumentID(v uuid.UUID) *MaskRecordUpdate {
	_u.mutation.SetDocumentID(v)
	return _u
}

// SetNillableDocumentID sets the "document_id" field if the given value is not nil.
func (_u *MaskRecordUpdate) SetNillableDocumentID(v *uuid.UUID) *MaskRecordUpdate {
	if v != nil {
		_u.SetDocumentID(*v)
	}
	return _u
}

// SetMode sets the "mode" field.
func (_u *MaskRecordUpdate) SetMode(v string) *MaskRecordUpdate {
	_u.mutation.SetMode(v)
	return _u
}

// SetNillableMode sets the "mode" field if the given value is not nil.
func (_u *MaskRecordUpdate) SetNillableMode(v *string) *MaskRecordUpdate {
	if v != nil {
		_u.SetMode(*v)
	}
	return _u
}

// SetSalt sets the "salt" field.
func (_u *MaskRecordUpdate) SetSalt(v []byte) *MaskRecordUpdate {
	_u.mutation.SetSalt(v)
	return _u
}

// ClearSalt clears the value of the "salt" field.
func (_u *MaskRecordUpdate) ClearSalt() *MaskRecordUpdate {
	_u.mutation.ClearSalt()
	return _u
}

// SetSpans sets the "spans" field.
func (_u *MaskRecordUpdate) SetSpans(v json.RawMessage) *MaskRecordUpdate {
	_u.mutation.SetSpans(v)
	return _u
}

// AppendSpans appends value to the "spans" field.
func (_u *MaskRecordUpdate) AppendSpans(v json.RawMessage) *MaskRecordUpdate {
	_u.mutation.AppendSpans(v)
	return _u
}

// ClearSpans clears the value of the "spans" field.
func (_u *MaskRecordUpdate) ClearSpans() *MaskRecordUpdate {
	_u.mutation.ClearSpans()
	return _u
}

// SetDocument sets the "document" edge to the Document entity.
func (_u *MaskRecordUpdate) SetDocument(v *Document) *MaskRecordUpdate {
	return _u.SetDocumentID(v.ID)
}

// Mutation returns the MaskRecordMutation object of the builder.
func (_u *MaskRecordUpdate) Mutation() *MaskRecordMutation {
	return _u.mutation
}

// ClearDocument clears the "document" edge to the Document entity.
func (_u *MaskRecordUpdate) ClearDocument() *MaskRecordUpdate {
	_u.mutation.ClearDocument()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *MaskRecordUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MaskRecordUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *MaskRecordUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MaskRecordUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MaskRecordUpdate) check() error {
	if v, ok := _u.mutation.Mode(); ok {
		if err := maskrecord.ModeValidator(v); err != nil {
			return &ValidationError{Name: "mode", err: fmt.Errorf(`ent: validator failed for field "MaskRecord.mode": %w`, err)}
		}
	}
	if _u.mutation.DocumentCleared() && len(_u.mutation.DocumentIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "MaskRecord.document"`)
	}
	return nil
}

func (_u *MaskRecordUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(maskrecord.Table, maskrecord.Columns, sqlgraph.NewFieldSpec(maskrecord.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Mode(); ok {
		_spec.SetField(maskrecord.FieldMode, field.TypeString, value)
	}
	if value, ok := _u.mutation.Salt(); ok {
		_spec.SetField(maskrecord.FieldSalt, field.TypeBytes, value)
	}
	if _u.mutation.SaltCleared() {
		_spec.ClearField(maskrecord.FieldSalt, field.TypeBytes)
	}
	if value, ok := _u.mutation.Spans(); ok {
		_spec.SetField(maskrecord.FieldSpans, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSpans(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, maskrecord.FieldSpans, value)
		})
	}
	if _u.mutation.SpansCleared() {
		_spec.ClearField(maskrecord.FieldSpans, field.TypeJSON)
	}
	if _u.mutation.DocumentCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DocumentIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{maskrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// MaskRecordUpdateOne is the builder for updating a single MaskRecord entity.
type MaskRecordUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *MaskRecordMutation
}

// SetDocumentID sets the "document_id" field.
func (_u *MaskRecordUpdateOne) SetDocumentID(v uuid.UUID) *MaskRecordUpdateOne {
	_u.mutation.SetDocumentID(v)
	return _u
}

// SetNillableDocumentID sets the "document_id" field if the given value is not nil.
func (_u *MaskRecordUpdateOne) SetNillableDocumentID(v *uuid.UUID) *MaskRecordUpdateOne {
	if v != nil {
		_u.SetDocumentID(*v)
	}
	return _u
}

// SetMode sets the "mode" field.
func (_u *MaskRecordUpdateOne) SetMode(v string) *MaskRecordUpdateOne {
	_u.mutation.SetMode(v)
	return _u
}

// SetNillableMode sets the "mode" field if the given value is not nil.
func (_u *MaskRecordUpdateOne) SetNillableMode(v *string) *MaskRecordUpdateOne {
	if v != nil {
		_u.SetMode(*v)
	}
	return _u
}

// SetSalt sets the "salt" field.
func (_u *MaskRecordUpdateOne) SetSalt(v []byte) *MaskRecordUpdateOne {
	_u.mutation.SetSalt(v)
	return _u
}

// ClearSalt clears the value of the "salt" field.
func (_u *MaskRecordUpdateOne) ClearSalt() *MaskRecordUpdateOne {
	_u.mutation.ClearSalt()
	return _u
}

// SetSpans sets the "spans" field.
func (_u *MaskRecordUpdateOne) SetSpans(v json.RawMessage) *MaskRecordUpdateOne {
	_u.mutation.SetSpans(v)
	return _u
}

// AppendSpans appends value to the "spans" field.
func (_u *MaskRecordUpdateOne) AppendSpans(v json.RawMessage) *MaskRecordUpdateOne {
	_u.mutation.AppendSpans(v)
	return _u
}

// ClearSpans clears the value of the "spans" field.
func (_u *MaskRecordUpdateOne) ClearSpans() *MaskRecordUpdateOne {
	_u.mutation.ClearSpans()
	return _u
}

// SetDocument sets the "document" edge to the Document entity.
func (_u *MaskRecordUpdateOne) SetDocument(v *Document) *MaskRecordUpdateOne {
	return _u.SetDocumentID(v.ID)
}

// Mutation returns the MaskRecordMutation object of the builder.
func (_u *MaskRecordUpdateOne) Mutation() *MaskRecordMutation {
	return _u.mutation
}

// ClearDocument clears the "document" edge to the Document entity.
func (_u *MaskRecordUpdateOne) ClearDocument() *MaskRecordUpdateOne {
	_u.mutation.ClearDocument()
	return _u
}

// Where appends a list predicates to the MaskRecordUpdate builder.
func (_u *MaskRecordUpdateOne) Where(ps ...predicate.MaskRecord) *MaskRecordUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *MaskRecordUpdateOne) Select(field string, fields ...string) *MaskRecordUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated MaskRecord entity.
func (_u *MaskRecordUpdateOne) Save(ctx context.Context) (*MaskRecord, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MaskRecordUpdateOne) SaveX(ctx context.Context) *MaskRecord {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *MaskRecordUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MaskRecordUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MaskRecordUpdateOne) check() error {
	if v, ok := _u.mutation.Mode(); ok {
		if err := maskrecord.ModeValidator(v); err != nil {
			return &ValidationError{Name: "mode", err: fmt.Errorf(`ent: validator failed for field "MaskRecord.mode": %w`, err)}
		}
	}
	if _u.mutation.DocumentCleared() && len(_u.mutation.DocumentIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "MaskRecord.document"`)
	}
	return nil
}

func (_u *MaskRecordUpdateOne) sqlSave(ctx context.Context) (_node *MaskRecord, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(maskrecord.Table, maskrecord.Columns, sqlgraph.NewFieldSpec(maskrecord.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "MaskRecord.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, maskrecord.FieldID)
		for _, f := range fields {
			if !maskrecord.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != maskrecord.FieldID {
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
	if value, ok := _u.mutation.Mode(); ok {
		_spec.SetField(maskrecord.FieldMode, field.TypeString, value)
	}
	if value, ok := _u.mutation.Salt(); ok {
		_spec.SetField(maskrecord.FieldSalt, field.TypeBytes, value)
	}
	if _u.mutation.SaltCleared() {
		_spec.ClearField(maskrecord.FieldSalt, field.TypeBytes)
	}
	if value, ok := _u.mutation.Spans(); ok {
		_spec.SetField(maskrecord.FieldSpans, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSpans(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, maskrecord.FieldSpans, value)
		})
	}
	if _u.mutation.SpansCleared() {
		_spec.ClearField(maskrecord.FieldSpans, field.TypeJSON)
	}
	if _u.mutation.DocumentCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DocumentIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &MaskRecord{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{maskrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
