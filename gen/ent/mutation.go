// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/affu-79/PII-SENTINEL-BACKEND-sub002/gen/ent/batch"
	"github.com/affu-79/PII-SENTINEL-BACKEND-sub002/gen/ent/document"
	"github.com/affu-79/PII-SENTINEL-BACKEND-sub002/gen/ent/maskrecord"
	"github.com/affu-79/PII-SENTINEL-BACKEND-sub002/gen/ent/predicate"
	"github.com/affu-79/PII-SENTINEL-BACKEND-sub002/gen/ent/processjob"
	"github.com/google/uuid"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeBatch      = "Batch"
	TypeDocument   = "Document"
	TypeMaskRecord = "MaskRecord"
	TypeProcessJob = "ProcessJob"
)

// BatchMutation represents an operation that mutates the Batch nodes in the graph.
type BatchMutation struct {
	config
	op                 Op
	typ                string
	id                 *uuid.UUID
	name               *string
	owner_ref          *string
	created_at         *time.Time
	total_documents    *int
	addtotal_documents *int
	succeeded          *int
	addsucceeded       *int
	failed             *int
	addfailed          *int
	in_flight          *int
	addin_flight       *int
	clearedFields      map[string]struct{}
	documents          map[uuid.UUID]struct{}
	removeddocuments   map[uuid.UUID]struct{}
	cleareddocuments   bool
	jobs               map[uuid.UUID]struct{}
	removedjobs        map[uuid.UUID]struct{}
	clearedjobs        bool
	done               bool
	oldValue           func(context.Context) (*Batch, error)
	predicates         []predicate.Batch
}

var _ ent.Mutation = (*BatchMutation)(nil)

// batchOption allows management of the mutation configuration using functional options.
type batchOption func(*BatchMutation)

// newBatchMutation creates new mutation for the Batch entity.
func newBatchMutation(c config, op Op, opts ...batchOption) *BatchMutation {
	m := &BatchMutation{
		config:        c,
		op:            op,
		typ:           TypeBatch,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withBatchID sets the ID field of the mutation.
func withBatchID(id uuid.UUID) batchOption {
	return func(m *BatchMutation) {
		var (
			err   error
			once  sync.Once
			value *Batch
		)
		m.oldValue = func(ctx context.Context) (*Batch, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Batch.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withBatch sets the old Batch of the mutation.
func withBatch(node *Batch) batchOption {
	return func(m *BatchMutation) {
		m.oldValue = func(context.Context) (*Batch, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m BatchMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m BatchMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Batch entities.
func (m *BatchMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *BatchMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *BatchMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Batch.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *BatchMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *BatchMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Batch entity.
// If the Batch object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BatchMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *BatchMutation) ResetName() {
	m.name = nil
}

// SetOwnerRef sets the "owner_ref" field.
func (m *BatchMutation) SetOwnerRef(s string) {
	m.owner_ref = &s
}

// OwnerRef returns the value of the "owner_ref" field in the mutation.
func (m *BatchMutation) OwnerRef() (r string, exists bool) {
	v := m.owner_ref
	if v == nil {
		return
	}
	return *v, true
}

// OldOwnerRef returns the old "owner_ref" field's value of the Batch entity.
// If the Batch object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BatchMutation) OldOwnerRef(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOwnerRef is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOwnerRef requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOwnerRef: %w", err)
	}
	return oldValue.OwnerRef, nil
}

// ResetOwnerRef resets all changes to the "owner_ref" field.
func (m *BatchMutation) ResetOwnerRef() {
	m.owner_ref = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *BatchMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *BatchMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Batch entity.
// If the Batch object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BatchMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *BatchMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetTotalDocuments sets the "total_documents" field.
func (m *BatchMutation) SetTotalDocuments(i int) {
	m.total_documents = &i
	m.addtotal_documents = nil
}

// TotalDocuments returns the value of the "total_documents" field in the mutation.
func (m *BatchMutation) TotalDocuments() (r int, exists bool) {
	v := m.total_documents
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalDocuments returns the old "total_documents" field's value of the Batch entity.
// If the Batch object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BatchMutation) OldTotalDocuments(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalDocuments is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalDocuments requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalDocuments: %w", err)
	}
	return oldValue.TotalDocuments, nil
}

// AddTotalDocuments adds i to the "total_documents" field.
func (m *BatchMutation) AddTotalDocuments(i int) {
	if m.addtotal_documents != nil {
		*m.addtotal_documents += i
	} else {
		m.addtotal_documents = &i
	}
}

// AddedTotalDocuments returns the value that was added to the "total_documents" field in this mutation.
func (m *BatchMutation) AddedTotalDocuments() (r int, exists bool) {
	v := m.addtotal_documents
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalDocuments resets all changes to the "total_documents" field.
func (m *BatchMutation) ResetTotalDocuments() {
	m.total_documents = nil
	m.addtotal_documents = nil
}

// SetSucceeded sets the "succeeded" field.
func (m *BatchMutation) SetSucceeded(i int) {
	m.succeeded = &i
	m.addsucceeded = nil
}

// Succeeded returns the value of the "succeeded" field in the mutation.
func (m *BatchMutation) Succeeded() (r int, exists bool) {
	v := m.succeeded
	if v == nil {
		return
	}
	return *v, true
}

// OldSucceeded returns the old "succeeded" field's value of the Batch entity.
// If the Batch object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BatchMutation) OldSucceeded(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSucceeded is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSucceeded requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSucceeded: %w", err)
	}
	return oldValue.Succeeded, nil
}

// AddSucceeded adds i to the "succeeded" field.
func (m *BatchMutation) AddSucceeded(i int) {
	if m.addsucceeded != nil {
		*m.addsucceeded += i
	} else {
		m.addsucceeded = &i
	}
}

// AddedSucceeded returns the value that was added to the "succeeded" field in this mutation.
func (m *BatchMutation) AddedSucceeded() (r int, exists bool) {
	v := m.addsucceeded
	if v == nil {
		return
	}
	return *v, true
}

// ResetSucceeded resets all changes to the "succeeded" field.
func (m *BatchMutation) ResetSucceeded() {
	m.succeeded = nil
	m.addsucceeded = nil
}

// SetFailed sets the "failed" field.
func (m *BatchMutation) SetFailed(i int) {
	m.failed = &i
	m.addfailed = nil
}

// Failed returns the value of the "failed" field in the mutation.
func (m *BatchMutation) Failed() (r int, exists bool) {
	v := m.failed
	if v == nil {
		return
	}
	return *v, true
}

// OldFailed returns the old "failed" field's value of the Batch entity.
// If the Batch object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BatchMutation) OldFailed(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFailed is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFailed requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFailed: %w", err)
	}
	return oldValue.Failed, nil
}

// AddFailed adds i to the "failed" field.
func (m *BatchMutation) AddFailed(i int) {
	if m.addfailed != nil {
		*m.addfailed += i
	} else {
		m.addfailed = &i
	}
}

// AddedFailed returns the value that was added to the "failed" field in this mutation.
func (m *BatchMutation) AddedFailed() (r int, exists bool) {
	v := m.addfailed
	if v == nil {
		return
	}
	return *v, true
}

// ResetFailed resets all changes to the "failed" field.
func (m *BatchMutation) ResetFailed() {
	m.failed = nil
	m.addfailed = nil
}

// SetInFlight sets the "in_flight" field.
func (m *BatchMutation) SetInFlight(i int) {
	m.in_flight = &i
	m.addin_flight = nil
}

// InFlight returns the value of the "in_flight" field in the mutation.
func (m *BatchMutation) InFlight() (r int, exists bool) {
	v := m.in_flight
	if v == nil {
		return
	}
	return *v, true
}

// OldInFlight returns the old "in_flight" field's value of the Batch entity.
// If the Batch object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BatchMutation) OldInFlight(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInFlight is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInFlight requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInFlight: %w", err)
	}
	return oldValue.InFlight, nil
}

// AddInFlight adds i to the "in_flight" field.
func (m *BatchMutation) AddInFlight(i int) {
	if m.addin_flight != nil {
		*m.addin_flight += i
	} else {
		m.addin_flight = &i
	}
}

// AddedInFlight returns the value that was added to the "in_flight" field in this mutation.
func (m *BatchMutation) AddedInFlight() (r int, exists bool) {
	v := m.addin_flight
	if v == nil {
		return
	}
	return *v, true
}

// ResetInFlight resets all changes to the "in_flight" field.
func (m *BatchMutation) ResetInFlight() {
	m.in_flight = nil
	m.addin_flight = nil
}

// AddDocumentIDs adds the "documents" edge to the Document entity by ids.
func (m *BatchMutation) AddDocumentIDs(ids ...uuid.UUID) {
	if m.documents == nil {
		m.documents = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.documents[ids[i]] = struct{}{}
	}
}

// ClearDocuments clears the "documents" edge to the Document entity.
func (m *BatchMutation) ClearDocuments() {
	m.cleareddocuments = true
}

// DocumentsCleared reports if the "documents" edge to the Document entity was cleared.
func (m *BatchMutation) DocumentsCleared() bool {
	return m.cleareddocuments
}

// RemoveDocumentIDs removes the "documents" edge to the Document entity by IDs.
func (m *BatchMutation) RemoveDocumentIDs(ids ...uuid.UUID) {
	if m.removeddocuments == nil {
		m.removeddocuments = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.documents, ids[i])
		m.removeddocuments[ids[i]] = struct{}{}
	}
}

// RemovedDocuments returns the removed IDs of the "documents" edge to the Document entity.
func (m *BatchMutation) RemovedDocumentsIDs() (ids []uuid.UUID) {
	for id := range m.removeddocuments {
		ids = append(ids, id)
	}
	return
}

// DocumentsIDs returns the "documents" edge IDs in the mutation.
func (m *BatchMutation) DocumentsIDs() (ids []uuid.UUID) {
	for id := range m.documents {
		ids = append(ids, id)
	}
	return
}

// ResetDocuments resets all changes to the "documents" edge.
func (m *BatchMutation) ResetDocuments() {
	m.documents = nil
	m.cleareddocuments = false
	m.removeddocuments = nil
}

// AddJobIDs adds the "jobs" edge to the ProcessJob entity by ids.
func (m *BatchMutation) AddJobIDs(ids ...uuid.UUID) {
	if m.jobs == nil {
		m.jobs = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.jobs[ids[i]] = struct{}{}
	}
}

// ClearJobs clears the "jobs" edge to the ProcessJob entity.
func (m *BatchMutation) ClearJobs() {
	m.clearedjobs = true
}

// JobsCleared reports if the "jobs" edge to the ProcessJob entity was cleared.
func (m *BatchMutation) JobsCleared() bool {
	return m.clearedjobs
}

// RemoveJobIDs removes the "jobs" edge to the ProcessJob entity by IDs.
func (m *BatchMutation) RemoveJobIDs(ids ...uuid.UUID) {
	if m.removedjobs == nil {
		m.removedjobs = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.jobs, ids[i])
		m.removedjobs[ids[i]] = struct{}{}
	}
}

// RemovedJobs returns the removed IDs of the "jobs" edge to the ProcessJob entity.
func (m *BatchMutation) RemovedJobsIDs() (ids []uuid.UUID) {
	for id := range m.removedjobs {
		ids = append(ids, id)
	}
	return
}

// JobsIDs returns the "jobs" edge IDs in the mutation.
func (m *BatchMutation) JobsIDs() (ids []uuid.UUID) {
	for id := range m.jobs {
		ids = append(ids, id)
	}
	return
}

// ResetJobs resets all changes to the "jobs" edge.
func (m *BatchMutation) ResetJobs() {
	m.jobs = nil
	m.clearedjobs = false
	m.removedjobs = nil
}

// Where appends a list predicates to the BatchMutation builder.
func (m *BatchMutation) Where(ps ...predicate.Batch) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the BatchMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *BatchMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Batch, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *BatchMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *BatchMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Batch).
func (m *BatchMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *BatchMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.name != nil {
		fields = append(fields, batch.FieldName)
	}
	if m.owner_ref != nil {
		fields = append(fields, batch.FieldOwnerRef)
	}
	if m.created_at != nil {
		fields = append(fields, batch.FieldCreatedAt)
	}
	if m.total_documents != nil {
		fields = append(fields, batch.FieldTotalDocuments)
	}
	if m.succeeded != nil {
		fields = append(fields, batch.FieldSucceeded)
	}
	if m.failed != nil {
		fields = append(fields, batch.FieldFailed)
	}
	if m.in_flight != nil {
		fields = append(fields, batch.FieldInFlight)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *BatchMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case batch.FieldName:
		return m.Name()
	case batch.FieldOwnerRef:
		return m.OwnerRef()
	case batch.FieldCreatedAt:
		return m.CreatedAt()
	case batch.FieldTotalDocuments:
		return m.TotalDocuments()
	case batch.FieldSucceeded:
		return m.Succeeded()
	case batch.FieldFailed:
		return m.Failed()
	case batch.FieldInFlight:
		return m.InFlight()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *BatchMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case batch.FieldName:
		return m.OldName(ctx)
	case batch.FieldOwnerRef:
		return m.OldOwnerRef(ctx)
	case batch.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case batch.FieldTotalDocuments:
		return m.OldTotalDocuments(ctx)
	case batch.FieldSucceeded:
		return m.OldSucceeded(ctx)
	case batch.FieldFailed:
		return m.OldFailed(ctx)
	case batch.FieldInFlight:
		return m.OldInFlight(ctx)
	}
	return nil, fmt.Errorf("unknown Batch field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *BatchMutation) SetField(name string, value ent.Value) error {
	switch name {
	case batch.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case batch.FieldOwnerRef:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOwnerRef(v)
		return nil
	case batch.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case batch.FieldTotalDocuments:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalDocuments(v)
		return nil
	case batch.FieldSucceeded:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSucceeded(v)
		return nil
	case batch.FieldFailed:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFailed(v)
		return nil
	case batch.FieldInFlight:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInFlight(v)
		return nil
	}
	return fmt.Errorf("unknown Batch field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *BatchMutation) AddedFields() []string {
	var fields []string
	if m.addtotal_documents != nil {
		fields = append(fields, batch.FieldTotalDocuments)
	}
	if m.addsucceeded != nil {
		fields = append(fields, batch.FieldSucceeded)
	}
	if m.addfailed != nil {
		fields = append(fields, batch.FieldFailed)
	}
	if m.addin_flight != nil {
		fields = append(fields, batch.FieldInFlight)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *BatchMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case batch.FieldTotalDocuments:
		return m.AddedTotalDocuments()
	case batch.FieldSucceeded:
		return m.AddedSucceeded()
	case batch.FieldFailed:
		return m.AddedFailed()
	case batch.FieldInFlight:
		return m.AddedInFlight()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *BatchMutation) AddField(name string, value ent.Value) error {
	switch name {
	case batch.FieldTotalDocuments:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalDocuments(v)
		return nil
	case batch.FieldSucceeded:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSucceeded(v)
		return nil
	case batch.FieldFailed:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddFailed(v)
		return nil
	case batch.FieldInFlight:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddInFlight(v)
		return nil
	}
	return fmt.Errorf("unknown Batch numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *BatchMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *BatchMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *BatchMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Batch nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *BatchMutation) ResetField(name string) error {
	switch name {
	case batch.FieldName:
		m.ResetName()
		return nil
	case batch.FieldOwnerRef:
		m.ResetOwnerRef()
		return nil
	case batch.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case batch.FieldTotalDocuments:
		m.ResetTotalDocuments()
		return nil
	case batch.FieldSucceeded:
		m.ResetSucceeded()
		return nil
	case batch.FieldFailed:
		m.ResetFailed()
		return nil
	case batch.FieldInFlight:
		m.ResetInFlight()
		return nil
	}
	return fmt.Errorf("unknown Batch field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *BatchMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.documents != nil {
		edges = append(edges, batch.EdgeDocuments)
	}
	if m.jobs != nil {
		edges = append(edges, batch.EdgeJobs)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *BatchMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case batch.EdgeDocuments:
		ids := make([]ent.Value, 0, len(m.documents))
		for id := range m.documents {
			ids = append(ids, id)
		}
		return ids
	case batch.EdgeJobs:
		ids := make([]ent.Value, 0, len(m.jobs))
		for id := range m.jobs {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *BatchMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removeddocuments != nil {
		edges = append(edges, batch.EdgeDocuments)
	}
	if m.removedjobs != nil {
		edges = append(edges, batch.EdgeJobs)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *BatchMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case batch.EdgeDocuments:
		ids := make([]ent.Value, 0, len(m.removeddocuments))
		for id := range m.removeddocuments {
			ids = append(ids, id)
		}
		return ids
	case batch.EdgeJobs:
		ids := make([]ent.Value, 0, len(m.removedjobs))
		for id := range m.removedjobs {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *BatchMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.cleareddocuments {
		edges = append(edges, batch.EdgeDocuments)
	}
	if m.clearedjobs {
		edges = append(edges, batch.EdgeJobs)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *BatchMutation) EdgeCleared(name string) bool {
	switch name {
	case batch.EdgeDocuments:
		return m.cleareddocuments
	case batch.EdgeJobs:
		return m.clearedjobs
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *BatchMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Batch unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *BatchMutation) ResetEdge(name string) error {
	switch name {
	case batch.EdgeDocuments:
		m.ResetDocuments()
		return nil
	case batch.EdgeJobs:
		m.ResetJobs()
		return nil
	}
	return fmt.Errorf("unknown Batch edge %s", name)
}

// DocumentMutation represents an operation that mutates the Document nodes in the graph.
type DocumentMutation struct {
	config
	op                  Op
	typ                 string
	id                  *uuid.UUID
	filename            *string
	kind                *string
	byte_size           *int
	addbyte_size        *int
	content_hash        *[]byte
	storage_location    *string
	status              *string
	retry_count         *int
	addretry_count      *int
	failure_code        *string
	failure_message     *string
	uploaded_at         *time.Time
	completed_at        *time.Time
	clearedFields       map[string]struct{}
	batch               *uuid.UUID
	clearedbatch        bool
	mask_records        map[uuid.UUID]struct{}
	removedmask_records map[uuid.UUID]struct{}
	clearedmask_records bool
	done                bool
	oldValue            func(context.Context) (*Document, error)
	predicates          []predicate.Document
}

var _ ent.Mutation = (*DocumentMutation)(nil)

// documentOption allows management of the mutation configuration using functional options.
type documentOption func(*DocumentMutation)

// newDocumentMutation creates new mutation for the Document entity.
func newDocumentMutation(c config, op Op, opts ...documentOption) *DocumentMutation {
	m := &DocumentMutation{
		config:        c,
		op:            op,
		typ:           TypeDocument,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withDocumentID sets the ID field of the mutation.
func withDocumentID(id uuid.UUID) documentOption {
	return func(m *DocumentMutation) {
		var (
			err   error
			once  sync.Once
			value *Document
		)
		m.oldValue = func(ctx context.Context) (*Document, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Document.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withDocument sets the old Document of the mutation.
func withDocument(node *Document) documentOption {
	return func(m *DocumentMutation) {
		m.oldValue = func(context.Context) (*Document, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m DocumentMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m DocumentMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Document entities.
func (m *DocumentMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *DocumentMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *DocumentMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Document.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetBatchID sets the "batch_id" field.
func (m *DocumentMutation) SetBatchID(u uuid.UUID) {
	m.batch = &u
}

// BatchID returns the value of the "batch_id" field in the mutation.
func (m *DocumentMutation) BatchID() (r uuid.UUID, exists bool) {
	v := m.batch
	if v == nil {
		return
	}
	return *v, true
}

// OldBatchID returns the old "batch_id" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldBatchID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBatchID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBatchID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBatchID: %w", err)
	}
	return oldValue.BatchID, nil
}

// ResetBatchID resets all changes to the "batch_id" field.
func (m *DocumentMutation) ResetBatchID() {
	m.batch = nil
}

// SetFilename sets the "filename" field.
func (m *DocumentMutation) SetFilename(s string) {
	m.filename = &s
}

// Filename returns the value of the "filename" field in the mutation.
func (m *DocumentMutation) Filename() (r string, exists bool) {
	v := m.filename
	if v == nil {
		return
	}
	return *v, true
}

// OldFilename returns the old "filename" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldFilename(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFilename is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFilename requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFilename: %w", err)
	}
	return oldValue.Filename, nil
}

// ResetFilename resets all changes to the "filename" field.
func (m *DocumentMutation) ResetFilename() {
	m.filename = nil
}

// SetKind sets the "kind" field.
func (m *DocumentMutation) SetKind(s string) {
	m.kind = &s
}

// Kind returns the value of the "kind" field in the mutation.
func (m *DocumentMutation) Kind() (r string, exists bool) {
	v := m.kind
	if v == nil {
		return
	}
	return *v, true
}

// OldKind returns the old "kind" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldKind(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKind is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKind requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKind: %w", err)
	}
	return oldValue.Kind, nil
}

// ResetKind resets all changes to the "kind" field.
func (m *DocumentMutation) ResetKind() {
	m.kind = nil
}

// SetByteSize sets the "byte_size" field.
func (m *DocumentMutation) SetByteSize(i int) {
	m.byte_size = &i
	m.addbyte_size = nil
}

// ByteSize returns the value of the "byte_size" field in the mutation.
func (m *DocumentMutation) ByteSize() (r int, exists bool) {
	v := m.byte_size
	if v == nil {
		return
	}
	return *v, true
}

// OldByteSize returns the old "byte_size" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldByteSize(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldByteSize is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldByteSize requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldByteSize: %w", err)
	}
	return oldValue.ByteSize, nil
}

// AddByteSize adds i to the "byte_size" field.
func (m *DocumentMutation) AddByteSize(i int) {
	if m.addbyte_size != nil {
		*m.addbyte_size += i
	} else {
		m.addbyte_size = &i
	}
}

// AddedByteSize returns the value that was added to the "byte_size" field in this mutation.
func (m *DocumentMutation) AddedByteSize() (r int, exists bool) {
	v := m.addbyte_size
	if v == nil {
		return
	}
	return *v, true
}

// ResetByteSize resets all changes to the "byte_size" field.
func (m *DocumentMutation) ResetByteSize() {
	m.byte_size = nil
	m.addbyte_size = nil
}

// SetContentHash sets the "content_hash" field.
func (m *DocumentMutation) SetContentHash(b []byte) {
	m.content_hash = &b
}

// ContentHash returns the value of the "content_hash" field in the mutation.
func (m *DocumentMutation) ContentHash() (r []byte, exists bool) {
	v := m.content_hash
	if v == nil {
		return
	}
	return *v, true
}

// OldContentHash returns the old "content_hash" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldContentHash(ctx context.Context) (v []byte, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContentHash is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContentHash requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContentHash: %w", err)
	}
	return oldValue.ContentHash, nil
}

// ResetContentHash resets all changes to the "content_hash" field.
func (m *DocumentMutation) ResetContentHash() {
	m.content_hash = nil
}

// SetStorageLocation sets the "storage_location" field.
func (m *DocumentMutation) SetStorageLocation(s string) {
	m.storage_location = &s
}

// StorageLocation returns the value of the "storage_location" field in the mutation.
func (m *DocumentMutation) StorageLocation() (r string, exists bool) {
	v := m.storage_location
	if v == nil {
		return
	}
	return *v, true
}

// OldStorageLocation returns the old "storage_location" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldStorageLocation(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStorageLocation is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStorageLocation requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStorageLocation: %w", err)
	}
	return oldValue.StorageLocation, nil
}

// ResetStorageLocation resets all changes to the "storage_location" field.
func (m *DocumentMutation) ResetStorageLocation() {
	m.storage_location = nil
}

// SetStatus sets the "status" field.
func (m *DocumentMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *DocumentMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *DocumentMutation) ResetStatus() {
	m.status = nil
}

// SetRetryCount sets the "retry_count" field.
func (m *DocumentMutation) SetRetryCount(i int) {
	m.retry_count = &i
	m.addretry_count = nil
}

// RetryCount returns the value of the "retry_count" field in the mutation.
func (m *DocumentMutation) RetryCount() (r int, exists bool) {
	v := m.retry_count
	if v == nil {
		return
	}
	return *v, true
}

// OldRetryCount returns the old "retry_count" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldRetryCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRetryCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRetryCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRetryCount: %w", err)
	}
	return oldValue.RetryCount, nil
}

// AddRetryCount adds i to the "retry_count" field.
func (m *DocumentMutation) AddRetryCount(i int) {
	if m.addretry_count != nil {
		*m.addretry_count += i
	} else {
		m.addretry_count = &i
	}
}

// AddedRetryCount returns the value that was added to the "retry_count" field in this mutation.
func (m *DocumentMutation) AddedRetryCount() (r int, exists bool) {
	v := m.addretry_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetRetryCount resets all changes to the "retry_count" field.
func (m *DocumentMutation) ResetRetryCount() {
	m.retry_count = nil
	m.addretry_count = nil
}

// SetFailureCode sets the "failure_code" field.
func (m *DocumentMutation) SetFailureCode(s string) {
	m.failure_code = &s
}

// FailureCode returns the value of the "failure_code" field in the mutation.
func (m *DocumentMutation) FailureCode() (r string, exists bool) {
	v := m.failure_code
	if v == nil {
		return
	}
	return *v, true
}

// OldFailureCode returns the old "failure_code" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldFailureCode(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFailureCode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFailureCode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFailureCode: %w", err)
	}
	return oldValue.FailureCode, nil
}

// ClearFailureCode clears the value of the "failure_code" field.
func (m *DocumentMutation) ClearFailureCode() {
	m.failure_code = nil
	m.clearedFields[document.FieldFailureCode] = struct{}{}
}

// FailureCodeCleared returns if the "failure_code" field was cleared in this mutation.
func (m *DocumentMutation) FailureCodeCleared() bool {
	_, ok := m.clearedFields[document.FieldFailureCode]
	return ok
}

// ResetFailureCode resets all changes to the "failure_code" field.
func (m *DocumentMutation) ResetFailureCode() {
	m.failure_code = nil
	delete(m.clearedFields, document.FieldFailureCode)
}

// SetFailureMessage sets the "failure_message" field.
func (m *DocumentMutation) SetFailureMessage(s string) {
	m.failure_message = &s
}

// FailureMessage returns the value of the "failure_message" field in the mutation.
func (m *DocumentMutation) FailureMessage() (r string, exists bool) {
	v := m.failure_message
	if v == nil {
		return
	}
	return *v, true
}

// OldFailureMessage returns the old "failure_message" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldFailureMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFailureMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFailureMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFailureMessage: %w", err)
	}
	return oldValue.FailureMessage, nil
}

// ClearFailureMessage clears the value of the "failure_message" field.
func (m *DocumentMutation) ClearFailureMessage() {
	m.failure_message = nil
	m.clearedFields[document.FieldFailureMessage] = struct{}{}
}

// FailureMessageCleared returns if the "failure_message" field was cleared in this mutation.
func (m *DocumentMutation) FailureMessageCleared() bool {
	_, ok := m.clearedFields[document.FieldFailureMessage]
	return ok
}

// ResetFailureMessage resets all changes to the "failure_message" field.
func (m *DocumentMutation) ResetFailureMessage() {
	m.failure_message = nil
	delete(m.clearedFields, document.FieldFailureMessage)
}

// SetUploadedAt sets the "uploaded_at" field.
func (m *DocumentMutation) SetUploadedAt(t time.Time) {
	m.uploaded_at = &t
}

// UploadedAt returns the value of the "uploaded_at" field in the mutation.
func (m *DocumentMutation) UploadedAt() (r time.Time, exists bool) {
	v := m.uploaded_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUploadedAt returns the old "uploaded_at" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldUploadedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUploadedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUploadedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUploadedAt: %w", err)
	}
	return oldValue.UploadedAt, nil
}

// ResetUploadedAt resets all changes to the "uploaded_at" field.
func (m *DocumentMutation) ResetUploadedAt() {
	m.uploaded_at = nil
}

// SetCompletedAt sets the "completed_at" field.
func (m *DocumentMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *DocumentMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *DocumentMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[document.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *DocumentMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[document.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *DocumentMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, document.FieldCompletedAt)
}

// ClearBatch clears the "batch" edge to the Batch entity.
func (m *DocumentMutation) ClearBatch() {
	m.clearedbatch = true
	m.clearedFields[document.FieldBatchID] = struct{}{}
}

// BatchCleared reports if the "batch" edge to the Batch entity was cleared.
func (m *DocumentMutation) BatchCleared() bool {
	return m.clearedbatch
}

// BatchIDs returns the "batch" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// BatchID instead. It exists only for internal usage by the builders.
func (m *DocumentMutation) BatchIDs() (ids []uuid.UUID) {
	if id := m.batch; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetBatch resets all changes to the "batch" edge.
func (m *DocumentMutation) ResetBatch() {
	m.batch = nil
	m.clearedbatch = false
}

// AddMaskRecordIDs adds the "mask_records" edge to the MaskRecord entity by ids.
func (m *DocumentMutation) AddMaskRecordIDs(ids ...uuid.UUID) {
	if m.mask_records == nil {
		m.mask_records = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.mask_records[ids[i]] = struct{}{}
	}
}

// ClearMaskRecords clears the "mask_records" edge to the MaskRecord entity.
func (m *DocumentMutation) ClearMaskRecords() {
	m.clearedmask_records = true
}

// MaskRecordsCleared reports if the "mask_records" edge to the MaskRecord entity was cleared.
func (m *DocumentMutation) MaskRecordsCleared() bool {
	return m.clearedmask_records
}

// RemoveMaskRecordIDs removes the "mask_records" edge to the MaskRecord entity by IDs.
func (m *DocumentMutation) RemoveMaskRecordIDs(ids ...uuid.UUID) {
	if m.removedmask_records == nil {
		m.removedmask_records = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.mask_records, ids[i])
		m.removedmask_records[ids[i]] = struct{}{}
	}
}

// RemovedMaskRecords returns the removed IDs of the "mask_records" edge to the MaskRecord entity.
func (m *DocumentMutation) RemovedMaskRecordsIDs() (ids []uuid.UUID) {
	for id := range m.removedmask_records {
		ids = append(ids, id)
	}
	return
}

// MaskRecordsIDs returns the "mask_records" edge IDs in the mutation.
func (m *DocumentMutation) MaskRecordsIDs() (ids []uuid.UUID) {
	for id := range m.mask_records {
		ids = append(ids, id)
	}
	return
}

// ResetMaskRecords resets all changes to the "mask_records" edge.
func (m *DocumentMutation) ResetMaskRecords() {
	m.mask_records = nil
	m.clearedmask_records = false
	m.removedmask_records = nil
}

// Where appends a list predicates to the DocumentMutation builder.
func (m *DocumentMutation) Where(ps ...predicate.Document) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the DocumentMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *DocumentMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Document, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *DocumentMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *DocumentMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Document).
func (m *DocumentMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *DocumentMutation) Fields() []string {
	fields := make([]string, 0, 12)
	if m.batch != nil {
		fields = append(fields, document.FieldBatchID)
	}
	if m.filename != nil {
		fields = append(fields, document.FieldFilename)
	}
	if m.kind != nil {
		fields = append(fields, document.FieldKind)
	}
	if m.byte_size != nil {
		fields = append(fields, document.FieldByteSize)
	}
	if m.content_hash != nil {
		fields = append(fields, document.FieldContentHash)
	}
	if m.storage_location != nil {
		fields = append(fields, document.FieldStorageLocation)
	}
	if m.status != nil {
		fields = append(fields, document.FieldStatus)
	}
	if m.retry_count != nil {
		fields = append(fields, document.FieldRetryCount)
	}
	if m.failure_code != nil {
		fields = append(fields, document.FieldFailureCode)
	}
	if m.failure_message != nil {
		fields = append(fields, document.FieldFailureMessage)
	}
	if m.uploaded_at != nil {
		fields = append(fields, document.FieldUploadedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, document.FieldCompletedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *DocumentMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case document.FieldBatchID:
		return m.BatchID()
	case document.FieldFilename:
		return m.Filename()
	case document.FieldKind:
		return m.Kind()
	case document.FieldByteSize:
		return m.ByteSize()
	case document.FieldContentHash:
		return m.ContentHash()
	case document.FieldStorageLocation:
		return m.StorageLocation()
	case document.FieldStatus:
		return m.Status()
	case document.FieldRetryCount:
		return m.RetryCount()
	case document.FieldFailureCode:
		return m.FailureCode()
	case document.FieldFailureMessage:
		return m.FailureMessage()
	case document.FieldUploadedAt:
		return m.UploadedAt()
	case document.FieldCompletedAt:
		return m.CompletedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *DocumentMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case document.FieldBatchID:
		return m.OldBatchID(ctx)
	case document.FieldFilename:
		return m.OldFilename(ctx)
	case document.FieldKind:
		return m.OldKind(ctx)
	case document.FieldByteSize:
		return m.OldByteSize(ctx)
	case document.FieldContentHash:
		return m.OldContentHash(ctx)
	case document.FieldStorageLocation:
		return m.OldStorageLocation(ctx)
	case document.FieldStatus:
		return m.OldStatus(ctx)
	case document.FieldRetryCount:
		return m.OldRetryCount(ctx)
	case document.FieldFailureCode:
		return m.OldFailureCode(ctx)
	case document.FieldFailureMessage:
		return m.OldFailureMessage(ctx)
	case document.FieldUploadedAt:
		return m.OldUploadedAt(ctx)
	case document.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Document field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DocumentMutation) SetField(name string, value ent.Value) error {
	switch name {
	case document.FieldBatchID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBatchID(v)
		return nil
	case document.FieldFilename:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFilename(v)
		return nil
	case document.FieldKind:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKind(v)
		return nil
	case document.FieldByteSize:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetByteSize(v)
		return nil
	case document.FieldContentHash:
		v, ok := value.([]byte)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContentHash(v)
		return nil
	case document.FieldStorageLocation:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStorageLocation(v)
		return nil
	case document.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case document.FieldRetryCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRetryCount(v)
		return nil
	case document.FieldFailureCode:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFailureCode(v)
		return nil
	case document.FieldFailureMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFailureMessage(v)
		return nil
	case document.FieldUploadedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUploadedAt(v)
		return nil
	case document.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Document field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *DocumentMutation) AddedFields() []string {
	var fields []string
	if m.addbyte_size != nil {
		fields = append(fields, document.FieldByteSize)
	}
	if m.addretry_count != nil {
		fields = append(fields, document.FieldRetryCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *DocumentMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case document.FieldByteSize:
		return m.AddedByteSize()
	case document.FieldRetryCount:
		return m.AddedRetryCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DocumentMutation) AddField(name string, value ent.Value) error {
	switch name {
	case document.FieldByteSize:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddByteSize(v)
		return nil
	case document.FieldRetryCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRetryCount(v)
		return nil
	}
	return fmt.Errorf("unknown Document numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *DocumentMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(document.FieldFailureCode) {
		fields = append(fields, document.FieldFailureCode)
	}
	if m.FieldCleared(document.FieldFailureMessage) {
		fields = append(fields, document.FieldFailureMessage)
	}
	if m.FieldCleared(document.FieldCompletedAt) {
		fields = append(fields, document.FieldCompletedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *DocumentMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *DocumentMutation) ClearField(name string) error {
	switch name {
	case document.FieldFailureCode:
		m.ClearFailureCode()
		return nil
	case document.FieldFailureMessage:
		m.ClearFailureMessage()
		return nil
	case document.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown Document nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *DocumentMutation) ResetField(name string) error {
	switch name {
	case document.FieldBatchID:
		m.ResetBatchID()
		return nil
	case document.FieldFilename:
		m.ResetFilename()
		return nil
	case document.FieldKind:
		m.ResetKind()
		return nil
	case document.FieldByteSize:
		m.ResetByteSize()
		return nil
	case document.FieldContentHash:
		m.ResetContentHash()
		return nil
	case document.FieldStorageLocation:
		m.ResetStorageLocation()
		return nil
	case document.FieldStatus:
		m.ResetStatus()
		return nil
	case document.FieldRetryCount:
		m.ResetRetryCount()
		return nil
	case document.FieldFailureCode:
		m.ResetFailureCode()
		return nil
	case document.FieldFailureMessage:
		m.ResetFailureMessage()
		return nil
	case document.FieldUploadedAt:
		m.ResetUploadedAt()
		return nil
	case document.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown Document field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *DocumentMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.batch != nil {
		edges = append(edges, document.EdgeBatch)
	}
	if m.mask_records != nil {
		edges = append(edges, document.EdgeMaskRecords)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *DocumentMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case document.EdgeBatch:
		if id := m.batch; id != nil {
			return []ent.Value{*id}
		}
	case document.EdgeMaskRecords:
		ids := make([]ent.Value, 0, len(m.mask_records))
		for id := range m.mask_records {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *DocumentMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedmask_records != nil {
		edges = append(edges, document.EdgeMaskRecords)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *DocumentMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case document.EdgeMaskRecords:
		ids := make([]ent.Value, 0, len(m.removedmask_records))
		for id := range m.removedmask_records {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *DocumentMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedbatch {
		edges = append(edges, document.EdgeBatch)
	}
	if m.clearedmask_records {
		edges = append(edges, document.EdgeMaskRecords)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *DocumentMutation) EdgeCleared(name string) bool {
	switch name {
	case document.EdgeBatch:
		return m.clearedbatch
	case document.EdgeMaskRecords:
		return m.clearedmask_records
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *DocumentMutation) ClearEdge(name string) error {
	switch name {
	case document.EdgeBatch:
		m.ClearBatch()
		return nil
	}
	return fmt.Errorf("unknown Document unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *DocumentMutation) ResetEdge(name string) error {
	switch name {
	case document.EdgeBatch:
		m.ResetBatch()
		return nil
	case document.EdgeMaskRecords:
		m.ResetMaskRecords()
		return nil
	}
	return fmt.Errorf("unknown Document edge %s", name)
}

// MaskRecordMutation represents an operation that mutates the MaskRecord nodes in the graph.
type MaskRecordMutation struct {
	config
	op              Op
	typ             string
	id              *uuid.UUID
	mode            *string
	salt            *[]byte
	spans           *json.RawMessage
	appendspans     json.RawMessage
	created_at      *time.Time
	clearedFields   map[string]struct{}
	document        *uuid.UUID
	cleareddocument bool
	done            bool
	oldValue        func(context.Context) (*MaskRecord, error)
	predicates      []predicate.MaskRecord
}

var _ ent.Mutation = (*MaskRecordMutation)(nil)

// maskrecordOption allows management of the mutation configuration using functional options.
type maskrecordOption func(*MaskRecordMutation)

// newMaskRecordMutation creates new mutation for the MaskRecord entity.
func newMaskRecordMutation(c config, op Op, opts ...maskrecordOption) *MaskRecordMutation {
	m := &MaskRecordMutation{
		config:        c,
		op:            op,
		typ:           TypeMaskRecord,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withMaskRecordID sets the ID field of the mutation.
func withMaskRecordID(id uuid.UUID) maskrecordOption {
	return func(m *MaskRecordMutation) {
		var (
			err   error
			once  sync.Once
			value *MaskRecord
		)
		m.oldValue = func(ctx context.Context) (*MaskRecord, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().MaskRecord.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withMaskRecord sets the old MaskRecord of the mutation.
func withMaskRecord(node *MaskRecord) maskrecordOption {
	return func(m *MaskRecordMutation) {
		m.oldValue = func(context.Context) (*MaskRecord, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m MaskRecordMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m MaskRecordMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of MaskRecord entities.
func (m *MaskRecordMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *MaskRecordMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *MaskRecordMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().MaskRecord.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetDocumentID sets the "document_id" field.
func (m *MaskRecordMutation) SetDocumentID(u uuid.UUID) {
	m.document = &u
}

// DocumentID returns the value of the "document_id" field in the mutation.
func (m *MaskRecordMutation) DocumentID() (r uuid.UUID, exists bool) {
	v := m.document
	if v == nil {
		return
	}
	return *v, true
}

// OldDocumentID returns the old "document_id" field's value of the MaskRecord entity.
// If the MaskRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MaskRecordMutation) OldDocumentID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDocumentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDocumentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDocumentID: %w", err)
	}
	return oldValue.DocumentID, nil
}

// ResetDocumentID resets all changes to the "document_id" field.
func (m *MaskRecordMutation) ResetDocumentID() {
	m.document = nil
}

// SetMode sets the "mode" field.
func (m *MaskRecordMutation) SetMode(s string) {
	m.mode = &s
}

// Mode returns the value of the "mode" field in the mutation.
func (m *MaskRecordMutation) Mode() (r string, exists bool) {
	v := m.mode
	if v == nil {
		return
	}
	return *v, true
}

// OldMode returns the old "mode" field's value of the MaskRecord entity.
// If the MaskRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MaskRecordMutation) OldMode(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMode: %w", err)
	}
	return oldValue.Mode, nil
}

// ResetMode resets all changes to the "mode" field.
func (m *MaskRecordMutation) ResetMode() {
	m.mode = nil
}

// SetSalt sets the "salt" field.
func (m *MaskRecordMutation) SetSalt(b []byte) {
	m.salt = &b
}

// Salt returns the value of the "salt" field in the mutation.
func (m *MaskRecordMutation) Salt() (r []byte, exists bool) {
	v := m.salt
	if v == nil {
		return
	}
	return *v, true
}

// OldSalt returns the old "salt" field's value of the MaskRecord entity.
// If the MaskRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MaskRecordMutation) OldSalt(ctx context.Context) (v []byte, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSalt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSalt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSalt: %w", err)
	}
	return oldValue.Salt, nil
}

// ClearSalt clears the value of the "salt" field.
func (m *MaskRecordMutation) ClearSalt() {
	m.salt = nil
	m.clearedFields[maskrecord.FieldSalt] = struct{}{}
}

// SaltCleared returns if the "salt" field was cleared in this mutation.
func (m *MaskRecordMutation) SaltCleared() bool {
	_, ok := m.clearedFields[maskrecord.FieldSalt]
	return ok
}

// ResetSalt resets all changes to the "salt" field.
func (m *MaskRecordMutation) ResetSalt() {
	m.salt = nil
	delete(m.clearedFields, maskrecord.FieldSalt)
}

// SetSpans sets the "spans" field.
func (m *MaskRecordMutation) SetSpans(jm json.RawMessage) {
	m.spans = &jm
	m.appendspans = nil
}

// Spans returns the value of the "spans" field in the mutation.
func (m *MaskRecordMutation) Spans() (r json.RawMessage, exists bool) {
	v := m.spans
	if v == nil {
		return
	}
	return *v, true
}

// OldSpans returns the old "spans" field's value of the MaskRecord entity.
// If the MaskRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MaskRecordMutation) OldSpans(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSpans is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSpans requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSpans: %w", err)
	}
	return oldValue.Spans, nil
}

// AppendSpans adds jm to the "spans" field.
func (m *MaskRecordMutation) AppendSpans(jm json.RawMessage) {
	m.appendspans = append(m.appendspans, jm...)
}

// AppendedSpans returns the list of values that were appended to the "spans" field in this mutation.
func (m *MaskRecordMutation) AppendedSpans() (json.RawMessage, bool) {
	if len(m.appendspans) == 0 {
		return nil, false
	}
	return m.appendspans, true
}

// ClearSpans clears the value of the "spans" field.
func (m *MaskRecordMutation) ClearSpans() {
	m.spans = nil
	m.appendspans = nil
	m.clearedFields[maskrecord.FieldSpans] = struct{}{}
}

// SpansCleared returns if the "spans" field was cleared in this mutation.
func (m *MaskRecordMutation) SpansCleared() bool {
	_, ok := m.clearedFields[maskrecord.FieldSpans]
	return ok
}

// ResetSpans resets all changes to the "spans" field.
func (m *MaskRecordMutation) ResetSpans() {
	m.spans = nil
	m.appendspans = nil
	delete(m.clearedFields, maskrecord.FieldSpans)
}

// SetCreatedAt sets the "created_at" field.
func (m *MaskRecordMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *MaskRecordMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the MaskRecord entity.
// If the MaskRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MaskRecordMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *MaskRecordMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearDocument clears the "document" edge to the Document entity.
func (m *MaskRecordMutation) ClearDocument() {
	m.cleareddocument = true
	m.clearedFields[maskrecord.FieldDocumentID] = struct{}{}
}

// DocumentCleared reports if the "document" edge to the Document entity was cleared.
func (m *MaskRecordMutation) DocumentCleared() bool {
	return m.cleareddocument
}

// DocumentIDs returns the "document" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// DocumentID instead. It exists only for internal usage by the builders.
func (m *MaskRecordMutation) DocumentIDs() (ids []uuid.UUID) {
	if id := m.document; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetDocument resets all changes to the "document" edge.
func (m *MaskRecordMutation) ResetDocument() {
	m.document = nil
	m.cleareddocument = false
}

// Where appends a list predicates to the MaskRecordMutation builder.
func (m *MaskRecordMutation) Where(ps ...predicate.MaskRecord) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the MaskRecordMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *MaskRecordMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.MaskRecord, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *MaskRecordMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *MaskRecordMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (MaskRecord).
func (m *MaskRecordMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *MaskRecordMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.document != nil {
		fields = append(fields, maskrecord.FieldDocumentID)
	}
	if m.mode != nil {
		fields = append(fields, maskrecord.FieldMode)
	}
	if m.salt != nil {
		fields = append(fields, maskrecord.FieldSalt)
	}
	if m.spans != nil {
		fields = append(fields, maskrecord.FieldSpans)
	}
	if m.created_at != nil {
		fields = append(fields, maskrecord.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *MaskRecordMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case maskrecord.FieldDocumentID:
		return m.DocumentID()
	case maskrecord.FieldMode:
		return m.Mode()
	case maskrecord.FieldSalt:
		return m.Salt()
	case maskrecord.FieldSpans:
		return m.Spans()
	case maskrecord.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *MaskRecordMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case maskrecord.FieldDocumentID:
		return m.OldDocumentID(ctx)
	case maskrecord.FieldMode:
		return m.OldMode(ctx)
	case maskrecord.FieldSalt:
		return m.OldSalt(ctx)
	case maskrecord.FieldSpans:
		return m.OldSpans(ctx)
	case maskrecord.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown MaskRecord field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MaskRecordMutation) SetField(name string, value ent.Value) error {
	switch name {
	case maskrecord.FieldDocumentID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDocumentID(v)
		return nil
	case maskrecord.FieldMode:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMode(v)
		return nil
	case maskrecord.FieldSalt:
		v, ok := value.([]byte)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSalt(v)
		return nil
	case maskrecord.FieldSpans:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSpans(v)
		return nil
	case maskrecord.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown MaskRecord field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *MaskRecordMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *MaskRecordMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MaskRecordMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown MaskRecord numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *MaskRecordMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(maskrecord.FieldSalt) {
		fields = append(fields, maskrecord.FieldSalt)
	}
	if m.FieldCleared(maskrecord.FieldSpans) {
		fields = append(fields, maskrecord.FieldSpans)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *MaskRecordMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *MaskRecordMutation) ClearField(name string) error {
	switch name {
	case maskrecord.FieldSalt:
		m.ClearSalt()
		return nil
	case maskrecord.FieldSpans:
		m.ClearSpans()
		return nil
	}
	return fmt.Errorf("unknown MaskRecord nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *MaskRecordMutation) ResetField(name string) error {
	switch name {
	case maskrecord.FieldDocumentID:
		m.ResetDocumentID()
		return nil
	case maskrecord.FieldMode:
		m.ResetMode()
		return nil
	case maskrecord.FieldSalt:
		m.ResetSalt()
		return nil
	case maskrecord.FieldSpans:
		m.ResetSpans()
		return nil
	case maskrecord.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown MaskRecord field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *MaskRecordMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.document != nil {
		edges = append(edges, maskrecord.EdgeDocument)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *MaskRecordMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case maskrecord.EdgeDocument:
		if id := m.document; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *MaskRecordMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *MaskRecordMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *MaskRecordMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.cleareddocument {
		edges = append(edges, maskrecord.EdgeDocument)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *MaskRecordMutation) EdgeCleared(name string) bool {
	switch name {
	case maskrecord.EdgeDocument:
		return m.cleareddocument
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *MaskRecordMutation) ClearEdge(name string) error {
	switch name {
	case maskrecord.EdgeDocument:
		m.ClearDocument()
		return nil
	}
	return fmt.Errorf("unknown MaskRecord unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *MaskRecordMutation) ResetEdge(name string) error {
	switch name {
	case maskrecord.EdgeDocument:
		m.ResetDocument()
		return nil
	}
	return fmt.Errorf("unknown MaskRecord edge %s", name)
}

// ProcessJobMutation represents an operation that mutates the ProcessJob nodes in the graph.
type ProcessJobMutation struct {
	config
	op            Op
	typ           string
	id            *uuid.UUID
	status        *string
	created_at    *time.Time
	completed_at  *time.Time
	results       *json.RawMessage
	appendresults json.RawMessage
	clearedFields map[string]struct{}
	batch         *uuid.UUID
	clearedbatch  bool
	done          bool
	oldValue      func(context.Context) (*ProcessJob, error)
	predicates    []predicate.ProcessJob
}

var _ ent.Mutation = (*ProcessJobMutation)(nil)

// processjobOption allows management of the mutation configuration using functional options.
type processjobOption func(*ProcessJobMutation)

// newProcessJobMutation creates new mutation for the ProcessJob entity.
func newProcessJobMutation(c config, op Op, opts ...processjobOption) *ProcessJobMutation {
	m := &ProcessJobMutation{
		config:        c,
		op:            op,
		typ:           TypeProcessJob,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withProcessJobID sets the ID field of the mutation.
func withProcessJobID(id uuid.UUID) processjobOption {
	return func(m *ProcessJobMutation) {
		var (
			err   error
			once  sync.Once
			value *ProcessJob
		)
		m.oldValue = func(ctx context.Context) (*ProcessJob, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ProcessJob.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withProcessJob sets the old ProcessJob of the mutation.
func withProcessJob(node *ProcessJob) processjobOption {
	return func(m *ProcessJobMutation) {
		m.oldValue = func(context.Context) (*ProcessJob, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ProcessJobMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ProcessJobMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ProcessJob entities.
func (m *ProcessJobMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ProcessJobMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ProcessJobMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ProcessJob.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetBatchID sets the "batch_id" field.
func (m *ProcessJobMutation) SetBatchID(u uuid.UUID) {
	m.batch = &u
}

// BatchID returns the value of the "batch_id" field in the mutation.
func (m *ProcessJobMutation) BatchID() (r uuid.UUID, exists bool) {
	v := m.batch
	if v == nil {
		return
	}
	return *v, true
}

// OldBatchID returns the old "batch_id" field's value of the ProcessJob entity.
// If the ProcessJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProcessJobMutation) OldBatchID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBatchID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBatchID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBatchID: %w", err)
	}
	return oldValue.BatchID, nil
}

// ResetBatchID resets all changes to the "batch_id" field.
func (m *ProcessJobMutation) ResetBatchID() {
	m.batch = nil
}

// SetStatus sets the "status" field.
func (m *ProcessJobMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *ProcessJobMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the ProcessJob entity.
// If the ProcessJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProcessJobMutation) OldStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *ProcessJobMutation) ResetStatus() {
	m.status = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *ProcessJobMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ProcessJobMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ProcessJob entity.
// If the ProcessJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProcessJobMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ProcessJobMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetCompletedAt sets the "completed_at" field.
func (m *ProcessJobMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *ProcessJobMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the ProcessJob entity.
// If the ProcessJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProcessJobMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *ProcessJobMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[processjob.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *ProcessJobMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[processjob.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *ProcessJobMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, processjob.FieldCompletedAt)
}

// SetResults sets the "results" field.
func (m *ProcessJobMutation) SetResults(jm json.RawMessage) {
	m.results = &jm
	m.appendresults = nil
}

// Results returns the value of the "results" field in the mutation.
func (m *ProcessJobMutation) Results() (r json.RawMessage, exists bool) {
	v := m.results
	if v == nil {
		return
	}
	return *v, true
}

// OldResults returns the old "results" field's value of the ProcessJob entity.
// If the ProcessJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProcessJobMutation) OldResults(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResults is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResults requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResults: %w", err)
	}
	return oldValue.Results, nil
}

// AppendResults adds jm to the "results" field.
func (m *ProcessJobMutation) AppendResults(jm json.RawMessage) {
	m.appendresults = append(m.appendresults, jm...)
}

// AppendedResults returns the list of values that were appended to the "results" field in this mutation.
func (m *ProcessJobMutation) AppendedResults() (json.RawMessage, bool) {
	if len(m.appendresults) == 0 {
		return nil, false
	}
	return m.appendresults, true
}

// ClearResults clears the value of the "results" field.
func (m *ProcessJobMutation) ClearResults() {
	m.results = nil
	m.appendresults = nil
	m.clearedFields[processjob.FieldResults] = struct{}{}
}

// ResultsCleared returns if the "results" field was cleared in this mutation.
func (m *ProcessJobMutation) ResultsCleared() bool {
	_, ok := m.clearedFields[processjob.FieldResults]
	return ok
}

// ResetResults resets all changes to the "results" field.
func (m *ProcessJobMutation) ResetResults() {
	m.results = nil
	m.appendresults = nil
	delete(m.clearedFields, processjob.FieldResults)
}

// ClearBatch clears the "batch" edge to the Batch entity.
func (m *ProcessJobMutation) ClearBatch() {
	m.clearedbatch = true
	m.clearedFields[processjob.FieldBatchID] = struct{}{}
}

// BatchCleared reports if the "batch" edge to the Batch entity was cleared.
func (m *ProcessJobMutation) BatchCleared() bool {
	return m.clearedbatch
}

// BatchIDs returns the "batch" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// BatchID instead. It exists only for internal usage by the builders.
func (m *ProcessJobMutation) BatchIDs() (ids []uuid.UUID) {
	if id := m.batch; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetBatch resets all changes to the "batch" edge.
func (m *ProcessJobMutation) ResetBatch() {
	m.batch = nil
	m.clearedbatch = false
}

// Where appends a list predicates to the ProcessJobMutation builder.
func (m *ProcessJobMutation) Where(ps ...predicate.ProcessJob) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ProcessJobMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ProcessJobMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ProcessJob, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ProcessJobMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ProcessJobMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ProcessJob).
func (m *ProcessJobMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ProcessJobMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.batch != nil {
		fields = append(fields, processjob.FieldBatchID)
	}
	if m.status != nil {
		fields = append(fields, processjob.FieldStatus)
	}
	if m.created_at != nil {
		fields = append(fields, processjob.FieldCreatedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, processjob.FieldCompletedAt)
	}
	if m.results != nil {
		fields = append(fields, processjob.FieldResults)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ProcessJobMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case processjob.FieldBatchID:
		return m.BatchID()
	case processjob.FieldStatus:
		return m.Status()
	case processjob.FieldCreatedAt:
		return m.CreatedAt()
	case processjob.FieldCompletedAt:
		return m.CompletedAt()
	case processjob.FieldResults:
		return m.Results()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ProcessJobMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case processjob.FieldBatchID:
		return m.OldBatchID(ctx)
	case processjob.FieldStatus:
		return m.OldStatus(ctx)
	case processjob.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case processjob.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	case processjob.FieldResults:
		return m.OldResults(ctx)
	}
	return nil, fmt.Errorf("unknown ProcessJob field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProcessJobMutation) SetField(name string, value ent.Value) error {
	switch name {
	case processjob.FieldBatchID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBatchID(v)
		return nil
	case processjob.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case processjob.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case processjob.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	case processjob.FieldResults:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResults(v)
		return nil
	}
	return fmt.Errorf("unknown ProcessJob field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ProcessJobMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ProcessJobMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProcessJobMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown ProcessJob numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ProcessJobMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(processjob.FieldCompletedAt) {
		fields = append(fields, processjob.FieldCompletedAt)
	}
	if m.FieldCleared(processjob.FieldResults) {
		fields = append(fields, processjob.FieldResults)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ProcessJobMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ProcessJobMutation) ClearField(name string) error {
	switch name {
	case processjob.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	case processjob.FieldResults:
		m.ClearResults()
		return nil
	}
	return fmt.Errorf("unknown ProcessJob nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ProcessJobMutation) ResetField(name string) error {
	switch name {
	case processjob.FieldBatchID:
		m.ResetBatchID()
		return nil
	case processjob.FieldStatus:
		m.ResetStatus()
		return nil
	case processjob.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case processjob.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	case processjob.FieldResults:
		m.ResetResults()
		return nil
	}
	return fmt.Errorf("unknown ProcessJob field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ProcessJobMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.batch != nil {
		edges = append(edges, processjob.EdgeBatch)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ProcessJobMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case processjob.EdgeBatch:
		if id := m.batch; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ProcessJobMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ProcessJobMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ProcessJobMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedbatch {
		edges = append(edges, processjob.EdgeBatch)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ProcessJobMutation) EdgeCleared(name string) bool {
	switch name {
	case processjob.EdgeBatch:
		return m.clearedbatch
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ProcessJobMutation) ClearEdge(name string) error {
	switch name {
	case processjob.EdgeBatch:
		m.ClearBatch()
		return nil
	}
	return fmt.Errorf("unknown ProcessJob unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ProcessJobMutation) ResetEdge(name string) error {
	switch name {
	case processjob.EdgeBatch:
		m.ResetBatch()
		return nil
	}
	return fmt.Errorf("unknown ProcessJob edge %s", name)
}
