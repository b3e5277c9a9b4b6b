// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/affu-79/PII-SENTINEL-BACKEND-sub002/gen/ent/batch"
	"github.com/google/uuid"
)

// Batch is the model entity for the Batch schema.
type Batch struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// OwnerRef holds the value of the "owner_ref" field.
	OwnerRef string `json:"owner_ref,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// TotalDocuments holds the value of the "total_documents" field.
	TotalDocuments int `json:"total_documents,omitempty"`
	// Succeeded holds the value of the "succeeded" field.
	Succeeded int `json:"succeeded,omitempty"`
	// Failed holds the value of the "failed" field.
	Failed int `json:"failed,omitempty"`
	// InFlight holds the value of the "in_flight" field.
	InFlight int `json:"in_flight,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the BatchQuery when eager-loading is set.
	Edges        BatchEdges `json:"edges"`
	selectValues sql.SelectValues
}

// BatchEdges holds the relations/edges for other nodes in the graph.
type BatchEdges struct {
	// Documents holds the value of the documents edge.
	Documents []*Document `json:"documents,omitempty"`
	// Jobs holds the value of the jobs edge.
	Jobs []*ProcessJob `json:"jobs,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// DocumentsOrErr returns the Documents value or an error if the edge
// was not loaded in eager-loading.
func (e BatchEdges) DocumentsOrErr() ([]*Document, error) {
	if e.loadedTypes[0] {
		return e.Documents, nil
	}
	return nil, &NotLoadedError{edge: "documents"}
}

// JobsOrErr returns the Jobs value or an error if the edge
// was not loaded in eager-loading.
func (e BatchEdges) JobsOrErr() ([]*ProcessJob, error) {
	if e.loadedTypes[1] {
		return e.Jobs, nil
	}
	return nil, &NotLoadedError{edge: "jobs"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Batch) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case batch.FieldTotalDocuments, batch.FieldSucceeded, batch.FieldFailed, batch.FieldInFlight:
			values[i] = new(sql.NullInt64)
		case batch.FieldName, batch.FieldOwnerRef:
			values[i] = new(sql.NullString)
		case batch.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		case batch.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Batch fields.
func (_m *Batch) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case batch.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case batch.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case batch.FieldOwnerRef:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field owner_ref", values[i])
			} else if value.Valid {
				_m.OwnerRef = value.String
			}
		case batch.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case batch.FieldTotalDocuments:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total_documents", values[i])
			} else if value.Valid {
				_m.TotalDocuments = int(value.Int64)
			}
		case batch.FieldSucceeded:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field succeeded", values[i])
			} else if value.Valid {
				_m.Succeeded = int(value.Int64)
			}
		case batch.FieldFailed:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field failed", values[i])
			} else if value.Valid {
				_m.Failed = int(value.Int64)
			}
		case batch.FieldInFlight:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field in_flight", values[i])
			} else if value.Valid {
				_m.InFlight = int(value.Int64)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Batch.
// This includes values selected through modifiers, order, etc.
func (_m *Batch) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryDocuments queries the "documents" edge of the Batch entity.
func (_m *Batch) QueryDocuments() *DocumentQuery {
	return NewBatchClient(_m.config).QueryDocuments(_m)
}

// QueryJobs queries the "jobs" edge of the Batch entity.
func (_m *Batch) QueryJobs() *ProcessJobQuery {
	return NewBatchClient(_m.config).QueryJobs(_m)
}

// Update returns a builder for updating this Batch.
// Note that you need to call Batch.Unwrap() before calling this method if this Batch
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Batch) Update() *BatchUpdateOne {
	return NewBatchClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Batch entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Batch) Unwrap() *Batch {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Batch is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Batch) String() string {
	var builder strings.Builder
	builder.WriteString("Batch(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("owner_ref=")
	builder.WriteString(_m.OwnerRef)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("total_documents=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalDocuments))
	builder.WriteString(", ")
	builder.WriteString("succeeded=")
	builder.WriteString(fmt.Sprintf("%v", _m.Succeeded))
	builder.WriteString(", ")
	builder.WriteString("failed=")
	builder.WriteString(fmt.Sprintf("%v", _m.Failed))
	builder.WriteString(", ")
	builder.WriteString("in_flight=")
	builder.WriteString(fmt.Sprintf("%v", _m.InFlight))
	builder.WriteByte(')')
	return builder.String()
}

// Batches is a parsable slice of Batch.
type Batches []*Batch
