// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/affu-79/PII-SENTINEL-BACKEND-sub002/gen/ent/batch"
	"github.com/affu-79/PII-SENTINEL-BACKEND-sub002/gen/ent/processjob"
	"github.com/google/uuid"
)

// ProcessJob is the model entity for the ProcessJob schema.
type ProcessJob struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// BatchID holds the value of the "batch_id" field.
	BatchID uuid.UUID `json:"batch_id,omitempty"`
	// Status holds the value of the "status" field.
	Status string `json:"status,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// CompletedAt holds the value of the "completed_at" field.
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	// Results holds the value of the "results" field.
	Results json.RawMessage `json:"results,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ProcessJobQuery when eager-loading is set.
	Edges        ProcessJobEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ProcessJobEdges holds the relations/edges for other nodes in the graph.
type ProcessJobEdges struct {
	// Batch holds the value of the batch edge.
	Batch *Batch `json:"batch,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// BatchOrErr returns the Batch value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ProcessJobEdges) BatchOrErr() (*Batch, error) {
	if e.Batch != nil {
		return e.Batch, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: batch.Label}
	}
	return nil, &NotLoadedError{edge: "batch"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ProcessJob) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case processjob.FieldResults:
			values[i] = new([]byte)
		case processjob.FieldStatus:
			values[i] = new(sql.NullString)
		case processjob.FieldCreatedAt, processjob.FieldCompletedAt:
			values[i] = new(sql.NullTime)
		case processjob.FieldID, processjob.FieldBatchID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ProcessJob fields.
func (_m *ProcessJob) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case processjob.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case processjob.FieldBatchID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field batch_id", values[i])
			} else if value != nil {
				_m.BatchID = *value
			}
		case processjob.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = value.String
			}
		case processjob.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case processjob.FieldCompletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field completed_at", values[i])
			} else if value.Valid {
				_m.CompletedAt = new(time.Time)
				*_m.CompletedAt = value.Time
			}
		case processjob.FieldResults:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field results", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Results); err != nil {
					return fmt.Errorf("unmarshal field results: %w", err)
				}
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ProcessJob.
// This includes values selected through modifiers, order, etc.
func (_m *ProcessJob) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryBatch queries the "batch" edge of the ProcessJob entity.
func (_m *ProcessJob) QueryBatch() *BatchQuery {
	return NewProcessJobClient(_m.config).QueryBatch(_m)
}

// Update returns a builder for updating this ProcessJob.
// Note that you need to call ProcessJob.Unwrap() before calling this method if this ProcessJob
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ProcessJob) Update() *ProcessJobUpdateOne {
	return NewProcessJobClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ProcessJob entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ProcessJob) Unwrap() *ProcessJob {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ProcessJob is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ProcessJob) String() string {
	var builder strings.Builder
	builder.WriteString("ProcessJob(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("batch_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.BatchID))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(_m.Status)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.CompletedAt; v != nil {
		builder.WriteString("completed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("results=")
	builder.WriteString(fmt.Sprintf("%v", _m.Results))
	builder.WriteByte(')')
	return builder.String()
}

// ProcessJobs is a parsable slice of ProcessJob.
type ProcessJobs []*ProcessJob
