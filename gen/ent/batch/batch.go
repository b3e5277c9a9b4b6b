// Code generated by ent, DO NOT EDIT.

package batch

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the batch type in the database.
	Label = "batch"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldOwnerRef holds the string denoting the owner_ref field in the database.
	FieldOwnerRef = "owner_ref"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldTotalDocuments holds the string denoting the total_documents field in the database.
	FieldTotalDocuments = "total_documents"
	// FieldSucceeded holds the string denoting the succeeded field in the database.
	FieldSucceeded = "succeeded"
	// FieldFailed holds the string denoting the failed field in the database.
	FieldFailed = "failed"
	// FieldInFlight holds the string denoting the in_flight field in the database.
	FieldInFlight = "in_flight"
	// EdgeDocuments holds the string denoting the documents edge name in mutations.
	EdgeDocuments = "documents"
	// EdgeJobs holds the string denoting the jobs edge name in mutations.
	EdgeJobs = "jobs"
	// Table holds the table name of the batch in the database.
	Table = "batches"
	// DocumentsTable is the table that holds the documents relation/edge.
	DocumentsTable = "documents"
	// DocumentsInverseTable is the table name for the Document entity.
	// It exists in this package in order to avoid circular dependency with the "document" package.
	DocumentsInverseTable = "documents"
	// DocumentsColumn is the table column denoting the documents relation/edge.
	DocumentsColumn = "batch_id"
	// JobsTable is the table that holds the jobs relation/edge.
	JobsTable = "process_jobs"
	// JobsInverseTable is the table name for the ProcessJob entity.
	// It exists in this package in order to avoid circular dependency with the "processjob" package.
	JobsInverseTable = "process_jobs"
	// JobsColumn is the table column denoting the jobs relation/edge.
	JobsColumn = "batch_id"
)

// Columns holds all SQL columns for batch fields.
var Columns = []string{
	FieldID,
	FieldName,
	FieldOwnerRef,
	FieldCreatedAt,
	FieldTotalDocuments,
	FieldSucceeded,
	FieldFailed,
	FieldInFlight,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// NameValidator is a validator for the "name" field. It is called by the builders before save.
	NameValidator func(string) error
	// OwnerRefValidator is a validator for the "owner_ref" field. It is called by the builders before save.
	OwnerRefValidator func(string) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultTotalDocuments holds the default value on creation for the "total_documents" field.
	DefaultTotalDocuments int
	// TotalDocumentsValidator is a validator for the "total_documents" field. It is called by the builders before save.
	TotalDocumentsValidator func(int) error
	// DefaultSucceeded holds the default value on creation for the "succeeded" field.
	DefaultSucceeded int
	// SucceededValidator is a validator for the "succeeded" field. It is called by the builders before save.
	SucceededValidator func(int) error
	// DefaultFailed holds the default value on creation for the "failed" field.
	DefaultFailed int
	// FailedValidator is a validator for the "failed" field. It is called by the builders before save.
	FailedValidator func(int) error
	// DefaultInFlight holds the default value on creation for the "in_flight" field.
	DefaultInFlight int
	// InFlightValidator is a validator for the "in_flight" field. It is called by the builders before save.
	InFlightValidator func(int) error
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the Batch queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByOwnerRef orders the results by the owner_ref field.
func ByOwnerRef(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOwnerRef, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByTotalDocuments orders the results by the total_documents field.
func ByTotalDocuments(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalDocuments, opts...).ToFunc()
}

// BySucceeded orders the results by the succeeded field.
func BySucceeded(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSucceeded, opts...).ToFunc()
}

// ByFailed orders the results by the failed field.
func ByFailed(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFailed, opts...).ToFunc()
}

// ByInFlight orders the results by the in_flight field.
func ByInFlight(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldInFlight, opts...).ToFunc()
}

// ByDocumentsCount orders the results by documents count.
func ByDocumentsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newDocumentsStep(), opts...)
	}
}

// ByDocuments orders the results by documents terms.
func ByDocuments(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newDocumentsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByJobsCount orders the results by jobs count.
func ByJobsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newJobsStep(), opts...)
	}
}

// ByJobs orders the results by jobs terms.
func ByJobs(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newJobsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newDocumentsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(DocumentsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, DocumentsTable, DocumentsColumn),
	)
}
func newJobsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(JobsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, JobsTable, JobsColumn),
	)
}
