// Code generated by ent, DO NOT EDIT.

package batch

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/affu-79/PII-SENTINEL-BACKEND-sub002/gen/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Batch {
	return predicate.Batch(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Batch {
	return predicate.Batch(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Batch {
	return predicate.Batch(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Batch {
	return predicate.Batch(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Batch {
	return predicate.Batch(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Batch {
	return predicate.Batch(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Batch {
	return predicate.Batch(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Batch {
	return predicate.Batch(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Batch {
	return predicate.Batch(sql.FieldLTE(FieldID, id))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.Batch {
	return predicate.Batch(sql.FieldEQ(FieldName, v))
}

// OwnerRef applies equality check predicate on the "owner_ref" field. It's identical to OwnerRefEQ.
func OwnerRef(v string) predicate.Batch {
	return predicate.Batch(sql.FieldEQ(FieldOwnerRef, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Batch {
	return predicate.Batch(sql.FieldEQ(FieldCreatedAt, v))
}

// TotalDocuments applies equality check predicate on the "total_documents" field. It's identical to TotalDocumentsEQ.
func TotalDocuments(v int) predicate.Batch {
	return predicate.Batch(sql.FieldEQ(FieldTotalDocuments, v))
}

// Succeeded applies equality check predicate on the "succeeded" field. It's identical to SucceededEQ.
func Succeeded(v int) predicate.Batch {
	return predicate.Batch(sql.FieldEQ(FieldSucceeded, v))
}

// Failed applies equality check predicate on the "failed" field. It's identical to FailedEQ.
func Failed(v int) predicate.Batch {
	return predicate.Batch(sql.FieldEQ(FieldFailed, v))
}

// InFlight applies equality check predicate on the "in_flight" field. It's identical to InFlightEQ.
func InFlight(v int) predicate.Batch {
	return predicate.Batch(sql.FieldEQ(FieldInFlight, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.Batch {
	return predicate.Batch(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.Batch {
	return predicate.Batch(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.Batch {
	return predicate.Batch(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.Batch {
	return predicate.Batch(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.Batch {
	return predicate.Batch(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.Batch {
	return predicate.Batch(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.Batch {
	return predicate.Batch(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.Batch {
	return predicate.Batch(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.Batch {
	return predicate.Batch(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.Batch {
	return predicate.Batch(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.Batch {
	return predicate.Batch(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.Batch {
	return predicate.Batch(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.Batch {
	return predicate.Batch(sql.FieldContainsFold(FieldName, v))
}

// OwnerRefEQ applies the EQ predicate on the "owner_ref" field.
func OwnerRefEQ(v string) predicate.Batch {
	return predicate.Batch(sql.FieldEQ(FieldOwnerRef, v))
}

// OwnerRefNEQ applies the NEQ predicate on the "owner_ref" field.
func OwnerRefNEQ(v string) predicate.Batch {
	return predicate.Batch(sql.FieldNEQ(FieldOwnerRef, v))
}

// OwnerRefIn applies the In predicate on the "owner_ref" field.
func OwnerRefIn(vs ...string) predicate.Batch {
	return predicate.Batch(sql.FieldIn(FieldOwnerRef, vs...))
}

// OwnerRefNotIn applies the NotIn predicate on the "owner_ref" field.
func OwnerRefNotIn(vs ...string) predicate.Batch {
	return predicate.Batch(sql.FieldNotIn(FieldOwnerRef, vs...))
}

// OwnerRefGT applies the GT predicate on the "owner_ref" field.
func OwnerRefGT(v string) predicate.Batch {
	return predicate.Batch(sql.FieldGT(FieldOwnerRef, v))
}

// OwnerRefGTE applies the GTE predicate on the "owner_ref" field.
func OwnerRefGTE(v string) predicate.Batch {
	return predicate.Batch(sql.FieldGTE(FieldOwnerRef, v))
}

// OwnerRefLT applies the LT predicate on the "owner_ref" field.
func OwnerRefLT(v string) predicate.Batch {
	return predicate.Batch(sql.FieldLT(FieldOwnerRef, v))
}

// OwnerRefLTE applies the LTE predicate on the "owner_ref" field.
func OwnerRefLTE(v string) predicate.Batch {
	return predicate.Batch(sql.FieldLTE(FieldOwnerRef, v))
}

// OwnerRefContains applies the Contains predicate on the "owner_ref" field.
func OwnerRefContains(v string) predicate.Batch {
	return predicate.Batch(sql.FieldContains(FieldOwnerRef, v))
}

// OwnerRefHasPrefix applies the HasPrefix predicate on the "owner_ref" field.
func OwnerRefHasPrefix(v string) predicate.Batch {
	return predicate.Batch(sql.FieldHasPrefix(FieldOwnerRef, v))
}

// OwnerRefHasSuffix applies the HasSuffix predicate on the "owner_ref" field.
func OwnerRefHasSuffix(v string) predicate.Batch {
	return predicate.Batch(sql.FieldHasSuffix(FieldOwnerRef, v))
}

// OwnerRefEqualFold applies the EqualFold predicate on the "owner_ref" field.
func OwnerRefEqualFold(v string) predicate.Batch {
	return predicate.Batch(sql.FieldEqualFold(FieldOwnerRef, v))
}

// OwnerRefContainsFold applies the ContainsFold predicate on the "owner_ref" field.
func OwnerRefContainsFold(v string) predicate.Batch {
	return predicate.Batch(sql.FieldContainsFold(FieldOwnerRef, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Batch {
	return predicate.Batch(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Batch {
	return predicate.Batch(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Batch {
	return predicate.Batch(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Batch {
	return predicate.Batch(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Batch {
	return predicate.Batch(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Batch {
	return predicate.Batch(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Batch {
	return predicate.Batch(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Batch {
	return predicate.Batch(sql.FieldLTE(FieldCreatedAt, v))
}

// TotalDocumentsEQ applies the EQ predicate on the "total_documents" field.
func TotalDocumentsEQ(v int) predicate.Batch {
	return predicate.Batch(sql.FieldEQ(FieldTotalDocuments, v))
}

// TotalDocumentsNEQ applies the NEQ predicate on the "total_documents" field.
func TotalDocumentsNEQ(v int) predicate.Batch {
	return predicate.Batch(sql.FieldNEQ(FieldTotalDocuments, v))
}

// TotalDocumentsIn applies the In predicate on the "total_documents" field.
func TotalDocumentsIn(vs ...int) predicate.Batch {
	return predicate.Batch(sql.FieldIn(FieldTotalDocuments, vs...))
}

// TotalDocumentsNotIn applies the NotIn predicate on the "total_documents" field.
func TotalDocumentsNotIn(vs ...int) predicate.Batch {
	return predicate.Batch(sql.FieldNotIn(FieldTotalDocuments, vs...))
}

// TotalDocumentsGT applies the GT predicate on the "total_documents" field.
func TotalDocumentsGT(v int) predicate.Batch {
	return predicate.Batch(sql.FieldGT(FieldTotalDocuments, v))
}

// TotalDocumentsGTE applies the GTE predicate on the "total_documents" field.
func TotalDocumentsGTE(v int) predicate.Batch {
	return predicate.Batch(sql.FieldGTE(FieldTotalDocuments, v))
}

// TotalDocumentsLT applies the LT predicate on the "total_documents" field.
func TotalDocumentsLT(v int) predicate.Batch {
	return predicate.Batch(sql.FieldLT(FieldTotalDocuments, v))
}

// TotalDocumentsLTE applies the LTE predicate on the "total_documents" field.
func TotalDocumentsLTE(v int) predicate.Batch {
	return predicate.Batch(sql.FieldLTE(FieldTotalDocuments, v))
}

// SucceededEQ applies the EQ predicate on the "succeeded" field.
func SucceededEQ(v int) predicate.Batch {
	return predicate.Batch(sql.FieldEQ(FieldSucceeded, v))
}

// SucceededNEQ applies the NEQ predicate on the "succeeded" field.
func SucceededNEQ(v int) predicate.Batch {
	return predicate.Batch(sql.FieldNEQ(FieldSucceeded, v))
}

// SucceededIn applies the In predicate on the "succeeded" field.
func SucceededIn(vs ...int) predicate.Batch {
	return predicate.Batch(sql.FieldIn(FieldSucceeded, vs...))
}

// SucceededNotIn applies the NotIn predicate on the "succeeded" field.
func SucceededNotIn(vs ...int) predicate.Batch {
	return predicate.Batch(sql.FieldNotIn(FieldSucceeded, vs...))
}

// SucceededGT applies the GT predicate on the "succeeded" field.
func SucceededGT(v int) predicate.Batch {
	return predicate.Batch(sql.FieldGT(FieldSucceeded, v))
}

// SucceededGTE applies the GTE predicate on the "succeeded" field.
func SucceededGTE(v int) predicate.Batch {
	return predicate.Batch(sql.FieldGTE(FieldSucceeded, v))
}

// SucceededLT applies the LT predicate on the "succeeded" field.
func SucceededLT(v int) predicate.Batch {
	return predicate.Batch(sql.FieldLT(FieldSucceeded, v))
}

// SucceededLTE applies the LTE predicate on the "succeeded" field.
func SucceededLTE(v int) predicate.Batch {
	return predicate.Batch(sql.FieldLTE(FieldSucceeded, v))
}

// FailedEQ applies the EQ predicate on the "failed" field.
func FailedEQ(v int) predicate.Batch {
	return predicate.Batch(sql.FieldEQ(FieldFailed, v))
}

// FailedNEQ applies the NEQ predicate on the "failed" field.
func FailedNEQ(v int) predicate.Batch {
	return predicate.Batch(sql.FieldNEQ(FieldFailed, v))
}

// FailedIn applies the In predicate on the "failed" field.
func FailedIn(vs ...int) predicate.Batch {
	return predicate.Batch(sql.FieldIn(FieldFailed, vs...))
}

// FailedNotIn applies the NotIn predicate on the "failed" field.
func FailedNotIn(vs ...int) predicate.Batch {
	return predicate.Batch(sql.FieldNotIn(FieldFailed, vs...))
}

// FailedGT applies the GT predicate on the "failed" field.
func FailedGT(v int) predicate.Batch {
	return predicate.Batch(sql.FieldGT(FieldFailed, v))
}

// FailedGTE applies the GTE predicate on the "failed" field.
func FailedGTE(v int) predicate.Batch {
	return predicate.Batch(sql.FieldGTE(FieldFailed, v))
}

// FailedLT applies the LT predicate on the "failed" field.
func FailedLT(v int) predicate.Batch {
	return predicate.Batch(sql.FieldLT(FieldFailed, v))
}

// FailedLTE applies the LTE predicate on the "failed" field.
func FailedLTE(v int) predicate.Batch {
	return predicate.Batch(sql.FieldLTE(FieldFailed, v))
}

// InFlightEQ applies the EQ predicate on the "in_flight" field.
func InFlightEQ(v int) predicate.Batch {
	return predicate.Batch(sql.FieldEQ(FieldInFlight, v))
}

// InFlightNEQ applies the NEQ predicate on the "in_flight" field.
func InFlightNEQ(v int) predicate.Batch {
	return predicate.Batch(sql.FieldNEQ(FieldInFlight, v))
}

// InFlightIn applies the In predicate on the "in_flight" field.
func InFlightIn(vs ...int) predicate.Batch {
	return predicate.Batch(sql.FieldIn(FieldInFlight, vs...))
}

// InFlightNotIn applies the NotIn predicate on the "in_flight" field.
func InFlightNotIn(vs ...int) predicate.Batch {
	return predicate.Batch(sql.FieldNotIn(FieldInFlight, vs...))
}

// InFlightGT applies the GT predicate on the "in_flight" field.
func InFlightGT(v int) predicate.Batch {
	return predicate.Batch(sql.FieldGT(FieldInFlight, v))
}

// InFlightGTE applies the GTE predicate on the "in_flight" field.
func InFlightGTE(v int) predicate.Batch {
	return predicate.Batch(sql.FieldGTE(FieldInFlight, v))
}

// InFlightLT applies the LT predicate on the "in_flight" field.
func InFlightLT(v int) predicate.Batch {
	return predicate.Batch(sql.FieldLT(FieldInFlight, v))
}

// InFlightLTE applies the LTE predicate on the "in_flight" field.
func InFlightLTE(v int) predicate.Batch {
	return predicate.Batch(sql.FieldLTE(FieldInFlight, v))
}

// HasDocuments applies the HasEdge predicate on the "documents" edge.
func HasDocuments() predicate.Batch {
	return predicate.Batch(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, DocumentsTable, DocumentsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasDocumentsWith applies the HasEdge predicate on the "documents" edge with a given conditions (other predicates).
func HasDocumentsWith(preds ...predicate.Document) predicate.Batch {
	return predicate.Batch(func(s *sql.Selector) {
		step := newDocumentsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasJobs applies the HasEdge predicate on the "jobs" edge.
func HasJobs() predicate.Batch {
	return predicate.Batch(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, JobsTable, JobsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasJobsWith applies the HasEdge predicate on the "jobs" edge with a given conditions (other predicates).
func HasJobsWith(preds ...predicate.ProcessJob) predicate.Batch {
	return predicate.Batch(func(s *sql.Selector) {
		step := newJobsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Batch) predicate.Batch {
	return predicate.Batch(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Batch) predicate.Batch {
	return predicate.Batch(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Batch) predicate.Batch {
	return predicate.Batch(sql.NotPredicates(p))
}
