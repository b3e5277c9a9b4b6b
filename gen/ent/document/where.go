// Code generated by ent, DO NOT EDIT.

package document

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/affu-79/PII-SENTINEL-BACKEND-sub002/gen/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldID, id))
}

// BatchID applies equality check predicate on the "batch_id" field. It's identical to BatchIDEQ.
func BatchID(v uuid.UUID) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldBatchID, v))
}

// Filename applies equality check predicate on the "filename" field. It's identical to FilenameEQ.
func Filename(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldFilename, v))
}

// Kind applies equality check predicate on the "kind" field. It's identical to KindEQ.
func Kind(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldKind, v))
}

// ByteSize applies equality check predicate on the "byte_size" field. It's identical to ByteSizeEQ.
func ByteSize(v int) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldByteSize, v))
}

// ContentHash applies equality check predicate on the "content_hash" field. It's identical to ContentHashEQ.
func ContentHash(v []byte) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldContentHash, v))
}

// StorageLocation applies equality check predicate on the "storage_location" field. It's identical to StorageLocationEQ.
func StorageLocation(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldStorageLocation, v))
}

// Status applies equality check predicate on the "status" field. It's identical to StatusEQ.
func Status(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldStatus, v))
}

// RetryCount applies equality check predicate on the "retry_count" field. It's identical to RetryCountEQ.
func RetryCount(v int) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldRetryCount, v))
}

// FailureCode applies equality check predicate on the "failure_code" field. It's identical to FailureCodeEQ.
func FailureCode(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldFailureCode, v))
}

// FailureMessage applies equality check predicate on the "failure_message" field. It's identical to FailureMessageEQ.
func FailureMessage(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldFailureMessage, v))
}

// UploadedAt applies equality check predicate on the "uploaded_at" field. It's identical to UploadedAtEQ.
func UploadedAt(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldUploadedAt, v))
}

// CompletedAt applies equality check predicate on the "completed_at" field. It's identical to CompletedAtEQ.
func CompletedAt(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldCompletedAt, v))
}

// BatchIDEQ applies the EQ predicate on the "batch_id" field.
func BatchIDEQ(v uuid.UUID) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldBatchID, v))
}

// BatchIDNEQ applies the NEQ predicate on the "batch_id" field.
func BatchIDNEQ(v uuid.UUID) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldBatchID, v))
}

// BatchIDIn applies the In predicate on the "batch_id" field.
func BatchIDIn(vs ...uuid.UUID) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldBatchID, vs...))
}

// BatchIDNotIn applies the NotIn predicate on the "batch_id" field.
func BatchIDNotIn(vs ...uuid.UUID) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldBatchID, vs...))
}

// FilenameEQ applies the EQ predicate on the "filename" field.
func FilenameEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldFilename, v))
}

// FilenameNEQ applies the NEQ predicate on the "filename" field.
func FilenameNEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldFilename, v))
}

// FilenameIn applies the In predicate on the "filename" field.
func FilenameIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldFilename, vs...))
}

// FilenameNotIn applies the NotIn predicate on the "filename" field.
func FilenameNotIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldFilename, vs...))
}

// FilenameGT applies the GT predicate on the "filename" field.
func FilenameGT(v string) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldFilename, v))
}

// FilenameGTE applies the GTE predicate on the "filename" field.
func FilenameGTE(v string) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldFilename, v))
}

// FilenameLT applies the LT predicate on the "filename" field.
func FilenameLT(v string) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldFilename, v))
}

// FilenameLTE applies the LTE predicate on the "filename" field.
func FilenameLTE(v string) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldFilename, v))
}

// FilenameContains applies the Contains predicate on the "filename" field.
func FilenameContains(v string) predicate.Document {
	return predicate.Document(sql.FieldContains(FieldFilename, v))
}

// FilenameHasPrefix applies the HasPrefix predicate on the "filename" field.
func FilenameHasPrefix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasPrefix(FieldFilename, v))
}

// FilenameHasSuffix applies the HasSuffix predicate on the "filename" field.
func FilenameHasSuffix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasSuffix(FieldFilename, v))
}

// FilenameEqualFold applies the EqualFold predicate on the "filename" field.
func FilenameEqualFold(v string) predicate.Document {
	return predicate.Document(sql.FieldEqualFold(FieldFilename, v))
}

// FilenameContainsFold applies the ContainsFold predicate on the "filename" field.
func FilenameContainsFold(v string) predicate.Document {
	return predicate.Document(sql.FieldContainsFold(FieldFilename, v))
}

// KindEQ applies the EQ predicate on the "kind" field.
func KindEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldKind, v))
}

// KindNEQ applies the NEQ predicate on the "kind" field.
func KindNEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldKind, v))
}

// KindIn applies the In predicate on the "kind" field.
func KindIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldKind, vs...))
}

// KindNotIn applies the NotIn predicate on the "kind" field.
func KindNotIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldKind, vs...))
}

// KindGT applies the GT predicate on the "kind" field.
func KindGT(v string) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldKind, v))
}

// KindGTE applies the GTE predicate on the "kind" field.
func KindGTE(v string) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldKind, v))
}

// KindLT applies the LT predicate on the "kind" field.
func KindLT(v string) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldKind, v))
}

// KindLTE applies the LTE predicate on the "kind" field.
func KindLTE(v string) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldKind, v))
}

// KindContains applies the Contains predicate on the "kind" field.
func KindContains(v string) predicate.Document {
	return predicate.Document(sql.FieldContains(FieldKind, v))
}

// KindHasPrefix applies the HasPrefix predicate on the "kind" field.
func KindHasPrefix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasPrefix(FieldKind, v))
}

// KindHasSuffix applies the HasSuffix predicate on the "kind" field.
func KindHasSuffix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasSuffix(FieldKind, v))
}

// KindEqualFold applies the EqualFold predicate on the "kind" field.
func KindEqualFold(v string) predicate.Document {
	return predicate.Document(sql.FieldEqualFold(FieldKind, v))
}

// KindContainsFold applies the ContainsFold predicate on the "kind" field.
func KindContainsFold(v string) predicate.Document {
	return predicate.Document(sql.FieldContainsFold(FieldKind, v))
}

// ByteSizeEQ applies the EQ predicate on the "byte_size" field.
func ByteSizeEQ(v int) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldByteSize, v))
}

// ByteSizeNEQ applies the NEQ predicate on the "byte_size" field.
func ByteSizeNEQ(v int) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldByteSize, v))
}

// ByteSizeIn applies the In predicate on the "byte_size" field.
func ByteSizeIn(vs ...int) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldByteSize, vs...))
}

// ByteSizeNotIn applies the NotIn predicate on the "byte_size" field.
func ByteSizeNotIn(vs ...int) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldByteSize, vs...))
}

// ByteSizeGT applies the GT predicate on the "byte_size" field.
func ByteSizeGT(v int) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldByteSize, v))
}

// ByteSizeGTE applies the GTE predicate on the "byte_size" field.
func ByteSizeGTE(v int) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldByteSize, v))
}

// ByteSizeLT applies the LT predicate on the "byte_size" field.
func ByteSizeLT(v int) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldByteSize, v))
}

// ByteSizeLTE applies the LTE predicate on the "byte_size" field.
func ByteSizeLTE(v int) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldByteSize, v))
}

// ContentHashEQ applies the EQ predicate on the "content_hash" field.
func ContentHashEQ(v []byte) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldContentHash, v))
}

// ContentHashNEQ applies the NEQ predicate on the "content_hash" field.
func ContentHashNEQ(v []byte) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldContentHash, v))
}

// ContentHashIn applies the In predicate on the "content_hash" field.
func ContentHashIn(vs ...[]byte) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldContentHash, vs...))
}

// ContentHashNotIn applies the NotIn predicate on the "content_hash" field.
func ContentHashNotIn(vs ...[]byte) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldContentHash, vs...))
}

// ContentHashGT applies the GT predicate on the "content_hash" field.
func ContentHashGT(v []byte) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldContentHash, v))
}

// ContentHashGTE applies the GTE predicate on the "content_hash" field.
func ContentHashGTE(v []byte) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldContentHash, v))
}

// ContentHashLT applies the LT predicate on the "content_hash" field.
func ContentHashLT(v []byte) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldContentHash, v))
}

// ContentHashLTE applies the LTE predicate on the "content_hash" field.
func ContentHashLTE(v []byte) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldContentHash, v))
}

// StorageLocationEQ applies the EQ predicate on the "storage_location" field.
func StorageLocationEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldStorageLocation, v))
}

// StorageLocationNEQ applies the NEQ predicate on the "storage_location" field.
func StorageLocationNEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldStorageLocation, v))
}

// StorageLocationIn applies the In predicate on the "storage_location" field.
func StorageLocationIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldStorageLocation, vs...))
}

// StorageLocationNotIn applies the NotIn predicate on the "storage_location" field.
func StorageLocationNotIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldStorageLocation, vs...))
}

// StorageLocationGT applies the GT predicate on the "storage_location" field.
func StorageLocationGT(v string) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldStorageLocation, v))
}

// StorageLocationGTE applies the GTE predicate on the "storage_location" field.
func StorageLocationGTE(v string) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldStorageLocation, v))
}

// StorageLocationLT applies the LT predicate on the "storage_location" field.
func StorageLocationLT(v string) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldStorageLocation, v))
}

// StorageLocationLTE applies the LTE predicate on the "storage_location" field.
func StorageLocationLTE(v string) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldStorageLocation, v))
}

// StorageLocationContains applies the Contains predicate on the "storage_location" field.
func StorageLocationContains(v string) predicate.Document {
	return predicate.Document(sql.FieldContains(FieldStorageLocation, v))
}

// StorageLocationHasPrefix applies the HasPrefix predicate on the "storage_location" field.
func StorageLocationHasPrefix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasPrefix(FieldStorageLocation, v))
}

// StorageLocationHasSuffix applies the HasSuffix predicate on the "storage_location" field.
func StorageLocationHasSuffix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasSuffix(FieldStorageLocation, v))
}

// StorageLocationEqualFold applies the EqualFold predicate on the "storage_location" field.
func StorageLocationEqualFold(v string) predicate.Document {
	return predicate.Document(sql.FieldEqualFold(FieldStorageLocation, v))
}

// StorageLocationContainsFold applies the ContainsFold predicate on the "storage_location" field.
func StorageLocationContainsFold(v string) predicate.Document {
	return predicate.Document(sql.FieldContainsFold(FieldStorageLocation, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusGT applies the GT predicate on the "status" field.
func StatusGT(v string) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldStatus, v))
}

// StatusGTE applies the GTE predicate on the "status" field.
func StatusGTE(v string) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldStatus, v))
}

// StatusLT applies the LT predicate on the "status" field.
func StatusLT(v string) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldStatus, v))
}

// StatusLTE applies the LTE predicate on the "status" field.
func StatusLTE(v string) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldStatus, v))
}

// StatusContains applies the Contains predicate on the "status" field.
func StatusContains(v string) predicate.Document {
	return predicate.Document(sql.FieldContains(FieldStatus, v))
}

// StatusHasPrefix applies the HasPrefix predicate on the "status" field.
func StatusHasPrefix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasPrefix(FieldStatus, v))
}

// StatusHasSuffix applies the HasSuffix predicate on the "status" field.
func StatusHasSuffix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasSuffix(FieldStatus, v))
}

// StatusEqualFold applies the EqualFold predicate on the "status" field.
func StatusEqualFold(v string) predicate.Document {
	return predicate.Document(sql.FieldEqualFold(FieldStatus, v))
}

// StatusContainsFold applies the ContainsFold predicate on the "status" field.
func StatusContainsFold(v string) predicate.Document {
	return predicate.Document(sql.FieldContainsFold(FieldStatus, v))
}

// RetryCountEQ applies the EQ predicate on the "retry_count" field.
func RetryCountEQ(v int) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldRetryCount, v))
}

// RetryCountNEQ applies the NEQ predicate on the "retry_count" field.
func RetryCountNEQ(v int) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldRetryCount, v))
}

// RetryCountIn applies the In predicate on the "retry_count" field.
func RetryCountIn(vs ...int) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldRetryCount, vs...))
}

// RetryCountNotIn applies the NotIn predicate on the "retry_count" field.
func RetryCountNotIn(vs ...int) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldRetryCount, vs...))
}

// RetryCountGT applies the GT predicate on the "retry_count" field.
func RetryCountGT(v int) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldRetryCount, v))
}

// RetryCountGTE applies the GTE predicate on the "retry_count" field.
func RetryCountGTE(v int) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldRetryCount, v))
}

// RetryCountLT applies the LT predicate on the "retry_count" field.
func RetryCountLT(v int) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldRetryCount, v))
}

// RetryCountLTE applies the LTE predicate on the "retry_count" field.
func RetryCountLTE(v int) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldRetryCount, v))
}

// FailureCodeEQ applies the EQ predicate on the "failure_code" field.
func FailureCodeEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldFailureCode, v))
}

// FailureCodeNEQ applies the NEQ predicate on the "failure_code" field.
func FailureCodeNEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldFailureCode, v))
}

// FailureCodeIn applies the In predicate on the "failure_code" field.
func FailureCodeIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldFailureCode, vs...))
}

// FailureCodeNotIn applies the NotIn predicate on the "failure_code" field.
func FailureCodeNotIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldFailureCode, vs...))
}

// FailureCodeGT applies the GT predicate on the "failure_code" field.
func FailureCodeGT(v string) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldFailureCode, v))
}

// FailureCodeGTE applies the GTE predicate on the "failure_code" field.
func FailureCodeGTE(v string) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldFailureCode, v))
}

// FailureCodeLT applies the LT predicate on the "failure_code" field.
func FailureCodeLT(v string) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldFailureCode, v))
}

// FailureCodeLTE applies the LTE predicate on the "failure_code" field.
func FailureCodeLTE(v string) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldFailureCode, v))
}

// FailureCodeContains applies the Contains predicate on the "failure_code" field.
func FailureCodeContains(v string) predicate.Document {
	return predicate.Document(sql.FieldContains(FieldFailureCode, v))
}

// FailureCodeHasPrefix applies the HasPrefix predicate on the "failure_code" field.
func FailureCodeHasPrefix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasPrefix(FieldFailureCode, v))
}

// FailureCodeHasSuffix applies the HasSuffix predicate on the "failure_code" field.
func FailureCodeHasSuffix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasSuffix(FieldFailureCode, v))
}

// FailureCodeIsNil applies the IsNil predicate on the "failure_code" field.
func FailureCodeIsNil() predicate.Document {
	return predicate.Document(sql.FieldIsNull(FieldFailureCode))
}

// FailureCodeNotNil applies the NotNil predicate on the "failure_code" field.
func FailureCodeNotNil() predicate.Document {
	return predicate.Document(sql.FieldNotNull(FieldFailureCode))
}

// FailureCodeEqualFold applies the EqualFold predicate on the "failure_code" field.
func FailureCodeEqualFold(v string) predicate.Document {
	return predicate.Document(sql.FieldEqualFold(FieldFailureCode, v))
}

// FailureCodeContainsFold applies the ContainsFold predicate on the "failure_code" field.
func FailureCodeContainsFold(v string) predicate.Document {
	return predicate.Document(sql.FieldContainsFold(FieldFailureCode, v))
}

// FailureMessageEQ applies the EQ predicate on the "failure_message" field.
func FailureMessageEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldFailureMessage, v))
}

// FailureMessageNEQ applies the NEQ predicate on the "failure_message" field.
func FailureMessageNEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldFailureMessage, v))
}

// FailureMessageIn applies the In predicate on the "failure_message" field.
func FailureMessageIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldFailureMessage, vs...))
}

// FailureMessageNotIn applies the NotIn predicate on the "failure_message" field.
func FailureMessageNotIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldFailureMessage, vs...))
}

// FailureMessageGT applies the GT predicate on the "failure_message" field.
func FailureMessageGT(v string) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldFailureMessage, v))
}

// FailureMessageGTE applies the GTE predicate on the "failure_message" field.
func FailureMessageGTE(v string) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldFailureMessage, v))
}

// FailureMessageLT applies the LT predicate on the "failure_message" field.
func FailureMessageLT(v string) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldFailureMessage, v))
}

// FailureMessageLTE applies the LTE predicate on the "failure_message" field.
func FailureMessageLTE(v string) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldFailureMessage, v))
}

// FailureMessageContains applies the Contains predicate on the "failure_message" field.
func FailureMessageContains(v string) predicate.Document {
	return predicate.Document(sql.FieldContains(FieldFailureMessage, v))
}

// FailureMessageHasPrefix applies the HasPrefix predicate on the "failure_message" field.
func FailureMessageHasPrefix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasPrefix(FieldFailureMessage, v))
}

// FailureMessageHasSuffix applies the HasSuffix predicate on the "failure_message" field.
func FailureMessageHasSuffix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasSuffix(FieldFailureMessage, v))
}

// FailureMessageIsNil applies the IsNil predicate on the "failure_message" field.
func FailureMessageIsNil() predicate.Document {
	return predicate.Document(sql.FieldIsNull(FieldFailureMessage))
}

// FailureMessageNotNil applies the NotNil predicate on the "failure_message" field.
func FailureMessageNotNil() predicate.Document {
	return predicate.Document(sql.FieldNotNull(FieldFailureMessage))
}

// FailureMessageEqualFold applies the EqualFold predicate on the "failure_message" field.
func FailureMessageEqualFold(v string) predicate.Document {
	return predicate.Document(sql.FieldEqualFold(FieldFailureMessage, v))
}

// FailureMessageContainsFold applies the ContainsFold predicate on the "failure_message" field.
func FailureMessageContainsFold(v string) predicate.Document {
	return predicate.Document(sql.FieldContainsFold(FieldFailureMessage, v))
}

// UploadedAtEQ applies the EQ predicate on the "uploaded_at" field.
func UploadedAtEQ(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldUploadedAt, v))
}

// UploadedAtNEQ applies the NEQ predicate on the "uploaded_at" field.
func UploadedAtNEQ(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldUploadedAt, v))
}

// UploadedAtIn applies the In predicate on the "uploaded_at" field.
func UploadedAtIn(vs ...time.Time) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldUploadedAt, vs...))
}

// UploadedAtNotIn applies the NotIn predicate on the "uploaded_at" field.
func UploadedAtNotIn(vs ...time.Time) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldUploadedAt, vs...))
}

// UploadedAtGT applies the GT predicate on the "uploaded_at" field.
func UploadedAtGT(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldUploadedAt, v))
}

// UploadedAtGTE applies the GTE predicate on the "uploaded_at" field.
func UploadedAtGTE(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldUploadedAt, v))
}

// UploadedAtLT applies the LT predicate on the "uploaded_at" field.
func UploadedAtLT(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldUploadedAt, v))
}

// UploadedAtLTE applies the LTE predicate on the "uploaded_at" field.
func UploadedAtLTE(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldUploadedAt, v))
}

// CompletedAtEQ applies the EQ predicate on the "completed_at" field.
func CompletedAtEQ(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldCompletedAt, v))
}

// CompletedAtNEQ applies the NEQ predicate on the "completed_at" field.
func CompletedAtNEQ(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldCompletedAt, v))
}

// CompletedAtIn applies the In predicate on the "completed_at" field.
func CompletedAtIn(vs ...time.Time) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldCompletedAt, vs...))
}

// CompletedAtNotIn applies the NotIn predicate on the "completed_at" field.
func CompletedAtNotIn(vs ...time.Time) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldCompletedAt, vs...))
}

// CompletedAtGT applies the GT predicate on the "completed_at" field.
func CompletedAtGT(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldCompletedAt, v))
}

// CompletedAtGTE applies the GTE predicate on the "completed_at" field.
func CompletedAtGTE(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldCompletedAt, v))
}

// CompletedAtLT applies the LT predicate on the "completed_at" field.
func CompletedAtLT(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldCompletedAt, v))
}

// CompletedAtLTE applies the LTE predicate on the "completed_at" field.
func CompletedAtLTE(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldCompletedAt, v))
}

// CompletedAtIsNil applies the IsNil predicate on the "completed_at" field.
func CompletedAtIsNil() predicate.Document {
	return predicate.Document(sql.FieldIsNull(FieldCompletedAt))
}

// CompletedAtNotNil applies the NotNil predicate on the "completed_at" field.
func CompletedAtNotNil() predicate.Document {
	return predicate.Document(sql.FieldNotNull(FieldCompletedAt))
}

// HasBatch applies the HasEdge predicate on the "batch" edge.
func HasBatch() predicate.Document {
	return predicate.Document(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, BatchTable, BatchColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasBatchWith applies the HasEdge predicate on the "batch" edge with a given conditions (other predicates).
func HasBatchWith(preds ...predicate.Batch) predicate.Document {
	return predicate.Document(func(s *sql.Selector) {
		step := newBatchStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasMaskRecords applies the HasEdge predicate on the "mask_records" edge.
func HasMaskRecords() predicate.Document {
	return predicate.Document(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, MaskRecordsTable, MaskRecordsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasMaskRecordsWith applies the HasEdge predicate on the "mask_records" edge with a given conditions (other predicates).
func HasMaskRecordsWith(preds ...predicate.MaskRecord) predicate.Document {
	return predicate.Document(func(s *sql.Selector) {
		step := newMaskRecordsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Document) predicate.Document {
	return predicate.Document(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Document) predicate.Document {
	return predicate.Document(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Document) predicate.Document {
	return predicate.Document(sql.NotPredicates(p))
}
