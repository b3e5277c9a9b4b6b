// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/affu-79/PII-SENTINEL-BACKEND-sub002/db/ent/schema"
	"github.com/affu-79/PII-SENTINEL-BACKEND-sub002/gen/ent/batch"
	"github.com/affu-79/PII-SENTINEL-BACKEND-sub002/gen/ent/document"
	"github.com/affu-79/PII-SENTINEL-BACKEND-sub002/gen/ent/maskrecord"
	"github.com/affu-79/PII-SENTINEL-BACKEND-sub002/gen/ent/processjob"
	"github.com/google/uuid"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	batchFields := schema.Batch{}.Fields()
	_ = batchFields
	// batchDescName is the schema descriptor for name field.
	batchDescName := batchFields[1].Descriptor()
	// batch.NameValidator is a validator for the "name" field. It is called by the builders before save.
	batch.NameValidator = batchDescName.Validators[0].(func(string) error)
	// batchDescOwnerRef is the schema descriptor for owner_ref field.
	batchDescOwnerRef := batchFields[2].Descriptor()
	// batch.OwnerRefValidator is a validator for the "owner_ref" field. It is called by the builders before save.
	batch.OwnerRefValidator = batchDescOwnerRef.Validators[0].(func(string) error)
	// batchDescCreatedAt is the schema descriptor for created_at field.
	batchDescCreatedAt := batchFields[3].Descriptor()
	// batch.DefaultCreatedAt holds the default value on creation for the created_at field.
	batch.DefaultCreatedAt = batchDescCreatedAt.Default.(func() time.Time)
	// batchDescTotalDocuments is the schema descriptor for total_documents field.
	batchDescTotalDocuments := batchFields[4].Descriptor()
	// batch.DefaultTotalDocuments holds the default value on creation for the total_documents field.
	batch.DefaultTotalDocuments = batchDescTotalDocuments.Default.(int)
	// batch.TotalDocumentsValidator is a validator for the "total_documents" field. It is called by the builders before save.
	batch.TotalDocumentsValidator = batchDescTotalDocuments.Validators[0].(func(int) error)
	// batchDescSucceeded is the schema descriptor for succeeded field.
	batchDescSucceeded := batchFields[5].Descriptor()
	// batch.DefaultSucceeded holds the default value on creation for the succeeded field.
	batch.DefaultSucceeded = batchDescSucceeded.Default.(int)
	// batch.SucceededValidator is a validator for the "succeeded" field. It is called by the builders before save.
	batch.SucceededValidator = batchDescSucceeded.Validators[0].(func(int) error)
	// batchDescFailed is the schema descriptor for failed field.
	batchDescFailed := batchFields[6].Descriptor()
	// batch.DefaultFailed holds the default value on creation for the failed field.
	batch.DefaultFailed = batchDescFailed.Default.(int)
	// batch.FailedValidator is a validator for the "failed" field. It is called by the builders before save.
	batch.FailedValidator = batchDescFailed.Validators[0].(func(int) error)
	// batchDescInFlight is the schema descriptor for in_flight field.
	batchDescInFlight := batchFields[7].Descriptor()
	// batch.DefaultInFlight holds the default value on creation for the in_flight field.
	batch.DefaultInFlight = batchDescInFlight.Default.(int)
	// batch.InFlightValidator is a validator for the "in_flight" field. It is called by the builders before save.
	batch.InFlightValidator = batchDescInFlight.Validators[0].(func(int) error)
	// batchDescID is the schema descriptor for id field.
	batchDescID := batchFields[0].Descriptor()
	// batch.DefaultID holds the default value on creation for the id field.
	batch.DefaultID = batchDescID.Default.(func() uuid.UUID)
	documentFields := schema.Document{}.Fields()
	_ = documentFields
	// documentDescFilename is the schema descriptor for filename field.
	documentDescFilename := documentFields[2].Descriptor()
	// document.FilenameValidator is a validator for the "filename" field. It is called by the builders before save.
	document.FilenameValidator = documentDescFilename.Validators[0].(func(string) error)
	// documentDescKind is the schema descriptor for kind field.
	documentDescKind := documentFields[3].Descriptor()
	// document.KindValidator is a validator for the "kind" field. It is called by the builders before save.
	document.KindValidator = func() func(string) error {
		validators := documentDescKind.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(kind string) error {
			for _, fn := range fns {
				if err := fn(kind); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// documentDescByteSize is the schema descriptor for byte_size field.
	documentDescByteSize := documentFields[4].Descriptor()
	// document.ByteSizeValidator is a validator for the "byte_size" field. It is called by the builders before save.
	document.ByteSizeValidator = documentDescByteSize.Validators[0].(func(int) error)
	// documentDescContentHash is the schema descriptor for content_hash field.
	documentDescContentHash := documentFields[5].Descriptor()
	// document.ContentHashValidator is a validator for the "content_hash" field. It is called by the builders before save.
	document.ContentHashValidator = documentDescContentHash.Validators[0].(func([]byte) error)
	// documentDescStorageLocation is the schema descriptor for storage_location field.
	documentDescStorageLocation := documentFields[6].Descriptor()
	// document.StorageLocationValidator is a validator for the "storage_location" field. It is called by the builders before save.
	document.StorageLocationValidator = documentDescStorageLocation.Validators[0].(func(string) error)
	// documentDescStatus is the schema descriptor for status field.
	documentDescStatus := documentFields[7].Descriptor()
	// document.DefaultStatus holds the default value on creation for the status field.
	document.DefaultStatus = documentDescStatus.Default.(string)
	// document.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	document.StatusValidator = documentDescStatus.Validators[0].(func(string) error)
	// documentDescRetryCount is the schema descriptor for retry_count field.
	documentDescRetryCount := documentFields[8].Descriptor()
	// document.DefaultRetryCount holds the default value on creation for the retry_count field.
	document.DefaultRetryCount = documentDescRetryCount.Default.(int)
	// document.RetryCountValidator is a validator for the "retry_count" field. It is called by the builders before save.
	document.RetryCountValidator = documentDescRetryCount.Validators[0].(func(int) error)
	// documentDescUploadedAt is the schema descriptor for uploaded_at field.
	documentDescUploadedAt := documentFields[11].Descriptor()
	// document.DefaultUploadedAt holds the default value on creation for the uploaded_at field.
	document.DefaultUploadedAt = documentDescUploadedAt.Default.(func() time.Time)
	// documentDescID is the schema descriptor for id field.
	documentDescID := documentFields[0].Descriptor()
	// document.DefaultID holds the default value on creation for the id field.
	document.DefaultID = documentDescID.Default.(func() uuid.UUID)
	maskrecordFields := schema.MaskRecord{}.Fields()
	_ = maskrecordFields
	// maskrecordDescMode is the schema descriptor for mode field.
	maskrecordDescMode := maskrecordFields[2].Descriptor()
	// maskrecord.ModeValidator is a validator for the "mode" field. It is called by the builders before save.
	maskrecord.ModeValidator = func() func(string) error {
		validators := maskrecordDescMode.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(mode string) error {
			for _, fn := range fns {
				if err := fn(mode); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// maskrecordDescCreatedAt is the schema descriptor for created_at field.
	maskrecordDescCreatedAt := maskrecordFields[5].Descriptor()
	// maskrecord.DefaultCreatedAt holds the default value on creation for the created_at field.
	maskrecord.DefaultCreatedAt = maskrecordDescCreatedAt.Default.(func() time.Time)
	// maskrecordDescID is the schema descriptor for id field.
	maskrecordDescID := maskrecordFields[0].Descriptor()
	// maskrecord.DefaultID holds the default value on creation for the id field.
	maskrecord.DefaultID = maskrecordDescID.Default.(func() uuid.UUID)
	processjobFields := schema.ProcessJob{}.Fields()
	_ = processjobFields
	// processjobDescStatus is the schema descriptor for status field.
	processjobDescStatus := processjobFields[2].Descriptor()
	// processjob.DefaultStatus holds the default value on creation for the status field.
	processjob.DefaultStatus = processjobDescStatus.Default.(string)
	// processjob.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	processjob.StatusValidator = processjobDescStatus.Validators[0].(func(string) error)
	// processjobDescCreatedAt is the schema descriptor for created_at field.
	processjobDescCreatedAt := processjobFields[3].Descriptor()
	// processjob.DefaultCreatedAt holds the default value on creation for the created_at field.
	processjob.DefaultCreatedAt = processjobDescCreatedAt.Default.(func() time.Time)
	// processjobDescID is the schema descriptor for id field.
	processjobDescID := processjobFields[0].Descriptor()
	// processjob.DefaultID holds the default value on creation for the id field.
	processjob.DefaultID = processjobDescID.Default.(func() uuid.UUID)
}
