// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// BatchesColumns holds the columns for the "batches" table.
	BatchesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "name", Type: field.TypeString},
		{Name: "owner_ref", Type: field.TypeString},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "total_documents", Type: field.TypeInt, Default: 0},
		{Name: "succeeded", Type: field.TypeInt, Default: 0},
		{Name: "failed", Type: field.TypeInt, Default: 0},
		{Name: "in_flight", Type: field.TypeInt, Default: 0},
	}
	// BatchesTable holds the schema information for the "batches" table.
	BatchesTable = &schema.Table{
		Name:       "batches",
		Columns:    BatchesColumns,
		PrimaryKey: []*schema.Column{BatchesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "batch_owner_ref_created_at",
				Unique:  false,
				Columns: []*schema.Column{BatchesColumns[2], BatchesColumns[3]},
			},
		},
	}
	// DocumentsColumns holds the columns for the "documents" table.
	DocumentsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "filename", Type: field.TypeString},
		{Name: "kind", Type: field.TypeString},
		{Name: "byte_size", Type: field.TypeInt},
		{Name: "content_hash", Type: field.TypeBytes, SchemaType: map[string]string{"postgres": "bytea"}},
		{Name: "storage_location", Type: field.TypeString},
		{Name: "status", Type: field.TypeString, Default: "QUEUED"},
		{Name: "retry_count", Type: field.TypeInt, Default: 0},
		{Name: "failure_code", Type: field.TypeString, Nullable: true},
		{Name: "failure_message", Type: field.TypeString, Nullable: true},
		{Name: "uploaded_at", Type: field.TypeTime},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "batch_id", Type: field.TypeUUID},
	}
	// DocumentsTable holds the schema information for the "documents" table.
	DocumentsTable = &schema.Table{
		Name:       "documents",
		Columns:    DocumentsColumns,
		PrimaryKey: []*schema.Column{DocumentsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "documents_batches_documents",
				Columns:    []*schema.Column{DocumentsColumns[12]},
				RefColumns: []*schema.Column{BatchesColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "document_batch_id_content_hash",
				Unique:  true,
				Columns: []*schema.Column{DocumentsColumns[12], DocumentsColumns[4]},
			},
			{
				Name:    "document_batch_id_status",
				Unique:  false,
				Columns: []*schema.Column{DocumentsColumns[12], DocumentsColumns[6]},
			},
		},
	}
	// MaskRecordsColumns holds the columns for the "mask_records" table.
	MaskRecordsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "mode", Type: field.TypeString},
		{Name: "salt", Type: field.TypeBytes, Nullable: true, SchemaType: map[string]string{"postgres": "bytea"}},
		{Name: "spans", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "document_id", Type: field.TypeUUID},
	}
	// MaskRecordsTable holds the schema information for the "mask_records" table.
	MaskRecordsTable = &schema.Table{
		Name:       "mask_records",
		Columns:    MaskRecordsColumns,
		PrimaryKey: []*schema.Column{MaskRecordsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "mask_records_documents_mask_records",
				Columns:    []*schema.Column{MaskRecordsColumns[5]},
				RefColumns: []*schema.Column{DocumentsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "maskrecord_document_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{MaskRecordsColumns[5], MaskRecordsColumns[4]},
			},
		},
	}
	// ProcessJobsColumns holds the columns for the "process_jobs" table.
	ProcessJobsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "status", Type: field.TypeString, Default: "RUNNING"},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "results", Type: field.TypeJSON, Nullable: true},
		{Name: "batch_id", Type: field.TypeUUID},
	}
	// ProcessJobsTable holds the schema information for the "process_jobs" table.
	ProcessJobsTable = &schema.Table{
		Name:       "process_jobs",
		Columns:    ProcessJobsColumns,
		PrimaryKey: []*schema.Column{ProcessJobsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "process_jobs_batches_jobs",
				Columns:    []*schema.Column{ProcessJobsColumns[5]},
				RefColumns: []*schema.Column{BatchesColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "processjob_batch_id_status_created_at",
				Unique:  false,
				Columns: []*schema.Column{ProcessJobsColumns[5], ProcessJobsColumns[1], ProcessJobsColumns[2]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		BatchesTable,
		DocumentsTable,
		MaskRecordsTable,
		ProcessJobsTable,
	}
)

func init() {
	BatchesTable.Annotation = &entsql.Annotation{
		Table: "batches",
	}
	DocumentsTable.ForeignKeys[0].RefTable = BatchesTable
	DocumentsTable.Annotation = &entsql.Annotation{
		Table: "documents",
	}
	MaskRecordsTable.ForeignKeys[0].RefTable = DocumentsTable
	MaskRecordsTable.Annotation = &entsql.Annotation{
		Table: "mask_records",
	}
	ProcessJobsTable.ForeignKeys[0].RefTable = BatchesTable
	ProcessJobsTable.Annotation = &entsql.Annotation{
		Table: "process_jobs",
	}
}
