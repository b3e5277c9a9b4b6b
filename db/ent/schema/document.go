package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/affu-79/PII-SENTINEL-BACKEND-sub002/constants"
	"github.com/affu-79/PII-SENTINEL-BACKEND-sub002/db/ent/schema/utils"
	"github.com/google/uuid"
)

type Document struct{ ent.Schema }

func (Document) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "documents"},
	}
}

func (Document) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		// explicit FK so we can define a composite unique index
		field.UUID("batch_id", uuid.UUID{}),
		field.String("filename").NotEmpty(),
		field.String("kind").NotEmpty().
			Validate(utils.EnumValidator(constants.FileKinds...)),
		field.Int("byte_size").NonNegative(),
		field.Bytes("content_hash").NotEmpty().
			SchemaType(map[string]string{dialect.Postgres: "bytea"}),
		// opaque location owned by the object-store collaborator
		field.String("storage_location").NotEmpty(),
		field.String("status").Default(string(constants.DocQueued)).
			Validate(utils.EnumValidator(constants.DocumentStatuses...)),
		field.Int("retry_count").Default(0).NonNegative(),
		field.String("failure_code").Optional().Nillable(),
		field.String("failure_message").Optional().Nillable(),
		field.Time("uploaded_at").Default(time.Now),
		field.Time("completed_at").Optional().Nillable(),
	}
}

func (Document) Edges() []ent.Edge {
	return []ent.Edge{
		// MANY documents -> ONE batch
		edge.From("batch", Batch.Type).
			Ref("documents").
			Field("batch_id").
			Required().
			Unique(),
		// ONE document -> MANY mask records
		edge.To("mask_records", MaskRecord.Type),
	}
}

func (Document) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("batch_id", "content_hash").Unique(),
		index.Fields("batch_id", "status"),
	}
}
