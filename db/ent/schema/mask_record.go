package schema

import (
	"encoding/json"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/affu-79/PII-SENTINEL-BACKEND-sub002/db/ent/schema/utils"
	"github.com/google/uuid"
)

// MaskRecord persists one masking operation's side channel. For the
// irreversible mode no reconstruction data is stored: salt and spans stay
// empty. The caller's password and the derived key are never written.
type MaskRecord struct{ ent.Schema }

func (MaskRecord) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "mask_records"},
	}
}

func (MaskRecord) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.UUID("document_id", uuid.UUID{}),
		field.String("mode").NotEmpty().
			Validate(utils.EnumValidator("IRREVERSIBLE_BLUR", "REVERSIBLE_TOKEN")),
		field.Bytes("salt").Optional().
			SchemaType(map[string]string{dialect.Postgres: "bytea"}),
		// per-span nonce/ciphertext/token tuples (reversible mode only)
		field.JSON("spans", json.RawMessage{}).Optional(),
		field.Time("created_at").Default(time.Now).Immutable(),
	}
}

func (MaskRecord) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("document", Document.Type).
			Ref("mask_records").
			Field("document_id").
			Required().
			Unique(),
	}
}

func (MaskRecord) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("document_id", "created_at"),
	}
}
