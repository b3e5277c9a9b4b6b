package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

type Batch struct{ ent.Schema }

func (Batch) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "batches"},
	}
}

func (Batch) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.String("name").NotEmpty(),
		field.String("owner_ref").NotEmpty(),
		field.Time("created_at").Default(time.Now).Immutable(),
		// aggregate counters, refreshed by the scheduler as child jobs complete
		field.Int("total_documents").Default(0).NonNegative(),
		field.Int("succeeded").Default(0).NonNegative(),
		field.Int("failed").Default(0).NonNegative(),
		field.Int("in_flight").Default(0).NonNegative(),
	}
}

func (Batch) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("documents", Document.Type),
		edge.To("jobs", ProcessJob.Type),
	}
}

func (Batch) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("owner_ref", "created_at"),
	}
}
