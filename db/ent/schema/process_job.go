package schema

import (
	"encoding/json"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/affu-79/PII-SENTINEL-BACKEND-sub002/constants"
	"github.com/affu-79/PII-SENTINEL-BACKEND-sub002/db/ent/schema/utils"
	"github.com/google/uuid"
)

type ProcessJob struct{ ent.Schema }

func (ProcessJob) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "process_jobs"},
	}
}

func (ProcessJob) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.UUID("batch_id", uuid.UUID{}),
		field.String("status").Default(string(constants.JobRunning)).
			Validate(utils.EnumValidator(constants.JobStatuses...)),
		field.Time("created_at").Default(time.Now).Immutable(),
		field.Time("completed_at").Optional().Nillable(),
		// per-document outcomes, serialized once the job is terminal
		field.JSON("results", json.RawMessage{}).Optional(),
	}
}

func (ProcessJob) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("batch", Batch.Type).
			Ref("jobs").
			Field("batch_id").
			Required().
			Unique(),
	}
}

func (ProcessJob) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("batch_id", "status", "created_at"),
	}
}
