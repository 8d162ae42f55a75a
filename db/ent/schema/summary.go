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

	"github.com/google/uuid"

	"github.com/ebolowa/contract-insight/constants"
	"github.com/ebolowa/contract-insight/db/ent/schema/utils"
)

// Summary rows are append-only: regenerating a tier inserts a new row, and
// the "current" summary is the latest created_at per (contract, tier).
type Summary struct{ ent.Schema }

func (Summary) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "summaries"},
	}
}

func (Summary) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		// explicit FK
		field.UUID("contract_id", uuid.UUID{}),
		field.String("tier").NotEmpty().
			Validate(utils.EnumValidator(constants.Tiers...)),
		field.String("content").NotEmpty().
			SchemaType(map[string]string{dialect.Postgres: "text"}).
			Immutable(),
		field.Float32("confidence").Min(0).Max(1).Immutable(),
		field.Int("word_count").Positive().Immutable(),
		field.String("model_name").NotEmpty().Immutable(),
		field.Bool("approved").Default(false),
		field.Time("created_at").Default(time.Now).Immutable(),
	}
}

func (Summary) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("contract", Contract.Type).
			Ref("summaries").
			Field("contract_id").
			Unique().
			Required(),
		edge.To("feedback", Feedback.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

func (Summary) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("contract_id", "tier", "created_at"),
	}
}
