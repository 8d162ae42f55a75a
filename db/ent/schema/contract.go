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

type Contract struct{ ent.Schema }

func (Contract) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "contracts"},
	}
}

func (Contract) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.String("filename").NotEmpty(),
		field.String("file_ext").NotEmpty().
			Validate(utils.EnumValidator(constants.AllowedExtensionStrings()...)),
		field.Int("size").NonNegative(),
		field.Bytes("content_hash").MaxLen(32),
		field.String("language").Optional().Nillable(),
		field.String("status").Default(string(constants.StatusPending)).
			Validate(utils.EnumValidator(constants.ContractStatuses...)),
		field.String("error_kind").Optional().Nillable(),
		field.String("error_message").Optional().Nillable(),
		field.String("extracted_text").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.Bool("degraded").Default(false),
		field.Time("uploaded_at").Default(time.Now).Immutable(),
		field.Time("status_changed_at").Default(time.Now),
		field.Time("processed_at").Optional().Nillable(),
	}
}

func (Contract) Edges() []ent.Edge {
	return []ent.Edge{
		// ONE contract -> MANY entities / summaries; both die with the contract
		edge.To("entities", Entity.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("summaries", Summary.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

func (Contract) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status", "status_changed_at"),
		index.Fields("content_hash"),
	}
}
