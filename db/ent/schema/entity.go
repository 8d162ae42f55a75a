package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"

	"github.com/ebolowa/contract-insight/constants"
	"github.com/ebolowa/contract-insight/db/ent/schema/utils"
)

type Entity struct{ ent.Schema }

func (Entity) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "entities"},
	}
}

func (Entity) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		// explicit FK
		field.UUID("contract_id", uuid.UUID{}),
		field.String("type").NotEmpty().
			Validate(utils.EnumValidator(constants.EntityTypeStrings()...)),
		field.String("value").NotEmpty(),
		field.Float32("confidence").Min(0).Max(1),
		field.String("section").Optional().Nillable(),
		// stable ordering within the contract's extraction set
		field.Int("position").NonNegative(),
	}
}

func (Entity) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("contract", Contract.Type).
			Ref("entities").
			Field("contract_id").
			Unique().
			Required(),
	}
}

func (Entity) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("contract_id", "position"),
		index.Fields("contract_id", "type"),
	}
}
