// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ContractsColumns holds the columns for the "contracts" table.
	ContractsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "filename", Type: field.TypeString},
		{Name: "file_ext", Type: field.TypeString},
		{Name: "size", Type: field.TypeInt},
		{Name: "content_hash", Type: field.TypeBytes, Size: 32},
		{Name: "language", Type: field.TypeString, Nullable: true},
		{Name: "status", Type: field.TypeString, Default: "PENDING"},
		{Name: "error_kind", Type: field.TypeString, Nullable: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "extracted_text", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "degraded", Type: field.TypeBool, Default: false},
		{Name: "uploaded_at", Type: field.TypeTime},
		{Name: "status_changed_at", Type: field.TypeTime},
		{Name: "processed_at", Type: field.TypeTime, Nullable: true},
	}
	// ContractsTable holds the schema information for the "contracts" table.
	ContractsTable = &schema.Table{
		Name:       "contracts",
		Columns:    ContractsColumns,
		PrimaryKey: []*schema.Column{ContractsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "contract_status_status_changed_at",
				Unique:  false,
				Columns: []*schema.Column{ContractsColumns[6], ContractsColumns[12]},
			},
			{
				Name:    "contract_content_hash",
				Unique:  false,
				Columns: []*schema.Column{ContractsColumns[4]},
			},
		},
	}
	// EntitiesColumns holds the columns for the "entities" table.
	EntitiesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "type", Type: field.TypeString},
		{Name: "value", Type: field.TypeString},
		{Name: "confidence", Type: field.TypeFloat32},
		{Name: "section", Type: field.TypeString, Nullable: true},
		{Name: "position", Type: field.TypeInt},
		{Name: "contract_id", Type: field.TypeUUID},
	}
	// EntitiesTable holds the schema information for the "entities" table.
	EntitiesTable = &schema.Table{
		Name:       "entities",
		Columns:    EntitiesColumns,
		PrimaryKey: []*schema.Column{EntitiesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "entities_contracts_entities",
				Columns:    []*schema.Column{EntitiesColumns[6]},
				RefColumns: []*schema.Column{ContractsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "entity_contract_id_position",
				Unique:  false,
				Columns: []*schema.Column{EntitiesColumns[6], EntitiesColumns[5]},
			},
			{
				Name:    "entity_contract_id_type",
				Unique:  false,
				Columns: []*schema.Column{EntitiesColumns[6], EntitiesColumns[1]},
			},
		},
	}
	// FeedbackColumns holds the columns for the "feedback" table.
	FeedbackColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "rating", Type: field.TypeInt},
		{Name: "comment", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "summary_id", Type: field.TypeUUID},
	}
	// FeedbackTable holds the schema information for the "feedback" table.
	FeedbackTable = &schema.Table{
		Name:       "feedback",
		Columns:    FeedbackColumns,
		PrimaryKey: []*schema.Column{FeedbackColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "feedback_summaries_feedback",
				Columns:    []*schema.Column{FeedbackColumns[4]},
				RefColumns: []*schema.Column{SummariesColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "feedback_summary_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{FeedbackColumns[4], FeedbackColumns[3]},
			},
		},
	}
	// SummariesColumns holds the columns for the "summaries" table.
	SummariesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "tier", Type: field.TypeString},
		{Name: "content", Type: field.TypeString, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "confidence", Type: field.TypeFloat32},
		{Name: "word_count", Type: field.TypeInt},
		{Name: "model_name", Type: field.TypeString},
		{Name: "approved", Type: field.TypeBool, Default: false},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "contract_id", Type: field.TypeUUID},
	}
	// SummariesTable holds the schema information for the "summaries" table.
	SummariesTable = &schema.Table{
		Name:       "summaries",
		Columns:    SummariesColumns,
		PrimaryKey: []*schema.Column{SummariesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "summaries_contracts_summaries",
				Columns:    []*schema.Column{SummariesColumns[8]},
				RefColumns: []*schema.Column{ContractsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "summary_contract_id_tier_created_at",
				Unique:  false,
				Columns: []*schema.Column{SummariesColumns[8], SummariesColumns[1], SummariesColumns[7]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ContractsTable,
		EntitiesTable,
		FeedbackTable,
		SummariesTable,
	}
)

func init() {
	ContractsTable.Annotation = &entsql.Annotation{
		Table: "contracts",
	}
	EntitiesTable.ForeignKeys[0].RefTable = ContractsTable
	EntitiesTable.Annotation = &entsql.Annotation{
		Table: "entities",
	}
	FeedbackTable.ForeignKeys[0].RefTable = SummariesTable
	FeedbackTable.Annotation = &entsql.Annotation{
		Table: "feedback",
	}
	SummariesTable.ForeignKeys[0].RefTable = ContractsTable
	SummariesTable.Annotation = &entsql.Annotation{
		Table: "summaries",
	}
}
