package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// DataSourcing holds the schema definition for the shared sourcing effort.
// Uniqueness of the live entity per dimension is enforced by the grouper's
// per-dimension lock, not by a database constraint: MySQL cannot express
// "unique unless state = Done".
type DataSourcing struct {
	ent.Schema
}

// Fields of the DataSourcing.
func (DataSourcing) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable(),
		field.String("company_id").
			NotEmpty().
			Immutable(),
		field.String("data_type").
			NotEmpty().
			Immutable(),
		field.String("reporting_period").
			NotEmpty().
			Immutable(),
		field.Enum("state").
			Values("Initialized", "DocumentSourcing", "DataExtraction", "Done").
			Default("Initialized"),
		field.String("document_collector").
			Optional().
			Nillable(),
		field.String("data_extractor").
			Optional().
			Nillable(),
		field.Time("date_of_next_document_sourcing_attempt").
			Optional().
			Nillable(),
		field.String("admin_comment").
			Optional().
			Nillable(),
		field.Enum("priority_override").
			Values("Low", "High").
			Optional().
			Nillable(),
		field.JSON("documents", []string{}).
			Optional(),
		field.Int64("last_modified_date"),
	}
}

// Indexes of the DataSourcing.
func (DataSourcing) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("company_id", "data_type", "reporting_period", "state"),
		index.Fields("document_collector"),
		index.Fields("data_extractor"),
	}
}
