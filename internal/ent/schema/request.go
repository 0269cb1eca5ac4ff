package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// Request holds the schema definition for the data request entity.
type Request struct {
	ent.Schema
}

// Fields of the Request.
func (Request) Fields() []ent.Field {
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
		field.String("user_id").
			NotEmpty().
			Immutable(),
		field.Enum("state").
			Values("Open", "Processing", "Processed", "Withdrawn").
			Default("Open"),
		field.Enum("priority").
			Values("Low", "High").
			Default("Low"),
		field.String("member_comment").
			Optional().
			Nillable(),
		field.String("admin_comment").
			Optional().
			Nillable(),
		field.UUID("data_sourcing_id", uuid.UUID{}).
			Optional().
			Nillable(),
		field.Int64("creation_timestamp").
			Immutable(),
		field.Int64("last_modified_date"),
	}
}

// Indexes of the Request.
func (Request) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("company_id", "data_type", "reporting_period"),
		index.Fields("user_id"),
		index.Fields("state", "priority"),
		index.Fields("data_sourcing_id"),
	}
}
