package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// Revision holds the schema definition for the append-only revision log.
// Rows are written together with the mutation they record and are never
// updated or deleted.
type Revision struct {
	ent.Schema
}

// Fields of the Revision.
func (Revision) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable(),
		field.UUID("entity_id", uuid.UUID{}).
			Immutable(),
		field.Enum("kind").
			Values("request", "data_sourcing").
			Immutable(),
		field.String("state").
			NotEmpty().
			Immutable(),
		field.String("admin_comment").
			Optional().
			Nillable().
			Immutable(),
		field.Int64("timestamp").
			Immutable(),
	}
}

// Indexes of the Revision.
func (Revision) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("entity_id", "timestamp"),
	}
}
