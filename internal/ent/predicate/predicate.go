// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// DataSourcing is the predicate function for datasourcing builders.
type DataSourcing func(*sql.Selector)

// Request is the predicate function for request builders.
type Request func(*sql.Selector)

// Revision is the predicate function for revision builders.
type Revision func(*sql.Selector)
