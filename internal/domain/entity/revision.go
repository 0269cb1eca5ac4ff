package entity

// RevisionKind discriminates which entity log a revision belongs to.
type RevisionKind string

const (
	RevisionKindRequest      RevisionKind = "request"
	RevisionKindDataSourcing RevisionKind = "data_sourcing"
)

// Revision is an immutable snapshot appended to an entity's log on every
// mutation. Revisions are never edited or deleted; they are the source of
// truth for history reconstruction.
type Revision struct {
	EntityID     string
	Kind         RevisionKind
	State        string
	AdminComment *string
	Timestamp    int64 // epoch milliseconds, ordered within one entity's log
}
