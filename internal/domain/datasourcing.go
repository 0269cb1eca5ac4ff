package domain

import (
	"context"
	"time"

	"github.com/d-fine/dataland-sourcing-service/internal/domain/entity"
)

// ============ Repository interface ============

// DataSourcingSearchFilter narrows a data sourcing search by dimension
// fields. Nil fields match everything.
type DataSourcingSearchFilter struct {
	CompanyID       *string
	DataType        *string
	ReportingPeriod *string
}

// DataSourcingRepository is the persistence boundary for sourcing entities.
// Mutating methods append a revision to the entity's log within the same
// logical write.
type DataSourcingRepository interface {
	// Create persists a new Initialized entity and its creation revision.
	Create(ctx context.Context, dataSourcing *entity.DataSourcing) (*entity.DataSourcing, error)

	// GetByID returns the entity with the given id, including its
	// associated request ids.
	GetByID(ctx context.Context, dataSourcingID string) (*entity.DataSourcing, error)

	// Update persists a mutated entity and appends a revision.
	Update(ctx context.Context, dataSourcing *entity.DataSourcing) (*entity.DataSourcing, error)

	// FindLiveByDimension returns the single non-Done entity for the
	// dimension, or a NotFound error if none exists.
	FindLiveByDimension(ctx context.Context, dimension entity.Dimension) (*entity.DataSourcing, error)

	// AttachRequest adds a request id to the entity's associated set and
	// appends a revision.
	AttachRequest(ctx context.Context, dataSourcingID, requestID string) (*entity.DataSourcing, error)

	// CompleteWithRequests atomically persists the Done transition together
	// with the Processed transition of every listed request, appending the
	// corresponding revisions. Either all writes land or none do.
	CompleteWithRequests(ctx context.Context, dataSourcing *entity.DataSourcing, requests []*entity.Request) (*entity.DataSourcing, error)

	// Search returns entities matching the dimension filter, paged.
	Search(ctx context.Context, filter DataSourcingSearchFilter, offset, limit int) ([]*entity.DataSourcing, error)

	// Count returns the number of entities matching the filter.
	Count(ctx context.Context, filter DataSourcingSearchFilter) (int, error)

	// ListByAssignedCompany returns entities where the company acts as
	// document collector or data extractor.
	ListByAssignedCompany(ctx context.Context, companyID string) ([]*entity.DataSourcing, error)
}

// RevisionStore is the append-only log per entity id. Entries are never
// edited or deleted.
type RevisionStore interface {
	// Append stores one revision entry.
	Append(ctx context.Context, revision entity.Revision) error

	// ListSince returns the entries of one entity's log with timestamp
	// greater than afterTimestamp, ordered ascending. Pass 0 for the full
	// log.
	ListSince(ctx context.Context, entityID string, afterTimestamp int64) ([]entity.Revision, error)
}

// ============ Usecase interface ============

// DataSourcingAdminPatch carries the admin-only fields of a sourcing
// entity. Nil fields are left unchanged.
type DataSourcingAdminPatch struct {
	State                             *entity.DataSourcingState
	DocumentCollector                 *string
	DataExtractor                     *string
	DateOfNextDocumentSourcingAttempt *time.Time
	AdminComment                      *string
	Priority                          *entity.RequestPriority
}

// DataSourcingView is a DataSourcing with role-dependent fields resolved
// for a specific caller. Priority is nil when hidden from the caller.
type DataSourcingView struct {
	entity.DataSourcing
	Priority *entity.RequestPriority
}

// DimensionPriority pairs a dimension with the derived priority of its
// live sourcing entity.
type DimensionPriority struct {
	Dimension entity.Dimension
	Priority  entity.RequestPriority
}

// DataSourcingUsecase drives the shared sourcing workflow.
type DataSourcingUsecase interface {
	// Get returns the entity with priority visibility resolved for the
	// caller.
	Get(ctx context.Context, caller Caller, dataSourcingID string) (*DataSourcingView, error)

	// Search lists entities by dimension fields, chunked.
	Search(ctx context.Context, caller Caller, filter DataSourcingSearchFilter, chunkSize, chunkIndex int) ([]*DataSourcingView, int, error)

	// PatchState advances the entity along its linear lifecycle. The
	// transition into Done cascades Processed onto every associated
	// request as a single logical operation.
	PatchState(ctx context.Context, caller Caller, dataSourcingID string, newState entity.DataSourcingState) (*DataSourcingView, error)

	// PatchDocuments appends or replaces the collected document
	// references. Permitted for staff of the document collector company
	// and for administrators.
	PatchDocuments(ctx context.Context, caller Caller, dataSourcingID string, documents []string, appendDocuments bool) (*DataSourcingView, error)

	// AdminPatch updates admin-only fields, including the priority
	// override.
	AdminPatch(ctx context.Context, caller Caller, dataSourcingID string, patch DataSourcingAdminPatch) (*DataSourcingView, error)

	// History returns the entity's revision log.
	History(ctx context.Context, caller Caller, dataSourcingID string) ([]entity.Revision, error)

	// ListAssigned returns entities assigned to the company as collector
	// or extractor.
	ListAssigned(ctx context.Context, caller Caller, companyID string) ([]*DataSourcingView, error)

	// PrioritiesByDimensions resolves the derived priority of the live
	// entity for each dimension; dimensions without one are omitted.
	PrioritiesByDimensions(ctx context.Context, caller Caller, dimensions []entity.Dimension) ([]DimensionPriority, error)
}
