package domain

import (
	"context"

	"github.com/d-fine/dataland-sourcing-service/internal/domain/entity"
)

// ============ Repository interface ============

// RequestSearchFilter narrows a request search. Nil / empty fields match
// everything.
type RequestSearchFilter struct {
	CompanyID       *string
	DataType        *string
	ReportingPeriod *string
	UserID          *string
	States          []entity.RequestState
	Priorities      []entity.RequestPriority
}

// RequestRepository is the persistence boundary for data requests. Create
// and Update append a revision to the request's log within the same logical
// write; the log is append-only and ordered by LastModifiedDate.
type RequestRepository interface {
	// Create persists a new request and its creation revision.
	Create(ctx context.Context, request *entity.Request) (*entity.Request, error)

	// GetByID returns the request with the given id.
	GetByID(ctx context.Context, requestID string) (*entity.Request, error)

	// Update persists a mutated request and appends a revision.
	Update(ctx context.Context, request *entity.Request) (*entity.Request, error)

	// Search returns requests matching the filter, paged by offset/limit,
	// ordered by creation timestamp ascending.
	Search(ctx context.Context, filter RequestSearchFilter, offset, limit int) ([]*entity.Request, error)

	// Count returns the number of requests matching the filter.
	Count(ctx context.Context, filter RequestSearchFilter) (int, error)
}

// ============ Usecase interface ============

// Caller identifies the authenticated principal performing an operation.
type Caller struct {
	UserID  string
	IsAdmin bool
}

// CreateRequestInput carries the fields of a new data request.
type CreateRequestInput struct {
	CompanyID       string
	DataType        string
	ReportingPeriod string
	MemberComment   *string
}

// RequestUsecase drives the lifecycle of individual data requests.
type RequestUsecase interface {
	// CreateRequest validates the dimension, rejects duplicates and stores
	// a new Open request with Low priority.
	CreateRequest(ctx context.Context, caller Caller, input CreateRequestInput) (*entity.Request, error)

	// GetRequest returns a single request. Members may only read their own.
	GetRequest(ctx context.Context, caller Caller, requestID string) (*entity.Request, error)

	// PatchState transitions the request. Open→Processing groups the
	// request into a data sourcing entity.
	PatchState(ctx context.Context, caller Caller, requestID string, newState entity.RequestState, adminComment *string) (*entity.Request, error)

	// PatchPriority changes the priority; permitted only while the request
	// is Open or Processing.
	PatchPriority(ctx context.Context, caller Caller, requestID string, newPriority entity.RequestPriority, adminComment *string) (*entity.Request, error)

	// Search lists requests matching the filter, chunked.
	Search(ctx context.Context, caller Caller, filter RequestSearchFilter, chunkSize, chunkIndex int) ([]*entity.Request, int, error)
}

// HistoryUsecase reconstructs the reconciled timeline of a request from the
// two independently versioned revision logs.
type HistoryUsecase interface {
	// RetrieveHistory returns the compact timeline: only displayed-state
	// changes, earliest timestamp of each run.
	RetrieveHistory(ctx context.Context, caller Caller, requestID string) ([]entity.HistoryEntry, error)

	// RetrieveExtendedHistory returns the full coalesced timeline with
	// admin comments carried forward.
	RetrieveExtendedHistory(ctx context.Context, caller Caller, requestID string) ([]entity.HistoryEntry, error)
}
