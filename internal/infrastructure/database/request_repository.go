package database

import (
	"context"
	"fmt"

	"github.com/d-fine/dataland-sourcing-service/internal/domain"
	"github.com/d-fine/dataland-sourcing-service/internal/domain/entity"
	"github.com/d-fine/dataland-sourcing-service/internal/ent"
	"github.com/d-fine/dataland-sourcing-service/internal/ent/predicate"
	"github.com/d-fine/dataland-sourcing-service/internal/ent/request"
	"github.com/d-fine/dataland-sourcing-service/internal/ent/revision"
)

// requestRepository is the ent implementation of domain.RequestRepository.
// Every mutation writes the request row and its revision in one
// transaction, keeping the log in lockstep with the entity.
type requestRepository struct {
	client *ent.Client
}

// NewRequestRepository creates a RequestRepository backed by ent.
func NewRequestRepository(client *ent.Client) domain.RequestRepository {
	return &requestRepository{client: client}
}

// withTx runs fn inside a transaction, rolling back on error.
func withTx(ctx context.Context, client *ent.Client, fn func(tx *ent.Tx) error) error {
	tx, err := client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	if err := fn(tx); err != nil {
		if rollbackErr := tx.Rollback(); rollbackErr != nil {
			return fmt.Errorf("%w (rollback failed: %v)", err, rollbackErr)
		}
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// appendRequestRevision writes the revision row matching the request's
// current field values.
func appendRequestRevision(ctx context.Context, tx *ent.Tx, row *ent.Request) error {
	_, err := tx.Revision.Create().
		SetEntityID(row.ID).
		SetKind(revision.KindRequest).
		SetState(string(row.State)).
		SetNillableAdminComment(row.AdminComment).
		SetTimestamp(row.LastModifiedDate).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to append request revision: %w", err)
	}
	return nil
}

func (r *requestRepository) Create(ctx context.Context, req *entity.Request) (*entity.Request, error) {
	id, err := parseID(req.ID)
	if err != nil {
		return nil, fmt.Errorf("invalid request id: %w", err)
	}

	var row *ent.Request
	err = withTx(ctx, r.client, func(tx *ent.Tx) error {
		row, err = tx.Request.Create().
			SetID(id).
			SetCompanyID(req.CompanyID).
			SetDataType(req.DataType).
			SetReportingPeriod(req.ReportingPeriod).
			SetUserID(req.UserID).
			SetState(request.State(req.State)).
			SetPriority(request.Priority(req.Priority)).
			SetNillableMemberComment(req.MemberComment).
			SetNillableAdminComment(req.AdminComment).
			SetCreationTimestamp(req.CreationTimestamp).
			SetLastModifiedDate(req.LastModifiedDate).
			Save(ctx)
		if err != nil {
			if ent.IsConstraintError(err) {
				return domain.NewAlreadyExistsError("request", req.ID)
			}
			return fmt.Errorf("failed to create request: %w", err)
		}
		return appendRequestRevision(ctx, tx, row)
	})
	if err != nil {
		return nil, err
	}
	return toRequestEntity(row), nil
}

func (r *requestRepository) GetByID(ctx context.Context, requestID string) (*entity.Request, error) {
	id, err := parseID(requestID)
	if err != nil {
		return nil, domain.NewNotFoundError("request", requestID)
	}

	row, err := r.client.Request.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, domain.NewNotFoundError("request", requestID)
		}
		return nil, fmt.Errorf("failed to get request: %w", err)
	}
	return toRequestEntity(row), nil
}

func (r *requestRepository) Update(ctx context.Context, req *entity.Request) (*entity.Request, error) {
	id, err := parseID(req.ID)
	if err != nil {
		return nil, domain.NewNotFoundError("request", req.ID)
	}

	var row *ent.Request
	err = withTx(ctx, r.client, func(tx *ent.Tx) error {
		update := tx.Request.UpdateOneID(id).
			SetState(request.State(req.State)).
			SetPriority(request.Priority(req.Priority)).
			SetNillableMemberComment(req.MemberComment).
			SetNillableAdminComment(req.AdminComment).
			SetLastModifiedDate(req.LastModifiedDate)
		if req.DataSourcingID != nil {
			dataSourcingID, parseErr := parseID(*req.DataSourcingID)
			if parseErr != nil {
				return fmt.Errorf("invalid data sourcing id: %w", parseErr)
			}
			update = update.SetDataSourcingID(dataSourcingID)
		}

		row, err = update.Save(ctx)
		if err != nil {
			if ent.IsNotFound(err) {
				return domain.NewNotFoundError("request", req.ID)
			}
			return fmt.Errorf("failed to update request: %w", err)
		}
		return appendRequestRevision(ctx, tx, row)
	})
	if err != nil {
		return nil, err
	}
	return toRequestEntity(row), nil
}

// requestPredicates translates the search filter into ent predicates.
func requestPredicates(filter domain.RequestSearchFilter) []predicate.Request {
	var predicates []predicate.Request
	if filter.CompanyID != nil {
		predicates = append(predicates, request.CompanyID(*filter.CompanyID))
	}
	if filter.DataType != nil {
		predicates = append(predicates, request.DataType(*filter.DataType))
	}
	if filter.ReportingPeriod != nil {
		predicates = append(predicates, request.ReportingPeriod(*filter.ReportingPeriod))
	}
	if filter.UserID != nil {
		predicates = append(predicates, request.UserID(*filter.UserID))
	}
	if len(filter.States) > 0 {
		states := make([]request.State, len(filter.States))
		for i, state := range filter.States {
			states[i] = request.State(state)
		}
		predicates = append(predicates, request.StateIn(states...))
	}
	if len(filter.Priorities) > 0 {
		priorities := make([]request.Priority, len(filter.Priorities))
		for i, priority := range filter.Priorities {
			priorities[i] = request.Priority(priority)
		}
		predicates = append(predicates, request.PriorityIn(priorities...))
	}
	return predicates
}

func (r *requestRepository) Search(ctx context.Context, filter domain.RequestSearchFilter, offset, limit int) ([]*entity.Request, error) {
	rows, err := r.client.Request.Query().
		Where(requestPredicates(filter)...).
		Order(ent.Asc(request.FieldCreationTimestamp), ent.Asc(request.FieldID)).
		Offset(offset).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to search requests: %w", err)
	}

	result := make([]*entity.Request, len(rows))
	for i, row := range rows {
		result[i] = toRequestEntity(row)
	}
	return result, nil
}

func (r *requestRepository) Count(ctx context.Context, filter domain.RequestSearchFilter) (int, error) {
	count, err := r.client.Request.Query().
		Where(requestPredicates(filter)...).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count requests: %w", err)
	}
	return count, nil
}
