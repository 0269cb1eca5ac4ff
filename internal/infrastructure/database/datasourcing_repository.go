package database

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/d-fine/dataland-sourcing-service/internal/domain"
	"github.com/d-fine/dataland-sourcing-service/internal/domain/entity"
	"github.com/d-fine/dataland-sourcing-service/internal/ent"
	"github.com/d-fine/dataland-sourcing-service/internal/ent/datasourcing"
	"github.com/d-fine/dataland-sourcing-service/internal/ent/predicate"
	"github.com/d-fine/dataland-sourcing-service/internal/ent/request"
	"github.com/d-fine/dataland-sourcing-service/internal/ent/revision"
)

// dataSourcingRepository is the ent implementation of
// domain.DataSourcingRepository. The association between a sourcing entity
// and its requests lives on the request rows (data_sourcing_id), so
// attaching a request is a request-row update and the associated-id set is
// a query.
type dataSourcingRepository struct {
	client *ent.Client
}

// NewDataSourcingRepository creates a DataSourcingRepository backed by ent.
func NewDataSourcingRepository(client *ent.Client) domain.DataSourcingRepository {
	return &dataSourcingRepository{client: client}
}

func appendDataSourcingRevision(ctx context.Context, tx *ent.Tx, row *ent.DataSourcing) error {
	_, err := tx.Revision.Create().
		SetEntityID(row.ID).
		SetKind(revision.KindDataSourcing).
		SetState(string(row.State)).
		SetNillableAdminComment(row.AdminComment).
		SetTimestamp(row.LastModifiedDate).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to append data sourcing revision: %w", err)
	}
	return nil
}

// associatedRequestIDs lists the ids of all requests linked to the entity,
// oldest first.
func (r *dataSourcingRepository) associatedRequestIDs(ctx context.Context, dataSourcingID uuid.UUID) ([]string, error) {
	rows, err := r.client.Request.Query().
		Where(request.DataSourcingID(dataSourcingID)).
		Order(ent.Asc(request.FieldCreationTimestamp), ent.Asc(request.FieldID)).
		IDs(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list associated requests: %w", err)
	}

	ids := make([]string, len(rows))
	for i, id := range rows {
		ids[i] = id.String()
	}
	return ids, nil
}

func (r *dataSourcingRepository) load(ctx context.Context, row *ent.DataSourcing) (*entity.DataSourcing, error) {
	associated, err := r.associatedRequestIDs(ctx, row.ID)
	if err != nil {
		return nil, err
	}
	return toDataSourcingEntity(row, associated), nil
}

func (r *dataSourcingRepository) Create(ctx context.Context, dataSourcing *entity.DataSourcing) (*entity.DataSourcing, error) {
	var row *ent.DataSourcing
	err := withTx(ctx, r.client, func(tx *ent.Tx) error {
		create := tx.DataSourcing.Create().
			SetCompanyID(dataSourcing.CompanyID).
			SetDataType(dataSourcing.DataType).
			SetReportingPeriod(dataSourcing.ReportingPeriod).
			SetState(datasourcing.State(dataSourcing.State)).
			SetNillableDocumentCollector(dataSourcing.DocumentCollector).
			SetNillableDataExtractor(dataSourcing.DataExtractor).
			SetNillableDateOfNextDocumentSourcingAttempt(dataSourcing.DateOfNextDocumentSourcingAttempt).
			SetNillableAdminComment(dataSourcing.AdminComment).
			SetDocuments(dataSourcing.Documents).
			SetLastModifiedDate(dataSourcing.LastModifiedDate)
		if dataSourcing.PriorityOverride != nil {
			priority := datasourcing.PriorityOverride(*dataSourcing.PriorityOverride)
			create = create.SetPriorityOverride(priority)
		}

		var err error
		row, err = create.Save(ctx)
		if err != nil {
			if ent.IsConstraintError(err) {
				return domain.NewAlreadyExistsError("data sourcing entity", dataSourcing.Dimension().Key())
			}
			return fmt.Errorf("failed to create data sourcing entity: %w", err)
		}
		if err := linkRequests(ctx, tx, row.ID, dataSourcing.AssociatedRequestIDs); err != nil {
			return err
		}
		return appendDataSourcingRevision(ctx, tx, row)
	})
	if err != nil {
		return nil, err
	}
	return toDataSourcingEntity(row, dataSourcing.AssociatedRequestIDs), nil
}

// linkRequests stamps the entity id onto the given request rows.
func linkRequests(ctx context.Context, tx *ent.Tx, dataSourcingID uuid.UUID, requestIDs []string) error {
	for _, requestID := range requestIDs {
		id, err := parseID(requestID)
		if err != nil {
			return fmt.Errorf("invalid request id: %w", err)
		}
		if _, err := tx.Request.UpdateOneID(id).SetDataSourcingID(dataSourcingID).Save(ctx); err != nil {
			if ent.IsNotFound(err) {
				return domain.NewNotFoundError("request", requestID)
			}
			return fmt.Errorf("failed to link request: %w", err)
		}
	}
	return nil
}

func (r *dataSourcingRepository) GetByID(ctx context.Context, dataSourcingID string) (*entity.DataSourcing, error) {
	id, err := parseID(dataSourcingID)
	if err != nil {
		return nil, domain.NewNotFoundError("data sourcing entity", dataSourcingID)
	}

	row, err := r.client.DataSourcing.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, domain.NewNotFoundError("data sourcing entity", dataSourcingID)
		}
		return nil, fmt.Errorf("failed to get data sourcing entity: %w", err)
	}
	return r.load(ctx, row)
}

func (r *dataSourcingRepository) Update(ctx context.Context, dataSourcing *entity.DataSourcing) (*entity.DataSourcing, error) {
	id, err := parseID(dataSourcing.ID)
	if err != nil {
		return nil, domain.NewNotFoundError("data sourcing entity", dataSourcing.ID)
	}

	var row *ent.DataSourcing
	err = withTx(ctx, r.client, func(tx *ent.Tx) error {
		row, err = updateDataSourcingRow(ctx, tx, id, dataSourcing)
		if err != nil {
			return err
		}
		return appendDataSourcingRevision(ctx, tx, row)
	})
	if err != nil {
		return nil, err
	}
	return r.load(ctx, row)
}

func updateDataSourcingRow(ctx context.Context, tx *ent.Tx, id uuid.UUID, dataSourcing *entity.DataSourcing) (*ent.DataSourcing, error) {
	update := tx.DataSourcing.UpdateOneID(id).
		SetState(datasourcing.State(dataSourcing.State)).
		SetNillableDocumentCollector(dataSourcing.DocumentCollector).
		SetNillableDataExtractor(dataSourcing.DataExtractor).
		SetNillableDateOfNextDocumentSourcingAttempt(dataSourcing.DateOfNextDocumentSourcingAttempt).
		SetNillableAdminComment(dataSourcing.AdminComment).
		SetDocuments(dataSourcing.Documents).
		SetLastModifiedDate(dataSourcing.LastModifiedDate)
	if dataSourcing.PriorityOverride != nil {
		update = update.SetPriorityOverride(datasourcing.PriorityOverride(*dataSourcing.PriorityOverride))
	} else {
		update = update.ClearPriorityOverride()
	}

	row, err := update.Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, domain.NewNotFoundError("data sourcing entity", dataSourcing.ID)
		}
		return nil, fmt.Errorf("failed to update data sourcing entity: %w", err)
	}
	return row, nil
}

func (r *dataSourcingRepository) FindLiveByDimension(ctx context.Context, dimension entity.Dimension) (*entity.DataSourcing, error) {
	row, err := r.client.DataSourcing.Query().
		Where(
			datasourcing.CompanyID(dimension.CompanyID),
			datasourcing.DataType(dimension.DataType),
			datasourcing.ReportingPeriod(dimension.ReportingPeriod),
			datasourcing.StateNEQ(datasourcing.StateDone),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, domain.NewNotFoundError("data sourcing entity", dimension.Key())
		}
		return nil, fmt.Errorf("failed to find live data sourcing entity: %w", err)
	}
	return r.load(ctx, row)
}

func (r *dataSourcingRepository) AttachRequest(ctx context.Context, dataSourcingID, requestID string) (*entity.DataSourcing, error) {
	id, err := parseID(dataSourcingID)
	if err != nil {
		return nil, domain.NewNotFoundError("data sourcing entity", dataSourcingID)
	}

	var row *ent.DataSourcing
	err = withTx(ctx, r.client, func(tx *ent.Tx) error {
		row, err = tx.DataSourcing.Get(ctx, id)
		if err != nil {
			if ent.IsNotFound(err) {
				return domain.NewNotFoundError("data sourcing entity", dataSourcingID)
			}
			return fmt.Errorf("failed to get data sourcing entity: %w", err)
		}
		return linkRequests(ctx, tx, id, []string{requestID})
	})
	if err != nil {
		return nil, err
	}
	return r.load(ctx, row)
}

func (r *dataSourcingRepository) CompleteWithRequests(ctx context.Context, dataSourcing *entity.DataSourcing, requests []*entity.Request) (*entity.DataSourcing, error) {
	id, err := parseID(dataSourcing.ID)
	if err != nil {
		return nil, domain.NewNotFoundError("data sourcing entity", dataSourcing.ID)
	}

	var row *ent.DataSourcing
	err = withTx(ctx, r.client, func(tx *ent.Tx) error {
		row, err = updateDataSourcingRow(ctx, tx, id, dataSourcing)
		if err != nil {
			return err
		}
		if err := appendDataSourcingRevision(ctx, tx, row); err != nil {
			return err
		}

		for _, req := range requests {
			requestID, parseErr := parseID(req.ID)
			if parseErr != nil {
				return domain.NewNotFoundError("request", req.ID)
			}
			// Re-read under lock: the caller's snapshot may predate a
			// withdrawal, which must not be flipped to Processed.
			current, lockErr := tx.Request.Query().
				Where(request.ID(requestID)).
				ForUpdate().
				Only(ctx)
			if lockErr != nil {
				if ent.IsNotFound(lockErr) {
					return domain.NewNotFoundError("request", req.ID)
				}
				return fmt.Errorf("failed to lock request '%s': %w", req.ID, lockErr)
			}
			if current.State == request.StateWithdrawn || current.State == request.StateProcessed {
				continue
			}
			updated, updateErr := current.Update().
				SetState(request.State(req.State)).
				SetLastModifiedDate(req.LastModifiedDate).
				Save(ctx)
			if updateErr != nil {
				return fmt.Errorf("failed to cascade completion to request '%s': %w", req.ID, updateErr)
			}
			if err := appendRequestRevision(ctx, tx, updated); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return r.load(ctx, row)
}

func dataSourcingPredicates(filter domain.DataSourcingSearchFilter) []predicate.DataSourcing {
	var predicates []predicate.DataSourcing
	if filter.CompanyID != nil {
		predicates = append(predicates, datasourcing.CompanyID(*filter.CompanyID))
	}
	if filter.DataType != nil {
		predicates = append(predicates, datasourcing.DataType(*filter.DataType))
	}
	if filter.ReportingPeriod != nil {
		predicates = append(predicates, datasourcing.ReportingPeriod(*filter.ReportingPeriod))
	}
	return predicates
}

func (r *dataSourcingRepository) Search(ctx context.Context, filter domain.DataSourcingSearchFilter, offset, limit int) ([]*entity.DataSourcing, error) {
	rows, err := r.client.DataSourcing.Query().
		Where(dataSourcingPredicates(filter)...).
		Order(ent.Asc(datasourcing.FieldLastModifiedDate), ent.Asc(datasourcing.FieldID)).
		Offset(offset).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to search data sourcing entities: %w", err)
	}
	return r.loadAll(ctx, rows)
}

func (r *dataSourcingRepository) Count(ctx context.Context, filter domain.DataSourcingSearchFilter) (int, error) {
	count, err := r.client.DataSourcing.Query().
		Where(dataSourcingPredicates(filter)...).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count data sourcing entities: %w", err)
	}
	return count, nil
}

func (r *dataSourcingRepository) ListByAssignedCompany(ctx context.Context, companyID string) ([]*entity.DataSourcing, error) {
	rows, err := r.client.DataSourcing.Query().
		Where(datasourcing.Or(
			datasourcing.DocumentCollector(companyID),
			datasourcing.DataExtractor(companyID),
		)).
		Order(ent.Asc(datasourcing.FieldLastModifiedDate), ent.Asc(datasourcing.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list assigned data sourcing entities: %w", err)
	}
	return r.loadAll(ctx, rows)
}

func (r *dataSourcingRepository) loadAll(ctx context.Context, rows []*ent.DataSourcing) ([]*entity.DataSourcing, error) {
	result := make([]*entity.DataSourcing, len(rows))
	for i, row := range rows {
		loaded, err := r.load(ctx, row)
		if err != nil {
			return nil, err
		}
		result[i] = loaded
	}
	return result, nil
}
