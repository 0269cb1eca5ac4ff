package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/d-fine/dataland-sourcing-service/internal/domain"
	"github.com/d-fine/dataland-sourcing-service/internal/domain/entity"
	"github.com/d-fine/dataland-sourcing-service/pkg/keyedmutex"
)

// DimensionGrouper maps a dimension to exactly one live data sourcing
// entity, creating one on demand. Get-or-create is serialized per
// dimension so concurrent requests for the same dimension never produce
// two live entities: one creator wins, the others attach.
type DimensionGrouper struct {
	dataSourcingRepo domain.DataSourcingRepository
	locks            *keyedmutex.KeyedMutex
	logger           *slog.Logger
}

// NewDimensionGrouper creates a DimensionGrouper.
func NewDimensionGrouper(dataSourcingRepo domain.DataSourcingRepository, logger *slog.Logger) *DimensionGrouper {
	return &DimensionGrouper{
		dataSourcingRepo: dataSourcingRepo,
		locks:            keyedmutex.New(),
		logger:           logger,
	}
}

// ResolveOrCreate returns the live data sourcing entity for the request's
// dimension with the request attached, creating an Initialized entity if
// none exists.
func (g *DimensionGrouper) ResolveOrCreate(ctx context.Context, request *entity.Request) (*entity.DataSourcing, error) {
	dimension := request.Dimension()

	unlock := g.locks.Lock(dimension.Key())
	defer unlock()

	existing, err := g.dataSourcingRepo.FindLiveByDimension(ctx, dimension)
	switch {
	case err == nil:
		g.logger.Info("attaching request to existing data sourcing entity",
			"request_id", request.ID,
			"data_sourcing_id", existing.ID,
		)
		return g.dataSourcingRepo.AttachRequest(ctx, existing.ID, request.ID)

	case domain.IsNotFound(err):
		created, createErr := g.dataSourcingRepo.Create(ctx, &entity.DataSourcing{
			CompanyID:            dimension.CompanyID,
			DataType:             dimension.DataType,
			ReportingPeriod:      dimension.ReportingPeriod,
			State:                entity.DataSourcingStateInitialized,
			AssociatedRequestIDs: []string{request.ID},
			LastModifiedDate:     nowMillis(),
		})
		if createErr != nil {
			// A storage-level uniqueness conflict means another creator won
			// outside this process; attach to the winner instead.
			if domain.IsAlreadyExists(createErr) {
				winner, findErr := g.dataSourcingRepo.FindLiveByDimension(ctx, dimension)
				if findErr != nil {
					return nil, fmt.Errorf("failed to resolve winning data sourcing entity: %w", findErr)
				}
				return g.dataSourcingRepo.AttachRequest(ctx, winner.ID, request.ID)
			}
			return nil, fmt.Errorf("failed to create data sourcing entity: %w", createErr)
		}

		g.logger.Info("created data sourcing entity for dimension",
			"request_id", request.ID,
			"data_sourcing_id", created.ID,
			"company_id", dimension.CompanyID,
			"data_type", dimension.DataType,
			"reporting_period", dimension.ReportingPeriod,
		)
		return created, nil

	default:
		return nil, fmt.Errorf("failed to look up data sourcing entity: %w", err)
	}
}

// nowMillis returns the current wall clock in epoch milliseconds, the time
// base of lastModifiedDate and the revision logs.
func nowMillis() int64 {
	return time.Now().UnixMilli()
}

// bumpModified returns a strictly increasing lastModifiedDate relative to
// the previous one.
func bumpModified(previous int64) int64 {
	now := nowMillis()
	if now <= previous {
		return previous + 1
	}
	return now
}
