package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/d-fine/dataland-sourcing-service/internal/domain"
	"github.com/d-fine/dataland-sourcing-service/internal/domain/entity"
)

// DefaultRebalancePageSize bounds how many requests one page read returns
// during a rebalancing pass.
const DefaultRebalancePageSize = 100

// rebalanceUsecase implements domain.RebalanceUsecase. One run takes a
// snapshot of the active requests partitioned by priority and applies the
// symmetric swap: premium requesters up to High, everyone else down to Low.
// Re-running on a balanced set patches nothing.
type rebalanceUsecase struct {
	requestRepo domain.RequestRepository
	tiers       domain.UserTierService
	pageSize    int
	logger      *slog.Logger
}

// NewRebalanceUsecase creates the priority rebalancing usecase.
func NewRebalanceUsecase(
	requestRepo domain.RequestRepository,
	tiers domain.UserTierService,
	pageSize int,
	logger *slog.Logger,
) domain.RebalanceUsecase {
	if pageSize < 1 {
		pageSize = DefaultRebalancePageSize
	}
	return &rebalanceUsecase{
		requestRepo: requestRepo,
		tiers:       tiers,
		pageSize:    pageSize,
		logger:      logger,
	}
}

// activeStates are the request states whose priority still matters.
var activeStates = []entity.RequestState{
	entity.RequestStateOpen,
	entity.RequestStateProcessing,
}

func (uc *rebalanceUsecase) Run(ctx context.Context) (domain.RebalanceReport, error) {
	report := domain.RebalanceReport{}
	premiumByUser := make(map[string]bool)

	// Both priority partitions are snapshotted before any patch, so paging
	// never races with the mutations the pass itself causes.
	var snapshot []*entity.Request
	for _, priority := range []entity.RequestPriority{entity.RequestPriorityLow, entity.RequestPriorityHigh} {
		partition, err := uc.collectPartition(ctx, priority)
		if err != nil {
			return report, err
		}
		snapshot = append(snapshot, partition...)
	}

	for _, request := range snapshot {
		report.Examined++

		isPremium, known := premiumByUser[request.UserID]
		if !known {
			var err error
			isPremium, err = uc.tiers.IsPremium(ctx, request.UserID)
			if err != nil {
				uc.logger.Warn("skipping request, premium tier lookup failed",
					"request_id", request.ID,
					"user_id", request.UserID,
					"error", err,
				)
				report.Skipped++
				continue
			}
			premiumByUser[request.UserID] = isPremium
		}

		target := TargetPriority(isPremium)
		if target == request.Priority {
			continue
		}

		request.Priority = target
		request.LastModifiedDate = bumpModified(request.LastModifiedDate)
		if _, err := uc.requestRepo.Update(ctx, request); err != nil {
			uc.logger.Warn("skipping request, priority patch failed",
				"request_id", request.ID,
				"target_priority", target,
				"error", err,
			)
			report.Skipped++
			continue
		}

		if target == entity.RequestPriorityHigh {
			report.Promoted++
		} else {
			report.Demoted++
		}
	}

	uc.logger.Info("priority rebalance finished",
		"examined", report.Examined,
		"promoted", report.Promoted,
		"demoted", report.Demoted,
		"skipped", report.Skipped,
	)
	return report, nil
}

// collectPartition pages through all active requests at the given priority.
func (uc *rebalanceUsecase) collectPartition(ctx context.Context, priority entity.RequestPriority) ([]*entity.Request, error) {
	filter := domain.RequestSearchFilter{
		States:     activeStates,
		Priorities: []entity.RequestPriority{priority},
	}

	var snapshot []*entity.Request
	for offset := 0; ; offset += uc.pageSize {
		page, err := uc.requestRepo.Search(ctx, filter, offset, uc.pageSize)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s priority partition: %w", priority, err)
		}
		snapshot = append(snapshot, page...)
		if len(page) < uc.pageSize {
			return snapshot, nil
		}
	}
}
