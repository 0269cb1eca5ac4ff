package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/d-fine/dataland-sourcing-service/internal/domain"
	"github.com/d-fine/dataland-sourcing-service/internal/domain/entity"
)

// dataSourcingUsecase implements domain.DataSourcingUsecase.
type dataSourcingUsecase struct {
	dataSourcingRepo domain.DataSourcingRepository
	requestRepo      domain.RequestRepository
	revisions        domain.RevisionStore
	companyRoles     domain.CompanyRoleService
	logger           *slog.Logger
}

// NewDataSourcingUsecase creates the sourcing workflow usecase.
func NewDataSourcingUsecase(
	dataSourcingRepo domain.DataSourcingRepository,
	requestRepo domain.RequestRepository,
	revisions domain.RevisionStore,
	companyRoles domain.CompanyRoleService,
	logger *slog.Logger,
) domain.DataSourcingUsecase {
	return &dataSourcingUsecase{
		dataSourcingRepo: dataSourcingRepo,
		requestRepo:      requestRepo,
		revisions:        revisions,
		companyRoles:     companyRoles,
		logger:           logger,
	}
}

// ============ Read operations ============

func (uc *dataSourcingUsecase) Get(ctx context.Context, caller domain.Caller, dataSourcingID string) (*domain.DataSourcingView, error) {
	dataSourcing, err := uc.dataSourcingRepo.GetByID(ctx, dataSourcingID)
	if err != nil {
		return nil, err
	}
	return uc.viewFor(ctx, caller, dataSourcing)
}

func (uc *dataSourcingUsecase) Search(ctx context.Context, caller domain.Caller, filter domain.DataSourcingSearchFilter, chunkSize, chunkIndex int) ([]*domain.DataSourcingView, int, error) {
	if chunkSize < 1 || chunkIndex < 0 {
		return nil, 0, domain.NewInvalidInputError("chunkSize must be positive and chunkIndex non-negative")
	}

	total, err := uc.dataSourcingRepo.Count(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count data sourcing entities: %w", err)
	}
	entities, err := uc.dataSourcingRepo.Search(ctx, filter, chunkIndex*chunkSize, chunkSize)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to search data sourcing entities: %w", err)
	}

	views := make([]*domain.DataSourcingView, 0, len(entities))
	for _, dataSourcing := range entities {
		view, err := uc.viewFor(ctx, caller, dataSourcing)
		if err != nil {
			return nil, 0, err
		}
		views = append(views, view)
	}
	return views, total, nil
}

func (uc *dataSourcingUsecase) History(ctx context.Context, caller domain.Caller, dataSourcingID string) ([]entity.Revision, error) {
	if !caller.IsAdmin {
		return nil, domain.NewForbiddenError("only administrators may read the revision log")
	}
	if _, err := uc.dataSourcingRepo.GetByID(ctx, dataSourcingID); err != nil {
		return nil, err
	}
	return uc.revisions.ListSince(ctx, dataSourcingID, 0)
}

func (uc *dataSourcingUsecase) ListAssigned(ctx context.Context, caller domain.Caller, companyID string) ([]*domain.DataSourcingView, error) {
	if !caller.IsAdmin {
		staff, err := uc.isStaffOf(ctx, caller.UserID, companyID)
		if err != nil {
			return nil, err
		}
		if !staff {
			return nil, domain.NewForbiddenError("only company staff or administrators may list assigned sourcing entities")
		}
	}

	entities, err := uc.dataSourcingRepo.ListByAssignedCompany(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list assigned data sourcing entities: %w", err)
	}

	views := make([]*domain.DataSourcingView, 0, len(entities))
	for _, dataSourcing := range entities {
		view, err := uc.viewFor(ctx, caller, dataSourcing)
		if err != nil {
			return nil, err
		}
		views = append(views, view)
	}
	return views, nil
}

func (uc *dataSourcingUsecase) PrioritiesByDimensions(ctx context.Context, caller domain.Caller, dimensions []entity.Dimension) ([]domain.DimensionPriority, error) {
	priorities := make([]domain.DimensionPriority, 0, len(dimensions))
	for _, dimension := range dimensions {
		dataSourcing, err := uc.dataSourcingRepo.FindLiveByDimension(ctx, dimension)
		if err != nil {
			if domain.IsNotFound(err) {
				continue
			}
			return nil, fmt.Errorf("failed to look up data sourcing entity: %w", err)
		}

		visible, err := uc.mayViewPriority(ctx, caller, dataSourcing)
		if err != nil {
			return nil, err
		}
		if !visible {
			continue
		}

		requests, err := uc.loadAssociatedRequests(ctx, dataSourcing)
		if err != nil {
			return nil, err
		}
		priorities = append(priorities, domain.DimensionPriority{
			Dimension: dimension,
			Priority:  DerivedPriority(dataSourcing, requests),
		})
	}
	return priorities, nil
}

// ============ State transitions ============

func (uc *dataSourcingUsecase) PatchState(ctx context.Context, caller domain.Caller, dataSourcingID string, newState entity.DataSourcingState) (*domain.DataSourcingView, error) {
	if !caller.IsAdmin {
		return nil, domain.NewForbiddenError("only administrators may change the sourcing state")
	}

	dataSourcing, err := uc.dataSourcingRepo.GetByID(ctx, dataSourcingID)
	if err != nil {
		return nil, err
	}
	if err := ValidateDataSourcingTransition(dataSourcing.ID, dataSourcing.State, newState); err != nil {
		return nil, err
	}

	previousState := dataSourcing.State
	dataSourcing.State = newState
	dataSourcing.LastModifiedDate = bumpModified(dataSourcing.LastModifiedDate)

	var updated *entity.DataSourcing
	if newState == entity.DataSourcingStateDone {
		updated, err = uc.complete(ctx, dataSourcing)
	} else {
		updated, err = uc.dataSourcingRepo.Update(ctx, dataSourcing)
	}
	if err != nil {
		return nil, err
	}

	uc.logger.Info("data sourcing state changed",
		"data_sourcing_id", dataSourcing.ID,
		"from", previousState,
		"to", newState,
	)
	return uc.viewFor(ctx, caller, updated)
}

// complete closes out the sourcing effort. Every non-terminal associated
// request moves Processing→Processed in the same repository transaction as
// the Done write; the repository re-checks each request under lock, so a
// withdrawal racing with the cascade stays withdrawn. An associated request
// found outside Processing and the terminal states breaks the grouping
// invariant and aborts the whole operation before anything is written.
func (uc *dataSourcingUsecase) complete(ctx context.Context, dataSourcing *entity.DataSourcing) (*entity.DataSourcing, error) {
	toProcess := make([]*entity.Request, 0, len(dataSourcing.AssociatedRequestIDs))
	for _, requestID := range dataSourcing.AssociatedRequestIDs {
		request, err := uc.requestRepo.GetByID(ctx, requestID)
		if err != nil {
			return nil, fmt.Errorf("failed to load associated request '%s': %w", requestID, err)
		}
		switch request.State {
		case entity.RequestStateWithdrawn, entity.RequestStateProcessed:
			continue
		}
		if request.State != entity.RequestStateProcessing {
			return nil, domain.NewInconsistentError(fmt.Sprintf(
				"request '%s' is attached to entity '%s' but in state '%s'",
				request.ID, dataSourcing.ID, request.State,
			))
		}
		request.State = entity.RequestStateProcessed
		request.LastModifiedDate = bumpModified(request.LastModifiedDate)
		toProcess = append(toProcess, request)
	}

	updated, err := uc.dataSourcingRepo.CompleteWithRequests(ctx, dataSourcing, toProcess)
	if err != nil {
		return nil, fmt.Errorf("failed to complete data sourcing entity: %w", err)
	}

	uc.logger.Info("data sourcing completed",
		"data_sourcing_id", updated.ID,
		"processed_requests", len(toProcess),
	)
	return updated, nil
}

// ============ Document and admin patches ============

func (uc *dataSourcingUsecase) PatchDocuments(ctx context.Context, caller domain.Caller, dataSourcingID string, documents []string, appendDocuments bool) (*domain.DataSourcingView, error) {
	dataSourcing, err := uc.dataSourcingRepo.GetByID(ctx, dataSourcingID)
	if err != nil {
		return nil, err
	}

	if !caller.IsAdmin {
		allowed := false
		if dataSourcing.DocumentCollector != nil {
			allowed, err = uc.isStaffOf(ctx, caller.UserID, *dataSourcing.DocumentCollector)
			if err != nil {
				return nil, err
			}
		}
		if !allowed {
			return nil, domain.NewForbiddenError("only document collector staff or administrators may patch documents")
		}
	}
	if dataSourcing.IsTerminal() {
		return nil, domain.NewInvalidInputError(
			fmt.Sprintf("documents of data sourcing entity '%s' cannot change in state %s", dataSourcing.ID, dataSourcing.State))
	}

	if appendDocuments {
		dataSourcing.Documents = appendMissing(dataSourcing.Documents, documents)
	} else {
		dataSourcing.Documents = documents
	}
	dataSourcing.LastModifiedDate = bumpModified(dataSourcing.LastModifiedDate)

	updated, err := uc.dataSourcingRepo.Update(ctx, dataSourcing)
	if err != nil {
		return nil, fmt.Errorf("failed to update documents: %w", err)
	}

	uc.logger.Info("data sourcing documents patched",
		"data_sourcing_id", updated.ID,
		"document_count", len(updated.Documents),
		"append", appendDocuments,
	)
	return uc.viewFor(ctx, caller, updated)
}

func (uc *dataSourcingUsecase) AdminPatch(ctx context.Context, caller domain.Caller, dataSourcingID string, patch domain.DataSourcingAdminPatch) (*domain.DataSourcingView, error) {
	if !caller.IsAdmin {
		return nil, domain.NewForbiddenError("only administrators may patch sourcing entities")
	}

	dataSourcing, err := uc.dataSourcingRepo.GetByID(ctx, dataSourcingID)
	if err != nil {
		return nil, err
	}

	if patch.State != nil && *patch.State != dataSourcing.State {
		if err := ValidateDataSourcingTransition(dataSourcing.ID, dataSourcing.State, *patch.State); err != nil {
			return nil, err
		}
		if *patch.State == entity.DataSourcingStateDone {
			return nil, domain.NewInvalidInputError("the transition to Done must go through the state endpoint")
		}
		dataSourcing.State = *patch.State
	}
	if patch.DocumentCollector != nil {
		dataSourcing.DocumentCollector = patch.DocumentCollector
	}
	if patch.DataExtractor != nil {
		dataSourcing.DataExtractor = patch.DataExtractor
	}
	if patch.DateOfNextDocumentSourcingAttempt != nil {
		dataSourcing.DateOfNextDocumentSourcingAttempt = patch.DateOfNextDocumentSourcingAttempt
	}
	if patch.AdminComment != nil {
		dataSourcing.AdminComment = patch.AdminComment
	}
	if patch.Priority != nil {
		dataSourcing.PriorityOverride = patch.Priority
	}
	dataSourcing.LastModifiedDate = bumpModified(dataSourcing.LastModifiedDate)

	updated, err := uc.dataSourcingRepo.Update(ctx, dataSourcing)
	if err != nil {
		return nil, fmt.Errorf("failed to patch data sourcing entity: %w", err)
	}

	uc.logger.Info("data sourcing entity patched", "data_sourcing_id", updated.ID)
	return uc.viewFor(ctx, caller, updated)
}

// ============ Helpers ============

// viewFor resolves the role-dependent priority field for the caller.
func (uc *dataSourcingUsecase) viewFor(ctx context.Context, caller domain.Caller, dataSourcing *entity.DataSourcing) (*domain.DataSourcingView, error) {
	view := &domain.DataSourcingView{DataSourcing: *dataSourcing}

	visible, err := uc.mayViewPriority(ctx, caller, dataSourcing)
	if err != nil {
		return nil, err
	}
	if !visible {
		return view, nil
	}

	requests, err := uc.loadAssociatedRequests(ctx, dataSourcing)
	if err != nil {
		return nil, err
	}
	priority := DerivedPriority(dataSourcing, requests)
	view.Priority = &priority
	return view, nil
}

// mayViewPriority reports whether the caller may see the entity's derived
// priority: administrators always, staff of the assigned collector or
// extractor company otherwise.
func (uc *dataSourcingUsecase) mayViewPriority(ctx context.Context, caller domain.Caller, dataSourcing *entity.DataSourcing) (bool, error) {
	if caller.IsAdmin {
		return true, nil
	}
	for _, companyID := range []*string{dataSourcing.DocumentCollector, dataSourcing.DataExtractor} {
		if companyID == nil {
			continue
		}
		staff, err := uc.isStaffOf(ctx, caller.UserID, *companyID)
		if err != nil {
			return false, err
		}
		if staff {
			return true, nil
		}
	}
	return false, nil
}

func (uc *dataSourcingUsecase) isStaffOf(ctx context.Context, userID, companyID string) (bool, error) {
	roles, err := uc.companyRoles.GetRolesOf(ctx, userID, companyID)
	if err != nil {
		return false, fmt.Errorf("failed to resolve company roles: %w", err)
	}
	return len(roles) > 0, nil
}

func (uc *dataSourcingUsecase) loadAssociatedRequests(ctx context.Context, dataSourcing *entity.DataSourcing) ([]*entity.Request, error) {
	requests := make([]*entity.Request, 0, len(dataSourcing.AssociatedRequestIDs))
	for _, requestID := range dataSourcing.AssociatedRequestIDs {
		request, err := uc.requestRepo.GetByID(ctx, requestID)
		if err != nil {
			return nil, fmt.Errorf("failed to load associated request '%s': %w", requestID, err)
		}
		requests = append(requests, request)
	}
	return requests, nil
}

// appendMissing adds the new references that are not already present,
// keeping the existing order.
func appendMissing(existing, incoming []string) []string {
	seen := make(map[string]struct{}, len(existing))
	for _, reference := range existing {
		seen[reference] = struct{}{}
	}
	for _, reference := range incoming {
		if _, ok := seen[reference]; ok {
			continue
		}
		existing = append(existing, reference)
		seen[reference] = struct{}{}
	}
	return existing
}
