package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/d-fine/dataland-sourcing-service/internal/domain"
	"github.com/d-fine/dataland-sourcing-service/internal/domain/entity"
)

// requestUsecase implements domain.RequestUsecase.
type requestUsecase struct {
	requestRepo domain.RequestRepository
	grouper     *DimensionGrouper
	dimensions  domain.DimensionValidator
	logger      *slog.Logger
}

// NewRequestUsecase creates the request lifecycle usecase.
func NewRequestUsecase(
	requestRepo domain.RequestRepository,
	grouper *DimensionGrouper,
	dimensions domain.DimensionValidator,
	logger *slog.Logger,
) domain.RequestUsecase {
	return &requestUsecase{
		requestRepo: requestRepo,
		grouper:     grouper,
		dimensions:  dimensions,
		logger:      logger,
	}
}

// ============ CreateRequest ============

func (uc *requestUsecase) CreateRequest(ctx context.Context, caller domain.Caller, input domain.CreateRequestInput) (*entity.Request, error) {
	if input.CompanyID == "" || input.DataType == "" || input.ReportingPeriod == "" {
		return nil, domain.NewInvalidInputError("companyId, dataType and reportingPeriod are required")
	}

	valid, err := uc.dimensions.IsValidDimension(ctx, input.CompanyID, input.DataType)
	if err != nil {
		return nil, fmt.Errorf("failed to validate data dimension: %w", err)
	}
	if !valid {
		return nil, domain.NewInvalidDimensionError(input.CompanyID, input.DataType)
	}

	if err := uc.rejectDuplicate(ctx, caller.UserID, input); err != nil {
		return nil, err
	}

	now := nowMillis()
	request := &entity.Request{
		ID:                uuid.New().String(),
		CompanyID:         input.CompanyID,
		DataType:          input.DataType,
		ReportingPeriod:   input.ReportingPeriod,
		UserID:            caller.UserID,
		State:             entity.RequestStateOpen,
		Priority:          entity.RequestPriorityLow,
		MemberComment:     input.MemberComment,
		CreationTimestamp: now,
		LastModifiedDate:  now,
	}

	created, err := uc.requestRepo.Create(ctx, request)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	uc.logger.Info("request created",
		"request_id", created.ID,
		"user_id", caller.UserID,
		"company_id", created.CompanyID,
		"data_type", created.DataType,
		"reporting_period", created.ReportingPeriod,
	)
	return created, nil
}

// rejectDuplicate fails when the user already has a non-terminal request for
// the same dimension.
func (uc *requestUsecase) rejectDuplicate(ctx context.Context, userID string, input domain.CreateRequestInput) error {
	count, err := uc.requestRepo.Count(ctx, domain.RequestSearchFilter{
		CompanyID:       &input.CompanyID,
		DataType:        &input.DataType,
		ReportingPeriod: &input.ReportingPeriod,
		UserID:          &userID,
		States:          []entity.RequestState{entity.RequestStateOpen, entity.RequestStateProcessing},
	})
	if err != nil {
		return fmt.Errorf("failed to check for duplicate requests: %w", err)
	}
	if count > 0 {
		return domain.NewAlreadyExistsError("request",
			fmt.Sprintf("user '%s' already has an active request for %s/%s/%s",
				userID, input.CompanyID, input.DataType, input.ReportingPeriod))
	}
	return nil
}

// ============ GetRequest ============

func (uc *requestUsecase) GetRequest(ctx context.Context, caller domain.Caller, requestID string) (*entity.Request, error) {
	request, err := uc.requestRepo.GetByID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if !caller.IsAdmin && request.UserID != caller.UserID {
		return nil, domain.NewForbiddenError("only the requester or an administrator may read this request")
	}
	return request, nil
}

// ============ PatchState ============

func (uc *requestUsecase) PatchState(ctx context.Context, caller domain.Caller, requestID string, newState entity.RequestState, adminComment *string) (*entity.Request, error) {
	request, err := uc.requestRepo.GetByID(ctx, requestID)
	if err != nil {
		return nil, err
	}

	if newState == entity.RequestStateWithdrawn {
		if !caller.IsAdmin && request.UserID != caller.UserID {
			return nil, domain.NewForbiddenError("only the requester or an administrator may withdraw a request")
		}
	} else if !caller.IsAdmin {
		return nil, domain.NewForbiddenError("only administrators may change the request state")
	}
	if adminComment != nil && !caller.IsAdmin {
		return nil, domain.NewForbiddenError("only administrators may set the admin comment")
	}

	if err := ValidateRequestTransition(request.ID, request.State, newState); err != nil {
		return nil, err
	}

	// Entering Processing groups the request into the sourcing effort for
	// its dimension.
	if request.State == entity.RequestStateOpen && newState == entity.RequestStateProcessing {
		dataSourcing, err := uc.grouper.ResolveOrCreate(ctx, request)
		if err != nil {
			return nil, err
		}
		request.DataSourcingID = &dataSourcing.ID
	}

	previousState := request.State
	request.State = newState
	if adminComment != nil {
		request.AdminComment = adminComment
	}
	request.LastModifiedDate = bumpModified(request.LastModifiedDate)

	updated, err := uc.requestRepo.Update(ctx, request)
	if err != nil {
		return nil, fmt.Errorf("failed to update request state: %w", err)
	}

	uc.logger.Info("request state changed",
		"request_id", request.ID,
		"from", previousState,
		"to", newState,
	)
	return updated, nil
}

// ============ PatchPriority ============

func (uc *requestUsecase) PatchPriority(ctx context.Context, caller domain.Caller, requestID string, newPriority entity.RequestPriority, adminComment *string) (*entity.Request, error) {
	if !caller.IsAdmin {
		return nil, domain.NewForbiddenError("only administrators may change the request priority")
	}
	if newPriority != entity.RequestPriorityLow && newPriority != entity.RequestPriorityHigh {
		return nil, domain.NewInvalidInputError(fmt.Sprintf("unknown priority '%s'", newPriority))
	}

	request, err := uc.requestRepo.GetByID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if request.IsTerminal() {
		return nil, domain.NewInvalidInputError(
			fmt.Sprintf("priority of request '%s' cannot change in state %s", request.ID, request.State))
	}

	request.Priority = newPriority
	if adminComment != nil {
		request.AdminComment = adminComment
	}
	request.LastModifiedDate = bumpModified(request.LastModifiedDate)

	updated, err := uc.requestRepo.Update(ctx, request)
	if err != nil {
		return nil, fmt.Errorf("failed to update request priority: %w", err)
	}

	uc.logger.Info("request priority changed",
		"request_id", request.ID,
		"priority", newPriority,
	)
	return updated, nil
}

// ============ Search ============

func (uc *requestUsecase) Search(ctx context.Context, caller domain.Caller, filter domain.RequestSearchFilter, chunkSize, chunkIndex int) ([]*entity.Request, int, error) {
	if !caller.IsAdmin {
		return nil, 0, domain.NewForbiddenError("only administrators may search requests")
	}
	if chunkSize < 1 || chunkIndex < 0 {
		return nil, 0, domain.NewInvalidInputError("chunkSize must be positive and chunkIndex non-negative")
	}

	total, err := uc.requestRepo.Count(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count requests: %w", err)
	}
	requests, err := uc.requestRepo.Search(ctx, filter, chunkIndex*chunkSize, chunkSize)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to search requests: %w", err)
	}
	return requests, total, nil
}
