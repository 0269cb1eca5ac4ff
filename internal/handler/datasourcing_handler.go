package handler

import (
	"context"
	"log/slog"

	"github.com/cloudwego/hertz/pkg/app"

	"github.com/d-fine/dataland-sourcing-service/internal/domain"
	"github.com/d-fine/dataland-sourcing-service/internal/domain/entity"
	"github.com/d-fine/dataland-sourcing-service/internal/handler/dto"
)

// DataSourcingHandler serves the sourcing entity endpoints.
type DataSourcingHandler struct {
	usecase domain.DataSourcingUsecase
	logger  *slog.Logger
}

// NewDataSourcingHandler creates a new data sourcing handler.
func NewDataSourcingHandler(usecase domain.DataSourcingUsecase, logger *slog.Logger) *DataSourcingHandler {
	return &DataSourcingHandler{
		usecase: usecase,
		logger:  logger,
	}
}

// Get returns a single sourcing entity
//
//	@Summary		Get data sourcing entity
//	@Description	Returns the entity with priority visibility resolved for the caller
//	@Tags			Data Sourcing
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id	path		string						true	"Data sourcing id"
//	@Success		200	{object}	dto.DataSourcingResponse	"Entity"
//	@Failure		404	{object}	Response					"Unknown entity"
//	@Router			/data-sourcings/{id} [get]
func (h *DataSourcingHandler) Get(ctx context.Context, c *app.RequestContext) {
	caller, ok := callerFrom(c)
	if !ok {
		ErrorResponse(c, domain.ErrUnauthorized)
		return
	}

	dataSourcingID := c.Param("id")
	if dataSourcingID == "" {
		ErrorResponse(c, domain.ErrInvalidInput)
		return
	}

	view, err := h.usecase.Get(ctx, caller, dataSourcingID)
	if err != nil {
		h.logger.Error("failed to get data sourcing", "error", err, "data_sourcing_id", dataSourcingID)
		ErrorResponse(c, err)
		return
	}

	SuccessResponse(c, dto.ToDataSourcingResponse(view))
}

// Search lists sourcing entities by dimension fields
//
//	@Summary		Search data sourcing entities
//	@Description	Lists entities matching the dimension filter, chunked
//	@Tags			Data Sourcing
//	@Produce		json
//	@Security		BearerAuth
//	@Param			companyId		query		string			false	"Company id"
//	@Param			dataType		query		string			false	"Data type"
//	@Param			reportingPeriod	query		string			false	"Reporting period"
//	@Param			chunkSize		query		int				false	"Chunk size"	default(100)
//	@Param			chunkIndex		query		int				false	"Chunk index"	default(0)
//	@Success		200				{object}	ListResponse	"Matching entities"
//	@Router			/data-sourcings [get]
func (h *DataSourcingHandler) Search(ctx context.Context, c *app.RequestContext) {
	caller, ok := callerFrom(c)
	if !ok {
		ErrorResponse(c, domain.ErrUnauthorized)
		return
	}

	filter := domain.DataSourcingSearchFilter{
		CompanyID:       optionalQuery(c, "companyId"),
		DataType:        optionalQuery(c, "dataType"),
		ReportingPeriod: optionalQuery(c, "reportingPeriod"),
	}

	chunkSize, chunkIndex := chunkParams(c)
	views, total, err := h.usecase.Search(ctx, caller, filter, chunkSize, chunkIndex)
	if err != nil {
		h.logger.Error("failed to search data sourcings", "error", err)
		ErrorResponse(c, err)
		return
	}

	SuccessResponse(c, ListResponse{
		Items:      dto.ToDataSourcingResponses(views),
		TotalCount: total,
		ChunkSize:  chunkSize,
		ChunkIndex: chunkIndex,
	})
}

// PatchState advances the entity lifecycle
//
//	@Summary		Patch sourcing state
//	@Description	Advances the strictly linear lifecycle; Done cascades Processed onto associated requests
//	@Tags			Data Sourcing
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id		path		string							true	"Data sourcing id"
//	@Param			request	body		dto.PatchDataSourcingStateRequest	true	"Target state"
//	@Success		200		{object}	dto.DataSourcingResponse		"Updated entity"
//	@Failure		403		{object}	Response						"Missing role"
//	@Failure		409		{object}	Response						"Illegal transition"
//	@Router			/data-sourcings/{id}/state [patch]
func (h *DataSourcingHandler) PatchState(ctx context.Context, c *app.RequestContext) {
	caller, ok := callerFrom(c)
	if !ok {
		ErrorResponse(c, domain.ErrUnauthorized)
		return
	}

	dataSourcingID := c.Param("id")
	if dataSourcingID == "" {
		ErrorResponse(c, domain.ErrInvalidInput)
		return
	}

	var req dto.PatchDataSourcingStateRequest
	if err := c.BindJSON(&req); err != nil {
		ErrorResponse(c, domain.ErrInvalidInput)
		return
	}

	view, err := h.usecase.PatchState(ctx, caller, dataSourcingID, entity.DataSourcingState(req.State))
	if err != nil {
		h.logger.Error("failed to patch data sourcing state",
			"error", err, "data_sourcing_id", dataSourcingID, "state", req.State)
		ErrorResponse(c, err)
		return
	}

	SuccessResponse(c, dto.ToDataSourcingResponse(view))
}

// PatchDocuments updates the collected document references
//
//	@Summary		Patch sourced documents
//	@Description	Appends to or replaces the collected document references
//	@Tags			Data Sourcing
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id		path		string						true	"Data sourcing id"
//	@Param			request	body		dto.PatchDocumentsRequest	true	"Document references"
//	@Success		200		{object}	dto.DataSourcingResponse	"Updated entity"
//	@Failure		403		{object}	Response					"Not collector staff"
//	@Router			/data-sourcings/{id}/documents [patch]
func (h *DataSourcingHandler) PatchDocuments(ctx context.Context, c *app.RequestContext) {
	caller, ok := callerFrom(c)
	if !ok {
		ErrorResponse(c, domain.ErrUnauthorized)
		return
	}

	dataSourcingID := c.Param("id")
	if dataSourcingID == "" {
		ErrorResponse(c, domain.ErrInvalidInput)
		return
	}

	var req dto.PatchDocumentsRequest
	if err := c.BindJSON(&req); err != nil {
		ErrorResponse(c, domain.ErrInvalidInput)
		return
	}

	view, err := h.usecase.PatchDocuments(ctx, caller, dataSourcingID, req.Documents, req.Append)
	if err != nil {
		h.logger.Error("failed to patch documents",
			"error", err, "data_sourcing_id", dataSourcingID)
		ErrorResponse(c, err)
		return
	}

	SuccessResponse(c, dto.ToDataSourcingResponse(view))
}

// AdminPatch updates admin-only fields
//
//	@Summary		Admin patch sourcing entity
//	@Description	Updates collector, extractor, comment, next attempt date and priority override
//	@Tags			Data Sourcing
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id		path		string							true	"Data sourcing id"
//	@Param			request	body		dto.AdminPatchDataSourcingRequest	true	"Fields to change"
//	@Success		200		{object}	dto.DataSourcingResponse		"Updated entity"
//	@Failure		400		{object}	Response						"Done not allowed here"
//	@Failure		403		{object}	Response						"Missing role"
//	@Router			/data-sourcings/{id} [patch]
func (h *DataSourcingHandler) AdminPatch(ctx context.Context, c *app.RequestContext) {
	caller, ok := callerFrom(c)
	if !ok {
		ErrorResponse(c, domain.ErrUnauthorized)
		return
	}

	dataSourcingID := c.Param("id")
	if dataSourcingID == "" {
		ErrorResponse(c, domain.ErrInvalidInput)
		return
	}

	var req dto.AdminPatchDataSourcingRequest
	if err := c.BindJSON(&req); err != nil {
		ErrorResponse(c, domain.ErrInvalidInput)
		return
	}

	patch := domain.DataSourcingAdminPatch{
		DocumentCollector:                 req.DocumentCollector,
		DataExtractor:                     req.DataExtractor,
		DateOfNextDocumentSourcingAttempt: req.DateOfNextDocumentSourcingAttempt,
		AdminComment:                      req.AdminComment,
	}
	if req.State != nil {
		state := entity.DataSourcingState(*req.State)
		patch.State = &state
	}
	if req.Priority != nil {
		priority := entity.RequestPriority(*req.Priority)
		patch.Priority = &priority
	}

	view, err := h.usecase.AdminPatch(ctx, caller, dataSourcingID, patch)
	if err != nil {
		h.logger.Error("failed to admin patch data sourcing",
			"error", err, "data_sourcing_id", dataSourcingID)
		ErrorResponse(c, err)
		return
	}

	SuccessResponse(c, dto.ToDataSourcingResponse(view))
}

// History returns the entity's revision log
//
//	@Summary		Sourcing revision history
//	@Description	Returns the append-only revision log of the entity
//	@Tags			Data Sourcing
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id	path		string					true	"Data sourcing id"
//	@Success		200	{array}		dto.RevisionResponse	"Revision log"
//	@Failure		403	{object}	Response				"Missing role"
//	@Router			/data-sourcings/{id}/history [get]
func (h *DataSourcingHandler) History(ctx context.Context, c *app.RequestContext) {
	caller, ok := callerFrom(c)
	if !ok {
		ErrorResponse(c, domain.ErrUnauthorized)
		return
	}

	dataSourcingID := c.Param("id")
	if dataSourcingID == "" {
		ErrorResponse(c, domain.ErrInvalidInput)
		return
	}

	revisions, err := h.usecase.History(ctx, caller, dataSourcingID)
	if err != nil {
		h.logger.Error("failed to get data sourcing history",
			"error", err, "data_sourcing_id", dataSourcingID)
		ErrorResponse(c, err)
		return
	}

	SuccessResponse(c, dto.ToRevisionResponses(revisions))
}

// ListAssigned returns entities assigned to a company
//
//	@Summary		List assigned sourcing entities
//	@Description	Lists entities where the company acts as document collector or data extractor
//	@Tags			Data Sourcing
//	@Produce		json
//	@Security		BearerAuth
//	@Param			companyId	path		string						true	"Company id"
//	@Success		200			{array}		dto.DataSourcingResponse	"Assigned entities"
//	@Failure		403			{object}	Response					"Not company staff"
//	@Router			/companies/{companyId}/data-sourcings [get]
func (h *DataSourcingHandler) ListAssigned(ctx context.Context, c *app.RequestContext) {
	caller, ok := callerFrom(c)
	if !ok {
		ErrorResponse(c, domain.ErrUnauthorized)
		return
	}

	companyID := c.Param("companyId")
	if companyID == "" {
		ErrorResponse(c, domain.ErrInvalidInput)
		return
	}

	views, err := h.usecase.ListAssigned(ctx, caller, companyID)
	if err != nil {
		h.logger.Error("failed to list assigned data sourcings",
			"error", err, "company_id", companyID)
		ErrorResponse(c, err)
		return
	}

	SuccessResponse(c, dto.ToDataSourcingResponses(views))
}

// Priorities resolves derived priorities per dimension
//
//	@Summary		Bulk priority lookup
//	@Description	Resolves the derived priority of the live entity for each dimension; dimensions without one are omitted
//	@Tags			Data Sourcing
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		dto.PrioritiesRequest			true	"Dimensions"
//	@Success		200		{array}		dto.DimensionPriorityResponse	"Resolved priorities"
//	@Router			/data-sourcings/priorities [post]
func (h *DataSourcingHandler) Priorities(ctx context.Context, c *app.RequestContext) {
	caller, ok := callerFrom(c)
	if !ok {
		ErrorResponse(c, domain.ErrUnauthorized)
		return
	}

	var req dto.PrioritiesRequest
	if err := c.BindJSON(&req); err != nil {
		ErrorResponse(c, domain.ErrInvalidInput)
		return
	}

	priorities, err := h.usecase.PrioritiesByDimensions(ctx, caller, dto.ToDimensions(req.Dimensions))
	if err != nil {
		h.logger.Error("failed to resolve dimension priorities", "error", err)
		ErrorResponse(c, err)
		return
	}

	SuccessResponse(c, dto.ToDimensionPriorityResponses(priorities))
}
