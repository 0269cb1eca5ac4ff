package handler

import (
	"context"
	"log/slog"
	"strconv"
	"strings"

	"github.com/cloudwego/hertz/pkg/app"

	"github.com/d-fine/dataland-sourcing-service/internal/domain"
	"github.com/d-fine/dataland-sourcing-service/internal/domain/entity"
	"github.com/d-fine/dataland-sourcing-service/internal/handler/dto"
)

// RequestHandler serves the data request endpoints.
type RequestHandler struct {
	usecase domain.RequestUsecase
	history domain.HistoryUsecase
	logger  *slog.Logger
}

// NewRequestHandler creates a new request handler.
func NewRequestHandler(usecase domain.RequestUsecase, history domain.HistoryUsecase, logger *slog.Logger) *RequestHandler {
	return &RequestHandler{
		usecase: usecase,
		history: history,
		logger:  logger,
	}
}

// Create opens a new data request
//
//	@Summary		Create data request
//	@Description	Opens a data request for a company, data type and reporting period
//	@Tags			Data Requests
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		dto.CreateRequestRequest	true	"Request details"
//	@Success		201		{object}	dto.RequestResponse			"Created request"
//	@Failure		400		{object}	Response					"Invalid input or unknown dimension"
//	@Failure		409		{object}	Response					"Duplicate open request"
//	@Router			/requests [post]
func (h *RequestHandler) Create(ctx context.Context, c *app.RequestContext) {
	caller, ok := callerFrom(c)
	if !ok {
		ErrorResponse(c, domain.ErrUnauthorized)
		return
	}

	var req dto.CreateRequestRequest
	if err := c.BindJSON(&req); err != nil {
		ErrorResponse(c, domain.ErrInvalidInput)
		return
	}

	request, err := h.usecase.CreateRequest(ctx, caller, domain.CreateRequestInput{
		CompanyID:       req.CompanyID,
		DataType:        req.DataType,
		ReportingPeriod: req.ReportingPeriod,
		MemberComment:   req.MemberComment,
	})
	if err != nil {
		h.logger.Error("failed to create request", "error", err, "user_id", caller.UserID)
		ErrorResponse(c, err)
		return
	}

	CreatedResponse(c, dto.ToRequestResponse(request))
}

// Get returns a single request
//
//	@Summary		Get data request
//	@Description	Returns a request; members may only read their own
//	@Tags			Data Requests
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id	path		string				true	"Request id"
//	@Success		200	{object}	dto.RequestResponse	"Request"
//	@Failure		403	{object}	Response			"Not owner"
//	@Failure		404	{object}	Response			"Unknown request"
//	@Router			/requests/{id} [get]
func (h *RequestHandler) Get(ctx context.Context, c *app.RequestContext) {
	caller, ok := callerFrom(c)
	if !ok {
		ErrorResponse(c, domain.ErrUnauthorized)
		return
	}

	requestID := c.Param("id")
	if requestID == "" {
		ErrorResponse(c, domain.ErrInvalidInput)
		return
	}

	request, err := h.usecase.GetRequest(ctx, caller, requestID)
	if err != nil {
		h.logger.Error("failed to get request", "error", err, "request_id", requestID)
		ErrorResponse(c, err)
		return
	}

	SuccessResponse(c, dto.ToRequestResponse(request))
}

// PatchState transitions a request
//
//	@Summary		Patch request state
//	@Description	Transitions the request; Open to Processing groups it into a sourcing entity
//	@Tags			Data Requests
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id		path		string						true	"Request id"
//	@Param			request	body		dto.PatchRequestStateRequest	true	"Target state"
//	@Success		200		{object}	dto.RequestResponse			"Updated request"
//	@Failure		403		{object}	Response					"Missing role"
//	@Failure		409		{object}	Response					"Illegal transition"
//	@Router			/requests/{id}/state [patch]
func (h *RequestHandler) PatchState(ctx context.Context, c *app.RequestContext) {
	caller, ok := callerFrom(c)
	if !ok {
		ErrorResponse(c, domain.ErrUnauthorized)
		return
	}

	requestID := c.Param("id")
	if requestID == "" {
		ErrorResponse(c, domain.ErrInvalidInput)
		return
	}

	var req dto.PatchRequestStateRequest
	if err := c.BindJSON(&req); err != nil {
		ErrorResponse(c, domain.ErrInvalidInput)
		return
	}

	request, err := h.usecase.PatchState(ctx, caller, requestID, entity.RequestState(req.State), req.AdminComment)
	if err != nil {
		h.logger.Error("failed to patch request state",
			"error", err, "request_id", requestID, "state", req.State)
		ErrorResponse(c, err)
		return
	}

	SuccessResponse(c, dto.ToRequestResponse(request))
}

// PatchPriority changes a request's priority
//
//	@Summary		Patch request priority
//	@Description	Changes the priority of an Open or Processing request
//	@Tags			Data Requests
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id		path		string							true	"Request id"
//	@Param			request	body		dto.PatchRequestPriorityRequest	true	"Target priority"
//	@Success		200		{object}	dto.RequestResponse				"Updated request"
//	@Failure		400		{object}	Response						"Terminal request or unknown priority"
//	@Failure		403		{object}	Response						"Missing role"
//	@Router			/requests/{id}/priority [patch]
func (h *RequestHandler) PatchPriority(ctx context.Context, c *app.RequestContext) {
	caller, ok := callerFrom(c)
	if !ok {
		ErrorResponse(c, domain.ErrUnauthorized)
		return
	}

	requestID := c.Param("id")
	if requestID == "" {
		ErrorResponse(c, domain.ErrInvalidInput)
		return
	}

	var req dto.PatchRequestPriorityRequest
	if err := c.BindJSON(&req); err != nil {
		ErrorResponse(c, domain.ErrInvalidInput)
		return
	}

	request, err := h.usecase.PatchPriority(ctx, caller, requestID, entity.RequestPriority(req.Priority), req.AdminComment)
	if err != nil {
		h.logger.Error("failed to patch request priority",
			"error", err, "request_id", requestID, "priority", req.Priority)
		ErrorResponse(c, err)
		return
	}

	SuccessResponse(c, dto.ToRequestResponse(request))
}

// Search lists requests matching filter criteria
//
//	@Summary		Search data requests
//	@Description	Lists requests by dimension fields, user, states and priorities, chunked
//	@Tags			Data Requests
//	@Produce		json
//	@Security		BearerAuth
//	@Param			companyId		query		string			false	"Company id"
//	@Param			dataType		query		string			false	"Data type"
//	@Param			reportingPeriod	query		string			false	"Reporting period"
//	@Param			userId			query		string			false	"Requesting user id"
//	@Param			states			query		string			false	"Comma separated states"
//	@Param			priorities		query		string			false	"Comma separated priorities"
//	@Param			chunkSize		query		int				false	"Chunk size"	default(100)
//	@Param			chunkIndex		query		int				false	"Chunk index"	default(0)
//	@Success		200				{object}	ListResponse	"Matching requests"
//	@Failure		403				{object}	Response		"Missing role"
//	@Router			/requests [get]
func (h *RequestHandler) Search(ctx context.Context, c *app.RequestContext) {
	caller, ok := callerFrom(c)
	if !ok {
		ErrorResponse(c, domain.ErrUnauthorized)
		return
	}

	filter := domain.RequestSearchFilter{
		CompanyID:       optionalQuery(c, "companyId"),
		DataType:        optionalQuery(c, "dataType"),
		ReportingPeriod: optionalQuery(c, "reportingPeriod"),
		UserID:          optionalQuery(c, "userId"),
	}
	for _, state := range splitQuery(c, "states") {
		filter.States = append(filter.States, entity.RequestState(state))
	}
	for _, priority := range splitQuery(c, "priorities") {
		filter.Priorities = append(filter.Priorities, entity.RequestPriority(priority))
	}

	chunkSize, chunkIndex := chunkParams(c)
	requests, total, err := h.usecase.Search(ctx, caller, filter, chunkSize, chunkIndex)
	if err != nil {
		h.logger.Error("failed to search requests", "error", err)
		ErrorResponse(c, err)
		return
	}

	SuccessResponse(c, ListResponse{
		Items:      dto.ToRequestResponses(requests),
		TotalCount: total,
		ChunkSize:  chunkSize,
		ChunkIndex: chunkIndex,
	})
}

// History returns the compact reconciled timeline
//
//	@Summary		Request history
//	@Description	Returns the displayed-state timeline reconciled from the request and sourcing logs
//	@Tags			Data Requests
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id	path		string						true	"Request id"
//	@Success		200	{array}		dto.HistoryEntryResponse	"Timeline"
//	@Failure		403	{object}	Response					"Not owner"
//	@Failure		404	{object}	Response					"Unknown request"
//	@Router			/requests/{id}/history [get]
func (h *RequestHandler) History(ctx context.Context, c *app.RequestContext) {
	caller, ok := callerFrom(c)
	if !ok {
		ErrorResponse(c, domain.ErrUnauthorized)
		return
	}

	requestID := c.Param("id")
	if requestID == "" {
		ErrorResponse(c, domain.ErrInvalidInput)
		return
	}

	entries, err := h.history.RetrieveHistory(ctx, caller, requestID)
	if err != nil {
		h.logger.Error("failed to retrieve history", "error", err, "request_id", requestID)
		ErrorResponse(c, err)
		return
	}

	SuccessResponse(c, dto.ToHistoryEntryResponses(entries))
}

// ExtendedHistory returns the full timeline with comments
//
//	@Summary		Extended request history
//	@Description	Returns every coalesced timeline point with admin comments carried forward
//	@Tags			Data Requests
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id	path		string						true	"Request id"
//	@Success		200	{array}		dto.HistoryEntryResponse	"Timeline"
//	@Failure		403	{object}	Response					"Missing role"
//	@Failure		404	{object}	Response					"Unknown request"
//	@Router			/requests/{id}/history/extended [get]
func (h *RequestHandler) ExtendedHistory(ctx context.Context, c *app.RequestContext) {
	caller, ok := callerFrom(c)
	if !ok {
		ErrorResponse(c, domain.ErrUnauthorized)
		return
	}

	requestID := c.Param("id")
	if requestID == "" {
		ErrorResponse(c, domain.ErrInvalidInput)
		return
	}

	entries, err := h.history.RetrieveExtendedHistory(ctx, caller, requestID)
	if err != nil {
		h.logger.Error("failed to retrieve extended history", "error", err, "request_id", requestID)
		ErrorResponse(c, err)
		return
	}

	SuccessResponse(c, dto.ToHistoryEntryResponses(entries))
}

// optionalQuery returns a pointer to the query value, or nil when absent.
func optionalQuery(c *app.RequestContext, key string) *string {
	value := c.Query(key)
	if value == "" {
		return nil
	}
	return &value
}

// splitQuery returns the comma separated values of a query parameter.
func splitQuery(c *app.RequestContext, key string) []string {
	raw := c.Query(key)
	if raw == "" {
		return nil
	}
	var values []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			values = append(values, part)
		}
	}
	return values
}

// chunkParams parses the shared chunking query parameters.
func chunkParams(c *app.RequestContext) (chunkSize, chunkIndex int) {
	chunkSize, err := strconv.Atoi(c.DefaultQuery("chunkSize", "100"))
	if err != nil || chunkSize < 1 || chunkSize > 1000 {
		chunkSize = 100
	}
	chunkIndex, err = strconv.Atoi(c.DefaultQuery("chunkIndex", "0"))
	if err != nil || chunkIndex < 0 {
		chunkIndex = 0
	}
	return chunkSize, chunkIndex
}
