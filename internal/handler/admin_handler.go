package handler

import (
	"context"
	"log/slog"

	"github.com/cloudwego/hertz/pkg/app"

	"github.com/d-fine/dataland-sourcing-service/internal/domain"
)

// AdminHandler serves operational admin endpoints.
type AdminHandler struct {
	rebalance domain.RebalanceUsecase
	logger    *slog.Logger
}

// NewAdminHandler creates a new admin handler.
func NewAdminHandler(rebalance domain.RebalanceUsecase, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{
		rebalance: rebalance,
		logger:    logger,
	}
}

// RebalanceReportResponse summarizes one rebalancing run (HTTP).
type RebalanceReportResponse struct {
	Examined int `json:"examined"`
	Promoted int `json:"promoted"`
	Demoted  int `json:"demoted"`
	Skipped  int `json:"skipped"`
}

// TriggerRebalance runs one priority rebalancing pass
//
//	@Summary		Trigger priority rebalance
//	@Description	Runs one synchronous rebalancing pass over all open and processing requests
//	@Tags			Administration
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	RebalanceReportResponse	"Run report"
//	@Failure		403	{object}	Response				"Missing role"
//	@Router			/admin/rebalance [post]
func (h *AdminHandler) TriggerRebalance(ctx context.Context, c *app.RequestContext) {
	caller, ok := callerFrom(c)
	if !ok {
		ErrorResponse(c, domain.ErrUnauthorized)
		return
	}
	if !caller.IsAdmin {
		ErrorResponse(c, domain.NewForbiddenError("only administrators may trigger a rebalance run"))
		return
	}

	report, err := h.rebalance.Run(ctx)
	if err != nil {
		h.logger.Error("rebalance run failed", "error", err)
		ErrorResponse(c, err)
		return
	}

	SuccessResponse(c, RebalanceReportResponse{
		Examined: report.Examined,
		Promoted: report.Promoted,
		Demoted:  report.Demoted,
		Skipped:  report.Skipped,
	})
}
