package worker

import (
	"context"
	"log/slog"
	"time"

	"github.com/d-fine/dataland-sourcing-service/internal/domain"
)

// DefaultRebalanceInterval is used when the configuration does not set one.
const DefaultRebalanceInterval = 30 * time.Minute

// Rebalancer runs the priority rebalancing pass on a fixed schedule. Runs
// never overlap; a pass that outlasts the interval simply delays the next
// tick.
type Rebalancer struct {
	usecase  domain.RebalanceUsecase
	interval time.Duration
	logger   *slog.Logger
}

// NewRebalancer creates a scheduled rebalancer.
func NewRebalancer(usecase domain.RebalanceUsecase, interval time.Duration, logger *slog.Logger) *Rebalancer {
	if interval <= 0 {
		interval = DefaultRebalanceInterval
	}
	return &Rebalancer{
		usecase:  usecase,
		interval: interval,
		logger:   logger,
	}
}

// Run blocks until the context is cancelled, executing one pass per tick.
// The first pass runs immediately on start.
func (w *Rebalancer) Run(ctx context.Context) {
	w.logger.Info("priority rebalancer started", "interval", w.interval)

	w.runOnce(ctx)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.logger.Info("priority rebalancer stopped")
			return
		case <-ticker.C:
			w.runOnce(ctx)
		}
	}
}

func (w *Rebalancer) runOnce(ctx context.Context) {
	report, err := w.usecase.Run(ctx)
	if err != nil {
		w.logger.Error("priority rebalance pass failed", "error", err)
		return
	}
	if report.Promoted > 0 || report.Demoted > 0 || report.Skipped > 0 {
		w.logger.Info("priority rebalance pass applied changes",
			"examined", report.Examined,
			"promoted", report.Promoted,
			"demoted", report.Demoted,
			"skipped", report.Skipped,
		)
	}
}
