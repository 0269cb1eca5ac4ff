package worker

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/d-fine/dataland-sourcing-service/internal/domain"
)

type countingRebalancer struct {
	runs atomic.Int32
	err  error
}

func (c *countingRebalancer) Run(ctx context.Context) (domain.RebalanceReport, error) {
	c.runs.Add(1)
	return domain.RebalanceReport{}, c.err
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestRebalancerRunsImmediatelyAndOnTicks(t *testing.T) {
	usecase := &countingRebalancer{}
	rebalancer := NewRebalancer(usecase, 20*time.Millisecond, discardLogger())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		rebalancer.Run(ctx)
		close(done)
	}()

	assert.Eventually(t, func() bool {
		return usecase.runs.Load() >= 3
	}, time.Second, 5*time.Millisecond, "expected the initial pass plus ticks")

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("rebalancer did not stop on context cancellation")
	}
}

func TestRebalancerSurvivesFailingPasses(t *testing.T) {
	usecase := &countingRebalancer{err: errors.New("database unavailable")}
	rebalancer := NewRebalancer(usecase, 10*time.Millisecond, discardLogger())

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()
	rebalancer.Run(ctx)

	assert.GreaterOrEqual(t, usecase.runs.Load(), int32(2), "failures must not stop the schedule")
}

func TestRebalancerDefaultsInterval(t *testing.T) {
	rebalancer := NewRebalancer(&countingRebalancer{}, 0, discardLogger())
	assert.Equal(t, DefaultRebalanceInterval, rebalancer.interval)
}
