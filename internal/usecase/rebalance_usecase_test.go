package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/d-fine/dataland-sourcing-service/internal/domain"
	"github.com/d-fine/dataland-sourcing-service/internal/domain/entity"
)

func seedRequest(t *testing.T, env *testEnv, id, userID string, state entity.RequestState, priority entity.RequestPriority) {
	t.Helper()
	now := nowMillis()
	_, err := env.requestRepo.Create(context.Background(), &entity.Request{
		ID:                id,
		CompanyID:         "company-1",
		DataType:          "sfdr",
		ReportingPeriod:   id, // distinct dimension per request
		UserID:            userID,
		State:             state,
		Priority:          priority,
		CreationTimestamp: now,
		LastModifiedDate:  now,
	})
	require.NoError(t, err)
}

func requestPriority(t *testing.T, env *testEnv, id string) entity.RequestPriority {
	t.Helper()
	request, err := env.requestRepo.GetByID(context.Background(), id)
	require.NoError(t, err)
	return request.Priority
}

func TestRebalanceSwapsPriorities(t *testing.T) {
	env := newTestEnv()
	env.tiers.premium["premium-user"] = true
	seedRequest(t, env, "premium-low", "premium-user", entity.RequestStateOpen, entity.RequestPriorityLow)
	seedRequest(t, env, "normal-high", "normal-user", entity.RequestStateOpen, entity.RequestPriorityHigh)

	uc := env.rebalanceUsecase()
	report, err := uc.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, report.Examined)
	assert.Equal(t, 1, report.Promoted)
	assert.Equal(t, 1, report.Demoted)
	assert.Equal(t, 0, report.Skipped)
	assert.Equal(t, entity.RequestPriorityHigh, requestPriority(t, env, "premium-low"))
	assert.Equal(t, entity.RequestPriorityLow, requestPriority(t, env, "normal-high"))
}

func TestRebalanceIsIdempotent(t *testing.T) {
	env := newTestEnv()
	env.tiers.premium["premium-user"] = true
	seedRequest(t, env, "premium-low", "premium-user", entity.RequestStateOpen, entity.RequestPriorityLow)
	seedRequest(t, env, "normal-high", "normal-user", entity.RequestStateOpen, entity.RequestPriorityHigh)

	uc := env.rebalanceUsecase()
	_, err := uc.Run(context.Background())
	require.NoError(t, err)

	second, err := uc.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, second.Promoted, "second run changes nothing")
	assert.Equal(t, 0, second.Demoted)
}

func TestRebalanceCoversProcessingRequests(t *testing.T) {
	env := newTestEnv()
	env.tiers.premium["premium-user"] = true
	seedRequest(t, env, "processing-low", "premium-user", entity.RequestStateProcessing, entity.RequestPriorityLow)

	report, err := env.rebalanceUsecase().Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, report.Promoted)
	assert.Equal(t, entity.RequestPriorityHigh, requestPriority(t, env, "processing-low"))
}

func TestRebalanceIgnoresTerminalRequests(t *testing.T) {
	env := newTestEnv()
	env.tiers.premium["premium-user"] = true
	seedRequest(t, env, "processed-low", "premium-user", entity.RequestStateProcessed, entity.RequestPriorityLow)
	seedRequest(t, env, "withdrawn-high", "normal-user", entity.RequestStateWithdrawn, entity.RequestPriorityHigh)

	report, err := env.rebalanceUsecase().Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, report.Examined)
	assert.Equal(t, entity.RequestPriorityLow, requestPriority(t, env, "processed-low"))
	assert.Equal(t, entity.RequestPriorityHigh, requestPriority(t, env, "withdrawn-high"))
}

func TestRebalanceSkipsFailedPatches(t *testing.T) {
	env := newTestEnv()
	env.tiers.premium["premium-user"] = true
	seedRequest(t, env, "stuck", "premium-user", entity.RequestStateOpen, entity.RequestPriorityLow)
	seedRequest(t, env, "fine", "premium-user", entity.RequestStateOpen, entity.RequestPriorityLow)
	env.requestRepo.updateErr["stuck"] = errors.New("row lock timeout")

	report, err := env.rebalanceUsecase().Run(context.Background())
	require.NoError(t, err, "one failed patch does not abort the batch")
	assert.Equal(t, 1, report.Skipped)
	assert.Equal(t, 1, report.Promoted)
	assert.Equal(t, entity.RequestPriorityLow, requestPriority(t, env, "stuck"))
	assert.Equal(t, entity.RequestPriorityHigh, requestPriority(t, env, "fine"))
}

func TestRebalanceSkipsOnTierLookupFailure(t *testing.T) {
	env := newTestEnv()
	env.tiers.err = errors.New("community manager unavailable")
	seedRequest(t, env, "unknown-tier", "some-user", entity.RequestStateOpen, entity.RequestPriorityLow)

	report, err := env.rebalanceUsecase().Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, report.Skipped)
	assert.Equal(t, entity.RequestPriorityLow, requestPriority(t, env, "unknown-tier"))
}

func TestRebalancePagesThroughLargePartitions(t *testing.T) {
	env := newTestEnv()
	uc := NewRebalanceUsecase(env.requestRepo, env.tiers, 3, testLogger())

	for i := 0; i < 10; i++ {
		id := string(rune('a' + i))
		env.tiers.premium["premium-"+id] = true
		seedRequest(t, env, "request-"+id, "premium-"+id, entity.RequestStateOpen, entity.RequestPriorityLow)
	}

	report, err := uc.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 10, report.Examined)
	assert.Equal(t, 10, report.Promoted)
}

func TestDerivedPriorityOverride(t *testing.T) {
	override := entity.RequestPriorityLow
	dataSourcing := &entity.DataSourcing{PriorityOverride: &override}
	requests := []*entity.Request{{Priority: entity.RequestPriorityHigh}}

	assert.Equal(t, entity.RequestPriorityLow, DerivedPriority(dataSourcing, requests))
	assert.Equal(t, entity.RequestPriorityHigh, DerivedPriority(&entity.DataSourcing{}, requests))
	assert.Equal(t, entity.RequestPriorityLow, DerivedPriority(&entity.DataSourcing{}, nil))
}

func TestTargetPriority(t *testing.T) {
	assert.Equal(t, entity.RequestPriorityHigh, TargetPriority(true))
	assert.Equal(t, entity.RequestPriorityLow, TargetPriority(false))
}

var _ domain.RebalanceUsecase = (*rebalanceUsecase)(nil)
