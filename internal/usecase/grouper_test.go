package usecase

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/d-fine/dataland-sourcing-service/internal/domain"
	"github.com/d-fine/dataland-sourcing-service/internal/domain/entity"
)

func newOpenRequest(id, userID string) *entity.Request {
	return &entity.Request{
		ID:                id,
		CompanyID:         "company-1",
		DataType:          "sfdr",
		ReportingPeriod:   "2024",
		UserID:            userID,
		State:             entity.RequestStateOpen,
		Priority:          entity.RequestPriorityLow,
		CreationTimestamp: nowMillis(),
		LastModifiedDate:  nowMillis(),
	}
}

func TestResolveOrCreateCreatesInitializedEntity(t *testing.T) {
	env := newTestEnv()
	grouper := NewDimensionGrouper(env.dataSourcingRepo, testLogger())

	request := newOpenRequest("request-1", "user-1")
	dataSourcing, err := grouper.ResolveOrCreate(context.Background(), request)
	require.NoError(t, err)

	assert.Equal(t, entity.DataSourcingStateInitialized, dataSourcing.State)
	assert.Equal(t, request.Dimension(), dataSourcing.Dimension())
	assert.Equal(t, []string{"request-1"}, dataSourcing.AssociatedRequestIDs)
}

func TestResolveOrCreateAttachesToLiveEntity(t *testing.T) {
	env := newTestEnv()
	grouper := NewDimensionGrouper(env.dataSourcingRepo, testLogger())
	ctx := context.Background()

	first, err := grouper.ResolveOrCreate(ctx, newOpenRequest("request-1", "user-1"))
	require.NoError(t, err)
	second, err := grouper.ResolveOrCreate(ctx, newOpenRequest("request-2", "user-2"))
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.ElementsMatch(t, []string{"request-1", "request-2"}, second.AssociatedRequestIDs)
}

func TestResolveOrCreateIgnoresDoneEntities(t *testing.T) {
	env := newTestEnv()
	grouper := NewDimensionGrouper(env.dataSourcingRepo, testLogger())
	ctx := context.Background()

	done := newOpenRequest("request-0", "user-0").Dimension()
	_, err := env.dataSourcingRepo.Create(ctx, &entity.DataSourcing{
		CompanyID:        done.CompanyID,
		DataType:         done.DataType,
		ReportingPeriod:  done.ReportingPeriod,
		State:            entity.DataSourcingStateDone,
		LastModifiedDate: nowMillis(),
	})
	require.NoError(t, err)

	// A re-request after completion gets a fresh entity.
	fresh, err := grouper.ResolveOrCreate(ctx, newOpenRequest("request-1", "user-1"))
	require.NoError(t, err)
	assert.Equal(t, entity.DataSourcingStateInitialized, fresh.State)
	assert.Equal(t, []string{"request-1"}, fresh.AssociatedRequestIDs)
}

func TestResolveOrCreateConcurrentCallersProduceOneEntity(t *testing.T) {
	env := newTestEnv()
	grouper := NewDimensionGrouper(env.dataSourcingRepo, testLogger())
	ctx := context.Background()

	const callers = 16
	ids := make([]string, callers)
	var wg sync.WaitGroup
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			dataSourcing, err := grouper.ResolveOrCreate(ctx, newOpenRequest(fmt.Sprintf("request-%d", i), fmt.Sprintf("user-%d", i)))
			if assert.NoError(t, err) {
				ids[i] = dataSourcing.ID
			}
		}(i)
	}
	wg.Wait()

	for i := 1; i < callers; i++ {
		assert.Equal(t, ids[0], ids[i], "all callers must land on the same entity")
	}
	assert.Equal(t, 1, env.dataSourcingRepo.createCalls, "exactly one creator wins")

	winner, err := env.dataSourcingRepo.GetByID(ctx, ids[0])
	require.NoError(t, err)
	assert.Len(t, winner.AssociatedRequestIDs, callers)
}

func TestResolveOrCreateRecoversFromUniquenessConflict(t *testing.T) {
	env := newTestEnv()
	grouper := NewDimensionGrouper(env.dataSourcingRepo, testLogger())
	ctx := context.Background()

	// Simulate another process winning the creation race: the initial
	// lookup misses, the insert conflicts, and the winning row is there to
	// attach to on the second lookup.
	request := newOpenRequest("request-1", "user-1")
	winner, err := env.dataSourcingRepo.Create(ctx, &entity.DataSourcing{
		CompanyID:            request.CompanyID,
		DataType:             request.DataType,
		ReportingPeriod:      request.ReportingPeriod,
		State:                entity.DataSourcingStateInitialized,
		AssociatedRequestIDs: []string{"request-0"},
		LastModifiedDate:     nowMillis(),
	})
	require.NoError(t, err)
	env.dataSourcingRepo.hideLiveOnce = true
	env.dataSourcingRepo.createErr = domain.NewAlreadyExistsError("data sourcing entity", request.Dimension().Key())

	attached, err := grouper.ResolveOrCreate(ctx, request)
	require.NoError(t, err)
	assert.Equal(t, winner.ID, attached.ID)
	assert.Contains(t, attached.AssociatedRequestIDs, "request-1")
}
