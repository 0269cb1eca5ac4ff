package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/d-fine/dataland-sourcing-service/internal/domain"
	"github.com/d-fine/dataland-sourcing-service/internal/domain/entity"
)

var (
	memberCaller = domain.Caller{UserID: "member-1"}
	adminCaller  = domain.Caller{UserID: "admin-1", IsAdmin: true}
)

func validCreateInput() domain.CreateRequestInput {
	return domain.CreateRequestInput{
		CompanyID:       "company-1",
		DataType:        "sfdr",
		ReportingPeriod: "2024",
	}
}

func TestCreateRequest(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(*testEnv)
		input   domain.CreateRequestInput
		wantErr func(error) bool
	}{
		{
			name:  "defaults to open and low priority",
			input: validCreateInput(),
		},
		{
			name: "unknown dimension is rejected",
			setup: func(env *testEnv) {
				env.dimensions.invalid["company-1/sfdr"] = true
			},
			input:   validCreateInput(),
			wantErr: domain.IsInvalidDimension,
		},
		{
			name:    "missing reporting period is rejected",
			input:   domain.CreateRequestInput{CompanyID: "company-1", DataType: "sfdr"},
			wantErr: domain.IsInvalidInput,
		},
		{
			name: "active duplicate by same user is rejected",
			setup: func(env *testEnv) {
				uc := env.requestUsecase()
				_, err := uc.CreateRequest(context.Background(), memberCaller, validCreateInput())
				require.NoError(t, err)
			},
			input:   validCreateInput(),
			wantErr: domain.IsAlreadyExists,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv()
			if tt.setup != nil {
				tt.setup(env)
			}
			uc := env.requestUsecase()

			request, err := uc.CreateRequest(context.Background(), memberCaller, tt.input)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.True(t, tt.wantErr(err), "unexpected error kind: %v", err)
				return
			}
			require.NoError(t, err)
			assert.NotEmpty(t, request.ID)
			assert.Equal(t, entity.RequestStateOpen, request.State)
			assert.Equal(t, entity.RequestPriorityLow, request.Priority)
			assert.Equal(t, memberCaller.UserID, request.UserID)
			assert.Nil(t, request.DataSourcingID)

			revisions, err := env.revisions.ListSince(context.Background(), request.ID, 0)
			require.NoError(t, err)
			require.Len(t, revisions, 1, "creation appends exactly one revision")
			assert.Equal(t, string(entity.RequestStateOpen), revisions[0].State)
		})
	}
}

func TestCreateRequestAllowedAfterWithdrawal(t *testing.T) {
	env := newTestEnv()
	uc := env.requestUsecase()
	ctx := context.Background()

	first, err := uc.CreateRequest(ctx, memberCaller, validCreateInput())
	require.NoError(t, err)
	_, err = uc.PatchState(ctx, memberCaller, first.ID, entity.RequestStateWithdrawn, nil)
	require.NoError(t, err)

	_, err = uc.CreateRequest(ctx, memberCaller, validCreateInput())
	assert.NoError(t, err, "a withdrawn request does not block a new one")
}

func TestGetRequestVisibility(t *testing.T) {
	env := newTestEnv()
	uc := env.requestUsecase()
	ctx := context.Background()

	created, err := uc.CreateRequest(ctx, memberCaller, validCreateInput())
	require.NoError(t, err)

	_, err = uc.GetRequest(ctx, memberCaller, created.ID)
	assert.NoError(t, err)

	_, err = uc.GetRequest(ctx, adminCaller, created.ID)
	assert.NoError(t, err)

	_, err = uc.GetRequest(ctx, domain.Caller{UserID: "stranger"}, created.ID)
	assert.True(t, domain.IsForbidden(err))

	_, err = uc.GetRequest(ctx, adminCaller, "missing")
	assert.True(t, domain.IsNotFound(err))
}

func TestPatchStateToProcessingGroupsRequest(t *testing.T) {
	env := newTestEnv()
	uc := env.requestUsecase()
	ctx := context.Background()

	created, err := uc.CreateRequest(ctx, memberCaller, validCreateInput())
	require.NoError(t, err)

	updated, err := uc.PatchState(ctx, adminCaller, created.ID, entity.RequestStateProcessing, nil)
	require.NoError(t, err)
	assert.Equal(t, entity.RequestStateProcessing, updated.State)
	require.NotNil(t, updated.DataSourcingID)
	assert.Greater(t, updated.LastModifiedDate, created.LastModifiedDate)

	dataSourcing, err := env.dataSourcingRepo.GetByID(ctx, *updated.DataSourcingID)
	require.NoError(t, err)
	assert.Equal(t, entity.DataSourcingStateInitialized, dataSourcing.State)
	assert.Contains(t, dataSourcing.AssociatedRequestIDs, created.ID)
}

func TestPatchStateRules(t *testing.T) {
	tests := []struct {
		name         string
		caller       domain.Caller
		target       entity.RequestState
		adminComment *string
		wantErr      func(error) bool
	}{
		{
			name:   "requester may withdraw",
			caller: memberCaller,
			target: entity.RequestStateWithdrawn,
		},
		{
			name:   "admin may withdraw",
			caller: adminCaller,
			target: entity.RequestStateWithdrawn,
		},
		{
			name:    "stranger may not withdraw",
			caller:  domain.Caller{UserID: "stranger"},
			target:  entity.RequestStateWithdrawn,
			wantErr: domain.IsForbidden,
		},
		{
			name:    "requester may not start processing",
			caller:  memberCaller,
			target:  entity.RequestStateProcessing,
			wantErr: domain.IsForbidden,
		},
		{
			name:    "open cannot jump to processed",
			caller:  adminCaller,
			target:  entity.RequestStateProcessed,
			wantErr: domain.IsIllegalTransition,
		},
		{
			name:         "requester may not attach an admin comment",
			caller:       memberCaller,
			target:       entity.RequestStateWithdrawn,
			adminComment: strPtr("noted"),
			wantErr:      domain.IsForbidden,
		},
		{
			name:         "admin comment is recorded",
			caller:       adminCaller,
			target:       entity.RequestStateWithdrawn,
			adminComment: strPtr("requested by support"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv()
			uc := env.requestUsecase()
			ctx := context.Background()

			created, err := uc.CreateRequest(ctx, memberCaller, validCreateInput())
			require.NoError(t, err)

			updated, err := uc.PatchState(ctx, tt.caller, created.ID, tt.target, tt.adminComment)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.True(t, tt.wantErr(err), "unexpected error kind: %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.target, updated.State)
			if tt.adminComment != nil {
				require.NotNil(t, updated.AdminComment)
				assert.Equal(t, *tt.adminComment, *updated.AdminComment)
			}
		})
	}
}

func TestWithdrawnRequestRejectsFurtherTransitions(t *testing.T) {
	env := newTestEnv()
	uc := env.requestUsecase()
	ctx := context.Background()

	created, err := uc.CreateRequest(ctx, memberCaller, validCreateInput())
	require.NoError(t, err)
	_, err = uc.PatchState(ctx, memberCaller, created.ID, entity.RequestStateWithdrawn, nil)
	require.NoError(t, err)

	_, err = uc.PatchState(ctx, adminCaller, created.ID, entity.RequestStateProcessing, nil)
	assert.True(t, domain.IsIllegalTransition(err))
}

func TestPatchPriority(t *testing.T) {
	env := newTestEnv()
	uc := env.requestUsecase()
	ctx := context.Background()

	created, err := uc.CreateRequest(ctx, memberCaller, validCreateInput())
	require.NoError(t, err)

	_, err = uc.PatchPriority(ctx, memberCaller, created.ID, entity.RequestPriorityHigh, nil)
	assert.True(t, domain.IsForbidden(err), "members may not patch priority")

	_, err = uc.PatchPriority(ctx, adminCaller, created.ID, entity.RequestPriority("Urgent"), nil)
	assert.True(t, domain.IsInvalidInput(err))

	updated, err := uc.PatchPriority(ctx, adminCaller, created.ID, entity.RequestPriorityHigh, strPtr("premium customer"))
	require.NoError(t, err)
	assert.Equal(t, entity.RequestPriorityHigh, updated.Priority)
	assert.Greater(t, updated.LastModifiedDate, created.LastModifiedDate)

	_, err = uc.PatchState(ctx, memberCaller, created.ID, entity.RequestStateWithdrawn, nil)
	require.NoError(t, err)
	_, err = uc.PatchPriority(ctx, adminCaller, created.ID, entity.RequestPriorityLow, nil)
	assert.True(t, domain.IsInvalidInput(err), "terminal requests keep their priority")
}

func TestSearchRequests(t *testing.T) {
	env := newTestEnv()
	uc := env.requestUsecase()
	ctx := context.Background()

	for _, period := range []string{"2022", "2023", "2024"} {
		input := validCreateInput()
		input.ReportingPeriod = period
		_, err := uc.CreateRequest(ctx, memberCaller, input)
		require.NoError(t, err)
	}

	_, _, err := uc.Search(ctx, memberCaller, domain.RequestSearchFilter{}, 10, 0)
	assert.True(t, domain.IsForbidden(err), "search is admin only")

	_, _, err = uc.Search(ctx, adminCaller, domain.RequestSearchFilter{}, 0, 0)
	assert.True(t, domain.IsInvalidInput(err))

	results, total, err := uc.Search(ctx, adminCaller, domain.RequestSearchFilter{}, 2, 0)
	require.NoError(t, err)
	assert.Equal(t, 3, total)
	assert.Len(t, results, 2)

	period := "2023"
	results, total, err = uc.Search(ctx, adminCaller, domain.RequestSearchFilter{ReportingPeriod: &period}, 10, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	require.Len(t, results, 1)
	assert.Equal(t, "2023", results[0].ReportingPeriod)
}
