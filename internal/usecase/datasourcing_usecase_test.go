package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/d-fine/dataland-sourcing-service/internal/domain"
	"github.com/d-fine/dataland-sourcing-service/internal/domain/entity"
)

// startProcessing creates a request and moves it into Processing, returning
// the request and its sourcing entity id.
func startProcessing(t *testing.T, env *testEnv, userID, reportingPeriod string) (*entity.Request, string) {
	t.Helper()
	uc := env.requestUsecase()
	ctx := context.Background()

	input := validCreateInput()
	input.ReportingPeriod = reportingPeriod
	created, err := uc.CreateRequest(ctx, domain.Caller{UserID: userID}, input)
	require.NoError(t, err)

	processing, err := uc.PatchState(ctx, adminCaller, created.ID, entity.RequestStateProcessing, nil)
	require.NoError(t, err)
	require.NotNil(t, processing.DataSourcingID)
	return processing, *processing.DataSourcingID
}

// advanceTo walks the sourcing entity forward to the target state.
func advanceTo(t *testing.T, env *testEnv, dataSourcingID string, target entity.DataSourcingState) {
	t.Helper()
	uc := env.dataSourcingUsecase()
	ctx := context.Background()

	order := []entity.DataSourcingState{
		entity.DataSourcingStateDocumentSourcing,
		entity.DataSourcingStateDataExtraction,
		entity.DataSourcingStateDone,
	}
	for _, state := range order {
		_, err := uc.PatchState(ctx, adminCaller, dataSourcingID, state)
		require.NoError(t, err)
		if state == target {
			return
		}
	}
}

func TestDataSourcingPriorityVisibility(t *testing.T) {
	env := newTestEnv()
	_, dataSourcingID := startProcessing(t, env, "member-1", "2024")

	collector := "collector-co"
	uc := env.dataSourcingUsecase()
	ctx := context.Background()
	_, err := uc.AdminPatch(ctx, adminCaller, dataSourcingID, domain.DataSourcingAdminPatch{
		DocumentCollector: &collector,
	})
	require.NoError(t, err)
	env.companyRoles.grant("collector-staff", collector, domain.RoleDataUploader)

	adminView, err := uc.Get(ctx, adminCaller, dataSourcingID)
	require.NoError(t, err)
	require.NotNil(t, adminView.Priority, "admins always see the priority")
	assert.Equal(t, entity.RequestPriorityLow, *adminView.Priority)

	staffView, err := uc.Get(ctx, domain.Caller{UserID: "collector-staff"}, dataSourcingID)
	require.NoError(t, err)
	assert.NotNil(t, staffView.Priority, "collector staff see the priority")

	strangerView, err := uc.Get(ctx, domain.Caller{UserID: "stranger"}, dataSourcingID)
	require.NoError(t, err)
	assert.Nil(t, strangerView.Priority, "priority is hidden from everyone else")
}

func TestDataSourcingDerivedPriorityFollowsRequests(t *testing.T) {
	env := newTestEnv()
	request, dataSourcingID := startProcessing(t, env, "member-1", "2024")
	ctx := context.Background()

	_, err := env.requestUsecase().PatchPriority(ctx, adminCaller, request.ID, entity.RequestPriorityHigh, nil)
	require.NoError(t, err)

	view, err := env.dataSourcingUsecase().Get(ctx, adminCaller, dataSourcingID)
	require.NoError(t, err)
	require.NotNil(t, view.Priority)
	assert.Equal(t, entity.RequestPriorityHigh, *view.Priority, "one High request lifts the entity")
}

func TestPatchStateEnforcesLinearOrder(t *testing.T) {
	env := newTestEnv()
	_, dataSourcingID := startProcessing(t, env, "member-1", "2024")
	uc := env.dataSourcingUsecase()
	ctx := context.Background()

	_, err := uc.PatchState(ctx, memberCaller, dataSourcingID, entity.DataSourcingStateDocumentSourcing)
	assert.True(t, domain.IsForbidden(err), "state patches are admin only")

	_, err = uc.PatchState(ctx, adminCaller, dataSourcingID, entity.DataSourcingStateDone)
	assert.True(t, domain.IsIllegalTransition(err), "Initialized cannot jump to Done")

	view, err := uc.PatchState(ctx, adminCaller, dataSourcingID, entity.DataSourcingStateDocumentSourcing)
	require.NoError(t, err)
	assert.Equal(t, entity.DataSourcingStateDocumentSourcing, view.State)

	_, err = uc.PatchState(ctx, adminCaller, dataSourcingID, entity.DataSourcingStateInitialized)
	assert.True(t, domain.IsIllegalTransition(err), "no backward moves")
}

func TestDoneCascadesProcessedOntoAssociatedRequests(t *testing.T) {
	env := newTestEnv()
	first, dataSourcingID := startProcessing(t, env, "member-1", "2024")
	second, secondID := startProcessing(t, env, "member-2", "2024")
	require.Equal(t, dataSourcingID, secondID, "same dimension shares one entity")

	// A withdrawn request stays withdrawn through the cascade.
	withdrawn, withdrawnEntityID := startProcessing(t, env, "member-3", "2024")
	require.Equal(t, dataSourcingID, withdrawnEntityID)
	ctx := context.Background()
	_, err := env.requestUsecase().PatchState(ctx, domain.Caller{UserID: "member-3"}, withdrawn.ID, entity.RequestStateWithdrawn, nil)
	require.NoError(t, err)

	advanceTo(t, env, dataSourcingID, entity.DataSourcingStateDone)

	done, err := env.dataSourcingRepo.GetByID(ctx, dataSourcingID)
	require.NoError(t, err)
	assert.Equal(t, entity.DataSourcingStateDone, done.State)

	for _, requestID := range []string{first.ID, second.ID} {
		request, err := env.requestRepo.GetByID(ctx, requestID)
		require.NoError(t, err)
		assert.Equal(t, entity.RequestStateProcessed, request.State)
	}
	request, err := env.requestRepo.GetByID(ctx, withdrawn.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.RequestStateWithdrawn, request.State)
}

func TestDoneCascadeIsAllOrNothing(t *testing.T) {
	env := newTestEnv()
	request, dataSourcingID := startProcessing(t, env, "member-1", "2024")
	advanceTo(t, env, dataSourcingID, entity.DataSourcingStateDataExtraction)

	// Force the request into a state the cascade cannot move. This cannot
	// happen through the public operations; it simulates corrupted
	// grouping state.
	broken, err := env.requestRepo.GetByID(context.Background(), request.ID)
	require.NoError(t, err)
	broken.State = entity.RequestStateOpen
	_, err = env.requestRepo.Update(context.Background(), broken)
	require.NoError(t, err)

	_, err = env.dataSourcingUsecase().PatchState(context.Background(), adminCaller, dataSourcingID, entity.DataSourcingStateDone)
	require.Error(t, err)
	assert.True(t, domain.IsInconsistent(err), "an attached request outside the workflow is a broken invariant")

	// Nothing moved.
	dataSourcing, err := env.dataSourcingRepo.GetByID(context.Background(), dataSourcingID)
	require.NoError(t, err)
	assert.Equal(t, entity.DataSourcingStateDataExtraction, dataSourcing.State)
	after, err := env.requestRepo.GetByID(context.Background(), request.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.RequestStateOpen, after.State)
}

func TestDoneCascadeDoesNotOverrideConcurrentWithdrawal(t *testing.T) {
	env := newTestEnv()
	first, dataSourcingID := startProcessing(t, env, "member-1", "2024")
	second, secondID := startProcessing(t, env, "member-2", "2024")
	require.Equal(t, dataSourcingID, secondID)
	advanceTo(t, env, dataSourcingID, entity.DataSourcingStateDataExtraction)
	ctx := context.Background()

	// Withdraw the second request after the cascade has taken its snapshot
	// but before the completing transaction runs.
	env.dataSourcingRepo.beforeComplete = func() {
		env.dataSourcingRepo.beforeComplete = nil
		_, err := env.requestUsecase().PatchState(ctx, domain.Caller{UserID: "member-2"}, second.ID, entity.RequestStateWithdrawn, nil)
		require.NoError(t, err)
	}

	_, err := env.dataSourcingUsecase().PatchState(ctx, adminCaller, dataSourcingID, entity.DataSourcingStateDone)
	require.NoError(t, err)

	processed, err := env.requestRepo.GetByID(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.RequestStateProcessed, processed.State)

	withdrawn, err := env.requestRepo.GetByID(ctx, second.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.RequestStateWithdrawn, withdrawn.State, "a late withdrawal survives the cascade")
}

func TestPatchDocuments(t *testing.T) {
	env := newTestEnv()
	_, dataSourcingID := startProcessing(t, env, "member-1", "2024")
	uc := env.dataSourcingUsecase()
	ctx := context.Background()

	collector := "collector-co"
	_, err := uc.AdminPatch(ctx, adminCaller, dataSourcingID, domain.DataSourcingAdminPatch{
		DocumentCollector: &collector,
	})
	require.NoError(t, err)
	env.companyRoles.grant("collector-staff", collector, domain.RoleDataUploader)
	staff := domain.Caller{UserID: "collector-staff"}

	_, err = uc.PatchDocuments(ctx, domain.Caller{UserID: "stranger"}, dataSourcingID, []string{"doc-1"}, true)
	assert.True(t, domain.IsForbidden(err))

	view, err := uc.PatchDocuments(ctx, staff, dataSourcingID, []string{"doc-1", "doc-2"}, true)
	require.NoError(t, err)
	assert.Equal(t, []string{"doc-1", "doc-2"}, view.Documents)

	// Appending again skips references already present.
	view, err = uc.PatchDocuments(ctx, staff, dataSourcingID, []string{"doc-2", "doc-3"}, true)
	require.NoError(t, err)
	assert.Equal(t, []string{"doc-1", "doc-2", "doc-3"}, view.Documents)

	view, err = uc.PatchDocuments(ctx, adminCaller, dataSourcingID, []string{"doc-9"}, false)
	require.NoError(t, err)
	assert.Equal(t, []string{"doc-9"}, view.Documents, "replace mode discards the previous set")
}

func TestAdminPatch(t *testing.T) {
	env := newTestEnv()
	_, dataSourcingID := startProcessing(t, env, "member-1", "2024")
	uc := env.dataSourcingUsecase()
	ctx := context.Background()

	_, err := uc.AdminPatch(ctx, memberCaller, dataSourcingID, domain.DataSourcingAdminPatch{})
	assert.True(t, domain.IsForbidden(err))

	override := entity.RequestPriorityHigh
	extractor := "extractor-co"
	view, err := uc.AdminPatch(ctx, adminCaller, dataSourcingID, domain.DataSourcingAdminPatch{
		DataExtractor: &extractor,
		AdminComment:  strPtr("fast-tracked"),
		Priority:      &override,
	})
	require.NoError(t, err)
	require.NotNil(t, view.DataExtractor)
	assert.Equal(t, extractor, *view.DataExtractor)
	require.NotNil(t, view.Priority)
	assert.Equal(t, entity.RequestPriorityHigh, *view.Priority, "override wins over derived priority")

	doneState := entity.DataSourcingStateDone
	advanceTo(t, env, dataSourcingID, entity.DataSourcingStateDataExtraction)
	_, err = uc.AdminPatch(ctx, adminCaller, dataSourcingID, domain.DataSourcingAdminPatch{State: &doneState})
	assert.True(t, domain.IsInvalidInput(err), "completion must run the cascade")
}

func TestDataSourcingHistoryAndSearch(t *testing.T) {
	env := newTestEnv()
	_, dataSourcingID := startProcessing(t, env, "member-1", "2024")
	advanceTo(t, env, dataSourcingID, entity.DataSourcingStateDocumentSourcing)
	uc := env.dataSourcingUsecase()
	ctx := context.Background()

	_, err := uc.History(ctx, memberCaller, dataSourcingID)
	assert.True(t, domain.IsForbidden(err))

	revisions, err := uc.History(ctx, adminCaller, dataSourcingID)
	require.NoError(t, err)
	require.NotEmpty(t, revisions)
	assert.Equal(t, string(entity.DataSourcingStateDocumentSourcing), revisions[len(revisions)-1].State)

	companyID := "company-1"
	views, total, err := uc.Search(ctx, adminCaller, domain.DataSourcingSearchFilter{CompanyID: &companyID}, 10, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	require.Len(t, views, 1)
	assert.Equal(t, dataSourcingID, views[0].ID)
}

func TestListAssigned(t *testing.T) {
	env := newTestEnv()
	_, dataSourcingID := startProcessing(t, env, "member-1", "2024")
	uc := env.dataSourcingUsecase()
	ctx := context.Background()

	collector := "collector-co"
	_, err := uc.AdminPatch(ctx, adminCaller, dataSourcingID, domain.DataSourcingAdminPatch{
		DocumentCollector: &collector,
	})
	require.NoError(t, err)
	env.companyRoles.grant("collector-staff", collector, domain.RoleDataUploader)

	_, err = uc.ListAssigned(ctx, domain.Caller{UserID: "stranger"}, collector)
	assert.True(t, domain.IsForbidden(err))

	views, err := uc.ListAssigned(ctx, domain.Caller{UserID: "collector-staff"}, collector)
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, dataSourcingID, views[0].ID)
}

func TestPrioritiesByDimensions(t *testing.T) {
	env := newTestEnv()
	request, _ := startProcessing(t, env, "member-1", "2024")
	ctx := context.Background()

	_, err := env.requestUsecase().PatchPriority(ctx, adminCaller, request.ID, entity.RequestPriorityHigh, nil)
	require.NoError(t, err)

	dimensions := []entity.Dimension{
		{CompanyID: "company-1", DataType: "sfdr", ReportingPeriod: "2024"},
		{CompanyID: "company-1", DataType: "sfdr", ReportingPeriod: "1999"}, // no live entity
	}

	priorities, err := env.dataSourcingUsecase().PrioritiesByDimensions(ctx, adminCaller, dimensions)
	require.NoError(t, err)
	require.Len(t, priorities, 1, "dimensions without a live entity are omitted")
	assert.Equal(t, dimensions[0], priorities[0].Dimension)
	assert.Equal(t, entity.RequestPriorityHigh, priorities[0].Priority)
}
