package usecase

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/d-fine/dataland-sourcing-service/internal/domain"
	"github.com/d-fine/dataland-sourcing-service/internal/domain/entity"
)

func requestRevision(state entity.RequestState, timestamp int64, comment *string) entity.Revision {
	return entity.Revision{
		EntityID:     "request-1",
		Kind:         entity.RevisionKindRequest,
		State:        string(state),
		AdminComment: comment,
		Timestamp:    timestamp,
	}
}

func sourcingRevision(state entity.DataSourcingState, timestamp int64, comment *string) entity.Revision {
	return entity.Revision{
		EntityID:     "sourcing-1",
		Kind:         entity.RevisionKindDataSourcing,
		State:        string(state),
		AdminComment: comment,
		Timestamp:    timestamp,
	}
}

func TestCompactHistoryCoalescesNearSimultaneousPair(t *testing.T) {
	reconciler := NewHistoryReconciler(1000)

	got := reconciler.Compact(
		[]entity.Revision{
			requestRevision(entity.RequestStateOpen, 1000, nil),
			requestRevision(entity.RequestStateProcessing, 1500, nil),
		},
		[]entity.Revision{
			sourcingRevision(entity.DataSourcingStateInitialized, 1500, nil),
		},
	)

	want := []entity.HistoryEntry{
		{Timestamp: 1000, DisplayedState: entity.DisplayedStateOpen},
		{Timestamp: 1500, DisplayedState: entity.DisplayedStateInitialized},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("compact history mismatch (-want +got):\n%s", diff)
	}
}

func TestCompactHistoryWithoutSourcingEntityMirrorsRequestLog(t *testing.T) {
	reconciler := NewHistoryReconciler(1000)

	got := reconciler.Compact(
		[]entity.Revision{
			requestRevision(entity.RequestStateOpen, 1000, nil),
			requestRevision(entity.RequestStateProcessing, 1600, nil),
			requestRevision(entity.RequestStateWithdrawn, 2200, nil),
		},
		nil,
	)

	want := []entity.HistoryEntry{
		{Timestamp: 1000, DisplayedState: entity.DisplayedStateOpen},
		{Timestamp: 1600, DisplayedState: entity.DisplayedStateProcessing},
		{Timestamp: 2200, DisplayedState: entity.DisplayedStateWithdrawn},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("compact history mismatch (-want +got):\n%s", diff)
	}
}

func TestCompactHistoryFullWorkflow(t *testing.T) {
	reconciler := NewHistoryReconciler(1000)

	requestRevisions := []entity.Revision{
		requestRevision(entity.RequestStateOpen, 1000, nil),
		requestRevision(entity.RequestStateProcessing, 10000, nil),
		requestRevision(entity.RequestStateProcessed, 50200, nil),
	}
	sourcingRevisions := []entity.Revision{
		sourcingRevision(entity.DataSourcingStateInitialized, 10300, nil),
		sourcingRevision(entity.DataSourcingStateDocumentSourcing, 20000, nil),
		sourcingRevision(entity.DataSourcingStateDataExtraction, 30000, nil),
		sourcingRevision(entity.DataSourcingStateDone, 50000, nil),
	}

	got := reconciler.Compact(requestRevisions, sourcingRevisions)

	// Processing@10000 and Initialized@10300 coalesce; Done@50000 and
	// Processed@50200 coalesce, keeping the later timestamp.
	want := []entity.HistoryEntry{
		{Timestamp: 1000, DisplayedState: entity.DisplayedStateOpen},
		{Timestamp: 10300, DisplayedState: entity.DisplayedStateInitialized},
		{Timestamp: 20000, DisplayedState: entity.DisplayedStateDocumentSourcing},
		{Timestamp: 30000, DisplayedState: entity.DisplayedStateDataExtraction},
		{Timestamp: 50200, DisplayedState: entity.DisplayedStateProcessed},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("compact history mismatch (-want +got):\n%s", diff)
	}
}

func TestCompactHistoryNeverRepeatsDisplayedState(t *testing.T) {
	reconciler := NewHistoryReconciler(1000)

	// The sourcing entity reaching Done and the request moving to
	// Processed display identically; far apart they must still collapse.
	got := reconciler.Compact(
		[]entity.Revision{
			requestRevision(entity.RequestStateOpen, 1000, nil),
			requestRevision(entity.RequestStateProcessing, 5000, nil),
			requestRevision(entity.RequestStateProcessed, 90000, nil),
		},
		[]entity.Revision{
			sourcingRevision(entity.DataSourcingStateInitialized, 7000, nil),
			sourcingRevision(entity.DataSourcingStateDone, 80000, nil),
		},
	)

	for i := 1; i < len(got); i++ {
		assert.NotEqual(t, got[i-1].DisplayedState, got[i].DisplayedState,
			"consecutive entries %d and %d share a displayed state", i-1, i)
	}
	require.Equal(t, entity.DisplayedStateProcessed, got[len(got)-1].DisplayedState)
	assert.Equal(t, int64(80000), got[len(got)-1].Timestamp, "earliest timestamp of the Processed run wins")
}

func TestSameLogRevisionsNeverCoalesce(t *testing.T) {
	reconciler := NewHistoryReconciler(1000)

	got := reconciler.Compact(
		[]entity.Revision{
			requestRevision(entity.RequestStateOpen, 1000, nil),
			requestRevision(entity.RequestStateProcessing, 1600, nil),
			requestRevision(entity.RequestStateWithdrawn, 2200, nil),
		},
		nil,
	)

	require.Len(t, got, 3, "rapid same-log transitions must all stay visible")
}

func TestSourcingRevisionsBeforeRequestCreationAreDropped(t *testing.T) {
	reconciler := NewHistoryReconciler(1000)

	// The entity pre-existed this request; its earlier revisions belong to
	// other requests' timelines, but the state they establish still
	// applies once this request enters Processing.
	got := reconciler.Compact(
		[]entity.Revision{
			requestRevision(entity.RequestStateOpen, 50000, nil),
			requestRevision(entity.RequestStateProcessing, 60000, nil),
		},
		[]entity.Revision{
			sourcingRevision(entity.DataSourcingStateInitialized, 10000, nil),
			sourcingRevision(entity.DataSourcingStateDocumentSourcing, 70000, nil),
		},
	)

	want := []entity.HistoryEntry{
		{Timestamp: 50000, DisplayedState: entity.DisplayedStateOpen},
		{Timestamp: 60000, DisplayedState: entity.DisplayedStateInitialized},
		{Timestamp: 70000, DisplayedState: entity.DisplayedStateDocumentSourcing},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("compact history mismatch (-want +got):\n%s", diff)
	}
}

func TestExtendedHistoryCarriesCommentsForward(t *testing.T) {
	reconciler := NewHistoryReconciler(1000)

	requestRevisions := []entity.Revision{
		requestRevision(entity.RequestStateOpen, 1000, nil),
		requestRevision(entity.RequestStateProcessing, 10000, strPtr("assigned to collector")),
	}
	sourcingRevisions := []entity.Revision{
		sourcingRevision(entity.DataSourcingStateInitialized, 12000, nil),
		sourcingRevision(entity.DataSourcingStateDocumentSourcing, 20000, strPtr("two reports located")),
	}

	got := reconciler.Extended(requestRevisions, sourcingRevisions)

	want := []entity.HistoryEntry{
		{Timestamp: 1000, DisplayedState: entity.DisplayedStateOpen},
		{Timestamp: 10000, DisplayedState: entity.DisplayedStateProcessing, AdminComment: strPtr("assigned to collector")},
		{Timestamp: 12000, DisplayedState: entity.DisplayedStateInitialized, AdminComment: strPtr("assigned to collector")},
		{Timestamp: 20000, DisplayedState: entity.DisplayedStateDocumentSourcing, AdminComment: strPtr("two reports located")},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("extended history mismatch (-want +got):\n%s", diff)
	}
}

func TestRepeatedDisplayedStateCollapsesOnlyInCompactHistory(t *testing.T) {
	reconciler := NewHistoryReconciler(1000)

	// A sourcing revision after the request was withdrawn still displays
	// Withdrawn; compact collapses the run, extended keeps both points.
	requestRevisions := []entity.Revision{
		requestRevision(entity.RequestStateOpen, 1000, nil),
		requestRevision(entity.RequestStateProcessing, 601000, nil),
		requestRevision(entity.RequestStateWithdrawn, 1201000, nil),
	}
	sourcingRevisions := []entity.Revision{
		sourcingRevision(entity.DataSourcingStateInitialized, 601050, nil),
		sourcingRevision(entity.DataSourcingStateDocumentSourcing, 901000, nil),
		sourcingRevision(entity.DataSourcingStateDataExtraction, 1801000, nil),
	}

	compact := reconciler.Compact(requestRevisions, sourcingRevisions)
	wantCompact := []entity.HistoryEntry{
		{Timestamp: 1000, DisplayedState: entity.DisplayedStateOpen},
		{Timestamp: 601050, DisplayedState: entity.DisplayedStateInitialized},
		{Timestamp: 901000, DisplayedState: entity.DisplayedStateDocumentSourcing},
		{Timestamp: 1201000, DisplayedState: entity.DisplayedStateWithdrawn},
	}
	if diff := cmp.Diff(wantCompact, compact); diff != "" {
		t.Errorf("compact history mismatch (-want +got):\n%s", diff)
	}

	extended := reconciler.Extended(requestRevisions, sourcingRevisions)
	wantExtended := []entity.HistoryEntry{
		{Timestamp: 1000, DisplayedState: entity.DisplayedStateOpen},
		{Timestamp: 601050, DisplayedState: entity.DisplayedStateInitialized},
		{Timestamp: 901000, DisplayedState: entity.DisplayedStateDocumentSourcing},
		{Timestamp: 1201000, DisplayedState: entity.DisplayedStateWithdrawn},
		{Timestamp: 1801000, DisplayedState: entity.DisplayedStateWithdrawn},
	}
	if diff := cmp.Diff(wantExtended, extended); diff != "" {
		t.Errorf("extended history mismatch (-want +got):\n%s", diff)
	}
}

func TestExtendedHistoryIsAtLeastAsLongAsCompact(t *testing.T) {
	reconciler := NewHistoryReconciler(1000)

	requestRevisions := []entity.Revision{
		requestRevision(entity.RequestStateOpen, 1000, nil),
		requestRevision(entity.RequestStateProcessing, 10000, nil),
		requestRevision(entity.RequestStateProcessed, 52000, strPtr("closing out")),
	}
	sourcingRevisions := []entity.Revision{
		sourcingRevision(entity.DataSourcingStateInitialized, 12000, nil),
		sourcingRevision(entity.DataSourcingStateDocumentSourcing, 20000, strPtr("collecting")),
		sourcingRevision(entity.DataSourcingStateDataExtraction, 30000, nil),
		sourcingRevision(entity.DataSourcingStateDone, 50000, nil),
	}

	compact := reconciler.Compact(requestRevisions, sourcingRevisions)
	extended := reconciler.Extended(requestRevisions, sourcingRevisions)

	assert.GreaterOrEqual(t, len(extended), len(compact))
	for _, entry := range compact {
		assert.Nil(t, entry.AdminComment, "compact entries carry no comments")
	}
}

func TestHistoryOutputsAreSortedAscending(t *testing.T) {
	reconciler := NewHistoryReconciler(1000)

	// Revision slices handed over out of order must still produce an
	// ascending timeline.
	requestRevisions := []entity.Revision{
		requestRevision(entity.RequestStateProcessing, 10000, nil),
		requestRevision(entity.RequestStateOpen, 1000, nil),
	}
	sourcingRevisions := []entity.Revision{
		sourcingRevision(entity.DataSourcingStateDocumentSourcing, 30000, nil),
		sourcingRevision(entity.DataSourcingStateInitialized, 12000, nil),
	}

	for _, entries := range [][]entity.HistoryEntry{
		reconciler.Compact(requestRevisions, sourcingRevisions),
		reconciler.Extended(requestRevisions, sourcingRevisions),
	} {
		for i := 1; i < len(entries); i++ {
			assert.Less(t, entries[i-1].Timestamp, entries[i].Timestamp)
		}
	}
}

func TestCoalescedEntryKeepsLaterCommentAndTimestamp(t *testing.T) {
	reconciler := NewHistoryReconciler(1000)

	got := reconciler.Extended(
		[]entity.Revision{
			requestRevision(entity.RequestStateOpen, 1000, nil),
			requestRevision(entity.RequestStateProcessing, 10000, strPtr("earlier")),
		},
		[]entity.Revision{
			sourcingRevision(entity.DataSourcingStateInitialized, 10400, strPtr("later")),
		},
	)

	require.Len(t, got, 2)
	assert.Equal(t, int64(10400), got[1].Timestamp)
	assert.Equal(t, entity.DisplayedStateInitialized, got[1].DisplayedState)
	require.NotNil(t, got[1].AdminComment)
	assert.Equal(t, "later", *got[1].AdminComment)
}

func TestHistoryUsecaseAuthorization(t *testing.T) {
	env := newTestEnv()
	uc := env.historyUsecase()
	ctx := context.Background()

	request := &entity.Request{
		ID:                "request-1",
		CompanyID:         "company-1",
		DataType:          "sfdr",
		ReportingPeriod:   "2024",
		UserID:            "owner",
		State:             entity.RequestStateOpen,
		Priority:          entity.RequestPriorityLow,
		CreationTimestamp: 1000,
		LastModifiedDate:  1000,
	}
	_, err := env.requestRepo.Create(ctx, request)
	require.NoError(t, err)

	tests := []struct {
		name     string
		caller   domain.Caller
		extended bool
		wantErr  func(error) bool
	}{
		{
			name:   "owner reads compact history",
			caller: domain.Caller{UserID: "owner"},
		},
		{
			name:   "admin reads compact history",
			caller: domain.Caller{UserID: "someone", IsAdmin: true},
		},
		{
			name:    "stranger is rejected",
			caller:  domain.Caller{UserID: "stranger"},
			wantErr: domain.IsForbidden,
		},
		{
			name:     "owner may not read extended history",
			caller:   domain.Caller{UserID: "owner"},
			extended: true,
			wantErr:  domain.IsForbidden,
		},
		{
			name:     "admin reads extended history",
			caller:   domain.Caller{UserID: "someone", IsAdmin: true},
			extended: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var err error
			if tt.extended {
				_, err = uc.RetrieveExtendedHistory(ctx, tt.caller, "request-1")
			} else {
				_, err = uc.RetrieveHistory(ctx, tt.caller, "request-1")
			}
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.True(t, tt.wantErr(err))
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestHistoryUsecaseUnknownRequest(t *testing.T) {
	env := newTestEnv()
	uc := env.historyUsecase()

	_, err := uc.RetrieveHistory(context.Background(), domain.Caller{UserID: "u", IsAdmin: true}, "missing")
	require.Error(t, err)
	assert.True(t, domain.IsNotFound(err))
}
