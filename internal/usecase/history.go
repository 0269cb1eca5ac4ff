package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"github.com/d-fine/dataland-sourcing-service/internal/domain"
	"github.com/d-fine/dataland-sourcing-service/internal/domain/entity"
)

// DefaultProximityThresholdMillis is the coalescing window used when the
// configuration does not override it. A request revision and a data
// sourcing revision closer together than this are presented as one step.
const DefaultProximityThresholdMillis int64 = 1000

// ============ Reconciler ============

// HistoryReconciler merges the revision log of a request with the revision
// log of its data sourcing entity into one user-facing timeline. The two
// logs are versioned independently, so a single workflow step (say,
// Open→Processing plus the creation of the sourcing entity) appears as two
// nearby revisions; the reconciler presents such pairs as one entry.
type HistoryReconciler struct {
	proximityThresholdMillis int64
}

// NewHistoryReconciler creates a reconciler with the given coalescing
// window in milliseconds.
func NewHistoryReconciler(proximityThresholdMillis int64) *HistoryReconciler {
	if proximityThresholdMillis <= 0 {
		proximityThresholdMillis = DefaultProximityThresholdMillis
	}
	return &HistoryReconciler{proximityThresholdMillis: proximityThresholdMillis}
}

// timelinePoint is one merged revision with its displayed state resolved.
type timelinePoint struct {
	timestamp    int64
	kind         entity.RevisionKind
	displayed    entity.DisplayedState
	adminComment *string
}

// Compact returns the short timeline: one entry per displayed-state change,
// stamped with the earliest moment the state was reached. Comments are
// omitted.
func (r *HistoryReconciler) Compact(requestRevisions, dataSourcingRevisions []entity.Revision) []entity.HistoryEntry {
	points := r.reconcile(requestRevisions, dataSourcingRevisions)

	entries := make([]entity.HistoryEntry, 0, len(points))
	for _, point := range points {
		if len(entries) > 0 && entries[len(entries)-1].DisplayedState == point.displayed {
			continue
		}
		entries = append(entries, entity.HistoryEntry{
			Timestamp:      point.timestamp,
			DisplayedState: point.displayed,
		})
	}
	return entries
}

// Extended returns the full timeline with admin comments carried forward.
// Every coalesced point stays visible, including runs of the same
// displayed state; only Compact collapses those.
func (r *HistoryReconciler) Extended(requestRevisions, dataSourcingRevisions []entity.Revision) []entity.HistoryEntry {
	points := r.reconcile(requestRevisions, dataSourcingRevisions)

	entries := make([]entity.HistoryEntry, 0, len(points))
	var carried *string
	for _, point := range points {
		if point.adminComment != nil {
			carried = point.adminComment
		}
		entries = append(entries, entity.HistoryEntry{
			Timestamp:      point.timestamp,
			DisplayedState: point.displayed,
			AdminComment:   carried,
		})
	}
	return entries
}

// reconcile merges the two logs, resolves displayed states and coalesces
// near-simultaneous cross-log pairs.
func (r *HistoryReconciler) reconcile(requestRevisions, dataSourcingRevisions []entity.Revision) []timelinePoint {
	merged := mergeRevisions(requestRevisions, dataSourcingRevisions)
	points := resolveDisplayedStates(merged)
	return r.coalesce(points)
}

// mergeRevisions interleaves the two logs ascending by timestamp. On equal
// timestamps the request revision comes first: the request transition is
// the cause, the sourcing revision the effect.
func mergeRevisions(requestRevisions, dataSourcingRevisions []entity.Revision) []entity.Revision {
	merged := make([]entity.Revision, 0, len(requestRevisions)+len(dataSourcingRevisions))
	merged = append(merged, requestRevisions...)
	merged = append(merged, dataSourcingRevisions...)

	sort.SliceStable(merged, func(i, j int) bool {
		if merged[i].Timestamp != merged[j].Timestamp {
			return merged[i].Timestamp < merged[j].Timestamp
		}
		return merged[i].Kind == entity.RevisionKindRequest && merged[j].Kind == entity.RevisionKindDataSourcing
	})
	return merged
}

// resolveDisplayedStates walks the merged log carrying the last known state
// of each side and computes the displayed state at every point. Sourcing
// revisions recorded before the request existed are dropped; they belong to
// requests grouped into the entity earlier.
func resolveDisplayedStates(merged []entity.Revision) []timelinePoint {
	points := make([]timelinePoint, 0, len(merged))

	var requestState entity.RequestState
	var dataSourcingState *entity.DataSourcingState
	seenRequest := false

	for _, revision := range merged {
		switch revision.Kind {
		case entity.RevisionKindRequest:
			requestState = entity.RequestState(revision.State)
			seenRequest = true
		case entity.RevisionKindDataSourcing:
			state := entity.DataSourcingState(revision.State)
			dataSourcingState = &state
		}
		if !seenRequest {
			continue
		}
		points = append(points, timelinePoint{
			timestamp:    revision.Timestamp,
			kind:         revision.Kind,
			displayed:    displayedState(requestState, dataSourcingState),
			adminComment: revision.AdminComment,
		})
	}
	return points
}

// displayedState resolves the user-facing state from the request state and
// the concurrently last known sourcing state. Terminal and Open request
// states win outright; during Processing the sourcing side provides the
// finer status.
func displayedState(requestState entity.RequestState, dataSourcingState *entity.DataSourcingState) entity.DisplayedState {
	switch requestState {
	case entity.RequestStateWithdrawn:
		return entity.DisplayedStateWithdrawn
	case entity.RequestStateProcessed:
		return entity.DisplayedStateProcessed
	case entity.RequestStateOpen:
		return entity.DisplayedStateOpen
	}

	if dataSourcingState == nil {
		return entity.DisplayedStateProcessing
	}
	switch *dataSourcingState {
	case entity.DataSourcingStateInitialized:
		return entity.DisplayedStateInitialized
	case entity.DataSourcingStateDocumentSourcing:
		return entity.DisplayedStateDocumentSourcing
	case entity.DataSourcingStateDataExtraction:
		return entity.DisplayedStateDataExtraction
	case entity.DataSourcingStateDone:
		return entity.DisplayedStateProcessed
	}
	return entity.DisplayedStateProcessing
}

// coalesce folds a revision pair from different logs into one entry when
// they lie closer together than the proximity threshold. The later point
// wins timestamp and displayed state; its comment wins when present.
// Revisions from the same log always stay separate.
func (r *HistoryReconciler) coalesce(points []timelinePoint) []timelinePoint {
	coalesced := make([]timelinePoint, 0, len(points))
	for _, point := range points {
		if len(coalesced) > 0 {
			previous := coalesced[len(coalesced)-1]
			if previous.kind != point.kind && point.timestamp-previous.timestamp < r.proximityThresholdMillis {
				if point.adminComment == nil {
					point.adminComment = previous.adminComment
				}
				coalesced[len(coalesced)-1] = point
				continue
			}
		}
		coalesced = append(coalesced, point)
	}
	return coalesced
}

// ============ Usecase ============

// historyUsecase implements domain.HistoryUsecase on top of the revision
// store and the reconciler.
type historyUsecase struct {
	requestRepo domain.RequestRepository
	revisions   domain.RevisionStore
	reconciler  *HistoryReconciler
	logger      *slog.Logger
}

// NewHistoryUsecase creates the history usecase.
func NewHistoryUsecase(
	requestRepo domain.RequestRepository,
	revisions domain.RevisionStore,
	reconciler *HistoryReconciler,
	logger *slog.Logger,
) domain.HistoryUsecase {
	return &historyUsecase{
		requestRepo: requestRepo,
		revisions:   revisions,
		reconciler:  reconciler,
		logger:      logger,
	}
}

func (uc *historyUsecase) RetrieveHistory(ctx context.Context, caller domain.Caller, requestID string) ([]entity.HistoryEntry, error) {
	requestRevisions, dataSourcingRevisions, err := uc.loadRevisions(ctx, caller, requestID, false)
	if err != nil {
		return nil, err
	}
	return uc.reconciler.Compact(requestRevisions, dataSourcingRevisions), nil
}

func (uc *historyUsecase) RetrieveExtendedHistory(ctx context.Context, caller domain.Caller, requestID string) ([]entity.HistoryEntry, error) {
	requestRevisions, dataSourcingRevisions, err := uc.loadRevisions(ctx, caller, requestID, true)
	if err != nil {
		return nil, err
	}
	return uc.reconciler.Extended(requestRevisions, dataSourcingRevisions), nil
}

// loadRevisions fetches the two logs. They are read sequentially without a
// shared snapshot; a revision landing in between shows up on the next read.
func (uc *historyUsecase) loadRevisions(ctx context.Context, caller domain.Caller, requestID string, adminOnly bool) ([]entity.Revision, []entity.Revision, error) {
	if adminOnly && !caller.IsAdmin {
		return nil, nil, domain.NewForbiddenError("only administrators may read the extended history")
	}

	request, err := uc.requestRepo.GetByID(ctx, requestID)
	if err != nil {
		return nil, nil, err
	}
	if !caller.IsAdmin && request.UserID != caller.UserID {
		return nil, nil, domain.NewForbiddenError("only the requester or an administrator may read the request history")
	}

	requestRevisions, err := uc.revisions.ListSince(ctx, requestID, 0)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load request revisions: %w", err)
	}

	var dataSourcingRevisions []entity.Revision
	if request.DataSourcingID != nil {
		dataSourcingRevisions, err = uc.revisions.ListSince(ctx, *request.DataSourcingID, 0)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to load data sourcing revisions: %w", err)
		}
	}
	return requestRevisions, dataSourcingRevisions, nil
}
