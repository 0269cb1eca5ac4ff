package usecase

import (
	"github.com/anggasct/fluo"

	"github.com/d-fine/dataland-sourcing-service/internal/domain"
	"github.com/d-fine/dataland-sourcing-service/internal/domain/entity"
)

// The two workflow lifecycles are declared as state machine definitions.
// Events are named after their target states, so validating a patch is a
// single dispatch: put a fresh machine into the entity's current state and
// offer the target state as an event. A rejected event is an illegal
// transition.

// requestLifecycle: Open → Processing → Processed, with Withdrawn reachable
// from Open and Processing. Processed and Withdrawn are terminal.
var requestLifecycle = fluo.NewMachine().
	State(string(entity.RequestStateOpen)).Initial().
	To(string(entity.RequestStateProcessing)).On(string(entity.RequestStateProcessing)).
	To(string(entity.RequestStateWithdrawn)).On(string(entity.RequestStateWithdrawn)).
	State(string(entity.RequestStateProcessing)).
	To(string(entity.RequestStateProcessed)).On(string(entity.RequestStateProcessed)).
	To(string(entity.RequestStateWithdrawn)).On(string(entity.RequestStateWithdrawn)).
	State(string(entity.RequestStateProcessed)).Final().
	State(string(entity.RequestStateWithdrawn)).Final().
	Build()

// dataSourcingLifecycle: strictly linear, no skipping, no backward moves.
var dataSourcingLifecycle = fluo.NewMachine().
	State(string(entity.DataSourcingStateInitialized)).Initial().
	To(string(entity.DataSourcingStateDocumentSourcing)).On(string(entity.DataSourcingStateDocumentSourcing)).
	State(string(entity.DataSourcingStateDocumentSourcing)).
	To(string(entity.DataSourcingStateDataExtraction)).On(string(entity.DataSourcingStateDataExtraction)).
	State(string(entity.DataSourcingStateDataExtraction)).
	To(string(entity.DataSourcingStateDone)).On(string(entity.DataSourcingStateDone)).
	State(string(entity.DataSourcingStateDone)).Final().
	Build()

// validateTransition checks from→to against the given lifecycle definition
// and returns an IllegalTransition error if the move is not permitted.
func validateTransition(lifecycle fluo.MachineDefinition, entityID, from, to string) error {
	machine := lifecycle.CreateInstance()
	if err := machine.Start(); err != nil {
		return domain.NewInternalError(err)
	}
	if err := machine.SetState(from); err != nil {
		// Unknown source state; treat as an illegal move rather than a crash.
		return domain.NewIllegalTransitionError(entityID, from, to)
	}

	result := machine.HandleEvent(to, nil)
	if !result.Success() || result.CurrentState != to {
		return domain.NewIllegalTransitionError(entityID, from, to)
	}
	return nil
}

// ValidateRequestTransition checks a request state patch.
func ValidateRequestTransition(requestID string, from, to entity.RequestState) error {
	return validateTransition(requestLifecycle, requestID, string(from), string(to))
}

// ValidateDataSourcingTransition checks a data sourcing state patch.
func ValidateDataSourcingTransition(dataSourcingID string, from, to entity.DataSourcingState) error {
	return validateTransition(dataSourcingLifecycle, dataSourcingID, string(from), string(to))
}
