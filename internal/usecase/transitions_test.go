package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/d-fine/dataland-sourcing-service/internal/domain"
	"github.com/d-fine/dataland-sourcing-service/internal/domain/entity"
)

func TestRequestTransitions(t *testing.T) {
	tests := []struct {
		name    string
		from    entity.RequestState
		to      entity.RequestState
		allowed bool
	}{
		{"open to processing", entity.RequestStateOpen, entity.RequestStateProcessing, true},
		{"open to withdrawn", entity.RequestStateOpen, entity.RequestStateWithdrawn, true},
		{"processing to processed", entity.RequestStateProcessing, entity.RequestStateProcessed, true},
		{"processing to withdrawn", entity.RequestStateProcessing, entity.RequestStateWithdrawn, true},
		{"open to processed skips processing", entity.RequestStateOpen, entity.RequestStateProcessed, false},
		{"processing back to open", entity.RequestStateProcessing, entity.RequestStateOpen, false},
		{"processed is terminal", entity.RequestStateProcessed, entity.RequestStateWithdrawn, false},
		{"withdrawn is terminal", entity.RequestStateWithdrawn, entity.RequestStateOpen, false},
		{"withdrawn to processing", entity.RequestStateWithdrawn, entity.RequestStateProcessing, false},
		{"self transition rejected", entity.RequestStateOpen, entity.RequestStateOpen, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRequestTransition("request-1", tt.from, tt.to)
			if tt.allowed {
				assert.NoError(t, err)
			} else {
				assert.True(t, domain.IsIllegalTransition(err), "expected illegal transition, got %v", err)
			}
		})
	}
}

func TestDataSourcingTransitionsAreStrictlyLinear(t *testing.T) {
	order := []entity.DataSourcingState{
		entity.DataSourcingStateInitialized,
		entity.DataSourcingStateDocumentSourcing,
		entity.DataSourcingStateDataExtraction,
		entity.DataSourcingStateDone,
	}

	for i, from := range order {
		for j, to := range order {
			err := ValidateDataSourcingTransition("sourcing-1", from, to)
			if j == i+1 {
				assert.NoError(t, err, "%s -> %s must be allowed", from, to)
			} else {
				assert.True(t, domain.IsIllegalTransition(err), "%s -> %s must be rejected", from, to)
			}
		}
	}
}

func TestUnknownStatesAreRejected(t *testing.T) {
	err := ValidateRequestTransition("request-1", entity.RequestState("Bogus"), entity.RequestStateProcessing)
	assert.True(t, domain.IsIllegalTransition(err))

	err = ValidateDataSourcingTransition("sourcing-1", entity.DataSourcingStateInitialized, entity.DataSourcingState("Bogus"))
	assert.True(t, domain.IsIllegalTransition(err))
}
