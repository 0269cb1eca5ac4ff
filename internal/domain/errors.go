package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors of the sourcing domain.
var (
	// ErrNotFound indicates an unknown entity id.
	ErrNotFound = errors.New("resource not found")
	// ErrAlreadyExists indicates a conflicting resource already exists.
	ErrAlreadyExists = errors.New("resource already exists")
	// ErrInvalidInput indicates a malformed or rejected input value.
	ErrInvalidInput = errors.New("invalid input")
	// ErrIllegalTransition indicates a state change not permitted from the
	// entity's current state.
	ErrIllegalTransition = errors.New("illegal state transition")
	// ErrInvalidDimension indicates an unknown company/data-type pairing.
	ErrInvalidDimension = errors.New("invalid data dimension")
	// ErrForbidden indicates the caller lacks the required role.
	ErrForbidden = errors.New("forbidden")
	// ErrUnauthorized indicates a missing or invalid identity.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrInconsistent indicates a partially applied cross-entity cascade.
	// This must never be observable; it is a fatal invariant violation,
	// not a recoverable condition.
	ErrInconsistent = errors.New("inconsistent cascade state")
	// ErrInternal wraps unexpected infrastructure failures.
	ErrInternal = errors.New("internal error")
)

// DomainError carries a stable code and a user-facing message alongside the
// wrapped sentinel.
type DomainError struct {
	Code    string
	Message string
	Err     error
}

// Error implements the error interface for logging and wrapping.
func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// UserMessage returns the user-facing message without internal detail.
func (e *DomainError) UserMessage() string {
	return e.Message
}

// Unwrap returns the wrapped sentinel error.
func (e *DomainError) Unwrap() error {
	return e.Err
}

// NewNotFoundError reports that an entity with the given id does not exist.
func NewNotFoundError(resourceType, id string) error {
	return &DomainError{
		Code:    "NOT_FOUND",
		Message: fmt.Sprintf("%s '%s' not found", resourceType, id),
		Err:     ErrNotFound,
	}
}

// NewAlreadyExistsError reports a conflicting existing resource.
func NewAlreadyExistsError(resourceType, detail string) error {
	return &DomainError{
		Code:    "ALREADY_EXISTS",
		Message: fmt.Sprintf("%s already exists: %s", resourceType, detail),
		Err:     ErrAlreadyExists,
	}
}

// NewInvalidInputError reports a rejected input value.
func NewInvalidInputError(message string) error {
	return &DomainError{
		Code:    "INVALID_INPUT",
		Message: message,
		Err:     ErrInvalidInput,
	}
}

// NewIllegalTransitionError reports an attempted transition that is not in
// the allowed set for the entity's current state.
func NewIllegalTransitionError(entityID, from, to string) error {
	return &DomainError{
		Code:    "ILLEGAL_TRANSITION",
		Message: fmt.Sprintf("entity '%s' cannot transition from %s to %s", entityID, from, to),
		Err:     ErrIllegalTransition,
	}
}

// NewInvalidDimensionError reports an unknown company/data-type pairing.
func NewInvalidDimensionError(companyID, dataType string) error {
	return &DomainError{
		Code:    "INVALID_DIMENSION",
		Message: fmt.Sprintf("no data dimension for company '%s' and data type '%s'", companyID, dataType),
		Err:     ErrInvalidDimension,
	}
}

// NewForbiddenError reports that the caller lacks the role required for the
// attempted action.
func NewForbiddenError(message string) error {
	return &DomainError{
		Code:    "FORBIDDEN",
		Message: message,
		Err:     ErrForbidden,
	}
}

// NewInconsistentError reports a partially applied cascade. Callers treat
// this as fatal; it indicates a broken atomicity guarantee.
func NewInconsistentError(detail string) error {
	return &DomainError{
		Code:    "INCONSISTENT",
		Message: "cascade left entities in an inconsistent state",
		Err:     fmt.Errorf("%w: %s", ErrInconsistent, detail),
	}
}

// NewInternalError wraps an unexpected failure without exposing detail.
func NewInternalError(err error) error {
	return &DomainError{
		Code:    "INTERNAL_ERROR",
		Message: "an internal error occurred",
		Err:     fmt.Errorf("%w: %v", ErrInternal, err),
	}
}

// IsNotFound reports whether err is a not-found error.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsAlreadyExists reports whether err is an already-exists error.
func IsAlreadyExists(err error) bool {
	return errors.Is(err, ErrAlreadyExists)
}

// IsInvalidInput reports whether err is an invalid-input error.
func IsInvalidInput(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}

// IsIllegalTransition reports whether err is an illegal-transition error.
func IsIllegalTransition(err error) bool {
	return errors.Is(err, ErrIllegalTransition)
}

// IsInvalidDimension reports whether err is an invalid-dimension error.
func IsInvalidDimension(err error) bool {
	return errors.Is(err, ErrInvalidDimension)
}

// IsForbidden reports whether err is a forbidden error.
func IsForbidden(err error) bool {
	return errors.Is(err, ErrForbidden)
}

// IsUnauthorized reports whether err is an unauthorized error.
func IsUnauthorized(err error) bool {
	return errors.Is(err, ErrUnauthorized)
}

// IsInconsistent reports whether err is an inconsistent-cascade error.
func IsInconsistent(err error) bool {
	return errors.Is(err, ErrInconsistent)
}
