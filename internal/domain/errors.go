package domain

import "errors"

var (
	ErrValidation           = errors.New("validation failed")
	ErrSettlementIncomplete = errors.New("settlement incomplete")
)

// ValidationError rejects an operation before any state is mutated.
type ValidationError struct {
	Reason string
}

func NewValidationError(reason string) *ValidationError {
	return &ValidationError{Reason: reason}
}

func (e *ValidationError) Error() string {
	return e.Reason
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}
