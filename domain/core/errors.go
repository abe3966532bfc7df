package core

import (
	"errors"
	"fmt"
)

// Domain errors - centralized error definitions
var (
	// Lookup errors
	ErrVariableNotFound = errors.New("variable not found")

	// Usage errors
	ErrUnknownMethod = errors.New("unknown resampling method")

	// Data errors
	ErrEmptyInput         = errors.New("empty input")
	ErrInsufficientData   = errors.New("insufficient data for analysis")
	ErrDegenerateSeries   = errors.New("degenerate series")
	ErrLengthMismatch     = errors.New("length mismatch")
	ErrNonFinite          = errors.New("non-finite value")
	ErrStatisticDimension = errors.New("statistic changed output dimension")
	ErrSingularDesign     = errors.New("singular design matrix")
)

// Error constructors with context
func NewVariableNotFoundError(key VariableKey) error {
	return fmt.Errorf("%w: %s", ErrVariableNotFound, key)
}

func NewLengthMismatchError(what string, want, got int) error {
	return fmt.Errorf("%w: %s has %d values, expected %d", ErrLengthMismatch, what, got, want)
}

func NewNonFiniteError(what string, index int, value float64) error {
	return fmt.Errorf("%w: %s[%d] = %v", ErrNonFinite, what, index, value)
}

func NewInsufficientDataError(need, got int) error {
	return fmt.Errorf("%w: need more than %d observations, got %d", ErrInsufficientData, need, got)
}
