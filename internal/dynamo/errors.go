package dynamo

import (
	"errors"
	"fmt"
)

// Domain errors for integration and rendering.
var (
	// ErrInvalidConfig indicates a parameter outside its valid range.
	ErrInvalidConfig = errors.New("dynamo: invalid configuration")

	// ErrMissingParam indicates a required numeric parameter was not supplied.
	ErrMissingParam = errors.New("dynamo: missing required parameter")

	// ErrInvalidBuffer indicates a trail buffer length that is not positive.
	ErrInvalidBuffer = errors.New("dynamo: trail buffer length must be positive")

	// ErrDegenerateExtent indicates a trajectory with zero extent on both axes.
	ErrDegenerateExtent = errors.New("dynamo: trajectory extent is zero on both axes")

	// ErrSurface indicates a drawing surface could not be built, drawn or saved.
	ErrSurface = errors.New("dynamo: drawing surface failure")
)

// StepError wraps an error with the step at which it happened.
type StepError struct {
	Step    uint64
	Wrapped error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("step %d: %v", e.Step, e.Wrapped)
}

func (e *StepError) Unwrap() error {
	return e.Wrapped
}
