package ode

import (
	"errors"
	"fmt"
)

// Domain errors for integration runs.
var (
	// ErrInvalidTimeSpan indicates tf <= t0.
	ErrInvalidTimeSpan = errors.New("ode: invalid time span (tf must exceed t0)")

	// ErrInvalidStepSize indicates a non-positive step size.
	ErrInvalidStepSize = errors.New("ode: invalid step size (h must be positive)")

	// ErrInvalidTableau indicates a tableau violating its structural
	// invariants (stage/weight consistency).
	ErrInvalidTableau = errors.New("ode: invalid tableau")

	// ErrUnstable indicates a step produced a non-finite state. Fixed-step
	// methods have no retry mechanism; the run stops at the failing step.
	ErrUnstable = errors.New("ode: numeric divergence (NaN or Inf state)")

	// ErrDimensionMismatch indicates the derivative function returned a
	// vector of the wrong dimension.
	ErrDimensionMismatch = errors.New("ode: derivative dimension mismatch")

	// ErrUnknownMethod indicates a catalogue lookup by an unknown name.
	ErrUnknownMethod = errors.New("ode: unknown method")
)

// StepError reports a failure at a specific step, carrying the last
// valid state so the caller can decide whether to resume with a
// smaller step.
type StepError struct {
	Step    int
	Time    float64
	State   State
	Wrapped error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("step %d (t=%.6g): %v", e.Step, e.Time, e.Wrapped)
}

func (e *StepError) Unwrap() error {
	return e.Wrapped
}
