package mech

import (
	"errors"
	"fmt"
)

// Domain errors for model construction and integration.
var (
	// ErrInvalidParameter rejects non-finite or non-positive physical
	// constants and malformed time grids.
	ErrInvalidParameter = errors.New("mech: invalid parameter")

	// ErrSingularConfiguration marks a configuration the model cannot
	// describe, such as coincident gravitating bodies.
	ErrSingularConfiguration = errors.New("mech: singular configuration")

	// ErrNonConvergence marks an adaptive integration that exhausted its
	// step budget or underflowed its step size before meeting tolerance.
	ErrNonConvergence = errors.New("mech: integration did not converge")
)

// StepError wraps a failure with the time and state at which integration
// stopped.
type StepError struct {
	Time  float64
	State State
	Err   error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("t=%.6g: %v", e.Time, e.Err)
}

func (e *StepError) Unwrap() error {
	return e.Err
}

// NewStepError clones the state so later buffer reuse inside the integrator
// cannot alter the report.
func NewStepError(t float64, x State, err error) *StepError {
	return &StepError{Time: t, State: x.Clone(), Err: err}
}
