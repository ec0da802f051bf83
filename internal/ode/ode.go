// Package ode integrates mech.System trajectories over caller-supplied time
// grids. The workhorse is the adaptive Dormand-Prince 5(4) pair ([Dopri5]);
// fixed-step classical methods ([RK4], [Euler]) share the same grid contract
// for side-by-side comparison.
//
// All integrators report states at exactly the requested grid times, never
// at their internal sub-steps, and keep every per-run buffer in the call
// frame so one instance may serve concurrent runs.
package ode

import (
	"fmt"
	"math"

	"github.com/jackwarfield/5300-final-project/internal/mech"
)

// Integrator advances a system over a strictly increasing time grid.
type Integrator interface {
	Integrate(sys mech.System, x0 mech.State, times []float64) (*mech.Trajectory, error)
	Name() string
}

// Default tolerances and budget for adaptive integration.
const (
	DefaultAbsTol   = 1e-12
	DefaultRelTol   = 1e-12
	DefaultMaxSteps = 1_000_000
)

// Options tunes adaptive integration. Zero fields fall back to defaults
// derived from the grid span.
type Options struct {
	AbsTol      float64 // per-component absolute tolerance
	RelTol      float64 // per-component relative tolerance
	InitialStep float64 // first trial step; 0 picks 1% of the grid span
	MinStep     float64 // shrinking below this is non-convergence; 0 picks span*1e-14
	MaxStep     float64 // cap on one internal step; 0 means the grid span
	MaxSteps    int     // accepted+rejected trial budget; 0 means DefaultMaxSteps
}

// DefaultOptions returns the tolerances the simulator runs with unless a
// scenario overrides them.
func DefaultOptions() Options {
	return Options{
		AbsTol:   DefaultAbsTol,
		RelTol:   DefaultRelTol,
		MaxSteps: DefaultMaxSteps,
	}
}

func (o Options) validate() error {
	for _, p := range []struct {
		name string
		v    float64
	}{
		{"abs_tol", o.AbsTol},
		{"rel_tol", o.RelTol},
		{"initial_step", o.InitialStep},
		{"min_step", o.MinStep},
		{"max_step", o.MaxStep},
	} {
		if math.IsNaN(p.v) || math.IsInf(p.v, 0) || p.v < 0 {
			return fmt.Errorf("%w: %s = %g", mech.ErrInvalidParameter, p.name, p.v)
		}
	}
	if o.MaxSteps < 0 {
		return fmt.Errorf("%w: max_steps = %d", mech.ErrInvalidParameter, o.MaxSteps)
	}
	return nil
}

// withDefaults fills zero fields given the grid span.
func (o Options) withDefaults(span float64) Options {
	if o.AbsTol == 0 {
		o.AbsTol = DefaultAbsTol
	}
	if o.RelTol == 0 {
		o.RelTol = DefaultRelTol
	}
	if o.MaxStep == 0 {
		o.MaxStep = span
	}
	if o.InitialStep == 0 {
		o.InitialStep = span / 100
	}
	if o.InitialStep > o.MaxStep {
		o.InitialStep = o.MaxStep
	}
	if o.MinStep == 0 {
		o.MinStep = span * 1e-14
	}
	if o.MaxSteps == 0 {
		o.MaxSteps = DefaultMaxSteps
	}
	return o
}

// Integrate runs the adaptive Dormand-Prince method over the grid. This is
// the front door most callers want.
func Integrate(sys mech.System, x0 mech.State, times []float64, opts Options) (*mech.Trajectory, error) {
	return NewDopri5(opts).Integrate(sys, x0, times)
}

func checkGrid(times []float64) error {
	if len(times) == 0 {
		return fmt.Errorf("%w: empty time grid", mech.ErrInvalidParameter)
	}
	for i, t := range times {
		if math.IsNaN(t) || math.IsInf(t, 0) {
			return fmt.Errorf("%w: time grid entry %d is %g", mech.ErrInvalidParameter, i, t)
		}
		if i > 0 && t <= times[i-1] {
			return fmt.Errorf("%w: time grid not strictly increasing at entry %d (%g after %g)",
				mech.ErrInvalidParameter, i, t, times[i-1])
		}
	}
	return nil
}

// prepare validates inputs and seeds the trajectory with the initial state.
// Row 0 is the caller's state bit for bit.
func prepare(sys mech.System, x0 mech.State, times []float64) (*mech.Trajectory, error) {
	if err := checkGrid(times); err != nil {
		return nil, err
	}
	if len(x0) != sys.Dim() {
		return nil, fmt.Errorf("%w: state has %d components, %s needs %d",
			mech.ErrInvalidParameter, len(x0), sys.Name(), sys.Dim())
	}
	if !x0.IsFinite() {
		return nil, fmt.Errorf("%w: initial state has non-finite components", mech.ErrInvalidParameter)
	}
	traj := &mech.Trajectory{
		Times:  append([]float64(nil), times...),
		States: make([]mech.State, len(times)),
	}
	traj.States[0] = x0.Clone()
	return traj, nil
}

// checkAccepted runs the post-step sanity checks shared by all methods.
func checkAccepted(sys mech.System, t float64, x mech.State) error {
	if !x.IsFinite() {
		return mech.NewStepError(t, x, fmt.Errorf("%w: state no longer finite", mech.ErrNonConvergence))
	}
	if c, ok := sys.(mech.StateChecker); ok {
		if err := c.CheckState(t, x); err != nil {
			return mech.NewStepError(t, x, err)
		}
	}
	return nil
}
