// Package mech defines the shared vocabulary of the simulator.
//
// The package holds the types every other layer speaks in:
//
//   - [State]: flat state vector, coordinates interleaved with derivatives
//   - [System]: ODE right-hand side dX/dt = f(t, X)
//   - [Trajectory]: states sampled at a caller-supplied time grid
//   - the error taxonomy ([ErrInvalidParameter], [ErrSingularConfiguration],
//     [ErrNonConvergence]) with [StepError] carrying time/state context
//
// Systems are pure: a derivative call never mutates its input and two calls
// on the same input return the same output. That purity is what makes
// trajectories deterministic and lets callers integrate several systems
// concurrently without locks.
package mech
