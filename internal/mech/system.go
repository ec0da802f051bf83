package mech

// System is a first-order ODE right-hand side dX/dt = f(t, X).
type System interface {
	// Derivative evaluates dX/dt at (t, x). Implementations must be pure:
	// the input state is never mutated or retained, and the returned slice
	// is freshly allocated on every call.
	Derivative(t float64, x State) State

	// Dim returns the state vector length the system expects.
	Dim() int

	Name() string
}

// Hamiltonian is implemented by systems with a closed-form total energy.
type Hamiltonian interface {
	Energy(x State) float64
}

// StateChecker lets a system veto states its model can no longer describe,
// such as gravitating bodies closer than the point-mass picture allows.
// Integrators consult it after every accepted step.
type StateChecker interface {
	CheckState(t float64, x State) error
}
