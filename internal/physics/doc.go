// Package physics provides the two bundled mechanical models.
//
// Each model implements [mech.System], supplying the closed-form equations
// of motion derived from its Lagrangian:
//
//   - [DoublePendulum]: planar double pendulum, chaotic at large angles
//   - [TwoBody]: planar pair of point masses under Newtonian gravity
//
// Both also implement [mech.Hamiltonian] for energy-drift monitoring.
// Constructors validate physical constants up front; integration never sees
// a model whose parameters could only produce NaNs.
//
// State vectors follow the package-wide interleaved layout: coordinate,
// then its derivative, per degree of freedom (see [mech.State]).
package physics
