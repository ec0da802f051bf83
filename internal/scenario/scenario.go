package scenario

import (
	"fmt"
	"sort"

	"github.com/jackwarfield/5300-final-project/internal/config"
	"github.com/jackwarfield/5300-final-project/internal/mech"
	"github.com/jackwarfield/5300-final-project/internal/ode"
	"github.com/jackwarfield/5300-final-project/internal/physics"
)

// Run is a scenario assembled into everything one integration needs:
// the system, its initial state, the output grid and the method.
type Run struct {
	Scenario *config.Scenario
	System   mech.System
	X0       mech.State
	Times    []float64
	Method   ode.Integrator
}

// Build validates a scenario and assembles it into a Run. Unknown
// system or integrator names are invalid parameters, as are the
// physical constants the system constructors reject.
func Build(cfg *config.Scenario) (*Run, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	sys, x0, err := buildSystem(cfg)
	if err != nil {
		return nil, err
	}
	method, err := buildIntegrator(cfg)
	if err != nil {
		return nil, err
	}
	return &Run{
		Scenario: cfg,
		System:   sys,
		X0:       x0,
		Times:    cfg.TimeGrid(),
		Method:   method,
	}, nil
}

// Execute integrates the run and returns the trajectory.
func (r *Run) Execute() (*mech.Trajectory, error) {
	return r.Method.Integrate(r.System, r.X0, r.Times)
}

// Energy reports the system's total energy at x, if the system
// exposes one.
func (r *Run) Energy(x mech.State) (float64, bool) {
	h, ok := r.System.(mech.Hamiltonian)
	if !ok {
		return 0, false
	}
	return h.Energy(x), true
}

func buildSystem(cfg *config.Scenario) (mech.System, mech.State, error) {
	switch cfg.System {
	case "double_pendulum":
		p := cfg.Pendulum
		sys, err := physics.NewDoublePendulum(p.M1, p.M2, p.L1, p.L2, p.G)
		if err != nil {
			return nil, nil, err
		}
		return sys, sys.InitialState(p.Theta1, p.Omega1, p.Theta2, p.Omega2), nil
	case "two_body":
		t := cfg.TwoBody
		b1 := physics.Body{Mass: t.M1, X: t.X1, Y: t.Y1, VX: t.VX1, VY: t.VY1}
		b2 := physics.Body{Mass: t.M2, X: t.X2, Y: t.Y2, VX: t.VX2, VY: t.VY2}
		sys, x0, err := physics.NewTwoBody(t.G, b1, b2)
		if err != nil {
			return nil, nil, err
		}
		if t.MinSeparation > 0 {
			sys.MinSeparation = t.MinSeparation
		}
		return sys, x0, nil
	}
	return nil, nil, fmt.Errorf("%w: unknown system %q", mech.ErrInvalidParameter, cfg.System)
}

func buildIntegrator(cfg *config.Scenario) (ode.Integrator, error) {
	opts := ode.DefaultOptions()
	if cfg.AbsTol > 0 {
		opts.AbsTol = cfg.AbsTol
	}
	if cfg.RelTol > 0 {
		opts.RelTol = cfg.RelTol
	}
	if cfg.MaxSteps > 0 {
		opts.MaxSteps = cfg.MaxSteps
	}
	switch cfg.Integrator {
	case "", "dopri5":
		return ode.NewDopri5(opts), nil
	case "rk4":
		m := ode.NewRK4()
		if cfg.Substeps > 0 {
			m.Substeps = cfg.Substeps
		}
		return m, nil
	case "euler":
		m := ode.NewEuler()
		if cfg.Substeps > 0 {
			m.Substeps = cfg.Substeps
		}
		return m, nil
	}
	return nil, fmt.Errorf("%w: unknown integrator %q", mech.ErrInvalidParameter, cfg.Integrator)
}

// Integrators lists the method names Build accepts.
func Integrators() []string {
	names := []string{"dopri5", "euler", "rk4"}
	sort.Strings(names)
	return names
}
