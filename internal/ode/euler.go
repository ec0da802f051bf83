package ode

import (
	"github.com/jackwarfield/5300-final-project/internal/mech"
)

// Euler is the explicit first-order method. It drifts badly on both bundled
// systems and exists as the baseline the compare command measures against.
type Euler struct {
	Substeps int
}

func NewEuler() *Euler {
	return &Euler{Substeps: 1}
}

func (e *Euler) Name() string { return "euler" }

func (e *Euler) Integrate(sys mech.System, x0 mech.State, times []float64) (*mech.Trajectory, error) {
	traj, err := prepare(sys, x0, times)
	if err != nil {
		return nil, err
	}

	n := sys.Dim()
	sub := e.Substeps
	if sub < 1 {
		sub = 1
	}

	y := x0.Clone()
	for seg := 1; seg < len(times); seg++ {
		t0, t1 := times[seg-1], times[seg]
		h := (t1 - t0) / float64(sub)

		for s := 0; s < sub; s++ {
			t := t0 + float64(s)*h
			dx := sys.Derivative(t, y)
			for i := 0; i < n; i++ {
				y[i] += h * dx[i]
			}
			traj.Stats.Steps++
			traj.Stats.Evals++
			traj.Stats.LastStep = h
		}

		if err := checkAccepted(sys, t1, y); err != nil {
			return nil, err
		}
		traj.States[seg] = y.Clone()
	}

	return traj, nil
}
