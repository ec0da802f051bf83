package ode

import (
	"github.com/jackwarfield/5300-final-project/internal/mech"
)

// RK4 is the classical fourth-order method with a fixed step. Each grid
// interval is crossed in Substeps equal steps, so the grid itself sets the
// resolution. No error control; kept for side-by-side drift comparison
// against the adaptive method.
type RK4 struct {
	Substeps int // steps per grid interval; values < 1 mean 1
}

func NewRK4() *RK4 {
	return &RK4{Substeps: 1}
}

func (r *RK4) Name() string { return "rk4" }

func (r *RK4) Integrate(sys mech.System, x0 mech.State, times []float64) (*mech.Trajectory, error) {
	traj, err := prepare(sys, x0, times)
	if err != nil {
		return nil, err
	}

	n := sys.Dim()
	sub := r.Substeps
	if sub < 1 {
		sub = 1
	}

	scratch := make(mech.State, n)
	y := x0.Clone()

	for seg := 1; seg < len(times); seg++ {
		t0, t1 := times[seg-1], times[seg]
		h := (t1 - t0) / float64(sub)

		for s := 0; s < sub; s++ {
			t := t0 + float64(s)*h

			k1 := sys.Derivative(t, y)
			for i := 0; i < n; i++ {
				scratch[i] = y[i] + 0.5*h*k1[i]
			}
			k2 := sys.Derivative(t+0.5*h, scratch)
			for i := 0; i < n; i++ {
				scratch[i] = y[i] + 0.5*h*k2[i]
			}
			k3 := sys.Derivative(t+0.5*h, scratch)
			for i := 0; i < n; i++ {
				scratch[i] = y[i] + h*k3[i]
			}
			k4 := sys.Derivative(t+h, scratch)

			h6 := h / 6.0
			for i := 0; i < n; i++ {
				y[i] += h6 * (k1[i] + 2*k2[i] + 2*k3[i] + k4[i])
			}
			traj.Stats.Steps++
			traj.Stats.Evals += 4
			traj.Stats.LastStep = h
		}

		if err := checkAccepted(sys, t1, y); err != nil {
			return nil, err
		}
		traj.States[seg] = y.Clone()
	}

	return traj, nil
}
