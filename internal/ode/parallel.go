package ode

import (
	"sync"

	"github.com/jackwarfield/5300-final-project/internal/mech"
)

// Ensemble integrates several initial states of the same system over one
// grid, one goroutine per member. Derivatives are pure and integrators keep
// their scratch in the call frame, so the members share sys and method
// without locks. The first error wins and discards all trajectories.
func Ensemble(method Integrator, sys mech.System, x0s []mech.State, times []float64) ([]*mech.Trajectory, error) {
	trajs := make([]*mech.Trajectory, len(x0s))
	errs := make([]error, len(x0s))

	var wg sync.WaitGroup
	for i := range x0s {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			trajs[idx], errs[idx] = method.Integrate(sys, x0s[idx], times)
		}(i)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return trajs, nil
}
