package analysis

import (
	"math"

	"github.com/jackwarfield/5300-final-project/internal/mech"
)

// Observable evaluates one scalar quantity of interest at a state,
// typically an energy or a momentum component.
type Observable func(x mech.State) float64

// Series evaluates obs at every trajectory point.
func Series(traj *mech.Trajectory, obs Observable) []float64 {
	out := make([]float64, traj.Len())
	for i, x := range traj.States {
		out[i] = obs(x)
	}
	return out
}

// Drift returns series[i] - series[0], the running departure of a
// quantity that the dynamics should conserve.
func Drift(series []float64) []float64 {
	if len(series) == 0 {
		return nil
	}
	out := make([]float64, len(series))
	for i, v := range series {
		out[i] = v - series[0]
	}
	return out
}

// MaxAbs returns the largest magnitude in the series.
func MaxAbs(series []float64) float64 {
	m := 0.0
	for _, v := range series {
		if a := math.Abs(v); a > m {
			m = a
		}
	}
	return m
}

// MaxStepChange returns the largest |series[i+1] - series[i]|. For a
// conserved quantity this bounds how much any single integration
// interval violated the conservation law.
func MaxStepChange(series []float64) float64 {
	m := 0.0
	for i := 1; i < len(series); i++ {
		if d := math.Abs(series[i] - series[i-1]); d > m {
			m = d
		}
	}
	return m
}
