package analysis

import (
	"fmt"
	"math"

	"github.com/jackwarfield/5300-final-project/internal/mech"
)

// ComponentDivergence returns |a_i(t) - b_i(t)| for one state component
// along two trajectories computed on the same time grid.
func ComponentDivergence(a, b *mech.Trajectory, component int) ([]float64, error) {
	if err := sameGrid(a, b); err != nil {
		return nil, err
	}
	if component < 0 || (a.Len() > 0 && component >= len(a.States[0])) {
		return nil, fmt.Errorf("%w: component %d out of range", mech.ErrInvalidParameter, component)
	}
	gap := make([]float64, a.Len())
	for i := range gap {
		gap[i] = math.Abs(a.States[i][component] - b.States[i][component])
	}
	return gap, nil
}

// StateSeparation returns the Euclidean distance between two runs at
// every grid point.
func StateSeparation(a, b *mech.Trajectory) ([]float64, error) {
	if err := sameGrid(a, b); err != nil {
		return nil, err
	}
	sep := make([]float64, a.Len())
	for i := range sep {
		sep[i] = a.States[i].Distance(b.States[i])
	}
	return sep, nil
}

// FirstExceed returns the earliest time at which the series rises above
// the threshold, or false if it never does.
func FirstExceed(times, series []float64, threshold float64) (float64, bool) {
	for i, v := range series {
		if v > threshold {
			return times[i], true
		}
	}
	return 0, false
}

// Max returns the largest value in the series and its index, or
// (0, -1) for an empty series.
func Max(series []float64) (float64, int) {
	if len(series) == 0 {
		return 0, -1
	}
	best, at := series[0], 0
	for i, v := range series[1:] {
		if v > best {
			best, at = v, i+1
		}
	}
	return best, at
}

func sameGrid(a, b *mech.Trajectory) error {
	if a.Len() != b.Len() {
		return fmt.Errorf("%w: trajectories have %d and %d points", mech.ErrInvalidParameter, a.Len(), b.Len())
	}
	for i := range a.Times {
		if a.Times[i] != b.Times[i] {
			return fmt.Errorf("%w: trajectory grids differ at index %d", mech.ErrInvalidParameter, i)
		}
	}
	return nil
}
