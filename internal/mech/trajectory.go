package mech

// Trajectory is the result of integrating a system over a time grid: one
// state row per requested time, index-aligned with Times. Row 0 is always
// the initial state, bit for bit. The buffer belongs to the caller after
// return; integrators never retain it.
type Trajectory struct {
	Times  []float64
	States []State
	Stats  Stats
}

// Stats counts the internal work behind a trajectory.
type Stats struct {
	Steps    int     // accepted internal steps
	Rejected int     // rejected trial steps
	Evals    int     // derivative evaluations
	LastStep float64 // size of the last accepted step
}

func (tr *Trajectory) Len() int {
	return len(tr.Times)
}

// At returns the grid time and state row at index i.
func (tr *Trajectory) At(i int) (float64, State) {
	return tr.Times[i], tr.States[i]
}

// Component extracts column idx across all rows, e.g. θ1(t) for plotting.
func (tr *Trajectory) Component(idx int) []float64 {
	out := make([]float64, len(tr.States))
	for i, s := range tr.States {
		out[i] = s[idx]
	}
	return out
}
