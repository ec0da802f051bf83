package scenario

import (
	"fmt"

	"github.com/jackwarfield/5300-final-project/internal/analysis"
	"github.com/jackwarfield/5300-final-project/internal/config"
	"github.com/jackwarfield/5300-final-project/internal/mech"
	"github.com/jackwarfield/5300-final-project/internal/ode"
)

// SweepPoint characterizes one initial angle in a divergence sweep.
type SweepPoint struct {
	Theta1   float64
	MaxGap   float64 // largest first-angle gap between the twins
	Diverged bool
	At       float64 // time the gap first crossed the threshold
}

// DivergenceSweep scans the first angle across [from, to] and, for each
// value, integrates the scenario twice with the second run perturbed by
// delta. Each point reports whether and when the first-angle gap crossed
// threshold, mapping which initial angles behave chaotically within the
// scenario's duration.
func DivergenceSweep(base *config.Scenario, from, to float64, points int, delta, threshold float64) ([]SweepPoint, error) {
	if base.System != "double_pendulum" {
		return nil, fmt.Errorf("%w: divergence sweep needs double_pendulum, got %q",
			mech.ErrInvalidParameter, base.System)
	}
	if points < 2 {
		return nil, fmt.Errorf("%w: sweep needs at least 2 points, got %d",
			mech.ErrInvalidParameter, points)
	}

	out := make([]SweepPoint, 0, points)
	spacing := (to - from) / float64(points-1)

	for i := 0; i < points; i++ {
		cfg := *base
		cfg.Pendulum.Theta1 = from + float64(i)*spacing

		run, err := Build(&cfg)
		if err != nil {
			return nil, err
		}

		perturbed := run.X0.Clone()
		perturbed[0] += delta

		trajs, err := ode.Ensemble(run.Method, run.System, []mech.State{run.X0, perturbed}, run.Times)
		if err != nil {
			return nil, err
		}

		gap, err := analysis.ComponentDivergence(trajs[0], trajs[1], 0)
		if err != nil {
			return nil, err
		}

		point := SweepPoint{Theta1: cfg.Pendulum.Theta1}
		point.MaxGap, _ = analysis.Max(gap)
		point.At, point.Diverged = analysis.FirstExceed(trajs[0].Times, gap, threshold)
		out = append(out, point)
	}
	return out, nil
}
