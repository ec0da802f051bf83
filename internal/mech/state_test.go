package mech

import (
	"errors"
	"math"
	"testing"
)

func TestStateClone(t *testing.T) {
	s := State{1, 2, 3}
	c := s.Clone()

	c[0] = 99
	if s[0] != 1 {
		t.Error("clone shares backing storage with the original")
	}
}

func TestStateIsFinite(t *testing.T) {
	cases := []struct {
		name string
		s    State
		want bool
	}{
		{"finite", State{1, -2, 0}, true},
		{"empty", State{}, true},
		{"nan", State{1, math.NaN()}, false},
		{"positive inf", State{math.Inf(1)}, false},
		{"negative inf", State{0, math.Inf(-1)}, false},
	}

	for _, tc := range cases {
		if got := tc.s.IsFinite(); got != tc.want {
			t.Errorf("%s: IsFinite() = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestStateNormDistance(t *testing.T) {
	s := State{3, 4}
	if s.Norm() != 5 {
		t.Errorf("Norm() = %g, want 5", s.Norm())
	}
	if d := s.Distance(State{0, 0}); d != 5 {
		t.Errorf("Distance() = %g, want 5", d)
	}
}

func TestTrajectoryComponent(t *testing.T) {
	tr := &Trajectory{
		Times:  []float64{0, 1, 2},
		States: []State{{1, 10}, {2, 20}, {3, 30}},
	}

	col := tr.Component(1)
	if len(col) != 3 || col[0] != 10 || col[2] != 30 {
		t.Errorf("Component(1) = %v, want [10 20 30]", col)
	}

	tt, s := tr.At(2)
	if tt != 2 || s[0] != 3 {
		t.Errorf("At(2) = (%g, %v)", tt, s)
	}
}

func TestStepErrorWrapping(t *testing.T) {
	x := State{1, 2}
	err := NewStepError(3.5, x, ErrNonConvergence)

	if !errors.Is(err, ErrNonConvergence) {
		t.Error("StepError does not unwrap to its cause")
	}

	x[0] = 99
	if err.State[0] != 1 {
		t.Error("StepError aliases the live state buffer")
	}
	if err.Time != 3.5 {
		t.Errorf("Time = %g, want 3.5", err.Time)
	}
}
