package physics

import (
	"errors"
	"math"
	"testing"

	"github.com/jackwarfield/5300-final-project/internal/mech"
)

func defaultPendulum(t *testing.T) *DoublePendulum {
	t.Helper()
	p, err := NewDoublePendulum(DefaultMass, DefaultMass, DefaultLength, DefaultLength, DefaultGravity)
	if err != nil {
		t.Fatalf("constructor failed: %v", err)
	}
	return p
}

func TestDoublePendulum_Equilibrium(t *testing.T) {
	p := defaultPendulum(t)
	dx := p.Derivative(0, mech.State{0, 0, 0, 0})

	for i, v := range dx {
		if v != 0 {
			t.Errorf("hanging rest state should not accelerate, component %d = %g", i, v)
		}
	}
}

func TestDoublePendulum_DerivativeLayout(t *testing.T) {
	p := defaultPendulum(t)
	x := mech.State{0.3, 1.5, -0.2, 0.7}
	dx := p.Derivative(0, x)

	if len(dx) != 4 {
		t.Fatalf("derivative has %d components, want 4", len(dx))
	}
	// angle slots differentiate to the velocity slots next to them
	if dx[0] != x[1] || dx[2] != x[3] {
		t.Errorf("angle derivatives %g, %g should pass through ω = %g, %g",
			dx[0], dx[2], x[1], x[3])
	}
}

func TestDoublePendulum_DerivativeIsPure(t *testing.T) {
	p := defaultPendulum(t)
	x := mech.State{2.0, 0.5, 1.0, -0.3}
	before := x.Clone()

	d1 := p.Derivative(0, x)
	d2 := p.Derivative(0, x)

	for i := range x {
		if x[i] != before[i] {
			t.Fatalf("input state mutated at component %d", i)
		}
	}
	for i := range d1 {
		if d1[i] != d2[i] {
			t.Fatalf("repeated evaluation differs at component %d: %g vs %g", i, d1[i], d2[i])
		}
	}
	d1[0] = 42
	if d2[0] == 42 {
		t.Error("derivative calls share an output buffer")
	}
}

func TestDoublePendulum_MirrorSymmetry(t *testing.T) {
	p := defaultPendulum(t)
	x := mech.State{0.7, -0.4, 1.9, 0.25}
	mirror := mech.State{-x[0], -x[1], -x[2], -x[3]}

	dx := p.Derivative(0, x)
	dm := p.Derivative(0, mirror)

	for i := range dx {
		if math.Abs(dx[i]+dm[i]) > 1e-12 {
			t.Errorf("component %d breaks mirror symmetry: %g vs %g", i, dx[i], dm[i])
		}
	}
}

func TestDoublePendulum_EnergyAtRest(t *testing.T) {
	p := defaultPendulum(t)

	got := p.Energy(mech.State{0, 0, 0, 0})
	want := -DefaultGravity * (DefaultMass*DefaultLength + DefaultMass*2*DefaultLength)
	if math.Abs(got-want) > 1e-12 {
		t.Errorf("rest energy = %g, want %g", got, want)
	}
}

func TestDoublePendulum_Positions(t *testing.T) {
	p := defaultPendulum(t)

	x1, y1, x2, y2 := p.Positions(mech.State{math.Pi / 2, 0, 0, 0})
	if math.Abs(x1-1) > 1e-12 || math.Abs(y1) > 1e-12 {
		t.Errorf("first bob at (%g, %g), want (1, 0)", x1, y1)
	}
	if math.Abs(x2-1) > 1e-12 || math.Abs(y2+1) > 1e-12 {
		t.Errorf("second bob at (%g, %g), want (1, -1)", x2, y2)
	}
}

func TestDoublePendulum_InvalidParams(t *testing.T) {
	cases := []struct {
		name               string
		m1, m2, l1, l2, gv float64
	}{
		{"zero mass", 0, 1, 1, 1, 9.81},
		{"negative mass", 1, -1, 1, 1, 9.81},
		{"zero length", 1, 1, 0, 1, 9.81},
		{"nan length", 1, 1, 1, math.NaN(), 9.81},
		{"infinite gravity", 1, 1, 1, 1, math.Inf(1)},
		{"zero gravity", 1, 1, 1, 1, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewDoublePendulum(tc.m1, tc.m2, tc.l1, tc.l2, tc.gv)
			if !errors.Is(err, mech.ErrInvalidParameter) {
				t.Errorf("expected ErrInvalidParameter, got %v", err)
			}
		})
	}
}
