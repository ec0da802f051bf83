package render

import (
	"math"
	"testing"

	"github.com/jackwarfield/5300-final-project/internal/mech"
	"github.com/jackwarfield/5300-final-project/internal/physics"
)

func testPendulum(t *testing.T) *physics.DoublePendulum {
	t.Helper()
	sys, err := physics.NewDoublePendulum(1, 1, 1, 1, 9.81)
	if err != nil {
		t.Fatalf("NewDoublePendulum: %v", err)
	}
	return sys
}

func TestPendulumBounds(t *testing.T) {
	b := PendulumBounds(testPendulum(t))
	if b.MinX != -2.1 || b.MaxX != 2.1 || b.MinY != -2.1 || b.MaxY != 2.1 {
		t.Errorf("bounds = %+v, want padded reach 2.1 square", b)
	}
}

func TestOrbitBounds(t *testing.T) {
	sys, x0, err := physics.NewTwoBody(1,
		physics.Body{Mass: 100},
		physics.Body{Mass: 1, X: 1.5, VY: 1})
	if err != nil {
		t.Fatalf("NewTwoBody: %v", err)
	}

	b := OrbitBounds(sys, []mech.State{x0})
	if b.MinX > 0 || b.MaxX < 1.5 {
		t.Errorf("bounds %+v should cover both bodies", b)
	}
}

func TestDrawPendulumHorizontalConfiguration(t *testing.T) {
	sys := testPendulum(t)
	states := []mech.State{sys.InitialState(math.Pi/2, 0, math.Pi/2, 0)}

	c := NewCanvas(40, 20)
	DrawPendulum(c, PendulumBounds(sys), sys, states, 0, 0)

	// Both arms point along +x, so everything sits on the centre row,
	// right of the pivot.
	midY := c.DotHeight()/2 - 1
	if !c.On(40, midY) {
		t.Error("pivot dot should be set at the canvas centre")
	}
	if !c.On(78, midY) {
		t.Error("second bob should sit near the right edge")
	}
	for x := 0; x < 38; x++ {
		if c.On(x, midY) {
			t.Fatalf("dot (%d,%d) in the left half should be empty", x, midY)
		}
	}
}

func TestDrawPendulumIgnoresBadIndex(t *testing.T) {
	sys := testPendulum(t)
	c := NewCanvas(10, 5)
	DrawPendulum(c, PendulumBounds(sys), sys, nil, 0, 0)
	DrawPendulum(c, PendulumBounds(sys), sys, []mech.State{sys.InitialState(0, 0, 0, 0)}, 3, 0)

	for y := 0; y < c.DotHeight(); y++ {
		for x := 0; x < c.DotWidth(); x++ {
			if c.On(x, y) {
				t.Fatal("nothing should be drawn for an out-of-range frame")
			}
		}
	}
}

func TestDrawOrbitBlobSizes(t *testing.T) {
	sys, x0, err := physics.NewTwoBody(1,
		physics.Body{Mass: 100},
		physics.Body{Mass: 1, X: 1.5})
	if err != nil {
		t.Fatalf("NewTwoBody: %v", err)
	}

	c := NewCanvas(40, 20)
	DrawOrbit(c, OrbitBounds(sys, []mech.State{x0}), sys, []mech.State{x0}, 0, 0)

	lit := 0
	for y := 0; y < c.DotHeight(); y++ {
		for x := 0; x < c.DotWidth(); x++ {
			if c.On(x, y) {
				lit++
			}
		}
	}
	// Heavy body blob radius 2 (25 dots) plus light body radius 1
	// (9 dots); blobs may clip at the canvas border but not overlap.
	if lit < 20 || lit > 34 {
		t.Errorf("lit dots = %d, want the two body blobs", lit)
	}
}
