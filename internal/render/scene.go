package render

import (
	"math"

	"github.com/jackwarfield/5300-final-project/internal/mech"
	"github.com/jackwarfield/5300-final-project/internal/physics"
)

// PendulumBounds is the square the assembly can reach around its
// pivot. It is state independent, so a playback never rescales.
func PendulumBounds(sys *physics.DoublePendulum) Bounds {
	reach := sys.L1 + sys.L2
	return Bounds{MinX: -reach, MinY: -reach, MaxX: reach, MaxY: reach}.pad(0.05)
}

// OrbitBounds covers both body paths over the supplied states.
func OrbitBounds(sys *physics.TwoBody, states []mech.State) Bounds {
	b := Bounds{
		MinX: math.Inf(1), MinY: math.Inf(1),
		MaxX: math.Inf(-1), MaxY: math.Inf(-1),
	}
	for _, x := range states {
		x1, y1, x2, y2 := sys.Positions(x)
		b.MinX = math.Min(b.MinX, math.Min(x1, x2))
		b.MinY = math.Min(b.MinY, math.Min(y1, y2))
		b.MaxX = math.Max(b.MaxX, math.Max(x1, x2))
		b.MaxY = math.Max(b.MaxY, math.Max(y1, y2))
	}
	return b.pad(0.05)
}

// DrawPendulum renders pivot, rods, bobs and the tip trail ending at
// states[i]. trail is how many earlier points of the tip path to keep.
func DrawPendulum(c *Canvas, b Bounds, sys *physics.DoublePendulum, states []mech.State, i, trail int) {
	if i < 0 || i >= len(states) {
		return
	}
	v := newViewport(c, b)

	for j := start(i, trail); j < i; j++ {
		_, _, x2, y2 := sys.Positions(states[j])
		c.Set(v.dot(x2, y2))
	}

	x1, y1, x2, y2 := sys.Positions(states[i])
	px, py := v.dot(0, 0)
	b1x, b1y := v.dot(x1, y1)
	b2x, b2y := v.dot(x2, y2)

	c.Set(px, py)
	c.Line(px, py, b1x, b1y)
	c.Line(b1x, b1y, b2x, b2y)
	c.Blob(b1x, b1y, 1)
	c.Blob(b2x, b2y, 1)
}

// DrawOrbit renders both bodies at states[i] with their past paths.
func DrawOrbit(c *Canvas, b Bounds, sys *physics.TwoBody, states []mech.State, i, trail int) {
	if i < 0 || i >= len(states) {
		return
	}
	v := newViewport(c, b)

	for j := start(i, trail); j < i; j++ {
		x1, y1, x2, y2 := sys.Positions(states[j])
		c.Set(v.dot(x1, y1))
		c.Set(v.dot(x2, y2))
	}

	x1, y1, x2, y2 := sys.Positions(states[i])
	r1, r2 := 2, 1
	if sys.M2 > sys.M1 {
		r1, r2 = r2, r1
	}
	bx, by := v.dot(x1, y1)
	c.Blob(bx, by, r1)
	bx, by = v.dot(x2, y2)
	c.Blob(bx, by, r2)
}

func start(i, trail int) int {
	if trail < 0 || i-trail < 0 {
		return 0
	}
	return i - trail
}
