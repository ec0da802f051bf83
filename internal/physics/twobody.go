package physics

import (
	"fmt"
	"math"

	"github.com/jackwarfield/5300-final-project/internal/mech"
)

// DefaultMinSeparation is the separation below which the point-mass picture
// is treated as broken and integration aborts.
const DefaultMinSeparation = 1e-9

// Body bundles the construction inputs for one gravitating point mass.
type Body struct {
	Mass   float64
	X, Y   float64
	VX, VY float64
}

// TwoBody is a pair of point masses under mutual Newtonian gravity,
// restricted to a plane.
//
// State layout: [x1, ẋ1, y1, ẏ1, x2, ẋ2, y2, ẏ2].
type TwoBody struct {
	G      float64
	M1, M2 float64

	// MinSeparation is the smallest separation the model accepts before
	// reporting a singular configuration mid-run.
	MinSeparation float64

	// R0 is the separation at construction time, kept for reporting only.
	// Derivative recomputes the separation from the live state on every
	// call and never reads this field.
	R0 float64
}

// NewTwoBody validates the constants and packs the initial state. Bodies
// placed closer than DefaultMinSeparation (in particular, coincident ones)
// are rejected as singular.
func NewTwoBody(g float64, b1, b2 Body) (*TwoBody, mech.State, error) {
	for _, p := range []struct {
		name string
		v    float64
	}{{"G", g}, {"m1", b1.Mass}, {"m2", b2.Mass}} {
		if math.IsNaN(p.v) || math.IsInf(p.v, 0) || p.v <= 0 {
			return nil, nil, fmt.Errorf("%w: %s = %g (want positive finite)",
				mech.ErrInvalidParameter, p.name, p.v)
		}
	}
	for _, p := range []struct {
		name string
		v    float64
	}{
		{"x1", b1.X}, {"y1", b1.Y}, {"vx1", b1.VX}, {"vy1", b1.VY},
		{"x2", b2.X}, {"y2", b2.Y}, {"vx2", b2.VX}, {"vy2", b2.VY},
	} {
		if math.IsNaN(p.v) || math.IsInf(p.v, 0) {
			return nil, nil, fmt.Errorf("%w: %s = %g (want finite)",
				mech.ErrInvalidParameter, p.name, p.v)
		}
	}

	r0 := math.Hypot(b1.X-b2.X, b1.Y-b2.Y)
	if r0 < DefaultMinSeparation {
		return nil, nil, fmt.Errorf("%w: initial separation %g below minimum %g",
			mech.ErrSingularConfiguration, r0, DefaultMinSeparation)
	}

	tb := &TwoBody{
		G: g, M1: b1.Mass, M2: b2.Mass,
		MinSeparation: DefaultMinSeparation,
		R0:            r0,
	}
	x0 := mech.State{b1.X, b1.VX, b1.Y, b1.VY, b2.X, b2.VX, b2.Y, b2.VY}
	return tb, x0, nil
}

func (b *TwoBody) Name() string { return "two_body" }
func (b *TwoBody) Dim() int     { return 8 }

// Labels names the state components, in state order.
func (b *TwoBody) Labels() []string {
	return []string{"x1", "vx1", "y1", "vy1", "x2", "vx2", "y2", "vy2"}
}

// Derivative evaluates Newtonian pairwise attraction. The separation is
// computed fresh from the state passed in; nothing is cached between calls.
func (b *TwoBody) Derivative(t float64, s mech.State) mech.State {
	rx := s[0] - s[4]
	ry := s[2] - s[6]
	r2 := rx*rx + ry*ry
	inv := 1 / (r2 * math.Sqrt(r2))

	ax := -b.G * rx * inv
	ay := -b.G * ry * inv

	return mech.State{
		s[1], b.M2 * ax,
		s[3], b.M2 * ay,
		s[5], -b.M1 * ax,
		s[7], -b.M1 * ay,
	}
}

// CheckState reports a singular configuration once the bodies close below
// MinSeparation.
func (b *TwoBody) CheckState(t float64, s mech.State) error {
	if r := b.Separation(s); r < b.MinSeparation {
		return fmt.Errorf("%w: separation %g below minimum %g",
			mech.ErrSingularConfiguration, r, b.MinSeparation)
	}
	return nil
}

// Separation returns the current distance between the bodies.
func (b *TwoBody) Separation(s mech.State) float64 {
	return math.Hypot(s[0]-s[4], s[2]-s[6])
}

// Positions returns both bodies' cartesian coordinates.
func (b *TwoBody) Positions(s mech.State) (x1, y1, x2, y2 float64) {
	return s[0], s[2], s[4], s[6]
}

// Energy returns kinetic plus gravitational potential energy.
func (b *TwoBody) Energy(s mech.State) float64 {
	ke := 0.5*b.M1*(s[1]*s[1]+s[3]*s[3]) + 0.5*b.M2*(s[5]*s[5]+s[7]*s[7])
	return ke - b.G*b.M1*b.M2/b.Separation(s)
}

// Momentum returns the total linear momentum components.
func (b *TwoBody) Momentum(s mech.State) (px, py float64) {
	px = b.M1*s[1] + b.M2*s[5]
	py = b.M1*s[3] + b.M2*s[7]
	return
}

// AngularMomentum returns the total angular momentum about the origin.
func (b *TwoBody) AngularMomentum(s mech.State) float64 {
	return b.M1*(s[0]*s[3]-s[2]*s[1]) + b.M2*(s[4]*s[7]-s[6]*s[5])
}

// KeplerPeriod returns the two-body orbital period implied by the state, or
// false when the relative orbit is unbound.
func (b *TwoBody) KeplerPeriod(s mech.State) (float64, bool) {
	mu := b.G * (b.M1 + b.M2)
	r := b.Separation(s)
	dvx := s[1] - s[5]
	dvy := s[3] - s[7]
	eps := (dvx*dvx+dvy*dvy)/2 - mu/r
	if eps >= 0 {
		return 0, false
	}
	a := -mu / (2 * eps)
	return 2 * math.Pi * math.Sqrt(a*a*a/mu), true
}
