package physics

import (
	"fmt"
	"math"

	"github.com/jackwarfield/5300-final-project/internal/mech"
)

const (
	DefaultMass    = 1.0
	DefaultLength  = 1.0
	DefaultGravity = 9.81
)

// DoublePendulum is a planar double pendulum: two point bobs on massless
// rigid rods, angles measured from the downward vertical, pivot fixed at
// the origin.
//
// State layout: [θ1, θ̇1, θ2, θ̇2].
type DoublePendulum struct {
	M1, M2 float64 // bob masses
	L1, L2 float64 // rod lengths
	G      float64 // gravitational acceleration
}

// NewDoublePendulum rejects non-finite or non-positive constants.
func NewDoublePendulum(m1, m2, l1, l2, g float64) (*DoublePendulum, error) {
	for _, p := range []struct {
		name string
		v    float64
	}{{"m1", m1}, {"m2", m2}, {"l1", l1}, {"l2", l2}, {"g", g}} {
		if math.IsNaN(p.v) || math.IsInf(p.v, 0) || p.v <= 0 {
			return nil, fmt.Errorf("%w: %s = %g (want positive finite)",
				mech.ErrInvalidParameter, p.name, p.v)
		}
	}
	return &DoublePendulum{M1: m1, M2: m2, L1: l1, L2: l2, G: g}, nil
}

func (p *DoublePendulum) Name() string { return "double_pendulum" }
func (p *DoublePendulum) Dim() int     { return 4 }

// Labels names the state components, in state order.
func (p *DoublePendulum) Labels() []string {
	return []string{"theta1", "omega1", "theta2", "omega2"}
}

// InitialState packs angles (radians) and angular velocities in state order.
func (p *DoublePendulum) InitialState(theta1, omega1, theta2, omega2 float64) mech.State {
	return mech.State{theta1, omega1, theta2, omega2}
}

// Derivative evaluates the closed-form equations of motion. The two
// accelerations couple through sin and cos of (θ2-θ1) and through the mass
// sum; dividing numerator and denominator by (m1+m2) shows the coupling
// strength is the mass ratio m2/(m1+m2).
func (p *DoublePendulum) Derivative(t float64, x mech.State) mech.State {
	theta1, omega1, theta2, omega2 := x[0], x[1], x[2], x[3]
	m1, m2, l1, l2, g := p.M1, p.M2, p.L1, p.L2, p.G

	delta := theta2 - theta1
	sinD, cosD := math.Sin(delta), math.Cos(delta)

	den1 := (m1+m2)*l1 - m2*l1*cosD*cosD
	den2 := (l2 / l1) * den1

	alpha1 := (m2*l1*omega1*omega1*sinD*cosD +
		m2*g*math.Sin(theta2)*cosD +
		m2*l2*omega2*omega2*sinD -
		(m1+m2)*g*math.Sin(theta1)) / den1

	alpha2 := (-m2*l2*omega2*omega2*sinD*cosD +
		(m1+m2)*g*math.Sin(theta1)*cosD -
		(m1+m2)*l1*omega1*omega1*sinD -
		(m1+m2)*g*math.Sin(theta2)) / den2

	return mech.State{omega1, alpha1, omega2, alpha2}
}

// Energy returns kinetic plus potential energy with the zero level at the
// pivot height.
func (p *DoublePendulum) Energy(x mech.State) float64 {
	theta1, omega1, theta2, omega2 := x[0], x[1], x[2], x[3]
	m1, m2, l1, l2, g := p.M1, p.M2, p.L1, p.L2, p.G

	v1sq := l1 * l1 * omega1 * omega1
	v2sq := v1sq + l2*l2*omega2*omega2 +
		2*l1*l2*omega1*omega2*math.Cos(theta1-theta2)

	ke := 0.5*m1*v1sq + 0.5*m2*v2sq
	y1 := -l1 * math.Cos(theta1)
	y2 := y1 - l2*math.Cos(theta2)
	pe := g * (m1*y1 + m2*y2)

	return ke + pe
}

// Positions converts a state to bob cartesian coordinates, pivot at the
// origin, y up: x = l sinθ, y = -l cosθ, the second bob summed onto the
// first.
func (p *DoublePendulum) Positions(x mech.State) (x1, y1, x2, y2 float64) {
	x1 = p.L1 * math.Sin(x[0])
	y1 = -p.L1 * math.Cos(x[0])
	x2 = x1 + p.L2*math.Sin(x[2])
	y2 = y1 - p.L2*math.Cos(x[2])
	return
}
