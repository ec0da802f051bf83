package mech

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// State is a flat system state vector. Generalized coordinates interleave
// with their time derivatives: each coordinate q is immediately followed by
// q̇, so the double pendulum packs [θ1, θ̇1, θ2, θ̇2] and the planar two-body
// system packs [x1, ẋ1, y1, ẏ1, x2, ẋ2, y2, ẏ2].
type State []float64

func (s State) Clone() State {
	c := make(State, len(s))
	copy(c, s)
	return c
}

// IsFinite reports whether every component is a finite number.
func (s State) IsFinite() bool {
	for _, v := range s {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// Norm returns the Euclidean norm of the vector.
func (s State) Norm() float64 {
	return floats.Norm(s, 2)
}

// Distance returns the Euclidean distance to other. Panics when the
// dimensions differ.
func (s State) Distance(other State) float64 {
	return floats.Distance(s, other, 2)
}
