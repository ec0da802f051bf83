package ode

import (
	"testing"

	"github.com/jackwarfield/5300-final-project/internal/mech"
)

type benchDynamics struct{}

func (b *benchDynamics) Name() string { return "bench" }
func (b *benchDynamics) Dim() int     { return 2 }
func (b *benchDynamics) Derivative(t float64, x mech.State) mech.State {
	return mech.State{x[1], -x[0]}
}

func BenchmarkDopri5(b *testing.B) {
	dyn := &benchDynamics{}
	grid := uniformGrid(0, 10, 0.01)
	method := NewDopri5(DefaultOptions())

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := method.Integrate(dyn, mech.State{1, 0}, grid); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkRK4(b *testing.B) {
	dyn := &benchDynamics{}
	grid := uniformGrid(0, 10, 0.01)
	method := NewRK4()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := method.Integrate(dyn, mech.State{1, 0}, grid); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkEuler(b *testing.B) {
	dyn := &benchDynamics{}
	grid := uniformGrid(0, 10, 0.01)
	method := NewEuler()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := method.Integrate(dyn, mech.State{1, 0}, grid); err != nil {
			b.Fatal(err)
		}
	}
}
