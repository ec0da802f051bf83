package scenario

import (
	"errors"
	"testing"

	"github.com/jackwarfield/5300-final-project/internal/config"
	"github.com/jackwarfield/5300-final-project/internal/mech"
	"github.com/jackwarfield/5300-final-project/internal/ode"
	"github.com/jackwarfield/5300-final-project/internal/physics"
)

func TestBuildDoublePendulum(t *testing.T) {
	r, err := Build(config.DefaultScenario())
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if r.System.Name() != "double_pendulum" {
		t.Errorf("system = %q, want double_pendulum", r.System.Name())
	}
	if r.Method.Name() != "dopri5" {
		t.Errorf("method = %q, want dopri5", r.Method.Name())
	}
	want := mech.State{1.5, 0, 1.5, 0}
	for i := range want {
		if r.X0[i] != want[i] {
			t.Fatalf("x0 = %v, want %v", r.X0, want)
		}
	}
	if len(r.Times) != 3001 || r.Times[3000] != 30 {
		t.Errorf("grid: len=%d end=%g, want 3001 points ending at 30",
			len(r.Times), r.Times[len(r.Times)-1])
	}
}

func TestBuildTwoBody(t *testing.T) {
	cfg := config.GetPreset("two_body", "heavy_primary")
	r, err := Build(cfg)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if r.System.Name() != "two_body" {
		t.Errorf("system = %q, want two_body", r.System.Name())
	}
	want := mech.State{0, 0, 0, -0.1, 1.5, 0, 0, 10}
	if len(r.X0) != len(want) {
		t.Fatalf("x0 dim = %d, want %d", len(r.X0), len(want))
	}
	for i := range want {
		if r.X0[i] != want[i] {
			t.Fatalf("x0 = %v, want %v", r.X0, want)
		}
	}
}

func TestBuildAppliesMinSeparation(t *testing.T) {
	cfg := config.GetPreset("two_body", "binary")
	cfg.TwoBody.MinSeparation = 0.5

	r, err := Build(cfg)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	sys := r.System.(*physics.TwoBody)
	if sys.MinSeparation != 0.5 {
		t.Errorf("MinSeparation = %g, want 0.5", sys.MinSeparation)
	}
}

func TestBuildIntegratorSelection(t *testing.T) {
	cfg := config.DefaultScenario()
	cfg.Integrator = "rk4"
	cfg.Substeps = 4

	r, err := Build(cfg)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	m := r.Method.(*ode.RK4)
	if m.Substeps != 4 {
		t.Errorf("Substeps = %d, want 4", m.Substeps)
	}
}

func TestBuildUnknownNames(t *testing.T) {
	cfg := config.DefaultScenario()
	cfg.System = "triple_pendulum"
	if _, err := Build(cfg); !errors.Is(err, mech.ErrInvalidParameter) {
		t.Errorf("unknown system: err = %v, want ErrInvalidParameter", err)
	}

	cfg = config.DefaultScenario()
	cfg.Integrator = "leapfrog"
	if _, err := Build(cfg); !errors.Is(err, mech.ErrInvalidParameter) {
		t.Errorf("unknown integrator: err = %v, want ErrInvalidParameter", err)
	}
}

func TestBuildRejectsBadPhysics(t *testing.T) {
	cfg := config.DefaultScenario()
	cfg.Pendulum.M1 = -1
	if _, err := Build(cfg); !errors.Is(err, mech.ErrInvalidParameter) {
		t.Errorf("negative mass: err = %v, want ErrInvalidParameter", err)
	}
}

func TestRunEnergy(t *testing.T) {
	r, err := Build(config.DefaultScenario())
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	e, ok := r.Energy(r.X0)
	if !ok {
		t.Fatal("double pendulum should expose an energy")
	}
	want := r.System.(*physics.DoublePendulum).Energy(r.X0)
	if e != want {
		t.Errorf("Energy = %g, want %g", e, want)
	}
}
