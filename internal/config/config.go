package config

import (
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/jackwarfield/5300-final-project/internal/mech"
)

const (
	DefaultStart    = 0.0
	DefaultDuration = 30.0
	DefaultStep     = 0.01
	DefaultTheta    = 1.5
)

// Scenario is one self-contained simulation description: which system,
// which integrator, the output time grid, tolerances, and the physical
// parameters of both bundled systems (only the selected one is used).
type Scenario struct {
	System     string  `yaml:"system" json:"system"`
	Integrator string  `yaml:"integrator" json:"integrator"`
	Start      float64 `yaml:"start" json:"start"`
	Duration   float64 `yaml:"duration" json:"duration"`
	Step       float64 `yaml:"step" json:"step"`
	AbsTol     float64 `yaml:"abs_tol" json:"abs_tol"`
	RelTol     float64 `yaml:"rel_tol" json:"rel_tol"`
	MaxSteps   int     `yaml:"max_steps" json:"max_steps"`
	Substeps   int     `yaml:"substeps" json:"substeps"`

	Pendulum PendulumConfig `yaml:"double_pendulum" json:"double_pendulum"`
	TwoBody  TwoBodyConfig  `yaml:"two_body" json:"two_body"`
}

// PendulumConfig holds double pendulum constants and initial conditions.
// Angles are radians from the downward vertical.
type PendulumConfig struct {
	M1 float64 `yaml:"m1" json:"m1"`
	M2 float64 `yaml:"m2" json:"m2"`
	L1 float64 `yaml:"l1" json:"l1"`
	L2 float64 `yaml:"l2" json:"l2"`
	G  float64 `yaml:"g" json:"g"`

	Theta1 float64 `yaml:"theta1" json:"theta1"`
	Omega1 float64 `yaml:"omega1" json:"omega1"`
	Theta2 float64 `yaml:"theta2" json:"theta2"`
	Omega2 float64 `yaml:"omega2" json:"omega2"`
}

// TwoBodyConfig holds the gravitational constant and per-body mass,
// position and velocity. MinSeparation is the distance below which a
// run is abandoned as a collision.
type TwoBodyConfig struct {
	G             float64 `yaml:"g" json:"g"`
	M1            float64 `yaml:"m1" json:"m1"`
	M2            float64 `yaml:"m2" json:"m2"`
	MinSeparation float64 `yaml:"min_separation" json:"min_separation"`

	X1  float64 `yaml:"x1" json:"x1"`
	Y1  float64 `yaml:"y1" json:"y1"`
	VX1 float64 `yaml:"vx1" json:"vx1"`
	VY1 float64 `yaml:"vy1" json:"vy1"`

	X2  float64 `yaml:"x2" json:"x2"`
	Y2  float64 `yaml:"y2" json:"y2"`
	VX2 float64 `yaml:"vx2" json:"vx2"`
	VY2 float64 `yaml:"vy2" json:"vy2"`
}

func DefaultScenario() *Scenario {
	return &Scenario{
		System:     "double_pendulum",
		Integrator: "dopri5",
		Start:      DefaultStart,
		Duration:   DefaultDuration,
		Step:       DefaultStep,
		Pendulum: PendulumConfig{
			M1: 1, M2: 1, L1: 1, L2: 1, G: 9.81,
			Theta1: DefaultTheta, Theta2: DefaultTheta,
		},
		TwoBody: TwoBodyConfig{
			G: 1, M1: 100, M2: 1,
			MinSeparation: 1e-9,
			VY1:           -0.1,
			X2:            1.5, VY2: 10,
		},
	}
}

// Load reads a scenario file over the defaults, so partial files work.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	sc := DefaultScenario()
	if err := yaml.Unmarshal(data, sc); err != nil {
		return nil, err
	}
	return sc, nil
}

func Save(path string, sc *Scenario) error {
	data, err := yaml.Marshal(sc)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Batch is a scripted list of scenarios run back to back.
type Batch struct {
	Name      string      `yaml:"name"`
	Scenarios []*Scenario `yaml:"scenarios"`
}

// LoadBatch reads a batch file. Each entry is decoded over the defaults,
// the same way Load treats a single scenario file.
func LoadBatch(path string) (*Batch, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var raw struct {
		Name      string      `yaml:"name"`
		Scenarios []yaml.Node `yaml:"scenarios"`
	}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	if len(raw.Scenarios) == 0 {
		return nil, fmt.Errorf("%w: batch %s has no scenarios", mech.ErrInvalidParameter, path)
	}

	b := &Batch{Name: raw.Name}
	for i := range raw.Scenarios {
		sc := DefaultScenario()
		if err := raw.Scenarios[i].Decode(sc); err != nil {
			return nil, fmt.Errorf("scenario %d: %w", i+1, err)
		}
		b.Scenarios = append(b.Scenarios, sc)
	}
	return b, nil
}

// Validate checks the grid shape; the physical constants are checked by the
// model constructors.
func (s *Scenario) Validate() error {
	for _, p := range []struct {
		name string
		v    float64
	}{{"start", s.Start}, {"duration", s.Duration}, {"step", s.Step}} {
		if math.IsNaN(p.v) || math.IsInf(p.v, 0) {
			return fmt.Errorf("%w: %s = %g", mech.ErrInvalidParameter, p.name, p.v)
		}
	}
	if s.Duration < 0 {
		return fmt.Errorf("%w: duration = %g", mech.ErrInvalidParameter, s.Duration)
	}
	if s.Step <= 0 {
		return fmt.Errorf("%w: step = %g", mech.ErrInvalidParameter, s.Step)
	}
	return nil
}

// TimeGrid expands start/duration/step into the output grid. The last entry
// lands on start+duration exactly.
func (s *Scenario) TimeGrid() []float64 {
	if s.Duration == 0 {
		return []float64{s.Start}
	}
	n := int(math.Round(s.Duration/s.Step)) + 1
	if n < 2 {
		n = 2
	}
	grid := make([]float64, n)
	for i := range grid {
		grid[i] = s.Start + float64(i)*s.Step
	}
	grid[n-1] = s.Start + s.Duration
	return grid
}
