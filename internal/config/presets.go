package config

import "sort"

// Presets are ready-made scenarios keyed by system, then by name. Fields
// not set here inherit nothing: a preset is complete on its own.
var Presets = map[string]map[string]*Scenario{
	"double_pendulum": {
		"symmetric": {
			System: "double_pendulum", Integrator: "dopri5",
			Duration: 30, Step: 0.01,
			Pendulum: PendulumConfig{
				M1: 1, M2: 1, L1: 1, L2: 1, G: 9.81,
				Theta1: 1.5, Theta2: 1.5,
			},
		},
		"chaos": {
			System: "double_pendulum", Integrator: "dopri5",
			Duration: 30, Step: 0.01,
			Pendulum: PendulumConfig{
				M1: 1, M2: 1, L1: 1, L2: 1, G: 9.81,
				Theta1: 2.0944, Theta2: 2.0944,
			},
		},
		"small_angle": {
			System: "double_pendulum", Integrator: "dopri5",
			Duration: 30, Step: 0.01,
			Pendulum: PendulumConfig{
				M1: 1, M2: 1, L1: 1, L2: 1, G: 9.81,
				Theta1: 0.1, Theta2: 0.1,
			},
		},
		"high_energy": {
			System: "double_pendulum", Integrator: "dopri5",
			Duration: 60, Step: 0.01,
			Pendulum: PendulumConfig{
				M1: 1, M2: 1, L1: 1, L2: 1, G: 9.81,
				Theta1: 3.0, Theta2: 3.0, Omega2: 0.5,
			},
		},
	},
	"two_body": {
		"heavy_primary": {
			System: "two_body", Integrator: "dopri5",
			Duration: 30, Step: 0.01,
			TwoBody: TwoBodyConfig{
				G: 1, M1: 100, M2: 1,
				VY1: -0.1,
				X2:  1.5, VY2: 10,
			},
		},
		"binary": {
			System: "two_body", Integrator: "dopri5",
			Duration: 40, Step: 0.01,
			TwoBody: TwoBodyConfig{
				G: 1, M1: 1, M2: 1,
				X1: -1, VY1: -0.5,
				X2: 1, VY2: 0.5,
			},
		},
		"eccentric": {
			System: "two_body", Integrator: "dopri5",
			Duration: 60, Step: 0.01,
			TwoBody: TwoBodyConfig{
				G: 1, M1: 1, M2: 1,
				X1: -1, VY1: -0.3,
				X2: 1, VY2: 0.3,
			},
		},
	},
}

// GetPreset returns a copy of the named preset, or nil if either name
// is unknown. Callers may freely mutate the copy.
func GetPreset(system, preset string) *Scenario {
	byName, ok := Presets[system]
	if !ok {
		return nil
	}
	sc, ok := byName[preset]
	if !ok {
		return nil
	}
	out := *sc
	return &out
}

func ListPresets(system string) []string {
	byName, ok := Presets[system]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(byName))
	for name := range byName {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Systems returns the preset system names in stable order.
func Systems() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
