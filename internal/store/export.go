package store

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/jackwarfield/5300-final-project/internal/config"
	"github.com/jackwarfield/5300-final-project/internal/mech"
)

// ExportData is the JSON shape handed to external tooling.
type ExportData struct {
	System      string             `json:"system"`
	Integrator  string             `json:"integrator"`
	Start       float64            `json:"start"`
	Duration    float64            `json:"duration"`
	Step        float64            `json:"step"`
	Points      int                `json:"points"`
	Labels      []string           `json:"labels,omitempty"`
	Times       []float64          `json:"times"`
	States      []mech.State       `json:"states"`
	Diagnostics map[string]float64 `json:"diagnostics,omitempty"`
}

func ExportJSON(w io.Writer, sc *config.Scenario, traj *mech.Trajectory, labels []string, diagnostics map[string]float64) error {
	data := ExportData{
		System:      sc.System,
		Integrator:  sc.Integrator,
		Start:       sc.Start,
		Duration:    sc.Duration,
		Step:        sc.Step,
		Points:      traj.Len(),
		Labels:      labels,
		Times:       traj.Times,
		States:      traj.States,
		Diagnostics: diagnostics,
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}

func ExportJSONFile(path string, sc *config.Scenario, traj *mech.Trajectory, labels []string, diagnostics map[string]float64) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return ExportJSON(f, sc, traj, labels, diagnostics)
}

// ExportCSV writes the same time+state table Save persists, to any
// writer.
func ExportCSV(w io.Writer, traj *mech.Trajectory, labels []string) error {
	cw := csv.NewWriter(w)
	if err := writeStates(cw, traj, labels); err != nil {
		return err
	}
	cw.Flush()
	return cw.Error()
}

func ExportCSVFile(path string, traj *mech.Trajectory, labels []string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := ExportCSV(f, traj, labels); err != nil {
		return fmt.Errorf("export %s: %w", path, err)
	}
	return nil
}
