package store

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/jackwarfield/5300-final-project/internal/config"
	"github.com/jackwarfield/5300-final-project/internal/mech"
)

// Store keeps one directory per saved run: metadata.json describing
// the scenario and states.csv holding the trajectory.
type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

// RunMetadata describes one saved trajectory. The full scenario is
// embedded so a stored run can be re-rendered or re-analyzed without
// the original config file.
type RunMetadata struct {
	ID          string             `json:"id"`
	Timestamp   time.Time          `json:"timestamp"`
	Scenario    *config.Scenario   `json:"scenario"`
	Steps       int                `json:"steps"`
	Rejected    int                `json:"rejected"`
	Evals       int                `json:"evals"`
	Diagnostics map[string]float64 `json:"diagnostics"`
}

// Save writes one run under a fresh id. labels names the CSV state
// columns; nil falls back to x0..xN.
func (s *Store) Save(sc *config.Scenario, traj *mech.Trajectory, labels []string, diagnostics map[string]float64) (string, error) {
	runID := fmt.Sprintf("%s_%d", sc.System, time.Now().UnixNano())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:          runID,
		Timestamp:   time.Now(),
		Scenario:    sc,
		Steps:       traj.Stats.Steps,
		Rejected:    traj.Stats.Rejected,
		Evals:       traj.Stats.Evals,
		Diagnostics: diagnostics,
	}

	metaFile, err := os.Create(filepath.Join(runDir, "metadata.json"))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	csvFile, err := os.Create(filepath.Join(runDir, "states.csv"))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	defer w.Flush()

	if err := writeStates(w, traj, labels); err != nil {
		return "", err
	}
	return runID, nil
}

func writeStates(w *csv.Writer, traj *mech.Trajectory, labels []string) error {
	if traj.Len() == 0 {
		return nil
	}

	header := []string{"time"}
	if len(labels) == len(traj.States[0]) {
		header = append(header, labels...)
	} else {
		for i := range traj.States[0] {
			header = append(header, fmt.Sprintf("x%d", i))
		}
	}
	if err := w.Write(header); err != nil {
		return err
	}

	row := make([]string, 0, len(header))
	for i, x := range traj.States {
		row = row[:0]
		row = append(row, formatValue(traj.Times[i]))
		for _, v := range x {
			row = append(row, formatValue(v))
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}

// formatValue round-trips float64 exactly; saved runs are often
// compared against fresh integrations.
func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// List returns metadata for every readable run, skipping directories
// without one.
func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		meta, err := s.Load(entry.Name())
		if err != nil {
			continue
		}
		runs = append(runs, *meta)
	}
	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, "metadata.json"))
	if err != nil {
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}
	if meta.Scenario == nil {
		return nil, fmt.Errorf("run %s: metadata has no scenario", runID)
	}
	return &meta, nil
}

// LoadStates reads a saved trajectory back. Stats are not persisted in
// the CSV, so the result carries times and states only.
func (s *Store) LoadStates(runID string) (*mech.Trajectory, error) {
	f, err := os.Open(filepath.Join(s.baseDir, runID, "states.csv"))
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}

	traj := &mech.Trajectory{}
	for i := 1; i < len(records); i++ {
		record := records[i]
		if len(record) < 2 {
			continue
		}
		t, err := strconv.ParseFloat(record[0], 64)
		if err != nil {
			continue
		}
		x := make(mech.State, 0, len(record)-1)
		for _, field := range record[1:] {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, fmt.Errorf("run %s: bad state value %q", runID, field)
			}
			x = append(x, v)
		}
		traj.Times = append(traj.Times, t)
		traj.States = append(traj.States, x)
	}
	return traj, nil
}
