package analysis

import (
	"errors"
	"math"
	"testing"

	"github.com/jackwarfield/5300-final-project/internal/mech"
)

func makeTrajectory(times []float64, states ...mech.State) *mech.Trajectory {
	return &mech.Trajectory{Times: times, States: states}
}

func TestComponentDivergence(t *testing.T) {
	a := makeTrajectory([]float64{0, 1, 2},
		mech.State{0, 0}, mech.State{1, 0}, mech.State{2, 0})
	b := makeTrajectory([]float64{0, 1, 2},
		mech.State{0, 0}, mech.State{1.5, 0}, mech.State{0.5, 0})

	gap, err := ComponentDivergence(a, b, 0)
	if err != nil {
		t.Fatalf("ComponentDivergence: %v", err)
	}
	want := []float64{0, 0.5, 1.5}
	for i := range want {
		if gap[i] != want[i] {
			t.Errorf("gap[%d] = %g, want %g", i, gap[i], want[i])
		}
	}

	if _, err := ComponentDivergence(a, b, 5); !errors.Is(err, mech.ErrInvalidParameter) {
		t.Errorf("out-of-range component: err = %v, want ErrInvalidParameter", err)
	}
}

func TestDivergenceGridMismatch(t *testing.T) {
	a := makeTrajectory([]float64{0, 1}, mech.State{0}, mech.State{0})
	b := makeTrajectory([]float64{0, 2}, mech.State{0}, mech.State{0})
	if _, err := ComponentDivergence(a, b, 0); !errors.Is(err, mech.ErrInvalidParameter) {
		t.Errorf("different grids: err = %v, want ErrInvalidParameter", err)
	}

	c := makeTrajectory([]float64{0}, mech.State{0})
	if _, err := StateSeparation(a, c); !errors.Is(err, mech.ErrInvalidParameter) {
		t.Errorf("different lengths: err = %v, want ErrInvalidParameter", err)
	}
}

func TestStateSeparation(t *testing.T) {
	a := makeTrajectory([]float64{0, 1}, mech.State{0, 0}, mech.State{0, 0})
	b := makeTrajectory([]float64{0, 1}, mech.State{3, 4}, mech.State{0, 1})

	sep, err := StateSeparation(a, b)
	if err != nil {
		t.Fatalf("StateSeparation: %v", err)
	}
	if sep[0] != 5 || sep[1] != 1 {
		t.Errorf("sep = %v, want [5 1]", sep)
	}
}

func TestFirstExceed(t *testing.T) {
	times := []float64{0, 1, 2, 3}
	series := []float64{0.01, 0.05, 0.2, 0.9}

	at, ok := FirstExceed(times, series, 0.1)
	if !ok || at != 2 {
		t.Errorf("FirstExceed = (%g, %v), want (2, true)", at, ok)
	}
	if _, ok := FirstExceed(times, series, 10); ok {
		t.Error("threshold above the series should not be crossed")
	}
}

func TestMax(t *testing.T) {
	v, i := Max([]float64{1, 5, 3})
	if v != 5 || i != 1 {
		t.Errorf("Max = (%g, %d), want (5, 1)", v, i)
	}
	if _, i := Max(nil); i != -1 {
		t.Errorf("empty Max index = %d, want -1", i)
	}
}

func TestSeriesAndDrift(t *testing.T) {
	traj := makeTrajectory([]float64{0, 1, 2},
		mech.State{1, 1}, mech.State{1, 1.5}, mech.State{2, 0})

	sum := func(x mech.State) float64 { return x[0] + x[1] }
	series := Series(traj, sum)
	drift := Drift(series)

	if drift[0] != 0 {
		t.Errorf("drift[0] = %g, want 0", drift[0])
	}
	if drift[1] != 0.5 || drift[2] != 0 {
		t.Errorf("drift = %v, want [0 0.5 0]", drift)
	}
	if m := MaxAbs(drift); m != 0.5 {
		t.Errorf("MaxAbs = %g, want 0.5", m)
	}
}

func TestMaxStepChange(t *testing.T) {
	if m := MaxStepChange([]float64{1, 1.25, 1.2, 2.0}); m != 0.8 {
		t.Errorf("MaxStepChange = %g, want 0.8", m)
	}
	if m := MaxStepChange([]float64{3}); m != 0 {
		t.Errorf("single sample MaxStepChange = %g, want 0", m)
	}
}

func TestPowerSpectrumPeak(t *testing.T) {
	n := 64
	data := make([]float64, n)
	for i := range data {
		data[i] = math.Sin(2 * math.Pi * 4 * float64(i) / float64(n))
	}

	ps := PowerSpectrum(data)
	peak, at := Max(ps)
	if at != 4 {
		t.Errorf("peak at bin %d, want 4", at)
	}
	if math.Abs(peak-float64(n)/2) > 1e-9 {
		t.Errorf("peak magnitude = %g, want %g", peak, float64(n)/2)
	}
}

func TestDominantPeriodSine(t *testing.T) {
	const (
		dt     = 0.01
		period = 2.0
	)
	n := 1100
	times := make([]float64, n)
	series := make([]float64, n)
	for i := range times {
		times[i] = dt * float64(i)
		series[i] = 3 + math.Sin(2*math.Pi*times[i]/period)
	}

	got, ok := DominantPeriod(times, series)
	if !ok {
		t.Fatal("expected a period estimate")
	}
	if math.Abs(got-period) > 0.02*period {
		t.Errorf("DominantPeriod = %g, want %g within 2%%", got, period)
	}
}

func TestDominantPeriodFlat(t *testing.T) {
	times := make([]float64, 64)
	series := make([]float64, 64)
	for i := range times {
		times[i] = float64(i)
		series[i] = 7
	}
	if _, ok := DominantPeriod(times, series); ok {
		t.Error("constant series should have no period")
	}
}

func TestDominantPeriodShortSeries(t *testing.T) {
	if _, ok := DominantPeriod([]float64{0, 1}, []float64{1, 2}); ok {
		t.Error("two samples cannot carry a period")
	}
}
