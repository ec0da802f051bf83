package main

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/jackwarfield/5300-final-project/internal/analysis"
	"github.com/jackwarfield/5300-final-project/internal/config"
	"github.com/jackwarfield/5300-final-project/internal/mech"
	"github.com/jackwarfield/5300-final-project/internal/ode"
	"github.com/jackwarfield/5300-final-project/internal/physics"
	"github.com/jackwarfield/5300-final-project/internal/render"
	"github.com/jackwarfield/5300-final-project/internal/scenario"
	"github.com/jackwarfield/5300-final-project/internal/store"
	"github.com/spf13/cobra"
)

var (
	dataDir    string
	configFile string
	preset     string
	duration   float64
	step       float64
	integrator string
	absTol     float64
	relTol     float64
	substeps   int
	// double pendulum initial conditions
	theta1 float64
	omega1 float64
	theta2 float64
	omega2 float64
	// two-body collision threshold
	minSeparation float64
	// chaos twin-run controls
	delta     float64
	threshold float64
	// sweep range
	sweepFrom   float64
	sweepTo     float64
	sweepPoints int
	// analysis target
	component int
	// render output
	outDir string
	svgOut bool
	// playback
	frameRate int
	stride    int
	trail     int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "mechsim",
		Short: "lagrangian mechanics simulation lab",
		RunE: func(cmd *cobra.Command, args []string) error {
			// no subcommand: interactive preset browser
			return runInteractive()
		},
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".mechsim", "data directory")

	runCmd := &cobra.Command{
		Use:   "run [system]",
		Short: "integrate a scenario and save the trajectory",
		Args:  cobra.ExactArgs(1),
		RunE:  runSimulation,
	}
	addScenarioFlags(runCmd)

	chaosCmd := &cobra.Command{
		Use:   "chaos",
		Short: "twin double pendulum runs with a perturbed first angle",
		RunE:  chaosReport,
	}
	addScenarioFlags(chaosCmd)
	chaosCmd.Flags().Float64Var(&delta, "delta", 1e-6, "perturbation added to theta1")
	chaosCmd.Flags().Float64Var(&threshold, "threshold", 0.1, "divergence threshold (rad)")

	sweepCmd := &cobra.Command{
		Use:   "sweep",
		Short: "map divergence time across initial angles",
		RunE:  sweepPendulum,
	}
	addScenarioFlags(sweepCmd)
	sweepCmd.Flags().Float64Var(&sweepFrom, "from", 0.1, "first angle at the low end (rad)")
	sweepCmd.Flags().Float64Var(&sweepTo, "to", 3.0, "first angle at the high end (rad)")
	sweepCmd.Flags().IntVar(&sweepPoints, "points", 30, "number of angles to test")
	sweepCmd.Flags().Float64Var(&delta, "delta", 1e-6, "perturbation added to theta1")
	sweepCmd.Flags().Float64Var(&threshold, "threshold", 0.1, "divergence threshold (rad)")

	compareCmd := &cobra.Command{
		Use:   "compare [system] [integrator1] [integrator2] ...",
		Short: "run the same scenario under several integrators",
		Args:  cobra.MinimumNArgs(2),
		RunE:  compareIntegrators,
	}
	addScenarioFlags(compareCmd)

	batchCmd := &cobra.Command{
		Use:   "batch [file]",
		Short: "run every scenario in a batch file",
		Args:  cobra.ExactArgs(1),
		RunE:  runBatch,
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list saved runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "terminal plots of a saved run",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	analyzeCmd := &cobra.Command{
		Use:   "analyze [run_id]",
		Short: "frequency analysis of a saved run",
		Args:  cobra.ExactArgs(1),
		RunE:  analyzeRun,
	}
	analyzeCmd.Flags().IntVar(&component, "component", 0, "state component to analyze")

	renderCmd := &cobra.Command{
		Use:   "render [run_id]",
		Short: "write png images of a saved run",
		Args:  cobra.ExactArgs(1),
		RunE:  renderRun,
	}
	renderCmd.Flags().StringVar(&outDir, "out", ".", "output directory")
	renderCmd.Flags().BoolVar(&svgOut, "svg", false, "also write an svg trace")

	animateCmd := &cobra.Command{
		Use:   "animate [system]",
		Short: "integrate a scenario and play it in the terminal",
		Args:  cobra.ExactArgs(1),
		RunE:  animateScenario,
	}
	addScenarioFlags(animateCmd)
	addPlaybackFlags(animateCmd)

	replayCmd := &cobra.Command{
		Use:   "replay [run_id]",
		Short: "play a saved run in the terminal",
		Args:  cobra.ExactArgs(1),
		RunE:  replayRun,
	}
	addPlaybackFlags(replayCmd)

	exportCmd := &cobra.Command{
		Use:   "export [run_id]",
		Short: "print run metadata as json",
		Args:  cobra.ExactArgs(1),
		RunE:  exportRun,
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "print run data as csv",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSVRun,
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "print run data as json",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSONRun,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets [system]",
		Short: "list presets and integrators",
		Args:  cobra.MaximumNArgs(1),
		RunE:  listPresets,
	}

	configCmd := &cobra.Command{
		Use:   "config [path]",
		Short: "write a starter scenario file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := config.Save(args[0], config.DefaultScenario()); err != nil {
				return err
			}
			fmt.Printf("wrote %s\n", args[0])
			return nil
		},
	}

	rootCmd.AddCommand(runCmd, chaosCmd, sweepCmd, compareCmd, batchCmd, listCmd,
		plotCmd, analyzeCmd, renderCmd, animateCmd, replayCmd, exportCmd,
		exportCSVCmd, exportJSONCmd, presetsCmd, configCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addScenarioFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringVar(&configFile, "config", "", "scenario file (yaml)")
	f.StringVar(&preset, "preset", "", "preset name")
	f.Float64Var(&duration, "time", config.DefaultDuration, "simulated duration")
	f.Float64Var(&step, "step", config.DefaultStep, "output grid spacing")
	f.StringVar(&integrator, "integrator", "dopri5", "integration method")
	f.Float64Var(&absTol, "abs-tol", ode.DefaultAbsTol, "absolute tolerance (dopri5)")
	f.Float64Var(&relTol, "rel-tol", ode.DefaultRelTol, "relative tolerance (dopri5)")
	f.IntVar(&substeps, "substeps", 1, "substeps per grid interval (euler, rk4)")
	f.Float64Var(&theta1, "theta1", config.DefaultTheta, "first angle (double_pendulum)")
	f.Float64Var(&omega1, "omega1", 0, "first angular velocity (double_pendulum)")
	f.Float64Var(&theta2, "theta2", config.DefaultTheta, "second angle (double_pendulum)")
	f.Float64Var(&omega2, "omega2", 0, "second angular velocity (double_pendulum)")
	f.Float64Var(&minSeparation, "min-separation", 0, "collision threshold (two_body)")
}

func addPlaybackFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.IntVar(&frameRate, "fps", 30, "frame rate")
	f.IntVar(&stride, "stride", 1, "trajectory points per frame")
	f.IntVar(&trail, "trail", 300, "trail length in points")
}

// loadScenario resolves precedence: defaults, then preset, then config
// file, then explicitly set flags.
func loadScenario(cmd *cobra.Command, system string) (*config.Scenario, error) {
	cfg := config.DefaultScenario()

	if preset != "" {
		p := config.GetPreset(system, preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets(system))
		}
		cfg = p
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	cfg.System = system

	flags := cmd.Flags()
	if flags.Changed("time") {
		cfg.Duration = duration
	}
	if flags.Changed("step") {
		cfg.Step = step
	}
	if flags.Changed("integrator") {
		cfg.Integrator = integrator
	}
	if flags.Changed("abs-tol") {
		cfg.AbsTol = absTol
	}
	if flags.Changed("rel-tol") {
		cfg.RelTol = relTol
	}
	if flags.Changed("substeps") {
		cfg.Substeps = substeps
	}
	if flags.Changed("theta1") {
		cfg.Pendulum.Theta1 = theta1
	}
	if flags.Changed("omega1") {
		cfg.Pendulum.Omega1 = omega1
	}
	if flags.Changed("theta2") {
		cfg.Pendulum.Theta2 = theta2
	}
	if flags.Changed("omega2") {
		cfg.Pendulum.Omega2 = omega2
	}
	if flags.Changed("min-separation") {
		cfg.TwoBody.MinSeparation = minSeparation
	}
	return cfg, nil
}

func runSimulation(cmd *cobra.Command, args []string) error {
	cfg, err := loadScenario(cmd, args[0])
	if err != nil {
		return err
	}

	run, err := scenario.Build(cfg)
	if err != nil {
		return err
	}

	st := store.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	fmt.Printf("running %s with %s...\n", cfg.System, run.Method.Name())
	start := time.Now()
	traj, err := run.Execute()
	elapsed := time.Since(start)
	if err != nil {
		return err
	}

	diag := diagnostics(run, traj)

	runID, err := st.Save(cfg, traj, labels(run.System), diag)
	if err != nil {
		return err
	}

	fmt.Printf("completed in %v\n", elapsed)
	fmt.Printf("run id: %s\n", runID)
	fmt.Printf("points: %d  steps: %d  rejected: %d  evals: %d\n",
		traj.Len(), traj.Stats.Steps, traj.Stats.Rejected, traj.Stats.Evals)
	printDiagnostics(diag)
	return nil
}

// diagnostics summarizes conservation quality and, for orbits, the
// measured period against the Kepler prediction.
func diagnostics(run *scenario.Run, traj *mech.Trajectory) map[string]float64 {
	diag := map[string]float64{}
	if traj.Len() == 0 {
		return diag
	}

	if h, ok := run.System.(mech.Hamiltonian); ok {
		energy := analysis.Series(traj, h.Energy)
		diag["energy_drift"] = analysis.MaxAbs(analysis.Drift(energy))
	}

	if tb, ok := run.System.(*physics.TwoBody); ok {
		px := analysis.Series(traj, func(x mech.State) float64 { p, _ := tb.Momentum(x); return p })
		py := analysis.Series(traj, func(x mech.State) float64 { _, p := tb.Momentum(x); return p })
		diag["momentum_x_drift"] = analysis.MaxAbs(analysis.Drift(px))
		diag["momentum_y_drift"] = analysis.MaxAbs(analysis.Drift(py))

		ang := analysis.Series(traj, tb.AngularMomentum)
		diag["angular_momentum_drift"] = analysis.MaxAbs(analysis.Drift(ang))

		diag["initial_separation"] = tb.R0
		if kepler, ok := tb.KeplerPeriod(traj.States[0]); ok {
			diag["kepler_period"] = kepler
		}
		sep := analysis.Series(traj, tb.Separation)
		if period, ok := analysis.DominantPeriod(traj.Times, sep); ok {
			diag["measured_period"] = period
		}
	}
	return diag
}

func printDiagnostics(diag map[string]float64) {
	if len(diag) == 0 {
		return
	}
	names := make([]string, 0, len(diag))
	for name := range diag {
		names = append(names, name)
	}
	sort.Strings(names)

	fmt.Println("\ndiagnostics:")
	for _, name := range names {
		fmt.Printf("  %s: %.6g\n", name, diag[name])
	}
}

// labels asks the system for its state component names.
func labels(sys mech.System) []string {
	type labeled interface{ Labels() []string }
	if l, ok := sys.(labeled); ok {
		return l.Labels()
	}
	return nil
}

func chaosReport(cmd *cobra.Command, args []string) error {
	cfg, err := loadScenario(cmd, "double_pendulum")
	if err != nil {
		return err
	}
	run, err := scenario.Build(cfg)
	if err != nil {
		return err
	}

	perturbed := run.X0.Clone()
	perturbed[0] += delta

	fmt.Printf("running twin pendulums, theta1 offset %g...\n", delta)
	trajs, err := ode.Ensemble(run.Method, run.System, []mech.State{run.X0, perturbed}, run.Times)
	if err != nil {
		return err
	}

	gap, err := analysis.ComponentDivergence(trajs[0], trajs[1], 0)
	if err != nil {
		return err
	}
	sep, err := analysis.StateSeparation(trajs[0], trajs[1])
	if err != nil {
		return err
	}

	maxGap, at := analysis.Max(gap)
	fmt.Printf("max theta1 gap: %.6g at t=%.2f\n", maxGap, trajs[0].Times[at])
	if t, ok := analysis.FirstExceed(trajs[0].Times, gap, threshold); ok {
		fmt.Printf("gap first exceeds %g rad at t=%.2f\n", threshold, t)
	} else {
		fmt.Printf("gap never exceeds %g rad\n", threshold)
	}

	fmt.Println()
	fmt.Println(render.SeriesPlot(logSeries(sep), 80, 12, "log10 state separation"))
	return nil
}

func sweepPendulum(cmd *cobra.Command, args []string) error {
	cfg, err := loadScenario(cmd, "double_pendulum")
	if err != nil {
		return err
	}

	fmt.Printf("sweeping theta1 over [%g, %g], %d points...\n", sweepFrom, sweepTo, sweepPoints)
	points, err := scenario.DivergenceSweep(cfg, sweepFrom, sweepTo, sweepPoints, delta, threshold)
	if err != nil {
		return err
	}

	// divergence time per angle, capped at the duration for angles that
	// never crossed the threshold
	times := make([]float64, len(points))
	diverged := 0
	for i, p := range points {
		times[i] = cfg.Start + cfg.Duration
		if p.Diverged {
			times[i] = p.At
			diverged++
		}
	}

	caption := fmt.Sprintf("time to %g rad divergence vs theta1 [%g, %g] (capped at %g)",
		threshold, sweepFrom, sweepTo, cfg.Start+cfg.Duration)
	fmt.Println(render.SeriesPlot(times, 80, 12, caption))
	fmt.Printf("\n%d of %d angles diverged within %g time units\n", diverged, len(points), cfg.Duration)
	return nil
}

// logSeries maps a positive series to log10, clamping non-positive
// entries to the smallest positive one.
func logSeries(series []float64) []float64 {
	floor := math.Inf(1)
	for _, v := range series {
		if v > 0 && v < floor {
			floor = v
		}
	}
	if math.IsInf(floor, 1) {
		floor = 1e-300
	}

	out := make([]float64, len(series))
	for i, v := range series {
		if v < floor {
			v = floor
		}
		out[i] = math.Log10(v)
	}
	return out
}

func compareIntegrators(cmd *cobra.Command, args []string) error {
	system := args[0]
	methods := args[1:]

	cfg, err := loadScenario(cmd, system)
	if err != nil {
		return err
	}

	fmt.Printf("comparing integrators on %s (step=%g, duration=%g)\n\n", system, cfg.Step, cfg.Duration)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "METHOD\tSTEPS\tEVALS\tENERGY_DRIFT\tFINAL_X0\tTIME")

	for _, name := range methods {
		mcfg := *cfg
		mcfg.Integrator = name

		run, err := scenario.Build(&mcfg)
		if err != nil {
			fmt.Fprintf(w, "%s\terror: %v\n", name, err)
			continue
		}

		start := time.Now()
		traj, err := run.Execute()
		elapsed := time.Since(start)
		if err != nil {
			fmt.Fprintf(w, "%s\terror: %v\n", name, err)
			continue
		}

		drift := math.NaN()
		if h, ok := run.System.(mech.Hamiltonian); ok {
			drift = analysis.MaxAbs(analysis.Drift(analysis.Series(traj, h.Energy)))
		}
		finalX0 := traj.States[traj.Len()-1][0]

		fmt.Fprintf(w, "%s\t%d\t%d\t%.3e\t%.6f\t%v\n",
			name, traj.Stats.Steps, traj.Stats.Evals, drift, finalX0,
			elapsed.Round(time.Microsecond))
	}
	return w.Flush()
}

func runBatch(cmd *cobra.Command, args []string) error {
	b, err := config.LoadBatch(args[0])
	if err != nil {
		return err
	}

	st := store.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	if b.Name != "" {
		fmt.Printf("batch: %s\n", b.Name)
	}
	for i, cfg := range b.Scenarios {
		fmt.Printf("running %d/%d: %s...\n", i+1, len(b.Scenarios), cfg.System)

		run, err := scenario.Build(cfg)
		if err != nil {
			return fmt.Errorf("scenario %d: %w", i+1, err)
		}
		traj, err := run.Execute()
		if err != nil {
			return fmt.Errorf("scenario %d: %w", i+1, err)
		}

		runID, err := st.Save(cfg, traj, labels(run.System), diagnostics(run, traj))
		if err != nil {
			return fmt.Errorf("scenario %d: %w", i+1, err)
		}
		fmt.Printf("  saved %s (%d points)\n", runID, traj.Len())
	}
	return nil
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := store.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tSYSTEM\tTIME\tDURATION\tMETHOD\tSTEPS\tREJECTED")
	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%.2f\t%s\t%d\t%d\n",
			run.ID,
			run.Scenario.System,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Scenario.Duration,
			run.Scenario.Integrator,
			run.Steps,
			run.Rejected,
		)
	}
	return w.Flush()
}

// loadRun pulls a saved run back into a live form: its metadata, its
// trajectory, and a rebuilt Run for the system and labels.
func loadRun(st *store.Store, runID string) (*store.RunMetadata, *mech.Trajectory, *scenario.Run, error) {
	meta, err := st.Load(runID)
	if err != nil {
		return nil, nil, nil, err
	}
	traj, err := st.LoadStates(runID)
	if err != nil {
		return nil, nil, nil, err
	}
	run, err := scenario.Build(meta.Scenario)
	if err != nil {
		return nil, nil, nil, err
	}
	return meta, traj, run, nil
}

func plotRun(cmd *cobra.Command, args []string) error {
	st := store.New(dataDir)
	meta, traj, run, err := loadRun(st, args[0])
	if err != nil {
		return err
	}
	if traj.Len() == 0 {
		return fmt.Errorf("no data to plot")
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("system: %s\n", meta.Scenario.System)
	fmt.Printf("samples: %d\n\n", traj.Len())

	names := labels(run.System)
	for idx := range traj.States[0] {
		caption := fmt.Sprintf("x%d vs time", idx)
		if idx < len(names) {
			caption = names[idx] + " vs time"
		}
		fmt.Println(render.SeriesPlot(traj.Component(idx), 80, 10, caption))
		fmt.Println()
	}
	return nil
}

func analyzeRun(cmd *cobra.Command, args []string) error {
	st := store.New(dataDir)
	meta, traj, run, err := loadRun(st, args[0])
	if err != nil {
		return err
	}
	if traj.Len() == 0 {
		return fmt.Errorf("no data")
	}
	if component < 0 || component >= len(traj.States[0]) {
		return fmt.Errorf("component %d out of range [0,%d)", component, len(traj.States[0]))
	}

	series := traj.Component(component)
	name := fmt.Sprintf("x%d", component)
	if names := labels(run.System); component < len(names) {
		name = names[component]
	}

	fmt.Printf("frequency analysis: %s\n", meta.ID)
	fmt.Printf("component: %s\n\n", name)

	ps := analysis.PowerSpectrum(series)
	if len(ps) > 4 {
		ps = ps[:len(ps)/4]
	}
	fmt.Println(render.SeriesPlot(ps, 80, 15, "power spectrum ("+name+")"))
	fmt.Println()

	if period, ok := analysis.DominantPeriod(traj.Times, series); ok {
		fmt.Printf("dominant period: %.4f\n", period)
		fmt.Printf("dominant frequency: %.4f\n", 1/period)
	} else {
		fmt.Println("no dominant period found")
	}

	if tb, ok := run.System.(*physics.TwoBody); ok {
		sep := analysis.Series(traj, tb.Separation)
		if period, ok := analysis.DominantPeriod(traj.Times, sep); ok {
			fmt.Printf("separation period: %.4f\n", period)
		}
		if kepler, ok := tb.KeplerPeriod(traj.States[0]); ok {
			fmt.Printf("kepler period: %.4f\n", kepler)
		}
	}
	return nil
}

func renderRun(cmd *cobra.Command, args []string) error {
	st := store.New(dataDir)
	meta, traj, run, err := loadRun(st, args[0])
	if err != nil {
		return err
	}
	if traj.Len() == 0 {
		return fmt.Errorf("no data to render")
	}

	if err := os.MkdirAll(outDir, 0755); err != nil {
		return err
	}

	var files []string
	switch sys := run.System.(type) {
	case *physics.DoublePendulum:
		path := filepath.Join(outDir, meta.ID+"_pendulum.png")
		if err := render.SavePendulumPNG(path, sys, traj); err != nil {
			return err
		}
		files = append(files, path)

		path = filepath.Join(outDir, meta.ID+"_theta1.png")
		if err := render.SaveSeriesPNG(path, "first angle", "time", "theta1 (rad)", traj.Times, traj.Component(0)); err != nil {
			return err
		}
		files = append(files, path)

		path = filepath.Join(outDir, meta.ID+"_theta2.png")
		if err := render.SaveSeriesPNG(path, "second angle", "time", "theta2 (rad)", traj.Times, traj.Component(2)); err != nil {
			return err
		}
		files = append(files, path)

	case *physics.TwoBody:
		path := filepath.Join(outDir, meta.ID+"_orbit.png")
		if err := render.SaveOrbitPNG(path, sys, traj); err != nil {
			return err
		}
		files = append(files, path)

		path = filepath.Join(outDir, meta.ID+"_separation.png")
		sep := analysis.Series(traj, sys.Separation)
		if err := render.SaveSeriesPNG(path, "separation", "time", "|r2 - r1|", traj.Times, sep); err != nil {
			return err
		}
		files = append(files, path)
	}

	if svgOut {
		path, err := writeTraceSVG(outDir, meta.ID, run.System, traj)
		if err != nil {
			return err
		}
		files = append(files, path)
	}

	for _, f := range files {
		fmt.Println(f)
	}
	return nil
}

// writeTraceSVG dumps the second body's path (the pendulum tip, or the
// lighter orbiting body) as a standalone svg.
func writeTraceSVG(dir, runID string, sys mech.System, traj *mech.Trajectory) (string, error) {
	type positioned interface {
		Positions(mech.State) (float64, float64, float64, float64)
	}
	p, ok := sys.(positioned)
	if !ok {
		return "", fmt.Errorf("%s has no planar positions", sys.Name())
	}

	xs := make([]float64, traj.Len())
	ys := make([]float64, traj.Len())
	for i, x := range traj.States {
		_, _, xs[i], ys[i] = p.Positions(x)
	}

	path := filepath.Join(dir, runID+"_trace.svg")
	svg := render.PathSVG(xs, ys, 800, 600, "#1f77b4")
	if err := os.WriteFile(path, []byte(svg), 0644); err != nil {
		return "", err
	}
	return path, nil
}

func animateScenario(cmd *cobra.Command, args []string) error {
	cfg, err := loadScenario(cmd, args[0])
	if err != nil {
		return err
	}
	run, err := scenario.Build(cfg)
	if err != nil {
		return err
	}

	fmt.Printf("integrating %s...\n", cfg.System)
	traj, err := run.Execute()
	if err != nil {
		return err
	}

	return play(run.System, traj)
}

func replayRun(cmd *cobra.Command, args []string) error {
	st := store.New(dataDir)
	_, traj, run, err := loadRun(st, args[0])
	if err != nil {
		return err
	}
	if traj.Len() == 0 {
		return fmt.Errorf("no data to replay")
	}
	return play(run.System, traj)
}

func play(sys mech.System, traj *mech.Trajectory) error {
	player := render.NewPlayer(sys, traj, render.PlayerOptions{
		FPS:    frameRate,
		Stride: stride,
		Trail:  trail,
	})
	p := tea.NewProgram(player)
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}

func exportRun(cmd *cobra.Command, args []string) error {
	st := store.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(meta)
}

func exportCSVRun(cmd *cobra.Command, args []string) error {
	st := store.New(dataDir)
	_, traj, run, err := loadRun(st, args[0])
	if err != nil {
		return err
	}
	return store.ExportCSV(os.Stdout, traj, labels(run.System))
}

func exportJSONRun(cmd *cobra.Command, args []string) error {
	st := store.New(dataDir)
	meta, traj, run, err := loadRun(st, args[0])
	if err != nil {
		return err
	}
	return store.ExportJSON(os.Stdout, meta.Scenario, traj, labels(run.System), meta.Diagnostics)
}

// runInteractive opens the preset browser. Selecting an entry
// integrates it and hands the trajectory to the playback view.
func runInteractive() error {
	var entries []render.MenuEntry
	for _, system := range config.Systems() {
		for _, name := range config.ListPresets(system) {
			sc := config.GetPreset(system, name)
			entries = append(entries, render.MenuEntry{
				System: system,
				Preset: name,
				Detail: fmt.Sprintf("%gs @ %s", sc.Duration, sc.Integrator),
			})
		}
	}

	build := func(e render.MenuEntry) (render.Player, error) {
		run, err := scenario.Build(config.GetPreset(e.System, e.Preset))
		if err != nil {
			return render.Player{}, err
		}
		traj, err := run.Execute()
		if err != nil {
			return render.Player{}, err
		}
		return render.NewPlayer(run.System, traj, render.PlayerOptions{}), nil
	}

	p := tea.NewProgram(render.NewLauncher(entries, build))
	_, err := p.Run()
	return err
}

func listPresets(cmd *cobra.Command, args []string) error {
	systems := config.Systems()
	if len(args) == 1 {
		systems = args[:1]
	}

	for _, system := range systems {
		names := config.ListPresets(system)
		if len(names) == 0 {
			fmt.Printf("no presets for system: %s\n", system)
			continue
		}
		fmt.Printf("%s:\n", system)
		for _, name := range names {
			fmt.Printf("  %s\n", name)
		}
	}

	fmt.Printf("\nintegrators: %s\n", strings.Join(scenario.Integrators(), ", "))
	return nil
}
