package scenario_test

import (
	"errors"
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/jackwarfield/5300-final-project/internal/analysis"
	"github.com/jackwarfield/5300-final-project/internal/config"
	"github.com/jackwarfield/5300-final-project/internal/mech"
	"github.com/jackwarfield/5300-final-project/internal/ode"
	"github.com/jackwarfield/5300-final-project/internal/physics"
	"github.com/jackwarfield/5300-final-project/internal/scenario"
)

func execute(cfg *config.Scenario) (*scenario.Run, *mech.Trajectory) {
	GinkgoHelper()
	run, err := scenario.Build(cfg)
	Expect(err).NotTo(HaveOccurred())
	traj, err := run.Execute()
	Expect(err).NotTo(HaveOccurred())
	return run, traj
}

var _ = Describe("Two-body integration", func() {
	It("keeps the heavy-primary orbit bounded", func() {
		run, traj := execute(config.GetPreset("two_body", "heavy_primary"))
		Expect(traj.Len()).To(Equal(3001))

		sys := run.System.(*physics.TwoBody)
		minR, maxR, maxPrimary := math.Inf(1), 0.0, 0.0
		for _, x := range traj.States {
			r := sys.Separation(x)
			minR = math.Min(minR, r)
			maxR = math.Max(maxR, r)
			x1, y1, _, _ := sys.Positions(x)
			maxPrimary = math.Max(maxPrimary, math.Hypot(x1, y1))
		}

		Expect(minR).To(BeNumerically(">", 1.4), "secondary fell inward")
		Expect(maxR).To(BeNumerically("<", 4.8), "secondary escaped")
		Expect(maxPrimary).To(BeNumerically("<", 0.1), "primary wandered from the origin")
	})

	It("holds energy and momentum through a full run", func() {
		run, traj := execute(config.GetPreset("two_body", "heavy_primary"))
		sys := run.System.(*physics.TwoBody)

		energy := analysis.Series(traj, sys.Energy)
		Expect(analysis.MaxAbs(analysis.Drift(energy))).To(BeNumerically("<", 1e-5))

		px := analysis.Series(traj, func(x mech.State) float64 { p, _ := sys.Momentum(x); return p })
		py := analysis.Series(traj, func(x mech.State) float64 { _, p := sys.Momentum(x); return p })
		Expect(analysis.MaxAbs(analysis.Drift(px))).To(BeNumerically("<", 1e-5))
		Expect(analysis.MaxAbs(analysis.Drift(py))).To(BeNumerically("<", 1e-5))
	})

	It("conserves momentum more tightly as tolerances shrink", func() {
		loose := config.GetPreset("two_body", "heavy_primary")
		loose.AbsTol, loose.RelTol = 1e-6, 1e-6
		tight := config.GetPreset("two_body", "heavy_primary")
		tight.AbsTol, tight.RelTol = 1e-12, 1e-12

		stepChange := func(cfg *config.Scenario) float64 {
			run, traj := execute(cfg)
			sys := run.System.(*physics.TwoBody)
			px := analysis.Series(traj, func(x mech.State) float64 { p, _ := sys.Momentum(x); return p })
			py := analysis.Series(traj, func(x mech.State) float64 { _, p := sys.Momentum(x); return p })
			return math.Max(analysis.MaxStepChange(px), analysis.MaxStepChange(py))
		}

		looseChange := stepChange(loose)
		tightChange := stepChange(tight)
		Expect(tightChange).To(BeNumerically("<", looseChange))
		Expect(tightChange).To(BeNumerically("<", 1e-8))
	})

	It("stops with a singularity error when the bodies fall together", func() {
		sys, x0, err := physics.NewTwoBody(1,
			physics.Body{Mass: 1, X: -0.5},
			physics.Body{Mass: 1, X: 0.5})
		Expect(err).NotTo(HaveOccurred())
		sys.MinSeparation = 1e-3

		times := make([]float64, 201)
		for i := range times {
			times[i] = 0.01 * float64(i)
		}

		_, err = ode.Integrate(sys, x0, times, ode.DefaultOptions())
		Expect(err).To(MatchError(mech.ErrSingularConfiguration))

		var se *mech.StepError
		Expect(errors.As(err, &se)).To(BeTrue())
		Expect(se.Time).To(BeNumerically("~", math.Pi/4, 0.05), "free-fall collision time")
		Expect(sys.Separation(se.State)).To(BeNumerically("<", 1e-3))
	})

	It("rejects coincident initial positions outright", func() {
		_, _, err := physics.NewTwoBody(1,
			physics.Body{Mass: 1},
			physics.Body{Mass: 1})
		Expect(err).To(MatchError(mech.ErrSingularConfiguration))
	})
})

var _ = Describe("Double pendulum integration", func() {
	It("amplifies a 1e-6 rad perturbation at high energy", func() {
		base := config.GetPreset("double_pendulum", "chaos")
		perturbed := config.GetPreset("double_pendulum", "chaos")
		perturbed.Pendulum.Theta1 += 1e-6

		_, ta := execute(base)
		_, tb := execute(perturbed)

		gap, err := analysis.ComponentDivergence(ta, tb, 0)
		Expect(err).NotTo(HaveOccurred())

		maxGap, _ := analysis.Max(gap)
		Expect(maxGap).To(BeNumerically(">", 0.1))

		crossed, ok := analysis.FirstExceed(ta.Times, gap, 0.1)
		Expect(ok).To(BeTrue())
		Expect(crossed).To(BeNumerically("<", 25), "divergence should land well before the horizon")
	})

	It("keeps the same perturbation bounded in the small-angle regime", func() {
		base := config.GetPreset("double_pendulum", "small_angle")
		perturbed := config.GetPreset("double_pendulum", "small_angle")
		perturbed.Pendulum.Theta1 += 1e-6

		_, ta := execute(base)
		_, tb := execute(perturbed)

		gap, err := analysis.ComponentDivergence(ta, tb, 0)
		Expect(err).NotTo(HaveOccurred())

		maxGap, _ := analysis.Max(gap)
		Expect(maxGap).To(BeNumerically("<", 0.01))
	})

	It("holds energy through a chaotic run", func() {
		run, traj := execute(config.GetPreset("double_pendulum", "chaos"))
		sys := run.System.(*physics.DoublePendulum)

		energy := analysis.Series(traj, sys.Energy)
		Expect(analysis.MaxAbs(analysis.Drift(energy))).To(BeNumerically("<", 1e-5))
	})

	It("returns the supplied initial state exactly at t=0", func() {
		run, traj := execute(config.DefaultScenario())
		Expect(traj.States[0]).To(Equal(run.X0))
	})

	It("returns only the initial state for a single-point grid", func() {
		cfg := config.DefaultScenario()
		cfg.Duration = 0

		run, traj := execute(cfg)
		Expect(traj.Len()).To(Equal(1))
		Expect(traj.States[0]).To(Equal(run.X0))
		Expect(traj.Stats.Steps).To(BeZero())
	})
})

var _ = Describe("Reproducibility", func() {
	It("reproduces a trajectory bitwise on a second run", func() {
		cfg := config.GetPreset("two_body", "heavy_primary")
		cfg.Duration = 5

		_, first := execute(cfg)
		_, second := execute(cfg)

		Expect(second.Len()).To(Equal(first.Len()))
		for i := range first.States {
			Expect(second.States[i]).To(Equal(first.States[i]))
		}
	})
})
