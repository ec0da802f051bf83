package ode

import (
	"fmt"
	"math"

	"github.com/jackwarfield/5300-final-project/internal/mech"
)

// Dormand-Prince 5(4) coefficients (Dormand & Prince 1980).
var (
	a2 = 1.0 / 5.0
	a3 = 3.0 / 10.0
	a4 = 4.0 / 5.0
	a5 = 8.0 / 9.0

	b21 = 1.0 / 5.0
	b31 = 3.0 / 40.0
	b32 = 9.0 / 40.0
	b41 = 44.0 / 45.0
	b42 = -56.0 / 15.0
	b43 = 32.0 / 9.0
	b51 = 19372.0 / 6561.0
	b52 = -25360.0 / 2187.0
	b53 = 64448.0 / 6561.0
	b54 = -212.0 / 729.0
	b61 = 9017.0 / 3168.0
	b62 = -355.0 / 33.0
	b63 = 46732.0 / 5247.0
	b64 = 49.0 / 176.0
	b65 = -5103.0 / 18656.0

	c1 = 35.0 / 384.0
	c3 = 500.0 / 1113.0
	c4 = 125.0 / 192.0
	c5 = -2187.0 / 6784.0
	c6 = 11.0 / 84.0

	// fifth-order weights minus the embedded fourth-order weights
	dc1 = c1 - 5179.0/57600.0
	dc3 = c3 - 7571.0/16695.0
	dc4 = c4 - 393.0/640.0
	dc5 = c5 - -92097.0/339200.0
	dc6 = c6 - 187.0/2100.0
	dc7 = -1.0 / 40.0

	// dense-output weights (Hairer, Norsett & Wanner, DOPRI5 continuous
	// extension)
	d1 = -12715105075.0 / 11282082432.0
	d3 = 87487479700.0 / 32700410799.0
	d4 = -10690763975.0 / 1880347072.0
	d5 = 701980252875.0 / 199316789632.0
	d6 = -1453857185.0 / 822651844.0
	d7 = 69997945.0 / 29380423.0
)

// Dopri5 is the adaptive Dormand-Prince 5(4) integrator. Internal steps are
// chosen to hold the per-component scaled error below one; requested grid
// times inside an accepted step are filled from the method's fourth-order
// dense interpolant, so output never depends on where the step boundaries
// happen to land.
type Dopri5 struct {
	opts     Options
	safety   float64
	minScale float64
	maxScale float64
}

func NewDopri5(opts Options) *Dopri5 {
	return &Dopri5{
		opts:     opts,
		safety:   0.9,
		minScale: 0.2,
		maxScale: 10.0,
	}
}

func (d *Dopri5) Name() string { return "dopri5" }

// trial holds one attempted step: the fifth-order solution, the stages the
// error estimate and dense interpolant need, and the scaled error norm.
type trial struct {
	y1                     mech.State
	k1, k3, k4, k5, k6, k7 mech.State
	errNorm                float64
}

func (d *Dopri5) attempt(sys mech.System, y mech.State, t, h, atol, rtol float64) trial {
	n := len(y)

	k1 := sys.Derivative(t, y)

	y2 := make(mech.State, n)
	for i := 0; i < n; i++ {
		y2[i] = y[i] + h*b21*k1[i]
	}
	k2 := sys.Derivative(t+a2*h, y2)

	y3 := make(mech.State, n)
	for i := 0; i < n; i++ {
		y3[i] = y[i] + h*(b31*k1[i]+b32*k2[i])
	}
	k3 := sys.Derivative(t+a3*h, y3)

	y4 := make(mech.State, n)
	for i := 0; i < n; i++ {
		y4[i] = y[i] + h*(b41*k1[i]+b42*k2[i]+b43*k3[i])
	}
	k4 := sys.Derivative(t+a4*h, y4)

	y5 := make(mech.State, n)
	for i := 0; i < n; i++ {
		y5[i] = y[i] + h*(b51*k1[i]+b52*k2[i]+b53*k3[i]+b54*k4[i])
	}
	k5 := sys.Derivative(t+a5*h, y5)

	y6 := make(mech.State, n)
	for i := 0; i < n; i++ {
		y6[i] = y[i] + h*(b61*k1[i]+b62*k2[i]+b63*k3[i]+b64*k4[i]+b65*k5[i])
	}
	k6 := sys.Derivative(t+h, y6)

	y1 := make(mech.State, n)
	for i := 0; i < n; i++ {
		y1[i] = y[i] + h*(c1*k1[i]+c3*k3[i]+c4*k4[i]+c5*k5[i]+c6*k6[i])
	}
	k7 := sys.Derivative(t+h, y1)

	sumsq := 0.0
	for i := 0; i < n; i++ {
		est := h * (dc1*k1[i] + dc3*k3[i] + dc4*k4[i] + dc5*k5[i] + dc6*k6[i] + dc7*k7[i])
		sc := atol + rtol*math.Max(math.Abs(y[i]), math.Abs(y1[i]))
		e := est / sc
		sumsq += e * e
	}

	return trial{
		y1: y1, k1: k1, k3: k3, k4: k4, k5: k5, k6: k6, k7: k7,
		errNorm: math.Sqrt(sumsq / float64(n)),
	}
}

// dense holds the interpolation polynomial of one accepted step [t, t+h].
type dense struct {
	t, h   float64
	rcont  [5]mech.State
	length int
}

func newDense(y mech.State, st trial, t, h float64) *dense {
	n := len(y)
	dn := &dense{t: t, h: h, length: n}
	for j := range dn.rcont {
		dn.rcont[j] = make(mech.State, n)
	}
	for i := 0; i < n; i++ {
		dy := st.y1[i] - y[i]
		bspl := h*st.k1[i] - dy
		dn.rcont[0][i] = y[i]
		dn.rcont[1][i] = dy
		dn.rcont[2][i] = bspl
		dn.rcont[3][i] = dy - h*st.k7[i] - bspl
		dn.rcont[4][i] = h * (d1*st.k1[i] + d3*st.k3[i] + d4*st.k4[i] +
			d5*st.k5[i] + d6*st.k6[i] + d7*st.k7[i])
	}
	return dn
}

// at evaluates the interpolant at time tq inside the step.
func (dn *dense) at(tq float64) mech.State {
	theta := (tq - dn.t) / dn.h
	out := make(mech.State, dn.length)
	for i := 0; i < dn.length; i++ {
		s := dn.rcont[3][i] + (1-theta)*dn.rcont[4][i]
		s = dn.rcont[2][i] + theta*s
		out[i] = dn.rcont[0][i] + theta*(dn.rcont[1][i]+(1-theta)*s)
	}
	return out
}

func (d *Dopri5) Integrate(sys mech.System, x0 mech.State, times []float64) (*mech.Trajectory, error) {
	if err := d.opts.validate(); err != nil {
		return nil, err
	}
	traj, err := prepare(sys, x0, times)
	if err != nil {
		return nil, err
	}
	if len(times) == 1 {
		return traj, nil
	}

	tEnd := times[len(times)-1]
	opts := d.opts.withDefaults(tEnd - times[0])

	t := times[0]
	y := x0.Clone()
	h := opts.InitialStep
	next := 1

	for next < len(times) {
		if traj.Stats.Steps+traj.Stats.Rejected >= opts.MaxSteps {
			return nil, mech.NewStepError(t, y, fmt.Errorf(
				"%w: step budget exhausted after %d accepted and %d rejected steps",
				mech.ErrNonConvergence, traj.Stats.Steps, traj.Stats.Rejected))
		}
		if h > opts.MaxStep {
			h = opts.MaxStep
		}
		final := false
		if h >= tEnd-t {
			h = tEnd - t
			final = true
		}
		if t+h == t {
			return nil, mech.NewStepError(t, y, fmt.Errorf(
				"%w: step size underflow (h = %g at t = %g)", mech.ErrNonConvergence, h, t))
		}

		st := d.attempt(sys, y, t, h, opts.AbsTol, opts.RelTol)
		traj.Stats.Evals += 7

		if !(st.errNorm <= 1) {
			traj.Stats.Rejected++
			fac := d.safety * math.Pow(st.errNorm, -0.25)
			if math.IsNaN(fac) || fac < d.minScale {
				fac = d.minScale
			}
			h *= fac
			if h < opts.MinStep {
				return nil, mech.NewStepError(t, y, fmt.Errorf(
					"%w: step size %g below minimum %g", mech.ErrNonConvergence, h, opts.MinStep))
			}
			continue
		}

		traj.Stats.Steps++
		traj.Stats.LastStep = h

		t1 := t + h
		if final {
			t1 = tEnd
		}
		if err := checkAccepted(sys, t1, st.y1); err != nil {
			return nil, err
		}

		var dn *dense
		if times[next] < t1 {
			dn = newDense(y, st, t, h)
		}
		for next < len(times) && times[next] <= t1 {
			if times[next] >= t1 {
				traj.States[next] = st.y1.Clone()
			} else {
				traj.States[next] = dn.at(times[next])
			}
			next++
		}

		var fac float64
		if st.errNorm > 0 {
			fac = d.safety * math.Pow(st.errNorm, -0.2)
			if fac > d.maxScale {
				fac = d.maxScale
			}
			if fac < d.minScale {
				fac = d.minScale
			}
		} else {
			fac = d.maxScale
		}

		y = st.y1
		t = t1
		h *= fac
	}

	return traj, nil
}
