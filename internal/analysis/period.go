package analysis

import (
	"math"
	"math/cmplx"
)

// FFT computes the discrete Fourier transform of a real series whose
// length is a power of two, radix-2 Cooley-Tukey.
func FFT(data []float64) []complex128 {
	n := len(data)
	if n <= 1 {
		result := make([]complex128, n)
		for i := range data {
			result[i] = complex(data[i], 0)
		}
		return result
	}

	if n%2 != 0 {
		panic("fft requires power of 2 length")
	}

	even := make([]float64, n/2)
	odd := make([]float64, n/2)
	for i := 0; i < n/2; i++ {
		even[i] = data[2*i]
		odd[i] = data[2*i+1]
	}

	feven := FFT(even)
	fodd := FFT(odd)

	result := make([]complex128, n)
	for k := 0; k < n/2; k++ {
		w := cmplx.Exp(complex(0, -2*math.Pi*float64(k)/float64(n)))
		result[k] = feven[k] + w*fodd[k]
		result[k+n/2] = feven[k] - w*fodd[k]
	}
	return result
}

// PowerSpectrum returns |FFT| over the positive-frequency half of the
// series, truncated to the largest power-of-two window.
func PowerSpectrum(data []float64) []float64 {
	n := floorPow2(len(data))
	if n < 2 {
		return nil
	}
	fft := FFT(data[:n])
	ps := make([]float64, n/2)
	for i := range ps {
		ps[i] = cmplx.Abs(fft[i])
	}
	return ps
}

// DominantPeriod estimates the strongest oscillation period of a
// uniformly sampled series, e.g. the separation of an orbiting pair.
// It reports false when the series is too short or has no oscillation.
//
// The peak bin is refined with Jacobsen's complex-ratio estimator,
// which is near exact for an unwindowed transform and recovers
// sub-bin resolution on short windows.
func DominantPeriod(times, series []float64) (float64, bool) {
	if len(times) < 8 || len(series) != len(times) {
		return 0, false
	}
	dt := times[1] - times[0]
	if dt <= 0 {
		return 0, false
	}

	n := floorPow2(len(series))
	window := make([]float64, n)
	mean := 0.0
	for _, v := range series[:n] {
		mean += v
	}
	mean /= float64(n)
	for i, v := range series[:n] {
		window[i] = v - mean
	}

	fft := FFT(window)
	best, at := 0.0, 0
	for k := 1; k < n/2; k++ {
		if m := cmplx.Abs(fft[k]); m > best {
			best, at = m, k
		}
	}
	if at == 0 || best == 0 {
		return 0, false
	}

	bin := float64(at)
	if at > 1 && at < n/2-1 {
		num := fft[at-1] - fft[at+1]
		den := 2*fft[at] - fft[at-1] - fft[at+1]
		if den != 0 {
			delta := real(num / den)
			if delta > 0.5 {
				delta = 0.5
			} else if delta < -0.5 {
				delta = -0.5
			}
			bin += delta
		}
	}

	return float64(n) * dt / bin, true
}

func floorPow2(n int) int {
	p := 1
	for p*2 <= n {
		p *= 2
	}
	return p
}
