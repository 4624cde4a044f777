// SPDX-License-Identifier: EPL-2.0

// Package truepeak detects inter-sample peaks per ITU-R BS.1770-4
// Annex 2: 4x oversampling through a Kaiser-windowed polyphase FIR
// filter recovers peaks of the reconstructed continuous waveform that
// no discrete sample reaches.
//
// The polyphase design and convolution loop are grounded on the
// pack's farcloser/haustorium truepeak detector, adapted to the
// spec's distinct sinc-center/window-center geometry (S vs W below)
// and to measuring a whole in-memory buffer rather than a stream.
package truepeak

import (
	"math"
	"sync"
)

const (
	oversample   = 4  // L: polyphase oversampling factor
	tapsPerPhase = 12 // M: taps per phase
	totalTaps    = oversample * tapsPerPhase
	kaiserBeta   = 5.0
)

var (
	phasesOnce sync.Once
	phases     [oversample][tapsPerPhase]float64
)

// coefficients lazily builds the process-wide polyphase coefficient
// table exactly once. The table is independent of sample rate and of
// any particular Track, so it is safe to share across goroutines once
// built (ordinary Go "init on first use" via sync.Once, not a
// constructor the caller must remember to call).
func coefficients() *[oversample][tapsPerPhase]float64 {
	phasesOnce.Do(buildPrototype)
	return &phases
}

// buildPrototype computes the 48-tap windowed-sinc prototype and
// splits it into L polyphase sub-filters, each normalized to unity DC
// gain.
func buildPrototype() {
	// Sinc centered at the nearest multiple of L to the true midpoint,
	// so phase 0 reconstructs integer sample positions exactly.
	sincCenter := math.Round(float64(totalTaps-1)/(2*oversample)) * oversample
	// Window centered at the true midpoint.
	windowCenter := float64(totalTaps-1) / 2

	var prototype [totalTaps]float64
	for n := 0; n < totalTaps; n++ {
		prototype[n] = sinc(float64(n)-sincCenter) * kaiser(float64(n)-windowCenter, windowCenter)
	}

	for p := 0; p < oversample; p++ {
		var sum float64
		for k := 0; k < tapsPerPhase; k++ {
			phases[p][k] = prototype[k*oversample+p]
			sum += phases[p][k]
		}
		if sum != 0 {
			for k := 0; k < tapsPerPhase; k++ {
				phases[p][k] /= sum
			}
		}
	}
}

func sinc(x float64) float64 {
	if math.Abs(x) < 1e-10 {
		return 1.0
	}
	x /= oversample
	return math.Sin(math.Pi*x) / (math.Pi * x)
}

// kaiser evaluates the Kaiser window at offset x from center, where
// half is the window's half-width ((N-1)/2).
func kaiser(x, half float64) float64 {
	alpha := x / half
	if math.Abs(alpha) > 1 {
		return 0
	}
	return besselI0(kaiserBeta*math.Sqrt(1-alpha*alpha)) / besselI0(kaiserBeta)
}

// besselI0 evaluates the modified Bessel function of the first kind,
// order 0, via its standard power series, stopping once a term falls
// below 1e-12 of the running sum (or after 20 iterations).
func besselI0(x float64) float64 {
	sum := 1.0
	term := 1.0

	for k := 1; k <= 20; k++ {
		term *= (x * x) / (4.0 * float64(k) * float64(k))
		sum += term
		if term < 1e-12*sum {
			break
		}
	}

	return sum
}

// Measure returns the maximum absolute true peak (linear) across one
// channel's samples: the sample-level peak, and every interpolated
// inter-sample value at 4x oversampling, excluding the boundary
// region where interpolation would read past the buffer edge.
func Measure(samples []float64) float64 {
	table := coefficients()

	var peak float64

	for n, x := range samples {
		if abs := math.Abs(x); abs > peak {
			peak = abs
		}

		if n < tapsPerPhase-1 {
			continue
		}

		for p := 0; p < oversample; p++ {
			var y float64
			for k := 0; k < tapsPerPhase; k++ {
				y += table[p][k] * samples[n-k]
			}

			if abs := math.Abs(y); abs > peak {
				peak = abs
			}
		}
	}

	return peak
}

// MeasureStereo returns the maximum true peak across channels,
// independent of the (ignored, present for API symmetry) sample
// rate: the filter coefficients do not depend on it.
func MeasureStereo(channels [][]float64, _ int) float64 {
	var peak float64
	for _, ch := range channels {
		if p := Measure(ch); p > peak {
			peak = p
		}
	}
	return peak
}
