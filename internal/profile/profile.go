// Package profile generates synthetic per-second intensity series for the
// balance simulator. Randomized profiles take an injected *rand.Rand so
// runs are reproducible from a seed and the simulator itself stays
// deterministic.
package profile

import (
	"math"
	"math/rand"
)

// Steady returns duration seconds at a fixed percentage of threshold.
func Steady(duration int, threshold, pct float64) []float64 {
	series := make([]float64, duration)
	v := threshold * pct / 100
	for i := range series {
		series[i] = v
	}
	return series
}

// Intervals alternates work and rest blocks, starting with work. Block
// lengths are in seconds; intensities are percentages of threshold.
func Intervals(duration int, threshold, workPct, restPct float64, work, rest int) []float64 {
	series := make([]float64, duration)
	cycle := work + rest
	if cycle <= 0 {
		return Steady(duration, threshold, workPct)
	}
	for i := range series {
		if i%cycle < work {
			series[i] = threshold * workPct / 100
		} else {
			series[i] = threshold * restPct / 100
		}
	}
	return series
}

// Variable produces a base effort with smoothed random fluctuation:
// Gaussian noise with standard deviation variabilityPct/100 is smoothed
// by a sigma=30s kernel and added to the base fraction, then clipped to
// [0.5, 1.5] of threshold.
func Variable(duration int, threshold, basePct, variabilityPct float64, rng *rand.Rand) []float64 {
	noise := make([]float64, duration)
	for i := range noise {
		noise[i] = rng.NormFloat64() * variabilityPct / 100
	}
	smoothed := gaussianSmooth(noise, 30)

	series := make([]float64, duration)
	lo, hi := 0.5*threshold, 1.5*threshold
	for i := range series {
		v := (basePct/100 + smoothed[i]) * threshold
		series[i] = math.Min(hi, math.Max(lo, v))
	}
	return series
}

// Race simulates a race effort: a steady 90% base, three or four random
// mid-race surges at 110-130% lasting 30-120s, and a 130% finishing kick
// inside the final minute. Runs shorter than the surge window (8 minutes)
// get the base and kick only.
func Race(duration int, threshold float64, rng *rand.Rand) []float64 {
	series := Steady(duration, threshold, 90)

	surgeWindow := duration - 3*60 - 5*60
	if surgeWindow > 0 {
		numSurges := 3 + rng.Intn(2)
		for s := 0; s < numSurges; s++ {
			start := 5*60 + rng.Intn(surgeWindow)
			length := 30 + rng.Intn(90)
			intensity := threshold * (1.1 + rng.Float64()*0.2)
			fill(series, start, length, intensity)
		}
	}

	if duration > 60 {
		kickStart := duration - (30 + rng.Intn(30))
		kickLength := 20 + rng.Intn(20)
		fill(series, kickStart, kickLength, threshold*1.3)
	}

	return series
}

func fill(series []float64, start, length int, v float64) {
	for i := start; i < start+length && i < len(series); i++ {
		if i >= 0 {
			series[i] = v
		}
	}
}

// gaussianSmooth convolves xs with a normalized Gaussian kernel of the
// given sigma (in samples), truncated at four sigma, reflecting at the
// edges.
func gaussianSmooth(xs []float64, sigma float64) []float64 {
	if len(xs) == 0 || sigma <= 0 {
		return append([]float64(nil), xs...)
	}

	radius := int(4 * sigma)
	kernel := make([]float64, 2*radius+1)
	var sum float64
	for i := range kernel {
		d := float64(i - radius)
		kernel[i] = math.Exp(-d * d / (2 * sigma * sigma))
		sum += kernel[i]
	}
	for i := range kernel {
		kernel[i] /= sum
	}

	out := make([]float64, len(xs))
	for i := range xs {
		var v float64
		for k, w := range kernel {
			j := i + k - radius
			// Reflect out-of-range indices back into the series.
			if j < 0 {
				j = -j - 1
			}
			if j >= len(xs) {
				j = 2*len(xs) - j - 1
			}
			if j < 0 {
				j = 0
			} else if j >= len(xs) {
				j = len(xs) - 1
			}
			v += w * xs[j]
		}
		out[i] = v
	}
	return out
}
