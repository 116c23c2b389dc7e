// Package estimate converts exercise-test measurements into the
// two-parameter critical intensity model: a sustainable threshold
// (critical speed or critical power) and a finite above-threshold
// reserve (D' or W'). One entry point per test protocol; all are pure
// functions of their inputs.
//
// None of the estimators validate physiological plausibility. A max
// intensity below the end intensity, or a threshold of zero, produces
// a non-physical result rather than an error; sanity checks belong to
// the caller.
package estimate

import "pacelab/internal/core"

// Per-protocol durations fixed by the test definitions, in seconds.
const (
	threeMinutes    = 180.0
	threeToFiveSpan = 120.0
)

// ThreeMinuteAllOut estimates parameters from a 3-minute all-out test.
// The threshold is the intensity held over the final 30 seconds and the
// reserve is the excess above it integrated over the full 3 minutes.
func ThreeMinuteAllOut(maxIntensity, endIntensity float64) core.Parameters {
	return core.Parameters{
		Threshold: endIntensity,
		Reserve:   (maxIntensity - endIntensity) * threeMinutes,
	}
}

// TimeTrials fits the linear distance-duration model
//
//	distance = threshold*duration + reserve
//
// over two or more time trials by least squares. The slope is the
// threshold and the intercept the reserve. Fewer than 2 trials or trials
// with identical durations fail with a *FitError. Durations clustered
// closely together fit but condition the system poorly; the result is
// returned as-is.
func TimeTrials(trials []core.Trial) (core.Parameters, error) {
	durations := make([]float64, len(trials))
	distances := make([]float64, len(trials))
	for i, tr := range trials {
		durations[i] = tr.Duration
		distances[i] = tr.Distance
	}

	threshold, reserve, err := linearFit("time-trials", durations, distances)
	if err != nil {
		return core.Parameters{}, err
	}
	return core.Parameters{Threshold: threshold, Reserve: reserve}, nil
}

// ThreeFiveMinute estimates parameters from the distances covered in
// exactly 3 and exactly 5 minutes of maximal running. The two points
// determine the distance-duration line directly.
func ThreeFiveMinute(dist3min, dist5min float64) core.Parameters {
	threshold := (dist5min - dist3min) / threeToFiveSpan
	return core.Parameters{
		Threshold: threshold,
		Reserve:   dist3min - threshold*threeMinutes,
	}
}

// Ramp estimates parameters from an incremental test ridden or run to
// exhaustion: finalIntensity at failure, timeToExhaustion in seconds, and
// rampRate in intensity units per minute. The excess above threshold under
// a linear ramp is a triangle, hence the 0.5 factors.
func Ramp(finalIntensity, timeToExhaustion, rampRate float64) core.Parameters {
	minutes := timeToExhaustion / 60
	return core.Parameters{
		Threshold: finalIntensity - 0.5*rampRate*minutes,
		Reserve:   0.5 * rampRate * minutes * minutes,
	}
}

// TimeToExhaustion fits the hyperbolic intensity-duration model
//
//	intensity = threshold + reserve/duration
//
// over two or more constant-intensity tests held to exhaustion. The model
// is linear in 1/duration, so the least-squares line through the
// transformed points minimizes the same objective an iterative solver
// would. Fewer than 2 tests returns the zero-value sentinel (0, 0) with a
// nil error rather than failing; tests with identical durations fail with
// a *FitError.
func TimeToExhaustion(tests []core.Trial) (core.Parameters, error) {
	if len(tests) < 2 {
		return core.Parameters{}, nil
	}

	invDurations := make([]float64, len(tests))
	intensities := make([]float64, len(tests))
	for i, tr := range tests {
		invDurations[i] = 1 / tr.Duration
		intensities[i] = tr.Intensity
	}

	reserve, threshold, err := linearFit("time-to-exhaustion", invDurations, intensities)
	if err != nil {
		return core.Parameters{}, err
	}
	return core.Parameters{Threshold: threshold, Reserve: reserve}, nil
}
