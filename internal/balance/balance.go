// Package balance simulates how the above-threshold reserve (D' or W')
// depletes and reconstitutes over an intensity time series, and evaluates
// summary statistics and pass/fail limits over the resulting trace.
package balance

import "math"

// Simulate produces the per-second remaining-reserve trace for an
// intensity series sampled at 1 Hz. The trace has the same length as the
// series, starts at the full reserve, and each element follows from the
// previous one using the previous second's intensity:
//
//   - above threshold, the reserve drains linearly by the excess;
//   - at or below threshold, it relaxes exponentially back toward full,
//     faster the further below threshold the effort sits and scaled by
//     the reconstitution time constant tau (seconds).
//
// The asymmetry is the model: a hard linear draw down, a first-order
// exponential recovery up. Every element is clamped to [0, reserve].
//
// threshold must be > 0; it divides the recovery exponent. The caller
// owns the returned slice; the input series is not retained or modified.
func Simulate(series []float64, threshold, reserve, tau float64) []float64 {
	trace := make([]float64, len(series))
	if len(trace) == 0 {
		return trace
	}

	trace[0] = reserve
	for i := 1; i < len(series); i++ {
		excess := series[i-1] - threshold

		var b float64
		if excess > 0 {
			b = trace[i-1] - excess
		} else {
			b = reserve - (reserve-trace[i-1])*math.Exp(excess/(tau*threshold))
		}

		trace[i] = math.Min(reserve, math.Max(0, b))
	}
	return trace
}
