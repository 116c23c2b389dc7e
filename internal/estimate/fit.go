package estimate

import "fmt"

// FitError reports a regression that could not produce a solution, such as
// too few points or a singular system from duplicate regressor values.
type FitError struct {
	Protocol string
	Reason   string
}

func (e *FitError) Error() string {
	return fmt.Sprintf("%s fit failed: %s", e.Protocol, e.Reason)
}

// singularEps guards the least-squares denominator against regressor sets
// with no spread, which would otherwise divide by (near) zero.
const singularEps = 1e-12

// linearFit computes the ordinary least-squares line y = slope*x + intercept
// over the given points. Both models pacelab fits are linear in their
// coefficients, so this closed form is the exact least-squares solution.
func linearFit(protocol string, xs, ys []float64) (slope, intercept float64, err error) {
	if len(xs) != len(ys) {
		return 0, 0, &FitError{Protocol: protocol, Reason: "mismatched input lengths"}
	}
	if len(xs) < 2 {
		return 0, 0, &FitError{Protocol: protocol, Reason: "need at least 2 points"}
	}

	n := float64(len(xs))
	var sumX, sumY, sumXX, sumXY float64
	for i := range xs {
		sumX += xs[i]
		sumY += ys[i]
		sumXX += xs[i] * xs[i]
		sumXY += xs[i] * ys[i]
	}

	denom := n*sumXX - sumX*sumX
	if denom < singularEps && denom > -singularEps {
		return 0, 0, &FitError{Protocol: protocol, Reason: "singular system (points have no spread)"}
	}

	slope = (n*sumXY - sumX*sumY) / denom
	intercept = (sumY - slope*sumX) / n
	return slope, intercept, nil
}
