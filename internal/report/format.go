// Package report renders session results: estimated parameters, training
// guidance, and simulation outcomes, as text for the terminal, JSON for
// machines, or a PNG chart.
package report

import (
	"encoding/json"
	"fmt"
	"io"

	"pacelab/internal/balance"
	"pacelab/internal/core"
	"pacelab/internal/plan"
)

// Report is everything a finished session produced. Summary and Limits
// are nil for estimate-only runs.
type Report struct {
	ID          string                `json:"run_id"`
	Sport       core.Sport            `json:"sport"`
	Parameters  core.Parameters       `json:"parameters"`
	Tau         float64               `json:"tau_seconds"`
	Zones       []plan.Zone           `json:"zones"`
	Predictions []plan.Prediction     `json:"predictions,omitempty"`
	Summary     *balance.Summary      `json:"summary,omitempty"`
	Limits      *balance.LimitResults `json:"limits,omitempty"`
}

// FormatText writes the report in human-readable form.
func FormatText(w io.Writer, r *Report) {
	iu := r.Sport.IntensityUnit()
	cu := r.Sport.CapacityUnit()

	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Pacelab - Session Results")
	fmt.Fprintln(w, "=========================")
	fmt.Fprintln(w, "")
	fmt.Fprintf(w, "Threshold: %.2f %s", r.Parameters.Threshold, iu)
	if r.Sport != core.SportCycling && r.Parameters.Threshold > 0 {
		fmt.Fprintf(w, "  (%s min/km, %s min/mile)",
			FormatPace(r.Parameters.Threshold, UnitKilometers),
			FormatPace(r.Parameters.Threshold, UnitMiles))
	}
	fmt.Fprintln(w, "")
	fmt.Fprintf(w, "Reserve:   %.0f %s\n", r.Parameters.Reserve, cu)
	fmt.Fprintf(w, "Tau:       %.0fs\n", r.Tau)

	if len(r.Zones) > 0 {
		fmt.Fprintln(w, "")
		fmt.Fprintln(w, "Training Zones:")
		for _, z := range r.Zones {
			fmt.Fprintf(w, "  %-13s %.2f - %.2f %s\n", z.Name, z.Low, z.High, iu)
		}
	}

	if len(r.Predictions) > 0 {
		fmt.Fprintln(w, "")
		fmt.Fprintln(w, "Predicted Race Times:")
		for _, p := range r.Predictions {
			fmt.Fprintf(w, "  %-13s %s\n", p.Race, FormatClock(p.Seconds))
		}
	}

	if r.Summary != nil {
		s := r.Summary
		fmt.Fprintln(w, "")
		fmt.Fprintln(w, "Simulation:")
		fmt.Fprintf(w, "  Duration:        %s\n", FormatClock(float64(s.Duration)))
		fmt.Fprintf(w, "  Mean intensity:  %.2f %s\n", s.MeanIntensity, iu)
		fmt.Fprintf(w, "  Above threshold: %s (%.0f%% of run)\n",
			FormatClock(float64(s.AboveSeconds)), s.AboveFraction*100)
		fmt.Fprintf(w, "  Min balance:     %.1f %s\n", s.MinBalance, cu)
		fmt.Fprintf(w, "  End balance:     %.1f %s\n", s.EndBalance, cu)
		fmt.Fprintf(w, "  Expended:        %.1f %s (%.1f%% of reserve)\n", s.Expended, cu, s.ExpendedPct)
		if s.Exhausted {
			fmt.Fprintln(w, "  Reserve fully exhausted during the run")
		}
	}

	if r.Limits != nil && len(r.Limits.Results) > 0 {
		fmt.Fprintln(w, "")
		fmt.Fprintln(w, "Limits:")
		for _, result := range r.Limits.Results {
			symbol := "✓"
			if !result.Passed {
				symbol = "✗"
			}
			fmt.Fprintf(w, "  %s %s: %s (actual: %s)\n", symbol, result.Name, result.Limit, result.Actual)
		}
	}
}

// FormatJSON writes the report in JSON format.
func FormatJSON(w io.Writer, r *Report) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(r)
}
