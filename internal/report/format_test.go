package report

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"pacelab/internal/balance"
	"pacelab/internal/core"
	"pacelab/internal/plan"
)

func sampleReport() *Report {
	params := core.Parameters{Threshold: 4.0, Reserve: 250}
	return &Report{
		ID:          "test-run",
		Sport:       core.SportRunning,
		Parameters:  params,
		Tau:         300,
		Zones:       plan.Zones(params.Threshold),
		Predictions: plan.PredictRaces(params.Threshold, params.Reserve),
	}
}

func TestFormatText_EstimateOnly(t *testing.T) {
	var buf bytes.Buffer

	FormatText(&buf, sampleReport())
	out := buf.String()

	for _, want := range []string{"Threshold: 4.00 m/s", "Reserve:   250 m", "Training Zones:", "Recovery", "Predicted Race Times:", "5K"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "Simulation:") {
		t.Error("estimate-only report should not print a simulation section")
	}
}

func TestFormatText_WithSimulation(t *testing.T) {
	r := sampleReport()
	r.Summary = &balance.Summary{
		Duration:      1200,
		MeanIntensity: 3.9,
		AboveSeconds:  300,
		AboveFraction: 0.25,
		MinBalance:    80,
		EndBalance:    120,
		Expended:      170,
		ExpendedPct:   68,
	}
	limits := &balance.Limits{MinBalance: 50}
	r.Limits = limits.Check(*r.Summary)

	var buf bytes.Buffer
	FormatText(&buf, r)
	out := buf.String()

	for _, want := range []string{"Simulation:", "Min balance:     80.0 m", "68.0% of reserve", "Limits:", "✓ balance.min"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestFormatText_CyclingUnitsAndNoPace(t *testing.T) {
	r := sampleReport()
	r.Sport = core.SportCycling
	r.Parameters = core.Parameters{Threshold: 280, Reserve: 18000}

	var buf bytes.Buffer
	FormatText(&buf, r)
	out := buf.String()

	if !strings.Contains(out, "280.00 W") {
		t.Errorf("expected watts in output:\n%s", out)
	}
	if strings.Contains(out, "min/km") {
		t.Error("cycling output should not show running pace")
	}
}

func TestFormatJSON_RoundTrips(t *testing.T) {
	r := sampleReport()
	r.Summary = &balance.Summary{Duration: 600, MinBalance: 100}

	var buf bytes.Buffer
	if err := FormatJSON(&buf, r); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var decoded map[string]any
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("invalid JSON output: %v", err)
	}
	if decoded["run_id"] != "test-run" {
		t.Errorf("expected run_id test-run, got %v", decoded["run_id"])
	}
	if _, ok := decoded["summary"]; !ok {
		t.Error("expected summary in JSON output")
	}
}

func TestFormatJSON_OmitsEmptySections(t *testing.T) {
	var buf bytes.Buffer
	if err := FormatJSON(&buf, sampleReport()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if strings.Contains(buf.String(), "\"summary\"") {
		t.Error("estimate-only JSON should omit the summary")
	}
}
