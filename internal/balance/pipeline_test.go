package balance_test

import (
	"math/rand"
	"testing"

	"pacelab/internal/balance"
	"pacelab/internal/core"
	"pacelab/internal/estimate"
	"pacelab/internal/profile"
)

// Full pipeline: estimate parameters from test data, generate a session,
// simulate it, and check limits — the same path the CLI wires together.
func TestEstimateSimulateCheckPipeline(t *testing.T) {
	trials := []core.Trial{
		{Duration: 180, Distance: 920},
		{Duration: 420, Distance: 1940},
		{Duration: 720, Distance: 3200},
	}
	params, err := estimate.TimeTrials(trials)
	if err != nil {
		t.Fatalf("estimation failed: %v", err)
	}
	if params.Threshold <= 0 || params.Reserve <= 0 {
		t.Fatalf("non-physical estimate: %+v", params)
	}

	series := profile.Intervals(20*60, params.Threshold, 115, 70, 120, 120)
	trace := balance.Simulate(series, params.Threshold, params.Reserve, core.TauRunning)
	summary := balance.Summarize(series, trace, params.Threshold, params.Reserve)

	if summary.Duration != 20*60 {
		t.Errorf("expected 1200s run, got %d", summary.Duration)
	}
	if summary.Expended <= 0 {
		t.Error("interval session above threshold must expend reserve")
	}
	for i, b := range trace {
		if b < 0 || b > params.Reserve {
			t.Fatalf("trace left [0, reserve] at %d: %v", i, b)
		}
	}

	limits := &balance.Limits{NoExhaustion: true, MaxDepletion: "100%"}
	results := limits.Check(summary)
	if len(results.Results) != 2 {
		t.Errorf("expected 2 limit checks, got %d", len(results.Results))
	}
}

func TestRaceProfileNeverBreaksClamping(t *testing.T) {
	params := core.Parameters{Threshold: 4.0, Reserve: 150}
	rng := rand.New(rand.NewSource(17))

	for run := 0; run < 20; run++ {
		series := profile.Race(30*60, params.Threshold, rng)
		trace := balance.Simulate(series, params.Threshold, params.Reserve, core.TauRunning)
		for i, b := range trace {
			if b < 0 || b > params.Reserve {
				t.Fatalf("run %d: trace left [0, reserve] at %d: %v", run, i, b)
			}
		}
	}
}
