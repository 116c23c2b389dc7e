package balance

import "testing"

func TestLimits_NilPasses(t *testing.T) {
	var l *Limits
	r := l.Check(Summary{MinBalance: 0, Exhausted: true})

	if !r.Passed {
		t.Error("nil limits must pass")
	}
	if len(r.Results) != 0 {
		t.Errorf("expected no results, got %d", len(r.Results))
	}
}

func TestLimits_MinBalance(t *testing.T) {
	l := &Limits{MinBalance: 50}

	if r := l.Check(Summary{MinBalance: 80}); !r.Passed {
		t.Error("min balance 80 should pass a floor of 50")
	}
	r := l.Check(Summary{MinBalance: 20})
	if r.Passed {
		t.Error("min balance 20 should fail a floor of 50")
	}
	if len(r.Violations()) != 1 {
		t.Errorf("expected 1 violation, got %d", len(r.Violations()))
	}
}

func TestLimits_MaxDepletion(t *testing.T) {
	l := &Limits{MaxDepletion: "90%"}

	if r := l.Check(Summary{ExpendedPct: 85}); !r.Passed {
		t.Error("85%% expended should pass a 90%% cap")
	}
	if r := l.Check(Summary{ExpendedPct: 95}); r.Passed {
		t.Error("95%% expended should fail a 90%% cap")
	}
}

func TestLimits_MalformedPercentageSkipped(t *testing.T) {
	l := &Limits{MaxDepletion: "ninety"}

	r := l.Check(Summary{ExpendedPct: 100})

	if !r.Passed {
		t.Error("malformed percentage should be skipped, not failed")
	}
	if len(r.Results) != 0 {
		t.Errorf("expected no results, got %d", len(r.Results))
	}
}

func TestLimits_NoExhaustion(t *testing.T) {
	l := &Limits{NoExhaustion: true}

	if r := l.Check(Summary{Exhausted: false, MinBalance: 5}); !r.Passed {
		t.Error("non-exhausted run should pass")
	}
	if r := l.Check(Summary{Exhausted: true, MinBalance: 0}); r.Passed {
		t.Error("exhausted run should fail")
	}
}

func TestLimits_UnsetFieldsSkipped(t *testing.T) {
	l := &Limits{}

	r := l.Check(Summary{MinBalance: 0, ExpendedPct: 100, Exhausted: true})

	if !r.Passed {
		t.Error("all-unset limits must pass")
	}
	if len(r.Results) != 0 {
		t.Errorf("expected no checks, got %d", len(r.Results))
	}
}

func TestLimits_MultipleChecksAggregate(t *testing.T) {
	l := &Limits{MinBalance: 50, MaxDepletion: "50%", NoExhaustion: true}

	r := l.Check(Summary{MinBalance: 60, ExpendedPct: 75, Exhausted: false})

	if r.Passed {
		t.Error("one failing check must fail the aggregate")
	}
	if len(r.Results) != 3 {
		t.Errorf("expected 3 results, got %d", len(r.Results))
	}
	if len(r.Violations()) != 1 {
		t.Errorf("expected 1 violation, got %d", len(r.Violations()))
	}
}
