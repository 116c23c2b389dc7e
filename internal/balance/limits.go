package balance

import (
	"fmt"
	"strconv"
	"strings"
)

// Limits defines pass/fail criteria for a simulated session. Zero-valued
// fields are unset and skipped. Evaluated after the run from the trace
// summary; a violated limit means the planned session overdraws the
// athlete's reserve.
type Limits struct {
	MinBalance   float64 `yaml:"min_balance"`   // absolute floor the trace must stay above
	MaxDepletion string  `yaml:"max_depletion"` // largest allowed expenditure, e.g. "90%"
	NoExhaustion bool    `yaml:"no_exhaustion"` // trace must never touch zero
}

// LimitResult represents the outcome of a single limit check.
type LimitResult struct {
	Name   string `json:"name"`
	Passed bool   `json:"passed"`
	Limit  string `json:"limit"`
	Actual string `json:"actual"`
}

// LimitResults contains all limit check results.
type LimitResults struct {
	Passed  bool          `json:"passed"`
	Results []LimitResult `json:"results"`
}

// Check evaluates all configured limits against a run summary.
func (l *Limits) Check(s Summary) *LimitResults {
	if l == nil {
		return &LimitResults{Passed: true, Results: nil}
	}

	results := &LimitResults{
		Passed:  true,
		Results: make([]LimitResult, 0),
	}

	if l.MinBalance > 0 {
		results.add(LimitResult{
			Name:   "balance.min",
			Passed: s.MinBalance >= l.MinBalance,
			Limit:  fmt.Sprintf("%.1f", l.MinBalance),
			Actual: fmt.Sprintf("%.1f", s.MinBalance),
		})
	}

	if l.MaxDepletion != "" {
		if maxPct, err := parsePercentage(l.MaxDepletion); err == nil {
			results.add(LimitResult{
				Name:   "balance.max_depletion",
				Passed: s.ExpendedPct <= maxPct,
				Limit:  l.MaxDepletion,
				Actual: fmt.Sprintf("%.1f%%", s.ExpendedPct),
			})
		}
	}

	if l.NoExhaustion {
		results.add(LimitResult{
			Name:   "balance.no_exhaustion",
			Passed: !s.Exhausted,
			Limit:  "no zero crossing",
			Actual: fmt.Sprintf("min %.1f", s.MinBalance),
		})
	}

	return results
}

func (r *LimitResults) add(res LimitResult) {
	if !res.Passed {
		r.Passed = false
	}
	r.Results = append(r.Results, res)
}

// Violations returns only the failed limit results.
func (r *LimitResults) Violations() []LimitResult {
	violations := make([]LimitResult, 0)
	for _, result := range r.Results {
		if !result.Passed {
			violations = append(violations, result)
		}
	}
	return violations
}

func parsePercentage(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if !strings.HasSuffix(s, "%") {
		return 0, fmt.Errorf("invalid percentage format: %s", s)
	}
	s = strings.TrimSuffix(s, "%")
	return strconv.ParseFloat(s, 64)
}
