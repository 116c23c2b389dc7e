package balance

// Summary aggregates a finished simulation run. All fields are pure
// post-processing of the intensity series and its balance trace.
type Summary struct {
	MinBalance    float64 `json:"min_balance"`    // lowest point of the trace
	EndBalance    float64 `json:"end_balance"`    // trace value at the final sample
	Expended      float64 `json:"expended"`       // reserve - MinBalance
	ExpendedPct   float64 `json:"expended_pct"`   // Expended as % of reserve (0 if reserve is 0)
	Exhausted     bool    `json:"exhausted"`      // trace touched zero
	AboveFraction float64 `json:"above_fraction"` // fraction of samples above threshold
	AboveSeconds  int     `json:"above_seconds"`  // samples above threshold (1 Hz)
	MeanIntensity float64 `json:"mean_intensity"`
	Duration      int     `json:"duration_seconds"`
}

// Summarize computes run statistics from an intensity series and the
// balance trace Simulate produced for it.
func Summarize(series, trace []float64, threshold, reserve float64) Summary {
	s := Summary{
		MinBalance: reserve,
		EndBalance: reserve,
		Duration:   len(series),
	}
	if len(series) == 0 {
		return s
	}

	var sum float64
	for _, x := range series {
		sum += x
		if x > threshold {
			s.AboveSeconds++
		}
	}
	s.MeanIntensity = sum / float64(len(series))
	s.AboveFraction = float64(s.AboveSeconds) / float64(len(series))

	for _, b := range trace {
		if b < s.MinBalance {
			s.MinBalance = b
		}
	}
	if len(trace) > 0 {
		s.EndBalance = trace[len(trace)-1]
	}

	s.Expended = reserve - s.MinBalance
	if reserve > 0 {
		s.ExpendedPct = s.Expended / reserve * 100
	}
	s.Exhausted = s.MinBalance <= 0

	return s
}
