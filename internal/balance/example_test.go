package balance_test

import (
	"fmt"

	"pacelab/internal/balance"
)

func ExampleSimulate() {
	// One minute at 6 m/s against a 4 m/s threshold drains the reserve
	// by 2 m every second.
	series := make([]float64, 60)
	for i := range series {
		series[i] = 6.0
	}

	trace := balance.Simulate(series, 4.0, 250, 300)

	fmt.Printf("start %.0f, after 30s %.0f, after 59s %.0f\n", trace[0], trace[30], trace[59])
	// Output: start 250, after 30s 190, after 59s 132
}

func ExampleSummarize() {
	series := []float64{6, 6, 6, 2, 2, 2}
	trace := balance.Simulate(series, 4.0, 100, 300)

	s := balance.Summarize(series, trace, 4.0, 100)

	fmt.Printf("above threshold %.0f%%, expended %.0f\n", s.AboveFraction*100, s.Expended)
	// Output: above threshold 50%, expended 6
}
