// Package replay streams a finished simulation to a writer row by row,
// paced in (scaled) real time. Useful for watching a planned session
// unfold at the terminal or feeding a line-oriented consumer.
package replay

import (
	"context"
	"fmt"
	"io"

	"golang.org/x/time/rate"
)

// Stream writes one line per second of the session, emitting speedup
// samples per wall-clock second (1 = real time). A speedup of 0 or less
// disables pacing and writes every row immediately. Returns the context's
// error if cancelled mid-stream.
func Stream(ctx context.Context, w io.Writer, series, trace []float64, speedup float64) error {
	if len(trace) != len(series) {
		return fmt.Errorf("series and trace lengths differ: %d != %d", len(series), len(trace))
	}

	var limiter *rate.Limiter
	if speedup > 0 {
		limiter = rate.NewLimiter(rate.Limit(speedup), 1)
	}

	for i := range series {
		if limiter != nil {
			if err := limiter.Wait(ctx); err != nil {
				return err
			}
		} else if err := ctx.Err(); err != nil {
			return err
		}
		fmt.Fprintf(w, "t=%ds intensity=%.2f balance=%.2f\n", i, series[i], trace[i])
	}
	return nil
}
