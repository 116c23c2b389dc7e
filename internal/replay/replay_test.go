package replay

import (
	"bytes"
	"context"
	"strings"
	"testing"
)

func TestStream_WritesEveryRow(t *testing.T) {
	series := []float64{5.0, 4.0, 3.0}
	trace := []float64{250, 249, 249.5}

	var buf bytes.Buffer
	if err := Stream(context.Background(), &buf, series, trace, 0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(lines))
	}
	if lines[0] != "t=0s intensity=5.00 balance=250.00" {
		t.Errorf("unexpected first row: %q", lines[0])
	}
}

func TestStream_MismatchedLengths(t *testing.T) {
	err := Stream(context.Background(), &bytes.Buffer{}, []float64{1, 2}, []float64{1}, 0)
	if err == nil {
		t.Fatal("expected error for mismatched lengths")
	}
}

func TestStream_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	series := make([]float64, 100)
	trace := make([]float64, 100)

	err := Stream(ctx, &bytes.Buffer{}, series, trace, 1)
	if err == nil {
		t.Fatal("expected context error")
	}
}

func TestStream_FastPacingCompletes(t *testing.T) {
	series := make([]float64, 50)
	trace := make([]float64, 50)

	var buf bytes.Buffer
	if err := Stream(context.Background(), &buf, series, trace, 100000); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := strings.Count(buf.String(), "\n"); got != 50 {
		t.Errorf("expected 50 rows, got %d", got)
	}
}
