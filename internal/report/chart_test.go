package report

import (
	"bytes"
	"testing"

	"pacelab/internal/balance"
)

var pngMagic = []byte{0x89, 'P', 'N', 'G'}

func TestRenderChart_ProducesPNG(t *testing.T) {
	series := make([]float64, 300)
	for i := range series {
		series[i] = 4.5
	}
	trace := balance.Simulate(series, 4.0, 250, 300)

	var buf bytes.Buffer
	if err := RenderChart(&buf, series, trace, 4.0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !bytes.HasPrefix(buf.Bytes(), pngMagic) {
		t.Error("output is not a PNG")
	}
}

func TestRenderChart_RejectsShortOrMismatchedInput(t *testing.T) {
	var buf bytes.Buffer

	if err := RenderChart(&buf, []float64{1}, []float64{1}, 4.0); err == nil {
		t.Error("expected error for single-sample series")
	}
	if err := RenderChart(&buf, []float64{1, 2, 3}, []float64{1, 2}, 4.0); err == nil {
		t.Error("expected error for mismatched lengths")
	}
}
