package report

import (
	"fmt"
	"io"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// RenderChart draws the intensity series and balance trace over time as a
// PNG: intensity on the primary axis with the threshold as a dashed line,
// remaining reserve on the secondary axis.
func RenderChart(w io.Writer, series, trace []float64, threshold float64) error {
	if len(series) < 2 || len(trace) != len(series) {
		return fmt.Errorf("chart needs matching series and trace with at least 2 samples")
	}

	minutes := make([]float64, len(series))
	for i := range minutes {
		minutes[i] = float64(i) / 60
	}

	graph := chart.Chart{
		Width:  1024,
		Height: 512,
		XAxis:  chart.XAxis{Name: "Time (min)"},
		YAxis:  chart.YAxis{Name: "Intensity"},
		YAxisSecondary: chart.YAxis{
			Name: "Balance",
		},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Name:    "Intensity",
				XValues: minutes,
				YValues: series,
				Style: chart.Style{
					StrokeColor: drawing.ColorFromHex("e6754e"),
				},
			},
			chart.ContinuousSeries{
				Name:    "Threshold",
				XValues: []float64{minutes[0], minutes[len(minutes)-1]},
				YValues: []float64{threshold, threshold},
				Style: chart.Style{
					StrokeColor:     drawing.ColorFromHex("e6754e"),
					StrokeDashArray: []float64{5.0, 5.0},
				},
			},
			chart.ContinuousSeries{
				Name:    "Balance",
				YAxis:   chart.YAxisSecondary,
				XValues: minutes,
				YValues: trace,
				Style: chart.Style{
					StrokeColor: drawing.ColorFromHex("1f77b4"),
				},
			},
		},
	}
	graph.Elements = []chart.Renderable{chart.Legend(&graph)}

	if err := graph.Render(chart.PNG, w); err != nil {
		return fmt.Errorf("rendering chart: %w", err)
	}
	return nil
}
