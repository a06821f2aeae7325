package charts

import (
	"bytes"
	"fmt"
	"math"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/trendlens/trendlens/pkg/dataset"
)

// renderScatter draws the first two numeric columns against each other.
// Requires at least two numeric columns; rows with a missing value in either
// column are excluded from the plot.
func renderScatter(d *dataset.Dataset, c dataset.Classification, opts Options) ([]byte, Outcome, error) {
	if !c.HasNumeric(2) {
		return nil, OutcomeSkippedInsufficientNumeric, nil
	}

	xcol, ycol := c.Numeric[0], c.Numeric[1]
	xs, ys := pairedValues(d.Floats(xcol), d.Floats(ycol))

	graph := chart.Chart{
		Title:  fmt.Sprintf("Scatter Plot - %s", d.Source()),
		Width:  opts.Width,
		Height: opts.Height,
		XAxis:  chart.XAxis{Name: xcol},
		YAxis:  chart.YAxis{Name: ycol},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Style: chart.Style{
					StrokeWidth: chart.Disabled,
					DotWidth:    4,
					DotColor:    drawing.ColorBlue,
				},
				XValues: xs,
				YValues: ys,
			},
		},
	}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return fault(KindScatter, err)
	}
	return buf.Bytes(), OutcomeRendered, nil
}

// pairedValues filters two columns down to rows where both values are
// present.
func pairedValues(xs, ys []float64) ([]float64, []float64) {
	var px, py []float64
	for i := 0; i < len(xs) && i < len(ys); i++ {
		if math.IsNaN(xs[i]) || math.IsNaN(ys[i]) {
			continue
		}
		px = append(px, xs[i])
		py = append(py, ys[i])
	}
	return px, py
}
