package charts

import (
	"bytes"
	"fmt"
	"math"

	chart "github.com/wcharczuk/go-chart/v2"

	"github.com/trendlens/trendlens/pkg/dataset"
)

// maxBarCategories caps the number of bars so a high-cardinality column does
// not produce an unreadable chart. Categories keep first-appearance order.
const maxBarCategories = 20

// renderBar draws value counts of the first categorical column. Requires at
// least one categorical column.
func renderBar(d *dataset.Dataset, c dataset.Classification, opts Options) ([]byte, Outcome, error) {
	col, ok := c.FirstCategorical()
	if !ok {
		return nil, OutcomeSkippedNoCategorical, nil
	}

	bars := categoryBars(d, col)
	if len(bars) == 0 {
		return nil, OutcomeSkippedNoCategorical, nil
	}

	graph := chart.BarChart{
		Title:    fmt.Sprintf("Bar Chart - %s", d.Source()),
		Width:    opts.Width,
		Height:   opts.Height,
		BarWidth: 40,
		XAxis:    chart.Style{TextRotationDegrees: 45},
		YAxis:    chart.YAxis{Range: barRange(bars)},
		Bars:     bars,
	}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return fault(KindBar, err)
	}
	return buf.Bytes(), OutcomeRendered, nil
}

// categoryBars counts occurrences per category in first-appearance order,
// skipping missing cells.
func categoryBars(d *dataset.Dataset, col string) []chart.Value {
	s, err := d.Column(col)
	if err != nil {
		return nil
	}

	counts := make(map[string]int)
	var order []string
	na := s.IsNaN()
	for i, rec := range s.Records() {
		if i < len(na) && na[i] {
			continue
		}
		if _, seen := counts[rec]; !seen {
			order = append(order, rec)
		}
		counts[rec]++
	}

	if len(order) > maxBarCategories {
		order = order[:maxBarCategories]
	}

	bars := make([]chart.Value, 0, len(order))
	for _, label := range order {
		bars = append(bars, chart.Value{
			Label: label,
			Value: float64(counts[label]),
		})
	}
	return bars
}

// barRange pins the y-axis to [0, max value]. go-chart derives its implicit
// range from the value spread, which collapses to a zero range when every
// bar has the same height (e.g. each category occurring exactly once).
func barRange(bars []chart.Value) chart.Range {
	var max float64
	for _, b := range bars {
		if b.Value > max {
			max = b.Value
		}
	}
	if max <= 0 {
		max = 1
	}
	return &chart.ContinuousRange{Min: 0, Max: max}
}

// histogramBars bins a numeric column into equal-width bins for the
// statistical overview chart.
func histogramBars(values []float64, bins int) []chart.Value {
	var clean []float64
	for _, v := range values {
		if !math.IsNaN(v) && !math.IsInf(v, 0) {
			clean = append(clean, v)
		}
	}
	if len(clean) == 0 {
		return nil
	}

	lo, hi := clean[0], clean[0]
	for _, v := range clean {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	if lo == hi {
		return []chart.Value{{Label: fmt.Sprintf("%.3g", lo), Value: float64(len(clean))}}
	}
	if bins > len(clean) {
		bins = len(clean)
	}

	width := (hi - lo) / float64(bins)
	counts := make([]int, bins)
	for _, v := range clean {
		idx := int((v - lo) / width)
		if idx >= bins { // hi lands in the last bin
			idx = bins - 1
		}
		counts[idx]++
	}

	bars := make([]chart.Value, bins)
	for i, n := range counts {
		bars[i] = chart.Value{
			Label: fmt.Sprintf("%.3g", lo+(float64(i)+0.5)*width),
			Value: float64(n),
		}
	}
	return bars
}
