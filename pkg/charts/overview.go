package charts

import (
	"bytes"
	"fmt"
	"math"

	chart "github.com/wcharczuk/go-chart/v2"

	"github.com/trendlens/trendlens/pkg/dataset"
)

// histogramBins is the bin count for the statistical overview chart.
const histogramBins = 10

// The overview charts have no hard precondition: when the dataset lacks the
// columns a populated version needs, they degrade to a blank titled canvas
// instead of skipping, so a run always emits all three.

// renderRelational draws the first numeric column over the row index. With
// no numeric column it emits a blank placeholder.
func renderRelational(d *dataset.Dataset, c dataset.Classification, opts Options) ([]byte, Outcome, error) {
	title := fmt.Sprintf("Relational Plot - %s", d.Source())

	col, ok := c.FirstNumeric()
	if !ok || d.NumRows() < 2 {
		return placeholder(KindRelational, title, opts)
	}

	var xs, ys []float64
	for i, v := range d.Floats(col) {
		if math.IsNaN(v) {
			continue
		}
		xs = append(xs, float64(i))
		ys = append(ys, v)
	}
	if len(xs) < 2 {
		return placeholder(KindRelational, title, opts)
	}

	graph := chart.Chart{
		Title:  title,
		Width:  opts.Width,
		Height: opts.Height,
		XAxis:  chart.XAxis{Name: "row"},
		YAxis:  chart.YAxis{Name: col},
		Series: []chart.Series{
			chart.ContinuousSeries{XValues: xs, YValues: ys},
		},
	}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return placeholder(KindRelational, title, opts)
	}
	return buf.Bytes(), OutcomeRendered, nil
}

// renderStatistical draws a histogram of the analyzed column (or the first
// numeric column when none is set). With no numeric column it emits a blank
// placeholder.
func renderStatistical(d *dataset.Dataset, c dataset.Classification, opts Options) ([]byte, Outcome, error) {
	title := fmt.Sprintf("Statistical Plot - %s", d.Source())

	col := opts.Column
	if col == "" || !c.IsNumeric(col) {
		first, ok := c.FirstNumeric()
		if !ok {
			return placeholder(KindStatistical, title, opts)
		}
		col = first
	}

	bars := histogramBars(d.Floats(col), histogramBins)
	if len(bars) == 0 {
		return placeholder(KindStatistical, title, opts)
	}

	graph := chart.BarChart{
		Title:    title,
		Width:    opts.Width,
		Height:   opts.Height,
		BarWidth: 30,
		XAxis:    chart.Style{TextRotationDegrees: 45},
		YAxis:    chart.YAxis{Range: barRange(bars)},
		Bars:     bars,
	}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return placeholder(KindStatistical, title, opts)
	}
	return buf.Bytes(), OutcomeRendered, nil
}

// renderCategorical draws value counts of the first categorical column. With
// no categorical column it emits a blank placeholder.
func renderCategorical(d *dataset.Dataset, c dataset.Classification, opts Options) ([]byte, Outcome, error) {
	title := fmt.Sprintf("Categorical Plot - %s", d.Source())

	col, ok := c.FirstCategorical()
	if !ok {
		return placeholder(KindCategorical, title, opts)
	}
	bars := categoryBars(d, col)
	if len(bars) == 0 {
		return placeholder(KindCategorical, title, opts)
	}

	graph := chart.BarChart{
		Title:    title,
		Width:    opts.Width,
		Height:   opts.Height,
		BarWidth: 40,
		XAxis:    chart.Style{TextRotationDegrees: 45},
		YAxis:    chart.YAxis{Range: barRange(bars)},
		Bars:     bars,
	}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return placeholder(KindCategorical, title, opts)
	}
	return buf.Bytes(), OutcomeRendered, nil
}

// placeholder emits the blank titled canvas for a degraded overview chart.
func placeholder(k Kind, title string, opts Options) ([]byte, Outcome, error) {
	png, err := blankCanvas(title, opts.Width, opts.Height)
	if err != nil {
		return fault(k, err)
	}
	return png, OutcomeRendered, nil
}
