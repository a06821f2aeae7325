package charts

import (
	"bytes"
	"testing"

	chart "github.com/wcharczuk/go-chart/v2"

	"github.com/trendlens/trendlens/pkg/dataset"
)

// pngMagic is the PNG file signature.
var pngMagic = []byte("\x89PNG\r\n\x1a\n")

func fullDataset() *dataset.Dataset {
	return dataset.FromRecords([][]string{
		{"city", "mpg", "weight"},
		{"Oslo", "31.5", "1200"},
		{"Bergen", "24.1", "1500"},
		{"Tromso", "19.8", "1800"},
		{"Bodo", "22.0", "1650"},
		{"Alta", "28.3", "1320"},
	}, "fleet")
}

// degenerateDataset has one numeric column and no categorical column.
func degenerateDataset() *dataset.Dataset {
	return dataset.FromRecords([][]string{
		{"x"},
		{"1"},
		{"2"},
		{"3"},
	}, "thin")
}

func assertPNG(t *testing.T, data []byte) {
	t.Helper()
	if !bytes.HasPrefix(data, pngMagic) {
		t.Fatalf("artifact does not start with the PNG signature (%d bytes)", len(data))
	}
}

func TestRenderPopulatedCharts(t *testing.T) {
	ds := fullDataset()
	cls := dataset.Classify(ds)

	for _, kind := range Kinds() {
		t.Run(string(kind), func(t *testing.T) {
			png, outcome, err := Render(kind, ds, cls, Options{})
			if err != nil {
				t.Fatalf("Render(%s): %v", kind, err)
			}
			if outcome != OutcomeRendered {
				t.Fatalf("outcome = %v, want rendered", outcome)
			}
			assertPNG(t, png)
		})
	}
}

func TestRenderBarUniformCounts(t *testing.T) {
	// Every category occurring exactly once gives all bars the same height.
	// go-chart's implicit y-range collapses on that, so the renderers pin an
	// explicit range instead of faulting (bar) or degrading to a blank
	// placeholder (categorical, statistical).
	ds := fullDataset()
	cls := dataset.Classify(ds)

	for _, kind := range []Kind{KindBar, KindCategorical, KindStatistical} {
		t.Run(string(kind), func(t *testing.T) {
			png, outcome, err := Render(kind, ds, cls, Options{})
			if err != nil {
				t.Fatalf("Render(%s): %v", kind, err)
			}
			if outcome != OutcomeRendered {
				t.Fatalf("outcome = %v, want rendered", outcome)
			}
			assertPNG(t, png)
		})
	}
}

func TestBarRange(t *testing.T) {
	r := barRange([]chart.Value{{Value: 1}, {Value: 1}, {Value: 1}})
	if r.GetMin() != 0 || r.GetMax() != 1 {
		t.Errorf("range = [%v, %v], want [0, 1]", r.GetMin(), r.GetMax())
	}
	if r.GetMax()-r.GetMin() == 0 {
		t.Error("range must never be zero")
	}

	r = barRange([]chart.Value{{Value: 2}, {Value: 5}})
	if r.GetMax() != 5 {
		t.Errorf("max = %v, want 5", r.GetMax())
	}

	// No bars still yields a usable non-zero range.
	r = barRange(nil)
	if r.GetMax()-r.GetMin() == 0 {
		t.Error("empty input must keep a non-zero range")
	}
}

func TestRenderDegenerateDataset(t *testing.T) {
	ds := degenerateDataset()
	cls := dataset.Classify(ds)

	tests := []struct {
		kind Kind
		want Outcome
	}{
		{KindScatter, OutcomeSkippedInsufficientNumeric},
		{KindHeatmap, OutcomeSkippedInsufficientNumeric},
		{KindBar, OutcomeSkippedNoCategorical},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			png, outcome, err := Render(tt.kind, ds, cls, Options{})
			if err != nil {
				t.Fatalf("Render(%s): %v", tt.kind, err)
			}
			if outcome != tt.want {
				t.Errorf("outcome = %v, want %v", outcome, tt.want)
			}
			if png != nil {
				t.Errorf("skipped chart should produce no artifact, got %d bytes", len(png))
			}
		})
	}
}

func TestRenderOverviewAlwaysEmits(t *testing.T) {
	// Even a dataset with no categorical and one numeric column emits all
	// three overview charts (possibly as placeholders).
	ds := degenerateDataset()
	cls := dataset.Classify(ds)

	for _, kind := range []Kind{KindRelational, KindStatistical, KindCategorical} {
		t.Run(string(kind), func(t *testing.T) {
			png, outcome, err := Render(kind, ds, cls, Options{})
			if err != nil {
				t.Fatalf("Render(%s): %v", kind, err)
			}
			if outcome != OutcomeRendered {
				t.Fatalf("outcome = %v, want rendered", outcome)
			}
			assertPNG(t, png)
		})
	}
}

func TestFilename(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{KindRelational, "relational_plot.png"},
		{KindStatistical, "statistical_plot.png"},
		{KindCategorical, "categorical_plot.png"},
		{KindScatter, "scatter_fleet.png"},
		{KindBar, "bar_fleet.png"},
		{KindHeatmap, "heatmap_fleet.png"},
	}

	for _, tt := range tests {
		if got := Filename(tt.kind, "fleet"); got != tt.want {
			t.Errorf("Filename(%s) = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestSkipMessage(t *testing.T) {
	tests := []struct {
		kind    Kind
		outcome Outcome
		want    string
	}{
		{KindScatter, OutcomeSkippedInsufficientNumeric, "insufficient numeric columns"},
		{KindHeatmap, OutcomeSkippedInsufficientNumeric, "not enough numeric data"},
		{KindBar, OutcomeSkippedNoCategorical, "no categorical data"},
		{KindScatter, OutcomeSkippedInternalFault, "chart rendering failed"},
		{KindScatter, OutcomeRendered, ""},
	}

	for _, tt := range tests {
		if got := SkipMessage(tt.kind, tt.outcome); got != tt.want {
			t.Errorf("SkipMessage(%s, %v) = %q, want %q", tt.kind, tt.outcome, got, tt.want)
		}
	}
}

func TestOutcomeString(t *testing.T) {
	if OutcomeRendered.String() != "rendered" {
		t.Errorf("String = %q", OutcomeRendered.String())
	}
	if !OutcomeSkippedInternalFault.Skipped() {
		t.Error("internal fault should count as skipped")
	}
	if OutcomeRendered.Skipped() {
		t.Error("rendered should not count as skipped")
	}
}

func TestHistogramBars(t *testing.T) {
	bars := histogramBars([]float64{1, 1, 2, 2, 2, 9, 10}, 3)
	if len(bars) != 3 {
		t.Fatalf("got %d bins, want 3", len(bars))
	}
	total := 0.0
	for _, b := range bars {
		total += b.Value
	}
	if total != 7 {
		t.Errorf("bin counts sum to %v, want 7", total)
	}

	// Constant input collapses to one bin.
	if got := histogramBars([]float64{4, 4, 4}, 5); len(got) != 1 || got[0].Value != 3 {
		t.Errorf("constant input bars = %v", got)
	}

	if histogramBars(nil, 5) != nil {
		t.Error("no values should produce no bars")
	}
}
