package dataset

import (
	"math"

	"github.com/go-gota/gota/series"
	"github.com/montanaflynn/stats"
)

// ColumnSummary is the descriptive profile of one column, computed before
// cleaning so missing counts reflect the raw data.
type ColumnSummary struct {
	Name    string
	Type    string
	NonNull int
	Missing int
	Unique  int

	// Numeric profile; NaN when the column is not numeric or has no values.
	Min    float64
	Q1     float64
	Median float64
	Q3     float64
	Max    float64
	Mean   float64
	Std    float64
}

// Describe computes a per-column summary of the dataset, in load order.
func Describe(d *Dataset) []ColumnSummary {
	names := d.df.Names()
	types := d.df.Types()

	summaries := make([]ColumnSummary, 0, len(names))
	for i, name := range names {
		s := d.df.Col(name)
		cs := ColumnSummary{
			Name: name,
			Type: string(types[i]),
			Min:  math.NaN(), Q1: math.NaN(), Median: math.NaN(),
			Q3: math.NaN(), Max: math.NaN(), Mean: math.NaN(), Std: math.NaN(),
		}

		na := s.IsNaN()
		seen := make(map[string]bool)
		recs := s.Records()
		for j := range na {
			if na[j] {
				cs.Missing++
				continue
			}
			cs.NonNull++
			seen[recs[j]] = true
		}
		cs.Unique = len(seen)

		if types[i] == series.Int || types[i] == series.Float {
			cs.fillNumeric(s.Float())
		}
		summaries = append(summaries, cs)
	}
	return summaries
}

// fillNumeric computes the numeric profile over non-missing values.
func (cs *ColumnSummary) fillNumeric(values []float64) {
	var data stats.Float64Data
	for _, v := range values {
		if !math.IsNaN(v) {
			data = append(data, v)
		}
	}
	if len(data) == 0 {
		return
	}

	cs.Min, _ = data.Min()
	cs.Max, _ = data.Max()
	cs.Median, _ = data.Median()
	cs.Mean, _ = data.Mean()
	if q, err := stats.Quartile(data); err == nil {
		cs.Q1 = q.Q1
		cs.Q3 = q.Q3
	}
	if sd, err := stats.StandardDeviationSample(data); err == nil {
		cs.Std = sd
	}
}
