package dataset

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// CorrMatrix is a pairwise Pearson correlation matrix over the numeric
// columns of a dataset, in load order.
type CorrMatrix struct {
	Columns []string
	Values  [][]float64
}

// Correlations computes the numeric-only pairwise correlation matrix.
// Each pair uses its complete observations: rows where either value is
// missing are excluded for that pair. Pairs with fewer than two complete
// observations (or zero variance) yield NaN.
func Correlations(d *Dataset, c Classification) CorrMatrix {
	n := len(c.Numeric)
	m := CorrMatrix{Columns: c.Numeric, Values: make([][]float64, n)}

	cols := make([][]float64, n)
	for i, name := range c.Numeric {
		cols[i] = d.Floats(name)
	}

	for i := 0; i < n; i++ {
		m.Values[i] = make([]float64, n)
		for j := 0; j < n; j++ {
			if i == j {
				m.Values[i][j] = 1
				continue
			}
			m.Values[i][j] = pairwiseCorrelation(cols[i], cols[j])
		}
	}
	return m
}

// pairwiseCorrelation computes Pearson's r over rows where both values are
// present.
func pairwiseCorrelation(xs, ys []float64) float64 {
	var x, y []float64
	for k := 0; k < len(xs) && k < len(ys); k++ {
		if math.IsNaN(xs[k]) || math.IsNaN(ys[k]) {
			continue
		}
		x = append(x, xs[k])
		y = append(y, ys[k])
	}
	if len(x) < 2 {
		return math.NaN()
	}
	return stat.Correlation(x, y, nil)
}
