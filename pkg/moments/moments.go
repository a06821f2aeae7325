// Package moments computes the four descriptive moments of a numeric
// attribute and classifies the shape of its distribution.
//
// All statistics are computed over non-missing values only: residual NaN
// cells are excluded, not treated as zero and not propagated into the
// results. Standard deviation is the sample form (divisor n-1); skewness and
// excess kurtosis both use gonum's bias-corrected sample estimators, so the
// two always share one convention.
package moments

import (
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/trendlens/trendlens/pkg/dataset"
	"github.com/trendlens/trendlens/pkg/errors"
)

// Moments holds the four descriptive moments of one numeric attribute.
type Moments struct {
	Mean           float64
	StdDev         float64
	Skewness       float64
	ExcessKurtosis float64
}

// Compute calculates the moments of the named column.
//
// It fails only when the column does not exist (COLUMN_NOT_FOUND) or contains
// no numeric values at all (NO_NUMERIC_DATA). For any column with at least
// one usable value, all four results are finite: estimators that are
// undefined for the sample size (std of one value, skewness below three,
// kurtosis below four) fall back to zero.
func Compute(d *dataset.Dataset, col string) (Moments, error) {
	if _, err := d.Column(col); err != nil {
		return Moments{}, err
	}

	values := make([]float64, 0, d.NumRows())
	for _, v := range d.Floats(col) {
		if !math.IsNaN(v) && !math.IsInf(v, 0) {
			values = append(values, v)
		}
	}
	if len(values) == 0 {
		return Moments{}, errors.New(errors.ErrCodeNoNumericData, "column %q has no numeric data", col)
	}

	return Moments{
		Mean:           stat.Mean(values, nil),
		StdDev:         finiteOrZero(stat.StdDev(values, nil)),
		Skewness:       finiteOrZero(stat.Skew(values, nil)),
		ExcessKurtosis: finiteOrZero(stat.ExKurtosis(values, nil)),
	}, nil
}

// finiteOrZero maps NaN and infinities to zero.
func finiteOrZero(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
