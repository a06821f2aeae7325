package dataset

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/trendlens/trendlens/pkg/errors"
)

// headRows is the number of preview rows logged during preprocessing.
const headRows = 5

// Clean emits preprocessing diagnostics (describe, head, correlation) to the
// logger and returns a new Dataset containing only rows with no missing cell
// across any column. Cleaning an already-clean dataset returns an identical
// snapshot.
//
// Internal faults are caught and surfaced as a nil dataset plus an
// INTERNAL_ERROR; the caller must treat that as fatal. Clean does not
// special-case a zero-row result - checking the surviving row count is the
// caller's responsibility.
func Clean(d *Dataset, logger *log.Logger) (cleaned *Dataset, err error) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("preprocessing failed", "panic", r)
			cleaned = nil
			err = errors.New(errors.ErrCodeInternal, "preprocessing unavailable")
		}
	}()

	logDiagnostics(d, logger)

	keep := make([]int, 0, d.NumRows())
	missing := missingRowMask(d)
	for i, miss := range missing {
		if !miss {
			keep = append(keep, i)
		}
	}

	cleaned = d.subset(keep)
	if cleaned.df.Error() != nil {
		logger.Error("preprocessing failed", "err", cleaned.df.Error())
		return nil, errors.Wrap(errors.ErrCodeInternal, cleaned.df.Error(), "preprocessing unavailable")
	}

	logger.Info("dropped rows with missing values",
		"before", d.NumRows(),
		"after", cleaned.NumRows())
	return cleaned, nil
}

// missingRowMask marks each row that has at least one missing cell.
func missingRowMask(d *Dataset) []bool {
	mask := make([]bool, d.NumRows())
	for _, name := range d.df.Names() {
		for i, isNaN := range d.df.Col(name).IsNaN() {
			if isNaN {
				mask[i] = true
			}
		}
	}
	return mask
}

// logDiagnostics writes the describe table, head preview, and numeric
// correlation matrix to the logger.
func logDiagnostics(d *Dataset, logger *log.Logger) {
	logger.Info("dataset summary", "source", d.Source(), "rows", d.NumRows(), "cols", d.NumCols())

	for _, cs := range Describe(d) {
		if math.IsNaN(cs.Mean) {
			logger.Info("column",
				"name", cs.Name, "type", cs.Type,
				"non-null", cs.NonNull, "missing", cs.Missing, "unique", cs.Unique)
			continue
		}
		logger.Info("column",
			"name", cs.Name, "type", cs.Type,
			"non-null", cs.NonNull, "missing", cs.Missing,
			"min", fmtf(cs.Min), "q1", fmtf(cs.Q1), "median", fmtf(cs.Median),
			"q3", fmtf(cs.Q3), "max", fmtf(cs.Max),
			"mean", fmtf(cs.Mean), "std", fmtf(cs.Std))
	}

	for i, row := range d.Head(headRows) {
		logger.Info("head", "row", i, "values", strings.Join(row, ", "))
	}

	corr := Correlations(d, Classify(d))
	for i, name := range corr.Columns {
		pairs := make([]string, 0, len(corr.Columns))
		for j, other := range corr.Columns {
			pairs = append(pairs, fmt.Sprintf("%s=%s", other, fmtf(corr.Values[i][j])))
		}
		logger.Info("correlation", "column", name, "r", strings.Join(pairs, " "))
	}
}

// fmtf formats a diagnostic float to two decimals, keeping NaN readable.
func fmtf(v float64) string {
	if math.IsNaN(v) {
		return "NaN"
	}
	return fmt.Sprintf("%.2f", v)
}
