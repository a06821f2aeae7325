package dataset

import "github.com/go-gota/gota/series"

// Classification partitions a dataset's columns into numeric and categorical
// sets, each in original load order. It is derived from a specific Dataset
// snapshot and must be recomputed if a new snapshot is taken.
//
// Ordering matters: downstream chart and column selection always take the
// first eligible column(s), so the partition preserves load order exactly.
type Classification struct {
	Numeric     []string
	Categorical []string
}

// Classify inspects the dataset's column types and partitions the names.
// Int and Float columns are numeric; String and Bool columns are categorical.
func Classify(d *Dataset) Classification {
	var c Classification
	names := d.df.Names()
	types := d.df.Types()
	for i, name := range names {
		switch types[i] {
		case series.Int, series.Float:
			c.Numeric = append(c.Numeric, name)
		case series.String, series.Bool:
			c.Categorical = append(c.Categorical, name)
		}
	}
	return c
}

// FirstNumeric returns the first numeric column in load order, if any.
func (c Classification) FirstNumeric() (string, bool) {
	if len(c.Numeric) == 0 {
		return "", false
	}
	return c.Numeric[0], true
}

// FirstCategorical returns the first categorical column in load order, if any.
func (c Classification) FirstCategorical() (string, bool) {
	if len(c.Categorical) == 0 {
		return "", false
	}
	return c.Categorical[0], true
}

// HasNumeric reports whether at least n numeric columns exist.
func (c Classification) HasNumeric(n int) bool { return len(c.Numeric) >= n }

// IsNumeric reports whether name is classified as numeric.
func (c Classification) IsNumeric(name string) bool {
	for _, n := range c.Numeric {
		if n == name {
			return true
		}
	}
	return false
}
