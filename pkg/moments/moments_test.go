package moments

import (
	"math"
	"testing"

	"github.com/trendlens/trendlens/pkg/dataset"
	"github.com/trendlens/trendlens/pkg/errors"
)

func numericDataset(t *testing.T, col string, values []string) *dataset.Dataset {
	t.Helper()
	records := [][]string{{col}}
	for _, v := range values {
		records = append(records, []string{v})
	}
	return dataset.FromRecords(records, "t")
}

func TestCompute(t *testing.T) {
	ds := numericDataset(t, "x", []string{"2", "4", "4", "4", "5", "5", "7", "9"})

	m, err := Compute(ds, "x")
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}

	// Hand-computed: mean 5, sample std sqrt(32/7).
	if math.Abs(m.Mean-5) > 1e-9 {
		t.Errorf("Mean = %v, want 5", m.Mean)
	}
	wantStd := math.Sqrt(32.0 / 7.0)
	if math.Abs(m.StdDev-wantStd) > 1e-9 {
		t.Errorf("StdDev = %v, want %v", m.StdDev, wantStd)
	}
}

func TestComputeFiniteResults(t *testing.T) {
	tests := []struct {
		name   string
		values []string
	}{
		{"single value", []string{"42"}},
		{"two values", []string{"1", "2"}},
		{"three values", []string{"1", "2", "3"}},
		{"constant column", []string{"5", "5", "5", "5", "5"}},
		{"with missing cells", []string{"1.5", "NA", "2.5", "NaN", "3.5"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ds := numericDataset(t, "x", tt.values)
			m, err := Compute(ds, "x")
			if err != nil {
				t.Fatalf("Compute: %v", err)
			}
			for name, v := range map[string]float64{
				"mean": m.Mean, "std": m.StdDev,
				"skewness": m.Skewness, "kurtosis": m.ExcessKurtosis,
			} {
				if math.IsNaN(v) || math.IsInf(v, 0) {
					t.Errorf("%s = %v, want a finite number", name, v)
				}
			}
		})
	}
}

func TestComputeExcludesMissing(t *testing.T) {
	ds := numericDataset(t, "x", []string{"1", "NA", "3"})

	m, err := Compute(ds, "x")
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}
	// Missing cells are excluded, not zero-filled: mean of {1, 3} is 2.
	if math.Abs(m.Mean-2) > 1e-9 {
		t.Errorf("Mean = %v, want 2", m.Mean)
	}
}

func TestComputeErrors(t *testing.T) {
	ds := dataset.FromRecords([][]string{
		{"label", "x"},
		{"a", "1"},
		{"b", "2"},
	}, "t")

	if _, err := Compute(ds, "missing"); !errors.Is(err, errors.ErrCodeColumnNotFound) {
		t.Errorf("unknown column: code = %v, want COLUMN_NOT_FOUND", errors.GetCode(err))
	}
	if _, err := Compute(ds, "label"); !errors.Is(err, errors.ErrCodeNoNumericData) {
		t.Errorf("text column: code = %v, want NO_NUMERIC_DATA", errors.GetCode(err))
	}
}

func TestComputeSkewDirection(t *testing.T) {
	// A long right tail produces positive skewness.
	right := numericDataset(t, "x", []string{"1", "1", "1", "2", "2", "3", "50"})
	m, err := Compute(right, "x")
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}
	if m.Skewness <= 0 {
		t.Errorf("Skewness = %v, want > 0 for a right tail", m.Skewness)
	}

	left := numericDataset(t, "x", []string{"50", "99", "99", "99", "98", "97", "1"})
	m, err = Compute(left, "x")
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}
	if m.Skewness >= 0 {
		t.Errorf("Skewness = %v, want < 0 for a left tail", m.Skewness)
	}
}

func TestShapeOf(t *testing.T) {
	tests := []struct {
		name         string
		skew, kurt   float64
		wantSkew     string
		wantKurtosis string
	}{
		{"exact zero boundary", 0, 0, SkewNone, KurtNeutral},
		{"right and heavy", 1.5, 2.0, SkewRight, KurtHeavy},
		{"left and light", -0.2, -0.5, SkewLeft, KurtLight},
		{"tiny positive skew", 1e-12, 0, SkewRight, KurtNeutral},
		{"tiny negative kurtosis", 0, -1e-12, SkewNone, KurtLight},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ShapeOf(Moments{Skewness: tt.skew, ExcessKurtosis: tt.kurt})
			if got.Skew != tt.wantSkew {
				t.Errorf("Skew = %q, want %q", got.Skew, tt.wantSkew)
			}
			if got.Kurtosis != tt.wantKurtosis {
				t.Errorf("Kurtosis = %q, want %q", got.Kurtosis, tt.wantKurtosis)
			}
		})
	}
}
