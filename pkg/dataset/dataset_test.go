package dataset

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/trendlens/trendlens/pkg/errors"
)

// writeCSV writes content to a temp file and returns its path.
func writeCSV(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write temp csv: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeCSV(t, "fuel.csv", "city,mpg,cyl\nOslo,31.5,4\nBergen,24.1,6\nTromso,19.8,8\n")

	ds, err := Load(path, Options{})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if got := ds.Source(); got != "fuel" {
		t.Errorf("Source = %q, want %q", got, "fuel")
	}
	if ds.NumRows() != 3 {
		t.Errorf("NumRows = %d, want 3", ds.NumRows())
	}
	if ds.NumCols() != 3 {
		t.Errorf("NumCols = %d, want 3", ds.NumCols())
	}

	want := []string{"city", "mpg", "cyl"}
	got := ds.Names()
	if len(got) != len(want) {
		t.Fatalf("Names = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Names[%d] = %q, want %q (column order must follow the file)", i, got[i], want[i])
		}
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.csv"), Options{})
	if err == nil {
		t.Fatal("Load should fail for a missing file")
	}
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("error code = %v, want FILE_NOT_FOUND", errors.GetCode(err))
	}
}

func TestLoadSkipsMalformedRows(t *testing.T) {
	// Second data row has a missing field and must be dropped, not fatal.
	path := writeCSV(t, "ragged.csv", "a,b\n1,2\n3\n5,6\n")

	ds, err := Load(path, Options{})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if ds.NumRows() != 2 {
		t.Errorf("NumRows = %d, want 2", ds.NumRows())
	}
	if ds.SkippedRows() != 1 {
		t.Errorf("SkippedRows = %d, want 1", ds.SkippedRows())
	}
}

func TestLoadHeaderOnly(t *testing.T) {
	path := writeCSV(t, "empty.csv", "a,b\n")
	_, err := Load(path, Options{})
	if !errors.Is(err, errors.ErrCodeInvalidFormat) {
		t.Errorf("error code = %v, want INVALID_FORMAT", errors.GetCode(err))
	}
}

func TestLoadDelimiter(t *testing.T) {
	path := writeCSV(t, "semi.csv", "a;b\n1;2\n3;4\n")

	ds, err := Load(path, Options{Delimiter: ';'})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if ds.NumCols() != 2 {
		t.Errorf("NumCols = %d, want 2", ds.NumCols())
	}
}

func TestColumnNotFound(t *testing.T) {
	ds := FromRecords([][]string{{"a"}, {"1"}, {"2"}}, "t")
	if _, err := ds.Column("missing"); !errors.Is(err, errors.ErrCodeColumnNotFound) {
		t.Errorf("error code = %v, want COLUMN_NOT_FOUND", errors.GetCode(err))
	}
}

func TestFloatsMissingValues(t *testing.T) {
	ds := FromRecords([][]string{
		{"x"},
		{"1.5"},
		{"NA"},
		{"2.5"},
	}, "t")

	vals := ds.Floats("x")
	if len(vals) != 3 {
		t.Fatalf("len = %d, want 3", len(vals))
	}
	if vals[0] != 1.5 || vals[2] != 2.5 {
		t.Errorf("values = %v", vals)
	}
	if vals[1] == vals[1] { // NaN is the only value unequal to itself
		t.Errorf("vals[1] = %v, want NaN", vals[1])
	}
}

func TestHead(t *testing.T) {
	ds := FromRecords([][]string{
		{"a", "b"},
		{"1", "x"},
		{"2", "y"},
		{"3", "z"},
	}, "t")

	head := ds.Head(2)
	if len(head) != 2 {
		t.Fatalf("Head(2) returned %d rows", len(head))
	}
	if head[0][0] != "1" || head[1][1] != "y" {
		t.Errorf("Head rows = %v", head)
	}

	// Asking for more rows than exist returns what there is.
	if got := len(ds.Head(10)); got != 3 {
		t.Errorf("Head(10) returned %d rows, want 3", got)
	}
}
