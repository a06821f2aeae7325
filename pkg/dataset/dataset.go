// Package dataset provides the tabular data model for trendlens.
//
// A Dataset is an immutable snapshot of a single CSV file: an ordered
// collection of named columns with rows aligned by position. Column order is
// fixed at load time and preserved through cleaning; cleaning only removes
// rows, never columns.
//
// Loading is tolerant: malformed rows are skipped (and counted) rather than
// aborting the whole load, and missing-value tokens ("", "NA", "N/A", "null",
// "NaN") are normalized so that every downstream component sees one missing
// representation.
package dataset

import (
	"encoding/csv"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"

	"github.com/trendlens/trendlens/pkg/errors"
)

// missingToken is the canonical representation for a missing cell. gota
// treats it as NaN for every series type, so IsNaN masks stay consistent
// across numeric and categorical columns.
const missingToken = "NaN"

// missingTokens are the raw cell values normalized to missingToken at load.
var missingTokens = map[string]bool{
	"":     true,
	"NA":   true,
	"N/A":  true,
	"na":   true,
	"null": true,
	"NULL": true,
	"nan":  true,
	"NaN":  true,
}

// Dataset is a loaded tabular snapshot plus its source identity.
type Dataset struct {
	df          dataframe.DataFrame
	source      string
	skippedRows int
}

// Options configures CSV loading.
type Options struct {
	// Delimiter is the field separator. Zero means comma.
	Delimiter rune
}

// Load reads a CSV file into a Dataset.
//
// A missing file is a FILE_NOT_FOUND error; an unreadable or header-only file
// is INVALID_FORMAT. Rows whose field count does not match the header are
// skipped and counted, retrievable via SkippedRows.
func Load(path string, opts Options) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.New(errors.ErrCodeFileNotFound, "no such file: %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "cannot open %s", path)
	}
	defer f.Close()

	records, skipped, err := readRecords(f, opts)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "cannot parse %s", path)
	}
	if len(records) < 2 {
		return nil, errors.New(errors.ErrCodeInvalidFormat, "no data rows in %s", path)
	}

	df := dataframe.LoadRecords(records,
		dataframe.HasHeader(true),
		dataframe.DetectTypes(true),
		dataframe.DefaultType(series.String),
	)
	if df.Error() != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, df.Error(), "cannot load %s", path)
	}

	return &Dataset{
		df:          df,
		source:      sourceName(path),
		skippedRows: skipped,
	}, nil
}

// readRecords reads all CSV records, skipping malformed rows. The header row
// defines the expected field count; rows with a different width are dropped.
func readRecords(r io.Reader, opts Options) ([][]string, int, error) {
	reader := csv.NewReader(r)
	if opts.Delimiter != 0 {
		reader.Comma = opts.Delimiter
	}
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true

	var records [][]string
	var header []string
	skipped := 0

	for {
		rec, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			if _, ok := err.(*csv.ParseError); ok {
				skipped++
				continue
			}
			return nil, skipped, err
		}
		if header == nil {
			header = rec
			records = append(records, rec)
			continue
		}
		if len(rec) != len(header) {
			skipped++
			continue
		}
		for i, cell := range rec {
			if missingTokens[strings.TrimSpace(cell)] {
				rec[i] = missingToken
			}
		}
		records = append(records, rec)
	}

	return records, skipped, nil
}

// FromRecords builds a Dataset from in-memory records (header row first).
// Missing tokens are normalized exactly as Load does. Intended for tests and
// programmatic use.
func FromRecords(records [][]string, source string) *Dataset {
	for r := 1; r < len(records); r++ {
		for i, cell := range records[r] {
			if missingTokens[strings.TrimSpace(cell)] {
				records[r][i] = missingToken
			}
		}
	}
	df := dataframe.LoadRecords(records,
		dataframe.HasHeader(true),
		dataframe.DetectTypes(true),
		dataframe.DefaultType(series.String),
	)
	return &Dataset{df: df, source: source}
}

// sourceName derives the source identifier from the input path: the base
// file name with its extension stripped. Artifact names are keyed by it.
func sourceName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// Source returns the source identifier of the dataset.
func (d *Dataset) Source() string { return d.source }

// SkippedRows returns the number of malformed rows dropped during loading.
func (d *Dataset) SkippedRows() int { return d.skippedRows }

// NumRows returns the number of data rows.
func (d *Dataset) NumRows() int { return d.df.Nrow() }

// NumCols returns the number of columns.
func (d *Dataset) NumCols() int { return d.df.Ncol() }

// Names returns the column names in load order.
func (d *Dataset) Names() []string { return d.df.Names() }

// Column returns the named column series, or COLUMN_NOT_FOUND.
func (d *Dataset) Column(name string) (series.Series, error) {
	s := d.df.Col(name)
	if s.Err != nil {
		return series.Series{}, errors.New(errors.ErrCodeColumnNotFound, "column %q does not exist", name)
	}
	return s, nil
}

// Floats returns the named column as float64 values, with missing or
// non-numeric cells represented as NaN. An unknown column yields nil.
func (d *Dataset) Floats(name string) []float64 {
	s, err := d.Column(name)
	if err != nil {
		return nil
	}
	return s.Float()
}

// Records returns the full dataset as string records, header row first.
func (d *Dataset) Records() [][]string { return d.df.Records() }

// Head returns up to n data rows as string records, in load order.
func (d *Dataset) Head(n int) [][]string {
	records := d.df.Records()
	if len(records) == 0 {
		return nil
	}
	rows := records[1:] // drop the header row
	if n > len(rows) {
		n = len(rows)
	}
	return rows[:n]
}

// subset returns a new Dataset containing only the given row indexes,
// preserving source identity and the skipped-row count.
func (d *Dataset) subset(rows []int) *Dataset {
	return &Dataset{
		df:          d.df.Subset(rows),
		source:      d.source,
		skippedRows: d.skippedRows,
	}
}
