// Package pipeline provides the core analysis pipeline for trendlens.
//
// This package implements the complete load → clean → analyze → render flow
// so the CLI (and tests) share one orchestration path.
//
// # Architecture
//
// The pipeline consists of four stages:
//
//  1. Load: read the CSV into a Dataset, skipping malformed rows
//  2. Clean: emit preprocessing diagnostics, drop rows with missing cells
//  3. Analyze: classify columns, compute moments and shape, emit the report
//  4. Render: produce the chart artifacts the dataset supports
//
// The first three stages are fatal on error; rendering degrades per chart
// and never aborts the run.
//
// # Usage
//
// Create a Runner and execute the pipeline:
//
//	runner := pipeline.NewRunner(cache, logger)
//	opts := pipeline.Options{
//	    Input:     "data.csv",
//	    OutputDir: ".",
//	}
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(result.ReportText)
package pipeline

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/trendlens/trendlens/pkg/charts"
	"github.com/trendlens/trendlens/pkg/dataset"
	"github.com/trendlens/trendlens/pkg/errors"
	"github.com/trendlens/trendlens/pkg/moments"
)

// Default values shared by the CLI and tests.
const (
	// DefaultOutputDir is where chart artifacts are written.
	DefaultOutputDir = "."

	// DefaultChartWidth is the artifact width in pixels.
	DefaultChartWidth = charts.DefaultWidth

	// DefaultChartHeight is the artifact height in pixels.
	DefaultChartHeight = charts.DefaultHeight
)

// Options contains all configuration for one analysis run.
type Options struct {
	// Input is the path of the CSV file to analyze. Required.
	Input string

	// OutputDir receives the chart artifacts. Created if missing.
	OutputDir string

	// Column overrides the analyzed attribute. Empty means the first
	// numeric column in load order. Must be numeric when set.
	Column string

	// Delimiter is the CSV field separator. Zero means comma.
	Delimiter rune

	// ChartWidth and ChartHeight are artifact dimensions in pixels.
	ChartWidth  int
	ChartHeight int

	// SkipCharts disables artifact rendering (report only).
	SkipCharts bool

	// Logger receives diagnostics. Discards when nil.
	Logger *log.Logger

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool
}

// ValidateAndSetDefaults checks required fields and applies defaults.
// This method is idempotent - calling it multiple times has the same effect
// as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if o.Input == "" {
		return errors.New(errors.ErrCodeInvalidFormat, "input file is required")
	}
	if o.OutputDir == "" {
		o.OutputDir = DefaultOutputDir
	}
	if o.ChartWidth == 0 {
		o.ChartWidth = DefaultChartWidth
	}
	if o.ChartHeight == 0 {
		o.ChartHeight = DefaultChartHeight
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	o.validated = true
	return nil
}

// chartOptions derives renderer options for the analyzed column.
func (o *Options) chartOptions(column string) charts.Options {
	return charts.Options{
		Width:  o.ChartWidth,
		Height: o.ChartHeight,
		Column: column,
	}
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Source is the dataset's source identifier.
	Source string

	// Column is the attribute that was analyzed.
	Column string

	// Classification is the numeric/categorical column partition of the
	// cleaned dataset.
	Classification dataset.Classification

	// Moments are the four descriptive moments of Column.
	Moments moments.Moments

	// Shape is the qualitative distribution description.
	Shape moments.Shape

	// ReportText is the formatted plain-text report.
	ReportText string

	// Artifacts maps each rendered chart kind to its file path.
	Artifacts map[charts.Kind]string

	// Outcomes maps every chart kind to what its renderer did.
	Outcomes map[charts.Kind]charts.Outcome

	// Stats contains timing and size information.
	Stats Stats
}

// Stats contains pipeline execution statistics.
type Stats struct {
	RowsLoaded  int
	RowsCleaned int
	SkippedRows int
	LoadTime    time.Duration
	CleanTime   time.Duration
	AnalyzeTime time.Duration
	RenderTime  time.Duration
	CacheHits   int
}
