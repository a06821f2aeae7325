package pipeline

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"

	"github.com/trendlens/trendlens/pkg/cache"
	"github.com/trendlens/trendlens/pkg/charts"
	"github.com/trendlens/trendlens/pkg/dataset"
	"github.com/trendlens/trendlens/pkg/errors"
	"github.com/trendlens/trendlens/pkg/moments"
	"github.com/trendlens/trendlens/pkg/report"
)

// Runner encapsulates pipeline execution with artifact caching.
//
// The Runner is stateless except for the cache and logger - it doesn't store
// run results, so one Runner can serve multiple Execute calls with different
// options.
type Runner struct {
	Cache  cache.Cache
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and logger.
// If c is nil, a NullCache is used (caching disabled).
// If logger is nil, the default logger is used.
func NewRunner(c cache.Cache, logger *log.Logger) *Runner {
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Cache: c, Logger: logger}
}

// Execute runs the complete load → clean → analyze → render pipeline.
//
// Load, clean, and analyze failures are fatal and returned to the caller.
// Chart rendering degrades per kind: unmet preconditions and internal render
// faults are logged as warnings, recorded in Result.Outcomes, and never
// abort the run.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	logger := opts.Logger

	result := &Result{
		Artifacts: make(map[charts.Kind]string),
		Outcomes:  make(map[charts.Kind]charts.Outcome),
	}

	// Stage 1: Load
	loadStart := time.Now()
	ds, err := dataset.Load(opts.Input, dataset.Options{Delimiter: opts.Delimiter})
	if err != nil {
		logger.Error("failed to load dataset", "input", opts.Input, "err", errors.UserMessage(err))
		return nil, err
	}
	result.Source = ds.Source()
	result.Stats.LoadTime = time.Since(loadStart)
	result.Stats.RowsLoaded = ds.NumRows()
	result.Stats.SkippedRows = ds.SkippedRows()

	logger.Info("loaded dataset",
		"source", ds.Source(),
		"rows", ds.NumRows(),
		"cols", ds.NumCols(),
		"duration", result.Stats.LoadTime)
	if n := ds.SkippedRows(); n > 0 {
		logger.Warn("skipped malformed rows", "count", n)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Stage 2: Clean
	cleanStart := time.Now()
	cleaned, err := dataset.Clean(ds, logger)
	if err != nil {
		return nil, err
	}
	result.Stats.CleanTime = time.Since(cleanStart)
	result.Stats.RowsCleaned = cleaned.NumRows()

	if cleaned.NumRows() == 0 {
		return nil, errors.New(errors.ErrCodeEmptyDataset, "no rows remain after cleaning %s", ds.Source())
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Stage 3: Analyze
	analyzeStart := time.Now()
	cls := dataset.Classify(cleaned)
	result.Classification = cls

	if len(cls.Numeric) == 0 {
		return nil, errors.New(errors.ErrCodeNoNumericData, "no numeric data in %s", ds.Source())
	}

	column := opts.Column
	if column == "" {
		column = cls.Numeric[0]
	} else if !cls.IsNumeric(column) {
		return nil, errors.New(errors.ErrCodeColumnNotFound, "column %q is not a numeric attribute of %s", column, ds.Source())
	}
	result.Column = column

	m, err := moments.Compute(cleaned, column)
	if err != nil {
		return nil, err
	}
	result.Moments = m
	result.Shape = moments.ShapeOf(m)
	result.ReportText = report.Text(column, m, result.Shape)
	result.Stats.AnalyzeTime = time.Since(analyzeStart)

	logger.Info("computed moments",
		"column", column,
		"mean", m.Mean,
		"std", m.StdDev,
		"skewness", m.Skewness,
		"excess_kurtosis", m.ExcessKurtosis,
		"duration", result.Stats.AnalyzeTime)
	logger.Info("classified distribution",
		"skew", result.Shape.Skew,
		"kurtosis", result.Shape.Kurtosis)

	// Stage 4: Render
	if !opts.SkipCharts {
		renderStart := time.Now()
		if err := r.renderCharts(ctx, cleaned, cls, opts, column, result); err != nil {
			return nil, err
		}
		result.Stats.RenderTime = time.Since(renderStart)

		logger.Info("rendered charts",
			"artifacts", len(result.Artifacts),
			"cache_hits", result.Stats.CacheHits,
			"duration", result.Stats.RenderTime)
	}

	return result, nil
}

// renderCharts runs every chart kind over the cleaned dataset, writing
// rendered artifacts into opts.OutputDir. Each kind fails independently.
func (r *Runner) renderCharts(ctx context.Context, d *dataset.Dataset, cls dataset.Classification, opts Options, column string, result *Result) error {
	logger := opts.Logger

	if err := os.MkdirAll(opts.OutputDir, 0755); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "cannot create output directory %s", opts.OutputDir)
	}

	datasetHash := contentHash(d)
	chartOpts := opts.chartOptions(column)

	for _, kind := range charts.Kinds() {
		if err := ctx.Err(); err != nil {
			return err
		}

		png, outcome, hit := r.renderOne(ctx, kind, d, cls, chartOpts, datasetHash, column, logger)
		result.Outcomes[kind] = outcome
		if hit {
			result.Stats.CacheHits++
		}
		if outcome.Skipped() {
			continue
		}

		path := filepath.Join(opts.OutputDir, charts.Filename(kind, d.Source()))
		if err := os.WriteFile(path, png, 0644); err != nil {
			logger.Warn("failed to write chart artifact", "chart", kind, "path", path, "err", err)
			result.Outcomes[kind] = charts.OutcomeSkippedInternalFault
			continue
		}
		result.Artifacts[kind] = path
		logger.Info("saved chart", "chart", kind, "path", path)
	}
	return nil
}

// renderOne produces the PNG for a single chart kind, consulting the
// artifact cache first. Skips and faults are logged here.
func (r *Runner) renderOne(ctx context.Context, kind charts.Kind, d *dataset.Dataset, cls dataset.Classification, chartOpts charts.Options, datasetHash, column string, logger *log.Logger) (png []byte, outcome charts.Outcome, cacheHit bool) {
	key := cache.ArtifactKey(datasetHash, string(kind), column, chartOpts.Width, chartOpts.Height)

	if data, hit, err := r.Cache.Get(ctx, key); err == nil && hit {
		return data, charts.OutcomeRendered, true
	}

	png, outcome, err := charts.Render(kind, d, cls, chartOpts)
	if err != nil {
		logger.Warn("chart rendering failed", "chart", kind, "err", errors.UserMessage(err))
		return nil, outcome, false
	}
	if outcome.Skipped() {
		logger.Warn(charts.SkipMessage(kind, outcome), "chart", kind, "source", d.Source())
		return nil, outcome, false
	}

	_ = r.Cache.Set(ctx, key, png, cache.TTLArtifact)
	return png, outcome, false
}

// contentHash derives the cache identity of a cleaned dataset from its full
// records.
func contentHash(d *dataset.Dataset) string {
	data, err := json.Marshal(d.Records())
	if err != nil {
		return d.Source()
	}
	return cache.Hash(data)
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
