// Package charts renders the fixed set of chart artifacts for one dataset.
//
// Each renderer is a side-effect-free function returning PNG bytes plus an
// Outcome: writing artifacts to disk is the caller's concern. Renderers never
// mutate the dataset and never let a fault escape their boundary - internal
// rendering errors are converted into a skip outcome.
//
// Eligibility is decided per chart kind from the column classification. When
// a precondition is unmet the renderer degrades by skipping (returning no
// bytes) rather than failing the run. Column choice is always the first N
// eligible columns in load order; no correlation or cardinality heuristics.
package charts

import (
	"fmt"

	"github.com/trendlens/trendlens/pkg/dataset"
	"github.com/trendlens/trendlens/pkg/errors"
)

// Kind identifies one of the fixed chart kinds.
type Kind string

// The six chart kinds produced by a run.
const (
	KindRelational  Kind = "relational"
	KindStatistical Kind = "statistical"
	KindCategorical Kind = "categorical"
	KindScatter     Kind = "scatter"
	KindBar         Kind = "bar"
	KindHeatmap     Kind = "heatmap"
)

// Kinds returns all chart kinds in their canonical emission order.
func Kinds() []Kind {
	return []Kind{
		KindRelational, KindStatistical, KindCategorical,
		KindScatter, KindHeatmap, KindBar,
	}
}

// Outcome reports what a renderer did.
type Outcome int

// Renderer outcomes. Anything but OutcomeRendered means no artifact was
// produced for that kind.
const (
	OutcomeRendered Outcome = iota
	OutcomeSkippedInsufficientNumeric
	OutcomeSkippedNoCategorical
	OutcomeSkippedInternalFault
)

// String returns a short identifier for logs.
func (o Outcome) String() string {
	switch o {
	case OutcomeRendered:
		return "rendered"
	case OutcomeSkippedInsufficientNumeric:
		return "skipped-insufficient-numeric"
	case OutcomeSkippedNoCategorical:
		return "skipped-no-categorical"
	case OutcomeSkippedInternalFault:
		return "skipped-internal-fault"
	}
	return "unknown"
}

// Skipped reports whether the outcome means no artifact was produced.
func (o Outcome) Skipped() bool { return o != OutcomeRendered }

// SkipMessage returns the diagnostic for a skipped chart of the given kind.
func SkipMessage(k Kind, o Outcome) string {
	switch o {
	case OutcomeSkippedInsufficientNumeric:
		if k == KindHeatmap {
			return "not enough numeric data"
		}
		return "insufficient numeric columns"
	case OutcomeSkippedNoCategorical:
		return "no categorical data"
	case OutcomeSkippedInternalFault:
		return "chart rendering failed"
	}
	return ""
}

// Filename returns the deterministic artifact name for a chart kind. The
// overview charts have fixed names; the source-keyed charts embed the source
// identifier. Names are stable so a rerun overwrites its predecessors.
func Filename(k Kind, source string) string {
	switch k {
	case KindRelational:
		return "relational_plot.png"
	case KindStatistical:
		return "statistical_plot.png"
	case KindCategorical:
		return "categorical_plot.png"
	}
	return fmt.Sprintf("%s_%s.png", k, source)
}

// Options configures rendering.
type Options struct {
	// Width and Height are the image dimensions in pixels.
	Width  int
	Height int

	// Column is the analyzed numeric attribute; the statistical overview
	// chart draws its histogram. Empty means the first numeric column.
	Column string
}

// Default image dimensions.
const (
	DefaultWidth  = 800
	DefaultHeight = 600
)

// withDefaults fills in zero dimensions.
func (o Options) withDefaults() Options {
	if o.Width == 0 {
		o.Width = DefaultWidth
	}
	if o.Height == 0 {
		o.Height = DefaultHeight
	}
	return o
}

// Render produces the chart of the given kind for the dataset.
//
// A nil byte slice with a skip outcome means the precondition was unmet; the
// error is non-nil only for OutcomeSkippedInternalFault, and even then the
// caller is expected to log and continue rather than abort.
func Render(k Kind, d *dataset.Dataset, c dataset.Classification, opts Options) (png []byte, outcome Outcome, err error) {
	opts = opts.withDefaults()

	defer func() {
		if r := recover(); r != nil {
			png = nil
			outcome = OutcomeSkippedInternalFault
			err = errors.New(errors.ErrCodeRenderFailed, "%s chart panicked: %v", k, r)
		}
	}()

	switch k {
	case KindRelational:
		return renderRelational(d, c, opts)
	case KindStatistical:
		return renderStatistical(d, c, opts)
	case KindCategorical:
		return renderCategorical(d, c, opts)
	case KindScatter:
		return renderScatter(d, c, opts)
	case KindBar:
		return renderBar(d, c, opts)
	case KindHeatmap:
		return renderHeatmap(d, c, opts)
	}
	return nil, OutcomeSkippedInternalFault, errors.New(errors.ErrCodeRenderFailed, "unknown chart kind %q", k)
}

// fault wraps a rendering error into a skip outcome.
func fault(k Kind, err error) ([]byte, Outcome, error) {
	return nil, OutcomeSkippedInternalFault, errors.Wrap(errors.ErrCodeRenderFailed, err, "failed to render %s chart", k)
}
