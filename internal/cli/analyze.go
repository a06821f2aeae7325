package cli

import (
	"context"
	"fmt"
	"os"
	"unicode/utf8"

	"github.com/spf13/cobra"

	"github.com/trendlens/trendlens/pkg/charts"
	"github.com/trendlens/trendlens/pkg/pipeline"
	"github.com/trendlens/trendlens/pkg/report"
)

// analyzeFlags holds the raw flag values of the analyze command before they
// are merged with the config file.
type analyzeFlags struct {
	configPath string
	outputDir  string
	column     string
	delimiter  string
	logFile    string
	noCache    bool
	noCharts   bool
}

// analyzeCommand creates the analyze command, the primary entry point.
func (c *CLI) analyzeCommand() *cobra.Command {
	var flags analyzeFlags

	cmd := &cobra.Command{
		Use:   "analyze [data.csv]",
		Short: "Analyze a CSV file and render its charts",
		Long: `Analyze a CSV file and render its charts.

The analyze command loads the CSV, skips malformed rows, drops rows with
missing values, and computes mean, standard deviation, skewness, and excess
kurtosis for one numeric attribute (the first one by default, or --column).
It prints a short report describing the distribution shape and writes the
chart artifacts the dataset supports into the output directory.

Charts whose preconditions the dataset cannot meet (e.g. a scatter plot with
fewer than two numeric columns) are skipped with a warning; the analysis
itself still completes.

Rendered artifacts are cached locally for faster subsequent runs.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runAnalyze(cmd.Context(), args[0], flags)
		},
	}

	cmd.Flags().StringVar(&flags.configPath, "config", "", "config file (default trendlens.toml if present)")
	cmd.Flags().StringVarP(&flags.outputDir, "output-dir", "o", "", "directory for chart artifacts (default current directory)")
	cmd.Flags().StringVarP(&flags.column, "column", "c", "", "numeric attribute to analyze (default first numeric column)")
	cmd.Flags().StringVar(&flags.delimiter, "delimiter", "", `CSV field delimiter (default ",", use "tab" for TSV)`)
	cmd.Flags().StringVar(&flags.logFile, "log-file", "", "also write logs to this file")
	cmd.Flags().BoolVar(&flags.noCache, "no-cache", false, "disable artifact caching")
	cmd.Flags().BoolVar(&flags.noCharts, "no-charts", false, "skip chart rendering, report only")

	return cmd
}

// runAnalyze merges flags with the config file and executes the pipeline.
func (c *CLI) runAnalyze(ctx context.Context, input string, flags analyzeFlags) error {
	cfg, err := loadConfig(flags.configPath)
	if err != nil {
		return err
	}
	cfg.merge(&flags)

	logger := loggerFromContext(ctx)
	if flags.logFile != "" {
		teed, closer, err := teeLogger(os.Stderr, flags.logFile, logger.GetLevel())
		if err != nil {
			return err
		}
		defer closer.Close()
		logger = teed
	}

	delimiter, err := parseDelimiter(flags.delimiter)
	if err != nil {
		return err
	}

	runner, err := c.newRunner(flags.noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	opts := pipeline.Options{
		Input:      input,
		OutputDir:  flags.outputDir,
		Column:     flags.column,
		Delimiter:  delimiter,
		SkipCharts: flags.noCharts,
		Logger:     logger,
	}

	prog := newProgress(logger)
	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Analyzing %s...", input))
	spinner.Start()

	result, err := runner.Execute(ctx, opts)
	if err != nil {
		spinner.StopWithError("Analysis failed")
		return err
	}
	spinner.Stop()

	printNewline()
	fmt.Println(report.Styled(result.Column, result.Moments, result.Shape))
	printNewline()

	printReportArtifacts(result)
	printStats(result.Stats.RowsCleaned, len(result.Artifacts), result.Stats.CacheHits)
	prog.done(fmt.Sprintf("Analyzed %d rows of %s", result.Stats.RowsCleaned, result.Source))

	return nil
}

// printReportArtifacts lists the written chart files and warns about skips.
func printReportArtifacts(result *pipeline.Result) {
	for _, kind := range charts.Kinds() {
		outcome, ok := result.Outcomes[kind]
		if !ok {
			continue
		}
		if outcome.Skipped() {
			printWarning("%s", charts.SkipMessage(kind, outcome))
			continue
		}
		printFile(result.Artifacts[kind])
	}
}

// parseDelimiter interprets the --delimiter flag. Empty means comma, "tab"
// and the escape sequence "\t" both mean a tab, anything else must be a
// single character.
func parseDelimiter(s string) (rune, error) {
	switch s {
	case "":
		return 0, nil
	case "tab", `\t`:
		return '\t', nil
	}
	r, size := utf8.DecodeRuneInString(s)
	if size != len(s) || r == utf8.RuneError {
		return 0, fmt.Errorf("delimiter must be a single character, got %q", s)
	}
	return r, nil
}
