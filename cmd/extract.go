// Package cmd — extract command.
// This is the main command that orchestrates the pipeline:
// discover → load → extract → collect → render → write.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/gaurav-prasanna/wikichunk/core"
	"github.com/gaurav-prasanna/wikichunk/core/config"
	"github.com/gaurav-prasanna/wikichunk/core/corpus"
	"github.com/gaurav-prasanna/wikichunk/core/coverage"
	"github.com/gaurav-prasanna/wikichunk/core/metrics"
	"github.com/gaurav-prasanna/wikichunk/core/output"
	"github.com/gaurav-prasanna/wikichunk/core/pipeline"
	"github.com/gaurav-prasanna/wikichunk/core/render"
)

// Flag variables.
var (
	flagInput        string
	flagOutput       string
	flagReport       string
	flagReportFormat string
	flagMetricsFile  string
	flagWorkers      int
	flagInclude      []string
	flagExtractors   []string
	flagIgnore       []string
)

var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Extract chunks from a directory of pages",
	Long: `Extract walks the input directory, runs every configured extractor over
each page in parallel, and writes the chunk stream as JSON plus a coverage
report listing unhandled section headers and table fields.

A page that cannot be read or parsed is logged and skipped; it never stops
the run.

Examples:
  wikichunk extract --input ./pages
  wikichunk extract -i ./pages -o out/chunks.json --report-format markdown
  wikichunk extract -i ./pages --extractors infobox,drops --workers 4
  wikichunk extract -i ./pages --metrics-file /var/lib/node_exporter/wikichunk.prom`,
	Args: cobra.NoArgs,
	RunE: runExtract,
}

func init() {
	rootCmd.AddCommand(extractCmd)

	f := extractCmd.Flags()
	f.StringVarP(&flagInput, "input", "i", "", "Directory of downloaded pages")
	f.StringVarP(&flagOutput, "output", "o", "", "Chunk stream output file (default chunks.json)")
	f.StringVar(&flagReport, "report", "", "Coverage report file (default derived from --output)")
	f.StringVar(&flagReportFormat, "report-format", "", "Coverage report format: json, markdown or pdf")
	f.StringVar(&flagMetricsFile, "metrics-file", "", "Write Prometheus metrics to this textfile")
	f.IntVar(&flagWorkers, "workers", 0, "Parallel documents (default one per CPU)")
	f.StringSliceVar(&flagInclude, "include", nil, "Glob patterns of files to process, relative to --input")
	f.StringSliceVar(&flagExtractors, "extractors", nil, "Extractors to run, in order (default all)")
	f.StringSliceVar(&flagIgnore, "ignore", nil, "Section headings to leave out of the coverage report")
}

// applyExtractFlags overrides configuration with the flags set explicitly.
func applyExtractFlags(flags *pflag.FlagSet, cfg *config.Config) {
	set := func(name string, apply func()) {
		if flags.Changed(name) {
			apply()
		}
	}
	set("input", func() { cfg.InputDir = flagInput })
	set("output", func() { cfg.OutputFile = flagOutput })
	set("report", func() { cfg.ReportFile = flagReport })
	set("report-format", func() { cfg.ReportFormat = flagReportFormat })
	set("metrics-file", func() { cfg.MetricsFile = flagMetricsFile })
	set("workers", func() { cfg.Workers = flagWorkers })
	set("include", func() { cfg.Include = flagInclude })
	set("extractors", func() { cfg.Pipeline.Extractors = flagExtractors })
	set("ignore", func() { cfg.Pipeline.IgnoredSections = flagIgnore })
}

func runExtract(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	applyExtractFlags(cmd.Flags(), cfg)
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration:\n%w", err)
	}

	log, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer log.Sync() //nolint:errcheck

	// Select renderer before doing any work.
	reportRenderer, err := render.ReportRenderer(cfg.ReportFormat)
	if err != nil {
		return err
	}

	coord, err := pipeline.New(pipeline.Options{
		Extractors: cfg.Pipeline.Extractors,
		Ignored:    cfg.Pipeline.IgnoredSections,
		Logger:     log,
	})
	if err != nil {
		return fmt.Errorf("initializing pipeline: %w", err)
	}

	var m *metrics.Metrics
	if cfg.MetricsFile != "" {
		m = metrics.New()
	}

	fmt.Fprintf(os.Stdout, "Extracting pages from %s...\n", cfg.InputDir)
	sum, err := corpus.New(coord, corpus.Options{
		Root:    cfg.InputDir,
		Include: cfg.Include,
		Workers: cfg.EffectiveWorkers(),
		Logger:  log,
		Metrics: m,
	}).Run(cmd.Context())
	if err != nil {
		return err
	}

	writer, err := output.New("")
	if err != nil {
		return fmt.Errorf("initializing output writer: %w", err)
	}

	if err := writeRendered[[]core.Chunk](writer, cfg.OutputFile, render.NewChunksJSON(), sum.Chunks); err != nil {
		return err
	}

	reportPath := cfg.ReportFile
	if reportPath == "" {
		reportPath = output.ReportPath(cfg.OutputFile, reportRenderer.Extension())
	}
	if err := writeRendered[*coverage.Report](writer, reportPath, reportRenderer, sum.Coverage); err != nil {
		return err
	}

	if m != nil {
		if err := m.WriteFile(cfg.MetricsFile); err != nil {
			return err
		}
		fmt.Fprintf(os.Stdout, "✓ Written: %s\n", cfg.MetricsFile)
	}

	fmt.Fprintf(os.Stdout, "Processed %d pages: %d chunks, %d unhandled labels\n",
		sum.Documents, len(sum.Chunks), len(sum.Coverage.SectionHeaders)+len(sum.Coverage.TableFields))
	if sum.Skipped > 0 {
		fmt.Fprintf(os.Stderr, "%d/%d pages skipped (not HTML)\n", sum.Skipped, sum.Documents)
	}
	if len(sum.Failures) > 0 {
		fmt.Fprintf(os.Stderr, "%d/%d pages failed\n", len(sum.Failures), sum.Documents)
		for _, f := range sum.Failures {
			fmt.Fprintf(os.Stderr, "  ✗ %s: %v\n", f.Path, f.Err)
		}
	}
	return nil
}

func writeRendered[T any](w *output.Writer, path string, r core.Renderer[T], v T) error {
	data, err := r.Render(v)
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}
	written, err := w.Write(path, data)
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stdout, "✓ Written: %s\n", written)
	return nil
}
