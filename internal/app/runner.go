package app

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/haumont/cppcheck-analyzer/internal/config"
	"github.com/haumont/cppcheck-analyzer/internal/parser"
	"github.com/haumont/cppcheck-analyzer/internal/report"
	"github.com/haumont/cppcheck-analyzer/internal/util"
)

// Options selects which outputs a run produces. CSV is the caller's
// default when neither flag was given.
type Options struct {
	CSV    bool
	HTML   bool
	Filter report.Filter
}

// Runner orchestrates one analysis run: parse, tally, write outputs,
// print the console summary.
type Runner struct {
	config *config.Config
	logger *zap.SugaredLogger
}

// NewRunner creates a new Runner instance
func NewRunner(cfg *config.Config, logger *zap.SugaredLogger) *Runner {
	return &Runner{config: cfg, logger: logger}
}

// Run executes the full pipeline for one input file. A returned error is
// fatal and maps to exit status 1 at the CLI; HTML generation failure is
// non-fatal and only warned.
func (r *Runner) Run(inputPath string, opts Options) error {
	if err := r.config.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	if !util.FileExists(inputPath) {
		return fmt.Errorf("input file '%s' does not exist", inputPath)
	}

	if err := opts.Filter.Compile(); err != nil {
		return err
	}

	r.logger.Infof("Parsing cppcheck XML file: %s", inputPath)

	findings, err := parser.Load(inputPath)
	if err != nil {
		return err
	}
	rpt := parser.Aggregate(inputPath, findings)

	if !rpt.HasFindings() {
		fmt.Println("Warning: no errors found in the XML file")
		return nil
	}

	if err := util.EnsureDir(r.config.OutputDir); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	stem := report.Stem(inputPath)

	if opts.CSV {
		r.logger.Infof("Generating CSV files in: %s", r.config.OutputDir)
		if err := report.WriteCSVs(r.config.OutputDir, stem, rpt); err != nil {
			return err
		}
		allErrors, severities, errorOnly := report.CSVPaths(r.config.OutputDir, stem)
		r.logger.Infof("All errors CSV: %s", allErrors)
		r.logger.Infof("Severities CSV: %s", severities)
		r.logger.Infof("Error severity only CSV: %s", errorOnly)
	}

	if opts.HTML {
		htmlPath := report.HTMLPath(r.config.OutputDir, stem)
		r.logger.Infof("Generating HTML report: %s", htmlPath)

		reporter := &report.HTMLReporter{
			Filter:  opts.Filter,
			BaseURL: r.config.GitHubURL,
		}
		// Non-fatal: CSV output already written stays valid.
		if err := reporter.Write(htmlPath, rpt); err != nil {
			r.logger.Warnf("Skipping HTML report: %v", err)
		}
	}

	PrintSummary(rpt)

	return nil
}
