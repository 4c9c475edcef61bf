package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/haumont/cppcheck-analyzer/internal/app"
	"github.com/haumont/cppcheck-analyzer/internal/config"
	"github.com/haumont/cppcheck-analyzer/internal/report"
)

var (
	version = "1.3.0"

	cfgFile     string
	outputDir   string
	csvOut      bool
	htmlOut     bool
	severities  string
	errorIDs    string
	notErrorIDs string
	filePattern string
	githubURL   string
	verbose     bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "cppcheck-analyzer <input-file>",
		Short: "Parse cppcheck XML output and generate CSV or HTML reports",
		Long: `cppcheck-analyzer ingests cppcheck XML reports and emits aggregate CSV
summaries (error IDs, severities, error-severity-only) and an optional
filterable HTML report grouped by source file.`,
		Version: version,
		Args:    cobra.MaximumNArgs(1),
		RunE:    run,
	}

	rootCmd.Flags().StringVarP(&cfgFile, "config", "c", "", "Path to config file (default: ~/.config/cppcheck-analyzer/config.yaml)")
	rootCmd.Flags().StringVarP(&outputDir, "output-dir", "o", "", "Output directory for generated files (default: current directory)")
	rootCmd.Flags().BoolVar(&csvOut, "csv", false, "Generate CSV files (default behavior)")
	rootCmd.Flags().BoolVar(&htmlOut, "html", false, "Generate HTML report")
	rootCmd.Flags().StringVar(&severities, "severity", "", "Comma-separated list of severities to include (for HTML output)")
	rootCmd.Flags().StringVar(&errorIDs, "error-id", "", "Comma-separated list of error IDs to include (for HTML output)")
	rootCmd.Flags().StringVar(&notErrorIDs, "not-error-id", "", "Comma-separated list of error IDs to exclude (for HTML output)")
	rootCmd.Flags().StringVar(&filePattern, "file", "", "Wildcard expression to match file names (for HTML output)")
	rootCmd.Flags().StringVar(&githubURL, "github", "", "Source browser base URL (e.g. https://github.com/user/repo/blob/main) for file links")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		_ = cmd.Help()
		os.Exit(1)
	}
	inputPath := args[0]

	// Load configuration
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Override config with CLI flags
	if outputDir != "" {
		cfg.OutputDir = outputDir
	}
	if githubURL != "" {
		cfg.GitHubURL = githubURL
	}
	cfg.GitHubURL = strings.TrimRight(cfg.GitHubURL, "/")
	cfg.Verbose = verbose

	logger, err := newLogger(cfg.Verbose)
	if err != nil {
		return fmt.Errorf("initializing logger: %w", err)
	}
	defer logger.Sync()

	opts := app.Options{
		CSV:  csvOut || !htmlOut, // CSV is the default output
		HTML: htmlOut,
		Filter: report.Filter{
			Severities:  mergeFilter(severities, cfg.Filters.Severities),
			IDs:         mergeFilter(errorIDs, cfg.Filters.ErrorIDs),
			ExcludeIDs:  mergeFilter(notErrorIDs, cfg.Filters.NotErrorIDs),
			FilePattern: firstNonEmpty(filePattern, cfg.Filters.FilePattern),
		},
	}

	runner := app.NewRunner(cfg, logger.Sugar())
	return runner.Run(inputPath, opts)
}

// newLogger builds a console zap logger: development config when verbose,
// production at info level otherwise.
func newLogger(verbose bool) (*zap.Logger, error) {
	var logConfig zap.Config
	if verbose {
		logConfig = zap.NewDevelopmentConfig()
	} else {
		logConfig = zap.NewProductionConfig()
		logConfig.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	}
	logConfig.Encoding = "console"
	return logConfig.Build()
}

// mergeFilter prefers the CLI flag over the configured default
func mergeFilter(flagValue string, configured []string) []string {
	if flagValue != "" {
		return report.SplitList(flagValue)
	}
	return configured
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
