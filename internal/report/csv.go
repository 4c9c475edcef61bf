// Package report renders analysis results to CSV files and an HTML report.
package report

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/haumont/cppcheck-analyzer/internal/domain"
)

// CSV column order is Count first, then the key. Downstream spreadsheet
// consumers depend on this; do not swap it.

// CSVPaths returns the three CSV output paths for an input stem
func CSVPaths(outDir, stem string) (allErrors, severities, errorOnly string) {
	allErrors = filepath.Join(outDir, stem+"_all_errors.csv")
	severities = filepath.Join(outDir, stem+"_severities.csv")
	errorOnly = filepath.Join(outDir, stem+"_error_severity_only.csv")
	return
}

// WriteCSVs writes all three CSV files for the report into outDir
func WriteCSVs(outDir, stem string, rpt *domain.Report) error {
	allErrors, severities, errorOnly := CSVPaths(outDir, stem)

	if err := writeTally(allErrors, "Error ID", rpt.ByID.ByCountAscending()); err != nil {
		return fmt.Errorf("all errors CSV: %w", err)
	}
	if err := writeTally(severities, "Severity", rpt.BySeverity.ByKey()); err != nil {
		return fmt.Errorf("severities CSV: %w", err)
	}
	if err := writeTally(errorOnly, "Error ID", rpt.ErrorOnly.ByCountAscending()); err != nil {
		return fmt.Errorf("error severity only CSV: %w", err)
	}
	return nil
}

func writeTally(path, keyHeader string, entries []domain.Entry) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	_ = w.Write([]string{"Count", keyHeader})
	for _, e := range entries {
		_ = w.Write([]string{strconv.Itoa(e.Count), e.Key})
	}
	w.Flush()
	return w.Error()
}

// Stem returns the input file's base name without its extension,
// used to derive output file names.
func Stem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
