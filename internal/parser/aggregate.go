package parser

import "github.com/haumont/cppcheck-analyzer/internal/domain"

// Aggregate tallies the findings three ways: occurrences per error ID,
// occurrences per severity, and occurrences per error ID restricted to
// findings whose severity is exactly "error". Findings missing an attribute
// are skipped for the affected tally only.
func Aggregate(source string, findings []domain.Finding) *domain.Report {
	rpt := &domain.Report{
		Source:     source,
		Findings:   findings,
		ByID:       domain.Tally{},
		BySeverity: domain.Tally{},
		ErrorOnly:  domain.Tally{},
	}

	for _, f := range findings {
		rpt.ByID.Add(f.ID)
		rpt.BySeverity.Add(string(f.Severity))
	}

	// Separate pass over the parsed findings, filtering on severity before
	// counting. Must not re-read the input file.
	for _, f := range findings {
		if f.IsErrorSeverity() {
			rpt.ErrorOnly.Add(f.ID)
		}
	}

	return rpt
}
