package app

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/haumont/cppcheck-analyzer/internal/domain"
)

// Severity colors follow the usual security-tool palette.
var (
	sevErrorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF3838")).Bold(true)
	sevWarningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFB800"))
	sevStyleStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#4D96FF"))
	sevMutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280"))

	headerStyle = lipgloss.NewStyle().Bold(true)
)

func severityStyle(name string) lipgloss.Style {
	switch domain.Severity(name) {
	case domain.SeverityError:
		return sevErrorStyle
	case domain.SeverityWarning:
		return sevWarningStyle
	case domain.SeverityStyle:
		return sevStyleStyle
	default:
		return sevMutedStyle
	}
}

// PrintSummary prints the end-of-run console summary: unique counts,
// total occurrences, and the per-severity breakdown sorted alphabetically.
func PrintSummary(rpt *domain.Report) {
	fmt.Println()
	fmt.Println(headerStyle.Render("Summary:"))
	fmt.Printf("  Total unique error IDs: %d\n", rpt.UniqueIDs())
	fmt.Printf("  Total unique severities: %d\n", rpt.UniqueSeverities())
	fmt.Printf("  Total error occurrences: %d\n", rpt.TotalOccurrences())

	for _, e := range rpt.BySeverity.ByKey() {
		fmt.Printf("  %s: %d occurrences\n", severityStyle(e.Key).Render(e.Key), e.Count)
	}
}
