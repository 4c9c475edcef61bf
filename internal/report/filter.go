package report

import (
	"fmt"
	"strings"

	"github.com/gobwas/glob"

	"github.com/haumont/cppcheck-analyzer/internal/domain"
)

// Filter narrows which findings and locations appear in the HTML report.
// Nil or empty sets leave that dimension unfiltered.
type Filter struct {
	Severities  []string
	IDs         []string
	ExcludeIDs  []string
	FilePattern string

	fileGlob glob.Glob
}

// Compile validates and compiles the filename pattern. Must be called
// before MatchFile when FilePattern is set. The pattern is a shell-style
// glob where * spans path separators, matching cppcheck's convention.
func (f *Filter) Compile() error {
	if f.FilePattern == "" {
		return nil
	}
	g, err := glob.Compile(f.FilePattern)
	if err != nil {
		return fmt.Errorf("invalid file pattern %q: %w", f.FilePattern, err)
	}
	f.fileGlob = g
	return nil
}

// IsZero returns true when no filter dimension is active
func (f Filter) IsZero() bool {
	return len(f.Severities) == 0 && len(f.IDs) == 0 &&
		len(f.ExcludeIDs) == 0 && f.FilePattern == ""
}

// MatchFinding applies the severity allow-list, ID allow-list and ID
// deny-list, in that order.
func (f Filter) MatchFinding(finding domain.Finding) bool {
	if len(f.Severities) > 0 && !contains(f.Severities, string(finding.Severity)) {
		return false
	}
	if len(f.IDs) > 0 && !contains(f.IDs, finding.ID) {
		return false
	}
	if contains(f.ExcludeIDs, finding.ID) {
		return false
	}
	return true
}

// MatchFile applies the filename glob to one location's file path.
// Locations fail independently, so a multi-location finding may surface
// under only some of its files.
func (f Filter) MatchFile(file string) bool {
	if f.FilePattern == "" {
		return true
	}
	return f.fileGlob != nil && f.fileGlob.Match(file)
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

// SplitList splits a comma-separated flag value into trimmed entries,
// dropping empty ones.
func SplitList(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(s, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
