package domain

import "strconv"

// Severity is a cppcheck severity classification. cppcheck emits lowercase
// names; values outside this list are passed through untouched.
type Severity string

const (
	SeverityError       Severity = "error"
	SeverityWarning     Severity = "warning"
	SeverityStyle       Severity = "style"
	SeverityPerformance Severity = "performance"
	SeverityPortability Severity = "portability"
	SeverityInformation Severity = "information"
)

// Finding represents one issue reported by cppcheck
type Finding struct {
	ID        string
	Severity  Severity
	Msg       string
	Verbose   string
	Locations []Location
}

// Location is a (file, line, column) pointer attached to a finding
type Location struct {
	File   string
	Line   string
	Column string
	Info   string
}

// LineNumber returns the location's line as an integer. Non-numeric or
// missing lines sort as 0.
func (l Location) LineNumber() int {
	n, err := strconv.Atoi(l.Line)
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// IsErrorSeverity returns true if the finding's severity is exactly "error"
func (f *Finding) IsErrorSeverity() bool {
	return f.Severity == SeverityError
}
