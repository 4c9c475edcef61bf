package domain

// Report holds the aggregate results of one analysis run
type Report struct {
	Source     string
	Findings   []Finding
	ByID       Tally
	BySeverity Tally
	ErrorOnly  Tally
}

// UniqueIDs returns the number of distinct error IDs
func (r *Report) UniqueIDs() int {
	return len(r.ByID)
}

// UniqueSeverities returns the number of distinct severities
func (r *Report) UniqueSeverities() int {
	return len(r.BySeverity)
}

// TotalOccurrences returns the total number of counted findings
func (r *Report) TotalOccurrences() int {
	return r.ByID.Total()
}

// HasFindings returns true if any finding carried a non-empty ID
func (r *Report) HasFindings() bool {
	return len(r.ByID) > 0
}
