package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/haumont/cppcheck-analyzer/internal/domain"
)

func TestFilterMatchFinding(t *testing.T) {
	finding := domain.Finding{ID: "nullPointer", Severity: domain.SeverityError}

	tests := []struct {
		name   string
		filter Filter
		want   bool
	}{
		{"no_filters", Filter{}, true},
		{"severity_allowed", Filter{Severities: []string{"error", "warning"}}, true},
		{"severity_rejected", Filter{Severities: []string{"style"}}, false},
		{"id_allowed", Filter{IDs: []string{"nullPointer"}}, true},
		{"id_rejected", Filter{IDs: []string{"uninitvar"}}, false},
		{"id_excluded", Filter{ExcludeIDs: []string{"nullPointer"}}, false},
		{"other_id_excluded", Filter{ExcludeIDs: []string{"uninitvar"}}, true},
		{"allowed_then_excluded", Filter{IDs: []string{"nullPointer"}, ExcludeIDs: []string{"nullPointer"}}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.filter.MatchFinding(finding))
		})
	}
}

func TestFilterMatchFile(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		file    string
		want    bool
	}{
		{"no_pattern", "", "src/main.c", true},
		{"star_spans_directories", "*.c", "src/main.c", true},
		{"suffix_mismatch", "*.c", "src/main.h", false},
		{"directory_prefix", "src/*", "src/util/str.c", true},
		{"question_mark", "main.?", "main.c", true},
		{"exact", "src/main.c", "src/main.c", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := Filter{FilePattern: tt.pattern}
			require.NoError(t, f.Compile())
			assert.Equal(t, tt.want, f.MatchFile(tt.file))
		})
	}
}

func TestFilterCompile_BadPattern(t *testing.T) {
	f := Filter{FilePattern: "src/[.c"}
	assert.Error(t, f.Compile())
}

func TestFilterIsZero(t *testing.T) {
	assert.True(t, Filter{}.IsZero())
	assert.False(t, Filter{Severities: []string{"error"}}.IsZero())
	assert.False(t, Filter{FilePattern: "*.c"}.IsZero())
}

func TestSplitList(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"empty", "", nil},
		{"single", "error", []string{"error"}},
		{"multiple", "error,warning,style", []string{"error", "warning", "style"}},
		{"trims_whitespace", " error , warning ", []string{"error", "warning"}},
		{"drops_empty_entries", "error,,warning,", []string{"error", "warning"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SplitList(tt.input))
		})
	}
}
