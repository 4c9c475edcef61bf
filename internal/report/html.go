package report

import (
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/Masterminds/sprig/v3"

	"github.com/haumont/cppcheck-analyzer/internal/domain"
)

// HTMLReporter renders findings grouped by source file into a single
// styled HTML document. BaseURL, when set, is a source-browser prefix
// (e.g. https://github.com/user/repo/blob/main) used to hyperlink file
// headers and line numbers.
type HTMLReporter struct {
	Filter  Filter
	BaseURL string
}

// HTMLPath returns the HTML output path for an input stem
func HTMLPath(outDir, stem string) string {
	return filepath.Join(outDir, stem+"_report.html")
}

type htmlPage struct {
	Stem        string
	Source      string
	FileCount   int
	TotalErrors int
	Severities  []string
	IDs         []string
	ExcludeIDs  []string
	FilePattern string
	Files       []fileSection
}

type fileSection struct {
	Name    string
	Href    string
	Entries []htmlEntry
}

type htmlEntry struct {
	ID       string
	Severity string
	Msg      string
	Verbose  string
	Line     string
	Column   string
	LineHref string
	Info     string

	lineNum int
}

// Write renders the filtered, grouped report to path
func (r *HTMLReporter) Write(path string, rpt *domain.Report) error {
	page := r.buildPage(rpt)

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating HTML report: %w", err)
	}
	defer f.Close()

	if err := reportTemplate.Execute(f, page); err != nil {
		return fmt.Errorf("rendering HTML report: %w", err)
	}
	return nil
}

func (r *HTMLReporter) buildPage(rpt *domain.Report) htmlPage {
	groups := map[string][]htmlEntry{}

	for _, finding := range rpt.Findings {
		if !r.Filter.MatchFinding(finding) {
			continue
		}
		// Findings with no location have no file to group under.
		for _, loc := range finding.Locations {
			if !r.Filter.MatchFile(loc.File) {
				continue
			}
			entry := htmlEntry{
				ID:       finding.ID,
				Severity: string(finding.Severity),
				Msg:      finding.Msg,
				Line:     loc.Line,
				Column:   loc.Column,
				Info:     loc.Info,
				lineNum:  loc.LineNumber(),
			}
			if finding.Verbose != "" && finding.Verbose != finding.Msg {
				entry.Verbose = finding.Verbose
			}
			if r.BaseURL != "" && isDigits(loc.Line) {
				entry.LineHref = r.sourceLink(loc.File) + "#L" + loc.Line
			}
			groups[loc.File] = append(groups[loc.File], entry)
		}
	}

	page := htmlPage{
		Stem:        Stem(rpt.Source),
		Source:      rpt.Source,
		FileCount:   len(groups),
		Severities:  r.Filter.Severities,
		IDs:         r.Filter.IDs,
		ExcludeIDs:  r.Filter.ExcludeIDs,
		FilePattern: r.Filter.FilePattern,
	}

	names := make([]string, 0, len(groups))
	for name := range groups {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		entries := groups[name]
		sort.SliceStable(entries, func(i, j int) bool {
			return entries[i].lineNum < entries[j].lineNum
		})
		section := fileSection{Name: name, Entries: entries}
		if r.BaseURL != "" {
			section.Href = r.sourceLink(name)
		}
		page.TotalErrors += len(entries)
		page.Files = append(page.Files, section)
	}

	return page
}

func (r *HTMLReporter) sourceLink(file string) string {
	return strings.TrimRight(r.BaseURL, "/") + "/" + file
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	_, err := strconv.Atoi(s)
	return err == nil
}

var reportTemplate = template.Must(template.New("report").Funcs(sprig.HtmlFuncMap()).Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>Cppcheck Report - {{.Stem}}</title>
<style>
body { font-family: Arial, sans-serif; margin: 20px; }
.file-section { margin-bottom: 30px; border: 1px solid #ddd; border-radius: 5px; }
.file-header { background-color: #f5f5f5; padding: 10px; font-weight: bold; font-size: 18px; }
.error { margin: 10px; padding: 10px; border-left: 4px solid #ff4444; background-color: #fff5f5; }
.error.error { border-left-color: #ff4444; }
.error.warning { border-left-color: #ffaa00; }
.error.style { border-left-color: #4444ff; }
.error.info { border-left-color: #44ff44; }
.error-header { font-weight: bold; margin-bottom: 5px; }
.error-id { color: #666; font-size: 12px; }
.error-msg { margin: 5px 0; }
.error-verbose { color: #666; font-size: 14px; margin: 5px 0; }
.error-location { color: #888; font-size: 12px; }
.error-info { color: #666; font-style: italic; }
.summary { background-color: #f0f0f0; padding: 15px; margin-bottom: 20px; border-radius: 5px; }
a { color: #0366d6; text-decoration: none; }
a:hover { text-decoration: underline; }
.file-header a { color: inherit; }
.file-header a:hover { text-decoration: underline; }
</style>
</head>
<body>
<h1>Cppcheck Report</h1>
<div class="summary">
<h2>Summary</h2>
<p><strong>Source:</strong> {{.Source}}</p>
<p><strong>Files with errors:</strong> {{.FileCount}}</p>
<p><strong>Total errors:</strong> {{.TotalErrors}}</p>
{{- if .Severities}}
<p><strong>Severities included:</strong> {{join ", " .Severities}}</p>
{{- end}}
{{- if .IDs}}
<p><strong>Error IDs included:</strong> {{join ", " .IDs}}</p>
{{- end}}
{{- if .ExcludeIDs}}
<p><strong>Error IDs excluded:</strong> {{join ", " .ExcludeIDs}}</p>
{{- end}}
{{- if .FilePattern}}
<p><strong>File pattern:</strong> {{.FilePattern}}</p>
{{- end}}
</div>
{{- range .Files}}
<div class="file-section">
<div class="file-header">{{if .Href}}<a href="{{.Href}}" target="_blank">{{.Name}}</a>{{else}}{{.Name}}{{end}} ({{len .Entries}} errors)</div>
{{- range .Entries}}
<div class="error {{.Severity}}">
<div class="error-header"><span class="error-id">{{.ID}}</span> - {{.Severity | upper}}</div>
<div class="error-msg">{{.Msg}}</div>
{{- if .Verbose}}
<div class="error-verbose">{{.Verbose}}</div>
{{- end}}
<div class="error-location">{{if .LineHref}}<a href="{{.LineHref}}" target="_blank">Line {{.Line}}</a>{{else}}Line {{.Line}}{{end}}, Column {{.Column}}</div>
{{- if .Info}}
<div class="error-info">{{.Info}}</div>
{{- end}}
</div>
{{- end}}
</div>
{{- end}}
</body>
</html>
`))
