// Package parser loads cppcheck XML output into domain findings.
package parser

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/haumont/cppcheck-analyzer/internal/domain"
)

// errorElement mirrors one <error> element of cppcheck's XML output
type errorElement struct {
	ID        string            `xml:"id,attr"`
	Severity  string            `xml:"severity,attr"`
	Msg       string            `xml:"msg,attr"`
	Verbose   string            `xml:"verbose,attr"`
	Locations []locationElement `xml:"location"`
}

type locationElement struct {
	File   string `xml:"file,attr"`
	Line   string `xml:"line,attr"`
	Column string `xml:"column,attr"`
	Info   string `xml:"info,attr"`
}

// Load parses the cppcheck XML file at path and returns every <error>
// element found, regardless of nesting depth. Read and syntax errors are
// fatal to the caller; a well-formed file with no findings returns an
// empty slice.
func Load(path string) ([]domain.Finding, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening XML file: %w", err)
	}
	defer f.Close()

	return decode(f)
}

func decode(r io.Reader) ([]domain.Finding, error) {
	dec := xml.NewDecoder(r)
	var findings []domain.Finding

	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("parsing XML: %w", err)
		}

		start, ok := tok.(xml.StartElement)
		if !ok || start.Name.Local != "error" {
			continue
		}

		var el errorElement
		if err := dec.DecodeElement(&el, &start); err != nil {
			return nil, fmt.Errorf("parsing XML: %w", err)
		}

		finding := domain.Finding{
			ID:       el.ID,
			Severity: domain.Severity(el.Severity),
			Msg:      el.Msg,
			Verbose:  el.Verbose,
		}
		for _, loc := range el.Locations {
			finding.Locations = append(finding.Locations, domain.Location{
				File:   loc.File,
				Line:   loc.Line,
				Column: loc.Column,
				Info:   loc.Info,
			})
		}
		findings = append(findings, finding)
	}

	return findings, nil
}
