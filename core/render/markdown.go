// Package render provides output renderers for wikichunk.
// This file implements the Markdown coverage report, which the PDF
// renderer also lays out.
package render

import (
	"fmt"
	"strings"

	"github.com/gaurav-prasanna/wikichunk/core"
	"github.com/gaurav-prasanna/wikichunk/core/coverage"
)

// ReportMarkdown renders a coverage report as two Markdown tables.
type ReportMarkdown struct{}

// NewReportMarkdown creates a ReportMarkdown renderer.
func NewReportMarkdown() *ReportMarkdown {
	return &ReportMarkdown{}
}

// Render writes the report.
func (r *ReportMarkdown) Render(report *coverage.Report) ([]byte, error) {
	var b strings.Builder
	b.WriteString("# Coverage report\n\n")
	fmt.Fprintf(&b, "%d unhandled occurrences.\n", report.Total())
	writeTable(&b, "Unhandled section headers", report.SectionHeaders)
	writeTable(&b, "Unhandled table fields", report.TableFields)
	return []byte(b.String()), nil
}

// Extension returns the file extension for Markdown output.
func (r *ReportMarkdown) Extension() string {
	return ".md"
}

func writeTable(b *strings.Builder, title string, entries []coverage.Entry) {
	fmt.Fprintf(b, "\n## %s\n\n", title)
	if len(entries) == 0 {
		b.WriteString("- None\n")
		return
	}
	b.WriteString("| Label | Count |\n|---|---:|\n")
	for _, e := range entries {
		fmt.Fprintf(b, "| %s | %d |\n", escapeCell(e.Label), e.Count)
	}
}

func escapeCell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}

// ReportRenderer returns the report renderer for a configured format
// ("json", "markdown" or "pdf").
func ReportRenderer(format string) (core.Renderer[*coverage.Report], error) {
	switch format {
	case "json", "":
		return NewReportJSON(), nil
	case "markdown", "md":
		return NewReportMarkdown(), nil
	case "pdf":
		return NewReportPDF(), nil
	default:
		return nil, fmt.Errorf("unknown report format %q", format)
	}
}
