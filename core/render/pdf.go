// Package render — PDF renderer.
// Lays the Markdown coverage report out as a PDF using gofpdf.
// Handles headings (variable font sizes), paragraphs, bullets and
// pipe tables; anything else is written as a plain paragraph.
package render

import (
	"bytes"
	"fmt"
	"regexp"
	"strings"

	"github.com/jung-kurt/gofpdf"

	"github.com/gaurav-prasanna/wikichunk/core/coverage"
)

// ReportPDF renders a coverage report as a PDF document.
type ReportPDF struct {
	md *ReportMarkdown
}

// NewReportPDF creates a ReportPDF renderer.
func NewReportPDF() *ReportPDF {
	return &ReportPDF{md: NewReportMarkdown()}
}

var tableSeparator = regexp.MustCompile(`^\|[-:| ]+\|$`)

// Render converts the report's Markdown layout into PDF bytes.
func (r *ReportPDF) Render(report *coverage.Report) ([]byte, error) {
	markdown, err := r.md.Render(report)
	if err != nil {
		return nil, err
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 15)
	// Core fonts are cp1252; labels come from arbitrary pages.
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	header := true
	for _, line := range strings.Split(string(markdown), "\n") {
		trimmed := strings.TrimSpace(line)

		// Skip empty lines (add spacing instead).
		if trimmed == "" {
			pdf.Ln(3)
			continue
		}

		if strings.HasPrefix(trimmed, "#") {
			level := len(trimmed) - len(strings.TrimLeft(trimmed, "#"))
			renderHeading(pdf, tr(strings.TrimSpace(trimmed[level:])), level)
			header = true
			continue
		}

		if strings.HasPrefix(trimmed, "|") {
			if tableSeparator.MatchString(trimmed) {
				continue
			}
			renderTableRow(pdf, tr, splitRow(trimmed), header)
			header = false
			continue
		}

		pdf.SetFont("Helvetica", "", 10)
		if strings.HasPrefix(trimmed, "- ") {
			trimmed = "• " + strings.TrimSpace(trimmed[2:])
		}
		pdf.MultiCell(0, 5, tr(trimmed), "", "L", false)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("writing PDF: %w", err)
	}
	return buf.Bytes(), nil
}

// Extension returns the file extension for PDF output.
func (r *ReportPDF) Extension() string {
	return ".pdf"
}

// renderHeading sets the font size based on heading level and writes text.
func renderHeading(pdf *gofpdf.Fpdf, text string, level int) {
	sizes := map[int]float64{1: 18, 2: 15, 3: 13}
	size, ok := sizes[level]
	if !ok {
		size = 11
	}
	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", size)
	pdf.MultiCell(0, size*0.6, text, "", "L", false)
	pdf.Ln(2)
}

// renderTableRow writes a label/count row; the first row of a table is bold
// and shaded.
func renderTableRow(pdf *gofpdf.Fpdf, tr func(string) string, cells []string, header bool) {
	if len(cells) < 2 {
		cells = append(cells, "")
	}
	style := ""
	if header {
		style = "B"
		pdf.SetFillColor(235, 235, 235)
	}
	pdf.SetFont("Helvetica", style, 10)
	pdf.CellFormat(150, 6, tr(cells[0]), "1", 0, "L", header, 0, "")
	pdf.CellFormat(30, 6, tr(cells[1]), "1", 1, "R", header, 0, "")
}

// splitRow splits "| a | b |" into its cells, honoring escaped pipes.
func splitRow(line string) []string {
	line = strings.TrimSuffix(strings.TrimPrefix(line, "|"), "|")
	line = strings.ReplaceAll(line, `\|`, "\x00")
	parts := strings.Split(line, "|")
	for i, p := range parts {
		parts[i] = strings.TrimSpace(strings.ReplaceAll(p, "\x00", "|"))
	}
	return parts
}
