// Package render — JSON renderers.
// The chunk stream is a list of {text, metadata: {page_title, section_title}}
// records; its field names are fixed for the downstream embedding index.
package render

import (
	"fmt"

	"github.com/bytedance/sonic"

	"github.com/gaurav-prasanna/wikichunk/core"
	"github.com/gaurav-prasanna/wikichunk/core/coverage"
)

// jsonAPI sorts map keys so repeated runs produce identical bytes.
var jsonAPI = sonic.Config{
	SortMapKeys:    true,
	ValidateString: true,
}.Froze()

const jsonIndent = "    "

// ChunksJSON renders the chunk stream.
type ChunksJSON struct{}

// NewChunksJSON creates a ChunksJSON renderer.
func NewChunksJSON() *ChunksJSON {
	return &ChunksJSON{}
}

// Render encodes chunks as an indented JSON array. No chunks renders "[]".
func (r *ChunksJSON) Render(chunks []core.Chunk) ([]byte, error) {
	if chunks == nil {
		chunks = []core.Chunk{}
	}
	data, err := jsonAPI.MarshalIndent(chunks, "", jsonIndent)
	if err != nil {
		return nil, fmt.Errorf("marshaling chunks: %w", err)
	}
	return append(data, '\n'), nil
}

// Extension returns the file extension for JSON output.
func (r *ChunksJSON) Extension() string {
	return ".json"
}

// ReportJSON renders a coverage report as
// {"section_headers": {label: count}, "table_fields": {label: count}},
// keys in descending count order.
type ReportJSON struct{}

// NewReportJSON creates a ReportJSON renderer.
func NewReportJSON() *ReportJSON {
	return &ReportJSON{}
}

// Render encodes the report.
func (r *ReportJSON) Render(report *coverage.Report) ([]byte, error) {
	data, err := jsonAPI.MarshalIndent(report, "", jsonIndent)
	if err != nil {
		return nil, fmt.Errorf("marshaling coverage report: %w", err)
	}
	return append(data, '\n'), nil
}

// Extension returns the file extension for JSON output.
func (r *ReportJSON) Extension() string {
	return ".json"
}
