// Package core defines the shared types and stage interfaces for wikichunk.
// Each stage of the pipeline is a clean, testable interface:
// load → coordinate extractors → collect chunks + diagnostics → render → write.
package core

import "github.com/gaurav-prasanna/wikichunk/core/dom"

// Metadata identifies where a chunk came from.
type Metadata struct {
	PageTitle    string `json:"page_title"`
	SectionTitle string `json:"section_title"`
}

// Chunk is one retrievable text passage. Text is never empty and is
// trimmed of surrounding whitespace.
type Chunk struct {
	Text     string   `json:"text"`
	Metadata Metadata `json:"metadata"`
}

// NewChunk builds a chunk for the given page and section.
func NewChunk(text, page, section string) Chunk {
	return Chunk{
		Text:     text,
		Metadata: Metadata{PageTitle: page, SectionTitle: section},
	}
}

// EventKind separates the two coverage tables.
type EventKind int

const (
	SectionHeader EventKind = iota
	TableField
)

func (k EventKind) String() string {
	switch k {
	case SectionHeader:
		return "section_header"
	case TableField:
		return "table_field"
	default:
		return "unknown"
	}
}

// UnhandledEvent records markup the pipeline saw but has no handler for.
// It is diagnostic evidence and never fatal.
type UnhandledEvent struct {
	Kind      EventKind
	Label     string
	PageTitle string
}

// Page is the input handed to every extractor: one parsed document plus
// its identifier. Extractors report unrecognized structure through
// Unhandled; the events travel back to the coordinator with the page.
type Page struct {
	Doc   dom.Document
	Title string

	events []UnhandledEvent
}

// NewPage wraps a parsed document.
func NewPage(doc dom.Document, title string) *Page {
	return &Page{Doc: doc, Title: title}
}

// Unhandled records an unhandled section header or table field.
func (p *Page) Unhandled(kind EventKind, label string) {
	p.events = append(p.events, UnhandledEvent{Kind: kind, Label: label, PageTitle: p.Title})
}

// Events returns the events recorded so far, in the order they were raised.
func (p *Page) Events() []UnhandledEvent {
	return p.events
}

// Extractor turns one recognized content pattern into chunks.
type Extractor interface {
	// Name is the registry key used in configuration (e.g. "infobox").
	Name() string
	// Sections lists the heading labels this extractor accounts for, even
	// when it finds nothing on a given page.
	Sections() []string
	// Extract returns zero or more chunks in document order.
	Extract(page *Page) []Chunk
}

// Renderer converts a value into a final output format.
type Renderer[T any] interface {
	Render(v T) ([]byte, error)
	// Extension returns the file extension for this renderer (e.g. ".json", ".pdf").
	Extension() string
}
