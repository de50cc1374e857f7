// Package dom exposes a read-only, capability-scoped view of a parsed page.
//
// Extractors depend only on the Node and Document interfaces defined here;
// the goquery/cascadia backend lives behind them so the parser can be
// swapped without touching extraction code. No operation mutates the tree:
// removing decorative subtrees before reading text is expressed with
// TextExcluding instead of deleting nodes.
package dom

import (
	"fmt"
	"io"

	"github.com/PuerkitoBio/goquery"
)

// Node is one element of a parsed page.
type Node interface {
	// Tag returns the lowercase element name ("div", "td", ...).
	Tag() string
	// Attr returns the value of the named attribute.
	Attr(name string) (string, bool)
	// HasClass reports whether the element carries the given class.
	HasClass(class string) bool

	// Text returns every descendant text string, stripped, joined by a single space.
	Text() string
	// CompactText returns every descendant text string, stripped, joined with no separator.
	CompactText() string
	// TextExcluding is Text, skipping subtrees that match selector.
	TextExcluding(selector string) string

	// Find returns all descendants matching selector, in document order.
	Find(selector string) []Node
	// First returns the first descendant matching selector.
	First(selector string) (Node, bool)
	// Children returns the direct element children matching selector
	// (all element children when selector is empty).
	Children(selector string) []Node
	// Closest returns the nearest ancestor matching selector.
	Closest(selector string) (Node, bool)
	// NextSibling returns the next element sibling.
	NextSibling() (Node, bool)
	// FindNext returns the first element after this one in document order
	// (descendants included) matching selector.
	FindNext(selector string) (Node, bool)
	// Is reports whether the element itself matches selector.
	Is(selector string) bool

	// HTML returns the outer HTML of the element.
	HTML() string
}

// Heading is a top-level section heading of a page.
type Heading struct {
	Label string
	Node  Node
}

// Document is a fully parsed page.
type Document interface {
	Node
	// Headings returns every h2 on the page in document order.
	Headings() []Heading
}

// Parse reads HTML from r and builds a Document.
func Parse(r io.Reader) (Document, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}
	return &document{node: node{sel: doc.Selection}}, nil
}
