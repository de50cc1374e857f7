package dom

import (
	"github.com/antchfx/htmlquery"
)

// headlineXPath selects the MediaWiki headline span inside a heading.
const headlineXPath = `.//span[contains(concat(' ', normalize-space(@class), ' '), ' mw-headline ')]`

// document is the goquery-backed Document.
type document struct {
	node
}

// Headings scans every h2 on the page. The label is the text of the
// heading's mw-headline span; headings without one fall back to their own
// text minus edit-section links. Headings with no label at all are skipped.
func (d *document) Headings() []Heading {
	root := d.raw()
	if root == nil {
		return nil
	}
	nodes, err := htmlquery.QueryAll(root, "//h2")
	if err != nil {
		return nil
	}

	headings := make([]Heading, 0, len(nodes))
	for _, h := range nodes {
		var label string
		if span, err := htmlquery.Query(h, headlineXPath); err == nil && span != nil {
			label = collectText(span, "", nil)
		} else {
			label = collectText(h, "", compile(".mw-editsection"))
		}
		if label == "" {
			continue
		}
		headings = append(headings, Heading{Label: label, Node: wrapRaw(h)})
	}
	return headings
}

// SectionAnchor returns the element whose siblings hold a heading's
// content. Newer MediaWiki output wraps each h2 in a div.mw-heading.
func SectionAnchor(heading Node) Node {
	if parent, ok := heading.Closest("div.mw-heading"); ok {
		return parent
	}
	return heading
}

// IsSectionBoundary reports whether n starts a new top-level section.
func IsSectionBoundary(n Node) bool {
	if n.Tag() == "h2" {
		return true
	}
	if n.Is("div.mw-heading") {
		_, ok := n.First("h2")
		return ok
	}
	return false
}
