// Package normalize turns a raw section of wiki HTML into readable
// Markdown for the inspect command. The HTML is sanitized first, which
// drops scripts, styles and event handlers that pages carry.
package normalize

import (
	"fmt"
	"strings"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"
	"github.com/microcosm-cc/bluemonday"
)

// MarkdownNormalizer converts HTML to Markdown using html-to-markdown.
type MarkdownNormalizer struct {
	policy *bluemonday.Policy
}

// New creates a MarkdownNormalizer. Class attributes are kept on tables
// and spans so the dump still shows the markup an extractor would key on.
func New() *MarkdownNormalizer {
	p := bluemonday.UGCPolicy()
	p.AllowAttrs("class").OnElements("table", "tr", "td", "th", "span", "div")
	p.AllowAttrs("title").OnElements("span")
	return &MarkdownNormalizer{policy: p}
}

// Sanitize returns html with everything outside the policy removed.
func (n *MarkdownNormalizer) Sanitize(html string) string {
	return n.policy.Sanitize(html)
}

// Normalize converts an HTML fragment into Markdown.
func (n *MarkdownNormalizer) Normalize(html string) (string, error) {
	markdown, err := htmltomarkdown.ConvertString(n.Sanitize(html))
	if err != nil {
		return "", fmt.Errorf("converting HTML to markdown: %w", err)
	}
	return strings.TrimSpace(markdown), nil
}
