package extract

import (
	"strings"

	"github.com/gaurav-prasanna/wikichunk/core"
	"github.com/gaurav-prasanna/wikichunk/core/dom"
)

// ListSections are the headings whose bulleted items become chunks.
var ListSections = []string{"Trivia", "Tips", "Notes", "Note"}

// Lists emits one chunk per top-level bullet of the sections in
// ListSections, folding nested bullets into their parent. The heading text
// is the chunk's section title.
func Lists() core.Extractor {
	return &extractor{
		name:     "lists",
		sections: ListSections,
		fn:       extractLists,
	}
}

func extractLists(page *core.Page) []core.Chunk {
	wanted := make(map[string]bool, len(ListSections))
	for _, s := range ListSections {
		wanted[s] = true
	}

	out := newChunks(page, "")
	for _, h := range page.Doc.Headings() {
		if !wanted[h.Label] {
			continue
		}
		for sib, ok := dom.SectionAnchor(h.Node).NextSibling(); ok; sib, ok = sib.NextSibling() {
			if dom.IsSectionBoundary(sib) {
				break
			}
			if sib.Tag() != "ul" && sib.Tag() != "ol" {
				continue
			}
			for _, li := range sib.Children("li") {
				out.addTo(h.Label, listItemText(li))
			}
		}
	}
	return out.out
}

// listItemText joins an item's own text with the text of every nested item.
func listItemText(li dom.Node) string {
	parts := []string{li.TextExcluding("ul, ol")}
	for _, nested := range li.Find("li") {
		if t := nested.TextExcluding("ul, ol"); t != "" {
			parts = append(parts, t)
		}
	}
	return strings.Join(parts, " ")
}
