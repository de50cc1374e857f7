package extract

import (
	"github.com/gaurav-prasanna/wikichunk/core"
	"github.com/gaurav-prasanna/wikichunk/core/dom"
)

// GeneralInfo emits the introductory paragraphs and lists that precede
// the first section heading, one chunk each.
func GeneralInfo() core.Extractor {
	return &extractor{
		name:     "general",
		sections: []string{"General Information"},
		fn:       extractGeneral,
	}
}

func extractGeneral(page *core.Page) []core.Chunk {
	body, ok := page.Doc.First("div.mw-parser-output")
	if !ok {
		return nil
	}
	out := newChunks(page, "General Information")
	for _, el := range body.Children("") {
		if dom.IsSectionBoundary(el) {
			break
		}
		if tag := el.Tag(); tag == "p" || tag == "ul" {
			out.add(el.Text())
		}
	}
	return out.out
}
