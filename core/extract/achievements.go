package extract

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/gaurav-prasanna/wikichunk/core"
	"github.com/gaurav-prasanna/wikichunk/core/dom"
)

var categoryPattern = regexp.MustCompile(`Category:\s*(.*)`)

// Achievements renders each achievement block as a single sentence.
func Achievements() core.Extractor {
	return &extractor{
		name:     "achievements",
		sections: []string{"Achievement", "Achievements"},
		fn:       extractAchievements,
	}
}

func extractAchievements(page *core.Page) []core.Chunk {
	out := newChunks(page, "Achievement")
	for _, box := range page.Doc.Find("div.achievement") {
		title := "Unknown Achievement"
		if b, ok := box.First("b"); ok {
			title = or(b.Text(), title)
		}
		desc := "No description available"
		if i, ok := box.First("i"); ok {
			desc = or(i.Text(), desc)
		}

		out.add(fmt.Sprintf(
			"The achievement '%s' is described as: '%s'. To unlock this achievement, you must: %s. "+
				"This achievement is categorized under '%s' and is available in %s.",
			title, desc, achievementCriteria(box), achievementCategory(box), achievementVersions(box),
		))
	}
	return out.out
}

// achievementCriteria reads the first inner block that is not a note.
func achievementCriteria(box dom.Node) string {
	block, ok := box.First("div")
	if !ok {
		return "Unknown criteria"
	}
	for _, child := range block.Children("div") {
		if child.HasClass("note-text") {
			continue
		}
		if t := strings.TrimSuffix(child.Text(), "."); t != "" {
			return t
		}
	}
	return "Unknown criteria"
}

func achievementVersions(box dom.Node) string {
	icon, ok := box.First("span.eico")
	if !ok {
		return "All versions"
	}
	if title, ok := icon.Attr("title"); ok && strings.TrimSpace(title) != "" {
		return strings.TrimSpace(title)
	}
	if inner, ok := icon.First("span"); ok {
		if t := strings.TrimSpace(strings.Trim(inner.Text(), "()")); t != "" {
			return t
		}
	}
	return "All versions"
}

func achievementCategory(box dom.Node) string {
	for _, note := range box.Find("div.note-text.small") {
		if m := categoryPattern.FindStringSubmatch(note.Text()); m != nil {
			if c := strings.TrimSpace(m[1]); c != "" {
				return c
			}
		}
	}
	return "Uncategorized"
}
