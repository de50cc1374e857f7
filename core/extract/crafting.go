package extract

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/gaurav-prasanna/wikichunk/core"
	"github.com/gaurav-prasanna/wikichunk/core/dom"
	"github.com/gaurav-prasanna/wikichunk/core/table"
)

// craftingTables are the subsections read under the Crafting heading.
var craftingTables = []struct {
	anchor  string
	section string
}{
	{"#Recipes", "Crafting - Recipes"},
	{"#Used_in", "Crafting - Used in"},
}

var (
	gluedParen     = regexp.MustCompile(`(\S)(\(.*?\))`)
	internalID     = regexp.MustCompile(`Internal\s*Item\s*ID:\s*\d+`)
	versionOnly    = regexp.MustCompile(`\bonly:`)
	trailingCount  = regexp.MustCompile(`^(.*?)\s*(\d+)$`)
	collapseSpaces = regexp.MustCompile(`\s+`)
)

// Crafting renders recipe rows as "<result> can be crafted using
// <ingredients> at the <station>."
func Crafting() core.Extractor {
	return &extractor{
		name:     "crafting",
		sections: []string{"Crafting", "Recipes", "Used in"},
		fn:       extractCrafting,
	}
}

func extractCrafting(page *core.Page) []core.Chunk {
	head, ok := page.Doc.First("#Crafting")
	if !ok {
		return nil
	}

	out := newChunks(page, "")
	for _, sub := range craftingTables {
		subHead, ok := head.FindNext(sub.anchor)
		if !ok {
			continue
		}
		tbl, ok := subHead.FindNext("table.recipes")
		if !ok {
			continue
		}

		carry := table.NewCarry(map[string]string{
			"result":  "Unknown Result",
			"station": "Unknown Station",
		})
		for _, row := range table.Rows(tbl) {
			if len(row.Cells) == 0 {
				continue
			}
			resultCell, hasResult := row.Node.First("td.result")
			result := ""
			if hasResult {
				result = cleanResult(resultCell.Text())
			}
			result = carry.Apply("result", result, hasResult && result != "")

			stationCell, hasStation := row.Node.First("td.station")
			station := ""
			if hasStation {
				station = stationCell.Text()
			}
			station = carry.Apply("station", station, hasStation && station != "")

			ingredients := "Unknown ingredients"
			if cell, ok := row.Node.First("td.ingredients"); ok {
				ingredients = or(readIngredients(cell), ingredients)
			}

			out.addTo(sub.section, fmt.Sprintf("%s can be crafted using %s at the %s.", result, ingredients, station))
		}
	}
	return out.out
}

// cleanResult strips wiki annotations from a result cell and rewrites a
// bare trailing count ("Nebula Brick 10") as a quantity ("10 Nebula Brick").
func cleanResult(s string) string {
	s = internalID.ReplaceAllString(s, "")
	s = versionOnly.ReplaceAllString(s, "")
	s = gluedParen.ReplaceAllString(s, "$1 $2")
	s = strings.TrimSpace(collapseSpaces.ReplaceAllString(s, " "))
	if m := trailingCount.FindStringSubmatch(s); m != nil && strings.TrimSpace(m[1]) != "" {
		return m[2] + " " + strings.TrimSpace(m[1])
	}
	return s
}

// readIngredients renders each list item as "<quantity> <name>", the
// quantity defaulting to 1. Cells without a list are read as plain text.
func readIngredients(cell dom.Node) string {
	items := cell.Find("li")
	if len(items) == 0 {
		return cell.Text()
	}
	parts := make([]string, 0, len(items))
	for _, li := range items {
		name := li.TextExcluding("span.am")
		if name == "" {
			continue
		}
		qty := "1"
		if am, ok := li.First("span.am"); ok {
			qty = or(am.Text(), qty)
		}
		parts = append(parts, qty+" "+name)
	}
	return strings.Join(parts, ", ")
}
