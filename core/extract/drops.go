package extract

import (
	"fmt"

	"github.com/gaurav-prasanna/wikichunk/core"
	"github.com/gaurav-prasanna/wikichunk/core/dom"
	"github.com/gaurav-prasanna/wikichunk/core/table"
	"github.com/gaurav-prasanna/wikichunk/core/value"
)

// Drops turns each row of a creature or container drop table into
// "<entity> has a <rate> chance to drop <quantity>."
func Drops() core.Extractor {
	return &extractor{
		name:     "drops",
		sections: []string{"Drop Infobox", "Drops"},
		fn:       extractDrops,
	}
}

func extractDrops(page *core.Page) []core.Chunk {
	out := newChunks(page, "Drop Infobox")
	for _, box := range page.Doc.Find("div.drop.infobox") {
		tbl, ok := box.First("table.drop-noncustom")
		if !ok {
			continue
		}
		for _, row := range table.Rows(tbl) {
			switch len(row.Cells) {
			case 0:
				// Repeated header rows between mode groups.
				continue
			case 3:
			default:
				page.Unhandled(core.TableField, fmt.Sprintf("Drop Infobox row: %d cells", len(row.Cells)))
				continue
			}

			entity := entityName(row.Cells[0])
			if entity == "" {
				page.Unhandled(core.TableField, "Drop Infobox row: no entity")
				continue
			}
			qty := or(value.Phrase(value.Label(value.ParseRanges(row.Cells[1].Text())), " "+page.Title), "Unknown quantity")
			rate := or(value.Phrase(value.Label(value.ParseRanges(row.Cells[2].Text())), ""), "Unknown drop rate")
			out.add(fmt.Sprintf("%s has a %s chance to drop %s.", entity, rate, qty))
		}
	}
	return out.out
}

// entityName prefers the dedicated name span over the cell text, which
// also carries image captions.
func entityName(cell dom.Node) string {
	if name, ok := cell.First("span.entity-name"); ok {
		if t := name.Text(); t != "" {
			return t
		}
	}
	return cell.TextExcluding(".entity-img")
}
