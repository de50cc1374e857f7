package extract

import (
	"fmt"
	"strings"

	"github.com/gaurav-prasanna/wikichunk/core"
	"github.com/gaurav-prasanna/wikichunk/core/dom"
	"github.com/gaurav-prasanna/wikichunk/core/table"
	"github.com/gaurav-prasanna/wikichunk/core/value"
)

// Column layout of a creature variant row.
const (
	colName = 2 + iota
	colHealth
	colDamage
	colDefense
	colKnockback
	colCoins
)

const modeSpans = "span.m-normal, span.m-expert, span.m-master, span.m-expert-master"

// modeSelectors lists, per mode, the value containers to try in order.
// Expert and Master fall back to the shared Expert-and-Master element.
var modeSelectors = map[value.Mode][]string{
	value.Classic: {"span.m-normal"},
	value.Expert:  {"span.m-expert", "span.m-expert-master"},
	value.Master:  {"span.m-master", "span.m-expert-master"},
}

// Variants writes one sentence per difficulty mode for each row of a
// creature variant table.
func Variants() core.Extractor {
	return &extractor{
		name:     "variants",
		sections: []string{"Variants"},
		fn:       extractVariants,
	}
}

func extractVariants(page *core.Page) []core.Chunk {
	head, ok := page.Doc.First("#Variants")
	if !ok {
		return nil
	}
	tbl, ok := head.FindNext("table.terraria")
	if !ok {
		return nil
	}

	out := newChunks(page, "Variants")
	for _, row := range table.Rows(tbl) {
		if len(row.Cells) == 0 {
			continue
		}
		if len(row.Cells) <= colKnockback {
			page.Unhandled(core.TableField, fmt.Sprintf("Variants row: %d cells", len(row.Cells)))
			continue
		}

		name := variantName(row.Cells[colName])
		for _, m := range rowModes(row.Node) {
			s := readVariantStats(row, m)
			text := fmt.Sprintf("In %s mode, '%s' has %s, %s, and %s. It does %s.",
				m, name, s.health, s.defense, s.knockback, s.damage)
			if s.coins != "" {
				text += fmt.Sprintf(" Upon death, it drops %s.", s.coins)
			}
			out.add(text)
		}
	}
	return out.out
}

// variantStats holds the rendered phrases of one row in one mode.
type variantStats struct {
	health, damage, defense, knockback, coins string
}

// rowModes restricts rows tagged with a mode class to those modes.
func rowModes(tr dom.Node) []value.Mode {
	switch {
	case tr.HasClass("m-expert-master"):
		return []value.Mode{value.Expert, value.Master}
	case tr.HasClass("m-expert"):
		return []value.Mode{value.Expert}
	case tr.HasClass("m-master"):
		return []value.Mode{value.Master}
	case tr.HasClass("m-normal"):
		return []value.Mode{value.Classic}
	}
	return value.Modes
}

func variantName(cell dom.Node) string {
	name := ""
	if span, ok := cell.First("span[title]"); ok {
		name, _ = span.Attr("title")
		name = strings.TrimSpace(name)
	}
	if name == "" {
		name = cell.TextExcluding("span.note")
	}
	name = or(name, "Unknown Name")
	if note, ok := cell.First("span.note"); ok {
		if v := strings.TrimSpace(strings.Trim(note.Text(), "()")); v != "" {
			name += " (" + v + ")"
		}
	}
	return name
}

// readVariantStats renders one row in mode m. Each cell is read on its
// own: mode-tagged cells through their mode elements, plain cells by
// spreading their values across modes.
func readVariantStats(row table.Row, m value.Mode) variantStats {
	s := variantStats{
		health:    cellStat(row.Cells[colHealth], m, "health"),
		damage:    cellStat(row.Cells[colDamage], m, "damage"),
		defense:   cellStat(row.Cells[colDefense], m, "defense"),
		knockback: cellStat(row.Cells[colKnockback], m, "knockback resistance"),
	}
	if cell, ok := row.Cell(colCoins); ok {
		s.coins = cellCoins(cell, m)
	}
	return s
}

func cellStat(cell dom.Node, m value.Mode, unit string) string {
	if modeTagged(cell) {
		return modeStat(cell, m, unit)
	}
	spread := value.Spread(value.Values(value.ParseRanges(cell.Text())))
	if v, ok := value.For(spread, m); ok {
		return v + " " + unit
	}
	return "Unknown " + unit
}

func cellCoins(cell dom.Node, m value.Mode) string {
	if !modeTagged(cell) {
		if _, ok := cell.First("span.coin[title]"); !ok {
			v, _ := value.For(value.ParseCoins(cell.Text()), m)
			return v
		}
	}
	coins := modeCoins(cell, m)
	if coins == "" && m == value.Master {
		coins = modeCoins(cell, value.Expert)
	}
	return coins
}

// modeTagged reports whether cell holds per-mode or per-stage elements.
func modeTagged(cell dom.Node) bool {
	_, ok := cell.First(modeSpans + ", span.s[title]")
	return ok
}

// modeElement returns the container holding mode m's values. A cell with no
// mode elements at all holds one value shared by every mode, and is
// returned itself.
func modeElement(cell dom.Node, m value.Mode) (dom.Node, bool) {
	for _, sel := range modeSelectors[m] {
		if el, ok := cell.First(sel); ok {
			return el, true
		}
	}
	if _, tagged := cell.First(modeSpans); !tagged {
		return cell, true
	}
	return nil, false
}

// modeStat renders "<v> <unit>", or one "<v> <unit> in <stage>" per
// stage-qualified value joined by commas.
func modeStat(cell dom.Node, m value.Mode, unit string) string {
	el, ok := modeElement(cell, m)
	if !ok {
		return "Unknown " + unit
	}
	var parts []string
	for _, s := range el.Find("span.s[title]") {
		stage, _ := s.Attr("title")
		if v := s.Text(); v != "" {
			parts = append(parts, fmt.Sprintf("%s %s in %s", v, unit, stage))
		}
	}
	if len(parts) > 0 {
		return strings.Join(parts, ", ")
	}
	if v := el.Text(); v != "" {
		return v + " " + unit
	}
	return "Unknown " + unit
}

func modeCoins(cell dom.Node, m value.Mode) string {
	el, ok := modeElement(cell, m)
	if !ok {
		return ""
	}
	var parts []string
	for _, s := range el.Find("span.s[title]") {
		stage, _ := s.Attr("title")
		if c := coinTitle(s); c != "" {
			parts = append(parts, c+" in "+stage)
		}
	}
	if len(parts) > 0 {
		return strings.Join(parts, ", ")
	}
	return coinTitle(el)
}

func coinTitle(n dom.Node) string {
	if coin, ok := n.First("span.coin[title]"); ok {
		t, _ := coin.Attr("title")
		return strings.TrimSpace(t)
	}
	return ""
}
