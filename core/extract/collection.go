package extract

import (
	"fmt"
	"strings"

	"github.com/gaurav-prasanna/wikichunk/core"
	"github.com/gaurav-prasanna/wikichunk/core/dom"
	"github.com/gaurav-prasanna/wikichunk/core/table"
)

// collection describes pages that group several items under one heading,
// each piece with its own nested info-box.
type collection struct {
	name    string
	anchor  string
	section string
	fields  table.FieldSet
	intro   func(item, page string) string
	clauses []clause
}

var setPieceClauses = []clause{
	{table.Type, func(v string) string { return "It is of type " + strings.ToLower(v) + "." }},
	{table.BodySlot, equippedIn},
	sentence(table.Rarity, "It has a rarity level of %s."),
	sentence(table.Buy, "It can be bought for %s."),
	sentence(table.Sell, "It can be sold for %s."),
	sentence(table.Tooltip, `The tooltip reads: "%s".`),
	{table.Research, researchSentence},
	sentence(table.Defense, "It provides a defense rating of %s."),
}

var setCollection = collection{
	name:    "set",
	anchor:  "#Set",
	section: "Set",
	fields: table.NewFieldSet(
		table.Type, table.BodySlot, table.Rarity, table.Buy, table.Sell,
		table.Tooltip, table.Research, table.Defense,
	),
	intro:   setIntro,
	clauses: setPieceClauses,
}

var tiersCollection = collection{
	name:    "tiers",
	anchor:  "#Tiers",
	section: "Tiers",
	fields: table.NewFieldSet(
		table.Type, table.BodySlot, table.Rarity, table.Buy, table.Sell,
		table.Tooltip, table.Research, table.Defense,
		table.Damage, table.Knockback, table.Mana, table.UseTime, table.Velocity,
	),
	intro: func(item, page string) string {
		return fmt.Sprintf("The item '%s' is one of the tiers of %s.", item, page)
	},
	clauses: append(append([]clause(nil), setPieceClauses...),
		clause{table.Damage, func(v string) string { return "It deals " + withUnit(v, "damage") + "." }},
		sentence(table.Knockback, "It has a knockback rating of %s."),
		sentence(table.Mana, "It has a mana cost of %s."),
		sentence(table.UseTime, "It has a use time of %s."),
		sentence(table.Velocity, "It has a velocity of %s."),
	),
}

func setIntro(item, page string) string {
	name := page
	if !strings.HasSuffix(strings.ToLower(page), "set") {
		name += " set"
	}
	return fmt.Sprintf("The item '%s' is part of the %s.", item, name)
}

// Set describes each piece of an armor or item set.
func Set() core.Extractor { return setCollection.extractor() }

// Tiers describes each tier of a tiered item.
func Tiers() core.Extractor { return tiersCollection.extractor() }

func (c collection) extractor() core.Extractor {
	return &extractor{name: c.name, sections: []string{c.section}, fn: c.extract}
}

func (c collection) extract(page *core.Page) []core.Chunk {
	region, ok := c.region(page.Doc)
	if !ok {
		return nil
	}
	out := newChunks(page, c.section)
	for _, box := range region.Find("div.infobox.item") {
		rec := table.ReadStats(box, c.fields, "Unknown Item")
		reportUnprocessed(page, &rec)
		text := append([]string{c.intro(rec.Title, page.Title)}, renderClauses(&rec, c.clauses)...)
		out.add(strings.Join(text, " "))
	}
	return out.out
}

// region finds the first div following the collection's heading, within
// the same section.
func (c collection) region(doc dom.Document) (dom.Node, bool) {
	target, ok := doc.First(c.anchor)
	if !ok {
		return nil, false
	}
	heading := target
	if !target.Is("h2, h3, h4") {
		if h, ok := target.Closest("h2, h3, h4"); ok {
			heading = h
		}
	}
	for sib, ok := dom.SectionAnchor(heading).NextSibling(); ok; sib, ok = sib.NextSibling() {
		if dom.IsSectionBoundary(sib) {
			break
		}
		if sib.Tag() == "div" {
			return sib, true
		}
	}
	return nil, false
}
