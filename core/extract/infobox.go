package extract

import (
	"fmt"
	"strings"

	"github.com/gaurav-prasanna/wikichunk/core"
	"github.com/gaurav-prasanna/wikichunk/core/table"
)

// clause renders one field of a StatRecord into a sentence.
type clause struct {
	field  table.Field
	render func(v string) string
}

func sentence(f table.Field, format string) clause {
	return clause{field: f, render: func(v string) string { return fmt.Sprintf(format, v) }}
}

// renderClauses emits the sentences for every populated field, in clause order.
func renderClauses(rec *table.StatRecord, clauses []clause) []string {
	var out []string
	for _, c := range clauses {
		v, ok := rec.Get(c.field)
		if !ok {
			continue
		}
		if s := c.render(v); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// reportUnprocessed raises a table-field event for every row nothing claimed.
func reportUnprocessed(page *core.Page, rec *table.StatRecord) {
	for _, raw := range rec.Unprocessed {
		page.Unhandled(core.TableField, raw.Key)
	}
}

// withUnit appends unit unless v already ends with it ("50 melee damage").
func withUnit(v, unit string) string {
	if strings.HasSuffix(strings.ToLower(v), unit) {
		return v
	}
	return v + " " + unit
}

func equippedIn(v string) string {
	return "It is equipped in the " + withUnit(v, "slot") + "."
}

func article(noun string) string {
	if noun != "" && strings.ContainsRune("aeiou", rune(noun[0])) {
		return "an"
	}
	return "a"
}

// infoboxClauses is the fixed clause order of an item description.
var infoboxClauses = []clause{
	{table.Consumable, func(string) string { return "It is consumable." }},
	{table.Placeable, func(string) string { return "It is placeable." }},
	sentence(table.Rarity, "It has a rarity level of %s."),
	sentence(table.Buy, "It can be bought for %s."),
	sentence(table.Sell, "It can be sold for %s."),
	{table.Research, researchSentence},
	sentence(table.Tooltip, `The tooltip reads: "%s".`),
	sentence(table.Bonus, `It provides a bonus of "%s".`),
	{table.BodySlot, equippedIn},
	sentence(table.SetBonus, "When worn as a whole armor set, it provides the bonus of %s."),
	sentence(table.Defense, "It provides a defense rating of %s."),
	{table.Damage, func(v string) string { return "It deals " + withUnit(v, "damage") + "." }},
	sentence(table.Knockback, "It has a knockback rating of %s."),
	sentence(table.CriticalChance, "It has a critical chance of %s."),
	sentence(table.Velocity, "It has a velocity of %s."),
	sentence(table.Mana, "It has a mana cost of %s."),
	sentence(table.HealsMana, "It heals mana by %s."),
	sentence(table.HealsHealth, "It heals health by %s."),
	sentence(table.UsesAmmo, "It uses %s as ammo."),
	sentence(table.BaseVelocity, "Its base velocity is %s."),
	sentence(table.VelocityMultiplier, "It has a velocity multiplier of %s."),
	sentence(table.UseTime, "It has a use time of %s."),
	sentence(table.ToolSpeed, "It has a tool speed of %s."),
	sentence(table.BaitPower, "When used as bait, it has a bait power of %s."),
	sentence(table.MaxStack, "The max amount it can be stacked in one slot is %s."),
}

func researchSentence(v string) string {
	return fmt.Sprintf("In journey mode, it requires %s research.", or(table.Digits(v), v))
}

// Infobox describes each item info-box in one paragraph.
func Infobox() core.Extractor {
	return &extractor{
		name:     "infobox",
		sections: []string{"Infobox"},
		fn:       extractInfobox,
	}
}

func extractInfobox(page *core.Page) []core.Chunk {
	out := newChunks(page, "Infobox")
	for _, box := range page.Doc.Find("div.infobox.item") {
		rec := table.ReadStats(box, table.AllFields, page.Title)
		reportUnprocessed(page, &rec)
		out.add(describeItem(&rec))
	}
	return out.out
}

func describeItem(rec *table.StatRecord) string {
	intro := fmt.Sprintf("'%s' is an item.", rec.Title)
	if t, ok := rec.Get(table.Type); ok {
		t = strings.ToLower(t)
		intro = fmt.Sprintf("'%s' is %s %s.", rec.Title, article(t), t)
	}
	return strings.Join(append([]string{intro}, renderClauses(rec, infoboxClauses)...), " ")
}
