// Package table reads the two kinds of tables found on content pages:
// labeled key/value info-box tables (ReadStats) and multi-column data
// tables with row-spanning cells (Rows, Carry).
package table

import (
	"regexp"
	"strings"

	"github.com/gaurav-prasanna/wikichunk/core/dom"
)

// Field is a recognized info-box field key.
type Field string

const (
	Type               Field = "type"
	Consumable         Field = "consumable"
	Placeable          Field = "placeable"
	Rarity             Field = "rarity"
	Buy                Field = "buy"
	Sell               Field = "sell"
	Research           Field = "research"
	Tooltip            Field = "tooltip"
	Bonus              Field = "bonus"
	BodySlot           Field = "body_slot"
	SetBonus           Field = "set_bonus"
	Defense            Field = "defense"
	Damage             Field = "damage"
	Knockback          Field = "knockback"
	CriticalChance     Field = "critical_chance"
	Velocity           Field = "velocity"
	Mana               Field = "mana"
	HealsMana          Field = "heals_mana"
	HealsHealth        Field = "heals_health"
	UsesAmmo           Field = "uses_ammo"
	BaseVelocity       Field = "base_velocity"
	VelocityMultiplier Field = "velocity_multiplier"
	UseTime            Field = "use_time"
	ToolSpeed          Field = "tool_speed"
	BaitPower          Field = "bait_power"
	MaxStack           Field = "max_stack"
)

// FieldSet is the set of fields a reader accepts.
type FieldSet map[Field]struct{}

// NewFieldSet builds a FieldSet.
func NewFieldSet(fields ...Field) FieldSet {
	s := make(FieldSet, len(fields))
	for _, f := range fields {
		s[f] = struct{}{}
	}
	return s
}

// Has reports whether f is in the set.
func (s FieldSet) Has(f Field) bool {
	_, ok := s[f]
	return ok
}

// AllFields is every field with a handler.
var AllFields = NewFieldSet(
	Type, Consumable, Placeable, Rarity, Buy, Sell, Research, Tooltip, Bonus,
	BodySlot, SetBonus, Defense, Damage, Knockback, CriticalChance, Velocity,
	Mana, HealsMana, HealsHealth, UsesAmmo, BaseVelocity, VelocityMultiplier,
	UseTime, ToolSpeed, BaitPower, MaxStack,
)

// aliases maps run-together spellings seen on older pages to their field.
var aliases = map[string]Field{
	"healsmana":    HealsMana,
	"healshealth":  HealsHealth,
	"usesammo":     UsesAmmo,
	"basevelocity": BaseVelocity,
	"baitpower":    BaitPower,
	"usetime":      UseTime,
	"toolspeed":    ToolSpeed,
	"maxstack":     MaxStack,
	"bodyslot":     BodySlot,
	"setbonus":     SetBonus,
}

var nonAlnum = regexp.MustCompile(`[^a-z0-9]+`)

// NormalizeKey lowercases a raw label and collapses whitespace and
// punctuation into single underscores ("Set Bonus" → "set_bonus").
func NormalizeKey(raw string) string {
	return strings.Trim(nonAlnum.ReplaceAllString(strings.ToLower(raw), "_"), "_")
}

// Lookup resolves a raw label to a known field.
func Lookup(raw string) (Field, bool) {
	key := NormalizeKey(raw)
	if f := Field(key); AllFields.Has(f) {
		return f, true
	}
	f, ok := aliases[key]
	return f, ok
}

// handler reads a field's value from its cell. ok is false when the cell
// holds nothing usable.
type handler func(cell dom.Node) (v string, ok bool)

// handlers is the closed dispatch table. Fields absent from it use plainText.
var handlers = map[Field]handler{
	Rarity:     rarityValue,
	Buy:        coinValue,
	Sell:       sellValue,
	SetBonus:   setBonusValue,
	Tooltip:    tooltipValue,
	Consumable: flagValue,
	Placeable:  flagValue,
}

func read(f Field, cell dom.Node) (string, bool) {
	if h, ok := handlers[f]; ok {
		return h(cell)
	}
	return plainText(cell)
}

func plainText(cell dom.Node) (string, bool) {
	v := cell.Text()
	return v, v != ""
}

var nonDigit = regexp.MustCompile(`[^0-9]`)

// Digits strips everything but the digits from s.
func Digits(s string) string {
	return nonDigit.ReplaceAllString(s, "")
}

// rarityValue reads the numeric sort key rather than the display text,
// which is usually an image.
func rarityValue(cell dom.Node) (string, bool) {
	if key, ok := cell.First("s.sortkey"); ok {
		if v := Digits(key.CompactText()); v != "" {
			return v, true
		}
	}
	v := Digits(cell.Text())
	return v, v != ""
}

// coinValue prefers the descriptive title of a nested coin element
// ("5 Gold Coins") over the abbreviated display text.
func coinValue(cell dom.Node) (string, bool) {
	for _, sel := range []string{"span.coin", "span.coins"} {
		if coin, ok := cell.First(sel); ok {
			if title, ok := coin.Attr("title"); ok && strings.TrimSpace(title) != "" {
				return strings.TrimSpace(title), true
			}
		}
	}
	text := cell.Text()
	if strings.Contains(text, "Defender Medals") {
		if title, ok := cell.Attr("title"); ok && title != "" {
			return title, true
		}
	}
	return text, text != ""
}

func sellValue(cell dom.Node) (string, bool) {
	if strings.EqualFold(cell.Text(), "no value") {
		return "No value", true
	}
	return coinValue(cell)
}

// setBonusValue splits "Effect: detail: detail" into clauses joined by "and".
func setBonusValue(cell dom.Node) (string, bool) {
	var effects []string
	for _, e := range strings.Split(cell.Text(), ":") {
		if e = strings.TrimSpace(e); e != "" {
			effects = append(effects, e)
		}
	}
	return strings.Join(effects, " and "), len(effects) > 0
}

func tooltipValue(cell dom.Node) (string, bool) {
	v := strings.TrimSpace(strings.Trim(cell.Text(), `'"`))
	return v, v != ""
}

// flagValue treats a present row as "yes" unless the cell says otherwise;
// flag cells are often just a check-mark image.
func flagValue(cell dom.Node) (string, bool) {
	switch strings.ToLower(strings.TrimSpace(cell.Text())) {
	case "no", "✘", "✖", "✗", "false":
		return "", false
	}
	return "yes", true
}
