package value

import (
	"regexp"
	"strings"
)

// Token is one numeric value read from a cell: N, N-M or a percentage of
// either form, with the qualifier from a trailing "(…)" annotation.
type Token struct {
	Value     string
	Qualifier string
	Percent   bool
}

// number matches one value, with optional thousands separators, decimals
// and percent sign.
const number = `(?:\d{1,3}(?:,\d{3})+|\d+)(?:\.\d+)?%?`

var (
	// 10, 1,200, 1-3, 1 – 3, 2.5%, 1-2%, 1%-2%, each optionally followed by
	// "(Expert)". A parenthesized number such as "(33.33%)" is a token of its
	// own, not a qualifier.
	tokenPattern = regexp.MustCompile(`(` + number + `)(?:\s*[-–]\s*(` + number + `))?(?:\s*\(\s*([^)\d\s][^)]*)\))?`)
	// Bracketed footnote markers ([1], [note 2]) carry no values.
	footnotePattern = regexp.MustCompile(`\[[^\]]*\]`)
)

// ParseRanges returns every numeric token in text, in order. If any token
// is a percentage only percentages are returned: percentages denote a drop
// chance, never a quantity.
func ParseRanges(text string) []Token {
	text = footnotePattern.ReplaceAllString(text, " ")

	var all, percents []Token
	for _, m := range tokenPattern.FindAllStringSubmatch(text, -1) {
		tok := Token{Value: m[1], Qualifier: strings.TrimSpace(m[3])}
		if m[2] != "" {
			tok.Value = m[1] + "-" + m[2]
		}
		if strings.Contains(tok.Value, "%") {
			tok.Percent = true
			percents = append(percents, tok)
		}
		all = append(all, tok)
	}
	if len(percents) > 0 {
		return percents
	}
	return all
}

// Labeled is a token value paired with the mode label it should be
// reported under. An empty Label means the value applies to every mode.
type Labeled struct {
	Value string
	Label string
}

// Label names each token for reporting. When any token carries an explicit
// qualifier the qualifiers are used as-is; otherwise labels are assigned
// positionally (1 → unqualified, 2 → Classic / Expert and Master,
// 3 → Classic / Expert / Master). Only the first three positional tokens
// are kept.
func Label(tokens []Token) []Labeled {
	if len(tokens) == 0 {
		return nil
	}

	annotated := false
	for _, t := range tokens {
		if t.Qualifier != "" {
			annotated = true
			break
		}
	}

	if annotated {
		out := make([]Labeled, len(tokens))
		for i, t := range tokens {
			out[i] = Labeled{Value: t.Value, Label: t.Qualifier}
		}
		return out
	}

	if len(tokens) > len(Modes) {
		tokens = tokens[:len(Modes)]
	}
	labels := positionalLabels(len(tokens))
	out := make([]Labeled, len(tokens))
	for i, t := range tokens {
		out[i] = Labeled{Value: t.Value, Label: labels[i]}
	}
	return out
}

// Values returns the bare values of tokens.
func Values(tokens []Token) []string {
	out := make([]string, len(tokens))
	for i, t := range tokens {
		out[i] = t.Value
	}
	return out
}

// Phrase renders labeled values as "<v><suffix> in <label>" joined with
// " and ". Unlabeled values render as "<v><suffix>". It returns "" when
// there is nothing to render.
func Phrase(values []Labeled, suffix string) string {
	parts := make([]string, 0, len(values))
	for _, v := range values {
		part := v.Value + suffix
		if v.Label != "" {
			part += " in " + v.Label
		}
		parts = append(parts, part)
	}
	return strings.Join(parts, " and ")
}
