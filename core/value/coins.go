package value

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	silverPattern = regexp.MustCompile(`(\d+)\s*SC\b`)
	copperPattern = regexp.MustCompile(`(\d+)\s*CC\b`)
)

// ParseCoins reads "N SC" (silver) and "N CC" (copper) amounts from text
// and spreads them across modes with the same positional rule as Spread.
// Text separated by "/" holds one group per mode ("60 CC / 1 SC 50 CC");
// without separators the i-th silver and i-th copper amounts form the i-th
// group. Each mode's value is a phrase such as "1 Silver Coin and 50
// Copper Coins".
func ParseCoins(text string) []ModeValue[string] {
	var groups []string
	if strings.Contains(text, "/") {
		for _, part := range strings.Split(text, "/") {
			if g := coinGroup(part); g != "" {
				groups = append(groups, g)
			}
		}
	} else {
		groups = pairedGroups(text)
	}
	return Spread(groups)
}

// coinGroup renders the first silver and first copper amount in text.
func coinGroup(text string) string {
	var parts []string
	if m := silverPattern.FindStringSubmatch(text); m != nil {
		parts = append(parts, coinPhrase(m[1], "Silver"))
	}
	if m := copperPattern.FindStringSubmatch(text); m != nil {
		parts = append(parts, coinPhrase(m[1], "Copper"))
	}
	return strings.Join(parts, " and ")
}

func pairedGroups(text string) []string {
	silver := silverPattern.FindAllStringSubmatch(text, -1)
	copper := copperPattern.FindAllStringSubmatch(text, -1)

	n := min(max(len(silver), len(copper)), len(Modes))
	groups := make([]string, 0, n)
	for i := range n {
		var parts []string
		if i < len(silver) {
			parts = append(parts, coinPhrase(silver[i][1], "Silver"))
		}
		if i < len(copper) {
			parts = append(parts, coinPhrase(copper[i][1], "Copper"))
		}
		groups = append(groups, strings.Join(parts, " and "))
	}
	return groups
}

// coinPhrase renders "N <unit> Coin", pluralized when N exceeds 1.
func coinPhrase(count, unit string) string {
	n, _ := strconv.Atoi(count)
	phrase := count + " " + unit + " Coin"
	if n > 1 {
		phrase += "s"
	}
	return phrase
}
