// Package value extracts numeric ranges, percentages and coin amounts from
// free-form table cell text, and maps positional values onto game
// difficulty modes.
//
// Nothing in this package fails: text with no recognizable value yields an
// empty result, and callers substitute an "Unknown …" label.
package value

// Mode is a game difficulty tier. Modes are ordered.
type Mode int

const (
	Classic Mode = iota
	Expert
	Master
)

// Modes lists every mode in order.
var Modes = []Mode{Classic, Expert, Master}

func (m Mode) String() string {
	switch m {
	case Classic:
		return "Classic"
	case Expert:
		return "Expert"
	case Master:
		return "Master"
	default:
		return "Unknown"
	}
}

// ModeValue is a value tagged with the mode it applies to.
type ModeValue[T any] struct {
	Mode  Mode
	Value T
}

// Spread assigns positional values to modes:
//
//	1 value  → every mode gets it
//	2 values → Classic gets the first, Expert and Master share the second
//	3 values → one per mode, in order
//
// Values beyond the third are dropped. No values yields nil.
func Spread[T any](values []T) []ModeValue[T] {
	if len(values) == 0 {
		return nil
	}
	if len(values) > len(Modes) {
		values = values[:len(Modes)]
	}
	out := make([]ModeValue[T], len(Modes))
	for i, m := range Modes {
		idx := i
		if idx >= len(values) {
			idx = len(values) - 1
		}
		out[i] = ModeValue[T]{Mode: m, Value: values[idx]}
	}
	return out
}

// For returns the value assigned to mode m.
func For[T any](values []ModeValue[T], m Mode) (T, bool) {
	for _, v := range values {
		if v.Mode == m {
			return v.Value, true
		}
	}
	var zero T
	return zero, false
}

// positionalLabels names each position for a token count, matching Spread.
func positionalLabels(n int) []string {
	switch n {
	case 0, 1:
		return []string{""}
	case 2:
		return []string{"Classic", "Expert and Master"}
	default:
		return []string{"Classic", "Expert", "Master"}
	}
}
