package value

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRanges(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []Token
	}{
		{"empty", "", nil},
		{"no numbers", "Varies", nil},
		{"single", "1", []Token{{Value: "1"}}},
		{"range with en dash", "1 – 3", []Token{{Value: "1-3"}}},
		{
			"annotated ranges",
			"1-3 (Classic) / 2-4 (Expert)",
			[]Token{{Value: "1-3", Qualifier: "Classic"}, {Value: "2-4", Qualifier: "Expert"}},
		},
		{
			"percentages win over integers",
			"1 item, 33.33% or 50%",
			[]Token{{Value: "33.33%", Percent: true}, {Value: "50%", Percent: true}},
		},
		{"percentage range", "1%-2%", []Token{{Value: "1%-2%", Percent: true}}},
		{"footnotes ignored", "5[1]", []Token{{Value: "5"}}},
		{"thousands separators", "1,200 / 2,400", []Token{{Value: "1,200"}, {Value: "2,400"}}},
		{"separated range", "1,000-12,500", []Token{{Value: "1,000-12,500"}}},
		{"comma list", "12,34", []Token{{Value: "12"}, {Value: "34"}}},
		{
			"parenthesized percentage",
			"1/3 (33.33%)",
			[]Token{{Value: "33.33%", Percent: true}},
		},
		{
			"qualifier after parenthesized percentage",
			"10 (33.33%) (Expert)",
			[]Token{{Value: "33.33%", Percent: true}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseRanges(tt.in))
		})
	}
}

func TestLabel_Positional(t *testing.T) {
	one := Label(ParseRanges("7"))
	assert.Equal(t, []Labeled{{Value: "7"}}, one)

	two := Label(ParseRanges("7 14"))
	assert.Equal(t, []Labeled{
		{Value: "7", Label: "Classic"},
		{Value: "14", Label: "Expert and Master"},
	}, two)

	three := Label(ParseRanges("7 14 21"))
	assert.Equal(t, []Labeled{
		{Value: "7", Label: "Classic"},
		{Value: "14", Label: "Expert"},
		{Value: "21", Label: "Master"},
	}, three)

	four := Label(ParseRanges("7 14 21 28"))
	assert.Len(t, four, 3)
	assert.Equal(t, "21", four[2].Value)

	assert.Nil(t, Label(nil))
}

func TestLabel_AnnotatedWinsOverPosition(t *testing.T) {
	got := Label(ParseRanges("25% (Classic) 50% (Expert)"))
	assert.Equal(t, []Labeled{
		{Value: "25%", Label: "Classic"},
		{Value: "50%", Label: "Expert"},
	}, got)
}

func TestPhrase(t *testing.T) {
	rates := Label(ParseRanges("25% (Classic) 50% (Expert)"))
	assert.Equal(t, "25% in Classic and 50% in Expert", Phrase(rates, ""))

	qty := Label(ParseRanges("1-3 (Classic) / 2-4 (Expert)"))
	assert.Equal(t, "1-3 Rotten Chunk in Classic and 2-4 Rotten Chunk in Expert", Phrase(qty, " Rotten Chunk"))

	assert.Equal(t, "", Phrase(nil, " Gel"))
}

func TestSpread(t *testing.T) {
	one := Spread([]string{"40"})
	require.Len(t, one, 3)
	for _, mv := range one {
		assert.Equal(t, "40", mv.Value)
	}

	two := Spread([]string{"40", "80"})
	assert.Equal(t, []ModeValue[string]{
		{Mode: Classic, Value: "40"},
		{Mode: Expert, Value: "80"},
		{Mode: Master, Value: "80"},
	}, two)

	three := Spread([]int{1, 2, 3, 4})
	assert.Equal(t, []ModeValue[int]{
		{Mode: Classic, Value: 1},
		{Mode: Expert, Value: 2},
		{Mode: Master, Value: 3},
	}, three)

	assert.Nil(t, Spread[string](nil))

	v, ok := For(two, Master)
	assert.True(t, ok)
	assert.Equal(t, "80", v)
	_, ok = For[string](nil, Classic)
	assert.False(t, ok)
}

func TestParseCoins(t *testing.T) {
	got := ParseCoins("1 SC 50 CC / 2 SC 1 CC")
	want := []ModeValue[string]{
		{Mode: Classic, Value: "1 Silver Coin and 50 Copper Coins"},
		{Mode: Expert, Value: "2 Silver Coins and 1 Copper Coin"},
		{Mode: Master, Value: "2 Silver Coins and 1 Copper Coin"},
	}
	assert.Equal(t, want, got)

	single := ParseCoins("75 CC")
	require.Len(t, single, 3)
	assert.Equal(t, "75 Copper Coins", single[2].Value)

	grouped := ParseCoins("60 CC / 1 SC 50 CC / 2 SC 18 CC")
	assert.Equal(t, []ModeValue[string]{
		{Mode: Classic, Value: "60 Copper Coins"},
		{Mode: Expert, Value: "1 Silver Coin and 50 Copper Coins"},
		{Mode: Master, Value: "2 Silver Coins and 18 Copper Coins"},
	}, grouped)

	paired := ParseCoins("1 SC 2 SC 50 CC")
	require.Len(t, paired, 3)
	assert.Equal(t, "1 Silver Coin and 50 Copper Coins", paired[0].Value)
	assert.Equal(t, "2 Silver Coins", paired[1].Value)

	assert.Nil(t, ParseCoins("no coins here"))
}

func TestSpread_ThousandsSeparators(t *testing.T) {
	got := Spread(Values(ParseRanges("1,200 / 2,400")))
	assert.Equal(t, []ModeValue[string]{
		{Mode: Classic, Value: "1,200"},
		{Mode: Expert, Value: "2,400"},
		{Mode: Master, Value: "2,400"},
	}, got)
}

func TestModeString(t *testing.T) {
	assert.Equal(t, "Classic", Classic.String())
	assert.Equal(t, "Expert", Expert.String())
	assert.Equal(t, "Master", Master.String())
	assert.Equal(t, "Unknown", Mode(9).String())
}
