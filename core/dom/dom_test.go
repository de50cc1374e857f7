package dom

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const samplePage = `<html><body><div class="mw-parser-output">
<p>Intro   text
 spanning lines.</p>
<h2><span class="mw-headline" id="Crafting">Crafting</span><span class="mw-editsection">[edit]</span></h2>
<h3><span class="mw-headline" id="Recipes">Recipes</span></h3>
<table class="recipes"><tr><th>Result</th></tr><tr><td class="result"><a>Nebula Brick</a><span>10</span></td></tr></table>
<div class="mw-heading mw-heading2"><h2 id="Trivia">Trivia<span class="mw-editsection">[edit]</span></h2></div>
<ul><li>One <b>bold</b> fact<ul><li>nested</li></ul></li></ul>
<h2></h2>
</div></body></html>`

func parse(t *testing.T, src string) Document {
	t.Helper()
	doc, err := Parse(strings.NewReader(src))
	require.NoError(t, err)
	return doc
}

func TestText_CollapsesWhitespace(t *testing.T) {
	doc := parse(t, samplePage)
	p, ok := doc.First("p")
	require.True(t, ok)
	assert.Equal(t, "Intro text spanning lines.", p.Text())
}

func TestCompactText_JoinsWithoutSeparator(t *testing.T) {
	doc := parse(t, samplePage)
	cell, ok := doc.First("td.result")
	require.True(t, ok)
	assert.Equal(t, "Nebula Brick10", cell.CompactText())
	assert.Equal(t, "Nebula Brick 10", cell.Text())
}

func TestTextExcluding_DoesNotMutate(t *testing.T) {
	doc := parse(t, samplePage)
	li, ok := doc.First("li")
	require.True(t, ok)

	assert.Equal(t, "One bold fact", li.TextExcluding("ul, ol"))
	assert.Equal(t, "One bold fact nested", li.Text())
}

func TestFindNext_DocumentOrder(t *testing.T) {
	doc := parse(t, samplePage)
	crafting, ok := doc.First("#Crafting")
	require.True(t, ok)

	recipes, ok := crafting.FindNext("#Recipes")
	require.True(t, ok)
	assert.Equal(t, "Recipes", recipes.Text())

	table, ok := recipes.FindNext("table.recipes")
	require.True(t, ok)
	assert.Equal(t, "table", table.Tag())

	_, ok = table.FindNext("table.recipes")
	assert.False(t, ok)
}

func TestHeadings(t *testing.T) {
	doc := parse(t, samplePage)
	headings := doc.Headings()
	require.Len(t, headings, 2)
	assert.Equal(t, "Crafting", headings[0].Label)
	assert.Equal(t, "Trivia", headings[1].Label)

	anchor := SectionAnchor(headings[1].Node)
	assert.True(t, anchor.HasClass("mw-heading"))
	next, ok := anchor.NextSibling()
	require.True(t, ok)
	assert.Equal(t, "ul", next.Tag())
	assert.True(t, IsSectionBoundary(anchor))
}

func TestClosestAndChildren(t *testing.T) {
	doc := parse(t, samplePage)
	span, ok := doc.First("#Crafting")
	require.True(t, ok)

	h2, ok := span.Closest("h2")
	require.True(t, ok)
	assert.Len(t, h2.Children("span"), 2)
	assert.Len(t, h2.Children("span.mw-headline"), 1)
	_, ok = span.Closest("table")
	assert.False(t, ok)
}

func TestInvalidSelectorMatchesNothing(t *testing.T) {
	doc := parse(t, samplePage)
	assert.Empty(t, doc.Find("p[["))
}

func TestPageTitle(t *testing.T) {
	assert.Equal(t, "Rotten Chunk", PageTitle("/pages/Rotten Chunk.html"))
	assert.Equal(t, "Zombie", PageTitle("Zombie.html.gz"))
	assert.Equal(t, "Guide", PageTitle("Guide.htm"))
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()

	plain := filepath.Join(dir, "Plain.html")
	require.NoError(t, os.WriteFile(plain, []byte(samplePage), 0o644))
	doc, err := Load(plain)
	require.NoError(t, err)
	assert.Len(t, doc.Headings(), 2)

	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	_, err = zw.Write([]byte(samplePage))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	compressed := filepath.Join(dir, "Packed.html.gz")
	require.NoError(t, os.WriteFile(compressed, buf.Bytes(), 0o644))
	doc, err = Load(compressed)
	require.NoError(t, err)
	assert.Len(t, doc.Headings(), 2)

	binary := filepath.Join(dir, "Image.html")
	require.NoError(t, os.WriteFile(binary, []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR"), 0o644))
	_, err = Load(binary)
	assert.ErrorIs(t, err, ErrNotText)
}

func TestLoad_TranscodesLatin1(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "Latin.html")
	// "Café" with é encoded as a single ISO-8859-1 byte.
	src := []byte("<html><head><meta charset=\"iso-8859-1\"></head><body><p>Caf\xe9 au lait pour tout le monde, merci beaucoup.</p></body></html>")
	require.NoError(t, os.WriteFile(path, src, 0o644))

	doc, err := Load(path)
	require.NoError(t, err)
	p, ok := doc.First("p")
	require.True(t, ok)
	assert.True(t, strings.HasPrefix(p.Text(), "Café"), p.Text())
}
