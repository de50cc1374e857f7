package pipeline

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gaurav-prasanna/wikichunk/core"
	"github.com/gaurav-prasanna/wikichunk/core/dom"
	"github.com/gaurav-prasanna/wikichunk/core/extract"
)

const zombiePage = `<html><body><div class="mw-parser-output">
<p>The Zombie is a common enemy.</p>
<div class="infobox item"><div class="title">Zombie Arm</div><table class="stat">
<tr><th>Type</th><td>Weapon</td></tr>
<tr><th>Autoswing</th><td>no</td></tr>
</table></div>
<h2><span class="mw-headline" id="Lore">Lore</span></h2>
<p>Long ago.</p>
<h2><span class="mw-headline" id="Trivia">Trivia</span></h2>
<ul><li>Zombies groan.</li></ul>
<h2><span class="mw-headline" id="Gallery">Gallery</span></h2>
<h2><span class="mw-headline" id="Crafting">Crafting</span></h2>
</div></body></html>`

func newCoordinator(t *testing.T) *Coordinator {
	t.Helper()
	c, err := New(Options{Ignored: []string{"Gallery"}})
	require.NoError(t, err)
	return c
}

func page(t *testing.T, title, src string) *core.Page {
	t.Helper()
	doc, err := dom.Parse(strings.NewReader(src))
	require.NoError(t, err)
	return core.NewPage(doc, title)
}

func TestRun(t *testing.T) {
	res, err := newCoordinator(t).Run(page(t, "Zombie", zombiePage))
	require.NoError(t, err)
	assert.Equal(t, "Zombie", res.Page)

	var sections []string
	for _, c := range res.Chunks {
		sections = append(sections, c.Metadata.SectionTitle)
		assert.Equal(t, "Zombie", c.Metadata.PageTitle)
	}
	// Extractor order first, document order within an extractor.
	assert.Equal(t, []string{"General Information", "Infobox", "Trivia"}, sections)

	assert.Equal(t, []core.UnhandledEvent{
		{Kind: core.TableField, Label: "Autoswing", PageTitle: "Zombie"},
		{Kind: core.SectionHeader, Label: "Lore", PageTitle: "Zombie"},
	}, res.Events)
}

func TestRun_Deterministic(t *testing.T) {
	c := newCoordinator(t)
	a, err := c.Run(page(t, "Zombie", zombiePage))
	require.NoError(t, err)
	b, err := c.Run(page(t, "Zombie", zombiePage))
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

type panicky struct{}

func (panicky) Name() string                    { return "panicky" }
func (panicky) Sections() []string              { return nil }
func (panicky) Extract(*core.Page) []core.Chunk { panic("boom") }

func TestRun_RecoversPanic(t *testing.T) {
	c := newCoordinator(t)
	c.extractors = append(c.extractors, panicky{})

	res, err := c.Run(page(t, "Zombie", zombiePage))
	require.ErrorIs(t, err, ErrExtractorPanic)
	assert.Contains(t, err.Error(), "panicky")
	assert.Contains(t, err.Error(), "boom")
	assert.Empty(t, res.Chunks, "a failed document contributes nothing")
}

func TestNew_UnknownExtractor(t *testing.T) {
	_, err := New(Options{Extractors: []string{"nope"}})
	assert.ErrorIs(t, err, extract.ErrUnknownExtractor)
}

func TestClassify(t *testing.T) {
	c := newCoordinator(t)
	assert.Equal(t, Processed, c.Classify("Crafting"))
	assert.Equal(t, Processed, c.Classify("Achievements"))
	assert.Equal(t, Ignored, c.Classify("Gallery"))
	assert.Equal(t, Unhandled, c.Classify("Lore"))
	assert.Equal(t, "unhandled", Unhandled.String())
}

func TestProcessFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "Zombie.html")
	require.NoError(t, os.WriteFile(path, []byte(zombiePage), 0o644))

	res, err := newCoordinator(t).ProcessFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Zombie", res.Page)
	assert.Len(t, res.Chunks, 3)

	bin := filepath.Join(dir, "Image.html")
	require.NoError(t, os.WriteFile(bin, []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR"), 0o644))
	_, err = newCoordinator(t).ProcessFile(bin)
	assert.ErrorIs(t, err, dom.ErrNotText)
}
