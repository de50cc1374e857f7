// Package extract implements one extractor per recognized content pattern.
// Each extractor reads a parsed page and produces zero or more chunks:
//  1. General information paragraphs before the first section
//  2. Item info-boxes, drop info-boxes, set and tier info-boxes
//  3. Crafting recipe tables, creature variant tables, achievements
//  4. Bulleted Trivia / Tips / Notes sections
//
// Extractors never fail. Missing structure becomes an "Unknown …" label or
// no chunk at all, and markup they cannot read is reported on the page as
// an unhandled event.
package extract

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/gaurav-prasanna/wikichunk/core"
)

// ErrUnknownExtractor is returned by New for names with no registered extractor.
var ErrUnknownExtractor = errors.New("unknown extractor")

// DefaultOrder is the extractor sequence used when none is configured.
var DefaultOrder = []string{
	"general", "infobox", "drops", "crafting", "set",
	"achievements", "variants", "tiers", "lists",
}

// registry maps configuration names to constructors.
var registry = map[string]func() core.Extractor{
	"general":      GeneralInfo,
	"infobox":      Infobox,
	"drops":        Drops,
	"crafting":     Crafting,
	"set":          Set,
	"tiers":        Tiers,
	"achievements": Achievements,
	"variants":     Variants,
	"lists":        Lists,
}

// Names returns every registered extractor name, sorted.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// New builds the extractors for names, in order. An empty list means DefaultOrder.
func New(names []string) ([]core.Extractor, error) {
	if len(names) == 0 {
		names = DefaultOrder
	}
	out := make([]core.Extractor, 0, len(names))
	for _, name := range names {
		ctor, ok := registry[name]
		if !ok {
			return nil, fmt.Errorf("%w: %q (known: %s)", ErrUnknownExtractor, name, strings.Join(Names(), ", "))
		}
		out = append(out, ctor())
	}
	return out, nil
}

// extractor adapts a plain function to core.Extractor.
type extractor struct {
	name     string
	sections []string
	fn       func(page *core.Page) []core.Chunk
}

func (e *extractor) Name() string                         { return e.name }
func (e *extractor) Sections() []string                   { return e.sections }
func (e *extractor) Extract(page *core.Page) []core.Chunk { return e.fn(page) }

// chunks accumulates output for one extractor call, dropping empty text.
type chunks struct {
	page    string
	section string
	out     []core.Chunk
}

func newChunks(page *core.Page, section string) *chunks {
	return &chunks{page: page.Title, section: section}
}

func (c *chunks) add(text string) {
	c.addTo(c.section, text)
}

func (c *chunks) addTo(section, text string) {
	if text = strings.TrimSpace(text); text == "" {
		return
	}
	c.out = append(c.out, core.NewChunk(text, c.page, section))
}

// or returns v, or fallback when v is empty.
func or(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}
