// Package pipeline runs the configured extractors over one document and
// reports the section headings none of them claimed.
package pipeline

import (
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/gaurav-prasanna/wikichunk/core"
	"github.com/gaurav-prasanna/wikichunk/core/dom"
	"github.com/gaurav-prasanna/wikichunk/core/extract"
	"github.com/gaurav-prasanna/wikichunk/core/logging"
)

// ErrExtractorPanic wraps a panic raised inside an extractor.
var ErrExtractorPanic = errors.New("extractor panicked")

// Status classifies a section heading.
type Status int

const (
	Unhandled Status = iota
	Processed
	Ignored
)

func (s Status) String() string {
	switch s {
	case Processed:
		return "processed"
	case Ignored:
		return "ignored"
	default:
		return "unhandled"
	}
}

// Options configures a Coordinator.
type Options struct {
	// Extractors names the extractors to run, in order. Empty means
	// extract.DefaultOrder.
	Extractors []string
	// Ignored lists section headings that are deliberately out of scope.
	Ignored []string
	Logger  *logging.Logger
}

// Result is everything one document produced.
type Result struct {
	Page   string
	Chunks []core.Chunk
	Events []core.UnhandledEvent
}

// Coordinator is safe for concurrent use: it holds no per-document state.
type Coordinator struct {
	extractors []core.Extractor
	processed  map[string]struct{}
	ignored    map[string]struct{}
	log        *logging.Logger
}

// New builds a Coordinator.
func New(opts Options) (*Coordinator, error) {
	extractors, err := extract.New(opts.Extractors)
	if err != nil {
		return nil, err
	}
	log := opts.Logger
	if log == nil {
		log = logging.Nop()
	}

	c := &Coordinator{
		extractors: extractors,
		processed:  make(map[string]struct{}),
		ignored:    make(map[string]struct{}, len(opts.Ignored)),
		log:        log.Named("pipeline"),
	}
	for _, e := range extractors {
		for _, s := range e.Sections() {
			c.processed[s] = struct{}{}
		}
	}
	for _, s := range opts.Ignored {
		c.ignored[s] = struct{}{}
	}
	return c, nil
}

// Classify reports how a section heading is treated.
func (c *Coordinator) Classify(label string) Status {
	if _, ok := c.processed[label]; ok {
		return Processed
	}
	if _, ok := c.ignored[label]; ok {
		return Ignored
	}
	return Unhandled
}

// ProcessFile loads the document at path and runs it.
func (c *Coordinator) ProcessFile(path string) (Result, error) {
	title := dom.PageTitle(path)
	doc, err := dom.Load(path)
	if err != nil {
		return Result{Page: title}, fmt.Errorf("loading %s: %w", path, err)
	}
	return c.Run(core.NewPage(doc, title))
}

// Run applies every extractor to page in order, then records an unhandled
// event for each heading that is neither processed nor ignored. A panic in
// any extractor fails the whole document.
func (c *Coordinator) Run(page *core.Page) (res Result, err error) {
	res.Page = page.Title
	current := ""
	defer func() {
		if r := recover(); r != nil {
			res = Result{Page: page.Title}
			err = fmt.Errorf("%w: %s on %q: %v", ErrExtractorPanic, current, page.Title, r)
		}
	}()

	for _, e := range c.extractors {
		current = e.Name()
		for _, chunk := range e.Extract(page) {
			chunk.Text = strings.TrimSpace(chunk.Text)
			if chunk.Text == "" {
				c.log.Debug("dropped empty chunk",
					zap.String("page", page.Title),
					zap.String("extractor", current))
				continue
			}
			res.Chunks = append(res.Chunks, chunk)
		}
	}
	current = ""

	for _, h := range page.Doc.Headings() {
		if c.Classify(h.Label) == Unhandled {
			page.Unhandled(core.SectionHeader, h.Label)
		}
	}

	res.Events = page.Events()
	for _, e := range res.Events {
		c.log.Debug("unhandled",
			zap.String("page", page.Title),
			zap.Stringer("kind", e.Kind),
			zap.String("label", e.Label))
	}
	return res, nil
}
