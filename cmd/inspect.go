// Package cmd — inspect command.
package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gaurav-prasanna/wikichunk/core"
	"github.com/gaurav-prasanna/wikichunk/core/dom"
	"github.com/gaurav-prasanna/wikichunk/core/normalize"
	"github.com/gaurav-prasanna/wikichunk/core/pipeline"
	"github.com/gaurav-prasanna/wikichunk/core/render"
)

var (
	flagSection string
	flagChunks  bool
	flagRaw     bool
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <file>",
	Short: "Show how one page is classified and extracted",
	Long: `Inspect lists every section heading of a page with its status (processed,
ignored or unhandled). With --section it prints that section's content as
Markdown, which is the quickest way to see what an unhandled section holds
before writing an extractor for it.

Examples:
  wikichunk inspect pages/Zombie.html
  wikichunk inspect pages/Zombie.html --section Trivia
  wikichunk inspect pages/Zombie.html --chunks`,
	Args: cobra.ExactArgs(1),
	RunE: runInspect,
}

func init() {
	rootCmd.AddCommand(inspectCmd)

	f := inspectCmd.Flags()
	f.StringVarP(&flagSection, "section", "s", "", "Print the content of this section")
	f.BoolVar(&flagRaw, "raw", false, "With --section, print sanitized HTML instead of Markdown")
	f.BoolVar(&flagChunks, "chunks", false, "Print the chunks extracted from the page as JSON")
}

func runInspect(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	log, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer log.Sync() //nolint:errcheck

	coord, err := pipeline.New(pipeline.Options{
		Extractors: cfg.Pipeline.Extractors,
		Ignored:    cfg.Pipeline.IgnoredSections,
		Logger:     log,
	})
	if err != nil {
		return fmt.Errorf("initializing pipeline: %w", err)
	}

	path := args[0]
	doc, err := dom.Load(path)
	if err != nil {
		return fmt.Errorf("loading %s: %w", path, err)
	}
	out := cmd.OutOrStdout()
	title := dom.PageTitle(path)

	fmt.Fprintf(out, "Page: %s\n", title)
	listHeadings(out, doc, coord)

	if flagSection != "" {
		section, ok := sectionHTML(doc, flagSection)
		if !ok {
			return fmt.Errorf("section %q not found in %s", flagSection, path)
		}
		n := normalize.New()
		text := n.Sanitize(section)
		if !flagRaw {
			if text, err = n.Normalize(section); err != nil {
				return err
			}
		}
		fmt.Fprintf(out, "\n## %s\n\n%s\n", flagSection, text)
	}

	if flagChunks {
		res, err := coord.Run(core.NewPage(doc, title))
		if err != nil {
			return err
		}
		data, err := render.NewChunksJSON().Render(res.Chunks)
		if err != nil {
			return fmt.Errorf("render: %w", err)
		}
		fmt.Fprintf(out, "\n")
		out.Write(data) //nolint:errcheck
	}
	return nil
}

func listHeadings(w io.Writer, doc dom.Document, coord *pipeline.Coordinator) {
	headings := doc.Headings()
	if len(headings) == 0 {
		fmt.Fprintln(w, "No section headings.")
		return
	}
	for _, h := range headings {
		fmt.Fprintf(w, "  %-10s %s\n", coord.Classify(h.Label), h.Label)
	}
}

// sectionHTML returns the outer HTML of every element between the heading
// labeled label and the next top-level heading.
func sectionHTML(doc dom.Document, label string) (string, bool) {
	for _, h := range doc.Headings() {
		if h.Label != label {
			continue
		}
		var b strings.Builder
		next, ok := dom.SectionAnchor(h.Node).NextSibling()
		for ok && !dom.IsSectionBoundary(next) {
			b.WriteString(next.HTML())
			b.WriteByte('\n')
			next, ok = next.NextSibling()
		}
		return b.String(), true
	}
	return "", false
}
