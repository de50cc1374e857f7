// Package coverage counts the markup the pipeline saw but could not handle.
//
// An Accumulator is safe for concurrent use. Counting stops once Finalize
// builds the Report; calling Finalize again returns the same report.
package coverage

import (
	"sort"
	"sync"

	"github.com/gaurav-prasanna/wikichunk/core"
)

// Entry is one label and how often it was seen.
type Entry struct {
	Label string
	Count int
}

// Report is the finalized view of an Accumulator. Both tables are sorted by
// count, highest first, with ties broken by label.
type Report struct {
	SectionHeaders []Entry
	TableFields    []Entry
}

// Accumulator collects unhandled events across a corpus walk.
type Accumulator struct {
	mu      sync.Mutex
	headers map[string]int
	fields  map[string]int
	pages   map[string]struct{}
	report  *Report
	dropped int
}

// New returns an empty Accumulator.
func New() *Accumulator {
	return &Accumulator{
		headers: make(map[string]int),
		fields:  make(map[string]int),
		pages:   make(map[string]struct{}),
	}
}

// Record counts events. Events recorded after Finalize are discarded.
func (a *Accumulator) Record(events ...core.UnhandledEvent) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.report != nil {
		a.dropped += len(events)
		return
	}
	for _, e := range events {
		switch e.Kind {
		case core.SectionHeader:
			a.headers[e.Label]++
		case core.TableField:
			a.fields[e.Label]++
		default:
			continue
		}
		a.pages[e.PageTitle] = struct{}{}
	}
}

// Merge adds other's counts into a. other is left unchanged.
func (a *Accumulator) Merge(other *Accumulator) {
	if other == nil || other == a {
		return
	}
	other.mu.Lock()
	headers := copyCounts(other.headers)
	fields := copyCounts(other.fields)
	pages := make([]string, 0, len(other.pages))
	for p := range other.pages {
		pages = append(pages, p)
	}
	other.mu.Unlock()

	a.mu.Lock()
	defer a.mu.Unlock()
	if a.report != nil {
		return
	}
	for k, v := range headers {
		a.headers[k] += v
	}
	for k, v := range fields {
		a.fields[k] += v
	}
	for _, p := range pages {
		a.pages[p] = struct{}{}
	}
}

// Pages returns how many distinct pages raised at least one event.
func (a *Accumulator) Pages() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.pages)
}

// Dropped returns how many events arrived after Finalize.
func (a *Accumulator) Dropped() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.dropped
}

// Finalize builds the report. It is idempotent.
func (a *Accumulator) Finalize() *Report {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.report == nil {
		a.report = &Report{
			SectionHeaders: sorted(a.headers),
			TableFields:    sorted(a.fields),
		}
	}
	return a.report
}

func copyCounts(m map[string]int) map[string]int {
	out := make(map[string]int, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

func sorted(m map[string]int) []Entry {
	out := make([]Entry, 0, len(m))
	for label, n := range m {
		out = append(out, Entry{Label: label, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Label < out[j].Label
	})
	return out
}

// Total returns the number of events across both tables.
func (r *Report) Total() int {
	n := 0
	for _, e := range r.SectionHeaders {
		n += e.Count
	}
	for _, e := range r.TableFields {
		n += e.Count
	}
	return n
}
