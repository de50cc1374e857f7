package table

import (
	"github.com/gaurav-prasanna/wikichunk/core/dom"
)

// RawField is a key/value row no accepted field claimed, kept verbatim.
type RawField struct {
	Key   string
	Value string
}

// StatRecord is the normalized content of one info-box stat table.
type StatRecord struct {
	Title       string
	values      map[Field]string
	Unprocessed []RawField
}

// Get returns the value of field f.
func (r *StatRecord) Get(f Field) (string, bool) {
	v, ok := r.values[f]
	return v, ok
}

// Set stores a value for field f.
func (r *StatRecord) Set(f Field, v string) {
	if r.values == nil {
		r.values = make(map[Field]string)
	}
	r.values[f] = v
}

// Len returns the number of populated fields.
func (r *StatRecord) Len() int {
	return len(r.values)
}

// ReadStats reads the info-box element box into a StatRecord. Title comes
// from the box's div.title, falling back to defaultTitle. Each row of the
// box's table.stat contributes one field; rows whose label is unknown or
// outside accept are kept in Unprocessed with their raw label.
func ReadStats(box dom.Node, accept FieldSet, defaultTitle string) StatRecord {
	rec := StatRecord{Title: defaultTitle}
	if title, ok := box.First("div.title"); ok {
		if t := title.CompactText(); t != "" {
			rec.Title = t
		}
	}

	stat, ok := box.First("table.stat")
	if !ok {
		return rec
	}

	for _, row := range stat.Find("tr") {
		key := "Unknown Key"
		if th, ok := row.First("th"); ok {
			key = th.Text()
		}
		cell, hasCell := row.First("td")
		if !hasCell {
			// Header-only rows (section captions inside the box) carry no value.
			continue
		}

		f, known := Lookup(key)
		if !known || !accept.Has(f) {
			rec.Unprocessed = append(rec.Unprocessed, RawField{Key: key, Value: cell.Text()})
			continue
		}
		if v, ok := read(f, cell); ok {
			rec.Set(f, v)
		}
	}
	return rec
}
