package table

import "github.com/gaurav-prasanna/wikichunk/core/dom"

// Row is one data row of a multi-column table.
type Row struct {
	Node  dom.Node
	Cells []dom.Node
}

// Cell returns the i-th td of the row.
func (r Row) Cell(i int) (dom.Node, bool) {
	if i < 0 || i >= len(r.Cells) {
		return nil, false
	}
	return r.Cells[i], true
}

// Rows returns the data rows of t, skipping the header row. Only rows
// belonging to t itself are returned, not rows of nested tables.
func Rows(t dom.Node) []Row {
	var trs []dom.Node
	for _, section := range t.Children("thead, tbody, tfoot") {
		trs = append(trs, section.Children("tr")...)
	}
	trs = append(trs, t.Children("tr")...)
	if len(trs) <= 1 {
		return nil
	}

	rows := make([]Row, 0, len(trs)-1)
	for _, tr := range trs[1:] {
		rows = append(rows, Row{Node: tr, Cells: tr.Children("td")})
	}
	return rows
}

// Carry remembers the last value seen for columns that are only filled on
// the first row of a group (rowspan cells) and reapplies it to the rows
// that omit it.
type Carry struct {
	last map[string]string
}

// NewCarry starts every column at its default value.
func NewCarry(defaults map[string]string) *Carry {
	last := make(map[string]string, len(defaults))
	for k, v := range defaults {
		last[k] = v
	}
	return &Carry{last: last}
}

// Apply returns v when the row provides the column (present) and
// remembers it; otherwise it returns the remembered value.
func (c *Carry) Apply(column, v string, present bool) string {
	if present {
		c.last[column] = v
		return v
	}
	return c.last[column]
}
