package coverage

import (
	"bytes"
	"fmt"

	"github.com/bytedance/sonic"
)

// MarshalJSON writes both tables as objects whose keys keep the report's
// count order:
//
//	{"section_headers": {"Gallery": 12, ...}, "table_fields": {...}}
func (r *Report) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(`{"section_headers":`)
	if err := writeTable(&buf, r.SectionHeaders); err != nil {
		return nil, err
	}
	buf.WriteString(`,"table_fields":`)
	if err := writeTable(&buf, r.TableFields); err != nil {
		return nil, err
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func writeTable(buf *bytes.Buffer, entries []Entry) error {
	buf.WriteByte('{')
	for i, e := range entries {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := sonic.Marshal(e.Label)
		if err != nil {
			return fmt.Errorf("encoding label %q: %w", e.Label, err)
		}
		buf.Write(key)
		fmt.Fprintf(buf, ":%d", e.Count)
	}
	buf.WriteByte('}')
	return nil
}
