package coverage

import (
	"encoding/json"
	"fmt"
	"sync"
	"testing"

	"github.com/gaurav-prasanna/wikichunk/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func header(label, page string) core.UnhandledEvent {
	return core.UnhandledEvent{Kind: core.SectionHeader, Label: label, PageTitle: page}
}

func field(label, page string) core.UnhandledEvent {
	return core.UnhandledEvent{Kind: core.TableField, Label: label, PageTitle: page}
}

func TestFinalize_SortsByCountThenLabel(t *testing.T) {
	acc := New()
	acc.Record(header("Gallery", "A"), header("Lore", "A"), header("Gallery", "B"), header("Achievements Tab", "B"))
	acc.Record(field("Hidden Stat", "A"))

	r := acc.Finalize()
	assert.Equal(t, []Entry{
		{Label: "Gallery", Count: 2},
		{Label: "Achievements Tab", Count: 1},
		{Label: "Lore", Count: 1},
	}, r.SectionHeaders)
	assert.Equal(t, []Entry{{Label: "Hidden Stat", Count: 1}}, r.TableFields)
	assert.Equal(t, 5, r.Total())
	assert.Equal(t, 2, acc.Pages())
}

func TestFinalize_Idempotent(t *testing.T) {
	acc := New()
	acc.Record(field("Hidden Stat", "A"))
	first := acc.Finalize()

	acc.Record(field("Hidden Stat", "B"))
	second := acc.Finalize()

	assert.Same(t, first, second)
	assert.Equal(t, 1, second.TableFields[0].Count)
	assert.Equal(t, 1, acc.Dropped())
}

func TestMerge(t *testing.T) {
	a, b := New(), New()
	a.Record(header("Lore", "A"))
	b.Record(header("Lore", "B"), field("Hidden Stat", "B"))

	a.Merge(b)
	a.Merge(a)
	a.Merge(nil)

	r := a.Finalize()
	assert.Equal(t, []Entry{{Label: "Lore", Count: 2}}, r.SectionHeaders)
	assert.Equal(t, []Entry{{Label: "Hidden Stat", Count: 1}}, r.TableFields)

	// The merged-from accumulator is untouched.
	assert.Equal(t, 1, b.Finalize().SectionHeaders[0].Count)
}

func TestRecord_Concurrent(t *testing.T) {
	acc := New()
	var wg sync.WaitGroup
	for w := 0; w < 8; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				acc.Record(header("Lore", fmt.Sprintf("page-%d", w)))
			}
		}(w)
	}
	wg.Wait()

	r := acc.Finalize()
	require.Len(t, r.SectionHeaders, 1)
	assert.Equal(t, 800, r.SectionHeaders[0].Count)
	assert.Equal(t, 8, acc.Pages())
}

func TestReport_MarshalJSONKeepsOrder(t *testing.T) {
	acc := New()
	acc.Record(header("Zeta", "A"), header("Zeta", "A"), header("Alpha", "A"), field(`Say "hi"`, "A"))

	data, err := json.Marshal(acc.Finalize())
	require.NoError(t, err)
	assert.Equal(t, `{"section_headers":{"Zeta":2,"Alpha":1},"table_fields":{"Say \"hi\"":1}}`, string(data))

	empty, err := json.Marshal(New().Finalize())
	require.NoError(t, err)
	assert.Equal(t, `{"section_headers":{},"table_fields":{}}`, string(empty))
}
