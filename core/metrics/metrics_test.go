package metrics

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func exposition(t *testing.T, m *Metrics) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "wikichunk.prom")
	require.NoError(t, m.WriteFile(path))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func TestCounters(t *testing.T) {
	m := New()
	m.RecordDocument(StatusOK, 5*time.Millisecond)
	m.RecordDocument(StatusOK, 7*time.Millisecond)
	m.RecordDocument(StatusFailed, time.Millisecond)
	m.RecordDocument(StatusSkipped, 0)
	m.RecordChunk("Infobox")
	m.RecordChunk("Variants")
	m.RecordUnhandled("section_header")

	out := exposition(t, m)
	assert.Contains(t, out, `wikichunk_documents_total{status="ok"} 2`)
	assert.Contains(t, out, `wikichunk_documents_total{status="failed"} 1`)
	assert.Contains(t, out, `wikichunk_documents_total{status="skipped"} 1`)
	assert.Contains(t, out, `wikichunk_chunks_total{section="Infobox"} 1`)
	assert.Contains(t, out, `wikichunk_chunks_total{section="Variants"} 1`)
	assert.Contains(t, out, `wikichunk_unhandled_total{kind="section_header"} 1`)
	assert.Contains(t, out, "wikichunk_document_duration_seconds_count 3")
}

func TestGatherer(t *testing.T) {
	m := New()
	m.RecordChunk("Infobox")
	families, err := m.Gatherer().Gather()
	require.NoError(t, err)
	assert.NotEmpty(t, families)
}

func TestWriteFile_BadPath(t *testing.T) {
	err := New().WriteFile(filepath.Join(t.TempDir(), "missing", "dir", "x.prom"))
	assert.Error(t, err)
}
