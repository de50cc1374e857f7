package output

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrite_CreatesParents(t *testing.T) {
	w, err := New(t.TempDir())
	require.NoError(t, err)

	path, err := w.Write(filepath.Join("out", "nested", "chunks.json"), []byte("[]\n"))
	require.NoError(t, err)
	assert.True(t, filepath.IsAbs(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "[]\n", string(data))

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "no temp files left behind")
}

func TestWrite_Overwrites(t *testing.T) {
	dir := t.TempDir()
	w, err := New(dir)
	require.NoError(t, err)

	target := filepath.Join(dir, "chunks.json")
	_, err = w.Write(target, []byte("old"))
	require.NoError(t, err)
	_, err = w.Write(target, []byte("new"))
	require.NoError(t, err)

	data, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, "new", string(data))
}

func TestReportPath(t *testing.T) {
	assert.Equal(t, "out/chunks.coverage.json", ReportPath("out/chunks.json", ".json"))
	assert.Equal(t, "chunks.coverage.md", ReportPath("chunks", ".md"))
}
