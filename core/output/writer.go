// Package output handles file naming and writing for wikichunk outputs.
// The chunk stream goes to one file; the coverage report defaults to a
// sibling file named after it (chunks.json → chunks.coverage.md).
package output

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Writer writes rendered output to disk.
type Writer struct {
	// BaseDir resolves relative paths. Empty means the working directory.
	BaseDir string
}

// New creates a Writer resolving relative paths against baseDir.
func New(baseDir string) (*Writer, error) {
	if baseDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("getting working directory: %w", err)
		}
		baseDir = wd
	}
	return &Writer{BaseDir: baseDir}, nil
}

// Write stores data at path, creating parent directories. The file is
// written to a temporary name first and renamed into place, so readers
// never see a partial chunk stream.
func (w *Writer) Write(path string, data []byte) (string, error) {
	if !filepath.IsAbs(path) {
		path = filepath.Join(w.BaseDir, path)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("creating directory %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return "", fmt.Errorf("creating temp file in %s: %w", dir, err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return "", fmt.Errorf("writing file %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("writing file %s: %w", path, err)
	}
	if err := os.Chmod(tmp.Name(), 0644); err != nil {
		return "", fmt.Errorf("setting mode on %s: %w", path, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return "", fmt.Errorf("moving file into %s: %w", path, err)
	}
	return path, nil
}

// ReportPath derives the default coverage report path from the chunk
// output path: the output's extension is replaced by ".coverage"+ext.
func ReportPath(outputFile, ext string) string {
	base := strings.TrimSuffix(outputFile, filepath.Ext(outputFile))
	return base + ".coverage" + ext
}
