package dom

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/gabriel-vasile/mimetype"
	"github.com/klauspost/compress/gzip"
	"github.com/saintfish/chardet"
	"golang.org/x/net/html/charset"
)

// ErrNotText is returned by Load for files that are not text documents.
var ErrNotText = errors.New("not a text document")

// pageExtensions are stripped from filenames to produce page titles.
var pageExtensions = []string{".gz", ".html", ".htm"}

// PageTitle derives the page identifier from a document path:
// the base filename minus its extensions ("Rotten Chunk.html" → "Rotten Chunk").
func PageTitle(path string) string {
	name := filepath.Base(path)
	for _, ext := range pageExtensions {
		if strings.HasSuffix(strings.ToLower(name), ext) {
			name = name[:len(name)-len(ext)]
		}
	}
	return name
}

// Load reads a document from disk and parses it. Gzip-compressed files
// (.gz) are decompressed, and pages that are not valid UTF-8 are
// transcoded from their detected charset.
func Load(path string) (Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	if strings.HasSuffix(strings.ToLower(path), ".gz") {
		data, err = gunzip(data)
		if err != nil {
			return nil, fmt.Errorf("decompressing %s: %w", path, err)
		}
	}

	if mt := mimetype.Detect(data); !strings.HasPrefix(mt.String(), "text/") {
		return nil, fmt.Errorf("%s (%s): %w", path, mt.String(), ErrNotText)
	}

	r, err := decode(data)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	return Parse(r)
}

func gunzip(data []byte) ([]byte, error) {
	zr, err := gzip.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	defer zr.Close()
	return io.ReadAll(zr)
}

// decode returns a UTF-8 reader over data.
func decode(data []byte) (io.Reader, error) {
	if utf8.Valid(data) {
		return bytes.NewReader(data), nil
	}
	best, err := chardet.NewHtmlDetector().DetectBest(data)
	if err != nil {
		return nil, fmt.Errorf("detecting charset: %w", err)
	}
	return charset.NewReaderLabel(best.Charset, bytes.NewReader(data))
}
