// Package document loads the text under evaluation from a file or stdin.
package document

import (
	"crypto/sha256"
	"fmt"
	"io"
	"os"
	"strings"
)

// StdinPath is the recorded path when the document was read from stdin.
const StdinPath = "<stdin>"

// Document holds a loaded input file with derived metadata. Immutable once
// loaded; evaluation never mutates it.
type Document struct {
	Path      string
	Hash      string // "sha256:<hex>"
	Raw       string // original content
	LineCount int
}

// Load reads a document from disk and computes its hash and line count.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading document: %w", err)
	}
	return fromBytes(path, data), nil
}

// Read consumes r to EOF and builds a Document recorded under StdinPath.
func Read(r io.Reader) (*Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading document: %w", err)
	}
	return fromBytes(StdinPath, data), nil
}

func fromBytes(path string, data []byte) *Document {
	sum := sha256.Sum256(data)
	return &Document{
		Path:      path,
		Hash:      fmt.Sprintf("sha256:%x", sum),
		Raw:       string(data),
		LineCount: countLines(string(data)),
	}
}

// countLines counts logical lines. A trailing newline does not produce an
// extra empty line, matching what an editor shows.
func countLines(content string) int {
	if content == "" {
		return 0
	}
	lines := strings.Split(content, "\n")
	if lines[len(lines)-1] == "" {
		return len(lines) - 1
	}
	return len(lines)
}
