// Package document holds the read-only text model: an ordered list of rows loaded from a file.
package document

import (
	"io"
	"log"
	"os"
	"strings"
	"unicode/utf8"
)

// Option configures how rows are rendered
type Option func(*RenderOptions)

// WithTabStop expands tabs to multiples of n columns
func WithTabStop(n int) Option {
	return func(o *RenderOptions) {
		o.TabStop = n
	}
}

// WithEscapeControl renders control characters in caret notation
func WithEscapeControl(on bool) Option {
	return func(o *RenderOptions) {
		o.EscapeControl = on
	}
}

// Document is an ordered sequence of rows; index is the zero-based line number
type Document struct {
	rows []*Row
	path string
}

// Empty returns a document with no rows and no source path
func Empty() *Document {
	return &Document{}
}

// Load reads the whole file at path. On failure no document is returned.
func Load(path string, opts ...Option) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &ReadError{Path: path, Err: err}
	}
	defer f.Close()

	return Parse(path, f, opts...)
}

// Parse builds a document from r, recording path as its source
func Parse(path string, r io.Reader, opts ...Option) (*Document, error) {
	var ro RenderOptions
	for _, opt := range opts {
		opt(&ro)
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, &ReadError{Path: path, Err: err}
	}
	if !utf8.Valid(data) {
		return nil, &ReadError{Path: path, Err: ErrInvalidEncoding}
	}

	lines := splitLines(string(data))
	rows := make([]*Row, len(lines))
	for i, line := range lines {
		rows[i] = NewRow(line, ro)
	}

	log.Printf("document: loaded %q, %d rows", path, len(rows))
	return &Document{rows: rows, path: path}, nil
}

// splitLines splits on LF, dropping a CR that directly precedes it.
// A trailing newline terminates the last line rather than opening an empty one.
// A CR not followed by LF is content, even at the end of input.
func splitLines(text string) []string {
	if text == "" {
		return nil
	}

	terminated := strings.HasSuffix(text, "\n")
	lines := strings.Split(text, "\n")
	if terminated {
		lines = lines[:len(lines)-1]
	}

	for i, line := range lines {
		if i < len(lines)-1 || terminated {
			lines[i] = strings.TrimSuffix(line, "\r")
		}
	}
	return lines
}

// RowCount returns the number of rows
func (d *Document) RowCount() int {
	return len(d.rows)
}

// RowAt returns row i, or false when i is out of range
func (d *Document) RowAt(i int) (*Row, bool) {
	if i < 0 || i >= len(d.rows) {
		return nil, false
	}
	return d.rows[i], true
}

// Path returns the source path, empty for a document created with Empty
func (d *Document) Path() string {
	return d.path
}
