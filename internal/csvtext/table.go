// Package csvtext parses the minimal comma-separated dialect produced by
// gig-platform exports.
//
// Fields are split on every literal comma. Quoted fields are not
// understood: a value containing a comma is split in two, and double-quote
// characters are removed rather than unescaped.
package csvtext

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/grachmannico95/gig-earnings/internal/domain"
)

type Options struct {
	// SkipBlankLines drops data lines that are empty after trimming.
	// When false a blank line becomes a row of empty values.
	SkipBlankLines bool

	// RequireDataRow fails with domain.ErrEmptyInput unless the text has
	// a header line and at least one more line.
	RequireDataRow bool
}

// ConnectOptions matches the Connect earnings page: header-only files are
// accepted and blank lines count as rows.
var ConnectOptions = Options{}

// StudyOptions matches the Prolific page.
var StudyOptions = Options{SkipBlankLines: true, RequireDataRow: true}

// Table is an immutable parsed export.
type Table struct {
	headers []string
	rows    []Row
}

// Row holds one value per header, in header order.
type Row struct {
	fields []string
	index  map[string]int
}

func Parse(text string, opts Options) (*Table, error) {
	lines := strings.Split(trim(text), "\n")
	if opts.RequireDataRow && len(lines) < 2 {
		return nil, fmt.Errorf("%w: found %d line(s)", domain.ErrEmptyInput, len(lines))
	}

	headers := splitFields(lines[0])

	// A repeated header name resolves to its last position.
	index := make(map[string]int, len(headers))
	for i, h := range headers {
		index[h] = i
	}

	rows := make([]Row, 0, len(lines)-1)
	for _, line := range lines[1:] {
		if opts.SkipBlankLines {
			line = trim(line)
			if line == "" {
				continue
			}
		}

		values := splitFields(line)
		fields := make([]string, len(headers))
		copy(fields, values)
		rows = append(rows, Row{fields: fields, index: index})
	}

	return &Table{headers: headers, rows: rows}, nil
}

func splitFields(line string) []string {
	parts := strings.Split(line, ",")
	for i, p := range parts {
		parts[i] = strings.ReplaceAll(trim(p), `"`, "")
	}
	return parts
}

// trim strips surrounding whitespace including a byte-order mark.
func trim(s string) string {
	return strings.TrimFunc(s, func(r rune) bool {
		return unicode.IsSpace(r) || r == '\uFEFF'
	})
}

func (t *Table) Headers() []string {
	out := make([]string, len(t.headers))
	copy(out, t.headers)
	return out
}

func (t *Table) Rows() []Row {
	return t.rows
}

func (t *Table) Len() int {
	return len(t.rows)
}

// Get returns the value under header, or "" when the header is absent.
func (r Row) Get(header string) string {
	i, ok := r.index[header]
	if !ok {
		return ""
	}
	return r.fields[i]
}

// At returns the value in column i, or "" when i is out of range.
func (r Row) At(i int) string {
	if i < 0 || i >= len(r.fields) {
		return ""
	}
	return r.fields[i]
}

func (r Row) Len() int {
	return len(r.fields)
}
