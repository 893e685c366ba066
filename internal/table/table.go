package table

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

var (
	// ErrMissingSource indicates a source file is absent or unreadable.
	ErrMissingSource = errors.New("missing source file")
	// ErrUnsupportedFormat indicates no loader handles the file extension.
	ErrUnsupportedFormat = errors.New("unsupported table format")
	// ErrMissingColumn indicates a required header is absent.
	ErrMissingColumn = errors.New("missing column")
)

// SourceError records which file and step failed while loading.
type SourceError struct {
	Path string
	Op   string
	Err  error
}

func (e *SourceError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, filepath.Base(e.Path), e.Err)
}

func (e *SourceError) Unwrap() error { return e.Err }

// Options controls how raw rows are shaped into a Table.
type Options struct {
	// SkipRows drops this many physical rows (file lines or sheet rows,
	// blank ones included) from the top before anything else.
	SkipRows int
	// SkipFooter drops this many data rows from the bottom.
	SkipFooter int
	// Header consumes the first row after SkipRows as column names.
	Header bool
	// Columns selects raw column positions (0-based). Nil keeps all.
	Columns []int
	// Names overrides column names after selection.
	Names []string
	// Sheet picks a workbook sheet by name; empty means the first sheet.
	Sheet string
}

// Table is a rectangular set of string cells with named columns.
// Missing cells are empty strings.
type Table struct {
	Name    string
	Columns []string
	Rows    [][]string
}

// Index returns the position of a named column or -1.
func (t *Table) Index(name string) int {
	for i, c := range t.Columns {
		if c == name {
			return i
		}
	}
	return -1
}

// Cell returns the trimmed cell text, or "" when the row is short.
func (t *Table) Cell(row, col int) string {
	if row < 0 || row >= len(t.Rows) || col < 0 || col >= len(t.Rows[row]) {
		return ""
	}
	return strings.TrimSpace(t.Rows[row][col])
}

// Float parses a cell as a real number; nil means missing or non-numeric.
func (t *Table) Float(row, col int) *float64 {
	f, ok := ParseNumeric(t.Cell(row, col))
	if !ok {
		return nil
	}
	return &f
}

// Len returns the number of data rows.
func (t *Table) Len() int { return len(t.Rows) }

// loader reads raw rows, applying opt.SkipRows in the file's own notion of
// a physical row.
type loader interface {
	CanLoad(path string) bool
	Read(path string, opt Options) ([][]string, error)
}

var registry []loader

// register adds a loader implementation to the registry.
func register(l loader) {
	registry = append(registry, l)
}

func init() {
	register(csvLoader{})
	register(xlsxLoader{})
	register(xlsLoader{})
}

// Load reads a tabular file, selecting a loader by extension, and applies opt.
func Load(path string, opt Options) (*Table, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, &SourceError{Path: path, Op: "open", Err: fmt.Errorf("%w: %v", ErrMissingSource, err)}
	}
	for _, l := range registry {
		if !l.CanLoad(path) {
			continue
		}
		raw, err := l.Read(path, opt)
		if err != nil {
			return nil, &SourceError{Path: path, Op: "read", Err: err}
		}
		return shape(filepath.Base(path), raw, opt), nil
	}
	return nil, &SourceError{Path: path, Op: "load", Err: ErrUnsupportedFormat}
}

func shape(name string, raw [][]string, opt Options) *Table {
	t := &Table{Name: name}
	if opt.Header && len(raw) > 0 {
		t.Columns = pick(raw[0], opt.Columns)
		for i := range t.Columns {
			t.Columns[i] = strings.TrimSpace(t.Columns[i])
		}
		raw = raw[1:]
	}
	if opt.SkipFooter > 0 {
		if opt.SkipFooter >= len(raw) {
			raw = nil
		} else {
			raw = raw[:len(raw)-opt.SkipFooter]
		}
	}
	width := len(t.Columns)
	for _, r := range raw {
		row := pick(r, opt.Columns)
		if len(row) > width {
			width = len(row)
		}
		t.Rows = append(t.Rows, row)
	}
	if len(opt.Names) > 0 {
		t.Columns = append([]string(nil), opt.Names...)
		if len(t.Columns) > width {
			width = len(t.Columns)
		}
	}
	// pad header and rows to a rectangle
	for len(t.Columns) < width {
		t.Columns = append(t.Columns, fmt.Sprintf("col%d", len(t.Columns)+1))
	}
	for i, r := range t.Rows {
		if len(r) < width {
			tmp := make([]string, width)
			copy(tmp, r)
			t.Rows[i] = tmp
		}
	}
	return t
}

func pick(row []string, cols []int) []string {
	if cols == nil {
		out := make([]string, len(row))
		copy(out, row)
		return out
	}
	out := make([]string, len(cols))
	for i, c := range cols {
		if c >= 0 && c < len(row) {
			out[i] = row[c]
		}
	}
	return out
}
