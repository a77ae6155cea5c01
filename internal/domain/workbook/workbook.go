// Package workbook loads user-supplied spreadsheet files into an in-memory
// workbook model. It supports modern .xlsx files, legacy .xls files and plain
// CSV exports, and unwraps formula cells to their cached results so downstream
// code only ever sees plain values.
package workbook

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// ErrLoad is returned (wrapped) when a file cannot be read as a spreadsheet.
// Callers treat it as fatal for the current import attempt.
var ErrLoad = errors.New("could not process spreadsheet file")

// CellKind discriminates the value held by a Cell.
type CellKind int

const (
	KindEmpty CellKind = iota
	KindText
	KindNumber
)

// Cell is a single spreadsheet cell. Formula cells are unwrapped at load time:
// Text/Number hold the cached result and Formula records where it came from.
type Cell struct {
	Kind    CellKind
	Text    string
	Number  float64
	Formula bool
}

// IsEmpty reports whether the cell holds no usable value.
func (c Cell) IsEmpty() bool {
	return c.Kind == KindEmpty || (c.Kind == KindText && strings.TrimSpace(c.Text) == "")
}

// String returns the cell's value as display text.
func (c Cell) String() string {
	switch c.Kind {
	case KindNumber:
		return strings.TrimRight(strings.TrimRight(fmt.Sprintf("%f", c.Number), "0"), ".")
	case KindText:
		return c.Text
	}
	return ""
}

// Sheet is an ordered grid of cells. Rows are in sheet order; both rows and
// columns are addressed 1-based at the package surface.
type Sheet struct {
	Name string
	Rows [][]Cell
}

// RowCount returns the number of rows in the sheet.
func (s *Sheet) RowCount() int { return len(s.Rows) }

// Row returns the cells of a 1-based row, or nil when out of range.
func (s *Sheet) Row(n int) []Cell {
	if n < 1 || n > len(s.Rows) {
		return nil
	}
	return s.Rows[n-1]
}

// Cell returns the cell at 1-based row/column coordinates. Missing cells come
// back as empty, never as an error: ragged rows are normal in bank exports.
func (s *Sheet) Cell(row, col int) Cell {
	r := s.Row(row)
	if r == nil || col < 1 || col > len(r) {
		return Cell{}
	}
	return r[col-1]
}

// Workbook is the in-memory representation of one uploaded file. It is owned
// exclusively by the import run that loaded it and is discarded afterwards.
type Workbook struct {
	FileName string
	Sheets   []*Sheet
}

// FirstSheet returns the first worksheet, or nil for an empty workbook.
func (w *Workbook) FirstSheet() *Sheet {
	if len(w.Sheets) == 0 {
		return nil
	}
	return w.Sheets[0]
}

// Load reads a spreadsheet file from disk, dispatching on the file extension.
func Load(path string) (*Workbook, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoad, err)
	}
	defer f.Close()

	return LoadReader(f, filepath.Base(path))
}

// LoadReader reads a spreadsheet from an already-open source, dispatching on
// the extension of name. Useful when the file arrives as an upload rather
// than a path.
func LoadReader(r io.ReadSeeker, name string) (*Workbook, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".xls":
		return loadXLS(r, name)
	case ".csv", ".tsv", ".txt":
		return loadCSV(r, name)
	default:
		return loadXLSX(r, name)
	}
}
