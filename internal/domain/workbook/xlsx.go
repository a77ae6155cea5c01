package workbook

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

// loadXLSX reads a modern Office Open XML workbook. Cells are read with raw
// values so numeric cells (including date serials) keep their numbers, and
// formula cells are unwrapped to their cached results.
func loadXLSX(r io.Reader, name string) (*Workbook, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoad, err)
	}
	defer f.Close()

	wb := &Workbook{FileName: name}
	for _, sheetName := range f.GetSheetList() {
		raw, err := f.GetRows(sheetName, excelize.Options{RawCellValue: true})
		if err != nil {
			return nil, fmt.Errorf("%w: reading sheet %s: %v", ErrLoad, sheetName, err)
		}

		sheet := &Sheet{Name: sheetName, Rows: make([][]Cell, 0, len(raw))}
		for ri, row := range raw {
			cells := make([]Cell, len(row))
			for ci, val := range row {
				axis, axisErr := excelize.CoordinatesToCellName(ci+1, ri+1)
				if axisErr != nil {
					continue
				}
				cells[ci] = xlsxCell(f, sheetName, axis, val)
			}
			sheet.Rows = append(sheet.Rows, cells)
		}
		wb.Sheets = append(wb.Sheets, sheet)
	}

	if len(wb.Sheets) == 0 {
		return nil, fmt.Errorf("%w: workbook has no sheets", ErrLoad)
	}
	return wb, nil
}

func xlsxCell(f *excelize.File, sheetName, axis, raw string) Cell {
	if strings.TrimSpace(raw) == "" {
		return Cell{}
	}

	formula, _ := f.GetCellFormula(sheetName, axis)
	c := Cell{Kind: KindText, Text: raw, Formula: formula != ""}

	// Shared strings are always text even when they look numeric.
	cellType, _ := f.GetCellType(sheetName, axis)
	if cellType == excelize.CellTypeSharedString || cellType == excelize.CellTypeInlineString {
		return c
	}

	if n, err := strconv.ParseFloat(strings.TrimSpace(raw), 64); err == nil {
		c.Kind = KindNumber
		c.Number = n
	}
	return c
}
