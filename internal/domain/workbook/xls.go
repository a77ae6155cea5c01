package workbook

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/extrame/xls"
)

// loadXLS reads a legacy BIFF workbook. The library hands back formatted cell
// text, so numeric detection is best-effort via a float parse.
func loadXLS(r io.ReadSeeker, name string) (*Workbook, error) {
	book, err := xls.OpenReader(r, "utf-8")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoad, err)
	}

	wb := &Workbook{FileName: name}
	for i := 0; i < book.NumSheets(); i++ {
		ws := book.GetSheet(i)
		if ws == nil {
			continue
		}

		sheet := &Sheet{Name: ws.Name}
		for ri := 0; ri <= int(ws.MaxRow); ri++ {
			row := ws.Row(ri)
			if row == nil {
				sheet.Rows = append(sheet.Rows, nil)
				continue
			}
			cells := make([]Cell, row.LastCol())
			for ci := row.FirstCol(); ci < row.LastCol(); ci++ {
				cells[ci] = textCell(row.Col(ci))
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

// textCell builds a cell from formatted text, promoting clean numbers.
func textCell(v string) Cell {
	if strings.TrimSpace(v) == "" {
		return Cell{}
	}
	c := Cell{Kind: KindText, Text: v}
	if n, err := strconv.ParseFloat(strings.TrimSpace(v), 64); err == nil {
		c.Kind = KindNumber
		c.Number = n
	}
	return c
}
