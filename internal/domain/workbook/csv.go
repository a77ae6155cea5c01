package workbook

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"strings"
)

// loadCSV reads a delimited text export as a single-sheet workbook. The
// delimiter is sniffed from the first non-empty line.
func loadCSV(r io.Reader, name string) (*Workbook, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoad, err)
	}

	reader := csv.NewReader(bytes.NewReader(data))
	reader.Comma = sniffDelimiter(data)
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1

	sheet := &Sheet{Name: name}
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrLoad, err)
		}
		cells := make([]Cell, len(record))
		for i, v := range record {
			cells[i] = textCell(v)
		}
		sheet.Rows = append(sheet.Rows, cells)
	}

	if len(sheet.Rows) == 0 {
		return nil, fmt.Errorf("%w: file is empty", ErrLoad)
	}
	return &Workbook{FileName: name, Sheets: []*Sheet{sheet}}, nil
}

// sniffDelimiter picks the delimiter that occurs most in the first non-empty
// line, defaulting to comma.
func sniffDelimiter(data []byte) rune {
	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		line := strings.TrimPrefix(strings.TrimSpace(scanner.Text()), "\uFEFF")
		if line == "" {
			continue
		}
		best, bestCount := ',', 0
		for _, d := range []rune{';', '\t', ',', '|'} {
			if count := strings.Count(line, string(d)); count > bestCount {
				best, bestCount = d, count
			}
		}
		return best
	}
	return ','
}
