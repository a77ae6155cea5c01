package rowparse

import (
	"math"
	"strings"
	"time"

	"github.com/hucha-fin/importer/internal/domain/workbook"
)

// dateFormats are tried in order for text dates. Day-first variants come
// before month-first ones: the recognized exports are Spanish.
var dateFormats = []string{
	"02/01/2006",
	"2/1/2006",
	"02-01-2006",
	"02.01.2006",
	"2006-01-02",
	"2006/01/02",
	"02/01/2006 15:04",
	"2006-01-02T15:04:05Z07:00",
	"2006-01-02 15:04:05",
	"02/01/06",
}

// ParseDateCell reads a date from a cell, accepting spreadsheet serial
// numbers and common text representations. Anything unrecognized yields the
// zero time; dates never make a row fail.
func ParseDateCell(cell workbook.Cell) time.Time {
	if cell.Kind == workbook.KindNumber {
		return serialToTime(cell.Number)
	}
	s := strings.TrimSpace(cell.Text)
	if s == "" {
		return time.Time{}
	}
	for _, layout := range dateFormats {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}

// serialToTime converts an Excel date serial (days since 1899-12-30, with a
// fractional time-of-day part) to UTC.
func serialToTime(serial float64) time.Time {
	if serial <= 0 || serial > 3_000_000 {
		return time.Time{}
	}
	days := math.Floor(serial)
	frac := serial - days
	epoch := time.Date(1899, time.December, 30, 0, 0, 0, 0, time.UTC)
	t := epoch.AddDate(0, 0, int(days))
	return t.Add(time.Duration(math.Round(frac * 24 * float64(time.Hour))))
}
