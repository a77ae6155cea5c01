package rowparse

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/hucha-fin/importer/internal/domain/workbook"
)

// ErrUnparsableAmount marks a row whose amount cell cannot become a number.
// Such rows are silently skipped (and counted), never surfaced per row.
var ErrUnparsableAmount = errors.New("amount not parsable")

// Card statements use these literals in the amount column for the payment
// mode; they are never numbers.
var amountSentinels = map[string]struct{}{
	"contado":   {},
	"aplazable": {},
}

// ParseAmountCell converts an amount cell to a signed decimal. Numeric cells
// pass through directly; text goes through ParseAmount.
func ParseAmountCell(cell workbook.Cell) (decimal.Decimal, error) {
	if cell.Kind == workbook.KindNumber {
		return decimal.NewFromFloat(cell.Number), nil
	}
	return ParseAmount(cell.Text)
}

// ParseAmount parses locale-formatted amount text. Sentinel strings are
// unparsable; otherwise every rune that is not a digit, comma, period or
// minus sign is stripped, grouping separators are removed, the decimal
// separator becomes a period, and the remainder is parsed as a number.
func ParseAmount(raw string) (decimal.Decimal, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return decimal.Zero, ErrUnparsableAmount
	}
	if _, ok := amountSentinels[strings.ToLower(s)]; ok {
		return decimal.Zero, ErrUnparsableAmount
	}

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9', r == '.', r == ',', r == '-':
			b.WriteRune(r)
		}
	}

	cleaned := normalizeSeparators(b.String())
	if cleaned == "" {
		return decimal.Zero, ErrUnparsableAmount
	}
	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero, ErrUnparsableAmount
	}
	return d, nil
}

// normalizeSeparators resolves European (1.234,56) and US (1,234.56) notation
// into a plain decimal point. When both separators appear, the later kind is
// the decimal separator and the other is grouping; a separator kind that
// repeats is always grouping.
func normalizeSeparators(s string) string {
	lastDot := strings.LastIndexByte(s, '.')
	lastComma := strings.LastIndexByte(s, ',')
	switch {
	case lastDot >= 0 && lastComma >= 0:
		if lastComma > lastDot {
			s = strings.ReplaceAll(s, ".", "")
			s = strings.ReplaceAll(s, ",", ".")
		} else {
			s = strings.ReplaceAll(s, ",", "")
		}
	case lastComma >= 0:
		if strings.Count(s, ",") > 1 {
			s = strings.ReplaceAll(s, ",", "")
		} else {
			s = strings.Replace(s, ",", ".", 1)
		}
	case lastDot >= 0:
		if strings.Count(s, ".") > 1 {
			s = strings.ReplaceAll(s, ".", "")
		}
	}
	return s
}
