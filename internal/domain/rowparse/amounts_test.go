package rowparse

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hucha-fin/importer/internal/domain/workbook"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "1500.00", "1500"},
		{"comma decimal", "-30,10", "-30.1"},
		{"european grouping", "1.234,56 €", "1234.56"},
		{"us grouping", "1,234.56", "1234.56"},
		{"grouping only", "1.234.567,89", "1234567.89"},
		{"repeated commas are grouping", "1,234,567.89", "1234567.89"},
		{"spaces stripped", " 42 ", "42"},
		{"negative with symbol", "-12,50€", "-12.5"},
		{"negative with grouping", "-1.500,25", "-1500.25"},
		{"zero", "0,00", "0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseAmount(tt.in)
			require.NoError(t, err)
			assert.True(t, got.Equal(decimal.RequireFromString(tt.want)),
				"got %s want %s", got, tt.want)
		})
	}
}

func TestParseAmount_Unparsable(t *testing.T) {
	for _, in := range []string{"", "   ", "CONTADO", "contado", "Aplazable", "abc", "---", "€"} {
		t.Run(in, func(t *testing.T) {
			_, err := ParseAmount(in)
			assert.ErrorIs(t, err, ErrUnparsableAmount)
		})
	}
}

func TestParseAmountCell(t *testing.T) {
	t.Run("numeric cell passes through", func(t *testing.T) {
		got, err := ParseAmountCell(workbook.Cell{Kind: workbook.KindNumber, Number: -30.1})
		require.NoError(t, err)
		assert.True(t, got.Equal(decimal.RequireFromString("-30.1")))
	})

	t.Run("text cell is cleaned", func(t *testing.T) {
		got, err := ParseAmountCell(workbook.Cell{Kind: workbook.KindText, Text: "1.500,25"})
		require.NoError(t, err)
		assert.True(t, got.Equal(decimal.RequireFromString("1500.25")))
	})

	t.Run("empty cell fails", func(t *testing.T) {
		_, err := ParseAmountCell(workbook.Cell{})
		assert.ErrorIs(t, err, ErrUnparsableAmount)
	})
}
