package money

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name     string
		amount   string
		currency string
		want     string
	}{
		{"euro", "1500", "EUR", "€1,500.00"},
		{"euro colloquial", "1500", "euro", "€1,500.00"},
		{"euro symbol", "-52.30", "€", "-€52.30"},
		{"dollar", "19.99", "usd", "$19.99"},
		{"pound", "10", "libra", "£10.00"},
		{"unknown falls back to euro", "10", "doubloons", "€10.00"},
		{"empty defaults to euro", "0.5", "", "€0.50"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Format(decimal.RequireFromString(tt.amount), tt.currency)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormat_Rounds(t *testing.T) {
	got := Format(decimal.RequireFromString("1.005"), "EUR")
	assert.Equal(t, "€1.01", got)
}
