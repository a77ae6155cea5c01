// Package money renders decimal amounts as currency strings for summaries
// and logs. Arithmetic stays in shopspring/decimal; go-money is only the
// formatting layer.
package money

import (
	"strings"

	gomoney "github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// EUR is the importer's default currency code.
const EUR = "EUR"

// Format renders an amount in the given ISO-4217 currency, falling back to
// EUR for unknown or colloquial codes ("euro", "€").
func Format(amount decimal.Decimal, currencyCode string) string {
	code := normalizeCode(currencyCode)
	currency := gomoney.GetCurrency(code)
	if currency == nil {
		code = EUR
		currency = gomoney.GetCurrency(code)
	}

	cents := amount.Mul(decimal.New(1, int32(currency.Fraction))).Round(0).IntPart()
	return gomoney.New(cents, code).Display()
}

func normalizeCode(code string) string {
	switch strings.ToLower(strings.TrimSpace(code)) {
	case "", "euro", "eur", "€":
		return EUR
	case "dollar", "usd", "$":
		return "USD"
	case "pound", "libra", "gbp", "£":
		return "GBP"
	}
	return strings.ToUpper(strings.TrimSpace(code))
}
