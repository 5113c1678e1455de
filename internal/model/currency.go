package model

import "github.com/shopspring/decimal"

// currencySymbols maps supported currency codes to display symbols.
var currencySymbols = map[string]string{
	"USD": "$",
	"EUR": "€",
	"GBP": "£",
	"CAD": "$",
	"AUD": "$",
	"INR": "₹",
}

// CurrencySymbol returns the display symbol for a currency code. Unknown
// codes fall back to "$".
func CurrencySymbol(code string) string {
	if sym, ok := currencySymbols[code]; ok {
		return sym
	}
	return "$"
}

// FormatAmount renders an amount with the currency's symbol and two decimal
// places, e.g. "$12.34".
func FormatAmount(amount decimal.Decimal, currency string) string {
	return CurrencySymbol(currency) + amount.StringFixed(2)
}
