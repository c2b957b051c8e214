package util

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var printer = message.NewPrinter(language.English)

// FormatInteger renders n with thousands separators, e.g. "1,500".
func FormatInteger(n int64) string {
	return printer.Sprint(number.Decimal(n))
}

// FormatQuantity renders a stock quantity in kilograms, e.g. "1,500 kg".
func FormatQuantity(kg int64) string {
	return FormatInteger(kg) + " kg"
}

// FormatTonnage renders a tonnage with thousands separators and at most
// three fraction digits, e.g. "1,234.5".
func FormatTonnage(t float64) string {
	return printer.Sprint(number.Decimal(t, number.MaxFractionDigits(3)))
}
