package report

import (
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// CurrencyFormatter formats amounts in the ISO 4217 currency code for locale.
// Unknown codes fall back to USD.
func CurrencyFormatter(locale, code string) func(float64) string {
	unit, err := currency.ParseISO(code)
	if err != nil {
		unit = currency.USD
	}
	p := message.NewPrinter(parseLocale(locale))
	return func(amount float64) string {
		return p.Sprint(currency.Symbol(unit.Amount(amount)))
	}
}

// NumberFormatter formats counts with the digit grouping of locale.
func NumberFormatter(locale string) func(int) string {
	p := message.NewPrinter(parseLocale(locale))
	return func(n int) string {
		return p.Sprintf("%d", n)
	}
}

func parseLocale(locale string) language.Tag {
	tag, err := language.Parse(locale)
	if err != nil {
		return language.English
	}
	return tag
}
