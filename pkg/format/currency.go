// Package format renders amounts as localized currency strings.
package format

import (
	"github.com/iwvelando/compound-forecast/pkg/constants"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Formatter renders amounts with the digit grouping of a locale.
type Formatter struct {
	printer *message.Printer
	symbol  string
}

// NewFormatter returns a Formatter for the given locale and currency symbol.
// An unparsable locale falls back to English.
func NewFormatter(locale, symbol string) *Formatter {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.English
	}
	return &Formatter{printer: message.NewPrinter(tag), symbol: symbol}
}

var defaultFormatter = NewFormatter("en-US", "$")

// Currency returns amount with the currency symbol and grouping, e.g. "-$1,234.56".
func (f *Formatter) Currency(amount float64) string {
	rounded := decimal.NewFromFloat(amount).Round(constants.CurrencyPlaces)
	sign := ""
	if rounded.IsNegative() {
		sign = "-"
		rounded = rounded.Abs()
	}
	return sign + f.symbol + f.Number(rounded.InexactFloat64())
}

// Number returns amount with grouping and two decimals but no symbol, e.g. "1,234.56".
func (f *Formatter) Number(amount float64) string {
	rounded := decimal.NewFromFloat(amount).Round(constants.CurrencyPlaces)
	return f.printer.Sprintf("%.2f", rounded.InexactFloat64())
}

// Percent returns a percentage with up to two decimals, e.g. "3.2%".
func (f *Formatter) Percent(percent float64) string {
	return decimal.NewFromFloat(percent).Round(2).String() + "%"
}

// Currency formats amount in US dollars.
func Currency(amount float64) string {
	return defaultFormatter.Currency(amount)
}
