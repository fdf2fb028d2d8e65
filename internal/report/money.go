package report

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// DefaultLocale groups thousands with ',' and decimals with '.'.
const DefaultLocale = "en"

// Formatter renders amounts as currency with two decimals and grouping.
type Formatter struct {
	symbol  string
	printer *message.Printer
}

// NewFormatter returns a Formatter for the given symbol and BCP 47 locale.
// An unknown locale falls back to DefaultLocale.
func NewFormatter(symbol, locale string) *Formatter {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.Make(DefaultLocale)
	}
	return &Formatter{symbol: symbol, printer: message.NewPrinter(tag)}
}

// Money renders d like "R$ 1,234.56".
func (f *Formatter) Money(d decimal.Decimal) string {
	return f.printer.Sprintf("%s %.2f", f.symbol, d.Round(2).InexactFloat64())
}

// Number renders d with grouping and two decimals, without a symbol.
func (f *Formatter) Number(d decimal.Decimal) string {
	return f.printer.Sprintf("%.2f", d.Round(2).InexactFloat64())
}
