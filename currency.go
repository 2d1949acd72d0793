package localefmt

import (
	"fmt"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// CurrencyDisplay selects how a [CurrencyFormatter] presents the currency
// unit alongside the amount.
type CurrencyDisplay int

const (
	CurrencySymbol CurrencyDisplay = iota // "$"
	CurrencyISO                           // "USD"
	CurrencyNarrowSymbol                  // "$" even where the wide symbol is "US$"
)

// CurrencyFormatter formats monetary amounts for a locale by delegating to
// the locale engine's currency support.
type CurrencyFormatter struct {
	unit    currency.Unit
	printer *message.Printer
	display CurrencyDisplay
}

// NewCurrencyFormatter returns a currency formatter for the given locale and
// ISO 4217 currency code.
func NewCurrencyFormatter(tag language.Tag, code string) (*CurrencyFormatter, error) {
	unit, err := currency.ParseISO(code)
	if err != nil {
		return nil, fmt.Errorf("parsing currency code %q: %w", code, err)
	}
	return &CurrencyFormatter{
		unit:    unit,
		printer: message.NewPrinter(tag),
	}, nil
}

// Display returns a copy of f using the given unit presentation.
func (f *CurrencyFormatter) Display(d CurrencyDisplay) *CurrencyFormatter {
	g := *f
	g.display = d
	return &g
}

// Format returns the amount formatted with the formatter's currency unit.
func (f *CurrencyFormatter) Format(amount float64) string {
	a := f.unit.Amount(amount)
	switch f.display {
	case CurrencyISO:
		return f.printer.Sprintf("%v", currency.ISO(a))
	case CurrencyNarrowSymbol:
		return f.printer.Sprintf("%v", currency.NarrowSymbol(a))
	}
	return f.printer.Sprintf("%v", currency.Symbol(a))
}
