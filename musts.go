package localefmt

import (
	"fmt"

	"golang.org/x/text/language"
)

// MustNumberFormatter is like [NumberFormatterFor] but panics if the locale
// cannot be parsed. It simplifies safe initialization of global variables
// holding formatters.
func MustNumberFormatter(locale string) *NumberFormatter {
	f, err := NumberFormatterFor(locale)
	if err != nil {
		panic(fmt.Sprintf("MustNumberFormatter(%q) failed: %v", locale, err))
	}
	return f
}

// MustCurrencyFormatter is like [NewCurrencyFormatter] but panics if the
// currency code is not a well-formed ISO 4217 code.
func MustCurrencyFormatter(tag language.Tag, code string) *CurrencyFormatter {
	f, err := NewCurrencyFormatter(tag, code)
	if err != nil {
		panic(fmt.Sprintf("MustCurrencyFormatter(%q) failed: %v", code, err))
	}
	return f
}

// MustFormatNumericString is like [NumberFormatter.FormatNumericString] but
// panics if s is not a valid numeric string.
func (f *NumberFormatter) MustFormatNumericString(s string) string {
	l, err := f.FormatNumericString(s)
	if err != nil {
		panic(fmt.Sprintf("MustFormatNumericString(%q) failed: %v", s, err))
	}
	return l
}
