package localefmt

import (
	"errors"
	"fmt"
	"math/big"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var errNotNumeric = errors.New("invalid numeric string")

// NumberFormatter formats integers for a locale.
//
// Values representable in 64 bits are handed to the locale engine
// ([message.Printer] with [number.Decimal]) directly. Wider values are first
// converted to an exact decimal string by [NumericString] and then grouped
// using the locale's [Rules]; the digits themselves are never rounded or
// rewritten.
//
// A NumberFormatter is safe for concurrent use by multiple goroutines.
type NumberFormatter struct {
	printer  *message.Printer
	rules    *Rules
	grouping bool
	plus     bool
}

// NewNumberFormatter returns a number formatter for the given locale with
// grouping enabled.
func NewNumberFormatter(tag language.Tag) *NumberFormatter {
	return &NumberFormatter{
		printer:  message.NewPrinter(tag),
		rules:    rulesFor(tag),
		grouping: true,
	}
}

// NumberFormatterFor is like [NewNumberFormatter] but accepts a BCP 47
// locale string, e.g. "en-IN".
func NumberFormatterFor(locale string) (*NumberFormatter, error) {
	tag, err := language.Parse(locale)
	if err != nil {
		return nil, fmt.Errorf("parsing locale %q: %w", locale, err)
	}
	return NewNumberFormatter(tag), nil
}

// Grouping returns a copy of f that inserts group separators if on is true.
func (f *NumberFormatter) Grouping(on bool) *NumberFormatter {
	g := *f
	g.grouping = on
	return &g
}

// SignAlways returns a copy of f that prefixes non-negative values with '+'.
func (f *NumberFormatter) SignAlways() *NumberFormatter {
	g := *f
	g.plus = true
	return &g
}

// FormatInt returns v formatted for the formatter's locale.
func (f *NumberFormatter) FormatInt(v int64) string {
	var s string
	if f.grouping {
		s = f.printer.Sprintf("%v", number.Decimal(v))
	} else {
		s = strconv.FormatInt(v, 10)
	}
	if f.plus && v >= 0 {
		s = "+" + s
	}
	return s
}

// FormatUint returns v formatted for the formatter's locale.
func (f *NumberFormatter) FormatUint(v uint64) string {
	var s string
	if f.grouping {
		s = f.printer.Sprintf("%v", number.Decimal(v))
	} else {
		s = strconv.FormatUint(v, 10)
	}
	if f.plus {
		s = "+" + s
	}
	return s
}

// FormatBig returns x formatted for the formatter's locale.
// Values that fit in 64 bits take the same path as [NumberFormatter.FormatInt];
// wider values go through the exact numeric-string conversion.
func (f *NumberFormatter) FormatBig(x *big.Int) string {
	switch {
	case x.IsInt64():
		return f.FormatInt(x.Int64())
	case x.IsUint64():
		return f.FormatUint(x.Uint64())
	}
	return f.localize(NumericStringFromBig(x))
}

// FormatWords formats the integer stored in ws, read per [NumericString]'s
// contract (little-endian words, two's complement if signed). Like
// NumericString, it consumes ws.
func (f *NumberFormatter) FormatWords(ws []uint, signed bool) string {
	return f.localize(NumericString(ws, signed))
}

// FormatNumericString formats a pre-converted numeric string, as produced by
// [NumericString]. It returns an error if s does not match the numeric
// string grammar.
func (f *NumberFormatter) FormatNumericString(s string) (string, error) {
	if !IsNumericString(s) {
		return "", fmt.Errorf("%q is not a numeric string: %w", s, errNotNumeric)
	}
	return f.localize(s), nil
}

// localize applies locale grouping and sign presentation to a numeric
// string. This is the extended-precision fallback: the locale engine's
// decimal entry points take 64-bit values only, so grouping for wider values
// comes from the locale's registered rules.
func (f *NumberFormatter) localize(s string) string {
	digits, neg := s, false
	if strings.HasPrefix(s, "-") {
		digits, neg = s[1:], true
	}
	if f.grouping {
		digits = f.rules.group(digits)
	}
	switch {
	case neg:
		return "-" + digits
	case f.plus:
		return "+" + digits
	}
	return digits
}
