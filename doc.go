/*
Package localefmt implements locale-aware formatting of integers, byte
counts, dates, and durations for environments without a native
implementation, delegating locale computation to [golang.org/x/text].

# Numeric strings

The heart of the package is the conversion of arbitrary-width binary
integers to exact decimal strings. A locale engine's decimal entry points
require an unlocalized "numeric string" matching the grammar:

	digits         ::= { '0' | '1' | '2' | '3' | '4' | '5' | '6' | '7' | '8' | '9' }
	numeric-string ::= ['-'] digits

with exact digits, no leading zeros, and no scientific notation. Values
wider than 64 bits cannot take the fast path through the engine, so
[NumericString] converts their raw storage, a little-endian slice of machine
words holding either a two's-complement signed value or an unsigned
magnitude, into that form.

The conversion works in fixed scratch buffers. The word buffer is divided in
place by the largest power of ten that fits in one word (10^19 for 64-bit
words), peeling off up to 19 digits per division; the digits of each
remainder are written right to left into an output buffer pre-filled with
'0' and sized from the bit width alone. The input buffer is consumed: its
contents are destroyed by the call.

[NumericStringFromBig] adapts a [big.Int] to the same conversion, and
[IsNumericString] validates strings claimed to be in the numeric string
format.

# Formatters

The formatters apply locale presentation on top of exact digits:

  - [NumberFormatter] formats integers of any width with locale grouping.
  - [ByteCountFormatter] formats byte counts with SI or IEC units.
  - [CurrencyFormatter] formats monetary amounts via [golang.org/x/text/currency].
  - [DateFormatter] and [DurationFormatter] format calendar dates and
    positional durations using per-locale patterns.

Values representable in 64 bits are delegated to [golang.org/x/text/message]
directly. Wider values are localized from their numeric string using the
grouping rules registered for the locale; [RegisterRules] extends or
overrides the built-in locale data.

The package never substitutes localized digit shapes on the extended-
precision path and never rounds: what is formatted is the exact decimal
value of the input.

# Errors

The numeric-string conversion is a total function over well-formed input and
returns no errors. An empty word buffer is a caller bug, not bad data, and
panics. Formatter constructors return errors for unparseable locales or
currency codes; the Must variants panic instead.

[golang.org/x/text]: https://pkg.go.dev/golang.org/x/text
[golang.org/x/text/message]: https://pkg.go.dev/golang.org/x/text/message
[golang.org/x/text/currency]: https://pkg.go.dev/golang.org/x/text/currency
[big.Int]: https://pkg.go.dev/math/big#Int
*/
package localefmt
