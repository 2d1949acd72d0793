package localefmt

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// ByteCountStyle selects the unit system used by [ByteCountFormatter].
type ByteCountStyle int

const (
	// ByteCountDecimal uses powers of 1000 and SI units: kB, MB, GB.
	ByteCountDecimal ByteCountStyle = iota
	// ByteCountBinary uses powers of 1024 and IEC units: KiB, MiB, GiB.
	ByteCountBinary
)

var (
	decimalUnits = [...]string{"kB", "MB", "GB", "TB", "PB", "EB"}
	binaryUnits  = [...]string{"KiB", "MiB", "GiB", "TiB", "PiB", "EiB"}
)

// ByteCountFormatter formats byte counts as a scaled value with a unit
// suffix, localizing the scaled value through the locale engine
// (e.g. 1536 bytes → "1.5 KiB" in en, "1,5 KiB" in de).
type ByteCountFormatter struct {
	printer *message.Printer
	style   ByteCountStyle
}

// NewByteCountFormatter returns a byte-count formatter for the given locale
// and unit style.
func NewByteCountFormatter(tag language.Tag, style ByteCountStyle) *ByteCountFormatter {
	return &ByteCountFormatter{
		printer: message.NewPrinter(tag),
		style:   style,
	}
}

// Format returns n formatted as a byte count.
// Counts below one kilobyte are shown as an exact integer of bytes; larger
// counts are scaled to the largest unit with a value of at least one and
// shown with a single fractional digit.
func (f *ByteCountFormatter) Format(n int64) string {
	sign := ""
	u := uint64(n)
	if n < 0 {
		sign = "-"
		u = uint64(-n)
	}

	base := uint64(1000)
	units := decimalUnits[:]
	if f.style == ByteCountBinary {
		base = 1024
		units = binaryUnits[:]
	}

	if u < base {
		return sign + f.printer.Sprintf("%v B", number.Decimal(u))
	}

	div, exp := base, 0
	for u/div >= base && exp < len(units)-1 {
		div *= base
		exp++
	}
	v := float64(u) / float64(div)
	return sign + f.printer.Sprintf("%v %s",
		number.Decimal(v, number.MinFractionDigits(1), number.MaxFractionDigits(1)),
		units[exp])
}
