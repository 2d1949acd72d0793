package localefmt

import (
	"strconv"
	"time"

	"golang.org/x/text/language"
)

// DurationStyle selects which positional pattern a [DurationFormatter]
// applies: hours/minutes, hours/minutes/seconds, or minutes/seconds.
type DurationStyle int

const (
	DurationHM DurationStyle = iota
	DurationHMS
	DurationMS
)

// DurationFormatter formats durations positionally, e.g. "1:05:30",
// using the hm/hms/ms patterns from the locale's [Rules].
type DurationFormatter struct {
	rules *Rules
	style DurationStyle
}

// NewDurationFormatter returns a duration formatter for the given locale
// and style.
func NewDurationFormatter(tag language.Tag, style DurationStyle) *DurationFormatter {
	return &DurationFormatter{
		rules: rulesFor(tag),
		style: style,
	}
}

// Format returns d formatted per the formatter's pattern. Negative
// durations are formatted as their absolute value with a leading '-'.
// Durations are truncated, not rounded, to the pattern's smallest field;
// the largest field carries any overflow (e.g. 26 hours → "26:00").
func (f *DurationFormatter) Format(d time.Duration) string {
	sign := ""
	if d < 0 {
		sign = "-"
		d = -d
	}

	var pattern string
	var hi, lo int64
	total := int64(d / time.Second)
	switch f.style {
	case DurationMS:
		pattern = f.rules.MS
		hi, lo = total/60, total%60
	case DurationHM:
		pattern = f.rules.HM
		hi, lo = total/3600, total%3600/60
	default:
		pattern = f.rules.HMS
		hi, lo = total/3600, total%3600/60
	}

	var b []byte
	b = append(b, sign...)
	for i := 0; i < len(pattern); {
		c := pattern[i]
		run := 1
		for i+run < len(pattern) && pattern[i+run] == c {
			run++
		}
		switch c {
		case 'h':
			b = appendPadded(b, hi, run)
		case 'm':
			switch f.style {
			case DurationMS:
				b = appendPadded(b, hi, run)
			default:
				b = appendPadded(b, lo, run)
			}
		case 's':
			switch f.style {
			case DurationMS:
				b = appendPadded(b, lo, run)
			default:
				b = appendPadded(b, total%60, run)
			}
		default:
			b = append(b, pattern[i:i+run]...)
		}
		i += run
	}
	return string(b)
}

// appendPadded appends v zero-padded to at least width digits.
func appendPadded(b []byte, v int64, width int) []byte {
	s := strconv.FormatInt(v, 10)
	for n := len(s); n < width; n++ {
		b = append(b, '0')
	}
	return append(b, s...)
}
