package localefmt

import (
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/language"
)

// DateStyle selects between the numeric and the spelled-out date pattern of
// a locale's [Rules].
type DateStyle int

const (
	DateShort DateStyle = iota // numeric, e.g. "1/2/2026" or "02.01.2026"
	DateLong                   // with the month name, e.g. "January 2, 2026"
)

// DateFormatter formats calendar dates using the patterns and month names
// from the locale's [Rules].
type DateFormatter struct {
	rules *Rules
	style DateStyle
}

// NewDateFormatter returns a date formatter for the given locale and style.
func NewDateFormatter(tag language.Tag, style DateStyle) *DateFormatter {
	return &DateFormatter{
		rules: rulesFor(tag),
		style: style,
	}
}

// Format returns the date of t formatted per the formatter's pattern.
// Only the calendar date is rendered; time of day is ignored.
func (f *DateFormatter) Format(t time.Time) string {
	pattern := f.rules.DateShort
	if f.style == DateLong {
		pattern = f.rules.DateLong
	}

	year, month, day := t.Date()
	r := strings.NewReplacer(
		"{dd}", pad2(day),
		"{d}", strconv.Itoa(day),
		"{mm}", pad2(int(month)),
		"{month}", f.rules.Months[month-1],
		"{m}", strconv.Itoa(int(month)),
		"{yyyy}", strconv.Itoa(year),
	)
	return r.Replace(pattern)
}

func pad2(v int) string {
	if v < 10 {
		return "0" + strconv.Itoa(v)
	}
	return strconv.Itoa(v)
}
