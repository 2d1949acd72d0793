package localefmt

import (
	"sync"

	"golang.org/x/text/language"
)

// Rules holds the per-locale formatting data that is applied on top of the
// exact numeric strings produced by this package: separators and grouping
// for the extended-precision number path, date patterns, month names, and
// positional duration patterns.
//
// Date patterns are plain strings with the following placeholders:
//
//	{d}, {dd}       day of month, unpadded or zero-padded
//	{m}, {mm}       month number, unpadded or zero-padded
//	{month}         full month name
//	{yyyy}          four-digit year
//
// Duration patterns consist of runs of 'h', 'm', and 's', each run
// zero-padded to its length, with all other characters copied verbatim,
// e.g. "h:mm:ss".
type Rules struct {
	GroupSep   string
	DecimalSep string
	GroupSizes []int // innermost group first; the last size repeats
	DateShort  string
	DateLong   string
	Months     [12]string
	HM         string // hours and minutes
	HMS        string // hours, minutes, and seconds
	MS         string // minutes and seconds
}

var monthsEN = [12]string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

// rootRules is the fallback for locales without an entry of their own,
// mirroring the CLDR root locale: Latin digits, comma grouping by three.
var rootRules = &Rules{
	GroupSep:   ",",
	DecimalSep: ".",
	GroupSizes: []int{3},
	DateShort:  "{m}/{d}/{yyyy}",
	DateLong:   "{month} {d}, {yyyy}",
	Months:     monthsEN,
	HM:         "h:mm",
	HMS:        "h:mm:ss",
	MS:         "m:ss",
}

var (
	localeMu    sync.RWMutex
	localeRules = map[string]*Rules{
		"und": rootRules,
		"en":  rootRules,
		"en-IN": {
			GroupSep:   ",",
			DecimalSep: ".",
			GroupSizes: []int{3, 2},
			DateShort:  "{dd}/{mm}/{yyyy}",
			DateLong:   "{d} {month} {yyyy}",
			Months:     monthsEN,
			HM:         "h:mm",
			HMS:        "h:mm:ss",
			MS:         "m:ss",
		},
		"de": {
			GroupSep:   ".",
			DecimalSep: ",",
			GroupSizes: []int{3},
			DateShort:  "{dd}.{mm}.{yyyy}",
			DateLong:   "{d}. {month} {yyyy}",
			Months: [12]string{
				"Januar", "Februar", "März", "April", "Mai", "Juni",
				"Juli", "August", "September", "Oktober", "November", "Dezember",
			},
			HM:  "h:mm",
			HMS: "h:mm:ss",
			MS:  "m:ss",
		},
		"fr": {
			GroupSep:   " ",
			DecimalSep: ",",
			GroupSizes: []int{3},
			DateShort:  "{dd}/{mm}/{yyyy}",
			DateLong:   "{d} {month} {yyyy}",
			Months: [12]string{
				"janvier", "février", "mars", "avril", "mai", "juin",
				"juillet", "août", "septembre", "octobre", "novembre", "décembre",
			},
			HM:  "h:mm",
			HMS: "h:mm:ss",
			MS:  "m:ss",
		},
		"es": {
			GroupSep:   ".",
			DecimalSep: ",",
			GroupSizes: []int{3},
			DateShort:  "{d}/{m}/{yyyy}",
			DateLong:   "{d} de {month} de {yyyy}",
			Months: [12]string{
				"enero", "febrero", "marzo", "abril", "mayo", "junio",
				"julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre",
			},
			HM:  "h:mm",
			HMS: "h:mm:ss",
			MS:  "m:ss",
		},
	}
)

// RegisterRules registers formatting rules for a locale, replacing any
// existing entry. The registered rules are picked up by formatters created
// afterwards; formatters already constructed keep the rules they resolved.
func RegisterRules(tag language.Tag, r *Rules) {
	localeMu.Lock()
	defer localeMu.Unlock()
	localeRules[tag.String()] = r
}

// rulesFor resolves the rules for a tag, walking the parent chain
// (e.g. en-IN-u-nu-latn → en-IN → en) down to the root fallback.
func rulesFor(tag language.Tag) *Rules {
	localeMu.RLock()
	defer localeMu.RUnlock()
	for {
		if r, ok := localeRules[tag.String()]; ok {
			return r
		}
		parent := tag.Parent()
		if parent == tag {
			return rootRules
		}
		tag = parent
	}
}

// group inserts the locale's group separators into an unsigned ASCII digit
// string, innermost group first from the right.
func (r *Rules) group(digits string) string {
	sizes := r.GroupSizes
	if len(sizes) == 0 || r.GroupSep == "" || len(digits) <= sizes[0] {
		return digits
	}

	var groups []string
	rest := digits
	for i := 0; len(rest) > 0; i++ {
		size := sizes[len(sizes)-1]
		if i < len(sizes) {
			size = sizes[i]
		}
		if len(rest) <= size {
			groups = append(groups, rest)
			break
		}
		groups = append(groups, rest[len(rest)-size:])
		rest = rest[:len(rest)-size]
	}

	var b []byte
	for i := len(groups) - 1; i >= 0; i-- {
		b = append(b, groups[i]...)
		if i > 0 {
			b = append(b, r.GroupSep...)
		}
	}
	return string(b)
}
