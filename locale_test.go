package localefmt

import (
	"testing"

	"golang.org/x/text/language"
)

func TestRulesFor(t *testing.T) {
	tests := []struct {
		locale string
		want   *Rules
	}{
		{"en", localeRules["en"]},
		{"en-US", localeRules["en"]},
		{"en-IN", localeRules["en-IN"]},
		{"de", localeRules["de"]},
		{"de-AT", localeRules["de"]},
		{"fr-CA", localeRules["fr"]},
		{"es-MX", localeRules["es"]},
		{"ja", rootRules},
		{"zh-Hans-CN", rootRules},
		{"und", rootRules},
	}
	for _, tt := range tests {
		got := rulesFor(language.MustParse(tt.locale))
		if got != tt.want {
			t.Errorf("rulesFor(%v) resolved to the wrong rules", tt.locale)
		}
	}
}

func TestRegisterRules(t *testing.T) {
	tag := language.MustParse("pt")
	r := &Rules{
		GroupSep:   ".",
		DecimalSep: ",",
		GroupSizes: []int{3},
		Months:     monthsEN,
	}
	RegisterRules(tag, r)
	if got := rulesFor(tag); got != r {
		t.Errorf("rulesFor(pt) did not return the registered rules")
	}
	if got := rulesFor(language.MustParse("pt-BR")); got != r {
		t.Errorf("rulesFor(pt-BR) did not fall back to the registered pt rules")
	}
}

func TestRules_group(t *testing.T) {
	tests := []struct {
		rules  *Rules
		digits string
		want   string
	}{
		{rootRules, "", ""},
		{rootRules, "1", "1"},
		{rootRules, "123", "123"},
		{rootRules, "1234", "1,234"},
		{rootRules, "123456", "123,456"},
		{rootRules, "1234567", "1,234,567"},
		{rootRules, "1000000000000000000000", "1,000,000,000,000,000,000,000"},
		{localeRules["de"], "1234567", "1.234.567"},
		{localeRules["en-IN"], "123", "123"},
		{localeRules["en-IN"], "1234", "1,234"},
		{localeRules["en-IN"], "123456", "1,23,456"},
		{localeRules["en-IN"], "12345678", "1,23,45,678"},
		{localeRules["en-IN"], "123456789012", "1,23,45,67,89,012"},
		{&Rules{GroupSep: "", GroupSizes: []int{3}}, "123456", "123456"},
		{&Rules{GroupSep: ",", GroupSizes: nil}, "123456", "123456"},
	}
	for _, tt := range tests {
		if got := tt.rules.group(tt.digits); got != tt.want {
			t.Errorf("group(%q) = %q, want %q", tt.digits, got, tt.want)
		}
	}
}
