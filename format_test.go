package numfield

import (
	"math"
	"testing"
)

func TestFormat(t *testing.T) {
	enUS := MustLocale("en-US")
	deDE := MustLocale("de-DE")

	tests := []struct {
		value    any
		loc      *Locale
		decimals []int
		want     string
	}{
		{"1234.56", enUS, nil, "1,234.56"},
		{1000000.5, enUS, nil, "1,000,000.5"},
		{"1234.56", deDE, nil, "1.234,56"},
		{"-1234.5", enUS, nil, "-1,234.5"},
		{"0", enUS, nil, "0"},
		{42, enUS, nil, "42"},
		{int64(7000000), enUS, nil, "7,000,000"},
		{"99.456", enUS, []int{2}, "99.46"},
		{"99.4", enUS, []int{2}, "99.4"},
		{"1234.5678", enUS, []int{2}, "1,234.57"},
		{"1234", enUS, []int{0}, "1,234"},
		{"1234.6", enUS, []int{0}, "1,235"},
		{"1.2345", enUS, nil, "1.2345"}, // past the locale's default three fraction digits
		{"", enUS, nil, ""},
		{nil, enUS, nil, ""},
		{"abc", enUS, nil, ""},
		{"-", enUS, nil, ""},
		{".", enUS, nil, ""},
		{math.NaN(), enUS, nil, ""},
		{math.Inf(1), enUS, nil, ""},
	}

	for _, tt := range tests {
		got := Format(tt.value, tt.loc, tt.decimals...)
		if got != tt.want {
			t.Errorf("Format(%v, %s, %v) = %q, want %q", tt.value, tt.loc.Tag, tt.decimals, got, tt.want)
		}
	}
}

func TestFormatFrench(t *testing.T) {
	fr := MustLocale("fr-FR")
	want := "1" + fr.Group + "234" + fr.Decimal + "5"
	if got := Format("1234.5", fr); got != want {
		t.Errorf("Format(1234.5, fr-FR) = %q, want %q", got, want)
	}
}

func TestFormatIndianGrouping(t *testing.T) {
	// The presenter follows the locale's own convention, including en-IN's
	// 2-2-3 digit groups; only the live reformatter sticks to uniform threes.
	enIN := MustLocale("en-IN")
	if got := Format("1234567", enIN); got != "12,34,567" {
		t.Errorf("Format(1234567, en-IN) = %q, want %q", got, "12,34,567")
	}
}

func TestFormatManualLocaleValue(t *testing.T) {
	// A Locale built by hand, without ParseLocale, still formats.
	loc := &Locale{Tag: MustLocale("en-US").Tag, Group: ",", Decimal: "."}
	if got := Format("1234.5", loc); got != "1,234.5" {
		t.Errorf("Format with manual locale = %q, want %q", got, "1,234.5")
	}
}
