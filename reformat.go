package numfield

import (
	"strconv"
	"strings"
	"unicode"
)

// Reformat regroups a raw edited display string and computes where the cursor
// lands in the regrouped result. cursor is a rune offset into raw; the
// returned offset is a rune offset into the returned string.
//
// The cursor is anchored on the count of value characters (digits, the
// locale's decimal separator, '-') before it. Grouping separators are not
// value characters: they appear and disappear as the digit count crosses
// multiples of three, so a raw index would drift while the anchor stays put.
//
// Raw strings that don't yet denote a number, like "", "-" or a lone ".",
// come back stripped of cosmetic characters but otherwise untouched, with the
// cursor re-anchored the same way, so the anchor invariant holds on every
// path.
func Reformat(raw string, cursor int, loc *Locale) (string, int) {
	stripped := stripCosmetic(raw, loc)
	anchor := valueRunesBefore(raw, cursor, loc)

	if !groupable(stripped, loc) {
		return stripped, cursorAfter(stripped, anchor, loc)
	}

	intPart, decPart, hasDec := splitDecimal(stripped, loc)
	formatted := groupThousands(intPart, loc.Group)
	if hasDec {
		formatted += loc.Decimal + decPart
	}
	return formatted, cursorAfter(formatted, anchor, loc)
}

// stripCosmetic removes the characters that carry no numeric meaning in the
// locale: grouping separators and whitespace. Shared with Canonicalize so the
// two walk the same definition of "cosmetic".
func stripCosmetic(s string, loc *Locale) string {
	if loc.Group != "" {
		s = strings.ReplaceAll(s, loc.Group, "")
	}
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}

// isValueRune reports whether r survives a reformat in place: ASCII digits,
// the sign, and the locale's decimal separator do, everything else is
// cosmetic and free to move.
func isValueRune(r rune, loc *Locale) bool {
	if r >= '0' && r <= '9' || r == '-' {
		return true
	}
	return strings.ContainsRune(loc.Decimal, r)
}

func valueRunesBefore(s string, cursor int, loc *Locale) int {
	n := 0
	for i, r := range []rune(s) {
		if i >= cursor {
			break
		}
		if isValueRune(r, loc) {
			n++
		}
	}
	return n
}

// groupable reports whether a stripped string denotes a number worth
// regrouping. "" and "-" are explicit in-progress states; anything else is
// checked by parsing it with the decimal separator normalized, which keeps
// trailing-separator states like "1." alive and rejects leftovers like
// "1.2.3" or pasted prose.
func groupable(stripped string, loc *Locale) bool {
	if stripped == "" || stripped == "-" {
		return false
	}
	_, err := strconv.ParseFloat(normalizeDecimal(stripped, loc), 64)
	return err == nil
}

// splitDecimal cuts a stripped string at the first decimal separator.
// Fractional digits are never regrouped, only the integer side is.
func splitDecimal(stripped string, loc *Locale) (intPart, decPart string, hasDec bool) {
	if i := strings.Index(stripped, loc.Decimal); i >= 0 {
		return stripped[:i], stripped[i+len(loc.Decimal):], true
	}
	return stripped, "", false
}

// groupThousands inserts sep every three digits, counting from the right.
// The input is an optional '-' followed by digits; anything else comes back
// untouched rather than mis-grouped.
func groupThousands(intPart, sep string) string {
	if sep == "" {
		return intPart
	}
	sign, digits := "", intPart
	if strings.HasPrefix(digits, "-") {
		sign, digits = "-", digits[1:]
	}
	if len(digits) <= 3 || !allDigits(digits) {
		return intPart
	}
	var b strings.Builder
	b.Grow(len(intPart) + len(sep)*(len(digits)/3))
	b.WriteString(sign)
	lead := len(digits) % 3
	if lead == 0 {
		lead = 3
	}
	b.WriteString(digits[:lead])
	for i := lead; i < len(digits); i += 3 {
		b.WriteString(sep)
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}

func allDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return len(s) > 0
}

// cursorAfter walks the formatted string until anchor value runes have
// passed and returns the rune offset just past the last of them. An anchor
// beyond the string's value runes lands at the end.
func cursorAfter(formatted string, anchor int, loc *Locale) int {
	if anchor <= 0 {
		return 0
	}
	runes := []rune(formatted)
	seen := 0
	for i, r := range runes {
		if isValueRune(r, loc) {
			seen++
			if seen == anchor {
				return i + 1
			}
		}
	}
	return len(runes)
}
