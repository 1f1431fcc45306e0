package numfield

import (
	"regexp"
	"strings"
)

// Canonicalize strips locale formatting from a display string and returns the
// canonical numeric string the rest of the application works with: '.' as the
// decimal separator, an optional leading '-', ASCII digits otherwise, or ""
// for "no value". Only the first occurrence of the locale's decimal separator
// is translated; any later ones fall through to the junk filter.
//
// The result is returned verbatim, without well-formedness checks. A lone "-"
// comes back as "-" because the user is halfway through typing a negative
// number; gating malformed candidates is the Field's job, not this one's.
func Canonicalize(display string, loc *Locale) string {
	if strings.TrimSpace(display) == "" {
		return ""
	}
	s := normalizeDecimal(stripCosmetic(display, loc), loc)
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= '0' && r <= '9' || r == '.' || r == '-' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// normalizeDecimal rewrites the first occurrence of the locale's decimal
// separator to '.'.
func normalizeDecimal(s string, loc *Locale) string {
	if loc.Decimal == "." {
		return s
	}
	return strings.Replace(s, loc.Decimal, ".", 1)
}

// canonicalShape is every state a user can be midway through typing:
// an optional leading '-', digits, at most one '.'. It admits "", "-",
// "1." and ".5"; it rejects second dots, embedded signs and everything
// the junk filter let through.
var canonicalShape = regexp.MustCompile(`^-?[0-9]*\.?[0-9]*$`)

func wellFormed(canonical string) bool {
	return canonicalShape.MatchString(canonical)
}

// rawConsistent reports whether raw reduces to exactly the candidate once
// locale formatting is removed. Any leftover, a letter or a second decimal
// separator, means canonicalization had to drop something, and an edit that
// loses characters silently should be rejected instead of displayed.
func rawConsistent(raw, candidate string, loc *Locale) bool {
	return normalizeDecimal(stripCosmetic(raw, loc), loc) == candidate
}

// fracDigits counts the digits after the '.' of a canonical string.
// "12." has zero, as does anything without a dot.
func fracDigits(canonical string) int {
	if i := strings.IndexByte(canonical, '.'); i >= 0 {
		return len(canonical) - i - 1
	}
	return 0
}
