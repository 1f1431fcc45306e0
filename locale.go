// Package numfield provides locale-aware numeric text editing for terminal
// user interfaces: a pure engine that keeps a canonical numeric string in
// sync with a human-formatted display string without the cursor drifting as
// separators come and go, plus the bubbletea input widget that hosts it.
package numfield

import (
	"fmt"
	"sync"
	"unicode"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Locale carries the numeric formatting conventions of one BCP-47 locale:
// which character groups integer digits and which marks the fractional
// boundary. Separators are strings because a single separator rune may be
// multi-byte (fr-FR groups with a narrow no-break space). Values are
// immutable and safe to share between any number of fields.
type Locale struct {
	Tag     language.Tag
	Group   string // grouping separator, "" when the locale does not group
	Decimal string // decimal separator, never ""

	printer *message.Printer
}

var (
	localeMu    sync.Mutex
	localeCache = map[string]*Locale{}
)

// ParseLocale resolves an identifier such as "en-US" or "de-DE" into a
// Locale. The separators are read off the locale's own rendering of the
// reference numbers 1000 and 1.1 rather than looked up in a table, so every
// locale the x/text data knows about works without maintenance here.
// Results are cached per identifier.
func ParseLocale(id string) (*Locale, error) {
	localeMu.Lock()
	defer localeMu.Unlock()

	if loc, ok := localeCache[id]; ok {
		return loc, nil
	}
	tag, err := language.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("numfield: bad locale %q: %w", id, err)
	}
	loc := &Locale{Tag: tag, printer: message.NewPrinter(tag)}
	loc.Group, loc.Decimal = discoverSeparators(loc.printer)
	localeCache[id] = loc
	return loc, nil
}

// MustLocale is ParseLocale for identifiers known at compile time.
// It panics on malformed identifiers.
func MustLocale(id string) *Locale {
	loc, err := ParseLocale(id)
	if err != nil {
		panic(err)
	}
	return loc
}

// discoverSeparators formats reference numbers with the locale's decimal
// pattern and picks out the first rune that isn't a digit. Locales with a
// minimum grouping width render 1000 bare (es gives "1000"), so grouping
// gets a second probe with a larger reference before concluding the locale
// does not group at all.
func discoverSeparators(p *message.Printer) (group, decimal string) {
	group = firstNonDigit(p.Sprint(number.Decimal(1000)))
	if group == "" {
		group = firstNonDigit(p.Sprint(number.Decimal(1000000)))
	}
	decimal = firstNonDigit(p.Sprint(number.Decimal(1.1)))
	if decimal == "" {
		decimal = "."
	}
	return group, decimal
}

// firstNonDigit uses the unicode table, not the ASCII range: locales with
// native digit systems still have to yield their separator here.
func firstNonDigit(s string) string {
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return string(r)
		}
	}
	return ""
}
