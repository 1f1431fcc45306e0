package numfield

import (
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// maxLooseFractionDigits caps fractional rendering when a field carries no
// explicit decimals limit. Without it x/text falls back to the locale default
// of three fractional digits and silently truncates longer values.
const maxLooseFractionDigits = 10

// Format renders a canonical value as a grouped, locale-correct display
// string. value may be a canonical string or any common Go numeric type;
// nil, empty, unparseable and non-finite values render as "" rather than
// failing, because "no value" is an ordinary state for an input field.
//
// When decimals is given it caps the fractional digits, rounding the excess
// away. No trailing zeros are forced either way: 99.9 with a two-digit cap
// stays "99.9".
func Format(value any, loc *Locale, decimals ...int) string {
	f, ok := toFloat(value)
	if !ok || math.IsNaN(f) || math.IsInf(f, 0) {
		return ""
	}
	maxFrac := maxLooseFractionDigits
	if len(decimals) > 0 && decimals[0] >= 0 {
		maxFrac = decimals[0]
	}
	p := loc.printer
	if p == nil {
		p = message.NewPrinter(loc.Tag)
	}
	return p.Sprint(number.Decimal(f,
		number.MinFractionDigits(0),
		number.MaxFractionDigits(maxFrac),
	))
}

func toFloat(value any) (float64, bool) {
	switch v := value.(type) {
	case nil:
		return 0, false
	case string:
		s := strings.TrimSpace(v)
		if s == "" {
			return 0, false
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, false
		}
		return f, true
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int8:
		return float64(v), true
	case int16:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case uint:
		return float64(v), true
	case uint8:
		return float64(v), true
	case uint16:
		return float64(v), true
	case uint32:
		return float64(v), true
	case uint64:
		return float64(v), true
	}
	return 0, false
}
