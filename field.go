package numfield

// DefaultDecimals is the fractional-digit cap a new Field starts with.
const DefaultDecimals = 2

// DefaultLocale returns the en-US locale every new Field starts with.
func DefaultLocale() *Locale {
	return MustLocale("en-US")
}

// Field owns the editing state of one numeric input: the canonical value the
// application reads, the formatted display string the user sees, the cursor
// offset into it, and whether the field currently holds keyboard focus. It is
// the glue between the pure functions (Canonicalize, Format, Reformat) and
// whatever UI element hosts the field.
//
// One Field, one event loop: all entry points run synchronously inside the
// host's event handling, nothing here locks.
type Field struct {
	loc      *Locale
	decimals int

	canonical string
	display   string
	cursor    int
	focused   bool

	onChange func(canonical string)
}

// New creates an unfocused field with the en-US locale and a two-digit
// decimal cap. Configure it with the fluent setters before handing it to a
// host:
//
//	f := numfield.New().Locale(numfield.MustLocale("de-DE")).Decimals(4)
//	f.SetValue("1234.5")
func New() *Field {
	return &Field{loc: DefaultLocale(), decimals: DefaultDecimals}
}

// Locale sets the locale the display string is formatted with. Fixed per
// field: call before the field is in use, not to switch formats mid-edit.
func (f *Field) Locale(loc *Locale) *Field {
	f.loc = loc
	f.resync()
	return f
}

// Decimals caps the fractional digits the field accepts while editing and
// shows when displaying. Values below zero clamp to zero.
func (f *Field) Decimals(n int) *Field {
	if n < 0 {
		n = 0
	}
	f.decimals = n
	f.resync()
	return f
}

// OnChange registers the callback that receives the canonical value after
// every accepted edit.
func (f *Field) OnChange(fn func(canonical string)) *Field {
	f.onChange = fn
	return f
}

// Value returns the canonical value: '.'-separated, ungrouped, "" for none.
func (f *Field) Value() string { return f.canonical }

// Display returns the formatted string the user currently sees.
func (f *Field) Display() string { return f.display }

// Cursor returns the rune offset of the caret within Display.
func (f *Field) Cursor() int { return f.cursor }

// Focused reports whether the field holds keyboard focus.
func (f *Field) Focused() bool { return f.focused }

// Edit applies one raw edit from the host: the text as it stands after the
// user's keystroke or paste, and the rune offset of the caret within it.
//
// Malformed intermediates (a second '.', an embedded '-'), stray characters
// that survive separator stripping, and fractional digits beyond the cap are
// rejected wholesale: the previous display, cursor and canonical value stand,
// Edit returns false, and the host should treat the keystroke as never having
// happened. Accepted edits regroup the display, re-anchor the cursor, store
// the new canonical value and report it to the OnChange callback.
func (f *Field) Edit(raw string, cursor int) bool {
	candidate := Canonicalize(raw, f.loc)
	if !wellFormed(candidate) || !rawConsistent(raw, candidate, f.loc) {
		return false
	}
	if fracDigits(candidate) > f.decimals {
		return false
	}
	f.display, f.cursor = Reformat(raw, cursor, f.loc)
	f.canonical = candidate
	if f.onChange != nil {
		f.onChange(candidate)
	}
	return true
}

// Focus marks the field as owning keyboard input. While focused, SetValue
// calls are ignored so a background push can never clobber typing.
func (f *Field) Focus() { f.focused = true }

// Blur drops focus and re-renders the display from the canonical value,
// retiring in-progress artifacts: "1." becomes "1", a lone "-" or "000"
// becomes what the presenter makes of it. The canonical value itself is not
// rewritten.
func (f *Field) Blur() {
	f.focused = false
	f.resync()
}

// SetValue replaces the canonical value from outside the editing path: a
// server push, a recomputed total, initial state. While the field is focused
// the call is a no-op, typing wins. Unfocused, the display resynchronizes
// immediately.
func (f *Field) SetValue(canonical string) {
	if f.focused {
		return
	}
	f.canonical = canonical
	f.resync()
}

// SetCursor moves the caret to a rune offset in the display, clamped to its
// bounds. For plain caret movement; edits carry their own cursor.
func (f *Field) SetCursor(n int) {
	if max := len([]rune(f.display)); n > max {
		n = max
	}
	if n < 0 {
		n = 0
	}
	f.cursor = n
}

// resync re-derives display and cursor from the canonical value. Focused
// fields are left alone: their display is edit-owned until Blur.
func (f *Field) resync() {
	if f.focused {
		return
	}
	f.display = Format(f.canonical, f.loc, f.decimals)
	f.cursor = len([]rune(f.display))
}
