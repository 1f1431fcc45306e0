package numfield

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-runewidth"
)

// Input is a single-line numeric text input for bubbletea programs with
// internal state management. It owns a Field and translates key messages
// into raw edit events on it, so every keystroke goes through the same
// canonicalize-gate-reformat path a hosted field anywhere else would use.
//
// usage:
//
//	price := numfield.NewInput().Placeholder("0.00").Width(18)
//	// in the model's Update: price.Update(msg)
//	// in the model's View:   price.View()
type Input struct {
	field Field

	prompt      string
	placeholder string
	width       int // visible cells of the value area, 0 sizes to content
	offset      int // first visible rune when scrolled
	styles      Styles

	validator NumberValidator
	when      ValidateOn
	err       error
}

// NewInput creates a numeric input with internal state: en-US locale,
// two-digit decimal cap, unfocused.
func NewInput() *Input {
	return &Input{
		field:  Field{loc: DefaultLocale(), decimals: DefaultDecimals},
		styles: DefaultStyles(),
	}
}

// Locale sets the locale the display is formatted with.
func (in *Input) Locale(loc *Locale) *Input {
	in.field.Locale(loc)
	return in
}

// Decimals caps the fractional digits accepted and displayed.
func (in *Input) Decimals(n int) *Input {
	in.field.Decimals(n)
	return in
}

// Placeholder sets the text shown while the input is empty and unfocused.
func (in *Input) Placeholder(p string) *Input {
	in.placeholder = p
	return in
}

// Prompt sets a short prefix rendered before the value, like "$ ".
func (in *Input) Prompt(p string) *Input {
	in.prompt = p
	return in
}

// Width sets the visible width of the value area in terminal cells.
func (in *Input) Width(w int) *Input {
	in.width = w
	return in
}

// Styles replaces the input's rendering styles.
func (in *Input) Styles(s Styles) *Input {
	in.styles = s
	return in
}

// Validate attaches a validator and the triggers it runs on.
func (in *Input) Validate(v NumberValidator, on ValidateOn) *Input {
	in.validator = v
	in.when = on
	return in
}

// OnChange registers the callback receiving the canonical value after every
// accepted edit.
func (in *Input) OnChange(fn func(canonical string)) *Input {
	in.field.OnChange(fn)
	return in
}

// Field returns a pointer to the internal field.
func (in *Input) Field() *Field {
	return &in.field
}

// Value returns the canonical value.
func (in *Input) Value() string {
	return in.field.Value()
}

// SetValue replaces the canonical value, subject to the field's focus rule:
// a focused input ignores the call.
func (in *Input) SetValue(canonical string) {
	in.field.SetValue(canonical)
}

// Clear resets the input to empty through the ordinary edit path, so it
// works mid-edit and notifies OnChange.
func (in *Input) Clear() {
	in.field.Edit("", 0)
	in.offset = 0
}

// Err returns the last validation error, nil when clean.
func (in *Input) Err() error {
	return in.err
}

// Focus gives the input keyboard focus.
func (in *Input) Focus() {
	in.field.Focus()
}

// Blur removes focus, re-renders the display from the canonical value and
// runs a VOnBlur validator if one is attached.
func (in *Input) Blur() {
	in.field.Blur()
	in.offset = 0
	in.runValidation(VOnBlur)
}

// Focused reports whether the input has keyboard focus.
func (in *Input) Focused() bool {
	return in.field.Focused()
}

// RunValidation runs the attached validator regardless of its triggers and
// reports whether the value passed. Hosts call this on submit.
func (in *Input) RunValidation() bool {
	if in.validator == nil {
		return true
	}
	in.err = in.validator(in.field.Value())
	return in.err == nil
}

func (in *Input) runValidation(trigger ValidateOn) {
	if in.validator == nil || in.when&trigger == 0 {
		return
	}
	in.err = in.validator(in.field.Value())
}

// Update handles one bubbletea message. Unfocused inputs ignore everything,
// so a host with several inputs can fan each key message out to all of them.
func (in *Input) Update(msg tea.Msg) tea.Cmd {
	if !in.field.Focused() {
		return nil
	}
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	switch key.Type {
	case tea.KeyRunes:
		in.insert(key.Runes)
	case tea.KeyBackspace:
		in.backspace()
	case tea.KeyDelete:
		in.deleteForward()
	case tea.KeyLeft:
		in.field.SetCursor(in.field.Cursor() - 1)
	case tea.KeyRight:
		in.field.SetCursor(in.field.Cursor() + 1)
	case tea.KeyHome, tea.KeyCtrlA:
		in.field.SetCursor(0)
	case tea.KeyEnd, tea.KeyCtrlE:
		in.field.SetCursor(len([]rune(in.field.Display())))
	case tea.KeyCtrlU:
		in.killToStart()
	case tea.KeyCtrlK:
		in.killToEnd()
	}
	return nil
}

// insert splices typed or pasted runes in at the cursor and offers the result
// to the field. Rejected candidates leave the input exactly as it was; the
// engine does the gating, not the widget.
func (in *Input) insert(rs []rune) {
	if len(rs) == 0 {
		return
	}
	d := []rune(in.field.Display())
	cur := clampCursor(in.field.Cursor(), len(d))
	raw := make([]rune, 0, len(d)+len(rs))
	raw = append(raw, d[:cur]...)
	raw = append(raw, rs...)
	raw = append(raw, d[cur:]...)
	if in.field.Edit(string(raw), cur+len(rs)) {
		in.runValidation(VOnChange)
	}
}

// backspace deletes the value rune before the cursor. Cosmetic separators in
// between are consumed along the way, so deleting next to "," removes a digit
// instead of bouncing; the reformat regrows whatever grouping still applies.
func (in *Input) backspace() {
	d := []rune(in.field.Display())
	cur := clampCursor(in.field.Cursor(), len(d))
	i := cur
	for i > 0 && !isValueRune(d[i-1], in.field.loc) {
		i--
	}
	if i == 0 {
		return
	}
	raw := make([]rune, 0, len(d))
	raw = append(raw, d[:i-1]...)
	raw = append(raw, d[cur:]...)
	if in.field.Edit(string(raw), i-1) {
		in.runValidation(VOnChange)
	}
}

// deleteForward mirrors backspace in the other direction.
func (in *Input) deleteForward() {
	d := []rune(in.field.Display())
	cur := clampCursor(in.field.Cursor(), len(d))
	i := cur
	for i < len(d) && !isValueRune(d[i], in.field.loc) {
		i++
	}
	if i == len(d) {
		return
	}
	raw := make([]rune, 0, len(d))
	raw = append(raw, d[:cur]...)
	raw = append(raw, d[i+1:]...)
	if in.field.Edit(string(raw), cur) {
		in.runValidation(VOnChange)
	}
}

func (in *Input) killToStart() {
	d := []rune(in.field.Display())
	cur := clampCursor(in.field.Cursor(), len(d))
	if in.field.Edit(string(d[cur:]), 0) {
		in.runValidation(VOnChange)
	}
}

func (in *Input) killToEnd() {
	d := []rune(in.field.Display())
	cur := clampCursor(in.field.Cursor(), len(d))
	if in.field.Edit(string(d[:cur]), cur) {
		in.runValidation(VOnChange)
	}
}

// View renders the prompt and the visible slice of the display string, with
// the cursor cell styled when focused.
func (in *Input) View() string {
	var b strings.Builder
	b.WriteString(in.styles.Prompt.Render(in.prompt))

	d := []rune(in.field.Display())
	cur := clampCursor(in.field.Cursor(), len(d))
	focused := in.field.Focused()

	if len(d) == 0 && !focused && in.placeholder != "" {
		p := in.placeholder
		if in.width > 0 {
			p = runewidth.Truncate(p, in.width, "")
		}
		b.WriteString(in.styles.Placeholder.Render(p))
		return b.String()
	}

	start, end := 0, len(d)
	if in.width > 0 {
		if focused {
			start, end = in.visibleWindow(d, cur)
		} else {
			end = fitRunes(d, 0, in.width)
		}
	}
	text := in.styles.Blurred
	if focused {
		text = in.styles.Focused
	}
	if focused {
		b.WriteString(text.Render(string(d[start:cur])))
		switch {
		case cur < end:
			b.WriteString(in.styles.Cursor.Render(string(d[cur])))
			b.WriteString(text.Render(string(d[cur+1 : end])))
		case cur < len(d):
			b.WriteString(in.styles.Cursor.Render(string(d[cur])))
		default:
			b.WriteString(in.styles.Cursor.Render(" "))
		}
	} else {
		b.WriteString(text.Render(string(d[start:end])))
	}

	if in.width > 0 {
		shown := runewidth.StringWidth(string(d[start:end]))
		if focused && cur == end {
			if cur < len(d) {
				shown += runewidth.RuneWidth(d[cur])
			} else {
				shown++
			}
		}
		if pad := in.width - shown; pad > 0 {
			b.WriteString(strings.Repeat(" ", pad))
		}
	}
	return b.String()
}

// visibleWindow returns the rune range [start,end) of the display that fits
// in the configured width while keeping the cursor inside the window. One
// cell is reserved so the cursor can sit past the last rune.
func (in *Input) visibleWindow(d []rune, cur int) (int, int) {
	if in.offset > cur {
		in.offset = cur
	}
	if in.offset > len(d) {
		in.offset = len(d)
	}
	for {
		end := fitRunes(d, in.offset, in.width-1)
		if cur <= end || in.offset >= len(d) {
			return in.offset, end
		}
		in.offset++
	}
}

// fitRunes returns the largest end such that d[start:end] occupies at most
// cells terminal columns.
func fitRunes(d []rune, start, cells int) int {
	end := start
	used := 0
	for end < len(d) && used+runewidth.RuneWidth(d[end]) <= cells {
		used += runewidth.RuneWidth(d[end])
		end++
	}
	return end
}

func clampCursor(cur, max int) int {
	if cur > max {
		return max
	}
	if cur < 0 {
		return 0
	}
	return cur
}
