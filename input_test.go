package numfield

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func key(t tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: t}
}

func typeString(in *Input, s string) {
	for _, r := range s {
		in.Update(keyRunes(string(r)))
	}
}

func TestInputTyping(t *testing.T) {
	in := NewInput()
	in.Focus()
	typeString(in, "1234567")

	if in.Value() != "1234567" {
		t.Errorf("value = %q, want %q", in.Value(), "1234567")
	}
	if got := in.Field().Display(); got != "1,234,567" {
		t.Errorf("display = %q, want %q", got, "1,234,567")
	}
	if got := in.Field().Cursor(); got != 9 {
		t.Errorf("cursor = %d, want 9", got)
	}
}

func TestInputTypesFraction(t *testing.T) {
	in := NewInput()
	in.Focus()
	typeString(in, "1234.5")

	if in.Value() != "1234.5" {
		t.Errorf("value = %q, want %q", in.Value(), "1234.5")
	}
	if got := in.Field().Display(); got != "1,234.5" {
		t.Errorf("display = %q, want %q", got, "1,234.5")
	}
}

func TestInputRejects(t *testing.T) {
	t.Run("second decimal point", func(t *testing.T) {
		in := NewInput()
		in.Focus()
		typeString(in, "1..")
		if got := in.Field().Display(); got != "1." {
			t.Errorf("display = %q, want %q", got, "1.")
		}
	})

	t.Run("letters", func(t *testing.T) {
		in := NewInput()
		in.Focus()
		typeString(in, "x")
		if in.Value() != "" || in.Field().Display() != "" {
			t.Errorf("state = %q %q, want untouched", in.Value(), in.Field().Display())
		}
	})

	t.Run("over the decimal cap", func(t *testing.T) {
		in := NewInput() // cap 2
		in.Focus()
		typeString(in, "9.999")
		if in.Value() != "9.99" {
			t.Errorf("value = %q, want %q", in.Value(), "9.99")
		}
		if got := in.Field().Display(); got != "9.99" {
			t.Errorf("display = %q, want %q", got, "9.99")
		}
	})
}

func TestInputBackspaceHopsSeparators(t *testing.T) {
	in := NewInput()
	in.Focus()
	typeString(in, "1234") // display "1,234", cursor 5

	in.Update(key(tea.KeyLeft))
	in.Update(key(tea.KeyLeft))
	in.Update(key(tea.KeyLeft)) // cursor 2, just right of ","
	in.Update(key(tea.KeyBackspace))

	if got := in.Field().Display(); got != "234" {
		t.Errorf("display = %q, want %q", got, "234")
	}
	if got := in.Field().Cursor(); got != 0 {
		t.Errorf("cursor = %d, want 0", got)
	}
}

func TestInputDeleteForwardHopsSeparators(t *testing.T) {
	in := NewInput()
	in.Focus()
	typeString(in, "1234") // display "1,234"

	in.Update(key(tea.KeyHome))
	in.Update(key(tea.KeyRight)) // cursor 1, just left of ","
	in.Update(key(tea.KeyDelete))

	if got := in.Field().Display(); got != "134" {
		t.Errorf("display = %q, want %q", got, "134")
	}
	if got := in.Field().Cursor(); got != 1 {
		t.Errorf("cursor = %d, want 1", got)
	}
}

func TestInputPasteFormatted(t *testing.T) {
	in := NewInput().Locale(MustLocale("de-DE"))
	in.Focus()
	in.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("1.234,56"), Paste: true})

	if in.Value() != "1234.56" {
		t.Errorf("value = %q, want %q", in.Value(), "1234.56")
	}
	if got := in.Field().Display(); got != "1.234,56" {
		t.Errorf("display = %q, want %q", got, "1.234,56")
	}
	if got := in.Field().Cursor(); got != 8 {
		t.Errorf("cursor = %d, want 8", got)
	}
}

func TestInputKillKeys(t *testing.T) {
	in := NewInput()
	in.Focus()
	typeString(in, "1234.5") // display "1,234.5", cursor 7

	in.Update(key(tea.KeyLeft))
	in.Update(key(tea.KeyLeft)) // cursor 5, before "."
	in.Update(key(tea.KeyCtrlU))

	if in.Value() != ".5" || in.Field().Cursor() != 0 {
		t.Errorf("after ctrl+u: value %q cursor %d, want %q cursor 0", in.Value(), in.Field().Cursor(), ".5")
	}

	in.Update(key(tea.KeyEnd))
	in.Update(key(tea.KeyLeft))
	in.Update(key(tea.KeyCtrlK)) // drop the trailing 5

	if in.Value() != "." {
		t.Errorf("after ctrl+k: value %q, want %q", in.Value(), ".")
	}
}

func TestInputUnfocusedIgnoresKeys(t *testing.T) {
	in := NewInput()
	typeString(in, "123")
	if in.Value() != "" {
		t.Errorf("value = %q, want unfocused input untouched", in.Value())
	}
}

func TestInputSetValueFocusGuard(t *testing.T) {
	in := NewInput()
	in.SetValue("1000")
	if got := in.Field().Display(); got != "1,000" {
		t.Fatalf("display = %q, want %q", got, "1,000")
	}

	in.Focus()
	in.SetValue("2000")
	if in.Value() != "1000" {
		t.Errorf("value = %q, want the push dropped while focused", in.Value())
	}

	in.Blur()
	in.SetValue("2000")
	if got := in.Field().Display(); got != "2,000" {
		t.Errorf("display = %q, want %q", got, "2,000")
	}
}

func TestInputValidation(t *testing.T) {
	t.Run("on blur", func(t *testing.T) {
		in := NewInput().Validate(VAll(VRequired, VPositive), VOnBlur)
		in.Focus()
		in.Blur()
		if err := in.Err(); err == nil || err.Error() != "required" {
			t.Errorf("err = %v, want required", err)
		}

		in.Focus()
		typeString(in, "5")
		in.Blur()
		if err := in.Err(); err != nil {
			t.Errorf("err = %v, want nil", err)
		}
	})

	t.Run("on change", func(t *testing.T) {
		in := NewInput().Validate(VMax(100), VOnChange)
		in.Focus()
		typeString(in, "5")
		if in.Err() != nil {
			t.Errorf("err = %v, want nil at 5", in.Err())
		}
		typeString(in, "00")
		if err := in.Err(); err == nil || err.Error() != "max 100" {
			t.Errorf("err = %v, want max 100", err)
		}
	})

	t.Run("on demand", func(t *testing.T) {
		in := NewInput().Validate(VRequired, VOnSubmit)
		if in.RunValidation() {
			t.Error("expected failure on empty required input")
		}
		in.SetValue("3")
		if !in.RunValidation() {
			t.Errorf("expected pass, got %v", in.Err())
		}
	})

	t.Run("no validator always passes", func(t *testing.T) {
		in := NewInput()
		if !in.RunValidation() || in.Err() != nil {
			t.Error("expected a validator-less input to pass")
		}
	})
}

func TestInputClear(t *testing.T) {
	in := NewInput()
	in.Focus()
	typeString(in, "123")
	in.Clear()
	if in.Value() != "" || in.Field().Display() != "" || in.Field().Cursor() != 0 {
		t.Errorf("state = %q %q %d, want empty", in.Value(), in.Field().Display(), in.Field().Cursor())
	}
}

func TestInputView(t *testing.T) {
	t.Run("placeholder when empty and blurred", func(t *testing.T) {
		in := NewInput().Styles(Styles{}).Placeholder("0.00")
		if got := in.View(); got != "0.00" {
			t.Errorf("view = %q, want %q", got, "0.00")
		}
	})

	t.Run("value when blurred", func(t *testing.T) {
		in := NewInput().Styles(Styles{})
		in.SetValue("1000")
		if got := in.View(); got != "1,000" {
			t.Errorf("view = %q, want %q", got, "1,000")
		}
	})

	t.Run("cursor cell appended when focused at end", func(t *testing.T) {
		in := NewInput().Styles(Styles{})
		in.SetValue("1000")
		in.Focus()
		if got := in.View(); got != "1,000 " {
			t.Errorf("view = %q, want %q", got, "1,000 ")
		}
	})

	t.Run("prompt rendered first", func(t *testing.T) {
		in := NewInput().Styles(Styles{}).Prompt("$ ")
		in.SetValue("5")
		if got := in.View(); got != "$ 5" {
			t.Errorf("view = %q, want %q", got, "$ 5")
		}
	})
}

func TestInputViewScrolls(t *testing.T) {
	in := NewInput().Styles(Styles{}).Width(6)
	in.Focus()
	typeString(in, "1234567890") // display "1,234,567,890"

	view := in.View()
	if !strings.Contains(view, "7,890") {
		t.Errorf("view = %q, want the tail visible", view)
	}
	if strings.Contains(view, "1,234") {
		t.Errorf("view = %q, want the head scrolled out", view)
	}

	in.Update(key(tea.KeyHome))
	view = in.View()
	if !strings.Contains(view, "1,234") {
		t.Errorf("view after Home = %q, want the head visible", view)
	}
}
