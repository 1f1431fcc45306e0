package numfield

import "github.com/charmbracelet/lipgloss"

// Styles bundles the lipgloss styles an Input renders with. The zero value
// is usable and renders everything unstyled, which is also what tests want.
type Styles struct {
	Prompt      lipgloss.Style
	Focused     lipgloss.Style
	Blurred     lipgloss.Style
	Placeholder lipgloss.Style
	Cursor      lipgloss.Style
	Error       lipgloss.Style
}

// DefaultStyles is the standard look: dim prompt and placeholder, inverse
// cursor cell, red errors.
func DefaultStyles() Styles {
	return Styles{
		Prompt:      lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Focused:     lipgloss.NewStyle(),
		Blurred:     lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
		Placeholder: lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Cursor:      lipgloss.NewStyle().Reverse(true),
		Error:       lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	}
}

// MonoStyles sticks to attributes for terminals where color is a rumor.
func MonoStyles() Styles {
	return Styles{
		Prompt:      lipgloss.NewStyle().Faint(true),
		Focused:     lipgloss.NewStyle().Bold(true),
		Blurred:     lipgloss.NewStyle(),
		Placeholder: lipgloss.NewStyle().Faint(true),
		Cursor:      lipgloss.NewStyle().Reverse(true),
		Error:       lipgloss.NewStyle().Bold(true),
	}
}
