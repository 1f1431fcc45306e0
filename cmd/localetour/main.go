// Command localetour edits one number through five locales at once. Typing
// into the focused field fans the canonical value out to the others, so the
// same amount is always on screen in every regional format.
package main

import (
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	numfield "github.com/OneAIgency/Niha-sub006"
)

var locales = []string{"en-US", "de-DE", "fr-FR", "en-IN", "ja-JP"}

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("7"))
	markerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("5")).Bold(true)
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	frameStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2)
)

type model struct {
	inputs []*numfield.Input
	group  *numfield.FocusGroup
	value  string
}

func newModel() *model {
	m := &model{}
	m.group = numfield.NewFocusGroup()
	for _, id := range locales {
		in := numfield.NewInput().
			Locale(numfield.MustLocale(id)).
			Decimals(2).
			Placeholder("type a number").
			Width(24)
		m.inputs = append(m.inputs, in)
		m.group.Register(in)
	}
	for _, in := range m.inputs {
		in.OnChange(m.broadcast)
	}
	return m
}

// broadcast pushes the canonical value into every field. The one being typed
// in is focused and ignores the push; the rest resync to their own locale's
// rendering of the same number.
func (m *model) broadcast(canonical string) {
	m.value = canonical
	for _, in := range m.inputs {
		in.SetValue(canonical)
	}
}

func (m *model) Init() tea.Cmd {
	return nil
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		}
		if m.group.Update(msg) {
			return m, nil
		}
		for _, in := range m.inputs {
			in.Update(msg)
		}
	}
	return m, nil
}

func (m *model) View() string {
	rows := []string{
		titleStyle.Render("Locale Tour"),
		"",
	}
	for i, in := range m.inputs {
		marker := "  "
		if m.group.Current() == i {
			marker = markerStyle.Render("▸ ")
		}
		rows = append(rows, marker+labelStyle.Render(locales[i])+"  "+in.View())
	}
	rows = append(rows, "", statusStyle.Render("canonical: "+m.value))
	rows = append(rows, statusStyle.Render("Tab: next | Shift+Tab: prev | Esc: quit"))
	return frameStyle.Render(lipgloss.JoinVertical(lipgloss.Left, rows...)) + "\n"
}

func main() {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		log.Fatalln("localetour: stdout is not a terminal")
	}
	if _, err := tea.NewProgram(newModel(), tea.WithAltScreen()).Run(); err != nil {
		log.Fatalln(err)
	}
}
