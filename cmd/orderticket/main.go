// Command orderticket is a small trading-ticket form: price and quantity are
// editable numeric fields, the order total is recomputed live and pushed into
// a third field. Tab around, type, paste, and note the total refusing pushes
// while you're typing into it.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
	"golang.org/x/term"

	numfield "github.com/OneAIgency/Niha-sub006"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("7"))
	markerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("5")).Bold(true)
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	errStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	frameStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2)
)

type model struct {
	price *numfield.Input
	qty   *numfield.Input
	total *numfield.Input
	group *numfield.FocusGroup

	status string
}

func newModel(loc *numfield.Locale, decimals int) *model {
	m := &model{
		price: numfield.NewInput().
			Locale(loc).
			Decimals(decimals).
			Placeholder("0.00").
			Width(20).
			Validate(numfield.VAll(numfield.VRequired, numfield.VPositive), numfield.VOnBlur),
		qty: numfield.NewInput().
			Locale(loc).
			Decimals(0).
			Placeholder("0").
			Width(20).
			Validate(numfield.VAll(numfield.VRequired, numfield.VPositive, numfield.VInteger), numfield.VOnBlur),
		total: numfield.NewInput().
			Locale(loc).
			Decimals(decimals).
			Placeholder("-").
			Width(20),
		status: "Tab: next | Shift+Tab: prev | Enter: submit | Esc: quit",
	}
	recompute := func(string) { m.recomputeTotal() }
	m.price.OnChange(recompute)
	m.qty.OnChange(recompute)
	m.group = numfield.NewFocusGroup().
		Register(m.price).
		Register(m.qty).
		Register(m.total)
	return m
}

// recomputeTotal pushes price*qty into the total field. While the user is
// typing in the total the push is dropped by the focus rule, which is the
// point: background recomputes never clobber typing.
func (m *model) recomputeTotal() {
	p, perr := strconv.ParseFloat(m.price.Value(), 64)
	q, qerr := strconv.ParseFloat(m.qty.Value(), 64)
	if perr != nil || qerr != nil {
		m.total.SetValue("")
		return
	}
	m.total.SetValue(strconv.FormatFloat(p*q, 'f', -1, 64))
}

func (m *model) submit() {
	if !m.price.RunValidation() || !m.qty.RunValidation() {
		m.status = "fix the marked fields first"
		return
	}
	m.status = fmt.Sprintf("Submitted! id=%s qty=%s price=%s total=%s",
		uuid.NewString()[:8], m.qty.Value(), m.price.Value(), m.total.Value())
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
		case tea.KeyEnter:
			m.submit()
			return m, nil
		}
		if m.group.Update(msg) {
			return m, nil
		}
		m.price.Update(msg)
		m.qty.Update(msg)
		m.total.Update(msg)
	}
	return m, nil
}

func (m *model) View() string {
	rows := []string{
		titleStyle.Render("Order Ticket"),
		"",
		m.row(0, " Price:", m.price),
		m.row(1, "   Qty:", m.qty),
		m.row(2, " Total:", m.total),
		"",
		statusStyle.Render(m.status),
	}
	return frameStyle.Render(lipgloss.JoinVertical(lipgloss.Left, rows...)) + "\n"
}

func (m *model) row(index int, label string, in *numfield.Input) string {
	marker := "  "
	if m.group.Current() == index {
		marker = markerStyle.Render("▸ ")
	}
	line := marker + labelStyle.Render(label) + " " + in.View()
	if err := in.Err(); err != nil {
		line += "  " + errStyle.Render(err.Error())
	}
	return line
}

func main() {
	localeID := flag.String("locale", "en-US", "BCP-47 locale for amount formatting")
	decimals := flag.Int("decimals", 2, "fractional digits accepted for amounts")
	flag.Parse()

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		log.Fatalln("orderticket: stdout is not a terminal")
	}
	loc, err := numfield.ParseLocale(*localeID)
	if err != nil {
		log.Fatalln(err)
	}
	if _, err := tea.NewProgram(newModel(loc, *decimals), tea.WithAltScreen()).Run(); err != nil {
		log.Fatalln(err)
	}
}
