package numfield

import tea "github.com/charmbracelet/bubbletea"

// Focusable is implemented by anything that can hold keyboard focus.
// Field and Input both qualify.
type Focusable interface {
	Focus()
	Blur()
	Focused() bool
}

// FocusGroup coordinates keyboard focus across the fields of a form: exactly
// one registered item is focused at a time, Tab and Shift-Tab cycle between
// them.
//
// usage:
//
//	group := numfield.NewFocusGroup()
//	price := numfield.NewInput().Placeholder("0.00")
//	qty := numfield.NewInput().Decimals(0)
//	group.Register(price).Register(qty)
type FocusGroup struct {
	items   []Focusable
	current int

	onChange func(index int) // called when focus changes
}

// NewFocusGroup creates an empty focus group.
func NewFocusGroup() *FocusGroup {
	return &FocusGroup{}
}

// Register adds a focusable item to the group.
// The first registered item receives initial focus.
func (g *FocusGroup) Register(f Focusable) *FocusGroup {
	g.items = append(g.items, f)
	if len(g.items) == 1 {
		f.Focus()
	}
	return g
}

// OnChange sets a callback that fires when focus changes.
func (g *FocusGroup) OnChange(fn func(index int)) *FocusGroup {
	g.onChange = fn
	return g
}

// Update consumes Tab and Shift-Tab key messages, cycling focus.
// It reports whether the message was handled, so hosts can fall through to
// the focused input for everything else.
func (g *FocusGroup) Update(msg tea.Msg) bool {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return false
	}
	switch key.Type {
	case tea.KeyTab:
		g.Next()
		return true
	case tea.KeyShiftTab:
		g.Prev()
		return true
	}
	return false
}

// Next moves focus to the next item.
func (g *FocusGroup) Next() {
	g.moveFocus(1)
}

// Prev moves focus to the previous item.
func (g *FocusGroup) Prev() {
	g.moveFocus(-1)
}

func (g *FocusGroup) moveFocus(delta int) {
	if len(g.items) <= 1 {
		return
	}
	g.items[g.current].Blur()
	g.current = (g.current + len(g.items) + delta) % len(g.items)
	g.items[g.current].Focus()
	if g.onChange != nil {
		g.onChange(g.current)
	}
}

// Focus sets focus to a specific index.
func (g *FocusGroup) Focus(index int) {
	if index < 0 || index >= len(g.items) {
		return
	}
	if g.current == index {
		return
	}
	g.items[g.current].Blur()
	g.current = index
	g.items[g.current].Focus()
	if g.onChange != nil {
		g.onChange(g.current)
	}
}

// Current returns the currently focused index.
func (g *FocusGroup) Current() int {
	return g.current
}
