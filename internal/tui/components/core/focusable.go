package core

import tea "github.com/charmbracelet/bubbletea/v2"

// FocusableBase tracks whether a component owns keyboard input
type FocusableBase struct {
	focused bool
}

// IsFocused returns whether the component is focused
func (f *FocusableBase) IsFocused() bool {
	return f.focused
}

// Focus gives the component keyboard input
func (f *FocusableBase) Focus() tea.Cmd {
	f.focused = true
	return nil
}

// Blur takes keyboard input away from the component
func (f *FocusableBase) Blur() tea.Cmd {
	f.focused = false
	return nil
}
