package confirm

import (
	"github.com/billie-coop/confirm/internal/tui/components/core"
	"github.com/billie-coop/confirm/internal/tui/styles"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"
)

// BaseDialog provides the modal frame shared by dialogs: open state,
// caption and centered rendering on top of the window.
type BaseDialog struct {
	core.FocusableBase
	core.SizeableBase

	title  string
	isOpen bool
	theme  *styles.Theme
}

// NewBaseDialog creates a closed dialog frame
func NewBaseDialog(title string, theme *styles.Theme) *BaseDialog {
	if theme == nil {
		theme = styles.CurrentTheme()
	}
	return &BaseDialog{
		title: title,
		theme: theme,
	}
}

// IsOpen returns whether the dialog is open
func (d *BaseDialog) IsOpen() bool {
	return d.isOpen
}

// Open opens the dialog and takes focus
func (d *BaseDialog) Open() tea.Cmd {
	d.isOpen = true
	return d.Focus()
}

// Close closes the dialog
func (d *BaseDialog) Close() tea.Cmd {
	d.isOpen = false
	return d.Blur()
}

// Title returns the caption
func (d *BaseDialog) Title() string {
	return d.title
}

// SetTitle changes the caption
func (d *BaseDialog) SetTitle(title string) {
	d.title = title
}

// RenderTitle renders the caption with the theme gradient
func (d *BaseDialog) RenderTitle() string {
	if d.title == "" {
		return ""
	}
	return styles.ApplyGradient(d.title, d.theme.Accent, d.theme.Primary, true)
}

// RenderDialog frames content at the given outer size and centers it in
// the window.
func (d *BaseDialog) RenderDialog(content string, width, height int) string {
	if !d.isOpen {
		return ""
	}

	s := d.theme.S()
	frame := s.DialogBorder
	box := frame.
		Width(width - frame.GetHorizontalBorderSize()).
		Height(height - frame.GetVerticalBorderSize()).
		Render(content)

	if d.Width == 0 || d.Height == 0 {
		return box
	}

	return s.Overlay.
		Width(d.Width).
		Height(d.Height).
		Render(lipgloss.Place(
			d.Width,
			d.Height,
			lipgloss.Center,
			lipgloss.Center,
			box,
		))
}
