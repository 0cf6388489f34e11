package core

import tea "github.com/charmbracelet/bubbletea/v2"

// SizeableBase tracks the space a component may draw into
type SizeableBase struct {
	Width  int
	Height int
}

// SetSize sets the component size
func (s *SizeableBase) SetSize(width, height int) tea.Cmd {
	s.Width = width
	s.Height = height
	return nil
}

// GetSize returns the component size
func (s *SizeableBase) GetSize() (width, height int) {
	return s.Width, s.Height
}

// Fit clamps a desired size to the component size. A zero component size
// means "unknown" and leaves the desired size alone.
func (s *SizeableBase) Fit(width, height int) (int, int) {
	if s.Width > 0 && width > s.Width {
		width = s.Width
	}
	if s.Height > 0 && height > s.Height {
		height = s.Height
	}
	return width, height
}
