package styles

import (
	"image/color"

	"github.com/charmbracelet/glamour/v2/ansi"
	"github.com/charmbracelet/lipgloss/v2"
)

// Theme is a named palette. Components ask for semantic colors and
// never hard code values.
type Theme struct {
	Name   string
	IsDark bool

	Primary   color.Color
	Secondary color.Color
	Accent    color.Color

	BgBase    color.Color
	BgSubtle  color.Color
	BgOverlay color.Color

	FgBase     color.Color
	FgMuted    color.Color
	FgSubtle   color.Color
	FgInverted color.Color

	Border      color.Color
	BorderFocus color.Color

	Success color.Color
	Error   color.Color
	Warning color.Color
	Info    color.Color

	styles *Styles
}

// Styles are the lipgloss styles derived from a theme
type Styles struct {
	Base  lipgloss.Style
	Title lipgloss.Style
	Text  lipgloss.Style
	Muted lipgloss.Style
	Help  lipgloss.Style

	Success lipgloss.Style
	Error   lipgloss.Style
	Warning lipgloss.Style

	// Confirmation dialog
	DialogBorder  lipgloss.Style
	Overlay       lipgloss.Style
	Button        lipgloss.Style
	ButtonFocused lipgloss.Style
	ButtonPrimary lipgloss.Style

	Markdown ansi.StyleConfig
}

// S returns the theme styles, building them on first use
func (t *Theme) S() *Styles {
	if t.styles == nil {
		t.styles = t.buildStyles()
	}
	return t.styles
}

func (t *Theme) buildStyles() *Styles {
	base := lipgloss.NewStyle().Foreground(t.FgBase)
	button := base.Background(t.BgSubtle).Padding(0, 2)

	return &Styles{
		Base:  base,
		Title: base.Foreground(t.Accent).Bold(true),
		Text:  base,
		Muted: base.Foreground(t.FgMuted),
		Help:  base.Foreground(t.FgSubtle).Italic(true),

		Success: base.Foreground(t.Success),
		Error:   base.Foreground(t.Error),
		Warning: base.Foreground(t.Warning),

		DialogBorder: base.
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(t.BorderFocus).
			Padding(1, 2),
		Overlay: lipgloss.NewStyle().
			Background(t.BgBase).
			Foreground(t.FgMuted),
		Button: button,
		ButtonFocused: button.
			Background(t.Primary).
			Foreground(t.FgInverted).
			Bold(true),
		ButtonPrimary: button.
			Foreground(t.Accent).
			Bold(true),

		Markdown: markdownStyles(t),
	}
}
