package styles

import (
	"image/color"

	"github.com/charmbracelet/glamour/v2"
	"github.com/charmbracelet/glamour/v2/ansi"
)

// GetMarkdownRenderer returns a glamour renderer using the current theme
func GetMarkdownRenderer(width int) (*glamour.TermRenderer, error) {
	return glamour.NewTermRenderer(
		glamour.WithStyles(CurrentTheme().S().Markdown),
		glamour.WithWordWrap(width),
	)
}

// RenderMarkdown renders md at width, falling back to the raw text if
// glamour fails.
func RenderMarkdown(md string, width int) string {
	r, err := GetMarkdownRenderer(width)
	if err != nil {
		return md
	}
	out, err := r.Render(md)
	if err != nil {
		return md
	}
	return out
}

// markdownStyles covers what help texts use: headings, paragraphs,
// lists and emphasis.
func markdownStyles(t *Theme) ansi.StyleConfig {
	fg := func(c color.Color) *string {
		s := colorToHex(c)
		return &s
	}
	yes := true
	margin := uint(1)

	return ansi.StyleConfig{
		Document: ansi.StyleBlock{
			StylePrimitive: ansi.StylePrimitive{Color: fg(t.FgBase)},
			Margin:         &margin,
		},
		Heading: ansi.StyleBlock{
			StylePrimitive: ansi.StylePrimitive{
				BlockSuffix: "\n",
				Color:       fg(t.Accent),
				Bold:        &yes,
			},
		},
		Paragraph: ansi.StyleBlock{
			StylePrimitive: ansi.StylePrimitive{BlockSuffix: "\n"},
		},
		List:   ansi.StyleList{LevelIndent: 2},
		Item:   ansi.StylePrimitive{BlockPrefix: "• "},
		Strong: ansi.StylePrimitive{Bold: &yes, Color: fg(t.Secondary)},
		Emph:   ansi.StylePrimitive{Italic: &yes, Color: fg(t.FgMuted)},
		Text:   ansi.StylePrimitive{Color: fg(t.FgBase)},
	}
}
