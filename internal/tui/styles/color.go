package styles

import (
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss/v2"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/rivo/uniseg"
)

// ParseHex converts "#rrggbb" or "#rgb" to a color. Malformed input
// yields black.
func ParseHex(hex string) color.Color {
	c, err := colorful.Hex(hex)
	if err != nil {
		return color.RGBA{A: 255}
	}
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

// ApplyGradient renders text with a horizontal gradient, one color per
// grapheme cluster.
func ApplyGradient(text string, from, to color.Color, bold bool) string {
	if text == "" {
		return ""
	}

	var clusters []string
	gr := uniseg.NewGraphemes(text)
	for gr.Next() {
		clusters = append(clusters, gr.Str())
	}

	var out strings.Builder
	for i, c := range blendColors(len(clusters), from, to) {
		out.WriteString(lipgloss.NewStyle().Foreground(c).Bold(bold).Render(clusters[i]))
	}
	return out.String()
}

// blendColors returns steps colors from one end to the other, blended in
// HCL space.
func blendColors(steps int, from, to color.Color) []color.Color {
	switch {
	case steps <= 0:
		return nil
	case steps == 1:
		return []color.Color{from}
	}

	c1, _ := colorful.MakeColor(from)
	c2, _ := colorful.MakeColor(to)

	colors := make([]color.Color, steps)
	for i := range colors {
		colors[i] = c1.BlendHcl(c2, float64(i)/float64(steps-1)).Clamped()
	}
	return colors
}

func colorToHex(c color.Color) string {
	cf, _ := colorful.MakeColor(c)
	return cf.Hex()
}
