// Package content describes how a dialog message is interpreted and turns it
// into displayable text.
package content

import (
	"html"
	"regexp"
	"strings"

	"github.com/rivo/uniseg"
)

// Mode selects how message text is escaped and how its rows are counted.
type Mode int

const (
	// TextWithNewlines is plain text where every newline starts a new line.
	TextWithNewlines Mode = iota
	// Text is plain text; runs of whitespace collapse like they do in HTML.
	Text
	// Preformatted text is shown verbatim.
	Preformatted
	// HTML is trusted markup.
	HTML
)

// Default is the mode used when a request does not pick one.
const Default = TextWithNewlines

func (m Mode) String() string {
	switch m {
	case TextWithNewlines:
		return "text_with_newlines"
	case Text:
		return "text"
	case Preformatted:
		return "preformatted"
	case HTML:
		return "html"
	default:
		return "unknown"
	}
}

// ParseMode maps a configuration string back to a Mode.
func ParseMode(s string) (Mode, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "text_with_newlines", "default":
		return TextWithNewlines, true
	case "text":
		return Text, true
	case "preformatted", "pre":
		return Preformatted, true
	case "html", "raw":
		return HTML, true
	}
	return TextWithNewlines, false
}

const (
	newline      = "\n"
	paragraphEnd = "</p>"
)

// Length returns the number of user-perceived characters in s.
func Length(s string) int {
	if s == "" {
		return 0
	}
	return uniseg.GraphemeClusterCount(s)
}

// ExtraRows counts the explicit line breaks a mode adds on top of wrapping.
// Only TextWithNewlines contributes: one row per newline and one per
// closing paragraph tag.
func ExtraRows(s string, mode Mode) int {
	if mode != TextWithNewlines || s == "" {
		return 0
	}
	return strings.Count(s, newline) + strings.Count(s, paragraphEnd)
}

var whitespaceRun = regexp.MustCompile(`\s+`)

// FormatHTML returns the markup a browser based host would place in the
// message element.
func FormatHTML(s string, mode Mode) string {
	switch mode {
	case TextWithNewlines:
		return strings.ReplaceAll(html.EscapeString(s), newline, "<br />")
	case Text:
		return html.EscapeString(s)
	case Preformatted:
		return "<pre>" + html.EscapeString(s) + "</pre>"
	default:
		return s
	}
}

// Format returns s as plain terminal text.
func Format(s string, mode Mode) string {
	switch mode {
	case TextWithNewlines:
		return strings.ReplaceAll(s, "\r\n", newline)
	case Text:
		return strings.TrimSpace(whitespaceRun.ReplaceAllString(s, " "))
	case Preformatted:
		return s
	case HTML:
		text, err := Flatten(s)
		if err != nil {
			return s
		}
		return text
	default:
		return s
	}
}
