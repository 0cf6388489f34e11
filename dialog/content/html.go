package content

import (
	"strings"

	"golang.org/x/net/html"
)

// Flatten renders an HTML fragment as terminal text. Block elements end a
// line, <br> breaks one, list items get a bullet and everything else
// contributes its text. Whitespace is collapsed except inside <pre>.
func Flatten(fragment string) (string, error) {
	doc, err := html.Parse(strings.NewReader(fragment))
	if err != nil {
		return "", err
	}

	body := findElement(doc, "body")
	if body == nil {
		body = doc
	}

	var f flattener
	f.walk(body)
	f.newline()

	out := make([]string, 0, len(f.lines))
	for _, l := range f.lines {
		text := l.text
		if !l.verbatim {
			text = strings.TrimSpace(whitespaceRun.ReplaceAllString(text, " "))
			if text == "" && (len(out) == 0 || out[len(out)-1] == "") {
				continue
			}
		}
		out = append(out, text)
	}
	return strings.TrimRight(strings.Join(out, "\n"), "\n"), nil
}

func findElement(n *html.Node, tag string) *html.Node {
	if n.Type == html.ElementNode && n.Data == tag {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findElement(c, tag); found != nil {
			return found
		}
	}
	return nil
}

type flatLine struct {
	text     string
	verbatim bool
}

type flattener struct {
	lines    []flatLine
	cur      strings.Builder
	verbatim bool
	pre      int
}

func (f *flattener) write(s string) {
	if s == "" {
		return
	}
	f.cur.WriteString(s)
	if f.pre > 0 {
		f.verbatim = true
	}
}

func (f *flattener) newline() {
	f.lines = append(f.lines, flatLine{text: f.cur.String(), verbatim: f.verbatim})
	f.cur.Reset()
	f.verbatim = false
}

func (f *flattener) text(s string) {
	if f.pre == 0 {
		f.write(strings.ReplaceAll(s, "\n", " "))
		return
	}
	for i, part := range strings.Split(s, "\n") {
		if i > 0 {
			f.verbatim = true
			f.newline()
		}
		f.write(part)
	}
}

func (f *flattener) walk(n *html.Node) {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		switch c.Type {
		case html.TextNode:
			f.text(c.Data)
		case html.ElementNode:
			switch c.Data {
			case "br":
				f.newline()
			case "script", "style":
				// not rendered
			case "li":
				f.newline()
				f.write("• ")
				f.walk(c)
				f.newline()
			case "pre":
				f.newline()
				f.pre++
				f.walk(c)
				f.pre--
				f.newline()
			case "p", "div", "h1", "h2", "h3", "h4", "h5", "h6", "ul", "ol", "blockquote":
				f.newline()
				f.walk(c)
				f.newline()
			default:
				f.walk(c)
			}
		}
	}
}
