package content

import "testing"

func TestFormat(t *testing.T) {
	tests := []struct {
		name  string
		input string
		mode  Mode
		want  string
	}{
		{"newlines_kept", "first\nsecond", TextWithNewlines, "first\nsecond"},
		{"crlf_normalized", "first\r\nsecond", TextWithNewlines, "first\nsecond"},
		{"text_collapses", "  first\n\n second  ", Text, "first second"},
		{"preformatted_verbatim", "  a\n\tb ", Preformatted, "  a\n\tb "},
		{"html_inline", "<b>Delete</b> the file?", HTML, "Delete the file?"},
		{"html_paragraphs", "<p>Hello</p><p>World</p>", HTML, "Hello\n\nWorld"},
		{"html_break", "one<br>two", HTML, "one\ntwo"},
		{"html_list", "<ul><li>a</li><li>b</li></ul>", HTML, "• a\n\n• b"},
		{"html_script_dropped", "hi<script>alert(1)</script>", HTML, "hi"},
		{"html_source_newlines_collapse", "one\ntwo  three", HTML, "one two three"},
		{"html_pre_keeps_alignment", "<p>Status:</p><pre>  M  a.go\n ??  b.txt</pre>", HTML, "Status:\n\n  M  a.go\n ??  b.txt"},
		{"html_pre_keeps_blank_lines", "<pre>x  y\n\n  z</pre>", HTML, "x  y\n\n  z"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Format(tt.input, tt.mode); got != tt.want {
				t.Errorf("Format(%q, %v) = %q, want %q", tt.input, tt.mode, got, tt.want)
			}
		})
	}
}

func TestFormatHTML(t *testing.T) {
	tests := []struct {
		input string
		mode  Mode
		want  string
	}{
		{"a<b\nc", TextWithNewlines, "a&lt;b<br />c"},
		{"a<b\nc", Text, "a&lt;b\nc"},
		{"a<b", Preformatted, "<pre>a&lt;b</pre>"},
		{"<i>a</i>", HTML, "<i>a</i>"},
	}
	for _, tt := range tests {
		if got := FormatHTML(tt.input, tt.mode); got != tt.want {
			t.Errorf("FormatHTML(%q, %v) = %q, want %q", tt.input, tt.mode, got, tt.want)
		}
	}
}

func TestExtraRows(t *testing.T) {
	tests := []struct {
		input string
		mode  Mode
		want  int
	}{
		{"", TextWithNewlines, 0},
		{"a\nb\nc", TextWithNewlines, 2},
		{"<p>a</p><p>b</p>", TextWithNewlines, 2},
		{"<p>a</p>\n", TextWithNewlines, 2},
		{"</P>", TextWithNewlines, 0},
		{"a\nb", Text, 0},
		{"a\nb", HTML, 0},
	}
	for _, tt := range tests {
		if got := ExtraRows(tt.input, tt.mode); got != tt.want {
			t.Errorf("ExtraRows(%q, %v) = %d, want %d", tt.input, tt.mode, got, tt.want)
		}
	}
}

func TestLength(t *testing.T) {
	tests := []struct {
		input string
		want  int
	}{
		{"", 0},
		{"This is the question?", 21},
		{"héllo", 5},
		{"👍🏽👍🏽", 2},
	}
	for _, tt := range tests {
		if got := Length(tt.input); got != tt.want {
			t.Errorf("Length(%q) = %d, want %d", tt.input, got, tt.want)
		}
	}
}

func TestParseMode(t *testing.T) {
	for _, m := range []Mode{TextWithNewlines, Text, Preformatted, HTML} {
		got, ok := ParseMode(m.String())
		if !ok || got != m {
			t.Errorf("ParseMode(%q) = %v, %v", m.String(), got, ok)
		}
	}
	if _, ok := ParseMode("markdown"); ok {
		t.Error("ParseMode(markdown) should fail")
	}
}
