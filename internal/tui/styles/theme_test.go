package styles

import (
	"image/color"
	"reflect"
	"strings"
	"testing"
)

func TestManager_SetTheme(t *testing.T) {
	m := NewManager("missing")
	if m.Current().Name != "confirm" {
		t.Errorf("fallback theme = %s, want confirm", m.Current().Name)
	}
	if err := m.SetTheme("dark"); err != nil {
		t.Fatalf("SetTheme(dark) error = %v", err)
	}
	if m.Current().Name != "dark" {
		t.Errorf("Current() = %s, want dark", m.Current().Name)
	}
	if err := m.SetTheme("neon"); err == nil {
		t.Error("SetTheme(neon) should fail")
	}
	if got := m.List(); !reflect.DeepEqual(got, []string{"confirm", "dark"}) {
		t.Errorf("List() = %v", got)
	}
}

func TestBlendColors(t *testing.T) {
	red := ParseHex("#ff0000")
	blue := ParseHex("#0000ff")

	if got := blendColors(0, red, blue); got != nil {
		t.Errorf("blendColors(0) = %v, want nil", got)
	}
	if got := blendColors(1, red, blue); len(got) != 1 || got[0] != red {
		t.Errorf("blendColors(1) = %v, want [red]", got)
	}

	if got := blendColors(5, red, blue); len(got) != 5 {
		t.Fatalf("len = %d, want 5", len(got))
	}
}

func TestApplyGradient(t *testing.T) {
	if ApplyGradient("", ParseHex("#000000"), ParseHex("#ffffff"), false) != "" {
		t.Error("empty text should render empty")
	}
	out := ApplyGradient("Confirm", ParseHex("#000000"), ParseHex("#ffffff"), true)
	for _, r := range "Confirm" {
		if !strings.ContainsRune(out, r) {
			t.Errorf("gradient output lost %q: %q", r, out)
		}
	}
}

func TestParseHex(t *testing.T) {
	got := ParseHex("#F39C12")
	want := color.RGBA{R: 0xf3, G: 0x9c, B: 0x12, A: 255}
	if got != want {
		t.Errorf("ParseHex() = %v, want %v", got, want)
	}
}

func TestParseHex_ShortAndMalformed(t *testing.T) {
	if got, want := ParseHex("#fff"), (color.RGBA{R: 255, G: 255, B: 255, A: 255}); got != want {
		t.Errorf("ParseHex(#fff) = %v, want %v", got, want)
	}
	if got, want := ParseHex("orange"), (color.RGBA{A: 255}); got != want {
		t.Errorf("ParseHex(orange) = %v, want %v", got, want)
	}
}

func TestColorToHex(t *testing.T) {
	if got := colorToHex(ParseHex("#c0392b")); got != "#c0392b" {
		t.Errorf("colorToHex() = %q, want #c0392b", got)
	}
}

func TestRenderMarkdown(t *testing.T) {
	out := RenderMarkdown("## Dialogs\n\n- **1** two-way", 60)
	for _, want := range []string{"Dialogs", "two-way"} {
		if !strings.Contains(out, want) {
			t.Errorf("RenderMarkdown() missing %q: %q", want, out)
		}
	}
}
