package sizing

import (
	"errors"
	"strings"
	"testing"

	"github.com/billie-coop/confirm/dialog/content"
)

func TestEstimate(t *testing.T) {
	cfg := DefaultConfig()
	chrome := cfg.ButtonAreaHeight + cfg.VerticalMargin

	tests := []struct {
		name    string
		message string
		title   string
		mode    content.Mode
		want    Dimensions
	}{
		{
			name: "empty_message",
			mode: content.TextWithNewlines,
			want: Dimensions{Width: cfg.MinWidth + cfg.HorizontalMargin, Height: cfg.MinHeight + chrome},
		},
		{
			name:    "short_question",
			message: "This is the question?",
			mode:    content.TextWithNewlines,
			want:    Dimensions{Width: cfg.MinWidth + cfg.HorizontalMargin, Height: cfg.MinHeight + chrome},
		},
		{
			name:    "title_adds_rows",
			message: "This is the question?",
			title:   "Delete",
			mode:    content.TextWithNewlines,
			want:    Dimensions{Width: 32, Height: cfg.MinHeight + cfg.TitleExtraRows + chrome},
		},
		{
			// 35 chars, one row: width follows the text
			name:    "width_follows_text",
			message: strings.Repeat("x", 35),
			mode:    content.Text,
			want:    Dimensions{Width: 35 + cfg.HorizontalMargin, Height: 2 + chrome},
		},
		{
			// 150 chars: ceil(150/56) = 3 rows, ceil(4.8) = 5
			name:    "wraps_short_regime",
			message: strings.Repeat("x", 150),
			mode:    content.Text,
			want:    Dimensions{Width: 44, Height: 5 + chrome},
		},
		{
			// 1000 chars: ceil(1000/112) = 9 rows, ceil(14.4) = 15
			name:    "long_regime",
			message: strings.Repeat("x", 1000),
			mode:    content.Text,
			want:    Dimensions{Width: 84, Height: 15 + chrome},
		},
		{
			name:    "clamped_at_max_height",
			message: strings.Repeat("x", 10000),
			mode:    content.Text,
			want:    Dimensions{Width: 84, Height: cfg.MaxHeight + chrome},
		},
		{
			// 1 wrap row + 2 newlines + 1 paragraph end = 4 rows, ceil(6.4) = 7
			name:    "newlines_and_paragraphs",
			message: "a\nb\n<p>c</p>",
			mode:    content.TextWithNewlines,
			want:    Dimensions{Width: 32, Height: 7 + chrome},
		},
		{
			name:    "newlines_ignored_outside_text_with_newlines",
			message: "a\nb\n<p>c</p>",
			mode:    content.HTML,
			want:    Dimensions{Width: 32, Height: 2 + chrome},
		},
		{
			name:    "paragraph_tag_case_sensitive",
			message: "a</P>",
			mode:    content.TextWithNewlines,
			want:    Dimensions{Width: 32, Height: 2 + chrome},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Estimate(tt.message, tt.title, tt.mode, cfg)
			if got != tt.want {
				t.Errorf("Estimate() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEstimate_MinimumFloor(t *testing.T) {
	cfg := DefaultConfig()
	modes := []content.Mode{content.TextWithNewlines, content.Text, content.Preformatted, content.HTML}

	for _, mode := range modes {
		got := Estimate("", "", mode, cfg)
		if got.Width < cfg.MinWidth {
			t.Errorf("mode %v: width %v below min %v", mode, got.Width, cfg.MinWidth)
		}
		if min := cfg.MinHeight + cfg.ButtonAreaHeight + cfg.VerticalMargin; got.Height < min {
			t.Errorf("mode %v: height %v below min %v", mode, got.Height, min)
		}
	}
}

func TestEstimate_Monotonic(t *testing.T) {
	cfg := DefaultConfig()
	upper := cfg.MaxHeight + cfg.ButtonAreaHeight + cfg.VerticalMargin

	prev := 0.0
	for n := 0; n <= 5000; n += 7 {
		got := Estimate(strings.Repeat("m", n), "", content.TextWithNewlines, cfg)
		if got.Height < prev {
			t.Fatalf("height decreased at length %d: %v < %v", n, got.Height, prev)
		}
		if got.Height > upper {
			t.Fatalf("height %v at length %d exceeds %v", got.Height, n, upper)
		}
		if got.Width > cfg.MaxWidthLong+cfg.HorizontalMargin {
			t.Fatalf("width %v at length %d exceeds long max", got.Width, n)
		}
		prev = got.Height
	}
}

func TestEstimate_ThresholdBoundary(t *testing.T) {
	cfg := DefaultConfig()
	atThreshold := Estimate(strings.Repeat("x", cfg.LongMessageThreshold), "", content.Text, cfg)
	overThreshold := Estimate(strings.Repeat("x", cfg.LongMessageThreshold+1), "", content.Text, cfg)

	if atThreshold.Width != cfg.MaxWidthShort+cfg.HorizontalMargin {
		t.Errorf("width at threshold = %v, want short max", atThreshold.Width)
	}
	if overThreshold.Width != cfg.MaxWidthLong+cfg.HorizontalMargin {
		t.Errorf("width over threshold = %v, want long max", overThreshold.Width)
	}
	if overThreshold.Height < atThreshold.Height {
		t.Errorf("height shrank across threshold: %v < %v", overThreshold.Height, atThreshold.Height)
	}
}

func TestEstimate_NewlineSensitivity(t *testing.T) {
	cfg := DefaultConfig()
	withNewlines := Estimate("a\nb\nc", "", content.TextWithNewlines, cfg)
	withSpaces := Estimate("a b c", "", content.TextWithNewlines, cfg)

	if withNewlines.Height <= withSpaces.Height {
		t.Errorf("newline height %v should exceed %v", withNewlines.Height, withSpaces.Height)
	}
}

func TestEstimate_Graphemes(t *testing.T) {
	cfg := DefaultConfig()
	// 30 flags, each a single grapheme made of two code points
	flags := strings.Repeat("🇫🇮", 30)
	got := Estimate(flags, "", content.Text, cfg)
	if got.Width != 30+cfg.HorizontalMargin {
		t.Errorf("width = %v, want %v", got.Width, 30+cfg.HorizontalMargin)
	}
}

func TestEstimate_Deterministic(t *testing.T) {
	cfg := DefaultConfig()
	msg := strings.Repeat("Are you sure?\n", 12)
	first := Estimate(msg, "Title", content.TextWithNewlines, cfg)
	for i := 0; i < 10; i++ {
		if got := Estimate(msg, "Title", content.TextWithNewlines, cfg); got != first {
			t.Fatalf("Estimate() not deterministic: %v != %v", got, first)
		}
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(*Config) {}, false},
		{"zero_min_width", func(c *Config) { c.MinWidth = 0 }, true},
		{"negative_char_height", func(c *Config) { c.CharHeight = -1 }, true},
		{"zero_threshold", func(c *Config) { c.LongMessageThreshold = 0 }, true},
		{"inverted_widths", func(c *Config) { c.MinWidth = 50 }, true},
		{"short_wider_than_long", func(c *Config) { c.MaxWidthShort = 100 }, true},
		{"inverted_heights", func(c *Config) { c.MinHeight = 41 }, true},
		{"negative_margin", func(c *Config) { c.VerticalMargin = -2 }, true},
		{"zero_margins", func(c *Config) {
			c.HorizontalMargin = 0
			c.VerticalMargin = 0
			c.ButtonAreaHeight = 0
			c.TitleExtraRows = 0
		}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)

			_, err := NewConfig(cfg)
			if tt.wantErr {
				if !errors.Is(err, ErrMalformedConfig) {
					t.Errorf("NewConfig() error = %v, want ErrMalformedConfig", err)
				}
				return
			}
			if err != nil {
				t.Errorf("NewConfig() unexpected error: %v", err)
			}
		})
	}
}

func TestDimensions_String(t *testing.T) {
	tests := []struct {
		dim  Dimensions
		want string
	}{
		{Dimensions{Width: 32, Height: 10}, "32ch x 10em"},
		{Dimensions{Width: 32.25, Height: 10.06}, "32.3ch x 10.1em"},
		{Dimensions{Width: 0, Height: 0.04}, "0ch x 0em"},
	}
	for _, tt := range tests {
		if got := tt.dim.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}
