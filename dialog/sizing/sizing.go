// Package sizing approximates how large a confirmation dialog has to be to
// fit its message, without doing any real text shaping.
//
// Widths are in text-cell units ("ch") and heights in line-height units
// ("em"). The host is expected to make the message area scrollable, since
// the estimate is clamped and can be smaller than the rendered text.
package sizing

import (
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/billie-coop/confirm/dialog/content"
)

// ErrMalformedConfig is returned when thresholds are non-positive or inverted.
var ErrMalformedConfig = errors.New("malformed sizing config")

// Config holds the thresholds and chrome sizes used by Estimate.
type Config struct {
	MinWidth      float64 `json:"min_width" yaml:"min_width"`
	MaxWidthShort float64 `json:"max_width_short" yaml:"max_width_short"`
	MaxWidthLong  float64 `json:"max_width_long" yaml:"max_width_long"`
	MinHeight     float64 `json:"min_height" yaml:"min_height"`
	MaxHeight     float64 `json:"max_height" yaml:"max_height"`

	// Approximate glyph cell.
	CharWidth  float64 `json:"char_width" yaml:"char_width"`
	CharHeight float64 `json:"char_height" yaml:"char_height"`

	// Messages longer than this many characters use MaxWidthLong.
	LongMessageThreshold int `json:"long_message_threshold" yaml:"long_message_threshold"`
	// A line fits this much more text than CharWidth suggests.
	OverflowSlack float64 `json:"overflow_slack" yaml:"overflow_slack"`

	TitleExtraRows   float64 `json:"title_extra_rows" yaml:"title_extra_rows"`
	ButtonAreaHeight float64 `json:"button_area_height" yaml:"button_area_height"`
	VerticalMargin   float64 `json:"vertical_margin" yaml:"vertical_margin"`
	HorizontalMargin float64 `json:"horizontal_margin" yaml:"horizontal_margin"`
}

// DefaultConfig returns the system wide defaults.
func DefaultConfig() Config {
	const maxWidthShort = 40
	return Config{
		MinWidth:             28,
		MaxWidthShort:        maxWidthShort,
		MaxWidthLong:         80,
		MinHeight:            2,
		MaxHeight:            40,
		CharWidth:            1,
		CharHeight:           1.6,
		LongMessageThreshold: int(math.Ceil(maxWidthShort * 5)),
		OverflowSlack:        1.40,
		TitleExtraRows:       2,
		ButtonAreaHeight:     5,
		VerticalMargin:       3,
		HorizontalMargin:     4,
	}
}

// NewConfig validates cfg and returns it.
func NewConfig(cfg Config) (Config, error) {
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports the first threshold that is non-positive or inverted.
func (c Config) Validate() error {
	positive := []struct {
		name  string
		value float64
	}{
		{"min_width", c.MinWidth},
		{"max_width_short", c.MaxWidthShort},
		{"max_width_long", c.MaxWidthLong},
		{"min_height", c.MinHeight},
		{"max_height", c.MaxHeight},
		{"char_width", c.CharWidth},
		{"char_height", c.CharHeight},
		{"long_message_threshold", float64(c.LongMessageThreshold)},
		{"overflow_slack", c.OverflowSlack},
	}
	for _, p := range positive {
		if !(p.value > 0) || math.IsInf(p.value, 0) {
			return fmt.Errorf("%w: %s must be positive, got %v", ErrMalformedConfig, p.name, p.value)
		}
	}

	nonNegative := []struct {
		name  string
		value float64
	}{
		{"title_extra_rows", c.TitleExtraRows},
		{"button_area_height", c.ButtonAreaHeight},
		{"vertical_margin", c.VerticalMargin},
		{"horizontal_margin", c.HorizontalMargin},
	}
	for _, p := range nonNegative {
		if !(p.value >= 0) || math.IsInf(p.value, 0) {
			return fmt.Errorf("%w: %s must not be negative, got %v", ErrMalformedConfig, p.name, p.value)
		}
	}

	if c.MinWidth > c.MaxWidthShort {
		return fmt.Errorf("%w: min_width %v exceeds max_width_short %v", ErrMalformedConfig, c.MinWidth, c.MaxWidthShort)
	}
	if c.MaxWidthShort > c.MaxWidthLong {
		return fmt.Errorf("%w: max_width_short %v exceeds max_width_long %v", ErrMalformedConfig, c.MaxWidthShort, c.MaxWidthLong)
	}
	if c.MinHeight > c.MaxHeight {
		return fmt.Errorf("%w: min_height %v exceeds max_height %v", ErrMalformedConfig, c.MinHeight, c.MaxHeight)
	}
	return nil
}

// Dimensions is a recommended dialog size.
type Dimensions struct {
	Width  float64 // ch
	Height float64 // em
}

func (d Dimensions) String() string {
	return FormatUnit(d.Width, "ch") + " x " + FormatUnit(d.Height, "em")
}

// FormatUnit formats n with at most one fraction digit followed by unit.
func FormatUnit(n float64, unit string) string {
	return strconv.FormatFloat(math.Round(n*10)/10, 'f', -1, 64) + unit
}

// Estimate returns the size that comfortably fits message. An empty title
// adds no rows. Estimate never fails; cfg is assumed to be valid.
func Estimate(message, title string, mode content.Mode, cfg Config) Dimensions {
	length := content.Length(message)

	maxWidth := cfg.MaxWidthShort
	long := length > cfg.LongMessageThreshold
	if long {
		maxWidth = cfg.MaxWidthLong
	}

	rawLength := cfg.CharWidth * float64(length)
	rows := math.Ceil(rawLength / (maxWidth * cfg.OverflowSlack))
	if long {
		// Switching to the wider regime must not make the dialog shorter.
		threshold := cfg.CharWidth * float64(cfg.LongMessageThreshold)
		rows = math.Max(rows, math.Ceil(threshold/(cfg.MaxWidthShort*cfg.OverflowSlack)))
	}

	rows += float64(content.ExtraRows(message, mode))

	width := math.Max(math.Min(maxWidth, rawLength), cfg.MinWidth)
	height := math.Max(math.Ceil(math.Min(cfg.MaxHeight, rows*cfg.CharHeight)), cfg.MinHeight)

	if title != "" {
		height += cfg.TitleExtraRows
	}

	return Dimensions{
		Width:  width + cfg.HorizontalMargin,
		Height: height + cfg.ButtonAreaHeight + cfg.VerticalMargin,
	}
}
