package styles

// NewConfirmTheme creates the default theme: slate background, warm accents
func NewConfirmTheme() *Theme {
	return &Theme{
		Name:   "confirm",
		IsDark: true,

		Primary:   ParseHex("#C0392B"), // Fire red
		Secondary: ParseHex("#F4D03F"), // Bright yellow
		Accent:    ParseHex("#F39C12"), // Golden orange

		BgBase:    ParseHex("#2C3E50"), // Slate gray base
		BgSubtle:  ParseHex("#3D566E"),
		BgOverlay: ParseHex("#4A6278"),

		FgBase:     ParseHex("#f5f6fa"),
		FgMuted:    ParseHex("#a0a0a0"),
		FgSubtle:   ParseHex("#6F6F70"),
		FgInverted: ParseHex("#1e1e1e"),

		Border:      ParseHex("#5D6D7E"),
		BorderFocus: ParseHex("#F39C12"),

		Success: ParseHex("#27AE60"),
		Error:   ParseHex("#E74C3C"),
		Warning: ParseHex("#F39C12"),
		Info:    ParseHex("#3498DB"),
	}
}

// NewDarkTheme creates a cooler, low contrast theme
func NewDarkTheme() *Theme {
	return &Theme{
		Name:   "dark",
		IsDark: true,

		Primary:   ParseHex("#60a5fa"), // Sky blue
		Secondary: ParseHex("#a78bfa"), // Violet
		Accent:    ParseHex("#34d399"), // Emerald

		BgBase:    ParseHex("#0f172a"), // Slate 900
		BgSubtle:  ParseHex("#334155"), // Slate 700
		BgOverlay: ParseHex("#475569"), // Slate 600

		FgBase:     ParseHex("#f8fafc"),
		FgMuted:    ParseHex("#cbd5e1"),
		FgSubtle:   ParseHex("#94a3b8"),
		FgInverted: ParseHex("#0f172a"),

		Border:      ParseHex("#334155"),
		BorderFocus: ParseHex("#60a5fa"),

		Success: ParseHex("#34d399"),
		Error:   ParseHex("#f87171"),
		Warning: ParseHex("#fbbf24"),
		Info:    ParseHex("#60a5fa"),
	}
}
