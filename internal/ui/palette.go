package ui

// CLI_PALETTE is veneer's own output palette
var CLI_PALETTE = struct {
	// Primary accent colors
	Accent    string // #2FA98C - Headings, product name
	AccentDim string // #1F7A65 - Muted accent

	// Semantic colors
	Info    string // #5B9BFF - Informational messages
	Success string // #2FBF71 - Success/completion
	Warn    string // #FFB020 - Warnings
	Error   string // #E23D2D - Errors

	// Neutral
	Muted string // #8B7F77 - Secondary text, hints, metadata
}{
	Accent:    "#2FA98C",
	AccentDim: "#1F7A65",
	Info:      "#5B9BFF",
	Success:   "#2FBF71",
	Warn:      "#FFB020",
	Error:     "#E23D2D",
	Muted:     "#8B7F77",
}
