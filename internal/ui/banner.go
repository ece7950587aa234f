package ui

import (
	"fmt"
	"io"
)

// Tagline is shown next to the version
const Tagline = "declare a palette once, stamp it everywhere"

// FormatBannerLine returns the version/tagline line
func FormatBannerLine(version string) string {
	if IsRich() {
		return fmt.Sprintf("%s %s %s %s",
			badge("◆ VENEER"),
			Info("%s", version),
			Muted("—"),
			AccentDim("%s", Tagline))
	}
	return fmt.Sprintf("◆ VENEER %s — %s", version, Tagline)
}

// PrintBanner writes the version line to w
func PrintBanner(w io.Writer, version string) {
	fmt.Fprintln(w, FormatBannerLine(version))
}
