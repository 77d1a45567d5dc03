package tui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

var bannerLines = []string{
	"  ____  ____  _   _ ",
	" |  _ \\|  _ \\| \\ | |",
	" | |_) | |_) |  \\| |",
	" |  _ <|  __/| |\\  |",
	" |_| \\_\\_|   |_| \\_|",
}

// Subtle gradient (Indigo/Violet/Pink), one color per line.
var bannerColors = []string{"#818cf8", "#a78bfa", "#c084fc", "#e879f9", "#f472b6"}

// PrintBanner writes the ASCII art banner followed by the version line.
func PrintBanner(w io.Writer, p termenv.Profile, version string) {
	fmt.Fprintln(w)
	for i, line := range bannerLines {
		fmt.Fprintln(w, p.String(line).Foreground(p.Color(bannerColors[i])))
	}
	fmt.Fprintln(w, p.String(" v"+version).Faint())
	fmt.Fprintln(w)
}
