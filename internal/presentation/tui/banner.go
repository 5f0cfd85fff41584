package tui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

// PrintBanner writes the branchtale banner and version to w.
func PrintBanner(w io.Writer, profile termenv.Profile, version string) {
	// Indigo to rose, one shade per line.
	lines := []struct{ text, color string }{
		{" _                          _     _        _      ", "#818cf8"},
		{"| |__  _ __ __ _ _ __   ___| |__ | |_ __ _| | ___ ", "#a78bfa"},
		{"| '_ \\| '__/ _` | '_ \\ / __| '_ \\| __/ _` | |/ _ \\", "#c084fc"},
		{"| |_) | | | (_| | | | | (__| | | | || (_| | |  __/", "#e879f9"},
		{"|_.__/|_|  \\__,_|_| |_|\\___|_| |_|\\__\\__,_|_|\\___|", "#f472b6"},
	}

	fmt.Fprintln(w)
	for _, l := range lines {
		fmt.Fprintln(w, profile.String(l.text).Foreground(profile.Color(l.color)))
	}
	if version != "" {
		fmt.Fprintln(w, profile.String("  v"+version).Foreground(profile.Color("#fb7185")).Faint())
	}
	fmt.Fprintln(w)
}
