package tui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

var bannerLines = []struct {
	text, color string
}{
	{"              __                _", "#34d399"},
	{"   _ __  / _| __ _ ___(_)_ __ ___", "#2dd4bf"},
	{"  | '_ \\| |_ / _` / __| | '_ ` _ \\", "#22d3ee"},
	{"  | | | |  _| (_| \\__ \\ | | | | | |", "#38bdf8"},
	{"  |_| |_|_|  \\__,_|___/_|_| |_| |_|", "#60a5fa"},
}

// PrintBanner writes the nfasim ASCII art banner to w in the colours p supports.
func PrintBanner(w io.Writer, p termenv.Profile) {
	fmt.Fprintln(w)
	for _, line := range bannerLines {
		fmt.Fprintln(w, p.String(line.text).Foreground(p.Color(line.color)))
	}
	fmt.Fprintln(w)
}
