package tui

import (
	"github.com/aretw0/nfasim/pkg/domain"
	"github.com/muesli/termenv"
)

// Verdict colours a verdict for terminal output: accept in green, reject in red.
// Under the Ascii profile the text is returned unchanged.
func Verdict(p termenv.Profile, verdict string) string {
	color := "#f87171"
	if verdict == domain.VerdictAccept {
		color = "#4ade80"
	}
	return p.String(verdict).Foreground(p.Color(color)).Bold().String()
}

// VerdictStyle returns Verdict bound to p, ready for report.TextWriter.StyleVerdict.
func VerdictStyle(p termenv.Profile) func(string) string {
	return func(verdict string) string {
		return Verdict(p, verdict)
	}
}
