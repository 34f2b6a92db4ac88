package cli

import (
	"io"
	"os"

	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// isTerminal reports whether v is an *os.File attached to a terminal.
func isTerminal(v any) bool {
	f, ok := v.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// colorProfile picks the colour profile for w.
// force enables ANSI colours even when w is not a terminal.
func colorProfile(w io.Writer, force bool) termenv.Profile {
	if isTerminal(w) {
		return termenv.NewOutput(w).EnvColorProfile()
	}
	if force {
		return termenv.ANSI
	}
	return termenv.Ascii
}
