package tui

import (
	"fmt"

	"github.com/charmbracelet/glamour"
)

// NewRenderer returns a function that renders markdown using glamour.
// Plain rendering uses the "notty" style, which emits no escape sequences;
// otherwise the style follows the terminal background.
func NewRenderer(plain bool) (func(string) (string, error), error) {
	style := glamour.WithAutoStyle()
	if plain {
		style = glamour.WithStandardStyle("notty")
	}

	r, err := glamour.NewTermRenderer(
		style,
		glamour.WithWordWrap(100),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create markdown renderer: %w", err)
	}

	return func(markdown string) (string, error) {
		return r.Render(markdown)
	}, nil
}
