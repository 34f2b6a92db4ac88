package tui

import (
	"fmt"
	"strings"

	"github.com/aretw0/nfasim/pkg/domain"
)

// Describe summarizes an automaton as Markdown: alphabet, states with their
// roles, and the transition table.
func Describe(a *domain.Automaton) string {
	var sb strings.Builder

	name := a.Name()
	if name == "" {
		name = "Automaton"
	}
	fmt.Fprintf(&sb, "# %s\n\n", name)
	if d := a.Description(); d != "" {
		sb.WriteString(d)
		sb.WriteString("\n\n")
	}

	symbols := make([]string, 0, len(a.Alphabet()))
	for _, s := range a.Alphabet() {
		symbols = append(symbols, "`"+s+"`")
	}
	fmt.Fprintf(&sb, "- **Alphabet:** %s\n", strings.Join(symbols, ", "))
	fmt.Fprintf(&sb, "- **Epsilon marker:** `%s`\n", a.Epsilon())
	fmt.Fprintf(&sb, "- **States:** %d, **Transitions:** %d\n\n", a.Len(), len(a.Transitions()))

	sb.WriteString("## States\n\n")
	sb.WriteString("| # | State | Role |\n|---|---|---|\n")
	for id := domain.StateID(0); int(id) < a.Len(); id++ {
		var roles []string
		if id == a.Start() {
			roles = append(roles, "start")
		}
		if a.IsAccept(id) {
			roles = append(roles, "accept")
		}
		fmt.Fprintf(&sb, "| %d | %s | %s |\n", id, cell(a.Label(id)), strings.Join(roles, ", "))
	}

	sb.WriteString("\n## Transitions\n\n")
	if len(a.Transitions()) == 0 {
		sb.WriteString("_none_\n")
		return sb.String()
	}
	sb.WriteString("| From | Symbol | To |\n|---|---|---|\n")
	for _, t := range a.Transitions() {
		symbol := t.Symbol
		if symbol == a.Epsilon() {
			symbol = "ε"
		}
		fmt.Fprintf(&sb, "| %s | %s | %s |\n", cell(t.From), cell(symbol), cell(t.To))
	}
	return sb.String()
}

func cell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}
