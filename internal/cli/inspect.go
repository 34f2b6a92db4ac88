package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/aretw0/nfasim"
	"github.com/aretw0/nfasim/internal/presentation/graph"
	"github.com/aretw0/nfasim/internal/presentation/tui"
	engine "github.com/aretw0/nfasim/internal/runtime"
	"github.com/aretw0/nfasim/internal/validator"
	"github.com/aretw0/nfasim/pkg/domain"
	"github.com/aretw0/nfasim/pkg/report"
)

// Validate loads and compiles the automaton at path, then reports structural
// findings to w. It fails on construction problems or when no input can be accepted.
func Validate(ctx context.Context, path string, w io.Writer) error {
	a, err := loadAutomaton(ctx, path)
	if err != nil {
		return err
	}

	rep := validator.Analyze(a)
	for _, warning := range rep.Warnings() {
		fmt.Fprintf(w, "warning: %s\n", warning)
	}
	if err := rep.Err(); err != nil {
		return err
	}
	fmt.Fprintln(w, "Automaton is valid! ✅")
	return nil
}

// Graph writes a Mermaid flowchart of the automaton at path.
// When input is not empty the run is simulated and drawn as an overlay.
func Graph(ctx context.Context, path, input string, policy domain.UnknownSymbolPolicy, w io.Writer) error {
	a, err := loadAutomaton(ctx, path)
	if err != nil {
		return err
	}

	var overlay *graph.GraphOverlay
	if input != "" {
		word, err := report.ParseWord(input)
		if err != nil {
			return err
		}
		res, err := nfasim.FromAutomaton(a, nfasim.WithUnknownSymbolPolicy(policy)).Run(ctx, word)
		if err != nil {
			return err
		}
		initial := engine.EpsilonClosure(a, domain.NewStateSet(a.Start()))
		overlay = graph.OverlayFromResult(a, initial, res)
	}

	_, err = io.WriteString(w, graph.GenerateMermaid(a, overlay))
	return err
}

// Describe writes a Markdown summary of the automaton at path, rendered for the
// terminal unless plain is set.
func Describe(ctx context.Context, path string, plain bool, w io.Writer) error {
	a, err := loadAutomaton(ctx, path)
	if err != nil {
		return err
	}

	render, err := tui.NewRenderer(plain || !isTerminal(w))
	if err != nil {
		return err
	}
	out, err := render(tui.Describe(a))
	if err != nil {
		return fmt.Errorf("failed to render description: %w", err)
	}
	_, err = io.WriteString(w, out)
	return err
}

func loadAutomaton(ctx context.Context, path string) (*domain.Automaton, error) {
	def, err := LoadDefinition(ctx, path)
	if err != nil {
		return nil, err
	}
	return domain.NewAutomaton(def)
}
