package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/aretw0/nfasim"
	"github.com/aretw0/nfasim/internal/presentation/tui"
	"github.com/aretw0/nfasim/pkg/domain"
	"github.com/aretw0/nfasim/pkg/ports"
	"github.com/aretw0/nfasim/pkg/report"
	"github.com/google/uuid"
)

// RunOptions configures a run session.
type RunOptions struct {
	Path string
	// Inputs are raw word lines; when empty the definition's own inputs are used,
	// and when it has none words are read from Stdin.
	Inputs []string
	Policy domain.UnknownSymbolPolicy
	Format report.Format
	Color  bool
	// Store, when set, keeps a record of every run.
	Store ports.RunStore

	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// Run simulates every input word of a definition and writes the traces to
// opts.Stdout. It returns the number of accepted words; a reject is not an error.
func Run(ctx context.Context, opts RunOptions, logger *slog.Logger) (int, error) {
	def, err := LoadDefinition(ctx, opts.Path)
	if err != nil {
		return 0, err
	}
	sim, err := nfasim.New(def, SimulatorOptions(opts.Policy, logger, nil)...)
	if err != nil {
		return 0, err
	}

	out, err := report.NewWriter(opts.Format, opts.Stdout)
	if err != nil {
		return 0, err
	}
	if tw, ok := out.(*report.TextWriter); ok {
		if opts.Color || isTerminal(opts.Stdout) {
			tw.StyleVerdict(tui.VerdictStyle(colorProfile(opts.Stdout, opts.Color)))
		}
	}
	if opts.Store != nil {
		out = &recordingWriter{next: out, store: opts.Store, ctx: ctx, stderr: opts.Stderr}
	}

	words, err := collectWords(opts.Inputs, def.Inputs)
	if err != nil {
		return 0, err
	}
	if len(words) == 0 {
		runner := nfasim.NewRunner()
		runner.Input = opts.Stdin
		runner.Output = opts.Stdout
		runner.Headless = !isTerminal(opts.Stdin)
		runner.Writer = out
		return runner.Run(ctx, sim)
	}

	logger.Debug("running words", "automaton", sim.Name, "count", len(words))
	results, err := sim.RunBatch(ctx, words)
	if err != nil {
		return 0, err
	}
	accepted := 0
	for _, res := range results {
		if res.Accepted {
			accepted++
		}
		if err := out.Write(sim.Automaton(), res); err != nil {
			return accepted, fmt.Errorf("output error: %w", err)
		}
	}
	return accepted, nil
}

// collectWords parses explicit input lines, falling back to the definition's inputs.
// It returns an empty list when neither carries a word.
func collectWords(lines []string, fallback [][]string) ([][]string, error) {
	if len(lines) == 0 {
		return fallback, nil
	}
	words := make([][]string, 0, len(lines))
	for _, line := range lines {
		word, err := report.ParseWord(line)
		if err != nil {
			return nil, fmt.Errorf("input %q: %w", line, err)
		}
		words = append(words, word)
	}
	return words, nil
}

// recordingWriter saves every written result before passing it on.
type recordingWriter struct {
	next   report.Writer
	store  ports.RunStore
	ctx    context.Context
	stderr io.Writer
}

func (w *recordingWriter) Write(a *domain.Automaton, res *domain.Result) error {
	input := make([]string, len(res.Trace))
	for i, snap := range res.Trace {
		input[i] = snap.Symbol
	}
	rec := report.Record(uuid.NewString(), a, input, res)
	if err := w.store.Save(w.ctx, rec); err != nil {
		return fmt.Errorf("failed to save run: %w", err)
	}
	if w.stderr != nil {
		fmt.Fprintf(w.stderr, ">>> run saved as %s\n", rec.ID)
	}
	return w.next.Write(a, res)
}
