package nfasim

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/aretw0/nfasim/pkg/report"
)

// Runner feeds words read line by line from Input to a Simulator and writes each
// result to Output. This allows for easy testing and integration with different
// frontends (CLI, pipes, files).
type Runner struct {
	Input    io.Reader
	Output   io.Writer
	Headless bool
	Writer   report.Writer
}

// NewRunner creates a Runner. Input and Output must be set before Run.
func NewRunner() *Runner {
	return &Runner{}
}

// Run reads one word per line until EOF. Each line is split into symbols with
// report.ParseWord. In interactive mode a prompt is shown and "exit" or "quit"
// ends the loop. It returns the number of accepted words.
func (r *Runner) Run(ctx context.Context, sim *Simulator) (int, error) {
	if r.Input == nil {
		return 0, fmt.Errorf("input reader must be set (use os.Stdin)")
	}
	if r.Output == nil {
		return 0, fmt.Errorf("output writer must be set (use os.Stdout)")
	}
	out := r.Writer
	if out == nil {
		out = report.NewTextWriter(r.Output)
	}

	lineReader := bufio.NewReader(r.Input)
	accepted := 0

	for {
		if err := ctx.Err(); err != nil {
			return accepted, err
		}
		if !r.Headless {
			fmt.Fprint(r.Output, "> ")
		}

		text, err := lineReader.ReadString('\n')
		if err != nil && err != io.EOF {
			return accepted, fmt.Errorf("input error: %w", err)
		}
		eof := err == io.EOF
		if eof && text == "" {
			return accepted, nil
		}

		if !r.Headless {
			cmd := strings.TrimSpace(text)
			if cmd == "exit" || cmd == "quit" {
				fmt.Fprintln(r.Output, "Bye!")
				return accepted, nil
			}
		}

		word, err := report.ParseWord(text)
		if err != nil {
			return accepted, err
		}
		res, err := sim.Run(ctx, word)
		if err != nil {
			return accepted, err
		}
		if res.Accepted {
			accepted++
		}
		if err := out.Write(sim.Automaton(), res); err != nil {
			return accepted, fmt.Errorf("output error: %w", err)
		}

		if eof {
			return accepted, nil
		}
	}
}
