package report

import (
	"bufio"
	"io"

	"github.com/aretw0/nfasim/pkg/domain"
)

// TextWriter writes results in the plain trace format.
type TextWriter struct {
	w     io.Writer
	style func(verdict string) string
}

// NewTextWriter creates a TextWriter on w.
func NewTextWriter(w io.Writer) *TextWriter {
	return &TextWriter{w: w}
}

// StyleVerdict decorates the verdict line (e.g. with terminal colours).
// Trace rows are never styled.
func (t *TextWriter) StyleVerdict(fn func(verdict string) string) *TextWriter {
	t.style = fn
	return t
}

// FormatSnapshot returns one trace row: the symbol followed by a "1" or "0" for every
// declared state, in declaration order.
func FormatSnapshot(a *domain.Automaton, snap domain.Snapshot) []string {
	row := make([]string, 0, a.Len()+1)
	row = append(row, snap.Symbol)
	for i := 0; i < a.Len(); i++ {
		if snap.Active.Has(domain.StateID(i)) {
			row = append(row, "1")
		} else {
			row = append(row, "0")
		}
	}
	return row
}

// Rows returns every trace row of res.
func Rows(a *domain.Automaton, res *domain.Result) [][]string {
	rows := make([][]string, 0, len(res.Trace))
	for _, snap := range res.Trace {
		rows = append(rows, FormatSnapshot(a, snap))
	}
	return rows
}

// Write emits the trace rows followed by the verdict line.
// Every token in a row is followed by a space, the fixtures depend on it.
func (t *TextWriter) Write(a *domain.Automaton, res *domain.Result) error {
	bw := bufio.NewWriter(t.w)
	for _, snap := range res.Trace {
		for _, tok := range FormatSnapshot(a, snap) {
			bw.WriteString(tok)
			bw.WriteByte(' ')
		}
		bw.WriteByte('\n')
	}
	verdict := res.Verdict()
	if t.style != nil {
		verdict = t.style(verdict)
	}
	bw.WriteString(verdict)
	bw.WriteByte('\n')
	return bw.Flush()
}
