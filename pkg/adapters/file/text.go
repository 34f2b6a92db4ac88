package file

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/aretw0/nfasim/pkg/domain"
)

// ErrMalformedInput is returned when a definition cannot be parsed.
var ErrMalformedInput = errors.New("malformed input")

type tokenReader struct {
	sc  *bufio.Scanner
	pos int
}

func newTokenReader(r io.Reader) *tokenReader {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)
	return &tokenReader{sc: sc}
}

func (t *tokenReader) next(what string) (string, error) {
	if !t.sc.Scan() {
		if err := t.sc.Err(); err != nil {
			return "", fmt.Errorf("reading %s: %w", what, err)
		}
		return "", fmt.Errorf("%w: unexpected end of input reading %s (token %d)", ErrMalformedInput, what, t.pos)
	}
	t.pos++
	return t.sc.Text(), nil
}

func (t *tokenReader) count(what string) (int, error) {
	tok, err := t.next(what)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(tok)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("%w: %s must be a non-negative integer, got %q (token %d)", ErrMalformedInput, what, tok, t.pos)
	}
	return n, nil
}

func (t *tokenReader) list(what string) ([]string, error) {
	n, err := t.count(what + " count")
	if err != nil {
		return nil, err
	}
	out := make([]string, 0, n)
	for i := 0; i < n; i++ {
		tok, err := t.next(fmt.Sprintf("%s[%d]", what, i))
		if err != nil {
			return nil, err
		}
		out = append(out, tok)
	}
	return out, nil
}

// ReadText parses the whitespace-token format. The single input word it
// carries becomes the only entry of Inputs.
func ReadText(r io.Reader) (domain.Definition, error) {
	var def domain.Definition
	tr := newTokenReader(r)

	var err error
	if def.Alphabet, err = tr.list("alphabet"); err != nil {
		return def, err
	}
	if def.States, err = tr.list("states"); err != nil {
		return def, err
	}
	if def.Start, err = tr.next("start state"); err != nil {
		return def, err
	}
	accept, err := tr.next("accept state")
	if err != nil {
		return def, err
	}
	def.Accept = []string{accept}

	word, err := tr.list("input")
	if err != nil {
		return def, err
	}
	def.Inputs = [][]string{word}

	n, err := tr.count("transition count")
	if err != nil {
		return def, err
	}
	def.Transitions = make([]domain.Transition, 0, n)
	for i := 0; i < n; i++ {
		what := fmt.Sprintf("transitions[%d]", i)
		var tr3 [3]string
		for j := range tr3 {
			if tr3[j], err = tr.next(what); err != nil {
				return def, err
			}
		}
		def.Transitions = append(def.Transitions, domain.Transition{From: tr3[0], Symbol: tr3[1], To: tr3[2]})
	}
	return def, nil
}
