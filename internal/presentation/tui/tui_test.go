package tui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/aretw0/nfasim/pkg/domain"
	"github.com/aretw0/nfasim/pkg/dsl"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func abAutomaton(t *testing.T) *domain.Automaton {
	t.Helper()
	b := dsl.New("ab").Describe("Accepts ab.")
	b.State("q0").Start().On("a", "q1").Epsilon("q2")
	b.State("q1").On("b", "q2")
	b.State("q2").Accept()
	a, err := b.Build()
	require.NoError(t, err)
	return a
}

func TestDescribe(t *testing.T) {
	md := Describe(abAutomaton(t))

	assert.True(t, strings.HasPrefix(md, "# ab\n\nAccepts ab.\n"))
	assert.Contains(t, md, "- **Alphabet:** `a`, `b`")
	assert.Contains(t, md, "| 0 | q0 | start |")
	assert.Contains(t, md, "| 1 | q1 |  |")
	assert.Contains(t, md, "| 2 | q2 | accept |")
	assert.Contains(t, md, "| q0 | ε | q2 |")
	assert.Contains(t, md, "| q1 | b | q2 |")
}

func TestDescribe_NoTransitions(t *testing.T) {
	b := dsl.New("")
	b.State("a|b").Start().Accept()
	a, err := b.Build()
	require.NoError(t, err)

	md := Describe(a)
	assert.True(t, strings.HasPrefix(md, "# Automaton\n"))
	assert.Contains(t, md, `| 0 | a\|b | start, accept |`)
	assert.Contains(t, md, "_none_")
}

func TestNewRenderer_Plain(t *testing.T) {
	render, err := NewRenderer(true)
	require.NoError(t, err)

	out, err := render(Describe(abAutomaton(t)))
	require.NoError(t, err)
	assert.Contains(t, out, "ab")
	assert.Contains(t, out, "q2")
}

func TestVerdict(t *testing.T) {
	assert.Equal(t, "accept", Verdict(termenv.Ascii, domain.VerdictAccept))
	assert.Equal(t, "reject", VerdictStyle(termenv.Ascii)(domain.VerdictReject))

	colored := Verdict(termenv.TrueColor, domain.VerdictAccept)
	assert.NotEqual(t, "accept", colored)
	assert.Contains(t, colored, "accept")
}

func TestPrintBanner(t *testing.T) {
	var buf bytes.Buffer
	PrintBanner(&buf, termenv.Ascii)

	lines := strings.Split(strings.Trim(buf.String(), "\n"), "\n")
	assert.Len(t, lines, len(bannerLines))
	assert.NotContains(t, buf.String(), "\x1b[")
}
