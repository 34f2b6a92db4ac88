package loam_test

import (
	"context"
	"testing"

	"github.com/aretw0/nfasim/internal/testutils"
	"github.com/aretw0/nfasim/pkg/adapters/loam"
	"github.com/aretw0/nfasim/pkg/domain"
	contract "github.com/aretw0/nfasim/pkg/ports/tests"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const loopDocument = `---
name: loop
alphabet: [x]
states: [s]
start: s
accept: [s]
transitions:
  - {from: s, symbol: x, to: s}
---
`

func TestLoader_Contract(t *testing.T) {
	dir := testutils.SetupCatalog(t, map[string]string{
		"ab.md":   testutils.ABDocument,
		"loop.md": loopDocument,
	})
	loader, err := loam.Open(dir)
	require.NoError(t, err)

	want := map[string]domain.Definition{
		"ab": {
			Alphabet: []string{"a", "b"},
			States:   []string{"q0", "q1", "q2"},
			Start:    "q0",
			Accept:   []string{"q2"},
			Transitions: []domain.Transition{
				{From: "q0", Symbol: "a", To: "q1"},
				{From: "q1", Symbol: "b", To: "q2"},
				{From: "q0", Symbol: "e", To: "q2"},
			},
		},
		"loop": {
			Alphabet:    []string{"x"},
			States:      []string{"s"},
			Start:       "s",
			Accept:      []string{"s"},
			Transitions: []domain.Transition{{From: "s", Symbol: "x", To: "s"}},
		},
	}
	contract.DefinitionLoaderContract(t, loader, want)
}

func TestLoader_Load_BodyAndInputs(t *testing.T) {
	dir := testutils.SetupCatalog(t, map[string]string{"ab.md": testutils.ABDocument})
	loader, err := loam.Open(dir)
	require.NoError(t, err)

	def, err := loader.Load(context.Background(), "ab")
	require.NoError(t, err)
	assert.Equal(t, "ab", def.Name, "name defaults to the document ID")
	assert.Equal(t, `Accepts "ab", and the empty word through an epsilon edge.`, def.Description)
	assert.Equal(t, [][]string{{"a", "b"}, {"b"}}, def.Inputs)

	_, err = domain.NewAutomaton(def)
	assert.NoError(t, err)

	// Extensions are normalized away.
	_, err = loader.Load(context.Background(), "ab.md")
	assert.NoError(t, err)
}

func TestLoader_List_NormalizesIDs(t *testing.T) {
	dir := testutils.SetupCatalog(t, map[string]string{
		"ab.md": testutils.ABDocument,
		"renamed.md": `---
id: other.md
states: [s]
start: s
accept: [s]
---
Renamed through its frontmatter.
`,
	})
	loader, err := loam.Open(dir)
	require.NoError(t, err)

	ids, err := loader.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"ab", "other"}, ids)

	def, err := loader.Load(context.Background(), "other")
	require.NoError(t, err)
	assert.Equal(t, "other", def.Name)
	assert.Equal(t, "Renamed through its frontmatter.", def.Description)
}

func TestLoader_List_DetectsCollisions(t *testing.T) {
	dir := testutils.SetupCatalog(t, map[string]string{
		"foo.md": "---\nid: foo\nstates: [s]\n---\n",
		"bar.md": "---\nid: foo\nstates: [t]\n---\n",
	})
	loader, err := loam.Open(dir)
	require.NoError(t, err)

	_, err = loader.List(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "collision detected")
	assert.Contains(t, err.Error(), "foo")
}
