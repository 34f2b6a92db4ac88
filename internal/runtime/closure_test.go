package runtime_test

import (
	"fmt"
	"testing"

	"github.com/aretw0/nfasim/internal/runtime"
	"github.com/aretw0/nfasim/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustAutomaton(t *testing.T, def domain.Definition) *domain.Automaton {
	t.Helper()
	a, err := domain.NewAutomaton(def)
	require.NoError(t, err)
	return a
}

func labels(a *domain.Automaton, s domain.StateSet) []string {
	return a.LabelsOf(s)
}

func set(t *testing.T, a *domain.Automaton, names ...string) domain.StateSet {
	t.Helper()
	var s domain.StateSet
	for _, n := range names {
		id, ok := a.Lookup(n)
		require.True(t, ok, "unknown state %s", n)
		s.Add(id)
	}
	return s
}

func chainDefinition() domain.Definition {
	return domain.Definition{
		Alphabet: []string{"a"},
		States:   []string{"q1", "q2", "q3", "q4", "q5"},
		Start:    "q1",
		Accept:   []string{"q4"},
		Transitions: []domain.Transition{
			{From: "q3", Symbol: "e", To: "q4"},
			{From: "q2", Symbol: "e", To: "q3"},
			{From: "q1", Symbol: "e", To: "q2"},
			{From: "q5", Symbol: "a", To: "q1"},
		},
	}
}

func TestEpsilonClosure_Chain(t *testing.T) {
	a := mustAutomaton(t, chainDefinition())

	got := runtime.EpsilonClosure(a, set(t, a, "q1"))
	assert.Equal(t, []string{"q1", "q2", "q3", "q4"}, labels(a, got))

	got = runtime.EpsilonClosure(a, set(t, a, "q3"))
	assert.Equal(t, []string{"q3", "q4"}, labels(a, got))

	// Non-epsilon edges are never followed.
	got = runtime.EpsilonClosure(a, set(t, a, "q5"))
	assert.Equal(t, []string{"q5"}, labels(a, got))
}

func TestEpsilonClosure_Cycle(t *testing.T) {
	a := mustAutomaton(t, domain.Definition{
		Alphabet: []string{"a"},
		States:   []string{"q1", "q2", "q3"},
		Start:    "q1",
		Accept:   []string{"q3"},
		Transitions: []domain.Transition{
			{From: "q1", Symbol: "e", To: "q2"},
			{From: "q2", Symbol: "e", To: "q1"},
			{From: "q2", Symbol: "e", To: "q2"},
			{From: "q2", Symbol: "e", To: "q3"},
			{From: "q3", Symbol: "e", To: "q1"},
		},
	})

	got := runtime.EpsilonClosure(a, set(t, a, "q1"))
	assert.Equal(t, []string{"q1", "q2", "q3"}, labels(a, got))
	assert.Equal(t, 3, got.Len())
}

func TestEpsilonClosure_Empty(t *testing.T) {
	a := mustAutomaton(t, chainDefinition())
	got := runtime.EpsilonClosure(a, domain.StateSet{})
	assert.True(t, got.IsEmpty())
}

func TestEpsilonClosure_DoesNotMutateInput(t *testing.T) {
	a := mustAutomaton(t, chainDefinition())
	in := set(t, a, "q2")
	_ = runtime.EpsilonClosure(a, in)
	assert.Equal(t, []string{"q2"}, labels(a, in))
}

func TestEpsilonClosure_Properties(t *testing.T) {
	// Diamond plus a cycle: several epsilon paths reach the same states.
	a := mustAutomaton(t, domain.Definition{
		Alphabet: []string{"x"},
		States:   []string{"s", "l", "r", "j", "t", "u"},
		Start:    "s",
		Accept:   []string{"t"},
		Transitions: []domain.Transition{
			{From: "s", Symbol: "e", To: "l"},
			{From: "s", Symbol: "e", To: "r"},
			{From: "l", Symbol: "e", To: "j"},
			{From: "r", Symbol: "e", To: "j"},
			{From: "j", Symbol: "e", To: "t"},
			{From: "t", Symbol: "e", To: "l"},
			{From: "u", Symbol: "x", To: "s"},
		},
	})

	// Every subset of the six states.
	for mask := 0; mask < 1<<a.Len(); mask++ {
		var s domain.StateSet
		for i := 0; i < a.Len(); i++ {
			if mask&(1<<i) != 0 {
				s.Add(domain.StateID(i))
			}
		}
		t.Run(fmt.Sprintf("%v", labels(a, s)), func(t *testing.T) {
			once := runtime.EpsilonClosure(a, s)
			twice := runtime.EpsilonClosure(a, once)

			assert.True(t, s.IsSubsetOf(once), "closure must be monotonic")
			assert.True(t, once.Equal(twice), "closure must be idempotent")

			// Closed: every epsilon successor of a member is a member.
			for _, id := range once.IDs() {
				for _, next := range a.TransitionsFrom(id, a.Epsilon()) {
					assert.True(t, once.Has(next), "%s -e-> %s escapes the closure", a.Label(id), a.Label(next))
				}
			}
			assert.Len(t, once.IDs(), once.Len(), "closure must be duplicate-free")
		})
	}
}
