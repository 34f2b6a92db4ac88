package runtime_test

import (
	"context"
	"sync"
	"testing"

	"github.com/aretw0/nfasim/internal/runtime"
	"github.com/aretw0/nfasim/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func traceLabels(a *domain.Automaton, res *domain.Result) [][]string {
	out := make([][]string, 0, len(res.Trace))
	for _, snap := range res.Trace {
		out = append(out, a.LabelsOf(snap.Active))
	}
	return out
}

func TestEngine_Run(t *testing.T) {
	a := mustAutomaton(t, abDefinition())
	engine := runtime.NewEngine()
	ctx := context.Background()

	tests := []struct {
		name        string
		input       []string
		wantTrace   [][]string
		wantVerdict string
	}{
		{
			name:        "Accepts ab",
			input:       []string{"a", "b"},
			wantTrace:   [][]string{{"q1"}, {"q2"}},
			wantVerdict: domain.VerdictAccept,
		},
		{
			name:        "Empty Input Accepts Through Epsilon",
			input:       []string{},
			wantTrace:   [][]string{},
			wantVerdict: domain.VerdictAccept,
		},
		{
			name:        "Rejects b",
			input:       []string{"b"},
			wantTrace:   [][]string{{}},
			wantVerdict: domain.VerdictReject,
		},
		{
			name:        "Rejects a",
			input:       []string{"a"},
			wantTrace:   [][]string{{"q1"}},
			wantVerdict: domain.VerdictReject,
		},
		{
			name:        "Dead Set Persists",
			input:       []string{"b", "a", "b"},
			wantTrace:   [][]string{{}, {}, {}},
			wantVerdict: domain.VerdictReject,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := engine.Run(ctx, a, tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.wantTrace, traceLabels(a, res))
			assert.Equal(t, tt.wantVerdict, res.Verdict())
			for i, snap := range res.Trace {
				assert.Equal(t, tt.input[i], snap.Symbol)
			}
		})
	}
}

func TestEngine_NoMatchingTransitions(t *testing.T) {
	def := domain.Definition{
		Alphabet: []string{"a"},
		States:   []string{"q0", "q1"},
		Start:    "q0",
		Accept:   []string{"q1"},
		Transitions: []domain.Transition{
			{From: "q0", Symbol: "e", To: "q1"},
		},
	}
	engine := runtime.NewEngine()
	ctx := context.Background()

	a := mustAutomaton(t, def)
	res, err := engine.Run(ctx, a, []string{"a", "a"})
	require.NoError(t, err)
	for _, snap := range res.Trace {
		assert.True(t, snap.Active.IsEmpty())
	}
	assert.False(t, res.Accepted)

	// Start equals accept: only the empty input is accepted.
	def.Accept = []string{"q0"}
	def.Transitions = nil
	a = mustAutomaton(t, def)

	res, err = engine.Run(ctx, a, nil)
	require.NoError(t, err)
	assert.True(t, res.Accepted)

	res, err = engine.Run(ctx, a, []string{"a"})
	require.NoError(t, err)
	assert.False(t, res.Accepted)
}

func TestEngine_UnknownSymbolPolicy(t *testing.T) {
	a := mustAutomaton(t, abDefinition())
	ctx := context.Background()

	t.Run("Strict", func(t *testing.T) {
		engine := runtime.NewEngine()
		assert.Equal(t, domain.PolicyStrict, engine.Policy())

		res, err := engine.Run(ctx, a, []string{"a", "z", "b"})
		require.Error(t, err)
		assert.Nil(t, res)
		assert.ErrorIs(t, err, domain.ErrUnknownSymbol)

		var unknown *domain.UnknownSymbolError
		require.ErrorAs(t, err, &unknown)
		assert.Equal(t, "z", unknown.Symbol)
		assert.Equal(t, 1, unknown.Position)
	})

	t.Run("Strict Rejects Epsilon Marker", func(t *testing.T) {
		_, err := runtime.NewEngine().Run(ctx, a, []string{"e"})
		assert.ErrorIs(t, err, domain.ErrUnknownSymbol)
	})

	t.Run("Lenient", func(t *testing.T) {
		engine := runtime.NewEngine(runtime.WithUnknownSymbolPolicy(domain.PolicyLenient))
		res, err := engine.Run(ctx, a, []string{"a", "z", "b"})
		require.NoError(t, err)
		assert.Equal(t, [][]string{{"q1"}, {}, {}}, traceLabels(a, res))
		assert.False(t, res.Accepted)
	})
}

func TestEngine_MultipleAcceptStates(t *testing.T) {
	def := abDefinition()
	def.Accept = []string{"q1", "q2"}
	a := mustAutomaton(t, def)

	res, err := runtime.NewEngine().Run(context.Background(), a, []string{"a"})
	require.NoError(t, err)
	assert.True(t, res.Accepted)
}

func TestEngine_LifecycleHooks(t *testing.T) {
	a := mustAutomaton(t, abDefinition())

	var steps []*domain.StepEvent
	var verdicts []*domain.VerdictEvent
	hooks := domain.LifecycleHooks{
		OnStep: func(ctx context.Context, e *domain.StepEvent) {
			steps = append(steps, e)
		},
		OnVerdict: func(ctx context.Context, e *domain.VerdictEvent) {
			verdicts = append(verdicts, e)
		},
	}

	engine := runtime.NewEngine(runtime.WithLifecycleHooks(hooks))
	_, err := engine.Run(context.Background(), a, []string{"a", "b"})
	require.NoError(t, err)

	require.Len(t, steps, 2)
	assert.Equal(t, 0, steps[0].Position)
	assert.Equal(t, "a", steps[0].Symbol)
	assert.Equal(t, []string{"q1"}, steps[0].Active)
	assert.Equal(t, domain.EventStep, steps[1].Type)
	assert.Equal(t, "ab", steps[1].Automaton)

	require.Len(t, verdicts, 1)
	assert.True(t, verdicts[0].Accepted)
	assert.Equal(t, 2, verdicts[0].Symbols)

	// A rejected input never reaches the hooks.
	_, err = engine.Run(context.Background(), a, []string{"?"})
	require.Error(t, err)
	assert.Len(t, verdicts, 1)
}

func TestEngine_ConcurrentRunsShareAutomaton(t *testing.T) {
	a := mustAutomaton(t, abDefinition())
	engine := runtime.NewEngine()
	inputs := [][]string{{"a", "b"}, {}, {"b"}, {"a"}, {"a", "b", "a"}}

	want := make([]bool, len(inputs))
	for i, in := range inputs {
		res, err := engine.Run(context.Background(), a, in)
		require.NoError(t, err)
		want[i] = res.Accepted
	}

	var wg sync.WaitGroup
	got := make([][]bool, 16)
	for w := range got {
		got[w] = make([]bool, len(inputs))
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i, in := range inputs {
				res, err := engine.Run(context.Background(), a, in)
				if err == nil {
					got[w][i] = res.Accepted
				}
			}
		}(w)
	}
	wg.Wait()

	for w := range got {
		assert.Equal(t, want, got[w])
	}
}
