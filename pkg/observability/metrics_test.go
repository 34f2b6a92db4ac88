package observability_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/aretw0/nfasim"
	"github.com/aretw0/nfasim/pkg/domain"
	"github.com/aretw0/nfasim/pkg/dsl"
	"github.com/aretw0/nfasim/pkg/observability"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func abSimulator(t *testing.T, hooks domain.LifecycleHooks) *nfasim.Simulator {
	t.Helper()
	b := dsl.New("ab")
	b.State("q0").Start().On("a", "q1").Epsilon("q2")
	b.State("q1").On("b", "q2")
	b.State("q2").Accept()

	sim, err := nfasim.New(b.Definition(), nfasim.WithLifecycleHooks(hooks))
	require.NoError(t, err)
	return sim
}

func TestMetrics_Hooks(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := observability.NewMetrics(reg)
	sim := abSimulator(t, m.Hooks())
	ctx := context.Background()

	for _, in := range [][]string{{"a", "b"}, {}, {"b", "a"}} {
		_, err := sim.Run(ctx, in)
		require.NoError(t, err)
	}

	assert.Equal(t, 2.0, testutil.ToFloat64(m.Runs.WithLabelValues(domain.VerdictAccept)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Runs.WithLabelValues(domain.VerdictReject)))
	assert.Equal(t, 4.0, testutil.ToFloat64(m.Symbols))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.EmptySets), "b then a from the dead set")

	count, err := testutil.GatherAndCount(reg, "nfasim_active_states", "nfasim_run_duration_seconds")
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestNewMetrics_Unregistered(t *testing.T) {
	m := observability.NewMetrics(nil)
	m.Hooks().OnStep(context.Background(), &domain.StepEvent{})
	assert.Equal(t, 1.0, testutil.ToFloat64(m.EmptySets))
}

func TestChainHooks(t *testing.T) {
	var order []string
	first := domain.LifecycleHooks{
		OnStep: func(context.Context, *domain.StepEvent) { order = append(order, "first") },
	}
	second := domain.LifecycleHooks{
		OnStep:    func(context.Context, *domain.StepEvent) { order = append(order, "second") },
		OnVerdict: func(context.Context, *domain.VerdictEvent) { order = append(order, "verdict") },
	}

	sim := abSimulator(t, observability.ChainHooks(first, domain.LifecycleHooks{}, second))
	_, err := sim.Run(context.Background(), []string{"a"})
	require.NoError(t, err)
	assert.Equal(t, []string{"first", "second", "verdict"}, order)

	empty := observability.ChainHooks()
	assert.Nil(t, empty.OnStep)
	assert.Nil(t, empty.OnVerdict)
}

func TestLogHooks(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	sim := abSimulator(t, observability.LogHooks(logger))
	_, err := sim.Run(context.Background(), []string{"a", "b"})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "msg=step")
	assert.Contains(t, out, "symbol=b")
	assert.Contains(t, out, "msg=verdict")
	assert.Contains(t, out, "accepted=true")
}

func TestLogHooks_DebugDisabled(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo}))

	hooks := observability.LogHooks(logger)
	assert.Nil(t, hooks.OnStep, "no step events are built when debug is off")
	require.NotNil(t, hooks.OnVerdict)

	sim := abSimulator(t, hooks)
	_, err := sim.Run(context.Background(), []string{"a", "b"})
	require.NoError(t, err)
	assert.NotContains(t, buf.String(), "msg=step")
	assert.Contains(t, buf.String(), "msg=verdict")
}
