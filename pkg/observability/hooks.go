package observability

import (
	"context"
	"log/slog"

	"github.com/aretw0/nfasim/pkg/domain"
)

// ChainHooks combines several hook sets. Each event is delivered to every
// non-nil callback, in argument order.
func ChainHooks(hooks ...domain.LifecycleHooks) domain.LifecycleHooks {
	var steps []func(context.Context, *domain.StepEvent)
	var verdicts []func(context.Context, *domain.VerdictEvent)
	for _, h := range hooks {
		if h.OnStep != nil {
			steps = append(steps, h.OnStep)
		}
		if h.OnVerdict != nil {
			verdicts = append(verdicts, h.OnVerdict)
		}
	}

	var out domain.LifecycleHooks
	if len(steps) > 0 {
		out.OnStep = func(ctx context.Context, e *domain.StepEvent) {
			for _, fn := range steps {
				fn(ctx, e)
			}
		}
	}
	if len(verdicts) > 0 {
		out.OnVerdict = func(ctx context.Context, e *domain.VerdictEvent) {
			for _, fn := range verdicts {
				fn(ctx, e)
			}
		}
	}
	return out
}

// LogHooks logs steps at debug level and verdicts at info level.
// OnStep is left nil when logger has debug disabled, so the engine builds no
// step events for it.
func LogHooks(logger *slog.Logger) domain.LifecycleHooks {
	hooks := domain.LifecycleHooks{
		OnVerdict: func(ctx context.Context, e *domain.VerdictEvent) {
			logger.InfoContext(ctx, "verdict",
				"automaton", e.Automaton,
				"symbols", e.Symbols,
				"accepted", e.Accepted,
				"duration", e.Duration,
			)
		},
	}
	if logger.Enabled(context.Background(), slog.LevelDebug) {
		hooks.OnStep = func(ctx context.Context, e *domain.StepEvent) {
			logger.DebugContext(ctx, "step",
				"automaton", e.Automaton,
				"position", e.Position,
				"symbol", e.Symbol,
				"active", e.Active,
			)
		}
	}
	return hooks
}
