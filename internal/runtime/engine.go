package runtime

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/aretw0/nfasim/pkg/domain"
)

// Engine drives simulations of a compiled automaton.
// It holds no per-run state, so one Engine may serve concurrent runs.
type Engine struct {
	policy domain.UnknownSymbolPolicy
	hooks  domain.LifecycleHooks
	logger *slog.Logger
}

// EngineOption configures the Engine.
type EngineOption func(*Engine)

// WithUnknownSymbolPolicy selects how input symbols outside the alphabet are handled.
func WithUnknownSymbolPolicy(p domain.UnknownSymbolPolicy) EngineOption {
	return func(e *Engine) {
		if p != "" {
			e.policy = p
		}
	}
}

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) EngineOption {
	return func(e *Engine) {
		e.hooks = hooks
	}
}

// WithLogger sets the structured logger.
func WithLogger(logger *slog.Logger) EngineOption {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// NewEngine creates a new engine. The default policy is domain.PolicyStrict.
func NewEngine(opts ...EngineOption) *Engine {
	e := &Engine{
		policy: domain.PolicyStrict,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Policy returns the unknown-symbol policy in effect.
func (e *Engine) Policy() domain.UnknownSymbolPolicy {
	return e.policy
}

// Run simulates a on input in a single left-to-right pass.
// It returns one snapshot per consumed symbol and the verdict.
// Under the strict policy every symbol is checked before anything is simulated,
// so a failing run produces no partial result.
func (e *Engine) Run(ctx context.Context, a *domain.Automaton, input []string) (*domain.Result, error) {
	if e.policy != domain.PolicyLenient {
		if err := CheckInput(a, input); err != nil {
			e.logger.Debug("input rejected", "automaton", a.Name(), "err", err)
			return nil, err
		}
	}

	began := time.Now()
	active := EpsilonClosure(a, domain.NewStateSet(a.Start()))
	res := &domain.Result{
		Trace: make([]domain.Snapshot, 0, len(input)),
	}

	for i, symbol := range input {
		active = Step(a, active, symbol)
		res.Trace = append(res.Trace, domain.Snapshot{Symbol: symbol, Active: active})

		if e.hooks.OnStep != nil {
			e.hooks.OnStep(ctx, &domain.StepEvent{
				EventBase: domain.EventBase{
					Timestamp: time.Now(),
					Type:      domain.EventStep,
					Automaton: a.Name(),
				},
				Position: i,
				Symbol:   symbol,
				Active:   a.LabelsOf(active),
			})
		}
	}

	res.Final = active
	res.Accepted = a.Accepts(active)

	if e.hooks.OnVerdict != nil {
		e.hooks.OnVerdict(ctx, &domain.VerdictEvent{
			EventBase: domain.EventBase{
				Timestamp: time.Now(),
				Type:      domain.EventVerdict,
				Automaton: a.Name(),
			},
			Symbols:  len(input),
			Accepted: res.Accepted,
			Duration: time.Since(began),
		})
	}

	e.logger.Debug("run finished",
		"automaton", a.Name(),
		"symbols", len(input),
		"verdict", res.Verdict(),
		"final", a.LabelsOf(active),
	)
	return res, nil
}

// CheckInput returns an *domain.UnknownSymbolError for the first symbol outside the alphabet.
func CheckInput(a *domain.Automaton, input []string) error {
	for i, symbol := range input {
		if !a.HasSymbol(symbol) {
			return &domain.UnknownSymbolError{Symbol: symbol, Position: i}
		}
	}
	return nil
}
