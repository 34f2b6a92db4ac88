package nfasim

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"runtime"

	engine "github.com/aretw0/nfasim/internal/runtime"
	"github.com/aretw0/nfasim/pkg/domain"
	"golang.org/x/sync/errgroup"
)

// Version is the released version of the nfasim module.
const Version = "0.3.0"

// Simulator is the high-level entry point for the nfasim library.
// It wraps a compiled automaton and the internal runtime behind a simplified API.
type Simulator struct {
	automaton   *domain.Automaton
	runtime     *engine.Engine
	policy      domain.UnknownSymbolPolicy
	hooks       domain.LifecycleHooks
	logger      *slog.Logger
	concurrency int
	Name        string
}

// Option defines a functional option for configuring the Simulator.
type Option func(*Simulator)

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(s *Simulator) {
		s.hooks = hooks
	}
}

// WithLogger sets a custom structured logger for the simulator.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Simulator) {
		s.logger = logger
	}
}

// WithUnknownSymbolPolicy selects how input symbols outside the alphabet are treated.
// The default, domain.PolicyStrict, fails the run.
func WithUnknownSymbolPolicy(p domain.UnknownSymbolPolicy) Option {
	return func(s *Simulator) {
		s.policy = p
	}
}

// WithConcurrency bounds how many inputs RunBatch simulates at once (default: GOMAXPROCS).
func WithConcurrency(n int) Option {
	return func(s *Simulator) {
		s.concurrency = n
	}
}

// New validates def and prepares a Simulator for it.
// Validation failures are returned as *domain.InvalidAutomatonError.
func New(def domain.Definition, opts ...Option) (*Simulator, error) {
	a, err := domain.NewAutomaton(def)
	if err != nil {
		return nil, err
	}
	return FromAutomaton(a, opts...), nil
}

// FromAutomaton builds a Simulator around an automaton that was already compiled.
func FromAutomaton(a *domain.Automaton, opts ...Option) *Simulator {
	s := &Simulator{
		automaton: a,
		policy:    domain.PolicyStrict,
		Name:      a.Name(),
	}
	for _, opt := range opts {
		opt(s)
	}

	// Ensure logger is initialized (so we don't pass nil to runtime)
	if s.logger == nil {
		s.logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	if s.Name != "" {
		s.logger = s.logger.With("automaton", s.Name)
	}
	if s.concurrency <= 0 {
		s.concurrency = runtime.GOMAXPROCS(0)
	}

	s.runtime = engine.NewEngine(
		engine.WithUnknownSymbolPolicy(s.policy),
		engine.WithLifecycleHooks(s.hooks),
		engine.WithLogger(s.logger),
	)
	return s
}

// Automaton returns the compiled automaton.
func (s *Simulator) Automaton() *domain.Automaton {
	return s.automaton
}

// Policy returns the unknown-symbol policy in effect.
func (s *Simulator) Policy() domain.UnknownSymbolPolicy {
	return s.runtime.Policy()
}

// Run simulates one input sequence and returns the verdict with its trace.
func (s *Simulator) Run(ctx context.Context, input []string) (*domain.Result, error) {
	return s.runtime.Run(ctx, s.automaton, input)
}

// RunBatch simulates independent inputs concurrently over the shared automaton.
// Results are returned in input order. If any input fails, the first error is
// returned and no results.
func (s *Simulator) RunBatch(ctx context.Context, inputs [][]string) ([]*domain.Result, error) {
	results := make([]*domain.Result, len(inputs))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)
	for i, input := range inputs {
		g.Go(func() error {
			res, err := s.runtime.Run(ctx, s.automaton, input)
			if err != nil {
				return fmt.Errorf("input %d: %w", i, err)
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
