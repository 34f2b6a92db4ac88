package dsl

import "github.com/aretw0/nfasim/pkg/domain"

// StateBuilder provides a fluent API for configuring a state and its outgoing edges.
type StateBuilder struct {
	label       string
	accept      bool
	transitions []domain.Transition
	builder     *Builder
}

// Start marks the state as the start state, replacing any previous one.
func (s *StateBuilder) Start() *StateBuilder {
	s.builder.start = s.label
	return s
}

// Accept marks the state as accepting.
func (s *StateBuilder) Accept() *StateBuilder {
	s.accept = true
	return s
}

// On adds one transition per target consuming symbol.
func (s *StateBuilder) On(symbol string, targets ...string) *StateBuilder {
	for _, to := range targets {
		s.transitions = append(s.transitions, domain.Transition{From: s.label, Symbol: symbol, To: to})
	}
	return s
}

// Epsilon adds epsilon transitions to the targets.
func (s *StateBuilder) Epsilon(targets ...string) *StateBuilder {
	return s.On(s.builder.marker(), targets...)
}

// State continues with another state of the same builder.
func (s *StateBuilder) State(label string) *StateBuilder {
	return s.builder.State(label)
}

// Label returns the state label.
func (s *StateBuilder) Label() string {
	return s.label
}
