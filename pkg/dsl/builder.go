package dsl

import (
	"fmt"

	"github.com/aretw0/nfasim/pkg/adapters/memory"
	"github.com/aretw0/nfasim/pkg/domain"
)

// Builder manages the automaton construction.
type Builder struct {
	name        string
	description string
	epsilon     string
	alphabet    []string
	explicit    bool
	states      []*StateBuilder
	byLabel     map[string]*StateBuilder
	start       string
	inputs      [][]string
}

// New creates a new automaton builder.
func New(name string) *Builder {
	return &Builder{
		name:    name,
		byLabel: make(map[string]*StateBuilder),
	}
}

// Describe sets the human readable description.
func (b *Builder) Describe(text string) *Builder {
	b.description = text
	return b
}

// Alphabet declares the alphabet explicitly, disabling inference.
func (b *Builder) Alphabet(symbols ...string) *Builder {
	b.alphabet = append([]string(nil), symbols...)
	b.explicit = true
	return b
}

// EpsilonMarker overrides the reserved epsilon marker.
// It must be called before any StateBuilder.Epsilon.
func (b *Builder) EpsilonMarker(marker string) *Builder {
	b.epsilon = marker
	return b
}

// Input adds a sample word to the definition.
func (b *Builder) Input(symbols ...string) *Builder {
	b.inputs = append(b.inputs, append([]string{}, symbols...))
	return b
}

// State declares a state. If the state already exists, it returns the existing builder.
func (b *Builder) State(label string) *StateBuilder {
	if sb, ok := b.byLabel[label]; ok {
		return sb
	}
	sb := &StateBuilder{label: label, builder: b}
	b.byLabel[label] = sb
	b.states = append(b.states, sb)
	return sb
}

func (b *Builder) marker() string {
	if b.epsilon == "" {
		return domain.DefaultEpsilon
	}
	return b.epsilon
}

// Definition returns the raw definition assembled so far, without validating it.
func (b *Builder) Definition() domain.Definition {
	def := domain.Definition{
		Name:        b.name,
		Description: b.description,
		Start:       b.start,
		Epsilon:     b.epsilon,
		States:      make([]string, 0, len(b.states)),
		Accept:      []string{},
		Transitions: []domain.Transition{},
	}

	seen := make(map[string]bool)
	alphabet := append([]string{}, b.alphabet...)
	for _, sb := range b.states {
		def.States = append(def.States, sb.label)
		if sb.accept {
			def.Accept = append(def.Accept, sb.label)
		}
		for _, tr := range sb.transitions {
			def.Transitions = append(def.Transitions, tr)
			if b.explicit || tr.Symbol == b.marker() || seen[tr.Symbol] {
				continue
			}
			seen[tr.Symbol] = true
			alphabet = append(alphabet, tr.Symbol)
		}
	}
	def.Alphabet = alphabet

	for _, w := range b.inputs {
		def.Inputs = append(def.Inputs, append([]string{}, w...))
	}
	return def
}

// Build validates the definition and compiles it.
func (b *Builder) Build() (*domain.Automaton, error) {
	return domain.NewAutomaton(b.Definition())
}

// Loader validates the definition and serves it from a memory.Loader under the builder's name.
func (b *Builder) Loader() (*memory.Loader, error) {
	if _, err := b.Build(); err != nil {
		return nil, err
	}
	loader, err := memory.NewFromDefinitions(b.Definition())
	if err != nil {
		return nil, fmt.Errorf("failed to build memory loader: %w", err)
	}
	return loader, nil
}
