package domain

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidAutomaton is matched by every construction-time validation failure.
var ErrInvalidAutomaton = errors.New("invalid automaton")

// ErrUnknownSymbol is returned when an input symbol is not part of the alphabet.
var ErrUnknownSymbol = errors.New("unknown symbol")

// ErrRunNotFound is returned when a run ID cannot be found in the store.
var ErrRunNotFound = errors.New("run not found")

// ErrDefinitionNotFound is returned when a loader has no automaton under the given ID.
var ErrDefinitionNotFound = errors.New("definition not found")

// Problem is a single reason a Definition was rejected.
type Problem struct {
	Field  string `json:"field"` // e.g. "start", "transitions[3]"
	Reason string `json:"reason"`
}

func (p Problem) String() string {
	return fmt.Sprintf("%s: %s", p.Field, p.Reason)
}

// InvalidAutomatonError aggregates every problem found while validating a Definition.
type InvalidAutomatonError struct {
	Problems []Problem
}

func (e *InvalidAutomatonError) Error() string {
	if len(e.Problems) == 1 {
		return fmt.Sprintf("invalid automaton: %s", e.Problems[0])
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "invalid automaton: %d problems:\n", len(e.Problems))
	for i, p := range e.Problems {
		fmt.Fprintf(&sb, "  %d. %s\n", i+1, p)
	}
	return sb.String()
}

// Is reports whether target is ErrInvalidAutomaton.
func (e *InvalidAutomatonError) Is(target error) bool {
	return target == ErrInvalidAutomaton
}

// UnknownSymbolError reports an input symbol outside the declared alphabet.
type UnknownSymbolError struct {
	Symbol   string
	Position int
}

func (e *UnknownSymbolError) Error() string {
	return fmt.Sprintf("unknown symbol %q at position %d", e.Symbol, e.Position)
}

// Is reports whether target is ErrUnknownSymbol.
func (e *UnknownSymbolError) Is(target error) bool {
	return target == ErrUnknownSymbol
}

// Problems returns the validation problems if err is (or wraps) an InvalidAutomatonError.
// Otherwise returns nil.
func Problems(err error) []Problem {
	var inv *InvalidAutomatonError
	if errors.As(err, &inv) {
		return inv.Problems
	}
	return nil
}
