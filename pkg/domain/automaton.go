package domain

import "fmt"

// edgeKey indexes the transition relation by source state and symbol.
type edgeKey struct {
	from   StateID
	symbol string
}

// Automaton is the validated, immutable form of a Definition.
// State labels are interned to StateID at construction; labels are kept only for output.
// It is never mutated after NewAutomaton returns, so concurrent runs may share it.
type Automaton struct {
	name        string
	description string
	labels      []string
	index       map[string]StateID
	alphabet    []string
	symbols     map[string]struct{}
	epsilon     string
	start       StateID
	accept      StateSet
	acceptIDs   []StateID
	transitions []Transition
	edges       map[edgeKey][]StateID
}

// NewAutomaton validates def and compiles it.
// Every problem found is reported at once in an *InvalidAutomatonError.
func NewAutomaton(def Definition) (*Automaton, error) {
	a := &Automaton{
		name:        def.Name,
		description: def.Description,
		index:       make(map[string]StateID, len(def.States)),
		symbols:     make(map[string]struct{}, len(def.Alphabet)),
		epsilon:     def.EpsilonMarker(),
		edges:       make(map[edgeKey][]StateID),
	}

	var problems []Problem
	report := func(field, format string, args ...any) {
		problems = append(problems, Problem{Field: field, Reason: fmt.Sprintf(format, args...)})
	}

	if len(def.States) == 0 {
		report("states", "at least one state is required")
	}
	for i, label := range def.States {
		if label == "" {
			report(fmt.Sprintf("states[%d]", i), "empty state label")
			continue
		}
		if _, dup := a.index[label]; dup {
			report(fmt.Sprintf("states[%d]", i), "duplicate state %q", label)
			continue
		}
		a.index[label] = StateID(len(a.labels))
		a.labels = append(a.labels, label)
	}

	for i, sym := range def.Alphabet {
		switch {
		case sym == "":
			report(fmt.Sprintf("alphabet[%d]", i), "empty symbol")
			continue
		case sym == a.epsilon:
			report(fmt.Sprintf("alphabet[%d]", i), "symbol %q is reserved for epsilon transitions", sym)
			continue
		}
		if _, dup := a.symbols[sym]; dup {
			report(fmt.Sprintf("alphabet[%d]", i), "duplicate symbol %q", sym)
			continue
		}
		a.symbols[sym] = struct{}{}
		a.alphabet = append(a.alphabet, sym)
	}

	if id, ok := a.index[def.Start]; ok {
		a.start = id
	} else {
		report("start", "state %q is not declared", def.Start)
	}

	if len(def.Accept) == 0 {
		report("accept", "at least one accept state is required")
	}
	for i, label := range def.Accept {
		id, ok := a.index[label]
		if !ok {
			report(fmt.Sprintf("accept[%d]", i), "state %q is not declared", label)
			continue
		}
		if a.accept.Add(id) {
			a.acceptIDs = append(a.acceptIDs, id)
		}
	}

	for i, t := range def.Transitions {
		field := fmt.Sprintf("transitions[%d]", i)
		from, okFrom := a.index[t.From]
		to, okTo := a.index[t.To]
		if !okFrom {
			report(field, "source state %q is not declared", t.From)
		}
		if !okTo {
			report(field, "destination state %q is not declared", t.To)
		}
		_, inAlphabet := a.symbols[t.Symbol]
		if t.Symbol != a.epsilon && !inAlphabet {
			report(field, "symbol %q is not in the alphabet", t.Symbol)
			continue
		}
		if !okFrom || !okTo {
			continue
		}
		a.transitions = append(a.transitions, t)
		a.addEdge(from, t.Symbol, to)
	}

	if len(problems) > 0 {
		return nil, &InvalidAutomatonError{Problems: problems}
	}
	return a, nil
}

func (a *Automaton) addEdge(from StateID, symbol string, to StateID) {
	key := edgeKey{from: from, symbol: symbol}
	for _, existing := range a.edges[key] {
		if existing == to {
			return
		}
	}
	a.edges[key] = append(a.edges[key], to)
}

// TransitionsFrom returns every state reachable from state by consuming exactly symbol.
// symbol may be the epsilon marker. The returned slice must not be modified.
func (a *Automaton) TransitionsFrom(state StateID, symbol string) []StateID {
	return a.edges[edgeKey{from: state, symbol: symbol}]
}

// Name returns the optional automaton name.
func (a *Automaton) Name() string { return a.name }

// Description returns the optional free-form description.
func (a *Automaton) Description() string { return a.description }

// Len returns the number of declared states.
func (a *Automaton) Len() int { return len(a.labels) }

// Labels returns the state labels in declaration order.
func (a *Automaton) Labels() []string {
	out := make([]string, len(a.labels))
	copy(out, a.labels)
	return out
}

// Label returns the label of id, or an empty string when id is out of range.
func (a *Automaton) Label(id StateID) string {
	if id < 0 || int(id) >= len(a.labels) {
		return ""
	}
	return a.labels[id]
}

// Lookup returns the identifier interned for label.
func (a *Automaton) Lookup(label string) (StateID, bool) {
	id, ok := a.index[label]
	return id, ok
}

// Start returns the start state.
func (a *Automaton) Start() StateID { return a.start }

// AcceptStates returns the accept states in the order they were declared.
func (a *Automaton) AcceptStates() []StateID {
	out := make([]StateID, len(a.acceptIDs))
	copy(out, a.acceptIDs)
	return out
}

// IsAccept reports whether id is an accept state.
func (a *Automaton) IsAccept(id StateID) bool { return a.accept.Has(id) }

// Accepts reports whether active contains at least one accept state.
func (a *Automaton) Accepts(active StateSet) bool { return active.Intersects(a.accept) }

// Alphabet returns the input symbols in declaration order.
func (a *Automaton) Alphabet() []string {
	out := make([]string, len(a.alphabet))
	copy(out, a.alphabet)
	return out
}

// HasSymbol reports whether sym belongs to the alphabet.
func (a *Automaton) HasSymbol(sym string) bool {
	_, ok := a.symbols[sym]
	return ok
}

// Epsilon returns the marker labelling epsilon transitions.
func (a *Automaton) Epsilon() string { return a.epsilon }

// Transitions returns the transition list in declaration order.
func (a *Automaton) Transitions() []Transition {
	out := make([]Transition, len(a.transitions))
	copy(out, a.transitions)
	return out
}

// LabelsOf converts a set to labels in declaration order.
func (a *Automaton) LabelsOf(s StateSet) []string {
	ids := s.IDs()
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		out = append(out, a.Label(id))
	}
	return out
}

// Definition rebuilds a Definition equivalent to the one the automaton was compiled from.
func (a *Automaton) Definition() Definition {
	accept := make([]string, 0, len(a.acceptIDs))
	for _, id := range a.acceptIDs {
		accept = append(accept, a.labels[id])
	}
	def := Definition{
		Name:        a.name,
		Description: a.description,
		Alphabet:    a.Alphabet(),
		States:      a.Labels(),
		Start:       a.labels[a.start],
		Accept:      accept,
		Transitions: a.Transitions(),
	}
	if a.epsilon != DefaultEpsilon {
		def.Epsilon = a.epsilon
	}
	return def
}
