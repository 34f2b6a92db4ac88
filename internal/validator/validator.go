package validator

import (
	"fmt"
	"strings"

	"github.com/aretw0/nfasim/pkg/domain"
)

// Report lists structural findings about a compiled automaton.
// State labels are in declaration order.
type Report struct {
	// Unreachable states cannot be entered from the start state.
	Unreachable []string
	// Dead states are reachable but cannot lead to any accept state.
	Dead []string
	// UnusedSymbols are alphabet symbols no transition consumes.
	UnusedSymbols []string

	acceptReachable bool
	accept          []string
}

// Clean reports whether no finding was recorded.
func (r Report) Clean() bool {
	return len(r.Unreachable) == 0 && len(r.Dead) == 0 && len(r.UnusedSymbols) == 0
}

// Err returns an error when no accept state is reachable, i.e. the automaton
// rejects every input. Other findings are warnings and never fail.
func (r Report) Err() error {
	if r.acceptReachable {
		return nil
	}
	return fmt.Errorf("no accept state is reachable from the start state (accept: %s)", strings.Join(r.accept, ", "))
}

// Warnings renders the non-fatal findings, one per line.
func (r Report) Warnings() []string {
	var out []string
	if len(r.Unreachable) > 0 {
		out = append(out, fmt.Sprintf("unreachable states: %s", strings.Join(r.Unreachable, ", ")))
	}
	if len(r.Dead) > 0 {
		out = append(out, fmt.Sprintf("dead states: %s", strings.Join(r.Dead, ", ")))
	}
	if len(r.UnusedSymbols) > 0 {
		out = append(out, fmt.Sprintf("unused symbols: %s", strings.Join(r.UnusedSymbols, ", ")))
	}
	return out
}

// Analyze crawls the automaton breadth-first from the start state over every
// edge, then backwards from the accept states.
func Analyze(a *domain.Automaton) Report {
	forward := make(map[domain.StateID][]domain.StateID)
	backward := make(map[domain.StateID][]domain.StateID)
	used := make(map[string]bool)
	for _, t := range a.Transitions() {
		from, _ := a.Lookup(t.From)
		to, _ := a.Lookup(t.To)
		forward[from] = append(forward[from], to)
		backward[to] = append(backward[to], from)
		used[t.Symbol] = true
	}

	reachable := crawl(forward, a.Start())
	productive := crawl(backward, a.AcceptStates()...)

	r := Report{accept: a.LabelsOf(domain.NewStateSet(a.AcceptStates()...))}
	for id := domain.StateID(0); int(id) < a.Len(); id++ {
		switch {
		case !reachable.Has(id):
			r.Unreachable = append(r.Unreachable, a.Label(id))
		case !productive.Has(id):
			r.Dead = append(r.Dead, a.Label(id))
		}
		if reachable.Has(id) && a.IsAccept(id) {
			r.acceptReachable = true
		}
	}
	for _, sym := range a.Alphabet() {
		if !used[sym] {
			r.UnusedSymbols = append(r.UnusedSymbols, sym)
		}
	}
	return r
}

func crawl(edges map[domain.StateID][]domain.StateID, roots ...domain.StateID) domain.StateSet {
	visited := domain.NewStateSet()
	queue := make([]domain.StateID, 0, len(roots))
	for _, id := range roots {
		if visited.Add(id) {
			queue = append(queue, id)
		}
	}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		for _, next := range edges[current] {
			if visited.Add(next) {
				queue = append(queue, next)
			}
		}
	}
	return visited
}
