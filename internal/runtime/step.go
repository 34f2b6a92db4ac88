package runtime

import "github.com/aretw0/nfasim/pkg/domain"

// Step advances active by one input symbol: it collects every destination reachable
// on symbol from any active state and closes the result under epsilon transitions.
// An empty candidate set stays empty; there is no way back once every branch died.
// The epsilon marker is not consumable and matches nothing.
func Step(a *domain.Automaton, active domain.StateSet, symbol string) domain.StateSet {
	var candidates domain.StateSet
	if symbol == a.Epsilon() {
		return candidates
	}
	for _, s := range active.IDs() {
		for _, next := range a.TransitionsFrom(s, symbol) {
			candidates.Add(next)
		}
	}
	if candidates.IsEmpty() {
		return candidates
	}
	return EpsilonClosure(a, candidates)
}
