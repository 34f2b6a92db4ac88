package runtime

import "github.com/aretw0/nfasim/pkg/domain"

// EpsilonClosure returns the smallest superset of s closed under epsilon transitions.
// Every member is queued exactly once, so epsilon chains of any length and epsilon
// cycles terminate. s itself is not modified.
func EpsilonClosure(a *domain.Automaton, s domain.StateSet) domain.StateSet {
	closure := s.Clone()
	worklist := s.IDs()
	eps := a.Epsilon()

	for len(worklist) > 0 {
		current := worklist[len(worklist)-1]
		worklist = worklist[:len(worklist)-1]

		for _, next := range a.TransitionsFrom(current, eps) {
			if closure.Add(next) {
				worklist = append(worklist, next)
			}
		}
	}
	return closure
}
