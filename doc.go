/*
Package nfasim simulates nondeterministic finite automata (NFA) with epsilon transitions.

Given a transition table and an input symbol sequence, it decides whether the automaton
accepts the sequence while tracking, after every consumed symbol, the full set of states
the automaton could simultaneously occupy (subset construction, determinized on the fly).

# Concept

An automaton is described by a domain.Definition (alphabet, states, start state, accept
states and transitions, with epsilon edges labelled by a reserved marker, "e" by default).
New validates the definition once and interns state labels; the compiled automaton is
immutable, so any number of runs may share it concurrently.

Each run returns a domain.Result: the verdict plus one snapshot of the active state set per
consumed symbol. Formatting that trace is left to the report package.

# Usage

	package main

	import (
		"context"
		"log"
		"os"

		"github.com/aretw0/nfasim"
		"github.com/aretw0/nfasim/pkg/domain"
		"github.com/aretw0/nfasim/pkg/report"
	)

	func main() {
		sim, err := nfasim.New(domain.Definition{
			Alphabet: []string{"a", "b"},
			States:   []string{"q0", "q1", "q2"},
			Start:    "q0",
			Accept:   []string{"q2"},
			Transitions: []domain.Transition{
				{From: "q0", Symbol: "a", To: "q1"},
				{From: "q1", Symbol: "b", To: "q2"},
				{From: "q0", Symbol: "e", To: "q2"},
			},
		})
		if err != nil {
			log.Fatal(err)
		}

		res, err := sim.Run(context.Background(), []string{"a", "b"})
		if err != nil {
			log.Fatal(err)
		}

		// a 0 1 0
		// b 0 0 1
		// accept
		report.NewTextWriter(os.Stdout).Write(sim.Automaton(), res)
	}
*/
package nfasim
