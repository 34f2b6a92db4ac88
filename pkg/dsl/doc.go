/*
Package dsl provides a Go DSL (Domain Specific Language) for programmatically constructing automata.

It allows developers to define automata using a type-safe, fluent builder pattern instead of
relying on external YAML or text files. This is particularly useful for unit testing and for
generating automata from code.

Example usage:

	package main

	import (
		"github.com/aretw0/nfasim/pkg/dsl"
	)

	func main() {
		b := dsl.New("ab")

		b.State("q0").Start().
			On("a", "q1").
			Epsilon("q2")

		b.State("q1").
			On("b", "q2")

		b.State("q2").Accept()

		// Validates the definition and returns a compiled automaton.
		automaton, err := b.Build()
		if err != nil {
			panic(err)
		}
		_ = automaton
	}

States are declared in the order State is first called for them, which fixes the column
order of traces. Unless Alphabet is called, the alphabet is inferred from the symbols
passed to On, in first-use order.
*/
package dsl
