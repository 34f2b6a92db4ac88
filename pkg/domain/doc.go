/*
Package domain contains the core domain models of the nfasim simulator.

It defines the automaton description, the active state sets tracked during a
simulation and the results handed back to callers. This package is kept pure and
free of external dependencies like I/O or persistence, following Hexagonal
Architecture principles.

# Key Entities

  - Definition: the raw, already-tokenized automaton as it arrives from a loader.
  - Automaton: the validated, immutable form with interned state identifiers.
  - StateSet: a duplicate-free set of states iterated in declaration order.
  - Result: the verdict of one run plus one Snapshot per consumed symbol.
  - RunRecord: a finished run as persisted by a RunStore.
*/
package domain
