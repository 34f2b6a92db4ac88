/*
Package ports defines the driven ports (interfaces) for the nfasim simulator.

These interfaces decouple the core logic from external implementations, allowing
the simulator to be fed from various definition sources and to keep finished runs
in various storage backends.

# Key Interfaces

  - DefinitionLoader: Responsible for loading automaton Definitions (e.g., from Loam or Memory).
  - RunStore: Responsible for persisting and loading finished RunRecords.
*/
package ports
