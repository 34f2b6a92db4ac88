package ports

import (
	"context"

	"github.com/aretw0/nfasim/pkg/domain"
)

// DefinitionLoader defines how callers retrieve automaton definitions.
// This allows the storage layer (Loam, FS, Memory) to be decoupled.
type DefinitionLoader interface {
	// Load retrieves a definition by ID.
	// Returns domain.ErrDefinitionNotFound if no definition has that ID.
	Load(ctx context.Context, id string) (domain.Definition, error)

	// List returns the IDs of all available definitions, sorted.
	// This is used by the catalog endpoints and tools (e.g. 'list_automata').
	List(ctx context.Context) ([]string, error)
}
