package ports

import (
	"context"

	"github.com/aretw0/nfasim/pkg/domain"
)

// RunStore defines the interface for persisting finished runs.
// Records are immutable once saved; saving an existing ID replaces it.
type RunStore interface {
	// Save persists the record under rec.ID.
	Save(ctx context.Context, rec *domain.RunRecord) error

	// Load retrieves the record for a given run ID.
	// Returns domain.ErrRunNotFound if the run does not exist.
	Load(ctx context.Context, id string) (*domain.RunRecord, error)

	// Delete removes the record for a given run ID. Deleting a missing run is not an error.
	Delete(ctx context.Context, id string) error

	// List returns the IDs of all stored runs.
	List(ctx context.Context) ([]string, error)
}
