package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/aretw0/nfasim/pkg/domain"
)

// Loader implements ports.DefinitionLoader using an in-memory map.
type Loader struct {
	mu   sync.RWMutex
	defs map[string]domain.Definition
}

// NewLoader creates a new Loader with the provided definitions, keyed by ID.
// Definitions without a name are named after their ID.
func NewLoader(data map[string]domain.Definition) *Loader {
	defs := make(map[string]domain.Definition, len(data))
	for id, def := range data {
		if def.Name == "" {
			def.Name = id
		}
		defs[id] = def.Clone()
	}
	return &Loader{defs: defs}
}

// NewFromDefinitions creates a Loader keyed by each definition's Name.
// This improves DX for tests.
func NewFromDefinitions(defs ...domain.Definition) (*Loader, error) {
	data := make(map[string]domain.Definition, len(defs))
	for _, d := range defs {
		if d.Name == "" {
			return nil, fmt.Errorf("definition missing name")
		}
		if _, dup := data[d.Name]; dup {
			return nil, fmt.Errorf("duplicate definition %q", d.Name)
		}
		data[d.Name] = d
	}
	return NewLoader(data), nil
}

// Put adds or replaces a definition.
func (l *Loader) Put(id string, def domain.Definition) {
	if def.Name == "" {
		def.Name = id
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.defs[id] = def.Clone()
}

// Load returns a copy of the definition stored under id.
func (l *Loader) Load(ctx context.Context, id string) (domain.Definition, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	def, ok := l.defs[id]
	if !ok {
		return domain.Definition{}, fmt.Errorf("%w: %s", domain.ErrDefinitionNotFound, id)
	}
	return def.Clone(), nil
}

// List returns all available definition IDs.
func (l *Loader) List(ctx context.Context) ([]string, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	keys := make([]string, 0, len(l.defs))
	for k := range l.defs {
		keys = append(keys, k)
	}
	sort.Strings(keys) // Deterministic order
	return keys, nil
}
