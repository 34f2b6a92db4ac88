package loam

import (
	"context"
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/aretw0/loam"
	"github.com/aretw0/nfasim/pkg/domain"
)

// Loader adapts the Loam library to the DefinitionLoader interface.
// Every document of the repository is one automaton: its frontmatter holds
// the definition and its body becomes the description.
type Loader struct {
	Repo *loam.TypedRepository[Metadata]
}

// New creates a new Loam adapter.
func New(repo *loam.TypedRepository[Metadata]) *Loader {
	return &Loader{
		Repo: repo,
	}
}

// Open initializes a read-only Loam repository at dir and wraps it in a Loader.
func Open(dir string) (*Loader, error) {
	absPath, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("invalid path: %w", err)
	}

	// Strict mode keeps numeric types consistent across JSON and Markdown/YAML documents.
	// The catalog is never written, so the repository is opened read-only.
	repo, err := loam.Init(absPath,
		loam.WithStrict(true),
		loam.WithReadOnly(true),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize loam: %w", err)
	}
	return New(loam.NewTypedRepository[Metadata](repo)), nil
}

// index maps normalized automaton IDs to document paths.
func (l *Loader) index(ctx context.Context) (map[string]string, error) {
	docs, err := l.Repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("loam list failed: %w", err)
	}

	idx := make(map[string]string, len(docs))
	for _, doc := range docs {
		// Use the ID from metadata if available, otherwise filename ID
		rawID := doc.Data.ID
		if rawID == "" {
			rawID = doc.ID
		}
		id := trimExtension(rawID)

		if existing, ok := idx[id]; ok {
			return nil, fmt.Errorf("collision detected: ID '%s' is defined in both '%s' and '%s'", id, existing, doc.ID)
		}
		idx[id] = doc.ID
	}
	return idx, nil
}

// Load returns the definition whose normalized ID is id.
func (l *Loader) Load(ctx context.Context, id string) (domain.Definition, error) {
	idx, err := l.index(ctx)
	if err != nil {
		return domain.Definition{}, err
	}
	path, ok := idx[trimExtension(id)]
	if !ok {
		return domain.Definition{}, fmt.Errorf("%w: %s", domain.ErrDefinitionNotFound, id)
	}
	// List results carry no body; only Get reads the whole document.
	doc, err := l.Repo.Get(ctx, path)
	if err != nil {
		return domain.Definition{}, fmt.Errorf("loam get failed for %s: %w", path, err)
	}
	def, err := toDefinition(trimExtension(id), doc.Data, doc.Content)
	if err != nil {
		return def, fmt.Errorf("%s: %w", path, err)
	}
	return def, nil
}

// List lists the IDs of all automata in the repository, sorted.
func (l *Loader) List(ctx context.Context) ([]string, error) {
	idx, err := l.index(ctx)
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(idx))
	for id := range idx {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids, nil
}

func toDefinition(id string, meta Metadata, content string) (domain.Definition, error) {
	def := domain.Definition{
		Name:        meta.Name,
		Description: strings.TrimSpace(content),
		Alphabet:    meta.Alphabet,
		States:      meta.States,
		Start:       meta.Start,
		Accept:      meta.Accept,
		Epsilon:     meta.Epsilon,
		Transitions: meta.Transitions,
	}
	if def.Name == "" {
		def.Name = id
	}
	if def.Description == "" {
		def.Description = meta.Description
	}

	for i, raw := range meta.Inputs {
		word, err := toWord(raw)
		if err != nil {
			return def, fmt.Errorf("inputs[%d]: %w", i, err)
		}
		def.Inputs = append(def.Inputs, word)
	}
	return def, nil
}

func toWord(raw any) ([]string, error) {
	switch v := raw.(type) {
	case nil:
		return []string{}, nil
	case string:
		return strings.Fields(v), nil
	case []any:
		word := make([]string, 0, len(v))
		for _, sym := range v {
			word = append(word, fmt.Sprint(sym))
		}
		return word, nil
	case []string:
		return append([]string{}, v...), nil
	}
	return nil, fmt.Errorf("unsupported word type %T", raw)
}

func trimExtension(id string) string {
	ext := filepath.Ext(id)
	if ext != "" {
		return filepath.ToSlash(strings.TrimSuffix(id, ext))
	}
	return filepath.ToSlash(id)
}
