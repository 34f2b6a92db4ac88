package cli

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/aretw0/nfasim"
	"github.com/aretw0/nfasim/internal/config"
	"github.com/aretw0/nfasim/internal/logging"
	"github.com/aretw0/nfasim/pkg/adapters/file"
	loamadapter "github.com/aretw0/nfasim/pkg/adapters/loam"
	"github.com/aretw0/nfasim/pkg/adapters/memory"
	redisadapter "github.com/aretw0/nfasim/pkg/adapters/redis"
	"github.com/aretw0/nfasim/pkg/domain"
	"github.com/aretw0/nfasim/pkg/observability"
	"github.com/aretw0/nfasim/pkg/persistence/middleware"
	"github.com/aretw0/nfasim/pkg/ports"
)

// LoadDefinition reads a single automaton from path.
// Markdown files are read through the document catalog of their directory;
// everything else goes through the file adapter.
func LoadDefinition(ctx context.Context, path string) (domain.Definition, error) {
	if strings.EqualFold(filepath.Ext(path), ".md") {
		catalog, err := OpenCatalog(filepath.Dir(path))
		if err != nil {
			return domain.Definition{}, err
		}
		return catalog.Load(ctx, filepath.Base(path))
	}
	return file.Load(path)
}

// OpenCatalog opens dir as a read-only catalog of Markdown automata.
func OpenCatalog(dir string) (ports.DefinitionLoader, error) {
	loader, err := loamadapter.Open(dir)
	if err != nil {
		return nil, fmt.Errorf("error opening catalog: %w", err)
	}
	return loader, nil
}

// OpenStore builds the run store selected by cfg, encrypted at rest when
// cfg.EncryptionKey is set. The returned close function releases backend connections.
func OpenStore(cfg config.Config) (ports.RunStore, func() error, error) {
	store, closeFn, err := openBackend(cfg)
	if err != nil {
		return nil, nil, err
	}
	if cfg.EncryptionKey == "" {
		return store, closeFn, nil
	}

	key, err := middleware.ParseKey(cfg.EncryptionKey)
	if err != nil {
		closeFn()
		return nil, nil, err
	}
	encrypt, err := middleware.NewEncryptionMiddleware(middleware.EncryptionConfig{ActiveKey: key})
	if err != nil {
		closeFn()
		return nil, nil, err
	}
	return middleware.Chain(store, encrypt), closeFn, nil
}

func openBackend(cfg config.Config) (ports.RunStore, func() error, error) {
	noop := func() error { return nil }
	switch cfg.Store {
	case "", config.StoreMemory:
		return memory.NewStore(), noop, nil
	case config.StoreFile:
		return file.NewStore(cfg.RunsDir), noop, nil
	case config.StoreRedis:
		opts := []redisadapter.Option{redisadapter.WithTTL(cfg.Redis.TTL)}
		if cfg.Redis.Prefix != "" {
			opts = append(opts, redisadapter.WithPrefix(cfg.Redis.Prefix))
		}
		store := redisadapter.New(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB, opts...)
		return store, store.Close, nil
	}
	return nil, nil, fmt.Errorf("unknown store %q", cfg.Store)
}

// NewLogger creates the application logger for cfg.LogLevel.
func NewLogger(cfg config.Config) (*slog.Logger, error) {
	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	return logging.New(level), nil
}

// SimulatorOptions wires policy, logging and (optionally) metrics into a simulator.
func SimulatorOptions(policy domain.UnknownSymbolPolicy, logger *slog.Logger, metrics *observability.Metrics) []nfasim.Option {
	hooks := []domain.LifecycleHooks{observability.LogHooks(logger)}
	if metrics != nil {
		hooks = append(hooks, metrics.Hooks())
	}
	return []nfasim.Option{
		nfasim.WithUnknownSymbolPolicy(policy),
		nfasim.WithLogger(logger),
		nfasim.WithLifecycleHooks(observability.ChainHooks(hooks...)),
	}
}
