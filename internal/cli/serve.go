package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	httpadapter "github.com/aretw0/nfasim/pkg/adapters/http"
	mcpadapter "github.com/aretw0/nfasim/pkg/adapters/mcp"
	"github.com/aretw0/nfasim/pkg/domain"
	"github.com/aretw0/nfasim/pkg/observability"
	"github.com/aretw0/nfasim/pkg/ports"
	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/sync/errgroup"
)

// ServeOptions configures the HTTP server.
type ServeOptions struct {
	Dir             string
	Port            int
	Policy          domain.UnknownSymbolPolicy
	Store           ports.RunStore
	ShutdownTimeout time.Duration
}

// Serve exposes the catalog in opts.Dir over HTTP until ctx is cancelled,
// then shuts down gracefully.
func Serve(ctx context.Context, opts ServeOptions, logger *slog.Logger) error {
	catalog, err := OpenCatalog(opts.Dir)
	if err != nil {
		return err
	}

	reg := prometheus.NewRegistry()
	metrics := observability.NewMetrics(reg)
	handler := httpadapter.NewHandler(catalog,
		httpadapter.WithStore(opts.Store),
		httpadapter.WithMetrics(reg),
		httpadapter.WithLogger(logger),
		httpadapter.WithSimulatorOptions(SimulatorOptions(opts.Policy, logger, metrics)...),
	)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", opts.Port),
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}
	timeout := opts.ShutdownTimeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("Starting nfasim server", "address", srv.Addr, "dir", opts.Dir)
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		logger.Info("Start shutdown...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			srv.Close()
			return fmt.Errorf("graceful shutdown did not complete in %v: %w", timeout, err)
		}
		logger.Info("nfasim server stopped gracefully")
		return nil
	})
	return g.Wait()
}

// MCPOptions configures the MCP server.
type MCPOptions struct {
	Dir       string
	Transport string
	Port      int
	Policy    domain.UnknownSymbolPolicy
	Store     ports.RunStore
}

// ServeMCP exposes the catalog in opts.Dir as MCP tools over stdio or SSE.
func ServeMCP(ctx context.Context, opts MCPOptions, logger *slog.Logger) error {
	catalog, err := OpenCatalog(opts.Dir)
	if err != nil {
		return err
	}
	srv := mcpadapter.NewServer(catalog,
		mcpadapter.WithStore(opts.Store),
		mcpadapter.WithLogger(logger),
		mcpadapter.WithSimulatorOptions(SimulatorOptions(opts.Policy, logger, nil)...),
	)

	switch opts.Transport {
	case "", "stdio":
		logger.Info("Starting nfasim MCP server (stdio)")
		return srv.ServeStdio()
	case "sse":
		return srv.ServeSSE(ctx, opts.Port)
	}
	return fmt.Errorf("unknown transport: %s (supported: stdio, sse)", opts.Transport)
}
