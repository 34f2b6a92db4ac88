package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/aretw0/nfasim"
	"github.com/aretw0/nfasim/internal/presentation/graph"
	"github.com/aretw0/nfasim/pkg/adapters/memory"
	"github.com/aretw0/nfasim/pkg/domain"
	"github.com/aretw0/nfasim/pkg/ports"
	"github.com/aretw0/nfasim/pkg/report"
	"github.com/google/uuid"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"golang.org/x/sync/errgroup"
)

const catalogURI = "nfasim://automata"

// ListResponse is the output of list_automata.
type ListResponse struct {
	Automata []string `json:"automata" jsonschema_description:"IDs of the automata in the catalog"`
}

// SimulateResponse is the output of simulate.
type SimulateResponse struct {
	RunID   string     `json:"run_id" jsonschema_description:"ID under which the run was stored"`
	Verdict string     `json:"verdict" jsonschema_description:"accept or reject"`
	States  []string   `json:"states" jsonschema_description:"State labels, in trace column order"`
	Trace   [][]string `json:"trace" jsonschema_description:"One row per consumed symbol: the symbol then a 0/1 per state"`
}

// Server exposes a definition catalog as an MCP tool server.
type Server struct {
	loader    ports.DefinitionLoader
	store     ports.RunStore
	simOpts   []nfasim.Option
	logger    *slog.Logger
	newID     func() string
	mcpServer *server.MCPServer
}

// Option configures a Server.
type Option func(*Server)

// WithStore sets where simulate keeps its runs (default: memory).
func WithStore(store ports.RunStore) Option {
	return func(s *Server) { s.store = store }
}

// WithSimulatorOptions passes options to every simulator the server builds.
func WithSimulatorOptions(opts ...nfasim.Option) Option {
	return func(s *Server) { s.simOpts = append(s.simOpts, opts...) }
}

// WithLogger sets the server logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) { s.logger = logger }
}

// NewServer creates a new MCP Server instance.
func NewServer(loader ports.DefinitionLoader, opts ...Option) *Server {
	s := &Server{
		loader: loader,
		logger: slog.Default(),
		newID:  uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.store == nil {
		s.store = memory.NewStore()
	}
	s.mcpServer = server.NewMCPServer("nfasim-mcp", nfasim.Version)
	s.registerTools()
	s.registerResources()
	return s
}

// ServeStdio starts the server on Stdin/Stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

// ServeSSE serves the SSE transport on port until ctx is cancelled.
func (s *Server) ServeSSE(ctx context.Context, port int) error {
	addr := fmt.Sprintf(":%d", port)
	sseServer := server.NewSSEServer(s.mcpServer, server.WithBaseURL(fmt.Sprintf("http://localhost:%d", port)))

	mux := http.NewServeMux()
	mux.Handle("/sse", sseServer.SSEHandler())
	mux.Handle("/message", sseServer.MessageHandler())
	httpServer := &http.Server{Addr: addr, Handler: mux}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		s.logger.Info("MCP server listening (SSE)", "address", addr)
		if err := httpServer.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
		return nil
	})
	return g.Wait()
}

func (s *Server) registerTools() {
	s.mcpServer.AddTool(mcp.NewTool("list_automata",
		mcp.WithDescription("List the IDs of the automata in the catalog."),
		mcp.WithOutputSchema[ListResponse](),
	), mcp.NewStructuredToolHandler(s.handleList))

	s.mcpServer.AddTool(mcp.NewTool("simulate",
		mcp.WithDescription("Run an input word through an automaton and return the verdict with its state-set trace."),
		mcp.WithString("automaton", mcp.Required(), mcp.Description("Automaton ID")),
		mcp.WithString("input", mcp.Required(), mcp.Description(`Input symbols, space separated ("a b") or as a JSON array string (["a","b"])`)),
		mcp.WithOutputSchema[SimulateResponse](),
	), mcp.NewStructuredToolHandler(s.handleSimulate))

	s.mcpServer.AddTool(mcp.NewTool("get_run",
		mcp.WithDescription("Fetch a stored run by ID."),
		mcp.WithString("run_id", mcp.Required(), mcp.Description("Run ID returned by simulate")),
		mcp.WithOutputSchema[domain.RunRecord](),
	), mcp.NewStructuredToolHandler(s.handleGetRun))

	s.mcpServer.AddTool(mcp.NewTool("get_graph",
		mcp.WithDescription("Get a Mermaid flowchart of an automaton."),
		mcp.WithString("automaton", mcp.Required(), mcp.Description("Automaton ID")),
	), s.handleGraph)
}

func (s *Server) handleList(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (ListResponse, error) {
	ids, err := s.loader.List(ctx)
	if err != nil {
		return ListResponse{}, fmt.Errorf("list failed: %w", err)
	}
	return ListResponse{Automata: ids}, nil
}

func (s *Server) handleSimulate(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (SimulateResponse, error) {
	id, _ := args["automaton"].(string)
	line, _ := args["input"].(string)

	word, err := report.ParseWord(line)
	if err != nil {
		s.logger.Warn("MCP simulate: input rejected", "error", err, "size", len(line))
		return SimulateResponse{}, fmt.Errorf("input rejected: %w", err)
	}

	sim, err := s.simulator(ctx, id)
	if err != nil {
		return SimulateResponse{}, err
	}
	res, err := sim.Run(ctx, word)
	if err != nil {
		return SimulateResponse{}, fmt.Errorf("simulate failed: %w", err)
	}

	rec := report.Record(s.newID(), sim.Automaton(), word, res)
	if err := s.store.Save(ctx, rec); err != nil {
		return SimulateResponse{}, fmt.Errorf("failed to save run: %w", err)
	}
	return SimulateResponse{
		RunID:   rec.ID,
		Verdict: rec.Verdict,
		States:  rec.States,
		Trace:   rec.Trace,
	}, nil
}

func (s *Server) handleGetRun(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (domain.RunRecord, error) {
	id, _ := args["run_id"].(string)
	rec, err := s.store.Load(ctx, id)
	if err != nil {
		return domain.RunRecord{}, err
	}
	return *rec, nil
}

func (s *Server) handleGraph(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id := request.GetString("automaton", "")
	sim, err := s.simulator(ctx, id)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(graph.GenerateMermaid(sim.Automaton(), nil)), nil
}

func (s *Server) simulator(ctx context.Context, id string) (*nfasim.Simulator, error) {
	def, err := s.loader.Load(ctx, id)
	if err != nil {
		return nil, err
	}
	return nfasim.New(def, s.simOpts...)
}

func (s *Server) registerResources() {
	s.mcpServer.AddResource(mcp.NewResource(catalogURI, "Automaton catalog",
		mcp.WithMIMEType("application/json"),
	), func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		ids, err := s.loader.List(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list catalog: %w", err)
		}
		jsonBytes, _ := json.Marshal(ListResponse{Automata: ids})
		return []mcp.ResourceContents{
			mcp.TextResourceContents{
				URI:      catalogURI,
				MIMEType: "application/json",
				Text:     string(jsonBytes),
			},
		}, nil
	})
}
