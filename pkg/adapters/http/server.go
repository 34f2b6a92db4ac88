package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/aretw0/nfasim"
	"github.com/aretw0/nfasim/internal/presentation/graph"
	"github.com/aretw0/nfasim/pkg/adapters/memory"
	"github.com/aretw0/nfasim/pkg/domain"
	"github.com/aretw0/nfasim/pkg/ports"
	"github.com/aretw0/nfasim/pkg/report"
	"github.com/getkin/kin-openapi/routers"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// maxBodySize bounds run requests.
const maxBodySize = 1 << 20

// Server exposes a definition catalog and its simulator over HTTP.
type Server struct {
	Loader   ports.DefinitionLoader
	Store    ports.RunStore
	Gatherer prometheus.Gatherer
	Logger   *slog.Logger

	simOpts   []nfasim.Option
	newID     func() string
	router    routers.Router
	routerErr error
}

// Option configures a Server.
type Option func(*Server)

// WithStore sets where finished runs are kept (default: memory).
func WithStore(store ports.RunStore) Option {
	return func(s *Server) { s.Store = store }
}

// WithSimulatorOptions passes options (hooks, policy, logger) to every simulator the server builds.
func WithSimulatorOptions(opts ...nfasim.Option) Option {
	return func(s *Server) { s.simOpts = append(s.simOpts, opts...) }
}

// WithMetrics serves g on GET /metrics.
func WithMetrics(g prometheus.Gatherer) Option {
	return func(s *Server) { s.Gatherer = g }
}

// WithLogger sets the request logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) { s.Logger = logger }
}

// WithIDGenerator overrides run ID generation (default: random UUIDs).
func WithIDGenerator(fn func() string) Option {
	return func(s *Server) { s.newID = fn }
}

// NewServer creates a Server over loader.
func NewServer(loader ports.DefinitionLoader, opts ...Option) *Server {
	s := &Server{
		Loader: loader,
		newID:  uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.Store == nil {
		s.Store = memory.NewStore()
	}
	if s.Logger == nil {
		s.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	s.router, s.routerErr = newRequestRouter()
	return s
}

// NewHandler creates a new HTTP handler for the catalog.
func NewHandler(loader ports.DefinitionLoader, opts ...Option) http.Handler {
	return NewServer(loader, opts...).Handler()
}

// Handler returns the routed handler.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(enableCORS)

	r.Get("/health", s.GetHealth)
	r.Get("/info", s.GetInfo)
	r.Get("/openapi.yaml", s.GetOpenAPI)

	r.Route("/automata", func(r chi.Router) {
		r.Get("/", s.ListAutomata)
		r.Get("/{id}", s.GetAutomaton)
		r.Get("/{id}/graph", s.GetGraph)
		r.With(s.validateRequest).Post("/{id}/runs", s.CreateRun)
	})
	r.Route("/runs", func(r chi.Router) {
		r.Get("/", s.ListRuns)
		r.Get("/{runID}", s.GetRun)
		r.Delete("/{runID}", s.DeleteRun)
	})

	if s.Gatherer != nil {
		r.Handle("/metrics", promhttp.HandlerFor(s.Gatherer, promhttp.HandlerOpts{}))
	}
	return r
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RunRequest is the body of POST /automata/{id}/runs.
// Input takes precedence; Word is split like a CLI input line.
type RunRequest struct {
	Input []string `json:"input"`
	Word  *string  `json:"word,omitempty"`
}

// ErrorResponse is the body of every error reply.
type ErrorResponse struct {
	Error    string           `json:"error"`
	Problems []domain.Problem `json:"problems,omitempty"`
}

// GetHealth handles the GET /health request.
func (s *Server) GetHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// GetInfo handles the GET /info request.
func (s *Server) GetInfo(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{
		"app":     "nfasim-http",
		"version": nfasim.Version,
	})
}

// ListAutomata handles the GET /automata request.
func (s *Server) ListAutomata(w http.ResponseWriter, r *http.Request) {
	ids, err := s.Loader.List(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, map[string][]string{"automata": ids})
}

// GetAutomaton handles the GET /automata/{id} request.
// The definition is validated, so a broken catalog entry answers 422.
func (s *Server) GetAutomaton(w http.ResponseWriter, r *http.Request) {
	sim, err := s.simulator(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, sim.Automaton().Definition())
}

// GetGraph handles the GET /automata/{id}/graph request with a Mermaid flowchart.
func (s *Server) GetGraph(w http.ResponseWriter, r *http.Request) {
	sim, err := s.simulator(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	io.WriteString(w, graph.GenerateMermaid(sim.Automaton(), nil))
}

// CreateRun handles the POST /automata/{id}/runs request.
func (s *Server) CreateRun(w http.ResponseWriter, r *http.Request) {
	var body RunRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodySize)).Decode(&body); err != nil {
		s.writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "invalid request body: " + err.Error()})
		return
	}

	input := body.Input
	if input == nil && body.Word != nil {
		word, err := report.ParseWord(*body.Word)
		if err != nil {
			s.writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
		input = word
	}

	sim, err := s.simulator(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	res, err := sim.Run(r.Context(), input)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	rec := report.Record(s.newID(), sim.Automaton(), input, res)
	if err := s.Store.Save(r.Context(), rec); err != nil {
		s.writeError(w, r, fmt.Errorf("failed to save run: %w", err))
		return
	}
	s.Logger.Info("run created", "run_id", rec.ID, "automaton", rec.Automaton, "verdict", rec.Verdict)

	w.Header().Set("Location", "/runs/"+rec.ID)
	s.writeJSON(w, http.StatusCreated, rec)
}

// ListRuns handles the GET /runs request.
func (s *Server) ListRuns(w http.ResponseWriter, r *http.Request) {
	ids, err := s.Store.List(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, map[string][]string{"runs": ids})
}

// GetRun handles the GET /runs/{runID} request.
func (s *Server) GetRun(w http.ResponseWriter, r *http.Request) {
	rec, err := s.Store.Load(r.Context(), chi.URLParam(r, "runID"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, rec)
}

// DeleteRun handles the DELETE /runs/{runID} request.
func (s *Server) DeleteRun(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "runID")
	if _, err := s.Store.Load(r.Context(), id); err != nil {
		s.writeError(w, r, err)
		return
	}
	if err := s.Store.Delete(r.Context(), id); err != nil {
		s.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) simulator(r *http.Request) (*nfasim.Simulator, error) {
	def, err := s.Loader.Load(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		return nil, err
	}
	return nfasim.New(def, s.simOpts...)
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, domain.ErrDefinitionNotFound), errors.Is(err, domain.ErrRunNotFound):
		status = http.StatusNotFound
	case errors.Is(err, domain.ErrInvalidAutomaton):
		status = http.StatusUnprocessableEntity
	case errors.Is(err, domain.ErrUnknownSymbol):
		status = http.StatusBadRequest
	}

	if status == http.StatusInternalServerError {
		s.Logger.Error("request failed", "path", r.URL.Path, "error", err)
	}
	s.writeJSON(w, status, ErrorResponse{Error: err.Error(), Problems: domain.Problems(err)})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.Logger.Error("response encode failed", "error", err)
	}
}
