package http

import (
	"context"
	_ "embed"
	"fmt"
	"net/http"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/getkin/kin-openapi/routers"
	"github.com/getkin/kin-openapi/routers/legacy"
)

//go:embed openapi.yaml
var rawOpenAPI []byte

// OpenAPI returns the embedded OpenAPI document describing the routes of Handler.
func OpenAPI() []byte {
	return rawOpenAPI
}

// LoadOpenAPI parses and validates the embedded OpenAPI document.
func LoadOpenAPI(ctx context.Context) (*openapi3.T, error) {
	loader := openapi3.NewLoader()
	loader.Context = ctx
	doc, err := loader.LoadFromData(rawOpenAPI)
	if err != nil {
		return nil, fmt.Errorf("failed to load OpenAPI document: %w", err)
	}
	if err := doc.Validate(ctx); err != nil {
		return nil, fmt.Errorf("invalid OpenAPI document: %w", err)
	}
	return doc, nil
}

func newRequestRouter() (routers.Router, error) {
	doc, err := LoadOpenAPI(context.Background())
	if err != nil {
		return nil, err
	}
	return legacy.NewRouter(doc)
}

// validateRequest checks request parameters and bodies against the OpenAPI document
// before the handler sees them. A missing Content-Type is read as JSON.
func (s *Server) validateRequest(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if s.routerErr != nil {
			s.writeError(w, r, s.routerErr)
			return
		}
		route, params, err := s.router.FindRoute(r)
		if err != nil {
			s.Logger.Warn("route missing from OpenAPI document", "method", r.Method, "path", r.URL.Path, "error", err)
			next.ServeHTTP(w, r)
			return
		}

		r.Body = http.MaxBytesReader(w, r.Body, maxBodySize)
		if r.Header.Get("Content-Type") == "" {
			r.Header.Set("Content-Type", "application/json")
		}
		input := &openapi3filter.RequestValidationInput{
			Request:    r,
			PathParams: params,
			Route:      route,
		}
		if err := openapi3filter.ValidateRequest(r.Context(), input); err != nil {
			s.writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "invalid request: " + err.Error()})
			return
		}
		next.ServeHTTP(w, r)
	})
}

// GetOpenAPI handles the GET /openapi.yaml request.
func (s *Server) GetOpenAPI(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/yaml")
	w.Write(rawOpenAPI)
}
