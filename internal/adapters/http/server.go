// Package http exposes the solver as a stateless JSON API.
package http

import (
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/aretw0/decant/pkg/domain"
)

//go:embed openapi.yaml
var openapiSpec []byte

// Solver defines the interface for the decant core.
type Solver interface {
	Solve(ctx context.Context, caps domain.Capacities, target int) (*domain.Solution, bool, error)
	Feasible(caps domain.Capacities, target int) bool
}

// SolveRequest is the POST /solve body.
type SolveRequest struct {
	Capacities [domain.Vessels]int `json:"capacities"`
	Target     int                 `json:"target"`
}

// SolveResponse is the POST /solve result. Path and Moves are only present
// when Found is true; Feasible carries the GCD hint either way.
type SolveResponse struct {
	Found    bool           `json:"found"`
	Feasible bool           `json:"feasible"`
	Steps    int            `json:"steps,omitempty"`
	Path     []domain.State `json:"path,omitempty"`
	Moves    []string       `json:"moves,omitempty"`
}

// Server holds the HTTP handler dependencies.
type Server struct {
	solver Solver
}

// Option configures the handler.
type Option func(*options)

type options struct {
	registry *prometheus.Registry
}

// WithMetricsRegistry mounts a /metrics endpoint serving the given registry.
func WithMetricsRegistry(reg *prometheus.Registry) Option {
	return func(o *options) {
		o.registry = reg
	}
}

// NewHandler creates a new HTTP handler for the solver.
func NewHandler(solver Solver, opts ...Option) http.Handler {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	server := &Server{solver: solver}
	r := chi.NewRouter()

	r.Post("/solve", server.Solve)
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})
	r.Get("/openapi.yaml", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/yaml")
		w.Write(openapiSpec)
	})
	r.Get("/swagger", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte(swaggerHTML))
	})
	if o.registry != nil {
		r.Handle("/metrics", promhttp.HandlerFor(o.registry, promhttp.HandlerOpts{}))
	}

	return r
}

// Solve handles the POST /solve request.
func (s *Server) Solve(w http.ResponseWriter, r *http.Request) {
	var body SolveRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	caps, err := domain.NewCapacities(body.Capacities[0], body.Capacities[1], body.Capacities[2])
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if body.Target < 0 {
		http.Error(w, domain.ErrNegativeTarget.Error(), http.StatusBadRequest)
		return
	}

	sol, found, err := s.solver.Solve(r.Context(), caps, body.Target)
	if err != nil {
		if errors.Is(err, domain.ErrNegativeTarget) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		http.Error(w, "Solve error: "+err.Error(), http.StatusInternalServerError)
		return
	}

	resp := SolveResponse{
		Found:    found,
		Feasible: s.solver.Feasible(caps, body.Target),
	}
	if found {
		resp.Steps = sol.Steps()
		resp.Path = sol.Path
		moves, err := sol.Moves()
		if err != nil {
			http.Error(w, "Solve error: "+err.Error(), http.StatusInternalServerError)
			return
		}
		for _, m := range moves {
			resp.Moves = append(resp.Moves, m.String())
		}
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		// Too late for a status code; the client gets a truncated body.
		return
	}
}

const swaggerHTML = `
<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="utf-8" />
    <meta name="viewport" content="width=device-width, initial-scale=1" />
    <title>Decant API Documentation</title>
    <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5.11.0/swagger-ui.css" />
</head>
<body>
<div id="swagger-ui"></div>
<script src="https://unpkg.com/swagger-ui-dist@5.11.0/swagger-ui-bundle.js" crossorigin></script>
<script>
    window.onload = () => {
    window.ui = SwaggerUIBundle({
        url: '/openapi.yaml',
        dom_id: '#swagger-ui',
    });
    };
</script>
</body>
</html>
`
