// Package mcp exposes the solver over the Model Context Protocol, so AI
// agents can call it as a tool.
package mcp

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/aretw0/decant"
	"github.com/aretw0/decant/pkg/domain"
)

// SolveResponse aligns with the OpenAPI schema and provides a unified
// structure across adapters.
type SolveResponse struct {
	Found    bool           `json:"found" jsonschema_description:"Whether a solution exists"`
	Feasible bool           `json:"feasible" jsonschema_description:"GCD divisibility hint"`
	Steps    int            `json:"steps" jsonschema_description:"Number of moves in the solution"`
	Path     []domain.State `json:"path,omitempty" jsonschema_description:"Vessel states from start to goal"`
	Moves    []string       `json:"moves,omitempty" jsonschema_description:"Human description of each move"`
}

// Solver defines the interface required by the MCP server.
type Solver interface {
	Solve(ctx context.Context, caps domain.Capacities, target int) (*domain.Solution, bool, error)
	Feasible(caps domain.Capacities, target int) bool
}

// Server wraps the decant Service and exposes it as an MCP Server.
type Server struct {
	solver    Solver
	mcpServer *server.MCPServer
}

// NewServer creates a new MCP Server instance.
func NewServer(solver Solver) *Server {
	s := &Server{
		solver:    solver,
		mcpServer: server.NewMCPServer("decant-mcp", strings.TrimSpace(decant.Version)),
	}
	s.registerTools()
	return s
}

// ServeStdio starts the server on Stdin/Stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

// ServeSSE starts the server on the given port using SSE.
func (s *Server) ServeSSE(ctx context.Context, port int) error {
	addr := fmt.Sprintf(":%d", port)
	baseURL := fmt.Sprintf("http://localhost:%d", port)

	sseServer := server.NewSSEServer(s.mcpServer, server.WithBaseURL(baseURL))

	mux := http.NewServeMux()
	mux.Handle("/sse", sseServer.SSEHandler())
	mux.Handle("/message", sseServer.MessageHandler())

	httpServer := &http.Server{
		Addr:    addr,
		Handler: mux,
	}

	serverErrors := make(chan error, 1)
	go func() {
		slog.Info("MCP Server listening (SSE)", "address", addr)
		serverErrors <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
		return nil
	}
}

func (s *Server) registerTools() {
	// TOOL: solve_vessels
	solveTool := mcp.NewTool("solve_vessels",
		mcp.WithDescription("Solve the three water vessels puzzle: find the shortest fill/drain/pour sequence leaving exactly the target volume in some vessel."),
		mcp.WithNumber("capacity_a", mcp.Required(), mcp.Description("Capacity of the first vessel (positive integer)")),
		mcp.WithNumber("capacity_b", mcp.Required(), mcp.Description("Capacity of the second vessel (positive integer)")),
		mcp.WithNumber("capacity_c", mcp.Required(), mcp.Description("Capacity of the third vessel (positive integer)")),
		mcp.WithNumber("target", mcp.Required(), mcp.Description("Target volume to measure (non-negative integer)")),
		mcp.WithOutputSchema[SolveResponse](),
	)
	s.mcpServer.AddTool(solveTool, mcp.NewStructuredToolHandler(s.handleSolve))

	// TOOL: check_feasibility
	feasTool := mcp.NewTool("check_feasibility",
		mcp.WithDescription("Cheap divisibility pre-check: whether the capacity GCD divides the target. Informational only; solve_vessels is authoritative."),
		mcp.WithNumber("capacity_a", mcp.Required(), mcp.Description("Capacity of the first vessel")),
		mcp.WithNumber("capacity_b", mcp.Required(), mcp.Description("Capacity of the second vessel")),
		mcp.WithNumber("capacity_c", mcp.Required(), mcp.Description("Capacity of the third vessel")),
		mcp.WithNumber("target", mcp.Required(), mcp.Description("Target volume")),
	)
	s.mcpServer.AddTool(feasTool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		caps, target, err := puzzleArgs(request.GetArguments())
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		if s.solver.Feasible(caps, target) {
			return mcp.NewToolResultText("feasible: the capacity GCD divides the target"), nil
		}
		return mcp.NewToolResultText("infeasible: the capacity GCD does not divide the target"), nil
	})
}

func (s *Server) handleSolve(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (SolveResponse, error) {
	caps, target, err := puzzleArgs(args)
	if err != nil {
		return SolveResponse{}, err
	}

	sol, found, err := s.solver.Solve(ctx, caps, target)
	if err != nil {
		return SolveResponse{}, fmt.Errorf("solve failed: %w", err)
	}

	resp := SolveResponse{
		Found:    found,
		Feasible: s.solver.Feasible(caps, target),
	}
	if !found {
		return resp, nil
	}

	resp.Steps = sol.Steps()
	resp.Path = sol.Path
	moves, err := sol.Moves()
	if err != nil {
		return SolveResponse{}, fmt.Errorf("solve produced an invalid path: %w", err)
	}
	for _, m := range moves {
		resp.Moves = append(resp.Moves, m.String())
	}
	return resp, nil
}

// puzzleArgs decodes the shared capacity/target arguments.
// JSON numbers arrive as float64; non-integral values are rejected.
func puzzleArgs(args map[string]interface{}) (domain.Capacities, int, error) {
	ints := make([]int, 0, 4)
	for _, name := range []string{"capacity_a", "capacity_b", "capacity_c", "target"} {
		raw, ok := args[name].(float64)
		if !ok {
			return domain.Capacities{}, 0, fmt.Errorf("missing or non-numeric argument %q", name)
		}
		if raw != float64(int(raw)) {
			return domain.Capacities{}, 0, fmt.Errorf("argument %q must be an integer, got %v", name, raw)
		}
		ints = append(ints, int(raw))
	}

	caps, err := domain.NewCapacities(ints[0], ints[1], ints[2])
	if err != nil {
		return domain.Capacities{}, 0, err
	}
	if ints[3] < 0 {
		return domain.Capacities{}, 0, fmt.Errorf("%w: %d", domain.ErrNegativeTarget, ints[3])
	}
	return caps, ints[3], nil
}
