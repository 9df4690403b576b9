package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/aretw0/decant"
	"github.com/aretw0/decant/internal/adapters/memory"
	redisstore "github.com/aretw0/decant/internal/adapters/redis"
	"github.com/aretw0/decant/internal/config"
	"github.com/aretw0/decant/internal/presentation/tui"
	"github.com/aretw0/decant/pkg/domain"
	"github.com/aretw0/decant/pkg/ports"
)

// BSD sysexits kept from the original tool's contract.
const (
	ExitOK         = 0
	ExitUsage      = 64 // EX_USAGE
	ExitDataErr    = 65 // EX_DATAERR
	ExitNoSolution = 69 // EX_UNAVAILABLE
)

// SolveOptions carries everything the solve runner needs.
type SolveOptions struct {
	Capacities domain.Capacities
	Target     int
	JSON       bool
	Explain    bool
	NoColor    bool
	Config     config.Config
	Logger     *slog.Logger
}

// NewStore builds the solution cache named by the config.
func NewStore(cfg config.CacheConfig) ports.SolutionStore {
	if cfg.Backend == "redis" {
		var opts []redisstore.Option
		if cfg.TTL > 0 {
			opts = append(opts, redisstore.WithTTL(cfg.TTL))
		}
		return redisstore.New(cfg.Addr, cfg.Password, cfg.DB, opts...)
	}
	return memory.New()
}

// RunSolve runs one solve end to end and returns the process exit code.
func RunSolve(ctx context.Context, opts SolveOptions) int {
	interactive := !opts.NoColor && IsTerminal()
	if interactive && !opts.JSON {
		tui.PrintBanner()
	}

	svc := decant.NewService(
		decant.WithStore(NewStore(opts.Config.Cache)),
		decant.WithLogger(opts.Logger),
	)

	// Informational only; the search below is authoritative.
	feasible := svc.Feasible(opts.Capacities, opts.Target)
	if !opts.JSON {
		word := ""
		if !feasible {
			word = "un"
		}
		fmt.Printf("GCD indicates the puzzle is %ssolvable!\n", word)
	}

	solveCtx, cancel := context.WithTimeout(ctx, 5*time.Minute)
	defer cancel()

	sol, found, err := svc.Solve(solveCtx, opts.Capacities, opts.Target)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return ExitDataErr
	}

	if opts.JSON {
		return printJSON(sol, found, feasible)
	}

	if !found {
		fmt.Fprintln(os.Stderr, "No solution!")
		return ExitNoSolution
	}

	if sol.Steps() == 0 {
		fmt.Println("All vessels are empty initially, all have 0 liters of water, 0 steps!")
		return ExitOK
	}

	if opts.Explain {
		return printExplained(sol, opts.NoColor)
	}

	fmt.Print(tui.RenderTable(sol, interactive))
	return ExitOK
}

func printJSON(sol *domain.Solution, found, feasible bool) int {
	out := struct {
		Found    bool             `json:"found"`
		Feasible bool             `json:"feasible"`
		Solution *domain.Solution `json:"solution,omitempty"`
	}{Found: found, Feasible: feasible, Solution: sol}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return ExitDataErr
	}
	if !found {
		return ExitNoSolution
	}
	return ExitOK
}

func printExplained(sol *domain.Solution, noColor bool) int {
	report, err := tui.MarkdownReport(sol)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return ExitDataErr
	}

	if noColor || !IsTerminal() {
		fmt.Print(report)
		return ExitOK
	}

	render := tui.NewRenderer()
	pretty, err := render(report)
	if err != nil {
		// Fall back to the raw markdown rather than lose the answer.
		fmt.Print(report)
		return ExitOK
	}
	fmt.Print(pretty)
	return ExitOK
}
