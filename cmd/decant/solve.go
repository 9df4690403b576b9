package main

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/aretw0/decant/internal/cli"
	"github.com/aretw0/decant/internal/config"
	"github.com/aretw0/decant/pkg/domain"
)

// solveCmd represents the solve command
var solveCmd = &cobra.Command{
	Use:   "solve [CAP_1 CAP_2 CAP_3 TARGET]",
	Short: "Solve a puzzle for three capacities and a target volume",
	Long: `Runs a breadth-first search for the shortest move sequence that leaves
exactly TARGET liters in some vessel, starting from all vessels empty.

Either supply three capacities and a target, or pick a named puzzle
with --preset.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfgPath, _ := cmd.Flags().GetString("config")
		debug, _ := cmd.Flags().GetBool("debug")
		noColor, _ := cmd.Flags().GetBool("no-color")
		jsonMode, _ := cmd.Flags().GetBool("json")
		explain, _ := cmd.Flags().GetBool("explain")
		preset, _ := cmd.Flags().GetString("preset")

		logger := cli.CreateLogger(debug)

		cfg, err := config.Load(cfgPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(cli.ExitDataErr)
		}

		caps, target, code := resolvePuzzle(cfg, preset, args)
		if code != cli.ExitOK {
			os.Exit(code)
		}

		os.Exit(cli.RunSolve(context.Background(), cli.SolveOptions{
			Capacities: caps,
			Target:     target,
			JSON:       jsonMode,
			Explain:    explain,
			NoColor:    noColor,
			Config:     cfg,
			Logger:     logger,
		}))
	},
}

// resolvePuzzle turns a preset name or four positional args into a validated
// puzzle, returning a sysexits code on failure.
func resolvePuzzle(cfg config.Config, preset string, args []string) (domain.Capacities, int, int) {
	if preset != "" {
		caps, target, err := cfg.Preset(preset)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return domain.Capacities{}, 0, cli.ExitDataErr
		}
		return caps, target, cli.ExitOK
	}

	if len(args) != 4 {
		fmt.Fprintln(os.Stderr, "Usage:\n\tdecant solve CAP_1 CAP_2 CAP_3 TARGET")
		return domain.Capacities{}, 0, cli.ExitUsage
	}

	nums := make([]int, 0, 4)
	for _, arg := range args {
		n, err := strconv.Atoi(arg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Invalid input %q!\n", arg)
			return domain.Capacities{}, 0, cli.ExitDataErr
		}
		nums = append(nums, n)
	}

	caps, err := domain.NewCapacities(nums[0], nums[1], nums[2])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return domain.Capacities{}, 0, cli.ExitDataErr
	}
	if nums[3] < 0 {
		fmt.Fprintf(os.Stderr, "Invalid input %d!\n", nums[3])
		return domain.Capacities{}, 0, cli.ExitDataErr
	}
	return caps, nums[3], cli.ExitOK
}

func init() {
	rootCmd.AddCommand(solveCmd)

	solveCmd.Flags().Bool("json", false, "Emit the result as JSON instead of a table")
	solveCmd.Flags().Bool("explain", false, "Describe the solution move by move (markdown)")
	solveCmd.Flags().StringP("preset", "P", "", "Solve a named puzzle from the config presets")
}
