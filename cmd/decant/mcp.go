package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/decant"
	mcpAdapter "github.com/aretw0/decant/internal/adapters/mcp"
	"github.com/aretw0/decant/internal/cli"
	"github.com/aretw0/decant/internal/config"
)

// mcpCmd represents the mcp command
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Run the Model Context Protocol (MCP) server",
	Long: `Starts the decant solver as an MCP Server.
This allows AI agents to call the solver as a tool.

Supported Transports:
- stdio (default): Uses Standard Input/Output. Ideal for local process integration.
- sse: Uses Server-Sent Events over HTTP. Ideal for remote agents or debuggers.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfgPath, _ := cmd.Flags().GetString("config")
		transport, _ := cmd.Flags().GetString("transport")
		port, _ := cmd.Flags().GetInt("port")

		cfg, err := config.Load(cfgPath)
		if err != nil {
			log.Fatalf("Error loading config: %v", err)
		}

		// Logs must stay off Stdout so they don't corrupt JSON-RPC.
		logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
		slog.SetDefault(logger)

		svc := decant.NewService(
			decant.WithStore(cli.NewStore(cfg.Cache)),
			decant.WithLogger(logger),
		)
		srv := mcpAdapter.NewServer(svc)

		switch transport {
		case "stdio":
			log.SetOutput(os.Stderr)
			slog.Info("Starting Decant MCP Server (Stdio)...")
			if err := srv.ServeStdio(); err != nil {
				slog.Error("MCP Server execution failed", "error", err)
				os.Exit(1)
			}
		case "sse":
			sc := cli.NewSignalContext(context.Background())
			defer sc.Cancel()
			if err := srv.ServeSSE(sc, port); err != nil {
				slog.Error("MCP Server execution failed", "error", err)
				os.Exit(1)
			}
		default:
			log.Fatalf("Unknown transport %q (want stdio or sse)", transport)
		}
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
	mcpCmd.Flags().StringP("transport", "t", "stdio", "Transport to use (stdio or sse)")
	mcpCmd.Flags().IntP("port", "p", 8090, "Port for the SSE transport")
}
