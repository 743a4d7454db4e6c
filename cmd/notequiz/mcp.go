package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/aretw0/notequiz/internal/logging"
	"github.com/aretw0/notequiz/pkg/adapters/loam"
	"github.com/aretw0/notequiz/pkg/adapters/mcp"
	"github.com/aretw0/notequiz/pkg/generator"
	"github.com/aretw0/notequiz/pkg/ports"
	"github.com/spf13/cobra"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Run the Model Context Protocol (MCP) server",
	Long: `Exposes summarize_notes, generate_quiz and, with --notes-dir, load_note as MCP tools.

Supported Transports:
- stdio (default): Uses Standard Input/Output. Ideal for local process integration.
- sse: Uses Server-Sent Events over HTTP. Ideal for remote agents or debuggers.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg := loadConfig(cmd)
		flags := cmd.Flags()
		if flags.Changed("notes-dir") {
			cfg.Notes.Dir, _ = flags.GetString("notes-dir")
		}
		transport, _ := flags.GetString("transport")
		port, _ := flags.GetInt("port")

		// Logs go to stderr so they never corrupt JSON-RPC on stdout.
		level, err := logging.ParseLevel(cfg.Log.Level)
		if err != nil {
			log.Fatalf("Error: %v", err)
		}
		if debug, _ := flags.GetBool("debug"); debug {
			level = slog.LevelDebug
		}
		logger := logging.New(level)
		slog.SetDefault(logger)

		var notes ports.NoteSource
		if cfg.Notes.Dir != "" {
			src, err := loam.Open(cfg.Notes.Dir)
			if err != nil {
				log.Fatalf("Error opening notes: %v", err)
			}
			notes = src
		}

		opts := []generator.Option{
			generator.WithLogger(logger),
			generator.WithQuestionLimit(cfg.Quiz.MaxQuestions),
		}
		if cfg.Quiz.Seed != 0 {
			opts = append(opts, generator.WithSeed(cfg.Quiz.Seed))
		}
		srv := mcp.NewServer(generator.NewService(opts...), notes)

		switch transport {
		case "stdio":
			log.SetOutput(os.Stderr)
			slog.Info("Starting notequiz MCP Server (Stdio)...")
			if err := srv.ServeStdio(); err != nil {
				slog.Error("MCP Server execution failed", "err", err)
				os.Exit(1)
			}
		case "sse":
			slog.Info("Starting notequiz MCP Server (SSE)", "port", port)

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			if err := srv.ServeSSE(ctx, port); err != nil && !errors.Is(err, http.ErrServerClosed) {
				slog.Error("MCP Server execution failed", "err", err)
				os.Exit(1)
			}
			slog.Info("MCP Server stopped gracefully")
		default:
			log.Fatalf("Unknown transport: %s. Supported: stdio, sse", transport)
		}
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)

	mcpCmd.Flags().String("transport", "stdio", "Transport protocol to use: 'stdio' or 'sse'")
	mcpCmd.Flags().Int("port", 8080, "Port to listen on (only for SSE)")
	mcpCmd.Flags().String("notes-dir", "", "Directory of Markdown notes exposed through load_note")
}
