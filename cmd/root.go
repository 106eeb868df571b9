package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/lowkeylabs/applenotes-mcp/internal/backend"
	"github.com/lowkeylabs/applenotes-mcp/internal/backend/notesapp"
	"github.com/lowkeylabs/applenotes-mcp/internal/backend/parser"
	"github.com/lowkeylabs/applenotes-mcp/internal/config"
	"github.com/lowkeylabs/applenotes-mcp/internal/service"
)

var (
	cfgFile     string
	jsonOutput  bool
	backendFlag string
	appConfig   *config.Config
	logger      *slog.Logger
	svc         *service.Service
)

var rootCmd = &cobra.Command{
	Use:   "applenotes-mcp",
	Short: "Apple Notes access for the command line and MCP clients",
	Long: `applenotes-mcp reads and writes Apple Notes, either directly from the
NoteStore database or through Notes.app scripting, and exposes the same
operations as MCP tools over stdio.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Load config
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		appConfig = cfg

		// Override backend from flag
		if backendFlag != "" {
			appConfig.Backend = backendFlag
		}

		// Log to stderr; stdout carries command output (and MCP traffic).
		level := slog.LevelInfo
		if appConfig.Debug {
			level = slog.LevelDebug
		}
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

		// Assemble the backend chain
		var sources []backend.Source
		switch appConfig.Backend {
		case "auto":
			sources = append(sources,
				parser.New(appConfig.DatabasePath, logger),
				notesapp.New(logger, appConfig.Account),
			)
		case "parser":
			sources = append(sources, parser.New(appConfig.DatabasePath, logger))
		case "notesapp":
			sources = append(sources, notesapp.New(logger, appConfig.Account))
		default:
			return fmt.Errorf("unknown backend: %s", appConfig.Backend)
		}

		svc = service.New(logger, sources...)
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file path")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "output in JSON format")
	rootCmd.PersistentFlags().StringVar(&backendFlag, "backend", "", "backend (auto|parser|notesapp)")

	// Silence Cobra's built-in error and usage printing so we control stderr output
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true
}
