package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/mmynk/tipcalc/internal/config"
	"github.com/mmynk/tipcalc/internal/storage/sqlite"
	"github.com/mmynk/tipcalc/pkg/logging"
)

var (
	configPath string
	logLevel   string
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "tipcalc",
	Short: "Tip calculator: web form, RPC server, terminal form and CLI",
	Long: `tipcalc splits a bill and its tip between a number of people.

Available subcommands:
  serve    - Run the HTTP server (form, RPC, metrics)
  calc     - Evaluate one set of values and print the result
  tui      - Fill in the form in the terminal
  operator - Manage operators allowed to edit tip presets`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "tipcalc.yaml", "Path to config file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level override (debug, info, warn, error)")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(calcCmd)
	rootCmd.AddCommand(tuiCmd)
	rootCmd.AddCommand(operatorCmd)
}

func main() {
	// Replaced by loadConfig once the config file is read.
	logging.Setup()

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadConfig reads the config file and installs the default logger.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	if logLevel != "" {
		cfg.Logging.Level = logLevel
	}
	logging.Configure(cfg.Logging.Level, cfg.Logging.Format)
	return cfg, nil
}

// openStore opens the SQLite database and seeds the configured presets into
// an empty one.
func openStore(ctx context.Context, cfg *config.Config) (*sqlite.SQLiteStore, error) {
	store, err := sqlite.New(cfg.Database.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}
	if err := store.SeedPresets(ctx, cfg.Presets); err != nil {
		store.Close()
		return nil, fmt.Errorf("failed to seed presets: %w", err)
	}
	slog.Debug("Storage initialized", "database", cfg.Database.Path)
	return store, nil
}
