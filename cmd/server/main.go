package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"github.com/h809829-coder/agrosmart/config"
	"github.com/h809829-coder/agrosmart/database"
	"github.com/h809829-coder/agrosmart/pkg/logger"
)

var version = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

type rootFlags struct {
	verbose bool
	dbPath  string
}

func newRootCmd() *cobra.Command {
	var f rootFlags
	root := &cobra.Command{
		Use:           "agrosmart",
		Short:         "Crop recommendation service",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().BoolVarP(&f.verbose, "verbose", "v", false, "debug logging")
	root.PersistentFlags().StringVar(&f.dbPath, "db", "", "SQLite file (overrides DB_PATH)")

	serve := newServeCmd(&f)
	root.AddCommand(serve, newSeedCmd(&f), newHistoryCmd(&f), newExportCmd(&f), newMCPCmd(&f))

	// bare "agrosmart" runs the server
	root.RunE = serve.RunE
	root.Flags().AddFlagSet(serve.Flags())
	return root
}

// bootstrap loads config, sets up logging and opens the database.
// The caller owns the returned handle.
func bootstrap(ctx context.Context, f *rootFlags) (config.AppConfig, *gorm.DB, error) {
	cfg, err := config.Load()
	if err != nil {
		return cfg, nil, err
	}
	if f.dbPath != "" {
		cfg.DBPath = f.dbPath
	}
	level := cfg.LogLevel
	if f.verbose {
		level = "debug"
	}
	if _, err := logger.Init(level); err != nil {
		return cfg, nil, fmt.Errorf("init logger: %w", err)
	}

	db, err := database.OpenSQLite(cfg.DBPath)
	if err != nil {
		return cfg, nil, err
	}
	logger.Debugf(ctx, "opened %s", cfg.DBPath)
	return cfg, db, nil
}
