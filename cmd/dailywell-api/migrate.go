package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dailywell/backend/internal/logger"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the database schema",
	RunE:  runMigrate,
}

func runMigrate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	log := newLogger(cfg)

	// openStore applies the schema
	store, err := openStore(cmd.Context(), cfg)
	if err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}
	defer store.Close()

	log.Info("database schema is up to date", logger.String("driver", cfg.Database.Driver))
	return nil
}
