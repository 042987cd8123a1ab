package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"helpcenter/internal/config"
	"helpcenter/internal/database"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load starter categories and articles into an empty database",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("load configuration: %w", err)
		}
		setupLogger(cfg.IsDev())

		db, err := database.Connect(cfg.DSN())
		if err != nil {
			return fmt.Errorf("connect to database: %w", err)
		}
		defer db.Close()

		if err := database.Migrate(db); err != nil {
			return fmt.Errorf("run migrations: %w", err)
		}
		if err := database.Seed(db); err != nil {
			return fmt.Errorf("seed database: %w", err)
		}

		slog.Info("seed data loaded")
		return nil
	},
}
