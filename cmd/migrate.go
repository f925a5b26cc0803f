package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"postcraft/internal/db"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply the embedded database migrations",
	RunE: func(_ *cobra.Command, _ []string) error {
		cfg, logger, err := setup()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		if err = requirePostgres(cfg, "migrate"); err != nil {
			return err
		}
		if err = db.Migrate(cfg.Psql.Addr.String()); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
		logger.Info("migrations applied successfully")
		return nil
	},
}
