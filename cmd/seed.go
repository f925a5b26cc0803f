package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"postcraft/internal/db"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Insert demo companies and campaigns for the demo-user principal",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, logger, err := setup()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		if err = requirePostgres(cfg, "seed"); err != nil {
			return err
		}
		repos, err := openRepositories(cmd.Context(), cfg, logger)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer repos.close()
		return db.Seed(cmd.Context(), repos.companies, repos.campaigns, logger)
	},
}
