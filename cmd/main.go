// Command postcraft serves the campaign and post generation API.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"

	"postcraft/internal/adapter/memory"
	"postcraft/internal/adapter/postgres"
	"postcraft/internal/config"
	"postcraft/internal/core/port"
	"postcraft/internal/db"
)

var version = "dev"

var rootCmd = &cobra.Command{
	Use:   "postcraft",
	Short: "Campaign workspace with generated social posts",
	Long: `postcraft stores companies and campaigns, generates candidate social
media posts for a campaign and records which of them were selected.

Configuration is read from the environment (see internal/config).`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(seedCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		slog.Error("postcraft failed", slog.Any("error", err))
		os.Exit(1)
	}
}

// setup loads the configuration and builds the process logger.
func setup() (config.Config, *slog.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return cfg, nil, err
	}
	logger := cfg.Log.New(os.Stdout).With(slog.String("env", cfg.Env))
	slog.SetDefault(logger)
	return cfg, logger, nil
}

// requirePostgres rejects commands whose effect would be lost with the
// in-memory store.
func requirePostgres(cfg config.Config, command string) error {
	if cfg.Store != config.StorePostgres {
		return fmt.Errorf("%s requires STORE_DRIVER=%s, got %q", command, config.StorePostgres, cfg.Store)
	}
	return nil
}

// repositories are the persistence ports of the selected store driver.
type repositories struct {
	companies port.CompanyRepository
	campaigns port.CampaignRepository
	postSets  port.PostSetRepository
	files     port.FileRepository
	close     func()
}

func openRepositories(ctx context.Context, cfg config.Config, logger *slog.Logger) (*repositories, error) {
	switch cfg.Store {
	case config.StoreMemory:
		logger.Warn("using in-memory store; data is lost on restart")
		s := memory.NewStore()
		return &repositories{companies: s, campaigns: s, postSets: s, files: s, close: func() {}}, nil
	case config.StorePostgres:
		pool, err := db.NewPostgresPool(ctx, cfg.Psql)
		if err != nil {
			return nil, err
		}
		return newPostgresRepositories(pool), nil
	}
	return nil, errors.New("unknown store driver " + cfg.Store)
}

func newPostgresRepositories(pool *pgxpool.Pool) *repositories {
	return &repositories{
		companies: postgres.NewCompanyRepository(pool),
		campaigns: postgres.NewCampaignRepository(pool),
		postSets:  postgres.NewPostSetRepository(pool),
		files:     postgres.NewFileRepository(pool),
		close:     pool.Close,
	}
}
