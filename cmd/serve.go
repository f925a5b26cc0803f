package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"postcraft/internal/adapter/gemini"
	httpadapter "postcraft/internal/adapter/http"
	redisadapter "postcraft/internal/adapter/redis"
	"postcraft/internal/adapter/usecase"
	"postcraft/internal/config"
	"postcraft/internal/db"
	"postcraft/internal/metrics"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API (default)",
	Long: `Run the HTTP API until SIGINT or SIGTERM, then shut down gracefully.

With PSQL_RUN_MIGRATIONS=true the embedded migrations are applied first.
With REDIS_ADDRESS set, generation runs are serialized across instances.`,
	RunE: runServe,
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, logger, err := setup()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	ctx, cancel := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if cfg.Store == config.StorePostgres && cfg.Psql.RunMigrations {
		if err = db.Migrate(cfg.Psql.Addr.String()); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
		logger.Info("migrations applied successfully")
	}

	repos, err := openRepositories(ctx, cfg, logger)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer repos.close()

	m := metrics.New()
	if cfg.Gemini.APIKey == "" {
		logger.Warn("GEMINI_API_KEY is not set; generation requests will fail")
	}
	generator := gemini.NewClient(cfg.Gemini, logger, m)

	companies := usecase.NewCompanyUseCase(repos.companies, logger)
	campaigns := usecase.NewCampaignUseCase(repos.campaigns, repos.companies, repos.postSets, logger)
	generation := usecase.NewGenerationUseCase(campaigns, repos.postSets, generator, logger, m)
	uploads := usecase.NewUploadUseCase(repos.files, cfg.Upload, logger)

	if cfg.Redis.Address != "" {
		rdb, err := redisadapter.NewClient(ctx, cfg.Redis)
		if err != nil {
			return fmt.Errorf("connect redis: %w", err)
		}
		defer rdb.Close()
		generation.WithLocker(redisadapter.NewLease(rdb), cfg.Redis.LeaseTTL)
		logger.Info("generation lease enabled", slog.String("redis", cfg.Redis.Address))
	}

	handler := httpadapter.NewHandler(httpadapter.Services{
		Companies:      companies,
		Campaigns:      campaigns,
		Generation:     generation,
		Uploads:        uploads,
		MaxUploadBytes: uploads.MaxBytes(),
	}, logger, m)
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler:           handler.Router(),
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("server listening", slog.Int("port", int(cfg.HTTP.Port)), slog.String("store", cfg.Store))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err = <-serveErr:
		return fmt.Errorf("serve: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, stop := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer stop()
	if err = srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
		return err
	}
	logger.Info("server gracefully stopped")
	return nil
}
