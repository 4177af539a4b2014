package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"

	"adspend/internal/adapter/file"
	httpadapter "adspend/internal/adapter/http"
	"adspend/internal/adapter/postgres"
	"adspend/internal/adapter/usecase"
	"adspend/internal/config"
	"adspend/internal/core/port"
	"adspend/internal/db"
	"adspend/internal/metrics"
)

func serveCmd(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the expenditure HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(cmd.Context(), *cfg)
		},
	}
}

// serve loads the rate card, optionally connects the report store and
// runs migrations, then starts the HTTP server. On SIGINT or SIGTERM it
// shuts the server down gracefully.
func serve(ctx context.Context, cfg config.Config) error {
	logger := cfg.Log.NewLogger(os.Stdout).With(slog.String("env", cfg.Env))

	card, err := file.LoadRateCard(cfg.RateCard.File)
	if err != nil {
		return fmt.Errorf("load rate card: %w", err)
	}
	logger.Info("rate card loaded", slog.Int("rates", card.Len()), slog.String("file", cfg.RateCard.File))

	ctx, cancel := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	var repo port.ReportRepository
	if cfg.Psql.Enabled {
		if cfg.Psql.RunMigrations {
			if err = db.Migrate(cfg.Psql.Addr.String(), logger); err != nil {
				logger.Error("migration error", slog.Any("error", err))
			}
		}
		pool, err := db.NewPostgresPool(ctx, cfg.Psql)
		if err != nil {
			return fmt.Errorf("database connection: %w", err)
		}
		defer pool.Close()
		repo = postgres.NewReportRepository(pool)
	} else {
		logger.Warn("report storage disabled")
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	svc := usecase.NewExpenditureUseCase(card, repo, metrics.New(reg), logger)

	handler := httpadapter.NewHandler(svc, logger, reg, cfg.HTTP.MaxBodyBytes)
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler: handler.Router(),
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening", slog.Int("port", int(cfg.HTTP.Port)))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err = <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancelShutdown()
	if err = srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
		return err
	}
	logger.Info("server gracefully stopped")
	return nil
}
