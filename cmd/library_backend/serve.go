package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/library_management_app/internal/core/services"
	"github.com/SscSPs/library_management_app/internal/handlers"
	"github.com/SscSPs/library_management_app/internal/middleware"
	"github.com/SscSPs/library_management_app/internal/platform/config"
	"github.com/SscSPs/library_management_app/internal/repositories/database/pgsql"
	"github.com/SscSPs/library_management_app/pkg/database"
	"github.com/SscSPs/library_management_app/pkg/tracing"
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
)

func newServeCmd(logger *slog.Logger) *cobra.Command {
	var skipMigrations bool
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run migrations and start the HTTP API",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return serve(cmd.Context(), logger, skipMigrations)
		},
	}
	cmd.Flags().BoolVar(&skipMigrations, "skip-migrations", false, "start without applying pending migrations")
	return cmd
}

func serve(ctx context.Context, logger *slog.Logger, skipMigrations bool) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	shutdownTracing, err := tracing.Setup(ctx, cfg.ServiceName, cfg.TracingEndpoint)
	if err != nil {
		return fmt.Errorf("failed to initialize tracing: %w", err)
	}
	defer func() {
		flushCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracing(flushCtx); err != nil {
			logger.Error("Failed to flush traces", slog.String("error", err.Error()))
		}
	}()

	if !skipMigrations {
		if err := migrateUp(logger, cfg); err != nil {
			return err
		}
	}

	dbPool, err := database.NewPgxPool(ctx, cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("failed to initialize database pool: %w", err)
	}
	defer database.ClosePgxPool(dbPool)

	serviceContainer := services.NewServiceContainer(cfg, pgsql.NewRepositoryProvider(dbPool))
	if err := serviceContainer.LibraryConfig.Load(ctx); err != nil {
		return fmt.Errorf("failed to load library policy: %w", err)
	}

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())

	if err := r.SetTrustedProxies(nil); err != nil {
		return fmt.Errorf("failed to set trusted proxies: %w", err)
	}

	if err := handlers.RegisterRoutes(r, cfg, serviceContainer); err != nil {
		return err
	}

	logger.Info("Server starting", slog.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		return fmt.Errorf("server failed to run: %w", err)
	}
	return nil
}
