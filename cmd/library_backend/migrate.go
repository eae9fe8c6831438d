package main

import (
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/SscSPs/library_management_app/internal/platform/config"
	migrate "github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/spf13/cobra"

	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/jackc/pgx/v5/stdlib"
)

func newMigrateCmd(logger *slog.Logger) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply or roll back database migrations",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "up",
			Short: "Apply all pending migrations",
			RunE: func(_ *cobra.Command, _ []string) error {
				cfg, err := config.LoadConfig()
				if err != nil {
					return fmt.Errorf("failed to load config: %w", err)
				}
				return migrateUp(logger, cfg)
			},
		},
		&cobra.Command{
			Use:   "down",
			Short: "Roll back the most recent migration",
			RunE: func(_ *cobra.Command, _ []string) error {
				cfg, err := config.LoadConfig()
				if err != nil {
					return fmt.Errorf("failed to load config: %w", err)
				}
				return withMigrator(logger, cfg, func(m *migrate.Migrate) error {
					return m.Steps(-1)
				})
			},
		},
	)
	return cmd
}

func migrateUp(logger *slog.Logger, cfg *config.Config) error {
	logger.Info("Running database migrations...")
	return withMigrator(logger, cfg, func(m *migrate.Migrate) error {
		return m.Up()
	})
}

// withMigrator opens a database/sql connection through the pgx stdlib driver,
// runs apply and closes the migrator.
func withMigrator(logger *slog.Logger, cfg *config.Config, apply func(*migrate.Migrate) error) error {
	migrationDB, err := sql.Open("pgx", cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("failed to open database connection for migrations: %w", err)
	}
	defer func() {
		if cerr := migrationDB.Close(); cerr != nil {
			logger.Error("Error closing migration DB connection", slog.String("error", cerr.Error()))
		}
	}()
	if err := migrationDB.Ping(); err != nil {
		return fmt.Errorf("failed to ping database for migrations: %w", err)
	}

	driver, err := postgres.WithInstance(migrationDB, &postgres.Config{})
	if err != nil {
		return fmt.Errorf("could not create postgres driver instance for migrations: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance(cfg.MigrationsPath, "postgres", driver)
	if err != nil {
		return fmt.Errorf("could not create migrate instance: %w", err)
	}

	applyErr := apply(m)

	sourceErr, dbErr := m.Close()
	if sourceErr != nil {
		return fmt.Errorf("migration source error: %w", sourceErr)
	}
	if dbErr != nil {
		return fmt.Errorf("migration database error: %w", dbErr)
	}

	switch {
	case errors.Is(applyErr, migrate.ErrNoChange):
		logger.Info("No new migrations to apply.")
	case applyErr != nil:
		return fmt.Errorf("failed to apply migrations: %w", applyErr)
	default:
		logger.Info("Database migrations applied successfully.")
	}
	return nil
}
