package main

import (
	"fmt"
	"log/slog"

	"github.com/SscSPs/library_management_app/internal/core/services"
	"github.com/SscSPs/library_management_app/internal/dto"
	"github.com/SscSPs/library_management_app/internal/platform/config"
	"github.com/SscSPs/library_management_app/internal/repositories/database/pgsql"
	"github.com/SscSPs/library_management_app/pkg/database"
	"github.com/spf13/cobra"
)

// newCreateLibrarianCmd seeds a librarian account, which every other user
// creation path requires.
func newCreateLibrarianCmd(logger *slog.Logger) *cobra.Command {
	var req dto.CreateUserRequest
	cmd := &cobra.Command{
		Use:   "create-librarian",
		Short: "Create a librarian account",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if len(req.Password) < 8 {
				return fmt.Errorf("password must be at least 8 characters")
			}
			if req.Name == "" {
				req.Name = req.Username
			}

			cfg, err := config.LoadConfig()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			ctx := cmd.Context()
			dbPool, err := database.NewPgxPool(ctx, cfg.DatabaseURL)
			if err != nil {
				return fmt.Errorf("failed to initialize database pool: %w", err)
			}
			defer database.ClosePgxPool(dbPool)

			serviceContainer := services.NewServiceContainer(cfg, pgsql.NewRepositoryProvider(dbPool))
			if err := serviceContainer.LibraryConfig.Load(ctx); err != nil {
				return fmt.Errorf("failed to load library policy: %w", err)
			}
			user, err := serviceContainer.User.BootstrapLibrarian(ctx, req)
			if err != nil {
				return fmt.Errorf("failed to create librarian: %w", err)
			}
			logger.Info("Librarian created", slog.String("user_id", user.UserID), slog.String("username", user.Username))
			return nil
		},
	}
	cmd.Flags().StringVar(&req.Username, "username", "", "login name")
	cmd.Flags().StringVar(&req.Password, "password", "", "password, at least 8 characters")
	cmd.Flags().StringVar(&req.Name, "name", "", "display name (defaults to username)")
	cmd.Flags().StringVar(&req.Email, "email", "", "contact email")
	_ = cmd.MarkFlagRequired("username")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}
