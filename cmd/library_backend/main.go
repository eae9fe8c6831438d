package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

// @title Library Backend API
// @version 1.0
// @description Borrowing and return workflow for a library: catalog, copies, members, fines and reports.

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @security BearerAuth
func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	if err := newRootCmd(logger).Execute(); err != nil {
		logger.Error("Command failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func newRootCmd(logger *slog.Logger) *cobra.Command {
	root := &cobra.Command{
		Use:           "library_backend",
		Short:         "Library borrowing and return service",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(
		newServeCmd(logger),
		newMigrateCmd(logger),
		newCreateLibrarianCmd(logger),
	)
	return root
}
