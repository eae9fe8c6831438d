package services

import (
	"context"

	"github.com/SscSPs/library_management_app/internal/core/domain"
	"github.com/SscSPs/library_management_app/internal/dto"
)

// PolicyProvider hands out the borrowing policy currently in force.
type PolicyProvider interface {
	Current() domain.LibraryPolicy
}

// LibraryConfigSvcFacade owns the borrowing policy.
type LibraryConfigSvcFacade interface {
	PolicyProvider

	// Load reads the stored policy, creating it from defaults when missing.
	Load(ctx context.Context) error

	// GetConfig returns the policy to a librarian.
	GetConfig(ctx context.Context, callerID string) (domain.LibraryPolicy, error)

	// UpdateConfig validates and stores a patch, then makes it current.
	UpdateConfig(ctx context.Context, req dto.UpdateLibraryConfigRequest, callerID string) (domain.LibraryPolicy, error)
}
