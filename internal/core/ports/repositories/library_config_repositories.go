package repositories

import (
	"context"

	"github.com/SscSPs/library_management_app/internal/core/domain"
)

// LibraryConfigRepository stores the single library policy row. There is no delete.
type LibraryConfigRepository interface {
	// GetOrCreateConfig returns the stored policy, inserting defaults if the row is missing.
	GetOrCreateConfig(ctx context.Context, defaults domain.LibraryPolicy) (*domain.LibraryPolicy, error)

	// UpdateConfig locks the row, applies mutate to the stored value and writes
	// the result. Nothing is written if mutate fails.
	UpdateConfig(ctx context.Context, mutate func(current domain.LibraryPolicy) (domain.LibraryPolicy, error)) (*domain.LibraryPolicy, error)
}
