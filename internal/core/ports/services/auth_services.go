package services

import (
	"context"
	"time"

	"github.com/SscSPs/library_management_app/internal/core/domain"
)

// TokenSvc issues access tokens for authenticated users.
type TokenSvc interface {
	GenerateAccessToken(ctx context.Context, user *domain.User) (string, time.Time, error)
}

// AccessPolicySvc re-derives the caller's capabilities from the user store.
type AccessPolicySvc interface {
	// RequireActiveUser resolves any active user.
	RequireActiveUser(ctx context.Context, userID string) (*domain.Principal, error)

	// RequireLibrarian resolves an active librarian or fails with a forbidden error.
	RequireLibrarian(ctx context.Context, userID string) (*domain.Principal, error)
}
