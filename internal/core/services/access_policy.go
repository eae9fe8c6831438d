package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/library_management_app/internal/apperrors"
	"github.com/SscSPs/library_management_app/internal/core/domain"
	portsrepo "github.com/SscSPs/library_management_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/library_management_app/internal/core/ports/services"
)

// accessPolicy rebuilds the caller's Principal from the user store on every
// call, so role changes and deactivation take effect without new tokens.
type accessPolicy struct {
	users portsrepo.UserReader
}

func NewAccessPolicy(users portsrepo.UserReader) portssvc.AccessPolicySvc {
	return &accessPolicy{users: users}
}

var _ portssvc.AccessPolicySvc = (*accessPolicy)(nil)

func (p *accessPolicy) RequireActiveUser(ctx context.Context, userID string) (*domain.Principal, error) {
	if userID == "" {
		return nil, apperrors.NewUnauthorizedError("Authentication required")
	}
	user, err := p.users.FindUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewUnauthorizedError("Unknown user")
		}
		return nil, fmt.Errorf("failed to load caller: %w", err)
	}
	principal := user.Principal()
	if !principal.IsActive {
		return nil, apperrors.NewForbiddenError("User account is not active")
	}
	return &principal, nil
}

func (p *accessPolicy) RequireLibrarian(ctx context.Context, userID string) (*domain.Principal, error) {
	principal, err := p.RequireActiveUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !principal.CanManageLibrary() {
		return nil, apperrors.NewForbiddenError("Only librarians can perform this action")
	}
	return principal, nil
}
