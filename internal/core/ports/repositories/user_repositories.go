package repositories

import (
	"context"

	"github.com/SscSPs/library_management_app/internal/core/domain"
)

// UserReader defines read operations for user data
type UserReader interface {
	// FindUserByID retrieves a specific user by their ID.
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)

	// FindUserByUsername retrieves a user by login name.
	FindUserByUsername(ctx context.Context, username string) (*domain.User, error)

	// FindMembers retrieves a page of members with their borrow counters.
	FindMembers(ctx context.Context, limit int, offset int) ([]domain.MemberSummary, error)
}

// UserWriter defines write operations for user data
type UserWriter interface {
	// SaveUser persists a new user. A taken username is reported as a conflict.
	SaveUser(ctx context.Context, user domain.User) error

	// ActivateMember sets is_active on a member.
	ActivateMember(ctx context.Context, memberID string, updatedBy string) error

	// DeactivateMember clears is_active on a member that holds no borrowed copy.
	// The member row is locked while the borrowed copies are counted.
	DeactivateMember(ctx context.Context, memberID string, updatedBy string) error
}

// UserRepositoryFacade combines all user-related repository interfaces
type UserRepositoryFacade interface {
	UserReader
	UserWriter
}
